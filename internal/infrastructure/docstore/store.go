package docstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"ideanest/internal/domain/entity"
	"ideanest/pkg/logger"
)

// Kind identifies one of the three whole-file JSON documents.
type Kind string

const (
	KindIdeas Kind = "ideas"
	KindUsers Kind = "users"
	KindChats Kind = "chats"
)

type IdeasDocument struct {
	Ideas []*entity.Idea `json:"ideas"`
}

type UsersDocument struct {
	Users []*entity.User `json:"users"`
}

type ChatsDocument struct {
	Chats map[string][]entity.Message `json:"chats"`
}

// Store reads and writes the three JSON documents under a data directory.
// Each document is serialized and deserialized as a single unit; there are
// no partial updates. A per-document mutex serializes read-modify-write
// cycles so concurrent requests cannot silently drop each other's writes.
type Store struct {
	dir string
	mus map[Kind]*sync.Mutex
}

func New(dir string) *Store {
	return &Store{
		dir: dir,
		mus: map[Kind]*sync.Mutex{
			KindIdeas: {},
			KindUsers: {},
			KindChats: {},
		},
	}
}

// Init seeds any missing document file with its empty default. Failures are
// logged and ignored; reads fall back to the defaults anyway.
func (s *Store) Init() {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		logger.Error("Failed to create data directory %s: %v", s.dir, err)
		return
	}

	for _, kind := range []Kind{KindIdeas, KindUsers, KindChats} {
		path := s.path(kind)
		if _, err := os.Stat(path); err == nil {
			continue
		}
		s.write(kind, s.emptyDefault(kind))
	}
}

// Lock acquires the mutex guarding the given document. Callers hold it for
// the full read-modify-write cycle.
func (s *Store) Lock(kind Kind) {
	s.mus[kind].Lock()
}

func (s *Store) Unlock(kind Kind) {
	s.mus[kind].Unlock()
}

func (s *Store) ReadIdeas() *IdeasDocument {
	doc := &IdeasDocument{}
	if !s.read(KindIdeas, doc) || doc.Ideas == nil {
		doc.Ideas = []*entity.Idea{}
	}
	return doc
}

func (s *Store) WriteIdeas(doc *IdeasDocument) {
	s.write(KindIdeas, doc)
}

func (s *Store) ReadUsers() *UsersDocument {
	doc := &UsersDocument{}
	if !s.read(KindUsers, doc) || doc.Users == nil {
		doc.Users = []*entity.User{}
	}
	return doc
}

func (s *Store) WriteUsers(doc *UsersDocument) {
	s.write(KindUsers, doc)
}

func (s *Store) ReadChats() *ChatsDocument {
	doc := &ChatsDocument{}
	if !s.read(KindChats, doc) || doc.Chats == nil {
		doc.Chats = map[string][]entity.Message{}
	}
	return doc
}

func (s *Store) WriteChats(doc *ChatsDocument) {
	s.write(KindChats, doc)
}

func (s *Store) path(kind Kind) string {
	return filepath.Join(s.dir, string(kind)+".json")
}

func (s *Store) emptyDefault(kind Kind) interface{} {
	switch kind {
	case KindIdeas:
		return &IdeasDocument{Ideas: []*entity.Idea{}}
	case KindUsers:
		return &UsersDocument{Users: []*entity.User{}}
	default:
		return &ChatsDocument{Chats: map[string][]entity.Message{}}
	}
}

// read deserializes the document into v, reporting false when the file is
// missing, unreadable, or malformed; the caller substitutes the empty
// default in that case.
func (s *Store) read(kind Kind, v interface{}) bool {
	data, err := os.ReadFile(s.path(kind))
	if err != nil {
		logger.Error("Failed to read %s document: %v", kind, err)
		return false
	}

	if err := json.Unmarshal(data, v); err != nil {
		logger.Error("Failed to parse %s document: %v", kind, err)
		return false
	}

	logger.Debug("Read %s document (%d bytes)", kind, len(data))
	return true
}

// write serializes the full document, overwriting any previous content.
// Failures are logged and swallowed; in-memory state is not rolled back.
func (s *Store) write(kind Kind, v interface{}) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		logger.Error("Failed to serialize %s document: %v", kind, err)
		return
	}

	if err := os.WriteFile(s.path(kind), data, 0o644); err != nil {
		logger.Error("Failed to write %s document: %v", kind, err)
	}
}

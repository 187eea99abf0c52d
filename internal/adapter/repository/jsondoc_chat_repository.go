package repository

import (
	"context"

	"ideanest/internal/domain/entity"
	"ideanest/internal/domain/repository"
	"ideanest/internal/infrastructure/docstore"
)

type jsonDocChatRepository struct {
	store *docstore.Store
}

func NewJSONDocChatRepository(store *docstore.Store) repository.ChatRepository {
	return &jsonDocChatRepository{
		store: store,
	}
}

func (r *jsonDocChatRepository) AppendMessages(ctx context.Context, email string, ideaID int, messages ...entity.Message) error {
	r.store.Lock(docstore.KindChats)
	defer r.store.Unlock(docstore.KindChats)

	doc := r.store.ReadChats()
	key := entity.TranscriptKey(email, ideaID)
	doc.Chats[key] = append(doc.Chats[key], messages...)
	r.store.WriteChats(doc)

	return nil
}

// GetHistory never fails for an unknown idea; a missing transcript is just
// an empty one.
func (r *jsonDocChatRepository) GetHistory(ctx context.Context, email string, ideaID int) ([]entity.Message, error) {
	r.store.Lock(docstore.KindChats)
	defer r.store.Unlock(docstore.KindChats)

	doc := r.store.ReadChats()
	history := doc.Chats[entity.TranscriptKey(email, ideaID)]
	if history == nil {
		return []entity.Message{}, nil
	}

	return history, nil
}

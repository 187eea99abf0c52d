package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ideanest/internal/domain/entity"
	"ideanest/internal/infrastructure/docstore"
)

func newChatRepo(t *testing.T) (*docstore.Store, context.Context, func() *docstore.ChatsDocument) {
	t.Helper()
	store := docstore.New(t.TempDir())
	store.Init()
	return store, context.Background(), store.ReadChats
}

func TestAppendMessagesCreatesTranscriptLazily(t *testing.T) {
	store, ctx, readChats := newChatRepo(t)
	repo := NewJSONDocChatRepository(store)

	now := time.Now()
	err := repo.AppendMessages(ctx, "a@x.com", 1,
		entity.Message{Role: entity.RoleUser, Message: "hi", Timestamp: now},
		entity.Message{Role: entity.RoleAssistant, Message: "hello", Timestamp: now},
	)
	require.NoError(t, err)

	doc := readChats()
	require.Len(t, doc.Chats["a@x.com_1"], 2)
	assert.Equal(t, entity.RoleUser, doc.Chats["a@x.com_1"][0].Role)
	assert.Equal(t, entity.RoleAssistant, doc.Chats["a@x.com_1"][1].Role)
}

func TestAppendMessagesPreservesOrder(t *testing.T) {
	store, ctx, _ := newChatRepo(t)
	repo := NewJSONDocChatRepository(store)

	for i, text := range []string{"first", "second", "third"} {
		ts := time.Now().Add(time.Duration(i) * time.Second)
		require.NoError(t, repo.AppendMessages(ctx, "a@x.com", 1,
			entity.Message{Role: entity.RoleUser, Message: text, Timestamp: ts},
		))
	}

	history, err := repo.GetHistory(ctx, "a@x.com", 1)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, "first", history[0].Message)
	assert.Equal(t, "third", history[2].Message)
}

func TestGetHistoryEmptyForUnknownKey(t *testing.T) {
	store, ctx, _ := newChatRepo(t)
	repo := NewJSONDocChatRepository(store)

	history, err := repo.GetHistory(ctx, "nobody@x.com", 999)
	require.NoError(t, err)
	assert.NotNil(t, history)
	assert.Empty(t, history)
}

func TestTranscriptsAreIsolatedPerUserAndIdea(t *testing.T) {
	store, ctx, _ := newChatRepo(t)
	repo := NewJSONDocChatRepository(store)

	now := time.Now()
	require.NoError(t, repo.AppendMessages(ctx, "a@x.com", 1, entity.Message{Role: entity.RoleUser, Message: "one", Timestamp: now}))
	require.NoError(t, repo.AppendMessages(ctx, "a@x.com", 2, entity.Message{Role: entity.RoleUser, Message: "two", Timestamp: now}))
	require.NoError(t, repo.AppendMessages(ctx, "b@x.com", 1, entity.Message{Role: entity.RoleUser, Message: "three", Timestamp: now}))

	historyA1, err := repo.GetHistory(ctx, "a@x.com", 1)
	require.NoError(t, err)
	require.Len(t, historyA1, 1)
	assert.Equal(t, "one", historyA1[0].Message)

	historyB1, err := repo.GetHistory(ctx, "b@x.com", 1)
	require.NoError(t, err)
	require.Len(t, historyB1, 1)
	assert.Equal(t, "three", historyB1[0].Message)
}

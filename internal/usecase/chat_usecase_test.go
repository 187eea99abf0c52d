package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapterrepo "ideanest/internal/adapter/repository"
	"ideanest/internal/domain/entity"
	"ideanest/internal/domain/service"
	"ideanest/internal/infrastructure/docstore"
	"ideanest/pkg/errors"
)

func newChatUseCase(t *testing.T, ideas ...*entity.Idea) (*ChatUseCase, context.Context) {
	t.Helper()

	store := docstore.New(t.TempDir())
	store.Init()
	store.WriteIdeas(&docstore.IdeasDocument{Ideas: ideas})

	uc := NewChatUseCase(
		adapterrepo.NewJSONDocChatRepository(store),
		adapterrepo.NewJSONDocIdeaRepository(store),
		service.NewAssistantService(),
		nil,
	)
	return uc, context.Background()
}

func TestSendMessageAppendsTwoEntriesPerCall(t *testing.T) {
	uc, ctx := newChatUseCase(t, &entity.Idea{ID: 1, Summary: "Chat App"})

	const calls = 3
	for i := 0; i < calls; i++ {
		_, err := uc.SendMessage(ctx, "a@x.com", 1, fmt.Sprintf("message %d", i))
		require.NoError(t, err)
	}

	history, err := uc.GetHistory(ctx, "a@x.com", 1)
	require.NoError(t, err)
	require.Len(t, history, 2*calls)

	for i := 0; i < calls; i++ {
		assert.Equal(t, entity.RoleUser, history[2*i].Role)
		assert.Equal(t, fmt.Sprintf("message %d", i), history[2*i].Message)
		assert.Equal(t, entity.RoleAssistant, history[2*i+1].Role)
	}
}

func TestSendMessageCodeRequestSkipsIdeaLookup(t *testing.T) {
	uc, ctx := newChatUseCase(t) // no ideas seeded at all

	reply, err := uc.SendMessage(ctx, "a@x.com", 999999, "please give me the code")
	require.NoError(t, err)
	assert.Contains(t, reply, "rather than providing source code")

	// Still recorded in the transcript for the bogus idea id.
	history, err := uc.GetHistory(ctx, "a@x.com", 999999)
	require.NoError(t, err)
	assert.Len(t, history, 2)
}

func TestSendMessageUnknownIdeaYieldsApology(t *testing.T) {
	uc, ctx := newChatUseCase(t)

	reply, err := uc.SendMessage(ctx, "a@x.com", 7, "show me the folder structure")
	require.NoError(t, err)
	assert.Equal(t, "Sorry, I couldn't find the project details. Please try again.", reply)
}

func TestSendMessageFolderStructureInterpolatesSummary(t *testing.T) {
	uc, ctx := newChatUseCase(t, &entity.Idea{ID: 1, Summary: "Library Management System"})

	reply, err := uc.SendMessage(ctx, "a@x.com", 1, "show me the folder structure")
	require.NoError(t, err)
	assert.Contains(t, reply, "Library Management System")
	assert.Contains(t, reply, "project/")
}

func TestSendMessageEmptyMessageRejected(t *testing.T) {
	uc, ctx := newChatUseCase(t, &entity.Idea{ID: 1})

	_, err := uc.SendMessage(ctx, "a@x.com", 1, "")
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	history, err := uc.GetHistory(ctx, "a@x.com", 1)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestGetHistoryEmptyWithoutPriorMessages(t *testing.T) {
	uc, ctx := newChatUseCase(t)

	history, err := uc.GetHistory(ctx, "a@x.com", 123)
	require.NoError(t, err)
	assert.NotNil(t, history)
	assert.Empty(t, history)
}

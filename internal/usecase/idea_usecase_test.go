package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapterrepo "ideanest/internal/adapter/repository"
	"ideanest/internal/domain/entity"
	"ideanest/internal/infrastructure/docstore"
	"ideanest/pkg/errors"
)

func newIdeaUseCase(t *testing.T, ideas ...*entity.Idea) (*IdeaUseCase, context.Context) {
	t.Helper()

	store := docstore.New(t.TempDir())
	store.Init()
	store.WriteIdeas(&docstore.IdeasDocument{Ideas: ideas})

	return NewIdeaUseCase(adapterrepo.NewJSONDocIdeaRepository(store)), context.Background()
}

func TestToggleLikeParity(t *testing.T) {
	uc, ctx := newIdeaUseCase(t, &entity.Idea{ID: 1, Likes: 5, LikedBy: []string{"x@x.com", "y@x.com", "z@x.com", "w@x.com", "v@x.com"}})

	// An even number of toggles by the same user returns to the original
	// count; an odd number ends one higher.
	for i := 1; i <= 6; i++ {
		result, err := uc.ToggleLike(ctx, 1, "a@x.com")
		require.NoError(t, err)

		if i%2 == 1 {
			assert.True(t, result.Liked)
			assert.Equal(t, 6, result.Likes)
		} else {
			assert.False(t, result.Liked)
			assert.Equal(t, 5, result.Likes)
		}
	}
}

func TestToggleLikeNotFound(t *testing.T) {
	uc, ctx := newIdeaUseCase(t, &entity.Idea{ID: 1})

	_, err := uc.ToggleLike(ctx, 404, "a@x.com")
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestListAndGetIdeas(t *testing.T) {
	uc, ctx := newIdeaUseCase(t,
		&entity.Idea{ID: 1, Summary: "Chat App"},
		&entity.Idea{ID: 2, Summary: "Todo List"},
	)

	ideas, err := uc.ListIdeas(ctx)
	require.NoError(t, err)
	assert.Len(t, ideas, 2)

	idea, err := uc.GetIdea(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Chat App", idea.Summary)

	_, err = uc.GetIdea(ctx, 99)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

package repository

import (
	"context"

	"ideanest/internal/domain/entity"
	"ideanest/internal/domain/repository"
	"ideanest/internal/infrastructure/docstore"
	"ideanest/pkg/errors"
)

type jsonDocIdeaRepository struct {
	store *docstore.Store
}

func NewJSONDocIdeaRepository(store *docstore.Store) repository.IdeaRepository {
	return &jsonDocIdeaRepository{
		store: store,
	}
}

func (r *jsonDocIdeaRepository) List(ctx context.Context) ([]*entity.Idea, error) {
	r.store.Lock(docstore.KindIdeas)
	defer r.store.Unlock(docstore.KindIdeas)

	doc := r.store.ReadIdeas()
	return doc.Ideas, nil
}

func (r *jsonDocIdeaRepository) GetByID(ctx context.Context, id int) (*entity.Idea, error) {
	r.store.Lock(docstore.KindIdeas)
	defer r.store.Unlock(docstore.KindIdeas)

	doc := r.store.ReadIdeas()
	for _, idea := range doc.Ideas {
		if idea.ID == id {
			return idea, nil
		}
	}

	return nil, errors.NotFound("Idea", nil)
}

// ToggleLike performs the full read-modify-write cycle under the ideas
// document lock so concurrent toggles cannot drop each other's updates.
func (r *jsonDocIdeaRepository) ToggleLike(ctx context.Context, id int, email string) (bool, int, error) {
	r.store.Lock(docstore.KindIdeas)
	defer r.store.Unlock(docstore.KindIdeas)

	doc := r.store.ReadIdeas()

	var idea *entity.Idea
	for _, candidate := range doc.Ideas {
		if candidate.ID == id {
			idea = candidate
			break
		}
	}
	if idea == nil {
		return false, 0, errors.NotFound("Idea", nil)
	}

	// Self-heal records written before the like fields existed.
	if idea.LikedBy == nil {
		idea.LikedBy = []string{}
	}

	liked := false
	if idea.HasLiked(email) {
		remaining := make([]string, 0, len(idea.LikedBy))
		for _, liker := range idea.LikedBy {
			if liker != email {
				remaining = append(remaining, liker)
			}
		}
		idea.LikedBy = remaining
		idea.Likes--
		if idea.Likes < 0 {
			idea.Likes = 0
		}
	} else {
		idea.LikedBy = append(idea.LikedBy, email)
		idea.Likes++
		liked = true
	}

	r.store.WriteIdeas(doc)

	return liked, idea.Likes, nil
}

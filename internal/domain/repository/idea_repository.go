package repository

import (
	"context"

	"ideanest/internal/domain/entity"
)

type IdeaRepository interface {
	List(ctx context.Context) ([]*entity.Idea, error)
	GetByID(ctx context.Context, id int) (*entity.Idea, error)
	// ToggleLike flips the user's membership in the idea's liked_by set and
	// returns the new membership state and like count.
	ToggleLike(ctx context.Context, id int, email string) (bool, int, error)
}

package usecase

import (
	"context"

	"ideanest/internal/domain/entity"
	"ideanest/internal/domain/repository"
	"ideanest/pkg/logger"
)

type IdeaUseCase struct {
	ideaRepo repository.IdeaRepository
}

func NewIdeaUseCase(ideaRepo repository.IdeaRepository) *IdeaUseCase {
	return &IdeaUseCase{
		ideaRepo: ideaRepo,
	}
}

func (uc *IdeaUseCase) ListIdeas(ctx context.Context) ([]*entity.Idea, error) {
	return uc.ideaRepo.List(ctx)
}

func (uc *IdeaUseCase) GetIdea(ctx context.Context, id int) (*entity.Idea, error) {
	return uc.ideaRepo.GetByID(ctx, id)
}

type ToggleLikeResult struct {
	Liked bool `json:"liked"`
	Likes int  `json:"likes"`
}

// ToggleLike flips the user's like on an idea. Each call flips membership
// exactly once; the count never drops below zero.
func (uc *IdeaUseCase) ToggleLike(ctx context.Context, ideaID int, email string) (*ToggleLikeResult, error) {
	liked, likes, err := uc.ideaRepo.ToggleLike(ctx, ideaID, email)
	if err != nil {
		return nil, err
	}

	logger.Debug("User %s toggled like on idea %d: liked=%v likes=%d", email, ideaID, liked, likes)

	return &ToggleLikeResult{Liked: liked, Likes: likes}, nil
}

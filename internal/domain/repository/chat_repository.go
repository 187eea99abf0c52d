package repository

import (
	"context"

	"ideanest/internal/domain/entity"
)

type ChatRepository interface {
	AppendMessages(ctx context.Context, email string, ideaID int, messages ...entity.Message) error
	GetHistory(ctx context.Context, email string, ideaID int) ([]entity.Message, error)
}

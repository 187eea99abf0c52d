package usecase

import (
	"context"
	"encoding/json"
	"time"

	"ideanest/internal/domain/entity"
	"ideanest/internal/domain/repository"
	"ideanest/internal/domain/service"
	ws "ideanest/internal/infrastructure/websocket"
	"ideanest/pkg/errors"
	"ideanest/pkg/logger"
)

type ChatUseCase struct {
	chatRepo  repository.ChatRepository
	ideaRepo  repository.IdeaRepository
	assistant *service.AssistantService
	wsManager *ws.Manager
}

// NewChatUseCase wires the chat engine. wsManager may be nil; live push is
// best effort and optional.
func NewChatUseCase(
	chatRepo repository.ChatRepository,
	ideaRepo repository.IdeaRepository,
	assistant *service.AssistantService,
	wsManager *ws.Manager,
) *ChatUseCase {
	return &ChatUseCase{
		chatRepo:  chatRepo,
		ideaRepo:  ideaRepo,
		assistant: assistant,
		wsManager: wsManager,
	}
}

type assistantReplyEvent struct {
	Type    string         `json:"type"`
	IdeaID  int            `json:"idea_id"`
	Message entity.Message `json:"message"`
}

// SendMessage classifies the message, builds the canned reply and appends
// both sides of the exchange to the (user, idea) transcript. It always
// produces a reply: a code request is refused before the idea is even
// looked up, and an unknown idea yields an apology rather than an error.
func (uc *ChatUseCase) SendMessage(ctx context.Context, email string, ideaID int, message string) (string, error) {
	if message == "" {
		return "", errors.BadRequest("Message is required", nil)
	}

	intent := uc.assistant.Classify(message)

	var reply string
	if !uc.assistant.RequiresIdea(intent) {
		reply = uc.assistant.Respond(intent, nil)
	} else {
		idea, err := uc.ideaRepo.GetByID(ctx, ideaID)
		if err != nil {
			logger.Warn("Chat references unknown idea %d", ideaID)
			reply = uc.assistant.FallbackReply()
		} else {
			reply = uc.assistant.Respond(intent, idea)
		}
	}

	now := time.Now()
	userMessage := entity.Message{Role: entity.RoleUser, Message: message, Timestamp: now}
	assistantMessage := entity.Message{Role: entity.RoleAssistant, Message: reply, Timestamp: now}

	if err := uc.chatRepo.AppendMessages(ctx, email, ideaID, userMessage, assistantMessage); err != nil {
		return "", errors.Internal("Failed to record chat messages", err)
	}

	uc.pushReply(email, ideaID, assistantMessage)

	return reply, nil
}

// GetHistory returns the transcript in call order, empty when no exchange
// has happened yet. The idea id is deliberately not checked for existence.
func (uc *ChatUseCase) GetHistory(ctx context.Context, email string, ideaID int) ([]entity.Message, error) {
	return uc.chatRepo.GetHistory(ctx, email, ideaID)
}

func (uc *ChatUseCase) pushReply(email string, ideaID int, message entity.Message) {
	if uc.wsManager == nil {
		return
	}

	payload, err := json.Marshal(assistantReplyEvent{
		Type:    "assistant_reply",
		IdeaID:  ideaID,
		Message: message,
	})
	if err != nil {
		logger.Error("Failed to encode assistant reply event: %v", err)
		return
	}

	uc.wsManager.SendToUser(email, payload)
}

package service

import (
	"context"
	"fmt"

	"portfolio_api/internal/model"
	"portfolio_api/internal/repository"
)

// MessageService handles contact form submissions
type MessageService interface {
	Submit(ctx context.Context, req model.CreateMessageRequest) (*model.Message, error)
	List(ctx context.Context) ([]model.Message, error)
}

type messageService struct {
	repo repository.MessageRepository
}

// NewMessageService creates a new MessageService
func NewMessageService(repo repository.MessageRepository) MessageService {
	return &messageService{repo: repo}
}

// Submit validates and stores a contact message. A *model.ValidationError
// lists every rejected field.
func (s *messageService) Submit(ctx context.Context, req model.CreateMessageRequest) (*model.Message, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	msg := req.ToMessage()
	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to store message: %w", err)
	}
	return msg, nil
}

// List returns every message, newest first
func (s *messageService) List(ctx context.Context) ([]model.Message, error) {
	messages, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return messages, nil
}

package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/firewatch-nepal/portal/internal/core/domain"
	"github.com/firewatch-nepal/portal/internal/core/ports"
)

// ContactService handles the contact form and the admin message inbox.
type ContactService struct {
	messages ports.MessageGateway
	lock     ports.SubmissionLock
	log      zerolog.Logger
}

func NewContactService(messages ports.MessageGateway, lock ports.SubmissionLock, log zerolog.Logger) *ContactService {
	return &ContactService{messages: messages, lock: lock, log: log}
}

func (s *ContactService) Submit(ctx context.Context, clientID string, msg domain.ContactMessage) (*domain.ContactMessage, error) {
	var fields []string
	for name, v := range map[string]string{"name": msg.Name, "email": msg.Email, "subject": msg.Subject, "message": msg.Message} {
		if strings.TrimSpace(v) == "" {
			fields = append(fields, name+" is required")
		}
	}
	if len(fields) > 0 {
		sort.Strings(fields)
		return nil, domain.NewValidationError(fields...)
	}

	var saved *domain.ContactMessage
	err := withSubmissionLock(ctx, s.lock, s.log, clientID, OpContact, func(ctx context.Context) error {
		var err error
		saved, err = s.messages.SubmitContact(ctx, msg)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("submit contact: %w", err)
	}
	return saved, nil
}

func (s *ContactService) Inbox(ctx context.Context, token string) ([]domain.ContactMessage, error) {
	msgs, err := s.messages.ListMessages(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return msgs, nil
}

package backend

import (
	"context"
	"net/http"

	"github.com/firewatch-nepal/portal/internal/core/domain"
)

func (cl *Client) ListMessages(ctx context.Context, token string) ([]domain.ContactMessage, error) {
	var msgs []domain.ContactMessage
	if err := cl.do(ctx, call{op: "messages.list", method: http.MethodGet, path: "/messages", token: token}, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

// SubmitContact is not idempotent.
func (cl *Client) SubmitContact(ctx context.Context, msg domain.ContactMessage) (*domain.ContactMessage, error) {
	msg.ID = ""
	var saved domain.ContactMessage
	if err := cl.do(ctx, call{op: "messages.contact", method: http.MethodPost, path: "/contact", json: msg}, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

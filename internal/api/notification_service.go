package api

import (
	"context"

	"github.com/datsan-vn/datsan-go/internal/domain"
)

// NotificationService wraps the inbox endpoints
type NotificationService struct {
	client *Client
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(client *Client) *NotificationService {
	return &NotificationService{client: client}
}

// List fetches the current user's notifications, newest first
func (s *NotificationService) List(ctx context.Context) ([]domain.Notification, error) {
	var out []domain.Notification
	if err := s.client.get(ctx, "/notifications", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MarkRead confirms a single optimistic read-flag mutation
func (s *NotificationService) MarkRead(ctx context.Context, id string) error {
	return s.client.put(ctx, "/notifications/"+id+"/read", nil, nil)
}

// MarkAllRead confirms a mark-all mutation
func (s *NotificationService) MarkAllRead(ctx context.Context) error {
	return s.client.put(ctx, "/notifications/read-all", nil, nil)
}

// Delete removes a notification
func (s *NotificationService) Delete(ctx context.Context, id string) error {
	return s.client.delete(ctx, "/notifications/"+id)
}

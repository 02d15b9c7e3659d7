package notification

import "context"

type NotificationRepository interface {
	// Create persists a notification
	Create(ctx context.Context, n Notification) (Notification, error)

	// List retrieves notifications, newest first, optionally unread only
	List(ctx context.Context, unreadOnly bool) ([]Notification, error)

	// MarkRead flags a notification as read
	MarkRead(ctx context.Context, id string) error
}

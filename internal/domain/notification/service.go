package notification

import "context"

type NotificationService interface {
	// Notify records an admin notification. Failures are logged, not
	// propagated: notifications never fail the triggering operation.
	Notify(ctx context.Context, typ NotificationType, employeeID string, message string)

	// List retrieves notifications for the admin panel
	List(ctx context.Context, unreadOnly bool) ([]NotificationResponse, error)

	// MarkRead flags one notification as read
	MarkRead(ctx context.Context, id string) error
}

package notification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kalendra-hr/hrms-backend-go/internal/domain/notification"
)

type NotificationServiceImpl struct {
	notification.NotificationRepository
	logger *slog.Logger
}

func NewNotificationService(notificationRepo notification.NotificationRepository, logger *slog.Logger) notification.NotificationService {
	return &NotificationServiceImpl{
		NotificationRepository: notificationRepo,
		logger:                 logger,
	}
}

// Notify implements notification.NotificationService. A failed insert is
// logged and swallowed so the triggering operation still succeeds.
func (n *NotificationServiceImpl) Notify(ctx context.Context, typ notification.NotificationType, employeeID string, message string) {
	_, err := n.NotificationRepository.Create(ctx, notification.Notification{
		Type:       typ,
		EmployeeID: employeeID,
		Message:    message,
	})
	if err != nil {
		n.logger.ErrorContext(ctx, "failed to record notification",
			slog.String("type", string(typ)),
			slog.String("employee_id", employeeID),
			slog.Any("error", err),
		)
	}
}

// List implements notification.NotificationService.
func (n *NotificationServiceImpl) List(ctx context.Context, unreadOnly bool) ([]notification.NotificationResponse, error) {
	rows, err := n.NotificationRepository.List(ctx, unreadOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	resp := make([]notification.NotificationResponse, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, notification.NotificationResponse{
			ID:         row.ID,
			Type:       string(row.Type),
			EmployeeID: row.EmployeeID,
			Message:    row.Message,
			Read:       row.Read,
			CreatedAt:  row.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	return resp, nil
}

// MarkRead implements notification.NotificationService.
func (n *NotificationServiceImpl) MarkRead(ctx context.Context, id string) error {
	if err := n.NotificationRepository.MarkRead(ctx, id); err != nil {
		return err
	}
	return nil
}

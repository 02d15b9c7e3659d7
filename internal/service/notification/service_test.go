package notification

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kalendra-hr/hrms-backend-go/internal/domain/notification"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNotificationRepo struct {
	mu        sync.Mutex
	rows      []notification.Notification
	createErr error
}

func (r *fakeNotificationRepo) Create(ctx context.Context, n notification.Notification) (notification.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.createErr != nil {
		return notification.Notification{}, r.createErr
	}
	n.ID = uuid.NewString()
	n.CreatedAt = time.Now()
	r.rows = append(r.rows, n)
	return n, nil
}

func (r *fakeNotificationRepo) List(ctx context.Context, unreadOnly bool) ([]notification.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []notification.Notification
	for i := len(r.rows) - 1; i >= 0; i-- {
		if unreadOnly && r.rows[i].Read {
			continue
		}
		out = append(out, r.rows[i])
	}
	return out, nil
}

func (r *fakeNotificationRepo) MarkRead(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.rows {
		if r.rows[i].ID == id {
			r.rows[i].Read = true
			return nil
		}
	}
	return notification.ErrNotificationNotFound
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNotify_PersistsNotification(t *testing.T) {
	ctx := context.Background()
	repo := &fakeNotificationRepo{}
	svc := NewNotificationService(repo, discardLogger())

	svc.Notify(ctx, notification.TypeOvertimePending, "emp-001", "1.50 overtime hours pending approval")

	rows, err := svc.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, string(notification.TypeOvertimePending), rows[0].Type)
	assert.Equal(t, "emp-001", rows[0].EmployeeID)
	assert.False(t, rows[0].Read)
}

func TestNotify_SwallowsRepositoryError(t *testing.T) {
	ctx := context.Background()
	repo := &fakeNotificationRepo{createErr: errors.New("connection reset")}
	svc := NewNotificationService(repo, discardLogger())

	// Must not panic or surface the error to the caller.
	svc.Notify(ctx, notification.TypeLeaveRequest, "emp-001", "leave requested")

	rows, err := svc.List(ctx, false)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestList_UnreadOnly(t *testing.T) {
	ctx := context.Background()
	repo := &fakeNotificationRepo{}
	svc := NewNotificationService(repo, discardLogger())

	svc.Notify(ctx, notification.TypeLeaveRequest, "emp-001", "first")
	svc.Notify(ctx, notification.TypeLeaveRequest, "emp-002", "second")

	all, err := svc.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, all, 2)

	require.NoError(t, svc.MarkRead(ctx, all[0].ID))

	unread, err := svc.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, unread, 1)
	assert.Equal(t, "first", unread[0].Message)
}

func TestMarkRead_NotFound(t *testing.T) {
	ctx := context.Background()
	svc := NewNotificationService(&fakeNotificationRepo{}, discardLogger())

	err := svc.MarkRead(ctx, uuid.NewString())
	assert.ErrorIs(t, err, notification.ErrNotificationNotFound)
}

package attendance

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/kalendra-hr/hrms-backend-go/internal/domain/attendance"
	"github.com/kalendra-hr/hrms-backend-go/internal/domain/notification"
)

// fakeClock is a settable time source for simulating elapsed work hours.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(now time.Time) *fakeClock {
	return &fakeClock{now: now}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// fakeAttendanceRepo is an in-memory attendance.AttendanceRepository. Create
// enforces the one-open-session invariant under a lock, matching the
// guarantee the PostgreSQL implementation provides.
type fakeAttendanceRepo struct {
	mu      sync.Mutex
	records map[string]attendance.Attendance
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]attendance.Attendance)}
}

func (r *fakeAttendanceRepo) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.records {
		if existing.EmployeeID == att.EmployeeID && existing.CheckOutTime == nil {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
	}

	att.ID = uuid.NewString()
	att.CreatedAt = time.Now()
	att.UpdatedAt = att.CreatedAt
	r.records[att.ID] = att
	return att, nil
}

func (r *fakeAttendanceRepo) Update(ctx context.Context, att attendance.Attendance) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[att.ID]; !ok {
		return attendance.ErrAttendanceNotFound
	}
	att.UpdatedAt = time.Now()
	r.records[att.ID] = att
	return nil
}

func (r *fakeAttendanceRepo) FindOpenSession(ctx context.Context, employeeID string) (*attendance.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, att := range r.records {
		if att.EmployeeID == employeeID && att.CheckOutTime == nil {
			found := att
			return &found, nil
		}
	}
	return nil, nil
}

func (r *fakeAttendanceRepo) ListByEmployeeBetween(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []attendance.Attendance
	for _, att := range r.records {
		if att.EmployeeID != employeeID {
			continue
		}
		if !dateWithin(att.Date, start, end) {
			continue
		}
		result = append(result, att)
	}
	sortSessions(result)
	return result, nil
}

func (r *fakeAttendanceRepo) ListBetween(ctx context.Context, start, end time.Time) ([]attendance.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []attendance.Attendance
	for _, att := range r.records {
		if !dateWithin(att.Date, start, end) {
			continue
		}
		result = append(result, att)
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].EmployeeID != result[j].EmployeeID {
			return result[i].EmployeeID < result[j].EmployeeID
		}
		return sessionLess(result[i], result[j])
	})
	return result, nil
}

// dateWithin compares by calendar day. Record dates and range bounds may
// carry different zones; a SQL date column matches them regardless.
func dateWithin(d, start, end time.Time) bool {
	key := d.Format("2006-01-02")
	return key >= start.Format("2006-01-02") && key <= end.Format("2006-01-02")
}

func sortSessions(s []attendance.Attendance) {
	sort.SliceStable(s, func(i, j int) bool { return sessionLess(s[i], s[j]) })
}

func sessionLess(a, b attendance.Attendance) bool {
	if !a.Date.Equal(b.Date) {
		return a.Date.Before(b.Date)
	}
	if a.CheckInTime == nil || b.CheckInTime == nil {
		return b.CheckInTime != nil
	}
	return a.CheckInTime.Before(*b.CheckInTime)
}

// fakeNotifier records notifications for assertions.
type fakeNotifier struct {
	mu       sync.Mutex
	notified []notification.Notification
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{}
}

func (n *fakeNotifier) Notify(ctx context.Context, typ notification.NotificationType, employeeID string, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notified = append(n.notified, notification.Notification{
		Type:       typ,
		EmployeeID: employeeID,
		Message:    message,
	})
}

func (n *fakeNotifier) List(ctx context.Context, unreadOnly bool) ([]notification.NotificationResponse, error) {
	return nil, nil
}

func (n *fakeNotifier) MarkRead(ctx context.Context, id string) error {
	return nil
}

func (n *fakeNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.notified)
}

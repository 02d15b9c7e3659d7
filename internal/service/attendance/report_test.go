package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/kalendra-hr/hrms-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedClosedSession inserts a completed session directly into the fake repo.
func seedClosedSession(t *testing.T, repo *fakeAttendanceRepo, employeeID string, checkIn time.Time, worked time.Duration, overtime float64) attendance.Attendance {
	t.Helper()
	ctx := context.Background()

	att, err := repo.Create(ctx, attendance.Attendance{
		EmployeeID:     employeeID,
		Date:           attendance.DateOf(checkIn),
		CheckInTime:    &checkIn,
		Status:         attendance.StatusPresent,
		LunchDuration:  LunchHours,
		OvertimeStatus: attendance.OvertimeNA,
	})
	require.NoError(t, err)

	checkOut := checkIn.Add(worked)
	att.CheckOutTime = &checkOut
	att.TotalHours = round2(regularHours(checkIn, checkOut) + overtime)
	att.OvertimeHours = overtime
	if overtime > 0 {
		att.OvertimeStatus = attendance.OvertimePending
	}
	require.NoError(t, repo.Update(ctx, att))
	return att
}

func TestGetMonthlyAttendance_EmptyMonth(t *testing.T) {
	ctx := context.Background()
	// Mid-April, reporting on a fully elapsed March.
	svc, _, _, _ := newTestService(time.Date(2025, 4, 15, 12, 0, 0, 0, time.Local))

	resp, err := svc.GetMonthlyAttendance(ctx, attendance.MonthlyAttendanceRequest{
		EmployeeID: testEmployeeID,
		Month:      "2025-03",
	})
	require.NoError(t, err)

	assert.Equal(t, "2025-03", resp.Summary.Month)
	assert.Equal(t, 21, resp.Summary.TotalWorkingDays)
	assert.Equal(t, 0, resp.Summary.PresentDays)
	assert.Equal(t, 0.0, resp.Summary.TotalExtraHours)
	require.Len(t, resp.DailyRecords, 31)

	// March 1st 2025 is a Saturday, the 3rd a Monday.
	assert.Equal(t, attendance.StatusWeekend, resp.DailyRecords[0].Status)
	assert.Equal(t, attendance.StatusAbsent, resp.DailyRecords[2].Status)
}

func TestGetMonthlyAttendance_CountsPresentDays(t *testing.T) {
	ctx := context.Background()
	svc, repo, _, _ := newTestService(time.Date(2025, 4, 15, 12, 0, 0, 0, time.Local))

	// Full day Monday the 10th, short day Tuesday the 11th.
	seedClosedSession(t, repo, testEmployeeID, time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local), 8*time.Hour, 0)
	seedClosedSession(t, repo, testEmployeeID, time.Date(2025, 3, 11, 9, 0, 0, 0, time.Local), 90*time.Minute, 0)

	resp, err := svc.GetMonthlyAttendance(ctx, attendance.MonthlyAttendanceRequest{
		EmployeeID: testEmployeeID,
		Month:      "2025-03",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Summary.PresentDays)

	short := resp.DailyRecords[10] // March 11th
	assert.Equal(t, "2025-03-11", short.Date)
	assert.Equal(t, attendance.StatusAbsent, short.Status)
	assert.Equal(t, 1, short.Sessions)
	assert.InDelta(t, 1.5, short.WorkHours, 1e-9)
}

func TestGetMonthlyAttendance_MultipleSessionsOneDay(t *testing.T) {
	ctx := context.Background()
	svc, repo, _, _ := newTestService(time.Date(2025, 4, 15, 12, 0, 0, 0, time.Local))

	seedClosedSession(t, repo, testEmployeeID, time.Date(2025, 3, 12, 9, 0, 0, 0, time.Local), 3*time.Hour, 0)
	seedClosedSession(t, repo, testEmployeeID, time.Date(2025, 3, 12, 13, 0, 0, 0, time.Local), 4*time.Hour, 0)

	resp, err := svc.GetMonthlyAttendance(ctx, attendance.MonthlyAttendanceRequest{
		EmployeeID: testEmployeeID,
		Month:      "2025-03",
	})
	require.NoError(t, err)

	day := resp.DailyRecords[11] // March 12th
	assert.Equal(t, attendance.StatusPresent, day.Status)
	assert.Equal(t, 2, day.Sessions)
	assert.InDelta(t, 7.0, day.WorkHours, 1e-9)
	require.NotNil(t, day.CheckIn)
	require.NotNil(t, day.CheckOut)
	assert.Equal(t, "2025-03-12 09:00:00", *day.CheckIn)
	assert.Equal(t, "2025-03-12 17:00:00", *day.CheckOut)
}

func TestGetMonthlyAttendance_SumsExtraHours(t *testing.T) {
	ctx := context.Background()
	svc, repo, _, _ := newTestService(time.Date(2025, 4, 15, 12, 0, 0, 0, time.Local))

	seedClosedSession(t, repo, testEmployeeID, time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local), 10*time.Hour, 1.5)
	seedClosedSession(t, repo, testEmployeeID, time.Date(2025, 3, 11, 9, 0, 0, 0, time.Local), 9*time.Hour, 0.75)

	resp, err := svc.GetMonthlyAttendance(ctx, attendance.MonthlyAttendanceRequest{
		EmployeeID: testEmployeeID,
		Month:      "2025-03",
	})
	require.NoError(t, err)

	assert.InDelta(t, 2.25, resp.Summary.TotalExtraHours, 1e-9)
	assert.InDelta(t, 1.5, resp.DailyRecords[9].ExtraHours, 1e-9)
	assert.InDelta(t, 0.75, resp.DailyRecords[10].ExtraHours, 1e-9)
}

func TestGetMonthlyAttendance_FutureMonth(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTestService(time.Date(2025, 3, 10, 12, 0, 0, 0, time.Local))

	resp, err := svc.GetMonthlyAttendance(ctx, attendance.MonthlyAttendanceRequest{
		EmployeeID: testEmployeeID,
		Month:      "2025-06",
	})
	require.NoError(t, err)

	assert.Equal(t, "2025-06", resp.Summary.Month)
	assert.Zero(t, resp.Summary.TotalWorkingDays)
	assert.Zero(t, resp.Summary.PresentDays)
	assert.Empty(t, resp.DailyRecords)
}

func TestGetMonthlyAttendance_CurrentMonthClampedToToday(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTestService(time.Date(2025, 3, 10, 17, 0, 0, 0, time.Local))

	resp, err := svc.GetMonthlyAttendance(ctx, attendance.MonthlyAttendanceRequest{
		EmployeeID: testEmployeeID,
		Month:      "2025-03",
	})
	require.NoError(t, err)

	// Days after today are not reported, so they never show up as absent.
	require.Len(t, resp.DailyRecords, 10)
	assert.Equal(t, "2025-03-10", resp.DailyRecords[9].Date)
}

func TestGetMonthlyAttendance_MalformedMonthFallsBackToCurrent(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTestService(time.Date(2025, 3, 10, 12, 0, 0, 0, time.Local))

	resp, err := svc.GetMonthlyAttendance(ctx, attendance.MonthlyAttendanceRequest{
		EmployeeID: testEmployeeID,
		Month:      "not-a-month",
	})
	require.NoError(t, err)

	assert.Equal(t, "2025-03", resp.Summary.Month)
}

func TestGetMonthlyAttendance_OpenSessionMarkedActive(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)
	svc, _, clk, _ := newTestService(start)

	_, err := svc.CheckIn(ctx, testEmployeeID)
	require.NoError(t, err)

	clk.Advance(1 * time.Hour)
	resp, err := svc.GetMonthlyAttendance(ctx, attendance.MonthlyAttendanceRequest{
		EmployeeID: testEmployeeID,
		Month:      "2025-03",
	})
	require.NoError(t, err)

	day := resp.DailyRecords[9] // March 10th
	assert.True(t, day.Active)
	assert.Equal(t, attendance.StatusPresent, day.Status)
	assert.Zero(t, day.WorkHours)
	// An open session below the presence floor is still pending, not absent.
	assert.Equal(t, 0, resp.Summary.PresentDays)
}

func TestGetMonthlyAttendance_RepeatedCallsReturnSameReport(t *testing.T) {
	ctx := context.Background()
	svc, repo, _, _ := newTestService(time.Date(2025, 4, 15, 12, 0, 0, 0, time.Local))

	seedClosedSession(t, repo, testEmployeeID, time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local), 8*time.Hour, 0)
	seedClosedSession(t, repo, testEmployeeID, time.Date(2025, 3, 12, 9, 0, 0, 0, time.Local), 3*time.Hour, 0)
	seedClosedSession(t, repo, testEmployeeID, time.Date(2025, 3, 12, 13, 0, 0, 0, time.Local), 10*time.Hour, 1.5)

	req := attendance.MonthlyAttendanceRequest{
		EmployeeID: testEmployeeID,
		Month:      "2025-03",
	}

	first, err := svc.GetMonthlyAttendance(ctx, req)
	require.NoError(t, err)
	second, err := svc.GetMonthlyAttendance(ctx, req)
	require.NoError(t, err)

	// Reading the report must not depend on iteration order anywhere.
	assert.Equal(t, first, second)
}

func TestGetMonthlyAttendance_RequiresEmployeeID(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTestService(time.Date(2025, 3, 10, 12, 0, 0, 0, time.Local))

	_, err := svc.GetMonthlyAttendance(ctx, attendance.MonthlyAttendanceRequest{Month: "2025-03"})
	assert.Error(t, err)
}

func TestGetWeeklyAttendance_GroupsByEmployee(t *testing.T) {
	ctx := context.Background()
	svc, repo, _, _ := newTestService(time.Date(2025, 3, 17, 12, 0, 0, 0, time.Local))

	alice := "emp-alice"
	bob := "emp-bob"
	seedClosedSession(t, repo, alice, time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local), 8*time.Hour, 0)
	seedClosedSession(t, repo, alice, time.Date(2025, 3, 11, 9, 0, 0, 0, time.Local), 8*time.Hour, 0)
	seedClosedSession(t, repo, bob, time.Date(2025, 3, 10, 10, 0, 0, 0, time.Local), 4*time.Hour, 0)

	resp, err := svc.GetWeeklyAttendance(ctx, attendance.WeeklyAttendanceRequest{
		StartDate: "2025-03-10",
		EndDate:   "2025-03-16",
	})
	require.NoError(t, err)

	assert.Equal(t, "2025-03-10", resp.StartDate)
	assert.Equal(t, "2025-03-16", resp.EndDate)
	require.Len(t, resp.Employees, 2)

	assert.Equal(t, alice, resp.Employees[0].EmployeeID)
	assert.Len(t, resp.Employees[0].Sessions, 2)
	assert.Equal(t, bob, resp.Employees[1].EmployeeID)
	assert.Len(t, resp.Employees[1].Sessions, 1)
}

func TestGetWeeklyAttendance_ExcludesSessionsOutsideRange(t *testing.T) {
	ctx := context.Background()
	svc, repo, _, _ := newTestService(time.Date(2025, 3, 24, 12, 0, 0, 0, time.Local))

	seedClosedSession(t, repo, testEmployeeID, time.Date(2025, 3, 7, 9, 0, 0, 0, time.Local), 8*time.Hour, 0)
	seedClosedSession(t, repo, testEmployeeID, time.Date(2025, 3, 12, 9, 0, 0, 0, time.Local), 8*time.Hour, 0)
	seedClosedSession(t, repo, testEmployeeID, time.Date(2025, 3, 18, 9, 0, 0, 0, time.Local), 8*time.Hour, 0)

	resp, err := svc.GetWeeklyAttendance(ctx, attendance.WeeklyAttendanceRequest{
		StartDate: "2025-03-10",
		EndDate:   "2025-03-16",
	})
	require.NoError(t, err)

	require.Len(t, resp.Employees, 1)
	require.Len(t, resp.Employees[0].Sessions, 1)
	assert.Equal(t, "2025-03-12", resp.Employees[0].Sessions[0].Date)
}

func TestGetWeeklyAttendance_IncludesBoundaryDayAcrossZones(t *testing.T) {
	ctx := context.Background()
	svc, repo, _, _ := newTestService(time.Date(2025, 3, 17, 12, 0, 0, 0, time.Local))

	// A record stamped in a zone east of UTC still belongs to the range's
	// first calendar day, even though its midnight precedes UTC midnight.
	jakarta := time.FixedZone("UTC+7", 7*60*60)
	seedClosedSession(t, repo, testEmployeeID, time.Date(2025, 3, 10, 9, 0, 0, 0, jakarta), 8*time.Hour, 0)

	resp, err := svc.GetWeeklyAttendance(ctx, attendance.WeeklyAttendanceRequest{
		StartDate: "2025-03-10",
		EndDate:   "2025-03-16",
	})
	require.NoError(t, err)

	require.Len(t, resp.Employees, 1)
	require.Len(t, resp.Employees[0].Sessions, 1)
	assert.Equal(t, "2025-03-10", resp.Employees[0].Sessions[0].Date)
}

func TestGetWeeklyAttendance_InvalidRange(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTestService(time.Date(2025, 3, 17, 12, 0, 0, 0, time.Local))

	_, err := svc.GetWeeklyAttendance(ctx, attendance.WeeklyAttendanceRequest{
		StartDate: "2025-03-16",
		EndDate:   "2025-03-10",
	})
	assert.Error(t, err)

	_, err = svc.GetWeeklyAttendance(ctx, attendance.WeeklyAttendanceRequest{
		StartDate: "16/03/2025",
		EndDate:   "2025-03-20",
	})
	assert.Error(t, err)
}

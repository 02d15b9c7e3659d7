package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/kalendra-hr/hrms-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendanceService struct {
	checkInResp attendance.AttendanceResponse
	checkInErr  error
}

func (s *fakeAttendanceService) CheckIn(ctx context.Context, employeeID string) (attendance.AttendanceResponse, error) {
	return s.checkInResp, s.checkInErr
}

func (s *fakeAttendanceService) CheckOut(ctx context.Context, employeeID string) (attendance.AttendanceResponse, error) {
	return attendance.AttendanceResponse{}, attendance.ErrNoActiveSession
}

func (s *fakeAttendanceService) RequestExtraTime(ctx context.Context, employeeID string) (attendance.ExtraWindowResponse, error) {
	return attendance.ExtraWindowResponse{}, nil
}

func (s *fakeAttendanceService) GetTodayStatus(ctx context.Context, employeeID string) (attendance.TodayStatusResponse, error) {
	return attendance.TodayStatusResponse{Date: "2025-03-10"}, nil
}

func (s *fakeAttendanceService) GetMonthlyAttendance(ctx context.Context, req attendance.MonthlyAttendanceRequest) (attendance.MonthlyAttendanceResponse, error) {
	return attendance.MonthlyAttendanceResponse{}, nil
}

func (s *fakeAttendanceService) GetWeeklyAttendance(ctx context.Context, req attendance.WeeklyAttendanceRequest) (attendance.WeeklyAttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.WeeklyAttendanceResponse{}, err
	}
	return attendance.WeeklyAttendanceResponse{StartDate: req.StartDate, EndDate: req.EndDate}, nil
}

var testTokenAuth = jwtauth.New("HS256", []byte("handler-test-secret"), nil)

// withAccessToken injects verified access token claims the way the
// jwtauth.Verifier middleware would.
func withAccessToken(r *http.Request, claims map[string]interface{}) *http.Request {
	claims["type"] = "access"
	token, _, err := testTokenAuth.Encode(claims)
	if err != nil {
		panic(err)
	}
	return r.WithContext(jwtauth.NewContext(r.Context(), token, nil))
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestCheckIn_ReturnsCreated(t *testing.T) {
	svc := &fakeAttendanceService{
		checkInResp: attendance.AttendanceResponse{
			ID:         "att-001",
			EmployeeID: "emp-001",
			Status:     attendance.StatusPresent,
		},
	}
	handler := NewAttendanceHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance/check-in", nil)
	req = withAccessToken(req, map[string]interface{}{"employee_id": "emp-001"})
	rec := httptest.NewRecorder()

	handler.CheckIn(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Check in successful", body["message"])
}

func TestCheckIn_ConflictWhenAlreadyCheckedIn(t *testing.T) {
	svc := &fakeAttendanceService{checkInErr: attendance.ErrAlreadyCheckedIn}
	handler := NewAttendanceHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance/check-in", nil)
	req = withAccessToken(req, map[string]interface{}{"employee_id": "emp-001"})
	rec := httptest.NewRecorder()

	handler.CheckIn(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
}

func TestCheckIn_NoEmployeeClaim(t *testing.T) {
	handler := NewAttendanceHandler(&fakeAttendanceService{})

	// Admin accounts without a linked employee record cannot check in.
	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance/check-in", nil)
	req = withAccessToken(req, map[string]interface{}{"is_admin": true})
	rec := httptest.NewRecorder()

	handler.CheckIn(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCheckOut_ConflictWithoutSession(t *testing.T) {
	handler := NewAttendanceHandler(&fakeAttendanceService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance/check-out", nil)
	req = withAccessToken(req, map[string]interface{}{"employee_id": "emp-001"})
	rec := httptest.NewRecorder()

	handler.CheckOut(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestWeeklyReport_ValidatesDateRange(t *testing.T) {
	handler := NewAttendanceHandler(&fakeAttendanceService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/attendance/weekly?start_date=2025-03-16&end_date=2025-03-10", nil)
	req = withAccessToken(req, map[string]interface{}{"employee_id": "emp-001", "is_admin": true})
	rec := httptest.NewRecorder()

	handler.WeeklyReport(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestWeeklyReport_Succeeds(t *testing.T) {
	handler := NewAttendanceHandler(&fakeAttendanceService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/attendance/weekly?start_date=2025-03-10&end_date=2025-03-16", nil)
	req = withAccessToken(req, map[string]interface{}{"employee_id": "emp-001", "is_admin": true})
	rec := httptest.NewRecorder()

	handler.WeeklyReport(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

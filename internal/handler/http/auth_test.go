package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kalendra-hr/hrms-backend-go/internal/domain/auth"
	"github.com/kalendra-hr/hrms-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuthService struct {
	loginResp auth.LoginResponse
	loginErr  error
}

func (s *fakeAuthService) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	return s.loginResp, s.loginErr
}

func (s *fakeAuthService) Refresh(ctx context.Context, refreshToken string) (auth.LoginResponse, error) {
	return s.loginResp, s.loginErr
}

func (s *fakeAuthService) Logout(ctx context.Context, refreshToken string) error {
	return s.loginErr
}

func newAuthHandlerUnderTest(svc *fakeAuthService) AuthHandler {
	return NewAuthHandler(svc, jwt.NewJWTService("handler-test-secret", "15m", "168h"))
}

func TestLogin_SetsRefreshCookie(t *testing.T) {
	handler := newAuthHandlerUnderTest(&fakeAuthService{
		loginResp: auth.LoginResponse{
			AccessToken:  "access-token",
			RefreshToken: "refresh-token",
			UserID:       "user-001",
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		strings.NewReader(`{"email":"jane@example.com","password":"s3cret-pass"}`))
	rec := httptest.NewRecorder()

	handler.Login(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "refresh_token", cookies[0].Name)
	assert.Equal(t, "refresh-token", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)

	// The refresh token must never leak into the JSON body.
	assert.NotContains(t, rec.Body.String(), "refresh-token")
}

func TestLogin_InvalidCredentials(t *testing.T) {
	handler := newAuthHandlerUnderTest(&fakeAuthService{loginErr: auth.ErrInvalidCredentials})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		strings.NewReader(`{"email":"jane@example.com","password":"wrong"}`))
	rec := httptest.NewRecorder()

	handler.Login(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Result().Cookies())
}

func TestLogin_MalformedBody(t *testing.T) {
	handler := newAuthHandlerUnderTest(&fakeAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{not json`))
	rec := httptest.NewRecorder()

	handler.Login(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRefresh_RequiresCookie(t *testing.T) {
	handler := newAuthHandlerUnderTest(&fakeAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", nil)
	rec := httptest.NewRecorder()

	handler.Refresh(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRefresh_RotatesCookie(t *testing.T) {
	handler := newAuthHandlerUnderTest(&fakeAuthService{
		loginResp: auth.LoginResponse{
			AccessToken:  "new-access",
			RefreshToken: "new-refresh",
			UserID:       "user-001",
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", nil)
	req.AddCookie(&http.Cookie{Name: "refresh_token", Value: "old-refresh"})
	rec := httptest.NewRecorder()

	handler.Refresh(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "new-refresh", cookies[0].Value)
}

func TestLogout_ExpiresCookie(t *testing.T) {
	handler := newAuthHandlerUnderTest(&fakeAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: "refresh_token", Value: "refresh-token"})
	rec := httptest.NewRecorder()

	handler.Logout(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
}

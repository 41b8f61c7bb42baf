package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffpay/staffpay-backend-go/internal/domain/advance"
	"github.com/staffpay/staffpay-backend-go/internal/domain/allowance"
	"github.com/staffpay/staffpay-backend-go/internal/domain/auth"
	"github.com/staffpay/staffpay-backend-go/internal/domain/user"
	"github.com/staffpay/staffpay-backend-go/internal/pkg/jwt"
)

type stubAuthService struct{}

func (stubAuthService) Login(_ context.Context, _ auth.LoginRequest) (auth.TokenResponse, error) {
	return auth.TokenResponse{}, auth.ErrInvalidCredentials
}

type stubUserService struct {
	deletedIDs []string
}

func (s *stubUserService) Register(_ context.Context, _ user.RegisterUserRequest) (user.UserResponse, error) {
	return user.UserResponse{}, nil
}

func (s *stubUserService) List(_ context.Context) ([]user.UserResponse, error) {
	return nil, nil
}

func (s *stubUserService) Delete(_ context.Context, id string) error {
	s.deletedIDs = append(s.deletedIDs, id)
	return nil
}

func (s *stubUserService) RaiseSalary(_ context.Context, _ user.RaiseSalaryRequest) error {
	return nil
}

func (s *stubUserService) FinancialDetails(_ context.Context, _ string) (user.FinancialDetailsResponse, error) {
	return user.FinancialDetailsResponse{}, nil
}

type stubAdvanceService struct{}

func (stubAdvanceService) Create(_ context.Context, _ advance.CreateAdvanceRequest) (advance.AdvanceResponse, error) {
	return advance.AdvanceResponse{}, nil
}

func (stubAdvanceService) Decide(_ context.Context, _ advance.DecideAdvanceRequest) (advance.AdvanceResponse, error) {
	return advance.AdvanceResponse{}, nil
}

func (stubAdvanceService) List(_ context.Context) ([]advance.AdvanceResponse, error) {
	return nil, nil
}

func (stubAdvanceService) ListByEmployee(_ context.Context, _ string) ([]advance.AdvanceResponse, error) {
	return nil, nil
}

type stubAllowanceService struct{}

func (stubAllowanceService) Grant(_ context.Context, _ allowance.GrantAllowanceRequest) (allowance.AllowanceResponse, error) {
	return allowance.AllowanceResponse{}, nil
}

func (stubAllowanceService) ListByEmployee(_ context.Context, _ string) ([]allowance.AllowanceResponse, error) {
	return nil, nil
}

type stubFileService struct{}

func (stubFileService) UploadProfilePhoto(_ context.Context, _ string, _ io.Reader, _ string) (string, error) {
	return "", nil
}

func (stubFileService) DeleteFile(_ context.Context, _ string) error {
	return nil
}

type routerFixture struct {
	router      http.Handler
	jwtService  jwt.Service
	userService *stubUserService
}

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()
	jwtService := jwt.NewJWTService("router-test-secret", "1h")
	userSvc := &stubUserService{}

	router := NewRouter(
		jwtService,
		NewAuthHandler(stubAuthService{}),
		NewUserHandler(userSvc, stubFileService{}),
		NewAdvanceHandler(stubAdvanceService{}),
		NewAllowanceHandler(stubAllowanceService{}),
		NewPaymentHandler(&stubPaymentService{}),
		"http://localhost:5173",
		"test",
		t.TempDir(),
	)

	return &routerFixture{
		router:      router,
		jwtService:  jwtService,
		userService: userSvc,
	}
}

func (f *routerFixture) do(t *testing.T, method, target string, role user.Role) *httptest.ResponseRecorder {
	t.Helper()
	token, _, err := f.jwtService.GenerateAccessToken("usr-1", "tester", role)
	require.NoError(t, err)

	req := httptest.NewRequest(method, target, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestRouter_DeleteUser_SuperAdminOnly(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(t, http.MethodDelete, "/api/v1/users/emp-1", user.RoleAdmin)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, f.userService.deletedIDs)

	rec = f.do(t, http.MethodDelete, "/api/v1/users/emp-1", user.RoleStaff)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, f.userService.deletedIDs)

	rec = f.do(t, http.MethodDelete, "/api/v1/users/emp-1", user.RoleSuperAdmin)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"emp-1"}, f.userService.deletedIDs)
}

func TestRouter_ListUsers_AdminAndSuperAdmin(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(t, http.MethodGet, "/api/v1/users/", user.RoleStaff)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/v1/users/", user.RoleAdmin)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/v1/users/", user.RoleSuperAdmin)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_Unauthenticated(t *testing.T) {
	f := newRouterFixture(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/users/emp-1", nil)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, f.userService.deletedIDs)
}

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"memberhub-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const testSecret = "test-admin-secret-0123456789"

// MockMembershipService
type MockMembershipService struct {
	mock.Mock
}

func (m *MockMembershipService) Apply(ctx context.Context, name, email string, company, reason *string) (*domain.MemberApplication, error) {
	args := m.Called(ctx, name, email, company, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MemberApplication), args.Error(1)
}
func (m *MockMembershipService) ListApplications(ctx context.Context) ([]domain.MemberApplication, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MemberApplication), args.Error(1)
}
func (m *MockMembershipService) UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) (*domain.MemberApplication, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MemberApplication), args.Error(1)
}
func (m *MockMembershipService) CompleteRegistration(ctx context.Context, token string, input domain.RegistrationInput) (*domain.Member, error) {
	args := m.Called(ctx, token, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}
func (m *MockMembershipService) SendRegistrationReminders(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockDashboardService
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) GetStats(ctx context.Context) (*domain.DashboardStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardStats), args.Error(1)
}

func newTestServer() (*MockMembershipService, *MockDashboardService, *httptest.Server) {
	membershipSvc := new(MockMembershipService)
	dashboardSvc := new(MockDashboardService)
	server := httptest.NewServer(NewRouter(membershipSvc, dashboardSvc, testSecret))
	return membershipSvc, dashboardSvc, server
}

func decodeResponse(t *testing.T, resp *http.Response) apiResponse {
	t.Helper()
	var body apiResponse
	err := json.NewDecoder(resp.Body).Decode(&body)
	assert.NoError(t, err)
	resp.Body.Close()
	return body
}

func TestApplyEndpoint(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		membershipSvc, _, server := newTestServer()
		defer server.Close()

		membershipSvc.On("Apply", mock.Anything, "Jane Doe", "jane@test.com", (*string)(nil), (*string)(nil)).
			Return(&domain.MemberApplication{ID: "app-1", Name: "Jane Doe", Email: "jane@test.com", Status: domain.ApplicationStatusPending}, nil).Once()

		resp, err := http.Post(server.URL+"/api/v1/members/apply", "application/json",
			strings.NewReader(`{"name":"Jane Doe","email":"jane@test.com"}`))
		assert.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		body := decodeResponse(t, resp)
		assert.True(t, body.Success)
		membershipSvc.AssertExpectations(t)
	})

	t.Run("MissingFields", func(t *testing.T) {
		membershipSvc, _, server := newTestServer()
		defer server.Close()

		resp, err := http.Post(server.URL+"/api/v1/members/apply", "application/json",
			strings.NewReader(`{"email":"jane@test.com"}`))
		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		body := decodeResponse(t, resp)
		assert.Equal(t, "INVALID_INPUT", body.Error.Code)
		membershipSvc.AssertNotCalled(t, "Apply", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		membershipSvc, _, server := newTestServer()
		defer server.Close()

		membershipSvc.On("Apply", mock.Anything, "Jane Doe", "jane@test.com", (*string)(nil), (*string)(nil)).
			Return(nil, domain.ErrDuplicateEmail).Once()

		resp, err := http.Post(server.URL+"/api/v1/members/apply", "application/json",
			strings.NewReader(`{"name":"Jane Doe","email":"jane@test.com"}`))
		assert.NoError(t, err)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)

		body := decodeResponse(t, resp)
		assert.Equal(t, "DUPLICATE_EMAIL", body.Error.Code)
	})
}

func TestAdminEndpointsRequireSecret(t *testing.T) {
	membershipSvc, dashboardSvc, server := newTestServer()
	defer server.Close()

	paths := []struct {
		method string
		path   string
	}{
		{"GET", "/api/v1/admin/applications"},
		{"PATCH", "/api/v1/admin/applications/app-1/APPROVED"},
		{"GET", "/api/v1/admin/dashboard"},
	}

	for _, p := range paths {
		t.Run(p.method+" "+p.path, func(t *testing.T) {
			req, err := http.NewRequest(p.method, server.URL+p.path, nil)
			assert.NoError(t, err)

			resp, err := http.DefaultClient.Do(req)
			assert.NoError(t, err)
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

			body := decodeResponse(t, resp)
			assert.Equal(t, "UNAUTHORIZED", body.Error.Code)
		})

		t.Run(p.method+" "+p.path+" wrong secret", func(t *testing.T) {
			req, err := http.NewRequest(p.method, server.URL+p.path, nil)
			assert.NoError(t, err)
			req.Header.Set(adminSecretHeader, "wrong-secret")

			resp, err := http.DefaultClient.Do(req)
			assert.NoError(t, err)
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
			resp.Body.Close()
		})
	}

	// No state was touched on any rejected request
	membershipSvc.AssertNotCalled(t, "ListApplications", mock.Anything)
	membershipSvc.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	dashboardSvc.AssertNotCalled(t, "GetStats", mock.Anything)
}

func TestListApplicationsEndpoint(t *testing.T) {
	membershipSvc, _, server := newTestServer()
	defer server.Close()

	apps := []domain.MemberApplication{
		{ID: "app-2", Name: "Bob", Email: "bob@test.com", Status: domain.ApplicationStatusPending},
		{ID: "app-1", Name: "Alice", Email: "alice@test.com", Status: domain.ApplicationStatusRejected},
	}
	membershipSvc.On("ListApplications", mock.Anything).Return(apps, nil).Once()

	req, _ := http.NewRequest("GET", server.URL+"/api/v1/admin/applications", nil)
	req.Header.Set(adminSecretHeader, testSecret)

	resp, err := http.DefaultClient.Do(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeResponse(t, resp)
	assert.True(t, body.Success)
	membershipSvc.AssertExpectations(t)
}

func TestUpdateStatusEndpoint(t *testing.T) {
	t.Run("Approved", func(t *testing.T) {
		membershipSvc, _, server := newTestServer()
		defer server.Close()

		token := "aabbccddeeff00112233445566778899"
		updated := &domain.MemberApplication{ID: "app-1", Status: domain.ApplicationStatusApproved, Token: &token}
		membershipSvc.On("UpdateStatus", mock.Anything, "app-1", domain.ApplicationStatusApproved).
			Return(updated, nil).Once()

		req, _ := http.NewRequest("PATCH", server.URL+"/api/v1/admin/applications/app-1/APPROVED", nil)
		req.Header.Set(adminSecretHeader, testSecret)

		resp, err := http.DefaultClient.Do(req)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()
		membershipSvc.AssertExpectations(t)
	})

	t.Run("InvalidDecision", func(t *testing.T) {
		membershipSvc, _, server := newTestServer()
		defer server.Close()

		membershipSvc.On("UpdateStatus", mock.Anything, "app-1", domain.ApplicationStatus("PENDING")).
			Return(nil, domain.ErrInvalidStatus).Once()

		req, _ := http.NewRequest("PATCH", server.URL+"/api/v1/admin/applications/app-1/PENDING", nil)
		req.Header.Set(adminSecretHeader, testSecret)

		resp, err := http.DefaultClient.Do(req)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		body := decodeResponse(t, resp)
		assert.Equal(t, "INVALID_INPUT", body.Error.Code)
	})

	t.Run("NotFound", func(t *testing.T) {
		membershipSvc, _, server := newTestServer()
		defer server.Close()

		membershipSvc.On("UpdateStatus", mock.Anything, "missing", domain.ApplicationStatusRejected).
			Return(nil, domain.ErrNotFound).Once()

		req, _ := http.NewRequest("PATCH", server.URL+"/api/v1/admin/applications/missing/REJECTED", nil)
		req.Header.Set(adminSecretHeader, testSecret)

		resp, err := http.DefaultClient.Do(req)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		resp.Body.Close()
	})
}

func TestCompleteRegistrationEndpoint(t *testing.T) {
	token := "aabbccddeeff00112233445566778899"

	t.Run("Created", func(t *testing.T) {
		membershipSvc, _, server := newTestServer()
		defer server.Close()

		phone := "555-0100"
		membershipSvc.On("CompleteRegistration", mock.Anything, token, domain.RegistrationInput{Phone: &phone}).
			Return(&domain.Member{ID: "member-1", Name: "Jane Doe", Email: "jane@test.com", Active: true}, nil).Once()

		resp, err := http.Post(server.URL+"/api/v1/members/register/"+token, "application/json",
			strings.NewReader(`{"phone":"555-0100"}`))
		assert.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
		membershipSvc.AssertExpectations(t)
	})

	t.Run("UnknownToken", func(t *testing.T) {
		membershipSvc, _, server := newTestServer()
		defer server.Close()

		membershipSvc.On("CompleteRegistration", mock.Anything, token, domain.RegistrationInput{}).
			Return(nil, domain.ErrNotFound).Once()

		resp, err := http.Post(server.URL+"/api/v1/members/register/"+token, "application/json",
			strings.NewReader(`{}`))
		assert.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		body := decodeResponse(t, resp)
		assert.Equal(t, "NOT_FOUND", body.Error.Code)
	})
}

func TestDashboardEndpoint(t *testing.T) {
	_, dashboardSvc, server := newTestServer()
	defer server.Close()

	dashboardSvc.On("GetStats", mock.Anything).
		Return(&domain.DashboardStats{TotalMembers: 3, TotalReferrals: 2, TotalThanks: 0}, nil).Once()

	req, _ := http.NewRequest("GET", server.URL+"/api/v1/admin/dashboard", nil)
	req.Header.Set(adminSecretHeader, testSecret)

	resp, err := http.DefaultClient.Do(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Success bool                  `json:"success"`
		Data    domain.DashboardStats `json:"data"`
	}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	resp.Body.Close()
	assert.Equal(t, int64(3), body.Data.TotalMembers)
	assert.Equal(t, int64(2), body.Data.TotalReferrals)
	assert.Equal(t, int64(0), body.Data.TotalThanks)
	dashboardSvc.AssertExpectations(t)
}

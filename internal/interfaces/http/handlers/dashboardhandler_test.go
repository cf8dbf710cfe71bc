package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dashboarddto "github.com/adagency-io/adagency/internal/application/dashboard/dto"
	"github.com/adagency-io/adagency/internal/interfaces/http/handlers/testutil"
)

type mockDashboardService struct {
	result *dashboarddto.StatsResponse
	err    error
}

func (m *mockDashboardService) Stats(ctx context.Context) (*dashboarddto.StatsResponse, error) {
	return m.result, m.err
}

func TestDashboardHandler_GetStats(t *testing.T) {
	svc := &mockDashboardService{result: &dashboarddto.StatsResponse{
		Advertisers:     3,
		Ads:             5,
		ActiveContracts: 2,
		TotalViews:      900,
	}}
	handler := NewDashboardHandler(svc, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/api/dashboard/stats", nil)
	handler.GetStats(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"advertisers":3,"ads":5,"active_contracts":2,"total_views":900}`, w.Body.String())
}

func TestDashboardHandler_GetStats_Error(t *testing.T) {
	handler := NewDashboardHandler(&mockDashboardService{err: assert.AnError}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/api/dashboard/stats", nil)
	handler.GetStats(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name       string
		pingErr    error
		wantStatus int
		wantDB     string
	}{
		{"database up", nil, http.StatusOK, "connected"},
		{"database down", assert.AnError, http.StatusServiceUnavailable, "disconnected"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHealthHandler(func(ctx context.Context) error { return tt.pingErr }, testutil.NewMockLogger())

			c, w := testutil.NewTestContext(http.MethodGet, "/api/health", nil)
			handler.Health(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			var body HealthResponse
			require.NoError(t, testutil.ParseResponse(w, &body))
			assert.Equal(t, tt.wantDB, body.Database)
			assert.False(t, body.Time.IsZero())
		})
	}
}

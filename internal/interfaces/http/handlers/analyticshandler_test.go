package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	analyticsdto "github.com/adagency-io/adagency/internal/application/analytics/dto"
	"github.com/adagency-io/adagency/internal/interfaces/http/handlers/testutil"
)

type mockAnalyticsService struct {
	createFn func(ctx context.Context, cmd analyticsdto.AnalyticsCommand) (*analyticsdto.AnalyticsResponse, error)
}

func (m *mockAnalyticsService) List(ctx context.Context) ([]*analyticsdto.AnalyticsResponse, error) {
	return nil, nil
}

func (m *mockAnalyticsService) Get(ctx context.Context, id uint) (*analyticsdto.AnalyticsResponse, error) {
	return &analyticsdto.AnalyticsResponse{ID: id}, nil
}

func (m *mockAnalyticsService) Create(ctx context.Context, cmd analyticsdto.AnalyticsCommand) (*analyticsdto.AnalyticsResponse, error) {
	return m.createFn(ctx, cmd)
}

func (m *mockAnalyticsService) Update(ctx context.Context, id uint, cmd analyticsdto.AnalyticsCommand) (*analyticsdto.AnalyticsResponse, error) {
	return &analyticsdto.AnalyticsResponse{ID: id}, nil
}

func (m *mockAnalyticsService) Delete(ctx context.Context, id uint) (*analyticsdto.AnalyticsResponse, error) {
	return &analyticsdto.AnalyticsResponse{ID: id}, nil
}

func TestAnalyticsHandler_Create(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		wantStatus   int
		wantMeasured *time.Time
	}{
		{
			name:       "without measurement date",
			body:       `{"adId":1,"viewers":0,"engagement":0.5,"rating":8}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:         "with measurement date",
			body:         `{"adId":1,"viewers":100,"engagement":0.25,"rating":7.5,"measuredAt":"2024-02-01"}`,
			wantStatus:   http.StatusCreated,
			wantMeasured: func() *time.Time { d := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC); return &d }(),
		},
		{
			name:       "engagement above one",
			body:       `{"adId":1,"viewers":1,"engagement":1.5,"rating":7}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "rating above ten",
			body:       `{"adId":1,"viewers":1,"engagement":0.1,"rating":11}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "negative viewers",
			body:       `{"adId":1,"viewers":-1,"engagement":0.1,"rating":1}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "viewers as text",
			body:       `{"adId":1,"viewers":"many","engagement":0.1,"rating":1}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got analyticsdto.AnalyticsCommand
			svc := &mockAnalyticsService{
				createFn: func(ctx context.Context, cmd analyticsdto.AnalyticsCommand) (*analyticsdto.AnalyticsResponse, error) {
					got = cmd
					return &analyticsdto.AnalyticsResponse{ID: 1}, nil
				},
			}
			handler := NewAnalyticsHandler(svc, &mockCounters{}, testutil.NewMockLogger())

			c, w := testutil.NewTestContext(http.MethodPost, "/api/analytics", tt.body)
			handler.CreateAnalytics(c)

			require.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			if tt.wantStatus == http.StatusCreated {
				assert.Equal(t, tt.wantMeasured, got.MeasuredAt)
			}
		})
	}
}

func TestAnalyticsHandler_TotalViews(t *testing.T) {
	tests := []struct {
		name  string
		total int64
		want  string
	}{
		{"empty table", 0, `{"total":0}`},
		{"sum", 12345, `{"total":12345}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewAnalyticsHandler(&mockAnalyticsService{}, &mockCounters{count: tt.total}, testutil.NewMockLogger())

			c, w := testutil.NewTestContext(http.MethodGet, "/api/analytics/total-views", nil)
			handler.TotalViews(c)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, tt.want, w.Body.String())
		})
	}
}

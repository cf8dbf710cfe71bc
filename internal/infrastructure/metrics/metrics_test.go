package metrics

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestRecordDBQuery(t *testing.T) {
	tests := []struct {
		name      string
		operation string
		table     string
		err       error
		wantLabel string
	}{
		{
			name:      "successful query",
			operation: "query",
			table:     "advertisers",
		},
		{
			name:      "plain error",
			operation: "create",
			table:     "ads",
			err:       errors.New("connection refused"),
			wantLabel: ErrorTypeOther,
		},
		{
			name:      "long error",
			operation: "delete",
			table:     "contracts",
			err:       errors.New(strings.Repeat("x", 80)),
			wantLabel: ErrorTypeOther,
		},
		{
			name:      "localized foreign key error",
			operation: "create",
			table:     "ads",
			err:       errors.New(`xОШИБКА: INSERT или UPDATE в таблице "ads" нарушает ограничение внешнего ключа (SQLSTATE 23503)`),
			wantLabel: ErrorTypeForeignKey,
		},
		{
			name:      "non-ascii error cut mid-rune",
			operation: "update",
			table:     "agents",
			err:       errors.New("xОШИБКА: значение не умещается в тип character varying(255)"),
			wantLabel: ErrorTypeOther,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var before float64
			if tt.err != nil {
				before = testutil.ToFloat64(DBQueryErrors.WithLabelValues(tt.operation, tt.table, tt.wantLabel))
			}

			assert.NotPanics(t, func() {
				RecordDBQuery(tt.operation, tt.table, 5*time.Millisecond, tt.err)
			})

			if tt.err != nil {
				got := testutil.ToFloat64(DBQueryErrors.WithLabelValues(tt.operation, tt.table, tt.wantLabel))
				assert.Equal(t, before+1, got)
			}
		})
	}
}

func TestErrorType(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"mysql foreign key", errors.New("Error 1452 (23000): Cannot add or update a child row: a foreign key constraint fails"), ErrorTypeForeignKey},
		{"sqlite foreign key", errors.New("FOREIGN KEY constraint failed"), ErrorTypeForeignKey},
		{"record not found", fmt.Errorf("find: %w", gorm.ErrRecordNotFound), ErrorTypeNotFound},
		{"canceled", fmt.Errorf("query: %w", context.Canceled), ErrorTypeCanceled},
		{"deadline", context.DeadlineExceeded, ErrorTypeTimeout},
		{"other", errors.New("ОШИБКА: отношение \"ads\" не существует"), ErrorTypeOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ErrorType(tt.err))
		})
	}
}

func TestRecordDBQuery_EmptyTable(t *testing.T) {
	before := testutil.ToFloat64(DBQueryErrors.WithLabelValues("raw", "unknown", ErrorTypeOther))
	RecordDBQuery("raw", "", time.Millisecond, errors.New("boom"))
	assert.Equal(t, before+1, testutil.ToFloat64(DBQueryErrors.WithLabelValues("raw", "unknown", ErrorTypeOther)))
}

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/ads", "200"))
	RecordAPIRequest("GET", "/api/ads", "200", 20*time.Millisecond)
	RecordAPIRequest("GET", "/api/ads", "200", 30*time.Millisecond)
	assert.Equal(t, before+2, testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/ads", "200")))
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)
	TrackActiveRequest(true)
	assert.Equal(t, before+1, testutil.ToFloat64(APIActiveRequests))
	TrackActiveRequest(false)
	assert.Equal(t, before, testutil.ToFloat64(APIActiveRequests))
}

func TestRegisterGormCallbacks(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	require.NoError(t, RegisterGormCallbacks(db))

	type widget struct {
		ID   uint
		Name string
	}
	require.NoError(t, db.AutoMigrate(&widget{}))

	before := testutil.ToFloat64(DBQueryErrors.WithLabelValues("raw", "unknown", ErrorTypeOther))
	require.NoError(t, db.Create(&widget{Name: "a"}).Error)
	var got []widget
	require.NoError(t, db.Find(&got).Error)
	assert.Len(t, got, 1)

	_ = db.Exec("SELECT * FROM missing").Error
	assert.Equal(t, before+1, testutil.ToFloat64(DBQueryErrors.WithLabelValues("raw", "unknown", ErrorTypeOther)))
}

func TestMetricsLint(t *testing.T) {
	problems, err := testutil.GatherAndLint(prometheus.DefaultGatherer,
		"api_requests_total", "api_request_duration_seconds", "db_query_duration_seconds", "db_query_errors_total")
	require.NoError(t, err)
	assert.Empty(t, problems)
}

package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/adagency-io/adagency/internal/shared/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestErrorResponseWithError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   ErrorBody
	}{
		{
			name:       "app error keeps its code",
			err:        apperrors.NewConflictError("advertiser is in use", "1 ads"),
			wantStatus: http.StatusConflict,
			wantBody:   ErrorBody{Error: "advertiser is in use", Type: "conflict", Details: "1 ads"},
		},
		{
			name:       "plain error is hidden",
			err:        errors.New("dial tcp 10.0.0.5:3306: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   ErrorBody{Error: "Internal server error occurred", Type: "internal_error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			ErrorResponseWithError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			var body ErrorBody
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantBody, body)
		})
	}
}

func TestListResponse_NilIsEmptyArray(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var items []string
	ListResponse(c, items)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestParseIDParam(t *testing.T) {
	tests := []struct {
		raw     string
		want    uint
		wantErr bool
	}{
		{"42", 42, false},
		{"0", 0, true},
		{"-1", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Params = gin.Params{{Key: "id", Value: tt.raw}}

			got, err := ParseIDParam(c, "id", "ad")
			if tt.wantErr {
				assert.True(t, apperrors.IsValidationError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

type sampleRequest struct {
	Name   string   `json:"name" validate:"required,max=5"`
	Email  string   `json:"email" validate:"required,email"`
	Rate   *float64 `json:"rate" validate:"required,gte=0,lte=100"`
	Signed string   `json:"signed" validate:"required,datetime=2006-01-02"`
}

func TestValidateStruct(t *testing.T) {
	rate := 150.0
	err := ValidateStruct(sampleRequest{Name: "toolong", Email: "nope", Rate: &rate, Signed: "01.02.2024"})

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "Validation failed", appErr.Message)
	assert.Contains(t, appErr.Details, "name must be at most 5 characters long")
	assert.Contains(t, appErr.Details, "email must be a valid email address")
	assert.Contains(t, appErr.Details, "rate must be less than or equal to 100")
	assert.Contains(t, appErr.Details, "signed must be a date in YYYY-MM-DD format")

	ok := 0.0
	assert.NoError(t, ValidateStruct(sampleRequest{Name: "Acme", Email: "a@b.co", Rate: &ok, Signed: "2024-02-01"}))
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate(" 2024-03-15 ")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), got)
	assert.Equal(t, "2024-03-15", FormatDate(got))

	_, err = ParseDate("15.03.2024")
	assert.Error(t, err)
}

func TestMask(t *testing.T) {
	assert.Equal(t, "s***@acme.example", MaskEmail("sales@acme.example"))
	assert.Equal(t, "***", MaskEmail("invalid"))
	assert.Equal(t, "***4567", MaskPhone("+7 999 123-4567"))
}

func TestBindError(t *testing.T) {
	type adBody struct {
		AdvertiserID uint     `json:"advertiserId"`
		Cost         *float64 `json:"cost"`
		Info         string   `json:"info"`
		Tags         []string `json:"tags"`
	}

	tests := []struct {
		name string
		body string
		want string
	}{
		{"string for integer", `{"advertiserId":"abc"}`, "advertiserId must be an integer"},
		{"string for number", `{"cost":"ten"}`, "cost must be a number"},
		{"number for string", `{"info":42}`, "info must be a string"},
		{"object for array", `{"tags":{}}`, "tags must be an array"},
		{"array body", `[1,2]`, "request body must be an object"},
		{"truncated json", `{"info":`, "request body is not valid JSON"},
		{"garbage", `{info}`, "request body is not valid JSON"},
		{"empty body", ``, "request body is empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var dst adBody
			decodeErr := json.NewDecoder(strings.NewReader(tt.body)).Decode(&dst)
			require.Error(t, decodeErr)

			appErr := apperrors.GetAppError(BindError(decodeErr))
			require.NotNil(t, appErr)
			assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
			assert.Equal(t, tt.want, appErr.Details)
			assert.NotContains(t, appErr.Details, "Go struct")
		})
	}
}

func TestBindError_UnknownError(t *testing.T) {
	appErr := apperrors.GetAppError(BindError(errors.New("unexpected reader failure")))
	require.NotNil(t, appErr)
	assert.Equal(t, "request body could not be decoded", appErr.Details)
}

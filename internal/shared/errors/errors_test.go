package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		wantType ErrorType
		wantCode int
	}{
		{"validation", NewValidationError("bad"), ErrorTypeValidation, http.StatusBadRequest},
		{"bad request", NewBadRequestError("bad"), ErrorTypeBadRequest, http.StatusBadRequest},
		{"not found", NewNotFoundError("missing"), ErrorTypeNotFound, http.StatusNotFound},
		{"conflict", NewConflictError("in use"), ErrorTypeConflict, http.StatusConflict},
		{"internal", NewInternalError("boom"), ErrorTypeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantType, tt.err.Type)
			assert.Equal(t, tt.wantCode, tt.err.Code)
			assert.Empty(t, tt.err.Details)
		})
	}
}

func TestAppError_ErrorString(t *testing.T) {
	assert.Equal(t, "not_found: advertiser not found", NewNotFoundError("advertiser not found").Error())
	assert.Equal(t,
		"conflict: advertiser is in use (2 ads)",
		NewConflictError("advertiser is in use", "2 ads").Error(),
	)
}

func TestGetAppError_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("service: %w", NewConflictError("in use"))

	assert.True(t, IsAppError(wrapped))
	assert.True(t, IsConflictError(wrapped))
	assert.False(t, IsNotFoundError(wrapped))
	assert.False(t, IsValidationError(wrapped))
	assert.Nil(t, GetAppError(stderrors.New("plain")))
}

func TestIsForeignKeyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"mysql", stderrors.New("Error 1452 (23000): Cannot add or update a child row: a foreign key constraint fails"), true},
		{"postgres", stderrors.New(`ERROR: insert or update on table "ads" violates foreign key constraint "fk_ads_advertiser" (SQLSTATE 23503)`), true},
		{"sqlite", stderrors.New("FOREIGN KEY constraint failed"), true},
		{"other", stderrors.New("connection refused"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsForeignKeyError(tt.err))
		})
	}
}

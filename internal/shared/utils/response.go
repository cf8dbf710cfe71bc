package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adagency-io/adagency/internal/shared/constants"
	"github.com/adagency-io/adagency/internal/shared/errors"
)

// ErrorBody is the JSON body of every failed request.
type ErrorBody struct {
	Error   string `json:"error"`
	Type    string `json:"type"`
	Details string `json:"details,omitempty"`
}

// DeletedResponse is returned by every delete endpoint.
type DeletedResponse struct {
	Message string `json:"message"`
	Deleted any    `json:"deleted"`
}

// CountResponse is returned by the count endpoints.
type CountResponse struct {
	Count int64 `json:"count"`
}

// TotalResponse is returned by the sum endpoints.
type TotalResponse struct {
	Total int64 `json:"total"`
}

// SuccessResponse writes data as-is with the given status code.
func SuccessResponse(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, data)
}

// OKResponse writes data with status 200.
func OKResponse(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// ListResponse writes a JSON array; nil slices are written as [].
func ListResponse[T any](c *gin.Context, items []T) {
	if items == nil {
		items = []T{}
	}
	c.JSON(http.StatusOK, items)
}

// CreatedResponse writes the created resource with status 201.
func CreatedResponse(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// DeleteResponse writes the deleted resource with a confirmation message.
func DeleteResponse(c *gin.Context, message string, deleted any) {
	c.JSON(http.StatusOK, DeletedResponse{
		Message: message,
		Deleted: deleted,
	})
}

// ErrorResponse sends an error response with custom status code and message
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorBody{
		Error: message,
		Type:  "error",
	})
}

// ErrorResponseWithError sends an error response based on error type
func ErrorResponseWithError(c *gin.Context, err error) {
	if appErr := errors.GetAppError(err); appErr != nil {
		c.JSON(appErr.Code, ErrorBody{
			Error:   appErr.Message,
			Type:    string(appErr.Type),
			Details: appErr.Details,
		})
		return
	}

	// Non-AppError details are never exposed to the client.
	c.JSON(http.StatusInternalServerError, ErrorBody{
		Error: constants.ErrMsgInternalServerError,
		Type:  string(errors.ErrorTypeInternal),
	})
}

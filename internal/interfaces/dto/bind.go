// Package dto holds the HTTP request bodies and their conversion into
// application commands.
package dto

import (
	"github.com/gin-gonic/gin"

	"github.com/adagency-io/adagency/internal/shared/utils"
)

// aliaser is implemented by requests that accept alternate field names.
type aliaser interface {
	applyAliases()
}

// plainTexter is implemented by requests whose free-text fields are stored
// as plain text. Markup is stripped before validation.
type plainTexter interface {
	stripMarkup()
}

// Bind decodes the JSON body into req and validates it. Decoding failures
// (malformed JSON, wrong field types) are reported as validation errors.
func Bind(c *gin.Context, req any) error {
	if err := c.ShouldBindJSON(req); err != nil {
		return utils.BindError(err)
	}
	if a, ok := req.(aliaser); ok {
		a.applyAliases()
	}
	if p, ok := req.(plainTexter); ok {
		p.stripMarkup()
	}
	return utils.ValidateStruct(req)
}

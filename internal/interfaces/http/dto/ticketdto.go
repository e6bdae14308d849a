// Package dto defines the HTTP request shapes and their mapping to
// application commands.
package dto

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"aster/internal/shared/errors"
)

type CreateTicketRequest struct {
	Title    string `json:"title" validate:"required,max=200"`
	Category string `json:"category" validate:"omitempty,max=50"`
	Comment  string `json:"comment" validate:"required,max=10000"`
}

type ReplyTicketRequest struct {
	Comment string `json:"comment" validate:"required,max=10000"`
}

// ParseTicketID reads the :id path parameter.
func ParseTicketID(c *gin.Context) (uint, error) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid ticket ID")
	}
	return uint(id), nil
}

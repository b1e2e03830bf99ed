package v1

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/wishwell/wishwell-api/internal/api/middleware"
)

var errMissingUserID = errors.New("user id missing from request context")

// getUserIDFromContext reads the id the JWT middleware stored.
func getUserIDFromContext(ctx *gin.Context) (uint, error) {
	value, exists := ctx.Get(middleware.ContextKeyUserID)
	if !exists {
		return 0, errMissingUserID
	}

	userID, ok := value.(uint)
	if !ok {
		return 0, errMissingUserID
	}

	return userID, nil
}

// parseIDParam parses a positive integer path parameter.
func parseIDParam(ctx *gin.Context, name string) (uint, error) {
	raw := ctx.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New(name + " must be a positive integer")
	}

	return uint(id), nil
}

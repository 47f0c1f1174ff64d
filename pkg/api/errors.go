package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fleetworks/conductor/pkg/services"
)

// errorResponse is the envelope every non-2xx body uses.
type errorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

// respondServiceError maps service-layer errors to HTTP responses.
func (s *Server) respondServiceError(c *gin.Context, err error) {
	var validErr *services.ValidationError
	switch {
	case errors.As(err, &validErr):
		c.JSON(http.StatusBadRequest, errorResponse{Error: "validation failed", Detail: validErr.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, errorResponse{Error: "resource not found"})
	case errors.Is(err, services.ErrInvalidTransition):
		c.JSON(http.StatusConflict, errorResponse{Error: "invalid status transition", Detail: err.Error()})
	case errors.Is(err, services.ErrNotClaimable):
		c.JSON(http.StatusConflict, errorResponse{Error: "ticket is not claimable"})
	case errors.Is(err, services.ErrAlreadyExists):
		c.JSON(http.StatusConflict, errorResponse{Error: "resource already exists"})
	case errors.Is(err, services.ErrDependencyCycle):
		c.JSON(http.StatusConflict, errorResponse{Error: "dependency would create a cycle"})
	default:
		s.logger.Error("Unexpected service error",
			"path", c.Request.URL.Path, "error", err)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

// respondBindError reports a request that failed JSON or query binding.
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request", Detail: err.Error()})
}

// pathID parses the :id path parameter. On failure it writes the 400 itself
// and returns false.
func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid id", Detail: c.Param("id")})
		return 0, false
	}
	return id, true
}

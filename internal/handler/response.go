package handler

import (
	"errors"
	"net/http"

	"portfolio_api/internal/middleware"
	"portfolio_api/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/rs/zerolog/log"
)

func init() {
	// Request bodies bind into fixed structs; extra fields are a client error.
	binding.EnableDecoderDisallowUnknownFields = true
}

// bindJSON decodes the body into req, answering 400 on failure.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: " + err.Error()})
		return false
	}
	return true
}

// respondError answers validation failures with every rejected field and
// hides anything else behind a generic 500 carrying msg.
func respondError(c *gin.Context, err error, msg string) {
	var vErr *model.ValidationError
	if errors.As(err, &vErr) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "errors": vErr.Fields})
		return
	}

	log.Error().
		Err(err).
		Str("request_id", c.GetString(middleware.RequestIDKey)).
		Str("path", c.Request.URL.Path).
		Msg(msg)
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{"message": msg})
}

package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"github.com/nhle/todo-api/internal/apperr"
)

// errorResponse is the uniform error body shared by every endpoint.
type errorResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Path      string    `json:"path"`
}

// writeError maps a service error onto its status code and the uniform
// error body. Unclassified errors become opaque 500s and are logged.
func writeError(c echo.Context, logger *log.Logger, err error) error {
	var (
		status  int
		title   string
		message = err.Error()
	)

	switch apperr.KindOf(err) {
	case apperr.KindNotFound:
		status, title = http.StatusNotFound, "Not Found"
	case apperr.KindInvalidArgument:
		status, title = http.StatusBadRequest, "Bad Request"
	case apperr.KindValidation:
		status, title = http.StatusBadRequest, "Validation Error"
	case apperr.KindConflict:
		status, title = http.StatusConflict, "Conflict"
	default:
		status, title = http.StatusInternalServerError, "Internal Server Error"
		message = "An unexpected error occurred"
		logger.WithError(err).WithField("path", c.Request().URL.Path).Error("request failed")
	}

	return c.JSON(status, errorResponse{
		Timestamp: time.Now(),
		Status:    status,
		Error:     title,
		Message:   message,
		Path:      c.Request().URL.Path,
	})
}

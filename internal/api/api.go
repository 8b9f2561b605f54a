// Package api wires the resource services onto HTTP. Handlers stay thin:
// bind parameters, call the service, map the result (or the error taxonomy)
// onto status codes and the uniform error body.
package api

import (
	"io"
	"net/http"
	"strconv"

	"github.com/bytedance/sonic"
	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"github.com/nhle/todo-api/internal/apperr"
	"github.com/nhle/todo-api/internal/service"
)

const requestBodyMaxSize = 1 << 20 // 1 MiB

// Register wires up all API routes on the provided Echo instance.
func Register(e *echo.Echo, svcs *service.Services, logger *log.Logger) {
	e.GET("/healthz", healthz())

	registerTodoRoutes(e, svcs.Todos, logger)
	registerCategoryRoutes(e, svcs.Categories, logger)
	registerTagRoutes(e, svcs.Tags, logger)
	registerMemoRoutes(e, svcs.Memos, logger)
	registerReminderRoutes(e, svcs.Reminders, logger)
}

func healthz() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}
}

// decodeBody reads a size-capped JSON request body into v.
func decodeBody(c echo.Context, v interface{}) error {
	lr := io.LimitReader(c.Request().Body, requestBodyMaxSize)
	dec := sonic.ConfigStd.NewDecoder(lr)
	if err := dec.Decode(v); err != nil {
		return apperr.InvalidArgument("Invalid request body")
	}
	return nil
}

// queryInt parses an optional non-negative integer query parameter.
func queryInt(c echo.Context, name string, fallback int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, apperr.InvalidArgument("Invalid %s parameter: %s", name, raw)
	}
	return n, nil
}

package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"github.com/nhle/todo-api/internal/service"
)

func registerReminderRoutes(e *echo.Echo, svc *service.ReminderService, logger *log.Logger) {
	e.GET("/api/reminders/:id", getReminder(svc, logger))
	e.GET("/api/reminders/todo/:todoId", listRemindersByTodo(svc, logger))
	e.POST("/api/reminders", createReminder(svc, logger))
	e.PUT("/api/reminders/:id", updateReminder(svc, logger))
	e.DELETE("/api/reminders/:id", deleteReminder(svc, logger))
}

func getReminder(svc *service.ReminderService, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		reminder, err := svc.Get(c.Request().Context(), c.Param("id"))
		if err != nil {
			return writeError(c, logger, err)
		}
		return c.JSON(http.StatusOK, reminder)
	}
}

func listRemindersByTodo(svc *service.ReminderService, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		reminders, err := svc.ListByTodo(c.Request().Context(), c.Param("todoId"))
		if err != nil {
			return writeError(c, logger, err)
		}
		return c.JSON(http.StatusOK, reminders)
	}
}

func createReminder(svc *service.ReminderService, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req service.CreateReminderRequest
		if err := decodeBody(c, &req); err != nil {
			return writeError(c, logger, err)
		}
		if err := req.Validate(); err != nil {
			return writeError(c, logger, err)
		}

		reminder, err := svc.Create(c.Request().Context(), req)
		if err != nil {
			return writeError(c, logger, err)
		}
		return c.JSON(http.StatusCreated, reminder)
	}
}

func updateReminder(svc *service.ReminderService, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req service.UpdateReminderRequest
		if err := decodeBody(c, &req); err != nil {
			return writeError(c, logger, err)
		}

		reminder, err := svc.Update(c.Request().Context(), c.Param("id"), req)
		if err != nil {
			return writeError(c, logger, err)
		}
		return c.JSON(http.StatusOK, reminder)
	}
}

func deleteReminder(svc *service.ReminderService, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := svc.Delete(c.Request().Context(), c.Param("id")); err != nil {
			return writeError(c, logger, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

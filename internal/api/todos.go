package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"github.com/nhle/todo-api/internal/service"
)

func registerTodoRoutes(e *echo.Echo, svc *service.TodoService, logger *log.Logger) {
	e.GET("/api/todos", listTodos(svc, logger))
	e.GET("/api/todos/:id", getTodo(svc, logger))
	e.POST("/api/todos", createTodo(svc, logger))
	e.PUT("/api/todos/:id", updateTodo(svc, logger))
	e.DELETE("/api/todos/:id", deleteTodo(svc, logger))
}

func listTodos(svc *service.TodoService, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		page, err := queryInt(c, "page", 0)
		if err != nil {
			return writeError(c, logger, err)
		}
		size, err := queryInt(c, "size", 10)
		if err != nil {
			return writeError(c, logger, err)
		}

		result, err := svc.List(c.Request().Context(), c.QueryParam("status"), page, size)
		if err != nil {
			return writeError(c, logger, err)
		}
		return c.JSON(http.StatusOK, result)
	}
}

func getTodo(svc *service.TodoService, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		todo, err := svc.Get(c.Request().Context(), c.Param("id"))
		if err != nil {
			return writeError(c, logger, err)
		}
		return c.JSON(http.StatusOK, todo)
	}
}

func createTodo(svc *service.TodoService, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req service.CreateTodoRequest
		if err := decodeBody(c, &req); err != nil {
			return writeError(c, logger, err)
		}
		if err := req.Validate(); err != nil {
			return writeError(c, logger, err)
		}

		todo, err := svc.Create(c.Request().Context(), req)
		if err != nil {
			return writeError(c, logger, err)
		}
		return c.JSON(http.StatusCreated, todo)
	}
}

func updateTodo(svc *service.TodoService, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req service.UpdateTodoRequest
		if err := decodeBody(c, &req); err != nil {
			return writeError(c, logger, err)
		}

		todo, err := svc.Update(c.Request().Context(), c.Param("id"), req)
		if err != nil {
			return writeError(c, logger, err)
		}
		return c.JSON(http.StatusOK, todo)
	}
}

func deleteTodo(svc *service.TodoService, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := svc.Delete(c.Request().Context(), c.Param("id")); err != nil {
			return writeError(c, logger, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

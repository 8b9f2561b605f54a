package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"github.com/nhle/todo-api/internal/service"
)

func registerMemoRoutes(e *echo.Echo, svc *service.MemoService, logger *log.Logger) {
	e.GET("/api/memos/:id", getMemo(svc, logger))
	e.POST("/api/memos", createMemo(svc, logger))
	e.PUT("/api/memos/:id", updateMemo(svc, logger))
	e.DELETE("/api/memos/:id", deleteMemo(svc, logger))
}

func getMemo(svc *service.MemoService, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		memo, err := svc.Get(c.Request().Context(), c.Param("id"))
		if err != nil {
			return writeError(c, logger, err)
		}
		return c.JSON(http.StatusOK, memo)
	}
}

func createMemo(svc *service.MemoService, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req service.CreateMemoRequest
		if err := decodeBody(c, &req); err != nil {
			return writeError(c, logger, err)
		}

		memo, err := svc.Create(c.Request().Context(), req)
		if err != nil {
			return writeError(c, logger, err)
		}
		return c.JSON(http.StatusCreated, memo)
	}
}

func updateMemo(svc *service.MemoService, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req service.UpdateMemoRequest
		if err := decodeBody(c, &req); err != nil {
			return writeError(c, logger, err)
		}

		memo, err := svc.Update(c.Request().Context(), c.Param("id"), req)
		if err != nil {
			return writeError(c, logger, err)
		}
		return c.JSON(http.StatusOK, memo)
	}
}

func deleteMemo(svc *service.MemoService, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := svc.Delete(c.Request().Context(), c.Param("id")); err != nil {
			return writeError(c, logger, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

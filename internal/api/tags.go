package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"github.com/nhle/todo-api/internal/service"
)

func registerTagRoutes(e *echo.Echo, svc *service.TagService, logger *log.Logger) {
	e.GET("/api/tags", listTags(svc, logger))
	e.GET("/api/tags/:id", getTag(svc, logger))
	e.POST("/api/tags", createTag(svc, logger))
	e.PUT("/api/tags/:id", updateTag(svc, logger))
	e.DELETE("/api/tags/:id", deleteTag(svc, logger))
}

func listTags(svc *service.TagService, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		tags, err := svc.List(c.Request().Context())
		if err != nil {
			return writeError(c, logger, err)
		}
		return c.JSON(http.StatusOK, tags)
	}
}

func getTag(svc *service.TagService, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		tag, err := svc.Get(c.Request().Context(), c.Param("id"))
		if err != nil {
			return writeError(c, logger, err)
		}
		return c.JSON(http.StatusOK, tag)
	}
}

func createTag(svc *service.TagService, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req service.CreateTagRequest
		if err := decodeBody(c, &req); err != nil {
			return writeError(c, logger, err)
		}
		if err := req.Validate(); err != nil {
			return writeError(c, logger, err)
		}

		tag, err := svc.Create(c.Request().Context(), req)
		if err != nil {
			return writeError(c, logger, err)
		}
		return c.JSON(http.StatusCreated, tag)
	}
}

func updateTag(svc *service.TagService, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req service.UpdateTagRequest
		if err := decodeBody(c, &req); err != nil {
			return writeError(c, logger, err)
		}

		tag, err := svc.Update(c.Request().Context(), c.Param("id"), req)
		if err != nil {
			return writeError(c, logger, err)
		}
		return c.JSON(http.StatusOK, tag)
	}
}

func deleteTag(svc *service.TagService, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := svc.Delete(c.Request().Context(), c.Param("id")); err != nil {
			return writeError(c, logger, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

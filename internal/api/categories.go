package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"github.com/nhle/todo-api/internal/service"
)

func registerCategoryRoutes(e *echo.Echo, svc *service.CategoryService, logger *log.Logger) {
	e.GET("/api/categories", listCategories(svc, logger))
	e.GET("/api/categories/:id", getCategory(svc, logger))
	e.POST("/api/categories", createCategory(svc, logger))
	e.PUT("/api/categories/:id", updateCategory(svc, logger))
	e.DELETE("/api/categories/:id", deleteCategory(svc, logger))
}

func listCategories(svc *service.CategoryService, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		categories, err := svc.List(c.Request().Context())
		if err != nil {
			return writeError(c, logger, err)
		}
		return c.JSON(http.StatusOK, categories)
	}
}

func getCategory(svc *service.CategoryService, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		category, err := svc.Get(c.Request().Context(), c.Param("id"))
		if err != nil {
			return writeError(c, logger, err)
		}
		return c.JSON(http.StatusOK, category)
	}
}

func createCategory(svc *service.CategoryService, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req service.CreateCategoryRequest
		if err := decodeBody(c, &req); err != nil {
			return writeError(c, logger, err)
		}
		if err := req.Validate(); err != nil {
			return writeError(c, logger, err)
		}

		category, err := svc.Create(c.Request().Context(), req)
		if err != nil {
			return writeError(c, logger, err)
		}
		return c.JSON(http.StatusCreated, category)
	}
}

func updateCategory(svc *service.CategoryService, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req service.UpdateCategoryRequest
		if err := decodeBody(c, &req); err != nil {
			return writeError(c, logger, err)
		}

		category, err := svc.Update(c.Request().Context(), c.Param("id"), req)
		if err != nil {
			return writeError(c, logger, err)
		}
		return c.JSON(http.StatusOK, category)
	}
}

func deleteCategory(svc *service.CategoryService, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := svc.Delete(c.Request().Context(), c.Param("id")); err != nil {
			return writeError(c, logger, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

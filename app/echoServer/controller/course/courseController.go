package course

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"coursecat/app/echoServer/authx"
	"coursecat/app/echoServer/validation"
	"coursecat/model"
	coursesvc "coursecat/service/course"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc coursesvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// GET /api/courses
func (h *Controller) List(c echo.Context) error {
	rows, err := h.Svc.List(c.Request().Context())
	if err != nil {
		h.Log.Error("course list error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	if len(rows) == 0 {
		return c.JSON(http.StatusOK, echo.Map{"message": "The course database is currently empty"})
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /api/courses/:id
func (h *Controller) Detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "no course matches the provided ID"})
	}
	row, err := h.Svc.Detail(c.Request().Context(), id)
	if err != nil {
		h.Log.Error("course detail error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	if row == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "no course matches the provided ID"})
	}
	return c.JSON(http.StatusOK, row)
}

// POST /api/courses
func (h *Controller) Create(c echo.Context) error {
	var req CourseReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"errors": []string{"invalid request body"}})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"errors": validation.Messages(err)})
	}

	owner, err := authx.CurrentUser(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{
			"message": "Access Denied",
			"errors":  []string{"Access Denied"},
		})
	}

	id, err := h.Svc.Create(c.Request().Context(), &model.Course{
		Title:           req.Title,
		Description:     req.Description,
		EstimatedTime:   req.EstimatedTime,
		MaterialsNeeded: req.MaterialsNeeded,
		UserID:          owner.ID,
	})
	if err != nil {
		h.Log.Error("course create error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}

	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/courses/%d", id))
	return c.NoContent(http.StatusCreated)
}

// PUT /api/courses/:id
func (h *Controller) Update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "there is no existing course with that ID"})
	}

	var req CourseReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "Something went wrong.",
			"errors":  []string{"invalid request body"},
		})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "Something went wrong.",
			"errors":  validation.Messages(err),
		})
	}

	owner, err := authx.CurrentUser(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{
			"message": "Access Denied",
			"errors":  []string{"Access Denied"},
		})
	}

	err = h.Svc.Update(c.Request().Context(), &model.Course{
		ID:              id,
		Title:           req.Title,
		Description:     req.Description,
		EstimatedTime:   req.EstimatedTime,
		MaterialsNeeded: req.MaterialsNeeded,
	}, owner.ID)
	switch {
	case errors.Is(err, coursesvc.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "there is no existing course with that ID"})
	case errors.Is(err, coursesvc.ErrNotOwner):
		return c.JSON(http.StatusForbidden, echo.Map{
			"message": "Something went wrong.",
			"errors":  []string{"You are not authorized to edit this course."},
		})
	case err != nil:
		h.Log.Error("course update error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.NoContent(http.StatusNoContent)
}

// DELETE /api/courses/:id
func (h *Controller) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "there is no existing course with that ID"})
	}

	owner, err := authx.CurrentUser(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{
			"message": "Access Denied",
			"errors":  []string{"Access Denied"},
		})
	}

	err = h.Svc.Delete(c.Request().Context(), id, owner.ID)
	switch {
	case errors.Is(err, coursesvc.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "there is no existing course with that ID"})
	case errors.Is(err, coursesvc.ErrNotOwner):
		return c.JSON(http.StatusForbidden, echo.Map{
			"message": "Something went wrong.",
			"errors":  []string{"You are not authorized to delete this course."},
		})
	case err != nil:
		h.Log.Error("course delete error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.NoContent(http.StatusNoContent)
}

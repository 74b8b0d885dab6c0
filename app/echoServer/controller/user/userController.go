// app/echoServer/controller/user/userController.go
package user

import (
	"fmt"
	"log/slog"
	"net/http"

	"coursecat/app/echoServer/authx"
	"coursecat/app/echoServer/validation"
	"coursecat/model"
	usersvc "coursecat/service/user"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc usersvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// Create a new user
// @Summary      Sign up
// @Description  Create a user; the email address must not already exist
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        payload  body  model.SignUpReq  true  "Sign-up payload"
// @Success      201
// @Failure      400  {object}  map[string]any "validation messages"
// @Failure      405  {object}  map[string]any "email address already exists"
// @Failure      500  {object}  map[string]any
// @Router       /api/users [post]
func (ct *Controller) Create(c echo.Context) error {
	var req model.SignUpReq

	if err := c.Bind(&req); err != nil {
		if ct.Log != nil {
			ct.Log.Warn("bind failed", "path", c.Path(), "err", err)
		}
		return c.JSON(http.StatusBadRequest, echo.Map{
			"errors": []string{"invalid request body"},
		})
	}

	if err := ct.V.Struct(req); err != nil {
		if ct.Log != nil {
			ct.Log.Warn("validation failed", "path", c.Path(), "err", err)
		}
		return c.JSON(http.StatusBadRequest, echo.Map{
			"errors": validation.Messages(err),
		})
	}

	if _, err := ct.Svc.SignUp(c.Request().Context(), req); err != nil {
		if err == usersvc.ErrEmailTaken {
			return c.JSON(http.StatusMethodNotAllowed, echo.Map{
				"message": "Something Went Wrong",
				"errors":  []string{fmt.Sprintf("The email address %s already exists.", req.EmailAddress)},
			})
		}
		if ct.Log != nil {
			rid := c.Response().Header().Get(echo.HeaderXRequestID)
			ct.Log.Error("sign up failed", "err", err, "req_id", rid, "path", c.Path())
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "internal error",
			"errors":  []string{"internal error"},
		})
	}

	c.Response().Header().Set(echo.HeaderLocation, "/")
	return c.NoContent(http.StatusCreated)
}

// Current user
// @Summary      Get current user
// @Description  Returns the authenticated user's identity; the password hash is never included
// @Tags         users
// @Produce      json
// @Security     BasicAuth
// @Success      200  {object}  user.Profile
// @Failure      401  {object}  map[string]any
// @Router       /api/users [get]
func (ct *Controller) Current(c echo.Context) error {
	u, err := authx.CurrentUser(c)
	if err != nil {
		if ct.Log != nil {
			ct.Log.Error("no current user after auth", "err", err, "path", c.Path())
		}
		return c.JSON(http.StatusUnauthorized, echo.Map{
			"message": "Access Denied",
			"errors":  []string{"Access Denied"},
		})
	}

	return c.JSON(http.StatusOK, profileFrom(u))
}

package authx

import (
	"errors"

	"coursecat/model"

	"github.com/labstack/echo/v4"
)

const contextKey = "currentUser"

func SetCurrentUser(c echo.Context, u *model.User) {
	c.Set(contextKey, u)
}

func CurrentUser(c echo.Context) (*model.User, error) {
	u, ok := c.Get(contextKey).(*model.User)
	if !ok || u == nil {
		return nil, errors.New("no authenticated user in context")
	}
	return u, nil
}

package echoServer

import (
	"coursecat/app/echoServer/controller/course"
	"coursecat/app/echoServer/controller/user"

	"github.com/labstack/echo/v4"
)

type C struct {
	User   *user.Controller
	Course *course.Controller
	Auth   echo.MiddlewareFunc
}

func Register(e *echo.Echo, c C) {
	api := e.Group("/api")

	// Users
	api.POST("/users", c.User.Create)
	api.GET("/users", c.User.Current, c.Auth)

	// Courses: reads are public, writes require Basic auth
	api.GET("/courses", c.Course.List)
	api.GET("/courses/:id", c.Course.Detail)
	api.POST("/courses", c.Course.Create, c.Auth)
	api.PUT("/courses/:id", c.Course.Update, c.Auth)
	api.DELETE("/courses/:id", c.Course.Delete, c.Auth)
}

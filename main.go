// Package main course catalog API.
//
// @title           Course Catalog API
// @version         1.0
// @description     Course catalog service (users, courses, owner-gated writes).
// @BasePath        /
// @schemes         http
// @securityDefinitions.basic BasicAuth
// @description  HTTP Basic: base64(emailAddress:password)
package main

import (
	"context"
	"log/slog"
	"os"

	"coursecat/app/echoServer"
	coursectrl "coursecat/app/echoServer/controller/course"
	userctrl "coursecat/app/echoServer/controller/user"
	"coursecat/app/echoServer/validation"
	"coursecat/config"
	"coursecat/metrics"
	courserepo "coursecat/repository/course"
	userrepo "coursecat/repository/user"
	coursesvc "coursecat/service/course"
	usersvc "coursecat/service/user"
	"coursecat/util/database"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

func main() {

	cfg := config.Load()
	ctx := context.Background()

	// logger
	var log *slog.Logger
	if cfg.Env == "dev" {
		log = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	} else {
		log = slog.New(slog.NewJSONHandler(os.Stdout, nil))
	}
	slog.SetDefault(log)

	metrics.Init()

	// DB
	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(ctx, cfg.DatabaseURL, log); err != nil {
		log.Error("migrations failed", "err", err)
		os.Exit(1)
	}

	// repos
	ur := userrepo.New(db)
	cr := courserepo.New(db)

	// services
	us := usersvc.New(ur)
	cs := coursesvc.New(cr)

	// controllers
	v := validation.NewValidate()
	userC := &userctrl.Controller{Svc: us, V: v, Log: log}
	courseC := &coursectrl.Controller{Svc: cs, V: v, Log: log}

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status":  "ok",
			"message": "Service is healthy and connected",
		})
	})

	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		User:   userC,
		Course: courseC,
		Auth:   echoServer.BasicAuth(us, log),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	slog.Info("starting server", "port", port)

	e.Logger.Fatal(e.Start(":" + port))
}

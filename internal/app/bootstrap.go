package app

import (
	"fmt"
	"log"
	"strings"

	"talent-hub/internal/config"
	"talent-hub/internal/delivery/http/middleware"
	"talent-hub/internal/delivery/http/routes"
	"talent-hub/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber *fiber.App
	Hub   *ws.Hub
}

func New(cfg config.Config, container *Container) *App {
	f := fiber.New(fiber.Config{
		AppName: cfg.App.AppName,
	})

	registerGlobalMiddleware(f)

	wsHandler := ws.NewHandler(container.Hub, log.Default())
	registry := routes.NewRegistry(container.Deps, wsHandler)
	registry.Register(f)

	return &App{Fiber: f, Hub: container.Hub}
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	container, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	app := New(cfg, container)
	go app.Hub.Run()

	return app, container.Close, nil
}

func registerGlobalMiddleware(app *fiber.App) {
	if app == nil {
		return
	}

	errMw := middleware.NewErrorMiddleware()
	accessMw := middleware.NewAccessLogMiddleware(log.Default())

	app.Use(errMw.Middleware())
	app.Use(accessMw.Middleware())
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}

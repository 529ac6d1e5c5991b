package routes

import (
	"talent-hub/internal/delivery/http/handler"
	v1 "talent-hub/internal/delivery/http/routes/v1"
	"talent-hub/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health *handler.HealthHandler
	deps   v1.Deps
	wsH    *ws.Handler
}

func NewRegistry(deps v1.Deps, wsHandler *ws.Handler) *Registry {
	return &Registry{
		health: handler.NewHealthHandler(),
		deps:   deps,
		wsH:    wsHandler,
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerAPI(app)
	r.registerWS(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	r.health.RegisterRoutes(app)
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r.deps)
}

func (r *Registry) registerWS(app *fiber.App) {
	if r.wsH == nil {
		return
	}
	app.Get("/ws/events", r.wsH.HandleEventsWS)
}

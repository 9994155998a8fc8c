package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vocallabs/hr-apply/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, health *handlers.HealthHandler, jobs *handlers.JobHandler, applications *handlers.ApplicationHandler) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	// Public job-application surface
	v1.Get("/jobs/:id", jobs.GetByID)
	v1.Post("/jobs/:id/applications", applications.Submit)
}

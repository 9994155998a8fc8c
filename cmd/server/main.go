// @title         hr-apply API
// @version       1.0
// @description   Public job-application service: serves normalized job postings from the GraphQL backend and forwards candidate applications to the resume-ingestion service.
// @BasePath      /api/v1
// @schemes       http
// @host          localhost:8080
package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	swagger "github.com/gofiber/swagger"

	_ "github.com/vocallabs/hr-apply/docs"

	// internal imports
	apihttp "github.com/vocallabs/hr-apply/api/http"
	"github.com/vocallabs/hr-apply/api/http/handlers"
	"github.com/vocallabs/hr-apply/pkg/application"
	"github.com/vocallabs/hr-apply/pkg/campaign"
	"github.com/vocallabs/hr-apply/pkg/config"
	"github.com/vocallabs/hr-apply/pkg/hasura"
	"github.com/vocallabs/hr-apply/pkg/health"
	"github.com/vocallabs/hr-apply/pkg/health/checkers"
	"github.com/vocallabs/hr-apply/pkg/job"
)

func main() {
	app := fiber.New()

	// Load configuration from env/.env
	cfg := config.Load()

	// Outbound collaborators
	gql := hasura.New(cfg.HasuraEndpoint, cfg.HasuraSecret)
	ingestor := campaign.New(cfg.CampaignServiceURL)

	// Wire dependencies (Clean Architecture)
	jobUC := job.NewService(gql)
	applicationUC := application.NewService(ingestor)

	jobHandler := handlers.NewJobHandler(jobUC)
	applicationHandler := handlers.NewApplicationHandler(jobUC, applicationUC)

	// Health service: compose checkers for both collaborators
	readiness := health.NewService(
		checkers.NewHTTPChecker("hasura", cfg.HasuraEndpoint),
		checkers.NewHTTPChecker("campaign", cfg.CampaignServiceURL),
	)
	healthHandler := handlers.NewHealthHandler(readiness)

	// Register routes
	apihttp.Register(app, healthHandler, jobHandler, applicationHandler)

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Start server
	port := cfg.Port
	log.Printf("HTTP server listening on :%s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

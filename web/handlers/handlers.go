// Package handlers implements the HTTP API surface: library search, the
// per-user collection, price history, and the admin controls of the pricing
// job.
package handlers

import (
	"github.com/curiodex/curio/curio/database/repositories"
	"github.com/curiodex/curio/curio/metadata"
	"github.com/curiodex/curio/curio/pricing"
	"github.com/curiodex/curio/curio/services"
	"github.com/gofiber/fiber/v2"
)

// WebApp bundles everything the handlers touch.
type WebApp struct {
	Users    repositories.UserRepository
	Games    repositories.GameRepository
	Tracked  repositories.TrackedGameRepository
	Prices   repositories.PriceRepository
	StoreIDs repositories.StoreMetadataRepository

	Metadata  *metadata.Service
	Search    *services.GameSearchService
	Scheduler *pricing.Scheduler

	Version string
}

// HealthCheck reports liveness and the running version.
func HealthCheck(app *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"version": app.Version,
		})
	}
}

package handlers

import (
	"errors"
	"log/slog"

	"github.com/curiodex/curio/curio/pricing"
	"github.com/curiodex/curio/web/middleware"
	"github.com/curiodex/curio/web/utils"
	"github.com/gofiber/fiber/v2"
)

// TriggerReconcile kicks off one pricing sweep outside the schedule. The
// sweep runs in the background; a 409 means one is already in flight.
func TriggerReconcile(app *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, _ := middleware.CurrentUser(c)

		if err := app.Scheduler.TriggerAsync(); err != nil {
			if errors.Is(err, pricing.ErrRunActive) {
				return utils.SendConflict(c, "A reconciliation run is already active", nil)
			}
			return utils.SendInternalServerError(c, "Failed to start reconciliation")
		}

		slog.Info("Manual price reconciliation triggered",
			slog.String("type", "web"),
			slog.Int64("user_id", user.ID))
		return utils.SendJSON(c, fiber.StatusAccepted, fiber.Map{
			"success": true,
			"message": "Reconciliation started",
		})
	}
}

// PurgeStoreIDs drops the cached storefront ids of one game so the next sweep
// re-resolves them, for when a resolution turned out wrong.
func PurgeStoreIDs(app *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		remoteID, err := gameID(c)
		if err != nil {
			return utils.SendBadRequest(c, "Invalid game id", nil)
		}

		deleted, err := app.StoreIDs.DeleteByGame(c.UserContext(), remoteID)
		if err != nil {
			return utils.SendInternalServerError(c, "Failed to purge store ids")
		}
		return utils.SendSuccess(c, fiber.Map{"deleted": deleted}, "Store ids purged")
	}
}

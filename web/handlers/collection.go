package handlers

import (
	"github.com/curiodex/curio/curio/database/models"
	"github.com/curiodex/curio/curio/stores"
	"github.com/curiodex/curio/web/middleware"
	"github.com/curiodex/curio/web/utils"
	"github.com/gofiber/fiber/v2"
)

type trackRequest struct {
	GameID   int64  `json:"game_id"`
	Platform string `json:"platform"`
	Status   string `json:"status"`
}

type statusRequest struct {
	Platform string `json:"platform"`
	Status   string `json:"status"`
}

func validStatus(status string) bool {
	switch status {
	case models.StatusOwned, models.StatusBacklog, models.StatusWishlist:
		return true
	}
	return false
}

// ListCollection returns the caller's tracked games, optionally filtered by
// status.
func ListCollection(app *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, _ := middleware.CurrentUser(c)

		var (
			tracked []*models.TrackedGame
			err     error
		)
		if status := c.Query("status"); status != "" {
			if !validStatus(status) {
				return utils.SendBadRequest(c, "Unknown status", nil)
			}
			tracked, err = app.Tracked.GetByUserAndStatus(c.UserContext(), user.ID, status)
		} else {
			tracked, err = app.Tracked.GetByUser(c.UserContext(), user.ID)
		}
		if err != nil {
			return utils.SendInternalServerError(c, "Failed to load collection")
		}
		return utils.SendSuccess(c, tracked, "")
	}
}

// ListWishlist returns only the caller's wishlisted games, the slice the
// pricing job sweeps.
func ListWishlist(app *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, _ := middleware.CurrentUser(c)

		tracked, err := app.Tracked.GetByUserAndStatus(c.UserContext(), user.ID, models.StatusWishlist)
		if err != nil {
			return utils.SendInternalServerError(c, "Failed to load wishlist")
		}
		return utils.SendSuccess(c, tracked, "")
	}
}

// TrackGame adds a game to the caller's collection. The game must resolve in
// the catalog first, so every tracked row has title metadata behind it.
func TrackGame(app *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, _ := middleware.CurrentUser(c)

		var req trackRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.SendBadRequest(c, "Invalid request body", nil)
		}
		if !validStatus(req.Status) {
			return utils.SendBadRequest(c, "Unknown status", nil)
		}
		platform, err := stores.ParsePlatform(req.Platform)
		if err != nil {
			return utils.SendBadRequest(c, "Unknown platform", nil)
		}

		game, err := app.Metadata.EnsureGame(c.UserContext(), req.GameID)
		if err != nil {
			return utils.SendInternalServerError(c, "Failed to look up game")
		}
		if game == nil {
			return utils.SendNotFound(c, "Game not found in catalog")
		}

		exists, err := app.Tracked.Exists(c.UserContext(), user.ID, req.GameID, string(platform))
		if err != nil {
			return utils.SendInternalServerError(c, "Failed to track game")
		}
		if exists {
			return utils.SendConflict(c, "Game already tracked", nil)
		}

		tracked := &models.TrackedGame{
			UserID:       user.ID,
			GameRemoteID: req.GameID,
			Platform:     string(platform),
			Status:       req.Status,
		}
		if err := app.Tracked.Add(c.UserContext(), tracked); err != nil {
			return utils.SendInternalServerError(c, "Failed to track game")
		}
		return utils.SendCreated(c, tracked, "Game tracked")
	}
}

// UpdateGameStatus moves a tracked game between owned, backlog and wishlist.
func UpdateGameStatus(app *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, _ := middleware.CurrentUser(c)

		remoteID, err := gameID(c)
		if err != nil {
			return utils.SendBadRequest(c, "Invalid game id", nil)
		}

		var req statusRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.SendBadRequest(c, "Invalid request body", nil)
		}
		if !validStatus(req.Status) {
			return utils.SendBadRequest(c, "Unknown status", nil)
		}
		platform, err := stores.ParsePlatform(req.Platform)
		if err != nil {
			return utils.SendBadRequest(c, "Unknown platform", nil)
		}

		exists, err := app.Tracked.Exists(c.UserContext(), user.ID, remoteID, string(platform))
		if err != nil {
			return utils.SendInternalServerError(c, "Failed to update status")
		}
		if !exists {
			return utils.SendNotFound(c, "Game is not tracked")
		}

		if err := app.Tracked.UpdateStatus(c.UserContext(), user.ID, remoteID, string(platform), req.Status); err != nil {
			return utils.SendInternalServerError(c, "Failed to update status")
		}
		return utils.SendSuccess(c, nil, "Status updated")
	}
}

// UntrackGame removes a game from the caller's collection.
func UntrackGame(app *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, _ := middleware.CurrentUser(c)

		remoteID, err := gameID(c)
		if err != nil {
			return utils.SendBadRequest(c, "Invalid game id", nil)
		}
		platform, err := stores.ParsePlatform(c.Query("platform", "switch"))
		if err != nil {
			return utils.SendBadRequest(c, "Unknown platform", nil)
		}

		if err := app.Tracked.Remove(c.UserContext(), user.ID, remoteID, string(platform)); err != nil {
			return utils.SendInternalServerError(c, "Failed to untrack game")
		}
		return utils.SendNoContent(c)
	}
}

package handlers

import (
	"strconv"

	"github.com/curiodex/curio/web/utils"
	"github.com/gofiber/fiber/v2"
)

const defaultSearchLimit = 20

// SearchGames searches the locally cached catalog by title.
func SearchGames(app *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := c.Query("q")
		limit := c.QueryInt("limit", defaultSearchLimit)
		if limit < 1 || limit > 100 {
			limit = defaultSearchLimit
		}

		games, err := app.Search.Search(c.UserContext(), query, limit)
		if err != nil {
			return utils.SendInternalServerError(c, "Search failed")
		}
		return utils.SendSuccess(c, games, "")
	}
}

// GetGame returns one game, fetching it from the catalog when it is not
// cached locally yet.
func GetGame(app *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		remoteID, err := gameID(c)
		if err != nil {
			return utils.SendBadRequest(c, "Invalid game id", nil)
		}

		game, err := app.Metadata.EnsureGame(c.UserContext(), remoteID)
		if err != nil {
			return utils.SendInternalServerError(c, "Failed to load game")
		}
		if game == nil {
			return utils.SendNotFound(c, "Game not found")
		}
		return utils.SendSuccess(c, game, "")
	}
}

// GamePrices returns price history for a game, newest first. With the region
// query parameter it returns only the latest snapshot for that region.
func GamePrices(app *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		remoteID, err := gameID(c)
		if err != nil {
			return utils.SendBadRequest(c, "Invalid game id", nil)
		}
		platform := c.Query("platform", "switch")

		if region := c.Query("region"); region != "" {
			latest, err := app.Prices.LatestByRegion(c.UserContext(), remoteID, platform, region)
			if err != nil {
				return utils.SendInternalServerError(c, "Failed to load prices")
			}
			if latest == nil {
				return utils.SendNotFound(c, "No price recorded for this region")
			}
			return utils.SendSuccess(c, latest, "")
		}

		history, err := app.Prices.HistoryByGame(c.UserContext(), remoteID, platform)
		if err != nil {
			return utils.SendInternalServerError(c, "Failed to load prices")
		}
		return utils.SendSuccess(c, history, "")
	}
}

func gameID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

package middleware

import (
	"log/slog"
	"strings"

	"github.com/curiodex/curio/curio/database/models"
	"github.com/curiodex/curio/curio/database/repositories"
	"github.com/curiodex/curio/web/utils"
	"github.com/gofiber/fiber/v2"
)

const userLocal = "user"

// AuthRequired resolves the Bearer token to a user and stores it in the
// request context. Unknown or missing tokens end the request with 401.
func AuthRequired(users repositories.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c)
		if token == "" {
			return utils.SendUnauthorized(c, "Missing API token")
		}

		user, err := users.GetByToken(c.UserContext(), token)
		if err != nil {
			slog.Error("Token lookup failed",
				slog.String("type", "web"),
				slog.Any("error", err))
			return utils.SendInternalServerError(c, "Authentication failed")
		}
		if user == nil {
			return utils.SendUnauthorized(c, "Invalid API token")
		}

		c.Locals(userLocal, user)
		return c.Next()
	}
}

// AdminRequired gates a route to admin users. It assumes AuthRequired ran
// earlier in the chain.
func AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := CurrentUser(c)
		if !ok {
			return utils.SendForbidden(c, "Access denied")
		}
		if !user.IsAdmin {
			slog.Warn("Admin route denied",
				slog.String("type", "web"),
				slog.Int64("user_id", user.ID))
			return utils.SendForbidden(c, "Admin access required")
		}
		return c.Next()
	}
}

// CurrentUser extracts the authenticated user set by AuthRequired.
func CurrentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(userLocal).(*models.User)
	return user, ok
}

func bearerToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

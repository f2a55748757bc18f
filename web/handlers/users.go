package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/curiodex/curio/curio/database/models"
	"github.com/curiodex/curio/web/utils"
	"github.com/gofiber/fiber/v2"
)

type registerRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
}

type registerResponse struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	APIToken string `json:"api_token"`
}

// Register creates a user and hands back their API token. The token is only
// ever shown here.
func Register(app *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req registerRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.SendBadRequest(c, "Invalid request body", nil)
		}

		req.Email = strings.TrimSpace(strings.ToLower(req.Email))
		req.Username = strings.TrimSpace(req.Username)
		if req.Email == "" || !strings.Contains(req.Email, "@") {
			return utils.SendBadRequest(c, "A valid email is required", nil)
		}
		if req.Username == "" {
			return utils.SendBadRequest(c, "A username is required", nil)
		}

		existing, err := app.Users.GetByEmail(c.UserContext(), req.Email)
		if err != nil {
			return utils.SendInternalServerError(c, "Failed to create user")
		}
		if existing != nil {
			return utils.SendConflict(c, "Email already registered", nil)
		}

		token, err := newAPIToken()
		if err != nil {
			return utils.SendInternalServerError(c, "Failed to create user")
		}

		user := &models.User{
			Email:    req.Email,
			Username: req.Username,
			APIToken: token,
		}
		if err := app.Users.Create(c.UserContext(), user); err != nil {
			return utils.SendInternalServerError(c, "Failed to create user")
		}

		return utils.SendCreated(c, registerResponse{
			ID:       user.ID,
			Email:    user.Email,
			Username: user.Username,
			APIToken: user.APIToken,
		}, "User created")
	}
}

func newAPIToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

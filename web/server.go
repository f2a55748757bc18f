// Package web assembles the fiber application: middleware chain, route table
// and lifecycle.
package web

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/curiodex/curio/web/handlers"
	"github.com/curiodex/curio/web/middleware"
	"github.com/curiodex/curio/web/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

type Server struct {
	app  *fiber.App
	host string
	port int
}

func NewServer(webApp *handlers.WebApp, host string, port int) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Curio API",
		ServerHeader: "Curio",
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(requestLogger())

	setupRoutes(app, webApp)

	return &Server{app: app, host: host, port: port}
}

func setupRoutes(app *fiber.App, webApp *handlers.WebApp) {
	app.Get("/health", handlers.HealthCheck(webApp))
	app.Post("/auth/register", handlers.Register(webApp))

	games := app.Group("/games")
	games.Get("/search", handlers.SearchGames(webApp))
	games.Get("/:id", handlers.GetGame(webApp))
	games.Get("/:id/prices", handlers.GamePrices(webApp))

	collection := app.Group("/collection", middleware.AuthRequired(webApp.Users))
	collection.Get("/", handlers.ListCollection(webApp))
	collection.Get("/wishlist", handlers.ListWishlist(webApp))
	collection.Post("/", handlers.TrackGame(webApp))
	collection.Patch("/:id", handlers.UpdateGameStatus(webApp))
	collection.Delete("/:id", handlers.UntrackGame(webApp))

	admin := app.Group("/admin", middleware.AuthRequired(webApp.Users), middleware.AdminRequired())
	admin.Post("/reconcile", handlers.TriggerReconcile(webApp))
	admin.Delete("/games/:id/store-ids", handlers.PurgeStoreIDs(webApp))
}

// Listen blocks serving HTTP until Shutdown is called.
func (s *Server) Listen() error {
	address := fmt.Sprintf("%s:%d", s.host, s.port)
	slog.Info("Starting API server",
		slog.String("type", "web"),
		slog.String("address", address))
	return s.app.Listen(address)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

func errorHandler(c *fiber.Ctx, err error) error {
	if e, ok := err.(*fiber.Error); ok && e.Code < fiber.StatusInternalServerError {
		return utils.SendError(c, e.Code, "REQUEST_ERROR", e.Message, nil)
	}

	slog.Error("Unhandled request error",
		slog.String("type", "web"),
		slog.String("path", c.Path()),
		slog.Any("error", err))
	return utils.SendInternalServerError(c, "Internal server error")
}

func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		slog.Debug("Request handled",
			slog.String("type", "web"),
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.Int("status", c.Response().StatusCode()),
			slog.Duration("took", time.Since(start)))
		return err
	}
}

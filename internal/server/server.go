package server

import (
	"log"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/mp-codespace/masterprima-site-sub001/internal/bootstrap"
	"github.com/mp-codespace/masterprima-site-sub001/internal/config"
	"github.com/mp-codespace/masterprima-site-sub001/internal/pkg/gate"
	"github.com/mp-codespace/masterprima-site-sub001/internal/pkg/serverutils"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // 10MB
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CorsAllowedOrigins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, x-callback-token",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders:    "Content-Length, Content-Type",
	}))

	app.Use(otelfiber.Middleware())
	app.Use(serverutils.ErrorHandlerMiddleware())

	// Page-level routing guard. API routes pass through and enforce
	// their own authorization below.
	app.Use(gate.Middleware(container.SessionCodec, cfg.Auth.SessionCookieName))

	app.Static("/uploads", "./uploads")

	registerRoutes(app, cfg, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	log.Printf("Server is running on http://localhost:%s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}

func registerRoutes(app *fiber.App, cfg *config.Config, c *bootstrap.Container) {
	api := app.Group("/api")

	// Admin routes carry their own session check, independent of the
	// page gate.
	admin := api.Group("/admin", serverutils.RequireAdmin(c.SessionCodec, cfg.Auth.SessionCookieName))

	c.AuthController.RegisterRoutes(api, admin)
	c.OAuthController.RegisterRoutes(api)
	c.PaymentController.RegisterRoutes(api, admin)
	c.ArticleController.RegisterRoutes(api, admin)
	c.PricingController.RegisterRoutes(api, admin)
	c.SiteController.RegisterRoutes(api, admin)
	c.ActivityController.RegisterRoutes(admin)
}

package main

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"zosswater/internal/config"
	"zosswater/internal/http/handlers"
	applog "zosswater/internal/log"
	"zosswater/internal/repos"
	"zosswater/internal/services"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	// Auth wiring
	userRepo := repos.NewUserRepo(db)
	authSvc := services.NewAuthService(userRepo)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Log and answer with a friendly envelope; never leak internals.
			applog.Error(c, "server.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "Something went wrong. Please try again.",
			})
		},
	})
	// Global body size guard
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.FrontendURL,
		AllowCredentials: true,
	}))
	// Attach user to context if logged in (for logging/handlers)
	app.Use(func(c *fiber.Ctx) error {
		if sid := c.Cookies("sid"); sid != "" {
			if u, err := authSvc.CurrentUser(sid); err == nil && u != nil {
				c.Locals("user", u)
			}
		}
		return c.Next()
	})
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.limit.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"success": false,
				"message": "Too many requests from this IP, please try again later.",
			})
		},
	}))

	// ---------- App handlers ----------
	deps := handlers.NewDeps(db, authSvc)
	user := handlers.RequireUser(authSvc)
	admin := handlers.RequireAdmin(authSvc)

	api := app.Group("/api/v1")

	// Identity
	auth := api.Group("/auth")
	auth.Post("/register", deps.AuthHandler.Register)
	auth.Post("/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"success": false,
				"message": "Too many attempts. Please try again later.",
			})
		},
	}), deps.AuthHandler.Login)
	auth.Post("/oauth/google", deps.AuthHandler.GoogleCallback)
	auth.Post("/logout", deps.AuthHandler.Logout)
	auth.Get("/profile", user, deps.AuthHandler.Profile)
	auth.Put("/profile", user, deps.AuthHandler.UpdateProfile)
	auth.Put("/password", user, deps.AuthHandler.ChangePassword)
	api.Get("/users", admin, deps.AuthHandler.ListUsers)

	// Registered products & templates
	api.Post("/products", user, deps.ProductHandler.Register)
	api.Get("/products", admin, deps.ProductHandler.ListAll)
	api.Get("/products/mine", user, deps.ProductHandler.ListMine)
	api.Get("/products/:id", user, deps.ProductHandler.Get)
	api.Patch("/products/:id/approve", admin, deps.ProductHandler.Approve)
	api.Delete("/products/:id", admin, deps.ProductHandler.Delete)
	api.Post("/templates", admin, deps.ProductHandler.CreateTemplate)
	api.Get("/templates", admin, deps.ProductHandler.ListTemplates)
	api.Delete("/templates/:id", admin, deps.ProductHandler.DeleteTemplate)

	// Service requests
	api.Post("/services", user, deps.ServiceHandler.Submit)
	api.Get("/services", admin, deps.ServiceHandler.ListAll)
	api.Get("/services/mine", user, deps.ServiceHandler.ListMine)
	api.Get("/services/pending", admin, deps.ServiceHandler.PendingQueue)
	api.Get("/services/:id", user, deps.ServiceHandler.Get)
	api.Patch("/services/:id/schedule", admin, deps.ServiceHandler.Schedule)
	api.Patch("/services/:id/complete", admin, deps.ServiceHandler.Complete)
	api.Patch("/services/:id/status", admin, deps.ServiceHandler.ToggleStatus)

	// Inventory (admin only)
	api.Post("/inventory", admin, deps.InventoryHandler.Add)
	api.Get("/inventory", admin, deps.InventoryHandler.List)
	api.Get("/inventory/low-stock", admin, deps.InventoryHandler.LowStock)
	api.Get("/inventory/stats", admin, deps.InventoryHandler.Stats)
	api.Patch("/inventory/:id/quantity", admin, deps.InventoryHandler.AdjustQuantity)
	api.Put("/inventory/:id", admin, deps.InventoryHandler.Update)
	api.Delete("/inventory/:id", admin, deps.InventoryHandler.Delete)

	// Blogs
	api.Get("/blogs", deps.BlogHandler.List)
	api.Get("/admin/blogs", admin, deps.BlogHandler.AdminList)
	api.Get("/blogs/:id", deps.BlogHandler.Get)
	api.Post("/blogs", admin, deps.BlogHandler.Create)
	api.Put("/blogs/:id", admin, deps.BlogHandler.Update)
	api.Delete("/blogs/:id", admin, deps.BlogHandler.Delete)

	// Catalog
	api.Get("/catalog", deps.CatalogHandler.List)
	api.Get("/catalog/:id", deps.CatalogHandler.Get)
	api.Post("/catalog", admin, deps.CatalogHandler.Create)
	api.Put("/catalog/:id", admin, deps.CatalogHandler.Update)
	api.Delete("/catalog/:id", admin, deps.CatalogHandler.Delete)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"success":     true,
			"message":     "Zoss Water API is running",
			"environment": cfg.Env,
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
		})
	})
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Route not found",
		})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}

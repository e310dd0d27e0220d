package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"zosswater/internal/http/handlers"
	"zosswater/internal/repos"
	"zosswater/internal/services"
)

// newAPIApp builds the API surface on a seeded in-memory database:
// users u-admin/u-ravi/u-meera, coverage templates, demo content.
func newAPIApp(t *testing.T) (*fiber.App, *repos.UserRepo) {
	t.Helper()

	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	userRepo := repos.NewUserRepo(db)
	authSvc := services.NewAuthService(userRepo)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "Something went wrong. Please try again.",
			})
		},
	})
	app.Use(requestid.New())
	app.Use(func(c *fiber.Ctx) error {
		if sid := c.Cookies("sid"); sid != "" {
			if u, err := authSvc.CurrentUser(sid); err == nil && u != nil {
				c.Locals("user", u)
			}
		}
		return c.Next()
	})

	deps := handlers.NewDeps(db, authSvc)
	user := handlers.RequireUser(authSvc)
	admin := handlers.RequireAdmin(authSvc)

	api := app.Group("/api/v1")

	auth := api.Group("/auth")
	auth.Post("/register", deps.AuthHandler.Register)
	auth.Post("/login", deps.AuthHandler.Login)
	auth.Post("/oauth/google", deps.AuthHandler.GoogleCallback)
	auth.Post("/logout", deps.AuthHandler.Logout)
	auth.Get("/profile", user, deps.AuthHandler.Profile)
	auth.Put("/profile", user, deps.AuthHandler.UpdateProfile)
	auth.Put("/password", user, deps.AuthHandler.ChangePassword)
	api.Get("/users", admin, deps.AuthHandler.ListUsers)

	api.Post("/products", user, deps.ProductHandler.Register)
	api.Get("/products", admin, deps.ProductHandler.ListAll)
	api.Get("/products/mine", user, deps.ProductHandler.ListMine)
	api.Get("/products/:id", user, deps.ProductHandler.Get)
	api.Patch("/products/:id/approve", admin, deps.ProductHandler.Approve)
	api.Delete("/products/:id", admin, deps.ProductHandler.Delete)
	api.Post("/templates", admin, deps.ProductHandler.CreateTemplate)
	api.Get("/templates", admin, deps.ProductHandler.ListTemplates)
	api.Delete("/templates/:id", admin, deps.ProductHandler.DeleteTemplate)

	api.Post("/services", user, deps.ServiceHandler.Submit)
	api.Get("/services", admin, deps.ServiceHandler.ListAll)
	api.Get("/services/mine", user, deps.ServiceHandler.ListMine)
	api.Get("/services/pending", admin, deps.ServiceHandler.PendingQueue)
	api.Get("/services/:id", user, deps.ServiceHandler.Get)
	api.Patch("/services/:id/schedule", admin, deps.ServiceHandler.Schedule)
	api.Patch("/services/:id/complete", admin, deps.ServiceHandler.Complete)
	api.Patch("/services/:id/status", admin, deps.ServiceHandler.ToggleStatus)

	api.Post("/inventory", admin, deps.InventoryHandler.Add)
	api.Get("/inventory", admin, deps.InventoryHandler.List)
	api.Get("/inventory/low-stock", admin, deps.InventoryHandler.LowStock)
	api.Get("/inventory/stats", admin, deps.InventoryHandler.Stats)
	api.Patch("/inventory/:id/quantity", admin, deps.InventoryHandler.AdjustQuantity)
	api.Put("/inventory/:id", admin, deps.InventoryHandler.Update)
	api.Delete("/inventory/:id", admin, deps.InventoryHandler.Delete)

	api.Get("/blogs", deps.BlogHandler.List)
	api.Get("/admin/blogs", admin, deps.BlogHandler.AdminList)
	api.Get("/blogs/:id", deps.BlogHandler.Get)
	api.Post("/blogs", admin, deps.BlogHandler.Create)
	api.Put("/blogs/:id", admin, deps.BlogHandler.Update)
	api.Delete("/blogs/:id", admin, deps.BlogHandler.Delete)

	api.Get("/catalog", deps.CatalogHandler.List)
	api.Get("/catalog/:id", deps.CatalogHandler.Get)
	api.Post("/catalog", admin, deps.CatalogHandler.Create)
	api.Put("/catalog/:id", admin, deps.CatalogHandler.Update)
	api.Delete("/catalog/:id", admin, deps.CatalogHandler.Delete)

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Route not found",
		})
	})

	return app, userRepo
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// doJSON fires one request at the app; sid "" means anonymous.
func doJSON(t *testing.T, app *fiber.App, method, path, sid string, body any) (int, envelope) {
	t.Helper()

	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		rd = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if sid != "" {
		req.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	}

	resp, err := app.Test(req, 5000)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("%s %s: decode envelope: %v", method, path, err)
	}
	return resp.StatusCode, env
}

func decodeData(t *testing.T, env envelope, into any) {
	t.Helper()
	if err := json.Unmarshal(env.Data, into); err != nil {
		t.Fatalf("decode data: %v", err)
	}
}

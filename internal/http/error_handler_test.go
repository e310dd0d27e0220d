package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

// A handler error that escapes to the app-level handler must answer with
// the JSON envelope and a generic message, never the internal detail.
func TestServerErrorEnvelopeLeaksNothing(t *testing.T) {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "Something went wrong. Please try again.",
			})
		},
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return errors.New("dsn=postgres://svc:hunter2@db/prod")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("want 500, got %d", resp.StatusCode)
	}
	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.Success {
		t.Fatal("want success=false")
	}
	if strings.Contains(body.Message, "hunter2") || strings.Contains(body.Message, "dsn=") {
		t.Fatalf("internal detail leaked: %q", body.Message)
	}
}

func TestTaxonomyStatusMapping(t *testing.T) {
	app, userRepo := newAPIApp(t)
	if err := userRepo.BindSession("sid-admin", "u-admin"); err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name   string
		method string
		path   string
		body   any
		want   int
	}{
		{"not found", "GET", "/api/v1/blogs/no-such-post", nil, http.StatusNotFound},
		{"validation", "POST", "/api/v1/inventory", map[string]any{
			"itemName": "x", "category": "vehicles",
		}, http.StatusBadRequest},
		{"conflict", "POST", "/api/v1/templates", map[string]any{
			"modelNumber": "ZI-5000", "name": "dup",
		}, http.StatusConflict},
	}
	for _, tc := range cases {
		status, env := doJSON(t, app, tc.method, tc.path, "sid-admin", tc.body)
		if status != tc.want {
			t.Fatalf("%s: want %d, got %d (%s)", tc.name, tc.want, status, env.Message)
		}
		if env.Success {
			t.Fatalf("%s: failure envelope must carry success=false", tc.name)
		}
	}
}

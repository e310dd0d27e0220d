package handlers

import (
	applog "zosswater/internal/log"
	"zosswater/internal/services"
	"zosswater/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type CatalogHandler struct {
	Content *services.ContentService
}

type catalogBody struct {
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Price          float64           `json:"price"`
	Category       string            `json:"category"`
	ImageURL       string            `json:"imageUrl"`
	Features       []string          `json:"features"`
	Specifications map[string]string `json:"specifications"`
	BrochureURL    string            `json:"brochureUrl"`
}

func (b catalogBody) input() services.CatalogInput {
	return services.CatalogInput{
		Name:           b.Name,
		Description:    b.Description,
		Price:          b.Price,
		Category:       b.Category,
		ImageURL:       b.ImageURL,
		Features:       b.Features,
		Specifications: b.Specifications,
		BrochureURL:    b.BrochureURL,
	}
}

// GET /api/v1/catalog?category=  (public)
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	products, err := h.Content.CatalogProducts(c.Query("category"))
	if err != nil {
		return failErr(c, "catalog.list.fail", err)
	}
	return ok(c, fiber.Map{"products": products})
}

// GET /api/v1/catalog/:id  (public)
func (h *CatalogHandler) Get(c *fiber.Ctx) error {
	id, okID := validate.ID(c.Params("id"))
	if !okID {
		return fail(c, fiber.StatusBadRequest, "invalid product id")
	}
	p, err := h.Content.CatalogProduct(id)
	if err != nil {
		return failErr(c, "catalog.get.fail", err)
	}
	return ok(c, fiber.Map{"product": p})
}

// POST /api/v1/catalog  (admin)
func (h *CatalogHandler) Create(c *fiber.Ctx) error {
	var body catalogBody
	if err := c.BodyParser(&body); err != nil {
		return fail(c, fiber.StatusBadRequest, "malformed request body")
	}
	p, err := h.Content.CreateCatalogProduct(body.input())
	if err != nil {
		return failErr(c, "catalog.create.fail", err)
	}
	applog.Audit(c, "catalog.create", map[string]any{"product_id": p.ID, "name": p.Name})
	return created(c, "Product created successfully", fiber.Map{"product": p})
}

// PUT /api/v1/catalog/:id  (admin)
func (h *CatalogHandler) Update(c *fiber.Ctx) error {
	id, okID := validate.ID(c.Params("id"))
	if !okID {
		return fail(c, fiber.StatusBadRequest, "invalid product id")
	}
	var body catalogBody
	if err := c.BodyParser(&body); err != nil {
		return fail(c, fiber.StatusBadRequest, "malformed request body")
	}
	p, err := h.Content.UpdateCatalogProduct(id, body.input())
	if err != nil {
		return failErr(c, "catalog.update.fail", err)
	}
	applog.Audit(c, "catalog.update", map[string]any{"product_id": id})
	return okMsg(c, "Product updated successfully", fiber.Map{"product": p})
}

// DELETE /api/v1/catalog/:id  (admin)
func (h *CatalogHandler) Delete(c *fiber.Ctx) error {
	id, okID := validate.ID(c.Params("id"))
	if !okID {
		return fail(c, fiber.StatusBadRequest, "invalid product id")
	}
	if err := h.Content.DeleteCatalogProduct(id); err != nil {
		return failErr(c, "catalog.delete.fail", err)
	}
	applog.Audit(c, "catalog.delete", map[string]any{"product_id": id})
	return okMsg(c, "Product deleted successfully", nil)
}

package handlers

import (
	applog "zosswater/internal/log"
	"zosswater/internal/services"
	"zosswater/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	Products *services.ProductService
}

// POST /api/v1/products  (admin-assisted registration by customer email,
// or a logged-in customer registering their own unit)
func (h *ProductHandler) Register(c *fiber.Ctx) error {
	var body struct {
		CustomerEmail        string `json:"customerEmail"`
		ProductName          string `json:"productName"`
		ModelNumber          string `json:"modelNumber"`
		PurchaseDate         string `json:"purchaseDate"`
		ImageURL             string `json:"imageUrl"`
		CustomWarrantyMonths int    `json:"customWarrantyMonths"`
		CustomAmcMonths      int    `json:"customAmcMonths"`
	}
	if err := c.BodyParser(&body); err != nil {
		return fail(c, fiber.StatusBadRequest, "malformed request body")
	}

	u := currentUser(c)
	owner := body.CustomerEmail
	if owner == "" || !u.IsAdmin() {
		// Non-admin callers always register against themselves.
		owner = u.ID
	}

	p, err := h.Products.Register(services.RegisterInput{
		Owner:                owner,
		ProductName:          body.ProductName,
		ModelNumber:          body.ModelNumber,
		PurchaseDate:         body.PurchaseDate,
		ImageURL:             body.ImageURL,
		CustomWarrantyMonths: body.CustomWarrantyMonths,
		CustomAMCMonths:      body.CustomAmcMonths,
	})
	if err != nil {
		return failErr(c, "products.register.fail", err)
	}
	applog.Audit(c, "products.register", map[string]any{"product_id": p.ID, "model": p.ModelNumber})
	return created(c, "Product registered successfully", fiber.Map{"product": p})
}

// GET /api/v1/products  (admin)
func (h *ProductHandler) ListAll(c *fiber.Ctx) error {
	page := validate.Page(c.Query("page"))
	limit := validate.Limit(c.Query("limit"), 20)
	products, err := h.Products.ListAll(page, limit)
	if err != nil {
		return failErr(c, "products.list.fail", err)
	}
	return ok(c, fiber.Map{"products": products})
}

// GET /api/v1/products/mine
func (h *ProductHandler) ListMine(c *fiber.Ctx) error {
	products, err := h.Products.ListByUser(currentUser(c).ID)
	if err != nil {
		return failErr(c, "products.list.fail", err)
	}
	return ok(c, fiber.Map{"products": products})
}

// GET /api/v1/products/:id
func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, okID := validate.ID(c.Params("id"))
	if !okID {
		return fail(c, fiber.StatusBadRequest, "invalid product id")
	}
	p, err := h.Products.Get(id)
	if err != nil {
		return failErr(c, "products.get.fail", err)
	}
	// Customers may only read their own units.
	if u := currentUser(c); !u.IsAdmin() && p.UserID != u.ID {
		return fail(c, fiber.StatusForbidden, "Access denied")
	}
	return ok(c, fiber.Map{"product": p})
}

// PATCH /api/v1/products/:id/approve  (admin, idempotent)
func (h *ProductHandler) Approve(c *fiber.Ctx) error {
	id, okID := validate.ID(c.Params("id"))
	if !okID {
		return fail(c, fiber.StatusBadRequest, "invalid product id")
	}
	p, err := h.Products.Approve(id)
	if err != nil {
		return failErr(c, "products.approve.fail", err)
	}
	applog.Audit(c, "products.approve", map[string]any{"product_id": id})
	return ok(c, fiber.Map{"product": p})
}

// DELETE /api/v1/products/:id  (admin)
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, okID := validate.ID(c.Params("id"))
	if !okID {
		return fail(c, fiber.StatusBadRequest, "invalid product id")
	}
	if err := h.Products.Delete(id); err != nil {
		return failErr(c, "products.delete.fail", err)
	}
	applog.Audit(c, "products.delete", map[string]any{"product_id": id})
	return okMsg(c, "Product deleted successfully", nil)
}

// POST /api/v1/templates  (admin)
func (h *ProductHandler) CreateTemplate(c *fiber.Ctx) error {
	var body struct {
		ModelNumber          string `json:"modelNumber"`
		Name                 string `json:"name"`
		Description          string `json:"description"`
		WarrantyMonths       int    `json:"warrantyMonths"`
		AmcMonths            int    `json:"amcMonths"`
		ServiceFrequencyDays int    `json:"serviceFrequencyDays"`
	}
	if err := c.BodyParser(&body); err != nil {
		return fail(c, fiber.StatusBadRequest, "malformed request body")
	}

	t, err := h.Products.CreateTemplate(services.TemplateInput{
		ModelNumber:          body.ModelNumber,
		Name:                 body.Name,
		Description:          body.Description,
		WarrantyMonths:       body.WarrantyMonths,
		AMCMonths:            body.AmcMonths,
		ServiceFrequencyDays: body.ServiceFrequencyDays,
	})
	if err != nil {
		return failErr(c, "templates.create.fail", err)
	}
	applog.Audit(c, "templates.create", map[string]any{"model": t.ModelNumber})
	return created(c, "Template created successfully", fiber.Map{"template": t})
}

// GET /api/v1/templates  (admin)
func (h *ProductHandler) ListTemplates(c *fiber.Ctx) error {
	templates, err := h.Products.ListTemplates()
	if err != nil {
		return failErr(c, "templates.list.fail", err)
	}
	return ok(c, fiber.Map{"templates": templates})
}

// DELETE /api/v1/templates/:id  (admin)
func (h *ProductHandler) DeleteTemplate(c *fiber.Ctx) error {
	id, okID := validate.ID(c.Params("id"))
	if !okID {
		return fail(c, fiber.StatusBadRequest, "invalid template id")
	}
	if err := h.Products.DeleteTemplate(id); err != nil {
		return failErr(c, "templates.delete.fail", err)
	}
	applog.Audit(c, "templates.delete", map[string]any{"template_id": id})
	return okMsg(c, "Template deleted successfully", nil)
}

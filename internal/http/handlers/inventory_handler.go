package handlers

import (
	"strings"

	applog "zosswater/internal/log"
	"zosswater/internal/services"
	"zosswater/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type InventoryHandler struct {
	Inv *services.InventoryService
}

type inventoryItemBody struct {
	ItemName      string  `json:"itemName"`
	Category      string  `json:"category"`
	Description   string  `json:"description"`
	Quantity      int     `json:"quantity"`
	Unit          string  `json:"unit"`
	MinStockLevel int     `json:"minStockLevel"`
	Price         float64 `json:"price"`
	Supplier      string  `json:"supplier"`
	Location      string  `json:"location"`
}

func (b inventoryItemBody) input() services.ItemInput {
	return services.ItemInput{
		ItemName:      strings.TrimSpace(b.ItemName),
		Category:      b.Category,
		Description:   b.Description,
		Quantity:      b.Quantity,
		Unit:          b.Unit,
		MinStockLevel: b.MinStockLevel,
		Price:         b.Price,
		Supplier:      b.Supplier,
		Location:      b.Location,
	}
}

// POST /api/v1/inventory  (admin)
func (h *InventoryHandler) Add(c *fiber.Ctx) error {
	var body inventoryItemBody
	if err := c.BodyParser(&body); err != nil {
		return fail(c, fiber.StatusBadRequest, "malformed request body")
	}
	item, err := h.Inv.Add(body.input())
	if err != nil {
		return failErr(c, "inventory.add.fail", err)
	}
	applog.Audit(c, "inventory.add", map[string]any{"item_id": item.ID, "name": item.ItemName})
	return created(c, "Inventory item added successfully", fiber.Map{"item": item})
}

// GET /api/v1/inventory?category=&search=  (admin)
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	items, err := h.Inv.List(c.Query("category"), c.Query("search"))
	if err != nil {
		return failErr(c, "inventory.list.fail", err)
	}
	low := 0
	for i := range items {
		if items[i].LowStock() {
			low++
		}
	}
	return ok(c, fiber.Map{
		"inventory":     items,
		"totalItems":    len(items),
		"lowStockItems": low,
	})
}

// GET /api/v1/inventory/low-stock  (admin)
func (h *InventoryHandler) LowStock(c *fiber.Ctx) error {
	items, err := h.Inv.LowStock()
	if err != nil {
		return failErr(c, "inventory.lowstock.fail", err)
	}
	return ok(c, fiber.Map{"lowStockItems": items, "count": len(items)})
}

// GET /api/v1/inventory/stats  (admin)
func (h *InventoryHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.Inv.Stats()
	if err != nil {
		return failErr(c, "inventory.stats.fail", err)
	}
	return ok(c, fiber.Map{
		"totalItems":     stats.TotalItems,
		"machinesCount":  stats.MachinesCount,
		"materialsCount": stats.MaterialsCount,
		"lowStockCount":  stats.LowStockCount,
	})
}

// PATCH /api/v1/inventory/:id/quantity  (admin)
func (h *InventoryHandler) AdjustQuantity(c *fiber.Ctx) error {
	id, okID := validate.ID(c.Params("id"))
	if !okID {
		return fail(c, fiber.StatusBadRequest, "invalid inventory item id")
	}
	var body struct {
		Action   string `json:"action"`
		Quantity int    `json:"quantity"`
	}
	if err := c.BodyParser(&body); err != nil {
		return fail(c, fiber.StatusBadRequest, "malformed request body")
	}

	res, err := h.Inv.Adjust(id, body.Action, body.Quantity)
	if err != nil {
		return failErr(c, "inventory.adjust.fail", err)
	}
	applog.Audit(c, "inventory.adjust", map[string]any{
		"item_id": id, "action": body.Action, "requested": body.Quantity, "applied": res.Applied,
	})
	return okMsg(c, "Inventory quantity updated successfully", fiber.Map{
		"item":            res.Item,
		"appliedQuantity": res.Applied,
	})
}

// PUT /api/v1/inventory/:id  (admin)
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	id, okID := validate.ID(c.Params("id"))
	if !okID {
		return fail(c, fiber.StatusBadRequest, "invalid inventory item id")
	}
	var body inventoryItemBody
	if err := c.BodyParser(&body); err != nil {
		return fail(c, fiber.StatusBadRequest, "malformed request body")
	}
	item, err := h.Inv.Update(id, body.input())
	if err != nil {
		return failErr(c, "inventory.update.fail", err)
	}
	applog.Audit(c, "inventory.update", map[string]any{"item_id": id})
	return okMsg(c, "Inventory item updated successfully", fiber.Map{"item": item})
}

// DELETE /api/v1/inventory/:id  (admin)
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	id, okID := validate.ID(c.Params("id"))
	if !okID {
		return fail(c, fiber.StatusBadRequest, "invalid inventory item id")
	}
	if err := h.Inv.Delete(id); err != nil {
		return failErr(c, "inventory.delete.fail", err)
	}
	applog.Audit(c, "inventory.delete", map[string]any{"item_id": id})
	return okMsg(c, "Inventory item deleted successfully", nil)
}

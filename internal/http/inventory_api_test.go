package handlers_test

import (
	"net/http"
	"testing"

	"zosswater/internal/domain"
)

func TestInventoryAdjustOverAPI(t *testing.T) {
	app, userRepo := newAPIApp(t)
	if err := userRepo.BindSession("sid-admin", "u-admin"); err != nil {
		t.Fatal(err)
	}

	status, env := doJSON(t, app, "POST", "/api/v1/inventory", "sid-admin", map[string]any{
		"itemName": "pH Test Strips", "category": "materials", "quantity": 3, "minStockLevel": 20,
	})
	if status != http.StatusCreated {
		t.Fatalf("add: want 201, got %d (%s)", status, env.Message)
	}
	var createData struct {
		Item domain.InventoryItem `json:"item"`
	}
	decodeData(t, env, &createData)
	id := createData.Item.ID

	// subtracting past zero clamps and reports the applied delta
	status, env = doJSON(t, app, "PATCH", "/api/v1/inventory/"+id+"/quantity", "sid-admin", map[string]any{
		"action": "subtract", "quantity": 10,
	})
	if status != http.StatusOK {
		t.Fatalf("adjust: want 200, got %d (%s)", status, env.Message)
	}
	var adjData struct {
		Item            domain.InventoryItem `json:"item"`
		AppliedQuantity int                  `json:"appliedQuantity"`
	}
	decodeData(t, env, &adjData)
	if adjData.Item.Quantity != 0 || adjData.AppliedQuantity != 3 {
		t.Fatalf("want quantity 0 applied 3, got %+v", adjData)
	}

	status, _ = doJSON(t, app, "PATCH", "/api/v1/inventory/"+id+"/quantity", "sid-admin", map[string]any{
		"action": "add", "quantity": 25,
	})
	if status != http.StatusOK {
		t.Fatalf("restock: want 200, got %d", status)
	}

	// taxonomy mapping on the wire
	status, _ = doJSON(t, app, "PATCH", "/api/v1/inventory/missing-item/quantity", "sid-admin", map[string]any{
		"action": "add", "quantity": 1,
	})
	if status != http.StatusNotFound {
		t.Fatalf("unknown item: want 404, got %d", status)
	}
	status, _ = doJSON(t, app, "PATCH", "/api/v1/inventory/"+id+"/quantity", "sid-admin", map[string]any{
		"action": "multiply", "quantity": 2,
	})
	if status != http.StatusBadRequest {
		t.Fatalf("bad action: want 400, got %d", status)
	}
}

func TestInventoryListAndStats(t *testing.T) {
	app, userRepo := newAPIApp(t)
	if err := userRepo.BindSession("sid-admin", "u-admin"); err != nil {
		t.Fatal(err)
	}

	// seeded ledger: one machine, two materials, the descaler below threshold
	status, env := doJSON(t, app, "GET", "/api/v1/inventory", "sid-admin", nil)
	if status != http.StatusOK {
		t.Fatalf("list: want 200, got %d", status)
	}
	var listData struct {
		Inventory     []domain.InventoryItem `json:"inventory"`
		TotalItems    int                    `json:"totalItems"`
		LowStockItems int                    `json:"lowStockItems"`
	}
	decodeData(t, env, &listData)
	if listData.TotalItems != 3 || listData.LowStockItems != 1 {
		t.Fatalf("bad list summary: %+v", listData)
	}

	status, env = doJSON(t, app, "GET", "/api/v1/inventory?category=materials&search=descaler", "sid-admin", nil)
	if status != http.StatusOK {
		t.Fatalf("filtered list: want 200, got %d", status)
	}
	decodeData(t, env, &listData)
	if listData.TotalItems != 1 || listData.Inventory[0].ID != "inv-descaler" {
		t.Fatalf("bad filtered list: %+v", listData)
	}

	status, env = doJSON(t, app, "GET", "/api/v1/inventory/stats", "sid-admin", nil)
	if status != http.StatusOK {
		t.Fatalf("stats: want 200, got %d", status)
	}
	var stats struct {
		TotalItems     int `json:"totalItems"`
		MachinesCount  int `json:"machinesCount"`
		MaterialsCount int `json:"materialsCount"`
		LowStockCount  int `json:"lowStockCount"`
	}
	decodeData(t, env, &stats)
	if stats.TotalItems != 3 || stats.MachinesCount != 1 || stats.MaterialsCount != 2 || stats.LowStockCount != 1 {
		t.Fatalf("bad stats: %+v", stats)
	}

	status, env = doJSON(t, app, "GET", "/api/v1/inventory/low-stock", "sid-admin", nil)
	if status != http.StatusOK {
		t.Fatalf("low-stock: want 200, got %d", status)
	}
	var lowData struct {
		LowStockItems []domain.InventoryItem `json:"lowStockItems"`
		Count         int                    `json:"count"`
	}
	decodeData(t, env, &lowData)
	if lowData.Count != 1 || lowData.LowStockItems[0].ID != "inv-descaler" {
		t.Fatalf("bad low-stock payload: %+v", lowData)
	}
}

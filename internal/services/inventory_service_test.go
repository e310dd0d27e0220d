package services_test

import (
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"zosswater/internal/domain"
	"zosswater/internal/repos"
	"zosswater/internal/services"
)

func memdbInventory(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	schema := `
	CREATE TABLE inventory_items(
	  id TEXT PRIMARY KEY,
	  item_name TEXT NOT NULL,
	  category TEXT NOT NULL,
	  description TEXT NOT NULL DEFAULT '',
	  quantity INTEGER NOT NULL DEFAULT 0 CHECK (quantity >= 0),
	  unit TEXT NOT NULL DEFAULT 'pieces',
	  min_stock_level INTEGER NOT NULL DEFAULT 10,
	  price NUMERIC NOT NULL DEFAULT 0,
	  supplier TEXT NOT NULL DEFAULT '',
	  location TEXT NOT NULL DEFAULT '',
	  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
	  updated_at TEXT
	);
	`
	if _, err := db.Exec(schema); err != nil {
		t.Fatal(err)
	}
	return db
}

func newInventoryService(t *testing.T) *services.InventoryService {
	t.Helper()
	return services.NewInventoryService(repos.NewInventoryRepo(memdbInventory(t)))
}

func TestAdjustQuantityFloorsAtZero(t *testing.T) {
	svc := newInventoryService(t)

	item, err := svc.Add(services.ItemInput{ItemName: "Descaler", Category: "materials", Quantity: 5})
	if err != nil {
		t.Fatal(err)
	}

	// subtracting more than available clamps at 0 and reports the real delta
	res, err := svc.Adjust(item.ID, services.ActionSubtract, 10)
	if err != nil {
		t.Fatal(err)
	}
	if res.Item.Quantity != 0 {
		t.Fatalf("want quantity 0, got %d", res.Item.Quantity)
	}
	if res.Applied != 5 {
		t.Fatalf("want applied 5, got %d", res.Applied)
	}

	res, err = svc.Adjust(item.ID, services.ActionAdd, 3)
	if err != nil {
		t.Fatal(err)
	}
	if res.Item.Quantity != 3 || res.Applied != 3 {
		t.Fatalf("want quantity 3 applied 3, got %+v", res)
	}
}

func TestAdjustSequenceNeverNegative(t *testing.T) {
	svc := newInventoryService(t)

	item, err := svc.Add(services.ItemInput{ItemName: "Filter", Category: "materials", Quantity: 4})
	if err != nil {
		t.Fatal(err)
	}

	ops := []struct {
		action string
		amount int
		want   int
	}{
		{services.ActionSubtract, 2, 2},
		{services.ActionSubtract, 5, 0}, // clamps
		{services.ActionAdd, 7, 7},
		{services.ActionSubtract, 3, 4},
	}
	for i, op := range ops {
		res, err := svc.Adjust(item.ID, op.action, op.amount)
		if err != nil {
			t.Fatalf("op %d: %v", i, err)
		}
		if res.Item.Quantity < 0 {
			t.Fatalf("op %d: quantity went negative", i)
		}
		if res.Item.Quantity != op.want {
			t.Fatalf("op %d: want %d, got %d", i, op.want, res.Item.Quantity)
		}
	}
}

func TestAdjustErrors(t *testing.T) {
	svc := newInventoryService(t)

	if _, err := svc.Adjust("nope", services.ActionAdd, 1); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want NotFound, got %v", err)
	}

	item, err := svc.Add(services.ItemInput{ItemName: "Membrane", Category: "materials"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Adjust(item.ID, "multiply", 2); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("want ValidationError for bad action, got %v", err)
	}
	if _, err := svc.Adjust(item.ID, services.ActionAdd, 0); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("want ValidationError for non-positive amount, got %v", err)
	}
}

func TestLowStockBoundary(t *testing.T) {
	svc := newInventoryService(t)

	mk := func(name string, qty, min int) {
		t.Helper()
		if _, err := svc.Add(services.ItemInput{
			ItemName: name, Category: "materials", Quantity: qty, MinStockLevel: min,
		}); err != nil {
			t.Fatal(err)
		}
	}
	mk("below", 5, 10)
	mk("at-threshold", 10, 10) // boundary: not low
	mk("far-below", 1, 5)
	mk("healthy", 50, 10)

	low, err := svc.LowStock()
	if err != nil {
		t.Fatal(err)
	}
	if len(low) != 2 {
		t.Fatalf("want 2 low items, got %d", len(low))
	}
	// ascending by quantity
	if low[0].ItemName != "far-below" || low[1].ItemName != "below" {
		t.Fatalf("bad order: %s, %s", low[0].ItemName, low[1].ItemName)
	}
}

func TestLowStockScenario(t *testing.T) {
	svc := newInventoryService(t)

	item, err := svc.Add(services.ItemInput{
		ItemName: "Filter Cartridge", Category: "materials", Quantity: 5, MinStockLevel: 10,
	})
	if err != nil {
		t.Fatal(err)
	}

	low, err := svc.LowStock()
	if err != nil {
		t.Fatal(err)
	}
	if len(low) != 1 || low[0].ID != item.ID {
		t.Fatalf("expected Filter Cartridge in low stock, got %+v", low)
	}

	res, err := svc.Adjust(item.ID, services.ActionAdd, 10)
	if err != nil {
		t.Fatal(err)
	}
	if res.Item.Quantity != 15 {
		t.Fatalf("want quantity 15, got %d", res.Item.Quantity)
	}

	low, err = svc.LowStock()
	if err != nil {
		t.Fatal(err)
	}
	if len(low) != 0 {
		t.Fatalf("expected empty low stock, got %+v", low)
	}
}

func TestInventoryStats(t *testing.T) {
	svc := newInventoryService(t)

	mk := func(name, cat string, qty, min int) {
		t.Helper()
		if _, err := svc.Add(services.ItemInput{
			ItemName: name, Category: cat, Quantity: qty, MinStockLevel: min,
		}); err != nil {
			t.Fatal(err)
		}
	}
	mk("ionizer", "machines", 3, 5)
	mk("pump", "machines", 9, 2)
	mk("filter", "materials", 1, 10)

	stats, err := svc.Stats()
	if err != nil {
		t.Fatal(err)
	}
	want := domain.InventoryStats{TotalItems: 3, MachinesCount: 2, MaterialsCount: 1, LowStockCount: 2}
	if stats != want {
		t.Fatalf("want %+v, got %+v", want, stats)
	}
}

func TestInventoryListFilters(t *testing.T) {
	svc := newInventoryService(t)

	if _, err := svc.Add(services.ItemInput{ItemName: "Ionizer 5000", Category: "machines", Description: "countertop unit"}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Add(services.ItemInput{ItemName: "Carbon Filter", Category: "materials"}); err != nil {
		t.Fatal(err)
	}

	machines, err := svc.List("machines", "")
	if err != nil {
		t.Fatal(err)
	}
	if len(machines) != 1 || machines[0].ItemName != "Ionizer 5000" {
		t.Fatalf("bad category filter: %+v", machines)
	}

	found, err := svc.List("", "carbon")
	if err != nil {
		t.Fatal(err)
	}
	if len(found) != 1 || found[0].ItemName != "Carbon Filter" {
		t.Fatalf("bad search: %+v", found)
	}

	if _, err := svc.List("vehicles", ""); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("want ValidationError for bad category, got %v", err)
	}
}

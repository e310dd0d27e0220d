package domain

const (
	CategoryMachines  = "machines"
	CategoryMaterials = "materials"
)

func ValidInventoryCategory(c string) bool {
	return c == CategoryMachines || c == CategoryMaterials
}

type InventoryItem struct {
	ID            string  `db:"id" json:"id"`
	ItemName      string  `db:"item_name" json:"itemName"`
	Category      string  `db:"category" json:"category"`
	Description   string  `db:"description" json:"description,omitempty"`
	Quantity      int     `db:"quantity" json:"quantity"`
	Unit          string  `db:"unit" json:"unit"`
	MinStockLevel int     `db:"min_stock_level" json:"minStockLevel"`
	Price         float64 `db:"price" json:"price,omitempty"`
	Supplier      string  `db:"supplier" json:"supplier,omitempty"`
	Location      string  `db:"location" json:"location,omitempty"`
	CreatedAt     string  `db:"created_at" json:"createdAt"`
	UpdatedAt     string  `db:"updated_at" json:"updatedAt,omitempty"`
}

// LowStock reports whether the item has fallen below its threshold.
// Sitting exactly at the threshold is not low.
func (i *InventoryItem) LowStock() bool { return i.Quantity < i.MinStockLevel }

// InventoryStats are aggregate counts over the whole ledger.
type InventoryStats struct {
	TotalItems     int `db:"total_items" json:"totalItems"`
	MachinesCount  int `db:"machines_count" json:"machinesCount"`
	MaterialsCount int `db:"materials_count" json:"materialsCount"`
	LowStockCount  int `db:"low_stock_count" json:"lowStockCount"`
}

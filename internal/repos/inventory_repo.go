package repos

import (
	"zosswater/internal/domain"

	"github.com/jmoiron/sqlx"
)

const inventoryCols = `id, item_name, category, description, quantity, unit,
  min_stock_level, price, supplier, location,
  created_at, COALESCE(updated_at,'') AS updated_at`

type InventoryRepo struct{ db *sqlx.DB }

func NewInventoryRepo(db *sqlx.DB) *InventoryRepo { return &InventoryRepo{db: db} }

func (r *InventoryRepo) Create(i *domain.InventoryItem) error {
	_, err := r.db.Exec(`
		INSERT INTO inventory_items(id,item_name,category,description,quantity,unit,
		  min_stock_level,price,supplier,location)
		VALUES(?,?,?,?,?,?,?,?,?,?)
	`, i.ID, i.ItemName, i.Category, i.Description, i.Quantity, i.Unit,
		i.MinStockLevel, i.Price, i.Supplier, i.Location)
	return err
}

func (r *InventoryRepo) Get(id string) (*domain.InventoryItem, error) {
	var i domain.InventoryItem
	err := r.db.Get(&i, `SELECT `+inventoryCols+` FROM inventory_items WHERE id=?`, id)
	if err != nil {
		return nil, mapNoRows(err, "inventory item")
	}
	return &i, nil
}

// List filters by category and/or a substring match over name/description.
func (r *InventoryRepo) List(category, search string) ([]domain.InventoryItem, error) {
	where := `1=1`
	args := []any{}
	if category != "" {
		where += ` AND category = ?`
		args = append(args, category)
	}
	if search != "" {
		where += ` AND (LOWER(item_name) LIKE ? OR LOWER(description) LIKE ?)`
		like := "%" + search + "%"
		args = append(args, like, like)
	}

	var out []domain.InventoryItem
	err := r.db.Select(&out, `
		SELECT `+inventoryCols+` FROM inventory_items
		WHERE `+where+`
		ORDER BY created_at DESC
	`, args...)
	return out, err
}

func (r *InventoryRepo) Update(i *domain.InventoryItem) error {
	res, err := r.db.Exec(`
		UPDATE inventory_items
		SET item_name=?, category=?, description=?, unit=?, min_stock_level=?,
		    price=?, supplier=?, location=?, updated_at=CURRENT_TIMESTAMP
		WHERE id=?
	`, i.ItemName, i.Category, i.Description, i.Unit, i.MinStockLevel,
		i.Price, i.Supplier, i.Location, i.ID)
	return requireRow(res, err, "inventory item")
}

func (r *InventoryRepo) Delete(id string) error {
	res, err := r.db.Exec(`DELETE FROM inventory_items WHERE id=?`, id)
	return requireRow(res, err, "inventory item")
}

// Adjust applies a signed delta atomically, flooring at zero in the
// store so concurrent adjustments cannot drive quantity negative.
func (r *InventoryRepo) Adjust(id string, delta int) error {
	res, err := r.db.Exec(`
		UPDATE inventory_items
		SET quantity = MAX(0, quantity + ?), updated_at=CURRENT_TIMESTAMP
		WHERE id=?
	`, delta, id)
	return requireRow(res, err, "inventory item")
}

// LowStock returns items strictly below their threshold, lowest first.
func (r *InventoryRepo) LowStock() ([]domain.InventoryItem, error) {
	var out []domain.InventoryItem
	err := r.db.Select(&out, `
		SELECT `+inventoryCols+` FROM inventory_items
		WHERE quantity < min_stock_level
		ORDER BY quantity ASC
	`)
	return out, err
}

func (r *InventoryRepo) Stats() (domain.InventoryStats, error) {
	var s domain.InventoryStats
	err := r.db.Get(&s, `
		SELECT COUNT(*) AS total_items,
		       COALESCE(SUM(category='machines'),0)            AS machines_count,
		       COALESCE(SUM(category='materials'),0)           AS materials_count,
		       COALESCE(SUM(quantity < min_stock_level),0)     AS low_stock_count
		FROM inventory_items
	`)
	return s, err
}

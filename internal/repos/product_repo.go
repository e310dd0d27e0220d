package repos

import (
	"zosswater/internal/domain"

	"github.com/jmoiron/sqlx"
)

const productCols = `id, user_id, name, model_number, purchase_date, image_url,
  warranty_start, warranty_end, amc_start, amc_end, approved,
  created_at, COALESCE(updated_at,'') AS updated_at`

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

func (r *ProductRepo) Create(p *domain.Product) error {
	_, err := r.db.Exec(`
		INSERT INTO products(id,user_id,name,model_number,purchase_date,image_url,
		  warranty_start,warranty_end,amc_start,amc_end,approved)
		VALUES(?,?,?,?,?,?,?,?,?,?,?)
	`, p.ID, p.UserID, p.Name, p.ModelNumber, p.PurchaseDate, p.ImageURL,
		p.WarrantyStart, p.WarrantyEnd, p.AMCStart, p.AMCEnd, p.Approved)
	return err
}

func (r *ProductRepo) Get(id string) (*domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `SELECT `+productCols+` FROM products WHERE id=?`, id)
	if err != nil {
		return nil, mapNoRows(err, "product")
	}
	return &p, nil
}

func (r *ProductRepo) ListByUser(userID string) ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `
		SELECT `+productCols+` FROM products WHERE user_id=? ORDER BY created_at DESC
	`, userID)
	return out, err
}

func (r *ProductRepo) ListAll(limit, offset int) ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `
		SELECT `+productCols+` FROM products ORDER BY created_at DESC LIMIT ? OFFSET ?
	`, limit, offset)
	return out, err
}

func (r *ProductRepo) Count() (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM products`)
	return n, err
}

// SetApproved is idempotent: re-approving an approved product is a no-op.
func (r *ProductRepo) SetApproved(id string, approved bool) error {
	res, err := r.db.Exec(`
		UPDATE products SET approved=?, updated_at=CURRENT_TIMESTAMP WHERE id=?
	`, approved, id)
	return requireRow(res, err, "product")
}

func (r *ProductRepo) Delete(id string) error {
	res, err := r.db.Exec(`DELETE FROM products WHERE id=?`, id)
	return requireRow(res, err, "product")
}

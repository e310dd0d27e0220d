package repos

import (
	"encoding/json"

	"zosswater/internal/domain"

	"github.com/jmoiron/sqlx"
)

const catalogCols = `id, name, description, price, category, image_url,
  features_json, specs_json, brochure_url,
  created_at, COALESCE(updated_at,'') AS updated_at`

type CatalogRepo struct{ db *sqlx.DB }

func NewCatalogRepo(db *sqlx.DB) *CatalogRepo { return &CatalogRepo{db: db} }

func encodeCatalog(p *domain.CatalogProduct) {
	if p.Features == nil {
		p.Features = []string{}
	}
	if p.Specifications == nil {
		p.Specifications = map[string]string{}
	}
	fb, _ := json.Marshal(p.Features)
	sb, _ := json.Marshal(p.Specifications)
	p.FeaturesJSON, p.SpecsJSON = string(fb), string(sb)
}

func decodeCatalog(p *domain.CatalogProduct) {
	p.Features = []string{}
	p.Specifications = map[string]string{}
	_ = json.Unmarshal([]byte(p.FeaturesJSON), &p.Features)
	_ = json.Unmarshal([]byte(p.SpecsJSON), &p.Specifications)
}

func (r *CatalogRepo) Create(p *domain.CatalogProduct) error {
	encodeCatalog(p)
	_, err := r.db.Exec(`
		INSERT INTO catalog_products(id,name,description,price,category,image_url,
		  features_json,specs_json,brochure_url)
		VALUES(?,?,?,?,?,?,?,?,?)
	`, p.ID, p.Name, p.Description, p.Price, p.Category, p.ImageURL,
		p.FeaturesJSON, p.SpecsJSON, p.BrochureURL)
	return err
}

func (r *CatalogRepo) Get(id string) (*domain.CatalogProduct, error) {
	var p domain.CatalogProduct
	err := r.db.Get(&p, `SELECT `+catalogCols+` FROM catalog_products WHERE id=?`, id)
	if err != nil {
		return nil, mapNoRows(err, "product")
	}
	decodeCatalog(&p)
	return &p, nil
}

func (r *CatalogRepo) List(category string) ([]domain.CatalogProduct, error) {
	where := `1=1`
	args := []any{}
	if category != "" {
		where += ` AND category = ?`
		args = append(args, category)
	}

	var out []domain.CatalogProduct
	err := r.db.Select(&out, `
		SELECT `+catalogCols+` FROM catalog_products
		WHERE `+where+`
		ORDER BY created_at DESC
	`, args...)
	for i := range out {
		decodeCatalog(&out[i])
	}
	return out, err
}

func (r *CatalogRepo) Update(p *domain.CatalogProduct) error {
	encodeCatalog(p)
	res, err := r.db.Exec(`
		UPDATE catalog_products
		SET name=?, description=?, price=?, category=?, image_url=?,
		    features_json=?, specs_json=?, brochure_url=?, updated_at=CURRENT_TIMESTAMP
		WHERE id=?
	`, p.Name, p.Description, p.Price, p.Category, p.ImageURL,
		p.FeaturesJSON, p.SpecsJSON, p.BrochureURL, p.ID)
	return requireRow(res, err, "product")
}

func (r *CatalogRepo) Delete(id string) error {
	res, err := r.db.Exec(`DELETE FROM catalog_products WHERE id=?`, id)
	return requireRow(res, err, "product")
}

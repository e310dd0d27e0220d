package repos

import (
	"zosswater/internal/domain"

	"github.com/jmoiron/sqlx"
)

type TemplateRepo struct{ db *sqlx.DB }

func NewTemplateRepo(db *sqlx.DB) *TemplateRepo { return &TemplateRepo{db: db} }

func (r *TemplateRepo) Create(t *domain.ProductTemplate) error {
	_, err := r.db.Exec(`
		INSERT INTO product_templates(id,model_number,name,description,
		  warranty_months,amc_months,service_frequency_days)
		VALUES(?,?,?,?,?,?,?)
	`, t.ID, t.ModelNumber, t.Name, t.Description,
		t.WarrantyMonths, t.AMCMonths, t.ServiceFrequencyDays)
	if err != nil && isUniqueViolation(err) {
		return domain.Conflictf("template for model %s already exists", t.ModelNumber)
	}
	return err
}

// ByModel looks up the template for a model number, case-insensitively.
// Registration treats absence as "no template", so NotFound is expected.
func (r *TemplateRepo) ByModel(model string) (*domain.ProductTemplate, error) {
	var t domain.ProductTemplate
	err := r.db.Get(&t, `
		SELECT id,model_number,name,description,warranty_months,amc_months,
		       service_frequency_days,created_at
		FROM product_templates WHERE LOWER(model_number)=LOWER(?)
	`, model)
	if err != nil {
		return nil, mapNoRows(err, "template")
	}
	return &t, nil
}

func (r *TemplateRepo) List() ([]domain.ProductTemplate, error) {
	var out []domain.ProductTemplate
	err := r.db.Select(&out, `
		SELECT id,model_number,name,description,warranty_months,amc_months,
		       service_frequency_days,created_at
		FROM product_templates ORDER BY model_number
	`)
	return out, err
}

func (r *TemplateRepo) Delete(id string) error {
	res, err := r.db.Exec(`DELETE FROM product_templates WHERE id=?`, id)
	return requireRow(res, err, "template")
}

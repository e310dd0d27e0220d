package repos

import (
	"database/sql"

	"zosswater/internal/domain"

	"github.com/jmoiron/sqlx"
)

const serviceCols = `s.id, s.user_id, s.product_id, s.issue, s.requested_date,
  s.requested_time, s.status, s.technician_name, s.technician_contact,
  s.scheduled_date, s.scheduled_time, s.last_service_date,
  s.created_at, COALESCE(s.updated_at,'') AS updated_at`

type ServiceRepo struct{ db *sqlx.DB }

func NewServiceRepo(db *sqlx.DB) *ServiceRepo { return &ServiceRepo{db: db} }

// serviceRow carries the LEFT JOINed product columns; they are NULL when
// the referenced product has been deleted.
type serviceRow struct {
	domain.ServiceRequest
	PID    sql.NullString `db:"p_id"`
	PName  sql.NullString `db:"p_name"`
	PModel sql.NullString `db:"p_model"`
}

func (row serviceRow) view() domain.ServiceRequestView {
	v := domain.ServiceRequestView{ServiceRequest: row.ServiceRequest}
	if row.PID.Valid {
		v.Product = &domain.ProductSummary{
			ID:          row.PID.String,
			Name:        row.PName.String,
			ModelNumber: row.PModel.String,
		}
	}
	return v
}

func views(rows []serviceRow) []domain.ServiceRequestView {
	out := make([]domain.ServiceRequestView, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.view())
	}
	return out
}

func (r *ServiceRepo) Create(s *domain.ServiceRequest) error {
	_, err := r.db.Exec(`
		INSERT INTO service_requests(id,user_id,product_id,issue,requested_date,requested_time,status)
		VALUES(?,?,?,?,?,?,?)
	`, s.ID, s.UserID, s.ProductID, s.Issue, s.RequestedDate, s.RequestedTime, s.Status)
	return err
}

func (r *ServiceRepo) Get(id string) (*domain.ServiceRequest, error) {
	var s domain.ServiceRequest
	err := r.db.Get(&s, `
		SELECT `+serviceCols+` FROM service_requests s WHERE s.id=?
	`, id)
	if err != nil {
		return nil, mapNoRows(err, "service request")
	}
	return &s, nil
}

func (r *ServiceRepo) GetView(id string) (*domain.ServiceRequestView, error) {
	var row serviceRow
	err := r.db.Get(&row, `
		SELECT `+serviceCols+`, p.id AS p_id, p.name AS p_name, p.model_number AS p_model
		FROM service_requests s
		LEFT JOIN products p ON p.id = s.product_id
		WHERE s.id=?
	`, id)
	if err != nil {
		return nil, mapNoRows(err, "service request")
	}
	v := row.view()
	return &v, nil
}

func (r *ServiceRepo) ListByUser(userID string) ([]domain.ServiceRequestView, error) {
	var rows []serviceRow
	err := r.db.Select(&rows, `
		SELECT `+serviceCols+`, p.id AS p_id, p.name AS p_name, p.model_number AS p_model
		FROM service_requests s
		LEFT JOIN products p ON p.id = s.product_id
		WHERE s.user_id=?
		ORDER BY s.created_at DESC
	`, userID)
	return views(rows), err
}

func (r *ServiceRepo) ListAll(limit, offset int) ([]domain.ServiceRequestView, error) {
	var rows []serviceRow
	err := r.db.Select(&rows, `
		SELECT `+serviceCols+`, p.id AS p_id, p.name AS p_name, p.model_number AS p_model
		FROM service_requests s
		LEFT JOIN products p ON p.id = s.product_id
		ORDER BY s.created_at DESC
		LIMIT ? OFFSET ?
	`, limit, offset)
	return views(rows), err
}

// ListByStatuses is the admin work queue query.
func (r *ServiceRepo) ListByStatuses(statuses ...string) ([]domain.ServiceRequestView, error) {
	query, args, err := sqlx.In(`
		SELECT `+serviceCols+`, p.id AS p_id, p.name AS p_name, p.model_number AS p_model
		FROM service_requests s
		LEFT JOIN products p ON p.id = s.product_id
		WHERE s.status IN (?)
		ORDER BY s.created_at ASC
	`, statuses)
	if err != nil {
		return nil, err
	}
	var rows []serviceRow
	err = r.db.Select(&rows, query, args...)
	return views(rows), err
}

func (r *ServiceRepo) Schedule(id, techName, techContact, date, tm string) error {
	res, err := r.db.Exec(`
		UPDATE service_requests
		SET status=?, technician_name=?, technician_contact=?,
		    scheduled_date=?, scheduled_time=?, updated_at=CURRENT_TIMESTAMP
		WHERE id=?
	`, domain.StatusScheduled, techName, techContact, date, tm, id)
	return requireRow(res, err, "service request")
}

func (r *ServiceRepo) Complete(id, lastServiceDate string) error {
	res, err := r.db.Exec(`
		UPDATE service_requests
		SET status=?, last_service_date=?, updated_at=CURRENT_TIMESTAMP
		WHERE id=?
	`, domain.StatusCompleted, lastServiceDate, id)
	return requireRow(res, err, "service request")
}

// SetStatus is the bare administrative toggle; technician and schedule
// fields are left untouched.
func (r *ServiceRepo) SetStatus(id, status string) error {
	res, err := r.db.Exec(`
		UPDATE service_requests SET status=?, updated_at=CURRENT_TIMESTAMP WHERE id=?
	`, status, id)
	return requireRow(res, err, "service request")
}

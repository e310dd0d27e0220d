package domain

// Service ticket states. Transitions are one-directional
// (pending -> scheduled -> completed) except the administrative
// completed<->pending toggle.
const (
	StatusPending   = "Pending Approval"
	StatusScheduled = "Approved & Scheduled"
	StatusCompleted = "Completed"
)

func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusScheduled || s == StatusCompleted
}

type ServiceRequest struct {
	ID                string `db:"id" json:"id"`
	UserID            string `db:"user_id" json:"userId"`
	ProductID         string `db:"product_id" json:"productId"`
	Issue             string `db:"issue" json:"issue"`
	RequestedDate     string `db:"requested_date" json:"requestedDate"`
	RequestedTime     string `db:"requested_time" json:"requestedTime,omitempty"`
	Status            string `db:"status" json:"status"`
	TechnicianName    string `db:"technician_name" json:"technicianName,omitempty"`
	TechnicianContact string `db:"technician_contact" json:"technicianContact,omitempty"`
	ScheduledDate     string `db:"scheduled_date" json:"scheduledDate,omitempty"`
	ScheduledTime     string `db:"scheduled_time" json:"scheduledTime,omitempty"`
	LastServiceDate   string `db:"last_service_date" json:"lastServiceDate,omitempty"`
	CreatedAt         string `db:"created_at" json:"createdAt"`
	UpdatedAt         string `db:"updated_at" json:"updatedAt,omitempty"`
}

// ServiceRequestView resolves the product reference at read time.
// Product is nil when the referenced unit has been deleted.
type ServiceRequestView struct {
	ServiceRequest
	Product *ProductSummary `json:"product"`
}

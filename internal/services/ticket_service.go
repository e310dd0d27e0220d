package services

import (
	"time"

	"zosswater/internal/domain"
	"zosswater/internal/repos"

	"github.com/araddon/dateparse"
	"github.com/google/uuid"
)

// TicketService governs the service-request lifecycle:
// Pending Approval -> Approved & Scheduled -> Completed, plus the
// administrative completed<->pending toggle.
type TicketService struct {
	Requests *repos.ServiceRepo
	now      func() time.Time
}

func NewTicketService(requests *repos.ServiceRepo) *TicketService {
	return &TicketService{Requests: requests, now: time.Now}
}

// Submit opens a ticket in Pending Approval; technician and schedule
// fields stay empty until an admin schedules it.
func (s *TicketService) Submit(userID, productID, issue, requestedDate, requestedTime string) (*domain.ServiceRequest, error) {
	if issue == "" {
		return nil, domain.Validationf("issue description is required")
	}
	if productID == "" {
		return nil, domain.Validationf("productId is required")
	}
	reqDate, err := dateparse.ParseAny(requestedDate)
	if err != nil {
		return nil, domain.Validationf("bad requestedDate %q", requestedDate)
	}

	sr := &domain.ServiceRequest{
		ID:            uuid.NewString(),
		UserID:        userID,
		ProductID:     productID,
		Issue:         issue,
		RequestedDate: reqDate.Format(domain.DateOnly),
		RequestedTime: requestedTime,
		Status:        domain.StatusPending,
	}
	if err := s.Requests.Create(sr); err != nil {
		return nil, err
	}
	return sr, nil
}

// ScheduleInput carries the admin scheduling decision; every field is
// required by the transition.
type ScheduleInput struct {
	TechnicianName    string
	TechnicianContact string
	ScheduledDate     string
	ScheduledTime     string
}

// Schedule moves a pending ticket to Approved & Scheduled. Any other
// starting state is an invalid transition.
func (s *TicketService) Schedule(id string, in ScheduleInput) (*domain.ServiceRequestView, error) {
	if in.TechnicianName == "" || in.TechnicianContact == "" ||
		in.ScheduledDate == "" || in.ScheduledTime == "" {
		return nil, domain.Validationf("technician name, contact, scheduled date and time are required")
	}
	schedDate, err := dateparse.ParseAny(in.ScheduledDate)
	if err != nil {
		return nil, domain.Validationf("bad scheduledDate %q", in.ScheduledDate)
	}

	cur, err := s.Requests.Get(id)
	if err != nil {
		return nil, err
	}
	if cur.Status != domain.StatusPending {
		return nil, domain.InvalidTransitionf("cannot schedule a request in status %q", cur.Status)
	}

	if err := s.Requests.Schedule(id, in.TechnicianName, in.TechnicianContact,
		schedDate.Format(domain.DateOnly), in.ScheduledTime); err != nil {
		return nil, err
	}
	return s.Requests.GetView(id)
}

// Complete finishes a scheduled ticket and stamps the last service date.
func (s *TicketService) Complete(id string) (*domain.ServiceRequestView, error) {
	cur, err := s.Requests.Get(id)
	if err != nil {
		return nil, err
	}
	if cur.Status != domain.StatusScheduled {
		return nil, domain.InvalidTransitionf("cannot complete a request in status %q", cur.Status)
	}
	if err := s.Requests.Complete(id, s.now().Format(domain.DateOnly)); err != nil {
		return nil, err
	}
	return s.Requests.GetView(id)
}

// ToggleStatus is the bare administrative correction between Completed
// and Pending Approval. It never touches technician or schedule fields.
func (s *TicketService) ToggleStatus(id string, completed bool) (*domain.ServiceRequestView, error) {
	if _, err := s.Requests.Get(id); err != nil {
		return nil, err
	}
	status := domain.StatusPending
	if completed {
		status = domain.StatusCompleted
	}
	if err := s.Requests.SetStatus(id, status); err != nil {
		return nil, err
	}
	return s.Requests.GetView(id)
}

// PendingQueue bundles both open statuses as the admin work queue.
func (s *TicketService) PendingQueue() ([]domain.ServiceRequestView, error) {
	return s.Requests.ListByStatuses(domain.StatusPending, domain.StatusScheduled)
}

func (s *TicketService) ListByUser(userID string) ([]domain.ServiceRequestView, error) {
	return s.Requests.ListByUser(userID)
}

func (s *TicketService) ListAll(page, pageSize int) ([]domain.ServiceRequestView, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	return s.Requests.ListAll(pageSize, (page-1)*pageSize)
}

func (s *TicketService) Get(id string) (*domain.ServiceRequestView, error) {
	return s.Requests.GetView(id)
}

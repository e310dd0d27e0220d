package handlers

import (
	applog "zosswater/internal/log"
	"zosswater/internal/services"
	"zosswater/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type ServiceHandler struct {
	Tickets *services.TicketService
}

// POST /api/v1/services
func (h *ServiceHandler) Submit(c *fiber.Ctx) error {
	var body struct {
		ProductID     string `json:"productId"`
		Issue         string `json:"issue"`
		RequestedDate string `json:"requestedDate"`
		RequestedTime string `json:"requestedTime"`
	}
	if err := c.BodyParser(&body); err != nil {
		return fail(c, fiber.StatusBadRequest, "malformed request body")
	}

	sr, err := h.Tickets.Submit(currentUser(c).ID, body.ProductID, body.Issue,
		body.RequestedDate, body.RequestedTime)
	if err != nil {
		return failErr(c, "services.submit.fail", err)
	}
	applog.Audit(c, "services.submit", map[string]any{"request_id": sr.ID})
	return created(c, "Service request submitted", fiber.Map{"serviceRequest": sr})
}

// GET /api/v1/services/mine
func (h *ServiceHandler) ListMine(c *fiber.Ctx) error {
	reqs, err := h.Tickets.ListByUser(currentUser(c).ID)
	if err != nil {
		return failErr(c, "services.list.fail", err)
	}
	return ok(c, fiber.Map{"serviceRequests": reqs})
}

// GET /api/v1/services  (admin)
func (h *ServiceHandler) ListAll(c *fiber.Ctx) error {
	page := validate.Page(c.Query("page"))
	limit := validate.Limit(c.Query("limit"), 20)
	reqs, err := h.Tickets.ListAll(page, limit)
	if err != nil {
		return failErr(c, "services.list.fail", err)
	}
	return ok(c, fiber.Map{"serviceRequests": reqs})
}

// GET /api/v1/services/pending  (admin work queue: pending + scheduled)
func (h *ServiceHandler) PendingQueue(c *fiber.Ctx) error {
	reqs, err := h.Tickets.PendingQueue()
	if err != nil {
		return failErr(c, "services.pending.fail", err)
	}
	return ok(c, fiber.Map{"serviceRequests": reqs})
}

// GET /api/v1/services/:id
func (h *ServiceHandler) Get(c *fiber.Ctx) error {
	id, okID := validate.ID(c.Params("id"))
	if !okID {
		return fail(c, fiber.StatusBadRequest, "invalid service request id")
	}
	sr, err := h.Tickets.Get(id)
	if err != nil {
		return failErr(c, "services.get.fail", err)
	}
	if u := currentUser(c); !u.IsAdmin() && sr.UserID != u.ID {
		return fail(c, fiber.StatusForbidden, "Access denied")
	}
	return ok(c, fiber.Map{"serviceRequest": sr})
}

// PATCH /api/v1/services/:id/schedule  (admin)
func (h *ServiceHandler) Schedule(c *fiber.Ctx) error {
	id, okID := validate.ID(c.Params("id"))
	if !okID {
		return fail(c, fiber.StatusBadRequest, "invalid service request id")
	}
	var body struct {
		TechnicianName    string `json:"technicianName"`
		TechnicianContact string `json:"technicianContact"`
		ScheduledDate     string `json:"scheduledDate"`
		ScheduledTime     string `json:"scheduledTime"`
	}
	if err := c.BodyParser(&body); err != nil {
		return fail(c, fiber.StatusBadRequest, "malformed request body")
	}
	if _, okTime := validate.ClockTime(body.ScheduledTime); !okTime {
		return fail(c, fiber.StatusBadRequest, "scheduledTime must be HH:MM")
	}

	sr, err := h.Tickets.Schedule(id, services.ScheduleInput{
		TechnicianName:    body.TechnicianName,
		TechnicianContact: body.TechnicianContact,
		ScheduledDate:     body.ScheduledDate,
		ScheduledTime:     body.ScheduledTime,
	})
	if err != nil {
		return failErr(c, "services.schedule.fail", err)
	}
	applog.Audit(c, "services.schedule", map[string]any{"request_id": id, "technician": body.TechnicianName})
	return ok(c, fiber.Map{"serviceRequest": sr})
}

// PATCH /api/v1/services/:id/complete  (admin)
func (h *ServiceHandler) Complete(c *fiber.Ctx) error {
	id, okID := validate.ID(c.Params("id"))
	if !okID {
		return fail(c, fiber.StatusBadRequest, "invalid service request id")
	}
	sr, err := h.Tickets.Complete(id)
	if err != nil {
		return failErr(c, "services.complete.fail", err)
	}
	applog.Audit(c, "services.complete", map[string]any{"request_id": id})
	return ok(c, fiber.Map{"serviceRequest": sr})
}

// PATCH /api/v1/services/:id/status  (admin manual correction toggle)
func (h *ServiceHandler) ToggleStatus(c *fiber.Ctx) error {
	id, okID := validate.ID(c.Params("id"))
	if !okID {
		return fail(c, fiber.StatusBadRequest, "invalid service request id")
	}
	var body struct {
		Completed *bool `json:"completed"`
	}
	if err := c.BodyParser(&body); err != nil || body.Completed == nil {
		return fail(c, fiber.StatusBadRequest, "completed flag is required")
	}

	sr, err := h.Tickets.ToggleStatus(id, *body.Completed)
	if err != nil {
		return failErr(c, "services.toggle.fail", err)
	}
	applog.Audit(c, "services.toggle", map[string]any{"request_id": id, "completed": *body.Completed})
	return ok(c, fiber.Map{"serviceRequest": sr})
}

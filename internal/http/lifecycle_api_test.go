package handlers_test

import (
	"net/http"
	"testing"

	"zosswater/internal/domain"
)

// Full warranty/service lifecycle over the wire: a customer registers a
// unit, an admin approves it, the customer raises a ticket, the admin
// schedules and completes it.
func TestProductAndServiceLifecycle(t *testing.T) {
	app, userRepo := newAPIApp(t)
	for sid, uid := range map[string]string{
		"sid-admin": "u-admin",
		"sid-ravi":  "u-ravi",
		"sid-meera": "u-meera",
	} {
		if err := userRepo.BindSession(sid, uid); err != nil {
			t.Fatal(err)
		}
	}

	// customer self-registration; the seeded ZI-7000 template carries
	// a 24-month warranty and a 12-month AMC
	status, env := doJSON(t, app, "POST", "/api/v1/products", "sid-ravi", map[string]any{
		"productName":  "Zoss Ionizer 7000 Pro",
		"modelNumber":  "ZI-7000",
		"purchaseDate": "2024-01-15",
	})
	if status != http.StatusCreated {
		t.Fatalf("register: want 201, got %d (%s)", status, env.Message)
	}
	var productData struct {
		Product domain.Product `json:"product"`
	}
	decodeData(t, env, &productData)
	p := productData.Product
	if p.UserID != "u-ravi" {
		t.Fatalf("self-registration must bind to the caller, got %q", p.UserID)
	}
	if p.WarrantyEnd != "2026-01-15" || p.AMCEnd != "2025-01-15" {
		t.Fatalf("bad coverage windows: warranty %s, amc %s", p.WarrantyEnd, p.AMCEnd)
	}
	if p.Approved {
		t.Fatal("registration must await admin approval")
	}

	// another customer cannot read the unit
	status, _ = doJSON(t, app, "GET", "/api/v1/products/"+p.ID, "sid-meera", nil)
	if status != http.StatusForbidden {
		t.Fatalf("cross-customer read: want 403, got %d", status)
	}

	// admin approval
	status, env = doJSON(t, app, "PATCH", "/api/v1/products/"+p.ID+"/approve", "sid-admin", nil)
	if status != http.StatusOK {
		t.Fatalf("approve: want 200, got %d", status)
	}
	decodeData(t, env, &productData)
	if !productData.Product.Approved {
		t.Fatal("approve must flip the flag")
	}

	// customer raises a ticket
	status, env = doJSON(t, app, "POST", "/api/v1/services", "sid-ravi", map[string]any{
		"productId":     p.ID,
		"issue":         "output pH dropped below 8",
		"requestedDate": "2026-09-10",
		"requestedTime": "10:00",
	})
	if status != http.StatusCreated {
		t.Fatalf("submit: want 201, got %d (%s)", status, env.Message)
	}
	var srData struct {
		ServiceRequest domain.ServiceRequestView `json:"serviceRequest"`
	}
	decodeData(t, env, &srData)
	srID := srData.ServiceRequest.ID
	if srData.ServiceRequest.Status != domain.StatusPending {
		t.Fatalf("want %q, got %q", domain.StatusPending, srData.ServiceRequest.Status)
	}

	// ticket ownership guard
	status, _ = doJSON(t, app, "GET", "/api/v1/services/"+srID, "sid-meera", nil)
	if status != http.StatusForbidden {
		t.Fatalf("cross-customer ticket read: want 403, got %d", status)
	}

	// completing before scheduling is refused
	status, _ = doJSON(t, app, "PATCH", "/api/v1/services/"+srID+"/complete", "sid-admin", nil)
	if status != http.StatusConflict {
		t.Fatalf("premature complete: want 409, got %d", status)
	}

	// scheduledTime must be a clock time
	status, _ = doJSON(t, app, "PATCH", "/api/v1/services/"+srID+"/schedule", "sid-admin", map[string]any{
		"technicianName":    "Suresh",
		"technicianContact": "9876543210",
		"scheduledDate":     "2026-09-12",
		"scheduledTime":     "afternoon",
	})
	if status != http.StatusBadRequest {
		t.Fatalf("bad time: want 400, got %d", status)
	}

	status, env = doJSON(t, app, "PATCH", "/api/v1/services/"+srID+"/schedule", "sid-admin", map[string]any{
		"technicianName":    "Suresh",
		"technicianContact": "9876543210",
		"scheduledDate":     "2026-09-12",
		"scheduledTime":     "14:30",
	})
	if status != http.StatusOK {
		t.Fatalf("schedule: want 200, got %d (%s)", status, env.Message)
	}
	decodeData(t, env, &srData)
	if srData.ServiceRequest.Status != domain.StatusScheduled {
		t.Fatalf("want %q, got %q", domain.StatusScheduled, srData.ServiceRequest.Status)
	}
	if srData.ServiceRequest.Product == nil || srData.ServiceRequest.Product.ModelNumber != "ZI-7000" {
		t.Fatalf("view must join the product summary: %+v", srData.ServiceRequest.Product)
	}

	// the admin queue holds the scheduled ticket
	status, env = doJSON(t, app, "GET", "/api/v1/services/pending", "sid-admin", nil)
	if status != http.StatusOK {
		t.Fatalf("pending queue: want 200, got %d", status)
	}
	var queueData struct {
		ServiceRequests []domain.ServiceRequestView `json:"serviceRequests"`
	}
	decodeData(t, env, &queueData)
	if len(queueData.ServiceRequests) != 1 || queueData.ServiceRequests[0].ID != srID {
		t.Fatalf("bad queue: %+v", queueData.ServiceRequests)
	}

	status, env = doJSON(t, app, "PATCH", "/api/v1/services/"+srID+"/complete", "sid-admin", nil)
	if status != http.StatusOK {
		t.Fatalf("complete: want 200, got %d", status)
	}
	decodeData(t, env, &srData)
	if srData.ServiceRequest.Status != domain.StatusCompleted || srData.ServiceRequest.LastServiceDate == "" {
		t.Fatalf("bad completed ticket: %+v", srData.ServiceRequest)
	}

	// a deleted product leaves the ticket readable with a nil summary
	status, _ = doJSON(t, app, "DELETE", "/api/v1/products/"+p.ID, "sid-admin", nil)
	if status != http.StatusOK {
		t.Fatalf("delete product: want 200, got %d", status)
	}
	status, env = doJSON(t, app, "GET", "/api/v1/services/"+srID, "sid-ravi", nil)
	if status != http.StatusOK {
		t.Fatalf("ticket after product deletion: want 200, got %d", status)
	}
	decodeData(t, env, &srData)
	if srData.ServiceRequest.Product != nil {
		t.Fatalf("want nil product summary, got %+v", srData.ServiceRequest.Product)
	}
}

func TestAdminAssistedRegistrationByEmail(t *testing.T) {
	app, userRepo := newAPIApp(t)
	if err := userRepo.BindSession("sid-admin", "u-admin"); err != nil {
		t.Fatal(err)
	}

	status, env := doJSON(t, app, "POST", "/api/v1/products", "sid-admin", map[string]any{
		"customerEmail": "meera@zosswater.test",
		"productName":   "Zoss Ionizer 5000",
		"modelNumber":   "ZI-5000",
		"purchaseDate":  "15 Mar 2024",
	})
	if status != http.StatusCreated {
		t.Fatalf("want 201, got %d (%s)", status, env.Message)
	}
	var data struct {
		Product domain.Product `json:"product"`
	}
	decodeData(t, env, &data)
	if data.Product.UserID != "u-meera" {
		t.Fatalf("want owner resolved by email, got %q", data.Product.UserID)
	}
	if data.Product.PurchaseDate != "2024-03-15" {
		t.Fatalf("want normalized purchase date, got %q", data.Product.PurchaseDate)
	}

	status, _ = doJSON(t, app, "POST", "/api/v1/products", "sid-admin", map[string]any{
		"customerEmail": "ghost@zosswater.test",
		"productName":   "Zoss Ionizer 5000",
		"modelNumber":   "ZI-5000",
		"purchaseDate":  "2024-03-15",
	})
	if status != http.StatusNotFound {
		t.Fatalf("unknown customer: want 404, got %d", status)
	}
}

package domain

import "time"

// FallbackCoverageMonths applies when a registration carries no custom
// override and no template exists for the model number.
const FallbackCoverageMonths = 12

// ProductTemplate is admin-defined reference data keyed by model number.
// It supplies default coverage durations for customer registrations.
type ProductTemplate struct {
	ID                   string `db:"id" json:"id"`
	ModelNumber          string `db:"model_number" json:"modelNumber"`
	Name                 string `db:"name" json:"name"`
	Description          string `db:"description" json:"description,omitempty"`
	WarrantyMonths       int    `db:"warranty_months" json:"warrantyMonths"`
	AMCMonths            int    `db:"amc_months" json:"amcMonths"`
	ServiceFrequencyDays int    `db:"service_frequency_days" json:"serviceFrequencyDays"`
	CreatedAt            string `db:"created_at" json:"createdAt"`
}

// Product is a customer-registered unit with derived coverage windows.
type Product struct {
	ID            string `db:"id" json:"id"`
	UserID        string `db:"user_id" json:"userId"`
	Name          string `db:"name" json:"name"`
	ModelNumber   string `db:"model_number" json:"modelNumber"`
	PurchaseDate  string `db:"purchase_date" json:"purchaseDate"`
	ImageURL      string `db:"image_url" json:"imageUrl,omitempty"`
	WarrantyStart string `db:"warranty_start" json:"warrantyStart"`
	WarrantyEnd   string `db:"warranty_end" json:"warrantyEnd"`
	AMCStart      string `db:"amc_start" json:"amcStart"`
	AMCEnd        string `db:"amc_end" json:"amcEnd"`
	Approved      bool   `db:"approved" json:"isApprovedByAdmin"`
	CreatedAt     string `db:"created_at" json:"createdAt"`
	UpdatedAt     string `db:"updated_at" json:"updatedAt,omitempty"`
}

// ProductSummary is the read-time resolution of a product reference.
// Readers of entities holding product ids must tolerate absence (nil).
type ProductSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ModelNumber string `json:"modelNumber"`
}

// DateOnly is the storage layout for all calendar dates.
const DateOnly = "2006-01-02"

// CoverageEnd adds whole calendar months to a purchase date.
func CoverageEnd(purchase time.Time, months int) time.Time {
	return purchase.AddDate(0, months, 0)
}

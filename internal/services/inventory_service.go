package services

import (
	"strings"

	"zosswater/internal/domain"
	"zosswater/internal/repos"

	"github.com/google/uuid"
)

const (
	ActionAdd      = "add"
	ActionSubtract = "subtract"
)

type InventoryService struct {
	Inv *repos.InventoryRepo
}

func NewInventoryService(inv *repos.InventoryRepo) *InventoryService {
	return &InventoryService{Inv: inv}
}

// ItemInput is a create/update request for one ledger item.
type ItemInput struct {
	ItemName      string
	Category      string
	Description   string
	Quantity      int
	Unit          string
	MinStockLevel int
	Price         float64
	Supplier      string
	Location      string
}

func (in *ItemInput) validate() error {
	if in.ItemName == "" {
		return domain.Validationf("itemName is required")
	}
	if !domain.ValidInventoryCategory(in.Category) {
		return domain.Validationf("category must be machines or materials, got %q", in.Category)
	}
	if in.Quantity < 0 {
		return domain.Validationf("quantity cannot be negative")
	}
	if in.Unit == "" {
		in.Unit = "pieces"
	}
	if in.MinStockLevel <= 0 {
		in.MinStockLevel = 10
	}
	return nil
}

func (s *InventoryService) Add(in ItemInput) (*domain.InventoryItem, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	item := &domain.InventoryItem{
		ID:            uuid.NewString(),
		ItemName:      in.ItemName,
		Category:      in.Category,
		Description:   in.Description,
		Quantity:      in.Quantity,
		Unit:          in.Unit,
		MinStockLevel: in.MinStockLevel,
		Price:         in.Price,
		Supplier:      in.Supplier,
		Location:      in.Location,
	}
	if err := s.Inv.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

// Update replaces the descriptive fields; quantity moves only through
// Adjust.
func (s *InventoryService) Update(id string, in ItemInput) (*domain.InventoryItem, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	item := &domain.InventoryItem{
		ID:            id,
		ItemName:      in.ItemName,
		Category:      in.Category,
		Description:   in.Description,
		Unit:          in.Unit,
		MinStockLevel: in.MinStockLevel,
		Price:         in.Price,
		Supplier:      in.Supplier,
		Location:      in.Location,
	}
	if err := s.Inv.Update(item); err != nil {
		return nil, err
	}
	return s.Inv.Get(id)
}

func (s *InventoryService) Delete(id string) error { return s.Inv.Delete(id) }

func (s *InventoryService) Get(id string) (*domain.InventoryItem, error) {
	return s.Inv.Get(id)
}

func (s *InventoryService) List(category, search string) ([]domain.InventoryItem, error) {
	if category != "" && !domain.ValidInventoryCategory(category) {
		return nil, domain.Validationf("category must be machines or materials, got %q", category)
	}
	return s.Inv.List(category, strings.ToLower(search))
}

// AdjustResult reports the applied delta alongside the updated item.
// A subtract that exceeds stock clamps at zero, so Applied can be less
// than the requested amount; the clamp is reported, not an error.
type AdjustResult struct {
	Item    *domain.InventoryItem `json:"item"`
	Applied int                   `json:"appliedQuantity"`
}

func (s *InventoryService) Adjust(id, action string, amount int) (*AdjustResult, error) {
	if amount <= 0 {
		return nil, domain.Validationf("quantity must be positive")
	}

	item, err := s.Inv.Get(id)
	if err != nil {
		return nil, err
	}

	var applied int
	switch action {
	case ActionAdd:
		applied = amount
		err = s.Inv.Adjust(id, amount)
	case ActionSubtract:
		applied = amount
		if item.Quantity < amount {
			applied = item.Quantity
		}
		err = s.Inv.Adjust(id, -amount)
	default:
		return nil, domain.Validationf("action must be add or subtract, got %q", action)
	}
	if err != nil {
		return nil, err
	}

	updated, err := s.Inv.Get(id)
	if err != nil {
		return nil, err
	}
	return &AdjustResult{Item: updated, Applied: applied}, nil
}

func (s *InventoryService) LowStock() ([]domain.InventoryItem, error) {
	return s.Inv.LowStock()
}

func (s *InventoryService) Stats() (domain.InventoryStats, error) {
	return s.Inv.Stats()
}

package services

import (
	"errors"
	"strings"

	"zosswater/internal/domain"
	"zosswater/internal/repos"

	"github.com/araddon/dateparse"
	"github.com/google/uuid"
)

// ProductService derives warranty/AMC windows at registration time and
// owns the admin approval gate.
type ProductService struct {
	Products  *repos.ProductRepo
	Templates *repos.TemplateRepo
	Users     *repos.UserRepo
}

func NewProductService(products *repos.ProductRepo, templates *repos.TemplateRepo, users *repos.UserRepo) *ProductService {
	return &ProductService{Products: products, Templates: templates, Users: users}
}

// RegisterInput is one registration request. Owner may be a user id or an
// email. Override months of 0 mean "not supplied".
type RegisterInput struct {
	Owner                string
	ProductName          string
	ModelNumber          string
	PurchaseDate         string
	ImageURL             string
	CustomWarrantyMonths int
	CustomAMCMonths      int
}

// Register resolves the owner, derives both coverage windows and persists
// the unit unapproved. Template absence is not an error; the fallback of
// 12 months applies when neither override nor template supplies a duration.
func (s *ProductService) Register(in RegisterInput) (*domain.Product, error) {
	if in.ProductName == "" || in.ModelNumber == "" {
		return nil, domain.Validationf("productName and modelNumber are required")
	}

	owner, err := s.resolveOwner(in.Owner)
	if err != nil {
		return nil, err
	}

	purchase, err := dateparse.ParseAny(in.PurchaseDate)
	if err != nil {
		return nil, domain.Validationf("bad purchaseDate %q", in.PurchaseDate)
	}

	warrantyMonths := in.CustomWarrantyMonths
	amcMonths := in.CustomAMCMonths
	if warrantyMonths <= 0 || amcMonths <= 0 {
		tpl, err := s.Templates.ByModel(in.ModelNumber)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		if warrantyMonths <= 0 {
			warrantyMonths = domain.FallbackCoverageMonths
			if tpl != nil {
				warrantyMonths = tpl.WarrantyMonths
			}
		}
		if amcMonths <= 0 {
			amcMonths = domain.FallbackCoverageMonths
			if tpl != nil {
				amcMonths = tpl.AMCMonths
			}
		}
	}

	start := purchase.Format(domain.DateOnly)
	p := &domain.Product{
		ID:            uuid.NewString(),
		UserID:        owner.ID,
		Name:          in.ProductName,
		ModelNumber:   in.ModelNumber,
		PurchaseDate:  start,
		ImageURL:      in.ImageURL,
		WarrantyStart: start,
		WarrantyEnd:   domain.CoverageEnd(purchase, warrantyMonths).Format(domain.DateOnly),
		AMCStart:      start,
		AMCEnd:        domain.CoverageEnd(purchase, amcMonths).Format(domain.DateOnly),
		Approved:      false,
	}
	if err := s.Products.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProductService) resolveOwner(owner string) (*domain.User, error) {
	if owner == "" {
		return nil, domain.Validationf("owner is required")
	}
	if strings.Contains(owner, "@") {
		return s.Users.ByEmail(owner)
	}
	return s.Users.ByID(owner)
}

// Approve flips the admin gate. Approving an approved product is a no-op.
func (s *ProductService) Approve(id string) (*domain.Product, error) {
	if err := s.Products.SetApproved(id, true); err != nil {
		return nil, err
	}
	return s.Products.Get(id)
}

// Delete removes the unit. Service requests referencing it are kept;
// their readers resolve the dangling reference to nil.
func (s *ProductService) Delete(id string) error {
	return s.Products.Delete(id)
}

func (s *ProductService) Get(id string) (*domain.Product, error) {
	return s.Products.Get(id)
}

func (s *ProductService) ListByUser(userID string) ([]domain.Product, error) {
	return s.Products.ListByUser(userID)
}

func (s *ProductService) ListAll(page, pageSize int) ([]domain.Product, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	return s.Products.ListAll(pageSize, (page-1)*pageSize)
}

// TemplateInput creates reference data; model numbers are unique.
type TemplateInput struct {
	ModelNumber          string
	Name                 string
	Description          string
	WarrantyMonths       int
	AMCMonths            int
	ServiceFrequencyDays int
}

func (s *ProductService) CreateTemplate(in TemplateInput) (*domain.ProductTemplate, error) {
	if in.ModelNumber == "" || in.Name == "" {
		return nil, domain.Validationf("modelNumber and name are required")
	}
	if in.WarrantyMonths <= 0 {
		in.WarrantyMonths = domain.FallbackCoverageMonths
	}
	if in.AMCMonths <= 0 {
		in.AMCMonths = domain.FallbackCoverageMonths
	}
	if in.ServiceFrequencyDays <= 0 {
		in.ServiceFrequencyDays = 90
	}
	t := &domain.ProductTemplate{
		ID:                   uuid.NewString(),
		ModelNumber:          in.ModelNumber,
		Name:                 in.Name,
		Description:          in.Description,
		WarrantyMonths:       in.WarrantyMonths,
		AMCMonths:            in.AMCMonths,
		ServiceFrequencyDays: in.ServiceFrequencyDays,
	}
	if err := s.Templates.Create(t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *ProductService) ListTemplates() ([]domain.ProductTemplate, error) {
	return s.Templates.List()
}

func (s *ProductService) DeleteTemplate(id string) error {
	return s.Templates.Delete(id)
}

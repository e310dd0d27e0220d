package services

import (
	"strings"

	"zosswater/internal/domain"
	"zosswater/internal/repos"

	"github.com/google/uuid"
)

// ContentService is plain versioned CRUD over marketing content with two
// domain rules: blog titles are unique (case-insensitive) and the public
// surface only sees published posts.
type ContentService struct {
	Blogs   *repos.BlogRepo
	Catalog *repos.CatalogRepo
}

func NewContentService(blogs *repos.BlogRepo, catalog *repos.CatalogRepo) *ContentService {
	return &ContentService{Blogs: blogs, Catalog: catalog}
}

// BlogInput carries every writable blog field. Published pointers
// distinguish "leave as is" from an explicit false.
type BlogInput struct {
	Title     string
	Summary   string
	ImageURL  string
	Subtopic  string
	Content   string
	ReadTime  string
	Published *bool
}

func (in *BlogInput) validate() error {
	switch {
	case in.Title == "" || len(in.Title) > domain.MaxBlogTitleLen:
		return domain.Validationf("title is required and at most %d characters", domain.MaxBlogTitleLen)
	case in.Summary == "" || len(in.Summary) > domain.MaxBlogSummaryLen:
		return domain.Validationf("summary is required and at most %d characters", domain.MaxBlogSummaryLen)
	case len(in.Content) < domain.MinBlogContentLen:
		return domain.Validationf("content must be at least %d characters", domain.MinBlogContentLen)
	case !domain.ValidSubtopic(in.Subtopic):
		return domain.Validationf("unknown subtopic %q", in.Subtopic)
	}
	return nil
}

func (s *ContentService) CreateBlog(in BlogInput) (*domain.Blog, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	if exists, err := s.Blogs.TitleExists(in.Title, ""); err != nil {
		return nil, err
	} else if exists {
		return nil, domain.Conflictf("blog with this title already exists")
	}

	b := &domain.Blog{
		ID:        uuid.NewString(),
		Title:     strings.TrimSpace(in.Title),
		Summary:   strings.TrimSpace(in.Summary),
		ImageURL:  in.ImageURL,
		Subtopic:  in.Subtopic,
		Content:   in.Content,
		ReadTime:  in.ReadTime,
		Published: true,
	}
	if b.ImageURL == "" {
		b.ImageURL = domain.DefaultBlogImage
	}
	if b.ReadTime == "" {
		b.ReadTime = domain.DefaultReadTime
	}
	if in.Published != nil {
		b.Published = *in.Published
	}
	if err := s.Blogs.Create(b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *ContentService) UpdateBlog(id string, in BlogInput) (*domain.Blog, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	if exists, err := s.Blogs.TitleExists(in.Title, id); err != nil {
		return nil, err
	} else if exists {
		return nil, domain.Conflictf("blog with this title already exists")
	}

	cur, err := s.Blogs.Get(id)
	if err != nil {
		return nil, err
	}
	cur.Title = strings.TrimSpace(in.Title)
	cur.Summary = strings.TrimSpace(in.Summary)
	cur.Subtopic = in.Subtopic
	cur.Content = in.Content
	if in.ImageURL != "" {
		cur.ImageURL = in.ImageURL
	}
	if in.ReadTime != "" {
		cur.ReadTime = in.ReadTime
	}
	if in.Published != nil {
		cur.Published = *in.Published
	}
	if err := s.Blogs.Update(cur); err != nil {
		return nil, err
	}
	return cur, nil
}

func (s *ContentService) DeleteBlog(id string) error { return s.Blogs.Delete(id) }

// BlogPage is one page of posts with its pagination envelope.
type BlogPage struct {
	Blogs      []domain.Blog     `json:"blogs"`
	Pagination domain.Pagination `json:"pagination"`
}

func (s *ContentService) listBlogs(f repos.BlogFilter, page, limit int) (*BlogPage, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}

	blogs, err := s.Blogs.List(f, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}
	total, err := s.Blogs.Count(f)
	if err != nil {
		return nil, err
	}
	return &BlogPage{
		Blogs: blogs,
		Pagination: domain.Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: (total + limit - 1) / limit,
		},
	}, nil
}

// PublicBlogs lists published posts only. Subtopic "all" means no filter.
func (s *ContentService) PublicBlogs(subtopic, search string, page, limit int) (*BlogPage, error) {
	if subtopic == "all" {
		subtopic = ""
	}
	if subtopic != "" && !domain.ValidSubtopic(subtopic) {
		return nil, domain.Validationf("unknown subtopic %q", subtopic)
	}
	return s.listBlogs(repos.BlogFilter{
		PublishedOnly: true,
		Subtopic:      subtopic,
		Search:        strings.ToLower(search),
	}, page, limit)
}

// AdminBlogs lists everything, unpublished drafts included.
func (s *ContentService) AdminBlogs(page, limit int) (*BlogPage, error) {
	return s.listBlogs(repos.BlogFilter{}, page, limit)
}

// PublicBlog hides unpublished posts behind NotFound for non-admin reads.
func (s *ContentService) PublicBlog(id string) (*domain.Blog, error) {
	b, err := s.Blogs.Get(id)
	if err != nil {
		return nil, err
	}
	if !b.Published {
		return nil, domain.NotFoundf("blog post")
	}
	return b, nil
}

func (s *ContentService) Blog(id string) (*domain.Blog, error) {
	return s.Blogs.Get(id)
}

// CatalogInput carries every writable catalog-product field.
type CatalogInput struct {
	Name           string
	Description    string
	Price          float64
	Category       string
	ImageURL       string
	Features       []string
	Specifications map[string]string
	BrochureURL    string
}

func (in *CatalogInput) validate() error {
	switch {
	case in.Name == "" || in.Description == "":
		return domain.Validationf("name and description are required")
	case in.Price < 0:
		return domain.Validationf("price cannot be negative")
	case !domain.ValidCatalogCategory(in.Category):
		return domain.Validationf("category must be B2C or B2B, got %q", in.Category)
	}
	return nil
}

func (s *ContentService) CreateCatalogProduct(in CatalogInput) (*domain.CatalogProduct, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	p := &domain.CatalogProduct{
		ID:             uuid.NewString(),
		Name:           in.Name,
		Description:    in.Description,
		Price:          in.Price,
		Category:       in.Category,
		ImageURL:       in.ImageURL,
		Features:       in.Features,
		Specifications: in.Specifications,
		BrochureURL:    in.BrochureURL,
	}
	if err := s.Catalog.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ContentService) UpdateCatalogProduct(id string, in CatalogInput) (*domain.CatalogProduct, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	p := &domain.CatalogProduct{
		ID:             id,
		Name:           in.Name,
		Description:    in.Description,
		Price:          in.Price,
		Category:       in.Category,
		ImageURL:       in.ImageURL,
		Features:       in.Features,
		Specifications: in.Specifications,
		BrochureURL:    in.BrochureURL,
	}
	if err := s.Catalog.Update(p); err != nil {
		return nil, err
	}
	return s.Catalog.Get(id)
}

func (s *ContentService) DeleteCatalogProduct(id string) error { return s.Catalog.Delete(id) }

func (s *ContentService) CatalogProduct(id string) (*domain.CatalogProduct, error) {
	return s.Catalog.Get(id)
}

func (s *ContentService) CatalogProducts(category string) ([]domain.CatalogProduct, error) {
	if category != "" && !domain.ValidCatalogCategory(category) {
		return nil, domain.Validationf("category must be B2C or B2B, got %q", category)
	}
	return s.Catalog.List(category)
}

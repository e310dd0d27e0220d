package domain

const (
	// Defaults applied at construction when the caller omits the field.
	DefaultBlogImage  = "/uploads/blog-placeholder.png"
	DefaultReadTime   = "5 min read"
	MaxBlogTitleLen   = 200
	MaxBlogSummaryLen = 500
	MinBlogContentLen = 100

	CatalogB2C = "B2C"
	CatalogB2B = "B2B"
)

var blogSubtopics = map[string]bool{
	"ayurvedic":      true,
	"science":        true,
	"sustainability": true,
	"case-studies":   true,
	"wellness":       true,
	"technology":     true,
}

func ValidSubtopic(s string) bool { return blogSubtopics[s] }

func ValidCatalogCategory(c string) bool { return c == CatalogB2C || c == CatalogB2B }

type Blog struct {
	ID        string `db:"id" json:"id"`
	Title     string `db:"title" json:"title"`
	Summary   string `db:"summary" json:"summary"`
	ImageURL  string `db:"image_url" json:"placeholderImage"`
	Subtopic  string `db:"subtopic" json:"subtopic"`
	Content   string `db:"content" json:"content"`
	ReadTime  string `db:"read_time" json:"readTime"`
	Published bool   `db:"published" json:"isPublished"`
	CreatedAt string `db:"created_at" json:"createdAt"`
	UpdatedAt string `db:"updated_at" json:"updatedAt,omitempty"`
}

type CatalogProduct struct {
	ID          string  `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	Description string  `db:"description" json:"description"`
	Price       float64 `db:"price" json:"price"`
	Category    string  `db:"category" json:"category"`
	ImageURL    string  `db:"image_url" json:"imageUrl,omitempty"`
	BrochureURL string  `db:"brochure_url" json:"brochureUrl,omitempty"`

	// Stored as JSON text columns; repos encode/decode.
	Features       []string          `db:"-" json:"features"`
	Specifications map[string]string `db:"-" json:"specifications"`
	FeaturesJSON   string            `db:"features_json" json:"-"`
	SpecsJSON      string            `db:"specs_json" json:"-"`

	CreatedAt string `db:"created_at" json:"createdAt"`
	UpdatedAt string `db:"updated_at" json:"updatedAt,omitempty"`
}

// Pagination is the 1-indexed page envelope returned by list endpoints.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

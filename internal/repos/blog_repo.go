package repos

import (
	"zosswater/internal/domain"

	"github.com/jmoiron/sqlx"
)

const blogCols = `id, title, summary, image_url, subtopic, content, read_time,
  published, created_at, COALESCE(updated_at,'') AS updated_at`

type BlogRepo struct{ db *sqlx.DB }

func NewBlogRepo(db *sqlx.DB) *BlogRepo { return &BlogRepo{db: db} }

func (r *BlogRepo) Create(b *domain.Blog) error {
	_, err := r.db.Exec(`
		INSERT INTO blogs(id,title,summary,image_url,subtopic,content,read_time,published)
		VALUES(?,?,?,?,?,?,?,?)
	`, b.ID, b.Title, b.Summary, b.ImageURL, b.Subtopic, b.Content, b.ReadTime, b.Published)
	if err != nil && isUniqueViolation(err) {
		return domain.Conflictf("blog with this title already exists")
	}
	return err
}

// TitleExists reports a case-insensitive title match, optionally
// excluding one id (for updates that keep their own title).
func (r *BlogRepo) TitleExists(title, excludeID string) (bool, error) {
	var n int
	err := r.db.Get(&n, `
		SELECT COUNT(*) FROM blogs WHERE LOWER(title)=LOWER(?) AND id != ?
	`, title, excludeID)
	return n > 0, err
}

func (r *BlogRepo) Get(id string) (*domain.Blog, error) {
	var b domain.Blog
	err := r.db.Get(&b, `SELECT `+blogCols+` FROM blogs WHERE id=?`, id)
	if err != nil {
		return nil, mapNoRows(err, "blog post")
	}
	return &b, nil
}

// BlogFilter narrows List/Count. Zero values mean "no constraint";
// PublishedOnly distinguishes the public surface from the admin one.
type BlogFilter struct {
	PublishedOnly bool
	Subtopic      string
	Search        string
}

func (f BlogFilter) clause() (string, []any) {
	where := `1=1`
	args := []any{}
	if f.PublishedOnly {
		where += ` AND published = 1`
	}
	if f.Subtopic != "" {
		where += ` AND subtopic = ?`
		args = append(args, f.Subtopic)
	}
	if f.Search != "" {
		where += ` AND (LOWER(title) LIKE ? OR LOWER(summary) LIKE ? OR LOWER(content) LIKE ?)`
		like := "%" + f.Search + "%"
		args = append(args, like, like, like)
	}
	return where, args
}

func (r *BlogRepo) List(f BlogFilter, limit, offset int) ([]domain.Blog, error) {
	where, args := f.clause()
	args = append(args, limit, offset)

	var out []domain.Blog
	err := r.db.Select(&out, `
		SELECT `+blogCols+` FROM blogs
		WHERE `+where+`
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`, args...)
	return out, err
}

func (r *BlogRepo) Count(f BlogFilter) (int, error) {
	where, args := f.clause()
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM blogs WHERE `+where, args...)
	return n, err
}

func (r *BlogRepo) Update(b *domain.Blog) error {
	res, err := r.db.Exec(`
		UPDATE blogs
		SET title=?, summary=?, image_url=?, subtopic=?, content=?, read_time=?,
		    published=?, updated_at=CURRENT_TIMESTAMP
		WHERE id=?
	`, b.Title, b.Summary, b.ImageURL, b.Subtopic, b.Content, b.ReadTime, b.Published, b.ID)
	if err != nil && isUniqueViolation(err) {
		return domain.Conflictf("blog with this title already exists")
	}
	return requireRow(res, err, "blog post")
}

func (r *BlogRepo) Delete(id string) error {
	res, err := r.db.Exec(`DELETE FROM blogs WHERE id=?`, id)
	return requireRow(res, err, "blog post")
}

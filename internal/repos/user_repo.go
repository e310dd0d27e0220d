package repos

import (
	"database/sql"
	"errors"
	"strings"

	"zosswater/internal/domain"

	"github.com/jmoiron/sqlx"
)

const userCols = `id,name,email,phone,provider,password_hash,role,active,
  created_at, COALESCE(updated_at,'') AS updated_at`

type UserRepo struct{ DB *sqlx.DB }

func NewUserRepo(db *sqlx.DB) *UserRepo { return &UserRepo{DB: db} }

func (r *UserRepo) Create(u *domain.User) error {
	_, err := r.DB.Exec(`
		INSERT INTO users(id,name,email,phone,provider,password_hash,role,active)
		VALUES(?,?,?,?,?,?,?,?)
	`, u.ID, u.Name, u.Email, u.Phone, u.Provider, u.Hash, u.Role, u.Active)
	if err != nil && isUniqueViolation(err) {
		return domain.Conflictf("user %s already exists", u.Email)
	}
	return err
}

func (r *UserRepo) ByEmail(email string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `SELECT `+userCols+` FROM users WHERE LOWER(email)=LOWER(?)`, email)
	if err != nil {
		return nil, mapNoRows(err, "user")
	}
	return &u, nil
}

func (r *UserRepo) ByID(id string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `SELECT `+userCols+` FROM users WHERE id=?`, id)
	if err != nil {
		return nil, mapNoRows(err, "user")
	}
	return &u, nil
}

func (r *UserRepo) List() ([]domain.User, error) {
	var out []domain.User
	err := r.DB.Select(&out, `SELECT `+userCols+` FROM users ORDER BY email`)
	return out, err
}

func (r *UserRepo) UpdateProfile(id, name, phone string) error {
	res, err := r.DB.Exec(`
		UPDATE users SET name=?, phone=?, updated_at=CURRENT_TIMESTAMP WHERE id=?
	`, name, phone, id)
	return requireRow(res, err, "user")
}

func (r *UserRepo) UpdatePassword(id, hash string) error {
	res, err := r.DB.Exec(`
		UPDATE users SET password_hash=?, updated_at=CURRENT_TIMESTAMP WHERE id=?
	`, hash, id)
	return requireRow(res, err, "user")
}

// SetProvider records that an account now authenticates via the given
// identity provider (local accounts flip to google on first OAuth login).
func (r *UserRepo) SetProvider(id, provider string) error {
	res, err := r.DB.Exec(`
		UPDATE users SET provider=?, updated_at=CURRENT_TIMESTAMP WHERE id=?
	`, provider, id)
	return requireRow(res, err, "user")
}

func (r *UserRepo) BindSession(sid, userID string) error {
	_, err := r.DB.Exec(`INSERT INTO sessions(id,user_id,last_seen)
                          VALUES(?,?,CURRENT_TIMESTAMP)
                          ON CONFLICT(id) DO UPDATE SET user_id=excluded.user_id,last_seen=CURRENT_TIMESTAMP`, sid, userID)
	return err
}

func (r *UserRepo) SessionUser(sid string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `
      SELECT u.id,u.name,u.email,u.phone,u.provider,u.password_hash,u.role,u.active,
             u.created_at, COALESCE(u.updated_at,'') AS updated_at
      FROM sessions s
      JOIN users u ON u.id=s.user_id
      WHERE s.id=?`, sid)
	if err != nil {
		return nil, mapNoRows(err, "session")
	}
	return &u, nil
}

func (r *UserRepo) UnbindSession(sid string) error {
	_, err := r.DB.Exec(`UPDATE sessions SET user_id=NULL,last_seen=CURRENT_TIMESTAMP WHERE id=?`, sid)
	return err
}

// mapNoRows folds sql.ErrNoRows into the NotFound taxonomy.
func mapNoRows(err error, what string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFoundf("%s", what)
	}
	return err
}

// requireRow turns a zero-row update/delete into NotFound.
func requireRow(res sql.Result, err error, what string) error {
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundf("%s", what)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "unique")
}

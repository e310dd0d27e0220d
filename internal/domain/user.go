package domain

const (
	ProviderLocal  = "local"
	ProviderGoogle = "google"

	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID        string `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	Email     string `db:"email" json:"email"`
	Phone     string `db:"phone" json:"phone,omitempty"`
	Provider  string `db:"provider" json:"provider"`
	Hash      string `db:"password_hash" json:"-"`
	Role      string `db:"role" json:"role"`
	Active    bool   `db:"active" json:"isActive"`
	CreatedAt string `db:"created_at" json:"createdAt"`
	UpdatedAt string `db:"updated_at" json:"updatedAt,omitempty"`
}

func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }

func ValidProvider(p string) bool { return p == ProviderLocal || p == ProviderGoogle }

func ValidRole(r string) bool { return r == RoleUser || r == RoleAdmin }

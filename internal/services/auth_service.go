package services

import (
	"errors"

	"zosswater/internal/domain"
	"zosswater/internal/repos"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var ErrBadCreds = errors.New("invalid email or password")

type AuthService struct {
	Users *repos.UserRepo
}

func NewAuthService(users *repos.UserRepo) *AuthService {
	return &AuthService{Users: users}
}

// Register creates a local-provider account. Duplicate email is a Conflict.
func (s *AuthService) Register(name, email, phone, password string) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return nil, err
	}
	u := &domain.User{
		ID:       uuid.NewString(),
		Name:     name,
		Email:    email,
		Phone:    phone,
		Provider: domain.ProviderLocal,
		Hash:     string(hash),
		Role:     domain.RoleUser,
		Active:   true,
	}
	if err := s.Users.Create(u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *AuthService) Login(sid, email, password string) (*domain.User, error) {
	u, err := s.Users.ByEmail(email)
	if err != nil {
		return nil, ErrBadCreds
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(password)) != nil {
		return nil, ErrBadCreds
	}
	if err := s.Users.BindSession(sid, u.ID); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *AuthService) Logout(sid string) error {
	return s.Users.UnbindSession(sid)
}

func (s *AuthService) CurrentUser(sid string) (*domain.User, error) {
	return s.Users.SessionUser(sid)
}

// OAuthUpsert resolves a verified federated profile to an account.
// An existing account that is not yet marked google flips its provider;
// an unknown email creates a fresh active user with no local password.
func (s *AuthService) OAuthUpsert(name, email string) (*domain.User, error) {
	u, err := s.Users.ByEmail(email)
	switch {
	case err == nil:
		if u.Provider != domain.ProviderGoogle {
			if err := s.Users.SetProvider(u.ID, domain.ProviderGoogle); err != nil {
				return nil, err
			}
			u.Provider = domain.ProviderGoogle
		}
		return u, nil
	case errors.Is(err, domain.ErrNotFound):
		nu := &domain.User{
			ID:       uuid.NewString(),
			Name:     name,
			Email:    email,
			Provider: domain.ProviderGoogle,
			Role:     domain.RoleUser,
			Active:   true,
		}
		if err := s.Users.Create(nu); err != nil {
			return nil, err
		}
		return nu, nil
	default:
		return nil, err
	}
}

func (s *AuthService) UpdateProfile(userID, name, phone string) (*domain.User, error) {
	if err := s.Users.UpdateProfile(userID, name, phone); err != nil {
		return nil, err
	}
	return s.Users.ByID(userID)
}

// ChangePassword verifies the current password before swapping the hash.
func (s *AuthService) ChangePassword(userID, current, next string) error {
	u, err := s.Users.ByID(userID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(current)) != nil {
		return ErrBadCreds
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(next), 12)
	if err != nil {
		return err
	}
	return s.Users.UpdatePassword(userID, string(hash))
}

func (s *AuthService) ListUsers() ([]domain.User, error) {
	return s.Users.List()
}

package services

import (
	"errors"

	"sbsoverseas/internal/domain"
	"sbsoverseas/internal/repos"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrBadCreds   = errors.New("invalid email or password")
	ErrEmailTaken = errors.New("email already registered")
)

type AuthService struct {
	Users *repos.UserRepo
}

// SignUp creates an account and its parallel profile document. New accounts
// are never administrators.
func (s *AuthService) SignUp(sid, email, password, name string) (*domain.User, error) {
	if existing, _ := s.Users.ByEmail(email); existing != nil {
		return nil, ErrEmailTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return nil, err
	}
	id := uuid.NewString()
	if err := s.Users.Create(id, email, string(hash), name); err != nil {
		return nil, err
	}
	u, err := s.Users.ByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.Users.BindSession(sid, u.ID); err != nil {
		return nil, err
	}
	return u, nil
}

// SignIn verifies credentials, binds the session, and self-heals a missing
// profile row so every signed-in user has one.
func (s *AuthService) SignIn(sid, email, password string) (*domain.User, error) {
	u, err := s.Users.ByEmail(email)
	if err != nil {
		return nil, ErrBadCreds
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(password)) != nil {
		return nil, ErrBadCreds
	}
	if _, err := s.Users.EnsureProfile(u.ID, ""); err != nil {
		return nil, err
	}
	if err := s.Users.BindSession(sid, u.ID); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *AuthService) SignOut(sid string) error {
	return s.Users.UnbindSession(sid)
}

func (s *AuthService) CurrentUser(sid string) (*domain.User, error) {
	return s.Users.SessionUser(sid)
}

// CurrentProfile resolves the session to a profile document, or nil when the
// session is anonymous.
func (s *AuthService) CurrentProfile(sid string) (*domain.Profile, error) {
	u, err := s.Users.SessionUser(sid)
	if err != nil {
		return nil, err
	}
	return s.Users.Profile(u.ID)
}

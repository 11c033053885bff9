package services

import (
	"errors"

	"satyaphoto/internal/domain"
	"satyaphoto/internal/repos"

	"golang.org/x/crypto/bcrypt"
)

// ErrBadCreds is returned for any login failure. Unknown email and wrong
// password are indistinguishable to the caller.
var ErrBadCreds = errors.New("invalid email or password")

// AuthService signs the studio owner in and out. The site has exactly one
// seeded account; there is no registration path, so every login attempt is
// checked against the users table as-is.
type AuthService struct {
	Users *repos.UserRepo
}

// Login verifies the credentials and binds the sid cookie's session row to
// the account. The session row itself is created lazily by BindSession, so a
// first-ever login works without any prior visit.
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

// Logout detaches the session from the account but keeps the row, so the
// same sid cookie can log in again later.
func (s *AuthService) Logout(sid string) error {
	return s.Users.UnbindSession(sid)
}

// CurrentUser resolves the sid cookie to the signed-in account, if any.
func (s *AuthService) CurrentUser(sid string) (*domain.User, error) {
	return s.Users.SessionUser(sid)
}

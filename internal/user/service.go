package user

import (
	"context"

	"github.com/wichananm65/kriuke-snack/internal/navigation"
)

// Navigator moves the storefront to another page.
type Navigator interface {
	Navigate(ctx context.Context, to navigation.Page) navigation.Page
}

type Service struct {
	auth    Authenticator
	session SessionRepository
	nav     Navigator
}

func NewService(auth Authenticator, session SessionRepository, nav Navigator) *Service {
	return &Service{auth: auth, session: session, nav: nav}
}

// Login sets the session flag and opens the admin area. A failed attempt
// leaves the session untouched.
func (s *Service) Login(ctx context.Context, creds Credentials) (Admin, error) {
	admin, err := s.auth.Authenticate(ctx, creds)
	if err != nil {
		return Admin{}, err
	}
	if err := s.session.Set(ctx, true); err != nil {
		return Admin{}, err
	}
	if s.nav != nil {
		s.nav.Navigate(ctx, navigation.PageAdmin)
	}
	return admin, nil
}

func (s *Service) Logout(ctx context.Context) error {
	if err := s.session.Set(ctx, false); err != nil {
		return err
	}
	if s.nav != nil {
		s.nav.Navigate(ctx, navigation.PageLogin)
	}
	return nil
}

func (s *Service) LoggedIn(ctx context.Context) bool {
	return s.session.Get(ctx)
}

// Package users implements account registration, login and account
// management.
package users

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/fittrack-app/fittrack/internal/app/apperr"
	"github.com/fittrack-app/fittrack/internal/app/auth"
	"github.com/fittrack-app/fittrack/internal/app/domain/user"
	"github.com/fittrack-app/fittrack/internal/app/storage"
	"github.com/fittrack-app/fittrack/internal/logging"
)

// Service coordinates account operations over a UserStore.
type Service struct {
	store  storage.UserStore
	tokens *auth.Manager
	log    *logging.Logger
	now    func() time.Time
}

// New builds a Service.
func New(store storage.UserStore, tokens *auth.Manager, log *logging.Logger) *Service {
	return &Service{store: store, tokens: tokens, log: log, now: time.Now}
}

// RegisterParams carries a new account request.
type RegisterParams struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates an account. Username and email must be unique.
func (s *Service) Register(ctx context.Context, p RegisterParams) (user.User, error) {
	p.Username = strings.TrimSpace(p.Username)
	p.Email = strings.TrimSpace(p.Email)
	if p.Username == "" {
		return user.User{}, apperr.Invalidf("username is required")
	}
	if p.Email == "" {
		return user.User{}, apperr.Invalidf("email is required")
	}
	if p.Password == "" {
		return user.User{}, apperr.Invalidf("password is required")
	}

	if err := s.ensureUnique(ctx, p.Username, p.Email, ""); err != nil {
		return user.User{}, err
	}

	created, err := s.store.CreateUser(ctx, user.User{
		Username:     p.Username,
		Email:        p.Email,
		PasswordHash: auth.Digest(p.Password),
		IsActive:     true,
	})
	if err != nil {
		return user.User{}, err
	}
	s.log.WithContext(ctx).WithField("user_id", created.ID).Info("user registered")
	return created, nil
}

// UpdateParams carries a partial account update. Nil fields stay
// unchanged.
type UpdateParams struct {
	Username        *string `json:"username"`
	Email           *string `json:"email"`
	Password        *string `json:"password"`
	IsActive        *bool   `json:"isActive"`
	IsEmailVerified *bool   `json:"isEmailVerified"`
}

// Update applies a partial update to an account.
func (s *Service) Update(ctx context.Context, id string, p UpdateParams) (user.User, error) {
	u, err := s.store.GetUser(ctx, id)
	if err != nil {
		return user.User{}, err
	}

	if p.Username != nil && strings.TrimSpace(*p.Username) != "" {
		u.Username = strings.TrimSpace(*p.Username)
	}
	if p.Email != nil && strings.TrimSpace(*p.Email) != "" {
		u.Email = strings.TrimSpace(*p.Email)
	}
	if p.Password != nil && *p.Password != "" {
		u.PasswordHash = auth.Digest(*p.Password)
	}
	if p.IsActive != nil {
		u.IsActive = *p.IsActive
	}
	if p.IsEmailVerified != nil {
		u.IsEmailVerified = *p.IsEmailVerified
	}

	if err := s.ensureUnique(ctx, u.Username, u.Email, u.ID); err != nil {
		return user.User{}, err
	}
	return s.store.UpdateUser(ctx, u)
}

// Get returns a single account by ID.
func (s *Service) Get(ctx context.Context, id string) (user.User, error) {
	return s.store.GetUser(ctx, id)
}

// List returns all accounts.
func (s *Service) List(ctx context.Context) ([]user.User, error) {
	return s.store.ListUsers(ctx)
}

// Delete removes an account.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.DeleteUser(ctx, id)
}

// LoginParams carries a login request.
type LoginParams struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login verifies credentials and returns an authenticated session.
// Wrong email and wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, p LoginParams) (auth.Session, error) {
	if p.Email == "" || p.Password == "" {
		return auth.Session{}, apperr.Invalidf("email and password are required")
	}

	u, err := s.store.GetUserByEmail(ctx, strings.TrimSpace(p.Email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return auth.Session{}, apperr.Unauthorizedf("invalid credentials")
		}
		return auth.Session{}, err
	}
	if !auth.VerifyDigest(p.Password, u.PasswordHash) {
		return auth.Session{}, apperr.Unauthorizedf("invalid credentials")
	}
	// Correct credentials on a deactivated account: the caller proved
	// who they are, they just may not log in.
	if !u.IsActive {
		return auth.Session{}, apperr.Forbiddenf("account is deactivated")
	}

	token, expires, err := s.tokens.Issue(u.ID, u.Email, u.Username)
	if err != nil {
		return auth.Session{}, err
	}
	if err := s.store.RecordLogin(ctx, u.ID, s.now().UTC()); err != nil {
		return auth.Session{}, err
	}

	s.log.WithContext(ctx).WithField("user_id", u.ID).Info("user logged in")
	return auth.Session{
		Token:     token,
		UserID:    u.ID,
		Email:     u.Email,
		Username:  u.Username,
		ExpiresAt: expires,
	}, nil
}

// ensureUnique rejects a username or email already held by a different
// account. selfID is skipped so updates do not collide with themselves.
func (s *Service) ensureUnique(ctx context.Context, username, email, selfID string) error {
	if existing, err := s.store.GetUserByUsername(ctx, username); err == nil {
		if existing.ID != selfID {
			return apperr.Conflictf("username %q is already taken", username)
		}
	} else if !errors.Is(err, sql.ErrNoRows) {
		return err
	}
	if existing, err := s.store.GetUserByEmail(ctx, email); err == nil {
		if existing.ID != selfID {
			return apperr.Conflictf("email %q is already registered", email)
		}
	} else if !errors.Is(err, sql.ErrNoRows) {
		return err
	}
	return nil
}

package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/roadprep/roadprep/internal/api"
)

// CredentialStore persists the bearer token between runs. The store package
// implements it over sqlite.
type CredentialStore interface {
	Token(ctx context.Context) (string, error)
	SaveToken(ctx context.Context, token string) error
	ClearToken(ctx context.Context) error
}

// Backend is the slice of the API the account service needs.
type Backend interface {
	Login(ctx context.Context, email, password string) (*api.LoginResponse, error)
	Plan(ctx context.Context) (*api.PlanInfo, error)
}

// Service resolves who the viewer is from the stored credential and the
// backend's plan lookup.
type Service struct {
	creds CredentialStore
	// backendFor builds a backend client carrying the given token.
	backendFor func(token string) Backend
	log        *slog.Logger
	now        func() time.Time
}

// NewService creates an account Service. backendFor is called with the
// stored token so authenticated calls carry it.
func NewService(creds CredentialStore, backendFor func(token string) Backend, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{creds: creds, backendFor: backendFor, log: log, now: time.Now}
}

// Resolve rebuilds the viewer from local state. Any dead end (no token,
// expired token, backend rejection) degrades to Guest rather than failing
// the whole client.
func (s *Service) Resolve(ctx context.Context) (Viewer, error) {
	token, err := s.creds.Token(ctx)
	if err != nil {
		return Guest(), fmt.Errorf("load credential: %w", err)
	}
	if token == "" {
		return Guest(), nil
	}

	if expired, expErr := tokenExpired(token, s.now()); expErr != nil {
		s.log.Warn("stored token unreadable, signing out", "err", expErr)
		_ = s.creds.ClearToken(ctx)
		return Guest(), nil
	} else if expired {
		s.log.Info("stored token expired, signing out")
		_ = s.creds.ClearToken(ctx)
		return Guest(), nil
	}

	plan, err := s.backendFor(token).Plan(ctx)
	if err != nil {
		var unauth *api.ErrUnauthorized
		if errors.As(err, &unauth) {
			s.log.Info("backend rejected stored token, signing out")
			_ = s.creds.ClearToken(ctx)
			return Guest(), nil
		}
		// Transport trouble: stay authenticated, plan unknown (free tier).
		s.log.Warn("plan lookup failed", "err", err)
		return Authenticated(nil), nil
	}

	if plan == nil || plan.PlanName == "" {
		return Authenticated(nil), nil
	}
	return Authenticated(&Plan{Name: plan.PlanName}), nil
}

// Login authenticates against the backend and persists the issued token.
func (s *Service) Login(ctx context.Context, email, password string) error {
	resp, err := s.backendFor("").Login(ctx, email, password)
	if err != nil {
		return err
	}
	if err := s.creds.SaveToken(ctx, resp.Token); err != nil {
		return fmt.Errorf("persist credential: %w", err)
	}
	return nil
}

// Logout drops the stored credential.
func (s *Service) Logout(ctx context.Context) error {
	return s.creds.ClearToken(ctx)
}

// TokenExpiry reads the stored token's expiry claim for display. Zero time
// when no token is stored or the token carries no expiry.
func (s *Service) TokenExpiry(ctx context.Context) time.Time {
	token, err := s.creds.Token(ctx)
	if err != nil || token == "" {
		return time.Time{}
	}
	exp, err := expiryOf(token)
	if err != nil {
		return time.Time{}
	}
	return exp
}

// expiryOf parses the token without verifying its signature; verification
// is the server's job, the client only reads the expiry claim.
func expiryOf(token string) (time.Time, error) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, err
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, err
	}
	if exp == nil {
		return time.Time{}, nil
	}
	return exp.Time, nil
}

func tokenExpired(token string, now time.Time) (bool, error) {
	exp, err := expiryOf(token)
	if err != nil {
		return false, err
	}
	if exp.IsZero() {
		return false, nil
	}
	return now.After(exp), nil
}

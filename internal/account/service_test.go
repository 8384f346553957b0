package account

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roadprep/roadprep/internal/api"
)

type memCreds struct {
	token string
}

func (m *memCreds) Token(ctx context.Context) (string, error) { return m.token, nil }

func (m *memCreds) SaveToken(ctx context.Context, token string) error {
	m.token = token
	return nil
}

func (m *memCreds) ClearToken(ctx context.Context) error {
	m.token = ""
	return nil
}

type fakeBackend struct {
	token     string
	plan      *api.PlanInfo
	planErr   error
	loginResp *api.LoginResponse
	loginErr  error
}

func (f *fakeBackend) Login(ctx context.Context, email, password string) (*api.LoginResponse, error) {
	return f.loginResp, f.loginErr
}

func (f *fakeBackend) Plan(ctx context.Context) (*api.PlanInfo, error) {
	return f.plan, f.planErr
}

func newTestService(creds *memCreds, backend *fakeBackend) *Service {
	return NewService(creds, func(token string) Backend {
		backend.token = token
		return backend
	}, slog.New(slog.DiscardHandler))
}

// unsignedToken builds a JWT-shaped token with the given expiry. The client
// never verifies signatures, so a fixed fake signature is fine.
func unsignedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	payload, err := json.Marshal(map[string]any{"sub": "learner-1", "exp": exp.Unix()})
	require.NoError(t, err)
	claims := base64.RawURLEncoding.EncodeToString(payload)
	sig := base64.RawURLEncoding.EncodeToString([]byte("sig"))
	return fmt.Sprintf("%s.%s.%s", header, claims, sig)
}

func TestResolve_NoTokenIsGuest(t *testing.T) {
	svc := newTestService(&memCreds{}, &fakeBackend{})
	v, err := svc.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, IdentityGuest, v.Identity)
}

func TestResolve_ValidTokenWithPlan(t *testing.T) {
	creds := &memCreds{token: unsignedToken(t, time.Now().Add(time.Hour))}
	backend := &fakeBackend{plan: &api.PlanInfo{PlanName: "classic"}}
	svc := newTestService(creds, backend)

	v, err := svc.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, IdentityAuthenticated, v.Identity)
	assert.Equal(t, "classic", v.PlanName())
	assert.Equal(t, creds.token, backend.token, "plan lookup must carry the stored token")
}

func TestResolve_ExpiredTokenSignsOut(t *testing.T) {
	creds := &memCreds{token: unsignedToken(t, time.Now().Add(-time.Hour))}
	svc := newTestService(creds, &fakeBackend{})

	v, err := svc.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, IdentityGuest, v.Identity)
	assert.Empty(t, creds.token, "expired token must be cleared")
}

func TestResolve_GarbageTokenSignsOut(t *testing.T) {
	creds := &memCreds{token: "not-a-jwt"}
	svc := newTestService(creds, &fakeBackend{})

	v, err := svc.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, IdentityGuest, v.Identity)
	assert.Empty(t, creds.token)
}

func TestResolve_BackendRejectionSignsOut(t *testing.T) {
	creds := &memCreds{token: unsignedToken(t, time.Now().Add(time.Hour))}
	backend := &fakeBackend{planErr: &api.ErrUnauthorized{Op: "fetch plan"}}
	svc := newTestService(creds, backend)

	v, err := svc.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, IdentityGuest, v.Identity)
	assert.Empty(t, creds.token)
}

func TestResolve_TransportTroubleStaysAuthenticatedPlanless(t *testing.T) {
	creds := &memCreds{token: unsignedToken(t, time.Now().Add(time.Hour))}
	backend := &fakeBackend{planErr: &api.ErrNetwork{Op: "fetch plan", StatusCode: 500}}
	svc := newTestService(creds, backend)

	v, err := svc.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, IdentityAuthenticated, v.Identity)
	assert.Nil(t, v.Plan)
	assert.NotEmpty(t, creds.token, "transport trouble must not sign the viewer out")
}

func TestLogin_PersistsToken(t *testing.T) {
	creds := &memCreds{}
	backend := &fakeBackend{loginResp: &api.LoginResponse{Token: "tok-789"}}
	svc := newTestService(creds, backend)

	require.NoError(t, svc.Login(context.Background(), "learner@example.com", "pw"))
	assert.Equal(t, "tok-789", creds.token)
}

func TestLogout(t *testing.T) {
	creds := &memCreds{token: "tok"}
	svc := newTestService(creds, &fakeBackend{})
	require.NoError(t, svc.Logout(context.Background()))
	assert.Empty(t, creds.token)
}

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_CatalogReturnsRawBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/quizzes", r.URL.Path)
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"sets":[]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, WithToken("tok-123"))
	body, err := c.Catalog(context.Background())
	require.NoError(t, err)
	assert.JSONEq(t, `{"sets":[]}`, string(body))
}

func TestClient_NonSuccessIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Catalog(context.Background())
	var netErr *ErrNetwork
	require.ErrorAs(t, err, &netErr)
	assert.Equal(t, http.StatusBadGateway, netErr.StatusCode)
}

func TestClient_TransportFailureIsNetworkError(t *testing.T) {
	c := New("http://127.0.0.1:0")
	_, err := c.Catalog(context.Background())
	var netErr *ErrNetwork
	require.ErrorAs(t, err, &netErr)
}

func TestClient_UnauthorizedIsTyped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := New(srv.URL, WithToken("expired"))
	_, err := c.Plan(context.Background())
	var authErr *ErrUnauthorized
	require.ErrorAs(t, err, &authErr)
}

func TestClient_Login(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/login", r.URL.Path)

		var creds map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "learner@example.com", creds["email"])

		_ = json.NewEncoder(w).Encode(LoginResponse{Token: "tok-456"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	resp, err := c.Login(context.Background(), "learner@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "tok-456", resp.Token)
}

func TestClient_LessonsBadBodyIsFormatError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Lessons(context.Background())
	var fmtErr *ErrFormat
	require.ErrorAs(t, err, &fmtErr)
}

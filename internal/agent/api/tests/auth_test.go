package tests

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/foliodev/go-folio/internal/agent/api"
	"github.com/stretchr/testify/require"
)

func TestClient_Register_Success(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/createuser", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req api.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "Ivan Petrov", req.Name)
		require.Equal(t, "test@example.com", req.Email)
		require.Equal(t, "StrongPass123", req.Password)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(api.AuthTokenResponse{AuthToken: "token-1"})
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	c := api.NewClient(srv.URL)

	resp, err := c.Register("Ivan Petrov", "test@example.com", "StrongPass123")
	require.NoError(t, err)
	require.Equal(t, "token-1", resp.AuthToken)
}

func TestClient_Login_Success(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req api.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "test@example.com", req.Email)
		require.Equal(t, "StrongPass123", req.Password)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(api.AuthTokenResponse{AuthToken: "token-2"})
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	c := api.NewClient(srv.URL)

	resp, err := c.Login("test@example.com", "StrongPass123")
	require.NoError(t, err)
	require.Equal(t, "token-2", resp.AuthToken)
}

func TestClient_Me_Success_UsesAuthTokenHeader(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/getuser", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "token-1", r.Header.Get(api.AuthTokenHeader))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(api.UserResponse{
			ID:    "u1",
			Name:  "Ivan Petrov",
			Email: "test@example.com",
		})
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	c := api.NewClient(srv.URL)

	resp, err := c.Me("token-1")
	require.NoError(t, err)
	require.Equal(t, "u1", resp.ID)
	require.Equal(t, "Ivan Petrov", resp.Name)
}

func TestClient_Login_Non2xx_ReturnsBodyAsError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, "invalid credentials")
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	c := api.NewClient(srv.URL)

	_, err := c.Login("test@example.com", "wrong")
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), "invalid credentials"))
}

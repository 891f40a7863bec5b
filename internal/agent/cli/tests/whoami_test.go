package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/foliodev/go-folio/internal/agent/cli"
	"github.com/foliodev/go-folio/internal/agent/config"
)

func TestNewWhoamiCmd_Success_PrintsUser(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/getuser", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST, got %s", r.Method)
		}
		if tok := r.Header.Get("auth-token"); tok != "token-1" {
			t.Fatalf("expected auth-token token-1, got %q", tok)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"id":        "u1",
			"name":      "Ivan Petrov",
			"email":     "test@example.com",
			"createdAt": "2026-01-01T00:00:00Z",
		})
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	app := &cli.App{
		ServerURL: srv.URL,
		Creds:     &config.Credentials{AuthToken: "token-1"},
	}

	cmd := cli.NewWhoamiCmd(app)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	s := out.String()
	for _, sub := range []string{"ID: u1", "Name: Ivan Petrov", "Email: test@example.com"} {
		if !strings.Contains(s, sub) {
			t.Fatalf("expected output to contain %q, got: %q", sub, s)
		}
	}
}

func TestNewWhoamiCmd_NotLoggedIn_ReturnsError(t *testing.T) {
	app := &cli.App{ServerURL: "https://127.0.0.1:8080", Creds: &config.Credentials{}}

	cmd := cli.NewWhoamiCmd(app)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "not logged in") {
		t.Fatalf("unexpected error: %v", err)
	}
}

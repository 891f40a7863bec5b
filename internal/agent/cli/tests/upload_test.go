package tests

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/foliodev/go-folio/internal/agent/cli"
	"github.com/foliodev/go-folio/internal/agent/config"
	"github.com/foliodev/go-folio/internal/shared/models"
)

func TestNewUploadCmd_Success_PrintsParsedFields(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/upload", func(w http.ResponseWriter, r *http.Request) {
		f, fh, err := r.FormFile("resume")
		if err != nil {
			t.Fatalf("FormFile: %v", err)
		}
		defer f.Close()

		if fh.Filename != "resume.txt" {
			t.Fatalf("expected filename resume.txt, got %q", fh.Filename)
		}
		content, _ := io.ReadAll(f)
		if string(content) != "Ivan Petrov, Go developer" {
			t.Fatalf("unexpected file content: %q", content)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"parsedData": models.ParsedResume{Name: "Ivan Petrov", Skills: []string{"Go"}},
		})
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	path := filepath.Join(t.TempDir(), "resume.txt")
	if err := os.WriteFile(path, []byte("Ivan Petrov, Go developer"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	app := &cli.App{ServerURL: srv.URL, Creds: &config.Credentials{}}

	cmd := cli.NewUploadCmd(app)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{path})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	// команда печатает разобранные поля как JSON
	if !strings.Contains(out.String(), `"name": "Ivan Petrov"`) {
		t.Fatalf("unexpected output: %q", out.String())
	}
}

func TestNewUploadCmd_NoArgs_ReturnsError(t *testing.T) {
	app := &cli.App{ServerURL: "https://127.0.0.1:8080", Creds: &config.Credentials{}}

	cmd := cli.NewUploadCmd(app)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestNewUploadCmd_ServerRejectsFormat_ReturnsError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/upload", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("unsupported file format"))
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	path := filepath.Join(t.TempDir(), "resume.exe")
	if err := os.WriteFile(path, []byte("MZ"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	app := &cli.App{ServerURL: srv.URL, Creds: &config.Credentials{}}

	cmd := cli.NewUploadCmd(app)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{path})

	err := cmd.Execute()
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "unsupported file format") {
		t.Fatalf("unexpected error: %v", err)
	}
}

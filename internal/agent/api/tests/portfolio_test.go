package tests

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/foliodev/go-folio/internal/agent/api"
	"github.com/foliodev/go-folio/internal/shared/models"
	"github.com/stretchr/testify/require"
)

func TestClient_SavePortfolio_Success(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/portfolio", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "token-1", r.Header.Get(api.AuthTokenHeader))

		var doc models.Portfolio
		require.NoError(t, json.NewDecoder(r.Body).Decode(&doc))
		require.Equal(t, "Ivan Petrov", doc.Name)

		// сервер возвращает канонический документ с id
		doc.ID = "p1"
		doc.UserID = "u1"
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(doc)
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	c := api.NewClient(srv.URL)

	saved, err := c.SavePortfolio(models.Portfolio{Name: "Ivan Petrov", Skills: []string{"Go"}}, "token-1")
	require.NoError(t, err)
	require.Equal(t, "p1", saved.ID)
	require.Equal(t, "u1", saved.UserID)
	require.Equal(t, []string{"Go"}, saved.Skills)
}

func TestClient_MyPortfolio_Success(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/myportfolio", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "token-1", r.Header.Get(api.AuthTokenHeader))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.Portfolio{Name: "Ivan Petrov"})
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	c := api.NewClient(srv.URL)

	doc, err := c.MyPortfolio("token-1")
	require.NoError(t, err)
	require.Equal(t, "Ivan Petrov", doc.Name)
}

// Публичный просмотр — без токена
func TestClient_PublicPortfolio_NoToken(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/portfolio/", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/portfolio/u1", r.URL.Path)
		require.Empty(t, r.Header.Get(api.AuthTokenHeader))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.Portfolio{Name: "Ivan Petrov", UserID: "u1"})
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	c := api.NewClient(srv.URL)

	doc, err := c.PublicPortfolio("u1")
	require.NoError(t, err)
	require.Equal(t, "u1", doc.UserID)
}

func TestClient_PublicPortfolio_NotFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/portfolio/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, "not found")
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	c := api.NewClient(srv.URL)

	_, err := c.PublicPortfolio("u1")
	require.Error(t, err)
	require.Contains(t, err.Error(), "not found")
}

func TestClient_UploadResume_SendsMultipartField(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/upload", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)

		f, fh, err := r.FormFile("resume")
		require.NoError(t, err)
		defer f.Close()

		require.Equal(t, "resume.txt", fh.Filename)

		content, err := io.ReadAll(f)
		require.NoError(t, err)
		require.Equal(t, "Ivan Petrov, Go developer", string(content))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(api.UploadResponse{
			ParsedData: models.ParsedResume{Name: "Ivan Petrov", Skills: []string{"Go"}},
		})
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("Ivan Petrov, Go developer"), 0o600))

	c := api.NewClient(srv.URL)

	resp, err := c.UploadResume(path)
	require.NoError(t, err)
	require.Equal(t, "Ivan Petrov", resp.ParsedData.Name)
	require.Equal(t, []string{"Go"}, resp.ParsedData.Skills)
}

func TestClient_UploadResume_MissingLocalFile(t *testing.T) {
	c := api.NewClient("https://127.0.0.1:1")

	_, err := c.UploadResume(filepath.Join(t.TempDir(), "no-such-file.pdf"))
	require.Error(t, err)
}

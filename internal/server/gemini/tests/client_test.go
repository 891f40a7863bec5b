package tests

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/foliodev/go-folio/internal/server/gemini"
	serr "github.com/foliodev/go-folio/internal/shared/errors"
)

// newModelServer поднимает httptest-сервер, отвечающий как generateContent:
// первый кандидат с одной частью, текст которой задаётся reply.
func newModelServer(t *testing.T, status int, reply string) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if !strings.Contains(r.URL.Path, ":generateContent") {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if r.URL.Query().Get("key") == "" {
			t.Error("expected api key in query")
		}

		w.WriteHeader(status)
		if status < 200 || status >= 300 {
			return
		}
		resp := map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]string{{"text": reply}}}},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGenerateText_Success(t *testing.T) {
	srv := newModelServer(t, http.StatusOK, "hello from model")

	c := gemini.NewClient(srv.URL, "test-key", "gemini-1.5-flash", 5*time.Second)
	got, err := c.GenerateText(context.Background(), "prompt")
	require.NoError(t, err)
	require.Equal(t, "hello from model", got)
}

func TestGenerateText_UpstreamStatus(t *testing.T) {
	srv := newModelServer(t, http.StatusTooManyRequests, "")

	c := gemini.NewClient(srv.URL, "test-key", "gemini-1.5-flash", 5*time.Second)
	_, err := c.GenerateText(context.Background(), "prompt")

	if !errors.Is(err, serr.ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}

func TestGenerateText_ConnectionRefused(t *testing.T) {
	// Сервер сразу закрыт: любой вызов упрётся в сетевую ошибку
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := gemini.NewClient(srv.URL, "test-key", "gemini-1.5-flash", time.Second)
	_, err := c.GenerateText(context.Background(), "prompt")

	if !errors.Is(err, serr.ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}

func TestGenerateText_EmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"candidates": []any{}})
	}))
	t.Cleanup(srv.Close)

	c := gemini.NewClient(srv.URL, "test-key", "gemini-1.5-flash", 5*time.Second)
	got, err := c.GenerateText(context.Background(), "prompt")
	require.NoError(t, err)

	// Пустой ответ — не транспортная ошибка, дальше сработает ErrNoJSONFound
	require.Equal(t, "", got)
}

func TestParseResume_CleanJSON(t *testing.T) {
	reply := `{"name":"Ivan Petrov","email":"ivan@example.com","phone":"123","summary":"Go dev","skills":["Go","SQL"],"achievements":[],"projects":[{"title":"folio","description":"resume service","link":"https://example.com"}],"education":[],"experience":[],"links":{"github":"https://github.com/ivan","linkedin":""}}`
	srv := newModelServer(t, http.StatusOK, reply)

	c := gemini.NewClient(srv.URL, "test-key", "gemini-1.5-flash", 5*time.Second)
	parsed, err := c.ParseResume(context.Background(), "resume text")
	require.NoError(t, err)

	require.Equal(t, "Ivan Petrov", parsed.Name)
	require.Equal(t, []string{"Go", "SQL"}, parsed.Skills)
	require.Len(t, parsed.Projects, 1)
	require.Equal(t, "https://github.com/ivan", parsed.Links.GitHub)

	// Normalize: пустые списки не nil
	require.NotNil(t, parsed.Achievements)
	require.NotNil(t, parsed.Education)
}

// Модель любит заворачивать JSON в пояснения и markdown-забор —
// парсер должен вырезать первый сбалансированный блок {...}
func TestParseResume_JSONWrappedInProse(t *testing.T) {
	reply := "Here is the extracted data:\n```json\n" +
		`{"name":"Anna {dev}","email":"a@b.c","phone":"","summary":"uses \"quotes\" and } braces","skills":["Go"],"achievements":[],"projects":[],"education":[],"experience":[],"links":{"github":"","linkedin":""}}` +
		"\n```\nLet me know if you need anything else!"
	srv := newModelServer(t, http.StatusOK, reply)

	c := gemini.NewClient(srv.URL, "test-key", "gemini-1.5-flash", 5*time.Second)
	parsed, err := c.ParseResume(context.Background(), "resume text")
	require.NoError(t, err)

	// Скобки и кавычки внутри строк не сбили сканер
	require.Equal(t, "Anna {dev}", parsed.Name)
	require.Equal(t, `uses "quotes" and } braces`, parsed.Summary)
}

func TestParseResume_NoJSONInReply(t *testing.T) {
	srv := newModelServer(t, http.StatusOK, "Sorry, I cannot parse this resume.")

	c := gemini.NewClient(srv.URL, "test-key", "gemini-1.5-flash", 5*time.Second)
	_, err := c.ParseResume(context.Background(), "resume text")

	if !errors.Is(err, serr.ErrNoJSONFound) {
		t.Fatalf("expected ErrNoJSONFound, got %v", err)
	}
}

// Незакрытый блок {...} — блок не найден
func TestParseResume_TruncatedJSON(t *testing.T) {
	srv := newModelServer(t, http.StatusOK, `{"name":"Ivan","skills":["Go"`)

	c := gemini.NewClient(srv.URL, "test-key", "gemini-1.5-flash", 5*time.Second)
	_, err := c.ParseResume(context.Background(), "resume text")

	if !errors.Is(err, serr.ErrNoJSONFound) {
		t.Fatalf("expected ErrNoJSONFound, got %v", err)
	}
}

// Блок сбалансирован, но внутри не валидный JSON
func TestParseResume_MalformedJSON(t *testing.T) {
	srv := newModelServer(t, http.StatusOK, `{name: Ivan, skills: Go}`)

	c := gemini.NewClient(srv.URL, "test-key", "gemini-1.5-flash", 5*time.Second)
	_, err := c.ParseResume(context.Background(), "resume text")

	if !errors.Is(err, serr.ErrMalformedJSON) {
		t.Fatalf("expected ErrMalformedJSON, got %v", err)
	}
}

func TestParseResume_PromptContainsResumeText(t *testing.T) {
	var gotPrompt string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Contents []struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"contents"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		if len(req.Contents) > 0 && len(req.Contents[0].Parts) > 0 {
			gotPrompt = req.Contents[0].Parts[0].Text
		}
		resp := map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]string{{"text": `{"name":"","email":"","phone":"","summary":"","skills":[],"achievements":[],"projects":[],"education":[],"experience":[],"links":{"github":"","linkedin":""}}`}}}},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)

	c := gemini.NewClient(srv.URL, "test-key", "gemini-1.5-flash", 5*time.Second)
	_, err := c.ParseResume(context.Background(), "Опыт: Go developer, 5 лет")
	require.NoError(t, err)

	require.Contains(t, gotPrompt, "Go developer")
	require.Contains(t, gotPrompt, "strict minified JSON")
}

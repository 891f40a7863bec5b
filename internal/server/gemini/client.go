// Package gemini содержит HTTP-клиент генеративного API и разбор
// текста резюме в структурированные поля портфолио.
//
// Клиент ходит в endpoint generateContent (Google Generative Language API)
// обычным net/http: фиксированный промпт с целевой JSON-схемой, таймаут из
// конфига, никаких ретраев — единичная ошибка апстрима поднимается наверх.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	serr "github.com/foliodev/go-folio/internal/shared/errors"
)

// Client реализует HTTP-клиент для общения с генеративным API.
//
// Поля:
//   - baseURL: базовый адрес API без завершающего слэша.
//   - apiKey: ключ API, передаётся query-параметром key (так требует API).
//   - model: имя модели, например gemini-1.5-flash.
//   - http: настроенный http.Client (таймаут ограничивает весь вызов).
type Client struct {
	baseURL string
	apiKey  string
	model   string
	http    *http.Client
}

// NewClient создаёт новый клиент генеративного API.
//
// baseURL нормализуется (обрезается завершающий "/");
// timeout ограничивает каждый вызов generateContent целиком.
func NewClient(baseURL, apiKey, model string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		http: &http.Client{
			Timeout: timeout,
		},
	}
}

// generateRequest — тело запроса generateContent.
type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

// generateResponse — интересующая нас часть ответа generateContent.
type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// GenerateText отправляет промпт модели и возвращает текст первого кандидата.
//
// Ошибки:
//   - ErrUpstream — сетевая ошибка или не-2xx статус ответа
//
// Пустой список кандидатов не считается транспортной ошибкой: возвращается
// пустая строка, дальше отработает ErrNoJSONFound на уровне парсера.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	body := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return "", fmt.Errorf("%w: encode request: %v", serr.ErrUpstream, err)
	}

	endpoint := fmt.Sprintf(
		"%s/v1beta/models/%s:generateContent?key=%s",
		c.baseURL, url.PathEscape(c.model), url.QueryEscape(c.apiKey),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &buf)
	if err != nil {
		return "", fmt.Errorf("%w: %v", serr.ErrUpstream, err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", serr.ErrUpstream, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return "", fmt.Errorf("%w: status %s", serr.ErrUpstream, res.Status)
	}

	var resp generateResponse
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", serr.ErrUpstream, err)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

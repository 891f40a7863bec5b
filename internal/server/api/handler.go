// Package api реализует HTTP-слой сервера go-folio.
//
// Пакет отвечает за:
//   - регистрацию HTTP-маршрутов и настройку роутера (chi);
//   - обработку входящих запросов и формирование ответов (JSON, статусы);
//   - маппинг доменных ошибок (service/repository) в HTTP-коды и сообщения;
//   - подключение middleware (логирование, проверка auth-токена и т.д.).
package api

import (
	"encoding/json"
	"net/http"

	"github.com/foliodev/go-folio/internal/server/middleware"
	"github.com/foliodev/go-folio/internal/server/service"
	"github.com/foliodev/go-folio/internal/server/view"
	"github.com/foliodev/go-folio/internal/shared/logger"
)

// Каждый метод если будет возвращать ответ то будет это делать в JSON
// Вынес Content-Type и JSON для удобства
const (
	JsonContentType string = "application/json"
	HtmlContentType string = "text/html; charset=utf-8"
	ContentType     string = "Content-Type"
)

// Handler агрегирует зависимости HTTP-слоя и предоставляет методы-хендлеры.
//
// Handler содержит:
//   - Svc: сервисный слой (бизнес-логика);
//   - Log: логгер для записи событий и ошибок;
//   - Verifier: компонент проверки auth-токена и middleware авторизации;
//   - View: рендерер HTML-шаблонов портфолио.
//
// Методы Handler используются роутером для обработки HTTP-запросов.
type Handler struct {
	Svc      *service.Services
	Log      *logger.HTTPLogger
	Verifier *middleware.JWTVerifier
	View     *view.Renderer
}

// NewHandler создаёт экземпляр Handler с переданными зависимостями.
func NewHandler(svc *service.Services, log *logger.HTTPLogger, verifier *middleware.JWTVerifier, renderer *view.Renderer) *Handler {
	return &Handler{
		Svc:      svc,
		Log:      log,
		Verifier: verifier,
		View:     renderer,
	}
}

// ErrorResponse стандартный формат ошибки API.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Вспомогательная функция вывода ошибки
func WriteError(w http.ResponseWriter, status int, err error) {
	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{
		Error: err.Error(),
	})
}

// Ping — keep-alive для внешнего крона, который не даёт хостингу усыпить
// инстанс. Просто 200 с текстом, без JSON.
//
// @Summary      Keep-alive ping
// @Description  Responds 200 so an external cron job can keep the instance awake.
// @Tags         service
// @Produce      plain
// @Success      200 {string} string "Cron job ping received"
// @Router       /cron/ping [get]
func (h *Handler) Ping(w http.ResponseWriter, r *http.Request) {
	h.Log.Logger.Sugar().Infow("cron ping received")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Cron job ping received"))
}

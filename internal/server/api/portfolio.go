// HTTP-хендлеры портфолио: upsert, своё портфолио, публичное чтение, HTML-рендер
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/foliodev/go-folio/internal/server/middleware"
	serr "github.com/foliodev/go-folio/internal/shared/errors"
	"github.com/foliodev/go-folio/internal/shared/models"
)

// SavePortfolio сохраняет (upsert) портфолио владельца токена.
//
// Семантика — полная замена: поле, отсутствующее в теле запроса,
// затирается, а не сохраняется. Клиент обязан присылать весь документ.
//
// Ответы:
//   - 200 OK: сохранённый документ;
//   - 400 Bad Request: неверный JSON;
//   - 401 Unauthorized;
//   - 409 Conflict: гонка одновременных сохранений, клиенту стоит повторить;
//   - 500 Internal Server Error.
//
// @Summary      Save portfolio
// @Description  Creates or fully replaces the portfolio of the authenticated user.
// @Tags         portfolio
// @Accept       json
// @Produce      json
// @Param        auth-token header string true "Auth token"
// @Param        request body models.Portfolio true "Full portfolio document"
// @Success      200 {object} models.Portfolio
// @Failure      400 {object} ErrorResponse "Bad JSON"
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Failure      409 {object} ErrorResponse "Concurrent save conflict"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /portfolio [post]
func (h *Handler) SavePortfolio(w http.ResponseWriter, r *http.Request) {
	var doc models.Portfolio
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}

	saved, err := h.Svc.Portfolio.Upsert(r.Context(), userID, doc)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidID):
			WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		case errors.Is(err, serr.ErrConflict):
			WriteError(w, http.StatusConflict, serr.ErrConflict)
		default:
			h.Log.Logger.Sugar().Errorw("save portfolio failed", "user_id", userID)
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	w.Header().Set(ContentType, JsonContentType)
	json.NewEncoder(w).Encode(saved)
}

// GetMyPortfolio возвращает портфолио владельца токена.
//
// Отсутствие портфолио — это 404, а не сбой: клиент по нему понимает,
// что пользователю нужно создать документ.
//
// @Summary      Get own portfolio
// @Description  Returns the portfolio of the authenticated user.
// @Tags         portfolio
// @Produce      json
// @Param        auth-token header string true "Auth token"
// @Success      200 {object} models.Portfolio
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Failure      404 {object} ErrorResponse "No portfolio yet"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /myportfolio [get]
func (h *Handler) GetMyPortfolio(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}

	doc, err := h.Svc.Portfolio.GetOwn(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrNotFound):
			WriteError(w, http.StatusNotFound, serr.ErrNotFound)
		case errors.Is(err, serr.ErrInvalidID):
			WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		default:
			h.Log.Logger.Sugar().Errorw("get own portfolio failed", "user_id", userID)
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	w.Header().Set(ContentType, JsonContentType)
	json.NewEncoder(w).Encode(doc)
}

// GetPortfolioByID — публичное чтение портфолио по id владельца, без auth.
//
// Некорректный id отбивается до похода в хранилище.
//
// @Summary      Get portfolio by user id
// @Description  Public, unauthenticated read of a portfolio by owner id.
// @Tags         portfolio
// @Produce      json
// @Param        userId path string true "Owner user id (UUID)"
// @Success      200 {object} models.Portfolio
// @Failure      400 {object} ErrorResponse "Invalid user id"
// @Failure      404 {object} ErrorResponse "Portfolio not found"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /portfolio/{userId} [get]
func (h *Handler) GetPortfolioByID(w http.ResponseWriter, r *http.Request) {
	rawID := chi.URLParam(r, "userId")

	doc, err := h.Svc.Portfolio.GetByUserID(r.Context(), rawID)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidID):
			WriteError(w, http.StatusBadRequest, serr.ErrInvalidID)
		case errors.Is(err, serr.ErrNotFound):
			WriteError(w, http.StatusNotFound, serr.ErrNotFound)
		default:
			h.Log.Logger.Sugar().Errorw("get portfolio by id failed", "raw_id", rawID)
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	w.Header().Set(ContentType, JsonContentType)
	json.NewEncoder(w).Encode(doc)
}

// RenderPortfolio — публичный HTML-рендер портфолио выбранным шаблоном.
//
// Шаблон задаётся query-параметром ?template= (classic|modern|minimal|
// elegant|dark), по умолчанию classic. Пустые секции в разметку не попадают.
//
// @Summary      Render portfolio as HTML
// @Description  Public server-side rendering of a portfolio through a visual template.
// @Tags         portfolio
// @Produce      html
// @Param        userId path string true "Owner user id (UUID)"
// @Param        template query string false "Template name (classic|modern|minimal|elegant|dark)"
// @Success      200 {string} string "HTML page"
// @Failure      400 {object} ErrorResponse "Invalid user id or unknown template"
// @Failure      404 {object} ErrorResponse "Portfolio not found"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /p/{userId} [get]
func (h *Handler) RenderPortfolio(w http.ResponseWriter, r *http.Request) {
	rawID := chi.URLParam(r, "userId")
	templateName := r.URL.Query().Get("template")

	doc, err := h.Svc.Portfolio.GetByUserID(r.Context(), rawID)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidID):
			WriteError(w, http.StatusBadRequest, serr.ErrInvalidID)
		case errors.Is(err, serr.ErrNotFound):
			WriteError(w, http.StatusNotFound, serr.ErrNotFound)
		default:
			h.Log.Logger.Sugar().Errorw("render portfolio failed", "raw_id", rawID)
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	w.Header().Set(ContentType, HtmlContentType)
	if err := h.View.Render(w, templateName, doc); err != nil {
		if errors.Is(err, serr.ErrInvalidInput) {
			// заголовки ещё не ушли только если шаблон не найден до записи
			WriteError(w, http.StatusBadRequest, serr.ErrInvalidInput)
			return
		}
		h.Log.Logger.Sugar().Errorw("template execute failed", "raw_id", rawID)
	}
}

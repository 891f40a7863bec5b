// HTTP-хендлеры регистрации, логина и данных текущего пользователя
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/foliodev/go-folio/internal/server/middleware"
	serr "github.com/foliodev/go-folio/internal/shared/errors"
)

// CreateUserRequest описывает тело запроса регистрации пользователя.
type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthTokenResponse описывает успешный ответ регистрации и логина.
//
// Имя поля authtoken историческое — его ждут существующие клиенты.
type AuthTokenResponse struct {
	AuthToken string `json:"authtoken"`
}

// LoginRequest описывает тело запроса входа пользователя.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse описывает ответ /getuser: пользователь без хэша пароля.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateUser обрабатывает регистрацию пользователя.
//
// Ответы:
//   - 201 Created: регистрация успешна, в теле auth-токен;
//   - 400 Bad Request: неверный JSON, невалидные входные данные или email уже занят;
//   - 500 Internal Server Error: прочие ошибки.
//
// @Summary      Create user
// @Description  Registers a new user and returns an auth token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body CreateUserRequest true "Create user request"
// @Success      201 {object} AuthTokenResponse
// @Failure      400 {object} ErrorResponse "Invalid input or email already taken"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /createuser [post]
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	token, err := h.Svc.Auth.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidInput):
			WriteError(w, http.StatusBadRequest, serr.ErrInvalidInput)
		case errors.Is(err, serr.ErrAlreadyExists):
			// исторически дубликат email отдаётся как 400, а не 409
			WriteError(w, http.StatusBadRequest, serr.ErrAlreadyExists)
		default:
			h.Log.Logger.Sugar().Error("create user failed")
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(AuthTokenResponse{AuthToken: token})
}

// Login обрабатывает вход пользователя и выдачу auth-токена.
//
// Ответы:
//   - 200 OK: успешный вход;
//   - 400 Bad Request: неверный JSON, невалидные данные или неверные учётные данные
//     (неверные учётные данные исторически тоже 400, чтобы не палить существование email);
//   - 500 Internal Server Error: прочие ошибки.
//
// @Summary      Login
// @Description  Authenticates a user and returns an auth token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login request"
// @Success      200 {object} AuthTokenResponse
// @Failure      400 {object} ErrorResponse "Invalid input or credentials"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	token, err := h.Svc.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidInput):
			WriteError(w, http.StatusBadRequest, serr.ErrInvalidInput)
		case errors.Is(err, serr.ErrInvalidCredentials):
			WriteError(w, http.StatusBadRequest, serr.ErrInvalidCredentials)
		default:
			h.Log.Logger.Sugar().Error("login failed")
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	w.Header().Set(ContentType, JsonContentType)
	json.NewEncoder(w).Encode(AuthTokenResponse{AuthToken: token})
}

// GetUser возвращает данные текущего пользователя (без пароля).
//
// Пользователь определяется по auth-токену (middleware).
// Метод исторически POST.
//
// Ответы:
//   - 200 OK: данные пользователя;
//   - 401 Unauthorized: нет/невалидный токен;
//   - 404 Not Found: пользователь из токена больше не существует;
//   - 500 Internal Server Error: прочие ошибки.
//
// @Summary      Get current user
// @Description  Returns the authenticated user, password hash excluded.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        auth-token header string true "Auth token"
// @Success      200 {object} UserResponse
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Failure      404 {object} ErrorResponse "User not found"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /getuser [post]
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}

	user, err := h.Svc.Auth.GetUser(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrNotFound), errors.Is(err, serr.ErrInvalidID):
			WriteError(w, http.StatusNotFound, serr.ErrNotFound)
		default:
			h.Log.Logger.Sugar().Errorw("get user failed", "user_id", userID)
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	w.Header().Set(ContentType, JsonContentType)
	json.NewEncoder(w).Encode(UserResponse{
		ID:        user.ID.String(),
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	})
}

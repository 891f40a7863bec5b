package api

import (
	"net/http"

	"github.com/foliodev/go-folio/internal/server/middleware"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter создаёт и настраивает HTTP-роутер сервера.
//
// Роутер использует chi.Router и регистрирует:
//   - middleware логирования для всех запросов;
//   - публичные эндпоинты: регистрация, логин, загрузка резюме,
//     портфолио по id владельца (JSON и HTML-рендер);
//   - группу эндпоинтов, защищённых auth-токеном.
//
// Пути исторические, без префикса (/createuser, /login, /portfolio, ...).
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	// логирование всех запросов
	r.Use(middleware.LoggerMiddleware())

	// добавляем swagger
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Публичные пути
	r.Post("/createuser", h.CreateUser)
	r.Post("/login", h.Login)
	r.Post("/upload", h.Upload)                      // резюме -> распарсенные поля
	r.Get("/portfolio/{userId}", h.GetPortfolioByID) // публичное чтение, без auth
	r.Get("/p/{userId}", h.RenderPortfolio)          // публичный HTML-рендер
	r.Get("/cron/ping", h.Ping)                      // keep-alive для внешнего крона

	// защищены пути
	r.Group(func(r chi.Router) {
		// проверка auth токена
		r.Use(h.Verifier.AuthMiddleware())
		r.Post("/getuser", h.GetUser)          // данные текущего пользователя
		r.Post("/portfolio", h.SavePortfolio)  // upsert своего портфолио
		r.Get("/myportfolio", h.GetMyPortfolio)
	})

	return r
}

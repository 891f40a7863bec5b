// Package service содержит бизнес-логику приложения (go-folio).
// Это прослойка между HTTP-обработчиками (api) и хранилищем данных (repository).
package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/foliodev/go-folio/internal/server/config"
	srvmodels "github.com/foliodev/go-folio/internal/server/models"
	"github.com/foliodev/go-folio/internal/shared/models"
)

// Repositories — набор интерфейсов, которые сервисный слой ожидает от слоя repository.
type Repositories struct {
	Users      UsersRepo
	Portfolios PortfoliosRepo
}

// Services — агрегатор всех сервисов приложения.
type Services struct {
	Auth      *AuthService
	Portfolio *PortfolioService
	Resume    *ResumeService
}

// NewServices собирает все сервисы приложения.
// cfg нужен AuthService (параметры хеширования пароля и подписи токенов)
// и ResumeService (каталог для временных файлов).
func NewServices(repos Repositories, parser ResumeParser, cfg *config.Config) *Services {
	return &Services{
		Auth:      NewAuthService(repos.Users, cfg),
		Portfolio: NewPortfolioService(repos.Portfolios),
		Resume:    NewResumeService(parser, cfg),
	}
}

// UsersRepo — репозиторий пользователей (нужен для createuser/login/getuser).
type UsersRepo interface {
	Create(ctx context.Context, name, email, passwordHash string) (uuid.UUID, error)
	GetByEmail(ctx context.Context, email string) (uuid.UUID, string, error)
	GetByID(ctx context.Context, id uuid.UUID) (srvmodels.User, error)
}

// PortfoliosRepo — репозиторий портфолио (upsert + чтение по владельцу).
type PortfoliosRepo interface {
	Upsert(ctx context.Context, userID uuid.UUID, doc models.Portfolio) (models.Portfolio, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (models.Portfolio, error)
}

// ResumeParser — внешний разбор текста резюме в структурированные поля.
type ResumeParser interface {
	ParseResume(ctx context.Context, resumeText string) (models.ParsedResume, error)
}

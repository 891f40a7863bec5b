package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	serr "github.com/foliodev/go-folio/internal/shared/errors"
	"github.com/foliodev/go-folio/internal/shared/models"
)

// PortfolioService реализует бизнес-логику портфолио.
//
// Ответственность:
//   - нормализация присланного документа (сервер не полагается на то,
//     что клиент прислал чистые данные)
//   - upsert с семантикой полной замены
//   - чтение своего портфолио и публичное чтение по id владельца
type PortfolioService struct {
	portfolios PortfoliosRepo
}

// NewPortfolioService создаёт PortfolioService.
func NewPortfolioService(portfolios PortfoliosRepo) *PortfolioService {
	return &PortfolioService{portfolios: portfolios}
}

// Upsert сохраняет портфолио владельца, создавая документ при первом
// сохранении и полностью перезаписывая поля при повторных.
//
// Поле, отсутствующее в запросе, именно затирается: это контракт полной
// замены, а не partial patch. Перед записью строки обрезаются по пробелам,
// nil-списки приводятся к пустым.
//
// Ошибки:
//   - ErrInvalidID — ownerID из токена не парсится как UUID
func (s *PortfolioService) Upsert(ctx context.Context, rawOwnerID string, doc models.Portfolio) (models.Portfolio, error) {
	ownerID, err := uuid.Parse(rawOwnerID)
	if err != nil {
		return models.Portfolio{}, serr.ErrInvalidID
	}

	normalize(&doc)

	return s.portfolios.Upsert(ctx, ownerID, doc)
}

// GetOwn возвращает портфолио владельца токена.
//
// Ошибки:
//   - ErrInvalidID
//   - ErrNotFound — портфолио ещё не создано (ожидаемое состояние)
func (s *PortfolioService) GetOwn(ctx context.Context, rawOwnerID string) (models.Portfolio, error) {
	ownerID, err := uuid.Parse(rawOwnerID)
	if err != nil {
		return models.Portfolio{}, serr.ErrInvalidID
	}
	return s.portfolios.GetByUserID(ctx, ownerID)
}

// GetByUserID — публичное чтение портфолио по id владельца, без аутентификации.
//
// Синтаксически некорректный id отсекается ДО похода в хранилище.
//
// Ошибки:
//   - ErrInvalidID — rawID не является корректным UUID
//   - ErrNotFound
func (s *PortfolioService) GetByUserID(ctx context.Context, rawID string) (models.Portfolio, error) {
	userID, err := uuid.Parse(strings.TrimSpace(rawID))
	if err != nil {
		return models.Portfolio{}, serr.ErrInvalidID
	}
	return s.portfolios.GetByUserID(ctx, userID)
}

// normalize чистит документ на стороне сервера: trim строк, nil-списки -> [].
func normalize(doc *models.Portfolio) {
	doc.Name = strings.TrimSpace(doc.Name)
	doc.Email = strings.TrimSpace(doc.Email)
	doc.Phone = strings.TrimSpace(doc.Phone)
	doc.Summary = strings.TrimSpace(doc.Summary)

	skills := doc.Skills[:0]
	for _, s := range doc.Skills {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
	}
	doc.Skills = skills

	achievements := doc.Achievements[:0]
	for _, a := range doc.Achievements {
		if a = strings.TrimSpace(a); a != "" {
			achievements = append(achievements, a)
		}
	}
	doc.Achievements = achievements

	for i := range doc.Projects {
		doc.Projects[i].Title = strings.TrimSpace(doc.Projects[i].Title)
		doc.Projects[i].Description = strings.TrimSpace(doc.Projects[i].Description)
		doc.Projects[i].Link = strings.TrimSpace(doc.Projects[i].Link)
	}
	for i := range doc.Education {
		doc.Education[i].Degree = strings.TrimSpace(doc.Education[i].Degree)
		doc.Education[i].Institution = strings.TrimSpace(doc.Education[i].Institution)
		doc.Education[i].Year = strings.TrimSpace(doc.Education[i].Year)
	}
	for i := range doc.Experience {
		doc.Experience[i].Company = strings.TrimSpace(doc.Experience[i].Company)
		doc.Experience[i].Title = strings.TrimSpace(doc.Experience[i].Title)
		doc.Experience[i].Duration = strings.TrimSpace(doc.Experience[i].Duration)
		doc.Experience[i].Description = strings.TrimSpace(doc.Experience[i].Description)
	}

	doc.Normalize()

	// служебные поля клиент не контролирует
	doc.ID = ""
	doc.UserID = ""
}

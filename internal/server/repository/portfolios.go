package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"

	serr "github.com/foliodev/go-folio/internal/shared/errors"
	"github.com/foliodev/go-folio/internal/shared/models"
)

// PortfoliosRepository реализует доступ к хранилищу портфолио (PostgreSQL).
// Отвечает исключительно за сохранение и извлечение данных без бизнес-логики.
//
// Списковые секции (skills, achievements, projects, education, experience)
// лежат в jsonb-колонках. На user_id стоит уникальный индекс — он же арбитр
// гонки двух одновременных первых сохранений.
type PortfoliosRepository struct {
	db *sql.DB
}

// NewPortfoliosRepository создаёт новый экземпляр PortfoliosRepository.
func NewPortfoliosRepository(db *sql.DB) *PortfoliosRepository {
	return &PortfoliosRepository{db: db}
}

// Upsert сохраняет портфолио пользователя с семантикой полной замены.
//
// INSERT ... ON CONFLICT (user_id) DO UPDATE перезаписывает ВСЕ колонки
// с данными: поле, не присланное клиентом, затирается дефолтом, а не
// сохраняется. created_at при обновлении не трогается.
//
// Возвращает сохранённый документ.
//
// Ошибки:
//   - ErrConflict — гонка двух одновременных записей (serialization failure)
//   - ErrInternal — ошибка базы данных
func (r *PortfoliosRepository) Upsert(ctx context.Context, userID uuid.UUID, doc models.Portfolio) (models.Portfolio, error) {
	skills, err := json.Marshal(doc.Skills)
	if err != nil {
		return models.Portfolio{}, serr.ErrInternal
	}
	achievements, err := json.Marshal(doc.Achievements)
	if err != nil {
		return models.Portfolio{}, serr.ErrInternal
	}
	projects, err := json.Marshal(doc.Projects)
	if err != nil {
		return models.Portfolio{}, serr.ErrInternal
	}
	education, err := json.Marshal(doc.Education)
	if err != nil {
		return models.Portfolio{}, serr.ErrInternal
	}
	experience, err := json.Marshal(doc.Experience)
	if err != nil {
		return models.Portfolio{}, serr.ErrInternal
	}

	row := r.db.QueryRowContext(ctx, `
		INSERT INTO portfolios
			(user_id, name, email, phone, summary, skills, achievements, projects, education, experience)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		ON CONFLICT (user_id) DO UPDATE SET
			name         = EXCLUDED.name,
			email        = EXCLUDED.email,
			phone        = EXCLUDED.phone,
			summary      = EXCLUDED.summary,
			skills       = EXCLUDED.skills,
			achievements = EXCLUDED.achievements,
			projects     = EXCLUDED.projects,
			education    = EXCLUDED.education,
			experience   = EXCLUDED.experience
		RETURNING id, user_id, name, email, phone, summary,
		          skills, achievements, projects, education, experience, created_at
	`,
		userID,
		doc.Name, doc.Email, doc.Phone, doc.Summary,
		skills, achievements, projects, education, experience,
	)

	return scanPortfolio(row)
}

// GetByUserID возвращает портфолио по id владельца.
//
// Ошибки:
//   - ErrNotFound — портфолио ещё не создано (ожидаемое состояние, не сбой)
//   - ErrInternal — ошибка базы данных
func (r *PortfoliosRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (models.Portfolio, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, name, email, phone, summary,
		       skills, achievements, projects, education, experience, created_at
		FROM portfolios WHERE user_id=$1
	`, userID)

	return scanPortfolio(row)
}

// scanPortfolio разбирает одну строку portfolios в wire-модель.
func scanPortfolio(row *sql.Row) (models.Portfolio, error) {
	var (
		p            models.Portfolio
		id, userID   uuid.UUID
		skills       []byte
		achievements []byte
		projects     []byte
		education    []byte
		experience   []byte
	)

	err := row.Scan(
		&id, &userID, &p.Name, &p.Email, &p.Phone, &p.Summary,
		&skills, &achievements, &projects, &education, &experience, &p.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Portfolio{}, serr.ErrNotFound
		}
		if pgErr, ok := err.(*pgconn.PgError); ok {
			if pgErr.Code == "40001" || pgErr.Code == "40P01" { // serialization_failure / deadlock_detected
				return models.Portfolio{}, serr.ErrConflict
			}
		}
		return models.Portfolio{}, serr.ErrInternal
	}

	p.ID = id.String()
	p.UserID = userID.String()

	if err := json.Unmarshal(skills, &p.Skills); err != nil {
		return models.Portfolio{}, serr.ErrInternal
	}
	if err := json.Unmarshal(achievements, &p.Achievements); err != nil {
		return models.Portfolio{}, serr.ErrInternal
	}
	if err := json.Unmarshal(projects, &p.Projects); err != nil {
		return models.Portfolio{}, serr.ErrInternal
	}
	if err := json.Unmarshal(education, &p.Education); err != nil {
		return models.Portfolio{}, serr.ErrInternal
	}
	if err := json.Unmarshal(experience, &p.Experience); err != nil {
		return models.Portfolio{}, serr.ErrInternal
	}

	// jsonb может хранить null — клиенту всегда отдаём []
	p.Normalize()

	return p, nil
}

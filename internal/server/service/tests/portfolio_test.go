package tests

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/foliodev/go-folio/internal/server/service"
	"github.com/foliodev/go-folio/internal/server/service/mocks"
	serr "github.com/foliodev/go-folio/internal/shared/errors"
	"github.com/foliodev/go-folio/internal/shared/models"
)

func newPortfolioService(t *testing.T) (*service.PortfolioService, *mocks.MockPortfoliosRepo) {
	t.Helper()

	ctrl := gomock.NewController(t)
	portfolios := mocks.NewMockPortfoliosRepo(ctrl)

	svc := service.NewPortfolioService(portfolios)
	return svc, portfolios
}

// Успех: документ нормализуется перед записью
func TestPortfolioService_Upsert_NormalizesDoc(t *testing.T) {
	ctx := context.Background()
	svc, portfolios := newPortfolioService(t)

	ownerID := uuid.New()

	portfolios.EXPECT().
		Upsert(ctx, ownerID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, doc models.Portfolio) (models.Portfolio, error) {
			// строки обрезаны, пустые скиллы выброшены
			require.Equal(t, "Test User", doc.Name)
			require.Equal(t, []string{"Go", "SQL"}, doc.Skills)
			// nil-списки приведены к пустым
			require.NotNil(t, doc.Projects)
			// служебные поля затёрты
			require.Empty(t, doc.ID)
			require.Empty(t, doc.UserID)
			return doc, nil
		})

	_, err := svc.Upsert(ctx, ownerID.String(), models.Portfolio{
		ID:     "client-supplied",
		UserID: "client-supplied",
		Name:   "  Test User  ",
		Skills: []string{" Go ", "", "SQL"},
	})
	require.NoError(t, err)
}

// Кривой id владельца из токена
func TestPortfolioService_Upsert_InvalidOwnerID(t *testing.T) {
	ctx := context.Background()
	svc, _ := newPortfolioService(t)

	_, err := svc.Upsert(ctx, "not-a-uuid", models.Portfolio{})

	require.ErrorIs(t, err, serr.ErrInvalidID)
}

// Повторный upsert с тем же документом — тот же результат (полная замена)
func TestPortfolioService_Upsert_Idempotent(t *testing.T) {
	ctx := context.Background()
	svc, portfolios := newPortfolioService(t)

	ownerID := uuid.New()
	doc := models.Portfolio{Name: "Test User", Skills: []string{"Go"}}

	portfolios.EXPECT().
		Upsert(ctx, ownerID, gomock.Any()).
		Times(2).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, d models.Portfolio) (models.Portfolio, error) {
			d.UserID = ownerID.String()
			return d, nil
		})

	first, err := svc.Upsert(ctx, ownerID.String(), doc)
	require.NoError(t, err)

	second, err := svc.Upsert(ctx, ownerID.String(), doc)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

// Своё портфолио ещё не создано
func TestPortfolioService_GetOwn_NotFound(t *testing.T) {
	ctx := context.Background()
	svc, portfolios := newPortfolioService(t)

	ownerID := uuid.New()

	portfolios.EXPECT().
		GetByUserID(ctx, ownerID).
		Return(models.Portfolio{}, serr.ErrNotFound)

	_, err := svc.GetOwn(ctx, ownerID.String())

	require.ErrorIs(t, err, serr.ErrNotFound)
}

// Публичное чтение: кривой id отсекается до похода в хранилище
func TestPortfolioService_GetByUserID_InvalidID(t *testing.T) {
	ctx := context.Background()
	svc, _ := newPortfolioService(t)

	// мок без ожиданий: любой вызов хранилища уронит тест
	_, err := svc.GetByUserID(ctx, "42")

	require.ErrorIs(t, err, serr.ErrInvalidID)
}

// Публичное чтение: успех
func TestPortfolioService_GetByUserID_OK(t *testing.T) {
	ctx := context.Background()
	svc, portfolios := newPortfolioService(t)

	userID := uuid.New()

	portfolios.EXPECT().
		GetByUserID(ctx, userID).
		Return(models.Portfolio{UserID: userID.String(), Name: "Test User"}, nil)

	got, err := svc.GetByUserID(ctx, " "+userID.String()+" ")

	require.NoError(t, err)
	require.Equal(t, "Test User", got.Name)
}

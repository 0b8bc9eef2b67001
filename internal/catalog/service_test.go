package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/aryan-dudharejiya/savoria-backend/pkg/db/models"
	"github.com/aryan-dudharejiya/savoria-backend/pkg/enums"
	pkgerrors "github.com/aryan-dudharejiya/savoria-backend/pkg/errors"
)

func testDSN() string {
	return "file:catalog_" + uuid.NewString() + "?mode=memory&cache=shared"
}

func setupCatalog(t *testing.T) Service {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open(testDSN()), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&models.MenuItem{}, &models.Review{}))
	require.NoError(t, Seed(context.Background(), conn))

	svc, err := NewService(NewRepository(conn))
	require.NoError(t, err)
	return svc
}

func TestSeedIsIdempotent(t *testing.T) {
	conn, err := gorm.Open(sqlite.Open(testDSN()), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&models.MenuItem{}, &models.Review{}))

	require.NoError(t, Seed(context.Background(), conn))
	require.NoError(t, Seed(context.Background(), conn))

	var count int64
	require.NoError(t, conn.Model(&models.MenuItem{}).Count(&count).Error)
	assert.Equal(t, int64(len(seedMenu)), count)
}

func TestListMenuItems(t *testing.T) {
	svc := setupCatalog(t)

	items, err := svc.ListMenuItems(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, len(seedMenu))
}

func TestListMenuItemsByCategory(t *testing.T) {
	svc := setupCatalog(t)

	drinks, err := svc.ListMenuItemsByCategory(context.Background(), "drinks")
	require.NoError(t, err)
	require.NotEmpty(t, drinks)
	for _, item := range drinks {
		assert.Equal(t, enums.MenuCategoryDrinks, item.Category)
	}
}

func TestListMenuItemsByUnknownCategoryIsEmpty(t *testing.T) {
	svc := setupCatalog(t)

	items, err := svc.ListMenuItemsByCategory(context.Background(), "breakfast")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestGetMenuItemNotFound(t *testing.T) {
	svc := setupCatalog(t)

	_, err := svc.GetMenuItem(context.Background(), uuid.New())
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestGetMenuItemRoundTrip(t *testing.T) {
	svc := setupCatalog(t)

	items, err := svc.ListMenuItems(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, items)

	item, err := svc.GetMenuItem(context.Background(), items[0].ID)
	require.NoError(t, err)
	assert.Equal(t, items[0].Name, item.Name)
}

func TestSearchMenuItemsMatchesNameOrDescription(t *testing.T) {
	svc := setupCatalog(t)

	byName, err := svc.SearchMenuItems(context.Background(), "RISOTTO")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Truffle Mushroom Risotto", byName[0].Name)

	byDescription, err := svc.SearchMenuItems(context.Background(), "espresso-soaked")
	require.NoError(t, err)
	require.Len(t, byDescription, 1)
	assert.Equal(t, "Tiramisu Classico", byDescription[0].Name)
}

func TestSearchMenuItemsNoMatchIsEmpty(t *testing.T) {
	svc := setupCatalog(t)

	items, err := svc.SearchMenuItems(context.Background(), "sushi")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestListReviews(t *testing.T) {
	svc := setupCatalog(t)

	reviews, err := svc.ListReviews(context.Background())
	require.NoError(t, err)
	assert.Len(t, reviews, len(seedReviews))
	for _, review := range reviews {
		assert.GreaterOrEqual(t, review.Rating, 1)
		assert.LessOrEqual(t, review.Rating, 5)
	}
}

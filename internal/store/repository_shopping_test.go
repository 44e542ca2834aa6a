package store

import (
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/kitchenhub/internal/logger"
	"github.com/MKhiriev/kitchenhub/models"
)

var shoppingColumns = []string{
	"id", "name", "quantity", "unit", "category", "checked", "recipe_id", "created_at", "updated_at",
}

func newShoppingRepoAt(db *DB, now time.Time) *shoppingRepository {
	repo := NewShoppingRepository(db, logger.Nop()).(*shoppingRepository)
	repo.now = func() time.Time { return now }
	return repo
}

func TestShoppingRepository_Save(t *testing.T) {
	now := time.Now().Truncate(time.Millisecond)
	recipeID := "recipe-1"

	db, mock := newTestDB(t)
	repo := NewShoppingRepository(newDBFromSQL(db), logger.Nop())

	item := models.ShoppingItem{
		ID:        "item-1",
		Name:      "carrot",
		Quantity:  500,
		Unit:      "g",
		Category:  "produce",
		RecipeID:  &recipeID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO shopping_items")).
		WithArgs(item.ID, item.Name, item.Quantity, item.Unit, item.Category,
			false, &recipeID, now, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Save(testContext(), item)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShoppingRepository_Update_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewShoppingRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta("UPDATE shopping_items SET")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(testContext(), models.ShoppingItem{ID: "missing"})

	assert.ErrorIs(t, err, ErrShoppingItemNotFound)
}

func TestShoppingRepository_GetFiltered(t *testing.T) {
	now := time.Now().Truncate(time.Millisecond)

	db, mock := newTestDB(t)
	repo := NewShoppingRepository(newDBFromSQL(db), logger.Nop())

	rows := sqlmock.NewRows(shoppingColumns).
		AddRow("item-1", "carrot", 500.0, "g", "produce", false, nil, now, now)
	mock.ExpectQuery(regexp.QuoteMeta("FROM shopping_items")).
		WithArgs("produce", false).
		WillReturnRows(rows)

	items, err := repo.GetFiltered(testContext(), ShoppingFilter{
		Categories:    []string{"produce"},
		OnlyUnchecked: true,
	})

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "carrot", items[0].Name)
	assert.Nil(t, items[0].RecipeID)
}

func TestShoppingRepository_SetChecked(t *testing.T) {
	now := time.Now().Truncate(time.Millisecond)

	db, mock := newTestDB(t)
	repo := newShoppingRepoAt(newDBFromSQL(db), now)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE shopping_items SET")).
		WithArgs(true, now, "item-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SetChecked(testContext(), "item-1", true)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShoppingRepository_SetChecked_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewShoppingRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta("UPDATE shopping_items SET")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetChecked(testContext(), "missing", true)

	assert.ErrorIs(t, err, ErrShoppingItemNotFound)
}

func TestShoppingRepository_ClearChecked(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewShoppingRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM shopping_items WHERE checked = true")).
		WillReturnResult(sqlmock.NewResult(0, 4))

	err := repo.ClearChecked(testContext())

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

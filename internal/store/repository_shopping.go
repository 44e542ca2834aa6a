package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/kitchenhub/internal/logger"
	"github.com/MKhiriev/kitchenhub/models"
)

type shoppingRepository struct {
	*DB
	logger *logger.Logger

	// now is replaceable in tests
	now func() time.Time
}

func NewShoppingRepository(db *DB, logger *logger.Logger) ShoppingRepository {
	return &shoppingRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (s *shoppingRepository) Save(ctx context.Context, item models.ShoppingItem) error {
	log := logger.FromContext(ctx)

	_, err := s.DB.ExecContext(ctx, saveShoppingItem,
		item.ID,
		item.Name,
		item.Quantity,
		item.Unit,
		item.Category,
		item.Checked,
		item.RecipeID,
		item.CreatedAt,
		item.UpdatedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "shoppingRepository.Save").
			Str("id", item.ID).
			Msg("failed to execute insert for shopping item")
		return fmt.Errorf("failed to save shopping item (id=%s): %w", item.ID, err)
	}

	return nil
}

func (s *shoppingRepository) Update(ctx context.Context, item models.ShoppingItem) error {
	log := logger.FromContext(ctx)

	result, err := s.DB.ExecContext(ctx, updateShoppingItem,
		item.Name,
		item.Quantity,
		item.Unit,
		item.Category,
		item.Checked,
		item.RecipeID,
		item.UpdatedAt,
		item.ID,
	)
	if err != nil {
		log.Err(err).
			Str("func", "shoppingRepository.Update").
			Str("id", item.ID).
			Msg("failed to execute update for shopping item")
		return fmt.Errorf("failed to update shopping item (id=%s): %w", item.ID, err)
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrShoppingItemNotFound
	}

	return nil
}

func (s *shoppingRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	if _, err := s.DB.ExecContext(ctx, deleteShoppingItem, id); err != nil {
		log.Err(err).
			Str("func", "shoppingRepository.Delete").
			Str("id", id).
			Msg("failed to execute delete for shopping item")
		return fmt.Errorf("failed to delete shopping item (id=%s): %w", id, err)
	}

	return nil
}

func (s *shoppingRepository) GetAll(ctx context.Context) ([]models.ShoppingItem, error) {
	return s.queryItems(ctx, "shoppingRepository.GetAll", getAllShoppingItems)
}

func (s *shoppingRepository) GetFiltered(ctx context.Context, filter ShoppingFilter) ([]models.ShoppingItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildShoppingFilterQuery(filter)
	if err != nil {
		log.Err(err).
			Str("func", "shoppingRepository.GetFiltered").
			Msg("failed to build filter query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return s.queryItems(ctx, "shoppingRepository.GetFiltered", query, args...)
}

func (s *shoppingRepository) SetChecked(ctx context.Context, id string, checked bool) error {
	log := logger.FromContext(ctx)

	result, err := s.DB.ExecContext(ctx, setShoppingItemChecked, checked, s.now(), id)
	if err != nil {
		log.Err(err).
			Str("func", "shoppingRepository.SetChecked").
			Str("id", id).
			Msg("failed to execute update for shopping item checked mark")
		return fmt.Errorf("failed to set checked mark (id=%s): %w", id, err)
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrShoppingItemNotFound
	}

	return nil
}

func (s *shoppingRepository) ClearChecked(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if _, err := s.DB.ExecContext(ctx, clearCheckedShoppingItems); err != nil {
		log.Err(err).
			Str("func", "shoppingRepository.ClearChecked").
			Msg("failed to execute delete for checked shopping items")
		return fmt.Errorf("failed to clear checked shopping items: %w", err)
	}

	return nil
}

func (s *shoppingRepository) ReplaceAll(ctx context.Context, items []models.ShoppingItem) error {
	log := logger.FromContext(ctx)

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "shoppingRepository.ReplaceAll").
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteAllShoppingItems); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	for _, item := range items {
		_, err = tx.ExecContext(ctx, saveShoppingItem,
			item.ID,
			item.Name,
			item.Quantity,
			item.Unit,
			item.Category,
			item.Checked,
			item.RecipeID,
			item.CreatedAt,
			item.UpdatedAt,
		)
		if err != nil {
			log.Err(err).
				Str("func", "shoppingRepository.ReplaceAll").
				Str("id", item.ID).
				Msg("failed to insert shopping item during replace")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (s *shoppingRepository) queryItems(ctx context.Context, funcName, query string, args ...any) ([]models.ShoppingItem, error) {
	log := logger.FromContext(ctx)

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", funcName).
			Msg("failed to execute query for shopping items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var items []models.ShoppingItem
	for rows.Next() {
		var (
			item     models.ShoppingItem
			recipeID sql.NullString
		)

		scanErr := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Quantity,
			&item.Unit,
			&item.Category,
			&item.Checked,
			&recipeID,
			&item.CreatedAt,
			&item.UpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", funcName).
				Msg("failed to scan shopping item rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		if recipeID.Valid {
			item.RecipeID = &recipeID.String
		}

		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

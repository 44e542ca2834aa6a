package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/kitchenhub/internal/logger"
	"github.com/MKhiriev/kitchenhub/models"
)

type mealPlanRepository struct {
	*DB
	logger *logger.Logger
}

func NewMealPlanRepository(db *DB, logger *logger.Logger) MealPlanRepository {
	return &mealPlanRepository{
		DB:     db,
		logger: logger,
	}
}

func (m *mealPlanRepository) Save(ctx context.Context, plan models.MealPlan) error {
	log := logger.FromContext(ctx)

	_, err := m.DB.ExecContext(ctx, saveMealPlan,
		plan.ID,
		plan.Date,
		plan.Slot,
		plan.RecipeID,
		plan.Servings,
		plan.CreatedAt,
		plan.UpdatedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "mealPlanRepository.Save").
			Str("id", plan.ID).
			Str("date", plan.Date).
			Str("slot", plan.Slot).
			Msg("failed to execute upsert for meal plan entry")
		return fmt.Errorf("failed to save meal plan entry (date=%s slot=%s): %w", plan.Date, plan.Slot, err)
	}

	return nil
}

func (m *mealPlanRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	if _, err := m.DB.ExecContext(ctx, deleteMealPlan, id); err != nil {
		log.Err(err).
			Str("func", "mealPlanRepository.Delete").
			Str("id", id).
			Msg("failed to execute delete for meal plan entry")
		return fmt.Errorf("failed to delete meal plan entry (id=%s): %w", id, err)
	}

	return nil
}

func (m *mealPlanRepository) Get(ctx context.Context, id string) (models.MealPlan, error) {
	log := logger.FromContext(ctx)

	row := m.DB.QueryRowContext(ctx, getSingleMealPlan, id)

	plan, err := scanMealPlan(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.MealPlan{}, ErrMealPlanNotFound
		}
		log.Err(err).
			Str("func", "mealPlanRepository.Get").
			Str("id", id).
			Msg("failed to scan meal plan row")
		return models.MealPlan{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return plan, nil
}

func (m *mealPlanRepository) GetAll(ctx context.Context) ([]models.MealPlan, error) {
	return m.queryPlans(ctx, "mealPlanRepository.GetAll", getAllMealPlans)
}

func (m *mealPlanRepository) GetRange(ctx context.Context, from, to string) ([]models.MealPlan, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildMealPlanRangeQuery(from, to)
	if err != nil {
		log.Err(err).
			Str("func", "mealPlanRepository.GetRange").
			Msg("failed to build range query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return m.queryPlans(ctx, "mealPlanRepository.GetRange", query, args...)
}

func (m *mealPlanRepository) ReplaceAll(ctx context.Context, plans []models.MealPlan) error {
	log := logger.FromContext(ctx)

	tx, err := m.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "mealPlanRepository.ReplaceAll").
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteAllMealPlans); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	for _, plan := range plans {
		_, err = tx.ExecContext(ctx, saveMealPlan,
			plan.ID,
			plan.Date,
			plan.Slot,
			plan.RecipeID,
			plan.Servings,
			plan.CreatedAt,
			plan.UpdatedAt,
		)
		if err != nil {
			log.Err(err).
				Str("func", "mealPlanRepository.ReplaceAll").
				Str("id", plan.ID).
				Msg("failed to insert meal plan entry during replace")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (m *mealPlanRepository) queryPlans(ctx context.Context, funcName, query string, args ...any) ([]models.MealPlan, error) {
	log := logger.FromContext(ctx)

	rows, err := m.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", funcName).
			Msg("failed to execute query for meal plan entries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var plans []models.MealPlan
	for rows.Next() {
		plan, scanErr := scanMealPlan(rows.Scan)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", funcName).
				Msg("failed to scan meal plan rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		plans = append(plans, plan)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return plans, nil
}

func scanMealPlan(scan func(dest ...any) error) (models.MealPlan, error) {
	var plan models.MealPlan

	err := scan(
		&plan.ID,
		&plan.Date,
		&plan.Slot,
		&plan.RecipeID,
		&plan.Servings,
		&plan.CreatedAt,
		&plan.UpdatedAt,
	)
	if err != nil {
		return models.MealPlan{}, err
	}

	return plan, nil
}

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrRecipeNotFound is returned when a query or update targets a recipe
	// ID that does not exist in the database.
	ErrRecipeNotFound = errors.New("recipe was not found")

	// ErrMealPlanNotFound is returned when a query or update targets a meal
	// plan entry that does not exist in the database.
	ErrMealPlanNotFound = errors.New("meal plan entry was not found")

	// ErrShoppingItemNotFound is returned when a query or update targets a
	// shopping list item that does not exist in the database.
	ErrShoppingItemNotFound = errors.New("shopping item was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrEncodingColumn is returned when a JSON-encoded column (ingredients,
	// steps, tags) cannot be serialised before writing.
	ErrEncodingColumn = errors.New("failed to encode column value")

	// ErrDecodingColumn is returned when a JSON-encoded column cannot be
	// parsed back into its model field.
	ErrDecodingColumn = errors.New("failed to decode column value")
)

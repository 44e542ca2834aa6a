package service

import (
	"context"
	"time"

	"github.com/MKhiriev/kitchenhub/internal/store"
	"github.com/MKhiriev/kitchenhub/models"
)

// TokenService owns the in-memory OAuth token of the linked account. Tokens
// never touch the local database; a restart always starts signed-out and the
// first sync after it triggers a silent refresh or an interactive sign-in.
type TokenService interface {
	// SignIn runs the interactive consent flow and stores the resulting
	// token in memory. Returns [ErrSignInInFlight] if another sign-in is
	// already waiting for the browser.
	SignIn(ctx context.Context) (models.Token, error)

	// EnsureToken returns a currently valid access token, silently
	// refreshing an expired one. Concurrent callers share a single refresh.
	// Returns [ErrSessionExpired] when no token is held or the refresh is
	// rejected; the user must sign in again.
	EnsureToken(ctx context.Context) (string, error)

	// CurrentToken returns the held token, or nil when signed out.
	CurrentToken() *models.Token

	// SignOut revokes the access token (best effort) and drops the held
	// token unconditionally.
	SignOut(ctx context.Context)

	// Configured reports whether an OAuth client identity is available at
	// all. False means the installation runs local-only.
	Configured() bool
}

// SnapshotService converts between the local database and the JSON snapshot
// files stored in the remote folder.
type SnapshotService interface {
	// Export serialises the named dataset into its snapshot payload.
	// Device-local fields (recipe photo references) are stripped.
	Export(ctx context.Context, dataset models.Dataset) ([]byte, error)

	// Import replaces the local contents of the named dataset with the
	// downloaded snapshot payload, atomically per dataset.
	Import(ctx context.Context, dataset models.Dataset, payload []byte) error
}

// ChangeTracker reports whether local data changed since the last sync.
// The sync service consults it for the direction decision and resets it
// after an attempt.
type ChangeTracker interface {
	Dirty() bool
	Clear()
}

// SyncDirection names the transfer direction a sync run decided on.
type SyncDirection string

const (
	DirectionUpload   SyncDirection = "upload"
	DirectionDownload SyncDirection = "download"
)

// SyncResult describes a completed sync run.
type SyncResult struct {
	// Direction is the transfer direction the run decided on.
	Direction SyncDirection

	// SyncedAt is the timestamp recorded as the new last-sync time.
	SyncedAt time.Time

	// Reloaded is true when a download replaced local data and the UI
	// should re-read it.
	Reloaded bool
}

// SyncService runs one full synchronisation pass against the remote folder.
type SyncService interface {
	// RunSync resolves the remote folder, compares the remote metadata
	// timestamp with the local last-sync time and either uploads every
	// dataset followed by the metadata file, or downloads every present
	// dataset. Last writer wins; there is no per-record merging.
	RunSync(ctx context.Context, tracker ChangeTracker) (SyncResult, error)
}

// SyncSession coordinates when syncs run: it tracks the dirty flag, debounces
// mutation bursts, guards against overlapping runs and surfaces sync status
// to the UI. It implements [ChangeTracker].
type SyncSession interface {
	ChangeTracker

	// DataChanged marks local data dirty and (re)starts the debounce timer
	// when auto-sync is enabled. Every mutation restarts the timer, so a
	// burst of edits produces a single sync.
	DataChanged()

	// TriggerSync starts a sync run immediately unless one is already in
	// flight, in which case the call is dropped.
	TriggerSync()

	// Status returns the last known sync status line for display.
	Status() SessionStatus

	// SetOnReload registers the callback invoked after a download pass
	// replaced local data.
	SetOnReload(fn func())

	// Stop cancels the debounce timer and waits for an in-flight run.
	Stop()
}

// SessionStatus is a point-in-time view of the sync session for the UI.
type SessionStatus struct {
	// State is one of "idle", "pending", "syncing", "error".
	State string

	// Message is a user-facing description of the last error, empty when
	// the last run succeeded.
	Message string

	// LastSyncTime is the recorded time of the last successful sync.
	LastSyncTime *time.Time

	// Dirty reports unsynchronised local changes.
	Dirty bool
}

// RecipeService manages recipes: validation, ID and timestamp stamping and
// change notification on top of the repository.
type RecipeService interface {
	Create(ctx context.Context, recipe models.Recipe) (models.Recipe, error)
	Update(ctx context.Context, recipe models.Recipe) (models.Recipe, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (models.Recipe, error)
	GetAll(ctx context.Context) ([]models.Recipe, error)
}

// MealPlanService manages the recipe-to-day assignments of the planner.
type MealPlanService interface {
	// Plan assigns a recipe to a (date, slot) pair, replacing any previous
	// assignment of that pair.
	Plan(ctx context.Context, plan models.MealPlan) (models.MealPlan, error)
	Unplan(ctx context.Context, id string) error
	GetWeek(ctx context.Context, from string) ([]models.MealPlan, error)
	GetAll(ctx context.Context) ([]models.MealPlan, error)
}

// ShoppingService manages the shopping list, including generating items from
// the planned meals of the configured window.
type ShoppingService interface {
	Add(ctx context.Context, item models.ShoppingItem) (models.ShoppingItem, error)
	Update(ctx context.Context, item models.ShoppingItem) (models.ShoppingItem, error)
	Remove(ctx context.Context, id string) error
	GetAll(ctx context.Context) ([]models.ShoppingItem, error)
	GetFiltered(ctx context.Context, filter store.ShoppingFilter) ([]models.ShoppingItem, error)
	SetChecked(ctx context.Context, id string, checked bool) error
	ClearChecked(ctx context.Context) error

	// GenerateFromMealPlans aggregates the ingredients of every meal
	// planned in the next ShoppingDays days, scales them by servings and
	// appends the result to the list.
	GenerateFromMealPlans(ctx context.Context) ([]models.ShoppingItem, error)

	// FormatList renders the unchecked items as a plain-text list grouped
	// by category, suitable for the clipboard.
	FormatList(ctx context.Context) (string, error)
}

// AccountService links and unlinks the remote account and exposes the stored
// installation settings.
type AccountService interface {
	// Connect runs the interactive sign-in, stores the account identity in
	// the settings and returns them.
	Connect(ctx context.Context) (models.Settings, error)

	// Disconnect signs out, clears the account association and cached
	// remote folder ID. Local data is kept.
	Disconnect(ctx context.Context) (models.Settings, error)

	Settings(ctx context.Context) (models.Settings, error)
	UpdateSettings(ctx context.Context, settings models.Settings) (models.Settings, error)
}

// changeNotifier is the slice of [SyncSession] the CRUD services need.
type changeNotifier interface {
	DataChanged()
}

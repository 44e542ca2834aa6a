package models

import "time"

// Remote file names inside the account folder. Fixed: every device derives
// the same layout from these constants.
const (
	RecipesFileName   = "recipes.json"
	MealPlansFileName = "mealplans.json"
	ShoppingFileName  = "shopping.json"
	MetadataFileName  = "sync-metadata.json"
)

// Dataset identifies one tracked logical collection.
type Dataset string

const (
	DatasetRecipes   Dataset = "recipes"
	DatasetMealPlans Dataset = "mealplans"
	DatasetShopping  Dataset = "shopping"
)

// TrackedDataset binds a dataset to its remote file name.
type TrackedDataset struct {
	Dataset  Dataset
	FileName string
}

// TrackedDatasets returns the tracked collections in their fixed sync order.
// Upload and download passes iterate this slice; the order never changes
// between releases, so a failure on dataset k leaves 1..k-1 fully written
// and k+1..n untouched.
func TrackedDatasets() []TrackedDataset {
	return []TrackedDataset{
		{Dataset: DatasetRecipes, FileName: RecipesFileName},
		{Dataset: DatasetMealPlans, FileName: MealPlansFileName},
		{Dataset: DatasetShopping, FileName: ShoppingFileName},
	}
}

// SyncMetadata is the single remote freshness record, stored as
// sync-metadata.json next to the dataset snapshots. It is written once per
// successful upload pass and read at the start of every sync attempt.
type SyncMetadata struct {
	// LastModified is the instant the remote snapshot set was last fully
	// written. Serialised as an ISO-8601 / RFC 3339 string.
	LastModified time.Time `json:"lastModified"`
}

// RemoteFile is a handle to a file living in the remote store.
type RemoteFile struct {
	// ID is the remote store's identifier for the file.
	ID string `json:"id"`

	// Name is the file name inside its parent folder.
	Name string `json:"name"`

	// ModifiedTime is the remote-reported modification instant, when the
	// search API returned one.
	ModifiedTime *time.Time `json:"modifiedTime,omitempty"`
}

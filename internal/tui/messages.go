package tui

import "github.com/MKhiriev/kitchenhub/models"

// Done-сообщения асинхронных команд.

type recipesLoadedMsg struct {
	recipes []models.Recipe
	err     error
}

type plansLoadedMsg struct {
	plans []models.MealPlan
	err   error
}

type shoppingLoadedMsg struct {
	items []models.ShoppingItem
	err   error
}

type settingsLoadedMsg struct {
	settings models.Settings
	err      error
}

type recipeSavedMsg struct {
	err error
}

type recipeDeletedMsg struct {
	err error
}

type planSavedMsg struct {
	err error
}

type planDeletedMsg struct {
	err error
}

type itemSavedMsg struct {
	err error
}

type itemDeletedMsg struct {
	err error
}

type checkToggledMsg struct {
	err error
}

type clearedCheckedMsg struct {
	err error
}

type generateDoneMsg struct {
	count int
	err   error
}

type copyDoneMsg struct {
	err error
}

type connectDoneMsg struct {
	settings models.Settings
	err      error
}

type disconnectDoneMsg struct {
	settings models.Settings
	err      error
}

type settingsSavedMsg struct {
	settings models.Settings
	err      error
}

// statusTickMsg drives the periodic refresh of the sync status bar.
type statusTickMsg struct{}

// reloadMsg arrives after a download pass replaced local data.
type reloadMsg struct{}

// consentURLMsg carries the OAuth consent page URL to display.
type consentURLMsg struct {
	url string
}

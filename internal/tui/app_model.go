package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/kitchenhub/internal/service"
	"github.com/MKhiriev/kitchenhub/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type tabID int

const (
	tabRecipes tabID = iota
	tabPlan
	tabShopping
	tabSettings
)

var tabTitles = []string{"Рецепты", "План", "Покупки", "Настройки"}

// appModel is the root model: it owns the tab bar, the sync status line and
// delegates everything else to the active tab.
type appModel struct {
	ctx      context.Context
	services *service.ClientServices

	buildInfo     models.AppBuildInfo
	showBuildInfo bool

	reload     chan struct{}
	consentURL chan string

	tab     tabID
	status  string
	errMsg  string
	loading bool

	syncStatus  service.SessionStatus
	consentLink string
	connecting  bool

	// recipes tab
	recipes      []models.Recipe
	recipeIdx    int
	recipeDetail bool
	recipeForm   *recipeForm

	// plan tab
	weekStart time.Time
	plans     []models.MealPlan
	planIdx   int
	planForm  *planForm

	// shopping tab
	items    []models.ShoppingItem
	itemIdx  int
	itemForm *itemForm

	// settings tab
	settings     models.Settings
	settingsForm *settingsForm
}

func newAppModel(ctx context.Context, services *service.ClientServices, buildInfo models.AppBuildInfo, reload chan struct{}, consentURL chan string) appModel {
	return appModel{
		ctx:       ctx,
		services:  services,
		buildInfo: buildInfo,

		reload:     reload,
		consentURL: consentURL,

		loading:   true,
		weekStart: startOfWeek(time.Now()),
	}
}

// startOfWeek returns the Monday of the week containing day.
func startOfWeek(day time.Time) time.Time {
	offset := (int(day.Weekday()) + 6) % 7
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location()).AddDate(0, 0, -offset)
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(
		m.cmdLoadRecipes(),
		m.cmdLoadWeek(m.weekStart.Format("2006-01-02")),
		m.cmdLoadShopping(),
		m.cmdLoadSettings(),
		m.cmdStatusTick(),
		m.cmdListenReload(),
		m.cmdListenConsentURL(),
	)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statusTickMsg:
		m.syncStatus = m.services.SyncSession.Status()
		return m, m.cmdStatusTick()

	case reloadMsg:
		// удалённый снимок заменил локальные данные
		m.status = "Данные обновлены с удалённого хранилища"
		return m, tea.Batch(
			m.cmdLoadRecipes(),
			m.cmdLoadWeek(m.weekStart.Format("2006-01-02")),
			m.cmdLoadShopping(),
			m.cmdLoadSettings(),
			m.cmdListenReload(),
		)

	case consentURLMsg:
		m.consentLink = msg.url
		return m, m.cmdListenConsentURL()

	case recipesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.recipes = msg.recipes
		m.recipeIdx = clampIndex(m.recipeIdx, len(m.recipes))
		return m, nil

	case plansLoadedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.plans = msg.plans
		m.planIdx = clampIndex(m.planIdx, len(m.plans))
		return m, nil

	case shoppingLoadedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.items = msg.items
		m.itemIdx = clampIndex(m.itemIdx, len(m.items))
		return m, nil

	case settingsLoadedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.settings = msg.settings
		return m, nil

	case recipeSavedMsg:
		if msg.err != nil {
			if m.recipeForm != nil {
				m.recipeForm.saving = false
				m.recipeForm.errMsg = msg.err.Error()
			}
			return m, nil
		}
		m.recipeForm = nil
		m.status = "Рецепт сохранён"
		m.errMsg = ""
		return m, m.cmdLoadRecipes()

	case recipeDeletedMsg:
		return m.afterMutation(msg.err, "Рецепт удалён", m.cmdLoadRecipes())

	case planSavedMsg:
		if msg.err != nil {
			if m.planForm != nil {
				m.planForm.saving = false
				m.planForm.errMsg = msg.err.Error()
			}
			return m, nil
		}
		m.planForm = nil
		m.status = "Приём пищи запланирован"
		m.errMsg = ""
		return m, m.cmdLoadWeek(m.weekStart.Format("2006-01-02"))

	case planDeletedMsg:
		return m.afterMutation(msg.err, "Запись плана удалена", m.cmdLoadWeek(m.weekStart.Format("2006-01-02")))

	case itemSavedMsg:
		if msg.err != nil {
			if m.itemForm != nil {
				m.itemForm.saving = false
				m.itemForm.errMsg = msg.err.Error()
			}
			return m, nil
		}
		m.itemForm = nil
		m.status = "Позиция сохранена"
		m.errMsg = ""
		return m, m.cmdLoadShopping()

	case itemDeletedMsg:
		return m.afterMutation(msg.err, "Позиция удалена", m.cmdLoadShopping())

	case checkToggledMsg:
		return m.afterMutation(msg.err, "", m.cmdLoadShopping())

	case clearedCheckedMsg:
		return m.afterMutation(msg.err, "Купленные позиции убраны", m.cmdLoadShopping())

	case generateDoneMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.status = fmt.Sprintf("Добавлено позиций из плана: %d", msg.count)
		m.errMsg = ""
		return m, m.cmdLoadShopping()

	case copyDoneMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Ошибка копирования: %v", msg.err)
			return m, nil
		}
		m.status = "Список скопирован в буфер обмена"
		m.errMsg = ""
		return m, nil

	case connectDoneMsg:
		m.connecting = false
		m.consentLink = ""
		if msg.err != nil {
			m.errMsg = humanizeRemoteError(msg.err)
			return m, nil
		}
		m.settings = msg.settings
		m.status = "Аккаунт подключён: " + msg.settings.AccountEmail
		m.errMsg = ""
		return m, nil

	case disconnectDoneMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.settings = msg.settings
		m.status = "Аккаунт отключён, локальные данные сохранены"
		m.errMsg = ""
		return m, nil

	case settingsSavedMsg:
		if msg.err != nil {
			if m.settingsForm != nil {
				m.settingsForm.saving = false
				m.settingsForm.errMsg = msg.err.Error()
			}
			return m, nil
		}
		m.settingsForm = nil
		m.settings = msg.settings
		m.status = "Настройки сохранены"
		m.errMsg = ""
		return m, nil
	}

	keyMsg, isKey := msg.(tea.KeyMsg)
	if !isKey {
		return m.updateActiveForm(msg)
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.showBuildInfo {
		if key.Matches(keyMsg, keys.esc) || key.Matches(keyMsg, keys.version) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	if m.formActive() {
		return m.updateActiveForm(msg)
	}

	switch {
	case keyMsg.String() == "q":
		return m, tea.Quit
	case key.Matches(keyMsg, keys.version):
		m.showBuildInfo = true
		return m, nil
	case key.Matches(keyMsg, keys.tab):
		m.tab = (m.tab + 1) % tabID(len(tabTitles))
		return m, nil
	case key.Matches(keyMsg, keys.backtab):
		m.tab = (m.tab + tabID(len(tabTitles)) - 1) % tabID(len(tabTitles))
		return m, nil
	case keyMsg.String() == "1", keyMsg.String() == "2", keyMsg.String() == "3", keyMsg.String() == "4":
		m.tab = tabID(keyMsg.String()[0] - '1')
		return m, nil
	case key.Matches(keyMsg, keys.sync):
		m.services.SyncSession.TriggerSync()
		m.status = "Синхронизация запущена"
		return m, nil
	}

	switch m.tab {
	case tabRecipes:
		return m.updateRecipesTab(keyMsg)
	case tabPlan:
		return m.updatePlanTab(keyMsg)
	case tabShopping:
		return m.updateShoppingTab(keyMsg)
	case tabSettings:
		return m.updateSettingsTab(keyMsg)
	}

	return m, nil
}

func (m appModel) afterMutation(err error, status string, reload tea.Cmd) (tea.Model, tea.Cmd) {
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}
	if status != "" {
		m.status = status
	}
	m.errMsg = ""
	return m, reload
}

func (m appModel) formActive() bool {
	return m.recipeForm != nil || m.planForm != nil || m.itemForm != nil || m.settingsForm != nil
}

func (m appModel) updateActiveForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch {
	case m.recipeForm != nil:
		return m.updateRecipeForm(msg)
	case m.planForm != nil:
		return m.updatePlanForm(msg)
	case m.itemForm != nil:
		return m.updateItemForm(msg)
	case m.settingsForm != nil:
		return m.updateSettingsForm(msg)
	}
	return m, nil
}

func (m appModel) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo)
	}

	switch {
	case m.recipeForm != nil:
		return m.viewRecipeForm()
	case m.planForm != nil:
		return m.viewPlanForm()
	case m.itemForm != nil:
		return m.viewItemForm()
	case m.settingsForm != nil:
		return m.viewSettingsForm()
	}

	title := m.viewTabBar()

	var body string
	var hotKeys string
	switch m.tab {
	case tabRecipes:
		body, hotKeys = m.viewRecipesTab()
	case tabPlan:
		body, hotKeys = m.viewPlanTab()
	case tabShopping:
		body, hotKeys = m.viewShoppingTab()
	case tabSettings:
		body, hotKeys = m.viewSettingsTab()
	}

	head := m.viewStatusLine()
	if head != "" {
		body = head + "\n\n" + body
	}

	return renderPage(title, strings.TrimRight(body, "\n"), hotKeys)
}

func (m appModel) viewTabBar() string {
	parts := make([]string, 0, len(tabTitles))
	for i, t := range tabTitles {
		label := fmt.Sprintf("%d:%s", i+1, t)
		if tabID(i) == m.tab {
			label = activeTabStyle.Render(label)
		}
		parts = append(parts, label)
	}
	return "KITCHENHUB  " + strings.Join(parts, "  ")
}

func (m appModel) viewStatusLine() string {
	var lines []string

	sync := "Синхронизация: " + syncStateLabel(m.syncStatus)
	if m.syncStatus.LastSyncTime != nil {
		sync += " │ последняя: " + m.syncStatus.LastSyncTime.Local().Format("02.01 15:04")
	}
	if m.syncStatus.Dirty {
		sync += " │ есть несинхр. изменения"
	}
	lines = append(lines, helpStyle.Render(sync))

	if m.errMsg != "" {
		lines = append(lines, errorStyle.Render("Ошибка: "+m.errMsg))
	} else if m.status != "" {
		lines = append(lines, "Статус: "+m.status)
	}

	return strings.Join(lines, "\n")
}

func syncStateLabel(status service.SessionStatus) string {
	switch status.State {
	case service.StatePending:
		return "ожидание"
	case service.StateSyncing:
		return "выполняется..."
	case service.StateError:
		if status.Message != "" {
			return "ошибка (" + status.Message + ")"
		}
		return "ошибка"
	default:
		return "ожидает изменений"
	}
}

func clampIndex(idx, length int) int {
	if idx >= length {
		idx = length - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

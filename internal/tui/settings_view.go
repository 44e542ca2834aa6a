package tui

import (
	"strconv"
	"strings"

	"github.com/MKhiriev/kitchenhub/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type settingsForm struct {
	settings models.Settings

	inputs []textinput.Model
	focus  int

	errMsg string
	saving bool
}

const (
	settingsFieldServings = iota
	settingsFieldDays
	settingsFieldTheme
	settingsFieldCount
)

func newSettingsForm(settings models.Settings) *settingsForm {
	servings := textinput.New()
	servings.Placeholder = "Порций по умолчанию"
	servings.Width = 10
	servings.SetValue(strconv.Itoa(settings.DefaultServings))
	servings.Focus()

	days := textinput.New()
	days.Placeholder = "Окно списка покупок, дней"
	days.Width = 10
	days.SetValue(strconv.Itoa(settings.ShoppingDays))

	theme := textinput.New()
	theme.Placeholder = "light / dark"
	theme.Width = 10
	theme.SetValue(settings.Theme)

	return &settingsForm{
		settings: settings,
		inputs:   []textinput.Model{servings, days, theme},
	}
}

func (f *settingsForm) collect() (models.Settings, error) {
	settings := f.settings

	var err error
	if settings.DefaultServings, err = parseOptionalInt(f.inputs[settingsFieldServings].Value()); err != nil {
		return models.Settings{}, err
	}
	if settings.ShoppingDays, err = parseOptionalInt(f.inputs[settingsFieldDays].Value()); err != nil {
		return models.Settings{}, err
	}
	settings.Theme = strings.TrimSpace(f.inputs[settingsFieldTheme].Value())

	return settings, nil
}

// ── tab update / view ────────────────────────────────────────────────────────

func (m appModel) updateSettingsTab(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.connect):
		if m.connecting {
			return m, nil
		}
		if m.settings.AccountConnected {
			return m, m.cmdDisconnect()
		}
		m.connecting = true
		m.status = "Откройте страницу входа в браузере"
		return m, m.cmdConnect()
	case key.Matches(keyMsg, keys.edit):
		m.settingsForm = newSettingsForm(m.settings)
	case keyMsg.String() == "a":
		settings := m.settings
		settings.AutoSync = !settings.AutoSync
		return m, m.cmdSaveSettings(settings)
	}
	return m, nil
}

func (m appModel) viewSettingsTab() (body, hotKeys string) {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Аккаунт") + "\n")
	if m.settings.AccountConnected {
		b.WriteString("Подключён: " + valueOrDash(m.settings.AccountEmail) + "\n")
	} else {
		b.WriteString("Не подключён — данные хранятся только локально\n")
	}
	if m.connecting {
		b.WriteString("Ожидание подтверждения в браузере...\n")
		if m.consentLink != "" {
			b.WriteString("Ссылка: " + m.consentLink + "\n")
		}
	}

	b.WriteString("\n" + titleStyle.Render("Параметры") + "\n")
	b.WriteString("Порций по умолчанию: " + strconv.Itoa(m.settings.DefaultServings) + "\n")
	b.WriteString("Окно списка покупок: " + strconv.Itoa(m.settings.ShoppingDays) + " дн.\n")
	b.WriteString("Тема: " + valueOrDash(m.settings.Theme) + "\n")
	if m.settings.AutoSync {
		b.WriteString("Автосинхронизация: вкл\n")
	} else {
		b.WriteString("Автосинхронизация: выкл\n")
	}

	connectKey := "o: подключить аккаунт"
	if m.settings.AccountConnected {
		connectKey = "o: отключить аккаунт"
	}

	return b.String(), connectKey + " │ e: изменить │ a: автосинхр. │ s: синхр."
}

// ── form update / view ───────────────────────────────────────────────────────

func (m appModel) updateSettingsForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	f := m.settingsForm

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.settingsForm = nil
			return m, nil
		case "tab":
			f.inputs[f.focus].Blur()
			f.focus = (f.focus + 1) % settingsFieldCount
			f.inputs[f.focus].Focus()
			return m, nil
		case "shift+tab":
			f.inputs[f.focus].Blur()
			f.focus = (f.focus + settingsFieldCount - 1) % settingsFieldCount
			f.inputs[f.focus].Focus()
			return m, nil
		case "enter":
			if f.saving {
				return m, nil
			}
			settings, err := f.collect()
			if err != nil {
				f.errMsg = err.Error()
				return m, nil
			}
			f.errMsg = ""
			f.saving = true
			return m, m.cmdSaveSettings(settings)
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return m, cmd
}

func (m appModel) viewSettingsForm() string {
	f := m.settingsForm

	out := "Порций по умолчанию │ [" + f.inputs[settingsFieldServings].View() + "]\n"
	out += "Окно покупок, дней  │ [" + f.inputs[settingsFieldDays].View() + "]\n"
	out += "Тема                │ [" + f.inputs[settingsFieldTheme].View() + "]\n"
	if f.saving {
		out += "\nСохранение...\n"
	}
	if f.errMsg != "" {
		out += "\nОшибка: " + f.errMsg + "\n"
	}

	return renderPage("НАСТРОЙКИ", strings.TrimRight(out, "\n"), "esc: назад │ tab: след. поле │ enter: сохранить")
}

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/kitchenhub/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const planDateLayout = "2006-01-02"

var slotOrder = []string{models.SlotBreakfast, models.SlotLunch, models.SlotDinner}

var slotLabels = map[string]string{
	models.SlotBreakfast: "завтрак",
	models.SlotLunch:     "обед",
	models.SlotDinner:    "ужин",
}

type planStage int

const (
	planStageRecipe planStage = iota
	planStageFields
)

// planForm is the two-stage planning flow: pick a recipe, then fill in the
// day, the slot and an optional servings override.
type planForm struct {
	stage     planStage
	recipeIdx int
	recipe    models.Recipe

	date     textinput.Model
	servings textinput.Model
	slotIdx  int
	focus    int // 0 date, 1 servings

	errMsg string
	saving bool
}

func newPlanForm(defaultDate time.Time) *planForm {
	date := textinput.New()
	date.Placeholder = planDateLayout
	date.Width = 14
	date.SetValue(defaultDate.Format(planDateLayout))
	date.Focus()

	servings := textinput.New()
	servings.Placeholder = "как в рецепте"
	servings.Width = 14

	return &planForm{date: date, servings: servings}
}

func (f *planForm) collect() (models.MealPlan, error) {
	dateValue := strings.TrimSpace(f.date.Value())
	if _, err := time.Parse(planDateLayout, dateValue); err != nil {
		return models.MealPlan{}, fmt.Errorf("дата должна быть в формате %s", planDateLayout)
	}

	servings, err := parseOptionalInt(f.servings.Value())
	if err != nil {
		return models.MealPlan{}, fmt.Errorf("порции: %w", err)
	}

	return models.MealPlan{
		Date:     dateValue,
		Slot:     slotOrder[f.slotIdx],
		RecipeID: f.recipe.ID,
		Servings: servings,
	}, nil
}

// ── tab update / view ────────────────────────────────────────────────────────

func (m appModel) updatePlanTab(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.up):
		if m.planIdx > 0 {
			m.planIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.planIdx < len(m.plans)-1 {
			m.planIdx++
		}
	case key.Matches(keyMsg, keys.left):
		m.weekStart = m.weekStart.AddDate(0, 0, -7)
		return m, m.cmdLoadWeek(m.weekStart.Format(planDateLayout))
	case key.Matches(keyMsg, keys.right):
		m.weekStart = m.weekStart.AddDate(0, 0, 7)
		return m, m.cmdLoadWeek(m.weekStart.Format(planDateLayout))
	case key.Matches(keyMsg, keys.newItem):
		if len(m.recipes) == 0 {
			m.status = "Сначала добавьте рецепт"
			return m, nil
		}
		m.planForm = newPlanForm(m.weekStart)
	case key.Matches(keyMsg, keys.delete):
		if len(m.plans) > 0 && m.planIdx < len(m.plans) {
			return m, m.cmdUnplanMeal(m.plans[m.planIdx].ID)
		}
	}
	return m, nil
}

func (m appModel) viewPlanTab() (body, hotKeys string) {
	weekEnd := m.weekStart.AddDate(0, 0, 6)
	out := fmt.Sprintf("Неделя %s — %s\n\n",
		m.weekStart.Format("02.01"), weekEnd.Format("02.01.2006"))

	if len(m.plans) == 0 {
		out += "На эту неделю ничего не запланировано\n"
		return out, "n: запланировать │ ←/→: неделя │ s: синхр."
	}

	recipeNames := make(map[string]string, len(m.recipes))
	for _, recipe := range m.recipes {
		recipeNames[recipe.ID] = recipe.Name
	}

	out += "Дата       │ Приём   │ Рецепт                   │ Порции\n"
	out += "───────────┼─────────┼──────────────────────────┼───────\n"
	for i, plan := range m.plans {
		cursor := " "
		if i == m.planIdx {
			cursor = ">"
		}

		name, ok := recipeNames[plan.RecipeID]
		if !ok {
			name = "(рецепт удалён)"
		}

		out += fmt.Sprintf("%s %-9s │ %-7s │ %-24s │ %d\n",
			cursor, plan.Date, slotLabels[plan.Slot], fitText(name, 24), plan.Servings)
	}

	return out, "n: запланировать │ ctrl+d: уд. │ ←/→: неделя │ s: синхр. │ ↑/↓: нав."
}

// ── form update / view ───────────────────────────────────────────────────────

func (m appModel) updatePlanForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	f := m.planForm

	keyMsg, isKey := msg.(tea.KeyMsg)
	if !isKey {
		return m, nil
	}

	if f.stage == planStageRecipe {
		switch keyMsg.String() {
		case "esc":
			m.planForm = nil
		case "up":
			if f.recipeIdx > 0 {
				f.recipeIdx--
			}
		case "down":
			if f.recipeIdx < len(m.recipes)-1 {
				f.recipeIdx++
			}
		case "enter":
			f.recipe = m.recipes[f.recipeIdx]
			f.stage = planStageFields
		}
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		f.stage = planStageRecipe
		return m, nil
	case "tab", "shift+tab":
		if f.focus == 0 {
			f.date.Blur()
			f.servings.Focus()
			f.focus = 1
		} else {
			f.servings.Blur()
			f.date.Focus()
			f.focus = 0
		}
		return m, nil
	case "left":
		f.slotIdx = (f.slotIdx + len(slotOrder) - 1) % len(slotOrder)
		return m, nil
	case "right":
		f.slotIdx = (f.slotIdx + 1) % len(slotOrder)
		return m, nil
	case "enter":
		if f.saving {
			return m, nil
		}
		plan, err := f.collect()
		if err != nil {
			f.errMsg = err.Error()
			return m, nil
		}
		f.errMsg = ""
		f.saving = true
		return m, m.cmdPlanMeal(plan)
	}

	var cmd tea.Cmd
	if f.focus == 0 {
		f.date, cmd = f.date.Update(msg)
	} else {
		f.servings, cmd = f.servings.Update(msg)
	}
	return m, cmd
}

func (m appModel) viewPlanForm() string {
	f := m.planForm

	if f.stage == planStageRecipe {
		out := "Выберите рецепт:\n\n"
		for i, recipe := range m.recipes {
			cursor := " "
			if i == f.recipeIdx {
				cursor = ">"
			}
			out += fmt.Sprintf("%s %s\n", cursor, fitText(recipe.Name, 40))
		}
		return renderPage("ПЛАНИРОВАНИЕ", strings.TrimRight(out, "\n"), "esc: назад │ enter: выбрать │ ↑/↓: нав.")
	}

	out := "Рецепт   │ " + f.recipe.Name + "\n"
	out += "Дата     │ [" + f.date.View() + "]\n"
	out += "Приём    │ ← " + slotLabels[slotOrder[f.slotIdx]] + " →\n"
	out += "Порции   │ [" + f.servings.View() + "]\n"
	if f.saving {
		out += "\nСохранение...\n"
	}
	if f.errMsg != "" {
		out += "\nОшибка: " + f.errMsg + "\n"
	}

	return renderPage("ПЛАНИРОВАНИЕ", strings.TrimRight(out, "\n"), "esc: назад │ ←/→: приём пищи │ enter: запланировать")
}

package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/kitchenhub/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// recipeForm holds the add/edit state of a recipe. Scalar fields go through
// textinputs, ingredients and steps through textareas with one entry per line.
type recipeForm struct {
	recipe models.Recipe
	isNew  bool

	inputs      []textinput.Model
	focus       int
	ingredients textarea.Model
	steps       textarea.Model

	errMsg string
	saving bool
}

const (
	recipeFieldName = iota
	recipeFieldServings
	recipeFieldPrep
	recipeFieldCook
	recipeFieldCount
)

// фокус после текстовых полей уходит в textarea ингредиентов и шагов
const (
	recipeFocusIngredients = recipeFieldCount
	recipeFocusSteps       = recipeFieldCount + 1
	recipeFocusTotal       = recipeFieldCount + 2
)

func newRecipeForm(recipe models.Recipe, isNew bool, defaultServings int) *recipeForm {
	if isNew && recipe.Servings == 0 {
		recipe.Servings = defaultServings
	}

	name := textinput.New()
	name.Placeholder = "Название"
	name.Width = 40
	name.SetValue(recipe.Name)
	name.Focus()

	servings := textinput.New()
	servings.Placeholder = "Порций"
	servings.Width = 10
	if recipe.Servings > 0 {
		servings.SetValue(strconv.Itoa(recipe.Servings))
	}

	prep := textinput.New()
	prep.Placeholder = "Подготовка, мин"
	prep.Width = 10
	if recipe.PrepMinutes > 0 {
		prep.SetValue(strconv.Itoa(recipe.PrepMinutes))
	}

	cook := textinput.New()
	cook.Placeholder = "Готовка, мин"
	cook.Width = 10
	if recipe.CookMinutes > 0 {
		cook.SetValue(strconv.Itoa(recipe.CookMinutes))
	}

	ingredients := textarea.New()
	ingredients.Placeholder = "морковь; 400; г; овощи"
	ingredients.SetWidth(54)
	ingredients.SetHeight(6)
	ingredients.SetValue(formatIngredientLines(recipe.Ingredients))

	steps := textarea.New()
	steps.Placeholder = "Один шаг на строку"
	steps.SetWidth(54)
	steps.SetHeight(5)
	steps.SetValue(strings.Join(recipe.Steps, "\n"))

	return &recipeForm{
		recipe:      recipe,
		isNew:       isNew,
		inputs:      []textinput.Model{name, servings, prep, cook},
		ingredients: ingredients,
		steps:       steps,
	}
}

func formatIngredientLines(ingredients []models.Ingredient) string {
	lines := make([]string, 0, len(ingredients))
	for _, ing := range ingredients {
		lines = append(lines, fmt.Sprintf("%s; %s; %s; %s",
			ing.Name, strconv.FormatFloat(ing.Quantity, 'f', -1, 64), ing.Unit, ing.Category))
	}
	return strings.Join(lines, "\n")
}

// parseIngredientLine reads "название; количество; единица; категория",
// trailing parts are optional.
func parseIngredientLine(line string) (models.Ingredient, error) {
	parts := strings.Split(line, ";")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	ing := models.Ingredient{Name: parts[0]}
	if ing.Name == "" {
		return models.Ingredient{}, fmt.Errorf("пустое название ингредиента")
	}

	if len(parts) > 1 && parts[1] != "" {
		qty, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return models.Ingredient{}, fmt.Errorf("количество %q не число", parts[1])
		}
		ing.Quantity = qty
	}
	if len(parts) > 2 {
		ing.Unit = parts[2]
	}
	if len(parts) > 3 {
		ing.Category = parts[3]
	}
	return ing, nil
}

func (f *recipeForm) collect() (models.Recipe, error) {
	recipe := f.recipe
	recipe.Name = strings.TrimSpace(f.inputs[recipeFieldName].Value())

	var err error
	if recipe.Servings, err = parseOptionalInt(f.inputs[recipeFieldServings].Value()); err != nil {
		return models.Recipe{}, fmt.Errorf("порции: %w", err)
	}
	if recipe.PrepMinutes, err = parseOptionalInt(f.inputs[recipeFieldPrep].Value()); err != nil {
		return models.Recipe{}, fmt.Errorf("подготовка: %w", err)
	}
	if recipe.CookMinutes, err = parseOptionalInt(f.inputs[recipeFieldCook].Value()); err != nil {
		return models.Recipe{}, fmt.Errorf("готовка: %w", err)
	}

	recipe.Ingredients = nil
	for _, line := range strings.Split(f.ingredients.Value(), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		ing, err := parseIngredientLine(line)
		if err != nil {
			return models.Recipe{}, err
		}
		recipe.Ingredients = append(recipe.Ingredients, ing)
	}

	recipe.Steps = nil
	for _, line := range strings.Split(f.steps.Value(), "\n") {
		if strings.TrimSpace(line) != "" {
			recipe.Steps = append(recipe.Steps, strings.TrimSpace(line))
		}
	}

	return recipe, nil
}

func parseOptionalInt(v string) (int, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%q не число", v)
	}
	return n, nil
}

// ── tab update / view ────────────────────────────────────────────────────────

func (m appModel) updateRecipesTab(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.recipeDetail {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.recipeDetail = false
		case key.Matches(keyMsg, keys.edit):
			if recipe, ok := m.currentRecipe(); ok {
				m.recipeDetail = false
				m.recipeForm = newRecipeForm(recipe, false, m.settings.DefaultServings)
			}
		case key.Matches(keyMsg, keys.delete):
			if recipe, ok := m.currentRecipe(); ok {
				m.recipeDetail = false
				return m, m.cmdDeleteRecipe(recipe.ID)
			}
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.recipeIdx > 0 {
			m.recipeIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.recipeIdx < len(m.recipes)-1 {
			m.recipeIdx++
		}
	case key.Matches(keyMsg, keys.enter):
		if _, ok := m.currentRecipe(); ok {
			m.recipeDetail = true
		}
	case key.Matches(keyMsg, keys.newItem):
		m.recipeForm = newRecipeForm(models.Recipe{}, true, m.settings.DefaultServings)
	case key.Matches(keyMsg, keys.edit):
		if recipe, ok := m.currentRecipe(); ok {
			m.recipeForm = newRecipeForm(recipe, false, m.settings.DefaultServings)
		}
	case key.Matches(keyMsg, keys.delete):
		if recipe, ok := m.currentRecipe(); ok {
			return m, m.cmdDeleteRecipe(recipe.ID)
		}
	}
	return m, nil
}

func (m appModel) currentRecipe() (models.Recipe, bool) {
	if len(m.recipes) == 0 || m.recipeIdx >= len(m.recipes) {
		return models.Recipe{}, false
	}
	return m.recipes[m.recipeIdx], true
}

func (m appModel) viewRecipesTab() (body, hotKeys string) {
	if m.recipeDetail {
		recipe, ok := m.currentRecipe()
		if !ok {
			return "Рецепт не найден", "esc: назад"
		}
		return viewRecipeDetail(recipe), "esc: назад │ e: изм. │ ctrl+d: уд."
	}

	if m.loading {
		return "Загрузка...", ""
	}

	if len(m.recipes) == 0 {
		return "Рецептов пока нет", "n: добавить │ s: синхр."
	}

	out := "Название                      │ Порции │ Время\n"
	out += "──────────────────────────────┼────────┼──────────\n"
	for i, recipe := range m.recipes {
		cursor := " "
		if i == m.recipeIdx {
			cursor = ">"
		}
		total := recipe.PrepMinutes + recipe.CookMinutes
		out += fmt.Sprintf("%s %-28s │ %-6d │ %d мин\n",
			cursor, fitText(recipe.Name, 28), recipe.Servings, total)
	}

	return out, "n: добавить │ enter: открыть │ e: изм. │ ctrl+d: уд. │ s: синхр. │ ↑/↓: нав."
}

func viewRecipeDetail(recipe models.Recipe) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(recipe.Name) + "\n")
	b.WriteString(fmt.Sprintf("Порций: %d │ Подготовка: %d мин │ Готовка: %d мин\n",
		recipe.Servings, recipe.PrepMinutes, recipe.CookMinutes))
	if recipe.Tags.Cuisine != "" {
		b.WriteString("Кухня: " + recipe.Tags.Cuisine + "\n")
	}

	b.WriteString("\nИнгредиенты:\n")
	if len(recipe.Ingredients) == 0 {
		b.WriteString("  -\n")
	}
	for _, ing := range recipe.Ingredients {
		line := "  • " + ing.Name
		if ing.Quantity > 0 {
			line += " — " + strconv.FormatFloat(ing.Quantity, 'f', -1, 64)
			if ing.Unit != "" {
				line += " " + ing.Unit
			}
		}
		b.WriteString(line + "\n")
	}

	if len(recipe.Steps) > 0 {
		b.WriteString("\nШаги:\n")
		for i, step := range recipe.Steps {
			b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, step))
		}
	}

	return b.String()
}

// ── form update / view ───────────────────────────────────────────────────────

func (m appModel) updateRecipeForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	f := m.recipeForm

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.recipeForm = nil
			return m, nil
		case "tab":
			m.focusRecipeField((f.focus + 1) % recipeFocusTotal)
			return m, nil
		case "shift+tab":
			m.focusRecipeField((f.focus + recipeFocusTotal - 1) % recipeFocusTotal)
			return m, nil
		case "ctrl+s":
			if f.saving {
				return m, nil
			}
			recipe, err := f.collect()
			if err != nil {
				f.errMsg = err.Error()
				return m, nil
			}
			f.errMsg = ""
			f.saving = true
			return m, m.cmdSaveRecipe(recipe, f.isNew)
		case "enter":
			// в textarea enter — перенос строки, в полях — переход дальше
			if f.focus < recipeFieldCount {
				m.focusRecipeField(f.focus + 1)
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	switch {
	case f.focus < recipeFieldCount:
		f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	case f.focus == recipeFocusIngredients:
		f.ingredients, cmd = f.ingredients.Update(msg)
	default:
		f.steps, cmd = f.steps.Update(msg)
	}
	return m, cmd
}

func (m appModel) focusRecipeField(focus int) {
	f := m.recipeForm

	for i := range f.inputs {
		f.inputs[i].Blur()
	}
	f.ingredients.Blur()
	f.steps.Blur()

	f.focus = focus
	switch {
	case focus < recipeFieldCount:
		f.inputs[focus].Focus()
	case focus == recipeFocusIngredients:
		f.ingredients.Focus()
	default:
		f.steps.Focus()
	}
}

func (m appModel) viewRecipeForm() string {
	f := m.recipeForm

	title := "НОВЫЙ РЕЦЕПТ"
	if !f.isNew {
		title = "ИЗМЕНЕНИЕ РЕЦЕПТА"
	}

	out := "Название    │ [" + f.inputs[recipeFieldName].View() + "]\n"
	out += "Порции      │ [" + f.inputs[recipeFieldServings].View() + "]\n"
	out += "Подготовка  │ [" + f.inputs[recipeFieldPrep].View() + "]\n"
	out += "Готовка     │ [" + f.inputs[recipeFieldCook].View() + "]\n"
	out += "\nИнгредиенты (название; кол-во; ед.; категория):\n"
	out += f.ingredients.View() + "\n"
	out += "\nШаги:\n"
	out += f.steps.View() + "\n"

	if f.saving {
		out += "\nСохранение...\n"
	}
	if f.errMsg != "" {
		out += "\nОшибка: " + f.errMsg + "\n"
	}

	return renderPage(title, strings.TrimRight(out, "\n"), "esc: назад │ tab: след. поле │ ctrl+s: сохранить")
}

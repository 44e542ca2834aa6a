package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/kitchenhub/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type itemForm struct {
	item  models.ShoppingItem
	isNew bool

	inputs []textinput.Model
	focus  int

	errMsg string
	saving bool
}

const (
	itemFieldName = iota
	itemFieldQuantity
	itemFieldUnit
	itemFieldCategory
	itemFieldCount
)

func newItemForm(item models.ShoppingItem, isNew bool) *itemForm {
	name := textinput.New()
	name.Placeholder = "Название"
	name.Width = 40
	name.SetValue(item.Name)
	name.Focus()

	qty := textinput.New()
	qty.Placeholder = "Количество"
	qty.Width = 12
	if item.Quantity > 0 {
		qty.SetValue(strconv.FormatFloat(item.Quantity, 'f', -1, 64))
	}

	unit := textinput.New()
	unit.Placeholder = "Единица"
	unit.Width = 12
	unit.SetValue(item.Unit)

	category := textinput.New()
	category.Placeholder = "Категория"
	category.Width = 20
	category.SetValue(item.Category)

	return &itemForm{
		item:   item,
		isNew:  isNew,
		inputs: []textinput.Model{name, qty, unit, category},
	}
}

func (f *itemForm) collect() (models.ShoppingItem, error) {
	item := f.item
	item.Name = strings.TrimSpace(f.inputs[itemFieldName].Value())
	item.Unit = strings.TrimSpace(f.inputs[itemFieldUnit].Value())
	item.Category = strings.TrimSpace(f.inputs[itemFieldCategory].Value())

	qtyRaw := strings.TrimSpace(f.inputs[itemFieldQuantity].Value())
	if qtyRaw == "" {
		item.Quantity = 0
		return item, nil
	}

	qty, err := strconv.ParseFloat(qtyRaw, 64)
	if err != nil {
		return models.ShoppingItem{}, fmt.Errorf("количество %q не число", qtyRaw)
	}
	item.Quantity = qty
	return item, nil
}

// ── tab update / view ────────────────────────────────────────────────────────

func (m appModel) updateShoppingTab(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.up):
		if m.itemIdx > 0 {
			m.itemIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.itemIdx < len(m.items)-1 {
			m.itemIdx++
		}
	case key.Matches(keyMsg, keys.check):
		if item, ok := m.currentItem(); ok {
			return m, m.cmdToggleChecked(item)
		}
	case key.Matches(keyMsg, keys.newItem):
		m.itemForm = newItemForm(models.ShoppingItem{}, true)
	case key.Matches(keyMsg, keys.edit):
		if item, ok := m.currentItem(); ok {
			m.itemForm = newItemForm(item, false)
		}
	case key.Matches(keyMsg, keys.delete):
		if item, ok := m.currentItem(); ok {
			return m, m.cmdRemoveItem(item.ID)
		}
	case key.Matches(keyMsg, keys.generate):
		m.status = "Составление списка по плану..."
		return m, m.cmdGenerateShopping()
	case key.Matches(keyMsg, keys.copy):
		return m, m.cmdCopyShoppingList()
	case key.Matches(keyMsg, keys.clear):
		return m, m.cmdClearChecked()
	}
	return m, nil
}

func (m appModel) currentItem() (models.ShoppingItem, bool) {
	if len(m.items) == 0 || m.itemIdx >= len(m.items) {
		return models.ShoppingItem{}, false
	}
	return m.items[m.itemIdx], true
}

func (m appModel) viewShoppingTab() (body, hotKeys string) {
	hotKeys = "n: добавить │ space: куплено │ g: из плана │ c: копировать │ x: убрать купленные │ ctrl+d: уд."

	if len(m.items) == 0 {
		return "Список покупок пуст", hotKeys
	}

	var out string
	lastCategory := "\x00"
	for i, item := range m.items {
		if item.Category != lastCategory {
			category := item.Category
			if category == "" {
				category = "другое"
			}
			if out != "" {
				out += "\n"
			}
			out += titleStyle.Render(strings.ToUpper(category)) + "\n"
			lastCategory = item.Category
		}

		cursor := " "
		if i == m.itemIdx {
			cursor = ">"
		}

		mark := "[ ]"
		if item.Checked {
			mark = "[x]"
		}

		line := item.Name
		if item.Quantity > 0 {
			line += " " + strconv.FormatFloat(item.Quantity, 'f', -1, 64)
			if item.Unit != "" {
				line += " " + item.Unit
			}
		}
		if item.Checked {
			line = checkedStyle.Render(line)
		}

		out += fmt.Sprintf("%s %s %s\n", cursor, mark, line)
	}

	return out, hotKeys
}

// ── form update / view ───────────────────────────────────────────────────────

func (m appModel) updateItemForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	f := m.itemForm

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.itemForm = nil
			return m, nil
		case "tab":
			f.inputs[f.focus].Blur()
			f.focus = (f.focus + 1) % itemFieldCount
			f.inputs[f.focus].Focus()
			return m, nil
		case "shift+tab":
			f.inputs[f.focus].Blur()
			f.focus = (f.focus + itemFieldCount - 1) % itemFieldCount
			f.inputs[f.focus].Focus()
			return m, nil
		case "enter":
			if f.saving {
				return m, nil
			}
			item, err := f.collect()
			if err != nil {
				f.errMsg = err.Error()
				return m, nil
			}
			f.errMsg = ""
			f.saving = true
			return m, m.cmdSaveItem(item, f.isNew)
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return m, cmd
}

func (m appModel) viewItemForm() string {
	f := m.itemForm

	title := "НОВАЯ ПОЗИЦИЯ"
	if !f.isNew {
		title = "ИЗМЕНЕНИЕ ПОЗИЦИИ"
	}

	out := "Название   │ [" + f.inputs[itemFieldName].View() + "]\n"
	out += "Количество │ [" + f.inputs[itemFieldQuantity].View() + "]\n"
	out += "Единица    │ [" + f.inputs[itemFieldUnit].View() + "]\n"
	out += "Категория  │ [" + f.inputs[itemFieldCategory].View() + "]\n"
	if f.saving {
		out += "\nСохранение...\n"
	}
	if f.errMsg != "" {
		out += "\nОшибка: " + f.errMsg + "\n"
	}

	return renderPage(title, strings.TrimRight(out, "\n"), "esc: назад │ tab: след. поле │ enter: сохранить")
}

package tui

import (
	"time"

	"github.com/MKhiriev/kitchenhub/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTickInterval = 500 * time.Millisecond

func (m appModel) cmdStatusTick() tea.Cmd {
	return tea.Tick(statusTickInterval, func(time.Time) tea.Msg {
		return statusTickMsg{}
	})
}

func (m appModel) cmdListenReload() tea.Cmd {
	return func() tea.Msg {
		<-m.reload
		return reloadMsg{}
	}
}

func (m appModel) cmdListenConsentURL() tea.Cmd {
	return func() tea.Msg {
		url := <-m.consentURL
		return consentURLMsg{url: url}
	}
}

func (m appModel) cmdLoadRecipes() tea.Cmd {
	return func() tea.Msg {
		recipes, err := m.services.RecipeService.GetAll(m.ctx)
		return recipesLoadedMsg{recipes: recipes, err: err}
	}
}

func (m appModel) cmdLoadWeek(from string) tea.Cmd {
	return func() tea.Msg {
		plans, err := m.services.MealPlanService.GetWeek(m.ctx, from)
		return plansLoadedMsg{plans: plans, err: err}
	}
}

func (m appModel) cmdLoadShopping() tea.Cmd {
	return func() tea.Msg {
		items, err := m.services.ShoppingService.GetAll(m.ctx)
		return shoppingLoadedMsg{items: items, err: err}
	}
}

func (m appModel) cmdLoadSettings() tea.Cmd {
	return func() tea.Msg {
		settings, err := m.services.AccountService.Settings(m.ctx)
		return settingsLoadedMsg{settings: settings, err: err}
	}
}

func (m appModel) cmdSaveRecipe(recipe models.Recipe, isNew bool) tea.Cmd {
	return func() tea.Msg {
		var err error
		if isNew {
			_, err = m.services.RecipeService.Create(m.ctx, recipe)
		} else {
			_, err = m.services.RecipeService.Update(m.ctx, recipe)
		}
		return recipeSavedMsg{err: err}
	}
}

func (m appModel) cmdDeleteRecipe(id string) tea.Cmd {
	return func() tea.Msg {
		return recipeDeletedMsg{err: m.services.RecipeService.Delete(m.ctx, id)}
	}
}

func (m appModel) cmdPlanMeal(plan models.MealPlan) tea.Cmd {
	return func() tea.Msg {
		_, err := m.services.MealPlanService.Plan(m.ctx, plan)
		return planSavedMsg{err: err}
	}
}

func (m appModel) cmdUnplanMeal(id string) tea.Cmd {
	return func() tea.Msg {
		return planDeletedMsg{err: m.services.MealPlanService.Unplan(m.ctx, id)}
	}
}

func (m appModel) cmdSaveItem(item models.ShoppingItem, isNew bool) tea.Cmd {
	return func() tea.Msg {
		var err error
		if isNew {
			_, err = m.services.ShoppingService.Add(m.ctx, item)
		} else {
			_, err = m.services.ShoppingService.Update(m.ctx, item)
		}
		return itemSavedMsg{err: err}
	}
}

func (m appModel) cmdRemoveItem(id string) tea.Cmd {
	return func() tea.Msg {
		return itemDeletedMsg{err: m.services.ShoppingService.Remove(m.ctx, id)}
	}
}

func (m appModel) cmdToggleChecked(item models.ShoppingItem) tea.Cmd {
	return func() tea.Msg {
		err := m.services.ShoppingService.SetChecked(m.ctx, item.ID, !item.Checked)
		return checkToggledMsg{err: err}
	}
}

func (m appModel) cmdClearChecked() tea.Cmd {
	return func() tea.Msg {
		return clearedCheckedMsg{err: m.services.ShoppingService.ClearChecked(m.ctx)}
	}
}

func (m appModel) cmdGenerateShopping() tea.Cmd {
	return func() tea.Msg {
		items, err := m.services.ShoppingService.GenerateFromMealPlans(m.ctx)
		return generateDoneMsg{count: len(items), err: err}
	}
}

func (m appModel) cmdCopyShoppingList() tea.Cmd {
	return func() tea.Msg {
		text, err := m.services.ShoppingService.FormatList(m.ctx)
		if err != nil {
			return copyDoneMsg{err: err}
		}
		return copyDoneMsg{err: clipboard.WriteAll(text)}
	}
}

func (m appModel) cmdConnect() tea.Cmd {
	return func() tea.Msg {
		settings, err := m.services.AccountService.Connect(m.ctx)
		return connectDoneMsg{settings: settings, err: err}
	}
}

func (m appModel) cmdDisconnect() tea.Cmd {
	return func() tea.Msg {
		settings, err := m.services.AccountService.Disconnect(m.ctx)
		return disconnectDoneMsg{settings: settings, err: err}
	}
}

func (m appModel) cmdSaveSettings(settings models.Settings) tea.Cmd {
	return func() tea.Msg {
		saved, err := m.services.AccountService.UpdateSettings(m.ctx, settings)
		return settingsSavedMsg{settings: saved, err: err}
	}
}

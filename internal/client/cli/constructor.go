package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/stellarburgers/internal/client/models"
	"github.com/dmitrijs2005/stellarburgers/internal/client/store"
)

var errNotFound = errors.New("not found")

func (a *App) Catalog(ctx context.Context) error {
	s := a.store.State()
	if store.SelectIsIngredientsLoading(s) {
		a.println("Catalog is loading...")
		return nil
	}
	if len(store.SelectIngredients(s)) == 0 {
		a.println("Catalog is empty")
		return nil
	}

	counts := store.SelectIngredientCounts(s)
	groups := []struct {
		title string
		items []models.Ingredient
	}{
		{"Buns", store.SelectBuns(s)},
		{"Sauces", store.SelectSauces(s)},
		{"Mains", store.SelectMains(s)},
	}
	for _, g := range groups {
		a.println(g.title + ":")
		for _, ing := range g.items {
			a.printf("  %s  %-40s %8.0f", ing.ID, ing.Name, ing.Price)
			if n := counts[ing.ID]; n > 0 {
				a.printf("  x%d", n)
			}
			a.println()
		}
	}
	return nil
}

func (a *App) Add(ctx context.Context, id string) error {
	ing, ok := store.SelectIngredient(a.store.State(), id)
	if !ok {
		a.println("Unknown ingredient:", id)
		return errNotFound
	}
	if err := a.store.AddItem(ctx, ing); err != nil {
		a.log.Error(ctx, "add item failed", "id", id, "error", err)
		return err
	}
	a.println("Added", ing.Name)
	return nil
}

// slot looks a filling up by its displayed slot identity.
func (a *App) slot(id string) (models.ConstructorIngredient, bool) {
	for _, it := range store.SelectConstructorItems(a.store.State()).Ingredients {
		if it.ID == id {
			return it, true
		}
	}
	return models.ConstructorIngredient{}, false
}

func (a *App) Move(ctx context.Context, slot string, up bool) error {
	item, ok := a.slot(slot)
	if !ok {
		a.println("No such slot:", slot)
		return errNotFound
	}
	move := a.store.MoveDown
	if up {
		move = a.store.MoveUp
	}
	if err := move(ctx, item); err != nil {
		if errors.Is(err, store.ErrInvalidSlot) {
			a.println("Cannot move this filling any further")
		}
		return err
	}
	return a.Show(ctx)
}

func (a *App) Remove(ctx context.Context, slot string) error {
	item, ok := a.slot(slot)
	if !ok {
		a.println("No such slot:", slot)
		return errNotFound
	}
	if err := a.store.RemoveItem(ctx, item); err != nil {
		return err
	}
	a.println("Removed", item.Name)
	return nil
}

func (a *App) Show(ctx context.Context) error {
	s := a.store.State()
	items := store.SelectConstructorItems(s)

	if items.Bun == nil && len(items.Ingredients) == 0 {
		a.println("The constructor is empty. Choose a bun and fillings.")
		return nil
	}

	bun := func(side string) {
		if items.Bun == nil {
			a.println("  [choose a bun]")
			return
		}
		a.printf("  %s (%s) %.0f\n", items.Bun.Name, side, items.Bun.Price)
	}

	bun("top")
	if len(items.Ingredients) == 0 {
		a.println("  [choose fillings]")
	}
	for _, it := range items.Ingredients {
		a.printf("  %2s. %s %.0f\n", it.ID, it.Name, it.Price)
	}
	bun("bottom")
	a.printf("Total: %.0f\n", store.SelectTotalPrice(s))
	return nil
}

func (a *App) Clear(ctx context.Context) error {
	return a.store.Reset(ctx)
}

// Order places the current construction. On success the profile history is
// refreshed; the result stays visible until CloseOrder.
func (a *App) Order(ctx context.Context) error {
	if !a.isLoggedIn() {
		a.println("Please login first")
		return nil
	}

	f, err := a.store.SubmitConstruction(ctx)
	switch {
	case errors.Is(err, store.ErrNoBun):
		a.println("Choose a bun first")
		return err
	case errors.Is(err, store.ErrNoFillings):
		a.println("Add at least one filling")
		return err
	case errors.Is(err, store.ErrOrderInFlight):
		a.println("The order is already being placed")
		return err
	case err != nil:
		return err
	}

	a.println("Placing order...")
	resp, err := f.Wait(ctx)
	if err != nil {
		a.println("Order failed:", err)
		return err
	}

	a.printf("Order #%d accepted: %s\n", resp.Order.Number, resp.Name)
	_ = a.store.FetchProfileOrders(ctx)
	return nil
}

func (a *App) CloseOrder(ctx context.Context) error {
	if _, ok := store.SelectLastOrder(a.store.State()); !ok {
		a.println("Nothing to close")
		return nil
	}
	if err := a.store.DismissOrderResult(ctx); err != nil {
		return err
	}
	return a.store.Reset(ctx)
}

func fmtOrder(o models.Order) string {
	return fmt.Sprintf("#%06d  %-10s %s  %s", o.Number, o.Status, o.CreatedAt.Local().Format("2006-01-02 15:04"), o.Name)
}

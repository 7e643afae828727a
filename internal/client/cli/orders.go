package cli

import (
	"context"

	"github.com/dmitrijs2005/stellarburgers/internal/client/store"
)

const feedLimit = 20

func (a *App) Feed(ctx context.Context) error {
	s := a.store.State()
	orders := store.SelectOrdersAll(s)
	if len(orders) > feedLimit {
		orders = orders[:feedLimit]
	}
	for _, o := range orders {
		a.println(fmtOrder(o))
	}
	sum := store.SelectFeed(s)
	a.printf("Done all time: %d, today: %d\n", sum.Total, sum.TotalToday)
	return nil
}

func (a *App) Info(ctx context.Context, number string) error {
	s := a.store.State()
	o, ok := store.SelectOrder(s, number)
	if !ok {
		a.println("Order not found:", number)
		return errNotFound
	}

	a.println(fmtOrder(o))
	lines, total := store.SelectOrderIngredients(s, o)
	for _, l := range lines {
		a.printf("  %d x %s %.0f\n", l.Count, l.Ingredient.Name, l.Ingredient.Price)
	}
	a.printf("Total: %.0f\n", total)
	return nil
}

func (a *App) Profile(ctx context.Context) error {
	if !a.isLoggedIn() {
		a.println("Please login first")
		return nil
	}
	if _, err := a.store.FetchProfileOrders(ctx).Wait(ctx); err != nil {
		a.println("Could not load orders:", err)
		return err
	}
	orders := store.SelectOrdersProfile(a.store.State())
	if len(orders) == 0 {
		a.println("No orders yet")
	}
	for _, o := range orders {
		a.println(fmtOrder(o))
	}
	return nil
}

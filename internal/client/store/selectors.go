package store

import (
	"strconv"

	"github.com/dmitrijs2005/stellarburgers/internal/client/models"
)

// Derived read queries over a RootState snapshot. None of them store data.

func SelectIngredients(s RootState) []models.Ingredient { return s.Ingredients.Entities }

func SelectIsIngredientsLoading(s RootState) bool { return s.Ingredients.IsLoading }

func SelectIsIngredientsInit(s RootState) bool { return s.Ingredients.IsInit }

func selectByType(s RootState, t models.IngredientType) []models.Ingredient {
	var out []models.Ingredient
	for _, ing := range s.Ingredients.Entities {
		if ing.Type == t {
			out = append(out, ing)
		}
	}
	return out
}

func SelectBuns(s RootState) []models.Ingredient { return selectByType(s, models.IngredientTypeBun) }

func SelectSauces(s RootState) []models.Ingredient {
	return selectByType(s, models.IngredientTypeSauce)
}

func SelectMains(s RootState) []models.Ingredient { return selectByType(s, models.IngredientTypeMain) }

// SelectIngredient looks an ingredient up by id.
func SelectIngredient(s RootState, id string) (models.Ingredient, bool) {
	for _, ing := range s.Ingredients.Entities {
		if ing.ID == id {
			return ing, true
		}
	}
	return models.Ingredient{}, false
}

func SelectConstructorItems(s RootState) models.ConstructorItems { return s.Constructor.Items() }

// SelectTotalPrice is the construction price; the bun counts twice.
func SelectTotalPrice(s RootState) float64 {
	var total float64
	if s.Constructor.Bun != nil {
		total += 2 * s.Constructor.Bun.Price
	}
	for _, k := range s.Constructor.Keys {
		total += s.Constructor.Entries[k].Price
	}
	return total
}

// SelectIngredientCounts maps ingredient ids to how many times they appear
// in the construction.
func SelectIngredientCounts(s RootState) map[string]int {
	counts := make(map[string]int)
	if s.Constructor.Bun != nil {
		counts[s.Constructor.Bun.ID] = 2
	}
	for _, k := range s.Constructor.Keys {
		counts[s.Constructor.Entries[k].ID]++
	}
	return counts
}

// OrderIngredientIDs builds the submission list: the bun brackets the
// fillings.
func OrderIngredientIDs(s RootState) ([]string, error) {
	c := s.Constructor
	if c.Bun == nil {
		return nil, ErrNoBun
	}
	if len(c.Keys) == 0 {
		return nil, ErrNoFillings
	}
	ids := make([]string, 0, len(c.Keys)+2)
	ids = append(ids, c.Bun.ID)
	for _, k := range c.Keys {
		ids = append(ids, c.Entries[k].ID)
	}
	return append(ids, c.Bun.ID), nil
}

func SelectOrdersAll(s RootState) []models.Order { return s.Orders.Orders }

// FeedSummary holds the feed's aggregate counters.
type FeedSummary struct {
	Total      int
	TotalToday int
}

func SelectFeed(s RootState) FeedSummary {
	return FeedSummary{Total: s.Orders.Total, TotalToday: s.Orders.TotalToday}
}

// SelectOrder finds an order by its display number in the feed, then in the
// profile history.
func SelectOrder(s RootState, number string) (models.Order, bool) {
	for _, list := range [][]models.Order{s.Orders.Orders, s.Orders.OrdersProfile} {
		for _, o := range list {
			if strconv.Itoa(o.Number) == number {
				return o, true
			}
		}
	}
	return models.Order{}, false
}

// OrderInfo is the submission state as the view sees it.
type OrderInfo struct {
	OrderRequest   bool
	OrderName      string
	OrderModalData *models.Order
}

func SelectOrderInfo(s RootState) OrderInfo {
	return OrderInfo{
		OrderRequest:   s.Constructor.OrderRequest,
		OrderName:      s.Constructor.OrderName,
		OrderModalData: s.Constructor.OrderModalData,
	}
}

// SelectLastOrder resolves the orders slice's reference into the owner.
func SelectLastOrder(s RootState) (models.Order, bool) {
	m := s.Constructor.OrderModalData
	if s.Orders.LastOrderNumber == 0 || m == nil || m.Number != s.Orders.LastOrderNumber {
		return models.Order{}, false
	}
	return *m, true
}

func SelectOrdersProfile(s RootState) []models.Order { return s.Orders.OrdersProfile }

// OrderLine is one distinct ingredient of an order with its multiplicity.
type OrderLine struct {
	Ingredient models.Ingredient
	Count      int
}

// SelectOrderIngredients resolves an order's ingredient ids against the
// catalog, in first-seen order. Unknown ids are skipped.
func SelectOrderIngredients(s RootState, o models.Order) ([]OrderLine, float64) {
	var lines []OrderLine
	index := make(map[string]int)
	var total float64
	for _, id := range o.Ingredients {
		ing, ok := SelectIngredient(s, id)
		if !ok {
			continue
		}
		total += ing.Price
		if i, seen := index[id]; seen {
			lines[i].Count++
			continue
		}
		index[id] = len(lines)
		lines = append(lines, OrderLine{Ingredient: ing, Count: 1})
	}
	return lines, total
}

func SelectUser(s RootState) *models.User { return s.User.User }

func SelectIsAuthChecked(s RootState) bool { return s.User.IsAuthChecked }

func SelectIsAuthenticated(s RootState) bool {
	return s.User.IsAuthenticated && s.User.User != nil
}

func SelectUserError(s RootState) string { return s.User.Error }

func SelectIsUserLoading(s RootState) bool { return s.User.IsLoading }

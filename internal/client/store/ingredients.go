package store

import "github.com/dmitrijs2005/stellarburgers/internal/client/models"

// IngredientsState is the catalog slice. IsInit turns true once the first
// fetch attempt completes, whatever its outcome.
type IngredientsState struct {
	IsLoading bool
	IsInit    bool
	Entities  []models.Ingredient
}

func reduceIngredients(s IngredientsState, action Action) IngredientsState {
	a, ok := action.(AsyncAction)
	if !ok || a.Kind != KindFetchIngredients {
		return s
	}

	switch a.Phase {
	case Pending:
		s.IsLoading = true
	case Rejected:
		s.IsLoading = false
		s.IsInit = true
	case Fulfilled:
		s.Entities = a.Payload.([]models.Ingredient)
		s.IsLoading = false
		s.IsInit = true
	}
	return s
}

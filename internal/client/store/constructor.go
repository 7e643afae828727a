package store

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/dmitrijs2005/stellarburgers/internal/client/models"
)

// ConstructorState is the construction slice and the single owner of the
// order submission state.
//
// Fillings live in an arena (Entries) keyed by a stable key, and Keys holds
// their order. Slot identities are never stored: they are the positions in
// Keys, so they are contiguous by construction.
type ConstructorState struct {
	Bun     *models.Ingredient
	Entries map[string]models.Ingredient
	Keys    []string

	OrderRequest   bool
	OrderName      string
	OrderModalData *models.Order
}

// Items renders the construction with slot identities "0".."n-1".
func (s ConstructorState) Items() models.ConstructorItems {
	items := models.ConstructorItems{
		Bun:         s.Bun,
		Ingredients: make([]models.ConstructorIngredient, 0, len(s.Keys)),
	}
	for i, k := range s.Keys {
		items.Ingredients = append(items.Ingredients, models.ConstructorIngredient{
			Ingredient: s.Entries[k],
			ID:         strconv.Itoa(i),
			Key:        k,
		})
	}
	return items
}

// slotOf resolves an item to its current position. The stable key wins when
// present; otherwise the slot identity is parsed.
func (s ConstructorState) slotOf(item models.ConstructorIngredient) (int, error) {
	if item.Key != "" {
		if i := slices.Index(s.Keys, item.Key); i >= 0 {
			return i, nil
		}
		return 0, fmt.Errorf("%w: unknown key %q", ErrInvalidSlot, item.Key)
	}

	i, err := strconv.Atoi(item.ID)
	if err != nil || i < 0 || i >= len(s.Keys) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSlot, item.ID)
	}
	return i, nil
}

func (s ConstructorState) swap(i, j int) ConstructorState {
	keys := slices.Clone(s.Keys)
	keys[i], keys[j] = keys[j], keys[i]
	s.Keys = keys
	return s
}

func (s ConstructorState) clearSubmission() ConstructorState {
	s.OrderRequest = false
	s.OrderName = ""
	s.OrderModalData = nil
	return s
}

func reduceConstructor(s ConstructorState, action Action) (ConstructorState, error) {
	switch a := action.(type) {
	case AddItem:
		if a.Ingredient.IsBun() {
			bun := a.Ingredient
			s.Bun = &bun
			return s, nil
		}
		if a.Key == "" {
			return s, fmt.Errorf("%w: empty key", ErrInvalidItem)
		}
		if _, dup := s.Entries[a.Key]; dup {
			return s, fmt.Errorf("%w: duplicate key %q", ErrInvalidItem, a.Key)
		}
		entries := make(map[string]models.Ingredient, len(s.Entries)+1)
		for k, v := range s.Entries {
			entries[k] = v
		}
		entries[a.Key] = a.Ingredient
		s.Entries = entries
		s.Keys = append(slices.Clone(s.Keys), a.Key)
		return s, nil

	case MoveUp:
		i, err := s.slotOf(a.Item)
		if err != nil {
			return s, err
		}
		if i == 0 {
			return s, fmt.Errorf("%w: cannot move slot 0 up", ErrInvalidSlot)
		}
		return s.swap(i, i-1), nil

	case MoveDown:
		i, err := s.slotOf(a.Item)
		if err != nil {
			return s, err
		}
		if i == len(s.Keys)-1 {
			return s, fmt.Errorf("%w: cannot move last slot %d down", ErrInvalidSlot, i)
		}
		return s.swap(i, i+1), nil

	case RemoveItem:
		i, err := s.slotOf(a.Item)
		if err != nil {
			return s, err
		}
		key := s.Keys[i]
		entries := make(map[string]models.Ingredient, len(s.Entries))
		for k, v := range s.Entries {
			if k != key {
				entries[k] = v
			}
		}
		s.Entries = entries
		s.Keys = slices.Delete(slices.Clone(s.Keys), i, i+1)
		return s, nil

	case ResetConstructor:
		return ConstructorState{}, nil

	case DismissOrderResult, ResetOrderState:
		return s.clearSubmission(), nil

	case AsyncAction:
		if a.Kind != KindSubmitOrder {
			return s, nil
		}
		switch a.Phase {
		case Pending:
			s.OrderRequest = true
		case Rejected:
			s = s.clearSubmission()
		case Fulfilled:
			resp := a.Payload.(models.NewOrderResponse)
			order := resp.Order
			s.OrderRequest = false
			s.OrderName = resp.Name
			s.OrderModalData = &order
		}
		return s, nil
	}
	return s, nil
}

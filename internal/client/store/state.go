package store

// RootState composes the four slices. Version grows by one with every
// dispatched action that the Store applies.
type RootState struct {
	Ingredients IngredientsState
	Constructor ConstructorState
	Orders      OrdersState
	User        UserState
	Version     uint64
}

// Reduce computes the next state for one action. It is pure: credential side
// effects are returned, not performed. On error the input state is returned
// unchanged.
func Reduce(s RootState, a Action) (RootState, []Effect, error) {
	constructor, err := reduceConstructor(s.Constructor, a)
	if err != nil {
		return s, nil, err
	}

	next := s
	next.Constructor = constructor
	next.Ingredients = reduceIngredients(s.Ingredients, a)
	next.Orders = reduceOrders(s.Orders, a)

	var effects []Effect
	next.User, effects = reduceUser(s.User, a)
	next.Version = s.Version + 1
	return next, effects, nil
}

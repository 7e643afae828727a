// Package models defines the client-side data models of the burger
// constructor: catalog ingredients, orders, feed data and user identity.
package models

// IngredientType classifies a catalog ingredient.
type IngredientType string

const (
	IngredientTypeBun   IngredientType = "bun"
	IngredientTypeSauce IngredientType = "sauce"
	IngredientTypeMain  IngredientType = "main"
)

// Ingredient is an immutable catalog entry as returned by the server.
type Ingredient struct {
	ID            string         `json:"_id"`
	Name          string         `json:"name"`
	Type          IngredientType `json:"type"`
	Proteins      float64        `json:"proteins"`
	Fat           float64        `json:"fat"`
	Carbohydrates float64        `json:"carbohydrates"`
	Calories      float64        `json:"calories"`
	Price         float64        `json:"price"`
	Image         string         `json:"image"`
	ImageMobile   string         `json:"image_mobile"`
	ImageLarge    string         `json:"image_large"`
}

// IsBun reports whether the ingredient occupies the bun slot.
func (i Ingredient) IsBun() bool {
	return i.Type == IngredientTypeBun
}

// ConstructorIngredient is a filling placed into the construction.
//
// ID is the slot identity: the zero-based position in the filling sequence
// encoded as a string. It is valid only until the sequence is next mutated.
// Key is a stable synthetic key assigned on insertion and never reused.
type ConstructorIngredient struct {
	Ingredient
	ID  string `json:"id"`
	Key string `json:"key"`
}

// ConstructorItems is the in-progress selection: at most one bun plus an
// ordered sequence of fillings.
type ConstructorItems struct {
	Bun         *Ingredient
	Ingredients []ConstructorIngredient
}

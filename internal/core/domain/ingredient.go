package domain

// IngredientType groups ingredients on the design form.
type IngredientType string

const (
	TypeWrap    IngredientType = "WRAP"
	TypeProtein IngredientType = "PROTEIN"
	TypeVeggies IngredientType = "VEGGIES"
	TypeCheese  IngredientType = "CHEESE"
	TypeSauce   IngredientType = "SAUCE"
)

// IngredientTypes lists all types in display order.
var IngredientTypes = []IngredientType{TypeWrap, TypeProtein, TypeVeggies, TypeCheese, TypeSauce}

// Ingredient is immutable catalog data, seeded at provisioning time and never
// mutated by the application.
type Ingredient struct {
	ID   string         `db:"id"`
	Name string         `db:"name"`
	Type IngredientType `db:"type"`
}

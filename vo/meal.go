package vo

import "time"

type Category string

const (
	CategoryNonVegetarian Category = "non-vegetarian"
	CategoryVegetarian    Category = "vegetarian"
	CategoryVegan         Category = "vegan"
)

type PriceTier string

const (
	PriceTierNonVegetarian PriceTier = "non-vegetarian"
	PriceTierVegetarian    PriceTier = "vegetarian"
	PriceTierSpecial       PriceTier = "special"
)

// MealRecord is one parsed meal. Name carries neither the allergen
// suffix nor a dietary parenthetical once parsing is done.
type MealRecord struct {
	Name      string
	Category  Category
	Allergens []string
}

// DatedMeal is the unit handed to a feed builder: a meal pinned to a
// calendar day, priced by tier.
type DatedMeal struct {
	Date time.Time
	Meal MealRecord
	Tier PriceTier
}

// Tier derives the price tier from the dietary category. Vegan and
// vegetarian meals share one tier.
func (c Category) Tier() PriceTier {
	if c == CategoryVegetarian || c == CategoryVegan {
		return PriceTierVegetarian
	}
	return PriceTierNonVegetarian
}

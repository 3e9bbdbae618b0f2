package models

// Suggested category vocabulary. Categories are free-form short strings; this
// list seeds the entry form dropdown and the import sample, it is not
// enforced on create.
const (
	CategoryFood          = "food"
	CategoryRestaurant    = "restaurant"
	CategoryTravel        = "travel"
	CategorySubscriptions = "subscriptions"
	CategoryClothes       = "clothes + accessories"
	CategoryHousehold     = "household"
	CategoryHealth        = "health"
	CategoryEntertainment = "entertainment"
	CategoryGifts         = "gifts"
	CategoryIncome        = "income"
	CategoryOther         = "other"
)

// SuggestedCategories returns the suggested category vocabulary in display order.
func SuggestedCategories() []string {
	return []string{
		CategoryFood,
		CategoryRestaurant,
		CategoryTravel,
		CategorySubscriptions,
		CategoryClothes,
		CategoryHousehold,
		CategoryHealth,
		CategoryEntertainment,
		CategoryGifts,
		CategoryIncome,
		CategoryOther,
	}
}

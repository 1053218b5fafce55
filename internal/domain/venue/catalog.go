package venue

// UnknownVenueName is the sentinel shown when a venue lookup misses.
// Unresolved venues degrade to this name rather than failing the caller.
const UnknownVenueName = "Unknown Venue"

type Venue struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

type MenuItem struct {
	Name      string   `json:"name"`
	BasePrice string   `json:"basePrice"`
	Tags      []string `json:"tags"`
}

// Venues is the fixed campus venue roster, loaded once and shared by
// read-only reference.
var Venues = []Venue{
	{ID: "walkons", Name: "Walk-On's Sports Bistreaux", Category: "Sports Bar"},
	{ID: "dsj", Name: "DSJ Asian Grill", Category: "Asian"},
	{ID: "pizza", Name: "Anyway You Slice It", Category: "Pizza"},
	{ID: "sushi", Name: "Sushi Boss", Category: "Sushi"},
	{ID: "burgers", Name: "Burgers + Fries", Category: "Burgers"},
	{ID: "foodlab", Name: "FoodLab", Category: "Experimental/Dessert"},
	{ID: "choolaah", Name: "Choolaah Indian BBQ", Category: "Indian"},
	{ID: "zen", Name: "Zen", Category: "Asian/Boba"},
	{ID: "tlc", Name: "Tenders, Love & Chicken", Category: "Chicken"},
}

var menus = map[string][]MenuItem{
	"walkons": {
		{Name: "Boom Boom Shrimp", BasePrice: "10.99", Tags: []string{"Seafood", "Spicy"}},
		{Name: "Scholarship Burger", BasePrice: "9.49", Tags: []string{"Beef"}},
		{Name: "Cajun Ribeye", BasePrice: "24.99", Tags: []string{"Premium", "GF"}},
	},
	"dsj": {
		{Name: "Orange Chicken Entree", BasePrice: "8.99", Tags: []string{"Chicken"}},
		{Name: "Crab Rangoon (4pc)", BasePrice: "5.00", Tags: []string{"Side"}},
	},
	"pizza": {
		{Name: "Pepperoni Slice", BasePrice: "4.29", Tags: []string{"Quick"}},
		{Name: "Spinach Calzone", BasePrice: "6.49", Tags: []string{"Veg"}},
	},
	"sushi": {
		{Name: "Spicy Tuna Roll", BasePrice: "8.99", Tags: []string{"Raw", "Spicy"}},
		{Name: "Tempura Shrimp Bowl", BasePrice: "8.99", Tags: []string{"Cooked"}},
	},
	"burgers": {
		{Name: "Double Bacon Cheese", BasePrice: "9.29", Tags: []string{"Beef", "Heavy"}},
		{Name: "Ranch Fries", BasePrice: "2.99", Tags: []string{"Side"}},
	},
	"foodlab": {
		{Name: "Brownie Sundae", BasePrice: "7.49", Tags: []string{"Dessert"}},
		{Name: "Cookie Sandwich", BasePrice: "4.49", Tags: []string{"Sweet"}},
	},
	"choolaah": {
		{Name: "Chicken Tikka Masala Bowl", BasePrice: "10.99", Tags: []string{"Halal", "Spicy"}},
		{Name: "Vegetable Samosa", BasePrice: "1.49", Tags: []string{"Veg", "Vegan"}},
	},
	"zen": {
		{Name: "Hawaiian Classic Poke", BasePrice: "12.95", Tags: []string{"Raw", "Fresh"}},
		{Name: "Brown Sugar Milk Tea", BasePrice: "5.50", Tags: []string{"Drink"}},
	},
	"tlc": {
		{Name: "3 Piece Tenders", BasePrice: "6.09", Tags: []string{"Chicken"}},
		{Name: "Spicy Chicken Sandwich", BasePrice: "6.09", Tags: []string{"Spicy"}},
	},
}

func ByID(venueID string) (Venue, bool) {
	for _, v := range Venues {
		if v.ID == venueID {
			return v, true
		}
	}
	return Venue{}, false
}

// ResolveName returns the display name for a venue, or the unknown
// sentinel when the lookup misses.
func ResolveName(venueID string) string {
	if v, ok := ByID(venueID); ok {
		return v.Name
	}
	return UnknownVenueName
}

// MenuFor returns the venue's menu in display order. Unknown venues
// get an empty menu.
func MenuFor(venueID string) []MenuItem {
	items, ok := menus[venueID]
	if !ok {
		return []MenuItem{}
	}
	out := make([]MenuItem, len(items))
	copy(out, items)
	return out
}

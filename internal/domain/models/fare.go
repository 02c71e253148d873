package models

// Category is a traveller class with its own per-zone rate.
type Category string

const (
	Adult   Category = "Adult"
	Child   Category = "Child"
	Senior  Category = "Senior"
	Student Category = "Student"
)

// Categories returns the fare categories in voucher order.
func Categories() []Category {
	return []Category{Adult, Child, Senior, Student}
}

// FareRate is one row of the fare table, in cents per zone.
type FareRate struct {
	Category    Category `json:"category"`
	FarePerZone int64    `json:"farePerZone"`
}

// TravellerCounts maps a category to how many travellers of it are in the party.
// A missing category counts as zero.
type TravellerCounts map[Category]int

func (t TravellerCounts) Total() int {
	total := 0
	for _, n := range t {
		total += n
	}
	return total
}

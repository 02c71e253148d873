package domain

import (
	"fmt"

	"farekiosk/internal/domain/models"
)

// ZonesTravelled counts the zones spanned by a trip, both ends included.
// Direction does not matter: 1->3 and 3->1 both span 3 zones.
func ZonesTravelled(start, dest int) (int, error) {
	if _, err := lookupTripZone("start_zone", start); err != nil {
		return 0, err
	}
	if _, err := lookupTripZone("dest_zone", dest); err != nil {
		return 0, err
	}
	diff := dest - start
	if diff < 0 {
		diff = -diff
	}
	return diff + 1, nil
}

// LineTotal prices count travellers of one category over zones.
// A category without a fare prices at 0.
func LineTotal(c models.Category, count, zones int) int64 {
	fare, _ := FarePerZone(c)
	return int64(count) * fare * int64(zones)
}

// GrandTotal sums the line totals of every category.
func GrandTotal(counts models.TravellerCounts, zones int) int64 {
	var total int64
	for _, c := range models.Categories() {
		total += LineTotal(c, counts[c], zones)
	}
	return total
}

// MaxTravellersPerCategory caps each category count. Four full categories over
// three zones stay far below int64 range, so totals never overflow.
const MaxTravellersPerCategory = 999

// ValidateCounts rejects unknown categories, counts outside
// [0, MaxTravellersPerCategory] and parties with no travellers.
// ComputeQuote does not call it; issuing callers do.
func ValidateCounts(counts models.TravellerCounts) error {
	for c, n := range counts {
		if _, ok := FarePerZone(c); !ok {
			return ValidationError{Field: "travellers", Msg: fmt.Sprintf("unknown category %q", c)}
		}
		if n < 0 || n > MaxTravellersPerCategory {
			return ValidationError{
				Field: "travellers",
				Msg:   fmt.Sprintf("%s count must be from 0 to %d", c, MaxTravellersPerCategory),
				Err:   ErrTooManyTravellers,
			}
		}
	}
	if counts.Total() < 1 {
		return ValidationError{Field: "travellers", Msg: ErrNoTravellers.Error(), Err: ErrNoTravellers}
	}
	return nil
}

// ComputeQuote prices a trip for a party. Lines follow voucher category order.
func ComputeQuote(trip models.TripRequest, counts models.TravellerCounts) (models.Quote, error) {
	start, err := lookupTripZone("start_zone", trip.StartZone)
	if err != nil {
		return models.Quote{}, err
	}
	dest, err := lookupTripZone("dest_zone", trip.DestZone)
	if err != nil {
		return models.Quote{}, err
	}
	zones, err := ZonesTravelled(start.ID, dest.ID)
	if err != nil {
		return models.Quote{}, err
	}

	q := models.Quote{
		Start:          start,
		Destination:    dest,
		ZonesTravelled: zones,
		Lines:          make([]models.QuoteLine, 0, len(models.Categories())),
	}
	for _, c := range models.Categories() {
		fare, _ := FarePerZone(c)
		qty := counts[c]
		line := models.QuoteLine{
			Category:    c,
			Quantity:    qty,
			FarePerZone: fare,
			Zones:       zones,
			Total:       LineTotal(c, qty, zones),
		}
		q.Lines = append(q.Lines, line)
		q.TotalTravellers += qty
		q.GrandTotal += line.Total
	}
	return q, nil
}

func lookupTripZone(field string, id int) (models.Zone, error) {
	z, err := LookupZone(id)
	if err != nil {
		return models.Zone{}, ValidationError{
			Field: field,
			Msg:   fmt.Sprintf("zone %d does not exist", id),
			Err:   ErrInvalidZone,
		}
	}
	return z, nil
}

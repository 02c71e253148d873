package domain

import (
	"fmt"
	"sort"

	"farekiosk/internal/domain/models"
)

var zoneNames = map[int]string{
	1: "Central",
	2: "Midtown",
	3: "Downtown",
}

var stationsByZone = map[int][]string{
	1: sorted(
		"Bylyn", "Centrala", "Frestin", "Jaun d", "Lomil",
		"Ninia", "Rede", "Soth", "Tallan", "Yaen",
	),
	2: sorted(
		"Agralle", "Docia", "Garion", "Oloadus", "Obelyn", "Quthiel",
		"Ralith", "Riclya", "Riladia", "Stonyam", "Wicyt",
	),
	3: sorted(
		"Adohad", "Brunad", "Ederif", "Elyot", "Erean", "Holmer", "Keivia",
		"Marend", "Perinad", "Pryn", "Ruril", "Ryall", "Vertwall", "Zord",
	),
}

// cents per zone travelled
var faresPerZone = map[models.Category]int64{
	models.Adult:   2105,
	models.Child:   1410,
	models.Senior:  1025,
	models.Student: 1750,
}

func sorted(names ...string) []string {
	sort.Strings(names)
	return names
}

// Zones returns every zone ordered by id.
func Zones() []models.Zone {
	ids := make([]int, 0, len(zoneNames))
	for id := range zoneNames {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	out := make([]models.Zone, 0, len(ids))
	for _, id := range ids {
		out = append(out, models.Zone{ID: id, Name: zoneNames[id]})
	}
	return out
}

// ZoneRange returns the lowest and highest zone id.
func ZoneRange() (int, int) {
	zones := Zones()
	return zones[0].ID, zones[len(zones)-1].ID
}

// LookupZone resolves a zone id. Ids outside the zone table fail with ErrInvalidZone.
func LookupZone(id int) (models.Zone, error) {
	name, ok := zoneNames[id]
	if !ok {
		return models.Zone{}, ValidationError{
			Field: "zone",
			Msg:   fmt.Sprintf("zone %d does not exist", id),
			Err:   ErrInvalidZone,
		}
	}
	return models.Zone{ID: id, Name: name}, nil
}

// StationsFor returns a copy of the alphabetical station list of a zone.
func StationsFor(zoneID int) []string {
	src := stationsByZone[zoneID]
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// StationBoard returns every zone with its stations, ordered by zone id.
func StationBoard() []models.ZoneStations {
	zones := Zones()
	out := make([]models.ZoneStations, 0, len(zones))
	for _, z := range zones {
		out = append(out, models.ZoneStations{Zone: z, Stations: StationsFor(z.ID)})
	}
	return out
}

// FindZoneStations returns one zone with its stations, or a NotFoundError.
func FindZoneStations(id int) (models.ZoneStations, error) {
	name, ok := zoneNames[id]
	if !ok {
		return models.ZoneStations{}, NotFoundError{Resource: "zone", Err: ErrInvalidZone}
	}
	return models.ZoneStations{Zone: models.Zone{ID: id, Name: name}, Stations: StationsFor(id)}, nil
}

// FarePerZone returns the rate of a category. Unknown categories report false.
func FarePerZone(c models.Category) (int64, bool) {
	fare, ok := faresPerZone[c]
	return fare, ok
}

// FareTable returns the fare rates in voucher order.
func FareTable() []models.FareRate {
	out := make([]models.FareRate, 0, len(faresPerZone))
	for _, c := range models.Categories() {
		out = append(out, models.FareRate{Category: c, FarePerZone: faresPerZone[c]})
	}
	return out
}

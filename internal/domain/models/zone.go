package models

// Zone is a fare-distance region. Trips are priced by the zones they span.
type Zone struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ZoneStations groups the station names served inside one zone.
type ZoneStations struct {
	Zone
	Stations []string `json:"stations"`
}

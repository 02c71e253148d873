package models

// TripRequest is the zone pair selected at the kiosk.
type TripRequest struct {
	StartZone int `json:"startZone"`
	DestZone  int `json:"destZone"`
}

package models

import "time"

type QuoteLine struct {
	Category    Category `json:"category"`
	Quantity    int      `json:"quantity"`
	FarePerZone int64    `json:"farePerZone"`
	Zones       int      `json:"zones"`
	Total       int64    `json:"total"`
}

// Quote is the priced trip before a voucher is issued. Amounts are in cents.
type Quote struct {
	Start           Zone        `json:"start"`
	Destination     Zone        `json:"destination"`
	ZonesTravelled  int         `json:"zonesTravelled"`
	Lines           []QuoteLine `json:"lines"`
	TotalTravellers int         `json:"totalTravellers"`
	GrandTotal      int64       `json:"grandTotal"`
}

// Voucher is an issued quote. It is built per request and never stored.
type Voucher struct {
	ID       string    `json:"id"`
	IssuedAt time.Time `json:"issuedAt"`
	Quote
	Code string `json:"code,omitempty"`
}

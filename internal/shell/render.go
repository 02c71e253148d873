package shell

import (
	"fmt"
	"io"
	"strings"

	"farekiosk/internal/config"
	"farekiosk/internal/domain/models"
	"farekiosk/internal/utils"
)

type Renderer struct {
	out   io.Writer
	kiosk config.KioskConfig
}

func NewRenderer(out io.Writer, kiosk config.KioskConfig) *Renderer {
	return &Renderer{out: out, kiosk: kiosk}
}

func (r *Renderer) rule(ch string) string {
	return strings.Repeat(ch, r.kiosk.RuleWidth)
}

func (r *Renderer) Welcome() {
	fmt.Fprintf(r.out, "Welcome to the %s Automated Ticketing System\n", r.kiosk.Name)
}

// StationBoard prints each zone followed by its stations laid out in columns.
func (r *Renderer) StationBoard(board []models.ZoneStations) {
	fmt.Fprintln(r.out, "\n"+r.rule("="))
	fmt.Fprintf(r.out, "%s STATIONS BOARD (by zone, alphabetical)\n", r.kiosk.Name)
	fmt.Fprintln(r.out, r.rule("="))

	cols := r.kiosk.BoardColumns
	for _, z := range board {
		fmt.Fprintf(r.out, "\nZone %d: %s\n", z.ID, z.Name)
		fmt.Fprintln(r.out, r.rule("-"))
		for i := 0; i < len(z.Stations); i += cols {
			end := i + cols
			if end > len(z.Stations) {
				end = len(z.Stations)
			}
			cells := make([]string, 0, cols)
			for _, name := range z.Stations[i:end] {
				cells = append(cells, fmt.Sprintf("%-*s", r.kiosk.BoardColumnWidth, name))
			}
			fmt.Fprintln(r.out, strings.Join(cells, "  "))
		}
	}
}

func (r *Renderer) ZoneMenu(zones []models.Zone) {
	fmt.Fprintln(r.out, "\n"+r.rule("-"))
	fmt.Fprintln(r.out, "ZONE SELECTION MENU")
	fmt.Fprintln(r.out, r.rule("-"))
	for _, z := range zones {
		fmt.Fprintf(r.out, "%d. %s\n", z.ID, z.Name)
	}
}

func (r *Renderer) Voucher(v models.Voucher) {
	fmt.Fprintln(r.out, "\n"+r.rule("="))
	fmt.Fprintf(r.out, "%s TRAVEL VOUCHER\n", r.kiosk.Name)
	fmt.Fprintln(r.out, r.rule("="))
	fmt.Fprintf(r.out, "Voucher: %s\n", v.ID)
	fmt.Fprintf(r.out, "Issued: %s\n", utils.FormatDateTime(v.IssuedAt))
	fmt.Fprintf(r.out, "Boarding zone: %s (Zone %d)\n", v.Start.Name, v.Start.ID)
	fmt.Fprintf(r.out, "Destination zone: %s (Zone %d)\n", v.Destination.Name, v.Destination.ID)
	fmt.Fprintf(r.out, "Total zones travelled: %d\n", v.ZonesTravelled)

	fmt.Fprintln(r.out, "\nTraveller summary and fares:")
	fmt.Fprintln(r.out, r.rule("-"))
	fmt.Fprintf(r.out, "%-10s%6s%14s%8s%14s\n", "Category", "Qty", "Fare/Zone", "Zones", "Total")
	for _, line := range v.Lines {
		fmt.Fprintf(r.out, "%-10s%6d%14s%8d%14s\n",
			line.Category, line.Quantity, utils.FormatCents(line.FarePerZone), line.Zones, utils.FormatCents(line.Total))
	}
	fmt.Fprintln(r.out, r.rule("-"))
	fmt.Fprintf(r.out, "Total travellers: %d\n", v.TotalTravellers)
	fmt.Fprintf(r.out, "Total fares paid: %s\n", utils.FormatCents(v.GrandTotal))
	if v.Code != "" {
		fmt.Fprintln(r.out, "Verification code:")
		fmt.Fprintln(r.out, v.Code)
	}
	fmt.Fprintln(r.out, r.rule("="))
}

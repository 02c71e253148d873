package services

import (
	"bytes"
	"fmt"

	"farekiosk/internal/domain/models"
	"farekiosk/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// GenerateVoucherPDF issues a voucher and renders it as an A4 PDF held in memory.
func (s VoucherService) GenerateVoucherPDF(trip models.TripRequest, counts models.TravellerCounts) ([]byte, string, models.Voucher, error) {
	v, err := s.Issue(trip, counts)
	if err != nil {
		return nil, "", models.Voucher{}, err
	}
	pdf, filename, err := buildVoucherPDF(v, s.KioskName)
	if err != nil {
		return nil, "", models.Voucher{}, err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_voucher_pdf", "voucher_id="+v.ID)
	return pdf, filename, v, nil
}

func buildVoucherPDF(v models.Voucher, kioskName string) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Travel Voucher", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, fmt.Sprintf("%s TRAVEL VOUCHER", kioskName))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Voucher          : %s", v.ID),
		fmt.Sprintf("Issued           : %s", utils.FormatDateTime(v.IssuedAt)),
		fmt.Sprintf("Boarding zone    : %s (Zone %d)", v.Start.Name, v.Start.ID),
		fmt.Sprintf("Destination zone : %s (Zone %d)", v.Destination.Name, v.Destination.ID),
		fmt.Sprintf("Zones travelled  : %d", v.ZonesTravelled),
	}
	for _, s := range lines {
		pdf.Cell(0, 7, s)
		pdf.Ln(7)
	}
	pdf.Ln(4)

	widths := []float64{40, 20, 40, 20, 50}
	pdf.SetFont("Helvetica", "B", 11)
	for i, h := range []string{"Category", "Qty", "Fare/Zone", "Zones", "Total"} {
		align := "R"
		if i == 0 {
			align = "L"
		}
		pdf.CellFormat(widths[i], 8, h, "B", 0, align, false, 0, "")
	}
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	for _, line := range v.Lines {
		pdf.CellFormat(widths[0], 7, string(line.Category), "", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 7, fmt.Sprintf("%d", line.Quantity), "", 0, "R", false, 0, "")
		pdf.CellFormat(widths[2], 7, utils.FormatCents(line.FarePerZone), "", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 7, fmt.Sprintf("%d", line.Zones), "", 0, "R", false, 0, "")
		pdf.CellFormat(widths[4], 7, utils.FormatCents(line.Total), "", 0, "R", false, 0, "")
		pdf.Ln(7)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Total travellers: %d", v.TotalTravellers))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Total fares paid: %s (%s)", utils.FormatCents(v.GrandTotal), utils.FormatDollars(v.GrandTotal)))
	pdf.Ln(12)

	if v.Code != "" {
		pdf.SetFont("Courier", "", 7)
		pdf.MultiCell(0, 4, "Verification code: "+v.Code, "", "", false)
		pdf.Ln(2)
	}

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Present this voucher when boarding. Valid for the zones listed above only.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("VOUCHER_%s.pdf", utils.SafeFilenamePart(v.ID))
	return buf.Bytes(), filename, nil
}

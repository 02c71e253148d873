package handlers

import (
	"net/http"

	"farekiosk/internal/domain/models"

	"github.com/gin-gonic/gin"
)

type tripPayload struct {
	StartZone  int                    `json:"startZone"`
	DestZone   int                    `json:"destZone"`
	Travellers models.TravellerCounts `json:"travellers"`
}

func (p tripPayload) trip() models.TripRequest {
	return models.TripRequest{StartZone: p.StartZone, DestZone: p.DestZone}
}

type verifyPayload struct {
	Code string `json:"code"`
}

// POST /api/quotes
func CreateQuote(c *gin.Context) {
	var req tripPayload
	if !BindJSONOrError(c, &req) {
		return
	}
	q, err := voucherService(c).Quote(req.trip(), req.Travellers)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, q)
}

// POST /api/vouchers
func CreateVoucher(c *gin.Context) {
	var req tripPayload
	if !BindJSONOrError(c, &req) {
		return
	}
	v, err := voucherService(c).Issue(req.trip(), req.Travellers)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, v)
}

// POST /api/vouchers/pdf
func CreateVoucherPDF(c *gin.Context) {
	var req tripPayload
	if !BindJSONOrError(c, &req) {
		return
	}
	pdfBytes, filename, v, err := voucherService(c).GenerateVoucherPDF(req.trip(), req.Travellers)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Header("X-Voucher-ID", v.ID)
	c.Data(http.StatusCreated, "application/pdf", pdfBytes)
}

// POST /api/vouchers/verify
func VerifyVoucher(c *gin.Context) {
	var req verifyPayload
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.Code == "" {
		respondError(c, http.StatusBadRequest, "validation_error", "code is required", nil)
		return
	}
	claims, err := voucherService(c).Verify(req.Code)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": true, "voucher": claims})
}

package services

import (
	"fmt"

	"farekiosk/internal/domain"
	"farekiosk/internal/domain/models"
	"farekiosk/internal/utils"

	"github.com/google/uuid"
)

// VoucherService prices trips and issues vouchers. Nothing it produces is stored.
type VoucherService struct {
	Signer    *VoucherSigner
	KioskName string
	RequestID string
}

// Quote prices a trip for a party of at least one traveller.
func (s VoucherService) Quote(trip models.TripRequest, counts models.TravellerCounts) (models.Quote, error) {
	if _, err := domain.ZonesTravelled(trip.StartZone, trip.DestZone); err != nil {
		return models.Quote{}, err
	}
	if err := domain.ValidateCounts(counts); err != nil {
		return models.Quote{}, err
	}
	return domain.ComputeQuote(trip, counts)
}

// Issue prices the trip and stamps it with an id, the issue time and,
// when a signer is configured, a verification code.
func (s VoucherService) Issue(trip models.TripRequest, counts models.TravellerCounts) (models.Voucher, error) {
	q, err := s.Quote(trip, counts)
	if err != nil {
		return models.Voucher{}, err
	}

	id, err := uuid.NewRandom()
	if err != nil {
		return models.Voucher{}, domain.InternalError{Msg: "failed to generate voucher id", Err: err}
	}

	v := models.Voucher{
		ID:       id.String(),
		IssuedAt: utils.Now(),
		Quote:    q,
	}
	if s.Signer != nil {
		code, err := s.Signer.Sign(v)
		if err != nil {
			return models.Voucher{}, err
		}
		v.Code = code
	}

	utils.LogEvent(s.RequestID, "voucher", "issue", fmt.Sprintf("voucher_id=%s zones=%d travellers=%d total=%d",
		v.ID, v.ZonesTravelled, v.TotalTravellers, v.GrandTotal))
	return v, nil
}

func (s VoucherService) Verify(code string) (VoucherClaims, error) {
	if s.Signer == nil {
		return VoucherClaims{}, domain.InternalError{Msg: "voucher verification is not configured"}
	}
	claims, err := s.Signer.Verify(code)
	if err != nil {
		return VoucherClaims{}, err
	}
	utils.LogEvent(s.RequestID, "voucher", "verify", "voucher_id="+claims.ID)
	return claims, nil
}

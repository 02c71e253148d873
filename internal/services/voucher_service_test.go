package services

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"farekiosk/internal/domain"
	"farekiosk/internal/domain/models"
	"farekiosk/internal/utils"
)

func fixClock(t *testing.T, at time.Time) {
	t.Helper()
	prev := utils.Now
	utils.Now = func() time.Time { return at }
	t.Cleanup(func() { utils.Now = prev })
}

func newTestSigner(t *testing.T, secret string) *VoucherSigner {
	t.Helper()
	signer, err := NewVoucherSigner(secret, time.Hour)
	if err != nil {
		t.Fatalf("NewVoucherSigner error: %v", err)
	}
	return signer
}

func TestVoucherServiceIssue(t *testing.T) {
	issuedAt := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)
	fixClock(t, issuedAt)

	svc := VoucherService{Signer: newTestSigner(t, "kiosk-secret")}
	v, err := svc.Issue(models.TripRequest{StartZone: 1, DestZone: 3}, models.TravellerCounts{models.Adult: 2})
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if v.ID == "" || v.Code == "" {
		t.Fatalf("voucher missing id or code: %+v", v)
	}
	if !v.IssuedAt.Equal(issuedAt) {
		t.Fatalf("IssuedAt = %v, want %v", v.IssuedAt, issuedAt)
	}
	if v.ZonesTravelled != 3 || v.GrandTotal != 12630 || v.TotalTravellers != 2 {
		t.Fatalf("unexpected voucher totals: %+v", v.Quote)
	}
}

func TestVoucherServiceRejectsEmptyParty(t *testing.T) {
	svc := VoucherService{}
	_, err := svc.Issue(models.TripRequest{StartZone: 1, DestZone: 2}, models.TravellerCounts{
		models.Adult: 0, models.Child: 0, models.Senior: 0, models.Student: 0,
	})
	if !errors.Is(err, domain.ErrNoTravellers) {
		t.Fatalf("expected ErrNoTravellers, got %v", err)
	}
}

func TestVoucherServiceRejectsInvalidZone(t *testing.T) {
	svc := VoucherService{}
	_, err := svc.Quote(models.TripRequest{StartZone: 4, DestZone: 2}, models.TravellerCounts{models.Adult: 1})
	if !errors.Is(err, domain.ErrInvalidZone) {
		t.Fatalf("expected ErrInvalidZone, got %v", err)
	}
}

func TestVoucherCodeRoundTrip(t *testing.T) {
	fixClock(t, time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC))
	svc := VoucherService{Signer: newTestSigner(t, "kiosk-secret")}

	v, err := svc.Issue(models.TripRequest{StartZone: 2, DestZone: 2}, models.TravellerCounts{models.Student: 1})
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	claims, err := svc.Verify(v.Code)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if claims.ID != v.ID || claims.GrandTotal != 1750 || claims.Zones != 1 {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.StartZone != 2 || claims.DestZone != 2 || claims.Travellers[models.Student] != 1 {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if _, ok := claims.Travellers[models.Adult]; ok {
		t.Fatalf("zero categories should not be encoded: %v", claims.Travellers)
	}
}

func TestVoucherCodeRejected(t *testing.T) {
	issuedAt := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)
	fixClock(t, issuedAt)
	svc := VoucherService{Signer: newTestSigner(t, "kiosk-secret")}
	v, err := svc.Issue(models.TripRequest{StartZone: 1, DestZone: 2}, models.TravellerCounts{models.Senior: 1})
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	v2, err := svc.Issue(models.TripRequest{StartZone: 1, DestZone: 3}, models.TravellerCounts{models.Senior: 1})
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	parts := strings.Split(v.Code, ".")
	otherParts := strings.Split(v2.Code, ".")
	spliced := parts[0] + "." + parts[1] + "." + otherParts[2]

	other := VoucherService{Signer: newTestSigner(t, "another-secret")}
	tests := []struct {
		name string
		svc  VoucherService
		code string
	}{
		{"foreign key", other, v.Code},
		{"spliced signature", svc, spliced},
		{"garbage", svc, "not-a-code"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.svc.Verify(tt.code)
			if !errors.Is(err, domain.ErrInvalidCode) {
				t.Fatalf("expected ErrInvalidCode, got %v", err)
			}
		})
	}

	fixClock(t, issuedAt.Add(2*time.Hour))
	if _, err := svc.Verify(v.Code); !errors.Is(err, domain.ErrInvalidCode) {
		t.Fatalf("expected expired code to fail, got %v", err)
	}
}

func TestVerifyWithoutSigner(t *testing.T) {
	_, err := VoucherService{}.Verify("anything")
	if !domain.IsInternal(err) {
		t.Fatalf("expected internal error, got %v", err)
	}
}

func TestNewVoucherSignerValidation(t *testing.T) {
	if _, err := NewVoucherSigner("", time.Hour); err == nil {
		t.Fatalf("expected error for empty secret")
	}
	if _, err := NewVoucherSigner("s", 0); err == nil {
		t.Fatalf("expected error for zero ttl")
	}
}

func TestGenerateVoucherPDF(t *testing.T) {
	svc := VoucherService{Signer: newTestSigner(t, "kiosk-secret"), KioskName: "CTA"}
	pdf, filename, v, err := svc.GenerateVoucherPDF(
		models.TripRequest{StartZone: 3, DestZone: 1},
		models.TravellerCounts{models.Adult: 1, models.Child: 1},
	)
	if err != nil {
		t.Fatalf("GenerateVoucherPDF error: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("output is not a PDF")
	}
	if !strings.HasPrefix(filename, "VOUCHER_") || !strings.Contains(filename, v.ID) {
		t.Fatalf("unexpected filename %q", filename)
	}

	if _, _, _, err := svc.GenerateVoucherPDF(models.TripRequest{StartZone: 1, DestZone: 1}, nil); !errors.Is(err, domain.ErrNoTravellers) {
		t.Fatalf("expected ErrNoTravellers, got %v", err)
	}
}

func TestVoucherServiceRejectsOversizedParty(t *testing.T) {
	maxInt := int(^uint(0) >> 1)
	_, err := VoucherService{}.Quote(models.TripRequest{StartZone: 1, DestZone: 3}, models.TravellerCounts{
		models.Adult: maxInt, models.Child: maxInt, models.Senior: 3,
	})
	if !errors.Is(err, domain.ErrTooManyTravellers) {
		t.Fatalf("expected ErrTooManyTravellers, got %v", err)
	}
}

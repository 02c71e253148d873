package services

import (
	"crypto/sha256"
	"io"
	"time"

	"farekiosk/internal/domain"
	"farekiosk/internal/domain/models"
	"farekiosk/internal/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"golang.org/x/crypto/hkdf"
)

const (
	codeIssuer  = "farekiosk"
	codeSubject = "voucher"
	codeKDFSalt = "farekiosk/voucher-code"
	codeKDFInfo = "hs256"
)

// VoucherClaims is what a verification code proves about a voucher.
type VoucherClaims struct {
	StartZone  int                    `json:"start"`
	DestZone   int                    `json:"dest"`
	Zones      int                    `json:"zones"`
	Travellers models.TravellerCounts `json:"travellers"`
	GrandTotal int64                  `json:"total"`
	jwt.RegisteredClaims
}

// VoucherSigner signs and verifies voucher codes with a key derived from a shared secret.
type VoucherSigner struct {
	key []byte
	ttl time.Duration
}

func NewVoucherSigner(secret string, ttl time.Duration) (*VoucherSigner, error) {
	if secret == "" {
		return nil, errors.New("voucher secret must not be empty")
	}
	if ttl <= 0 {
		return nil, errors.New("voucher ttl should be greater than 0")
	}

	key := make([]byte, 32)
	kdf := hkdf.New(sha256.New, []byte(secret), []byte(codeKDFSalt), []byte(codeKDFInfo))
	if _, err := io.ReadFull(kdf, key); err != nil {
		return nil, errors.Wrap(err, "deriving voucher key")
	}
	return &VoucherSigner{key: key, ttl: ttl}, nil
}

func (s *VoucherSigner) Sign(v models.Voucher) (string, error) {
	travellers := models.TravellerCounts{}
	for _, line := range v.Lines {
		if line.Quantity > 0 {
			travellers[line.Category] = line.Quantity
		}
	}

	claims := VoucherClaims{
		StartZone:  v.Start.ID,
		DestZone:   v.Destination.ID,
		Zones:      v.ZonesTravelled,
		Travellers: travellers,
		GrandTotal: v.GrandTotal,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        v.ID,
			Issuer:    codeIssuer,
			Subject:   codeSubject,
			IssuedAt:  jwt.NewNumericDate(v.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(v.IssuedAt.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.key)
	if err != nil {
		return "", domain.InternalError{Msg: "failed to sign voucher", Err: err}
	}
	return signed, nil
}

// Verify checks signature, issuer and expiry. Any failure is reported as ErrInvalidCode.
func (s *VoucherSigner) Verify(code string) (VoucherClaims, error) {
	var claims VoucherClaims
	_, err := jwt.ParseWithClaims(code, &claims,
		func(*jwt.Token) (any, error) { return s.key, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(codeIssuer),
		jwt.WithSubject(codeSubject),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return utils.Now() }),
	)
	if err != nil {
		return VoucherClaims{}, domain.ValidationError{
			Field: "code",
			Msg:   "verification code is not valid: " + err.Error(),
			Err:   domain.ErrInvalidCode,
		}
	}
	return claims, nil
}

package services

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"tripbooking/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

const paymentTokenIssuer = "tripbooking"

// PaymentClaims travel with the redirect to the payment step.
type PaymentClaims struct {
	BookingID int64  `json:"booking_id"`
	DraftID   string `json:"draft_id"`
	jwt.RegisteredClaims
}

// PaymentTokens signs and verifies payment-step tokens (HS256).
type PaymentTokens struct {
	Secret  []byte
	TTL     time.Duration
	BaseURL string
	Now     func() time.Time
}

func (p PaymentTokens) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now()
}

func (p PaymentTokens) Sign(bookingID int64, draftID string) (string, error) {
	if len(p.Secret) == 0 {
		return "", domain.InternalError{Msg: "secret token pembayaran belum diset"}
	}
	if bookingID <= 0 {
		return "", domain.ValidationError{Field: "booking_id", Msg: "id tidak valid"}
	}
	ttl := p.TTL
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}
	now := p.now()
	claims := PaymentClaims{
		BookingID: bookingID,
		DraftID:   draftID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    paymentTokenIssuer,
			Subject:   strconv.FormatInt(bookingID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.Secret)
}

// Verify parses token and checks signature, issuer and expiry.
func (p PaymentTokens) Verify(token string) (PaymentClaims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return PaymentClaims{}, domain.ValidationError{Field: "token", Msg: "token kosong"}
	}
	var claims PaymentClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return p.Secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(paymentTokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(p.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return PaymentClaims{}, domain.ValidationError{Field: "token", Msg: "token kedaluwarsa", Err: err}
		}
		return PaymentClaims{}, domain.ValidationError{Field: "token", Msg: "token tidak valid", Err: err}
	}
	if claims.BookingID <= 0 {
		return PaymentClaims{}, domain.ValidationError{Field: "token", Msg: "token tidak valid"}
	}
	return claims, nil
}

// URL builds the payment-step link carrying the booking id and token.
func (p PaymentTokens) URL(bookingID int64, token string) string {
	q := url.Values{}
	q.Set("booking_id", strconv.FormatInt(bookingID, 10))
	q.Set("token", token)

	sep := "?"
	if strings.Contains(p.BaseURL, "?") {
		sep = "&"
	}
	return fmt.Sprintf("%s%s%s", p.BaseURL, sep, q.Encode())
}

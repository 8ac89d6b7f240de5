package auth

import (
	"encoding/base64"
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// SessionClaims are the claims carried by the login session token.
type SessionClaims struct {
	jwt.RegisteredClaims
	UserID      uint `json:"uid"`
	IsSuperuser bool `json:"su"`
}

// GenerateSessionToken issues a signed session token for a logged-in user.
func GenerateSessionToken(userID uint, isSuperuser bool, secret []byte, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID:      userID,
		IsSuperuser: isSuperuser,
	})
	return token.SignedString(secret)
}

// ParseSessionToken validates a session token and returns its claims.
func ParseSessionToken(tokenStr string, secret []byte) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// MailTokenPurpose separates the two kinds of emailed links so a reset token
// can never activate an account and vice versa.
type MailTokenPurpose string

const (
	PurposeActivate MailTokenPurpose = "activate"
	PurposeReset    MailTokenPurpose = "reset"
)

// MailClaims are the claims carried by activation and password-reset links.
// The token is HMAC-signed and expiring rather than a reversible encoding, so
// possession of the link proves it was minted by this server recently.
type MailClaims struct {
	jwt.RegisteredClaims
	UserID  uint             `json:"uid"`
	Email   string           `json:"email"`
	Purpose MailTokenPurpose `json:"purpose"`
}

// GenerateMailToken issues a signed token binding a user ID and email to a
// purpose for the given lifetime.
func GenerateMailToken(userID uint, email string, purpose MailTokenPurpose, secret []byte, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, MailClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID:  userID,
		Email:   email,
		Purpose: purpose,
	})
	return token.SignedString(secret)
}

// ParseMailToken validates a mail token and checks it was minted for the
// expected purpose.
func ParseMailToken(tokenStr string, purpose MailTokenPurpose, secret []byte) (*MailClaims, error) {
	claims := &MailClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.Purpose != purpose {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// EncodeUID renders a primary key as the URL-safe identifier segment of
// emailed links.
func EncodeUID(id uint) string {
	return base64.RawURLEncoding.EncodeToString([]byte(strconv.FormatUint(uint64(id), 10)))
}

// DecodeUID reverses EncodeUID.
func DecodeUID(s string) (uint, error) {
	raw, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return 0, ErrInvalidToken
	}
	id, err := strconv.ParseUint(string(raw), 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}
	return uint(id), nil
}

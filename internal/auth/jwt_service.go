package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// Claims represents the session token payload.
// Session tokens carry no expiry: they stay valid until revoked or superseded.
type Claims struct {
	UserID int64 `json:"uid"`
	jwt.RegisteredClaims
}

// JWTService signs and parses session tokens with a configured HMAC key.
type JWTService struct {
	secret []byte
}

// NewJWTService creates a new JWT service with the given secret.
func NewJWTService(secret string) *JWTService {
	return &JWTService{
		secret: []byte(secret),
	}
}

// Secret returns the signing key, for middleware that verifies signatures.
func (s *JWTService) Secret() []byte {
	return s.secret
}

// GenerateSessionToken signs a new opaque session token for the user.
// Every call yields a distinct token, even within the same second.
func (s *JWTService) GenerateSessionToken(userID int64, name string) (string, time.Time, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:       generateTokenID(),
			Subject:  name,
			IssuedAt: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, now, nil
}

// ValidateToken validates a token signature and returns the claims.
// It does not say whether the token is still the user's current one.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

func generateTokenID() string {
	return uuid.New().String()
}

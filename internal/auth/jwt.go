package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const DefaultTokenTTL = 168 * time.Hour

var ErrInvalidToken = errors.New("Invalid or expired token")

// Claims identifies the user a token was issued to.
type Claims struct {
	UserID string
	Email  string
}

// TokenIssuer signs and verifies HS256 bearer tokens.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenIssuer(secret string, ttl time.Duration) (*TokenIssuer, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt secret is not set")
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	return &TokenIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

func (i *TokenIssuer) Generate(userID, email string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"exp":     i.now().Add(i.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

func (i *TokenIssuer) Verify(tokenString string) (Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return i.secret, nil
	}, jwt.WithExpirationRequired(), jwt.WithTimeFunc(i.now))

	if err != nil || !token.Valid {
		return Claims{}, ErrInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)

	if !ok {
		return Claims{}, ErrInvalidToken
	}

	userID, ok := mapClaims["user_id"].(string)

	if !ok || userID == "" {
		return Claims{}, ErrInvalidToken
	}

	email, _ := mapClaims["email"].(string)

	return Claims{UserID: userID, Email: email}, nil
}

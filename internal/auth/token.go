package auth

import (
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"
)

var ErrNoSession = errors.New("no session")

type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	jwt.StandardClaims
}

// Tokens issues and parses the bearer tokens that stand in for sessions.
type Tokens struct {
	secret []byte
	ttl    time.Duration
}

func NewTokens(secret string) *Tokens {
	return &Tokens{secret: []byte(secret), ttl: 24 * time.Hour}
}

func (t *Tokens) Issue(u *User) (string, error) {
	claims := Claims{
		UserID: u.ID,
		Email:  u.Email,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(t.ttl).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(t.secret)
}

// Parse validates a token and returns the session it encodes. Any parse or
// validation failure, including expiry, comes back as ErrNoSession: a request
// with a bad token is simply signed out, never retried.
func (t *Tokens) Parse(tokenStr string) (Session, error) {
	tok, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return t.secret, nil
	})
	if err != nil || !tok.Valid {
		return Session{}, ErrNoSession
	}
	claims, ok := tok.Claims.(*Claims)
	if !ok || claims.UserID == "" {
		return Session{}, ErrNoSession
	}
	return Session{UserID: claims.UserID, Email: claims.Email}, nil
}

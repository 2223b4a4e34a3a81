// Package auth validates bearer tokens issued by the external identity
// service and resolves them into a domain.Actor. Tokens are never issued
// here.
package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/question-pipeline/internal/domain"
)

// ErrInvalidToken is returned for any token that fails validation.
var ErrInvalidToken = errors.New("invalid token")

// Validator checks HS256 access tokens.
type Validator struct {
	secret []byte
	issuer string
}

// NewValidator creates a token validator.
// secret must be at least 32 characters for HS256 security.
func NewValidator(secret, issuer string) *Validator {
	return &Validator{
		secret: []byte(secret),
		issuer: issuer,
	}
}

// Claims is the access token payload. Capabilities carries the names listed
// in domain (review_subject, review_language, typeset, admin).
type Claims struct {
	jwt.RegisteredClaims
	Capabilities []string `json:"caps,omitempty"`
}

// Validate parses tokenString and returns the actor it identifies.
func (v *Validator) Validate(tokenString string) (domain.Actor, error) {
	if tokenString == "" {
		return domain.Actor{}, fmt.Errorf("token is empty: %w", ErrInvalidToken)
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	},
		jwt.WithIssuer(v.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return domain.Actor{}, fmt.Errorf("parse token: %w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return domain.Actor{}, fmt.Errorf("invalid token claims: %w", ErrInvalidToken)
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil || id == uuid.Nil {
		return domain.Actor{}, fmt.Errorf("invalid subject %q: %w", claims.Subject, ErrInvalidToken)
	}

	return domain.ActorFromCapabilities(id, claims.Capabilities), nil
}

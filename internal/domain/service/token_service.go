package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenValidity is how long an issued bearer token stays valid.
const TokenValidity = 24 * time.Hour

// Claims defines the claims carried by a bearer token.
// The subject is the credential ID rendered as a decimal string.
type Claims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// IssuedToken is a signed token together with the claims it was built from.
type IssuedToken struct {
	Token     string
	ID        string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenIssuer builds and signs bearer tokens for verified identities.
// It never touches the credential store.
type TokenIssuer interface {
	Issue(subjectID int64, username, email string) (*IssuedToken, error)
}

// TokenValidator checks inbound bearer tokens against the issuer's
// secret, issuer and audience with no clock skew tolerance.
type TokenValidator interface {
	Validate(tokenString string) (*Claims, error)
}

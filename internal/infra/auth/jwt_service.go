package auth

import (
	"strconv"
	"strings"
	"time"

	"register/config"
	domainerrors "register/internal/domain/errors"
	"register/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// jwtService signs and validates HS256 bearer tokens.
type jwtService struct {
	secret   []byte
	issuer   string
	audience string
	validity time.Duration
	now      func() time.Time
}

// JWTService is both the issuing and the validating side of bearer tokens.
type JWTService interface {
	service.TokenIssuer
	service.TokenValidator
}

// NewJWTService is the constructor for jwtService.
// It only reads the resolved cfg.Token and refuses an empty secret.
func NewJWTService(cfg *config.Config) (JWTService, error) {
	token := cfg.Token
	if strings.TrimSpace(token.SecretKey) == "" {
		return nil, domainerrors.ErrConfiguration.WithDetails("jwt secret key is not configured")
	}

	return &jwtService{
		secret:   []byte(token.SecretKey),
		issuer:   token.Issuer,
		audience: token.Audience,
		validity: service.TokenValidity,
		now:      time.Now,
	}, nil
}

// Issue builds the claims for a verified identity and signs them.
func (s *jwtService) Issue(subjectID int64, username, email string) (*service.IssuedToken, error) {
	if len(s.secret) == 0 {
		return nil, domainerrors.ErrConfiguration.WithDetails("jwt secret key is not configured")
	}

	issuedAt := s.now().UTC().Truncate(time.Second)
	expiresAt := issuedAt.Add(s.validity)
	tokenID := uuid.NewString()

	claims := service.Claims{
		Name:  username,
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(subjectID, 10),
			ID:        tokenID,
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign token")
	}

	return &service.IssuedToken{
		Token:     signed,
		ID:        tokenID,
		IssuedAt:  issuedAt,
		ExpiresAt: expiresAt,
	}, nil
}

// Validate parses tokenString and checks signature, issuer, audience and expiry.
func (s *jwtService) Validate(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(0),
		jwt.WithTimeFunc(s.now),
	)

	token, err := parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		return nil, domainerrors.ErrTokenInvalid.WithDetails(err.Error())
	}
	if !token.Valid {
		return nil, domainerrors.ErrTokenInvalid
	}

	return claims, nil
}

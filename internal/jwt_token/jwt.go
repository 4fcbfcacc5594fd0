// Package jwttoken issues and validates the bearer tokens that identify API
// callers. The subject claim carries the caller's hex account address.
package jwttoken

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang-jwt/jwt/v5"

	id "verisbt/pkg/domain"
	dErrors "verisbt/pkg/domain-errors"
	"verisbt/pkg/requestcontext"
)

// Issuer and audience the server expects in caller tokens.
const (
	DefaultIssuer   = "verisbt"
	DefaultAudience = "verisbt-api"
)

// CallerClaims are the claims of a caller token.
type CallerClaims struct {
	Env string `json:"env,omitempty"`
	jwt.RegisteredClaims
}

// Caller parses the subject as an account address.
func (c *CallerClaims) Caller() (common.Address, error) {
	return id.ParseAddress(c.Subject)
}

// JWTService handles JWT creation and validation
type JWTService struct {
	signingKey []byte
	issuer     string
	audience   string
	tokenTTL   time.Duration
	env        string
}

func NewJWTService(signingKey, issuer, audience string, tokenTTL time.Duration) *JWTService {
	return &JWTService{
		signingKey: []byte(signingKey),
		issuer:     issuer,
		audience:   audience,
		tokenTTL:   tokenTTL,
	}
}

// SetEnv annotates issued tokens with an environment string (e.g. "local").
func (s *JWTService) SetEnv(env string) {
	s.env = env
}

// GenerateCallerToken signs an HS256 token for caller.
func (s *JWTService) GenerateCallerToken(ctx context.Context, caller common.Address) (string, error) {
	if caller == (common.Address{}) {
		return "", dErrors.New(dErrors.CodeInvalidInput, "caller address is required")
	}
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	now := requestcontext.Now(ctx)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, CallerClaims{
		Env: s.env,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   caller.Hex(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    s.issuer,
			Audience:  []string{s.audience},
			ID:        hex.EncodeToString(b),
		},
	})
	return token.SignedString(s.signingKey)
}

func (s *JWTService) ValidateToken(tokenString string) (*CallerClaims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &CallerClaims{}, func(token *jwt.Token) (any, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenUnverifiable
		}
		return s.signingKey, nil
	},
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, dErrors.New(dErrors.CodeUnauthorized, "token expired")
		}
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid token")
	}

	claims, ok := parsed.Claims.(*CallerClaims)
	if !ok || !parsed.Valid {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid token claims")
	}
	if _, err := claims.Caller(); err != nil {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid token subject")
	}
	return claims, nil
}

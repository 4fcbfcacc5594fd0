package jwttoken

import (
	"verisbt/pkg/platform/middleware/auth"
)

// JWTServiceAdapter exposes the service as the auth middleware's validator.
type JWTServiceAdapter struct {
	service *JWTService
}

func NewJWTServiceAdapter(service *JWTService) *JWTServiceAdapter {
	return &JWTServiceAdapter{service: service}
}

func (a *JWTServiceAdapter) ValidateToken(tokenString string) (*auth.JWTClaims, error) {
	claims, err := a.service.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	caller, err := claims.Caller()
	if err != nil {
		return nil, err
	}
	return &auth.JWTClaims{Caller: caller, JTI: claims.ID}, nil
}

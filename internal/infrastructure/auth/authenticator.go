// Package auth establishes the request actor from trusted headers or a
// bearer token.
package auth

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/phonefix-inc/phonefix/internal/shared/actor"
	sharedConfig "github.com/phonefix-inc/phonefix/internal/shared/config"
	"github.com/phonefix-inc/phonefix/internal/shared/constants"
)

const (
	HeaderUserID   = constants.HeaderXUserID
	HeaderUserRole = constants.HeaderXUserRole

	ModeHeader = "header"
	ModeJWT    = "jwt"
)

// HeaderAuthenticator trusts identity headers set by the upstream proxy.
type HeaderAuthenticator struct{}

func NewHeaderAuthenticator() *HeaderAuthenticator {
	return &HeaderAuthenticator{}
}

func (a *HeaderAuthenticator) Authenticate(r *http.Request) (actor.Actor, error) {
	userID := strings.TrimSpace(r.Header.Get(HeaderUserID))
	if userID == "" {
		return actor.Anonymous(), nil
	}
	return actor.New(userID, actor.ParseRole(r.Header.Get(HeaderUserRole))), nil
}

type JWTAuthenticator struct {
	jwt *JWTService
}

func NewJWTAuthenticator(jwtService *JWTService) *JWTAuthenticator {
	return &JWTAuthenticator{jwt: jwtService}
}

// Authenticate returns Anonymous when no Authorization header is present and
// ErrInvalidToken when one is present but does not verify.
func (a *JWTAuthenticator) Authenticate(r *http.Request) (actor.Actor, error) {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if header == "" {
		return actor.Anonymous(), nil
	}

	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return actor.Anonymous(), ErrInvalidToken
	}

	claims, err := a.jwt.Verify(strings.TrimSpace(token))
	if err != nil {
		return actor.Anonymous(), err
	}
	return actor.New(claims.Subject, actor.ParseRole(claims.Role)), nil
}

func NewAuthenticator(cfg sharedConfig.AuthConfig) (actor.Authenticator, error) {
	switch strings.ToLower(cfg.Mode) {
	case "", ModeHeader:
		return NewHeaderAuthenticator(), nil
	case ModeJWT:
		if cfg.JWT.Secret == "" {
			return nil, fmt.Errorf("auth.jwt.secret is required in jwt mode")
		}
		return NewJWTAuthenticator(NewJWTService(cfg.JWT.Secret, cfg.JWT.Issuer)), nil
	default:
		return nil, fmt.Errorf("unsupported auth mode: %s", cfg.Mode)
	}
}

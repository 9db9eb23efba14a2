package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phonefix-inc/phonefix/internal/shared/actor"
	sharedConfig "github.com/phonefix-inc/phonefix/internal/shared/config"
)

func TestHeaderAuthenticator(t *testing.T) {
	tests := []struct {
		name     string
		userID   string
		role     string
		expected actor.Actor
	}{
		{"anonymous", "", "admin", actor.Anonymous()},
		{"customer default", "u1", "", actor.New("u1", actor.RoleCustomer)},
		{"admin any case", "u2", "ADMIN", actor.New("u2", actor.RoleAdmin)},
		{"unknown role", "u3", "superuser", actor.New("u3", actor.RoleCustomer)},
	}

	a := NewHeaderAuthenticator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.userID != "" {
				req.Header.Set(HeaderUserID, tt.userID)
			}
			if tt.role != "" {
				req.Header.Set(HeaderUserRole, tt.role)
			}

			got, err := a.Authenticate(req)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestJWTAuthenticator(t *testing.T) {
	svc := NewJWTService("test-secret", "phonefix")
	a := NewJWTAuthenticator(svc)

	token, err := svc.Generate("tech-7", actor.RoleTechnician, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	got, err := a.Authenticate(req)
	require.NoError(t, err)
	assert.Equal(t, actor.New("tech-7", actor.RoleTechnician), got)

	anon, err := a.Authenticate(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.False(t, anon.IsAuthenticated())
}

func TestJWTAuthenticator_Rejects(t *testing.T) {
	svc := NewJWTService("test-secret", "phonefix")
	a := NewJWTAuthenticator(svc)

	expired, err := svc.Generate("u1", actor.RoleCustomer, -time.Minute)
	require.NoError(t, err)
	foreign, err := NewJWTService("other-secret", "phonefix").Generate("u1", actor.RoleAdmin, time.Hour)
	require.NoError(t, err)
	wrongIssuer, err := NewJWTService("test-secret", "someone-else").Generate("u1", actor.RoleAdmin, time.Hour)
	require.NoError(t, err)

	for name, header := range map[string]string{
		"expired":      "Bearer " + expired,
		"bad key":      "Bearer " + foreign,
		"wrong issuer": "Bearer " + wrongIssuer,
		"not bearer":   "Basic dXNlcjpwYXNz",
		"garbage":      "Bearer not-a-token",
	} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Authorization", header)
			got, err := a.Authenticate(req)
			assert.ErrorIs(t, err, ErrInvalidToken)
			assert.False(t, got.IsAuthenticated())
		})
	}
}

func TestNewAuthenticator(t *testing.T) {
	a, err := NewAuthenticator(sharedConfig.AuthConfig{})
	require.NoError(t, err)
	assert.IsType(t, &HeaderAuthenticator{}, a)

	_, err = NewAuthenticator(sharedConfig.AuthConfig{Mode: "jwt"})
	assert.Error(t, err)

	a, err = NewAuthenticator(sharedConfig.AuthConfig{Mode: "JWT", JWT: sharedConfig.JWTConfig{Secret: "s"}})
	require.NoError(t, err)
	assert.IsType(t, &JWTAuthenticator{}, a)

	_, err = NewAuthenticator(sharedConfig.AuthConfig{Mode: "oauth"})
	assert.Error(t, err)
}

//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"carhire-booking/internal/domain/user"
	"carhire-booking/internal/pkg/config"
	"carhire-booking/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper stands in for the identity provider and signs HS256 tokens.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	return h.sign(t, userID, role, time.Now().Add(time.Hour))
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	return h.sign(t, userID, role, time.Now().Add(-time.Minute))
}

// CreateForeignToken is signed with a key the service does not trust.
func (h *JWTHelper) CreateForeignToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	other := &JWTHelper{cfg: config.JWTConfig{Secret: h.cfg.Secret + "-other", Issuer: h.cfg.Issuer}}
	return other.sign(t, userID, role, time.Now().Add(time.Hour))
}

func (h *JWTHelper) sign(t *testing.T, userID uuid.UUID, role user.Role, expiresAt time.Time) string {
	t.Helper()
	claims := jwt.Claims{
		UserID: userID,
		Role:   role.String(),
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    h.cfg.Issuer,
			IssuedAt:  gojwt.NewNumericDate(expiresAt.Add(-2 * time.Hour)),
			ExpiresAt: gojwt.NewNumericDate(expiresAt),
		},
	}
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(h.cfg.Secret))
	require.NoError(t, err)
	return token
}

package authenticating

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-dashboard-api/internal/config"
	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
)

func TestGenerateAndValidateToken(t *testing.T) {
	service := NewService(config.Auth{Secret: "segredo"})

	token, err := service.GenerateToken("ana", 1, time.Hour)
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "ana", claims.UserName)
	assert.Equal(t, 1, claims.UserRoleID)
	assert.Equal(t, "ana", claims.Subject)
}

func TestValidateTokenExpired(t *testing.T) {
	service := NewService(config.Auth{Secret: "segredo"})
	service.now = func() time.Time { return time.Now().Add(-48 * time.Hour) }

	token, err := service.GenerateToken("ana", 1, time.Hour)
	require.NoError(t, err)

	service.now = time.Now
	_, err = service.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
	assert.True(t, IsAuthorizationError(err))
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := NewService(config.Auth{Secret: "outro"}).GenerateToken("ana", 1, time.Hour)
	require.NoError(t, err)

	_, err = NewService(config.Auth{Secret: "segredo"}).ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenRejectsOtherSigningMethods(t *testing.T) {
	claims := &domain.Claims{
		UserName:   "ana",
		UserRoleID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewService(config.Auth{Secret: "segredo"}).ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestMissingSecret(t *testing.T) {
	service := NewService(config.Auth{})

	_, err := service.GenerateToken("ana", 1, time.Hour)
	assert.ErrorIs(t, err, ErrMissingSecret)

	_, err = service.ValidateToken("qualquer")
	assert.ErrorIs(t, err, ErrMissingSecret)
}

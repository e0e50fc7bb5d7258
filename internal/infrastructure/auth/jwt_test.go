package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warungin/backend/internal/domain/shared"
	"github.com/warungin/backend/internal/infrastructure/config"
)

func testService(expiration time.Duration) *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:          "test-secret-at-least-32-characters-long",
		TokenExpiration: expiration,
		Issuer:          "warungin-test",
	})
}

func TestGenerateAndValidate(t *testing.T) {
	svc := testService(time.Hour)
	userID := uuid.New()
	warungID := uuid.New()

	token, expiresAt, err := svc.Generate(userID, shared.RoleOutlet, &warungID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, shared.RoleOutlet, claims.GetRole())

	gotWarung, err := claims.GetWarungUUID()
	require.NoError(t, err)
	require.NotNil(t, gotWarung)
	assert.Equal(t, warungID, *gotWarung)
}

func TestValidateWithoutWarung(t *testing.T) {
	svc := testService(time.Hour)
	token, _, err := svc.Generate(uuid.New(), shared.RoleAdmin, nil)
	require.NoError(t, err)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	gotWarung, err := claims.GetWarungUUID()
	require.NoError(t, err)
	assert.Nil(t, gotWarung)
}

func TestGenerateRejectsUnknownRole(t *testing.T) {
	svc := testService(time.Hour)
	_, _, err := svc.Generate(uuid.New(), shared.Role("SUPERVISOR"), nil)
	assert.ErrorIs(t, err, ErrUnknownRole)
}

func TestValidateExpiredToken(t *testing.T) {
	svc := testService(-time.Minute)
	token, _, err := svc.Generate(uuid.New(), shared.RoleCourier, nil)
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	token, _, err := testService(time.Hour).Generate(uuid.New(), shared.RoleWarehouse, nil)
	require.NoError(t, err)

	other := NewJWTService(config.JWTConfig{
		Secret:          "another-secret-that-is-also-32-chars!",
		TokenExpiration: time.Hour,
		Issuer:          "warungin-test",
	})
	_, err = other.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

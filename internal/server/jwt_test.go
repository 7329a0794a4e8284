package server

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jonathan/legaldoc/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test-secret-key-for-jwt-signing-minimum-32-bytes"

func testJWTConfig() *config.JWTConfig {
	return &config.JWTConfig{Secret: testJWTSecret, ExpirationHours: 8, Issuer: config.DefaultJWTIssuer}
}

func TestJWTService_RoundTrip(t *testing.T) {
	service := NewJWTService(testJWTConfig())
	userID := uuid.New()

	token, err := service.GenerateToken(userID, []string{GroupLawyer})
	require.NoError(t, err)
	assert.Len(t, strings.Split(token, "."), 3)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, []string{GroupLawyer}, claims.GetGroups())
	assert.Equal(t, config.DefaultJWTIssuer, claims.Issuer)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestJWTService_GenerateToken_RequiresUser(t *testing.T) {
	_, err := NewJWTService(testJWTConfig()).GenerateToken(uuid.Nil, nil)
	assert.Error(t, err)
}

func TestJWTService_Expired(t *testing.T) {
	service := NewJWTService(testJWTConfig())
	service.now = func() time.Time { return time.Now().Add(-9 * time.Hour) }
	token, err := service.GenerateToken(uuid.New(), nil)
	require.NoError(t, err)

	service.now = time.Now
	_, err = service.ValidateToken(token)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "token expired")
}

func TestJWTService_WrongSecret(t *testing.T) {
	token, err := NewJWTService(testJWTConfig()).GenerateToken(uuid.New(), nil)
	require.NoError(t, err)

	other := testJWTConfig()
	other.Secret = "another-secret-key-of-enough-length"
	_, err = NewJWTService(other).ValidateToken(token)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid token signature")
}

func TestJWTService_WrongIssuer(t *testing.T) {
	token, err := NewJWTService(testJWTConfig()).GenerateToken(uuid.New(), nil)
	require.NoError(t, err)

	other := testJWTConfig()
	other.Issuer = "someone-else"
	_, err = NewJWTService(other).ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsOtherAlgorithms(t *testing.T) {
	claims := &Claims{UserID: uuid.New(), RegisteredClaims: jwt.RegisteredClaims{Issuer: config.DefaultJWTIssuer}}
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	signed, err := token.SignedString([]byte(testJWTSecret))
	require.NoError(t, err)

	_, err = NewJWTService(testJWTConfig()).ValidateToken(signed)
	assert.Error(t, err)
}

func TestJWTService_Malformed(t *testing.T) {
	service := NewJWTService(testJWTConfig())

	_, err := service.ValidateToken("")
	assert.Error(t, err)

	_, err = service.ValidateToken("not.a.jwt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed token")
}

func TestJWTService_AsTokenValidator(t *testing.T) {
	service := NewJWTService(testJWTConfig())
	userID := uuid.New()
	token, err := service.GenerateToken(userID, []string{GroupAdmin})
	require.NoError(t, err)

	principal, err := service.AsTokenValidator().ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, principal.GetUserID())
	assert.Equal(t, []string{GroupAdmin}, principal.GetGroups())
}

package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/devang/profmatch/internal/app/models"
)

func newTestJWTService(expiry time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:   "test-secret-key",
		TokenExpiry: expiry,
		TokenIssuer: "profmatch.test",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestJWTService(time.Hour)
	userID := primitive.NewObjectID().Hex()

	token, err := svc.GenerateToken(userID, models.RoleProfessor)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.Subject)
	assert.Equal(t, models.RoleProfessor, claims.Role)
	assert.Equal(t, "profmatch.test", claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestValidateToken_EmptyString(t *testing.T) {
	svc := newTestJWTService(time.Hour)

	_, err := svc.ValidateToken("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_WrongKey(t *testing.T) {
	svc := newTestJWTService(time.Hour)
	other := NewJWTService(JWTConfig{
		SecretKey:   "a-different-secret",
		TokenExpiry: time.Hour,
		TokenIssuer: "profmatch.test",
	})

	token, err := other.GenerateToken(primitive.NewObjectID().Hex(), models.RoleAdmin)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Tampered(t *testing.T) {
	svc := newTestJWTService(time.Hour)

	token, err := svc.GenerateToken(primitive.NewObjectID().Hex(), models.RoleStudent)
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = svc.ValidateToken(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := newTestJWTService(-time.Minute)

	token, err := svc.GenerateToken(primitive.NewObjectID().Hex(), models.RoleAdmin)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateToken_UnknownRole(t *testing.T) {
	svc := newTestJWTService(time.Hour)

	token, err := svc.GenerateToken(primitive.NewObjectID().Hex(), models.Role("wizard"))
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenExpiry(t *testing.T) {
	svc := newTestJWTService(24 * time.Hour)
	assert.Equal(t, 24*time.Hour, svc.TokenExpiry())
}

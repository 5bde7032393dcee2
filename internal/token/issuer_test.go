package token_test

import (
	"testing"
	"time"

	"hradmin/internal/token"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestIssuer_IssueAndVerify(t *testing.T) {
	issuer := token.NewIssuer("test-secret", time.Hour)

	signed, err := issuer.Issue(42)
	assert.NoError(t, err)
	assert.NotEmpty(t, signed)

	subjectID, err := issuer.Verify(signed)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), subjectID)
}

func TestIssuer_Verify_Expired(t *testing.T) {
	issuer := token.NewIssuer("test-secret", -time.Minute)

	signed, err := issuer.Issue(7)
	assert.NoError(t, err)

	_, err = issuer.Verify(signed)
	assert.ErrorIs(t, err, token.ErrExpired)
}

func TestIssuer_Issue_HonorsConfiguredTTL(t *testing.T) {
	issuer := token.NewIssuer("test-secret", -time.Minute)

	signed, err := issuer.Issue(7)
	assert.NoError(t, err)

	// TTL negatif harus menghasilkan exp di masa lalu, bukan jatuh
	// ke masa berlaku standar
	claims := jwt.MapClaims{}
	_, _, err = jwt.NewParser().ParseUnverified(signed, claims)
	assert.NoError(t, err)

	exp, ok := claims["exp"].(float64)
	assert.True(t, ok)
	assert.Less(t, exp, float64(time.Now().Unix()))
}

func TestIssuer_Verify_WrongSecret(t *testing.T) {
	issuer := token.NewIssuer("secret-a", time.Hour)
	other := token.NewIssuer("secret-b", time.Hour)

	signed, err := issuer.Issue(7)
	assert.NoError(t, err)

	_, err = other.Verify(signed)
	assert.ErrorIs(t, err, token.ErrInvalid)
}

func TestIssuer_Verify_Malformed(t *testing.T) {
	issuer := token.NewIssuer("test-secret", time.Hour)

	_, err := issuer.Verify("not-a-token")
	assert.ErrorIs(t, err, token.ErrInvalid)
}

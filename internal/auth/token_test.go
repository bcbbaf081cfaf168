package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenIssueAndVerify(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer([]byte("test-signing-key"), time.Hour)

	token, err := issuer.Issue("acc-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	accountID, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "acc-123", accountID)
}

func TestTokenVerifyExpired(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer([]byte("test-signing-key"), -time.Minute)

	token, err := issuer.Issue("acc-123")
	require.NoError(t, err)

	_, err = issuer.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenVerifyWrongKey(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer([]byte("right-key"), time.Hour)
	other := NewTokenIssuer([]byte("wrong-key"), time.Hour)

	token, err := issuer.Issue("acc-123")
	require.NoError(t, err)

	_, err = other.Verify(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenVerifyMalformed(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer([]byte("key"), time.Hour)

	_, err := issuer.Verify("not.a.token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenNotTransferableBetweenAccounts(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer([]byte("key"), time.Hour)

	tokenA, err := issuer.Issue("account-a")
	require.NoError(t, err)
	tokenB, err := issuer.Issue("account-b")
	require.NoError(t, err)

	idA, err := issuer.Verify(tokenA)
	require.NoError(t, err)
	idB, err := issuer.Verify(tokenB)
	require.NoError(t, err)

	assert.Equal(t, "account-a", idA)
	assert.Equal(t, "account-b", idB)
	assert.NotEqual(t, idA, idB)
}

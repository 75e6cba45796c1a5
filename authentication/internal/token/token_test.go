package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func secret(s string) SecretProvider {
	return func() []byte { return []byte(s) }
}

func TestIssueVerify(t *testing.T) {
	m := New(secret("s3cret"), time.Hour)
	tok, err := m.Issue("alice")
	require.NoError(t, err)

	pseudo, err := m.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "alice", pseudo)
}

func TestVerifyRejects(t *testing.T) {
	m := New(secret("s3cret"), time.Hour)
	tok, err := m.Issue("alice")
	require.NoError(t, err)

	expired := New(secret("s3cret"), time.Hour)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	old, err := expired.Issue("alice")
	require.NoError(t, err)

	foreign, err := New(secret("other"), time.Hour).Issue("alice")
	require.NoError(t, err)

	tests := map[string]string{
		"empty":        "",
		"garbage":      "not-a-token",
		"expired":      old,
		"wrong secret": foreign,
		"truncated":    tok[:len(tok)-4],
	}
	for name, tok := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := m.Verify(tok)
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

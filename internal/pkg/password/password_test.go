package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("Passw0rd!")
	require.NoError(t, err)
	assert.NotEqual(t, "Passw0rd!", hash)
	assert.True(t, Verify("Passw0rd!", hash))
	assert.False(t, Verify("wrongpass", hash))
}

func TestHashUsesFreshSalt(t *testing.T) {
	h1, err := Hash("Passw0rd!")
	require.NoError(t, err)
	h2, err := Hash("Passw0rd!")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}

func TestVerifyMalformedHash(t *testing.T) {
	assert.False(t, Verify("anything", "not-a-phc-string"))
	assert.False(t, Verify("anything", "$argon2id$v=19$m=65536,t=1,p=4$bogus"))
}

func TestCheckStrength(t *testing.T) {
	cases := []struct {
		name     string
		password string
		want     bool
	}{
		{"valid", "abc123!@", true},
		{"no symbol", "abc12345", false},
		{"no digit", "abcdefg!", false},
		{"no letter", "12345678!", false},
		{"too short", "ab12!@", false},
		{"symbol outside set", "abc12345~", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CheckStrength(tc.password))
		})
	}
}

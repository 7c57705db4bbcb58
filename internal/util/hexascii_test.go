package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsLikelyHex(t *testing.T) {
	assert.True(t, IsLikelyHex("deadbeef"))
	assert.True(t, IsLikelyHex("de ad be ef"))
	assert.True(t, IsLikelyHex(""))
	assert.False(t, IsLikelyHex("deadbee"))
	assert.False(t, IsLikelyHex("nothex!!"))
}

func TestDecodeSecret(t *testing.T) {
	b, err := DecodeSecret("48656c6c6f")
	require.NoError(t, err)
	assert.Equal(t, []byte("Hello"), b)

	b, err = DecodeSecret("SGVsbG8=")
	require.NoError(t, err)
	assert.Equal(t, []byte("Hello"), b)

	// Valid under both encodings: hex wins.
	b, err = DecodeSecret("abcd")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xab, 0xcd}, b)

	_, err = DecodeSecret("!!not an encoding!!")
	assert.Error(t, err)
}

func TestToHex(t *testing.T) {
	assert.Equal(t, "00ff", ToHex([]byte{0, 0xff}))
}

package toxpk

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/samber/oops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKeyHex = "C7719C6808C14B77348004956D1D98046CE09A34370E7608150EAD74C3815D30"

func TestFromHex(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		errorCode   string
	}{
		{name: "upper_case", input: testKeyHex},
		{name: "lower_case", input: strings.ToLower(testKeyHex)},
		{name: "too_short", input: testKeyHex[:62], expectError: true, errorCode: "INVALID_PUBLIC_KEY_LENGTH"},
		{name: "too_long", input: testKeyHex + "00", expectError: true, errorCode: "INVALID_PUBLIC_KEY_LENGTH"},
		{name: "empty", input: "", expectError: true, errorCode: "INVALID_PUBLIC_KEY_LENGTH"},
		{name: "non_hex", input: "ZZ" + testKeyHex[2:], expectError: true, errorCode: "INVALID_PUBLIC_KEY_HEX"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pk, err := FromHex(tt.input)
			if tt.expectError {
				require.Error(t, err)
				oopsErr, ok := err.(oops.OopsError)
				require.True(t, ok)
				assert.Equal(t, tt.errorCode, oopsErr.Code())
				assert.True(t, pk.IsZero())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testKeyHex, pk.String())
		})
	}
}

func TestFromBytes(t *testing.T) {
	raw := make([]byte, Size)
	raw[0] = 0xC7
	raw[31] = 0x30

	pk, err := FromBytes(raw)
	require.NoError(t, err)
	assert.Equal(t, byte(0xC7), pk[0])
	assert.Equal(t, byte(0x30), pk[31])

	raw[0] = 0x00
	assert.Equal(t, byte(0xC7), pk[0], "key must not alias the input buffer")

	_, err = FromBytes(make([]byte, 31))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "public key must be exactly 32 bytes")

	_, err = FromBytes(nil)
	require.Error(t, err)

	_, err = FromBytes(make([]byte, Size+1))
	require.Error(t, err)
	oopsErr, ok := err.(oops.OopsError)
	require.True(t, ok)
	assert.Equal(t, "INVALID_PUBLIC_KEY_SIZE", oopsErr.Code())
}

func TestPublicKeyEquality(t *testing.T) {
	a, err := FromHex(testKeyHex)
	require.NoError(t, err)
	b, err := FromHex(strings.ToLower(testKeyHex))
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.True(t, a == b)

	var zero PublicKey
	assert.False(t, a.Equal(zero))
	assert.True(t, zero.IsZero())
	assert.False(t, a.IsZero())
}

func TestBytesReturnsCopy(t *testing.T) {
	pk, err := FromHex(testKeyHex)
	require.NoError(t, err)

	b := pk.Bytes()
	require.Len(t, b, Size)
	b[0] ^= 0xFF
	assert.Equal(t, testKeyHex, pk.String())
}

func TestIsPublicKeyText(t *testing.T) {
	assert.True(t, IsPublicKeyText(testKeyHex))
	assert.False(t, IsPublicKeyText(testKeyHex+"C8BA3AB9BEB9"))
	assert.False(t, IsPublicKeyText(" "+testKeyHex[1:]))
}

func TestPublicKeyJSON(t *testing.T) {
	pk, err := FromHex(testKeyHex)
	require.NoError(t, err)

	data, err := json.Marshal(map[string]PublicKey{"key": pk})
	require.NoError(t, err)
	assert.JSONEq(t, `{"key":"`+testKeyHex+`"}`, string(data))

	var decoded map[string]PublicKey
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, pk, decoded["key"])

	var bad PublicKey
	assert.Error(t, bad.UnmarshalText([]byte("abc")))
}

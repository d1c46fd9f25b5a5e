package did

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrip0x(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"with prefix", "0xdeadbeef", "deadbeef"},
		{"without prefix", "deadbeef", "deadbeef"},
		{"prefix only", "0x", ""},
		{"empty", "", ""},
		{"upper case prefix untouched", "0Xdeadbeef", "0Xdeadbeef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Strip0x(tt.input))
		})
	}
}

func TestTrimNulBytes(t *testing.T) {
	t.Run("trailing padding", func(t *testing.T) {
		buf := append([]byte("veriKey"), make([]byte, 25)...)
		assert.Equal(t, []byte("veriKey"), TrimNulBytes(buf))
	})

	t.Run("interior NULs dropped too", func(t *testing.T) {
		assert.Equal(t, []byte("ab"), TrimNulBytes([]byte{'a', 0, 'b', 0}))
	})

	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, TrimNulBytes(nil))
	})
}

func TestToUTF8Lossy(t *testing.T) {
	assert.Equal(t, "veriKey", ToUTF8Lossy([]byte("veriKey")))
	assert.Equal(t, "a�b", ToUTF8Lossy([]byte{'a', 0xff, 'b'}))
	assert.Equal(t, "��", ToUTF8Lossy([]byte{0xff, 0xff}))
	assert.Empty(t, ToUTF8Lossy(nil))
}

func TestEncodings(t *testing.T) {
	value := []byte("hello world")

	assert.Equal(t, "68656c6c6f20776f726c64", EncodeHex(value))
	assert.Equal(t, "aGVsbG8gd29ybGQ=", EncodeBase64(value))
	assert.Equal(t, "StV1DL6CwTryKyV", EncodeBase58(value))
}

func TestExtractIdentifier(t *testing.T) {
	tests := []struct {
		name     string
		did      string
		expected string
	}{
		{
			"plain address",
			"did:ethr:0xdca7ef03e98e0dc2b855be647c39abe984fcf21b",
			"0xdca7ef03e98e0dc2b855be647c39abe984fcf21b",
		},
		{
			"network qualified",
			"did:ethr:mainnet:0xdca7ef03e98e0dc2b855be647c39abe984fcf21b",
			"0xdca7ef03e98e0dc2b855be647c39abe984fcf21b",
		},
		{
			"query dropped",
			"did:ethr:0xdca7ef03e98e0dc2b855be647c39abe984fcf21b?versionId=5",
			"0xdca7ef03e98e0dc2b855be647c39abe984fcf21b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractIdentifier(tt.did))
		})
	}
}

func TestPublicKeyFromDID(t *testing.T) {
	pubKey := "0x0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"

	t.Run("compressed key identifier", func(t *testing.T) {
		id, ok := PublicKeyFromDID("did:ethr:" + pubKey)
		assert.True(t, ok)
		assert.Equal(t, pubKey, id)
	})

	t.Run("address identifier has no key", func(t *testing.T) {
		_, ok := PublicKeyFromDID("did:ethr:0xdca7ef03e98e0dc2b855be647c39abe984fcf21b")
		assert.False(t, ok)
	})

	t.Run("query ignored", func(t *testing.T) {
		id, ok := PublicKeyFromDID("did:ethr:" + pubKey + "?versionId=1")
		assert.True(t, ok)
		assert.Equal(t, pubKey, id)
	})

	t.Run("non-ethr method", func(t *testing.T) {
		_, ok := PublicKeyFromDID("did:key:" + pubKey)
		assert.False(t, ok)
	})
}

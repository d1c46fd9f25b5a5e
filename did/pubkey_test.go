package did

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressFromPublicKey(t *testing.T) {
	// Generator point of secp256k1, i.e. the public key of private key 1
	compressed := "0x0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"

	t.Run("known vector", func(t *testing.T) {
		addr, err := AddressFromPublicKey(compressed)
		require.NoError(t, err)
		assert.Equal(t, "0x7e5f4552091a69125d5dfcb7b8c2659029395bdf", addr)
	})

	t.Run("prefix optional", func(t *testing.T) {
		addr, err := AddressFromPublicKey(Strip0x(compressed))
		require.NoError(t, err)
		assert.Equal(t, "0x7e5f4552091a69125d5dfcb7b8c2659029395bdf", addr)
	})

	t.Run("invalid hex", func(t *testing.T) {
		_, err := AddressFromPublicKey("0xzz")
		assert.Error(t, err)
	})

	t.Run("not on curve", func(t *testing.T) {
		_, err := AddressFromPublicKey("0x02ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff")
		assert.Error(t, err)
	})
}

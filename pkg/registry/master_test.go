package registry

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMasterAddressValue(t *testing.T) {
	expected := common.HexToAddress("0xFd923f23CF144b81db3A331949E38dB8Bf2F2fF0")
	assert.Equal(t, expected, MasterAddress())
}

func TestMasterAddressIsDeterministic(t *testing.T) {
	first := MasterAddress()
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, MasterAddress())
	}
}

// Pin each key against an independent big.Int parse of the full-width hex.
// Guards the literals themselves: uint256 only accepts canonical hex, so a
// reformatted literal would otherwise surface as a package init panic.
func TestMasterKeyValues(t *testing.T) {
	keys := []struct {
		name string
		key  *uint256.Int
		hex  string
	}{
		{"keyA", masterKeyA, "02a7e321a8ffbf069c3294fa5cb871684cab34f56a06c929790ce30dcf2bca28"},
		{"keyB", masterKeyB, "6166507f2135973eba1f0887c55e7cd1d2af47f2fcb1f48cc4ad73d78985d289"},
		{"keyC", masterKeyC, "be9fb9b34d9b32e6a11376b66474329a511038864d8d0ebcf4421d62f9813751"},
	}

	for _, tt := range keys {
		t.Run(tt.name, func(t *testing.T) {
			expected, ok := new(big.Int).SetString(tt.hex, 16)
			require.True(t, ok)
			assert.Equal(t, expected, tt.key.ToBig())
		})
	}
}

// Cross-check the derivation against an independent big.Int computation of
// the XOR and the low-160-bit truncation.
func TestMasterAddressMatchesIndependentXor(t *testing.T) {
	keyA, ok := new(big.Int).SetString("02a7e321a8ffbf069c3294fa5cb871684cab34f56a06c929790ce30dcf2bca28", 16)
	require.True(t, ok)
	keyB, ok := new(big.Int).SetString("6166507f2135973eba1f0887c55e7cd1d2af47f2fcb1f48cc4ad73d78985d289", 16)
	require.True(t, ok)
	keyC, ok := new(big.Int).SetString("be9fb9b34d9b32e6a11376b66474329a511038864d8d0ebcf4421d62f9813751", 16)
	require.True(t, ok)

	combined := new(big.Int).Xor(keyA, keyB)
	combined.Xor(combined, keyC)

	mask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 160), big.NewInt(1))
	low160 := new(big.Int).And(combined, mask)

	assert.Equal(t, common.BigToAddress(low160), MasterAddress())
}

func TestMasterAddressIsNotAKnownIdentity(t *testing.T) {
	// The derived identity must not collide with any configured address.
	addr := MasterAddress()
	assert.NotEqual(t, common.Address{}, addr)
	assert.False(t, IsSupportedStablecoin(addr))
	assert.False(t, IsKnownRouter(addr))
	assert.NotEqual(t, WethAddress, addr)
}

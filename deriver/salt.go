package deriver

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// HashSalt turns an arbitrary salt string into the 32 byte nonce that both
// derivation paths consume. The EVM path passes it to the factory contract,
// the zksync path mixes it into the create2 salt locally, so the two paths
// are guaranteed to agree on the digest for the same salt.
func HashSalt(salt []byte) common.Hash {
	return crypto.Keccak256Hash(salt)
}

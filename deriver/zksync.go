package deriver

import (
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// create2Prefix is keccak256("zksyncCreate2"), the domain separation prefix
// the zksync ContractDeployer uses for create2 addresses.
var create2Prefix = crypto.Keccak256Hash([]byte("zksyncCreate2"))

// accountProxyBytecodeHash is the zksync-format hash of the account proxy
// bytecode the factory deploys. It must match the artifact shipped with the
// factory on chain: redeploying the proxy invalidates this constant and every
// address derived from it, so update both in lockstep.
var accountProxyBytecodeHash = common.HexToHash(
	"0x0100003d68eeda1693947d4c7330fcae2ba92903b8b67bdc98199ed10bc94e4f",
)

var (
	addressType, _ = abi.NewType("address", "", nil)
	bytes32Type, _ = abi.NewType("bytes32", "", nil)
	bytesType, _   = abi.NewType("bytes", "", nil)

	// (owner, saltDigest) — hashed into the create2 salt the factory uses
	innerSaltArgs = abi.Arguments{{Type: addressType}, {Type: bytes32Type}}
	// (implementation, initData) — the proxy constructor input
	proxyInputArgs = abi.Arguments{{Type: addressType}, {Type: bytesType}}
)

// ResolveZkSyncAddress computes the deployment address of an account proxy on
// a zksync family chain without touching the network. It mirrors the
// ContractDeployer's create2 derivation:
//
//	keccak256(prefix ++ pad32(factory) ++ innerSalt ++ bytecodeHash ++ inputHash)[12:]
//
// where innerSalt = keccak256(abi.encode(owner, saltDigest)) and inputHash is
// the hash of abi.encode(implementation, "") — the proxy constructor input
// with empty init data. Byte order and padding here must stay bit-identical
// to the chain: a deviation yields a valid-looking but wrong address with no
// runtime error, which is why the golden vector tests pin every intermediate.
func ResolveZkSyncAddress(
	factory, implementation, owner common.Address,
	saltDigest common.Hash,
) (common.Address, error) {
	ownerAndSalt, err := innerSaltArgs.Pack(owner, saltDigest)
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: packing (owner, salt digest): %s", ErrEncodingFailure, err)
	}
	innerSalt := crypto.Keccak256(ownerAndSalt)

	proxyInput, err := proxyInputArgs.Pack(implementation, []byte{})
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: packing proxy constructor input: %s", ErrEncodingFailure, err)
	}
	inputHash := crypto.Keccak256(proxyInput)

	preimage := make([]byte, 0, 160)
	preimage = append(preimage, create2Prefix.Bytes()...)
	preimage = append(preimage, common.LeftPadBytes(factory.Bytes(), 32)...)
	preimage = append(preimage, innerSalt...)
	preimage = append(preimage, accountProxyBytecodeHash.Bytes()...)
	preimage = append(preimage, inputHash...)

	return common.BytesToAddress(crypto.Keccak256(preimage)[12:]), nil
}

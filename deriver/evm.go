package deriver

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// On standard EVM chains the factory computes the account address itself.
// We only prepare the two call arguments and trust whatever create2 logic the
// deployed factory runs, so this tool stays correct even if the factory's
// derivation changes under us.
const factoryABIJSON = `[
	{
		"constant": true,
		"inputs": [
			{"name": "owner", "type": "address"},
			{"name": "nonce", "type": "bytes32"}
		],
		"name": "getAddressWithNonce",
		"outputs": [{"name": "", "type": "address"}],
		"payable": false,
		"stateMutability": "view",
		"type": "function"
	}
]`

var factoryABI abi.ABI

func init() {
	var err error
	factoryABI, err = abi.JSON(strings.NewReader(factoryABIJSON))
	if err != nil {
		panic(fmt.Errorf("couldn't parse factory abi: %w", err))
	}
}

// ContractCaller performs a single read-only call against a contract on one
// specific chain. reader.EthReader implements it; tests use fakes.
type ContractCaller interface {
	AddressFromContractWithABI(
		contract string,
		a *abi.ABI,
		method string,
		args ...interface{},
	) (common.Address, error)
}

// ResolveEVMAddress asks the factory contract for the account address via its
// getAddressWithNonce view function. One call, no retry: if the caller fails,
// the invocation fails.
func ResolveEVMAddress(
	caller ContractCaller,
	factory, owner common.Address,
	saltDigest common.Hash,
) (common.Address, error) {
	addr, err := caller.AddressFromContractWithABI(
		factory.Hex(),
		&factoryABI,
		"getAddressWithNonce",
		owner,
		saltDigest,
	)
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: calling getAddressWithNonce on %s: %s",
			ErrNetworkFailure, factory.Hex(), err)
	}
	return addr, nil
}

package deriver

// ChainClass tells which derivation path applies to a chain.
type ChainClass int

const (
	// EVMChain covers every chain where the factory contract computes the
	// account address itself via its view function.
	EVMChain ChainClass = iota
	// ZkSyncChain covers zksync family chains where create2 semantics differ
	// from the EVM and the address has to be computed locally.
	ZkSyncChain
)

func (c ChainClass) String() string {
	if c == ZkSyncChain {
		return "zksync"
	}
	return "evm"
}

// zksync family chain ids. Adding a new id here is enough to route a chain
// to the offline path, no other component needs to change.
var zksyncChainIDs = map[uint64]bool{
	324: true, // zksync era mainnet
	300: true, // zksync sepolia testnet
	280: true, // zksync goerli testnet (legacy)
}

// ClassifyChain maps a chain id to its derivation path. It never fails:
// any id outside the zksync set is treated as a standard EVM chain, even if
// no network with that id is registered. Whether the chain is actually
// reachable is a separate concern of the caller provider.
func ClassifyChain(chainID uint64) ChainClass {
	if zksyncChainIDs[chainID] {
		return ZkSyncChain
	}
	return EVMChain
}

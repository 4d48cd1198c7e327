package config

// Flag-backed process-wide settings. Set once by cobra flag parsing before
// any command runs.
var (
	// ChainID selects the chain to derive for. Defaults to ethereum mainnet.
	ChainID uint64

	// RPC overrides the registry's nodes with a single endpoint. Only
	// meaningful on the EVM path, the zksync path never touches the network.
	RPC string

	// JSONOutput switches the report from the human-readable layout to JSON.
	JSONOutput bool
)

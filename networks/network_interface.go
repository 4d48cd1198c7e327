package networks

import (
	"time"
)

type Network interface {
	GetName() string
	GetChainID() uint64
	GetAlternativeNames() []string
	GetNativeTokenSymbol() string
	GetNativeTokenDecimal() int64
	GetBlockTime() time.Duration // in second

	// GetNodeVariableName returns the env var users can set to point this
	// network at their own RPC node instead of the built-in defaults.
	GetNodeVariableName() string
	GetDefaultNodes() map[string]string
}

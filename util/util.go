package util

import (
	"os"
	"strings"

	"github.com/tranvictor/accountaddr/deriver"
	"github.com/tranvictor/accountaddr/networks"
	"github.com/tranvictor/accountaddr/util/reader"
)

// GetNodes returns the RPC nodes to use for a network: the built-in defaults
// plus the user's own node if the network's env var is set.
func GetNodes(n networks.Network) map[string]string {
	nodes := map[string]string{}
	for name, url := range n.GetDefaultNodes() {
		nodes[name] = url
	}
	customNode := strings.Trim(os.Getenv(n.GetNodeVariableName()), " ")
	if customNode != "" {
		nodes["custom-node"] = customNode
	}
	return nodes
}

func EthReader(n networks.Network) *reader.EthReader {
	return reader.NewEthReaderGeneric(GetNodes(n))
}

// ChainCallerProvider turns a chain id into a contract caller through the
// networks registry. A non-empty RPCOverride bypasses the registry entirely
// and talks to that single endpoint instead.
type ChainCallerProvider struct {
	RPCOverride string
}

func (p ChainCallerProvider) ContractCaller(chainID uint64) (deriver.ContractCaller, error) {
	if p.RPCOverride != "" {
		return reader.NewEthReaderGeneric(map[string]string{"custom-node": p.RPCOverride}), nil
	}
	n, err := networks.GetNetworkByID(chainID)
	if err != nil {
		return nil, err
	}
	return EthReader(n), nil
}

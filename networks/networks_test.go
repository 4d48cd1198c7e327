package networks_test

import (
	"errors"
	"testing"

	"github.com/tranvictor/accountaddr/networks"
)

func TestGetNetworkByID(t *testing.T) {
	tests := []struct {
		chainID uint64
		name    string
	}{
		{1, "mainnet"},
		{56, "bsc"},
		{8453, "base"},
		{324, "zksync"},
		{300, "zksync-sepolia"},
		{280, "zksync-goerli"},
	}
	for _, tc := range tests {
		n, err := networks.GetNetworkByID(tc.chainID)
		if err != nil {
			t.Errorf("chain id %d: unexpected error: %s", tc.chainID, err)
			continue
		}
		if n.GetName() != tc.name {
			t.Errorf("chain id %d resolves to %s, want %s", tc.chainID, n.GetName(), tc.name)
		}
	}

	_, err := networks.GetNetworkByID(999999)
	if !errors.Is(err, networks.ErrNetworkNotFound) {
		t.Errorf("unknown chain id: got error %v, want ErrNetworkNotFound", err)
	}
}

func TestGetNetworkByAlternativeName(t *testing.T) {
	n, err := networks.GetNetwork("ethereum")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if n.GetName() != "mainnet" {
		t.Errorf("alternative name 'ethereum' resolves to %s, want mainnet", n.GetName())
	}

	_, err = networks.GetNetwork("no-such-network")
	if !errors.Is(err, networks.ErrNetworkNotFound) {
		t.Errorf("unknown name: got error %v, want ErrNetworkNotFound", err)
	}
}

func TestNewNetworkFromJSON(t *testing.T) {
	content := []byte(`{
		"name": "localchain",
		"alternative_names": ["devnet"],
		"chain_id": 31337,
		"native_token_symbol": "ETH",
		"native_token_decimal": 18,
		"block_time": 1,
		"node_variable_name": "LOCALCHAIN_NODE",
		"default_nodes": {
			"localhost": "http://localhost:8545"
		}
	}`)
	n, err := networks.NewNetworkFromJSON(content)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if n.GetName() != "localchain" {
		t.Errorf("name is %s, want localchain", n.GetName())
	}
	if n.GetChainID() != 31337 {
		t.Errorf("chain id is %d, want 31337", n.GetChainID())
	}
	if n.GetNodeVariableName() != "LOCALCHAIN_NODE" {
		t.Errorf("node variable name is %s, want LOCALCHAIN_NODE", n.GetNodeVariableName())
	}
	if nodes := n.GetDefaultNodes(); nodes["localhost"] != "http://localhost:8545" {
		t.Errorf("default nodes are %v, want the localhost node", nodes)
	}
}

func TestNewNetworkFromJSONRejectsIncomplete(t *testing.T) {
	if _, err := networks.NewNetworkFromJSON([]byte(`{"chain_id": 31337}`)); err == nil {
		t.Errorf("config without a name accepted")
	}
	if _, err := networks.NewNetworkFromJSON([]byte(`{"name": "localchain"}`)); err == nil {
		t.Errorf("config without a chain id accepted")
	}
	if _, err := networks.NewNetworkFromJSON([]byte(`not json`)); err == nil {
		t.Errorf("invalid json accepted")
	}
}

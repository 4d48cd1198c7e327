package util_test

import (
	"errors"
	"testing"

	"github.com/tranvictor/accountaddr/networks"
	"github.com/tranvictor/accountaddr/util"
)

func TestGetNodesUsesDefaults(t *testing.T) {
	n, err := networks.GetNetworkByID(1)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	nodes := util.GetNodes(n)
	if len(nodes) != len(n.GetDefaultNodes()) {
		t.Errorf("got %d nodes, want the %d defaults", len(nodes), len(n.GetDefaultNodes()))
	}
	if _, found := nodes["custom-node"]; found {
		t.Errorf("custom node present without the env var set")
	}
}

func TestGetNodesHonorsEnvVar(t *testing.T) {
	n, err := networks.GetNetworkByID(1)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	t.Setenv(n.GetNodeVariableName(), " http://localhost:8545 ")

	nodes := util.GetNodes(n)
	if nodes["custom-node"] != "http://localhost:8545" {
		t.Errorf("custom node is %q, want the trimmed env var value", nodes["custom-node"])
	}
}

func TestChainCallerProvider(t *testing.T) {
	provider := util.ChainCallerProvider{}
	if _, err := provider.ContractCaller(1); err != nil {
		t.Errorf("registered chain: unexpected error: %s", err)
	}

	_, err := provider.ContractCaller(999999)
	if !errors.Is(err, networks.ErrNetworkNotFound) {
		t.Errorf("unknown chain: got error %v, want ErrNetworkNotFound", err)
	}

	// an rpc override bypasses the registry, unknown chains become reachable
	override := util.ChainCallerProvider{RPCOverride: "http://localhost:8545"}
	if _, err := override.ContractCaller(999999); err != nil {
		t.Errorf("override with unknown chain: unexpected error: %s", err)
	}
}

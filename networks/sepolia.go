package networks

import (
	"time"
)

var Sepolia Network = &sepolia{}

type sepolia struct{}

func (self *sepolia) GetName() string {
	return "sepolia"
}

func (self *sepolia) GetChainID() uint64 {
	return 11155111
}

func (self *sepolia) GetAlternativeNames() []string {
	return []string{}
}

func (self *sepolia) GetNativeTokenSymbol() string {
	return "ETH"
}

func (self *sepolia) GetNativeTokenDecimal() int64 {
	return 18
}

func (self *sepolia) GetBlockTime() time.Duration {
	return 12 * time.Second
}

func (self *sepolia) GetNodeVariableName() string {
	return "SEPOLIA_NODE"
}

func (self *sepolia) GetDefaultNodes() map[string]string {
	return map[string]string{
		"sepolia-public": "https://ethereum-sepolia-rpc.publicnode.com",
		"sepolia-drpc":   "https://sepolia.drpc.org",
	}
}

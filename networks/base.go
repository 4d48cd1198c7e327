package networks

import (
	"time"
)

var BaseMainnet Network = &baseMainnet{}

type baseMainnet struct{}

func (self *baseMainnet) GetName() string {
	return "base"
}

func (self *baseMainnet) GetChainID() uint64 {
	return 8453
}

func (self *baseMainnet) GetAlternativeNames() []string {
	return []string{}
}

func (self *baseMainnet) GetNativeTokenSymbol() string {
	return "ETH"
}

func (self *baseMainnet) GetNativeTokenDecimal() int64 {
	return 18
}

func (self *baseMainnet) GetBlockTime() time.Duration {
	return 2 * time.Second
}

func (self *baseMainnet) GetNodeVariableName() string {
	return "BASE_MAINNET_NODE"
}

func (self *baseMainnet) GetDefaultNodes() map[string]string {
	return map[string]string{
		"base-official": "https://mainnet.base.org",
		"base-llama":    "https://base.llamarpc.com",
	}
}

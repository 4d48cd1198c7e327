package networks

import (
	"time"
)

var ZksyncSepolia Network = &zksyncSepolia{}

type zksyncSepolia struct{}

func (self *zksyncSepolia) GetName() string {
	return "zksync-sepolia"
}

func (self *zksyncSepolia) GetChainID() uint64 {
	return 300
}

func (self *zksyncSepolia) GetAlternativeNames() []string {
	return []string{}
}

func (self *zksyncSepolia) GetNativeTokenSymbol() string {
	return "ETH"
}

func (self *zksyncSepolia) GetNativeTokenDecimal() int64 {
	return 18
}

func (self *zksyncSepolia) GetBlockTime() time.Duration {
	return 1 * time.Second
}

func (self *zksyncSepolia) GetNodeVariableName() string {
	return "ZKSYNC_SEPOLIA_NODE"
}

func (self *zksyncSepolia) GetDefaultNodes() map[string]string {
	return map[string]string{
		"zksync-sepolia-official": "https://sepolia.era.zksync.dev",
	}
}

package networks

import (
	"time"
)

var ZksyncEra Network = &zksyncEra{}

type zksyncEra struct{}

func (self *zksyncEra) GetName() string {
	return "zksync"
}

func (self *zksyncEra) GetChainID() uint64 {
	return 324
}

func (self *zksyncEra) GetAlternativeNames() []string {
	return []string{"zksync-era"}
}

func (self *zksyncEra) GetNativeTokenSymbol() string {
	return "ETH"
}

func (self *zksyncEra) GetNativeTokenDecimal() int64 {
	return 18
}

func (self *zksyncEra) GetBlockTime() time.Duration {
	return 1 * time.Second
}

func (self *zksyncEra) GetNodeVariableName() string {
	return "ZKSYNC_ERA_NODE"
}

func (self *zksyncEra) GetDefaultNodes() map[string]string {
	return map[string]string{
		"zksync-official": "https://mainnet.era.zksync.io",
	}
}

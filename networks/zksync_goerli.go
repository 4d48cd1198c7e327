package networks

import (
	"time"
)

// ZksyncGoerli is long deprecated upstream but its chain id still classifies
// as a zksync chain, so we keep it for offline derivation.
var ZksyncGoerli Network = &zksyncGoerli{}

type zksyncGoerli struct{}

func (self *zksyncGoerli) GetName() string {
	return "zksync-goerli"
}

func (self *zksyncGoerli) GetChainID() uint64 {
	return 280
}

func (self *zksyncGoerli) GetAlternativeNames() []string {
	return []string{}
}

func (self *zksyncGoerli) GetNativeTokenSymbol() string {
	return "ETH"
}

func (self *zksyncGoerli) GetNativeTokenDecimal() int64 {
	return 18
}

func (self *zksyncGoerli) GetBlockTime() time.Duration {
	return 1 * time.Second
}

func (self *zksyncGoerli) GetNodeVariableName() string {
	return "ZKSYNC_GOERLI_NODE"
}

func (self *zksyncGoerli) GetDefaultNodes() map[string]string {
	return map[string]string{
		"zksync-goerli-official": "https://testnet.era.zksync.dev",
	}
}

// Package deriver computes the deterministic deployment address of a smart
// account produced by a factory contract. Two paths share the salt digest:
// standard EVM chains delegate the final computation to the factory's view
// function, zksync family chains are computed fully offline with zksync's
// own create2 formula.
package deriver

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// ContractCallerProvider hands out a contract-call channel for a chain id.
// The deriver never sees the registry's contents, only this capability, so
// callers can plug in custom registries or fakes.
type ContractCallerProvider interface {
	ContractCaller(chainID uint64) (ContractCaller, error)
}

// Request carries the raw user inputs of one derivation. Addresses are hex
// strings so validation happens in one place, inside Derive.
type Request struct {
	Factory        string
	Implementation string
	Owner          string
	Salt           string
	ChainID        uint64
}

// Report is the complete result of one derivation: the echoed inputs, the
// salt digest both paths consumed, which path ran and the resolved address.
type Report struct {
	Factory        common.Address `json:"factory"`
	Implementation common.Address `json:"implementation"`
	Owner          common.Address `json:"owner"`
	Salt           string         `json:"salt"`
	SaltDigest     common.Hash    `json:"salt_digest"`
	ChainID        uint64         `json:"chain_id"`
	Class          ChainClass     `json:"path"`
	Address        common.Address `json:"address"`
}

// MarshalJSON serializes ChainClass as its lowercase path name so JSON
// consumers see "evm"/"zksync" rather than an enum number.
func (c ChainClass) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// ParseAddress decodes a 0x-prefixed hex string into an address, insisting on
// exactly 20 bytes. Casing is ignored: checksummed and lowercase forms of the
// same address are identical inputs.
func ParseAddress(s string) (common.Address, error) {
	s = strings.TrimSpace(s)
	b, err := hexutil.Decode(s)
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: %q: %s", ErrMalformedAddress, s, err)
	}
	if len(b) != common.AddressLength {
		return common.Address{}, fmt.Errorf("%w: %q decodes to %d bytes, want %d",
			ErrMalformedAddress, s, len(b), common.AddressLength)
	}
	return common.BytesToAddress(b), nil
}

// Deriver validates inputs, classifies the chain once and dispatches to the
// matching resolver. It is stateless: concurrent Derive calls are safe.
type Deriver struct {
	callers ContractCallerProvider
}

func NewDeriver(callers ContractCallerProvider) *Deriver {
	return &Deriver{callers: callers}
}

// Derive runs one full derivation. All errors are terminal for the request,
// nothing is retried and no partial report is returned.
func (d *Deriver) Derive(req Request) (*Report, error) {
	if strings.TrimSpace(req.Owner) == "" {
		return nil, ErrMissingOwner
	}

	factory, err := ParseAddress(req.Factory)
	if err != nil {
		return nil, fmt.Errorf("factory address: %w", err)
	}
	implementation, err := ParseAddress(req.Implementation)
	if err != nil {
		return nil, fmt.Errorf("implementation address: %w", err)
	}
	owner, err := ParseAddress(req.Owner)
	if err != nil {
		return nil, fmt.Errorf("owner address: %w", err)
	}

	report := &Report{
		Factory:        factory,
		Implementation: implementation,
		Owner:          owner,
		Salt:           req.Salt,
		SaltDigest:     HashSalt([]byte(req.Salt)),
		ChainID:        req.ChainID,
		Class:          ClassifyChain(req.ChainID),
	}

	switch report.Class {
	case ZkSyncChain:
		report.Address, err = ResolveZkSyncAddress(factory, implementation, owner, report.SaltDigest)
	default:
		var caller ContractCaller
		caller, err = d.callers.ContractCaller(req.ChainID)
		if err != nil {
			return nil, fmt.Errorf("%w: chain id %d: %s", ErrUnsupportedChain, req.ChainID, err)
		}
		report.Address, err = ResolveEVMAddress(caller, factory, owner, report.SaltDigest)
	}
	if err != nil {
		return nil, err
	}
	return report, nil
}

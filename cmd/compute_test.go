package cmd

import (
	"errors"
	"fmt"
	"testing"

	"github.com/tranvictor/accountaddr/config"
	"github.com/tranvictor/accountaddr/deriver"
	"github.com/tranvictor/accountaddr/ui"
)

const (
	testFactory        = "0x1234567890123456789012345678901234567890"
	testImplementation = "0x0987654321098765432109876543210987654321"
	testOwner          = "0xabcdefabcdefabcdefabcdefabcdefabcdefabcd"
)

// offlineProvider fails every lookup so any test reaching for the network
// fails loudly.
type offlineProvider struct{}

func (offlineProvider) ContractCaller(chainID uint64) (deriver.ContractCaller, error) {
	return nil, fmt.Errorf("no network in tests")
}

func setChain(t *testing.T, chainID uint64) {
	t.Helper()
	prevChain, prevJSON := config.ChainID, config.JSONOutput
	config.ChainID = chainID
	config.JSONOutput = false
	t.Cleanup(func() {
		config.ChainID = prevChain
		config.JSONOutput = prevJSON
	})
}

func TestRunComputeZkSyncSingleSalt(t *testing.T) {
	setChain(t, 324)
	u := ui.NewRecordingUI()
	d := deriver.NewDeriver(offlineProvider{})

	err := runCompute(u, d, []string{testFactory, testImplementation, testOwner, "salt"})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if !u.HasMessage("0x7455d7950BE14C1Edfa7e86f4E71E389b657f3C1") {
		t.Errorf("report doesn't show the resolved address, entries: %v", u.Entries())
	}
	if !u.HasMessage("0xa05e334153147e75f3f416139b5109d1179cb56fef6a4ecb4c4cbc92a7c37b70") {
		t.Errorf("report doesn't show the salt digest")
	}
	if !u.HasMessage("zksync") {
		t.Errorf("report doesn't show which path was used")
	}
}

func TestRunComputeBatchSalts(t *testing.T) {
	setChain(t, 324)
	u := ui.NewRecordingUI()
	d := deriver.NewDeriver(offlineProvider{})

	err := runCompute(u, d, []string{testFactory, testImplementation, testOwner, "salt", "account-1"})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if !u.HasMessage("0x7455d7950BE14C1Edfa7e86f4E71E389b657f3C1") {
		t.Errorf("batch report misses the first salt's address")
	}
	if !u.HasMessage("0x126206C7d7D06D01AE4Fd1161b1Af878832F3b9F") {
		t.Errorf("batch report misses the second salt's address")
	}
	if !u.HasMessage("0xc626db8fae0e15b507ee3e967308b5ab0659f45a8a2780345def896d1e887ccd") {
		t.Errorf("batch report misses the second salt's digest")
	}
}

func TestRunComputeMissingOwner(t *testing.T) {
	setChain(t, 324)
	u := ui.NewRecordingUI()
	d := deriver.NewDeriver(offlineProvider{})

	err := runCompute(u, d, []string{testFactory, testImplementation, "", "salt"})
	if !errors.Is(err, deriver.ErrMissingOwner) {
		t.Errorf("got error %v, want ErrMissingOwner", err)
	}
	if u.HasMessage("0x7455d7950BE14C1Edfa7e86f4E71E389b657f3C1") {
		t.Errorf("an address was printed despite the error")
	}
}

func TestRunComputeUnsupportedChain(t *testing.T) {
	setChain(t, 999999)
	u := ui.NewRecordingUI()
	d := deriver.NewDeriver(offlineProvider{})

	err := runCompute(u, d, []string{testFactory, testImplementation, testOwner, "salt"})
	if !errors.Is(err, deriver.ErrUnsupportedChain) {
		t.Errorf("got error %v, want ErrUnsupportedChain", err)
	}
}

package cmd

import (
	"testing"

	"github.com/tranvictor/accountaddr/ui"
)

func lastEntry(t *testing.T, u *ui.RecordingUI) ui.Entry {
	t.Helper()
	entries := u.Entries()
	if len(entries) == 0 {
		t.Fatal("no ui output recorded")
	}
	return entries[len(entries)-1]
}

func TestRunAddNetworkRequiresConfig(t *testing.T) {
	u := ui.NewRecordingUI()
	runAddNetwork(u, "", false)

	if e := lastEntry(t, u); e.Method != "Error" {
		t.Errorf("missing config reported via %s, want Error", e.Method)
	}
	if !u.HasMessage("No network config provided") {
		t.Errorf("missing config not reported, entries: %v", u.Entries())
	}
}

func TestRunAddNetworkRejectsInvalidJSON(t *testing.T) {
	u := ui.NewRecordingUI()
	runAddNetwork(u, "{not json}", false)

	if e := lastEntry(t, u); e.Method != "Error" {
		t.Errorf("invalid json reported via %s, want Error", e.Method)
	}
	if u.HasMessage("added and saved") {
		t.Errorf("invalid config was reported as added")
	}
}

func TestRunAddNetworkRejectsUnreadableFile(t *testing.T) {
	u := ui.NewRecordingUI()
	runAddNetwork(u, "/no/such/network.json", false)

	if e := lastEntry(t, u); e.Method != "Error" {
		t.Errorf("unreadable file reported via %s, want Error", e.Method)
	}
}

func TestRunAddNetworkRefusesExistingWithoutForce(t *testing.T) {
	u := ui.NewRecordingUI()
	runAddNetwork(u, `{"name": "mainnet", "chain_id": 1}`, false)

	if e := lastEntry(t, u); e.Method != "Error" {
		t.Errorf("duplicate network reported via %s, want Error", e.Method)
	}
	if !u.HasMessage("already exists") {
		t.Errorf("duplicate network not reported, entries: %v", u.Entries())
	}
	if u.HasMessage("added and saved") {
		t.Errorf("duplicate network was reported as added")
	}
}

// mediahub/client/likes_test.go
package client

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLedgerPersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "liked_items.json")

	ledger, err := OpenLedger(path)
	if err != nil {
		t.Fatalf("OpenLedger failed: %v", err)
	}
	if ledger.Liked("file_1") {
		t.Error("Fresh ledger should not have any likes")
	}
	if err := ledger.Mark("file_1"); err != nil {
		t.Fatalf("Mark failed: %v", err)
	}
	if !ledger.Liked("file_1") {
		t.Error("Mark should be visible immediately")
	}

	reopened, err := OpenLedger(path)
	if err != nil {
		t.Fatalf("Reopening ledger failed: %v", err)
	}
	if !reopened.Liked("file_1") {
		t.Error("Likes should survive a reopen")
	}
	if reopened.Liked("file_2") {
		t.Error("Unliked content marked as liked after reopen")
	}
}

func TestLedgerCorruptFileStartsFresh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "liked_items.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatalf("Failed to write corrupt ledger: %v", err)
	}

	ledger, err := OpenLedger(path)
	if err != nil {
		t.Fatalf("OpenLedger should tolerate corrupt content: %v", err)
	}
	if ledger.Liked("anything") {
		t.Error("Corrupt ledger should start empty")
	}
	if err := ledger.Mark("file_1"); err != nil {
		t.Fatalf("Mark after corrupt open failed: %v", err)
	}
}

package auth

import (
	"path/filepath"
	"testing"

	"github.com/Cassandrat897/keepy-app/internal/db"
)

func openTestKV(t *testing.T) *db.KV {
	t.Helper()
	kv, err := db.Open(filepath.Join(t.TempDir(), "keepy.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { kv.Close() })
	return kv
}

func TestGateUnlock(t *testing.T) {
	kv := openTestKV(t)
	gate := NewGate(kv, "secret")

	if gate.Unlocked() {
		t.Error("fresh gate should be locked")
	}
	if gate.Unlock("wrong") {
		t.Error("wrong code accepted")
	}
	if gate.Unlocked() {
		t.Error("gate unlocked after failed attempt")
	}
	if !gate.Unlock("secret") {
		t.Fatal("correct code rejected")
	}
	if !gate.Unlocked() {
		t.Error("gate still locked after unlock")
	}
}

func TestGateUnlockPersists(t *testing.T) {
	kv := openTestKV(t)
	NewGate(kv, "secret").Unlock("secret")

	// A fresh gate over the same storage sees the unlocked flag.
	if !NewGate(kv, "secret").Unlocked() {
		t.Error("unlocked state not persisted")
	}
}

func TestGateLock(t *testing.T) {
	kv := openTestKV(t)
	gate := NewGate(kv, "secret")
	gate.Unlock("secret")
	gate.Lock()
	if gate.Unlocked() {
		t.Error("gate still unlocked after Lock")
	}
}

func TestGateDefaultCode(t *testing.T) {
	kv := openTestKV(t)
	gate := NewGate(kv, "")
	if !gate.Unlock(DefaultAccessCode) {
		t.Error("default access code rejected when config sets none")
	}
}

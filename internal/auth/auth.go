// Package auth is the access gate: a static shared-secret compared for
// equality, with the unlocked flag persisted alongside the data. This is a
// soft lock for casual privacy, not an authentication system.
package auth

import (
	"github.com/Cassandrat897/keepy-app/internal/db"
	"github.com/Cassandrat897/keepy-app/internal/logger"
)

// DefaultAccessCode is used when the config does not set one.
const DefaultAccessCode = "Keepy@26"

// Gate checks access codes and remembers the unlocked state.
type Gate struct {
	kv   *db.KV
	code string
}

// NewGate builds a gate for the given access code; an empty code falls
// back to the default.
func NewGate(kv *db.KV, code string) *Gate {
	if code == "" {
		code = DefaultAccessCode
	}
	return &Gate{kv: kv, code: code}
}

// Unlocked reports whether the app is currently unlocked.
func (g *Gate) Unlocked() bool {
	v, ok, err := g.kv.Get(db.KeyAuth)
	if err != nil {
		logger.Warn("Failed to read auth flag", logger.F("error", err))
		return false
	}
	return ok && v == "true"
}

// Unlock compares the code and persists the flag on a match.
func (g *Gate) Unlock(code string) bool {
	if code != g.code {
		return false
	}
	if err := g.kv.Set(db.KeyAuth, "true"); err != nil {
		logger.Warn("Failed to persist auth flag", logger.F("error", err))
	}
	return true
}

// Lock clears the unlocked flag.
func (g *Gate) Lock() {
	if err := g.kv.Set(db.KeyAuth, "false"); err != nil {
		logger.Warn("Failed to persist auth flag", logger.F("error", err))
	}
}

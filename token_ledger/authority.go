package token_ledger

import (
	"crypto/sha256"
	"encoding/hex"
)

// DeriveAuthority computes a keyless principal identifier from the given
// seeds. The same seeds always yield the same identifier, so any party can
// recompute it, but only a transfer whose authority equals the recomputed
// value can move funds out of a holding owned by it.
func DeriveAuthority(seeds ...[]byte) string {
	h := sha256.New()
	for _, seed := range seeds {
		h.Write(seed)
	}
	return hex.EncodeToString(h.Sum(nil))
}

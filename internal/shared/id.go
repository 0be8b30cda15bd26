package shared

import (
	"encoding/hex"

	"github.com/google/uuid"
)

// NewID returns an identifier of the form "<prefix>_<12 hex chars>".
// Ledger records use the prefixes "IH" (inventory history) and "S" (sales);
// the shape matches identifiers found in existing snapshots.
func NewID(prefix string) string {
	u := uuid.New()
	return prefix + "_" + hex.EncodeToString(u[:])[:12]
}

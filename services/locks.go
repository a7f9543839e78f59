package services

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// acquireSlotLock serializes transactions that share a counted quota slot.
// Under read committed two transactions can both pass a COUNT-based check
// before either commits, so the re-count is only authoritative when writers
// to the same slot are mutually exclusive. On postgres that is a
// transaction-scoped advisory lock keyed by the slot; sqlite admits a single
// writer at a time and needs none.
func acquireSlotLock(tx *gorm.DB, parts ...string) error {
	if tx.Dialector.Name() != "postgres" {
		return nil
	}
	key := strings.Join(parts, "/")
	if err := tx.Exec("SELECT pg_advisory_xact_lock(hashtextextended(?, 0))", key).Error; err != nil {
		return fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
	}
	return nil
}

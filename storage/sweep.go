package storage

import (
	"context"
	"log"

	"api/models"

	"gorm.io/gorm"
)

// SweepOrphans deletes blobs under the given prefix that no photo row references.
// Orphans appear when the process crashes between the blob write and the row
// insert; rows are only committed after a successful blob write, so the sweep
// never removes a blob a row still points at while holding the listing snapshot.
// It is invoked out-of-band (cron or admin action), never from the request path.
func SweepOrphans(ctx context.Context, db *gorm.DB, store BlobStore, prefix string) (int, error) {
	keys, err := store.List(ctx, prefix)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, key := range keys {
		var count int64
		if err := db.Model(&models.Photo{}).Where("file_path = ?", key).Count(&count).Error; err != nil {
			return removed, err
		}
		if count > 0 {
			continue
		}
		if err := store.Delete(ctx, key); err != nil {
			log.Printf("orphan sweep: failed to delete %s: %v", key, err)
			continue
		}
		removed++
	}
	return removed, nil
}

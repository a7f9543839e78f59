package services

import (
	"context"
	"fmt"
	"log"

	"api/metrics"
	"api/storage"
)

// UploadSaga coordinates the two-step write of a photo submission: first the
// blob goes to the object store, then the row is inserted. When the insert
// fails the blob is removed again so no committed row ever references a
// missing object. The converse (an orphaned blob after a crash) is permitted
// and reclaimed by storage.SweepOrphans.
type UploadSaga struct {
	Store       storage.BlobStore
	Key         string
	Data        []byte
	ContentType string
	Metadata    map[string]string

	written bool
}

// WriteBlob performs the first saga step
func (s *UploadSaga) WriteBlob(ctx context.Context) error {
	if err := s.Store.Put(ctx, s.Key, s.Data, s.ContentType, s.Metadata); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageWriteFailed, err)
	}
	s.written = true
	return nil
}

// Compensate deletes the blob written by WriteBlob. It is best-effort: a
// failed compensation is logged and counted but never masks the error that
// triggered it, the orphan is picked up by the sweep instead.
func (s *UploadSaga) Compensate(ctx context.Context) {
	if !s.written {
		return
	}
	if err := s.Store.Delete(ctx, s.Key); err != nil {
		metrics.CompensationFailures.Inc()
		log.Printf("saga compensation: failed to delete blob %s: %v", s.Key, err)
		return
	}
	metrics.Compensations.Inc()
	s.written = false
}

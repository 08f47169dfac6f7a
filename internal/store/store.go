package store

import (
	"encoding/json"
	"sync"

	"github.com/mitchellh/hashstructure/v2"

	"github.com/julianstephens/vitalog/internal/logger"
	"github.com/julianstephens/vitalog/internal/models"
	"github.com/julianstephens/vitalog/internal/storage"
	"github.com/julianstephens/vitalog/internal/utils"
)

// Store is the exclusive owner of the in-memory document. Every mutation is
// applied atomically under a single mutex and followed by a fire-and-forget
// persistence write of a point-in-time snapshot; the in-memory document is
// always authoritative for the running session. Reads hand out deep copies.
type Store struct {
	mu      sync.Mutex
	doc     *models.AppDocument
	adapter storage.Adapter

	// persistence pump
	wg       sync.WaitGroup
	writeMu  sync.Mutex
	seq      uint64 // last scheduled snapshot, under mu
	written  uint64 // newest snapshot on disk, under writeMu
	lastHash uint64
}

// Open loads the document from the adapter (falling back to a seeded default
// per the persistence contract) and returns a store owning it.
func Open(adapter storage.Adapter) *Store {
	doc := storage.Load(adapter, utils.Today())
	return &Store{doc: doc, adapter: adapter}
}

// persistLocked serializes the current document and hands the bytes to a
// background write. Callers must hold s.mu. Writes are skipped when the
// document content is unchanged since the last scheduled write.
func (s *Store) persistLocked() {
	hash, err := hashstructure.Hash(s.doc, hashstructure.FormatV2, nil)
	if err == nil && hash == s.lastHash {
		return
	}
	if err == nil {
		s.lastHash = hash
	}

	data, err := json.Marshal(s.doc)
	if err != nil {
		logger.Error("Failed to serialize document", "error", err)
		return
	}

	s.seq++
	seq := s.seq
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.writeMu.Lock()
		defer s.writeMu.Unlock()
		// Goroutines are not scheduled in spawn order, so an older snapshot
		// can reach this point after a newer one has already been written.
		// Dropping it keeps the newest applied mutation on disk.
		if seq < s.written {
			return
		}
		s.written = seq
		if err := s.adapter.Write(data); err != nil {
			// Best-effort persistence: log and carry on, the in-memory
			// document remains authoritative.
			logger.Error("Failed to persist document", "error", err)
		}
	}()
}

// Flush blocks until all scheduled persistence writes have settled. Normal
// callers never need this; tests and process shutdown do.
func (s *Store) Flush() {
	s.wg.Wait()
}

// StoragePath returns the location backing the store's adapter.
func (s *Store) StoragePath() string {
	return s.adapter.Path()
}

// ensureLog returns the log for date, creating a fully-defaulted one when
// absent. Callers must hold s.mu.
func (s *Store) ensureLog(date string) *models.DailyLog {
	log, ok := s.doc.Logs[date]
	if !ok {
		log = models.NewDailyLog(date)
		s.doc.Logs[date] = log
	}
	return log
}

package storage

import (
	"encoding/json"
	"errors"

	"github.com/julianstephens/vitalog/internal/logger"
	"github.com/julianstephens/vitalog/internal/models"
)

// ErrNotFound is returned by an adapter when no document has been stored yet.
var ErrNotFound = errors.New("no document stored")

// Adapter persists the serialized application document under a single fixed
// key. Implementations are raw byte stores; decoding, defaulting, and
// migration live in Load.
type Adapter interface {
	Read() ([]byte, error)
	Write(data []byte) error
	Close() error
	// Path returns the location backing this adapter, used for backups and
	// diagnostics.
	Path() string
}

// Load decodes the stored document, backfills fields added by later schema
// versions, and guarantees a log exists for today. It never fails: an empty,
// corrupt, or unreadable store yields a freshly seeded default document.
func Load(a Adapter, today string) *models.AppDocument {
	raw, err := a.Read()
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			logger.Warn("Failed to read stored document, starting fresh", "error", err)
		}
		return models.NewDocument(today)
	}

	doc := &models.AppDocument{}
	if err := json.Unmarshal(raw, doc); err != nil {
		logger.Warn("Stored document is unparsable, starting fresh", "error", err)
		return models.NewDocument(today)
	}

	doc.Normalize(today)
	return doc
}

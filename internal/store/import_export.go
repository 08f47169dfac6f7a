package store

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/julianstephens/vitalog/internal/constants"
	"github.com/julianstephens/vitalog/internal/models"
	"github.com/julianstephens/vitalog/internal/utils"
)

//go:embed document_schema.json
var documentSchema []byte

// ValidationError is returned when an imported document fails validation.
// The current document is left untouched.
type ValidationError struct {
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid document: %s", e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

var compiledSchema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(documentSchema))
	if err != nil {
		panic(fmt.Sprintf("document schema is unparsable: %v", err))
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource("document_schema.json", doc); err != nil {
		panic(fmt.Sprintf("document schema is invalid: %v", err))
	}
	sch, err := c.Compile("document_schema.json")
	if err != nil {
		panic(fmt.Sprintf("document schema does not compile: %v", err))
	}
	return sch
}

// Export serializes a snapshot of the whole document. It never mutates the
// live document.
func (s *Store) Export() ([]byte, error) {
	doc := s.Document()
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize document: %w", err)
	}
	return data, nil
}

// ExportFilename returns the date-stamped name for an export file.
func ExportFilename(now time.Time) string {
	return constants.ExportFilePrefix + now.Format(constants.DateFormat) + ".json"
}

// Import validates the given serialized document and, only if valid, fully
// replaces the in-memory document and persists it. Partial or invalid input
// leaves the current document untouched and yields a *ValidationError.
func (s *Store) Import(data []byte) error {
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return &ValidationError{Reason: "not valid JSON", Err: err}
	}
	if err := compiledSchema.Validate(inst); err != nil {
		return &ValidationError{Reason: err.Error(), Err: err}
	}

	doc := &models.AppDocument{}
	if err := json.Unmarshal(data, doc); err != nil {
		return &ValidationError{Reason: "document shape mismatch", Err: err}
	}
	doc.Normalize(utils.Today())

	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = doc
	s.persistLocked()
	return nil
}

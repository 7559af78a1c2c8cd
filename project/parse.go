package project

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Import validation errors. An import failure leaves any currently loaded
// project untouched - Parse never returns a partially built document.
var (
	ErrNoVersion = errors.New("project document has no version")
	ErrNoScreens = errors.New("project document has no screens array")
)

// probe is used to distinguish absent fields from zero values before the
// full document is decoded.
type probe struct {
	Version *int              `json:"version"`
	Screens []json.RawMessage `json:"screens"`
}

// Parse deserializes and validates a project JSON document.
//
// Validation is deliberately minimal (a version and a screens array must be
// present); everything else degrades during compilation instead of failing
// the import. Missing identifiers are repaired with fresh UUIDs so anchors
// stay unique in the compiled output.
func Parse(data []byte, log *zap.Logger) (*Project, error) {
	var pr probe
	if err := json.Unmarshal(data, &pr); err != nil {
		return nil, fmt.Errorf("unable to decode project document: %w", err)
	}
	if pr.Version == nil {
		return nil, ErrNoVersion
	}
	if pr.Screens == nil {
		return nil, ErrNoScreens
	}

	var p Project
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("unable to decode project document: %w", err)
	}
	p.repairIDs(log)
	return &p, nil
}

// Export serializes the project for download/re-import. Round-trip fidelity
// is a hard requirement: Parse(Export(p)) must reconstruct an equivalent
// document.
func (p *Project) Export() ([]byte, error) {
	buf := new(bytes.Buffer)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return nil, fmt.Errorf("unable to serialize project document: %w", err)
	}
	return buf.Bytes(), nil
}

// New creates an empty project shell the way template instantiation does.
func New(title string) *Project {
	now := time.Now().UnixMilli()
	return &Project{
		Version:   SchemaVersion,
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
		Config:    Config{Title: title},
	}
}

// repairIDs assigns fresh ids to screens and elements missing them. Editor
// produced documents always carry ids, hand-written ones not necessarily.
func (p *Project) repairIDs(log *zap.Logger) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	for i := range p.Screens {
		s := &p.Screens[i]
		if s.ID == "" {
			s.ID = uuid.NewString()
			if log != nil {
				log.Debug("Assigned id to screen without one", zap.Int("index", i), zap.String("id", s.ID))
			}
		}
		for j := range s.Elements {
			if s.Elements[j].ID == "" {
				s.Elements[j].ID = uuid.NewString()
				if log != nil {
					log.Debug("Assigned id to element without one", zap.String("screen", s.ID), zap.String("id", s.Elements[j].ID))
				}
			}
		}
	}
}

// Package output writes submitted projects for downstream consumers.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/existflow/ironproject/internal/model"
	"gopkg.in/yaml.v3"
)

// Format selects the encoding of emitted projects
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// ParseFormat accepts "json", "yaml" or "yml"
func ParseFormat(s string) (Format, error) {
	switch s {
	case "json", "":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want json or yaml)", s)
	}
}

// Emitter writes each submitted project to w
type Emitter struct {
	w      io.Writer
	format Format
}

// NewEmitter creates an emitter writing to w in the given format
func NewEmitter(w io.Writer, format Format) *Emitter {
	return &Emitter{w: w, format: format}
}

// Emit encodes p. JSON output is indented and newline-terminated; YAML
// output is a single document.
func (e *Emitter) Emit(p model.Project) error {
	switch e.format {
	case YAML:
		enc := yaml.NewEncoder(e.w)
		enc.SetIndent(2)
		if err := enc.Encode(p); err != nil {
			return fmt.Errorf("failed to encode project as yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to flush yaml: %w", err)
		}
	default:
		enc := json.NewEncoder(e.w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(p); err != nil {
			return fmt.Errorf("failed to encode project as json: %w", err)
		}
	}
	return nil
}

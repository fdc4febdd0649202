package phase

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/passgame/pkg/validator"
)

// catalogFile is the YAML layout of a phase catalog:
//
//	phases:
//	  - number: 2
//	    message: Must contain a digit
//	    min_length: 6
//	    patterns:
//	      - regex: '\d'
//	        message: Must contain at least one digit
//	    refinements:
//	      - name: digit_sum
//	        arg: "25"
//	        message: Digits must add up to 25
type catalogFile struct {
	Phases []phaseEntry `yaml:"phases"`
}

type phaseEntry struct {
	Number      int               `yaml:"number"`
	Message     string            `yaml:"message"`
	MinLength   *int              `yaml:"min_length"`
	MinMessage  string            `yaml:"min_message"`
	MaxLength   *int              `yaml:"max_length"`
	MaxMessage  string            `yaml:"max_message"`
	Patterns    []patternEntry    `yaml:"patterns"`
	Refinements []refinementEntry `yaml:"refinements"`
}

type patternEntry struct {
	Regex   string `yaml:"regex"`
	Message string `yaml:"message"`
}

type refinementEntry struct {
	Name    string `yaml:"name"`
	Arg     string `yaml:"arg"`
	Message string `yaml:"message"`
}

// LoadCatalog decodes a YAML phase catalog and builds its schemas.
// Refinement names are resolved through refinements; pass nil to use
// DefaultRefinements. Unknown YAML fields are rejected.
func LoadCatalog(r io.Reader, refinements Refinements) ([]Phase, error) {
	if refinements == nil {
		refinements = DefaultRefinements()
	}

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file catalogFile
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyCatalog
		}
		return nil, errors.Join(ErrInvalidCatalog, err)
	}
	if len(file.Phases) == 0 {
		return nil, ErrEmptyCatalog
	}

	phases := make([]Phase, 0, len(file.Phases))
	for i, entry := range file.Phases {
		p, err := entry.build(refinements)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: %w", ErrInvalidCatalog, i, err)
		}
		phases = append(phases, p)
	}
	return phases, nil
}

// LoadCatalogFile reads a catalog from path. See LoadCatalog.
func LoadCatalogFile(path string, refinements Refinements) ([]Phase, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Join(ErrInvalidCatalog, err)
	}
	defer f.Close()

	return LoadCatalog(f, refinements)
}

func (s phaseEntry) build(refinements Refinements) (Phase, error) {
	if s.Number <= 0 {
		return Phase{}, fmt.Errorf("%w: got %d", ErrInvalidPhaseNumber, s.Number)
	}

	schema := validator.String()
	if s.MinLength != nil {
		schema.Min(*s.MinLength, s.MinMessage)
	}
	if s.MaxLength != nil {
		schema.Max(*s.MaxLength, s.MaxMessage)
	}
	for _, ps := range s.Patterns {
		re, err := validator.CompilePattern(ps.Regex)
		if err != nil {
			return Phase{}, fmt.Errorf("phase %d: %w", s.Number, err)
		}
		schema.Regex(re, ps.Message)
	}
	for _, rs := range s.Refinements {
		check, err := refinements.Build(rs.Name, rs.Arg)
		if err != nil {
			return Phase{}, fmt.Errorf("phase %d: %w", s.Number, err)
		}
		schema.Refine(check, rs.Message)
	}

	return Phase{Number: s.Number, Schema: schema, Message: s.Message}, nil
}

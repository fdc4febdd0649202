package passwordgame

import (
	"bytes"
	_ "embed"

	"github.com/dmitrymomot/passgame/pkg/phase"
)

//go:embed phases.yaml
var phasesYAML []byte

// DefaultPhases decodes the bundled twenty-phase catalogue using the
// default refinement registry.
func DefaultPhases() ([]phase.Phase, error) {
	return phase.LoadCatalog(bytes.NewReader(phasesYAML), phase.DefaultRefinements())
}

// DefaultGate returns a gate with every bundled phase registered.
func DefaultGate() (*phase.Gate, error) {
	phases, err := DefaultPhases()
	if err != nil {
		return nil, err
	}
	return phase.NewGate(phases...), nil
}

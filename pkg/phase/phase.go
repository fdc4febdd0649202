package phase

import (
	"fmt"
	"slices"

	"github.com/dmitrymomot/passgame/pkg/validator"
)

// Phase is a numbered checkpoint bundling one schema and the label shown to
// the player.
type Phase struct {
	Number  int
	Schema  *validator.StringSchema
	Message string
}

// Status is the pass/fail outcome of one phase.
type Status struct {
	Number  int  `json:"number"`
	IsValid bool `json:"is_valid"`
}

// Check is a Status enriched with the phase label and the detailed errors.
type Check struct {
	Number  int                        `json:"number"`
	Message string                     `json:"message"`
	IsValid bool                       `json:"is_valid"`
	Errors  validator.ValidationErrors `json:"errors,omitempty"`
}

// Gate evaluates an ordered list of phases. Phases are registered during
// setup; afterwards a Gate is read-only and safe for concurrent evaluation.
type Gate struct {
	phases []Phase
}

// NewGate returns a gate with the given phases registered in order.
func NewGate(phases ...Phase) *Gate {
	g := &Gate{phases: make([]Phase, 0, len(phases))}
	for _, p := range phases {
		g.Register(p)
	}
	return g
}

// Register appends a phase. Ascending numbers are expected but not enforced
// and duplicates are kept.
// Panics on a non-positive number or a nil schema.
func (g *Gate) Register(p Phase) {
	if p.Number <= 0 {
		panic(fmt.Sprintf("phase: number must be positive, got %d", p.Number))
	}
	if p.Schema == nil {
		panic(fmt.Sprintf("phase: phase %d has nil schema", p.Number))
	}
	g.phases = append(g.phases, p)
}

// Phases returns a copy of the registered phases in registration order.
func (g *Gate) Phases() []Phase {
	return slices.Clone(g.phases)
}

// Len returns the number of registered phases.
func (g *Gate) Len() int {
	return len(g.phases)
}

// EvaluateUpTo evaluates input against every phase numbered at or below
// current, preserving registration order. Only pass/fail survives.
func (g *Gate) EvaluateUpTo(current int, input string) []Status {
	out := make([]Status, 0, len(g.phases))
	for _, p := range g.phases {
		if p.Number > current {
			continue
		}
		out = append(out, Status{
			Number:  p.Number,
			IsValid: validator.Evaluate(p.Schema, input).Valid,
		})
	}
	return out
}

// Checklist is EvaluateUpTo keeping each phase's label and errors.
func (g *Gate) Checklist(current int, input string) []Check {
	out := make([]Check, 0, len(g.phases))
	for _, p := range g.phases {
		if p.Number > current {
			continue
		}
		res := validator.Evaluate(p.Schema, input)
		out = append(out, Check{
			Number:  p.Number,
			Message: p.Message,
			IsValid: res.Valid,
			Errors:  res.Errors,
		})
	}
	return out
}

// EvaluateAll evaluates a batch of value/schema pairs, relabelling every
// error's Path with the pair's Group. See validator.ParseAll.
func (g *Gate) EvaluateAll(inputs ...validator.Input) validator.Result[struct{}] {
	return validator.ParseAll(inputs...)
}

// Next returns the smallest registered phase number greater than current.
func (g *Gate) Next(current int) (int, bool) {
	next, found := 0, false
	for _, p := range g.phases {
		if p.Number > current && (!found || p.Number < next) {
			next, found = p.Number, true
		}
	}
	return next, found
}

// First returns the smallest registered phase number.
func (g *Gate) First() (int, bool) {
	return g.Next(0)
}

// Last returns the largest registered phase number.
func (g *Gate) Last() (int, bool) {
	last, found := 0, false
	for _, p := range g.phases {
		if !found || p.Number > last {
			last, found = p.Number, true
		}
	}
	return last, found
}

// AllValid reports whether statuses is non-empty and every entry passed.
func AllValid(statuses []Status) bool {
	if len(statuses) == 0 {
		return false
	}
	for _, s := range statuses {
		if !s.IsValid {
			return false
		}
	}
	return true
}

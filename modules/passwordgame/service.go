package passwordgame

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/dmitrymomot/passgame/pkg/logger"
	"github.com/dmitrymomot/passgame/pkg/phase"
	"github.com/dmitrymomot/passgame/pkg/validator"
)

// Progress is the outcome of checking a password at the player's current
// phase.
type Progress struct {
	Current   int            `json:"current"`
	Statuses  []phase.Status `json:"statuses"`
	Checklist []phase.Check  `json:"checklist"`
	// Passed is true when at least one phase was evaluated and all passed.
	Passed bool `json:"passed"`
	// Next is the phase unlocked by passing; zero when none is left.
	Next int `json:"next,omitempty"`
	// Completed is true when every registered phase has been passed.
	Completed bool `json:"completed"`
}

// PhaseInfo describes one phase for clients rendering the game.
type PhaseInfo struct {
	Number  int    `json:"number"`
	Message string `json:"message"`
}

// Group is one value checked against a single phase's rules in a batch.
type Group struct {
	Phase int `json:"phase"`
	Value any `json:"value"`
}

// Service plays the password game against a phase gate.
type Service struct {
	gate   *phase.Gate
	byNum  map[int]phase.Phase
	logger *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithLogger sets the service logger.
func WithLogger(log *slog.Logger) ServiceOption {
	return func(s *Service) {
		if log != nil {
			s.logger = log
		}
	}
}

// NewService creates a Service over gate. Panics on a nil gate.
func NewService(gate *phase.Gate, opts ...ServiceOption) *Service {
	if gate == nil {
		panic("passwordgame: nil gate")
	}
	s := &Service{
		gate:   gate,
		byNum:  make(map[int]phase.Phase, gate.Len()),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, p := range gate.Phases() {
		// first registration wins for lookups by number
		if _, ok := s.byNum[p.Number]; !ok {
			s.byNum[p.Number] = p
		}
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(logger.Component("passwordgame"))
	return s
}

// Evaluate checks password against every phase up to current.
func (s *Service) Evaluate(ctx context.Context, current int, password string) Progress {
	start := time.Now()

	checklist := s.gate.Checklist(current, password)
	statuses := make([]phase.Status, len(checklist))
	for i, c := range checklist {
		statuses[i] = phase.Status{Number: c.Number, IsValid: c.IsValid}
	}

	p := Progress{
		Current:   current,
		Statuses:  statuses,
		Checklist: checklist,
		Passed:    phase.AllValid(statuses),
	}
	if p.Passed {
		if next, ok := s.gate.Next(current); ok {
			p.Next = next
		} else {
			p.Completed = true
		}
	}

	s.logger.DebugContext(ctx, "password evaluated",
		logger.Phase(current),
		slog.Bool("passed", p.Passed),
		slog.Int("evaluated", len(statuses)),
		logger.Duration(time.Since(start)),
	)
	return p
}

// Phases lists the registered phases in registration order.
func (s *Service) Phases() []PhaseInfo {
	phases := s.gate.Phases()
	out := make([]PhaseInfo, len(phases))
	for i, p := range phases {
		out[i] = PhaseInfo{Number: p.Number, Message: p.Message}
	}
	return out
}

// Validate checks every group against its phase's own rules and merges the
// failures. Each error's Path is "phase-N".
func (s *Service) Validate(ctx context.Context, groups []Group) (validator.Result[struct{}], error) {
	if len(groups) == 0 {
		return validator.Result[struct{}]{}, ErrNoGroups
	}

	inputs := make([]validator.Input, 0, len(groups))
	for _, g := range groups {
		p, ok := s.byNum[g.Phase]
		if !ok {
			return validator.Result[struct{}]{}, fmt.Errorf("%w: %d", ErrUnknownPhase, g.Phase)
		}
		inputs = append(inputs, validator.Input{
			Value:  g.Value,
			Schema: p.Schema,
			Group:  "phase-" + strconv.Itoa(p.Number),
		})
	}

	res := s.gate.EvaluateAll(inputs...)
	s.logger.DebugContext(ctx, "batch validated",
		slog.Int("groups", len(groups)),
		slog.Bool("valid", res.Valid),
	)
	return res, nil
}

package clicker

import (
	"math"
	"slices"
)

// MaxMultiplier caps the base multiplier.
const MaxMultiplier int64 = 1_000_000

// State is one player's click counter.
type State struct {
	Clicks int64 `json:"clicks"`
	// Multiplier is the base gain per click before power-ups.
	Multiplier int64     `json:"multiplier"`
	PowerUps   []PowerUp `json:"power_ups"`
}

// NewState returns a zero counter with base multiplier 1 and every
// power-up inactive.
func NewState() State {
	return State{Multiplier: 1, PowerUps: Catalog()}
}

// Gain is what one click adds: the base multiplier times the multiplier of
// every active power-up, saturating at math.MaxInt64.
func (s State) Gain() int64 {
	gain := s.Multiplier
	for _, p := range s.PowerUps {
		if p.Active {
			gain = mulSat(gain, p.Multiplier)
		}
	}
	return gain
}

// click adds one Gain to Clicks, saturating at math.MaxInt64.
func (s *State) click() {
	s.Clicks = addSat(s.Clicks, s.Gain())
}

// mulSat and addSat expect non-negative operands.
func mulSat(a, b int64) int64 {
	if a != 0 && b > math.MaxInt64/a {
		return math.MaxInt64
	}
	return a * b
}

func addSat(a, b int64) int64 {
	if b > math.MaxInt64-a {
		return math.MaxInt64
	}
	return a + b
}

// PowerUp returns the power-up stored under key.
func (s State) PowerUp(key string) (PowerUp, bool) {
	i := slices.IndexFunc(s.PowerUps, func(p PowerUp) bool { return p.Key == key })
	if i < 0 {
		return PowerUp{}, false
	}
	return s.PowerUps[i], true
}

func (s State) clone() State {
	s.PowerUps = slices.Clone(s.PowerUps)
	return s
}

// normalize rebuilds PowerUps from the current catalogue, keeping only the
// Active flag of stored entries, and clamps the multiplier into
// [1, MaxMultiplier].
// State saved under an older catalogue loads cleanly this way.
func (s State) normalize() State {
	active := make(map[string]bool, len(s.PowerUps))
	for _, p := range s.PowerUps {
		active[p.Key] = p.Active
	}
	s.PowerUps = Catalog()
	for i := range s.PowerUps {
		s.PowerUps[i].Active = active[s.PowerUps[i].Key]
	}
	s.Multiplier = min(max(s.Multiplier, 1), MaxMultiplier)
	s.Clicks = max(s.Clicks, 0)
	return s
}

package passwordgame_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/passgame/modules/passwordgame"
	"github.com/dmitrymomot/passgame/pkg/phase"
)

// winning passes all twenty phases: digits 0*6+4+8+4+9 add up to 25.
const winning = "🥚🔦🌷🐢X🐱🐟ABCD000000XYZ❤️🔥❤️48https://www.youtube.com/watch?v=dQw4w9WgXcQ"

func defaultService(t *testing.T) *passwordgame.Service {
	t.Helper()
	gate, err := passwordgame.DefaultGate()
	require.NoError(t, err)
	return passwordgame.NewService(gate)
}

func TestDefaultPhases(t *testing.T) {
	t.Parallel()

	phases, err := passwordgame.DefaultPhases()
	require.NoError(t, err)
	require.Len(t, phases, 20)
	for i, p := range phases {
		assert.Equal(t, i+1, p.Number)
		assert.NotEmpty(t, p.Message)
		require.NotNil(t, p.Schema)
	}

	min, ok := phases[0].Schema.MinLength()
	require.True(t, ok)
	assert.Equal(t, 6, min)
	min, _ = phases[2].Schema.MinLength()
	assert.Equal(t, 1, min)
}

func TestDefaultPhases_Rules(t *testing.T) {
	t.Parallel()

	phases, err := passwordgame.DefaultPhases()
	require.NoError(t, err)
	byNumber := make(map[int]phase.Phase, len(phases))
	for _, p := range phases {
		byNumber[p.Number] = p
	}

	tests := []struct {
		phase int
		pass  string
		fail  string
	}{
		{1, "abcdef", "abc"},
		{2, "abcde1", "abcdef"},
		{3, "a!", "abc"},
		{4, "aB", "ab"},
		{5, "Fe", "xyz"},
		{6, "🥚", "egg"},
		{7, "🔦🥚", "🥚 🔦"},
		{8, "99331", "9933"},
		{9, "a2", "a1"},
		{10, "a1", "a2"},
		{11, "🐢🌷", "🐢 🌷"},
		{12, "xiV", "xyz"},
		{13, "🌷M", "M🌷"},
		{14, "see https://www.youtube.com/watch?v=dQw4w9WgXcQ", "https://wwwxyoutube.com/watch?v=dQw4w9WgXcQ"},
		{15, "🐱", "cat"},
		{16, "🐟🐱", "🐱 🐟"},
		{17, "GODE561231GR8", "GOD561231GR8"},
		{18, "❤️", "<3"},
		{19, "2+2=4", "2+2=5"},
		{20, "🔥❤️❤️", "❤️🔥"},
	}

	for _, tt := range tests {
		p, ok := byNumber[tt.phase]
		require.True(t, ok, "phase %d", tt.phase)
		assert.True(t, p.Schema.Parse(tt.pass).Valid, "phase %d should accept %q", tt.phase, tt.pass)
		assert.False(t, p.Schema.Parse(tt.fail).Valid, "phase %d should reject %q", tt.phase, tt.fail)
	}
}

func TestWinningPassword(t *testing.T) {
	t.Parallel()

	progress := defaultService(t).Evaluate(context.Background(), 20, winning)
	for _, c := range progress.Checklist {
		assert.True(t, c.IsValid, "phase %d: %v", c.Number, c.Errors)
	}
	assert.True(t, progress.Passed)
	assert.True(t, progress.Completed)
	assert.Zero(t, progress.Next)
}

package random

import (
	"math/rand"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_picker.go github.com/tordbot/tord/internal/random Picker

// Picker provides random selection. It is injected wherever the game makes a
// random choice (first-turn holder, prompt draw, code characters) so tests
// can supply a deterministic source.
type Picker interface {
	// Intn returns a uniformly random int in [0, n)
	Intn(n int) int
}

// Config for the default picker
type Config struct {
	// Optional seed for testing
	Seed int64
}

// DefaultPicker implements Picker using math/rand
type DefaultPicker struct {
	random *rand.Rand
}

// New creates a new default picker
func New(cfg *Config) *DefaultPicker {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)

	return &DefaultPicker{
		random: rand.New(source),
	}
}

// Intn returns a uniformly random int in [0, n)
func (p *DefaultPicker) Intn(n int) int {
	if n < 1 {
		return 0
	}
	return p.random.Intn(n)
}

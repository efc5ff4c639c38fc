package gamecode

import (
	"github.com/tordbot/tord/internal/random"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_generator.go github.com/tordbot/tord/internal/gamecode Generator

const (
	// Length is the number of characters in a session code
	Length = 8

	alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// Generator produces human-shareable session codes. Uniqueness is the
// caller's responsibility; the generator only handles the format.
type Generator interface {
	// NewCode returns a fresh 8-character code of uppercase letters and digits
	NewCode() string
}

// DefaultGenerator implements Generator using an injected random picker
type DefaultGenerator struct {
	picker random.Picker
}

// New creates a new code generator
func New(picker random.Picker) *DefaultGenerator {
	return &DefaultGenerator{
		picker: picker,
	}
}

// NewCode returns a fresh 8-character code of uppercase letters and digits
func (g *DefaultGenerator) NewCode() string {
	code := make([]byte, Length)
	for i := range code {
		code[i] = alphabet[g.picker.Intn(len(alphabet))]
	}
	return string(code)
}

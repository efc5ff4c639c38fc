package gamecode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/tordbot/tord/internal/random"
)

type GeneratorTestSuite struct {
	suite.Suite
	generator *DefaultGenerator
}

func (s *GeneratorTestSuite) SetupTest() {
	s.generator = New(random.New(&random.Config{Seed: 42}))
}

func TestGeneratorTestSuite(t *testing.T) {
	suite.Run(t, new(GeneratorTestSuite))
}

func (s *GeneratorTestSuite) TestNewCode_Format() {
	code := s.generator.NewCode()

	s.Len(code, Length)
	for _, c := range code {
		s.True(strings.ContainsRune(alphabet, c), "unexpected character %q", c)
	}
}

func (s *GeneratorTestSuite) TestNewCode_Deterministic() {
	other := New(random.New(&random.Config{Seed: 42}))

	s.Equal(other.NewCode(), s.generator.NewCode())
}

func (s *GeneratorTestSuite) TestNewCode_Varies() {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		seen[s.generator.NewCode()] = true
	}

	// A seeded source still should not repeat codes in a small sample
	s.Greater(len(seen), 95)
}

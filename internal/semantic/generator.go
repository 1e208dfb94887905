package semantic

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrGeneratorDisabled is returned by NoopGenerator; callers fall through
// to the deterministic rule list.
var ErrGeneratorDisabled = errors.New("text generation disabled")

// Generator is the pluggable text-generation capability consulted before
// the rule-based description fallback. Implementations may fail freely:
// any error routes the caller to the identical deterministic rules.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// NoopGenerator is the inert default. It always fails, so annotation
// behaves exactly as if no generation backend were configured.
type NoopGenerator struct{}

func (NoopGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return "", ErrGeneratorDisabled
}

type GeneratorOptions struct {
	Provider string
	APIKey   string
	Model    string
}

// NewGenerator constructs the configured generation backend. An empty or
// "none" provider yields the no-op implementation.
func NewGenerator(ctx context.Context, opts GeneratorOptions) (Generator, error) {
	provider := strings.ToLower(strings.TrimSpace(opts.Provider))
	switch provider {
	case "", "none":
		return NoopGenerator{}, nil
	case "gemini":
		return NewGeminiGenerator(ctx, opts.APIKey, opts.Model)
	default:
		return nil, fmt.Errorf("unsupported generator provider: %s", opts.Provider)
	}
}

// Package masking scrubs credential-shaped values from agent output before it
// is persisted or forwarded. Masking is best-effort pattern matching, not a
// security boundary; its job is keeping obvious secrets out of the ticket
// history and notification channels.
package masking

import (
	"log/slog"
	"regexp"

	"github.com/fleetworks/conductor/pkg/config"
)

// compiledPattern pairs a compiled regex with its replacement.
type compiledPattern struct {
	name        string
	regex       *regexp.Regexp
	replacement string
}

// Service applies the built-in patterns plus any extras from configuration.
// A nil *Service is valid and masks nothing, so callers never need to guard.
type Service struct {
	patterns []*compiledPattern
}

// NewService compiles the masking pattern set. Returns nil when masking is
// disabled. Invalid extra patterns are logged and skipped; built-ins are
// compile-time constants and always valid.
func NewService(cfg config.MaskingConfig) *Service {
	if !cfg.Enabled {
		slog.Info("Data masking disabled")
		return nil
	}

	s := &Service{patterns: make([]*compiledPattern, 0, len(builtinPatterns)+len(cfg.ExtraPatterns))}
	for _, p := range builtinPatterns {
		s.patterns = append(s.patterns, &compiledPattern{
			name:        p.name,
			regex:       regexp.MustCompile(p.pattern),
			replacement: p.replacement,
		})
	}
	for i, raw := range cfg.ExtraPatterns {
		compiled, err := regexp.Compile(raw)
		if err != nil {
			slog.Error("Failed to compile extra masking pattern, skipping",
				"index", i, "error", err)
			continue
		}
		s.patterns = append(s.patterns, &compiledPattern{
			name:        "extra",
			regex:       compiled,
			replacement: "__MASKED__",
		})
	}
	slog.Info("Data masking enabled", "patterns", len(s.patterns))
	return s
}

// Mask returns text with every matched credential replaced. Safe on a nil
// receiver.
func (s *Service) Mask(text string) string {
	if s == nil || text == "" {
		return text
	}
	for _, p := range s.patterns {
		text = p.regex.ReplaceAllString(text, p.replacement)
	}
	return text
}

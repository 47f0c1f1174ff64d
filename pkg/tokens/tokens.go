// Package tokens provides the shared token estimation heuristic used for
// envelope budgeting, summarization triggers, and message accounting.
package tokens

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// charsPerToken is the approximate number of characters per token for English
// text. Used for threshold estimation only, not exact token counting.
const charsPerToken = 4

// Estimate returns an approximate token count for the given text using the
// common ~4 characters per token heuristic. Exact counts would require a
// tokenizer library for minimal benefit: every consumer treats the result as
// a configurable soft limit, not a hard boundary.
//
// len(text) counts bytes, not runes. Multi-byte UTF-8 content therefore
// overestimates, which errs in the safe direction: summarization triggers
// slightly earlier and envelopes come in under budget.
func Estimate(text string) int {
	if len(text) == 0 {
		return 0
	}
	return (len(text) + charsPerToken - 1) / charsPerToken // Round up
}

// TruncateToBudget cuts content so its estimated token count fits maxTokens,
// ending at the last newline before the limit to avoid splitting mid-line
// (matters for indented JSON, YAML, and log output). A marker noting the
// original size is appended when truncation happens.
func TruncateToBudget(content string, maxTokens int) string {
	return truncateAtLineBoundary(content, maxTokens*charsPerToken)
}

func truncateAtLineBoundary(content string, maxChars int) string {
	if maxChars <= 0 || len(content) <= maxChars {
		return content
	}
	// Back off to a rune start so a multi-byte character is never split.
	cut := maxChars
	for cut > 0 && !utf8.RuneStart(content[cut]) {
		cut--
	}
	truncated := content[:cut]
	if idx := strings.LastIndex(truncated, "\n"); idx > 0 {
		truncated = truncated[:idx]
	}
	return truncated + fmt.Sprintf(
		"\n\n[TRUNCATED: original size %s, limit %s]",
		formatSize(len(content)), formatSize(maxChars),
	)
}

// formatSize returns a human-readable size string. Uses bytes for values
// under 1KB to avoid confusing "0KB" output on small content.
func formatSize(bytes int) string {
	if bytes < 1024 {
		return fmt.Sprintf("%dB", bytes)
	}
	return fmt.Sprintf("%dKB", bytes/1024)
}

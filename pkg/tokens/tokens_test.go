package tokens

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimate(t *testing.T) {
	assert.Equal(t, 0, Estimate(""))
	assert.Equal(t, 1, Estimate("a"))
	assert.Equal(t, 1, Estimate("abcd"))
	assert.Equal(t, 2, Estimate("abcde"))
	assert.Equal(t, 25, Estimate(strings.Repeat("x", 100)))
	// Multi-byte content estimates by bytes, not runes.
	assert.Equal(t, 3, Estimate("日本語")) // 9 bytes
}

func TestTruncateToBudgetShortContentUntouched(t *testing.T) {
	content := "line one\nline two"
	assert.Equal(t, content, TruncateToBudget(content, 100))
}

func TestTruncateToBudgetCutsAtLineBoundary(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 100; i++ {
		b.WriteString("0123456789\n")
	}
	content := b.String()

	out := TruncateToBudget(content, 10) // 40 char budget

	assert.Less(t, len(out), len(content))
	assert.Contains(t, out, "[TRUNCATED:")
	// Every kept line is intact.
	kept := strings.Split(out, "\n\n[TRUNCATED")[0]
	for _, line := range strings.Split(kept, "\n") {
		assert.Equal(t, "0123456789", line)
	}
}

func TestTruncateToBudgetNeverSplitsRunes(t *testing.T) {
	content := strings.Repeat("日", 100) // 3 bytes each, no newlines

	out := TruncateToBudget(content, 10)

	kept := strings.Split(out, "\n\n[TRUNCATED")[0]
	assert.True(t, len(kept) <= 40)
	for _, r := range kept {
		assert.Equal(t, '日', r)
	}
}

package prompt

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

const gitLogTimeout = 5 * time.Second

// gitLog returns the last n commit subjects for the repo at dir, one per
// line. Failures (no git binary, not a repo, timeout) return an error; the
// builder drops the section rather than failing the envelope.
func gitLog(ctx context.Context, dir string, n int) (string, error) {
	if dir == "" {
		return "", fmt.Errorf("no working directory")
	}
	ctx, cancel := context.WithTimeout(ctx, gitLogTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", "-C", dir, "log", "--pretty=format:%h %s", "-n", fmt.Sprintf("%d", n))
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git log in %s: %w", dir, err)
	}
	return strings.TrimSpace(string(out)), nil
}

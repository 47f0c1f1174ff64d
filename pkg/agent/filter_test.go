package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecide(t *testing.T) {
	const root = "/srv/projects/shop"

	approved := []ApprovedPattern{
		{Tool: "bash", Pattern: "npm *"},
		{Tool: "bash", Pattern: "make test"},
	}

	tests := []struct {
		name     string
		tool     string
		input    string
		approved []ApprovedPattern
		want     Decision
	}{
		{"approved prefix pattern", "bash", "npm install left-pad", approved, DecisionAllow},
		{"approved prefix without args", "bash", "npm", approved, DecisionAllow},
		{"approved exact pattern", "bash", "make test", approved, DecisionAllow},
		{"exact pattern does not extend", "bash", "make test -v", approved, DecisionAsk},
		{"tool mismatch ignores pattern", "docker", "npm install", approved, DecisionAsk},
		{"approved wins over deny list", "bash", "npm run postinstall /etc/cron.d", []ApprovedPattern{{Tool: "bash", Pattern: "npm *"}}, DecisionAllow},

		{"privileged command", "bash", "sudo apt-get install jq", nil, DecisionDeny},
		{"privileged via full path", "bash", "/usr/bin/sudo id", nil, DecisionDeny},
		{"system path read", "bash", "cat /etc/passwd", nil, DecisionDeny},
		{"system path via write tool", "write_file", "/usr/local/lib/evil.so", nil, DecisionDeny},
		{"write outside project", "edit_file", "/home/other/app/main.go", nil, DecisionDeny},
		{"shell write outside project", "bash", "rm -rf /srv/projects/other", nil, DecisionDeny},

		{"write inside project", "write_file", root + "/internal/api/server.go", nil, DecisionAsk},
		{"shell write inside project", "bash", "rm -rf " + root + "/build", nil, DecisionAsk},
		{"read outside project asks", "read_file", "/home/other/notes.md", nil, DecisionAsk},
		{"relative shell command asks", "bash", "go test ./...", nil, DecisionAsk},
		{"unknown tool asks", "browser", "https://example.com", nil, DecisionAsk},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decide(tt.tool, tt.input, root, tt.approved)
			assert.Equal(t, tt.want, got.Decision, "reason: %s", got.Reason)
		})
	}
}

func TestDecide_ProjectUnderSystemPrefix(t *testing.T) {
	// A workdir under /var must stay usable: project paths are exempt from
	// the system-path rule.
	root := "/var/www/shop"
	got := Decide("bash", "touch /var/www/shop/tmp/cache.lock", root, nil)
	assert.Equal(t, DecisionAsk, got.Decision)

	got = Decide("bash", "touch /var/spool/cron/root", root, nil)
	assert.Equal(t, DecisionDeny, got.Decision)
}

func TestDecide_NoProjectRoot(t *testing.T) {
	// Without a known root the outside-project rule cannot apply, but the
	// rest of the deny list still does.
	assert.Equal(t, DecisionDeny, Decide("bash", "sudo reboot", "", nil).Decision)
	assert.Equal(t, DecisionDeny, Decide("bash", "cat /etc/shadow", "", nil).Decision)
	assert.Equal(t, DecisionAsk, Decide("bash", "rm -rf /home/me/tmp", "", nil).Decision)
}

func TestPatternMatches(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		want    bool
	}{
		{"npm *", "npm install", true},
		{"npm *", "npm", true},
		{"npm *", "npmx install", false},
		{"make test", "make test", true},
		{"make test", "make test -v", false},
		{"git push *", "git push origin main", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, patternMatches(tt.pattern, tt.input), "%q vs %q", tt.pattern, tt.input)
	}
}

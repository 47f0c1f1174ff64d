package agent

import (
	"path/filepath"
	"strings"
)

// Decision is the pre-tool filter verdict for semi-autonomous runs.
type Decision string

const (
	DecisionAllow Decision = "allow"
	DecisionDeny  Decision = "deny"
	DecisionAsk   Decision = "ask"
)

// HookRequest is what the agent's pre-tool hook sends for every tool call.
type HookRequest struct {
	Tool  string `json:"tool"`
	Input string `json:"input"`
}

// HookResponse is the filter verdict returned to the hook.
type HookResponse struct {
	Decision Decision `json:"decision"`
	Reason   string   `json:"reason,omitempty"`
}

// ApprovedPattern is a previously human-approved (tool, pattern) pair.
type ApprovedPattern struct {
	Tool    string
	Pattern string
}

// Host directories the agent must never touch. Paths inside the project
// root are exempt, so a workdir under /var or /root still functions.
var systemPaths = []string{
	"/etc", "/usr", "/bin", "/sbin", "/boot",
	"/root", "/proc", "/sys", "/dev", "/var",
}

// Commands that imply privilege escalation or host-level changes.
var privilegedCommands = map[string]bool{
	"sudo": true, "su": true, "doas": true,
	"shutdown": true, "reboot": true, "halt": true, "poweroff": true,
	"mkfs": true, "fdisk": true, "mount": true, "umount": true,
	"systemctl": true, "service": true, "iptables": true, "nft": true,
	"useradd": true, "userdel": true, "usermod": true, "passwd": true,
	"insmod": true, "rmmod": true, "modprobe": true,
}

// Shell commands whose absolute-path arguments count as writes for the
// outside-project check.
var mutatingCommands = map[string]bool{
	"rm": true, "mv": true, "cp": true, "dd": true,
	"chmod": true, "chown": true, "ln": true, "tee": true,
	"truncate": true, "mkdir": true, "touch": true, "rmdir": true,
}

// Decide applies the pre-tool policy for one call:
//
//  1. A matching approved pattern for the ticket allows it.
//  2. The deny-list blocks privileged commands, system paths, and writes
//     outside the project root.
//  3. Everything else is passed to the human.
func Decide(tool, input, projectRoot string, approved []ApprovedPattern) HookResponse {
	for _, ap := range approved {
		if strings.EqualFold(ap.Tool, tool) && patternMatches(ap.Pattern, input) {
			return HookResponse{Decision: DecisionAllow, Reason: "approved pattern " + ap.Pattern}
		}
	}

	if reason := denied(tool, input, projectRoot); reason != "" {
		return HookResponse{Decision: DecisionDeny, Reason: reason}
	}

	return HookResponse{Decision: DecisionAsk}
}

// patternMatches checks an input against an approved pattern. A trailing
// " *" matches any invocation sharing the prefix; everything else is an
// exact match.
func patternMatches(pattern, input string) bool {
	input = strings.TrimSpace(input)
	if prefix, ok := strings.CutSuffix(pattern, " *"); ok {
		return input == prefix || strings.HasPrefix(input, prefix+" ")
	}
	return input == pattern
}

func denied(tool, input, projectRoot string) string {
	fields := strings.Fields(input)
	shell := isShellTool(tool)

	if shell && len(fields) > 0 && privilegedCommands[baseCommand(fields[0])] {
		return "privileged command " + fields[0]
	}

	// Reads outside the project fall through to ask; only writes are
	// denied outright.
	var writes bool
	if shell {
		writes = len(fields) > 0 && mutatingCommands[baseCommand(fields[0])]
	} else {
		writes = isWriteTool(tool)
	}

	for _, f := range fields {
		path := trimPathToken(f)
		if !strings.HasPrefix(path, "/") {
			continue
		}
		if projectRoot != "" && underDir(path, projectRoot) {
			continue
		}
		if underSystemPath(path) {
			return "system path " + path
		}
		if writes && projectRoot != "" {
			return "write outside project: " + path
		}
	}
	return ""
}

func isShellTool(tool string) bool {
	switch strings.ToLower(tool) {
	case "bash", "shell", "sh", "exec":
		return true
	}
	return false
}

func isWriteTool(tool string) bool {
	t := strings.ToLower(tool)
	for _, marker := range []string{"write", "edit", "create", "delete", "remove", "move", "patch", "append"} {
		if strings.Contains(t, marker) {
			return true
		}
	}
	return false
}

// baseCommand strips a directory prefix so "/usr/bin/sudo" is still sudo.
func baseCommand(token string) string {
	return filepath.Base(token)
}

// trimPathToken strips shell punctuation that commonly clings to path
// arguments (redirects, quotes, trailing separators).
func trimPathToken(token string) string {
	return strings.Trim(token, `"'><;|&`)
}

func underSystemPath(path string) bool {
	for _, dir := range systemPaths {
		if underDir(path, dir) {
			return true
		}
	}
	return false
}

func underDir(path, dir string) bool {
	clean := filepath.Clean(path)
	dir = filepath.Clean(dir)
	return clean == dir || strings.HasPrefix(clean, dir+"/")
}

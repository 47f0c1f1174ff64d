// Package rules loads the operator-maintained global rules file that is
// injected at the top of every prompt envelope.
package rules

import (
	"log/slog"
	"os"
	"sync"
	"time"
)

// Service reads the rules file lazily and caches the content keyed on file
// mtime and size, so edits take effect on the next prompt build without a
// daemon restart. A nil *Service is valid and returns empty rules.
type Service struct {
	path string

	mu      sync.RWMutex
	content string
	modTime time.Time
	size    int64
	loaded  bool
}

// NewService creates a rules loader for the given path. Returns nil when no
// path is configured.
func NewService(path string) *Service {
	if path == "" {
		return nil
	}
	return &Service{path: path}
}

// Get returns the current rules content. A missing or unreadable file fails
// open to empty rules: a broken rules file must never stop ticket dispatch.
func (s *Service) Get() string {
	if s == nil {
		return ""
	}

	info, err := os.Stat(s.path)
	if err != nil {
		s.invalidate(err)
		return ""
	}

	s.mu.RLock()
	if s.loaded && info.ModTime().Equal(s.modTime) && info.Size() == s.size {
		content := s.content
		s.mu.RUnlock()
		return content
	}
	s.mu.RUnlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		s.invalidate(err)
		return ""
	}

	s.mu.Lock()
	s.content = string(data)
	s.modTime = info.ModTime()
	s.size = info.Size()
	s.loaded = true
	s.mu.Unlock()

	return string(data)
}

// invalidate drops the cached content and logs once per disappearance.
func (s *Service) invalidate(cause error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		slog.Warn("Rules file became unreadable, continuing without rules",
			"path", s.path, "error", cause)
	}
	s.content = ""
	s.loaded = false
}

// Package summarizer compresses long ticket conversations into structured
// extractions so prompt envelopes stay under the context budget. Compression
// is strictly additive: covered messages are flagged, never deleted, and the
// extraction prefix plus the raw suffix always reconstructs the history.
package summarizer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/fleetworks/conductor/ent"
	"github.com/fleetworks/conductor/ent/message"
	"github.com/fleetworks/conductor/pkg/config"
	"github.com/fleetworks/conductor/pkg/llm"
	"github.com/fleetworks/conductor/pkg/services"
)

const (
	// sweepBatch bounds how many tickets one sweep compresses.
	sweepBatch = 10

	// maxMessageChars truncates a single message in the extraction prompt.
	maxMessageChars = 4000
)

const extractionSystem = `You compress part of an autonomous coding agent's work log on a ticket.
Distill the transcript into the fields below. Be specific and terse; omit nothing that a future
agent turn would need to avoid repeating work or mistakes. Leave a field empty when nothing applies.
Respond with JSON only:
{"decisions": "...", "problems_solved": "...", "files_modified": "...", "tests_status": "...", "error_patterns": "...", "important_notes": "..."}`

type extractionResponse struct {
	Decisions      string `json:"decisions"`
	ProblemsSolved string `json:"problems_solved"`
	FilesModified  string `json:"files_modified"`
	TestsStatus    string `json:"tests_status"`
	ErrorPatterns  string `json:"error_patterns"`
	ImportantNotes string `json:"important_notes"`
}

// Service runs the periodic compression sweep and serves synchronous
// compression requests from the prompt builder.
type Service struct {
	cfg       config.SummarizerConfig
	threshold int

	tickets     *services.TicketService
	messages    *services.MessageService
	extractions *services.ExtractionService
	projects    *services.ProjectService
	model       llm.Client
	logger      *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a summarizer. threshold is the unsummarized-token level
// that triggers compression.
func NewService(
	cfg config.SummarizerConfig,
	threshold int,
	tickets *services.TicketService,
	messages *services.MessageService,
	extractions *services.ExtractionService,
	projects *services.ProjectService,
	model llm.Client,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		cfg:         cfg,
		threshold:   threshold,
		tickets:     tickets,
		messages:    messages,
		extractions: extractions,
		projects:    projects,
		model:       model,
		logger:      logger.With("component", "summarizer"),
	}
}

// Start launches the sweep loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	s.logger.Info("Summarizer started",
		"sweep_interval", s.cfg.SweepInterval, "threshold", s.threshold)
}

// Stop signals the loop to exit and waits for it.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.logger.Info("Summarizer stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.cfg.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

// sweep compresses every ticket over threshold. A failed compression leaves
// the ticket untouched for the next sweep.
func (s *Service) sweep(ctx context.Context) {
	due, err := s.tickets.NeedingSummarization(ctx, s.threshold, sweepBatch)
	if err != nil {
		s.logger.Error("Loading tickets for summarization failed", "error", err)
		return
	}
	for _, t := range due {
		if err := s.Compress(ctx, t.ID); err != nil {
			s.logger.Error("Compression failed",
				"ticket_id", t.ID, "ticket", t.TicketNumber, "error", err)
		}
	}
}

// Compress shrinks one ticket's conversation below the threshold. It
// implements prompt.Compressor, so envelope assembly can force a compression
// pass before building. A ticket already under threshold is a no-op.
func (s *Service) Compress(ctx context.Context, ticketID int) error {
	msgs, err := s.messages.Unsummarized(ctx, ticketID)
	if err != nil {
		return err
	}

	total := 0
	for _, m := range msgs {
		total += m.TokenCount
	}
	if total <= s.threshold {
		return nil
	}

	// Oldest contiguous range whose removal brings the remainder under
	// threshold.
	cut := len(msgs) - 1
	covered := 0
	for i, m := range msgs {
		covered += m.TokenCount
		if total-covered <= s.threshold {
			cut = i
			break
		}
	}
	rangeMsgs := msgs[:cut+1]

	content, err := s.extract(ctx, rangeMsgs)
	if err != nil {
		return fmt.Errorf("extracting range: %w", err)
	}

	created, err := s.extractions.Apply(ctx, ticketID, rangeMsgs[0].ID, rangeMsgs[len(rangeMsgs)-1].ID, content)
	if err != nil {
		return fmt.Errorf("applying extraction: %w", err)
	}

	s.foldKnowledge(ctx, ticketID, content)

	s.logger.Info("Conversation compressed",
		"ticket_id", ticketID,
		"messages", len(rangeMsgs),
		"tokens_before", created.TokensBefore,
		"tokens_after", created.TokensAfter)
	return nil
}

// extract asks the cheap model for the structured compression of a message
// range.
func (s *Service) extract(ctx context.Context, msgs []*ent.Message) (services.ExtractionContent, error) {
	raw, err := s.model.Complete(ctx, llm.Request{
		Tier:   llm.TierFast,
		System: extractionSystem,
		Prompt: renderTranscript(msgs),
	})
	if err != nil {
		return services.ExtractionContent{}, err
	}

	var resp extractionResponse
	if err := json.Unmarshal([]byte(llm.ExtractJSONObject(raw)), &resp); err != nil {
		return services.ExtractionContent{}, fmt.Errorf("parsing extraction: %w", err)
	}
	return services.ExtractionContent{
		Decisions:      resp.Decisions,
		ProblemsSolved: resp.ProblemsSolved,
		FilesModified:  resp.FilesModified,
		TestsStatus:    resp.TestsStatus,
		ErrorPatterns:  resp.ErrorPatterns,
		ImportantNotes: resp.ImportantNotes,
	}, nil
}

// foldKnowledge carries durable findings from the extraction into the
// project knowledge record. Failures are logged, not fatal: the extraction
// itself has already landed.
func (s *Service) foldKnowledge(ctx context.Context, ticketID int, content services.ExtractionContent) {
	parts := make([]string, 0, 3)
	for _, p := range []string{content.Decisions, content.ProblemsSolved, content.ImportantNotes} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, strings.TrimSpace(p))
		}
	}
	if len(parts) == 0 {
		return
	}

	t, err := s.tickets.Get(ctx, ticketID)
	if err != nil {
		s.logger.Warn("Loading ticket for knowledge fold failed", "ticket_id", ticketID, "error", err)
		return
	}
	note := fmt.Sprintf("[%s] %s", t.TicketNumber, strings.Join(parts, " "))
	if err := s.projects.AppendKnowledge(ctx, t.ProjectID, note); err != nil {
		s.logger.Warn("Folding knowledge failed", "project_id", t.ProjectID, "error", err)
	}
}

// renderTranscript formats a message range for the extraction prompt.
func renderTranscript(msgs []*ent.Message) string {
	var b strings.Builder
	for _, m := range msgs {
		switch m.Role {
		case message.RoleToolUse:
			name := "tool"
			if m.ToolName != nil && *m.ToolName != "" {
				name = *m.ToolName
			}
			input := ""
			if m.ToolInput != nil {
				input = *m.ToolInput
			}
			fmt.Fprintf(&b, "TOOL_USE %s: %s\n", name, clip(input, maxMessageChars))
		case message.RoleToolResult:
			fmt.Fprintf(&b, "TOOL_RESULT: %s\n", clip(m.Content, maxMessageChars))
		default:
			fmt.Fprintf(&b, "%s: %s\n", strings.ToUpper(string(m.Role)), clip(m.Content, maxMessageChars))
		}
	}
	return b.String()
}

// clip bounds a string, cutting at a rune boundary.
func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}

// Package prompt assembles the context envelope handed to the agent process
// when a ticket is dispatched: global rules, project map and knowledge, the
// parent-ticket chain, a recent-commit hint, the ticket itself, and the
// conversation so far (compressed prefix plus live tail).
package prompt

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/fleetworks/conductor/ent"
	"github.com/fleetworks/conductor/pkg/bus"
	"github.com/fleetworks/conductor/pkg/config"
	"github.com/fleetworks/conductor/pkg/rules"
	"github.com/fleetworks/conductor/pkg/tokens"
)

const (
	// maxAncestors bounds the parent-chain section. Deep hierarchies carry
	// their history through result summaries instead.
	maxAncestors = 2

	// sectionFloor is the smallest token allowance worth spending on an
	// optional section. Below this a truncated section is mostly marker.
	sectionFloor = 128
)

// Envelope is a fully assembled prompt ready to hand to the agent runner.
type Envelope struct {
	Prompt          string
	EstimatedTokens int

	// MapStale reports that the project map was included but is older than
	// the configured freshness window.
	MapStale bool
}

// ProjectSource loads the project a ticket belongs to.
type ProjectSource interface {
	Get(ctx context.Context, id int) (*ent.Project, error)
}

// TicketSource loads tickets by ID, used to walk the parent chain.
type TicketSource interface {
	Get(ctx context.Context, id int) (*ent.Ticket, error)
}

// ConversationSource loads the live, not-yet-compressed message tail.
type ConversationSource interface {
	Unsummarized(ctx context.Context, ticketID int) ([]*ent.Message, error)
}

// ExtractionSource loads the compressed conversation prefix.
type ExtractionSource interface {
	ListByTicket(ctx context.Context, ticketID int) ([]*ent.Extraction, error)
}

// Sources bundles the data access the builder needs. The concrete services
// satisfy these interfaces directly.
type Sources struct {
	Projects    ProjectSource
	Tickets     TicketSource
	Messages    ConversationSource
	Extractions ExtractionSource
}

// Compressor shrinks a ticket's conversation before envelope assembly. The
// summarizer implements it; a nil Compressor disables the synchronous
// pre-compression pass.
type Compressor interface {
	Compress(ctx context.Context, ticketID int) error
}

// Builder assembles envelopes under a token budget.
type Builder struct {
	cfg        config.ContextConfig
	src        Sources
	rules      *rules.Service
	compressor Compressor
	events     *bus.Bus
	logger     *slog.Logger

	// gitHint is swappable in tests so envelope assembly stays hermetic.
	gitHint func(ctx context.Context, dir string, n int) (string, error)
}

// NewBuilder creates an envelope builder. rulesSvc, compressor, and events
// may each be nil, which drops the corresponding behavior.
func NewBuilder(cfg config.ContextConfig, src Sources, rulesSvc *rules.Service, compressor Compressor, events *bus.Bus, logger *slog.Logger) *Builder {
	return &Builder{
		cfg:        cfg,
		src:        src,
		rules:      rulesSvc,
		compressor: compressor,
		events:     events,
		logger:     logger.With("component", "prompt"),
		gitHint:    gitLog,
	}
}

// Workdir returns the directory the agent should run in for a project:
// web_path when set, app_path as fallback, empty when neither is configured.
func Workdir(p *ent.Project) string {
	if p.WebPath != nil && *p.WebPath != "" {
		return *p.WebPath
	}
	if p.AppPath != nil && *p.AppPath != "" {
		return *p.AppPath
	}
	return ""
}

type section struct {
	marker  string
	content string
}

func (s section) render() string {
	return s.marker + "\n" + s.content
}

// BuildEnvelope assembles the prompt for one dispatch of the given ticket.
//
// Required sections (rules, ticket, conversation) are never truncated; the
// optional sections (map, knowledge, parents, git hint) share whatever budget
// remains under the token target, in that order.
func (b *Builder) BuildEnvelope(ctx context.Context, t *ent.Ticket) (*Envelope, error) {
	proj, err := b.src.Projects.Get(ctx, t.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("loading project %d: %w", t.ProjectID, err)
	}

	// Compress synchronously when the live tail has outgrown the threshold,
	// so the envelope ships a short summary instead of a huge transcript.
	// Compression failure is not fatal: the uncompressed tail still fits the
	// hard target in practice, it just wastes window.
	if b.compressor != nil && t.UnsummarizedTokens > b.cfg.SummarizeThreshold {
		if err := b.compressor.Compress(ctx, t.ID); err != nil {
			b.logger.Warn("Pre-dispatch compression failed, building envelope from raw conversation",
				"ticket_id", t.ID, "unsummarized_tokens", t.UnsummarizedTokens, "error", err)
		}
	}

	messages, err := b.src.Messages.Unsummarized(ctx, t.ID)
	if err != nil {
		return nil, fmt.Errorf("loading conversation for ticket %d: %w", t.ID, err)
	}
	extractions, err := b.src.Extractions.ListByTicket(ctx, t.ID)
	if err != nil {
		return nil, fmt.Errorf("loading extractions for ticket %d: %w", t.ID, err)
	}

	required := make([]section, 0, 3)
	if content := b.rules.Get(); content != "" {
		required = append(required, section{sectionRules, content})
	}
	ticketSection := section{sectionTicket, formatTicketHeader(t)}
	var conversation *section
	if conv := formatConversation(extractions, messages); conv != "" {
		conversation = &section{sectionConversation, conv}
	}

	requiredTokens := tokens.Estimate(ticketSection.render())
	for _, s := range required {
		requiredTokens += tokens.Estimate(s.render())
	}
	if conversation != nil {
		requiredTokens += tokens.Estimate(conversation.render())
	}
	remaining := b.cfg.TokenTarget - requiredTokens

	mapSection, stale := b.mapSection(t, proj)
	optional := []*section{
		mapSection,
		b.knowledgeSection(proj),
		b.parentSection(ctx, t),
		b.gitSection(ctx, proj),
	}

	parts := make([]string, 0, len(required)+len(optional)+2)
	for _, s := range required {
		parts = append(parts, s.render())
	}
	for _, s := range optional {
		if s == nil {
			continue
		}
		if remaining < sectionFloor {
			b.logger.Debug("Dropping envelope section over budget",
				"ticket_id", t.ID, "section", s.marker, "remaining_tokens", remaining)
			continue
		}
		if est := tokens.Estimate(s.content); est > remaining {
			s.content = tokens.TruncateToBudget(s.content, remaining)
		}
		rendered := s.render()
		remaining -= tokens.Estimate(rendered)
		parts = append(parts, rendered)
	}
	parts = append(parts, ticketSection.render())
	if conversation != nil {
		parts = append(parts, conversation.render())
	}

	prompt := strings.Join(parts, "\n\n")
	return &Envelope{
		Prompt:          prompt,
		EstimatedTokens: tokens.Estimate(prompt),
		MapStale:        stale,
	}, nil
}

// mapSection returns the project map section, or nil when no map exists.
// A map older than the freshness window is still included (a dated map beats
// none) but flagged so operators can regenerate it.
func (b *Builder) mapSection(t *ent.Ticket, proj *ent.Project) (*section, bool) {
	if proj.MapContent == "" {
		return nil, false
	}
	stale := proj.MapGeneratedAt == nil ||
		time.Since(*proj.MapGeneratedAt) > b.cfg.MapMaxAge
	if stale {
		b.logger.Warn("Project map is stale", "project", proj.Code, "max_age", b.cfg.MapMaxAge)
		if b.events != nil {
			b.events.Publish(bus.Event{
				Topic:    bus.TopicConsole,
				Type:     bus.TypeMapStale,
				TicketID: t.ID,
				Payload: map[string]any{
					"project_id":   proj.ID,
					"project_code": proj.Code,
				},
			})
		}
	}
	return &section{sectionMap, proj.MapContent}, stale
}

func (b *Builder) knowledgeSection(proj *ent.Project) *section {
	if proj.Knowledge == "" {
		return nil
	}
	return &section{sectionKnowledge, proj.Knowledge}
}

// parentSection walks up the parent chain, closest ancestor last so the
// immediate parent sits nearest the ticket text. Chain loading errors drop
// the section; ancestry is contextual, not required.
func (b *Builder) parentSection(ctx context.Context, t *ent.Ticket) *section {
	if t.ParentTicketID == nil {
		return nil
	}
	chain := make([]*ent.Ticket, 0, maxAncestors)
	next := t.ParentTicketID
	for next != nil && len(chain) < maxAncestors {
		parent, err := b.src.Tickets.Get(ctx, *next)
		if err != nil {
			b.logger.Warn("Skipping parent chain in envelope",
				"ticket_id", t.ID, "parent_id", *next, "error", err)
			return nil
		}
		chain = append(chain, parent)
		next = parent.ParentTicketID
	}

	parts := make([]string, 0, len(chain))
	for i := len(chain) - 1; i >= 0; i-- {
		parts = append(parts, formatAncestor(chain[i]))
	}
	return &section{sectionParents, strings.Join(parts, "\n\n")}
}

// gitSection shells out for a short commit log of the project workdir.
// Any failure drops the section.
func (b *Builder) gitSection(ctx context.Context, proj *ent.Project) *section {
	if !proj.GitEnabled || b.cfg.GitHintCommits <= 0 {
		return nil
	}
	dir := Workdir(proj)
	if dir == "" {
		return nil
	}
	out, err := b.gitHint(ctx, dir, b.cfg.GitHintCommits)
	if err != nil {
		b.logger.Debug("Skipping git hint in envelope", "project", proj.Code, "error", err)
		return nil
	}
	if out == "" {
		return nil
	}
	return &section{sectionGit, out}
}

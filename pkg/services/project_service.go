package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/fleetworks/conductor/ent"
	"github.com/fleetworks/conductor/ent/project"
	"github.com/fleetworks/conductor/pkg/models"
)

// codePattern constrains project codes: they prefix every ticket number, so
// they must stay short and shell-safe.
var codePattern = regexp.MustCompile(`^[A-Z][A-Z0-9]{1,9}$`)

// maxKnowledgeBytes caps accumulated project knowledge. Oldest lines are
// trimmed first; the distilled notes also live in extraction rows.
const maxKnowledgeBytes = 32 * 1024

// ProjectService manages project registration and metadata.
type ProjectService struct {
	client *ent.Client
}

// NewProjectService creates a new ProjectService.
func NewProjectService(client *ent.Client) *ProjectService {
	return &ProjectService{client: client}
}

// Create registers a project. The code is immutable and prefixes all of the
// project's ticket numbers.
func (s *ProjectService) Create(ctx context.Context, req models.CreateProjectRequest) (*ent.Project, error) {
	if !codePattern.MatchString(req.Code) {
		return nil, NewValidationError("code", "must match "+codePattern.String())
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, NewValidationError("name", "required")
	}

	builder := s.client.Project.Create().
		SetCode(req.Code).
		SetName(req.Name)

	if req.WebPath != "" {
		builder.SetWebPath(req.WebPath)
	}
	if req.AppPath != "" {
		builder.SetAppPath(req.AppPath)
	}
	if req.DefaultExecutionMode != "" {
		mode := project.DefaultExecutionMode(req.DefaultExecutionMode)
		if err := project.DefaultExecutionModeValidator(mode); err != nil {
			return nil, NewValidationError("default_execution_mode", err.Error())
		}
		builder.SetDefaultExecutionMode(mode)
	}
	if req.ModelTier != "" {
		tier := project.ModelTier(req.ModelTier)
		if err := project.ModelTierValidator(tier); err != nil {
			return nil, NewValidationError("model_tier", err.Error())
		}
		builder.SetModelTier(tier)
	}
	if req.GitEnabled != nil {
		builder.SetGitEnabled(*req.GitEnabled)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("project code %s: %w", req.Code, ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return created, nil
}

// Get returns a project by ID.
func (s *ProjectService) Get(ctx context.Context, id int) (*ent.Project, error) {
	p, err := s.client.Project.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("project %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get project %d: %w", id, err)
	}
	return p, nil
}

// GetByCode returns a project by its unique code.
func (s *ProjectService) GetByCode(ctx context.Context, code string) (*ent.Project, error) {
	p, err := s.client.Project.Query().
		Where(project.CodeEQ(code)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("project %s: %w", code, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get project %s: %w", code, err)
	}
	return p, nil
}

// List returns projects ordered by ID, optionally including archived ones.
func (s *ProjectService) List(ctx context.Context, includeArchived bool) ([]*ent.Project, error) {
	q := s.client.Project.Query().Order(ent.Asc(project.FieldID))
	if !includeArchived {
		q = q.Where(project.ArchivedEQ(false))
	}
	projects, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// Active returns the unarchived projects in stable ID order. The scheduler's
// rotation offset indexes into this slice, so the ordering must not change
// between ticks.
func (s *ProjectService) Active(ctx context.Context) ([]*ent.Project, error) {
	return s.List(ctx, false)
}

// Update applies the mutable project fields.
func (s *ProjectService) Update(ctx context.Context, id int, req models.UpdateProjectRequest) (*ent.Project, error) {
	builder := s.client.Project.UpdateOneID(id)

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, NewValidationError("name", "required")
		}
		builder.SetName(*req.Name)
	}
	if req.WebPath != nil {
		if *req.WebPath == "" {
			builder.ClearWebPath()
		} else {
			builder.SetWebPath(*req.WebPath)
		}
	}
	if req.AppPath != nil {
		if *req.AppPath == "" {
			builder.ClearAppPath()
		} else {
			builder.SetAppPath(*req.AppPath)
		}
	}
	if req.DefaultExecutionMode != nil {
		mode := project.DefaultExecutionMode(*req.DefaultExecutionMode)
		if err := project.DefaultExecutionModeValidator(mode); err != nil {
			return nil, NewValidationError("default_execution_mode", err.Error())
		}
		builder.SetDefaultExecutionMode(mode)
	}
	if req.ModelTier != nil {
		tier := project.ModelTier(*req.ModelTier)
		if err := project.ModelTierValidator(tier); err != nil {
			return nil, NewValidationError("model_tier", err.Error())
		}
		builder.SetModelTier(tier)
	}
	if req.GitEnabled != nil {
		builder.SetGitEnabled(*req.GitEnabled)
	}
	if req.Archived != nil {
		builder.SetArchived(*req.Archived)
	}

	updated, err := builder.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("project %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update project %d: %w", id, err)
	}
	return updated, nil
}

// Archive hides a project from scheduling. Its tickets keep their state and
// resume when the project is unarchived.
func (s *ProjectService) Archive(ctx context.Context, id int) (*ent.Project, error) {
	archived := true
	return s.Update(ctx, id, models.UpdateProjectRequest{Archived: &archived})
}

// AppendKnowledge folds a distilled note into the project's knowledge text.
// The store is trimmed from the oldest lines when it outgrows the cap.
func (s *ProjectService) AppendKnowledge(ctx context.Context, id int, note string) error {
	note = strings.TrimSpace(note)
	if note == "" {
		return nil
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	p, err := tx.Project.Query().
		Where(project.IDEQ(id)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("project %d: %w", id, ErrNotFound)
		}
		return fmt.Errorf("failed to load project %d: %w", id, err)
	}

	knowledge := foldKnowledge(p.Knowledge, note)
	if _, err := tx.Project.UpdateOneID(id).SetKnowledge(knowledge).Save(ctx); err != nil {
		return fmt.Errorf("failed to update knowledge for project %d: %w", id, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit knowledge update: %w", err)
	}
	return nil
}

// SetMap stores a regenerated project map.
func (s *ProjectService) SetMap(ctx context.Context, id int, content string) error {
	err := s.client.Project.UpdateOneID(id).
		SetMapContent(content).
		SetMapGeneratedAt(time.Now().UTC()).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("project %d: %w", id, ErrNotFound)
		}
		return fmt.Errorf("failed to set map for project %d: %w", id, err)
	}
	return nil
}

// foldKnowledge appends a note and trims whole oldest lines while the text
// exceeds the cap.
func foldKnowledge(existing, note string) string {
	combined := existing
	if combined != "" && !strings.HasSuffix(combined, "\n") {
		combined += "\n"
	}
	combined += "- " + note + "\n"

	for len(combined) > maxKnowledgeBytes {
		idx := strings.IndexByte(combined, '\n')
		if idx < 0 {
			return combined[len(combined)-maxKnowledgeBytes:]
		}
		combined = combined[idx+1:]
	}
	return combined
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fleetworks/conductor/ent/approvedpermission"
	"github.com/fleetworks/conductor/ent/executionsession"
	"github.com/fleetworks/conductor/ent/extraction"
	"github.com/fleetworks/conductor/ent/message"
	"github.com/fleetworks/conductor/ent/project"
	"github.com/fleetworks/conductor/ent/ticket"
	"github.com/fleetworks/conductor/ent/ticketdependency"
)

// TicketCreate is the builder for creating a Ticket entity.
type TicketCreate struct {
	config
	mutation *TicketMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetProjectID sets the "project_id" field.
func (_c *TicketCreate) SetProjectID(v int) *TicketCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetTicketNumber sets the "ticket_number" field.
func (_c *TicketCreate) SetTicketNumber(v string) *TicketCreate {
	_c.mutation.SetTicketNumber(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *TicketCreate) SetTitle(v string) *TicketCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *TicketCreate) SetDescription(v string) *TicketCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *TicketCreate) SetNillableDescription(v *string) *TicketCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetTicketType sets the "ticket_type" field.
func (_c *TicketCreate) SetTicketType(v ticket.TicketType) *TicketCreate {
	_c.mutation.SetTicketType(v)
	return _c
}

// SetNillableTicketType sets the "ticket_type" field if the given value is not nil.
func (_c *TicketCreate) SetNillableTicketType(v *ticket.TicketType) *TicketCreate {
	if v != nil {
		_c.SetTicketType(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *TicketCreate) SetPriority(v ticket.Priority) *TicketCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *TicketCreate) SetNillablePriority(v *ticket.Priority) *TicketCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetSequenceOrder sets the "sequence_order" field.
func (_c *TicketCreate) SetSequenceOrder(v int) *TicketCreate {
	_c.mutation.SetSequenceOrder(v)
	return _c
}

// SetNillableSequenceOrder sets the "sequence_order" field if the given value is not nil.
func (_c *TicketCreate) SetNillableSequenceOrder(v *int) *TicketCreate {
	if v != nil {
		_c.SetSequenceOrder(*v)
	}
	return _c
}

// SetParentTicketID sets the "parent_ticket_id" field.
func (_c *TicketCreate) SetParentTicketID(v int) *TicketCreate {
	_c.mutation.SetParentTicketID(v)
	return _c
}

// SetNillableParentTicketID sets the "parent_ticket_id" field if the given value is not nil.
func (_c *TicketCreate) SetNillableParentTicketID(v *int) *TicketCreate {
	if v != nil {
		_c.SetParentTicketID(*v)
	}
	return _c
}

// SetIsForced sets the "is_forced" field.
func (_c *TicketCreate) SetIsForced(v bool) *TicketCreate {
	_c.mutation.SetIsForced(v)
	return _c
}

// SetNillableIsForced sets the "is_forced" field if the given value is not nil.
func (_c *TicketCreate) SetNillableIsForced(v *bool) *TicketCreate {
	if v != nil {
		_c.SetIsForced(*v)
	}
	return _c
}

// SetExecutionMode sets the "execution_mode" field.
func (_c *TicketCreate) SetExecutionMode(v ticket.ExecutionMode) *TicketCreate {
	_c.mutation.SetExecutionMode(v)
	return _c
}

// SetNillableExecutionMode sets the "execution_mode" field if the given value is not nil.
func (_c *TicketCreate) SetNillableExecutionMode(v *ticket.ExecutionMode) *TicketCreate {
	if v != nil {
		_c.SetExecutionMode(*v)
	}
	return _c
}

// SetDepsIncludeAwaiting sets the "deps_include_awaiting" field.
func (_c *TicketCreate) SetDepsIncludeAwaiting(v bool) *TicketCreate {
	_c.mutation.SetDepsIncludeAwaiting(v)
	return _c
}

// SetNillableDepsIncludeAwaiting sets the "deps_include_awaiting" field if the given value is not nil.
func (_c *TicketCreate) SetNillableDepsIncludeAwaiting(v *bool) *TicketCreate {
	if v != nil {
		_c.SetDepsIncludeAwaiting(*v)
	}
	return _c
}

// SetModelTier sets the "model_tier" field.
func (_c *TicketCreate) SetModelTier(v ticket.ModelTier) *TicketCreate {
	_c.mutation.SetModelTier(v)
	return _c
}

// SetNillableModelTier sets the "model_tier" field if the given value is not nil.
func (_c *TicketCreate) SetNillableModelTier(v *ticket.ModelTier) *TicketCreate {
	if v != nil {
		_c.SetModelTier(*v)
	}
	return _c
}

// SetMaxRetries sets the "max_retries" field.
func (_c *TicketCreate) SetMaxRetries(v int) *TicketCreate {
	_c.mutation.SetMaxRetries(v)
	return _c
}

// SetNillableMaxRetries sets the "max_retries" field if the given value is not nil.
func (_c *TicketCreate) SetNillableMaxRetries(v *int) *TicketCreate {
	if v != nil {
		_c.SetMaxRetries(*v)
	}
	return _c
}

// SetRetryCount sets the "retry_count" field.
func (_c *TicketCreate) SetRetryCount(v int) *TicketCreate {
	_c.mutation.SetRetryCount(v)
	return _c
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_c *TicketCreate) SetNillableRetryCount(v *int) *TicketCreate {
	if v != nil {
		_c.SetRetryCount(*v)
	}
	return _c
}

// SetRetryAfter sets the "retry_after" field.
func (_c *TicketCreate) SetRetryAfter(v time.Time) *TicketCreate {
	_c.mutation.SetRetryAfter(v)
	return _c
}

// SetNillableRetryAfter sets the "retry_after" field if the given value is not nil.
func (_c *TicketCreate) SetNillableRetryAfter(v *time.Time) *TicketCreate {
	if v != nil {
		_c.SetRetryAfter(*v)
	}
	return _c
}

// SetReviewScheduledAt sets the "review_scheduled_at" field.
func (_c *TicketCreate) SetReviewScheduledAt(v time.Time) *TicketCreate {
	_c.mutation.SetReviewScheduledAt(v)
	return _c
}

// SetNillableReviewScheduledAt sets the "review_scheduled_at" field if the given value is not nil.
func (_c *TicketCreate) SetNillableReviewScheduledAt(v *time.Time) *TicketCreate {
	if v != nil {
		_c.SetReviewScheduledAt(*v)
	}
	return _c
}

// SetReviewAttempts sets the "review_attempts" field.
func (_c *TicketCreate) SetReviewAttempts(v int) *TicketCreate {
	_c.mutation.SetReviewAttempts(v)
	return _c
}

// SetNillableReviewAttempts sets the "review_attempts" field if the given value is not nil.
func (_c *TicketCreate) SetNillableReviewAttempts(v *int) *TicketCreate {
	if v != nil {
		_c.SetReviewAttempts(*v)
	}
	return _c
}

// SetAwaitingReason sets the "awaiting_reason" field.
func (_c *TicketCreate) SetAwaitingReason(v ticket.AwaitingReason) *TicketCreate {
	_c.mutation.SetAwaitingReason(v)
	return _c
}

// SetNillableAwaitingReason sets the "awaiting_reason" field if the given value is not nil.
func (_c *TicketCreate) SetNillableAwaitingReason(v *ticket.AwaitingReason) *TicketCreate {
	if v != nil {
		_c.SetAwaitingReason(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *TicketCreate) SetStatus(v ticket.Status) *TicketCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TicketCreate) SetNillableStatus(v *ticket.Status) *TicketCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetResultSummary sets the "result_summary" field.
func (_c *TicketCreate) SetResultSummary(v string) *TicketCreate {
	_c.mutation.SetResultSummary(v)
	return _c
}

// SetNillableResultSummary sets the "result_summary" field if the given value is not nil.
func (_c *TicketCreate) SetNillableResultSummary(v *string) *TicketCreate {
	if v != nil {
		_c.SetResultSummary(*v)
	}
	return _c
}

// SetUnsummarizedTokens sets the "unsummarized_tokens" field.
func (_c *TicketCreate) SetUnsummarizedTokens(v int) *TicketCreate {
	_c.mutation.SetUnsummarizedTokens(v)
	return _c
}

// SetNillableUnsummarizedTokens sets the "unsummarized_tokens" field if the given value is not nil.
func (_c *TicketCreate) SetNillableUnsummarizedTokens(v *int) *TicketCreate {
	if v != nil {
		_c.SetUnsummarizedTokens(*v)
	}
	return _c
}

// SetTotalTokens sets the "total_tokens" field.
func (_c *TicketCreate) SetTotalTokens(v int64) *TicketCreate {
	_c.mutation.SetTotalTokens(v)
	return _c
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_c *TicketCreate) SetNillableTotalTokens(v *int64) *TicketCreate {
	if v != nil {
		_c.SetTotalTokens(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TicketCreate) SetCreatedAt(v time.Time) *TicketCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TicketCreate) SetNillableCreatedAt(v *time.Time) *TicketCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TicketCreate) SetUpdatedAt(v time.Time) *TicketCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TicketCreate) SetNillableUpdatedAt(v *time.Time) *TicketCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *TicketCreate) SetProject(v *Project) *TicketCreate {
	return _c.SetProjectID(v.ID)
}

// SetParentID sets the "parent" edge to the Ticket entity by ID.
func (_c *TicketCreate) SetParentID(id int) *TicketCreate {
	_c.mutation.SetParentID(id)
	return _c
}

// SetNillableParentID sets the "parent" edge to the Ticket entity by ID if the given value is not nil.
func (_c *TicketCreate) SetNillableParentID(id *int) *TicketCreate {
	if id != nil {
		_c = _c.SetParentID(*id)
	}
	return _c
}

// SetParent sets the "parent" edge to the Ticket entity.
func (_c *TicketCreate) SetParent(v *Ticket) *TicketCreate {
	return _c.SetParentID(v.ID)
}

// AddChildIDs adds the "children" edge to the Ticket entity by IDs.
func (_c *TicketCreate) AddChildIDs(ids ...int) *TicketCreate {
	_c.mutation.AddChildIDs(ids...)
	return _c
}

// AddChildren adds the "children" edges to the Ticket entity.
func (_c *TicketCreate) AddChildren(v ...*Ticket) *TicketCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddChildIDs(ids...)
}

// AddMessageIDs adds the "messages" edge to the Message entity by IDs.
func (_c *TicketCreate) AddMessageIDs(ids ...int) *TicketCreate {
	_c.mutation.AddMessageIDs(ids...)
	return _c
}

// AddMessages adds the "messages" edges to the Message entity.
func (_c *TicketCreate) AddMessages(v ...*Message) *TicketCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMessageIDs(ids...)
}

// AddExtractionIDs adds the "extractions" edge to the Extraction entity by IDs.
func (_c *TicketCreate) AddExtractionIDs(ids ...int) *TicketCreate {
	_c.mutation.AddExtractionIDs(ids...)
	return _c
}

// AddExtractions adds the "extractions" edges to the Extraction entity.
func (_c *TicketCreate) AddExtractions(v ...*Extraction) *TicketCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddExtractionIDs(ids...)
}

// AddSessionIDs adds the "sessions" edge to the ExecutionSession entity by IDs.
func (_c *TicketCreate) AddSessionIDs(ids ...string) *TicketCreate {
	_c.mutation.AddSessionIDs(ids...)
	return _c
}

// AddSessions adds the "sessions" edges to the ExecutionSession entity.
func (_c *TicketCreate) AddSessions(v ...*ExecutionSession) *TicketCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSessionIDs(ids...)
}

// AddPermissionIDs adds the "permissions" edge to the ApprovedPermission entity by IDs.
func (_c *TicketCreate) AddPermissionIDs(ids ...int) *TicketCreate {
	_c.mutation.AddPermissionIDs(ids...)
	return _c
}

// AddPermissions adds the "permissions" edges to the ApprovedPermission entity.
func (_c *TicketCreate) AddPermissions(v ...*ApprovedPermission) *TicketCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPermissionIDs(ids...)
}

// AddDependencyIDs adds the "dependencies" edge to the TicketDependency entity by IDs.
func (_c *TicketCreate) AddDependencyIDs(ids ...int) *TicketCreate {
	_c.mutation.AddDependencyIDs(ids...)
	return _c
}

// AddDependencies adds the "dependencies" edges to the TicketDependency entity.
func (_c *TicketCreate) AddDependencies(v ...*TicketDependency) *TicketCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDependencyIDs(ids...)
}

// AddDependentIDs adds the "dependents" edge to the TicketDependency entity by IDs.
func (_c *TicketCreate) AddDependentIDs(ids ...int) *TicketCreate {
	_c.mutation.AddDependentIDs(ids...)
	return _c
}

// AddDependents adds the "dependents" edges to the TicketDependency entity.
func (_c *TicketCreate) AddDependents(v ...*TicketDependency) *TicketCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDependentIDs(ids...)
}

// Mutation returns the TicketMutation object of the builder.
func (_c *TicketCreate) Mutation() *TicketMutation {
	return _c.mutation
}

// Save creates the Ticket in the database.
func (_c *TicketCreate) Save(ctx context.Context) (*Ticket, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TicketCreate) SaveX(ctx context.Context) *Ticket {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TicketCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TicketCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TicketCreate) defaults() {
	if _, ok := _c.mutation.TicketType(); !ok {
		v := ticket.DefaultTicketType
		_c.mutation.SetTicketType(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := ticket.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.IsForced(); !ok {
		v := ticket.DefaultIsForced
		_c.mutation.SetIsForced(v)
	}
	if _, ok := _c.mutation.DepsIncludeAwaiting(); !ok {
		v := ticket.DefaultDepsIncludeAwaiting
		_c.mutation.SetDepsIncludeAwaiting(v)
	}
	if _, ok := _c.mutation.MaxRetries(); !ok {
		v := ticket.DefaultMaxRetries
		_c.mutation.SetMaxRetries(v)
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		v := ticket.DefaultRetryCount
		_c.mutation.SetRetryCount(v)
	}
	if _, ok := _c.mutation.ReviewAttempts(); !ok {
		v := ticket.DefaultReviewAttempts
		_c.mutation.SetReviewAttempts(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := ticket.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.UnsummarizedTokens(); !ok {
		v := ticket.DefaultUnsummarizedTokens
		_c.mutation.SetUnsummarizedTokens(v)
	}
	if _, ok := _c.mutation.TotalTokens(); !ok {
		v := ticket.DefaultTotalTokens
		_c.mutation.SetTotalTokens(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := ticket.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := ticket.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TicketCreate) check() error {
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "Ticket.project_id"`)}
	}
	if _, ok := _c.mutation.TicketNumber(); !ok {
		return &ValidationError{Name: "ticket_number", err: errors.New(`ent: missing required field "Ticket.ticket_number"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Ticket.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := ticket.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Ticket.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TicketType(); !ok {
		return &ValidationError{Name: "ticket_type", err: errors.New(`ent: missing required field "Ticket.ticket_type"`)}
	}
	if v, ok := _c.mutation.TicketType(); ok {
		if err := ticket.TicketTypeValidator(v); err != nil {
			return &ValidationError{Name: "ticket_type", err: fmt.Errorf(`ent: validator failed for field "Ticket.ticket_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "Ticket.priority"`)}
	}
	if v, ok := _c.mutation.Priority(); ok {
		if err := ticket.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Ticket.priority": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsForced(); !ok {
		return &ValidationError{Name: "is_forced", err: errors.New(`ent: missing required field "Ticket.is_forced"`)}
	}
	if v, ok := _c.mutation.ExecutionMode(); ok {
		if err := ticket.ExecutionModeValidator(v); err != nil {
			return &ValidationError{Name: "execution_mode", err: fmt.Errorf(`ent: validator failed for field "Ticket.execution_mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DepsIncludeAwaiting(); !ok {
		return &ValidationError{Name: "deps_include_awaiting", err: errors.New(`ent: missing required field "Ticket.deps_include_awaiting"`)}
	}
	if v, ok := _c.mutation.ModelTier(); ok {
		if err := ticket.ModelTierValidator(v); err != nil {
			return &ValidationError{Name: "model_tier", err: fmt.Errorf(`ent: validator failed for field "Ticket.model_tier": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MaxRetries(); !ok {
		return &ValidationError{Name: "max_retries", err: errors.New(`ent: missing required field "Ticket.max_retries"`)}
	}
	if v, ok := _c.mutation.MaxRetries(); ok {
		if err := ticket.MaxRetriesValidator(v); err != nil {
			return &ValidationError{Name: "max_retries", err: fmt.Errorf(`ent: validator failed for field "Ticket.max_retries": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		return &ValidationError{Name: "retry_count", err: errors.New(`ent: missing required field "Ticket.retry_count"`)}
	}
	if v, ok := _c.mutation.RetryCount(); ok {
		if err := ticket.RetryCountValidator(v); err != nil {
			return &ValidationError{Name: "retry_count", err: fmt.Errorf(`ent: validator failed for field "Ticket.retry_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ReviewAttempts(); !ok {
		return &ValidationError{Name: "review_attempts", err: errors.New(`ent: missing required field "Ticket.review_attempts"`)}
	}
	if v, ok := _c.mutation.AwaitingReason(); ok {
		if err := ticket.AwaitingReasonValidator(v); err != nil {
			return &ValidationError{Name: "awaiting_reason", err: fmt.Errorf(`ent: validator failed for field "Ticket.awaiting_reason": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Ticket.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := ticket.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Ticket.status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.ResultSummary(); ok {
		if err := ticket.ResultSummaryValidator(v); err != nil {
			return &ValidationError{Name: "result_summary", err: fmt.Errorf(`ent: validator failed for field "Ticket.result_summary": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UnsummarizedTokens(); !ok {
		return &ValidationError{Name: "unsummarized_tokens", err: errors.New(`ent: missing required field "Ticket.unsummarized_tokens"`)}
	}
	if _, ok := _c.mutation.TotalTokens(); !ok {
		return &ValidationError{Name: "total_tokens", err: errors.New(`ent: missing required field "Ticket.total_tokens"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Ticket.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Ticket.updated_at"`)}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "Ticket.project"`)}
	}
	return nil
}

func (_c *TicketCreate) sqlSave(ctx context.Context) (*Ticket, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TicketCreate) createSpec() (*Ticket, *sqlgraph.CreateSpec) {
	var (
		_node = &Ticket{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(ticket.Table, sqlgraph.NewFieldSpec(ticket.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.TicketNumber(); ok {
		_spec.SetField(ticket.FieldTicketNumber, field.TypeString, value)
		_node.TicketNumber = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(ticket.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(ticket.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.TicketType(); ok {
		_spec.SetField(ticket.FieldTicketType, field.TypeEnum, value)
		_node.TicketType = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(ticket.FieldPriority, field.TypeEnum, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.SequenceOrder(); ok {
		_spec.SetField(ticket.FieldSequenceOrder, field.TypeInt, value)
		_node.SequenceOrder = &value
	}
	if value, ok := _c.mutation.IsForced(); ok {
		_spec.SetField(ticket.FieldIsForced, field.TypeBool, value)
		_node.IsForced = value
	}
	if value, ok := _c.mutation.ExecutionMode(); ok {
		_spec.SetField(ticket.FieldExecutionMode, field.TypeEnum, value)
		_node.ExecutionMode = &value
	}
	if value, ok := _c.mutation.DepsIncludeAwaiting(); ok {
		_spec.SetField(ticket.FieldDepsIncludeAwaiting, field.TypeBool, value)
		_node.DepsIncludeAwaiting = value
	}
	if value, ok := _c.mutation.ModelTier(); ok {
		_spec.SetField(ticket.FieldModelTier, field.TypeEnum, value)
		_node.ModelTier = &value
	}
	if value, ok := _c.mutation.MaxRetries(); ok {
		_spec.SetField(ticket.FieldMaxRetries, field.TypeInt, value)
		_node.MaxRetries = value
	}
	if value, ok := _c.mutation.RetryCount(); ok {
		_spec.SetField(ticket.FieldRetryCount, field.TypeInt, value)
		_node.RetryCount = value
	}
	if value, ok := _c.mutation.RetryAfter(); ok {
		_spec.SetField(ticket.FieldRetryAfter, field.TypeTime, value)
		_node.RetryAfter = &value
	}
	if value, ok := _c.mutation.ReviewScheduledAt(); ok {
		_spec.SetField(ticket.FieldReviewScheduledAt, field.TypeTime, value)
		_node.ReviewScheduledAt = &value
	}
	if value, ok := _c.mutation.ReviewAttempts(); ok {
		_spec.SetField(ticket.FieldReviewAttempts, field.TypeInt, value)
		_node.ReviewAttempts = value
	}
	if value, ok := _c.mutation.AwaitingReason(); ok {
		_spec.SetField(ticket.FieldAwaitingReason, field.TypeEnum, value)
		_node.AwaitingReason = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(ticket.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ResultSummary(); ok {
		_spec.SetField(ticket.FieldResultSummary, field.TypeString, value)
		_node.ResultSummary = &value
	}
	if value, ok := _c.mutation.UnsummarizedTokens(); ok {
		_spec.SetField(ticket.FieldUnsummarizedTokens, field.TypeInt, value)
		_node.UnsummarizedTokens = value
	}
	if value, ok := _c.mutation.TotalTokens(); ok {
		_spec.SetField(ticket.FieldTotalTokens, field.TypeInt64, value)
		_node.TotalTokens = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(ticket.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(ticket.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   ticket.ProjectTable,
			Columns: []string{ticket.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ProjectID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ParentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   ticket.ParentTable,
			Columns: []string{ticket.ParentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ticket.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ParentTicketID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ChildrenIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   ticket.ChildrenTable,
			Columns: []string{ticket.ChildrenColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ticket.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   ticket.MessagesTable,
			Columns: []string{ticket.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ExtractionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   ticket.ExtractionsTable,
			Columns: []string{ticket.ExtractionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extraction.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SessionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   ticket.SessionsTable,
			Columns: []string{ticket.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(executionsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PermissionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   ticket.PermissionsTable,
			Columns: []string{ticket.PermissionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(approvedpermission.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DependenciesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   ticket.DependenciesTable,
			Columns: []string{ticket.DependenciesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ticketdependency.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DependentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   ticket.DependentsTable,
			Columns: []string{ticket.DependentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ticketdependency.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Ticket.Create().
//		SetProjectID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TicketUpsert) {
//			SetProjectID(v+v).
//		}).
//		Exec(ctx)
func (_c *TicketCreate) OnConflict(opts ...sql.ConflictOption) *TicketUpsertOne {
	_c.conflict = opts
	return &TicketUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Ticket.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TicketCreate) OnConflictColumns(columns ...string) *TicketUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TicketUpsertOne{
		create: _c,
	}
}

type (
	// TicketUpsertOne is the builder for "upsert"-ing
	//  one Ticket node.
	TicketUpsertOne struct {
		create *TicketCreate
	}

	// TicketUpsert is the "OnConflict" setter.
	TicketUpsert struct {
		*sql.UpdateSet
	}
)

// SetTitle sets the "title" field.
func (u *TicketUpsert) SetTitle(v string) *TicketUpsert {
	u.Set(ticket.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *TicketUpsert) UpdateTitle() *TicketUpsert {
	u.SetExcluded(ticket.FieldTitle)
	return u
}

// SetDescription sets the "description" field.
func (u *TicketUpsert) SetDescription(v string) *TicketUpsert {
	u.Set(ticket.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *TicketUpsert) UpdateDescription() *TicketUpsert {
	u.SetExcluded(ticket.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *TicketUpsert) ClearDescription() *TicketUpsert {
	u.SetNull(ticket.FieldDescription)
	return u
}

// SetTicketType sets the "ticket_type" field.
func (u *TicketUpsert) SetTicketType(v ticket.TicketType) *TicketUpsert {
	u.Set(ticket.FieldTicketType, v)
	return u
}

// UpdateTicketType sets the "ticket_type" field to the value that was provided on create.
func (u *TicketUpsert) UpdateTicketType() *TicketUpsert {
	u.SetExcluded(ticket.FieldTicketType)
	return u
}

// SetPriority sets the "priority" field.
func (u *TicketUpsert) SetPriority(v ticket.Priority) *TicketUpsert {
	u.Set(ticket.FieldPriority, v)
	return u
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *TicketUpsert) UpdatePriority() *TicketUpsert {
	u.SetExcluded(ticket.FieldPriority)
	return u
}

// SetSequenceOrder sets the "sequence_order" field.
func (u *TicketUpsert) SetSequenceOrder(v int) *TicketUpsert {
	u.Set(ticket.FieldSequenceOrder, v)
	return u
}

// UpdateSequenceOrder sets the "sequence_order" field to the value that was provided on create.
func (u *TicketUpsert) UpdateSequenceOrder() *TicketUpsert {
	u.SetExcluded(ticket.FieldSequenceOrder)
	return u
}

// AddSequenceOrder adds v to the "sequence_order" field.
func (u *TicketUpsert) AddSequenceOrder(v int) *TicketUpsert {
	u.Add(ticket.FieldSequenceOrder, v)
	return u
}

// ClearSequenceOrder clears the value of the "sequence_order" field.
func (u *TicketUpsert) ClearSequenceOrder() *TicketUpsert {
	u.SetNull(ticket.FieldSequenceOrder)
	return u
}

// SetParentTicketID sets the "parent_ticket_id" field.
func (u *TicketUpsert) SetParentTicketID(v int) *TicketUpsert {
	u.Set(ticket.FieldParentTicketID, v)
	return u
}

// UpdateParentTicketID sets the "parent_ticket_id" field to the value that was provided on create.
func (u *TicketUpsert) UpdateParentTicketID() *TicketUpsert {
	u.SetExcluded(ticket.FieldParentTicketID)
	return u
}

// ClearParentTicketID clears the value of the "parent_ticket_id" field.
func (u *TicketUpsert) ClearParentTicketID() *TicketUpsert {
	u.SetNull(ticket.FieldParentTicketID)
	return u
}

// SetIsForced sets the "is_forced" field.
func (u *TicketUpsert) SetIsForced(v bool) *TicketUpsert {
	u.Set(ticket.FieldIsForced, v)
	return u
}

// UpdateIsForced sets the "is_forced" field to the value that was provided on create.
func (u *TicketUpsert) UpdateIsForced() *TicketUpsert {
	u.SetExcluded(ticket.FieldIsForced)
	return u
}

// SetExecutionMode sets the "execution_mode" field.
func (u *TicketUpsert) SetExecutionMode(v ticket.ExecutionMode) *TicketUpsert {
	u.Set(ticket.FieldExecutionMode, v)
	return u
}

// UpdateExecutionMode sets the "execution_mode" field to the value that was provided on create.
func (u *TicketUpsert) UpdateExecutionMode() *TicketUpsert {
	u.SetExcluded(ticket.FieldExecutionMode)
	return u
}

// ClearExecutionMode clears the value of the "execution_mode" field.
func (u *TicketUpsert) ClearExecutionMode() *TicketUpsert {
	u.SetNull(ticket.FieldExecutionMode)
	return u
}

// SetDepsIncludeAwaiting sets the "deps_include_awaiting" field.
func (u *TicketUpsert) SetDepsIncludeAwaiting(v bool) *TicketUpsert {
	u.Set(ticket.FieldDepsIncludeAwaiting, v)
	return u
}

// UpdateDepsIncludeAwaiting sets the "deps_include_awaiting" field to the value that was provided on create.
func (u *TicketUpsert) UpdateDepsIncludeAwaiting() *TicketUpsert {
	u.SetExcluded(ticket.FieldDepsIncludeAwaiting)
	return u
}

// SetModelTier sets the "model_tier" field.
func (u *TicketUpsert) SetModelTier(v ticket.ModelTier) *TicketUpsert {
	u.Set(ticket.FieldModelTier, v)
	return u
}

// UpdateModelTier sets the "model_tier" field to the value that was provided on create.
func (u *TicketUpsert) UpdateModelTier() *TicketUpsert {
	u.SetExcluded(ticket.FieldModelTier)
	return u
}

// ClearModelTier clears the value of the "model_tier" field.
func (u *TicketUpsert) ClearModelTier() *TicketUpsert {
	u.SetNull(ticket.FieldModelTier)
	return u
}

// SetMaxRetries sets the "max_retries" field.
func (u *TicketUpsert) SetMaxRetries(v int) *TicketUpsert {
	u.Set(ticket.FieldMaxRetries, v)
	return u
}

// UpdateMaxRetries sets the "max_retries" field to the value that was provided on create.
func (u *TicketUpsert) UpdateMaxRetries() *TicketUpsert {
	u.SetExcluded(ticket.FieldMaxRetries)
	return u
}

// AddMaxRetries adds v to the "max_retries" field.
func (u *TicketUpsert) AddMaxRetries(v int) *TicketUpsert {
	u.Add(ticket.FieldMaxRetries, v)
	return u
}

// SetRetryCount sets the "retry_count" field.
func (u *TicketUpsert) SetRetryCount(v int) *TicketUpsert {
	u.Set(ticket.FieldRetryCount, v)
	return u
}

// UpdateRetryCount sets the "retry_count" field to the value that was provided on create.
func (u *TicketUpsert) UpdateRetryCount() *TicketUpsert {
	u.SetExcluded(ticket.FieldRetryCount)
	return u
}

// AddRetryCount adds v to the "retry_count" field.
func (u *TicketUpsert) AddRetryCount(v int) *TicketUpsert {
	u.Add(ticket.FieldRetryCount, v)
	return u
}

// SetRetryAfter sets the "retry_after" field.
func (u *TicketUpsert) SetRetryAfter(v time.Time) *TicketUpsert {
	u.Set(ticket.FieldRetryAfter, v)
	return u
}

// UpdateRetryAfter sets the "retry_after" field to the value that was provided on create.
func (u *TicketUpsert) UpdateRetryAfter() *TicketUpsert {
	u.SetExcluded(ticket.FieldRetryAfter)
	return u
}

// ClearRetryAfter clears the value of the "retry_after" field.
func (u *TicketUpsert) ClearRetryAfter() *TicketUpsert {
	u.SetNull(ticket.FieldRetryAfter)
	return u
}

// SetReviewScheduledAt sets the "review_scheduled_at" field.
func (u *TicketUpsert) SetReviewScheduledAt(v time.Time) *TicketUpsert {
	u.Set(ticket.FieldReviewScheduledAt, v)
	return u
}

// UpdateReviewScheduledAt sets the "review_scheduled_at" field to the value that was provided on create.
func (u *TicketUpsert) UpdateReviewScheduledAt() *TicketUpsert {
	u.SetExcluded(ticket.FieldReviewScheduledAt)
	return u
}

// ClearReviewScheduledAt clears the value of the "review_scheduled_at" field.
func (u *TicketUpsert) ClearReviewScheduledAt() *TicketUpsert {
	u.SetNull(ticket.FieldReviewScheduledAt)
	return u
}

// SetReviewAttempts sets the "review_attempts" field.
func (u *TicketUpsert) SetReviewAttempts(v int) *TicketUpsert {
	u.Set(ticket.FieldReviewAttempts, v)
	return u
}

// UpdateReviewAttempts sets the "review_attempts" field to the value that was provided on create.
func (u *TicketUpsert) UpdateReviewAttempts() *TicketUpsert {
	u.SetExcluded(ticket.FieldReviewAttempts)
	return u
}

// AddReviewAttempts adds v to the "review_attempts" field.
func (u *TicketUpsert) AddReviewAttempts(v int) *TicketUpsert {
	u.Add(ticket.FieldReviewAttempts, v)
	return u
}

// SetAwaitingReason sets the "awaiting_reason" field.
func (u *TicketUpsert) SetAwaitingReason(v ticket.AwaitingReason) *TicketUpsert {
	u.Set(ticket.FieldAwaitingReason, v)
	return u
}

// UpdateAwaitingReason sets the "awaiting_reason" field to the value that was provided on create.
func (u *TicketUpsert) UpdateAwaitingReason() *TicketUpsert {
	u.SetExcluded(ticket.FieldAwaitingReason)
	return u
}

// ClearAwaitingReason clears the value of the "awaiting_reason" field.
func (u *TicketUpsert) ClearAwaitingReason() *TicketUpsert {
	u.SetNull(ticket.FieldAwaitingReason)
	return u
}

// SetStatus sets the "status" field.
func (u *TicketUpsert) SetStatus(v ticket.Status) *TicketUpsert {
	u.Set(ticket.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TicketUpsert) UpdateStatus() *TicketUpsert {
	u.SetExcluded(ticket.FieldStatus)
	return u
}

// SetResultSummary sets the "result_summary" field.
func (u *TicketUpsert) SetResultSummary(v string) *TicketUpsert {
	u.Set(ticket.FieldResultSummary, v)
	return u
}

// UpdateResultSummary sets the "result_summary" field to the value that was provided on create.
func (u *TicketUpsert) UpdateResultSummary() *TicketUpsert {
	u.SetExcluded(ticket.FieldResultSummary)
	return u
}

// ClearResultSummary clears the value of the "result_summary" field.
func (u *TicketUpsert) ClearResultSummary() *TicketUpsert {
	u.SetNull(ticket.FieldResultSummary)
	return u
}

// SetUnsummarizedTokens sets the "unsummarized_tokens" field.
func (u *TicketUpsert) SetUnsummarizedTokens(v int) *TicketUpsert {
	u.Set(ticket.FieldUnsummarizedTokens, v)
	return u
}

// UpdateUnsummarizedTokens sets the "unsummarized_tokens" field to the value that was provided on create.
func (u *TicketUpsert) UpdateUnsummarizedTokens() *TicketUpsert {
	u.SetExcluded(ticket.FieldUnsummarizedTokens)
	return u
}

// AddUnsummarizedTokens adds v to the "unsummarized_tokens" field.
func (u *TicketUpsert) AddUnsummarizedTokens(v int) *TicketUpsert {
	u.Add(ticket.FieldUnsummarizedTokens, v)
	return u
}

// SetTotalTokens sets the "total_tokens" field.
func (u *TicketUpsert) SetTotalTokens(v int64) *TicketUpsert {
	u.Set(ticket.FieldTotalTokens, v)
	return u
}

// UpdateTotalTokens sets the "total_tokens" field to the value that was provided on create.
func (u *TicketUpsert) UpdateTotalTokens() *TicketUpsert {
	u.SetExcluded(ticket.FieldTotalTokens)
	return u
}

// AddTotalTokens adds v to the "total_tokens" field.
func (u *TicketUpsert) AddTotalTokens(v int64) *TicketUpsert {
	u.Add(ticket.FieldTotalTokens, v)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TicketUpsert) SetUpdatedAt(v time.Time) *TicketUpsert {
	u.Set(ticket.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TicketUpsert) UpdateUpdatedAt() *TicketUpsert {
	u.SetExcluded(ticket.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Ticket.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *TicketUpsertOne) UpdateNewValues() *TicketUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ProjectID(); exists {
			s.SetIgnore(ticket.FieldProjectID)
		}
		if _, exists := u.create.mutation.TicketNumber(); exists {
			s.SetIgnore(ticket.FieldTicketNumber)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(ticket.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Ticket.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TicketUpsertOne) Ignore() *TicketUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TicketUpsertOne) DoNothing() *TicketUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TicketCreate.OnConflict
// documentation for more info.
func (u *TicketUpsertOne) Update(set func(*TicketUpsert)) *TicketUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TicketUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *TicketUpsertOne) SetTitle(v string) *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *TicketUpsertOne) UpdateTitle() *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *TicketUpsertOne) SetDescription(v string) *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *TicketUpsertOne) UpdateDescription() *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *TicketUpsertOne) ClearDescription() *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.ClearDescription()
	})
}

// SetTicketType sets the "ticket_type" field.
func (u *TicketUpsertOne) SetTicketType(v ticket.TicketType) *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.SetTicketType(v)
	})
}

// UpdateTicketType sets the "ticket_type" field to the value that was provided on create.
func (u *TicketUpsertOne) UpdateTicketType() *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateTicketType()
	})
}

// SetPriority sets the "priority" field.
func (u *TicketUpsertOne) SetPriority(v ticket.Priority) *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.SetPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *TicketUpsertOne) UpdatePriority() *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.UpdatePriority()
	})
}

// SetSequenceOrder sets the "sequence_order" field.
func (u *TicketUpsertOne) SetSequenceOrder(v int) *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.SetSequenceOrder(v)
	})
}

// AddSequenceOrder adds v to the "sequence_order" field.
func (u *TicketUpsertOne) AddSequenceOrder(v int) *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.AddSequenceOrder(v)
	})
}

// UpdateSequenceOrder sets the "sequence_order" field to the value that was provided on create.
func (u *TicketUpsertOne) UpdateSequenceOrder() *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateSequenceOrder()
	})
}

// ClearSequenceOrder clears the value of the "sequence_order" field.
func (u *TicketUpsertOne) ClearSequenceOrder() *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.ClearSequenceOrder()
	})
}

// SetParentTicketID sets the "parent_ticket_id" field.
func (u *TicketUpsertOne) SetParentTicketID(v int) *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.SetParentTicketID(v)
	})
}

// UpdateParentTicketID sets the "parent_ticket_id" field to the value that was provided on create.
func (u *TicketUpsertOne) UpdateParentTicketID() *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateParentTicketID()
	})
}

// ClearParentTicketID clears the value of the "parent_ticket_id" field.
func (u *TicketUpsertOne) ClearParentTicketID() *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.ClearParentTicketID()
	})
}

// SetIsForced sets the "is_forced" field.
func (u *TicketUpsertOne) SetIsForced(v bool) *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.SetIsForced(v)
	})
}

// UpdateIsForced sets the "is_forced" field to the value that was provided on create.
func (u *TicketUpsertOne) UpdateIsForced() *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateIsForced()
	})
}

// SetExecutionMode sets the "execution_mode" field.
func (u *TicketUpsertOne) SetExecutionMode(v ticket.ExecutionMode) *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.SetExecutionMode(v)
	})
}

// UpdateExecutionMode sets the "execution_mode" field to the value that was provided on create.
func (u *TicketUpsertOne) UpdateExecutionMode() *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateExecutionMode()
	})
}

// ClearExecutionMode clears the value of the "execution_mode" field.
func (u *TicketUpsertOne) ClearExecutionMode() *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.ClearExecutionMode()
	})
}

// SetDepsIncludeAwaiting sets the "deps_include_awaiting" field.
func (u *TicketUpsertOne) SetDepsIncludeAwaiting(v bool) *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.SetDepsIncludeAwaiting(v)
	})
}

// UpdateDepsIncludeAwaiting sets the "deps_include_awaiting" field to the value that was provided on create.
func (u *TicketUpsertOne) UpdateDepsIncludeAwaiting() *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateDepsIncludeAwaiting()
	})
}

// SetModelTier sets the "model_tier" field.
func (u *TicketUpsertOne) SetModelTier(v ticket.ModelTier) *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.SetModelTier(v)
	})
}

// UpdateModelTier sets the "model_tier" field to the value that was provided on create.
func (u *TicketUpsertOne) UpdateModelTier() *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateModelTier()
	})
}

// ClearModelTier clears the value of the "model_tier" field.
func (u *TicketUpsertOne) ClearModelTier() *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.ClearModelTier()
	})
}

// SetMaxRetries sets the "max_retries" field.
func (u *TicketUpsertOne) SetMaxRetries(v int) *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.SetMaxRetries(v)
	})
}

// AddMaxRetries adds v to the "max_retries" field.
func (u *TicketUpsertOne) AddMaxRetries(v int) *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.AddMaxRetries(v)
	})
}

// UpdateMaxRetries sets the "max_retries" field to the value that was provided on create.
func (u *TicketUpsertOne) UpdateMaxRetries() *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateMaxRetries()
	})
}

// SetRetryCount sets the "retry_count" field.
func (u *TicketUpsertOne) SetRetryCount(v int) *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.SetRetryCount(v)
	})
}

// AddRetryCount adds v to the "retry_count" field.
func (u *TicketUpsertOne) AddRetryCount(v int) *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.AddRetryCount(v)
	})
}

// UpdateRetryCount sets the "retry_count" field to the value that was provided on create.
func (u *TicketUpsertOne) UpdateRetryCount() *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateRetryCount()
	})
}

// SetRetryAfter sets the "retry_after" field.
func (u *TicketUpsertOne) SetRetryAfter(v time.Time) *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.SetRetryAfter(v)
	})
}

// UpdateRetryAfter sets the "retry_after" field to the value that was provided on create.
func (u *TicketUpsertOne) UpdateRetryAfter() *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateRetryAfter()
	})
}

// ClearRetryAfter clears the value of the "retry_after" field.
func (u *TicketUpsertOne) ClearRetryAfter() *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.ClearRetryAfter()
	})
}

// SetReviewScheduledAt sets the "review_scheduled_at" field.
func (u *TicketUpsertOne) SetReviewScheduledAt(v time.Time) *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.SetReviewScheduledAt(v)
	})
}

// UpdateReviewScheduledAt sets the "review_scheduled_at" field to the value that was provided on create.
func (u *TicketUpsertOne) UpdateReviewScheduledAt() *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateReviewScheduledAt()
	})
}

// ClearReviewScheduledAt clears the value of the "review_scheduled_at" field.
func (u *TicketUpsertOne) ClearReviewScheduledAt() *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.ClearReviewScheduledAt()
	})
}

// SetReviewAttempts sets the "review_attempts" field.
func (u *TicketUpsertOne) SetReviewAttempts(v int) *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.SetReviewAttempts(v)
	})
}

// AddReviewAttempts adds v to the "review_attempts" field.
func (u *TicketUpsertOne) AddReviewAttempts(v int) *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.AddReviewAttempts(v)
	})
}

// UpdateReviewAttempts sets the "review_attempts" field to the value that was provided on create.
func (u *TicketUpsertOne) UpdateReviewAttempts() *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateReviewAttempts()
	})
}

// SetAwaitingReason sets the "awaiting_reason" field.
func (u *TicketUpsertOne) SetAwaitingReason(v ticket.AwaitingReason) *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.SetAwaitingReason(v)
	})
}

// UpdateAwaitingReason sets the "awaiting_reason" field to the value that was provided on create.
func (u *TicketUpsertOne) UpdateAwaitingReason() *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateAwaitingReason()
	})
}

// ClearAwaitingReason clears the value of the "awaiting_reason" field.
func (u *TicketUpsertOne) ClearAwaitingReason() *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.ClearAwaitingReason()
	})
}

// SetStatus sets the "status" field.
func (u *TicketUpsertOne) SetStatus(v ticket.Status) *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TicketUpsertOne) UpdateStatus() *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateStatus()
	})
}

// SetResultSummary sets the "result_summary" field.
func (u *TicketUpsertOne) SetResultSummary(v string) *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.SetResultSummary(v)
	})
}

// UpdateResultSummary sets the "result_summary" field to the value that was provided on create.
func (u *TicketUpsertOne) UpdateResultSummary() *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateResultSummary()
	})
}

// ClearResultSummary clears the value of the "result_summary" field.
func (u *TicketUpsertOne) ClearResultSummary() *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.ClearResultSummary()
	})
}

// SetUnsummarizedTokens sets the "unsummarized_tokens" field.
func (u *TicketUpsertOne) SetUnsummarizedTokens(v int) *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.SetUnsummarizedTokens(v)
	})
}

// AddUnsummarizedTokens adds v to the "unsummarized_tokens" field.
func (u *TicketUpsertOne) AddUnsummarizedTokens(v int) *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.AddUnsummarizedTokens(v)
	})
}

// UpdateUnsummarizedTokens sets the "unsummarized_tokens" field to the value that was provided on create.
func (u *TicketUpsertOne) UpdateUnsummarizedTokens() *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateUnsummarizedTokens()
	})
}

// SetTotalTokens sets the "total_tokens" field.
func (u *TicketUpsertOne) SetTotalTokens(v int64) *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.SetTotalTokens(v)
	})
}

// AddTotalTokens adds v to the "total_tokens" field.
func (u *TicketUpsertOne) AddTotalTokens(v int64) *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.AddTotalTokens(v)
	})
}

// UpdateTotalTokens sets the "total_tokens" field to the value that was provided on create.
func (u *TicketUpsertOne) UpdateTotalTokens() *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateTotalTokens()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TicketUpsertOne) SetUpdatedAt(v time.Time) *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TicketUpsertOne) UpdateUpdatedAt() *TicketUpsertOne {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *TicketUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TicketCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TicketUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TicketUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TicketUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TicketCreateBulk is the builder for creating many Ticket entities in bulk.
type TicketCreateBulk struct {
	config
	err      error
	builders []*TicketCreate
	conflict []sql.ConflictOption
}

// Save creates the Ticket entities in the database.
func (_c *TicketCreateBulk) Save(ctx context.Context) ([]*Ticket, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Ticket, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TicketMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TicketCreateBulk) SaveX(ctx context.Context) []*Ticket {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TicketCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TicketCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Ticket.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TicketUpsert) {
//			SetProjectID(v+v).
//		}).
//		Exec(ctx)
func (_c *TicketCreateBulk) OnConflict(opts ...sql.ConflictOption) *TicketUpsertBulk {
	_c.conflict = opts
	return &TicketUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Ticket.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TicketCreateBulk) OnConflictColumns(columns ...string) *TicketUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TicketUpsertBulk{
		create: _c,
	}
}

// TicketUpsertBulk is the builder for "upsert"-ing
// a bulk of Ticket nodes.
type TicketUpsertBulk struct {
	create *TicketCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Ticket.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *TicketUpsertBulk) UpdateNewValues() *TicketUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ProjectID(); exists {
				s.SetIgnore(ticket.FieldProjectID)
			}
			if _, exists := b.mutation.TicketNumber(); exists {
				s.SetIgnore(ticket.FieldTicketNumber)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(ticket.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Ticket.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TicketUpsertBulk) Ignore() *TicketUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TicketUpsertBulk) DoNothing() *TicketUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TicketCreateBulk.OnConflict
// documentation for more info.
func (u *TicketUpsertBulk) Update(set func(*TicketUpsert)) *TicketUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TicketUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *TicketUpsertBulk) SetTitle(v string) *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *TicketUpsertBulk) UpdateTitle() *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *TicketUpsertBulk) SetDescription(v string) *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *TicketUpsertBulk) UpdateDescription() *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *TicketUpsertBulk) ClearDescription() *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.ClearDescription()
	})
}

// SetTicketType sets the "ticket_type" field.
func (u *TicketUpsertBulk) SetTicketType(v ticket.TicketType) *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.SetTicketType(v)
	})
}

// UpdateTicketType sets the "ticket_type" field to the value that was provided on create.
func (u *TicketUpsertBulk) UpdateTicketType() *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateTicketType()
	})
}

// SetPriority sets the "priority" field.
func (u *TicketUpsertBulk) SetPriority(v ticket.Priority) *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.SetPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *TicketUpsertBulk) UpdatePriority() *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.UpdatePriority()
	})
}

// SetSequenceOrder sets the "sequence_order" field.
func (u *TicketUpsertBulk) SetSequenceOrder(v int) *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.SetSequenceOrder(v)
	})
}

// AddSequenceOrder adds v to the "sequence_order" field.
func (u *TicketUpsertBulk) AddSequenceOrder(v int) *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.AddSequenceOrder(v)
	})
}

// UpdateSequenceOrder sets the "sequence_order" field to the value that was provided on create.
func (u *TicketUpsertBulk) UpdateSequenceOrder() *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateSequenceOrder()
	})
}

// ClearSequenceOrder clears the value of the "sequence_order" field.
func (u *TicketUpsertBulk) ClearSequenceOrder() *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.ClearSequenceOrder()
	})
}

// SetParentTicketID sets the "parent_ticket_id" field.
func (u *TicketUpsertBulk) SetParentTicketID(v int) *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.SetParentTicketID(v)
	})
}

// UpdateParentTicketID sets the "parent_ticket_id" field to the value that was provided on create.
func (u *TicketUpsertBulk) UpdateParentTicketID() *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateParentTicketID()
	})
}

// ClearParentTicketID clears the value of the "parent_ticket_id" field.
func (u *TicketUpsertBulk) ClearParentTicketID() *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.ClearParentTicketID()
	})
}

// SetIsForced sets the "is_forced" field.
func (u *TicketUpsertBulk) SetIsForced(v bool) *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.SetIsForced(v)
	})
}

// UpdateIsForced sets the "is_forced" field to the value that was provided on create.
func (u *TicketUpsertBulk) UpdateIsForced() *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateIsForced()
	})
}

// SetExecutionMode sets the "execution_mode" field.
func (u *TicketUpsertBulk) SetExecutionMode(v ticket.ExecutionMode) *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.SetExecutionMode(v)
	})
}

// UpdateExecutionMode sets the "execution_mode" field to the value that was provided on create.
func (u *TicketUpsertBulk) UpdateExecutionMode() *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateExecutionMode()
	})
}

// ClearExecutionMode clears the value of the "execution_mode" field.
func (u *TicketUpsertBulk) ClearExecutionMode() *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.ClearExecutionMode()
	})
}

// SetDepsIncludeAwaiting sets the "deps_include_awaiting" field.
func (u *TicketUpsertBulk) SetDepsIncludeAwaiting(v bool) *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.SetDepsIncludeAwaiting(v)
	})
}

// UpdateDepsIncludeAwaiting sets the "deps_include_awaiting" field to the value that was provided on create.
func (u *TicketUpsertBulk) UpdateDepsIncludeAwaiting() *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateDepsIncludeAwaiting()
	})
}

// SetModelTier sets the "model_tier" field.
func (u *TicketUpsertBulk) SetModelTier(v ticket.ModelTier) *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.SetModelTier(v)
	})
}

// UpdateModelTier sets the "model_tier" field to the value that was provided on create.
func (u *TicketUpsertBulk) UpdateModelTier() *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateModelTier()
	})
}

// ClearModelTier clears the value of the "model_tier" field.
func (u *TicketUpsertBulk) ClearModelTier() *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.ClearModelTier()
	})
}

// SetMaxRetries sets the "max_retries" field.
func (u *TicketUpsertBulk) SetMaxRetries(v int) *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.SetMaxRetries(v)
	})
}

// AddMaxRetries adds v to the "max_retries" field.
func (u *TicketUpsertBulk) AddMaxRetries(v int) *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.AddMaxRetries(v)
	})
}

// UpdateMaxRetries sets the "max_retries" field to the value that was provided on create.
func (u *TicketUpsertBulk) UpdateMaxRetries() *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateMaxRetries()
	})
}

// SetRetryCount sets the "retry_count" field.
func (u *TicketUpsertBulk) SetRetryCount(v int) *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.SetRetryCount(v)
	})
}

// AddRetryCount adds v to the "retry_count" field.
func (u *TicketUpsertBulk) AddRetryCount(v int) *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.AddRetryCount(v)
	})
}

// UpdateRetryCount sets the "retry_count" field to the value that was provided on create.
func (u *TicketUpsertBulk) UpdateRetryCount() *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateRetryCount()
	})
}

// SetRetryAfter sets the "retry_after" field.
func (u *TicketUpsertBulk) SetRetryAfter(v time.Time) *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.SetRetryAfter(v)
	})
}

// UpdateRetryAfter sets the "retry_after" field to the value that was provided on create.
func (u *TicketUpsertBulk) UpdateRetryAfter() *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateRetryAfter()
	})
}

// ClearRetryAfter clears the value of the "retry_after" field.
func (u *TicketUpsertBulk) ClearRetryAfter() *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.ClearRetryAfter()
	})
}

// SetReviewScheduledAt sets the "review_scheduled_at" field.
func (u *TicketUpsertBulk) SetReviewScheduledAt(v time.Time) *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.SetReviewScheduledAt(v)
	})
}

// UpdateReviewScheduledAt sets the "review_scheduled_at" field to the value that was provided on create.
func (u *TicketUpsertBulk) UpdateReviewScheduledAt() *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateReviewScheduledAt()
	})
}

// ClearReviewScheduledAt clears the value of the "review_scheduled_at" field.
func (u *TicketUpsertBulk) ClearReviewScheduledAt() *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.ClearReviewScheduledAt()
	})
}

// SetReviewAttempts sets the "review_attempts" field.
func (u *TicketUpsertBulk) SetReviewAttempts(v int) *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.SetReviewAttempts(v)
	})
}

// AddReviewAttempts adds v to the "review_attempts" field.
func (u *TicketUpsertBulk) AddReviewAttempts(v int) *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.AddReviewAttempts(v)
	})
}

// UpdateReviewAttempts sets the "review_attempts" field to the value that was provided on create.
func (u *TicketUpsertBulk) UpdateReviewAttempts() *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateReviewAttempts()
	})
}

// SetAwaitingReason sets the "awaiting_reason" field.
func (u *TicketUpsertBulk) SetAwaitingReason(v ticket.AwaitingReason) *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.SetAwaitingReason(v)
	})
}

// UpdateAwaitingReason sets the "awaiting_reason" field to the value that was provided on create.
func (u *TicketUpsertBulk) UpdateAwaitingReason() *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateAwaitingReason()
	})
}

// ClearAwaitingReason clears the value of the "awaiting_reason" field.
func (u *TicketUpsertBulk) ClearAwaitingReason() *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.ClearAwaitingReason()
	})
}

// SetStatus sets the "status" field.
func (u *TicketUpsertBulk) SetStatus(v ticket.Status) *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TicketUpsertBulk) UpdateStatus() *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateStatus()
	})
}

// SetResultSummary sets the "result_summary" field.
func (u *TicketUpsertBulk) SetResultSummary(v string) *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.SetResultSummary(v)
	})
}

// UpdateResultSummary sets the "result_summary" field to the value that was provided on create.
func (u *TicketUpsertBulk) UpdateResultSummary() *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateResultSummary()
	})
}

// ClearResultSummary clears the value of the "result_summary" field.
func (u *TicketUpsertBulk) ClearResultSummary() *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.ClearResultSummary()
	})
}

// SetUnsummarizedTokens sets the "unsummarized_tokens" field.
func (u *TicketUpsertBulk) SetUnsummarizedTokens(v int) *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.SetUnsummarizedTokens(v)
	})
}

// AddUnsummarizedTokens adds v to the "unsummarized_tokens" field.
func (u *TicketUpsertBulk) AddUnsummarizedTokens(v int) *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.AddUnsummarizedTokens(v)
	})
}

// UpdateUnsummarizedTokens sets the "unsummarized_tokens" field to the value that was provided on create.
func (u *TicketUpsertBulk) UpdateUnsummarizedTokens() *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateUnsummarizedTokens()
	})
}

// SetTotalTokens sets the "total_tokens" field.
func (u *TicketUpsertBulk) SetTotalTokens(v int64) *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.SetTotalTokens(v)
	})
}

// AddTotalTokens adds v to the "total_tokens" field.
func (u *TicketUpsertBulk) AddTotalTokens(v int64) *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.AddTotalTokens(v)
	})
}

// UpdateTotalTokens sets the "total_tokens" field to the value that was provided on create.
func (u *TicketUpsertBulk) UpdateTotalTokens() *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateTotalTokens()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TicketUpsertBulk) SetUpdatedAt(v time.Time) *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TicketUpsertBulk) UpdateUpdatedAt() *TicketUpsertBulk {
	return u.Update(func(s *TicketUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *TicketUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TicketCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TicketCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TicketUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

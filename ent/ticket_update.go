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
	"github.com/fleetworks/conductor/ent/predicate"
	"github.com/fleetworks/conductor/ent/ticket"
	"github.com/fleetworks/conductor/ent/ticketdependency"
)

// TicketUpdate is the builder for updating Ticket entities.
type TicketUpdate struct {
	config
	hooks    []Hook
	mutation *TicketMutation
}

// Where appends a list predicates to the TicketUpdate builder.
func (_u *TicketUpdate) Where(ps ...predicate.Ticket) *TicketUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *TicketUpdate) SetTitle(v string) *TicketUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableTitle(v *string) *TicketUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TicketUpdate) SetDescription(v string) *TicketUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableDescription(v *string) *TicketUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *TicketUpdate) ClearDescription() *TicketUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetTicketType sets the "ticket_type" field.
func (_u *TicketUpdate) SetTicketType(v ticket.TicketType) *TicketUpdate {
	_u.mutation.SetTicketType(v)
	return _u
}

// SetNillableTicketType sets the "ticket_type" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableTicketType(v *ticket.TicketType) *TicketUpdate {
	if v != nil {
		_u.SetTicketType(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *TicketUpdate) SetPriority(v ticket.Priority) *TicketUpdate {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *TicketUpdate) SetNillablePriority(v *ticket.Priority) *TicketUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetSequenceOrder sets the "sequence_order" field.
func (_u *TicketUpdate) SetSequenceOrder(v int) *TicketUpdate {
	_u.mutation.ResetSequenceOrder()
	_u.mutation.SetSequenceOrder(v)
	return _u
}

// SetNillableSequenceOrder sets the "sequence_order" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableSequenceOrder(v *int) *TicketUpdate {
	if v != nil {
		_u.SetSequenceOrder(*v)
	}
	return _u
}

// AddSequenceOrder adds value to the "sequence_order" field.
func (_u *TicketUpdate) AddSequenceOrder(v int) *TicketUpdate {
	_u.mutation.AddSequenceOrder(v)
	return _u
}

// ClearSequenceOrder clears the value of the "sequence_order" field.
func (_u *TicketUpdate) ClearSequenceOrder() *TicketUpdate {
	_u.mutation.ClearSequenceOrder()
	return _u
}

// SetParentTicketID sets the "parent_ticket_id" field.
func (_u *TicketUpdate) SetParentTicketID(v int) *TicketUpdate {
	_u.mutation.SetParentTicketID(v)
	return _u
}

// SetNillableParentTicketID sets the "parent_ticket_id" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableParentTicketID(v *int) *TicketUpdate {
	if v != nil {
		_u.SetParentTicketID(*v)
	}
	return _u
}

// ClearParentTicketID clears the value of the "parent_ticket_id" field.
func (_u *TicketUpdate) ClearParentTicketID() *TicketUpdate {
	_u.mutation.ClearParentTicketID()
	return _u
}

// SetIsForced sets the "is_forced" field.
func (_u *TicketUpdate) SetIsForced(v bool) *TicketUpdate {
	_u.mutation.SetIsForced(v)
	return _u
}

// SetNillableIsForced sets the "is_forced" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableIsForced(v *bool) *TicketUpdate {
	if v != nil {
		_u.SetIsForced(*v)
	}
	return _u
}

// SetExecutionMode sets the "execution_mode" field.
func (_u *TicketUpdate) SetExecutionMode(v ticket.ExecutionMode) *TicketUpdate {
	_u.mutation.SetExecutionMode(v)
	return _u
}

// SetNillableExecutionMode sets the "execution_mode" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableExecutionMode(v *ticket.ExecutionMode) *TicketUpdate {
	if v != nil {
		_u.SetExecutionMode(*v)
	}
	return _u
}

// ClearExecutionMode clears the value of the "execution_mode" field.
func (_u *TicketUpdate) ClearExecutionMode() *TicketUpdate {
	_u.mutation.ClearExecutionMode()
	return _u
}

// SetDepsIncludeAwaiting sets the "deps_include_awaiting" field.
func (_u *TicketUpdate) SetDepsIncludeAwaiting(v bool) *TicketUpdate {
	_u.mutation.SetDepsIncludeAwaiting(v)
	return _u
}

// SetNillableDepsIncludeAwaiting sets the "deps_include_awaiting" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableDepsIncludeAwaiting(v *bool) *TicketUpdate {
	if v != nil {
		_u.SetDepsIncludeAwaiting(*v)
	}
	return _u
}

// SetModelTier sets the "model_tier" field.
func (_u *TicketUpdate) SetModelTier(v ticket.ModelTier) *TicketUpdate {
	_u.mutation.SetModelTier(v)
	return _u
}

// SetNillableModelTier sets the "model_tier" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableModelTier(v *ticket.ModelTier) *TicketUpdate {
	if v != nil {
		_u.SetModelTier(*v)
	}
	return _u
}

// ClearModelTier clears the value of the "model_tier" field.
func (_u *TicketUpdate) ClearModelTier() *TicketUpdate {
	_u.mutation.ClearModelTier()
	return _u
}

// SetMaxRetries sets the "max_retries" field.
func (_u *TicketUpdate) SetMaxRetries(v int) *TicketUpdate {
	_u.mutation.ResetMaxRetries()
	_u.mutation.SetMaxRetries(v)
	return _u
}

// SetNillableMaxRetries sets the "max_retries" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableMaxRetries(v *int) *TicketUpdate {
	if v != nil {
		_u.SetMaxRetries(*v)
	}
	return _u
}

// AddMaxRetries adds value to the "max_retries" field.
func (_u *TicketUpdate) AddMaxRetries(v int) *TicketUpdate {
	_u.mutation.AddMaxRetries(v)
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *TicketUpdate) SetRetryCount(v int) *TicketUpdate {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableRetryCount(v *int) *TicketUpdate {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *TicketUpdate) AddRetryCount(v int) *TicketUpdate {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetRetryAfter sets the "retry_after" field.
func (_u *TicketUpdate) SetRetryAfter(v time.Time) *TicketUpdate {
	_u.mutation.SetRetryAfter(v)
	return _u
}

// SetNillableRetryAfter sets the "retry_after" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableRetryAfter(v *time.Time) *TicketUpdate {
	if v != nil {
		_u.SetRetryAfter(*v)
	}
	return _u
}

// ClearRetryAfter clears the value of the "retry_after" field.
func (_u *TicketUpdate) ClearRetryAfter() *TicketUpdate {
	_u.mutation.ClearRetryAfter()
	return _u
}

// SetReviewScheduledAt sets the "review_scheduled_at" field.
func (_u *TicketUpdate) SetReviewScheduledAt(v time.Time) *TicketUpdate {
	_u.mutation.SetReviewScheduledAt(v)
	return _u
}

// SetNillableReviewScheduledAt sets the "review_scheduled_at" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableReviewScheduledAt(v *time.Time) *TicketUpdate {
	if v != nil {
		_u.SetReviewScheduledAt(*v)
	}
	return _u
}

// ClearReviewScheduledAt clears the value of the "review_scheduled_at" field.
func (_u *TicketUpdate) ClearReviewScheduledAt() *TicketUpdate {
	_u.mutation.ClearReviewScheduledAt()
	return _u
}

// SetReviewAttempts sets the "review_attempts" field.
func (_u *TicketUpdate) SetReviewAttempts(v int) *TicketUpdate {
	_u.mutation.ResetReviewAttempts()
	_u.mutation.SetReviewAttempts(v)
	return _u
}

// SetNillableReviewAttempts sets the "review_attempts" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableReviewAttempts(v *int) *TicketUpdate {
	if v != nil {
		_u.SetReviewAttempts(*v)
	}
	return _u
}

// AddReviewAttempts adds value to the "review_attempts" field.
func (_u *TicketUpdate) AddReviewAttempts(v int) *TicketUpdate {
	_u.mutation.AddReviewAttempts(v)
	return _u
}

// SetAwaitingReason sets the "awaiting_reason" field.
func (_u *TicketUpdate) SetAwaitingReason(v ticket.AwaitingReason) *TicketUpdate {
	_u.mutation.SetAwaitingReason(v)
	return _u
}

// SetNillableAwaitingReason sets the "awaiting_reason" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableAwaitingReason(v *ticket.AwaitingReason) *TicketUpdate {
	if v != nil {
		_u.SetAwaitingReason(*v)
	}
	return _u
}

// ClearAwaitingReason clears the value of the "awaiting_reason" field.
func (_u *TicketUpdate) ClearAwaitingReason() *TicketUpdate {
	_u.mutation.ClearAwaitingReason()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TicketUpdate) SetStatus(v ticket.Status) *TicketUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableStatus(v *ticket.Status) *TicketUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetResultSummary sets the "result_summary" field.
func (_u *TicketUpdate) SetResultSummary(v string) *TicketUpdate {
	_u.mutation.SetResultSummary(v)
	return _u
}

// SetNillableResultSummary sets the "result_summary" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableResultSummary(v *string) *TicketUpdate {
	if v != nil {
		_u.SetResultSummary(*v)
	}
	return _u
}

// ClearResultSummary clears the value of the "result_summary" field.
func (_u *TicketUpdate) ClearResultSummary() *TicketUpdate {
	_u.mutation.ClearResultSummary()
	return _u
}

// SetUnsummarizedTokens sets the "unsummarized_tokens" field.
func (_u *TicketUpdate) SetUnsummarizedTokens(v int) *TicketUpdate {
	_u.mutation.ResetUnsummarizedTokens()
	_u.mutation.SetUnsummarizedTokens(v)
	return _u
}

// SetNillableUnsummarizedTokens sets the "unsummarized_tokens" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableUnsummarizedTokens(v *int) *TicketUpdate {
	if v != nil {
		_u.SetUnsummarizedTokens(*v)
	}
	return _u
}

// AddUnsummarizedTokens adds value to the "unsummarized_tokens" field.
func (_u *TicketUpdate) AddUnsummarizedTokens(v int) *TicketUpdate {
	_u.mutation.AddUnsummarizedTokens(v)
	return _u
}

// SetTotalTokens sets the "total_tokens" field.
func (_u *TicketUpdate) SetTotalTokens(v int64) *TicketUpdate {
	_u.mutation.ResetTotalTokens()
	_u.mutation.SetTotalTokens(v)
	return _u
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableTotalTokens(v *int64) *TicketUpdate {
	if v != nil {
		_u.SetTotalTokens(*v)
	}
	return _u
}

// AddTotalTokens adds value to the "total_tokens" field.
func (_u *TicketUpdate) AddTotalTokens(v int64) *TicketUpdate {
	_u.mutation.AddTotalTokens(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TicketUpdate) SetUpdatedAt(v time.Time) *TicketUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetParentID sets the "parent" edge to the Ticket entity by ID.
func (_u *TicketUpdate) SetParentID(id int) *TicketUpdate {
	_u.mutation.SetParentID(id)
	return _u
}

// SetNillableParentID sets the "parent" edge to the Ticket entity by ID if the given value is not nil.
func (_u *TicketUpdate) SetNillableParentID(id *int) *TicketUpdate {
	if id != nil {
		_u = _u.SetParentID(*id)
	}
	return _u
}

// SetParent sets the "parent" edge to the Ticket entity.
func (_u *TicketUpdate) SetParent(v *Ticket) *TicketUpdate {
	return _u.SetParentID(v.ID)
}

// AddChildIDs adds the "children" edge to the Ticket entity by IDs.
func (_u *TicketUpdate) AddChildIDs(ids ...int) *TicketUpdate {
	_u.mutation.AddChildIDs(ids...)
	return _u
}

// AddChildren adds the "children" edges to the Ticket entity.
func (_u *TicketUpdate) AddChildren(v ...*Ticket) *TicketUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChildIDs(ids...)
}

// AddMessageIDs adds the "messages" edge to the Message entity by IDs.
func (_u *TicketUpdate) AddMessageIDs(ids ...int) *TicketUpdate {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the Message entity.
func (_u *TicketUpdate) AddMessages(v ...*Message) *TicketUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// AddExtractionIDs adds the "extractions" edge to the Extraction entity by IDs.
func (_u *TicketUpdate) AddExtractionIDs(ids ...int) *TicketUpdate {
	_u.mutation.AddExtractionIDs(ids...)
	return _u
}

// AddExtractions adds the "extractions" edges to the Extraction entity.
func (_u *TicketUpdate) AddExtractions(v ...*Extraction) *TicketUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddExtractionIDs(ids...)
}

// AddSessionIDs adds the "sessions" edge to the ExecutionSession entity by IDs.
func (_u *TicketUpdate) AddSessionIDs(ids ...string) *TicketUpdate {
	_u.mutation.AddSessionIDs(ids...)
	return _u
}

// AddSessions adds the "sessions" edges to the ExecutionSession entity.
func (_u *TicketUpdate) AddSessions(v ...*ExecutionSession) *TicketUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSessionIDs(ids...)
}

// AddPermissionIDs adds the "permissions" edge to the ApprovedPermission entity by IDs.
func (_u *TicketUpdate) AddPermissionIDs(ids ...int) *TicketUpdate {
	_u.mutation.AddPermissionIDs(ids...)
	return _u
}

// AddPermissions adds the "permissions" edges to the ApprovedPermission entity.
func (_u *TicketUpdate) AddPermissions(v ...*ApprovedPermission) *TicketUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPermissionIDs(ids...)
}

// AddDependencyIDs adds the "dependencies" edge to the TicketDependency entity by IDs.
func (_u *TicketUpdate) AddDependencyIDs(ids ...int) *TicketUpdate {
	_u.mutation.AddDependencyIDs(ids...)
	return _u
}

// AddDependencies adds the "dependencies" edges to the TicketDependency entity.
func (_u *TicketUpdate) AddDependencies(v ...*TicketDependency) *TicketUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDependencyIDs(ids...)
}

// AddDependentIDs adds the "dependents" edge to the TicketDependency entity by IDs.
func (_u *TicketUpdate) AddDependentIDs(ids ...int) *TicketUpdate {
	_u.mutation.AddDependentIDs(ids...)
	return _u
}

// AddDependents adds the "dependents" edges to the TicketDependency entity.
func (_u *TicketUpdate) AddDependents(v ...*TicketDependency) *TicketUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDependentIDs(ids...)
}

// Mutation returns the TicketMutation object of the builder.
func (_u *TicketUpdate) Mutation() *TicketMutation {
	return _u.mutation
}

// ClearParent clears the "parent" edge to the Ticket entity.
func (_u *TicketUpdate) ClearParent() *TicketUpdate {
	_u.mutation.ClearParent()
	return _u
}

// ClearChildren clears all "children" edges to the Ticket entity.
func (_u *TicketUpdate) ClearChildren() *TicketUpdate {
	_u.mutation.ClearChildren()
	return _u
}

// RemoveChildIDs removes the "children" edge to Ticket entities by IDs.
func (_u *TicketUpdate) RemoveChildIDs(ids ...int) *TicketUpdate {
	_u.mutation.RemoveChildIDs(ids...)
	return _u
}

// RemoveChildren removes "children" edges to Ticket entities.
func (_u *TicketUpdate) RemoveChildren(v ...*Ticket) *TicketUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChildIDs(ids...)
}

// ClearMessages clears all "messages" edges to the Message entity.
func (_u *TicketUpdate) ClearMessages() *TicketUpdate {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to Message entities by IDs.
func (_u *TicketUpdate) RemoveMessageIDs(ids ...int) *TicketUpdate {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to Message entities.
func (_u *TicketUpdate) RemoveMessages(v ...*Message) *TicketUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// ClearExtractions clears all "extractions" edges to the Extraction entity.
func (_u *TicketUpdate) ClearExtractions() *TicketUpdate {
	_u.mutation.ClearExtractions()
	return _u
}

// RemoveExtractionIDs removes the "extractions" edge to Extraction entities by IDs.
func (_u *TicketUpdate) RemoveExtractionIDs(ids ...int) *TicketUpdate {
	_u.mutation.RemoveExtractionIDs(ids...)
	return _u
}

// RemoveExtractions removes "extractions" edges to Extraction entities.
func (_u *TicketUpdate) RemoveExtractions(v ...*Extraction) *TicketUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveExtractionIDs(ids...)
}

// ClearSessions clears all "sessions" edges to the ExecutionSession entity.
func (_u *TicketUpdate) ClearSessions() *TicketUpdate {
	_u.mutation.ClearSessions()
	return _u
}

// RemoveSessionIDs removes the "sessions" edge to ExecutionSession entities by IDs.
func (_u *TicketUpdate) RemoveSessionIDs(ids ...string) *TicketUpdate {
	_u.mutation.RemoveSessionIDs(ids...)
	return _u
}

// RemoveSessions removes "sessions" edges to ExecutionSession entities.
func (_u *TicketUpdate) RemoveSessions(v ...*ExecutionSession) *TicketUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSessionIDs(ids...)
}

// ClearPermissions clears all "permissions" edges to the ApprovedPermission entity.
func (_u *TicketUpdate) ClearPermissions() *TicketUpdate {
	_u.mutation.ClearPermissions()
	return _u
}

// RemovePermissionIDs removes the "permissions" edge to ApprovedPermission entities by IDs.
func (_u *TicketUpdate) RemovePermissionIDs(ids ...int) *TicketUpdate {
	_u.mutation.RemovePermissionIDs(ids...)
	return _u
}

// RemovePermissions removes "permissions" edges to ApprovedPermission entities.
func (_u *TicketUpdate) RemovePermissions(v ...*ApprovedPermission) *TicketUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePermissionIDs(ids...)
}

// ClearDependencies clears all "dependencies" edges to the TicketDependency entity.
func (_u *TicketUpdate) ClearDependencies() *TicketUpdate {
	_u.mutation.ClearDependencies()
	return _u
}

// RemoveDependencyIDs removes the "dependencies" edge to TicketDependency entities by IDs.
func (_u *TicketUpdate) RemoveDependencyIDs(ids ...int) *TicketUpdate {
	_u.mutation.RemoveDependencyIDs(ids...)
	return _u
}

// RemoveDependencies removes "dependencies" edges to TicketDependency entities.
func (_u *TicketUpdate) RemoveDependencies(v ...*TicketDependency) *TicketUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDependencyIDs(ids...)
}

// ClearDependents clears all "dependents" edges to the TicketDependency entity.
func (_u *TicketUpdate) ClearDependents() *TicketUpdate {
	_u.mutation.ClearDependents()
	return _u
}

// RemoveDependentIDs removes the "dependents" edge to TicketDependency entities by IDs.
func (_u *TicketUpdate) RemoveDependentIDs(ids ...int) *TicketUpdate {
	_u.mutation.RemoveDependentIDs(ids...)
	return _u
}

// RemoveDependents removes "dependents" edges to TicketDependency entities.
func (_u *TicketUpdate) RemoveDependents(v ...*TicketDependency) *TicketUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDependentIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TicketUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TicketUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TicketUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TicketUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TicketUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := ticket.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TicketUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := ticket.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Ticket.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TicketType(); ok {
		if err := ticket.TicketTypeValidator(v); err != nil {
			return &ValidationError{Name: "ticket_type", err: fmt.Errorf(`ent: validator failed for field "Ticket.ticket_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := ticket.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Ticket.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExecutionMode(); ok {
		if err := ticket.ExecutionModeValidator(v); err != nil {
			return &ValidationError{Name: "execution_mode", err: fmt.Errorf(`ent: validator failed for field "Ticket.execution_mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ModelTier(); ok {
		if err := ticket.ModelTierValidator(v); err != nil {
			return &ValidationError{Name: "model_tier", err: fmt.Errorf(`ent: validator failed for field "Ticket.model_tier": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxRetries(); ok {
		if err := ticket.MaxRetriesValidator(v); err != nil {
			return &ValidationError{Name: "max_retries", err: fmt.Errorf(`ent: validator failed for field "Ticket.max_retries": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RetryCount(); ok {
		if err := ticket.RetryCountValidator(v); err != nil {
			return &ValidationError{Name: "retry_count", err: fmt.Errorf(`ent: validator failed for field "Ticket.retry_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AwaitingReason(); ok {
		if err := ticket.AwaitingReasonValidator(v); err != nil {
			return &ValidationError{Name: "awaiting_reason", err: fmt.Errorf(`ent: validator failed for field "Ticket.awaiting_reason": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := ticket.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Ticket.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ResultSummary(); ok {
		if err := ticket.ResultSummaryValidator(v); err != nil {
			return &ValidationError{Name: "result_summary", err: fmt.Errorf(`ent: validator failed for field "Ticket.result_summary": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Ticket.project"`)
	}
	return nil
}

func (_u *TicketUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ticket.Table, ticket.Columns, sqlgraph.NewFieldSpec(ticket.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(ticket.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(ticket.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(ticket.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.TicketType(); ok {
		_spec.SetField(ticket.FieldTicketType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(ticket.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SequenceOrder(); ok {
		_spec.SetField(ticket.FieldSequenceOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequenceOrder(); ok {
		_spec.AddField(ticket.FieldSequenceOrder, field.TypeInt, value)
	}
	if _u.mutation.SequenceOrderCleared() {
		_spec.ClearField(ticket.FieldSequenceOrder, field.TypeInt)
	}
	if value, ok := _u.mutation.IsForced(); ok {
		_spec.SetField(ticket.FieldIsForced, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ExecutionMode(); ok {
		_spec.SetField(ticket.FieldExecutionMode, field.TypeEnum, value)
	}
	if _u.mutation.ExecutionModeCleared() {
		_spec.ClearField(ticket.FieldExecutionMode, field.TypeEnum)
	}
	if value, ok := _u.mutation.DepsIncludeAwaiting(); ok {
		_spec.SetField(ticket.FieldDepsIncludeAwaiting, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ModelTier(); ok {
		_spec.SetField(ticket.FieldModelTier, field.TypeEnum, value)
	}
	if _u.mutation.ModelTierCleared() {
		_spec.ClearField(ticket.FieldModelTier, field.TypeEnum)
	}
	if value, ok := _u.mutation.MaxRetries(); ok {
		_spec.SetField(ticket.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxRetries(); ok {
		_spec.AddField(ticket.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(ticket.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(ticket.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RetryAfter(); ok {
		_spec.SetField(ticket.FieldRetryAfter, field.TypeTime, value)
	}
	if _u.mutation.RetryAfterCleared() {
		_spec.ClearField(ticket.FieldRetryAfter, field.TypeTime)
	}
	if value, ok := _u.mutation.ReviewScheduledAt(); ok {
		_spec.SetField(ticket.FieldReviewScheduledAt, field.TypeTime, value)
	}
	if _u.mutation.ReviewScheduledAtCleared() {
		_spec.ClearField(ticket.FieldReviewScheduledAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ReviewAttempts(); ok {
		_spec.SetField(ticket.FieldReviewAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReviewAttempts(); ok {
		_spec.AddField(ticket.FieldReviewAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AwaitingReason(); ok {
		_spec.SetField(ticket.FieldAwaitingReason, field.TypeEnum, value)
	}
	if _u.mutation.AwaitingReasonCleared() {
		_spec.ClearField(ticket.FieldAwaitingReason, field.TypeEnum)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(ticket.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ResultSummary(); ok {
		_spec.SetField(ticket.FieldResultSummary, field.TypeString, value)
	}
	if _u.mutation.ResultSummaryCleared() {
		_spec.ClearField(ticket.FieldResultSummary, field.TypeString)
	}
	if value, ok := _u.mutation.UnsummarizedTokens(); ok {
		_spec.SetField(ticket.FieldUnsummarizedTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUnsummarizedTokens(); ok {
		_spec.AddField(ticket.FieldUnsummarizedTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalTokens(); ok {
		_spec.SetField(ticket.FieldTotalTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalTokens(); ok {
		_spec.AddField(ticket.FieldTotalTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(ticket.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ParentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ParentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChildrenCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChildrenIDs(); len(nodes) > 0 && !_u.mutation.ChildrenCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChildrenIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ExtractionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedExtractionsIDs(); len(nodes) > 0 && !_u.mutation.ExtractionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExtractionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SessionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSessionsIDs(); len(nodes) > 0 && !_u.mutation.SessionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PermissionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPermissionsIDs(); len(nodes) > 0 && !_u.mutation.PermissionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PermissionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DependenciesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDependenciesIDs(); len(nodes) > 0 && !_u.mutation.DependenciesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DependenciesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DependentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDependentsIDs(); len(nodes) > 0 && !_u.mutation.DependentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DependentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ticket.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TicketUpdateOne is the builder for updating a single Ticket entity.
type TicketUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TicketMutation
}

// SetTitle sets the "title" field.
func (_u *TicketUpdateOne) SetTitle(v string) *TicketUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableTitle(v *string) *TicketUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TicketUpdateOne) SetDescription(v string) *TicketUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableDescription(v *string) *TicketUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *TicketUpdateOne) ClearDescription() *TicketUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetTicketType sets the "ticket_type" field.
func (_u *TicketUpdateOne) SetTicketType(v ticket.TicketType) *TicketUpdateOne {
	_u.mutation.SetTicketType(v)
	return _u
}

// SetNillableTicketType sets the "ticket_type" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableTicketType(v *ticket.TicketType) *TicketUpdateOne {
	if v != nil {
		_u.SetTicketType(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *TicketUpdateOne) SetPriority(v ticket.Priority) *TicketUpdateOne {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillablePriority(v *ticket.Priority) *TicketUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetSequenceOrder sets the "sequence_order" field.
func (_u *TicketUpdateOne) SetSequenceOrder(v int) *TicketUpdateOne {
	_u.mutation.ResetSequenceOrder()
	_u.mutation.SetSequenceOrder(v)
	return _u
}

// SetNillableSequenceOrder sets the "sequence_order" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableSequenceOrder(v *int) *TicketUpdateOne {
	if v != nil {
		_u.SetSequenceOrder(*v)
	}
	return _u
}

// AddSequenceOrder adds value to the "sequence_order" field.
func (_u *TicketUpdateOne) AddSequenceOrder(v int) *TicketUpdateOne {
	_u.mutation.AddSequenceOrder(v)
	return _u
}

// ClearSequenceOrder clears the value of the "sequence_order" field.
func (_u *TicketUpdateOne) ClearSequenceOrder() *TicketUpdateOne {
	_u.mutation.ClearSequenceOrder()
	return _u
}

// SetParentTicketID sets the "parent_ticket_id" field.
func (_u *TicketUpdateOne) SetParentTicketID(v int) *TicketUpdateOne {
	_u.mutation.SetParentTicketID(v)
	return _u
}

// SetNillableParentTicketID sets the "parent_ticket_id" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableParentTicketID(v *int) *TicketUpdateOne {
	if v != nil {
		_u.SetParentTicketID(*v)
	}
	return _u
}

// ClearParentTicketID clears the value of the "parent_ticket_id" field.
func (_u *TicketUpdateOne) ClearParentTicketID() *TicketUpdateOne {
	_u.mutation.ClearParentTicketID()
	return _u
}

// SetIsForced sets the "is_forced" field.
func (_u *TicketUpdateOne) SetIsForced(v bool) *TicketUpdateOne {
	_u.mutation.SetIsForced(v)
	return _u
}

// SetNillableIsForced sets the "is_forced" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableIsForced(v *bool) *TicketUpdateOne {
	if v != nil {
		_u.SetIsForced(*v)
	}
	return _u
}

// SetExecutionMode sets the "execution_mode" field.
func (_u *TicketUpdateOne) SetExecutionMode(v ticket.ExecutionMode) *TicketUpdateOne {
	_u.mutation.SetExecutionMode(v)
	return _u
}

// SetNillableExecutionMode sets the "execution_mode" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableExecutionMode(v *ticket.ExecutionMode) *TicketUpdateOne {
	if v != nil {
		_u.SetExecutionMode(*v)
	}
	return _u
}

// ClearExecutionMode clears the value of the "execution_mode" field.
func (_u *TicketUpdateOne) ClearExecutionMode() *TicketUpdateOne {
	_u.mutation.ClearExecutionMode()
	return _u
}

// SetDepsIncludeAwaiting sets the "deps_include_awaiting" field.
func (_u *TicketUpdateOne) SetDepsIncludeAwaiting(v bool) *TicketUpdateOne {
	_u.mutation.SetDepsIncludeAwaiting(v)
	return _u
}

// SetNillableDepsIncludeAwaiting sets the "deps_include_awaiting" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableDepsIncludeAwaiting(v *bool) *TicketUpdateOne {
	if v != nil {
		_u.SetDepsIncludeAwaiting(*v)
	}
	return _u
}

// SetModelTier sets the "model_tier" field.
func (_u *TicketUpdateOne) SetModelTier(v ticket.ModelTier) *TicketUpdateOne {
	_u.mutation.SetModelTier(v)
	return _u
}

// SetNillableModelTier sets the "model_tier" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableModelTier(v *ticket.ModelTier) *TicketUpdateOne {
	if v != nil {
		_u.SetModelTier(*v)
	}
	return _u
}

// ClearModelTier clears the value of the "model_tier" field.
func (_u *TicketUpdateOne) ClearModelTier() *TicketUpdateOne {
	_u.mutation.ClearModelTier()
	return _u
}

// SetMaxRetries sets the "max_retries" field.
func (_u *TicketUpdateOne) SetMaxRetries(v int) *TicketUpdateOne {
	_u.mutation.ResetMaxRetries()
	_u.mutation.SetMaxRetries(v)
	return _u
}

// SetNillableMaxRetries sets the "max_retries" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableMaxRetries(v *int) *TicketUpdateOne {
	if v != nil {
		_u.SetMaxRetries(*v)
	}
	return _u
}

// AddMaxRetries adds value to the "max_retries" field.
func (_u *TicketUpdateOne) AddMaxRetries(v int) *TicketUpdateOne {
	_u.mutation.AddMaxRetries(v)
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *TicketUpdateOne) SetRetryCount(v int) *TicketUpdateOne {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableRetryCount(v *int) *TicketUpdateOne {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *TicketUpdateOne) AddRetryCount(v int) *TicketUpdateOne {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetRetryAfter sets the "retry_after" field.
func (_u *TicketUpdateOne) SetRetryAfter(v time.Time) *TicketUpdateOne {
	_u.mutation.SetRetryAfter(v)
	return _u
}

// SetNillableRetryAfter sets the "retry_after" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableRetryAfter(v *time.Time) *TicketUpdateOne {
	if v != nil {
		_u.SetRetryAfter(*v)
	}
	return _u
}

// ClearRetryAfter clears the value of the "retry_after" field.
func (_u *TicketUpdateOne) ClearRetryAfter() *TicketUpdateOne {
	_u.mutation.ClearRetryAfter()
	return _u
}

// SetReviewScheduledAt sets the "review_scheduled_at" field.
func (_u *TicketUpdateOne) SetReviewScheduledAt(v time.Time) *TicketUpdateOne {
	_u.mutation.SetReviewScheduledAt(v)
	return _u
}

// SetNillableReviewScheduledAt sets the "review_scheduled_at" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableReviewScheduledAt(v *time.Time) *TicketUpdateOne {
	if v != nil {
		_u.SetReviewScheduledAt(*v)
	}
	return _u
}

// ClearReviewScheduledAt clears the value of the "review_scheduled_at" field.
func (_u *TicketUpdateOne) ClearReviewScheduledAt() *TicketUpdateOne {
	_u.mutation.ClearReviewScheduledAt()
	return _u
}

// SetReviewAttempts sets the "review_attempts" field.
func (_u *TicketUpdateOne) SetReviewAttempts(v int) *TicketUpdateOne {
	_u.mutation.ResetReviewAttempts()
	_u.mutation.SetReviewAttempts(v)
	return _u
}

// SetNillableReviewAttempts sets the "review_attempts" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableReviewAttempts(v *int) *TicketUpdateOne {
	if v != nil {
		_u.SetReviewAttempts(*v)
	}
	return _u
}

// AddReviewAttempts adds value to the "review_attempts" field.
func (_u *TicketUpdateOne) AddReviewAttempts(v int) *TicketUpdateOne {
	_u.mutation.AddReviewAttempts(v)
	return _u
}

// SetAwaitingReason sets the "awaiting_reason" field.
func (_u *TicketUpdateOne) SetAwaitingReason(v ticket.AwaitingReason) *TicketUpdateOne {
	_u.mutation.SetAwaitingReason(v)
	return _u
}

// SetNillableAwaitingReason sets the "awaiting_reason" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableAwaitingReason(v *ticket.AwaitingReason) *TicketUpdateOne {
	if v != nil {
		_u.SetAwaitingReason(*v)
	}
	return _u
}

// ClearAwaitingReason clears the value of the "awaiting_reason" field.
func (_u *TicketUpdateOne) ClearAwaitingReason() *TicketUpdateOne {
	_u.mutation.ClearAwaitingReason()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TicketUpdateOne) SetStatus(v ticket.Status) *TicketUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableStatus(v *ticket.Status) *TicketUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetResultSummary sets the "result_summary" field.
func (_u *TicketUpdateOne) SetResultSummary(v string) *TicketUpdateOne {
	_u.mutation.SetResultSummary(v)
	return _u
}

// SetNillableResultSummary sets the "result_summary" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableResultSummary(v *string) *TicketUpdateOne {
	if v != nil {
		_u.SetResultSummary(*v)
	}
	return _u
}

// ClearResultSummary clears the value of the "result_summary" field.
func (_u *TicketUpdateOne) ClearResultSummary() *TicketUpdateOne {
	_u.mutation.ClearResultSummary()
	return _u
}

// SetUnsummarizedTokens sets the "unsummarized_tokens" field.
func (_u *TicketUpdateOne) SetUnsummarizedTokens(v int) *TicketUpdateOne {
	_u.mutation.ResetUnsummarizedTokens()
	_u.mutation.SetUnsummarizedTokens(v)
	return _u
}

// SetNillableUnsummarizedTokens sets the "unsummarized_tokens" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableUnsummarizedTokens(v *int) *TicketUpdateOne {
	if v != nil {
		_u.SetUnsummarizedTokens(*v)
	}
	return _u
}

// AddUnsummarizedTokens adds value to the "unsummarized_tokens" field.
func (_u *TicketUpdateOne) AddUnsummarizedTokens(v int) *TicketUpdateOne {
	_u.mutation.AddUnsummarizedTokens(v)
	return _u
}

// SetTotalTokens sets the "total_tokens" field.
func (_u *TicketUpdateOne) SetTotalTokens(v int64) *TicketUpdateOne {
	_u.mutation.ResetTotalTokens()
	_u.mutation.SetTotalTokens(v)
	return _u
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableTotalTokens(v *int64) *TicketUpdateOne {
	if v != nil {
		_u.SetTotalTokens(*v)
	}
	return _u
}

// AddTotalTokens adds value to the "total_tokens" field.
func (_u *TicketUpdateOne) AddTotalTokens(v int64) *TicketUpdateOne {
	_u.mutation.AddTotalTokens(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TicketUpdateOne) SetUpdatedAt(v time.Time) *TicketUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetParentID sets the "parent" edge to the Ticket entity by ID.
func (_u *TicketUpdateOne) SetParentID(id int) *TicketUpdateOne {
	_u.mutation.SetParentID(id)
	return _u
}

// SetNillableParentID sets the "parent" edge to the Ticket entity by ID if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableParentID(id *int) *TicketUpdateOne {
	if id != nil {
		_u = _u.SetParentID(*id)
	}
	return _u
}

// SetParent sets the "parent" edge to the Ticket entity.
func (_u *TicketUpdateOne) SetParent(v *Ticket) *TicketUpdateOne {
	return _u.SetParentID(v.ID)
}

// AddChildIDs adds the "children" edge to the Ticket entity by IDs.
func (_u *TicketUpdateOne) AddChildIDs(ids ...int) *TicketUpdateOne {
	_u.mutation.AddChildIDs(ids...)
	return _u
}

// AddChildren adds the "children" edges to the Ticket entity.
func (_u *TicketUpdateOne) AddChildren(v ...*Ticket) *TicketUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChildIDs(ids...)
}

// AddMessageIDs adds the "messages" edge to the Message entity by IDs.
func (_u *TicketUpdateOne) AddMessageIDs(ids ...int) *TicketUpdateOne {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the Message entity.
func (_u *TicketUpdateOne) AddMessages(v ...*Message) *TicketUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// AddExtractionIDs adds the "extractions" edge to the Extraction entity by IDs.
func (_u *TicketUpdateOne) AddExtractionIDs(ids ...int) *TicketUpdateOne {
	_u.mutation.AddExtractionIDs(ids...)
	return _u
}

// AddExtractions adds the "extractions" edges to the Extraction entity.
func (_u *TicketUpdateOne) AddExtractions(v ...*Extraction) *TicketUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddExtractionIDs(ids...)
}

// AddSessionIDs adds the "sessions" edge to the ExecutionSession entity by IDs.
func (_u *TicketUpdateOne) AddSessionIDs(ids ...string) *TicketUpdateOne {
	_u.mutation.AddSessionIDs(ids...)
	return _u
}

// AddSessions adds the "sessions" edges to the ExecutionSession entity.
func (_u *TicketUpdateOne) AddSessions(v ...*ExecutionSession) *TicketUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSessionIDs(ids...)
}

// AddPermissionIDs adds the "permissions" edge to the ApprovedPermission entity by IDs.
func (_u *TicketUpdateOne) AddPermissionIDs(ids ...int) *TicketUpdateOne {
	_u.mutation.AddPermissionIDs(ids...)
	return _u
}

// AddPermissions adds the "permissions" edges to the ApprovedPermission entity.
func (_u *TicketUpdateOne) AddPermissions(v ...*ApprovedPermission) *TicketUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPermissionIDs(ids...)
}

// AddDependencyIDs adds the "dependencies" edge to the TicketDependency entity by IDs.
func (_u *TicketUpdateOne) AddDependencyIDs(ids ...int) *TicketUpdateOne {
	_u.mutation.AddDependencyIDs(ids...)
	return _u
}

// AddDependencies adds the "dependencies" edges to the TicketDependency entity.
func (_u *TicketUpdateOne) AddDependencies(v ...*TicketDependency) *TicketUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDependencyIDs(ids...)
}

// AddDependentIDs adds the "dependents" edge to the TicketDependency entity by IDs.
func (_u *TicketUpdateOne) AddDependentIDs(ids ...int) *TicketUpdateOne {
	_u.mutation.AddDependentIDs(ids...)
	return _u
}

// AddDependents adds the "dependents" edges to the TicketDependency entity.
func (_u *TicketUpdateOne) AddDependents(v ...*TicketDependency) *TicketUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDependentIDs(ids...)
}

// Mutation returns the TicketMutation object of the builder.
func (_u *TicketUpdateOne) Mutation() *TicketMutation {
	return _u.mutation
}

// ClearParent clears the "parent" edge to the Ticket entity.
func (_u *TicketUpdateOne) ClearParent() *TicketUpdateOne {
	_u.mutation.ClearParent()
	return _u
}

// ClearChildren clears all "children" edges to the Ticket entity.
func (_u *TicketUpdateOne) ClearChildren() *TicketUpdateOne {
	_u.mutation.ClearChildren()
	return _u
}

// RemoveChildIDs removes the "children" edge to Ticket entities by IDs.
func (_u *TicketUpdateOne) RemoveChildIDs(ids ...int) *TicketUpdateOne {
	_u.mutation.RemoveChildIDs(ids...)
	return _u
}

// RemoveChildren removes "children" edges to Ticket entities.
func (_u *TicketUpdateOne) RemoveChildren(v ...*Ticket) *TicketUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChildIDs(ids...)
}

// ClearMessages clears all "messages" edges to the Message entity.
func (_u *TicketUpdateOne) ClearMessages() *TicketUpdateOne {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to Message entities by IDs.
func (_u *TicketUpdateOne) RemoveMessageIDs(ids ...int) *TicketUpdateOne {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to Message entities.
func (_u *TicketUpdateOne) RemoveMessages(v ...*Message) *TicketUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// ClearExtractions clears all "extractions" edges to the Extraction entity.
func (_u *TicketUpdateOne) ClearExtractions() *TicketUpdateOne {
	_u.mutation.ClearExtractions()
	return _u
}

// RemoveExtractionIDs removes the "extractions" edge to Extraction entities by IDs.
func (_u *TicketUpdateOne) RemoveExtractionIDs(ids ...int) *TicketUpdateOne {
	_u.mutation.RemoveExtractionIDs(ids...)
	return _u
}

// RemoveExtractions removes "extractions" edges to Extraction entities.
func (_u *TicketUpdateOne) RemoveExtractions(v ...*Extraction) *TicketUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveExtractionIDs(ids...)
}

// ClearSessions clears all "sessions" edges to the ExecutionSession entity.
func (_u *TicketUpdateOne) ClearSessions() *TicketUpdateOne {
	_u.mutation.ClearSessions()
	return _u
}

// RemoveSessionIDs removes the "sessions" edge to ExecutionSession entities by IDs.
func (_u *TicketUpdateOne) RemoveSessionIDs(ids ...string) *TicketUpdateOne {
	_u.mutation.RemoveSessionIDs(ids...)
	return _u
}

// RemoveSessions removes "sessions" edges to ExecutionSession entities.
func (_u *TicketUpdateOne) RemoveSessions(v ...*ExecutionSession) *TicketUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSessionIDs(ids...)
}

// ClearPermissions clears all "permissions" edges to the ApprovedPermission entity.
func (_u *TicketUpdateOne) ClearPermissions() *TicketUpdateOne {
	_u.mutation.ClearPermissions()
	return _u
}

// RemovePermissionIDs removes the "permissions" edge to ApprovedPermission entities by IDs.
func (_u *TicketUpdateOne) RemovePermissionIDs(ids ...int) *TicketUpdateOne {
	_u.mutation.RemovePermissionIDs(ids...)
	return _u
}

// RemovePermissions removes "permissions" edges to ApprovedPermission entities.
func (_u *TicketUpdateOne) RemovePermissions(v ...*ApprovedPermission) *TicketUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePermissionIDs(ids...)
}

// ClearDependencies clears all "dependencies" edges to the TicketDependency entity.
func (_u *TicketUpdateOne) ClearDependencies() *TicketUpdateOne {
	_u.mutation.ClearDependencies()
	return _u
}

// RemoveDependencyIDs removes the "dependencies" edge to TicketDependency entities by IDs.
func (_u *TicketUpdateOne) RemoveDependencyIDs(ids ...int) *TicketUpdateOne {
	_u.mutation.RemoveDependencyIDs(ids...)
	return _u
}

// RemoveDependencies removes "dependencies" edges to TicketDependency entities.
func (_u *TicketUpdateOne) RemoveDependencies(v ...*TicketDependency) *TicketUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDependencyIDs(ids...)
}

// ClearDependents clears all "dependents" edges to the TicketDependency entity.
func (_u *TicketUpdateOne) ClearDependents() *TicketUpdateOne {
	_u.mutation.ClearDependents()
	return _u
}

// RemoveDependentIDs removes the "dependents" edge to TicketDependency entities by IDs.
func (_u *TicketUpdateOne) RemoveDependentIDs(ids ...int) *TicketUpdateOne {
	_u.mutation.RemoveDependentIDs(ids...)
	return _u
}

// RemoveDependents removes "dependents" edges to TicketDependency entities.
func (_u *TicketUpdateOne) RemoveDependents(v ...*TicketDependency) *TicketUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDependentIDs(ids...)
}

// Where appends a list predicates to the TicketUpdate builder.
func (_u *TicketUpdateOne) Where(ps ...predicate.Ticket) *TicketUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TicketUpdateOne) Select(field string, fields ...string) *TicketUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Ticket entity.
func (_u *TicketUpdateOne) Save(ctx context.Context) (*Ticket, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TicketUpdateOne) SaveX(ctx context.Context) *Ticket {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TicketUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TicketUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TicketUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := ticket.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TicketUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := ticket.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Ticket.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TicketType(); ok {
		if err := ticket.TicketTypeValidator(v); err != nil {
			return &ValidationError{Name: "ticket_type", err: fmt.Errorf(`ent: validator failed for field "Ticket.ticket_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := ticket.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Ticket.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExecutionMode(); ok {
		if err := ticket.ExecutionModeValidator(v); err != nil {
			return &ValidationError{Name: "execution_mode", err: fmt.Errorf(`ent: validator failed for field "Ticket.execution_mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ModelTier(); ok {
		if err := ticket.ModelTierValidator(v); err != nil {
			return &ValidationError{Name: "model_tier", err: fmt.Errorf(`ent: validator failed for field "Ticket.model_tier": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxRetries(); ok {
		if err := ticket.MaxRetriesValidator(v); err != nil {
			return &ValidationError{Name: "max_retries", err: fmt.Errorf(`ent: validator failed for field "Ticket.max_retries": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RetryCount(); ok {
		if err := ticket.RetryCountValidator(v); err != nil {
			return &ValidationError{Name: "retry_count", err: fmt.Errorf(`ent: validator failed for field "Ticket.retry_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AwaitingReason(); ok {
		if err := ticket.AwaitingReasonValidator(v); err != nil {
			return &ValidationError{Name: "awaiting_reason", err: fmt.Errorf(`ent: validator failed for field "Ticket.awaiting_reason": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := ticket.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Ticket.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ResultSummary(); ok {
		if err := ticket.ResultSummaryValidator(v); err != nil {
			return &ValidationError{Name: "result_summary", err: fmt.Errorf(`ent: validator failed for field "Ticket.result_summary": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Ticket.project"`)
	}
	return nil
}

func (_u *TicketUpdateOne) sqlSave(ctx context.Context) (_node *Ticket, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ticket.Table, ticket.Columns, sqlgraph.NewFieldSpec(ticket.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Ticket.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, ticket.FieldID)
		for _, f := range fields {
			if !ticket.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != ticket.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(ticket.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(ticket.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(ticket.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.TicketType(); ok {
		_spec.SetField(ticket.FieldTicketType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(ticket.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SequenceOrder(); ok {
		_spec.SetField(ticket.FieldSequenceOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequenceOrder(); ok {
		_spec.AddField(ticket.FieldSequenceOrder, field.TypeInt, value)
	}
	if _u.mutation.SequenceOrderCleared() {
		_spec.ClearField(ticket.FieldSequenceOrder, field.TypeInt)
	}
	if value, ok := _u.mutation.IsForced(); ok {
		_spec.SetField(ticket.FieldIsForced, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ExecutionMode(); ok {
		_spec.SetField(ticket.FieldExecutionMode, field.TypeEnum, value)
	}
	if _u.mutation.ExecutionModeCleared() {
		_spec.ClearField(ticket.FieldExecutionMode, field.TypeEnum)
	}
	if value, ok := _u.mutation.DepsIncludeAwaiting(); ok {
		_spec.SetField(ticket.FieldDepsIncludeAwaiting, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ModelTier(); ok {
		_spec.SetField(ticket.FieldModelTier, field.TypeEnum, value)
	}
	if _u.mutation.ModelTierCleared() {
		_spec.ClearField(ticket.FieldModelTier, field.TypeEnum)
	}
	if value, ok := _u.mutation.MaxRetries(); ok {
		_spec.SetField(ticket.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxRetries(); ok {
		_spec.AddField(ticket.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(ticket.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(ticket.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RetryAfter(); ok {
		_spec.SetField(ticket.FieldRetryAfter, field.TypeTime, value)
	}
	if _u.mutation.RetryAfterCleared() {
		_spec.ClearField(ticket.FieldRetryAfter, field.TypeTime)
	}
	if value, ok := _u.mutation.ReviewScheduledAt(); ok {
		_spec.SetField(ticket.FieldReviewScheduledAt, field.TypeTime, value)
	}
	if _u.mutation.ReviewScheduledAtCleared() {
		_spec.ClearField(ticket.FieldReviewScheduledAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ReviewAttempts(); ok {
		_spec.SetField(ticket.FieldReviewAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReviewAttempts(); ok {
		_spec.AddField(ticket.FieldReviewAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AwaitingReason(); ok {
		_spec.SetField(ticket.FieldAwaitingReason, field.TypeEnum, value)
	}
	if _u.mutation.AwaitingReasonCleared() {
		_spec.ClearField(ticket.FieldAwaitingReason, field.TypeEnum)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(ticket.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ResultSummary(); ok {
		_spec.SetField(ticket.FieldResultSummary, field.TypeString, value)
	}
	if _u.mutation.ResultSummaryCleared() {
		_spec.ClearField(ticket.FieldResultSummary, field.TypeString)
	}
	if value, ok := _u.mutation.UnsummarizedTokens(); ok {
		_spec.SetField(ticket.FieldUnsummarizedTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUnsummarizedTokens(); ok {
		_spec.AddField(ticket.FieldUnsummarizedTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalTokens(); ok {
		_spec.SetField(ticket.FieldTotalTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalTokens(); ok {
		_spec.AddField(ticket.FieldTotalTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(ticket.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ParentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ParentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChildrenCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChildrenIDs(); len(nodes) > 0 && !_u.mutation.ChildrenCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChildrenIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ExtractionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedExtractionsIDs(); len(nodes) > 0 && !_u.mutation.ExtractionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExtractionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SessionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSessionsIDs(); len(nodes) > 0 && !_u.mutation.SessionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PermissionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPermissionsIDs(); len(nodes) > 0 && !_u.mutation.PermissionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PermissionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DependenciesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDependenciesIDs(); len(nodes) > 0 && !_u.mutation.DependenciesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DependenciesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DependentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDependentsIDs(); len(nodes) > 0 && !_u.mutation.DependentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DependentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Ticket{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ticket.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

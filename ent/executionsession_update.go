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
	"github.com/fleetworks/conductor/ent/executionsession"
	"github.com/fleetworks/conductor/ent/predicate"
)

// ExecutionSessionUpdate is the builder for updating ExecutionSession entities.
type ExecutionSessionUpdate struct {
	config
	hooks    []Hook
	mutation *ExecutionSessionMutation
}

// Where appends a list predicates to the ExecutionSessionUpdate builder.
func (_u *ExecutionSessionUpdate) Where(ps ...predicate.ExecutionSession) *ExecutionSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExecutionSessionUpdate) SetStatus(v executionsession.Status) *ExecutionSessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExecutionSessionUpdate) SetNillableStatus(v *executionsession.Status) *ExecutionSessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *ExecutionSessionUpdate) SetInputTokens(v int64) *ExecutionSessionUpdate {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *ExecutionSessionUpdate) SetNillableInputTokens(v *int64) *ExecutionSessionUpdate {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *ExecutionSessionUpdate) AddInputTokens(v int64) *ExecutionSessionUpdate {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *ExecutionSessionUpdate) SetOutputTokens(v int64) *ExecutionSessionUpdate {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *ExecutionSessionUpdate) SetNillableOutputTokens(v *int64) *ExecutionSessionUpdate {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *ExecutionSessionUpdate) AddOutputTokens(v int64) *ExecutionSessionUpdate {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetCacheReadTokens sets the "cache_read_tokens" field.
func (_u *ExecutionSessionUpdate) SetCacheReadTokens(v int64) *ExecutionSessionUpdate {
	_u.mutation.ResetCacheReadTokens()
	_u.mutation.SetCacheReadTokens(v)
	return _u
}

// SetNillableCacheReadTokens sets the "cache_read_tokens" field if the given value is not nil.
func (_u *ExecutionSessionUpdate) SetNillableCacheReadTokens(v *int64) *ExecutionSessionUpdate {
	if v != nil {
		_u.SetCacheReadTokens(*v)
	}
	return _u
}

// AddCacheReadTokens adds value to the "cache_read_tokens" field.
func (_u *ExecutionSessionUpdate) AddCacheReadTokens(v int64) *ExecutionSessionUpdate {
	_u.mutation.AddCacheReadTokens(v)
	return _u
}

// SetCacheCreationTokens sets the "cache_creation_tokens" field.
func (_u *ExecutionSessionUpdate) SetCacheCreationTokens(v int64) *ExecutionSessionUpdate {
	_u.mutation.ResetCacheCreationTokens()
	_u.mutation.SetCacheCreationTokens(v)
	return _u
}

// SetNillableCacheCreationTokens sets the "cache_creation_tokens" field if the given value is not nil.
func (_u *ExecutionSessionUpdate) SetNillableCacheCreationTokens(v *int64) *ExecutionSessionUpdate {
	if v != nil {
		_u.SetCacheCreationTokens(*v)
	}
	return _u
}

// AddCacheCreationTokens adds value to the "cache_creation_tokens" field.
func (_u *ExecutionSessionUpdate) AddCacheCreationTokens(v int64) *ExecutionSessionUpdate {
	_u.mutation.AddCacheCreationTokens(v)
	return _u
}

// SetAPICalls sets the "api_calls" field.
func (_u *ExecutionSessionUpdate) SetAPICalls(v int) *ExecutionSessionUpdate {
	_u.mutation.ResetAPICalls()
	_u.mutation.SetAPICalls(v)
	return _u
}

// SetNillableAPICalls sets the "api_calls" field if the given value is not nil.
func (_u *ExecutionSessionUpdate) SetNillableAPICalls(v *int) *ExecutionSessionUpdate {
	if v != nil {
		_u.SetAPICalls(*v)
	}
	return _u
}

// AddAPICalls adds value to the "api_calls" field.
func (_u *ExecutionSessionUpdate) AddAPICalls(v int) *ExecutionSessionUpdate {
	_u.mutation.AddAPICalls(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ExecutionSessionUpdate) SetErrorMessage(v string) *ExecutionSessionUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ExecutionSessionUpdate) SetNillableErrorMessage(v *string) *ExecutionSessionUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ExecutionSessionUpdate) ClearErrorMessage() *ExecutionSessionUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *ExecutionSessionUpdate) SetEndedAt(v time.Time) *ExecutionSessionUpdate {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *ExecutionSessionUpdate) SetNillableEndedAt(v *time.Time) *ExecutionSessionUpdate {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *ExecutionSessionUpdate) ClearEndedAt() *ExecutionSessionUpdate {
	_u.mutation.ClearEndedAt()
	return _u
}

// SetLastOutputAt sets the "last_output_at" field.
func (_u *ExecutionSessionUpdate) SetLastOutputAt(v time.Time) *ExecutionSessionUpdate {
	_u.mutation.SetLastOutputAt(v)
	return _u
}

// SetNillableLastOutputAt sets the "last_output_at" field if the given value is not nil.
func (_u *ExecutionSessionUpdate) SetNillableLastOutputAt(v *time.Time) *ExecutionSessionUpdate {
	if v != nil {
		_u.SetLastOutputAt(*v)
	}
	return _u
}

// ClearLastOutputAt clears the value of the "last_output_at" field.
func (_u *ExecutionSessionUpdate) ClearLastOutputAt() *ExecutionSessionUpdate {
	_u.mutation.ClearLastOutputAt()
	return _u
}

// Mutation returns the ExecutionSessionMutation object of the builder.
func (_u *ExecutionSessionUpdate) Mutation() *ExecutionSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExecutionSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExecutionSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExecutionSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExecutionSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExecutionSessionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := executionsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExecutionSession.status": %w`, err)}
		}
	}
	if _u.mutation.TicketCleared() && len(_u.mutation.TicketIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExecutionSession.ticket"`)
	}
	return nil
}

func (_u *ExecutionSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(executionsession.Table, executionsession.Columns, sqlgraph.NewFieldSpec(executionsession.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(executionsession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(executionsession.FieldInputTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(executionsession.FieldInputTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(executionsession.FieldOutputTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(executionsession.FieldOutputTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.CacheReadTokens(); ok {
		_spec.SetField(executionsession.FieldCacheReadTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCacheReadTokens(); ok {
		_spec.AddField(executionsession.FieldCacheReadTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.CacheCreationTokens(); ok {
		_spec.SetField(executionsession.FieldCacheCreationTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCacheCreationTokens(); ok {
		_spec.AddField(executionsession.FieldCacheCreationTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.APICalls(); ok {
		_spec.SetField(executionsession.FieldAPICalls, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAPICalls(); ok {
		_spec.AddField(executionsession.FieldAPICalls, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(executionsession.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(executionsession.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(executionsession.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(executionsession.FieldEndedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastOutputAt(); ok {
		_spec.SetField(executionsession.FieldLastOutputAt, field.TypeTime, value)
	}
	if _u.mutation.LastOutputAtCleared() {
		_spec.ClearField(executionsession.FieldLastOutputAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{executionsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExecutionSessionUpdateOne is the builder for updating a single ExecutionSession entity.
type ExecutionSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExecutionSessionMutation
}

// SetStatus sets the "status" field.
func (_u *ExecutionSessionUpdateOne) SetStatus(v executionsession.Status) *ExecutionSessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExecutionSessionUpdateOne) SetNillableStatus(v *executionsession.Status) *ExecutionSessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *ExecutionSessionUpdateOne) SetInputTokens(v int64) *ExecutionSessionUpdateOne {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *ExecutionSessionUpdateOne) SetNillableInputTokens(v *int64) *ExecutionSessionUpdateOne {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *ExecutionSessionUpdateOne) AddInputTokens(v int64) *ExecutionSessionUpdateOne {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *ExecutionSessionUpdateOne) SetOutputTokens(v int64) *ExecutionSessionUpdateOne {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *ExecutionSessionUpdateOne) SetNillableOutputTokens(v *int64) *ExecutionSessionUpdateOne {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *ExecutionSessionUpdateOne) AddOutputTokens(v int64) *ExecutionSessionUpdateOne {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetCacheReadTokens sets the "cache_read_tokens" field.
func (_u *ExecutionSessionUpdateOne) SetCacheReadTokens(v int64) *ExecutionSessionUpdateOne {
	_u.mutation.ResetCacheReadTokens()
	_u.mutation.SetCacheReadTokens(v)
	return _u
}

// SetNillableCacheReadTokens sets the "cache_read_tokens" field if the given value is not nil.
func (_u *ExecutionSessionUpdateOne) SetNillableCacheReadTokens(v *int64) *ExecutionSessionUpdateOne {
	if v != nil {
		_u.SetCacheReadTokens(*v)
	}
	return _u
}

// AddCacheReadTokens adds value to the "cache_read_tokens" field.
func (_u *ExecutionSessionUpdateOne) AddCacheReadTokens(v int64) *ExecutionSessionUpdateOne {
	_u.mutation.AddCacheReadTokens(v)
	return _u
}

// SetCacheCreationTokens sets the "cache_creation_tokens" field.
func (_u *ExecutionSessionUpdateOne) SetCacheCreationTokens(v int64) *ExecutionSessionUpdateOne {
	_u.mutation.ResetCacheCreationTokens()
	_u.mutation.SetCacheCreationTokens(v)
	return _u
}

// SetNillableCacheCreationTokens sets the "cache_creation_tokens" field if the given value is not nil.
func (_u *ExecutionSessionUpdateOne) SetNillableCacheCreationTokens(v *int64) *ExecutionSessionUpdateOne {
	if v != nil {
		_u.SetCacheCreationTokens(*v)
	}
	return _u
}

// AddCacheCreationTokens adds value to the "cache_creation_tokens" field.
func (_u *ExecutionSessionUpdateOne) AddCacheCreationTokens(v int64) *ExecutionSessionUpdateOne {
	_u.mutation.AddCacheCreationTokens(v)
	return _u
}

// SetAPICalls sets the "api_calls" field.
func (_u *ExecutionSessionUpdateOne) SetAPICalls(v int) *ExecutionSessionUpdateOne {
	_u.mutation.ResetAPICalls()
	_u.mutation.SetAPICalls(v)
	return _u
}

// SetNillableAPICalls sets the "api_calls" field if the given value is not nil.
func (_u *ExecutionSessionUpdateOne) SetNillableAPICalls(v *int) *ExecutionSessionUpdateOne {
	if v != nil {
		_u.SetAPICalls(*v)
	}
	return _u
}

// AddAPICalls adds value to the "api_calls" field.
func (_u *ExecutionSessionUpdateOne) AddAPICalls(v int) *ExecutionSessionUpdateOne {
	_u.mutation.AddAPICalls(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ExecutionSessionUpdateOne) SetErrorMessage(v string) *ExecutionSessionUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ExecutionSessionUpdateOne) SetNillableErrorMessage(v *string) *ExecutionSessionUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ExecutionSessionUpdateOne) ClearErrorMessage() *ExecutionSessionUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *ExecutionSessionUpdateOne) SetEndedAt(v time.Time) *ExecutionSessionUpdateOne {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *ExecutionSessionUpdateOne) SetNillableEndedAt(v *time.Time) *ExecutionSessionUpdateOne {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *ExecutionSessionUpdateOne) ClearEndedAt() *ExecutionSessionUpdateOne {
	_u.mutation.ClearEndedAt()
	return _u
}

// SetLastOutputAt sets the "last_output_at" field.
func (_u *ExecutionSessionUpdateOne) SetLastOutputAt(v time.Time) *ExecutionSessionUpdateOne {
	_u.mutation.SetLastOutputAt(v)
	return _u
}

// SetNillableLastOutputAt sets the "last_output_at" field if the given value is not nil.
func (_u *ExecutionSessionUpdateOne) SetNillableLastOutputAt(v *time.Time) *ExecutionSessionUpdateOne {
	if v != nil {
		_u.SetLastOutputAt(*v)
	}
	return _u
}

// ClearLastOutputAt clears the value of the "last_output_at" field.
func (_u *ExecutionSessionUpdateOne) ClearLastOutputAt() *ExecutionSessionUpdateOne {
	_u.mutation.ClearLastOutputAt()
	return _u
}

// Mutation returns the ExecutionSessionMutation object of the builder.
func (_u *ExecutionSessionUpdateOne) Mutation() *ExecutionSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExecutionSessionUpdate builder.
func (_u *ExecutionSessionUpdateOne) Where(ps ...predicate.ExecutionSession) *ExecutionSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExecutionSessionUpdateOne) Select(field string, fields ...string) *ExecutionSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExecutionSession entity.
func (_u *ExecutionSessionUpdateOne) Save(ctx context.Context) (*ExecutionSession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExecutionSessionUpdateOne) SaveX(ctx context.Context) *ExecutionSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExecutionSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExecutionSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExecutionSessionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := executionsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExecutionSession.status": %w`, err)}
		}
	}
	if _u.mutation.TicketCleared() && len(_u.mutation.TicketIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExecutionSession.ticket"`)
	}
	return nil
}

func (_u *ExecutionSessionUpdateOne) sqlSave(ctx context.Context) (_node *ExecutionSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(executionsession.Table, executionsession.Columns, sqlgraph.NewFieldSpec(executionsession.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExecutionSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, executionsession.FieldID)
		for _, f := range fields {
			if !executionsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != executionsession.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(executionsession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(executionsession.FieldInputTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(executionsession.FieldInputTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(executionsession.FieldOutputTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(executionsession.FieldOutputTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.CacheReadTokens(); ok {
		_spec.SetField(executionsession.FieldCacheReadTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCacheReadTokens(); ok {
		_spec.AddField(executionsession.FieldCacheReadTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.CacheCreationTokens(); ok {
		_spec.SetField(executionsession.FieldCacheCreationTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCacheCreationTokens(); ok {
		_spec.AddField(executionsession.FieldCacheCreationTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.APICalls(); ok {
		_spec.SetField(executionsession.FieldAPICalls, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAPICalls(); ok {
		_spec.AddField(executionsession.FieldAPICalls, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(executionsession.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(executionsession.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(executionsession.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(executionsession.FieldEndedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastOutputAt(); ok {
		_spec.SetField(executionsession.FieldLastOutputAt, field.TypeTime, value)
	}
	if _u.mutation.LastOutputAtCleared() {
		_spec.ClearField(executionsession.FieldLastOutputAt, field.TypeTime)
	}
	_node = &ExecutionSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{executionsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

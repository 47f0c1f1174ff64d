// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fleetworks/conductor/ent/executionsession"
	"github.com/fleetworks/conductor/ent/ticket"
)

// ExecutionSessionCreate is the builder for creating a ExecutionSession entity.
type ExecutionSessionCreate struct {
	config
	mutation *ExecutionSessionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTicketID sets the "ticket_id" field.
func (_c *ExecutionSessionCreate) SetTicketID(v int) *ExecutionSessionCreate {
	_c.mutation.SetTicketID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ExecutionSessionCreate) SetStatus(v executionsession.Status) *ExecutionSessionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ExecutionSessionCreate) SetNillableStatus(v *executionsession.Status) *ExecutionSessionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetInputTokens sets the "input_tokens" field.
func (_c *ExecutionSessionCreate) SetInputTokens(v int64) *ExecutionSessionCreate {
	_c.mutation.SetInputTokens(v)
	return _c
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_c *ExecutionSessionCreate) SetNillableInputTokens(v *int64) *ExecutionSessionCreate {
	if v != nil {
		_c.SetInputTokens(*v)
	}
	return _c
}

// SetOutputTokens sets the "output_tokens" field.
func (_c *ExecutionSessionCreate) SetOutputTokens(v int64) *ExecutionSessionCreate {
	_c.mutation.SetOutputTokens(v)
	return _c
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_c *ExecutionSessionCreate) SetNillableOutputTokens(v *int64) *ExecutionSessionCreate {
	if v != nil {
		_c.SetOutputTokens(*v)
	}
	return _c
}

// SetCacheReadTokens sets the "cache_read_tokens" field.
func (_c *ExecutionSessionCreate) SetCacheReadTokens(v int64) *ExecutionSessionCreate {
	_c.mutation.SetCacheReadTokens(v)
	return _c
}

// SetNillableCacheReadTokens sets the "cache_read_tokens" field if the given value is not nil.
func (_c *ExecutionSessionCreate) SetNillableCacheReadTokens(v *int64) *ExecutionSessionCreate {
	if v != nil {
		_c.SetCacheReadTokens(*v)
	}
	return _c
}

// SetCacheCreationTokens sets the "cache_creation_tokens" field.
func (_c *ExecutionSessionCreate) SetCacheCreationTokens(v int64) *ExecutionSessionCreate {
	_c.mutation.SetCacheCreationTokens(v)
	return _c
}

// SetNillableCacheCreationTokens sets the "cache_creation_tokens" field if the given value is not nil.
func (_c *ExecutionSessionCreate) SetNillableCacheCreationTokens(v *int64) *ExecutionSessionCreate {
	if v != nil {
		_c.SetCacheCreationTokens(*v)
	}
	return _c
}

// SetAPICalls sets the "api_calls" field.
func (_c *ExecutionSessionCreate) SetAPICalls(v int) *ExecutionSessionCreate {
	_c.mutation.SetAPICalls(v)
	return _c
}

// SetNillableAPICalls sets the "api_calls" field if the given value is not nil.
func (_c *ExecutionSessionCreate) SetNillableAPICalls(v *int) *ExecutionSessionCreate {
	if v != nil {
		_c.SetAPICalls(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ExecutionSessionCreate) SetErrorMessage(v string) *ExecutionSessionCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ExecutionSessionCreate) SetNillableErrorMessage(v *string) *ExecutionSessionCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ExecutionSessionCreate) SetStartedAt(v time.Time) *ExecutionSessionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *ExecutionSessionCreate) SetNillableStartedAt(v *time.Time) *ExecutionSessionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetEndedAt sets the "ended_at" field.
func (_c *ExecutionSessionCreate) SetEndedAt(v time.Time) *ExecutionSessionCreate {
	_c.mutation.SetEndedAt(v)
	return _c
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_c *ExecutionSessionCreate) SetNillableEndedAt(v *time.Time) *ExecutionSessionCreate {
	if v != nil {
		_c.SetEndedAt(*v)
	}
	return _c
}

// SetLastOutputAt sets the "last_output_at" field.
func (_c *ExecutionSessionCreate) SetLastOutputAt(v time.Time) *ExecutionSessionCreate {
	_c.mutation.SetLastOutputAt(v)
	return _c
}

// SetNillableLastOutputAt sets the "last_output_at" field if the given value is not nil.
func (_c *ExecutionSessionCreate) SetNillableLastOutputAt(v *time.Time) *ExecutionSessionCreate {
	if v != nil {
		_c.SetLastOutputAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExecutionSessionCreate) SetID(v string) *ExecutionSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTicket sets the "ticket" edge to the Ticket entity.
func (_c *ExecutionSessionCreate) SetTicket(v *Ticket) *ExecutionSessionCreate {
	return _c.SetTicketID(v.ID)
}

// Mutation returns the ExecutionSessionMutation object of the builder.
func (_c *ExecutionSessionCreate) Mutation() *ExecutionSessionMutation {
	return _c.mutation
}

// Save creates the ExecutionSession in the database.
func (_c *ExecutionSessionCreate) Save(ctx context.Context) (*ExecutionSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExecutionSessionCreate) SaveX(ctx context.Context) *ExecutionSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExecutionSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExecutionSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExecutionSessionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := executionsession.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		v := executionsession.DefaultInputTokens
		_c.mutation.SetInputTokens(v)
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		v := executionsession.DefaultOutputTokens
		_c.mutation.SetOutputTokens(v)
	}
	if _, ok := _c.mutation.CacheReadTokens(); !ok {
		v := executionsession.DefaultCacheReadTokens
		_c.mutation.SetCacheReadTokens(v)
	}
	if _, ok := _c.mutation.CacheCreationTokens(); !ok {
		v := executionsession.DefaultCacheCreationTokens
		_c.mutation.SetCacheCreationTokens(v)
	}
	if _, ok := _c.mutation.APICalls(); !ok {
		v := executionsession.DefaultAPICalls
		_c.mutation.SetAPICalls(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := executionsession.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExecutionSessionCreate) check() error {
	if _, ok := _c.mutation.TicketID(); !ok {
		return &ValidationError{Name: "ticket_id", err: errors.New(`ent: missing required field "ExecutionSession.ticket_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ExecutionSession.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := executionsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExecutionSession.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		return &ValidationError{Name: "input_tokens", err: errors.New(`ent: missing required field "ExecutionSession.input_tokens"`)}
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		return &ValidationError{Name: "output_tokens", err: errors.New(`ent: missing required field "ExecutionSession.output_tokens"`)}
	}
	if _, ok := _c.mutation.CacheReadTokens(); !ok {
		return &ValidationError{Name: "cache_read_tokens", err: errors.New(`ent: missing required field "ExecutionSession.cache_read_tokens"`)}
	}
	if _, ok := _c.mutation.CacheCreationTokens(); !ok {
		return &ValidationError{Name: "cache_creation_tokens", err: errors.New(`ent: missing required field "ExecutionSession.cache_creation_tokens"`)}
	}
	if _, ok := _c.mutation.APICalls(); !ok {
		return &ValidationError{Name: "api_calls", err: errors.New(`ent: missing required field "ExecutionSession.api_calls"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "ExecutionSession.started_at"`)}
	}
	if len(_c.mutation.TicketIDs()) == 0 {
		return &ValidationError{Name: "ticket", err: errors.New(`ent: missing required edge "ExecutionSession.ticket"`)}
	}
	return nil
}

func (_c *ExecutionSessionCreate) sqlSave(ctx context.Context) (*ExecutionSession, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected ExecutionSession.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExecutionSessionCreate) createSpec() (*ExecutionSession, *sqlgraph.CreateSpec) {
	var (
		_node = &ExecutionSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(executionsession.Table, sqlgraph.NewFieldSpec(executionsession.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(executionsession.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.InputTokens(); ok {
		_spec.SetField(executionsession.FieldInputTokens, field.TypeInt64, value)
		_node.InputTokens = value
	}
	if value, ok := _c.mutation.OutputTokens(); ok {
		_spec.SetField(executionsession.FieldOutputTokens, field.TypeInt64, value)
		_node.OutputTokens = value
	}
	if value, ok := _c.mutation.CacheReadTokens(); ok {
		_spec.SetField(executionsession.FieldCacheReadTokens, field.TypeInt64, value)
		_node.CacheReadTokens = value
	}
	if value, ok := _c.mutation.CacheCreationTokens(); ok {
		_spec.SetField(executionsession.FieldCacheCreationTokens, field.TypeInt64, value)
		_node.CacheCreationTokens = value
	}
	if value, ok := _c.mutation.APICalls(); ok {
		_spec.SetField(executionsession.FieldAPICalls, field.TypeInt, value)
		_node.APICalls = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(executionsession.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(executionsession.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.EndedAt(); ok {
		_spec.SetField(executionsession.FieldEndedAt, field.TypeTime, value)
		_node.EndedAt = &value
	}
	if value, ok := _c.mutation.LastOutputAt(); ok {
		_spec.SetField(executionsession.FieldLastOutputAt, field.TypeTime, value)
		_node.LastOutputAt = &value
	}
	if nodes := _c.mutation.TicketIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   executionsession.TicketTable,
			Columns: []string{executionsession.TicketColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ticket.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TicketID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ExecutionSession.Create().
//		SetTicketID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExecutionSessionUpsert) {
//			SetTicketID(v+v).
//		}).
//		Exec(ctx)
func (_c *ExecutionSessionCreate) OnConflict(opts ...sql.ConflictOption) *ExecutionSessionUpsertOne {
	_c.conflict = opts
	return &ExecutionSessionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ExecutionSession.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExecutionSessionCreate) OnConflictColumns(columns ...string) *ExecutionSessionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExecutionSessionUpsertOne{
		create: _c,
	}
}

type (
	// ExecutionSessionUpsertOne is the builder for "upsert"-ing
	//  one ExecutionSession node.
	ExecutionSessionUpsertOne struct {
		create *ExecutionSessionCreate
	}

	// ExecutionSessionUpsert is the "OnConflict" setter.
	ExecutionSessionUpsert struct {
		*sql.UpdateSet
	}
)

// SetStatus sets the "status" field.
func (u *ExecutionSessionUpsert) SetStatus(v executionsession.Status) *ExecutionSessionUpsert {
	u.Set(executionsession.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ExecutionSessionUpsert) UpdateStatus() *ExecutionSessionUpsert {
	u.SetExcluded(executionsession.FieldStatus)
	return u
}

// SetInputTokens sets the "input_tokens" field.
func (u *ExecutionSessionUpsert) SetInputTokens(v int64) *ExecutionSessionUpsert {
	u.Set(executionsession.FieldInputTokens, v)
	return u
}

// UpdateInputTokens sets the "input_tokens" field to the value that was provided on create.
func (u *ExecutionSessionUpsert) UpdateInputTokens() *ExecutionSessionUpsert {
	u.SetExcluded(executionsession.FieldInputTokens)
	return u
}

// AddInputTokens adds v to the "input_tokens" field.
func (u *ExecutionSessionUpsert) AddInputTokens(v int64) *ExecutionSessionUpsert {
	u.Add(executionsession.FieldInputTokens, v)
	return u
}

// SetOutputTokens sets the "output_tokens" field.
func (u *ExecutionSessionUpsert) SetOutputTokens(v int64) *ExecutionSessionUpsert {
	u.Set(executionsession.FieldOutputTokens, v)
	return u
}

// UpdateOutputTokens sets the "output_tokens" field to the value that was provided on create.
func (u *ExecutionSessionUpsert) UpdateOutputTokens() *ExecutionSessionUpsert {
	u.SetExcluded(executionsession.FieldOutputTokens)
	return u
}

// AddOutputTokens adds v to the "output_tokens" field.
func (u *ExecutionSessionUpsert) AddOutputTokens(v int64) *ExecutionSessionUpsert {
	u.Add(executionsession.FieldOutputTokens, v)
	return u
}

// SetCacheReadTokens sets the "cache_read_tokens" field.
func (u *ExecutionSessionUpsert) SetCacheReadTokens(v int64) *ExecutionSessionUpsert {
	u.Set(executionsession.FieldCacheReadTokens, v)
	return u
}

// UpdateCacheReadTokens sets the "cache_read_tokens" field to the value that was provided on create.
func (u *ExecutionSessionUpsert) UpdateCacheReadTokens() *ExecutionSessionUpsert {
	u.SetExcluded(executionsession.FieldCacheReadTokens)
	return u
}

// AddCacheReadTokens adds v to the "cache_read_tokens" field.
func (u *ExecutionSessionUpsert) AddCacheReadTokens(v int64) *ExecutionSessionUpsert {
	u.Add(executionsession.FieldCacheReadTokens, v)
	return u
}

// SetCacheCreationTokens sets the "cache_creation_tokens" field.
func (u *ExecutionSessionUpsert) SetCacheCreationTokens(v int64) *ExecutionSessionUpsert {
	u.Set(executionsession.FieldCacheCreationTokens, v)
	return u
}

// UpdateCacheCreationTokens sets the "cache_creation_tokens" field to the value that was provided on create.
func (u *ExecutionSessionUpsert) UpdateCacheCreationTokens() *ExecutionSessionUpsert {
	u.SetExcluded(executionsession.FieldCacheCreationTokens)
	return u
}

// AddCacheCreationTokens adds v to the "cache_creation_tokens" field.
func (u *ExecutionSessionUpsert) AddCacheCreationTokens(v int64) *ExecutionSessionUpsert {
	u.Add(executionsession.FieldCacheCreationTokens, v)
	return u
}

// SetAPICalls sets the "api_calls" field.
func (u *ExecutionSessionUpsert) SetAPICalls(v int) *ExecutionSessionUpsert {
	u.Set(executionsession.FieldAPICalls, v)
	return u
}

// UpdateAPICalls sets the "api_calls" field to the value that was provided on create.
func (u *ExecutionSessionUpsert) UpdateAPICalls() *ExecutionSessionUpsert {
	u.SetExcluded(executionsession.FieldAPICalls)
	return u
}

// AddAPICalls adds v to the "api_calls" field.
func (u *ExecutionSessionUpsert) AddAPICalls(v int) *ExecutionSessionUpsert {
	u.Add(executionsession.FieldAPICalls, v)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *ExecutionSessionUpsert) SetErrorMessage(v string) *ExecutionSessionUpsert {
	u.Set(executionsession.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *ExecutionSessionUpsert) UpdateErrorMessage() *ExecutionSessionUpsert {
	u.SetExcluded(executionsession.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *ExecutionSessionUpsert) ClearErrorMessage() *ExecutionSessionUpsert {
	u.SetNull(executionsession.FieldErrorMessage)
	return u
}

// SetEndedAt sets the "ended_at" field.
func (u *ExecutionSessionUpsert) SetEndedAt(v time.Time) *ExecutionSessionUpsert {
	u.Set(executionsession.FieldEndedAt, v)
	return u
}

// UpdateEndedAt sets the "ended_at" field to the value that was provided on create.
func (u *ExecutionSessionUpsert) UpdateEndedAt() *ExecutionSessionUpsert {
	u.SetExcluded(executionsession.FieldEndedAt)
	return u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (u *ExecutionSessionUpsert) ClearEndedAt() *ExecutionSessionUpsert {
	u.SetNull(executionsession.FieldEndedAt)
	return u
}

// SetLastOutputAt sets the "last_output_at" field.
func (u *ExecutionSessionUpsert) SetLastOutputAt(v time.Time) *ExecutionSessionUpsert {
	u.Set(executionsession.FieldLastOutputAt, v)
	return u
}

// UpdateLastOutputAt sets the "last_output_at" field to the value that was provided on create.
func (u *ExecutionSessionUpsert) UpdateLastOutputAt() *ExecutionSessionUpsert {
	u.SetExcluded(executionsession.FieldLastOutputAt)
	return u
}

// ClearLastOutputAt clears the value of the "last_output_at" field.
func (u *ExecutionSessionUpsert) ClearLastOutputAt() *ExecutionSessionUpsert {
	u.SetNull(executionsession.FieldLastOutputAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ExecutionSession.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(executionsession.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ExecutionSessionUpsertOne) UpdateNewValues() *ExecutionSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(executionsession.FieldID)
		}
		if _, exists := u.create.mutation.TicketID(); exists {
			s.SetIgnore(executionsession.FieldTicketID)
		}
		if _, exists := u.create.mutation.StartedAt(); exists {
			s.SetIgnore(executionsession.FieldStartedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ExecutionSession.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ExecutionSessionUpsertOne) Ignore() *ExecutionSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExecutionSessionUpsertOne) DoNothing() *ExecutionSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExecutionSessionCreate.OnConflict
// documentation for more info.
func (u *ExecutionSessionUpsertOne) Update(set func(*ExecutionSessionUpsert)) *ExecutionSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExecutionSessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *ExecutionSessionUpsertOne) SetStatus(v executionsession.Status) *ExecutionSessionUpsertOne {
	return u.Update(func(s *ExecutionSessionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ExecutionSessionUpsertOne) UpdateStatus() *ExecutionSessionUpsertOne {
	return u.Update(func(s *ExecutionSessionUpsert) {
		s.UpdateStatus()
	})
}

// SetInputTokens sets the "input_tokens" field.
func (u *ExecutionSessionUpsertOne) SetInputTokens(v int64) *ExecutionSessionUpsertOne {
	return u.Update(func(s *ExecutionSessionUpsert) {
		s.SetInputTokens(v)
	})
}

// AddInputTokens adds v to the "input_tokens" field.
func (u *ExecutionSessionUpsertOne) AddInputTokens(v int64) *ExecutionSessionUpsertOne {
	return u.Update(func(s *ExecutionSessionUpsert) {
		s.AddInputTokens(v)
	})
}

// UpdateInputTokens sets the "input_tokens" field to the value that was provided on create.
func (u *ExecutionSessionUpsertOne) UpdateInputTokens() *ExecutionSessionUpsertOne {
	return u.Update(func(s *ExecutionSessionUpsert) {
		s.UpdateInputTokens()
	})
}

// SetOutputTokens sets the "output_tokens" field.
func (u *ExecutionSessionUpsertOne) SetOutputTokens(v int64) *ExecutionSessionUpsertOne {
	return u.Update(func(s *ExecutionSessionUpsert) {
		s.SetOutputTokens(v)
	})
}

// AddOutputTokens adds v to the "output_tokens" field.
func (u *ExecutionSessionUpsertOne) AddOutputTokens(v int64) *ExecutionSessionUpsertOne {
	return u.Update(func(s *ExecutionSessionUpsert) {
		s.AddOutputTokens(v)
	})
}

// UpdateOutputTokens sets the "output_tokens" field to the value that was provided on create.
func (u *ExecutionSessionUpsertOne) UpdateOutputTokens() *ExecutionSessionUpsertOne {
	return u.Update(func(s *ExecutionSessionUpsert) {
		s.UpdateOutputTokens()
	})
}

// SetCacheReadTokens sets the "cache_read_tokens" field.
func (u *ExecutionSessionUpsertOne) SetCacheReadTokens(v int64) *ExecutionSessionUpsertOne {
	return u.Update(func(s *ExecutionSessionUpsert) {
		s.SetCacheReadTokens(v)
	})
}

// AddCacheReadTokens adds v to the "cache_read_tokens" field.
func (u *ExecutionSessionUpsertOne) AddCacheReadTokens(v int64) *ExecutionSessionUpsertOne {
	return u.Update(func(s *ExecutionSessionUpsert) {
		s.AddCacheReadTokens(v)
	})
}

// UpdateCacheReadTokens sets the "cache_read_tokens" field to the value that was provided on create.
func (u *ExecutionSessionUpsertOne) UpdateCacheReadTokens() *ExecutionSessionUpsertOne {
	return u.Update(func(s *ExecutionSessionUpsert) {
		s.UpdateCacheReadTokens()
	})
}

// SetCacheCreationTokens sets the "cache_creation_tokens" field.
func (u *ExecutionSessionUpsertOne) SetCacheCreationTokens(v int64) *ExecutionSessionUpsertOne {
	return u.Update(func(s *ExecutionSessionUpsert) {
		s.SetCacheCreationTokens(v)
	})
}

// AddCacheCreationTokens adds v to the "cache_creation_tokens" field.
func (u *ExecutionSessionUpsertOne) AddCacheCreationTokens(v int64) *ExecutionSessionUpsertOne {
	return u.Update(func(s *ExecutionSessionUpsert) {
		s.AddCacheCreationTokens(v)
	})
}

// UpdateCacheCreationTokens sets the "cache_creation_tokens" field to the value that was provided on create.
func (u *ExecutionSessionUpsertOne) UpdateCacheCreationTokens() *ExecutionSessionUpsertOne {
	return u.Update(func(s *ExecutionSessionUpsert) {
		s.UpdateCacheCreationTokens()
	})
}

// SetAPICalls sets the "api_calls" field.
func (u *ExecutionSessionUpsertOne) SetAPICalls(v int) *ExecutionSessionUpsertOne {
	return u.Update(func(s *ExecutionSessionUpsert) {
		s.SetAPICalls(v)
	})
}

// AddAPICalls adds v to the "api_calls" field.
func (u *ExecutionSessionUpsertOne) AddAPICalls(v int) *ExecutionSessionUpsertOne {
	return u.Update(func(s *ExecutionSessionUpsert) {
		s.AddAPICalls(v)
	})
}

// UpdateAPICalls sets the "api_calls" field to the value that was provided on create.
func (u *ExecutionSessionUpsertOne) UpdateAPICalls() *ExecutionSessionUpsertOne {
	return u.Update(func(s *ExecutionSessionUpsert) {
		s.UpdateAPICalls()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *ExecutionSessionUpsertOne) SetErrorMessage(v string) *ExecutionSessionUpsertOne {
	return u.Update(func(s *ExecutionSessionUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *ExecutionSessionUpsertOne) UpdateErrorMessage() *ExecutionSessionUpsertOne {
	return u.Update(func(s *ExecutionSessionUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *ExecutionSessionUpsertOne) ClearErrorMessage() *ExecutionSessionUpsertOne {
	return u.Update(func(s *ExecutionSessionUpsert) {
		s.ClearErrorMessage()
	})
}

// SetEndedAt sets the "ended_at" field.
func (u *ExecutionSessionUpsertOne) SetEndedAt(v time.Time) *ExecutionSessionUpsertOne {
	return u.Update(func(s *ExecutionSessionUpsert) {
		s.SetEndedAt(v)
	})
}

// UpdateEndedAt sets the "ended_at" field to the value that was provided on create.
func (u *ExecutionSessionUpsertOne) UpdateEndedAt() *ExecutionSessionUpsertOne {
	return u.Update(func(s *ExecutionSessionUpsert) {
		s.UpdateEndedAt()
	})
}

// ClearEndedAt clears the value of the "ended_at" field.
func (u *ExecutionSessionUpsertOne) ClearEndedAt() *ExecutionSessionUpsertOne {
	return u.Update(func(s *ExecutionSessionUpsert) {
		s.ClearEndedAt()
	})
}

// SetLastOutputAt sets the "last_output_at" field.
func (u *ExecutionSessionUpsertOne) SetLastOutputAt(v time.Time) *ExecutionSessionUpsertOne {
	return u.Update(func(s *ExecutionSessionUpsert) {
		s.SetLastOutputAt(v)
	})
}

// UpdateLastOutputAt sets the "last_output_at" field to the value that was provided on create.
func (u *ExecutionSessionUpsertOne) UpdateLastOutputAt() *ExecutionSessionUpsertOne {
	return u.Update(func(s *ExecutionSessionUpsert) {
		s.UpdateLastOutputAt()
	})
}

// ClearLastOutputAt clears the value of the "last_output_at" field.
func (u *ExecutionSessionUpsertOne) ClearLastOutputAt() *ExecutionSessionUpsertOne {
	return u.Update(func(s *ExecutionSessionUpsert) {
		s.ClearLastOutputAt()
	})
}

// Exec executes the query.
func (u *ExecutionSessionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExecutionSessionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExecutionSessionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ExecutionSessionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ExecutionSessionUpsertOne.ID is not supported by MySQL driver. Use ExecutionSessionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ExecutionSessionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ExecutionSessionCreateBulk is the builder for creating many ExecutionSession entities in bulk.
type ExecutionSessionCreateBulk struct {
	config
	err      error
	builders []*ExecutionSessionCreate
	conflict []sql.ConflictOption
}

// Save creates the ExecutionSession entities in the database.
func (_c *ExecutionSessionCreateBulk) Save(ctx context.Context) ([]*ExecutionSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExecutionSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExecutionSessionMutation)
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
func (_c *ExecutionSessionCreateBulk) SaveX(ctx context.Context) []*ExecutionSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExecutionSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExecutionSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ExecutionSession.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExecutionSessionUpsert) {
//			SetTicketID(v+v).
//		}).
//		Exec(ctx)
func (_c *ExecutionSessionCreateBulk) OnConflict(opts ...sql.ConflictOption) *ExecutionSessionUpsertBulk {
	_c.conflict = opts
	return &ExecutionSessionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ExecutionSession.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExecutionSessionCreateBulk) OnConflictColumns(columns ...string) *ExecutionSessionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExecutionSessionUpsertBulk{
		create: _c,
	}
}

// ExecutionSessionUpsertBulk is the builder for "upsert"-ing
// a bulk of ExecutionSession nodes.
type ExecutionSessionUpsertBulk struct {
	create *ExecutionSessionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ExecutionSession.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(executionsession.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ExecutionSessionUpsertBulk) UpdateNewValues() *ExecutionSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(executionsession.FieldID)
			}
			if _, exists := b.mutation.TicketID(); exists {
				s.SetIgnore(executionsession.FieldTicketID)
			}
			if _, exists := b.mutation.StartedAt(); exists {
				s.SetIgnore(executionsession.FieldStartedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ExecutionSession.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ExecutionSessionUpsertBulk) Ignore() *ExecutionSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExecutionSessionUpsertBulk) DoNothing() *ExecutionSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExecutionSessionCreateBulk.OnConflict
// documentation for more info.
func (u *ExecutionSessionUpsertBulk) Update(set func(*ExecutionSessionUpsert)) *ExecutionSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExecutionSessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *ExecutionSessionUpsertBulk) SetStatus(v executionsession.Status) *ExecutionSessionUpsertBulk {
	return u.Update(func(s *ExecutionSessionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ExecutionSessionUpsertBulk) UpdateStatus() *ExecutionSessionUpsertBulk {
	return u.Update(func(s *ExecutionSessionUpsert) {
		s.UpdateStatus()
	})
}

// SetInputTokens sets the "input_tokens" field.
func (u *ExecutionSessionUpsertBulk) SetInputTokens(v int64) *ExecutionSessionUpsertBulk {
	return u.Update(func(s *ExecutionSessionUpsert) {
		s.SetInputTokens(v)
	})
}

// AddInputTokens adds v to the "input_tokens" field.
func (u *ExecutionSessionUpsertBulk) AddInputTokens(v int64) *ExecutionSessionUpsertBulk {
	return u.Update(func(s *ExecutionSessionUpsert) {
		s.AddInputTokens(v)
	})
}

// UpdateInputTokens sets the "input_tokens" field to the value that was provided on create.
func (u *ExecutionSessionUpsertBulk) UpdateInputTokens() *ExecutionSessionUpsertBulk {
	return u.Update(func(s *ExecutionSessionUpsert) {
		s.UpdateInputTokens()
	})
}

// SetOutputTokens sets the "output_tokens" field.
func (u *ExecutionSessionUpsertBulk) SetOutputTokens(v int64) *ExecutionSessionUpsertBulk {
	return u.Update(func(s *ExecutionSessionUpsert) {
		s.SetOutputTokens(v)
	})
}

// AddOutputTokens adds v to the "output_tokens" field.
func (u *ExecutionSessionUpsertBulk) AddOutputTokens(v int64) *ExecutionSessionUpsertBulk {
	return u.Update(func(s *ExecutionSessionUpsert) {
		s.AddOutputTokens(v)
	})
}

// UpdateOutputTokens sets the "output_tokens" field to the value that was provided on create.
func (u *ExecutionSessionUpsertBulk) UpdateOutputTokens() *ExecutionSessionUpsertBulk {
	return u.Update(func(s *ExecutionSessionUpsert) {
		s.UpdateOutputTokens()
	})
}

// SetCacheReadTokens sets the "cache_read_tokens" field.
func (u *ExecutionSessionUpsertBulk) SetCacheReadTokens(v int64) *ExecutionSessionUpsertBulk {
	return u.Update(func(s *ExecutionSessionUpsert) {
		s.SetCacheReadTokens(v)
	})
}

// AddCacheReadTokens adds v to the "cache_read_tokens" field.
func (u *ExecutionSessionUpsertBulk) AddCacheReadTokens(v int64) *ExecutionSessionUpsertBulk {
	return u.Update(func(s *ExecutionSessionUpsert) {
		s.AddCacheReadTokens(v)
	})
}

// UpdateCacheReadTokens sets the "cache_read_tokens" field to the value that was provided on create.
func (u *ExecutionSessionUpsertBulk) UpdateCacheReadTokens() *ExecutionSessionUpsertBulk {
	return u.Update(func(s *ExecutionSessionUpsert) {
		s.UpdateCacheReadTokens()
	})
}

// SetCacheCreationTokens sets the "cache_creation_tokens" field.
func (u *ExecutionSessionUpsertBulk) SetCacheCreationTokens(v int64) *ExecutionSessionUpsertBulk {
	return u.Update(func(s *ExecutionSessionUpsert) {
		s.SetCacheCreationTokens(v)
	})
}

// AddCacheCreationTokens adds v to the "cache_creation_tokens" field.
func (u *ExecutionSessionUpsertBulk) AddCacheCreationTokens(v int64) *ExecutionSessionUpsertBulk {
	return u.Update(func(s *ExecutionSessionUpsert) {
		s.AddCacheCreationTokens(v)
	})
}

// UpdateCacheCreationTokens sets the "cache_creation_tokens" field to the value that was provided on create.
func (u *ExecutionSessionUpsertBulk) UpdateCacheCreationTokens() *ExecutionSessionUpsertBulk {
	return u.Update(func(s *ExecutionSessionUpsert) {
		s.UpdateCacheCreationTokens()
	})
}

// SetAPICalls sets the "api_calls" field.
func (u *ExecutionSessionUpsertBulk) SetAPICalls(v int) *ExecutionSessionUpsertBulk {
	return u.Update(func(s *ExecutionSessionUpsert) {
		s.SetAPICalls(v)
	})
}

// AddAPICalls adds v to the "api_calls" field.
func (u *ExecutionSessionUpsertBulk) AddAPICalls(v int) *ExecutionSessionUpsertBulk {
	return u.Update(func(s *ExecutionSessionUpsert) {
		s.AddAPICalls(v)
	})
}

// UpdateAPICalls sets the "api_calls" field to the value that was provided on create.
func (u *ExecutionSessionUpsertBulk) UpdateAPICalls() *ExecutionSessionUpsertBulk {
	return u.Update(func(s *ExecutionSessionUpsert) {
		s.UpdateAPICalls()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *ExecutionSessionUpsertBulk) SetErrorMessage(v string) *ExecutionSessionUpsertBulk {
	return u.Update(func(s *ExecutionSessionUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *ExecutionSessionUpsertBulk) UpdateErrorMessage() *ExecutionSessionUpsertBulk {
	return u.Update(func(s *ExecutionSessionUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *ExecutionSessionUpsertBulk) ClearErrorMessage() *ExecutionSessionUpsertBulk {
	return u.Update(func(s *ExecutionSessionUpsert) {
		s.ClearErrorMessage()
	})
}

// SetEndedAt sets the "ended_at" field.
func (u *ExecutionSessionUpsertBulk) SetEndedAt(v time.Time) *ExecutionSessionUpsertBulk {
	return u.Update(func(s *ExecutionSessionUpsert) {
		s.SetEndedAt(v)
	})
}

// UpdateEndedAt sets the "ended_at" field to the value that was provided on create.
func (u *ExecutionSessionUpsertBulk) UpdateEndedAt() *ExecutionSessionUpsertBulk {
	return u.Update(func(s *ExecutionSessionUpsert) {
		s.UpdateEndedAt()
	})
}

// ClearEndedAt clears the value of the "ended_at" field.
func (u *ExecutionSessionUpsertBulk) ClearEndedAt() *ExecutionSessionUpsertBulk {
	return u.Update(func(s *ExecutionSessionUpsert) {
		s.ClearEndedAt()
	})
}

// SetLastOutputAt sets the "last_output_at" field.
func (u *ExecutionSessionUpsertBulk) SetLastOutputAt(v time.Time) *ExecutionSessionUpsertBulk {
	return u.Update(func(s *ExecutionSessionUpsert) {
		s.SetLastOutputAt(v)
	})
}

// UpdateLastOutputAt sets the "last_output_at" field to the value that was provided on create.
func (u *ExecutionSessionUpsertBulk) UpdateLastOutputAt() *ExecutionSessionUpsertBulk {
	return u.Update(func(s *ExecutionSessionUpsert) {
		s.UpdateLastOutputAt()
	})
}

// ClearLastOutputAt clears the value of the "last_output_at" field.
func (u *ExecutionSessionUpsertBulk) ClearLastOutputAt() *ExecutionSessionUpsertBulk {
	return u.Update(func(s *ExecutionSessionUpsert) {
		s.ClearLastOutputAt()
	})
}

// Exec executes the query.
func (u *ExecutionSessionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ExecutionSessionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExecutionSessionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExecutionSessionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

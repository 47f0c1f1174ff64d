// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/fleetworks/conductor/ent/daemonstatus"
	"github.com/fleetworks/conductor/ent/predicate"
)

// DaemonStatusUpdate is the builder for updating DaemonStatus entities.
type DaemonStatusUpdate struct {
	config
	hooks    []Hook
	mutation *DaemonStatusMutation
}

// Where appends a list predicates to the DaemonStatusUpdate builder.
func (_u *DaemonStatusUpdate) Where(ps ...predicate.DaemonStatus) *DaemonStatusUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *DaemonStatusUpdate) SetStatus(v daemonstatus.Status) *DaemonStatusUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DaemonStatusUpdate) SetNillableStatus(v *daemonstatus.Status) *DaemonStatusUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetActiveTickets sets the "active_tickets" field.
func (_u *DaemonStatusUpdate) SetActiveTickets(v int) *DaemonStatusUpdate {
	_u.mutation.ResetActiveTickets()
	_u.mutation.SetActiveTickets(v)
	return _u
}

// SetNillableActiveTickets sets the "active_tickets" field if the given value is not nil.
func (_u *DaemonStatusUpdate) SetNillableActiveTickets(v *int) *DaemonStatusUpdate {
	if v != nil {
		_u.SetActiveTickets(*v)
	}
	return _u
}

// AddActiveTickets adds value to the "active_tickets" field.
func (_u *DaemonStatusUpdate) AddActiveTickets(v int) *DaemonStatusUpdate {
	_u.mutation.AddActiveTickets(v)
	return _u
}

// SetCurrentTickets sets the "current_tickets" field.
func (_u *DaemonStatusUpdate) SetCurrentTickets(v []string) *DaemonStatusUpdate {
	_u.mutation.SetCurrentTickets(v)
	return _u
}

// AppendCurrentTickets appends value to the "current_tickets" field.
func (_u *DaemonStatusUpdate) AppendCurrentTickets(v []string) *DaemonStatusUpdate {
	_u.mutation.AppendCurrentTickets(v)
	return _u
}

// ClearCurrentTickets clears the value of the "current_tickets" field.
func (_u *DaemonStatusUpdate) ClearCurrentTickets() *DaemonStatusUpdate {
	_u.mutation.ClearCurrentTickets()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *DaemonStatusUpdate) SetLastHeartbeatAt(v time.Time) *DaemonStatusUpdate {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *DaemonStatusUpdate) SetStartedAt(v time.Time) *DaemonStatusUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *DaemonStatusUpdate) SetNillableStartedAt(v *time.Time) *DaemonStatusUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetPid sets the "pid" field.
func (_u *DaemonStatusUpdate) SetPid(v int) *DaemonStatusUpdate {
	_u.mutation.ResetPid()
	_u.mutation.SetPid(v)
	return _u
}

// SetNillablePid sets the "pid" field if the given value is not nil.
func (_u *DaemonStatusUpdate) SetNillablePid(v *int) *DaemonStatusUpdate {
	if v != nil {
		_u.SetPid(*v)
	}
	return _u
}

// AddPid adds value to the "pid" field.
func (_u *DaemonStatusUpdate) AddPid(v int) *DaemonStatusUpdate {
	_u.mutation.AddPid(v)
	return _u
}

// SetVersion sets the "version" field.
func (_u *DaemonStatusUpdate) SetVersion(v string) *DaemonStatusUpdate {
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *DaemonStatusUpdate) SetNillableVersion(v *string) *DaemonStatusUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// ClearVersion clears the value of the "version" field.
func (_u *DaemonStatusUpdate) ClearVersion() *DaemonStatusUpdate {
	_u.mutation.ClearVersion()
	return _u
}

// Mutation returns the DaemonStatusMutation object of the builder.
func (_u *DaemonStatusUpdate) Mutation() *DaemonStatusMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DaemonStatusUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DaemonStatusUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DaemonStatusUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DaemonStatusUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DaemonStatusUpdate) defaults() {
	if _, ok := _u.mutation.LastHeartbeatAt(); !ok {
		v := daemonstatus.UpdateDefaultLastHeartbeatAt()
		_u.mutation.SetLastHeartbeatAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DaemonStatusUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := daemonstatus.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DaemonStatus.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DaemonStatusUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(daemonstatus.Table, daemonstatus.Columns, sqlgraph.NewFieldSpec(daemonstatus.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(daemonstatus.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ActiveTickets(); ok {
		_spec.SetField(daemonstatus.FieldActiveTickets, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedActiveTickets(); ok {
		_spec.AddField(daemonstatus.FieldActiveTickets, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CurrentTickets(); ok {
		_spec.SetField(daemonstatus.FieldCurrentTickets, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCurrentTickets(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, daemonstatus.FieldCurrentTickets, value)
		})
	}
	if _u.mutation.CurrentTicketsCleared() {
		_spec.ClearField(daemonstatus.FieldCurrentTickets, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(daemonstatus.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(daemonstatus.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Pid(); ok {
		_spec.SetField(daemonstatus.FieldPid, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPid(); ok {
		_spec.AddField(daemonstatus.FieldPid, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(daemonstatus.FieldVersion, field.TypeString, value)
	}
	if _u.mutation.VersionCleared() {
		_spec.ClearField(daemonstatus.FieldVersion, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{daemonstatus.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DaemonStatusUpdateOne is the builder for updating a single DaemonStatus entity.
type DaemonStatusUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DaemonStatusMutation
}

// SetStatus sets the "status" field.
func (_u *DaemonStatusUpdateOne) SetStatus(v daemonstatus.Status) *DaemonStatusUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DaemonStatusUpdateOne) SetNillableStatus(v *daemonstatus.Status) *DaemonStatusUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetActiveTickets sets the "active_tickets" field.
func (_u *DaemonStatusUpdateOne) SetActiveTickets(v int) *DaemonStatusUpdateOne {
	_u.mutation.ResetActiveTickets()
	_u.mutation.SetActiveTickets(v)
	return _u
}

// SetNillableActiveTickets sets the "active_tickets" field if the given value is not nil.
func (_u *DaemonStatusUpdateOne) SetNillableActiveTickets(v *int) *DaemonStatusUpdateOne {
	if v != nil {
		_u.SetActiveTickets(*v)
	}
	return _u
}

// AddActiveTickets adds value to the "active_tickets" field.
func (_u *DaemonStatusUpdateOne) AddActiveTickets(v int) *DaemonStatusUpdateOne {
	_u.mutation.AddActiveTickets(v)
	return _u
}

// SetCurrentTickets sets the "current_tickets" field.
func (_u *DaemonStatusUpdateOne) SetCurrentTickets(v []string) *DaemonStatusUpdateOne {
	_u.mutation.SetCurrentTickets(v)
	return _u
}

// AppendCurrentTickets appends value to the "current_tickets" field.
func (_u *DaemonStatusUpdateOne) AppendCurrentTickets(v []string) *DaemonStatusUpdateOne {
	_u.mutation.AppendCurrentTickets(v)
	return _u
}

// ClearCurrentTickets clears the value of the "current_tickets" field.
func (_u *DaemonStatusUpdateOne) ClearCurrentTickets() *DaemonStatusUpdateOne {
	_u.mutation.ClearCurrentTickets()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *DaemonStatusUpdateOne) SetLastHeartbeatAt(v time.Time) *DaemonStatusUpdateOne {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *DaemonStatusUpdateOne) SetStartedAt(v time.Time) *DaemonStatusUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *DaemonStatusUpdateOne) SetNillableStartedAt(v *time.Time) *DaemonStatusUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetPid sets the "pid" field.
func (_u *DaemonStatusUpdateOne) SetPid(v int) *DaemonStatusUpdateOne {
	_u.mutation.ResetPid()
	_u.mutation.SetPid(v)
	return _u
}

// SetNillablePid sets the "pid" field if the given value is not nil.
func (_u *DaemonStatusUpdateOne) SetNillablePid(v *int) *DaemonStatusUpdateOne {
	if v != nil {
		_u.SetPid(*v)
	}
	return _u
}

// AddPid adds value to the "pid" field.
func (_u *DaemonStatusUpdateOne) AddPid(v int) *DaemonStatusUpdateOne {
	_u.mutation.AddPid(v)
	return _u
}

// SetVersion sets the "version" field.
func (_u *DaemonStatusUpdateOne) SetVersion(v string) *DaemonStatusUpdateOne {
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *DaemonStatusUpdateOne) SetNillableVersion(v *string) *DaemonStatusUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// ClearVersion clears the value of the "version" field.
func (_u *DaemonStatusUpdateOne) ClearVersion() *DaemonStatusUpdateOne {
	_u.mutation.ClearVersion()
	return _u
}

// Mutation returns the DaemonStatusMutation object of the builder.
func (_u *DaemonStatusUpdateOne) Mutation() *DaemonStatusMutation {
	return _u.mutation
}

// Where appends a list predicates to the DaemonStatusUpdate builder.
func (_u *DaemonStatusUpdateOne) Where(ps ...predicate.DaemonStatus) *DaemonStatusUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DaemonStatusUpdateOne) Select(field string, fields ...string) *DaemonStatusUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DaemonStatus entity.
func (_u *DaemonStatusUpdateOne) Save(ctx context.Context) (*DaemonStatus, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DaemonStatusUpdateOne) SaveX(ctx context.Context) *DaemonStatus {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DaemonStatusUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DaemonStatusUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DaemonStatusUpdateOne) defaults() {
	if _, ok := _u.mutation.LastHeartbeatAt(); !ok {
		v := daemonstatus.UpdateDefaultLastHeartbeatAt()
		_u.mutation.SetLastHeartbeatAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DaemonStatusUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := daemonstatus.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DaemonStatus.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DaemonStatusUpdateOne) sqlSave(ctx context.Context) (_node *DaemonStatus, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(daemonstatus.Table, daemonstatus.Columns, sqlgraph.NewFieldSpec(daemonstatus.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DaemonStatus.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, daemonstatus.FieldID)
		for _, f := range fields {
			if !daemonstatus.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != daemonstatus.FieldID {
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
		_spec.SetField(daemonstatus.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ActiveTickets(); ok {
		_spec.SetField(daemonstatus.FieldActiveTickets, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedActiveTickets(); ok {
		_spec.AddField(daemonstatus.FieldActiveTickets, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CurrentTickets(); ok {
		_spec.SetField(daemonstatus.FieldCurrentTickets, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCurrentTickets(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, daemonstatus.FieldCurrentTickets, value)
		})
	}
	if _u.mutation.CurrentTicketsCleared() {
		_spec.ClearField(daemonstatus.FieldCurrentTickets, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(daemonstatus.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(daemonstatus.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Pid(); ok {
		_spec.SetField(daemonstatus.FieldPid, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPid(); ok {
		_spec.AddField(daemonstatus.FieldPid, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(daemonstatus.FieldVersion, field.TypeString, value)
	}
	if _u.mutation.VersionCleared() {
		_spec.ClearField(daemonstatus.FieldVersion, field.TypeString)
	}
	_node = &DaemonStatus{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{daemonstatus.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

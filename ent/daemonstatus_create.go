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
	"github.com/fleetworks/conductor/ent/daemonstatus"
)

// DaemonStatusCreate is the builder for creating a DaemonStatus entity.
type DaemonStatusCreate struct {
	config
	mutation *DaemonStatusMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetStatus sets the "status" field.
func (_c *DaemonStatusCreate) SetStatus(v daemonstatus.Status) *DaemonStatusCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *DaemonStatusCreate) SetNillableStatus(v *daemonstatus.Status) *DaemonStatusCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetActiveTickets sets the "active_tickets" field.
func (_c *DaemonStatusCreate) SetActiveTickets(v int) *DaemonStatusCreate {
	_c.mutation.SetActiveTickets(v)
	return _c
}

// SetNillableActiveTickets sets the "active_tickets" field if the given value is not nil.
func (_c *DaemonStatusCreate) SetNillableActiveTickets(v *int) *DaemonStatusCreate {
	if v != nil {
		_c.SetActiveTickets(*v)
	}
	return _c
}

// SetCurrentTickets sets the "current_tickets" field.
func (_c *DaemonStatusCreate) SetCurrentTickets(v []string) *DaemonStatusCreate {
	_c.mutation.SetCurrentTickets(v)
	return _c
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_c *DaemonStatusCreate) SetLastHeartbeatAt(v time.Time) *DaemonStatusCreate {
	_c.mutation.SetLastHeartbeatAt(v)
	return _c
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_c *DaemonStatusCreate) SetNillableLastHeartbeatAt(v *time.Time) *DaemonStatusCreate {
	if v != nil {
		_c.SetLastHeartbeatAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *DaemonStatusCreate) SetStartedAt(v time.Time) *DaemonStatusCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *DaemonStatusCreate) SetNillableStartedAt(v *time.Time) *DaemonStatusCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetPid sets the "pid" field.
func (_c *DaemonStatusCreate) SetPid(v int) *DaemonStatusCreate {
	_c.mutation.SetPid(v)
	return _c
}

// SetNillablePid sets the "pid" field if the given value is not nil.
func (_c *DaemonStatusCreate) SetNillablePid(v *int) *DaemonStatusCreate {
	if v != nil {
		_c.SetPid(*v)
	}
	return _c
}

// SetVersion sets the "version" field.
func (_c *DaemonStatusCreate) SetVersion(v string) *DaemonStatusCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *DaemonStatusCreate) SetNillableVersion(v *string) *DaemonStatusCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DaemonStatusCreate) SetID(v int) *DaemonStatusCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the DaemonStatusMutation object of the builder.
func (_c *DaemonStatusCreate) Mutation() *DaemonStatusMutation {
	return _c.mutation
}

// Save creates the DaemonStatus in the database.
func (_c *DaemonStatusCreate) Save(ctx context.Context) (*DaemonStatus, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DaemonStatusCreate) SaveX(ctx context.Context) *DaemonStatus {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DaemonStatusCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DaemonStatusCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DaemonStatusCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := daemonstatus.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ActiveTickets(); !ok {
		v := daemonstatus.DefaultActiveTickets
		_c.mutation.SetActiveTickets(v)
	}
	if _, ok := _c.mutation.LastHeartbeatAt(); !ok {
		v := daemonstatus.DefaultLastHeartbeatAt()
		_c.mutation.SetLastHeartbeatAt(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := daemonstatus.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.Pid(); !ok {
		v := daemonstatus.DefaultPid
		_c.mutation.SetPid(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DaemonStatusCreate) check() error {
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "DaemonStatus.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := daemonstatus.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DaemonStatus.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ActiveTickets(); !ok {
		return &ValidationError{Name: "active_tickets", err: errors.New(`ent: missing required field "DaemonStatus.active_tickets"`)}
	}
	if _, ok := _c.mutation.LastHeartbeatAt(); !ok {
		return &ValidationError{Name: "last_heartbeat_at", err: errors.New(`ent: missing required field "DaemonStatus.last_heartbeat_at"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "DaemonStatus.started_at"`)}
	}
	if _, ok := _c.mutation.Pid(); !ok {
		return &ValidationError{Name: "pid", err: errors.New(`ent: missing required field "DaemonStatus.pid"`)}
	}
	return nil
}

func (_c *DaemonStatusCreate) sqlSave(ctx context.Context) (*DaemonStatus, error) {
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
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = int(id)
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DaemonStatusCreate) createSpec() (*DaemonStatus, *sqlgraph.CreateSpec) {
	var (
		_node = &DaemonStatus{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(daemonstatus.Table, sqlgraph.NewFieldSpec(daemonstatus.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(daemonstatus.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ActiveTickets(); ok {
		_spec.SetField(daemonstatus.FieldActiveTickets, field.TypeInt, value)
		_node.ActiveTickets = value
	}
	if value, ok := _c.mutation.CurrentTickets(); ok {
		_spec.SetField(daemonstatus.FieldCurrentTickets, field.TypeJSON, value)
		_node.CurrentTickets = value
	}
	if value, ok := _c.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(daemonstatus.FieldLastHeartbeatAt, field.TypeTime, value)
		_node.LastHeartbeatAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(daemonstatus.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.Pid(); ok {
		_spec.SetField(daemonstatus.FieldPid, field.TypeInt, value)
		_node.Pid = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(daemonstatus.FieldVersion, field.TypeString, value)
		_node.Version = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DaemonStatus.Create().
//		SetStatus(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DaemonStatusUpsert) {
//			SetStatus(v+v).
//		}).
//		Exec(ctx)
func (_c *DaemonStatusCreate) OnConflict(opts ...sql.ConflictOption) *DaemonStatusUpsertOne {
	_c.conflict = opts
	return &DaemonStatusUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DaemonStatus.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DaemonStatusCreate) OnConflictColumns(columns ...string) *DaemonStatusUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DaemonStatusUpsertOne{
		create: _c,
	}
}

type (
	// DaemonStatusUpsertOne is the builder for "upsert"-ing
	//  one DaemonStatus node.
	DaemonStatusUpsertOne struct {
		create *DaemonStatusCreate
	}

	// DaemonStatusUpsert is the "OnConflict" setter.
	DaemonStatusUpsert struct {
		*sql.UpdateSet
	}
)

// SetStatus sets the "status" field.
func (u *DaemonStatusUpsert) SetStatus(v daemonstatus.Status) *DaemonStatusUpsert {
	u.Set(daemonstatus.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *DaemonStatusUpsert) UpdateStatus() *DaemonStatusUpsert {
	u.SetExcluded(daemonstatus.FieldStatus)
	return u
}

// SetActiveTickets sets the "active_tickets" field.
func (u *DaemonStatusUpsert) SetActiveTickets(v int) *DaemonStatusUpsert {
	u.Set(daemonstatus.FieldActiveTickets, v)
	return u
}

// UpdateActiveTickets sets the "active_tickets" field to the value that was provided on create.
func (u *DaemonStatusUpsert) UpdateActiveTickets() *DaemonStatusUpsert {
	u.SetExcluded(daemonstatus.FieldActiveTickets)
	return u
}

// AddActiveTickets adds v to the "active_tickets" field.
func (u *DaemonStatusUpsert) AddActiveTickets(v int) *DaemonStatusUpsert {
	u.Add(daemonstatus.FieldActiveTickets, v)
	return u
}

// SetCurrentTickets sets the "current_tickets" field.
func (u *DaemonStatusUpsert) SetCurrentTickets(v []string) *DaemonStatusUpsert {
	u.Set(daemonstatus.FieldCurrentTickets, v)
	return u
}

// UpdateCurrentTickets sets the "current_tickets" field to the value that was provided on create.
func (u *DaemonStatusUpsert) UpdateCurrentTickets() *DaemonStatusUpsert {
	u.SetExcluded(daemonstatus.FieldCurrentTickets)
	return u
}

// ClearCurrentTickets clears the value of the "current_tickets" field.
func (u *DaemonStatusUpsert) ClearCurrentTickets() *DaemonStatusUpsert {
	u.SetNull(daemonstatus.FieldCurrentTickets)
	return u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *DaemonStatusUpsert) SetLastHeartbeatAt(v time.Time) *DaemonStatusUpsert {
	u.Set(daemonstatus.FieldLastHeartbeatAt, v)
	return u
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *DaemonStatusUpsert) UpdateLastHeartbeatAt() *DaemonStatusUpsert {
	u.SetExcluded(daemonstatus.FieldLastHeartbeatAt)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *DaemonStatusUpsert) SetStartedAt(v time.Time) *DaemonStatusUpsert {
	u.Set(daemonstatus.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *DaemonStatusUpsert) UpdateStartedAt() *DaemonStatusUpsert {
	u.SetExcluded(daemonstatus.FieldStartedAt)
	return u
}

// SetPid sets the "pid" field.
func (u *DaemonStatusUpsert) SetPid(v int) *DaemonStatusUpsert {
	u.Set(daemonstatus.FieldPid, v)
	return u
}

// UpdatePid sets the "pid" field to the value that was provided on create.
func (u *DaemonStatusUpsert) UpdatePid() *DaemonStatusUpsert {
	u.SetExcluded(daemonstatus.FieldPid)
	return u
}

// AddPid adds v to the "pid" field.
func (u *DaemonStatusUpsert) AddPid(v int) *DaemonStatusUpsert {
	u.Add(daemonstatus.FieldPid, v)
	return u
}

// SetVersion sets the "version" field.
func (u *DaemonStatusUpsert) SetVersion(v string) *DaemonStatusUpsert {
	u.Set(daemonstatus.FieldVersion, v)
	return u
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *DaemonStatusUpsert) UpdateVersion() *DaemonStatusUpsert {
	u.SetExcluded(daemonstatus.FieldVersion)
	return u
}

// ClearVersion clears the value of the "version" field.
func (u *DaemonStatusUpsert) ClearVersion() *DaemonStatusUpsert {
	u.SetNull(daemonstatus.FieldVersion)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.DaemonStatus.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(daemonstatus.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DaemonStatusUpsertOne) UpdateNewValues() *DaemonStatusUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(daemonstatus.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DaemonStatus.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DaemonStatusUpsertOne) Ignore() *DaemonStatusUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DaemonStatusUpsertOne) DoNothing() *DaemonStatusUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DaemonStatusCreate.OnConflict
// documentation for more info.
func (u *DaemonStatusUpsertOne) Update(set func(*DaemonStatusUpsert)) *DaemonStatusUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DaemonStatusUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *DaemonStatusUpsertOne) SetStatus(v daemonstatus.Status) *DaemonStatusUpsertOne {
	return u.Update(func(s *DaemonStatusUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *DaemonStatusUpsertOne) UpdateStatus() *DaemonStatusUpsertOne {
	return u.Update(func(s *DaemonStatusUpsert) {
		s.UpdateStatus()
	})
}

// SetActiveTickets sets the "active_tickets" field.
func (u *DaemonStatusUpsertOne) SetActiveTickets(v int) *DaemonStatusUpsertOne {
	return u.Update(func(s *DaemonStatusUpsert) {
		s.SetActiveTickets(v)
	})
}

// AddActiveTickets adds v to the "active_tickets" field.
func (u *DaemonStatusUpsertOne) AddActiveTickets(v int) *DaemonStatusUpsertOne {
	return u.Update(func(s *DaemonStatusUpsert) {
		s.AddActiveTickets(v)
	})
}

// UpdateActiveTickets sets the "active_tickets" field to the value that was provided on create.
func (u *DaemonStatusUpsertOne) UpdateActiveTickets() *DaemonStatusUpsertOne {
	return u.Update(func(s *DaemonStatusUpsert) {
		s.UpdateActiveTickets()
	})
}

// SetCurrentTickets sets the "current_tickets" field.
func (u *DaemonStatusUpsertOne) SetCurrentTickets(v []string) *DaemonStatusUpsertOne {
	return u.Update(func(s *DaemonStatusUpsert) {
		s.SetCurrentTickets(v)
	})
}

// UpdateCurrentTickets sets the "current_tickets" field to the value that was provided on create.
func (u *DaemonStatusUpsertOne) UpdateCurrentTickets() *DaemonStatusUpsertOne {
	return u.Update(func(s *DaemonStatusUpsert) {
		s.UpdateCurrentTickets()
	})
}

// ClearCurrentTickets clears the value of the "current_tickets" field.
func (u *DaemonStatusUpsertOne) ClearCurrentTickets() *DaemonStatusUpsertOne {
	return u.Update(func(s *DaemonStatusUpsert) {
		s.ClearCurrentTickets()
	})
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *DaemonStatusUpsertOne) SetLastHeartbeatAt(v time.Time) *DaemonStatusUpsertOne {
	return u.Update(func(s *DaemonStatusUpsert) {
		s.SetLastHeartbeatAt(v)
	})
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *DaemonStatusUpsertOne) UpdateLastHeartbeatAt() *DaemonStatusUpsertOne {
	return u.Update(func(s *DaemonStatusUpsert) {
		s.UpdateLastHeartbeatAt()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *DaemonStatusUpsertOne) SetStartedAt(v time.Time) *DaemonStatusUpsertOne {
	return u.Update(func(s *DaemonStatusUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *DaemonStatusUpsertOne) UpdateStartedAt() *DaemonStatusUpsertOne {
	return u.Update(func(s *DaemonStatusUpsert) {
		s.UpdateStartedAt()
	})
}

// SetPid sets the "pid" field.
func (u *DaemonStatusUpsertOne) SetPid(v int) *DaemonStatusUpsertOne {
	return u.Update(func(s *DaemonStatusUpsert) {
		s.SetPid(v)
	})
}

// AddPid adds v to the "pid" field.
func (u *DaemonStatusUpsertOne) AddPid(v int) *DaemonStatusUpsertOne {
	return u.Update(func(s *DaemonStatusUpsert) {
		s.AddPid(v)
	})
}

// UpdatePid sets the "pid" field to the value that was provided on create.
func (u *DaemonStatusUpsertOne) UpdatePid() *DaemonStatusUpsertOne {
	return u.Update(func(s *DaemonStatusUpsert) {
		s.UpdatePid()
	})
}

// SetVersion sets the "version" field.
func (u *DaemonStatusUpsertOne) SetVersion(v string) *DaemonStatusUpsertOne {
	return u.Update(func(s *DaemonStatusUpsert) {
		s.SetVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *DaemonStatusUpsertOne) UpdateVersion() *DaemonStatusUpsertOne {
	return u.Update(func(s *DaemonStatusUpsert) {
		s.UpdateVersion()
	})
}

// ClearVersion clears the value of the "version" field.
func (u *DaemonStatusUpsertOne) ClearVersion() *DaemonStatusUpsertOne {
	return u.Update(func(s *DaemonStatusUpsert) {
		s.ClearVersion()
	})
}

// Exec executes the query.
func (u *DaemonStatusUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DaemonStatusCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DaemonStatusUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DaemonStatusUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DaemonStatusUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DaemonStatusCreateBulk is the builder for creating many DaemonStatus entities in bulk.
type DaemonStatusCreateBulk struct {
	config
	err      error
	builders []*DaemonStatusCreate
	conflict []sql.ConflictOption
}

// Save creates the DaemonStatus entities in the database.
func (_c *DaemonStatusCreateBulk) Save(ctx context.Context) ([]*DaemonStatus, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DaemonStatus, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DaemonStatusMutation)
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
				if specs[i].ID.Value != nil && nodes[i].ID == 0 {
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
func (_c *DaemonStatusCreateBulk) SaveX(ctx context.Context) []*DaemonStatus {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DaemonStatusCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DaemonStatusCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DaemonStatus.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DaemonStatusUpsert) {
//			SetStatus(v+v).
//		}).
//		Exec(ctx)
func (_c *DaemonStatusCreateBulk) OnConflict(opts ...sql.ConflictOption) *DaemonStatusUpsertBulk {
	_c.conflict = opts
	return &DaemonStatusUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DaemonStatus.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DaemonStatusCreateBulk) OnConflictColumns(columns ...string) *DaemonStatusUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DaemonStatusUpsertBulk{
		create: _c,
	}
}

// DaemonStatusUpsertBulk is the builder for "upsert"-ing
// a bulk of DaemonStatus nodes.
type DaemonStatusUpsertBulk struct {
	create *DaemonStatusCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.DaemonStatus.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(daemonstatus.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DaemonStatusUpsertBulk) UpdateNewValues() *DaemonStatusUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(daemonstatus.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DaemonStatus.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DaemonStatusUpsertBulk) Ignore() *DaemonStatusUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DaemonStatusUpsertBulk) DoNothing() *DaemonStatusUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DaemonStatusCreateBulk.OnConflict
// documentation for more info.
func (u *DaemonStatusUpsertBulk) Update(set func(*DaemonStatusUpsert)) *DaemonStatusUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DaemonStatusUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *DaemonStatusUpsertBulk) SetStatus(v daemonstatus.Status) *DaemonStatusUpsertBulk {
	return u.Update(func(s *DaemonStatusUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *DaemonStatusUpsertBulk) UpdateStatus() *DaemonStatusUpsertBulk {
	return u.Update(func(s *DaemonStatusUpsert) {
		s.UpdateStatus()
	})
}

// SetActiveTickets sets the "active_tickets" field.
func (u *DaemonStatusUpsertBulk) SetActiveTickets(v int) *DaemonStatusUpsertBulk {
	return u.Update(func(s *DaemonStatusUpsert) {
		s.SetActiveTickets(v)
	})
}

// AddActiveTickets adds v to the "active_tickets" field.
func (u *DaemonStatusUpsertBulk) AddActiveTickets(v int) *DaemonStatusUpsertBulk {
	return u.Update(func(s *DaemonStatusUpsert) {
		s.AddActiveTickets(v)
	})
}

// UpdateActiveTickets sets the "active_tickets" field to the value that was provided on create.
func (u *DaemonStatusUpsertBulk) UpdateActiveTickets() *DaemonStatusUpsertBulk {
	return u.Update(func(s *DaemonStatusUpsert) {
		s.UpdateActiveTickets()
	})
}

// SetCurrentTickets sets the "current_tickets" field.
func (u *DaemonStatusUpsertBulk) SetCurrentTickets(v []string) *DaemonStatusUpsertBulk {
	return u.Update(func(s *DaemonStatusUpsert) {
		s.SetCurrentTickets(v)
	})
}

// UpdateCurrentTickets sets the "current_tickets" field to the value that was provided on create.
func (u *DaemonStatusUpsertBulk) UpdateCurrentTickets() *DaemonStatusUpsertBulk {
	return u.Update(func(s *DaemonStatusUpsert) {
		s.UpdateCurrentTickets()
	})
}

// ClearCurrentTickets clears the value of the "current_tickets" field.
func (u *DaemonStatusUpsertBulk) ClearCurrentTickets() *DaemonStatusUpsertBulk {
	return u.Update(func(s *DaemonStatusUpsert) {
		s.ClearCurrentTickets()
	})
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *DaemonStatusUpsertBulk) SetLastHeartbeatAt(v time.Time) *DaemonStatusUpsertBulk {
	return u.Update(func(s *DaemonStatusUpsert) {
		s.SetLastHeartbeatAt(v)
	})
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *DaemonStatusUpsertBulk) UpdateLastHeartbeatAt() *DaemonStatusUpsertBulk {
	return u.Update(func(s *DaemonStatusUpsert) {
		s.UpdateLastHeartbeatAt()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *DaemonStatusUpsertBulk) SetStartedAt(v time.Time) *DaemonStatusUpsertBulk {
	return u.Update(func(s *DaemonStatusUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *DaemonStatusUpsertBulk) UpdateStartedAt() *DaemonStatusUpsertBulk {
	return u.Update(func(s *DaemonStatusUpsert) {
		s.UpdateStartedAt()
	})
}

// SetPid sets the "pid" field.
func (u *DaemonStatusUpsertBulk) SetPid(v int) *DaemonStatusUpsertBulk {
	return u.Update(func(s *DaemonStatusUpsert) {
		s.SetPid(v)
	})
}

// AddPid adds v to the "pid" field.
func (u *DaemonStatusUpsertBulk) AddPid(v int) *DaemonStatusUpsertBulk {
	return u.Update(func(s *DaemonStatusUpsert) {
		s.AddPid(v)
	})
}

// UpdatePid sets the "pid" field to the value that was provided on create.
func (u *DaemonStatusUpsertBulk) UpdatePid() *DaemonStatusUpsertBulk {
	return u.Update(func(s *DaemonStatusUpsert) {
		s.UpdatePid()
	})
}

// SetVersion sets the "version" field.
func (u *DaemonStatusUpsertBulk) SetVersion(v string) *DaemonStatusUpsertBulk {
	return u.Update(func(s *DaemonStatusUpsert) {
		s.SetVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *DaemonStatusUpsertBulk) UpdateVersion() *DaemonStatusUpsertBulk {
	return u.Update(func(s *DaemonStatusUpsert) {
		s.UpdateVersion()
	})
}

// ClearVersion clears the value of the "version" field.
func (u *DaemonStatusUpsertBulk) ClearVersion() *DaemonStatusUpsertBulk {
	return u.Update(func(s *DaemonStatusUpsert) {
		s.ClearVersion()
	})
}

// Exec executes the query.
func (u *DaemonStatusUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the DaemonStatusCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DaemonStatusCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DaemonStatusUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

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
	"github.com/fleetworks/conductor/ent/ticket"
	"github.com/fleetworks/conductor/ent/ticketdependency"
)

// TicketDependencyCreate is the builder for creating a TicketDependency entity.
type TicketDependencyCreate struct {
	config
	mutation *TicketDependencyMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTicketID sets the "ticket_id" field.
func (_c *TicketDependencyCreate) SetTicketID(v int) *TicketDependencyCreate {
	_c.mutation.SetTicketID(v)
	return _c
}

// SetDependsOnTicketID sets the "depends_on_ticket_id" field.
func (_c *TicketDependencyCreate) SetDependsOnTicketID(v int) *TicketDependencyCreate {
	_c.mutation.SetDependsOnTicketID(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TicketDependencyCreate) SetCreatedAt(v time.Time) *TicketDependencyCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TicketDependencyCreate) SetNillableCreatedAt(v *time.Time) *TicketDependencyCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetTicket sets the "ticket" edge to the Ticket entity.
func (_c *TicketDependencyCreate) SetTicket(v *Ticket) *TicketDependencyCreate {
	return _c.SetTicketID(v.ID)
}

// SetDependsOnID sets the "depends_on" edge to the Ticket entity by ID.
func (_c *TicketDependencyCreate) SetDependsOnID(id int) *TicketDependencyCreate {
	_c.mutation.SetDependsOnID(id)
	return _c
}

// SetDependsOn sets the "depends_on" edge to the Ticket entity.
func (_c *TicketDependencyCreate) SetDependsOn(v *Ticket) *TicketDependencyCreate {
	return _c.SetDependsOnID(v.ID)
}

// Mutation returns the TicketDependencyMutation object of the builder.
func (_c *TicketDependencyCreate) Mutation() *TicketDependencyMutation {
	return _c.mutation
}

// Save creates the TicketDependency in the database.
func (_c *TicketDependencyCreate) Save(ctx context.Context) (*TicketDependency, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TicketDependencyCreate) SaveX(ctx context.Context) *TicketDependency {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TicketDependencyCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TicketDependencyCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TicketDependencyCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := ticketdependency.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TicketDependencyCreate) check() error {
	if _, ok := _c.mutation.TicketID(); !ok {
		return &ValidationError{Name: "ticket_id", err: errors.New(`ent: missing required field "TicketDependency.ticket_id"`)}
	}
	if _, ok := _c.mutation.DependsOnTicketID(); !ok {
		return &ValidationError{Name: "depends_on_ticket_id", err: errors.New(`ent: missing required field "TicketDependency.depends_on_ticket_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TicketDependency.created_at"`)}
	}
	if len(_c.mutation.TicketIDs()) == 0 {
		return &ValidationError{Name: "ticket", err: errors.New(`ent: missing required edge "TicketDependency.ticket"`)}
	}
	if len(_c.mutation.DependsOnIDs()) == 0 {
		return &ValidationError{Name: "depends_on", err: errors.New(`ent: missing required edge "TicketDependency.depends_on"`)}
	}
	return nil
}

func (_c *TicketDependencyCreate) sqlSave(ctx context.Context) (*TicketDependency, error) {
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

func (_c *TicketDependencyCreate) createSpec() (*TicketDependency, *sqlgraph.CreateSpec) {
	var (
		_node = &TicketDependency{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(ticketdependency.Table, sqlgraph.NewFieldSpec(ticketdependency.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(ticketdependency.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.TicketIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   ticketdependency.TicketTable,
			Columns: []string{ticketdependency.TicketColumn},
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
	if nodes := _c.mutation.DependsOnIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   ticketdependency.DependsOnTable,
			Columns: []string{ticketdependency.DependsOnColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ticket.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.DependsOnTicketID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TicketDependency.Create().
//		SetTicketID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TicketDependencyUpsert) {
//			SetTicketID(v+v).
//		}).
//		Exec(ctx)
func (_c *TicketDependencyCreate) OnConflict(opts ...sql.ConflictOption) *TicketDependencyUpsertOne {
	_c.conflict = opts
	return &TicketDependencyUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TicketDependency.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TicketDependencyCreate) OnConflictColumns(columns ...string) *TicketDependencyUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TicketDependencyUpsertOne{
		create: _c,
	}
}

type (
	// TicketDependencyUpsertOne is the builder for "upsert"-ing
	//  one TicketDependency node.
	TicketDependencyUpsertOne struct {
		create *TicketDependencyCreate
	}

	// TicketDependencyUpsert is the "OnConflict" setter.
	TicketDependencyUpsert struct {
		*sql.UpdateSet
	}
)

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.TicketDependency.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *TicketDependencyUpsertOne) UpdateNewValues() *TicketDependencyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.TicketID(); exists {
			s.SetIgnore(ticketdependency.FieldTicketID)
		}
		if _, exists := u.create.mutation.DependsOnTicketID(); exists {
			s.SetIgnore(ticketdependency.FieldDependsOnTicketID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(ticketdependency.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TicketDependency.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TicketDependencyUpsertOne) Ignore() *TicketDependencyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TicketDependencyUpsertOne) DoNothing() *TicketDependencyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TicketDependencyCreate.OnConflict
// documentation for more info.
func (u *TicketDependencyUpsertOne) Update(set func(*TicketDependencyUpsert)) *TicketDependencyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TicketDependencyUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *TicketDependencyUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TicketDependencyCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TicketDependencyUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TicketDependencyUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TicketDependencyUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TicketDependencyCreateBulk is the builder for creating many TicketDependency entities in bulk.
type TicketDependencyCreateBulk struct {
	config
	err      error
	builders []*TicketDependencyCreate
	conflict []sql.ConflictOption
}

// Save creates the TicketDependency entities in the database.
func (_c *TicketDependencyCreateBulk) Save(ctx context.Context) ([]*TicketDependency, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TicketDependency, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TicketDependencyMutation)
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
func (_c *TicketDependencyCreateBulk) SaveX(ctx context.Context) []*TicketDependency {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TicketDependencyCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TicketDependencyCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TicketDependency.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TicketDependencyUpsert) {
//			SetTicketID(v+v).
//		}).
//		Exec(ctx)
func (_c *TicketDependencyCreateBulk) OnConflict(opts ...sql.ConflictOption) *TicketDependencyUpsertBulk {
	_c.conflict = opts
	return &TicketDependencyUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TicketDependency.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TicketDependencyCreateBulk) OnConflictColumns(columns ...string) *TicketDependencyUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TicketDependencyUpsertBulk{
		create: _c,
	}
}

// TicketDependencyUpsertBulk is the builder for "upsert"-ing
// a bulk of TicketDependency nodes.
type TicketDependencyUpsertBulk struct {
	create *TicketDependencyCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.TicketDependency.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *TicketDependencyUpsertBulk) UpdateNewValues() *TicketDependencyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.TicketID(); exists {
				s.SetIgnore(ticketdependency.FieldTicketID)
			}
			if _, exists := b.mutation.DependsOnTicketID(); exists {
				s.SetIgnore(ticketdependency.FieldDependsOnTicketID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(ticketdependency.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TicketDependency.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TicketDependencyUpsertBulk) Ignore() *TicketDependencyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TicketDependencyUpsertBulk) DoNothing() *TicketDependencyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TicketDependencyCreateBulk.OnConflict
// documentation for more info.
func (u *TicketDependencyUpsertBulk) Update(set func(*TicketDependencyUpsert)) *TicketDependencyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TicketDependencyUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *TicketDependencyUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TicketDependencyCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TicketDependencyCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TicketDependencyUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

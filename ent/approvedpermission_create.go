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
	"github.com/fleetworks/conductor/ent/ticket"
)

// ApprovedPermissionCreate is the builder for creating a ApprovedPermission entity.
type ApprovedPermissionCreate struct {
	config
	mutation *ApprovedPermissionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTicketID sets the "ticket_id" field.
func (_c *ApprovedPermissionCreate) SetTicketID(v int) *ApprovedPermissionCreate {
	_c.mutation.SetTicketID(v)
	return _c
}

// SetTool sets the "tool" field.
func (_c *ApprovedPermissionCreate) SetTool(v string) *ApprovedPermissionCreate {
	_c.mutation.SetTool(v)
	return _c
}

// SetPattern sets the "pattern" field.
func (_c *ApprovedPermissionCreate) SetPattern(v string) *ApprovedPermissionCreate {
	_c.mutation.SetPattern(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ApprovedPermissionCreate) SetCreatedAt(v time.Time) *ApprovedPermissionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ApprovedPermissionCreate) SetNillableCreatedAt(v *time.Time) *ApprovedPermissionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetTicket sets the "ticket" edge to the Ticket entity.
func (_c *ApprovedPermissionCreate) SetTicket(v *Ticket) *ApprovedPermissionCreate {
	return _c.SetTicketID(v.ID)
}

// Mutation returns the ApprovedPermissionMutation object of the builder.
func (_c *ApprovedPermissionCreate) Mutation() *ApprovedPermissionMutation {
	return _c.mutation
}

// Save creates the ApprovedPermission in the database.
func (_c *ApprovedPermissionCreate) Save(ctx context.Context) (*ApprovedPermission, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ApprovedPermissionCreate) SaveX(ctx context.Context) *ApprovedPermission {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApprovedPermissionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApprovedPermissionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ApprovedPermissionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := approvedpermission.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ApprovedPermissionCreate) check() error {
	if _, ok := _c.mutation.TicketID(); !ok {
		return &ValidationError{Name: "ticket_id", err: errors.New(`ent: missing required field "ApprovedPermission.ticket_id"`)}
	}
	if _, ok := _c.mutation.Tool(); !ok {
		return &ValidationError{Name: "tool", err: errors.New(`ent: missing required field "ApprovedPermission.tool"`)}
	}
	if v, ok := _c.mutation.Tool(); ok {
		if err := approvedpermission.ToolValidator(v); err != nil {
			return &ValidationError{Name: "tool", err: fmt.Errorf(`ent: validator failed for field "ApprovedPermission.tool": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Pattern(); !ok {
		return &ValidationError{Name: "pattern", err: errors.New(`ent: missing required field "ApprovedPermission.pattern"`)}
	}
	if v, ok := _c.mutation.Pattern(); ok {
		if err := approvedpermission.PatternValidator(v); err != nil {
			return &ValidationError{Name: "pattern", err: fmt.Errorf(`ent: validator failed for field "ApprovedPermission.pattern": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ApprovedPermission.created_at"`)}
	}
	if len(_c.mutation.TicketIDs()) == 0 {
		return &ValidationError{Name: "ticket", err: errors.New(`ent: missing required edge "ApprovedPermission.ticket"`)}
	}
	return nil
}

func (_c *ApprovedPermissionCreate) sqlSave(ctx context.Context) (*ApprovedPermission, error) {
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

func (_c *ApprovedPermissionCreate) createSpec() (*ApprovedPermission, *sqlgraph.CreateSpec) {
	var (
		_node = &ApprovedPermission{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(approvedpermission.Table, sqlgraph.NewFieldSpec(approvedpermission.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Tool(); ok {
		_spec.SetField(approvedpermission.FieldTool, field.TypeString, value)
		_node.Tool = value
	}
	if value, ok := _c.mutation.Pattern(); ok {
		_spec.SetField(approvedpermission.FieldPattern, field.TypeString, value)
		_node.Pattern = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(approvedpermission.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.TicketIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   approvedpermission.TicketTable,
			Columns: []string{approvedpermission.TicketColumn},
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
//	client.ApprovedPermission.Create().
//		SetTicketID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ApprovedPermissionUpsert) {
//			SetTicketID(v+v).
//		}).
//		Exec(ctx)
func (_c *ApprovedPermissionCreate) OnConflict(opts ...sql.ConflictOption) *ApprovedPermissionUpsertOne {
	_c.conflict = opts
	return &ApprovedPermissionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ApprovedPermission.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ApprovedPermissionCreate) OnConflictColumns(columns ...string) *ApprovedPermissionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ApprovedPermissionUpsertOne{
		create: _c,
	}
}

type (
	// ApprovedPermissionUpsertOne is the builder for "upsert"-ing
	//  one ApprovedPermission node.
	ApprovedPermissionUpsertOne struct {
		create *ApprovedPermissionCreate
	}

	// ApprovedPermissionUpsert is the "OnConflict" setter.
	ApprovedPermissionUpsert struct {
		*sql.UpdateSet
	}
)

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.ApprovedPermission.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ApprovedPermissionUpsertOne) UpdateNewValues() *ApprovedPermissionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.TicketID(); exists {
			s.SetIgnore(approvedpermission.FieldTicketID)
		}
		if _, exists := u.create.mutation.Tool(); exists {
			s.SetIgnore(approvedpermission.FieldTool)
		}
		if _, exists := u.create.mutation.Pattern(); exists {
			s.SetIgnore(approvedpermission.FieldPattern)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(approvedpermission.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ApprovedPermission.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ApprovedPermissionUpsertOne) Ignore() *ApprovedPermissionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ApprovedPermissionUpsertOne) DoNothing() *ApprovedPermissionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ApprovedPermissionCreate.OnConflict
// documentation for more info.
func (u *ApprovedPermissionUpsertOne) Update(set func(*ApprovedPermissionUpsert)) *ApprovedPermissionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ApprovedPermissionUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *ApprovedPermissionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ApprovedPermissionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ApprovedPermissionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ApprovedPermissionUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ApprovedPermissionUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ApprovedPermissionCreateBulk is the builder for creating many ApprovedPermission entities in bulk.
type ApprovedPermissionCreateBulk struct {
	config
	err      error
	builders []*ApprovedPermissionCreate
	conflict []sql.ConflictOption
}

// Save creates the ApprovedPermission entities in the database.
func (_c *ApprovedPermissionCreateBulk) Save(ctx context.Context) ([]*ApprovedPermission, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ApprovedPermission, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ApprovedPermissionMutation)
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
func (_c *ApprovedPermissionCreateBulk) SaveX(ctx context.Context) []*ApprovedPermission {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApprovedPermissionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApprovedPermissionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ApprovedPermission.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ApprovedPermissionUpsert) {
//			SetTicketID(v+v).
//		}).
//		Exec(ctx)
func (_c *ApprovedPermissionCreateBulk) OnConflict(opts ...sql.ConflictOption) *ApprovedPermissionUpsertBulk {
	_c.conflict = opts
	return &ApprovedPermissionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ApprovedPermission.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ApprovedPermissionCreateBulk) OnConflictColumns(columns ...string) *ApprovedPermissionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ApprovedPermissionUpsertBulk{
		create: _c,
	}
}

// ApprovedPermissionUpsertBulk is the builder for "upsert"-ing
// a bulk of ApprovedPermission nodes.
type ApprovedPermissionUpsertBulk struct {
	create *ApprovedPermissionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ApprovedPermission.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ApprovedPermissionUpsertBulk) UpdateNewValues() *ApprovedPermissionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.TicketID(); exists {
				s.SetIgnore(approvedpermission.FieldTicketID)
			}
			if _, exists := b.mutation.Tool(); exists {
				s.SetIgnore(approvedpermission.FieldTool)
			}
			if _, exists := b.mutation.Pattern(); exists {
				s.SetIgnore(approvedpermission.FieldPattern)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(approvedpermission.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ApprovedPermission.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ApprovedPermissionUpsertBulk) Ignore() *ApprovedPermissionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ApprovedPermissionUpsertBulk) DoNothing() *ApprovedPermissionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ApprovedPermissionCreateBulk.OnConflict
// documentation for more info.
func (u *ApprovedPermissionUpsertBulk) Update(set func(*ApprovedPermissionUpsert)) *ApprovedPermissionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ApprovedPermissionUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *ApprovedPermissionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ApprovedPermissionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ApprovedPermissionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ApprovedPermissionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

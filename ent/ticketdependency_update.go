// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fleetworks/conductor/ent/predicate"
	"github.com/fleetworks/conductor/ent/ticketdependency"
)

// TicketDependencyUpdate is the builder for updating TicketDependency entities.
type TicketDependencyUpdate struct {
	config
	hooks    []Hook
	mutation *TicketDependencyMutation
}

// Where appends a list predicates to the TicketDependencyUpdate builder.
func (_u *TicketDependencyUpdate) Where(ps ...predicate.TicketDependency) *TicketDependencyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the TicketDependencyMutation object of the builder.
func (_u *TicketDependencyUpdate) Mutation() *TicketDependencyMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TicketDependencyUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TicketDependencyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TicketDependencyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TicketDependencyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TicketDependencyUpdate) check() error {
	if _u.mutation.TicketCleared() && len(_u.mutation.TicketIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TicketDependency.ticket"`)
	}
	if _u.mutation.DependsOnCleared() && len(_u.mutation.DependsOnIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TicketDependency.depends_on"`)
	}
	return nil
}

func (_u *TicketDependencyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ticketdependency.Table, ticketdependency.Columns, sqlgraph.NewFieldSpec(ticketdependency.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ticketdependency.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TicketDependencyUpdateOne is the builder for updating a single TicketDependency entity.
type TicketDependencyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TicketDependencyMutation
}

// Mutation returns the TicketDependencyMutation object of the builder.
func (_u *TicketDependencyUpdateOne) Mutation() *TicketDependencyMutation {
	return _u.mutation
}

// Where appends a list predicates to the TicketDependencyUpdate builder.
func (_u *TicketDependencyUpdateOne) Where(ps ...predicate.TicketDependency) *TicketDependencyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TicketDependencyUpdateOne) Select(field string, fields ...string) *TicketDependencyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TicketDependency entity.
func (_u *TicketDependencyUpdateOne) Save(ctx context.Context) (*TicketDependency, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TicketDependencyUpdateOne) SaveX(ctx context.Context) *TicketDependency {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TicketDependencyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TicketDependencyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TicketDependencyUpdateOne) check() error {
	if _u.mutation.TicketCleared() && len(_u.mutation.TicketIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TicketDependency.ticket"`)
	}
	if _u.mutation.DependsOnCleared() && len(_u.mutation.DependsOnIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TicketDependency.depends_on"`)
	}
	return nil
}

func (_u *TicketDependencyUpdateOne) sqlSave(ctx context.Context) (_node *TicketDependency, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ticketdependency.Table, ticketdependency.Columns, sqlgraph.NewFieldSpec(ticketdependency.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TicketDependency.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, ticketdependency.FieldID)
		for _, f := range fields {
			if !ticketdependency.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != ticketdependency.FieldID {
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
	_node = &TicketDependency{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ticketdependency.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

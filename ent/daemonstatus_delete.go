// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fleetworks/conductor/ent/daemonstatus"
	"github.com/fleetworks/conductor/ent/predicate"
)

// DaemonStatusDelete is the builder for deleting a DaemonStatus entity.
type DaemonStatusDelete struct {
	config
	hooks    []Hook
	mutation *DaemonStatusMutation
}

// Where appends a list predicates to the DaemonStatusDelete builder.
func (_d *DaemonStatusDelete) Where(ps ...predicate.DaemonStatus) *DaemonStatusDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *DaemonStatusDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DaemonStatusDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *DaemonStatusDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(daemonstatus.Table, sqlgraph.NewFieldSpec(daemonstatus.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// DaemonStatusDeleteOne is the builder for deleting a single DaemonStatus entity.
type DaemonStatusDeleteOne struct {
	_d *DaemonStatusDelete
}

// Where appends a list predicates to the DaemonStatusDelete builder.
func (_d *DaemonStatusDeleteOne) Where(ps ...predicate.DaemonStatus) *DaemonStatusDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *DaemonStatusDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{daemonstatus.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DaemonStatusDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}

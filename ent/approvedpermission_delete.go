// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fleetworks/conductor/ent/approvedpermission"
	"github.com/fleetworks/conductor/ent/predicate"
)

// ApprovedPermissionDelete is the builder for deleting a ApprovedPermission entity.
type ApprovedPermissionDelete struct {
	config
	hooks    []Hook
	mutation *ApprovedPermissionMutation
}

// Where appends a list predicates to the ApprovedPermissionDelete builder.
func (_d *ApprovedPermissionDelete) Where(ps ...predicate.ApprovedPermission) *ApprovedPermissionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ApprovedPermissionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ApprovedPermissionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ApprovedPermissionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(approvedpermission.Table, sqlgraph.NewFieldSpec(approvedpermission.FieldID, field.TypeInt))
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

// ApprovedPermissionDeleteOne is the builder for deleting a single ApprovedPermission entity.
type ApprovedPermissionDeleteOne struct {
	_d *ApprovedPermissionDelete
}

// Where appends a list predicates to the ApprovedPermissionDelete builder.
func (_d *ApprovedPermissionDeleteOne) Where(ps ...predicate.ApprovedPermission) *ApprovedPermissionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ApprovedPermissionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{approvedpermission.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ApprovedPermissionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}

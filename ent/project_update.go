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
	"github.com/fleetworks/conductor/ent/predicate"
	"github.com/fleetworks/conductor/ent/project"
	"github.com/fleetworks/conductor/ent/ticket"
)

// ProjectUpdate is the builder for updating Project entities.
type ProjectUpdate struct {
	config
	hooks    []Hook
	mutation *ProjectMutation
}

// Where appends a list predicates to the ProjectUpdate builder.
func (_u *ProjectUpdate) Where(ps ...predicate.Project) *ProjectUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ProjectUpdate) SetName(v string) *ProjectUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableName(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetWebPath sets the "web_path" field.
func (_u *ProjectUpdate) SetWebPath(v string) *ProjectUpdate {
	_u.mutation.SetWebPath(v)
	return _u
}

// SetNillableWebPath sets the "web_path" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableWebPath(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetWebPath(*v)
	}
	return _u
}

// ClearWebPath clears the value of the "web_path" field.
func (_u *ProjectUpdate) ClearWebPath() *ProjectUpdate {
	_u.mutation.ClearWebPath()
	return _u
}

// SetAppPath sets the "app_path" field.
func (_u *ProjectUpdate) SetAppPath(v string) *ProjectUpdate {
	_u.mutation.SetAppPath(v)
	return _u
}

// SetNillableAppPath sets the "app_path" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableAppPath(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetAppPath(*v)
	}
	return _u
}

// ClearAppPath clears the value of the "app_path" field.
func (_u *ProjectUpdate) ClearAppPath() *ProjectUpdate {
	_u.mutation.ClearAppPath()
	return _u
}

// SetDefaultExecutionMode sets the "default_execution_mode" field.
func (_u *ProjectUpdate) SetDefaultExecutionMode(v project.DefaultExecutionMode) *ProjectUpdate {
	_u.mutation.SetDefaultExecutionMode(v)
	return _u
}

// SetNillableDefaultExecutionMode sets the "default_execution_mode" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableDefaultExecutionMode(v *project.DefaultExecutionMode) *ProjectUpdate {
	if v != nil {
		_u.SetDefaultExecutionMode(*v)
	}
	return _u
}

// SetModelTier sets the "model_tier" field.
func (_u *ProjectUpdate) SetModelTier(v project.ModelTier) *ProjectUpdate {
	_u.mutation.SetModelTier(v)
	return _u
}

// SetNillableModelTier sets the "model_tier" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableModelTier(v *project.ModelTier) *ProjectUpdate {
	if v != nil {
		_u.SetModelTier(*v)
	}
	return _u
}

// SetGitEnabled sets the "git_enabled" field.
func (_u *ProjectUpdate) SetGitEnabled(v bool) *ProjectUpdate {
	_u.mutation.SetGitEnabled(v)
	return _u
}

// SetNillableGitEnabled sets the "git_enabled" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableGitEnabled(v *bool) *ProjectUpdate {
	if v != nil {
		_u.SetGitEnabled(*v)
	}
	return _u
}

// SetArchived sets the "archived" field.
func (_u *ProjectUpdate) SetArchived(v bool) *ProjectUpdate {
	_u.mutation.SetArchived(v)
	return _u
}

// SetNillableArchived sets the "archived" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableArchived(v *bool) *ProjectUpdate {
	if v != nil {
		_u.SetArchived(*v)
	}
	return _u
}

// SetKnowledge sets the "knowledge" field.
func (_u *ProjectUpdate) SetKnowledge(v string) *ProjectUpdate {
	_u.mutation.SetKnowledge(v)
	return _u
}

// SetNillableKnowledge sets the "knowledge" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableKnowledge(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetKnowledge(*v)
	}
	return _u
}

// ClearKnowledge clears the value of the "knowledge" field.
func (_u *ProjectUpdate) ClearKnowledge() *ProjectUpdate {
	_u.mutation.ClearKnowledge()
	return _u
}

// SetMapContent sets the "map_content" field.
func (_u *ProjectUpdate) SetMapContent(v string) *ProjectUpdate {
	_u.mutation.SetMapContent(v)
	return _u
}

// SetNillableMapContent sets the "map_content" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableMapContent(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetMapContent(*v)
	}
	return _u
}

// ClearMapContent clears the value of the "map_content" field.
func (_u *ProjectUpdate) ClearMapContent() *ProjectUpdate {
	_u.mutation.ClearMapContent()
	return _u
}

// SetMapGeneratedAt sets the "map_generated_at" field.
func (_u *ProjectUpdate) SetMapGeneratedAt(v time.Time) *ProjectUpdate {
	_u.mutation.SetMapGeneratedAt(v)
	return _u
}

// SetNillableMapGeneratedAt sets the "map_generated_at" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableMapGeneratedAt(v *time.Time) *ProjectUpdate {
	if v != nil {
		_u.SetMapGeneratedAt(*v)
	}
	return _u
}

// ClearMapGeneratedAt clears the value of the "map_generated_at" field.
func (_u *ProjectUpdate) ClearMapGeneratedAt() *ProjectUpdate {
	_u.mutation.ClearMapGeneratedAt()
	return _u
}

// SetNextTicketSeq sets the "next_ticket_seq" field.
func (_u *ProjectUpdate) SetNextTicketSeq(v int) *ProjectUpdate {
	_u.mutation.ResetNextTicketSeq()
	_u.mutation.SetNextTicketSeq(v)
	return _u
}

// SetNillableNextTicketSeq sets the "next_ticket_seq" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableNextTicketSeq(v *int) *ProjectUpdate {
	if v != nil {
		_u.SetNextTicketSeq(*v)
	}
	return _u
}

// AddNextTicketSeq adds value to the "next_ticket_seq" field.
func (_u *ProjectUpdate) AddNextTicketSeq(v int) *ProjectUpdate {
	_u.mutation.AddNextTicketSeq(v)
	return _u
}

// SetTotalInputTokens sets the "total_input_tokens" field.
func (_u *ProjectUpdate) SetTotalInputTokens(v int64) *ProjectUpdate {
	_u.mutation.ResetTotalInputTokens()
	_u.mutation.SetTotalInputTokens(v)
	return _u
}

// SetNillableTotalInputTokens sets the "total_input_tokens" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableTotalInputTokens(v *int64) *ProjectUpdate {
	if v != nil {
		_u.SetTotalInputTokens(*v)
	}
	return _u
}

// AddTotalInputTokens adds value to the "total_input_tokens" field.
func (_u *ProjectUpdate) AddTotalInputTokens(v int64) *ProjectUpdate {
	_u.mutation.AddTotalInputTokens(v)
	return _u
}

// SetTotalOutputTokens sets the "total_output_tokens" field.
func (_u *ProjectUpdate) SetTotalOutputTokens(v int64) *ProjectUpdate {
	_u.mutation.ResetTotalOutputTokens()
	_u.mutation.SetTotalOutputTokens(v)
	return _u
}

// SetNillableTotalOutputTokens sets the "total_output_tokens" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableTotalOutputTokens(v *int64) *ProjectUpdate {
	if v != nil {
		_u.SetTotalOutputTokens(*v)
	}
	return _u
}

// AddTotalOutputTokens adds value to the "total_output_tokens" field.
func (_u *ProjectUpdate) AddTotalOutputTokens(v int64) *ProjectUpdate {
	_u.mutation.AddTotalOutputTokens(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProjectUpdate) SetUpdatedAt(v time.Time) *ProjectUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddTicketIDs adds the "tickets" edge to the Ticket entity by IDs.
func (_u *ProjectUpdate) AddTicketIDs(ids ...int) *ProjectUpdate {
	_u.mutation.AddTicketIDs(ids...)
	return _u
}

// AddTickets adds the "tickets" edges to the Ticket entity.
func (_u *ProjectUpdate) AddTickets(v ...*Ticket) *ProjectUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTicketIDs(ids...)
}

// Mutation returns the ProjectMutation object of the builder.
func (_u *ProjectUpdate) Mutation() *ProjectMutation {
	return _u.mutation
}

// ClearTickets clears all "tickets" edges to the Ticket entity.
func (_u *ProjectUpdate) ClearTickets() *ProjectUpdate {
	_u.mutation.ClearTickets()
	return _u
}

// RemoveTicketIDs removes the "tickets" edge to Ticket entities by IDs.
func (_u *ProjectUpdate) RemoveTicketIDs(ids ...int) *ProjectUpdate {
	_u.mutation.RemoveTicketIDs(ids...)
	return _u
}

// RemoveTickets removes "tickets" edges to Ticket entities.
func (_u *ProjectUpdate) RemoveTickets(v ...*Ticket) *ProjectUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTicketIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProjectUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProjectUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProjectUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProjectUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProjectUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := project.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProjectUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := project.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Project.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DefaultExecutionMode(); ok {
		if err := project.DefaultExecutionModeValidator(v); err != nil {
			return &ValidationError{Name: "default_execution_mode", err: fmt.Errorf(`ent: validator failed for field "Project.default_execution_mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ModelTier(); ok {
		if err := project.ModelTierValidator(v); err != nil {
			return &ValidationError{Name: "model_tier", err: fmt.Errorf(`ent: validator failed for field "Project.model_tier": %w`, err)}
		}
	}
	return nil
}

func (_u *ProjectUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(project.Table, project.Columns, sqlgraph.NewFieldSpec(project.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(project.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.WebPath(); ok {
		_spec.SetField(project.FieldWebPath, field.TypeString, value)
	}
	if _u.mutation.WebPathCleared() {
		_spec.ClearField(project.FieldWebPath, field.TypeString)
	}
	if value, ok := _u.mutation.AppPath(); ok {
		_spec.SetField(project.FieldAppPath, field.TypeString, value)
	}
	if _u.mutation.AppPathCleared() {
		_spec.ClearField(project.FieldAppPath, field.TypeString)
	}
	if value, ok := _u.mutation.DefaultExecutionMode(); ok {
		_spec.SetField(project.FieldDefaultExecutionMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ModelTier(); ok {
		_spec.SetField(project.FieldModelTier, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.GitEnabled(); ok {
		_spec.SetField(project.FieldGitEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Archived(); ok {
		_spec.SetField(project.FieldArchived, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Knowledge(); ok {
		_spec.SetField(project.FieldKnowledge, field.TypeString, value)
	}
	if _u.mutation.KnowledgeCleared() {
		_spec.ClearField(project.FieldKnowledge, field.TypeString)
	}
	if value, ok := _u.mutation.MapContent(); ok {
		_spec.SetField(project.FieldMapContent, field.TypeString, value)
	}
	if _u.mutation.MapContentCleared() {
		_spec.ClearField(project.FieldMapContent, field.TypeString)
	}
	if value, ok := _u.mutation.MapGeneratedAt(); ok {
		_spec.SetField(project.FieldMapGeneratedAt, field.TypeTime, value)
	}
	if _u.mutation.MapGeneratedAtCleared() {
		_spec.ClearField(project.FieldMapGeneratedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.NextTicketSeq(); ok {
		_spec.SetField(project.FieldNextTicketSeq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNextTicketSeq(); ok {
		_spec.AddField(project.FieldNextTicketSeq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalInputTokens(); ok {
		_spec.SetField(project.FieldTotalInputTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalInputTokens(); ok {
		_spec.AddField(project.FieldTotalInputTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.TotalOutputTokens(); ok {
		_spec.SetField(project.FieldTotalOutputTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalOutputTokens(); ok {
		_spec.AddField(project.FieldTotalOutputTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(project.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.TicketsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.TicketsTable,
			Columns: []string{project.TicketsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ticket.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTicketsIDs(); len(nodes) > 0 && !_u.mutation.TicketsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.TicketsTable,
			Columns: []string{project.TicketsColumn},
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
	if nodes := _u.mutation.TicketsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.TicketsTable,
			Columns: []string{project.TicketsColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{project.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProjectUpdateOne is the builder for updating a single Project entity.
type ProjectUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProjectMutation
}

// SetName sets the "name" field.
func (_u *ProjectUpdateOne) SetName(v string) *ProjectUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableName(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetWebPath sets the "web_path" field.
func (_u *ProjectUpdateOne) SetWebPath(v string) *ProjectUpdateOne {
	_u.mutation.SetWebPath(v)
	return _u
}

// SetNillableWebPath sets the "web_path" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableWebPath(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetWebPath(*v)
	}
	return _u
}

// ClearWebPath clears the value of the "web_path" field.
func (_u *ProjectUpdateOne) ClearWebPath() *ProjectUpdateOne {
	_u.mutation.ClearWebPath()
	return _u
}

// SetAppPath sets the "app_path" field.
func (_u *ProjectUpdateOne) SetAppPath(v string) *ProjectUpdateOne {
	_u.mutation.SetAppPath(v)
	return _u
}

// SetNillableAppPath sets the "app_path" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableAppPath(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetAppPath(*v)
	}
	return _u
}

// ClearAppPath clears the value of the "app_path" field.
func (_u *ProjectUpdateOne) ClearAppPath() *ProjectUpdateOne {
	_u.mutation.ClearAppPath()
	return _u
}

// SetDefaultExecutionMode sets the "default_execution_mode" field.
func (_u *ProjectUpdateOne) SetDefaultExecutionMode(v project.DefaultExecutionMode) *ProjectUpdateOne {
	_u.mutation.SetDefaultExecutionMode(v)
	return _u
}

// SetNillableDefaultExecutionMode sets the "default_execution_mode" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableDefaultExecutionMode(v *project.DefaultExecutionMode) *ProjectUpdateOne {
	if v != nil {
		_u.SetDefaultExecutionMode(*v)
	}
	return _u
}

// SetModelTier sets the "model_tier" field.
func (_u *ProjectUpdateOne) SetModelTier(v project.ModelTier) *ProjectUpdateOne {
	_u.mutation.SetModelTier(v)
	return _u
}

// SetNillableModelTier sets the "model_tier" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableModelTier(v *project.ModelTier) *ProjectUpdateOne {
	if v != nil {
		_u.SetModelTier(*v)
	}
	return _u
}

// SetGitEnabled sets the "git_enabled" field.
func (_u *ProjectUpdateOne) SetGitEnabled(v bool) *ProjectUpdateOne {
	_u.mutation.SetGitEnabled(v)
	return _u
}

// SetNillableGitEnabled sets the "git_enabled" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableGitEnabled(v *bool) *ProjectUpdateOne {
	if v != nil {
		_u.SetGitEnabled(*v)
	}
	return _u
}

// SetArchived sets the "archived" field.
func (_u *ProjectUpdateOne) SetArchived(v bool) *ProjectUpdateOne {
	_u.mutation.SetArchived(v)
	return _u
}

// SetNillableArchived sets the "archived" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableArchived(v *bool) *ProjectUpdateOne {
	if v != nil {
		_u.SetArchived(*v)
	}
	return _u
}

// SetKnowledge sets the "knowledge" field.
func (_u *ProjectUpdateOne) SetKnowledge(v string) *ProjectUpdateOne {
	_u.mutation.SetKnowledge(v)
	return _u
}

// SetNillableKnowledge sets the "knowledge" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableKnowledge(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetKnowledge(*v)
	}
	return _u
}

// ClearKnowledge clears the value of the "knowledge" field.
func (_u *ProjectUpdateOne) ClearKnowledge() *ProjectUpdateOne {
	_u.mutation.ClearKnowledge()
	return _u
}

// SetMapContent sets the "map_content" field.
func (_u *ProjectUpdateOne) SetMapContent(v string) *ProjectUpdateOne {
	_u.mutation.SetMapContent(v)
	return _u
}

// SetNillableMapContent sets the "map_content" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableMapContent(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetMapContent(*v)
	}
	return _u
}

// ClearMapContent clears the value of the "map_content" field.
func (_u *ProjectUpdateOne) ClearMapContent() *ProjectUpdateOne {
	_u.mutation.ClearMapContent()
	return _u
}

// SetMapGeneratedAt sets the "map_generated_at" field.
func (_u *ProjectUpdateOne) SetMapGeneratedAt(v time.Time) *ProjectUpdateOne {
	_u.mutation.SetMapGeneratedAt(v)
	return _u
}

// SetNillableMapGeneratedAt sets the "map_generated_at" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableMapGeneratedAt(v *time.Time) *ProjectUpdateOne {
	if v != nil {
		_u.SetMapGeneratedAt(*v)
	}
	return _u
}

// ClearMapGeneratedAt clears the value of the "map_generated_at" field.
func (_u *ProjectUpdateOne) ClearMapGeneratedAt() *ProjectUpdateOne {
	_u.mutation.ClearMapGeneratedAt()
	return _u
}

// SetNextTicketSeq sets the "next_ticket_seq" field.
func (_u *ProjectUpdateOne) SetNextTicketSeq(v int) *ProjectUpdateOne {
	_u.mutation.ResetNextTicketSeq()
	_u.mutation.SetNextTicketSeq(v)
	return _u
}

// SetNillableNextTicketSeq sets the "next_ticket_seq" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableNextTicketSeq(v *int) *ProjectUpdateOne {
	if v != nil {
		_u.SetNextTicketSeq(*v)
	}
	return _u
}

// AddNextTicketSeq adds value to the "next_ticket_seq" field.
func (_u *ProjectUpdateOne) AddNextTicketSeq(v int) *ProjectUpdateOne {
	_u.mutation.AddNextTicketSeq(v)
	return _u
}

// SetTotalInputTokens sets the "total_input_tokens" field.
func (_u *ProjectUpdateOne) SetTotalInputTokens(v int64) *ProjectUpdateOne {
	_u.mutation.ResetTotalInputTokens()
	_u.mutation.SetTotalInputTokens(v)
	return _u
}

// SetNillableTotalInputTokens sets the "total_input_tokens" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableTotalInputTokens(v *int64) *ProjectUpdateOne {
	if v != nil {
		_u.SetTotalInputTokens(*v)
	}
	return _u
}

// AddTotalInputTokens adds value to the "total_input_tokens" field.
func (_u *ProjectUpdateOne) AddTotalInputTokens(v int64) *ProjectUpdateOne {
	_u.mutation.AddTotalInputTokens(v)
	return _u
}

// SetTotalOutputTokens sets the "total_output_tokens" field.
func (_u *ProjectUpdateOne) SetTotalOutputTokens(v int64) *ProjectUpdateOne {
	_u.mutation.ResetTotalOutputTokens()
	_u.mutation.SetTotalOutputTokens(v)
	return _u
}

// SetNillableTotalOutputTokens sets the "total_output_tokens" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableTotalOutputTokens(v *int64) *ProjectUpdateOne {
	if v != nil {
		_u.SetTotalOutputTokens(*v)
	}
	return _u
}

// AddTotalOutputTokens adds value to the "total_output_tokens" field.
func (_u *ProjectUpdateOne) AddTotalOutputTokens(v int64) *ProjectUpdateOne {
	_u.mutation.AddTotalOutputTokens(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProjectUpdateOne) SetUpdatedAt(v time.Time) *ProjectUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddTicketIDs adds the "tickets" edge to the Ticket entity by IDs.
func (_u *ProjectUpdateOne) AddTicketIDs(ids ...int) *ProjectUpdateOne {
	_u.mutation.AddTicketIDs(ids...)
	return _u
}

// AddTickets adds the "tickets" edges to the Ticket entity.
func (_u *ProjectUpdateOne) AddTickets(v ...*Ticket) *ProjectUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTicketIDs(ids...)
}

// Mutation returns the ProjectMutation object of the builder.
func (_u *ProjectUpdateOne) Mutation() *ProjectMutation {
	return _u.mutation
}

// ClearTickets clears all "tickets" edges to the Ticket entity.
func (_u *ProjectUpdateOne) ClearTickets() *ProjectUpdateOne {
	_u.mutation.ClearTickets()
	return _u
}

// RemoveTicketIDs removes the "tickets" edge to Ticket entities by IDs.
func (_u *ProjectUpdateOne) RemoveTicketIDs(ids ...int) *ProjectUpdateOne {
	_u.mutation.RemoveTicketIDs(ids...)
	return _u
}

// RemoveTickets removes "tickets" edges to Ticket entities.
func (_u *ProjectUpdateOne) RemoveTickets(v ...*Ticket) *ProjectUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTicketIDs(ids...)
}

// Where appends a list predicates to the ProjectUpdate builder.
func (_u *ProjectUpdateOne) Where(ps ...predicate.Project) *ProjectUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProjectUpdateOne) Select(field string, fields ...string) *ProjectUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Project entity.
func (_u *ProjectUpdateOne) Save(ctx context.Context) (*Project, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProjectUpdateOne) SaveX(ctx context.Context) *Project {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProjectUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProjectUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProjectUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := project.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProjectUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := project.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Project.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DefaultExecutionMode(); ok {
		if err := project.DefaultExecutionModeValidator(v); err != nil {
			return &ValidationError{Name: "default_execution_mode", err: fmt.Errorf(`ent: validator failed for field "Project.default_execution_mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ModelTier(); ok {
		if err := project.ModelTierValidator(v); err != nil {
			return &ValidationError{Name: "model_tier", err: fmt.Errorf(`ent: validator failed for field "Project.model_tier": %w`, err)}
		}
	}
	return nil
}

func (_u *ProjectUpdateOne) sqlSave(ctx context.Context) (_node *Project, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(project.Table, project.Columns, sqlgraph.NewFieldSpec(project.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Project.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, project.FieldID)
		for _, f := range fields {
			if !project.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != project.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(project.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.WebPath(); ok {
		_spec.SetField(project.FieldWebPath, field.TypeString, value)
	}
	if _u.mutation.WebPathCleared() {
		_spec.ClearField(project.FieldWebPath, field.TypeString)
	}
	if value, ok := _u.mutation.AppPath(); ok {
		_spec.SetField(project.FieldAppPath, field.TypeString, value)
	}
	if _u.mutation.AppPathCleared() {
		_spec.ClearField(project.FieldAppPath, field.TypeString)
	}
	if value, ok := _u.mutation.DefaultExecutionMode(); ok {
		_spec.SetField(project.FieldDefaultExecutionMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ModelTier(); ok {
		_spec.SetField(project.FieldModelTier, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.GitEnabled(); ok {
		_spec.SetField(project.FieldGitEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Archived(); ok {
		_spec.SetField(project.FieldArchived, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Knowledge(); ok {
		_spec.SetField(project.FieldKnowledge, field.TypeString, value)
	}
	if _u.mutation.KnowledgeCleared() {
		_spec.ClearField(project.FieldKnowledge, field.TypeString)
	}
	if value, ok := _u.mutation.MapContent(); ok {
		_spec.SetField(project.FieldMapContent, field.TypeString, value)
	}
	if _u.mutation.MapContentCleared() {
		_spec.ClearField(project.FieldMapContent, field.TypeString)
	}
	if value, ok := _u.mutation.MapGeneratedAt(); ok {
		_spec.SetField(project.FieldMapGeneratedAt, field.TypeTime, value)
	}
	if _u.mutation.MapGeneratedAtCleared() {
		_spec.ClearField(project.FieldMapGeneratedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.NextTicketSeq(); ok {
		_spec.SetField(project.FieldNextTicketSeq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNextTicketSeq(); ok {
		_spec.AddField(project.FieldNextTicketSeq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalInputTokens(); ok {
		_spec.SetField(project.FieldTotalInputTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalInputTokens(); ok {
		_spec.AddField(project.FieldTotalInputTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.TotalOutputTokens(); ok {
		_spec.SetField(project.FieldTotalOutputTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalOutputTokens(); ok {
		_spec.AddField(project.FieldTotalOutputTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(project.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.TicketsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.TicketsTable,
			Columns: []string{project.TicketsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ticket.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTicketsIDs(); len(nodes) > 0 && !_u.mutation.TicketsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.TicketsTable,
			Columns: []string{project.TicketsColumn},
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
	if nodes := _u.mutation.TicketsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.TicketsTable,
			Columns: []string{project.TicketsColumn},
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
	_node = &Project{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{project.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

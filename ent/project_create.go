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
	"github.com/fleetworks/conductor/ent/project"
	"github.com/fleetworks/conductor/ent/ticket"
)

// ProjectCreate is the builder for creating a Project entity.
type ProjectCreate struct {
	config
	mutation *ProjectMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCode sets the "code" field.
func (_c *ProjectCreate) SetCode(v string) *ProjectCreate {
	_c.mutation.SetCode(v)
	return _c
}

// SetName sets the "name" field.
func (_c *ProjectCreate) SetName(v string) *ProjectCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetWebPath sets the "web_path" field.
func (_c *ProjectCreate) SetWebPath(v string) *ProjectCreate {
	_c.mutation.SetWebPath(v)
	return _c
}

// SetNillableWebPath sets the "web_path" field if the given value is not nil.
func (_c *ProjectCreate) SetNillableWebPath(v *string) *ProjectCreate {
	if v != nil {
		_c.SetWebPath(*v)
	}
	return _c
}

// SetAppPath sets the "app_path" field.
func (_c *ProjectCreate) SetAppPath(v string) *ProjectCreate {
	_c.mutation.SetAppPath(v)
	return _c
}

// SetNillableAppPath sets the "app_path" field if the given value is not nil.
func (_c *ProjectCreate) SetNillableAppPath(v *string) *ProjectCreate {
	if v != nil {
		_c.SetAppPath(*v)
	}
	return _c
}

// SetDefaultExecutionMode sets the "default_execution_mode" field.
func (_c *ProjectCreate) SetDefaultExecutionMode(v project.DefaultExecutionMode) *ProjectCreate {
	_c.mutation.SetDefaultExecutionMode(v)
	return _c
}

// SetNillableDefaultExecutionMode sets the "default_execution_mode" field if the given value is not nil.
func (_c *ProjectCreate) SetNillableDefaultExecutionMode(v *project.DefaultExecutionMode) *ProjectCreate {
	if v != nil {
		_c.SetDefaultExecutionMode(*v)
	}
	return _c
}

// SetModelTier sets the "model_tier" field.
func (_c *ProjectCreate) SetModelTier(v project.ModelTier) *ProjectCreate {
	_c.mutation.SetModelTier(v)
	return _c
}

// SetNillableModelTier sets the "model_tier" field if the given value is not nil.
func (_c *ProjectCreate) SetNillableModelTier(v *project.ModelTier) *ProjectCreate {
	if v != nil {
		_c.SetModelTier(*v)
	}
	return _c
}

// SetGitEnabled sets the "git_enabled" field.
func (_c *ProjectCreate) SetGitEnabled(v bool) *ProjectCreate {
	_c.mutation.SetGitEnabled(v)
	return _c
}

// SetNillableGitEnabled sets the "git_enabled" field if the given value is not nil.
func (_c *ProjectCreate) SetNillableGitEnabled(v *bool) *ProjectCreate {
	if v != nil {
		_c.SetGitEnabled(*v)
	}
	return _c
}

// SetArchived sets the "archived" field.
func (_c *ProjectCreate) SetArchived(v bool) *ProjectCreate {
	_c.mutation.SetArchived(v)
	return _c
}

// SetNillableArchived sets the "archived" field if the given value is not nil.
func (_c *ProjectCreate) SetNillableArchived(v *bool) *ProjectCreate {
	if v != nil {
		_c.SetArchived(*v)
	}
	return _c
}

// SetKnowledge sets the "knowledge" field.
func (_c *ProjectCreate) SetKnowledge(v string) *ProjectCreate {
	_c.mutation.SetKnowledge(v)
	return _c
}

// SetNillableKnowledge sets the "knowledge" field if the given value is not nil.
func (_c *ProjectCreate) SetNillableKnowledge(v *string) *ProjectCreate {
	if v != nil {
		_c.SetKnowledge(*v)
	}
	return _c
}

// SetMapContent sets the "map_content" field.
func (_c *ProjectCreate) SetMapContent(v string) *ProjectCreate {
	_c.mutation.SetMapContent(v)
	return _c
}

// SetNillableMapContent sets the "map_content" field if the given value is not nil.
func (_c *ProjectCreate) SetNillableMapContent(v *string) *ProjectCreate {
	if v != nil {
		_c.SetMapContent(*v)
	}
	return _c
}

// SetMapGeneratedAt sets the "map_generated_at" field.
func (_c *ProjectCreate) SetMapGeneratedAt(v time.Time) *ProjectCreate {
	_c.mutation.SetMapGeneratedAt(v)
	return _c
}

// SetNillableMapGeneratedAt sets the "map_generated_at" field if the given value is not nil.
func (_c *ProjectCreate) SetNillableMapGeneratedAt(v *time.Time) *ProjectCreate {
	if v != nil {
		_c.SetMapGeneratedAt(*v)
	}
	return _c
}

// SetNextTicketSeq sets the "next_ticket_seq" field.
func (_c *ProjectCreate) SetNextTicketSeq(v int) *ProjectCreate {
	_c.mutation.SetNextTicketSeq(v)
	return _c
}

// SetNillableNextTicketSeq sets the "next_ticket_seq" field if the given value is not nil.
func (_c *ProjectCreate) SetNillableNextTicketSeq(v *int) *ProjectCreate {
	if v != nil {
		_c.SetNextTicketSeq(*v)
	}
	return _c
}

// SetTotalInputTokens sets the "total_input_tokens" field.
func (_c *ProjectCreate) SetTotalInputTokens(v int64) *ProjectCreate {
	_c.mutation.SetTotalInputTokens(v)
	return _c
}

// SetNillableTotalInputTokens sets the "total_input_tokens" field if the given value is not nil.
func (_c *ProjectCreate) SetNillableTotalInputTokens(v *int64) *ProjectCreate {
	if v != nil {
		_c.SetTotalInputTokens(*v)
	}
	return _c
}

// SetTotalOutputTokens sets the "total_output_tokens" field.
func (_c *ProjectCreate) SetTotalOutputTokens(v int64) *ProjectCreate {
	_c.mutation.SetTotalOutputTokens(v)
	return _c
}

// SetNillableTotalOutputTokens sets the "total_output_tokens" field if the given value is not nil.
func (_c *ProjectCreate) SetNillableTotalOutputTokens(v *int64) *ProjectCreate {
	if v != nil {
		_c.SetTotalOutputTokens(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ProjectCreate) SetCreatedAt(v time.Time) *ProjectCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ProjectCreate) SetNillableCreatedAt(v *time.Time) *ProjectCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ProjectCreate) SetUpdatedAt(v time.Time) *ProjectCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ProjectCreate) SetNillableUpdatedAt(v *time.Time) *ProjectCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// AddTicketIDs adds the "tickets" edge to the Ticket entity by IDs.
func (_c *ProjectCreate) AddTicketIDs(ids ...int) *ProjectCreate {
	_c.mutation.AddTicketIDs(ids...)
	return _c
}

// AddTickets adds the "tickets" edges to the Ticket entity.
func (_c *ProjectCreate) AddTickets(v ...*Ticket) *ProjectCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTicketIDs(ids...)
}

// Mutation returns the ProjectMutation object of the builder.
func (_c *ProjectCreate) Mutation() *ProjectMutation {
	return _c.mutation
}

// Save creates the Project in the database.
func (_c *ProjectCreate) Save(ctx context.Context) (*Project, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProjectCreate) SaveX(ctx context.Context) *Project {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProjectCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProjectCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProjectCreate) defaults() {
	if _, ok := _c.mutation.DefaultExecutionMode(); !ok {
		v := project.DefaultDefaultExecutionMode
		_c.mutation.SetDefaultExecutionMode(v)
	}
	if _, ok := _c.mutation.ModelTier(); !ok {
		v := project.DefaultModelTier
		_c.mutation.SetModelTier(v)
	}
	if _, ok := _c.mutation.GitEnabled(); !ok {
		v := project.DefaultGitEnabled
		_c.mutation.SetGitEnabled(v)
	}
	if _, ok := _c.mutation.Archived(); !ok {
		v := project.DefaultArchived
		_c.mutation.SetArchived(v)
	}
	if _, ok := _c.mutation.NextTicketSeq(); !ok {
		v := project.DefaultNextTicketSeq
		_c.mutation.SetNextTicketSeq(v)
	}
	if _, ok := _c.mutation.TotalInputTokens(); !ok {
		v := project.DefaultTotalInputTokens
		_c.mutation.SetTotalInputTokens(v)
	}
	if _, ok := _c.mutation.TotalOutputTokens(); !ok {
		v := project.DefaultTotalOutputTokens
		_c.mutation.SetTotalOutputTokens(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := project.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := project.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProjectCreate) check() error {
	if _, ok := _c.mutation.Code(); !ok {
		return &ValidationError{Name: "code", err: errors.New(`ent: missing required field "Project.code"`)}
	}
	if v, ok := _c.mutation.Code(); ok {
		if err := project.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`ent: validator failed for field "Project.code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Project.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := project.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Project.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DefaultExecutionMode(); !ok {
		return &ValidationError{Name: "default_execution_mode", err: errors.New(`ent: missing required field "Project.default_execution_mode"`)}
	}
	if v, ok := _c.mutation.DefaultExecutionMode(); ok {
		if err := project.DefaultExecutionModeValidator(v); err != nil {
			return &ValidationError{Name: "default_execution_mode", err: fmt.Errorf(`ent: validator failed for field "Project.default_execution_mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ModelTier(); !ok {
		return &ValidationError{Name: "model_tier", err: errors.New(`ent: missing required field "Project.model_tier"`)}
	}
	if v, ok := _c.mutation.ModelTier(); ok {
		if err := project.ModelTierValidator(v); err != nil {
			return &ValidationError{Name: "model_tier", err: fmt.Errorf(`ent: validator failed for field "Project.model_tier": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GitEnabled(); !ok {
		return &ValidationError{Name: "git_enabled", err: errors.New(`ent: missing required field "Project.git_enabled"`)}
	}
	if _, ok := _c.mutation.Archived(); !ok {
		return &ValidationError{Name: "archived", err: errors.New(`ent: missing required field "Project.archived"`)}
	}
	if _, ok := _c.mutation.NextTicketSeq(); !ok {
		return &ValidationError{Name: "next_ticket_seq", err: errors.New(`ent: missing required field "Project.next_ticket_seq"`)}
	}
	if _, ok := _c.mutation.TotalInputTokens(); !ok {
		return &ValidationError{Name: "total_input_tokens", err: errors.New(`ent: missing required field "Project.total_input_tokens"`)}
	}
	if _, ok := _c.mutation.TotalOutputTokens(); !ok {
		return &ValidationError{Name: "total_output_tokens", err: errors.New(`ent: missing required field "Project.total_output_tokens"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Project.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Project.updated_at"`)}
	}
	return nil
}

func (_c *ProjectCreate) sqlSave(ctx context.Context) (*Project, error) {
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

func (_c *ProjectCreate) createSpec() (*Project, *sqlgraph.CreateSpec) {
	var (
		_node = &Project{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(project.Table, sqlgraph.NewFieldSpec(project.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Code(); ok {
		_spec.SetField(project.FieldCode, field.TypeString, value)
		_node.Code = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(project.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.WebPath(); ok {
		_spec.SetField(project.FieldWebPath, field.TypeString, value)
		_node.WebPath = &value
	}
	if value, ok := _c.mutation.AppPath(); ok {
		_spec.SetField(project.FieldAppPath, field.TypeString, value)
		_node.AppPath = &value
	}
	if value, ok := _c.mutation.DefaultExecutionMode(); ok {
		_spec.SetField(project.FieldDefaultExecutionMode, field.TypeEnum, value)
		_node.DefaultExecutionMode = value
	}
	if value, ok := _c.mutation.ModelTier(); ok {
		_spec.SetField(project.FieldModelTier, field.TypeEnum, value)
		_node.ModelTier = value
	}
	if value, ok := _c.mutation.GitEnabled(); ok {
		_spec.SetField(project.FieldGitEnabled, field.TypeBool, value)
		_node.GitEnabled = value
	}
	if value, ok := _c.mutation.Archived(); ok {
		_spec.SetField(project.FieldArchived, field.TypeBool, value)
		_node.Archived = value
	}
	if value, ok := _c.mutation.Knowledge(); ok {
		_spec.SetField(project.FieldKnowledge, field.TypeString, value)
		_node.Knowledge = value
	}
	if value, ok := _c.mutation.MapContent(); ok {
		_spec.SetField(project.FieldMapContent, field.TypeString, value)
		_node.MapContent = value
	}
	if value, ok := _c.mutation.MapGeneratedAt(); ok {
		_spec.SetField(project.FieldMapGeneratedAt, field.TypeTime, value)
		_node.MapGeneratedAt = &value
	}
	if value, ok := _c.mutation.NextTicketSeq(); ok {
		_spec.SetField(project.FieldNextTicketSeq, field.TypeInt, value)
		_node.NextTicketSeq = value
	}
	if value, ok := _c.mutation.TotalInputTokens(); ok {
		_spec.SetField(project.FieldTotalInputTokens, field.TypeInt64, value)
		_node.TotalInputTokens = value
	}
	if value, ok := _c.mutation.TotalOutputTokens(); ok {
		_spec.SetField(project.FieldTotalOutputTokens, field.TypeInt64, value)
		_node.TotalOutputTokens = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(project.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(project.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.TicketsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Project.Create().
//		SetCode(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ProjectUpsert) {
//			SetCode(v+v).
//		}).
//		Exec(ctx)
func (_c *ProjectCreate) OnConflict(opts ...sql.ConflictOption) *ProjectUpsertOne {
	_c.conflict = opts
	return &ProjectUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Project.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ProjectCreate) OnConflictColumns(columns ...string) *ProjectUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ProjectUpsertOne{
		create: _c,
	}
}

type (
	// ProjectUpsertOne is the builder for "upsert"-ing
	//  one Project node.
	ProjectUpsertOne struct {
		create *ProjectCreate
	}

	// ProjectUpsert is the "OnConflict" setter.
	ProjectUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *ProjectUpsert) SetName(v string) *ProjectUpsert {
	u.Set(project.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ProjectUpsert) UpdateName() *ProjectUpsert {
	u.SetExcluded(project.FieldName)
	return u
}

// SetWebPath sets the "web_path" field.
func (u *ProjectUpsert) SetWebPath(v string) *ProjectUpsert {
	u.Set(project.FieldWebPath, v)
	return u
}

// UpdateWebPath sets the "web_path" field to the value that was provided on create.
func (u *ProjectUpsert) UpdateWebPath() *ProjectUpsert {
	u.SetExcluded(project.FieldWebPath)
	return u
}

// ClearWebPath clears the value of the "web_path" field.
func (u *ProjectUpsert) ClearWebPath() *ProjectUpsert {
	u.SetNull(project.FieldWebPath)
	return u
}

// SetAppPath sets the "app_path" field.
func (u *ProjectUpsert) SetAppPath(v string) *ProjectUpsert {
	u.Set(project.FieldAppPath, v)
	return u
}

// UpdateAppPath sets the "app_path" field to the value that was provided on create.
func (u *ProjectUpsert) UpdateAppPath() *ProjectUpsert {
	u.SetExcluded(project.FieldAppPath)
	return u
}

// ClearAppPath clears the value of the "app_path" field.
func (u *ProjectUpsert) ClearAppPath() *ProjectUpsert {
	u.SetNull(project.FieldAppPath)
	return u
}

// SetDefaultExecutionMode sets the "default_execution_mode" field.
func (u *ProjectUpsert) SetDefaultExecutionMode(v project.DefaultExecutionMode) *ProjectUpsert {
	u.Set(project.FieldDefaultExecutionMode, v)
	return u
}

// UpdateDefaultExecutionMode sets the "default_execution_mode" field to the value that was provided on create.
func (u *ProjectUpsert) UpdateDefaultExecutionMode() *ProjectUpsert {
	u.SetExcluded(project.FieldDefaultExecutionMode)
	return u
}

// SetModelTier sets the "model_tier" field.
func (u *ProjectUpsert) SetModelTier(v project.ModelTier) *ProjectUpsert {
	u.Set(project.FieldModelTier, v)
	return u
}

// UpdateModelTier sets the "model_tier" field to the value that was provided on create.
func (u *ProjectUpsert) UpdateModelTier() *ProjectUpsert {
	u.SetExcluded(project.FieldModelTier)
	return u
}

// SetGitEnabled sets the "git_enabled" field.
func (u *ProjectUpsert) SetGitEnabled(v bool) *ProjectUpsert {
	u.Set(project.FieldGitEnabled, v)
	return u
}

// UpdateGitEnabled sets the "git_enabled" field to the value that was provided on create.
func (u *ProjectUpsert) UpdateGitEnabled() *ProjectUpsert {
	u.SetExcluded(project.FieldGitEnabled)
	return u
}

// SetArchived sets the "archived" field.
func (u *ProjectUpsert) SetArchived(v bool) *ProjectUpsert {
	u.Set(project.FieldArchived, v)
	return u
}

// UpdateArchived sets the "archived" field to the value that was provided on create.
func (u *ProjectUpsert) UpdateArchived() *ProjectUpsert {
	u.SetExcluded(project.FieldArchived)
	return u
}

// SetKnowledge sets the "knowledge" field.
func (u *ProjectUpsert) SetKnowledge(v string) *ProjectUpsert {
	u.Set(project.FieldKnowledge, v)
	return u
}

// UpdateKnowledge sets the "knowledge" field to the value that was provided on create.
func (u *ProjectUpsert) UpdateKnowledge() *ProjectUpsert {
	u.SetExcluded(project.FieldKnowledge)
	return u
}

// ClearKnowledge clears the value of the "knowledge" field.
func (u *ProjectUpsert) ClearKnowledge() *ProjectUpsert {
	u.SetNull(project.FieldKnowledge)
	return u
}

// SetMapContent sets the "map_content" field.
func (u *ProjectUpsert) SetMapContent(v string) *ProjectUpsert {
	u.Set(project.FieldMapContent, v)
	return u
}

// UpdateMapContent sets the "map_content" field to the value that was provided on create.
func (u *ProjectUpsert) UpdateMapContent() *ProjectUpsert {
	u.SetExcluded(project.FieldMapContent)
	return u
}

// ClearMapContent clears the value of the "map_content" field.
func (u *ProjectUpsert) ClearMapContent() *ProjectUpsert {
	u.SetNull(project.FieldMapContent)
	return u
}

// SetMapGeneratedAt sets the "map_generated_at" field.
func (u *ProjectUpsert) SetMapGeneratedAt(v time.Time) *ProjectUpsert {
	u.Set(project.FieldMapGeneratedAt, v)
	return u
}

// UpdateMapGeneratedAt sets the "map_generated_at" field to the value that was provided on create.
func (u *ProjectUpsert) UpdateMapGeneratedAt() *ProjectUpsert {
	u.SetExcluded(project.FieldMapGeneratedAt)
	return u
}

// ClearMapGeneratedAt clears the value of the "map_generated_at" field.
func (u *ProjectUpsert) ClearMapGeneratedAt() *ProjectUpsert {
	u.SetNull(project.FieldMapGeneratedAt)
	return u
}

// SetNextTicketSeq sets the "next_ticket_seq" field.
func (u *ProjectUpsert) SetNextTicketSeq(v int) *ProjectUpsert {
	u.Set(project.FieldNextTicketSeq, v)
	return u
}

// UpdateNextTicketSeq sets the "next_ticket_seq" field to the value that was provided on create.
func (u *ProjectUpsert) UpdateNextTicketSeq() *ProjectUpsert {
	u.SetExcluded(project.FieldNextTicketSeq)
	return u
}

// AddNextTicketSeq adds v to the "next_ticket_seq" field.
func (u *ProjectUpsert) AddNextTicketSeq(v int) *ProjectUpsert {
	u.Add(project.FieldNextTicketSeq, v)
	return u
}

// SetTotalInputTokens sets the "total_input_tokens" field.
func (u *ProjectUpsert) SetTotalInputTokens(v int64) *ProjectUpsert {
	u.Set(project.FieldTotalInputTokens, v)
	return u
}

// UpdateTotalInputTokens sets the "total_input_tokens" field to the value that was provided on create.
func (u *ProjectUpsert) UpdateTotalInputTokens() *ProjectUpsert {
	u.SetExcluded(project.FieldTotalInputTokens)
	return u
}

// AddTotalInputTokens adds v to the "total_input_tokens" field.
func (u *ProjectUpsert) AddTotalInputTokens(v int64) *ProjectUpsert {
	u.Add(project.FieldTotalInputTokens, v)
	return u
}

// SetTotalOutputTokens sets the "total_output_tokens" field.
func (u *ProjectUpsert) SetTotalOutputTokens(v int64) *ProjectUpsert {
	u.Set(project.FieldTotalOutputTokens, v)
	return u
}

// UpdateTotalOutputTokens sets the "total_output_tokens" field to the value that was provided on create.
func (u *ProjectUpsert) UpdateTotalOutputTokens() *ProjectUpsert {
	u.SetExcluded(project.FieldTotalOutputTokens)
	return u
}

// AddTotalOutputTokens adds v to the "total_output_tokens" field.
func (u *ProjectUpsert) AddTotalOutputTokens(v int64) *ProjectUpsert {
	u.Add(project.FieldTotalOutputTokens, v)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ProjectUpsert) SetUpdatedAt(v time.Time) *ProjectUpsert {
	u.Set(project.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ProjectUpsert) UpdateUpdatedAt() *ProjectUpsert {
	u.SetExcluded(project.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Project.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ProjectUpsertOne) UpdateNewValues() *ProjectUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.Code(); exists {
			s.SetIgnore(project.FieldCode)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(project.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Project.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ProjectUpsertOne) Ignore() *ProjectUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ProjectUpsertOne) DoNothing() *ProjectUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ProjectCreate.OnConflict
// documentation for more info.
func (u *ProjectUpsertOne) Update(set func(*ProjectUpsert)) *ProjectUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ProjectUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *ProjectUpsertOne) SetName(v string) *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ProjectUpsertOne) UpdateName() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateName()
	})
}

// SetWebPath sets the "web_path" field.
func (u *ProjectUpsertOne) SetWebPath(v string) *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.SetWebPath(v)
	})
}

// UpdateWebPath sets the "web_path" field to the value that was provided on create.
func (u *ProjectUpsertOne) UpdateWebPath() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateWebPath()
	})
}

// ClearWebPath clears the value of the "web_path" field.
func (u *ProjectUpsertOne) ClearWebPath() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.ClearWebPath()
	})
}

// SetAppPath sets the "app_path" field.
func (u *ProjectUpsertOne) SetAppPath(v string) *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.SetAppPath(v)
	})
}

// UpdateAppPath sets the "app_path" field to the value that was provided on create.
func (u *ProjectUpsertOne) UpdateAppPath() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateAppPath()
	})
}

// ClearAppPath clears the value of the "app_path" field.
func (u *ProjectUpsertOne) ClearAppPath() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.ClearAppPath()
	})
}

// SetDefaultExecutionMode sets the "default_execution_mode" field.
func (u *ProjectUpsertOne) SetDefaultExecutionMode(v project.DefaultExecutionMode) *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.SetDefaultExecutionMode(v)
	})
}

// UpdateDefaultExecutionMode sets the "default_execution_mode" field to the value that was provided on create.
func (u *ProjectUpsertOne) UpdateDefaultExecutionMode() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateDefaultExecutionMode()
	})
}

// SetModelTier sets the "model_tier" field.
func (u *ProjectUpsertOne) SetModelTier(v project.ModelTier) *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.SetModelTier(v)
	})
}

// UpdateModelTier sets the "model_tier" field to the value that was provided on create.
func (u *ProjectUpsertOne) UpdateModelTier() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateModelTier()
	})
}

// SetGitEnabled sets the "git_enabled" field.
func (u *ProjectUpsertOne) SetGitEnabled(v bool) *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.SetGitEnabled(v)
	})
}

// UpdateGitEnabled sets the "git_enabled" field to the value that was provided on create.
func (u *ProjectUpsertOne) UpdateGitEnabled() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateGitEnabled()
	})
}

// SetArchived sets the "archived" field.
func (u *ProjectUpsertOne) SetArchived(v bool) *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.SetArchived(v)
	})
}

// UpdateArchived sets the "archived" field to the value that was provided on create.
func (u *ProjectUpsertOne) UpdateArchived() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateArchived()
	})
}

// SetKnowledge sets the "knowledge" field.
func (u *ProjectUpsertOne) SetKnowledge(v string) *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.SetKnowledge(v)
	})
}

// UpdateKnowledge sets the "knowledge" field to the value that was provided on create.
func (u *ProjectUpsertOne) UpdateKnowledge() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateKnowledge()
	})
}

// ClearKnowledge clears the value of the "knowledge" field.
func (u *ProjectUpsertOne) ClearKnowledge() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.ClearKnowledge()
	})
}

// SetMapContent sets the "map_content" field.
func (u *ProjectUpsertOne) SetMapContent(v string) *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.SetMapContent(v)
	})
}

// UpdateMapContent sets the "map_content" field to the value that was provided on create.
func (u *ProjectUpsertOne) UpdateMapContent() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateMapContent()
	})
}

// ClearMapContent clears the value of the "map_content" field.
func (u *ProjectUpsertOne) ClearMapContent() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.ClearMapContent()
	})
}

// SetMapGeneratedAt sets the "map_generated_at" field.
func (u *ProjectUpsertOne) SetMapGeneratedAt(v time.Time) *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.SetMapGeneratedAt(v)
	})
}

// UpdateMapGeneratedAt sets the "map_generated_at" field to the value that was provided on create.
func (u *ProjectUpsertOne) UpdateMapGeneratedAt() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateMapGeneratedAt()
	})
}

// ClearMapGeneratedAt clears the value of the "map_generated_at" field.
func (u *ProjectUpsertOne) ClearMapGeneratedAt() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.ClearMapGeneratedAt()
	})
}

// SetNextTicketSeq sets the "next_ticket_seq" field.
func (u *ProjectUpsertOne) SetNextTicketSeq(v int) *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.SetNextTicketSeq(v)
	})
}

// AddNextTicketSeq adds v to the "next_ticket_seq" field.
func (u *ProjectUpsertOne) AddNextTicketSeq(v int) *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.AddNextTicketSeq(v)
	})
}

// UpdateNextTicketSeq sets the "next_ticket_seq" field to the value that was provided on create.
func (u *ProjectUpsertOne) UpdateNextTicketSeq() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateNextTicketSeq()
	})
}

// SetTotalInputTokens sets the "total_input_tokens" field.
func (u *ProjectUpsertOne) SetTotalInputTokens(v int64) *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.SetTotalInputTokens(v)
	})
}

// AddTotalInputTokens adds v to the "total_input_tokens" field.
func (u *ProjectUpsertOne) AddTotalInputTokens(v int64) *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.AddTotalInputTokens(v)
	})
}

// UpdateTotalInputTokens sets the "total_input_tokens" field to the value that was provided on create.
func (u *ProjectUpsertOne) UpdateTotalInputTokens() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateTotalInputTokens()
	})
}

// SetTotalOutputTokens sets the "total_output_tokens" field.
func (u *ProjectUpsertOne) SetTotalOutputTokens(v int64) *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.SetTotalOutputTokens(v)
	})
}

// AddTotalOutputTokens adds v to the "total_output_tokens" field.
func (u *ProjectUpsertOne) AddTotalOutputTokens(v int64) *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.AddTotalOutputTokens(v)
	})
}

// UpdateTotalOutputTokens sets the "total_output_tokens" field to the value that was provided on create.
func (u *ProjectUpsertOne) UpdateTotalOutputTokens() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateTotalOutputTokens()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ProjectUpsertOne) SetUpdatedAt(v time.Time) *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ProjectUpsertOne) UpdateUpdatedAt() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ProjectUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ProjectCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ProjectUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ProjectUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ProjectUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ProjectCreateBulk is the builder for creating many Project entities in bulk.
type ProjectCreateBulk struct {
	config
	err      error
	builders []*ProjectCreate
	conflict []sql.ConflictOption
}

// Save creates the Project entities in the database.
func (_c *ProjectCreateBulk) Save(ctx context.Context) ([]*Project, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Project, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProjectMutation)
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
func (_c *ProjectCreateBulk) SaveX(ctx context.Context) []*Project {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProjectCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProjectCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Project.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ProjectUpsert) {
//			SetCode(v+v).
//		}).
//		Exec(ctx)
func (_c *ProjectCreateBulk) OnConflict(opts ...sql.ConflictOption) *ProjectUpsertBulk {
	_c.conflict = opts
	return &ProjectUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Project.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ProjectCreateBulk) OnConflictColumns(columns ...string) *ProjectUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ProjectUpsertBulk{
		create: _c,
	}
}

// ProjectUpsertBulk is the builder for "upsert"-ing
// a bulk of Project nodes.
type ProjectUpsertBulk struct {
	create *ProjectCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Project.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ProjectUpsertBulk) UpdateNewValues() *ProjectUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.Code(); exists {
				s.SetIgnore(project.FieldCode)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(project.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Project.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ProjectUpsertBulk) Ignore() *ProjectUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ProjectUpsertBulk) DoNothing() *ProjectUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ProjectCreateBulk.OnConflict
// documentation for more info.
func (u *ProjectUpsertBulk) Update(set func(*ProjectUpsert)) *ProjectUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ProjectUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *ProjectUpsertBulk) SetName(v string) *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ProjectUpsertBulk) UpdateName() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateName()
	})
}

// SetWebPath sets the "web_path" field.
func (u *ProjectUpsertBulk) SetWebPath(v string) *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.SetWebPath(v)
	})
}

// UpdateWebPath sets the "web_path" field to the value that was provided on create.
func (u *ProjectUpsertBulk) UpdateWebPath() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateWebPath()
	})
}

// ClearWebPath clears the value of the "web_path" field.
func (u *ProjectUpsertBulk) ClearWebPath() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.ClearWebPath()
	})
}

// SetAppPath sets the "app_path" field.
func (u *ProjectUpsertBulk) SetAppPath(v string) *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.SetAppPath(v)
	})
}

// UpdateAppPath sets the "app_path" field to the value that was provided on create.
func (u *ProjectUpsertBulk) UpdateAppPath() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateAppPath()
	})
}

// ClearAppPath clears the value of the "app_path" field.
func (u *ProjectUpsertBulk) ClearAppPath() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.ClearAppPath()
	})
}

// SetDefaultExecutionMode sets the "default_execution_mode" field.
func (u *ProjectUpsertBulk) SetDefaultExecutionMode(v project.DefaultExecutionMode) *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.SetDefaultExecutionMode(v)
	})
}

// UpdateDefaultExecutionMode sets the "default_execution_mode" field to the value that was provided on create.
func (u *ProjectUpsertBulk) UpdateDefaultExecutionMode() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateDefaultExecutionMode()
	})
}

// SetModelTier sets the "model_tier" field.
func (u *ProjectUpsertBulk) SetModelTier(v project.ModelTier) *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.SetModelTier(v)
	})
}

// UpdateModelTier sets the "model_tier" field to the value that was provided on create.
func (u *ProjectUpsertBulk) UpdateModelTier() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateModelTier()
	})
}

// SetGitEnabled sets the "git_enabled" field.
func (u *ProjectUpsertBulk) SetGitEnabled(v bool) *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.SetGitEnabled(v)
	})
}

// UpdateGitEnabled sets the "git_enabled" field to the value that was provided on create.
func (u *ProjectUpsertBulk) UpdateGitEnabled() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateGitEnabled()
	})
}

// SetArchived sets the "archived" field.
func (u *ProjectUpsertBulk) SetArchived(v bool) *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.SetArchived(v)
	})
}

// UpdateArchived sets the "archived" field to the value that was provided on create.
func (u *ProjectUpsertBulk) UpdateArchived() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateArchived()
	})
}

// SetKnowledge sets the "knowledge" field.
func (u *ProjectUpsertBulk) SetKnowledge(v string) *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.SetKnowledge(v)
	})
}

// UpdateKnowledge sets the "knowledge" field to the value that was provided on create.
func (u *ProjectUpsertBulk) UpdateKnowledge() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateKnowledge()
	})
}

// ClearKnowledge clears the value of the "knowledge" field.
func (u *ProjectUpsertBulk) ClearKnowledge() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.ClearKnowledge()
	})
}

// SetMapContent sets the "map_content" field.
func (u *ProjectUpsertBulk) SetMapContent(v string) *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.SetMapContent(v)
	})
}

// UpdateMapContent sets the "map_content" field to the value that was provided on create.
func (u *ProjectUpsertBulk) UpdateMapContent() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateMapContent()
	})
}

// ClearMapContent clears the value of the "map_content" field.
func (u *ProjectUpsertBulk) ClearMapContent() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.ClearMapContent()
	})
}

// SetMapGeneratedAt sets the "map_generated_at" field.
func (u *ProjectUpsertBulk) SetMapGeneratedAt(v time.Time) *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.SetMapGeneratedAt(v)
	})
}

// UpdateMapGeneratedAt sets the "map_generated_at" field to the value that was provided on create.
func (u *ProjectUpsertBulk) UpdateMapGeneratedAt() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateMapGeneratedAt()
	})
}

// ClearMapGeneratedAt clears the value of the "map_generated_at" field.
func (u *ProjectUpsertBulk) ClearMapGeneratedAt() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.ClearMapGeneratedAt()
	})
}

// SetNextTicketSeq sets the "next_ticket_seq" field.
func (u *ProjectUpsertBulk) SetNextTicketSeq(v int) *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.SetNextTicketSeq(v)
	})
}

// AddNextTicketSeq adds v to the "next_ticket_seq" field.
func (u *ProjectUpsertBulk) AddNextTicketSeq(v int) *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.AddNextTicketSeq(v)
	})
}

// UpdateNextTicketSeq sets the "next_ticket_seq" field to the value that was provided on create.
func (u *ProjectUpsertBulk) UpdateNextTicketSeq() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateNextTicketSeq()
	})
}

// SetTotalInputTokens sets the "total_input_tokens" field.
func (u *ProjectUpsertBulk) SetTotalInputTokens(v int64) *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.SetTotalInputTokens(v)
	})
}

// AddTotalInputTokens adds v to the "total_input_tokens" field.
func (u *ProjectUpsertBulk) AddTotalInputTokens(v int64) *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.AddTotalInputTokens(v)
	})
}

// UpdateTotalInputTokens sets the "total_input_tokens" field to the value that was provided on create.
func (u *ProjectUpsertBulk) UpdateTotalInputTokens() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateTotalInputTokens()
	})
}

// SetTotalOutputTokens sets the "total_output_tokens" field.
func (u *ProjectUpsertBulk) SetTotalOutputTokens(v int64) *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.SetTotalOutputTokens(v)
	})
}

// AddTotalOutputTokens adds v to the "total_output_tokens" field.
func (u *ProjectUpsertBulk) AddTotalOutputTokens(v int64) *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.AddTotalOutputTokens(v)
	})
}

// UpdateTotalOutputTokens sets the "total_output_tokens" field to the value that was provided on create.
func (u *ProjectUpsertBulk) UpdateTotalOutputTokens() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateTotalOutputTokens()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ProjectUpsertBulk) SetUpdatedAt(v time.Time) *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ProjectUpsertBulk) UpdateUpdatedAt() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ProjectUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ProjectCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ProjectCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ProjectUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

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
	"github.com/fleetworks/conductor/ent/extraction"
	"github.com/fleetworks/conductor/ent/ticket"
)

// ExtractionCreate is the builder for creating a Extraction entity.
type ExtractionCreate struct {
	config
	mutation *ExtractionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTicketID sets the "ticket_id" field.
func (_c *ExtractionCreate) SetTicketID(v int) *ExtractionCreate {
	_c.mutation.SetTicketID(v)
	return _c
}

// SetFromMessageID sets the "from_message_id" field.
func (_c *ExtractionCreate) SetFromMessageID(v int) *ExtractionCreate {
	_c.mutation.SetFromMessageID(v)
	return _c
}

// SetToMessageID sets the "to_message_id" field.
func (_c *ExtractionCreate) SetToMessageID(v int) *ExtractionCreate {
	_c.mutation.SetToMessageID(v)
	return _c
}

// SetDecisions sets the "decisions" field.
func (_c *ExtractionCreate) SetDecisions(v string) *ExtractionCreate {
	_c.mutation.SetDecisions(v)
	return _c
}

// SetNillableDecisions sets the "decisions" field if the given value is not nil.
func (_c *ExtractionCreate) SetNillableDecisions(v *string) *ExtractionCreate {
	if v != nil {
		_c.SetDecisions(*v)
	}
	return _c
}

// SetProblemsSolved sets the "problems_solved" field.
func (_c *ExtractionCreate) SetProblemsSolved(v string) *ExtractionCreate {
	_c.mutation.SetProblemsSolved(v)
	return _c
}

// SetNillableProblemsSolved sets the "problems_solved" field if the given value is not nil.
func (_c *ExtractionCreate) SetNillableProblemsSolved(v *string) *ExtractionCreate {
	if v != nil {
		_c.SetProblemsSolved(*v)
	}
	return _c
}

// SetFilesModified sets the "files_modified" field.
func (_c *ExtractionCreate) SetFilesModified(v string) *ExtractionCreate {
	_c.mutation.SetFilesModified(v)
	return _c
}

// SetNillableFilesModified sets the "files_modified" field if the given value is not nil.
func (_c *ExtractionCreate) SetNillableFilesModified(v *string) *ExtractionCreate {
	if v != nil {
		_c.SetFilesModified(*v)
	}
	return _c
}

// SetTestsStatus sets the "tests_status" field.
func (_c *ExtractionCreate) SetTestsStatus(v string) *ExtractionCreate {
	_c.mutation.SetTestsStatus(v)
	return _c
}

// SetNillableTestsStatus sets the "tests_status" field if the given value is not nil.
func (_c *ExtractionCreate) SetNillableTestsStatus(v *string) *ExtractionCreate {
	if v != nil {
		_c.SetTestsStatus(*v)
	}
	return _c
}

// SetErrorPatterns sets the "error_patterns" field.
func (_c *ExtractionCreate) SetErrorPatterns(v string) *ExtractionCreate {
	_c.mutation.SetErrorPatterns(v)
	return _c
}

// SetNillableErrorPatterns sets the "error_patterns" field if the given value is not nil.
func (_c *ExtractionCreate) SetNillableErrorPatterns(v *string) *ExtractionCreate {
	if v != nil {
		_c.SetErrorPatterns(*v)
	}
	return _c
}

// SetImportantNotes sets the "important_notes" field.
func (_c *ExtractionCreate) SetImportantNotes(v string) *ExtractionCreate {
	_c.mutation.SetImportantNotes(v)
	return _c
}

// SetNillableImportantNotes sets the "important_notes" field if the given value is not nil.
func (_c *ExtractionCreate) SetNillableImportantNotes(v *string) *ExtractionCreate {
	if v != nil {
		_c.SetImportantNotes(*v)
	}
	return _c
}

// SetTokensBefore sets the "tokens_before" field.
func (_c *ExtractionCreate) SetTokensBefore(v int) *ExtractionCreate {
	_c.mutation.SetTokensBefore(v)
	return _c
}

// SetNillableTokensBefore sets the "tokens_before" field if the given value is not nil.
func (_c *ExtractionCreate) SetNillableTokensBefore(v *int) *ExtractionCreate {
	if v != nil {
		_c.SetTokensBefore(*v)
	}
	return _c
}

// SetTokensAfter sets the "tokens_after" field.
func (_c *ExtractionCreate) SetTokensAfter(v int) *ExtractionCreate {
	_c.mutation.SetTokensAfter(v)
	return _c
}

// SetNillableTokensAfter sets the "tokens_after" field if the given value is not nil.
func (_c *ExtractionCreate) SetNillableTokensAfter(v *int) *ExtractionCreate {
	if v != nil {
		_c.SetTokensAfter(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExtractionCreate) SetCreatedAt(v time.Time) *ExtractionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExtractionCreate) SetNillableCreatedAt(v *time.Time) *ExtractionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetTicket sets the "ticket" edge to the Ticket entity.
func (_c *ExtractionCreate) SetTicket(v *Ticket) *ExtractionCreate {
	return _c.SetTicketID(v.ID)
}

// Mutation returns the ExtractionMutation object of the builder.
func (_c *ExtractionCreate) Mutation() *ExtractionMutation {
	return _c.mutation
}

// Save creates the Extraction in the database.
func (_c *ExtractionCreate) Save(ctx context.Context) (*Extraction, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExtractionCreate) SaveX(ctx context.Context) *Extraction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExtractionCreate) defaults() {
	if _, ok := _c.mutation.TokensBefore(); !ok {
		v := extraction.DefaultTokensBefore
		_c.mutation.SetTokensBefore(v)
	}
	if _, ok := _c.mutation.TokensAfter(); !ok {
		v := extraction.DefaultTokensAfter
		_c.mutation.SetTokensAfter(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := extraction.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExtractionCreate) check() error {
	if _, ok := _c.mutation.TicketID(); !ok {
		return &ValidationError{Name: "ticket_id", err: errors.New(`ent: missing required field "Extraction.ticket_id"`)}
	}
	if _, ok := _c.mutation.FromMessageID(); !ok {
		return &ValidationError{Name: "from_message_id", err: errors.New(`ent: missing required field "Extraction.from_message_id"`)}
	}
	if _, ok := _c.mutation.ToMessageID(); !ok {
		return &ValidationError{Name: "to_message_id", err: errors.New(`ent: missing required field "Extraction.to_message_id"`)}
	}
	if _, ok := _c.mutation.TokensBefore(); !ok {
		return &ValidationError{Name: "tokens_before", err: errors.New(`ent: missing required field "Extraction.tokens_before"`)}
	}
	if _, ok := _c.mutation.TokensAfter(); !ok {
		return &ValidationError{Name: "tokens_after", err: errors.New(`ent: missing required field "Extraction.tokens_after"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Extraction.created_at"`)}
	}
	if len(_c.mutation.TicketIDs()) == 0 {
		return &ValidationError{Name: "ticket", err: errors.New(`ent: missing required edge "Extraction.ticket"`)}
	}
	return nil
}

func (_c *ExtractionCreate) sqlSave(ctx context.Context) (*Extraction, error) {
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

func (_c *ExtractionCreate) createSpec() (*Extraction, *sqlgraph.CreateSpec) {
	var (
		_node = &Extraction{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(extraction.Table, sqlgraph.NewFieldSpec(extraction.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.FromMessageID(); ok {
		_spec.SetField(extraction.FieldFromMessageID, field.TypeInt, value)
		_node.FromMessageID = value
	}
	if value, ok := _c.mutation.ToMessageID(); ok {
		_spec.SetField(extraction.FieldToMessageID, field.TypeInt, value)
		_node.ToMessageID = value
	}
	if value, ok := _c.mutation.Decisions(); ok {
		_spec.SetField(extraction.FieldDecisions, field.TypeString, value)
		_node.Decisions = value
	}
	if value, ok := _c.mutation.ProblemsSolved(); ok {
		_spec.SetField(extraction.FieldProblemsSolved, field.TypeString, value)
		_node.ProblemsSolved = value
	}
	if value, ok := _c.mutation.FilesModified(); ok {
		_spec.SetField(extraction.FieldFilesModified, field.TypeString, value)
		_node.FilesModified = value
	}
	if value, ok := _c.mutation.TestsStatus(); ok {
		_spec.SetField(extraction.FieldTestsStatus, field.TypeString, value)
		_node.TestsStatus = value
	}
	if value, ok := _c.mutation.ErrorPatterns(); ok {
		_spec.SetField(extraction.FieldErrorPatterns, field.TypeString, value)
		_node.ErrorPatterns = value
	}
	if value, ok := _c.mutation.ImportantNotes(); ok {
		_spec.SetField(extraction.FieldImportantNotes, field.TypeString, value)
		_node.ImportantNotes = value
	}
	if value, ok := _c.mutation.TokensBefore(); ok {
		_spec.SetField(extraction.FieldTokensBefore, field.TypeInt, value)
		_node.TokensBefore = value
	}
	if value, ok := _c.mutation.TokensAfter(); ok {
		_spec.SetField(extraction.FieldTokensAfter, field.TypeInt, value)
		_node.TokensAfter = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(extraction.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.TicketIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extraction.TicketTable,
			Columns: []string{extraction.TicketColumn},
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
//	client.Extraction.Create().
//		SetTicketID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExtractionUpsert) {
//			SetTicketID(v+v).
//		}).
//		Exec(ctx)
func (_c *ExtractionCreate) OnConflict(opts ...sql.ConflictOption) *ExtractionUpsertOne {
	_c.conflict = opts
	return &ExtractionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Extraction.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExtractionCreate) OnConflictColumns(columns ...string) *ExtractionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExtractionUpsertOne{
		create: _c,
	}
}

type (
	// ExtractionUpsertOne is the builder for "upsert"-ing
	//  one Extraction node.
	ExtractionUpsertOne struct {
		create *ExtractionCreate
	}

	// ExtractionUpsert is the "OnConflict" setter.
	ExtractionUpsert struct {
		*sql.UpdateSet
	}
)

// SetDecisions sets the "decisions" field.
func (u *ExtractionUpsert) SetDecisions(v string) *ExtractionUpsert {
	u.Set(extraction.FieldDecisions, v)
	return u
}

// UpdateDecisions sets the "decisions" field to the value that was provided on create.
func (u *ExtractionUpsert) UpdateDecisions() *ExtractionUpsert {
	u.SetExcluded(extraction.FieldDecisions)
	return u
}

// ClearDecisions clears the value of the "decisions" field.
func (u *ExtractionUpsert) ClearDecisions() *ExtractionUpsert {
	u.SetNull(extraction.FieldDecisions)
	return u
}

// SetProblemsSolved sets the "problems_solved" field.
func (u *ExtractionUpsert) SetProblemsSolved(v string) *ExtractionUpsert {
	u.Set(extraction.FieldProblemsSolved, v)
	return u
}

// UpdateProblemsSolved sets the "problems_solved" field to the value that was provided on create.
func (u *ExtractionUpsert) UpdateProblemsSolved() *ExtractionUpsert {
	u.SetExcluded(extraction.FieldProblemsSolved)
	return u
}

// ClearProblemsSolved clears the value of the "problems_solved" field.
func (u *ExtractionUpsert) ClearProblemsSolved() *ExtractionUpsert {
	u.SetNull(extraction.FieldProblemsSolved)
	return u
}

// SetFilesModified sets the "files_modified" field.
func (u *ExtractionUpsert) SetFilesModified(v string) *ExtractionUpsert {
	u.Set(extraction.FieldFilesModified, v)
	return u
}

// UpdateFilesModified sets the "files_modified" field to the value that was provided on create.
func (u *ExtractionUpsert) UpdateFilesModified() *ExtractionUpsert {
	u.SetExcluded(extraction.FieldFilesModified)
	return u
}

// ClearFilesModified clears the value of the "files_modified" field.
func (u *ExtractionUpsert) ClearFilesModified() *ExtractionUpsert {
	u.SetNull(extraction.FieldFilesModified)
	return u
}

// SetTestsStatus sets the "tests_status" field.
func (u *ExtractionUpsert) SetTestsStatus(v string) *ExtractionUpsert {
	u.Set(extraction.FieldTestsStatus, v)
	return u
}

// UpdateTestsStatus sets the "tests_status" field to the value that was provided on create.
func (u *ExtractionUpsert) UpdateTestsStatus() *ExtractionUpsert {
	u.SetExcluded(extraction.FieldTestsStatus)
	return u
}

// ClearTestsStatus clears the value of the "tests_status" field.
func (u *ExtractionUpsert) ClearTestsStatus() *ExtractionUpsert {
	u.SetNull(extraction.FieldTestsStatus)
	return u
}

// SetErrorPatterns sets the "error_patterns" field.
func (u *ExtractionUpsert) SetErrorPatterns(v string) *ExtractionUpsert {
	u.Set(extraction.FieldErrorPatterns, v)
	return u
}

// UpdateErrorPatterns sets the "error_patterns" field to the value that was provided on create.
func (u *ExtractionUpsert) UpdateErrorPatterns() *ExtractionUpsert {
	u.SetExcluded(extraction.FieldErrorPatterns)
	return u
}

// ClearErrorPatterns clears the value of the "error_patterns" field.
func (u *ExtractionUpsert) ClearErrorPatterns() *ExtractionUpsert {
	u.SetNull(extraction.FieldErrorPatterns)
	return u
}

// SetImportantNotes sets the "important_notes" field.
func (u *ExtractionUpsert) SetImportantNotes(v string) *ExtractionUpsert {
	u.Set(extraction.FieldImportantNotes, v)
	return u
}

// UpdateImportantNotes sets the "important_notes" field to the value that was provided on create.
func (u *ExtractionUpsert) UpdateImportantNotes() *ExtractionUpsert {
	u.SetExcluded(extraction.FieldImportantNotes)
	return u
}

// ClearImportantNotes clears the value of the "important_notes" field.
func (u *ExtractionUpsert) ClearImportantNotes() *ExtractionUpsert {
	u.SetNull(extraction.FieldImportantNotes)
	return u
}

// SetTokensBefore sets the "tokens_before" field.
func (u *ExtractionUpsert) SetTokensBefore(v int) *ExtractionUpsert {
	u.Set(extraction.FieldTokensBefore, v)
	return u
}

// UpdateTokensBefore sets the "tokens_before" field to the value that was provided on create.
func (u *ExtractionUpsert) UpdateTokensBefore() *ExtractionUpsert {
	u.SetExcluded(extraction.FieldTokensBefore)
	return u
}

// AddTokensBefore adds v to the "tokens_before" field.
func (u *ExtractionUpsert) AddTokensBefore(v int) *ExtractionUpsert {
	u.Add(extraction.FieldTokensBefore, v)
	return u
}

// SetTokensAfter sets the "tokens_after" field.
func (u *ExtractionUpsert) SetTokensAfter(v int) *ExtractionUpsert {
	u.Set(extraction.FieldTokensAfter, v)
	return u
}

// UpdateTokensAfter sets the "tokens_after" field to the value that was provided on create.
func (u *ExtractionUpsert) UpdateTokensAfter() *ExtractionUpsert {
	u.SetExcluded(extraction.FieldTokensAfter)
	return u
}

// AddTokensAfter adds v to the "tokens_after" field.
func (u *ExtractionUpsert) AddTokensAfter(v int) *ExtractionUpsert {
	u.Add(extraction.FieldTokensAfter, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Extraction.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ExtractionUpsertOne) UpdateNewValues() *ExtractionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.TicketID(); exists {
			s.SetIgnore(extraction.FieldTicketID)
		}
		if _, exists := u.create.mutation.FromMessageID(); exists {
			s.SetIgnore(extraction.FieldFromMessageID)
		}
		if _, exists := u.create.mutation.ToMessageID(); exists {
			s.SetIgnore(extraction.FieldToMessageID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(extraction.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Extraction.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ExtractionUpsertOne) Ignore() *ExtractionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExtractionUpsertOne) DoNothing() *ExtractionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExtractionCreate.OnConflict
// documentation for more info.
func (u *ExtractionUpsertOne) Update(set func(*ExtractionUpsert)) *ExtractionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExtractionUpsert{UpdateSet: update})
	}))
	return u
}

// SetDecisions sets the "decisions" field.
func (u *ExtractionUpsertOne) SetDecisions(v string) *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.SetDecisions(v)
	})
}

// UpdateDecisions sets the "decisions" field to the value that was provided on create.
func (u *ExtractionUpsertOne) UpdateDecisions() *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.UpdateDecisions()
	})
}

// ClearDecisions clears the value of the "decisions" field.
func (u *ExtractionUpsertOne) ClearDecisions() *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.ClearDecisions()
	})
}

// SetProblemsSolved sets the "problems_solved" field.
func (u *ExtractionUpsertOne) SetProblemsSolved(v string) *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.SetProblemsSolved(v)
	})
}

// UpdateProblemsSolved sets the "problems_solved" field to the value that was provided on create.
func (u *ExtractionUpsertOne) UpdateProblemsSolved() *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.UpdateProblemsSolved()
	})
}

// ClearProblemsSolved clears the value of the "problems_solved" field.
func (u *ExtractionUpsertOne) ClearProblemsSolved() *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.ClearProblemsSolved()
	})
}

// SetFilesModified sets the "files_modified" field.
func (u *ExtractionUpsertOne) SetFilesModified(v string) *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.SetFilesModified(v)
	})
}

// UpdateFilesModified sets the "files_modified" field to the value that was provided on create.
func (u *ExtractionUpsertOne) UpdateFilesModified() *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.UpdateFilesModified()
	})
}

// ClearFilesModified clears the value of the "files_modified" field.
func (u *ExtractionUpsertOne) ClearFilesModified() *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.ClearFilesModified()
	})
}

// SetTestsStatus sets the "tests_status" field.
func (u *ExtractionUpsertOne) SetTestsStatus(v string) *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.SetTestsStatus(v)
	})
}

// UpdateTestsStatus sets the "tests_status" field to the value that was provided on create.
func (u *ExtractionUpsertOne) UpdateTestsStatus() *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.UpdateTestsStatus()
	})
}

// ClearTestsStatus clears the value of the "tests_status" field.
func (u *ExtractionUpsertOne) ClearTestsStatus() *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.ClearTestsStatus()
	})
}

// SetErrorPatterns sets the "error_patterns" field.
func (u *ExtractionUpsertOne) SetErrorPatterns(v string) *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.SetErrorPatterns(v)
	})
}

// UpdateErrorPatterns sets the "error_patterns" field to the value that was provided on create.
func (u *ExtractionUpsertOne) UpdateErrorPatterns() *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.UpdateErrorPatterns()
	})
}

// ClearErrorPatterns clears the value of the "error_patterns" field.
func (u *ExtractionUpsertOne) ClearErrorPatterns() *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.ClearErrorPatterns()
	})
}

// SetImportantNotes sets the "important_notes" field.
func (u *ExtractionUpsertOne) SetImportantNotes(v string) *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.SetImportantNotes(v)
	})
}

// UpdateImportantNotes sets the "important_notes" field to the value that was provided on create.
func (u *ExtractionUpsertOne) UpdateImportantNotes() *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.UpdateImportantNotes()
	})
}

// ClearImportantNotes clears the value of the "important_notes" field.
func (u *ExtractionUpsertOne) ClearImportantNotes() *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.ClearImportantNotes()
	})
}

// SetTokensBefore sets the "tokens_before" field.
func (u *ExtractionUpsertOne) SetTokensBefore(v int) *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.SetTokensBefore(v)
	})
}

// AddTokensBefore adds v to the "tokens_before" field.
func (u *ExtractionUpsertOne) AddTokensBefore(v int) *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.AddTokensBefore(v)
	})
}

// UpdateTokensBefore sets the "tokens_before" field to the value that was provided on create.
func (u *ExtractionUpsertOne) UpdateTokensBefore() *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.UpdateTokensBefore()
	})
}

// SetTokensAfter sets the "tokens_after" field.
func (u *ExtractionUpsertOne) SetTokensAfter(v int) *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.SetTokensAfter(v)
	})
}

// AddTokensAfter adds v to the "tokens_after" field.
func (u *ExtractionUpsertOne) AddTokensAfter(v int) *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.AddTokensAfter(v)
	})
}

// UpdateTokensAfter sets the "tokens_after" field to the value that was provided on create.
func (u *ExtractionUpsertOne) UpdateTokensAfter() *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.UpdateTokensAfter()
	})
}

// Exec executes the query.
func (u *ExtractionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExtractionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExtractionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ExtractionUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ExtractionUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ExtractionCreateBulk is the builder for creating many Extraction entities in bulk.
type ExtractionCreateBulk struct {
	config
	err      error
	builders []*ExtractionCreate
	conflict []sql.ConflictOption
}

// Save creates the Extraction entities in the database.
func (_c *ExtractionCreateBulk) Save(ctx context.Context) ([]*Extraction, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Extraction, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExtractionMutation)
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
func (_c *ExtractionCreateBulk) SaveX(ctx context.Context) []*Extraction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Extraction.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExtractionUpsert) {
//			SetTicketID(v+v).
//		}).
//		Exec(ctx)
func (_c *ExtractionCreateBulk) OnConflict(opts ...sql.ConflictOption) *ExtractionUpsertBulk {
	_c.conflict = opts
	return &ExtractionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Extraction.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExtractionCreateBulk) OnConflictColumns(columns ...string) *ExtractionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExtractionUpsertBulk{
		create: _c,
	}
}

// ExtractionUpsertBulk is the builder for "upsert"-ing
// a bulk of Extraction nodes.
type ExtractionUpsertBulk struct {
	create *ExtractionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Extraction.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ExtractionUpsertBulk) UpdateNewValues() *ExtractionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.TicketID(); exists {
				s.SetIgnore(extraction.FieldTicketID)
			}
			if _, exists := b.mutation.FromMessageID(); exists {
				s.SetIgnore(extraction.FieldFromMessageID)
			}
			if _, exists := b.mutation.ToMessageID(); exists {
				s.SetIgnore(extraction.FieldToMessageID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(extraction.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Extraction.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ExtractionUpsertBulk) Ignore() *ExtractionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExtractionUpsertBulk) DoNothing() *ExtractionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExtractionCreateBulk.OnConflict
// documentation for more info.
func (u *ExtractionUpsertBulk) Update(set func(*ExtractionUpsert)) *ExtractionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExtractionUpsert{UpdateSet: update})
	}))
	return u
}

// SetDecisions sets the "decisions" field.
func (u *ExtractionUpsertBulk) SetDecisions(v string) *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.SetDecisions(v)
	})
}

// UpdateDecisions sets the "decisions" field to the value that was provided on create.
func (u *ExtractionUpsertBulk) UpdateDecisions() *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.UpdateDecisions()
	})
}

// ClearDecisions clears the value of the "decisions" field.
func (u *ExtractionUpsertBulk) ClearDecisions() *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.ClearDecisions()
	})
}

// SetProblemsSolved sets the "problems_solved" field.
func (u *ExtractionUpsertBulk) SetProblemsSolved(v string) *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.SetProblemsSolved(v)
	})
}

// UpdateProblemsSolved sets the "problems_solved" field to the value that was provided on create.
func (u *ExtractionUpsertBulk) UpdateProblemsSolved() *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.UpdateProblemsSolved()
	})
}

// ClearProblemsSolved clears the value of the "problems_solved" field.
func (u *ExtractionUpsertBulk) ClearProblemsSolved() *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.ClearProblemsSolved()
	})
}

// SetFilesModified sets the "files_modified" field.
func (u *ExtractionUpsertBulk) SetFilesModified(v string) *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.SetFilesModified(v)
	})
}

// UpdateFilesModified sets the "files_modified" field to the value that was provided on create.
func (u *ExtractionUpsertBulk) UpdateFilesModified() *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.UpdateFilesModified()
	})
}

// ClearFilesModified clears the value of the "files_modified" field.
func (u *ExtractionUpsertBulk) ClearFilesModified() *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.ClearFilesModified()
	})
}

// SetTestsStatus sets the "tests_status" field.
func (u *ExtractionUpsertBulk) SetTestsStatus(v string) *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.SetTestsStatus(v)
	})
}

// UpdateTestsStatus sets the "tests_status" field to the value that was provided on create.
func (u *ExtractionUpsertBulk) UpdateTestsStatus() *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.UpdateTestsStatus()
	})
}

// ClearTestsStatus clears the value of the "tests_status" field.
func (u *ExtractionUpsertBulk) ClearTestsStatus() *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.ClearTestsStatus()
	})
}

// SetErrorPatterns sets the "error_patterns" field.
func (u *ExtractionUpsertBulk) SetErrorPatterns(v string) *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.SetErrorPatterns(v)
	})
}

// UpdateErrorPatterns sets the "error_patterns" field to the value that was provided on create.
func (u *ExtractionUpsertBulk) UpdateErrorPatterns() *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.UpdateErrorPatterns()
	})
}

// ClearErrorPatterns clears the value of the "error_patterns" field.
func (u *ExtractionUpsertBulk) ClearErrorPatterns() *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.ClearErrorPatterns()
	})
}

// SetImportantNotes sets the "important_notes" field.
func (u *ExtractionUpsertBulk) SetImportantNotes(v string) *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.SetImportantNotes(v)
	})
}

// UpdateImportantNotes sets the "important_notes" field to the value that was provided on create.
func (u *ExtractionUpsertBulk) UpdateImportantNotes() *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.UpdateImportantNotes()
	})
}

// ClearImportantNotes clears the value of the "important_notes" field.
func (u *ExtractionUpsertBulk) ClearImportantNotes() *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.ClearImportantNotes()
	})
}

// SetTokensBefore sets the "tokens_before" field.
func (u *ExtractionUpsertBulk) SetTokensBefore(v int) *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.SetTokensBefore(v)
	})
}

// AddTokensBefore adds v to the "tokens_before" field.
func (u *ExtractionUpsertBulk) AddTokensBefore(v int) *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.AddTokensBefore(v)
	})
}

// UpdateTokensBefore sets the "tokens_before" field to the value that was provided on create.
func (u *ExtractionUpsertBulk) UpdateTokensBefore() *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.UpdateTokensBefore()
	})
}

// SetTokensAfter sets the "tokens_after" field.
func (u *ExtractionUpsertBulk) SetTokensAfter(v int) *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.SetTokensAfter(v)
	})
}

// AddTokensAfter adds v to the "tokens_after" field.
func (u *ExtractionUpsertBulk) AddTokensAfter(v int) *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.AddTokensAfter(v)
	})
}

// UpdateTokensAfter sets the "tokens_after" field to the value that was provided on create.
func (u *ExtractionUpsertBulk) UpdateTokensAfter() *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.UpdateTokensAfter()
	})
}

// Exec executes the query.
func (u *ExtractionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ExtractionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExtractionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExtractionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

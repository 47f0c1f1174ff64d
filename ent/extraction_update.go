// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fleetworks/conductor/ent/extraction"
	"github.com/fleetworks/conductor/ent/predicate"
)

// ExtractionUpdate is the builder for updating Extraction entities.
type ExtractionUpdate struct {
	config
	hooks    []Hook
	mutation *ExtractionMutation
}

// Where appends a list predicates to the ExtractionUpdate builder.
func (_u *ExtractionUpdate) Where(ps ...predicate.Extraction) *ExtractionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDecisions sets the "decisions" field.
func (_u *ExtractionUpdate) SetDecisions(v string) *ExtractionUpdate {
	_u.mutation.SetDecisions(v)
	return _u
}

// SetNillableDecisions sets the "decisions" field if the given value is not nil.
func (_u *ExtractionUpdate) SetNillableDecisions(v *string) *ExtractionUpdate {
	if v != nil {
		_u.SetDecisions(*v)
	}
	return _u
}

// ClearDecisions clears the value of the "decisions" field.
func (_u *ExtractionUpdate) ClearDecisions() *ExtractionUpdate {
	_u.mutation.ClearDecisions()
	return _u
}

// SetProblemsSolved sets the "problems_solved" field.
func (_u *ExtractionUpdate) SetProblemsSolved(v string) *ExtractionUpdate {
	_u.mutation.SetProblemsSolved(v)
	return _u
}

// SetNillableProblemsSolved sets the "problems_solved" field if the given value is not nil.
func (_u *ExtractionUpdate) SetNillableProblemsSolved(v *string) *ExtractionUpdate {
	if v != nil {
		_u.SetProblemsSolved(*v)
	}
	return _u
}

// ClearProblemsSolved clears the value of the "problems_solved" field.
func (_u *ExtractionUpdate) ClearProblemsSolved() *ExtractionUpdate {
	_u.mutation.ClearProblemsSolved()
	return _u
}

// SetFilesModified sets the "files_modified" field.
func (_u *ExtractionUpdate) SetFilesModified(v string) *ExtractionUpdate {
	_u.mutation.SetFilesModified(v)
	return _u
}

// SetNillableFilesModified sets the "files_modified" field if the given value is not nil.
func (_u *ExtractionUpdate) SetNillableFilesModified(v *string) *ExtractionUpdate {
	if v != nil {
		_u.SetFilesModified(*v)
	}
	return _u
}

// ClearFilesModified clears the value of the "files_modified" field.
func (_u *ExtractionUpdate) ClearFilesModified() *ExtractionUpdate {
	_u.mutation.ClearFilesModified()
	return _u
}

// SetTestsStatus sets the "tests_status" field.
func (_u *ExtractionUpdate) SetTestsStatus(v string) *ExtractionUpdate {
	_u.mutation.SetTestsStatus(v)
	return _u
}

// SetNillableTestsStatus sets the "tests_status" field if the given value is not nil.
func (_u *ExtractionUpdate) SetNillableTestsStatus(v *string) *ExtractionUpdate {
	if v != nil {
		_u.SetTestsStatus(*v)
	}
	return _u
}

// ClearTestsStatus clears the value of the "tests_status" field.
func (_u *ExtractionUpdate) ClearTestsStatus() *ExtractionUpdate {
	_u.mutation.ClearTestsStatus()
	return _u
}

// SetErrorPatterns sets the "error_patterns" field.
func (_u *ExtractionUpdate) SetErrorPatterns(v string) *ExtractionUpdate {
	_u.mutation.SetErrorPatterns(v)
	return _u
}

// SetNillableErrorPatterns sets the "error_patterns" field if the given value is not nil.
func (_u *ExtractionUpdate) SetNillableErrorPatterns(v *string) *ExtractionUpdate {
	if v != nil {
		_u.SetErrorPatterns(*v)
	}
	return _u
}

// ClearErrorPatterns clears the value of the "error_patterns" field.
func (_u *ExtractionUpdate) ClearErrorPatterns() *ExtractionUpdate {
	_u.mutation.ClearErrorPatterns()
	return _u
}

// SetImportantNotes sets the "important_notes" field.
func (_u *ExtractionUpdate) SetImportantNotes(v string) *ExtractionUpdate {
	_u.mutation.SetImportantNotes(v)
	return _u
}

// SetNillableImportantNotes sets the "important_notes" field if the given value is not nil.
func (_u *ExtractionUpdate) SetNillableImportantNotes(v *string) *ExtractionUpdate {
	if v != nil {
		_u.SetImportantNotes(*v)
	}
	return _u
}

// ClearImportantNotes clears the value of the "important_notes" field.
func (_u *ExtractionUpdate) ClearImportantNotes() *ExtractionUpdate {
	_u.mutation.ClearImportantNotes()
	return _u
}

// SetTokensBefore sets the "tokens_before" field.
func (_u *ExtractionUpdate) SetTokensBefore(v int) *ExtractionUpdate {
	_u.mutation.ResetTokensBefore()
	_u.mutation.SetTokensBefore(v)
	return _u
}

// SetNillableTokensBefore sets the "tokens_before" field if the given value is not nil.
func (_u *ExtractionUpdate) SetNillableTokensBefore(v *int) *ExtractionUpdate {
	if v != nil {
		_u.SetTokensBefore(*v)
	}
	return _u
}

// AddTokensBefore adds value to the "tokens_before" field.
func (_u *ExtractionUpdate) AddTokensBefore(v int) *ExtractionUpdate {
	_u.mutation.AddTokensBefore(v)
	return _u
}

// SetTokensAfter sets the "tokens_after" field.
func (_u *ExtractionUpdate) SetTokensAfter(v int) *ExtractionUpdate {
	_u.mutation.ResetTokensAfter()
	_u.mutation.SetTokensAfter(v)
	return _u
}

// SetNillableTokensAfter sets the "tokens_after" field if the given value is not nil.
func (_u *ExtractionUpdate) SetNillableTokensAfter(v *int) *ExtractionUpdate {
	if v != nil {
		_u.SetTokensAfter(*v)
	}
	return _u
}

// AddTokensAfter adds value to the "tokens_after" field.
func (_u *ExtractionUpdate) AddTokensAfter(v int) *ExtractionUpdate {
	_u.mutation.AddTokensAfter(v)
	return _u
}

// Mutation returns the ExtractionMutation object of the builder.
func (_u *ExtractionUpdate) Mutation() *ExtractionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtractionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtractionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionUpdate) check() error {
	if _u.mutation.TicketCleared() && len(_u.mutation.TicketIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Extraction.ticket"`)
	}
	return nil
}

func (_u *ExtractionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extraction.Table, extraction.Columns, sqlgraph.NewFieldSpec(extraction.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Decisions(); ok {
		_spec.SetField(extraction.FieldDecisions, field.TypeString, value)
	}
	if _u.mutation.DecisionsCleared() {
		_spec.ClearField(extraction.FieldDecisions, field.TypeString)
	}
	if value, ok := _u.mutation.ProblemsSolved(); ok {
		_spec.SetField(extraction.FieldProblemsSolved, field.TypeString, value)
	}
	if _u.mutation.ProblemsSolvedCleared() {
		_spec.ClearField(extraction.FieldProblemsSolved, field.TypeString)
	}
	if value, ok := _u.mutation.FilesModified(); ok {
		_spec.SetField(extraction.FieldFilesModified, field.TypeString, value)
	}
	if _u.mutation.FilesModifiedCleared() {
		_spec.ClearField(extraction.FieldFilesModified, field.TypeString)
	}
	if value, ok := _u.mutation.TestsStatus(); ok {
		_spec.SetField(extraction.FieldTestsStatus, field.TypeString, value)
	}
	if _u.mutation.TestsStatusCleared() {
		_spec.ClearField(extraction.FieldTestsStatus, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorPatterns(); ok {
		_spec.SetField(extraction.FieldErrorPatterns, field.TypeString, value)
	}
	if _u.mutation.ErrorPatternsCleared() {
		_spec.ClearField(extraction.FieldErrorPatterns, field.TypeString)
	}
	if value, ok := _u.mutation.ImportantNotes(); ok {
		_spec.SetField(extraction.FieldImportantNotes, field.TypeString, value)
	}
	if _u.mutation.ImportantNotesCleared() {
		_spec.ClearField(extraction.FieldImportantNotes, field.TypeString)
	}
	if value, ok := _u.mutation.TokensBefore(); ok {
		_spec.SetField(extraction.FieldTokensBefore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensBefore(); ok {
		_spec.AddField(extraction.FieldTokensBefore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TokensAfter(); ok {
		_spec.SetField(extraction.FieldTokensAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensAfter(); ok {
		_spec.AddField(extraction.FieldTokensAfter, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extraction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtractionUpdateOne is the builder for updating a single Extraction entity.
type ExtractionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtractionMutation
}

// SetDecisions sets the "decisions" field.
func (_u *ExtractionUpdateOne) SetDecisions(v string) *ExtractionUpdateOne {
	_u.mutation.SetDecisions(v)
	return _u
}

// SetNillableDecisions sets the "decisions" field if the given value is not nil.
func (_u *ExtractionUpdateOne) SetNillableDecisions(v *string) *ExtractionUpdateOne {
	if v != nil {
		_u.SetDecisions(*v)
	}
	return _u
}

// ClearDecisions clears the value of the "decisions" field.
func (_u *ExtractionUpdateOne) ClearDecisions() *ExtractionUpdateOne {
	_u.mutation.ClearDecisions()
	return _u
}

// SetProblemsSolved sets the "problems_solved" field.
func (_u *ExtractionUpdateOne) SetProblemsSolved(v string) *ExtractionUpdateOne {
	_u.mutation.SetProblemsSolved(v)
	return _u
}

// SetNillableProblemsSolved sets the "problems_solved" field if the given value is not nil.
func (_u *ExtractionUpdateOne) SetNillableProblemsSolved(v *string) *ExtractionUpdateOne {
	if v != nil {
		_u.SetProblemsSolved(*v)
	}
	return _u
}

// ClearProblemsSolved clears the value of the "problems_solved" field.
func (_u *ExtractionUpdateOne) ClearProblemsSolved() *ExtractionUpdateOne {
	_u.mutation.ClearProblemsSolved()
	return _u
}

// SetFilesModified sets the "files_modified" field.
func (_u *ExtractionUpdateOne) SetFilesModified(v string) *ExtractionUpdateOne {
	_u.mutation.SetFilesModified(v)
	return _u
}

// SetNillableFilesModified sets the "files_modified" field if the given value is not nil.
func (_u *ExtractionUpdateOne) SetNillableFilesModified(v *string) *ExtractionUpdateOne {
	if v != nil {
		_u.SetFilesModified(*v)
	}
	return _u
}

// ClearFilesModified clears the value of the "files_modified" field.
func (_u *ExtractionUpdateOne) ClearFilesModified() *ExtractionUpdateOne {
	_u.mutation.ClearFilesModified()
	return _u
}

// SetTestsStatus sets the "tests_status" field.
func (_u *ExtractionUpdateOne) SetTestsStatus(v string) *ExtractionUpdateOne {
	_u.mutation.SetTestsStatus(v)
	return _u
}

// SetNillableTestsStatus sets the "tests_status" field if the given value is not nil.
func (_u *ExtractionUpdateOne) SetNillableTestsStatus(v *string) *ExtractionUpdateOne {
	if v != nil {
		_u.SetTestsStatus(*v)
	}
	return _u
}

// ClearTestsStatus clears the value of the "tests_status" field.
func (_u *ExtractionUpdateOne) ClearTestsStatus() *ExtractionUpdateOne {
	_u.mutation.ClearTestsStatus()
	return _u
}

// SetErrorPatterns sets the "error_patterns" field.
func (_u *ExtractionUpdateOne) SetErrorPatterns(v string) *ExtractionUpdateOne {
	_u.mutation.SetErrorPatterns(v)
	return _u
}

// SetNillableErrorPatterns sets the "error_patterns" field if the given value is not nil.
func (_u *ExtractionUpdateOne) SetNillableErrorPatterns(v *string) *ExtractionUpdateOne {
	if v != nil {
		_u.SetErrorPatterns(*v)
	}
	return _u
}

// ClearErrorPatterns clears the value of the "error_patterns" field.
func (_u *ExtractionUpdateOne) ClearErrorPatterns() *ExtractionUpdateOne {
	_u.mutation.ClearErrorPatterns()
	return _u
}

// SetImportantNotes sets the "important_notes" field.
func (_u *ExtractionUpdateOne) SetImportantNotes(v string) *ExtractionUpdateOne {
	_u.mutation.SetImportantNotes(v)
	return _u
}

// SetNillableImportantNotes sets the "important_notes" field if the given value is not nil.
func (_u *ExtractionUpdateOne) SetNillableImportantNotes(v *string) *ExtractionUpdateOne {
	if v != nil {
		_u.SetImportantNotes(*v)
	}
	return _u
}

// ClearImportantNotes clears the value of the "important_notes" field.
func (_u *ExtractionUpdateOne) ClearImportantNotes() *ExtractionUpdateOne {
	_u.mutation.ClearImportantNotes()
	return _u
}

// SetTokensBefore sets the "tokens_before" field.
func (_u *ExtractionUpdateOne) SetTokensBefore(v int) *ExtractionUpdateOne {
	_u.mutation.ResetTokensBefore()
	_u.mutation.SetTokensBefore(v)
	return _u
}

// SetNillableTokensBefore sets the "tokens_before" field if the given value is not nil.
func (_u *ExtractionUpdateOne) SetNillableTokensBefore(v *int) *ExtractionUpdateOne {
	if v != nil {
		_u.SetTokensBefore(*v)
	}
	return _u
}

// AddTokensBefore adds value to the "tokens_before" field.
func (_u *ExtractionUpdateOne) AddTokensBefore(v int) *ExtractionUpdateOne {
	_u.mutation.AddTokensBefore(v)
	return _u
}

// SetTokensAfter sets the "tokens_after" field.
func (_u *ExtractionUpdateOne) SetTokensAfter(v int) *ExtractionUpdateOne {
	_u.mutation.ResetTokensAfter()
	_u.mutation.SetTokensAfter(v)
	return _u
}

// SetNillableTokensAfter sets the "tokens_after" field if the given value is not nil.
func (_u *ExtractionUpdateOne) SetNillableTokensAfter(v *int) *ExtractionUpdateOne {
	if v != nil {
		_u.SetTokensAfter(*v)
	}
	return _u
}

// AddTokensAfter adds value to the "tokens_after" field.
func (_u *ExtractionUpdateOne) AddTokensAfter(v int) *ExtractionUpdateOne {
	_u.mutation.AddTokensAfter(v)
	return _u
}

// Mutation returns the ExtractionMutation object of the builder.
func (_u *ExtractionUpdateOne) Mutation() *ExtractionMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExtractionUpdate builder.
func (_u *ExtractionUpdateOne) Where(ps ...predicate.Extraction) *ExtractionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtractionUpdateOne) Select(field string, fields ...string) *ExtractionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Extraction entity.
func (_u *ExtractionUpdateOne) Save(ctx context.Context) (*Extraction, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionUpdateOne) SaveX(ctx context.Context) *Extraction {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtractionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionUpdateOne) check() error {
	if _u.mutation.TicketCleared() && len(_u.mutation.TicketIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Extraction.ticket"`)
	}
	return nil
}

func (_u *ExtractionUpdateOne) sqlSave(ctx context.Context) (_node *Extraction, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extraction.Table, extraction.Columns, sqlgraph.NewFieldSpec(extraction.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Extraction.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extraction.FieldID)
		for _, f := range fields {
			if !extraction.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extraction.FieldID {
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
	if value, ok := _u.mutation.Decisions(); ok {
		_spec.SetField(extraction.FieldDecisions, field.TypeString, value)
	}
	if _u.mutation.DecisionsCleared() {
		_spec.ClearField(extraction.FieldDecisions, field.TypeString)
	}
	if value, ok := _u.mutation.ProblemsSolved(); ok {
		_spec.SetField(extraction.FieldProblemsSolved, field.TypeString, value)
	}
	if _u.mutation.ProblemsSolvedCleared() {
		_spec.ClearField(extraction.FieldProblemsSolved, field.TypeString)
	}
	if value, ok := _u.mutation.FilesModified(); ok {
		_spec.SetField(extraction.FieldFilesModified, field.TypeString, value)
	}
	if _u.mutation.FilesModifiedCleared() {
		_spec.ClearField(extraction.FieldFilesModified, field.TypeString)
	}
	if value, ok := _u.mutation.TestsStatus(); ok {
		_spec.SetField(extraction.FieldTestsStatus, field.TypeString, value)
	}
	if _u.mutation.TestsStatusCleared() {
		_spec.ClearField(extraction.FieldTestsStatus, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorPatterns(); ok {
		_spec.SetField(extraction.FieldErrorPatterns, field.TypeString, value)
	}
	if _u.mutation.ErrorPatternsCleared() {
		_spec.ClearField(extraction.FieldErrorPatterns, field.TypeString)
	}
	if value, ok := _u.mutation.ImportantNotes(); ok {
		_spec.SetField(extraction.FieldImportantNotes, field.TypeString, value)
	}
	if _u.mutation.ImportantNotesCleared() {
		_spec.ClearField(extraction.FieldImportantNotes, field.TypeString)
	}
	if value, ok := _u.mutation.TokensBefore(); ok {
		_spec.SetField(extraction.FieldTokensBefore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensBefore(); ok {
		_spec.AddField(extraction.FieldTokensBefore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TokensAfter(); ok {
		_spec.SetField(extraction.FieldTokensAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensAfter(); ok {
		_spec.AddField(extraction.FieldTokensAfter, field.TypeInt, value)
	}
	_node = &Extraction{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extraction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

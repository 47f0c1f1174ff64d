// Code generated by ent, DO NOT EDIT.

package extraction

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/fleetworks/conductor/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Extraction {
	return predicate.Extraction(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Extraction {
	return predicate.Extraction(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Extraction {
	return predicate.Extraction(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Extraction {
	return predicate.Extraction(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Extraction {
	return predicate.Extraction(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Extraction {
	return predicate.Extraction(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Extraction {
	return predicate.Extraction(sql.FieldLTE(FieldID, id))
}

// TicketID applies equality check predicate on the "ticket_id" field. It's identical to TicketIDEQ.
func TicketID(v int) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldTicketID, v))
}

// FromMessageID applies equality check predicate on the "from_message_id" field. It's identical to FromMessageIDEQ.
func FromMessageID(v int) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldFromMessageID, v))
}

// ToMessageID applies equality check predicate on the "to_message_id" field. It's identical to ToMessageIDEQ.
func ToMessageID(v int) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldToMessageID, v))
}

// Decisions applies equality check predicate on the "decisions" field. It's identical to DecisionsEQ.
func Decisions(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldDecisions, v))
}

// ProblemsSolved applies equality check predicate on the "problems_solved" field. It's identical to ProblemsSolvedEQ.
func ProblemsSolved(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldProblemsSolved, v))
}

// FilesModified applies equality check predicate on the "files_modified" field. It's identical to FilesModifiedEQ.
func FilesModified(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldFilesModified, v))
}

// TestsStatus applies equality check predicate on the "tests_status" field. It's identical to TestsStatusEQ.
func TestsStatus(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldTestsStatus, v))
}

// ErrorPatterns applies equality check predicate on the "error_patterns" field. It's identical to ErrorPatternsEQ.
func ErrorPatterns(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldErrorPatterns, v))
}

// ImportantNotes applies equality check predicate on the "important_notes" field. It's identical to ImportantNotesEQ.
func ImportantNotes(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldImportantNotes, v))
}

// TokensBefore applies equality check predicate on the "tokens_before" field. It's identical to TokensBeforeEQ.
func TokensBefore(v int) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldTokensBefore, v))
}

// TokensAfter applies equality check predicate on the "tokens_after" field. It's identical to TokensAfterEQ.
func TokensAfter(v int) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldTokensAfter, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldCreatedAt, v))
}

// TicketIDEQ applies the EQ predicate on the "ticket_id" field.
func TicketIDEQ(v int) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldTicketID, v))
}

// TicketIDNEQ applies the NEQ predicate on the "ticket_id" field.
func TicketIDNEQ(v int) predicate.Extraction {
	return predicate.Extraction(sql.FieldNEQ(FieldTicketID, v))
}

// TicketIDIn applies the In predicate on the "ticket_id" field.
func TicketIDIn(vs ...int) predicate.Extraction {
	return predicate.Extraction(sql.FieldIn(FieldTicketID, vs...))
}

// TicketIDNotIn applies the NotIn predicate on the "ticket_id" field.
func TicketIDNotIn(vs ...int) predicate.Extraction {
	return predicate.Extraction(sql.FieldNotIn(FieldTicketID, vs...))
}

// FromMessageIDEQ applies the EQ predicate on the "from_message_id" field.
func FromMessageIDEQ(v int) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldFromMessageID, v))
}

// FromMessageIDNEQ applies the NEQ predicate on the "from_message_id" field.
func FromMessageIDNEQ(v int) predicate.Extraction {
	return predicate.Extraction(sql.FieldNEQ(FieldFromMessageID, v))
}

// FromMessageIDIn applies the In predicate on the "from_message_id" field.
func FromMessageIDIn(vs ...int) predicate.Extraction {
	return predicate.Extraction(sql.FieldIn(FieldFromMessageID, vs...))
}

// FromMessageIDNotIn applies the NotIn predicate on the "from_message_id" field.
func FromMessageIDNotIn(vs ...int) predicate.Extraction {
	return predicate.Extraction(sql.FieldNotIn(FieldFromMessageID, vs...))
}

// FromMessageIDGT applies the GT predicate on the "from_message_id" field.
func FromMessageIDGT(v int) predicate.Extraction {
	return predicate.Extraction(sql.FieldGT(FieldFromMessageID, v))
}

// FromMessageIDGTE applies the GTE predicate on the "from_message_id" field.
func FromMessageIDGTE(v int) predicate.Extraction {
	return predicate.Extraction(sql.FieldGTE(FieldFromMessageID, v))
}

// FromMessageIDLT applies the LT predicate on the "from_message_id" field.
func FromMessageIDLT(v int) predicate.Extraction {
	return predicate.Extraction(sql.FieldLT(FieldFromMessageID, v))
}

// FromMessageIDLTE applies the LTE predicate on the "from_message_id" field.
func FromMessageIDLTE(v int) predicate.Extraction {
	return predicate.Extraction(sql.FieldLTE(FieldFromMessageID, v))
}

// ToMessageIDEQ applies the EQ predicate on the "to_message_id" field.
func ToMessageIDEQ(v int) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldToMessageID, v))
}

// ToMessageIDNEQ applies the NEQ predicate on the "to_message_id" field.
func ToMessageIDNEQ(v int) predicate.Extraction {
	return predicate.Extraction(sql.FieldNEQ(FieldToMessageID, v))
}

// ToMessageIDIn applies the In predicate on the "to_message_id" field.
func ToMessageIDIn(vs ...int) predicate.Extraction {
	return predicate.Extraction(sql.FieldIn(FieldToMessageID, vs...))
}

// ToMessageIDNotIn applies the NotIn predicate on the "to_message_id" field.
func ToMessageIDNotIn(vs ...int) predicate.Extraction {
	return predicate.Extraction(sql.FieldNotIn(FieldToMessageID, vs...))
}

// ToMessageIDGT applies the GT predicate on the "to_message_id" field.
func ToMessageIDGT(v int) predicate.Extraction {
	return predicate.Extraction(sql.FieldGT(FieldToMessageID, v))
}

// ToMessageIDGTE applies the GTE predicate on the "to_message_id" field.
func ToMessageIDGTE(v int) predicate.Extraction {
	return predicate.Extraction(sql.FieldGTE(FieldToMessageID, v))
}

// ToMessageIDLT applies the LT predicate on the "to_message_id" field.
func ToMessageIDLT(v int) predicate.Extraction {
	return predicate.Extraction(sql.FieldLT(FieldToMessageID, v))
}

// ToMessageIDLTE applies the LTE predicate on the "to_message_id" field.
func ToMessageIDLTE(v int) predicate.Extraction {
	return predicate.Extraction(sql.FieldLTE(FieldToMessageID, v))
}

// DecisionsEQ applies the EQ predicate on the "decisions" field.
func DecisionsEQ(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldDecisions, v))
}

// DecisionsNEQ applies the NEQ predicate on the "decisions" field.
func DecisionsNEQ(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldNEQ(FieldDecisions, v))
}

// DecisionsIn applies the In predicate on the "decisions" field.
func DecisionsIn(vs ...string) predicate.Extraction {
	return predicate.Extraction(sql.FieldIn(FieldDecisions, vs...))
}

// DecisionsNotIn applies the NotIn predicate on the "decisions" field.
func DecisionsNotIn(vs ...string) predicate.Extraction {
	return predicate.Extraction(sql.FieldNotIn(FieldDecisions, vs...))
}

// DecisionsGT applies the GT predicate on the "decisions" field.
func DecisionsGT(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldGT(FieldDecisions, v))
}

// DecisionsGTE applies the GTE predicate on the "decisions" field.
func DecisionsGTE(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldGTE(FieldDecisions, v))
}

// DecisionsLT applies the LT predicate on the "decisions" field.
func DecisionsLT(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldLT(FieldDecisions, v))
}

// DecisionsLTE applies the LTE predicate on the "decisions" field.
func DecisionsLTE(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldLTE(FieldDecisions, v))
}

// DecisionsContains applies the Contains predicate on the "decisions" field.
func DecisionsContains(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldContains(FieldDecisions, v))
}

// DecisionsHasPrefix applies the HasPrefix predicate on the "decisions" field.
func DecisionsHasPrefix(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldHasPrefix(FieldDecisions, v))
}

// DecisionsHasSuffix applies the HasSuffix predicate on the "decisions" field.
func DecisionsHasSuffix(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldHasSuffix(FieldDecisions, v))
}

// DecisionsIsNil applies the IsNil predicate on the "decisions" field.
func DecisionsIsNil() predicate.Extraction {
	return predicate.Extraction(sql.FieldIsNull(FieldDecisions))
}

// DecisionsNotNil applies the NotNil predicate on the "decisions" field.
func DecisionsNotNil() predicate.Extraction {
	return predicate.Extraction(sql.FieldNotNull(FieldDecisions))
}

// DecisionsEqualFold applies the EqualFold predicate on the "decisions" field.
func DecisionsEqualFold(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEqualFold(FieldDecisions, v))
}

// DecisionsContainsFold applies the ContainsFold predicate on the "decisions" field.
func DecisionsContainsFold(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldContainsFold(FieldDecisions, v))
}

// ProblemsSolvedEQ applies the EQ predicate on the "problems_solved" field.
func ProblemsSolvedEQ(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldProblemsSolved, v))
}

// ProblemsSolvedNEQ applies the NEQ predicate on the "problems_solved" field.
func ProblemsSolvedNEQ(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldNEQ(FieldProblemsSolved, v))
}

// ProblemsSolvedIn applies the In predicate on the "problems_solved" field.
func ProblemsSolvedIn(vs ...string) predicate.Extraction {
	return predicate.Extraction(sql.FieldIn(FieldProblemsSolved, vs...))
}

// ProblemsSolvedNotIn applies the NotIn predicate on the "problems_solved" field.
func ProblemsSolvedNotIn(vs ...string) predicate.Extraction {
	return predicate.Extraction(sql.FieldNotIn(FieldProblemsSolved, vs...))
}

// ProblemsSolvedGT applies the GT predicate on the "problems_solved" field.
func ProblemsSolvedGT(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldGT(FieldProblemsSolved, v))
}

// ProblemsSolvedGTE applies the GTE predicate on the "problems_solved" field.
func ProblemsSolvedGTE(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldGTE(FieldProblemsSolved, v))
}

// ProblemsSolvedLT applies the LT predicate on the "problems_solved" field.
func ProblemsSolvedLT(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldLT(FieldProblemsSolved, v))
}

// ProblemsSolvedLTE applies the LTE predicate on the "problems_solved" field.
func ProblemsSolvedLTE(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldLTE(FieldProblemsSolved, v))
}

// ProblemsSolvedContains applies the Contains predicate on the "problems_solved" field.
func ProblemsSolvedContains(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldContains(FieldProblemsSolved, v))
}

// ProblemsSolvedHasPrefix applies the HasPrefix predicate on the "problems_solved" field.
func ProblemsSolvedHasPrefix(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldHasPrefix(FieldProblemsSolved, v))
}

// ProblemsSolvedHasSuffix applies the HasSuffix predicate on the "problems_solved" field.
func ProblemsSolvedHasSuffix(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldHasSuffix(FieldProblemsSolved, v))
}

// ProblemsSolvedIsNil applies the IsNil predicate on the "problems_solved" field.
func ProblemsSolvedIsNil() predicate.Extraction {
	return predicate.Extraction(sql.FieldIsNull(FieldProblemsSolved))
}

// ProblemsSolvedNotNil applies the NotNil predicate on the "problems_solved" field.
func ProblemsSolvedNotNil() predicate.Extraction {
	return predicate.Extraction(sql.FieldNotNull(FieldProblemsSolved))
}

// ProblemsSolvedEqualFold applies the EqualFold predicate on the "problems_solved" field.
func ProblemsSolvedEqualFold(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEqualFold(FieldProblemsSolved, v))
}

// ProblemsSolvedContainsFold applies the ContainsFold predicate on the "problems_solved" field.
func ProblemsSolvedContainsFold(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldContainsFold(FieldProblemsSolved, v))
}

// FilesModifiedEQ applies the EQ predicate on the "files_modified" field.
func FilesModifiedEQ(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldFilesModified, v))
}

// FilesModifiedNEQ applies the NEQ predicate on the "files_modified" field.
func FilesModifiedNEQ(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldNEQ(FieldFilesModified, v))
}

// FilesModifiedIn applies the In predicate on the "files_modified" field.
func FilesModifiedIn(vs ...string) predicate.Extraction {
	return predicate.Extraction(sql.FieldIn(FieldFilesModified, vs...))
}

// FilesModifiedNotIn applies the NotIn predicate on the "files_modified" field.
func FilesModifiedNotIn(vs ...string) predicate.Extraction {
	return predicate.Extraction(sql.FieldNotIn(FieldFilesModified, vs...))
}

// FilesModifiedGT applies the GT predicate on the "files_modified" field.
func FilesModifiedGT(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldGT(FieldFilesModified, v))
}

// FilesModifiedGTE applies the GTE predicate on the "files_modified" field.
func FilesModifiedGTE(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldGTE(FieldFilesModified, v))
}

// FilesModifiedLT applies the LT predicate on the "files_modified" field.
func FilesModifiedLT(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldLT(FieldFilesModified, v))
}

// FilesModifiedLTE applies the LTE predicate on the "files_modified" field.
func FilesModifiedLTE(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldLTE(FieldFilesModified, v))
}

// FilesModifiedContains applies the Contains predicate on the "files_modified" field.
func FilesModifiedContains(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldContains(FieldFilesModified, v))
}

// FilesModifiedHasPrefix applies the HasPrefix predicate on the "files_modified" field.
func FilesModifiedHasPrefix(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldHasPrefix(FieldFilesModified, v))
}

// FilesModifiedHasSuffix applies the HasSuffix predicate on the "files_modified" field.
func FilesModifiedHasSuffix(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldHasSuffix(FieldFilesModified, v))
}

// FilesModifiedIsNil applies the IsNil predicate on the "files_modified" field.
func FilesModifiedIsNil() predicate.Extraction {
	return predicate.Extraction(sql.FieldIsNull(FieldFilesModified))
}

// FilesModifiedNotNil applies the NotNil predicate on the "files_modified" field.
func FilesModifiedNotNil() predicate.Extraction {
	return predicate.Extraction(sql.FieldNotNull(FieldFilesModified))
}

// FilesModifiedEqualFold applies the EqualFold predicate on the "files_modified" field.
func FilesModifiedEqualFold(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEqualFold(FieldFilesModified, v))
}

// FilesModifiedContainsFold applies the ContainsFold predicate on the "files_modified" field.
func FilesModifiedContainsFold(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldContainsFold(FieldFilesModified, v))
}

// TestsStatusEQ applies the EQ predicate on the "tests_status" field.
func TestsStatusEQ(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldTestsStatus, v))
}

// TestsStatusNEQ applies the NEQ predicate on the "tests_status" field.
func TestsStatusNEQ(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldNEQ(FieldTestsStatus, v))
}

// TestsStatusIn applies the In predicate on the "tests_status" field.
func TestsStatusIn(vs ...string) predicate.Extraction {
	return predicate.Extraction(sql.FieldIn(FieldTestsStatus, vs...))
}

// TestsStatusNotIn applies the NotIn predicate on the "tests_status" field.
func TestsStatusNotIn(vs ...string) predicate.Extraction {
	return predicate.Extraction(sql.FieldNotIn(FieldTestsStatus, vs...))
}

// TestsStatusGT applies the GT predicate on the "tests_status" field.
func TestsStatusGT(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldGT(FieldTestsStatus, v))
}

// TestsStatusGTE applies the GTE predicate on the "tests_status" field.
func TestsStatusGTE(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldGTE(FieldTestsStatus, v))
}

// TestsStatusLT applies the LT predicate on the "tests_status" field.
func TestsStatusLT(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldLT(FieldTestsStatus, v))
}

// TestsStatusLTE applies the LTE predicate on the "tests_status" field.
func TestsStatusLTE(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldLTE(FieldTestsStatus, v))
}

// TestsStatusContains applies the Contains predicate on the "tests_status" field.
func TestsStatusContains(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldContains(FieldTestsStatus, v))
}

// TestsStatusHasPrefix applies the HasPrefix predicate on the "tests_status" field.
func TestsStatusHasPrefix(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldHasPrefix(FieldTestsStatus, v))
}

// TestsStatusHasSuffix applies the HasSuffix predicate on the "tests_status" field.
func TestsStatusHasSuffix(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldHasSuffix(FieldTestsStatus, v))
}

// TestsStatusIsNil applies the IsNil predicate on the "tests_status" field.
func TestsStatusIsNil() predicate.Extraction {
	return predicate.Extraction(sql.FieldIsNull(FieldTestsStatus))
}

// TestsStatusNotNil applies the NotNil predicate on the "tests_status" field.
func TestsStatusNotNil() predicate.Extraction {
	return predicate.Extraction(sql.FieldNotNull(FieldTestsStatus))
}

// TestsStatusEqualFold applies the EqualFold predicate on the "tests_status" field.
func TestsStatusEqualFold(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEqualFold(FieldTestsStatus, v))
}

// TestsStatusContainsFold applies the ContainsFold predicate on the "tests_status" field.
func TestsStatusContainsFold(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldContainsFold(FieldTestsStatus, v))
}

// ErrorPatternsEQ applies the EQ predicate on the "error_patterns" field.
func ErrorPatternsEQ(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldErrorPatterns, v))
}

// ErrorPatternsNEQ applies the NEQ predicate on the "error_patterns" field.
func ErrorPatternsNEQ(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldNEQ(FieldErrorPatterns, v))
}

// ErrorPatternsIn applies the In predicate on the "error_patterns" field.
func ErrorPatternsIn(vs ...string) predicate.Extraction {
	return predicate.Extraction(sql.FieldIn(FieldErrorPatterns, vs...))
}

// ErrorPatternsNotIn applies the NotIn predicate on the "error_patterns" field.
func ErrorPatternsNotIn(vs ...string) predicate.Extraction {
	return predicate.Extraction(sql.FieldNotIn(FieldErrorPatterns, vs...))
}

// ErrorPatternsGT applies the GT predicate on the "error_patterns" field.
func ErrorPatternsGT(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldGT(FieldErrorPatterns, v))
}

// ErrorPatternsGTE applies the GTE predicate on the "error_patterns" field.
func ErrorPatternsGTE(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldGTE(FieldErrorPatterns, v))
}

// ErrorPatternsLT applies the LT predicate on the "error_patterns" field.
func ErrorPatternsLT(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldLT(FieldErrorPatterns, v))
}

// ErrorPatternsLTE applies the LTE predicate on the "error_patterns" field.
func ErrorPatternsLTE(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldLTE(FieldErrorPatterns, v))
}

// ErrorPatternsContains applies the Contains predicate on the "error_patterns" field.
func ErrorPatternsContains(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldContains(FieldErrorPatterns, v))
}

// ErrorPatternsHasPrefix applies the HasPrefix predicate on the "error_patterns" field.
func ErrorPatternsHasPrefix(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldHasPrefix(FieldErrorPatterns, v))
}

// ErrorPatternsHasSuffix applies the HasSuffix predicate on the "error_patterns" field.
func ErrorPatternsHasSuffix(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldHasSuffix(FieldErrorPatterns, v))
}

// ErrorPatternsIsNil applies the IsNil predicate on the "error_patterns" field.
func ErrorPatternsIsNil() predicate.Extraction {
	return predicate.Extraction(sql.FieldIsNull(FieldErrorPatterns))
}

// ErrorPatternsNotNil applies the NotNil predicate on the "error_patterns" field.
func ErrorPatternsNotNil() predicate.Extraction {
	return predicate.Extraction(sql.FieldNotNull(FieldErrorPatterns))
}

// ErrorPatternsEqualFold applies the EqualFold predicate on the "error_patterns" field.
func ErrorPatternsEqualFold(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEqualFold(FieldErrorPatterns, v))
}

// ErrorPatternsContainsFold applies the ContainsFold predicate on the "error_patterns" field.
func ErrorPatternsContainsFold(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldContainsFold(FieldErrorPatterns, v))
}

// ImportantNotesEQ applies the EQ predicate on the "important_notes" field.
func ImportantNotesEQ(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldImportantNotes, v))
}

// ImportantNotesNEQ applies the NEQ predicate on the "important_notes" field.
func ImportantNotesNEQ(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldNEQ(FieldImportantNotes, v))
}

// ImportantNotesIn applies the In predicate on the "important_notes" field.
func ImportantNotesIn(vs ...string) predicate.Extraction {
	return predicate.Extraction(sql.FieldIn(FieldImportantNotes, vs...))
}

// ImportantNotesNotIn applies the NotIn predicate on the "important_notes" field.
func ImportantNotesNotIn(vs ...string) predicate.Extraction {
	return predicate.Extraction(sql.FieldNotIn(FieldImportantNotes, vs...))
}

// ImportantNotesGT applies the GT predicate on the "important_notes" field.
func ImportantNotesGT(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldGT(FieldImportantNotes, v))
}

// ImportantNotesGTE applies the GTE predicate on the "important_notes" field.
func ImportantNotesGTE(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldGTE(FieldImportantNotes, v))
}

// ImportantNotesLT applies the LT predicate on the "important_notes" field.
func ImportantNotesLT(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldLT(FieldImportantNotes, v))
}

// ImportantNotesLTE applies the LTE predicate on the "important_notes" field.
func ImportantNotesLTE(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldLTE(FieldImportantNotes, v))
}

// ImportantNotesContains applies the Contains predicate on the "important_notes" field.
func ImportantNotesContains(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldContains(FieldImportantNotes, v))
}

// ImportantNotesHasPrefix applies the HasPrefix predicate on the "important_notes" field.
func ImportantNotesHasPrefix(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldHasPrefix(FieldImportantNotes, v))
}

// ImportantNotesHasSuffix applies the HasSuffix predicate on the "important_notes" field.
func ImportantNotesHasSuffix(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldHasSuffix(FieldImportantNotes, v))
}

// ImportantNotesIsNil applies the IsNil predicate on the "important_notes" field.
func ImportantNotesIsNil() predicate.Extraction {
	return predicate.Extraction(sql.FieldIsNull(FieldImportantNotes))
}

// ImportantNotesNotNil applies the NotNil predicate on the "important_notes" field.
func ImportantNotesNotNil() predicate.Extraction {
	return predicate.Extraction(sql.FieldNotNull(FieldImportantNotes))
}

// ImportantNotesEqualFold applies the EqualFold predicate on the "important_notes" field.
func ImportantNotesEqualFold(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEqualFold(FieldImportantNotes, v))
}

// ImportantNotesContainsFold applies the ContainsFold predicate on the "important_notes" field.
func ImportantNotesContainsFold(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldContainsFold(FieldImportantNotes, v))
}

// TokensBeforeEQ applies the EQ predicate on the "tokens_before" field.
func TokensBeforeEQ(v int) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldTokensBefore, v))
}

// TokensBeforeNEQ applies the NEQ predicate on the "tokens_before" field.
func TokensBeforeNEQ(v int) predicate.Extraction {
	return predicate.Extraction(sql.FieldNEQ(FieldTokensBefore, v))
}

// TokensBeforeIn applies the In predicate on the "tokens_before" field.
func TokensBeforeIn(vs ...int) predicate.Extraction {
	return predicate.Extraction(sql.FieldIn(FieldTokensBefore, vs...))
}

// TokensBeforeNotIn applies the NotIn predicate on the "tokens_before" field.
func TokensBeforeNotIn(vs ...int) predicate.Extraction {
	return predicate.Extraction(sql.FieldNotIn(FieldTokensBefore, vs...))
}

// TokensBeforeGT applies the GT predicate on the "tokens_before" field.
func TokensBeforeGT(v int) predicate.Extraction {
	return predicate.Extraction(sql.FieldGT(FieldTokensBefore, v))
}

// TokensBeforeGTE applies the GTE predicate on the "tokens_before" field.
func TokensBeforeGTE(v int) predicate.Extraction {
	return predicate.Extraction(sql.FieldGTE(FieldTokensBefore, v))
}

// TokensBeforeLT applies the LT predicate on the "tokens_before" field.
func TokensBeforeLT(v int) predicate.Extraction {
	return predicate.Extraction(sql.FieldLT(FieldTokensBefore, v))
}

// TokensBeforeLTE applies the LTE predicate on the "tokens_before" field.
func TokensBeforeLTE(v int) predicate.Extraction {
	return predicate.Extraction(sql.FieldLTE(FieldTokensBefore, v))
}

// TokensAfterEQ applies the EQ predicate on the "tokens_after" field.
func TokensAfterEQ(v int) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldTokensAfter, v))
}

// TokensAfterNEQ applies the NEQ predicate on the "tokens_after" field.
func TokensAfterNEQ(v int) predicate.Extraction {
	return predicate.Extraction(sql.FieldNEQ(FieldTokensAfter, v))
}

// TokensAfterIn applies the In predicate on the "tokens_after" field.
func TokensAfterIn(vs ...int) predicate.Extraction {
	return predicate.Extraction(sql.FieldIn(FieldTokensAfter, vs...))
}

// TokensAfterNotIn applies the NotIn predicate on the "tokens_after" field.
func TokensAfterNotIn(vs ...int) predicate.Extraction {
	return predicate.Extraction(sql.FieldNotIn(FieldTokensAfter, vs...))
}

// TokensAfterGT applies the GT predicate on the "tokens_after" field.
func TokensAfterGT(v int) predicate.Extraction {
	return predicate.Extraction(sql.FieldGT(FieldTokensAfter, v))
}

// TokensAfterGTE applies the GTE predicate on the "tokens_after" field.
func TokensAfterGTE(v int) predicate.Extraction {
	return predicate.Extraction(sql.FieldGTE(FieldTokensAfter, v))
}

// TokensAfterLT applies the LT predicate on the "tokens_after" field.
func TokensAfterLT(v int) predicate.Extraction {
	return predicate.Extraction(sql.FieldLT(FieldTokensAfter, v))
}

// TokensAfterLTE applies the LTE predicate on the "tokens_after" field.
func TokensAfterLTE(v int) predicate.Extraction {
	return predicate.Extraction(sql.FieldLTE(FieldTokensAfter, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldLTE(FieldCreatedAt, v))
}

// HasTicket applies the HasEdge predicate on the "ticket" edge.
func HasTicket() predicate.Extraction {
	return predicate.Extraction(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TicketTable, TicketColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTicketWith applies the HasEdge predicate on the "ticket" edge with a given conditions (other predicates).
func HasTicketWith(preds ...predicate.Ticket) predicate.Extraction {
	return predicate.Extraction(func(s *sql.Selector) {
		step := newTicketStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Extraction) predicate.Extraction {
	return predicate.Extraction(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Extraction) predicate.Extraction {
	return predicate.Extraction(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Extraction) predicate.Extraction {
	return predicate.Extraction(sql.NotPredicates(p))
}

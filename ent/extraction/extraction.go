// Code generated by ent, DO NOT EDIT.

package extraction

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the extraction type in the database.
	Label = "extraction"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTicketID holds the string denoting the ticket_id field in the database.
	FieldTicketID = "ticket_id"
	// FieldFromMessageID holds the string denoting the from_message_id field in the database.
	FieldFromMessageID = "from_message_id"
	// FieldToMessageID holds the string denoting the to_message_id field in the database.
	FieldToMessageID = "to_message_id"
	// FieldDecisions holds the string denoting the decisions field in the database.
	FieldDecisions = "decisions"
	// FieldProblemsSolved holds the string denoting the problems_solved field in the database.
	FieldProblemsSolved = "problems_solved"
	// FieldFilesModified holds the string denoting the files_modified field in the database.
	FieldFilesModified = "files_modified"
	// FieldTestsStatus holds the string denoting the tests_status field in the database.
	FieldTestsStatus = "tests_status"
	// FieldErrorPatterns holds the string denoting the error_patterns field in the database.
	FieldErrorPatterns = "error_patterns"
	// FieldImportantNotes holds the string denoting the important_notes field in the database.
	FieldImportantNotes = "important_notes"
	// FieldTokensBefore holds the string denoting the tokens_before field in the database.
	FieldTokensBefore = "tokens_before"
	// FieldTokensAfter holds the string denoting the tokens_after field in the database.
	FieldTokensAfter = "tokens_after"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeTicket holds the string denoting the ticket edge name in mutations.
	EdgeTicket = "ticket"
	// Table holds the table name of the extraction in the database.
	Table = "extractions"
	// TicketTable is the table that holds the ticket relation/edge.
	TicketTable = "extractions"
	// TicketInverseTable is the table name for the Ticket entity.
	// It exists in this package in order to avoid circular dependency with the "ticket" package.
	TicketInverseTable = "tickets"
	// TicketColumn is the table column denoting the ticket relation/edge.
	TicketColumn = "ticket_id"
)

// Columns holds all SQL columns for extraction fields.
var Columns = []string{
	FieldID,
	FieldTicketID,
	FieldFromMessageID,
	FieldToMessageID,
	FieldDecisions,
	FieldProblemsSolved,
	FieldFilesModified,
	FieldTestsStatus,
	FieldErrorPatterns,
	FieldImportantNotes,
	FieldTokensBefore,
	FieldTokensAfter,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTokensBefore holds the default value on creation for the "tokens_before" field.
	DefaultTokensBefore int
	// DefaultTokensAfter holds the default value on creation for the "tokens_after" field.
	DefaultTokensAfter int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Extraction queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTicketID orders the results by the ticket_id field.
func ByTicketID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTicketID, opts...).ToFunc()
}

// ByFromMessageID orders the results by the from_message_id field.
func ByFromMessageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFromMessageID, opts...).ToFunc()
}

// ByToMessageID orders the results by the to_message_id field.
func ByToMessageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToMessageID, opts...).ToFunc()
}

// ByDecisions orders the results by the decisions field.
func ByDecisions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDecisions, opts...).ToFunc()
}

// ByProblemsSolved orders the results by the problems_solved field.
func ByProblemsSolved(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProblemsSolved, opts...).ToFunc()
}

// ByFilesModified orders the results by the files_modified field.
func ByFilesModified(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilesModified, opts...).ToFunc()
}

// ByTestsStatus orders the results by the tests_status field.
func ByTestsStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTestsStatus, opts...).ToFunc()
}

// ByErrorPatterns orders the results by the error_patterns field.
func ByErrorPatterns(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorPatterns, opts...).ToFunc()
}

// ByImportantNotes orders the results by the important_notes field.
func ByImportantNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImportantNotes, opts...).ToFunc()
}

// ByTokensBefore orders the results by the tokens_before field.
func ByTokensBefore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokensBefore, opts...).ToFunc()
}

// ByTokensAfter orders the results by the tokens_after field.
func ByTokensAfter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokensAfter, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByTicketField orders the results by ticket field.
func ByTicketField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTicketStep(), sql.OrderByField(field, opts...))
	}
}
func newTicketStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TicketInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, TicketTable, TicketColumn),
	)
}

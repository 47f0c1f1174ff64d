// Code generated by ent, DO NOT EDIT.

package project

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the project type in the database.
	Label = "project"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCode holds the string denoting the code field in the database.
	FieldCode = "code"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldWebPath holds the string denoting the web_path field in the database.
	FieldWebPath = "web_path"
	// FieldAppPath holds the string denoting the app_path field in the database.
	FieldAppPath = "app_path"
	// FieldDefaultExecutionMode holds the string denoting the default_execution_mode field in the database.
	FieldDefaultExecutionMode = "default_execution_mode"
	// FieldModelTier holds the string denoting the model_tier field in the database.
	FieldModelTier = "model_tier"
	// FieldGitEnabled holds the string denoting the git_enabled field in the database.
	FieldGitEnabled = "git_enabled"
	// FieldArchived holds the string denoting the archived field in the database.
	FieldArchived = "archived"
	// FieldKnowledge holds the string denoting the knowledge field in the database.
	FieldKnowledge = "knowledge"
	// FieldMapContent holds the string denoting the map_content field in the database.
	FieldMapContent = "map_content"
	// FieldMapGeneratedAt holds the string denoting the map_generated_at field in the database.
	FieldMapGeneratedAt = "map_generated_at"
	// FieldNextTicketSeq holds the string denoting the next_ticket_seq field in the database.
	FieldNextTicketSeq = "next_ticket_seq"
	// FieldTotalInputTokens holds the string denoting the total_input_tokens field in the database.
	FieldTotalInputTokens = "total_input_tokens"
	// FieldTotalOutputTokens holds the string denoting the total_output_tokens field in the database.
	FieldTotalOutputTokens = "total_output_tokens"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeTickets holds the string denoting the tickets edge name in mutations.
	EdgeTickets = "tickets"
	// Table holds the table name of the project in the database.
	Table = "projects"
	// TicketsTable is the table that holds the tickets relation/edge.
	TicketsTable = "tickets"
	// TicketsInverseTable is the table name for the Ticket entity.
	// It exists in this package in order to avoid circular dependency with the "ticket" package.
	TicketsInverseTable = "tickets"
	// TicketsColumn is the table column denoting the tickets relation/edge.
	TicketsColumn = "project_id"
)

// Columns holds all SQL columns for project fields.
var Columns = []string{
	FieldID,
	FieldCode,
	FieldName,
	FieldWebPath,
	FieldAppPath,
	FieldDefaultExecutionMode,
	FieldModelTier,
	FieldGitEnabled,
	FieldArchived,
	FieldKnowledge,
	FieldMapContent,
	FieldMapGeneratedAt,
	FieldNextTicketSeq,
	FieldTotalInputTokens,
	FieldTotalOutputTokens,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// CodeValidator is a validator for the "code" field. It is called by the builders before save.
	CodeValidator func(string) error
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultGitEnabled holds the default value on creation for the "git_enabled" field.
	DefaultGitEnabled bool
	// DefaultArchived holds the default value on creation for the "archived" field.
	DefaultArchived bool
	// DefaultNextTicketSeq holds the default value on creation for the "next_ticket_seq" field.
	DefaultNextTicketSeq int
	// DefaultTotalInputTokens holds the default value on creation for the "total_input_tokens" field.
	DefaultTotalInputTokens int64
	// DefaultTotalOutputTokens holds the default value on creation for the "total_output_tokens" field.
	DefaultTotalOutputTokens int64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// DefaultExecutionMode defines the type for the "default_execution_mode" enum field.
type DefaultExecutionMode string

// DefaultExecutionModeAutonomous is the default value of the DefaultExecutionMode enum.
const DefaultDefaultExecutionMode = DefaultExecutionModeAutonomous

// DefaultExecutionMode values.
const (
	DefaultExecutionModeAutonomous     DefaultExecutionMode = "autonomous"
	DefaultExecutionModeSemiAutonomous DefaultExecutionMode = "semi_autonomous"
	DefaultExecutionModeSupervised     DefaultExecutionMode = "supervised"
)

func (dem DefaultExecutionMode) String() string {
	return string(dem)
}

// DefaultExecutionModeValidator is a validator for the "default_execution_mode" field enum values. It is called by the builders before save.
func DefaultExecutionModeValidator(dem DefaultExecutionMode) error {
	switch dem {
	case DefaultExecutionModeAutonomous, DefaultExecutionModeSemiAutonomous, DefaultExecutionModeSupervised:
		return nil
	default:
		return fmt.Errorf("project: invalid enum value for default_execution_mode field: %q", dem)
	}
}

// ModelTier defines the type for the "model_tier" enum field.
type ModelTier string

// ModelTierSmart is the default value of the ModelTier enum.
const DefaultModelTier = ModelTierSmart

// ModelTier values.
const (
	ModelTierFast  ModelTier = "fast"
	ModelTierSmart ModelTier = "smart"
)

func (mt ModelTier) String() string {
	return string(mt)
}

// ModelTierValidator is a validator for the "model_tier" field enum values. It is called by the builders before save.
func ModelTierValidator(mt ModelTier) error {
	switch mt {
	case ModelTierFast, ModelTierSmart:
		return nil
	default:
		return fmt.Errorf("project: invalid enum value for model_tier field: %q", mt)
	}
}

// OrderOption defines the ordering options for the Project queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCode orders the results by the code field.
func ByCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCode, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByWebPath orders the results by the web_path field.
func ByWebPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWebPath, opts...).ToFunc()
}

// ByAppPath orders the results by the app_path field.
func ByAppPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAppPath, opts...).ToFunc()
}

// ByDefaultExecutionMode orders the results by the default_execution_mode field.
func ByDefaultExecutionMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDefaultExecutionMode, opts...).ToFunc()
}

// ByModelTier orders the results by the model_tier field.
func ByModelTier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModelTier, opts...).ToFunc()
}

// ByGitEnabled orders the results by the git_enabled field.
func ByGitEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGitEnabled, opts...).ToFunc()
}

// ByArchived orders the results by the archived field.
func ByArchived(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArchived, opts...).ToFunc()
}

// ByKnowledge orders the results by the knowledge field.
func ByKnowledge(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKnowledge, opts...).ToFunc()
}

// ByMapContent orders the results by the map_content field.
func ByMapContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMapContent, opts...).ToFunc()
}

// ByMapGeneratedAt orders the results by the map_generated_at field.
func ByMapGeneratedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMapGeneratedAt, opts...).ToFunc()
}

// ByNextTicketSeq orders the results by the next_ticket_seq field.
func ByNextTicketSeq(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextTicketSeq, opts...).ToFunc()
}

// ByTotalInputTokens orders the results by the total_input_tokens field.
func ByTotalInputTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalInputTokens, opts...).ToFunc()
}

// ByTotalOutputTokens orders the results by the total_output_tokens field.
func ByTotalOutputTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalOutputTokens, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByTicketsCount orders the results by tickets count.
func ByTicketsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTicketsStep(), opts...)
	}
}

// ByTickets orders the results by tickets terms.
func ByTickets(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTicketsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newTicketsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TicketsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TicketsTable, TicketsColumn),
	)
}

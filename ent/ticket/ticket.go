// Code generated by ent, DO NOT EDIT.

package ticket

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the ticket type in the database.
	Label = "ticket"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldProjectID holds the string denoting the project_id field in the database.
	FieldProjectID = "project_id"
	// FieldTicketNumber holds the string denoting the ticket_number field in the database.
	FieldTicketNumber = "ticket_number"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldTicketType holds the string denoting the ticket_type field in the database.
	FieldTicketType = "ticket_type"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldSequenceOrder holds the string denoting the sequence_order field in the database.
	FieldSequenceOrder = "sequence_order"
	// FieldParentTicketID holds the string denoting the parent_ticket_id field in the database.
	FieldParentTicketID = "parent_ticket_id"
	// FieldIsForced holds the string denoting the is_forced field in the database.
	FieldIsForced = "is_forced"
	// FieldExecutionMode holds the string denoting the execution_mode field in the database.
	FieldExecutionMode = "execution_mode"
	// FieldDepsIncludeAwaiting holds the string denoting the deps_include_awaiting field in the database.
	FieldDepsIncludeAwaiting = "deps_include_awaiting"
	// FieldModelTier holds the string denoting the model_tier field in the database.
	FieldModelTier = "model_tier"
	// FieldMaxRetries holds the string denoting the max_retries field in the database.
	FieldMaxRetries = "max_retries"
	// FieldRetryCount holds the string denoting the retry_count field in the database.
	FieldRetryCount = "retry_count"
	// FieldRetryAfter holds the string denoting the retry_after field in the database.
	FieldRetryAfter = "retry_after"
	// FieldReviewScheduledAt holds the string denoting the review_scheduled_at field in the database.
	FieldReviewScheduledAt = "review_scheduled_at"
	// FieldReviewAttempts holds the string denoting the review_attempts field in the database.
	FieldReviewAttempts = "review_attempts"
	// FieldAwaitingReason holds the string denoting the awaiting_reason field in the database.
	FieldAwaitingReason = "awaiting_reason"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldResultSummary holds the string denoting the result_summary field in the database.
	FieldResultSummary = "result_summary"
	// FieldUnsummarizedTokens holds the string denoting the unsummarized_tokens field in the database.
	FieldUnsummarizedTokens = "unsummarized_tokens"
	// FieldTotalTokens holds the string denoting the total_tokens field in the database.
	FieldTotalTokens = "total_tokens"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeProject holds the string denoting the project edge name in mutations.
	EdgeProject = "project"
	// EdgeParent holds the string denoting the parent edge name in mutations.
	EdgeParent = "parent"
	// EdgeChildren holds the string denoting the children edge name in mutations.
	EdgeChildren = "children"
	// EdgeMessages holds the string denoting the messages edge name in mutations.
	EdgeMessages = "messages"
	// EdgeExtractions holds the string denoting the extractions edge name in mutations.
	EdgeExtractions = "extractions"
	// EdgeSessions holds the string denoting the sessions edge name in mutations.
	EdgeSessions = "sessions"
	// EdgePermissions holds the string denoting the permissions edge name in mutations.
	EdgePermissions = "permissions"
	// EdgeDependencies holds the string denoting the dependencies edge name in mutations.
	EdgeDependencies = "dependencies"
	// EdgeDependents holds the string denoting the dependents edge name in mutations.
	EdgeDependents = "dependents"
	// ExecutionSessionFieldID holds the string denoting the ID field of the ExecutionSession.
	ExecutionSessionFieldID = "session_id"
	// Table holds the table name of the ticket in the database.
	Table = "tickets"
	// ProjectTable is the table that holds the project relation/edge.
	ProjectTable = "tickets"
	// ProjectInverseTable is the table name for the Project entity.
	// It exists in this package in order to avoid circular dependency with the "project" package.
	ProjectInverseTable = "projects"
	// ProjectColumn is the table column denoting the project relation/edge.
	ProjectColumn = "project_id"
	// ParentTable is the table that holds the parent relation/edge.
	ParentTable = "tickets"
	// ParentColumn is the table column denoting the parent relation/edge.
	ParentColumn = "parent_ticket_id"
	// ChildrenTable is the table that holds the children relation/edge.
	ChildrenTable = "tickets"
	// ChildrenColumn is the table column denoting the children relation/edge.
	ChildrenColumn = "parent_ticket_id"
	// MessagesTable is the table that holds the messages relation/edge.
	MessagesTable = "messages"
	// MessagesInverseTable is the table name for the Message entity.
	// It exists in this package in order to avoid circular dependency with the "message" package.
	MessagesInverseTable = "messages"
	// MessagesColumn is the table column denoting the messages relation/edge.
	MessagesColumn = "ticket_id"
	// ExtractionsTable is the table that holds the extractions relation/edge.
	ExtractionsTable = "extractions"
	// ExtractionsInverseTable is the table name for the Extraction entity.
	// It exists in this package in order to avoid circular dependency with the "extraction" package.
	ExtractionsInverseTable = "extractions"
	// ExtractionsColumn is the table column denoting the extractions relation/edge.
	ExtractionsColumn = "ticket_id"
	// SessionsTable is the table that holds the sessions relation/edge.
	SessionsTable = "execution_sessions"
	// SessionsInverseTable is the table name for the ExecutionSession entity.
	// It exists in this package in order to avoid circular dependency with the "executionsession" package.
	SessionsInverseTable = "execution_sessions"
	// SessionsColumn is the table column denoting the sessions relation/edge.
	SessionsColumn = "ticket_id"
	// PermissionsTable is the table that holds the permissions relation/edge.
	PermissionsTable = "approved_permissions"
	// PermissionsInverseTable is the table name for the ApprovedPermission entity.
	// It exists in this package in order to avoid circular dependency with the "approvedpermission" package.
	PermissionsInverseTable = "approved_permissions"
	// PermissionsColumn is the table column denoting the permissions relation/edge.
	PermissionsColumn = "ticket_id"
	// DependenciesTable is the table that holds the dependencies relation/edge.
	DependenciesTable = "ticket_dependencies"
	// DependenciesInverseTable is the table name for the TicketDependency entity.
	// It exists in this package in order to avoid circular dependency with the "ticketdependency" package.
	DependenciesInverseTable = "ticket_dependencies"
	// DependenciesColumn is the table column denoting the dependencies relation/edge.
	DependenciesColumn = "ticket_id"
	// DependentsTable is the table that holds the dependents relation/edge.
	DependentsTable = "ticket_dependencies"
	// DependentsInverseTable is the table name for the TicketDependency entity.
	// It exists in this package in order to avoid circular dependency with the "ticketdependency" package.
	DependentsInverseTable = "ticket_dependencies"
	// DependentsColumn is the table column denoting the dependents relation/edge.
	DependentsColumn = "depends_on_ticket_id"
)

// Columns holds all SQL columns for ticket fields.
var Columns = []string{
	FieldID,
	FieldProjectID,
	FieldTicketNumber,
	FieldTitle,
	FieldDescription,
	FieldTicketType,
	FieldPriority,
	FieldSequenceOrder,
	FieldParentTicketID,
	FieldIsForced,
	FieldExecutionMode,
	FieldDepsIncludeAwaiting,
	FieldModelTier,
	FieldMaxRetries,
	FieldRetryCount,
	FieldRetryAfter,
	FieldReviewScheduledAt,
	FieldReviewAttempts,
	FieldAwaitingReason,
	FieldStatus,
	FieldResultSummary,
	FieldUnsummarizedTokens,
	FieldTotalTokens,
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
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// DefaultIsForced holds the default value on creation for the "is_forced" field.
	DefaultIsForced bool
	// DefaultDepsIncludeAwaiting holds the default value on creation for the "deps_include_awaiting" field.
	DefaultDepsIncludeAwaiting bool
	// DefaultMaxRetries holds the default value on creation for the "max_retries" field.
	DefaultMaxRetries int
	// MaxRetriesValidator is a validator for the "max_retries" field. It is called by the builders before save.
	MaxRetriesValidator func(int) error
	// DefaultRetryCount holds the default value on creation for the "retry_count" field.
	DefaultRetryCount int
	// RetryCountValidator is a validator for the "retry_count" field. It is called by the builders before save.
	RetryCountValidator func(int) error
	// DefaultReviewAttempts holds the default value on creation for the "review_attempts" field.
	DefaultReviewAttempts int
	// ResultSummaryValidator is a validator for the "result_summary" field. It is called by the builders before save.
	ResultSummaryValidator func(string) error
	// DefaultUnsummarizedTokens holds the default value on creation for the "unsummarized_tokens" field.
	DefaultUnsummarizedTokens int
	// DefaultTotalTokens holds the default value on creation for the "total_tokens" field.
	DefaultTotalTokens int64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// TicketType defines the type for the "ticket_type" enum field.
type TicketType string

// TicketTypeTask is the default value of the TicketType enum.
const DefaultTicketType = TicketTypeTask

// TicketType values.
const (
	TicketTypeFeature     TicketType = "feature"
	TicketTypeBug         TicketType = "bug"
	TicketTypeDebug       TicketType = "debug"
	TicketTypeRnd         TicketType = "rnd"
	TicketTypeTask        TicketType = "task"
	TicketTypeImprovement TicketType = "improvement"
	TicketTypeDocs        TicketType = "docs"
)

func (tt TicketType) String() string {
	return string(tt)
}

// TicketTypeValidator is a validator for the "ticket_type" field enum values. It is called by the builders before save.
func TicketTypeValidator(tt TicketType) error {
	switch tt {
	case TicketTypeFeature, TicketTypeBug, TicketTypeDebug, TicketTypeRnd, TicketTypeTask, TicketTypeImprovement, TicketTypeDocs:
		return nil
	default:
		return fmt.Errorf("ticket: invalid enum value for ticket_type field: %q", tt)
	}
}

// Priority defines the type for the "priority" enum field.
type Priority string

// PriorityMedium is the default value of the Priority enum.
const DefaultPriority = PriorityMedium

// Priority values.
const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

func (pr Priority) String() string {
	return string(pr)
}

// PriorityValidator is a validator for the "priority" field enum values. It is called by the builders before save.
func PriorityValidator(pr Priority) error {
	switch pr {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return nil
	default:
		return fmt.Errorf("ticket: invalid enum value for priority field: %q", pr)
	}
}

// ExecutionMode defines the type for the "execution_mode" enum field.
type ExecutionMode string

// ExecutionMode values.
const (
	ExecutionModeAutonomous     ExecutionMode = "autonomous"
	ExecutionModeSemiAutonomous ExecutionMode = "semi_autonomous"
	ExecutionModeSupervised     ExecutionMode = "supervised"
)

func (em ExecutionMode) String() string {
	return string(em)
}

// ExecutionModeValidator is a validator for the "execution_mode" field enum values. It is called by the builders before save.
func ExecutionModeValidator(em ExecutionMode) error {
	switch em {
	case ExecutionModeAutonomous, ExecutionModeSemiAutonomous, ExecutionModeSupervised:
		return nil
	default:
		return fmt.Errorf("ticket: invalid enum value for execution_mode field: %q", em)
	}
}

// ModelTier defines the type for the "model_tier" enum field.
type ModelTier string

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
		return fmt.Errorf("ticket: invalid enum value for model_tier field: %q", mt)
	}
}

// AwaitingReason defines the type for the "awaiting_reason" enum field.
type AwaitingReason string

// AwaitingReason values.
const (
	AwaitingReasonCompleted  AwaitingReason = "completed"
	AwaitingReasonQuestion   AwaitingReason = "question"
	AwaitingReasonError      AwaitingReason = "error"
	AwaitingReasonStopped    AwaitingReason = "stopped"
	AwaitingReasonPermission AwaitingReason = "permission"
	AwaitingReasonStuck      AwaitingReason = "stuck"
	AwaitingReasonDepsReady  AwaitingReason = "deps_ready"
)

func (ar AwaitingReason) String() string {
	return string(ar)
}

// AwaitingReasonValidator is a validator for the "awaiting_reason" field enum values. It is called by the builders before save.
func AwaitingReasonValidator(ar AwaitingReason) error {
	switch ar {
	case AwaitingReasonCompleted, AwaitingReasonQuestion, AwaitingReasonError, AwaitingReasonStopped, AwaitingReasonPermission, AwaitingReasonStuck, AwaitingReasonDepsReady:
		return nil
	default:
		return fmt.Errorf("ticket: invalid enum value for awaiting_reason field: %q", ar)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusOpen is the default value of the Status enum.
const DefaultStatus = StatusOpen

// Status values.
const (
	StatusOpen          Status = "open"
	StatusInProgress    Status = "in_progress"
	StatusAwaitingInput Status = "awaiting_input"
	StatusDone          Status = "done"
	StatusFailed        Status = "failed"
	StatusStuck         Status = "stuck"
	StatusSkipped       Status = "skipped"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusOpen, StatusInProgress, StatusAwaitingInput, StatusDone, StatusFailed, StatusStuck, StatusSkipped:
		return nil
	default:
		return fmt.Errorf("ticket: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Ticket queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProjectID orders the results by the project_id field.
func ByProjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectID, opts...).ToFunc()
}

// ByTicketNumber orders the results by the ticket_number field.
func ByTicketNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTicketNumber, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByTicketType orders the results by the ticket_type field.
func ByTicketType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTicketType, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// BySequenceOrder orders the results by the sequence_order field.
func BySequenceOrder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequenceOrder, opts...).ToFunc()
}

// ByParentTicketID orders the results by the parent_ticket_id field.
func ByParentTicketID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentTicketID, opts...).ToFunc()
}

// ByIsForced orders the results by the is_forced field.
func ByIsForced(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsForced, opts...).ToFunc()
}

// ByExecutionMode orders the results by the execution_mode field.
func ByExecutionMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExecutionMode, opts...).ToFunc()
}

// ByDepsIncludeAwaiting orders the results by the deps_include_awaiting field.
func ByDepsIncludeAwaiting(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDepsIncludeAwaiting, opts...).ToFunc()
}

// ByModelTier orders the results by the model_tier field.
func ByModelTier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModelTier, opts...).ToFunc()
}

// ByMaxRetries orders the results by the max_retries field.
func ByMaxRetries(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxRetries, opts...).ToFunc()
}

// ByRetryCount orders the results by the retry_count field.
func ByRetryCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRetryCount, opts...).ToFunc()
}

// ByRetryAfter orders the results by the retry_after field.
func ByRetryAfter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRetryAfter, opts...).ToFunc()
}

// ByReviewScheduledAt orders the results by the review_scheduled_at field.
func ByReviewScheduledAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewScheduledAt, opts...).ToFunc()
}

// ByReviewAttempts orders the results by the review_attempts field.
func ByReviewAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewAttempts, opts...).ToFunc()
}

// ByAwaitingReason orders the results by the awaiting_reason field.
func ByAwaitingReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAwaitingReason, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByResultSummary orders the results by the result_summary field.
func ByResultSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResultSummary, opts...).ToFunc()
}

// ByUnsummarizedTokens orders the results by the unsummarized_tokens field.
func ByUnsummarizedTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnsummarizedTokens, opts...).ToFunc()
}

// ByTotalTokens orders the results by the total_tokens field.
func ByTotalTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalTokens, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByProjectField orders the results by project field.
func ByProjectField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProjectStep(), sql.OrderByField(field, opts...))
	}
}

// ByParentField orders the results by parent field.
func ByParentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newParentStep(), sql.OrderByField(field, opts...))
	}
}

// ByChildrenCount orders the results by children count.
func ByChildrenCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newChildrenStep(), opts...)
	}
}

// ByChildren orders the results by children terms.
func ByChildren(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newChildrenStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByMessagesCount orders the results by messages count.
func ByMessagesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMessagesStep(), opts...)
	}
}

// ByMessages orders the results by messages terms.
func ByMessages(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMessagesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByExtractionsCount orders the results by extractions count.
func ByExtractionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newExtractionsStep(), opts...)
	}
}

// ByExtractions orders the results by extractions terms.
func ByExtractions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newExtractionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// BySessionsCount orders the results by sessions count.
func BySessionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSessionsStep(), opts...)
	}
}

// BySessions orders the results by sessions terms.
func BySessions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSessionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByPermissionsCount orders the results by permissions count.
func ByPermissionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newPermissionsStep(), opts...)
	}
}

// ByPermissions orders the results by permissions terms.
func ByPermissions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPermissionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByDependenciesCount orders the results by dependencies count.
func ByDependenciesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDependenciesStep(), opts...)
	}
}

// ByDependencies orders the results by dependencies terms.
func ByDependencies(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDependenciesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByDependentsCount orders the results by dependents count.
func ByDependentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDependentsStep(), opts...)
	}
}

// ByDependents orders the results by dependents terms.
func ByDependents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDependentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newProjectStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProjectInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
	)
}
func newParentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(Table, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ParentTable, ParentColumn),
	)
}
func newChildrenStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(Table, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ChildrenTable, ChildrenColumn),
	)
}
func newMessagesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MessagesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MessagesTable, MessagesColumn),
	)
}
func newExtractionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ExtractionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ExtractionsTable, ExtractionsColumn),
	)
}
func newSessionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SessionsInverseTable, ExecutionSessionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SessionsTable, SessionsColumn),
	)
}
func newPermissionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PermissionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, PermissionsTable, PermissionsColumn),
	)
}
func newDependenciesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DependenciesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DependenciesTable, DependenciesColumn),
	)
}
func newDependentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DependentsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DependentsTable, DependentsColumn),
	)
}

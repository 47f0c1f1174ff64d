// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fleetworks/conductor/ent/project"
	"github.com/fleetworks/conductor/ent/ticket"
)

// Ticket is the model entity for the Ticket schema.
type Ticket struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID int `json:"project_id,omitempty"`
	// {PROJECT_CODE}-NNNN, monotonic per project
	TicketNumber string `json:"ticket_number,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// TicketType holds the value of the "ticket_type" field.
	TicketType ticket.TicketType `json:"ticket_type,omitempty"`
	// Priority holds the value of the "priority" field.
	Priority ticket.Priority `json:"priority,omitempty"`
	// Explicit queue position; NULL sorts after every integer
	SequenceOrder *int `json:"sequence_order,omitempty"`
	// ParentTicketID holds the value of the "parent_ticket_id" field.
	ParentTicketID *int `json:"parent_ticket_id,omitempty"`
	// Skip-the-queue flag
	IsForced bool `json:"is_forced,omitempty"`
	// NULL inherits the project default
	ExecutionMode *ticket.ExecutionMode `json:"execution_mode,omitempty"`
	// Relaxed dependency satisfaction: awaiting_input counts as done
	DepsIncludeAwaiting bool `json:"deps_include_awaiting,omitempty"`
	// ModelTier holds the value of the "model_tier" field.
	ModelTier *ticket.ModelTier `json:"model_tier,omitempty"`
	// MaxRetries holds the value of the "max_retries" field.
	MaxRetries int `json:"max_retries,omitempty"`
	// RetryCount holds the value of the "retry_count" field.
	RetryCount int `json:"retry_count,omitempty"`
	// Cooldown gate; the scheduler skips the ticket until this passes
	RetryAfter *time.Time `json:"retry_after,omitempty"`
	// ReviewScheduledAt holds the value of the "review_scheduled_at" field.
	ReviewScheduledAt *time.Time `json:"review_scheduled_at,omitempty"`
	// ReviewAttempts holds the value of the "review_attempts" field.
	ReviewAttempts int `json:"review_attempts,omitempty"`
	// AwaitingReason holds the value of the "awaiting_reason" field.
	AwaitingReason *ticket.AwaitingReason `json:"awaiting_reason,omitempty"`
	// Status holds the value of the "status" field.
	Status ticket.Status `json:"status,omitempty"`
	// Filled once on close for tickets with children
	ResultSummary *string `json:"result_summary,omitempty"`
	// Aggregate token count of messages with is_summarized = false
	UnsummarizedTokens int `json:"unsummarized_tokens,omitempty"`
	// TotalTokens holds the value of the "total_tokens" field.
	TotalTokens int64 `json:"total_tokens,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TicketQuery when eager-loading is set.
	Edges        TicketEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TicketEdges holds the relations/edges for other nodes in the graph.
type TicketEdges struct {
	// Project holds the value of the project edge.
	Project *Project `json:"project,omitempty"`
	// Parent holds the value of the parent edge.
	Parent *Ticket `json:"parent,omitempty"`
	// Children holds the value of the children edge.
	Children []*Ticket `json:"children,omitempty"`
	// Messages holds the value of the messages edge.
	Messages []*Message `json:"messages,omitempty"`
	// Extractions holds the value of the extractions edge.
	Extractions []*Extraction `json:"extractions,omitempty"`
	// Sessions holds the value of the sessions edge.
	Sessions []*ExecutionSession `json:"sessions,omitempty"`
	// Permissions holds the value of the permissions edge.
	Permissions []*ApprovedPermission `json:"permissions,omitempty"`
	// Dependencies holds the value of the dependencies edge.
	Dependencies []*TicketDependency `json:"dependencies,omitempty"`
	// Dependents holds the value of the dependents edge.
	Dependents []*TicketDependency `json:"dependents,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [9]bool
}

// ProjectOrErr returns the Project value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TicketEdges) ProjectOrErr() (*Project, error) {
	if e.Project != nil {
		return e.Project, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: project.Label}
	}
	return nil, &NotLoadedError{edge: "project"}
}

// ParentOrErr returns the Parent value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TicketEdges) ParentOrErr() (*Ticket, error) {
	if e.Parent != nil {
		return e.Parent, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: ticket.Label}
	}
	return nil, &NotLoadedError{edge: "parent"}
}

// ChildrenOrErr returns the Children value or an error if the edge
// was not loaded in eager-loading.
func (e TicketEdges) ChildrenOrErr() ([]*Ticket, error) {
	if e.loadedTypes[2] {
		return e.Children, nil
	}
	return nil, &NotLoadedError{edge: "children"}
}

// MessagesOrErr returns the Messages value or an error if the edge
// was not loaded in eager-loading.
func (e TicketEdges) MessagesOrErr() ([]*Message, error) {
	if e.loadedTypes[3] {
		return e.Messages, nil
	}
	return nil, &NotLoadedError{edge: "messages"}
}

// ExtractionsOrErr returns the Extractions value or an error if the edge
// was not loaded in eager-loading.
func (e TicketEdges) ExtractionsOrErr() ([]*Extraction, error) {
	if e.loadedTypes[4] {
		return e.Extractions, nil
	}
	return nil, &NotLoadedError{edge: "extractions"}
}

// SessionsOrErr returns the Sessions value or an error if the edge
// was not loaded in eager-loading.
func (e TicketEdges) SessionsOrErr() ([]*ExecutionSession, error) {
	if e.loadedTypes[5] {
		return e.Sessions, nil
	}
	return nil, &NotLoadedError{edge: "sessions"}
}

// PermissionsOrErr returns the Permissions value or an error if the edge
// was not loaded in eager-loading.
func (e TicketEdges) PermissionsOrErr() ([]*ApprovedPermission, error) {
	if e.loadedTypes[6] {
		return e.Permissions, nil
	}
	return nil, &NotLoadedError{edge: "permissions"}
}

// DependenciesOrErr returns the Dependencies value or an error if the edge
// was not loaded in eager-loading.
func (e TicketEdges) DependenciesOrErr() ([]*TicketDependency, error) {
	if e.loadedTypes[7] {
		return e.Dependencies, nil
	}
	return nil, &NotLoadedError{edge: "dependencies"}
}

// DependentsOrErr returns the Dependents value or an error if the edge
// was not loaded in eager-loading.
func (e TicketEdges) DependentsOrErr() ([]*TicketDependency, error) {
	if e.loadedTypes[8] {
		return e.Dependents, nil
	}
	return nil, &NotLoadedError{edge: "dependents"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Ticket) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case ticket.FieldIsForced, ticket.FieldDepsIncludeAwaiting:
			values[i] = new(sql.NullBool)
		case ticket.FieldID, ticket.FieldProjectID, ticket.FieldSequenceOrder, ticket.FieldParentTicketID, ticket.FieldMaxRetries, ticket.FieldRetryCount, ticket.FieldReviewAttempts, ticket.FieldUnsummarizedTokens, ticket.FieldTotalTokens:
			values[i] = new(sql.NullInt64)
		case ticket.FieldTicketNumber, ticket.FieldTitle, ticket.FieldDescription, ticket.FieldTicketType, ticket.FieldPriority, ticket.FieldExecutionMode, ticket.FieldModelTier, ticket.FieldAwaitingReason, ticket.FieldStatus, ticket.FieldResultSummary:
			values[i] = new(sql.NullString)
		case ticket.FieldRetryAfter, ticket.FieldReviewScheduledAt, ticket.FieldCreatedAt, ticket.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Ticket fields.
func (_m *Ticket) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case ticket.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case ticket.FieldProjectID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = int(value.Int64)
			}
		case ticket.FieldTicketNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ticket_number", values[i])
			} else if value.Valid {
				_m.TicketNumber = value.String
			}
		case ticket.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case ticket.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case ticket.FieldTicketType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ticket_type", values[i])
			} else if value.Valid {
				_m.TicketType = ticket.TicketType(value.String)
			}
		case ticket.FieldPriority:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = ticket.Priority(value.String)
			}
		case ticket.FieldSequenceOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence_order", values[i])
			} else if value.Valid {
				_m.SequenceOrder = new(int)
				*_m.SequenceOrder = int(value.Int64)
			}
		case ticket.FieldParentTicketID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field parent_ticket_id", values[i])
			} else if value.Valid {
				_m.ParentTicketID = new(int)
				*_m.ParentTicketID = int(value.Int64)
			}
		case ticket.FieldIsForced:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_forced", values[i])
			} else if value.Valid {
				_m.IsForced = value.Bool
			}
		case ticket.FieldExecutionMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field execution_mode", values[i])
			} else if value.Valid {
				_m.ExecutionMode = new(ticket.ExecutionMode)
				*_m.ExecutionMode = ticket.ExecutionMode(value.String)
			}
		case ticket.FieldDepsIncludeAwaiting:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field deps_include_awaiting", values[i])
			} else if value.Valid {
				_m.DepsIncludeAwaiting = value.Bool
			}
		case ticket.FieldModelTier:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model_tier", values[i])
			} else if value.Valid {
				_m.ModelTier = new(ticket.ModelTier)
				*_m.ModelTier = ticket.ModelTier(value.String)
			}
		case ticket.FieldMaxRetries:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_retries", values[i])
			} else if value.Valid {
				_m.MaxRetries = int(value.Int64)
			}
		case ticket.FieldRetryCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field retry_count", values[i])
			} else if value.Valid {
				_m.RetryCount = int(value.Int64)
			}
		case ticket.FieldRetryAfter:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field retry_after", values[i])
			} else if value.Valid {
				_m.RetryAfter = new(time.Time)
				*_m.RetryAfter = value.Time
			}
		case ticket.FieldReviewScheduledAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field review_scheduled_at", values[i])
			} else if value.Valid {
				_m.ReviewScheduledAt = new(time.Time)
				*_m.ReviewScheduledAt = value.Time
			}
		case ticket.FieldReviewAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field review_attempts", values[i])
			} else if value.Valid {
				_m.ReviewAttempts = int(value.Int64)
			}
		case ticket.FieldAwaitingReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field awaiting_reason", values[i])
			} else if value.Valid {
				_m.AwaitingReason = new(ticket.AwaitingReason)
				*_m.AwaitingReason = ticket.AwaitingReason(value.String)
			}
		case ticket.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = ticket.Status(value.String)
			}
		case ticket.FieldResultSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field result_summary", values[i])
			} else if value.Valid {
				_m.ResultSummary = new(string)
				*_m.ResultSummary = value.String
			}
		case ticket.FieldUnsummarizedTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field unsummarized_tokens", values[i])
			} else if value.Valid {
				_m.UnsummarizedTokens = int(value.Int64)
			}
		case ticket.FieldTotalTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_tokens", values[i])
			} else if value.Valid {
				_m.TotalTokens = value.Int64
			}
		case ticket.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case ticket.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Ticket.
// This includes values selected through modifiers, order, etc.
func (_m *Ticket) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProject queries the "project" edge of the Ticket entity.
func (_m *Ticket) QueryProject() *ProjectQuery {
	return NewTicketClient(_m.config).QueryProject(_m)
}

// QueryParent queries the "parent" edge of the Ticket entity.
func (_m *Ticket) QueryParent() *TicketQuery {
	return NewTicketClient(_m.config).QueryParent(_m)
}

// QueryChildren queries the "children" edge of the Ticket entity.
func (_m *Ticket) QueryChildren() *TicketQuery {
	return NewTicketClient(_m.config).QueryChildren(_m)
}

// QueryMessages queries the "messages" edge of the Ticket entity.
func (_m *Ticket) QueryMessages() *MessageQuery {
	return NewTicketClient(_m.config).QueryMessages(_m)
}

// QueryExtractions queries the "extractions" edge of the Ticket entity.
func (_m *Ticket) QueryExtractions() *ExtractionQuery {
	return NewTicketClient(_m.config).QueryExtractions(_m)
}

// QuerySessions queries the "sessions" edge of the Ticket entity.
func (_m *Ticket) QuerySessions() *ExecutionSessionQuery {
	return NewTicketClient(_m.config).QuerySessions(_m)
}

// QueryPermissions queries the "permissions" edge of the Ticket entity.
func (_m *Ticket) QueryPermissions() *ApprovedPermissionQuery {
	return NewTicketClient(_m.config).QueryPermissions(_m)
}

// QueryDependencies queries the "dependencies" edge of the Ticket entity.
func (_m *Ticket) QueryDependencies() *TicketDependencyQuery {
	return NewTicketClient(_m.config).QueryDependencies(_m)
}

// QueryDependents queries the "dependents" edge of the Ticket entity.
func (_m *Ticket) QueryDependents() *TicketDependencyQuery {
	return NewTicketClient(_m.config).QueryDependents(_m)
}

// Update returns a builder for updating this Ticket.
// Note that you need to call Ticket.Unwrap() before calling this method if this Ticket
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Ticket) Update() *TicketUpdateOne {
	return NewTicketClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Ticket entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Ticket) Unwrap() *Ticket {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Ticket is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Ticket) String() string {
	var builder strings.Builder
	builder.WriteString("Ticket(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("project_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProjectID))
	builder.WriteString(", ")
	builder.WriteString("ticket_number=")
	builder.WriteString(_m.TicketNumber)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("ticket_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.TicketType))
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(fmt.Sprintf("%v", _m.Priority))
	builder.WriteString(", ")
	if v := _m.SequenceOrder; v != nil {
		builder.WriteString("sequence_order=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ParentTicketID; v != nil {
		builder.WriteString("parent_ticket_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("is_forced=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsForced))
	builder.WriteString(", ")
	if v := _m.ExecutionMode; v != nil {
		builder.WriteString("execution_mode=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("deps_include_awaiting=")
	builder.WriteString(fmt.Sprintf("%v", _m.DepsIncludeAwaiting))
	builder.WriteString(", ")
	if v := _m.ModelTier; v != nil {
		builder.WriteString("model_tier=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("max_retries=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxRetries))
	builder.WriteString(", ")
	builder.WriteString("retry_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RetryCount))
	builder.WriteString(", ")
	if v := _m.RetryAfter; v != nil {
		builder.WriteString("retry_after=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ReviewScheduledAt; v != nil {
		builder.WriteString("review_scheduled_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("review_attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReviewAttempts))
	builder.WriteString(", ")
	if v := _m.AwaitingReason; v != nil {
		builder.WriteString("awaiting_reason=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.ResultSummary; v != nil {
		builder.WriteString("result_summary=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("unsummarized_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.UnsummarizedTokens))
	builder.WriteString(", ")
	builder.WriteString("total_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalTokens))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Tickets is a parsable slice of Ticket.
type Tickets []*Ticket

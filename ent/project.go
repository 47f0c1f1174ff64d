// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fleetworks/conductor/ent/project"
)

// Project is the model entity for the Project schema.
type Project struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Stable uppercase short tag, e.g. SHOP
	Code string `json:"code,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Preferred agent working directory
	WebPath *string `json:"web_path,omitempty"`
	// Fallback agent working directory
	AppPath *string `json:"app_path,omitempty"`
	// DefaultExecutionMode holds the value of the "default_execution_mode" field.
	DefaultExecutionMode project.DefaultExecutionMode `json:"default_execution_mode,omitempty"`
	// ModelTier holds the value of the "model_tier" field.
	ModelTier project.ModelTier `json:"model_tier,omitempty"`
	// GitEnabled holds the value of the "git_enabled" field.
	GitEnabled bool `json:"git_enabled,omitempty"`
	// Archived holds the value of the "archived" field.
	Archived bool `json:"archived,omitempty"`
	// Accumulated decisions, gotchas, conventions (grown by summarization)
	Knowledge string `json:"knowledge,omitempty"`
	// Project structure summary injected into prompts
	MapContent string `json:"map_content,omitempty"`
	// MapGeneratedAt holds the value of the "map_generated_at" field.
	MapGeneratedAt *time.Time `json:"map_generated_at,omitempty"`
	// Monotonic counter for {CODE}-NNNN ticket numbers
	NextTicketSeq int `json:"next_ticket_seq,omitempty"`
	// TotalInputTokens holds the value of the "total_input_tokens" field.
	TotalInputTokens int64 `json:"total_input_tokens,omitempty"`
	// TotalOutputTokens holds the value of the "total_output_tokens" field.
	TotalOutputTokens int64 `json:"total_output_tokens,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ProjectQuery when eager-loading is set.
	Edges        ProjectEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ProjectEdges holds the relations/edges for other nodes in the graph.
type ProjectEdges struct {
	// Tickets holds the value of the tickets edge.
	Tickets []*Ticket `json:"tickets,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TicketsOrErr returns the Tickets value or an error if the edge
// was not loaded in eager-loading.
func (e ProjectEdges) TicketsOrErr() ([]*Ticket, error) {
	if e.loadedTypes[0] {
		return e.Tickets, nil
	}
	return nil, &NotLoadedError{edge: "tickets"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Project) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case project.FieldGitEnabled, project.FieldArchived:
			values[i] = new(sql.NullBool)
		case project.FieldID, project.FieldNextTicketSeq, project.FieldTotalInputTokens, project.FieldTotalOutputTokens:
			values[i] = new(sql.NullInt64)
		case project.FieldCode, project.FieldName, project.FieldWebPath, project.FieldAppPath, project.FieldDefaultExecutionMode, project.FieldModelTier, project.FieldKnowledge, project.FieldMapContent:
			values[i] = new(sql.NullString)
		case project.FieldMapGeneratedAt, project.FieldCreatedAt, project.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Project fields.
func (_m *Project) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case project.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case project.FieldCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field code", values[i])
			} else if value.Valid {
				_m.Code = value.String
			}
		case project.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case project.FieldWebPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field web_path", values[i])
			} else if value.Valid {
				_m.WebPath = new(string)
				*_m.WebPath = value.String
			}
		case project.FieldAppPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field app_path", values[i])
			} else if value.Valid {
				_m.AppPath = new(string)
				*_m.AppPath = value.String
			}
		case project.FieldDefaultExecutionMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field default_execution_mode", values[i])
			} else if value.Valid {
				_m.DefaultExecutionMode = project.DefaultExecutionMode(value.String)
			}
		case project.FieldModelTier:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model_tier", values[i])
			} else if value.Valid {
				_m.ModelTier = project.ModelTier(value.String)
			}
		case project.FieldGitEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field git_enabled", values[i])
			} else if value.Valid {
				_m.GitEnabled = value.Bool
			}
		case project.FieldArchived:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field archived", values[i])
			} else if value.Valid {
				_m.Archived = value.Bool
			}
		case project.FieldKnowledge:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field knowledge", values[i])
			} else if value.Valid {
				_m.Knowledge = value.String
			}
		case project.FieldMapContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field map_content", values[i])
			} else if value.Valid {
				_m.MapContent = value.String
			}
		case project.FieldMapGeneratedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field map_generated_at", values[i])
			} else if value.Valid {
				_m.MapGeneratedAt = new(time.Time)
				*_m.MapGeneratedAt = value.Time
			}
		case project.FieldNextTicketSeq:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field next_ticket_seq", values[i])
			} else if value.Valid {
				_m.NextTicketSeq = int(value.Int64)
			}
		case project.FieldTotalInputTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_input_tokens", values[i])
			} else if value.Valid {
				_m.TotalInputTokens = value.Int64
			}
		case project.FieldTotalOutputTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_output_tokens", values[i])
			} else if value.Valid {
				_m.TotalOutputTokens = value.Int64
			}
		case project.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case project.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Project.
// This includes values selected through modifiers, order, etc.
func (_m *Project) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTickets queries the "tickets" edge of the Project entity.
func (_m *Project) QueryTickets() *TicketQuery {
	return NewProjectClient(_m.config).QueryTickets(_m)
}

// Update returns a builder for updating this Project.
// Note that you need to call Project.Unwrap() before calling this method if this Project
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Project) Update() *ProjectUpdateOne {
	return NewProjectClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Project entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Project) Unwrap() *Project {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Project is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Project) String() string {
	var builder strings.Builder
	builder.WriteString("Project(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("code=")
	builder.WriteString(_m.Code)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	if v := _m.WebPath; v != nil {
		builder.WriteString("web_path=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.AppPath; v != nil {
		builder.WriteString("app_path=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("default_execution_mode=")
	builder.WriteString(fmt.Sprintf("%v", _m.DefaultExecutionMode))
	builder.WriteString(", ")
	builder.WriteString("model_tier=")
	builder.WriteString(fmt.Sprintf("%v", _m.ModelTier))
	builder.WriteString(", ")
	builder.WriteString("git_enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.GitEnabled))
	builder.WriteString(", ")
	builder.WriteString("archived=")
	builder.WriteString(fmt.Sprintf("%v", _m.Archived))
	builder.WriteString(", ")
	builder.WriteString("knowledge=")
	builder.WriteString(_m.Knowledge)
	builder.WriteString(", ")
	builder.WriteString("map_content=")
	builder.WriteString(_m.MapContent)
	builder.WriteString(", ")
	if v := _m.MapGeneratedAt; v != nil {
		builder.WriteString("map_generated_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("next_ticket_seq=")
	builder.WriteString(fmt.Sprintf("%v", _m.NextTicketSeq))
	builder.WriteString(", ")
	builder.WriteString("total_input_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalInputTokens))
	builder.WriteString(", ")
	builder.WriteString("total_output_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalOutputTokens))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Projects is a parsable slice of Project.
type Projects []*Project

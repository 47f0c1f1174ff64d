// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fleetworks/conductor/ent/extraction"
	"github.com/fleetworks/conductor/ent/ticket"
)

// Extraction is the model entity for the Extraction schema.
type Extraction struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// TicketID holds the value of the "ticket_id" field.
	TicketID int `json:"ticket_id,omitempty"`
	// FromMessageID holds the value of the "from_message_id" field.
	FromMessageID int `json:"from_message_id,omitempty"`
	// ToMessageID holds the value of the "to_message_id" field.
	ToMessageID int `json:"to_message_id,omitempty"`
	// Decisions holds the value of the "decisions" field.
	Decisions string `json:"decisions,omitempty"`
	// ProblemsSolved holds the value of the "problems_solved" field.
	ProblemsSolved string `json:"problems_solved,omitempty"`
	// FilesModified holds the value of the "files_modified" field.
	FilesModified string `json:"files_modified,omitempty"`
	// TestsStatus holds the value of the "tests_status" field.
	TestsStatus string `json:"tests_status,omitempty"`
	// ErrorPatterns holds the value of the "error_patterns" field.
	ErrorPatterns string `json:"error_patterns,omitempty"`
	// ImportantNotes holds the value of the "important_notes" field.
	ImportantNotes string `json:"important_notes,omitempty"`
	// TokensBefore holds the value of the "tokens_before" field.
	TokensBefore int `json:"tokens_before,omitempty"`
	// TokensAfter holds the value of the "tokens_after" field.
	TokensAfter int `json:"tokens_after,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ExtractionQuery when eager-loading is set.
	Edges        ExtractionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ExtractionEdges holds the relations/edges for other nodes in the graph.
type ExtractionEdges struct {
	// Ticket holds the value of the ticket edge.
	Ticket *Ticket `json:"ticket,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TicketOrErr returns the Ticket value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExtractionEdges) TicketOrErr() (*Ticket, error) {
	if e.Ticket != nil {
		return e.Ticket, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: ticket.Label}
	}
	return nil, &NotLoadedError{edge: "ticket"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Extraction) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case extraction.FieldID, extraction.FieldTicketID, extraction.FieldFromMessageID, extraction.FieldToMessageID, extraction.FieldTokensBefore, extraction.FieldTokensAfter:
			values[i] = new(sql.NullInt64)
		case extraction.FieldDecisions, extraction.FieldProblemsSolved, extraction.FieldFilesModified, extraction.FieldTestsStatus, extraction.FieldErrorPatterns, extraction.FieldImportantNotes:
			values[i] = new(sql.NullString)
		case extraction.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Extraction fields.
func (_m *Extraction) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case extraction.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case extraction.FieldTicketID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field ticket_id", values[i])
			} else if value.Valid {
				_m.TicketID = int(value.Int64)
			}
		case extraction.FieldFromMessageID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field from_message_id", values[i])
			} else if value.Valid {
				_m.FromMessageID = int(value.Int64)
			}
		case extraction.FieldToMessageID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field to_message_id", values[i])
			} else if value.Valid {
				_m.ToMessageID = int(value.Int64)
			}
		case extraction.FieldDecisions:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field decisions", values[i])
			} else if value.Valid {
				_m.Decisions = value.String
			}
		case extraction.FieldProblemsSolved:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field problems_solved", values[i])
			} else if value.Valid {
				_m.ProblemsSolved = value.String
			}
		case extraction.FieldFilesModified:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field files_modified", values[i])
			} else if value.Valid {
				_m.FilesModified = value.String
			}
		case extraction.FieldTestsStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tests_status", values[i])
			} else if value.Valid {
				_m.TestsStatus = value.String
			}
		case extraction.FieldErrorPatterns:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_patterns", values[i])
			} else if value.Valid {
				_m.ErrorPatterns = value.String
			}
		case extraction.FieldImportantNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field important_notes", values[i])
			} else if value.Valid {
				_m.ImportantNotes = value.String
			}
		case extraction.FieldTokensBefore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tokens_before", values[i])
			} else if value.Valid {
				_m.TokensBefore = int(value.Int64)
			}
		case extraction.FieldTokensAfter:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tokens_after", values[i])
			} else if value.Valid {
				_m.TokensAfter = int(value.Int64)
			}
		case extraction.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Extraction.
// This includes values selected through modifiers, order, etc.
func (_m *Extraction) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTicket queries the "ticket" edge of the Extraction entity.
func (_m *Extraction) QueryTicket() *TicketQuery {
	return NewExtractionClient(_m.config).QueryTicket(_m)
}

// Update returns a builder for updating this Extraction.
// Note that you need to call Extraction.Unwrap() before calling this method if this Extraction
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Extraction) Update() *ExtractionUpdateOne {
	return NewExtractionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Extraction entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Extraction) Unwrap() *Extraction {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Extraction is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Extraction) String() string {
	var builder strings.Builder
	builder.WriteString("Extraction(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("ticket_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TicketID))
	builder.WriteString(", ")
	builder.WriteString("from_message_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.FromMessageID))
	builder.WriteString(", ")
	builder.WriteString("to_message_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ToMessageID))
	builder.WriteString(", ")
	builder.WriteString("decisions=")
	builder.WriteString(_m.Decisions)
	builder.WriteString(", ")
	builder.WriteString("problems_solved=")
	builder.WriteString(_m.ProblemsSolved)
	builder.WriteString(", ")
	builder.WriteString("files_modified=")
	builder.WriteString(_m.FilesModified)
	builder.WriteString(", ")
	builder.WriteString("tests_status=")
	builder.WriteString(_m.TestsStatus)
	builder.WriteString(", ")
	builder.WriteString("error_patterns=")
	builder.WriteString(_m.ErrorPatterns)
	builder.WriteString(", ")
	builder.WriteString("important_notes=")
	builder.WriteString(_m.ImportantNotes)
	builder.WriteString(", ")
	builder.WriteString("tokens_before=")
	builder.WriteString(fmt.Sprintf("%v", _m.TokensBefore))
	builder.WriteString(", ")
	builder.WriteString("tokens_after=")
	builder.WriteString(fmt.Sprintf("%v", _m.TokensAfter))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Extractions is a parsable slice of Extraction.
type Extractions []*Extraction

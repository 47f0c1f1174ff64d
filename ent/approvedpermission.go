// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fleetworks/conductor/ent/approvedpermission"
	"github.com/fleetworks/conductor/ent/ticket"
)

// ApprovedPermission is the model entity for the ApprovedPermission schema.
type ApprovedPermission struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// TicketID holds the value of the "ticket_id" field.
	TicketID int `json:"ticket_id,omitempty"`
	// Tool holds the value of the "tool" field.
	Tool string `json:"tool,omitempty"`
	// Glob-ish pattern, e.g. "npm *" derived from "npm install left-pad"
	Pattern string `json:"pattern,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ApprovedPermissionQuery when eager-loading is set.
	Edges        ApprovedPermissionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ApprovedPermissionEdges holds the relations/edges for other nodes in the graph.
type ApprovedPermissionEdges struct {
	// Ticket holds the value of the ticket edge.
	Ticket *Ticket `json:"ticket,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TicketOrErr returns the Ticket value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ApprovedPermissionEdges) TicketOrErr() (*Ticket, error) {
	if e.Ticket != nil {
		return e.Ticket, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: ticket.Label}
	}
	return nil, &NotLoadedError{edge: "ticket"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ApprovedPermission) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case approvedpermission.FieldID, approvedpermission.FieldTicketID:
			values[i] = new(sql.NullInt64)
		case approvedpermission.FieldTool, approvedpermission.FieldPattern:
			values[i] = new(sql.NullString)
		case approvedpermission.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ApprovedPermission fields.
func (_m *ApprovedPermission) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case approvedpermission.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case approvedpermission.FieldTicketID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field ticket_id", values[i])
			} else if value.Valid {
				_m.TicketID = int(value.Int64)
			}
		case approvedpermission.FieldTool:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tool", values[i])
			} else if value.Valid {
				_m.Tool = value.String
			}
		case approvedpermission.FieldPattern:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pattern", values[i])
			} else if value.Valid {
				_m.Pattern = value.String
			}
		case approvedpermission.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ApprovedPermission.
// This includes values selected through modifiers, order, etc.
func (_m *ApprovedPermission) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTicket queries the "ticket" edge of the ApprovedPermission entity.
func (_m *ApprovedPermission) QueryTicket() *TicketQuery {
	return NewApprovedPermissionClient(_m.config).QueryTicket(_m)
}

// Update returns a builder for updating this ApprovedPermission.
// Note that you need to call ApprovedPermission.Unwrap() before calling this method if this ApprovedPermission
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ApprovedPermission) Update() *ApprovedPermissionUpdateOne {
	return NewApprovedPermissionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ApprovedPermission entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ApprovedPermission) Unwrap() *ApprovedPermission {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ApprovedPermission is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ApprovedPermission) String() string {
	var builder strings.Builder
	builder.WriteString("ApprovedPermission(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("ticket_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TicketID))
	builder.WriteString(", ")
	builder.WriteString("tool=")
	builder.WriteString(_m.Tool)
	builder.WriteString(", ")
	builder.WriteString("pattern=")
	builder.WriteString(_m.Pattern)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ApprovedPermissions is a parsable slice of ApprovedPermission.
type ApprovedPermissions []*ApprovedPermission

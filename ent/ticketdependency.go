// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fleetworks/conductor/ent/ticket"
	"github.com/fleetworks/conductor/ent/ticketdependency"
)

// TicketDependency is the model entity for the TicketDependency schema.
type TicketDependency struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// TicketID holds the value of the "ticket_id" field.
	TicketID int `json:"ticket_id,omitempty"`
	// DependsOnTicketID holds the value of the "depends_on_ticket_id" field.
	DependsOnTicketID int `json:"depends_on_ticket_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TicketDependencyQuery when eager-loading is set.
	Edges        TicketDependencyEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TicketDependencyEdges holds the relations/edges for other nodes in the graph.
type TicketDependencyEdges struct {
	// Ticket holds the value of the ticket edge.
	Ticket *Ticket `json:"ticket,omitempty"`
	// DependsOn holds the value of the depends_on edge.
	DependsOn *Ticket `json:"depends_on,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// TicketOrErr returns the Ticket value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TicketDependencyEdges) TicketOrErr() (*Ticket, error) {
	if e.Ticket != nil {
		return e.Ticket, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: ticket.Label}
	}
	return nil, &NotLoadedError{edge: "ticket"}
}

// DependsOnOrErr returns the DependsOn value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TicketDependencyEdges) DependsOnOrErr() (*Ticket, error) {
	if e.DependsOn != nil {
		return e.DependsOn, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: ticket.Label}
	}
	return nil, &NotLoadedError{edge: "depends_on"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TicketDependency) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case ticketdependency.FieldID, ticketdependency.FieldTicketID, ticketdependency.FieldDependsOnTicketID:
			values[i] = new(sql.NullInt64)
		case ticketdependency.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TicketDependency fields.
func (_m *TicketDependency) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case ticketdependency.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case ticketdependency.FieldTicketID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field ticket_id", values[i])
			} else if value.Valid {
				_m.TicketID = int(value.Int64)
			}
		case ticketdependency.FieldDependsOnTicketID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field depends_on_ticket_id", values[i])
			} else if value.Valid {
				_m.DependsOnTicketID = int(value.Int64)
			}
		case ticketdependency.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the TicketDependency.
// This includes values selected through modifiers, order, etc.
func (_m *TicketDependency) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTicket queries the "ticket" edge of the TicketDependency entity.
func (_m *TicketDependency) QueryTicket() *TicketQuery {
	return NewTicketDependencyClient(_m.config).QueryTicket(_m)
}

// QueryDependsOn queries the "depends_on" edge of the TicketDependency entity.
func (_m *TicketDependency) QueryDependsOn() *TicketQuery {
	return NewTicketDependencyClient(_m.config).QueryDependsOn(_m)
}

// Update returns a builder for updating this TicketDependency.
// Note that you need to call TicketDependency.Unwrap() before calling this method if this TicketDependency
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TicketDependency) Update() *TicketDependencyUpdateOne {
	return NewTicketDependencyClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TicketDependency entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TicketDependency) Unwrap() *TicketDependency {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TicketDependency is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TicketDependency) String() string {
	var builder strings.Builder
	builder.WriteString("TicketDependency(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("ticket_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TicketID))
	builder.WriteString(", ")
	builder.WriteString("depends_on_ticket_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DependsOnTicketID))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TicketDependencies is a parsable slice of TicketDependency.
type TicketDependencies []*TicketDependency

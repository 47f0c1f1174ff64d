// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fleetworks/conductor/ent/daemonstatus"
)

// DaemonStatus is the model entity for the DaemonStatus schema.
type DaemonStatus struct {
	config `json:"-"`
	// ID of the ent.
	// Always 1; upserted by the heartbeat loop
	ID int `json:"id,omitempty"`
	// Status holds the value of the "status" field.
	Status daemonstatus.Status `json:"status,omitempty"`
	// ActiveTickets holds the value of the "active_tickets" field.
	ActiveTickets int `json:"active_tickets,omitempty"`
	// Ticket numbers currently in flight
	CurrentTickets []string `json:"current_tickets,omitempty"`
	// LastHeartbeatAt holds the value of the "last_heartbeat_at" field.
	LastHeartbeatAt time.Time `json:"last_heartbeat_at,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// Pid holds the value of the "pid" field.
	Pid int `json:"pid,omitempty"`
	// Version holds the value of the "version" field.
	Version      string `json:"version,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DaemonStatus) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case daemonstatus.FieldCurrentTickets:
			values[i] = new([]byte)
		case daemonstatus.FieldID, daemonstatus.FieldActiveTickets, daemonstatus.FieldPid:
			values[i] = new(sql.NullInt64)
		case daemonstatus.FieldStatus, daemonstatus.FieldVersion:
			values[i] = new(sql.NullString)
		case daemonstatus.FieldLastHeartbeatAt, daemonstatus.FieldStartedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DaemonStatus fields.
func (_m *DaemonStatus) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case daemonstatus.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case daemonstatus.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = daemonstatus.Status(value.String)
			}
		case daemonstatus.FieldActiveTickets:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field active_tickets", values[i])
			} else if value.Valid {
				_m.ActiveTickets = int(value.Int64)
			}
		case daemonstatus.FieldCurrentTickets:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field current_tickets", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CurrentTickets); err != nil {
					return fmt.Errorf("unmarshal field current_tickets: %w", err)
				}
			}
		case daemonstatus.FieldLastHeartbeatAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_heartbeat_at", values[i])
			} else if value.Valid {
				_m.LastHeartbeatAt = value.Time
			}
		case daemonstatus.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case daemonstatus.FieldPid:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field pid", values[i])
			} else if value.Valid {
				_m.Pid = int(value.Int64)
			}
		case daemonstatus.FieldVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DaemonStatus.
// This includes values selected through modifiers, order, etc.
func (_m *DaemonStatus) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DaemonStatus.
// Note that you need to call DaemonStatus.Unwrap() before calling this method if this DaemonStatus
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DaemonStatus) Update() *DaemonStatusUpdateOne {
	return NewDaemonStatusClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DaemonStatus entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DaemonStatus) Unwrap() *DaemonStatus {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DaemonStatus is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DaemonStatus) String() string {
	var builder strings.Builder
	builder.WriteString("DaemonStatus(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("active_tickets=")
	builder.WriteString(fmt.Sprintf("%v", _m.ActiveTickets))
	builder.WriteString(", ")
	builder.WriteString("current_tickets=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentTickets))
	builder.WriteString(", ")
	builder.WriteString("last_heartbeat_at=")
	builder.WriteString(_m.LastHeartbeatAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("pid=")
	builder.WriteString(fmt.Sprintf("%v", _m.Pid))
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(_m.Version)
	builder.WriteByte(')')
	return builder.String()
}

// DaemonStatusSlice is a parsable slice of DaemonStatus.
type DaemonStatusSlice []*DaemonStatus

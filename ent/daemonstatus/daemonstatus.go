// Code generated by ent, DO NOT EDIT.

package daemonstatus

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the daemonstatus type in the database.
	Label = "daemon_status"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldActiveTickets holds the string denoting the active_tickets field in the database.
	FieldActiveTickets = "active_tickets"
	// FieldCurrentTickets holds the string denoting the current_tickets field in the database.
	FieldCurrentTickets = "current_tickets"
	// FieldLastHeartbeatAt holds the string denoting the last_heartbeat_at field in the database.
	FieldLastHeartbeatAt = "last_heartbeat_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldPid holds the string denoting the pid field in the database.
	FieldPid = "pid"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// Table holds the table name of the daemonstatus in the database.
	Table = "daemon_status"
)

// Columns holds all SQL columns for daemonstatus fields.
var Columns = []string{
	FieldID,
	FieldStatus,
	FieldActiveTickets,
	FieldCurrentTickets,
	FieldLastHeartbeatAt,
	FieldStartedAt,
	FieldPid,
	FieldVersion,
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
	// DefaultActiveTickets holds the default value on creation for the "active_tickets" field.
	DefaultActiveTickets int
	// DefaultLastHeartbeatAt holds the default value on creation for the "last_heartbeat_at" field.
	DefaultLastHeartbeatAt func() time.Time
	// UpdateDefaultLastHeartbeatAt holds the default value on update for the "last_heartbeat_at" field.
	UpdateDefaultLastHeartbeatAt func() time.Time
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
	// DefaultPid holds the default value on creation for the "pid" field.
	DefaultPid int
)

// Status defines the type for the "status" enum field.
type Status string

// StatusStarting is the default value of the Status enum.
const DefaultStatus = StatusStarting

// Status values.
const (
	StatusStarting Status = "starting"
	StatusRunning  Status = "running"
	StatusStopping Status = "stopping"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusStarting, StatusRunning, StatusStopping:
		return nil
	default:
		return fmt.Errorf("daemonstatus: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the DaemonStatus queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByActiveTickets orders the results by the active_tickets field.
func ByActiveTickets(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActiveTickets, opts...).ToFunc()
}

// ByLastHeartbeatAt orders the results by the last_heartbeat_at field.
func ByLastHeartbeatAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastHeartbeatAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByPid orders the results by the pid field.
func ByPid(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPid, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ApprovedPermission is the predicate function for approvedpermission builders.
type ApprovedPermission func(*sql.Selector)

// DaemonStatus is the predicate function for daemonstatus builders.
type DaemonStatus func(*sql.Selector)

// ExecutionSession is the predicate function for executionsession builders.
type ExecutionSession func(*sql.Selector)

// Extraction is the predicate function for extraction builders.
type Extraction func(*sql.Selector)

// Message is the predicate function for message builders.
type Message func(*sql.Selector)

// Project is the predicate function for project builders.
type Project func(*sql.Selector)

// Ticket is the predicate function for ticket builders.
type Ticket func(*sql.Selector)

// TicketDependency is the predicate function for ticketdependency builders.
type TicketDependency func(*sql.Selector)

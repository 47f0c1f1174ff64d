// Code generated by ent, DO NOT EDIT.

package daemonstatus

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/fleetworks/conductor/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.DaemonStatus {
	return predicate.DaemonStatus(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.DaemonStatus {
	return predicate.DaemonStatus(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.DaemonStatus {
	return predicate.DaemonStatus(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.DaemonStatus {
	return predicate.DaemonStatus(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.DaemonStatus {
	return predicate.DaemonStatus(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.DaemonStatus {
	return predicate.DaemonStatus(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.DaemonStatus {
	return predicate.DaemonStatus(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.DaemonStatus {
	return predicate.DaemonStatus(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.DaemonStatus {
	return predicate.DaemonStatus(sql.FieldLTE(FieldID, id))
}

// ActiveTickets applies equality check predicate on the "active_tickets" field. It's identical to ActiveTicketsEQ.
func ActiveTickets(v int) predicate.DaemonStatus {
	return predicate.DaemonStatus(sql.FieldEQ(FieldActiveTickets, v))
}

// LastHeartbeatAt applies equality check predicate on the "last_heartbeat_at" field. It's identical to LastHeartbeatAtEQ.
func LastHeartbeatAt(v time.Time) predicate.DaemonStatus {
	return predicate.DaemonStatus(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.DaemonStatus {
	return predicate.DaemonStatus(sql.FieldEQ(FieldStartedAt, v))
}

// Pid applies equality check predicate on the "pid" field. It's identical to PidEQ.
func Pid(v int) predicate.DaemonStatus {
	return predicate.DaemonStatus(sql.FieldEQ(FieldPid, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v string) predicate.DaemonStatus {
	return predicate.DaemonStatus(sql.FieldEQ(FieldVersion, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.DaemonStatus {
	return predicate.DaemonStatus(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.DaemonStatus {
	return predicate.DaemonStatus(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.DaemonStatus {
	return predicate.DaemonStatus(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.DaemonStatus {
	return predicate.DaemonStatus(sql.FieldNotIn(FieldStatus, vs...))
}

// ActiveTicketsEQ applies the EQ predicate on the "active_tickets" field.
func ActiveTicketsEQ(v int) predicate.DaemonStatus {
	return predicate.DaemonStatus(sql.FieldEQ(FieldActiveTickets, v))
}

// ActiveTicketsNEQ applies the NEQ predicate on the "active_tickets" field.
func ActiveTicketsNEQ(v int) predicate.DaemonStatus {
	return predicate.DaemonStatus(sql.FieldNEQ(FieldActiveTickets, v))
}

// ActiveTicketsIn applies the In predicate on the "active_tickets" field.
func ActiveTicketsIn(vs ...int) predicate.DaemonStatus {
	return predicate.DaemonStatus(sql.FieldIn(FieldActiveTickets, vs...))
}

// ActiveTicketsNotIn applies the NotIn predicate on the "active_tickets" field.
func ActiveTicketsNotIn(vs ...int) predicate.DaemonStatus {
	return predicate.DaemonStatus(sql.FieldNotIn(FieldActiveTickets, vs...))
}

// ActiveTicketsGT applies the GT predicate on the "active_tickets" field.
func ActiveTicketsGT(v int) predicate.DaemonStatus {
	return predicate.DaemonStatus(sql.FieldGT(FieldActiveTickets, v))
}

// ActiveTicketsGTE applies the GTE predicate on the "active_tickets" field.
func ActiveTicketsGTE(v int) predicate.DaemonStatus {
	return predicate.DaemonStatus(sql.FieldGTE(FieldActiveTickets, v))
}

// ActiveTicketsLT applies the LT predicate on the "active_tickets" field.
func ActiveTicketsLT(v int) predicate.DaemonStatus {
	return predicate.DaemonStatus(sql.FieldLT(FieldActiveTickets, v))
}

// ActiveTicketsLTE applies the LTE predicate on the "active_tickets" field.
func ActiveTicketsLTE(v int) predicate.DaemonStatus {
	return predicate.DaemonStatus(sql.FieldLTE(FieldActiveTickets, v))
}

// CurrentTicketsIsNil applies the IsNil predicate on the "current_tickets" field.
func CurrentTicketsIsNil() predicate.DaemonStatus {
	return predicate.DaemonStatus(sql.FieldIsNull(FieldCurrentTickets))
}

// CurrentTicketsNotNil applies the NotNil predicate on the "current_tickets" field.
func CurrentTicketsNotNil() predicate.DaemonStatus {
	return predicate.DaemonStatus(sql.FieldNotNull(FieldCurrentTickets))
}

// LastHeartbeatAtEQ applies the EQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtEQ(v time.Time) predicate.DaemonStatus {
	return predicate.DaemonStatus(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtNEQ applies the NEQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNEQ(v time.Time) predicate.DaemonStatus {
	return predicate.DaemonStatus(sql.FieldNEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIn applies the In predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIn(vs ...time.Time) predicate.DaemonStatus {
	return predicate.DaemonStatus(sql.FieldIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtNotIn applies the NotIn predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotIn(vs ...time.Time) predicate.DaemonStatus {
	return predicate.DaemonStatus(sql.FieldNotIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtGT applies the GT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGT(v time.Time) predicate.DaemonStatus {
	return predicate.DaemonStatus(sql.FieldGT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtGTE applies the GTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGTE(v time.Time) predicate.DaemonStatus {
	return predicate.DaemonStatus(sql.FieldGTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLT applies the LT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLT(v time.Time) predicate.DaemonStatus {
	return predicate.DaemonStatus(sql.FieldLT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLTE applies the LTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLTE(v time.Time) predicate.DaemonStatus {
	return predicate.DaemonStatus(sql.FieldLTE(FieldLastHeartbeatAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.DaemonStatus {
	return predicate.DaemonStatus(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.DaemonStatus {
	return predicate.DaemonStatus(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.DaemonStatus {
	return predicate.DaemonStatus(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.DaemonStatus {
	return predicate.DaemonStatus(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.DaemonStatus {
	return predicate.DaemonStatus(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.DaemonStatus {
	return predicate.DaemonStatus(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.DaemonStatus {
	return predicate.DaemonStatus(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.DaemonStatus {
	return predicate.DaemonStatus(sql.FieldLTE(FieldStartedAt, v))
}

// PidEQ applies the EQ predicate on the "pid" field.
func PidEQ(v int) predicate.DaemonStatus {
	return predicate.DaemonStatus(sql.FieldEQ(FieldPid, v))
}

// PidNEQ applies the NEQ predicate on the "pid" field.
func PidNEQ(v int) predicate.DaemonStatus {
	return predicate.DaemonStatus(sql.FieldNEQ(FieldPid, v))
}

// PidIn applies the In predicate on the "pid" field.
func PidIn(vs ...int) predicate.DaemonStatus {
	return predicate.DaemonStatus(sql.FieldIn(FieldPid, vs...))
}

// PidNotIn applies the NotIn predicate on the "pid" field.
func PidNotIn(vs ...int) predicate.DaemonStatus {
	return predicate.DaemonStatus(sql.FieldNotIn(FieldPid, vs...))
}

// PidGT applies the GT predicate on the "pid" field.
func PidGT(v int) predicate.DaemonStatus {
	return predicate.DaemonStatus(sql.FieldGT(FieldPid, v))
}

// PidGTE applies the GTE predicate on the "pid" field.
func PidGTE(v int) predicate.DaemonStatus {
	return predicate.DaemonStatus(sql.FieldGTE(FieldPid, v))
}

// PidLT applies the LT predicate on the "pid" field.
func PidLT(v int) predicate.DaemonStatus {
	return predicate.DaemonStatus(sql.FieldLT(FieldPid, v))
}

// PidLTE applies the LTE predicate on the "pid" field.
func PidLTE(v int) predicate.DaemonStatus {
	return predicate.DaemonStatus(sql.FieldLTE(FieldPid, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v string) predicate.DaemonStatus {
	return predicate.DaemonStatus(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v string) predicate.DaemonStatus {
	return predicate.DaemonStatus(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...string) predicate.DaemonStatus {
	return predicate.DaemonStatus(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...string) predicate.DaemonStatus {
	return predicate.DaemonStatus(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v string) predicate.DaemonStatus {
	return predicate.DaemonStatus(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v string) predicate.DaemonStatus {
	return predicate.DaemonStatus(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v string) predicate.DaemonStatus {
	return predicate.DaemonStatus(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v string) predicate.DaemonStatus {
	return predicate.DaemonStatus(sql.FieldLTE(FieldVersion, v))
}

// VersionContains applies the Contains predicate on the "version" field.
func VersionContains(v string) predicate.DaemonStatus {
	return predicate.DaemonStatus(sql.FieldContains(FieldVersion, v))
}

// VersionHasPrefix applies the HasPrefix predicate on the "version" field.
func VersionHasPrefix(v string) predicate.DaemonStatus {
	return predicate.DaemonStatus(sql.FieldHasPrefix(FieldVersion, v))
}

// VersionHasSuffix applies the HasSuffix predicate on the "version" field.
func VersionHasSuffix(v string) predicate.DaemonStatus {
	return predicate.DaemonStatus(sql.FieldHasSuffix(FieldVersion, v))
}

// VersionIsNil applies the IsNil predicate on the "version" field.
func VersionIsNil() predicate.DaemonStatus {
	return predicate.DaemonStatus(sql.FieldIsNull(FieldVersion))
}

// VersionNotNil applies the NotNil predicate on the "version" field.
func VersionNotNil() predicate.DaemonStatus {
	return predicate.DaemonStatus(sql.FieldNotNull(FieldVersion))
}

// VersionEqualFold applies the EqualFold predicate on the "version" field.
func VersionEqualFold(v string) predicate.DaemonStatus {
	return predicate.DaemonStatus(sql.FieldEqualFold(FieldVersion, v))
}

// VersionContainsFold applies the ContainsFold predicate on the "version" field.
func VersionContainsFold(v string) predicate.DaemonStatus {
	return predicate.DaemonStatus(sql.FieldContainsFold(FieldVersion, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DaemonStatus) predicate.DaemonStatus {
	return predicate.DaemonStatus(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DaemonStatus) predicate.DaemonStatus {
	return predicate.DaemonStatus(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DaemonStatus) predicate.DaemonStatus {
	return predicate.DaemonStatus(sql.NotPredicates(p))
}

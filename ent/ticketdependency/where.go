// Code generated by ent, DO NOT EDIT.

package ticketdependency

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/fleetworks/conductor/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TicketDependency {
	return predicate.TicketDependency(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TicketDependency {
	return predicate.TicketDependency(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TicketDependency {
	return predicate.TicketDependency(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TicketDependency {
	return predicate.TicketDependency(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TicketDependency {
	return predicate.TicketDependency(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TicketDependency {
	return predicate.TicketDependency(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TicketDependency {
	return predicate.TicketDependency(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TicketDependency {
	return predicate.TicketDependency(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TicketDependency {
	return predicate.TicketDependency(sql.FieldLTE(FieldID, id))
}

// TicketID applies equality check predicate on the "ticket_id" field. It's identical to TicketIDEQ.
func TicketID(v int) predicate.TicketDependency {
	return predicate.TicketDependency(sql.FieldEQ(FieldTicketID, v))
}

// DependsOnTicketID applies equality check predicate on the "depends_on_ticket_id" field. It's identical to DependsOnTicketIDEQ.
func DependsOnTicketID(v int) predicate.TicketDependency {
	return predicate.TicketDependency(sql.FieldEQ(FieldDependsOnTicketID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TicketDependency {
	return predicate.TicketDependency(sql.FieldEQ(FieldCreatedAt, v))
}

// TicketIDEQ applies the EQ predicate on the "ticket_id" field.
func TicketIDEQ(v int) predicate.TicketDependency {
	return predicate.TicketDependency(sql.FieldEQ(FieldTicketID, v))
}

// TicketIDNEQ applies the NEQ predicate on the "ticket_id" field.
func TicketIDNEQ(v int) predicate.TicketDependency {
	return predicate.TicketDependency(sql.FieldNEQ(FieldTicketID, v))
}

// TicketIDIn applies the In predicate on the "ticket_id" field.
func TicketIDIn(vs ...int) predicate.TicketDependency {
	return predicate.TicketDependency(sql.FieldIn(FieldTicketID, vs...))
}

// TicketIDNotIn applies the NotIn predicate on the "ticket_id" field.
func TicketIDNotIn(vs ...int) predicate.TicketDependency {
	return predicate.TicketDependency(sql.FieldNotIn(FieldTicketID, vs...))
}

// DependsOnTicketIDEQ applies the EQ predicate on the "depends_on_ticket_id" field.
func DependsOnTicketIDEQ(v int) predicate.TicketDependency {
	return predicate.TicketDependency(sql.FieldEQ(FieldDependsOnTicketID, v))
}

// DependsOnTicketIDNEQ applies the NEQ predicate on the "depends_on_ticket_id" field.
func DependsOnTicketIDNEQ(v int) predicate.TicketDependency {
	return predicate.TicketDependency(sql.FieldNEQ(FieldDependsOnTicketID, v))
}

// DependsOnTicketIDIn applies the In predicate on the "depends_on_ticket_id" field.
func DependsOnTicketIDIn(vs ...int) predicate.TicketDependency {
	return predicate.TicketDependency(sql.FieldIn(FieldDependsOnTicketID, vs...))
}

// DependsOnTicketIDNotIn applies the NotIn predicate on the "depends_on_ticket_id" field.
func DependsOnTicketIDNotIn(vs ...int) predicate.TicketDependency {
	return predicate.TicketDependency(sql.FieldNotIn(FieldDependsOnTicketID, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TicketDependency {
	return predicate.TicketDependency(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TicketDependency {
	return predicate.TicketDependency(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TicketDependency {
	return predicate.TicketDependency(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TicketDependency {
	return predicate.TicketDependency(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TicketDependency {
	return predicate.TicketDependency(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TicketDependency {
	return predicate.TicketDependency(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TicketDependency {
	return predicate.TicketDependency(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TicketDependency {
	return predicate.TicketDependency(sql.FieldLTE(FieldCreatedAt, v))
}

// HasTicket applies the HasEdge predicate on the "ticket" edge.
func HasTicket() predicate.TicketDependency {
	return predicate.TicketDependency(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TicketTable, TicketColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTicketWith applies the HasEdge predicate on the "ticket" edge with a given conditions (other predicates).
func HasTicketWith(preds ...predicate.Ticket) predicate.TicketDependency {
	return predicate.TicketDependency(func(s *sql.Selector) {
		step := newTicketStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDependsOn applies the HasEdge predicate on the "depends_on" edge.
func HasDependsOn() predicate.TicketDependency {
	return predicate.TicketDependency(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DependsOnTable, DependsOnColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDependsOnWith applies the HasEdge predicate on the "depends_on" edge with a given conditions (other predicates).
func HasDependsOnWith(preds ...predicate.Ticket) predicate.TicketDependency {
	return predicate.TicketDependency(func(s *sql.Selector) {
		step := newDependsOnStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TicketDependency) predicate.TicketDependency {
	return predicate.TicketDependency(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TicketDependency) predicate.TicketDependency {
	return predicate.TicketDependency(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TicketDependency) predicate.TicketDependency {
	return predicate.TicketDependency(sql.NotPredicates(p))
}

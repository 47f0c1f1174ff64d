// Code generated by ent, DO NOT EDIT.

package executionsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/fleetworks/conductor/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldContainsFold(FieldID, id))
}

// TicketID applies equality check predicate on the "ticket_id" field. It's identical to TicketIDEQ.
func TicketID(v int) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldEQ(FieldTicketID, v))
}

// InputTokens applies equality check predicate on the "input_tokens" field. It's identical to InputTokensEQ.
func InputTokens(v int64) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldEQ(FieldInputTokens, v))
}

// OutputTokens applies equality check predicate on the "output_tokens" field. It's identical to OutputTokensEQ.
func OutputTokens(v int64) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldEQ(FieldOutputTokens, v))
}

// CacheReadTokens applies equality check predicate on the "cache_read_tokens" field. It's identical to CacheReadTokensEQ.
func CacheReadTokens(v int64) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldEQ(FieldCacheReadTokens, v))
}

// CacheCreationTokens applies equality check predicate on the "cache_creation_tokens" field. It's identical to CacheCreationTokensEQ.
func CacheCreationTokens(v int64) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldEQ(FieldCacheCreationTokens, v))
}

// APICalls applies equality check predicate on the "api_calls" field. It's identical to APICallsEQ.
func APICalls(v int) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldEQ(FieldAPICalls, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldEQ(FieldErrorMessage, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldEQ(FieldStartedAt, v))
}

// EndedAt applies equality check predicate on the "ended_at" field. It's identical to EndedAtEQ.
func EndedAt(v time.Time) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldEQ(FieldEndedAt, v))
}

// LastOutputAt applies equality check predicate on the "last_output_at" field. It's identical to LastOutputAtEQ.
func LastOutputAt(v time.Time) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldEQ(FieldLastOutputAt, v))
}

// TicketIDEQ applies the EQ predicate on the "ticket_id" field.
func TicketIDEQ(v int) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldEQ(FieldTicketID, v))
}

// TicketIDNEQ applies the NEQ predicate on the "ticket_id" field.
func TicketIDNEQ(v int) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldNEQ(FieldTicketID, v))
}

// TicketIDIn applies the In predicate on the "ticket_id" field.
func TicketIDIn(vs ...int) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldIn(FieldTicketID, vs...))
}

// TicketIDNotIn applies the NotIn predicate on the "ticket_id" field.
func TicketIDNotIn(vs ...int) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldNotIn(FieldTicketID, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldNotIn(FieldStatus, vs...))
}

// InputTokensEQ applies the EQ predicate on the "input_tokens" field.
func InputTokensEQ(v int64) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldEQ(FieldInputTokens, v))
}

// InputTokensNEQ applies the NEQ predicate on the "input_tokens" field.
func InputTokensNEQ(v int64) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldNEQ(FieldInputTokens, v))
}

// InputTokensIn applies the In predicate on the "input_tokens" field.
func InputTokensIn(vs ...int64) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldIn(FieldInputTokens, vs...))
}

// InputTokensNotIn applies the NotIn predicate on the "input_tokens" field.
func InputTokensNotIn(vs ...int64) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldNotIn(FieldInputTokens, vs...))
}

// InputTokensGT applies the GT predicate on the "input_tokens" field.
func InputTokensGT(v int64) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldGT(FieldInputTokens, v))
}

// InputTokensGTE applies the GTE predicate on the "input_tokens" field.
func InputTokensGTE(v int64) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldGTE(FieldInputTokens, v))
}

// InputTokensLT applies the LT predicate on the "input_tokens" field.
func InputTokensLT(v int64) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldLT(FieldInputTokens, v))
}

// InputTokensLTE applies the LTE predicate on the "input_tokens" field.
func InputTokensLTE(v int64) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldLTE(FieldInputTokens, v))
}

// OutputTokensEQ applies the EQ predicate on the "output_tokens" field.
func OutputTokensEQ(v int64) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldEQ(FieldOutputTokens, v))
}

// OutputTokensNEQ applies the NEQ predicate on the "output_tokens" field.
func OutputTokensNEQ(v int64) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldNEQ(FieldOutputTokens, v))
}

// OutputTokensIn applies the In predicate on the "output_tokens" field.
func OutputTokensIn(vs ...int64) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldIn(FieldOutputTokens, vs...))
}

// OutputTokensNotIn applies the NotIn predicate on the "output_tokens" field.
func OutputTokensNotIn(vs ...int64) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldNotIn(FieldOutputTokens, vs...))
}

// OutputTokensGT applies the GT predicate on the "output_tokens" field.
func OutputTokensGT(v int64) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldGT(FieldOutputTokens, v))
}

// OutputTokensGTE applies the GTE predicate on the "output_tokens" field.
func OutputTokensGTE(v int64) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldGTE(FieldOutputTokens, v))
}

// OutputTokensLT applies the LT predicate on the "output_tokens" field.
func OutputTokensLT(v int64) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldLT(FieldOutputTokens, v))
}

// OutputTokensLTE applies the LTE predicate on the "output_tokens" field.
func OutputTokensLTE(v int64) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldLTE(FieldOutputTokens, v))
}

// CacheReadTokensEQ applies the EQ predicate on the "cache_read_tokens" field.
func CacheReadTokensEQ(v int64) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldEQ(FieldCacheReadTokens, v))
}

// CacheReadTokensNEQ applies the NEQ predicate on the "cache_read_tokens" field.
func CacheReadTokensNEQ(v int64) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldNEQ(FieldCacheReadTokens, v))
}

// CacheReadTokensIn applies the In predicate on the "cache_read_tokens" field.
func CacheReadTokensIn(vs ...int64) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldIn(FieldCacheReadTokens, vs...))
}

// CacheReadTokensNotIn applies the NotIn predicate on the "cache_read_tokens" field.
func CacheReadTokensNotIn(vs ...int64) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldNotIn(FieldCacheReadTokens, vs...))
}

// CacheReadTokensGT applies the GT predicate on the "cache_read_tokens" field.
func CacheReadTokensGT(v int64) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldGT(FieldCacheReadTokens, v))
}

// CacheReadTokensGTE applies the GTE predicate on the "cache_read_tokens" field.
func CacheReadTokensGTE(v int64) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldGTE(FieldCacheReadTokens, v))
}

// CacheReadTokensLT applies the LT predicate on the "cache_read_tokens" field.
func CacheReadTokensLT(v int64) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldLT(FieldCacheReadTokens, v))
}

// CacheReadTokensLTE applies the LTE predicate on the "cache_read_tokens" field.
func CacheReadTokensLTE(v int64) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldLTE(FieldCacheReadTokens, v))
}

// CacheCreationTokensEQ applies the EQ predicate on the "cache_creation_tokens" field.
func CacheCreationTokensEQ(v int64) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldEQ(FieldCacheCreationTokens, v))
}

// CacheCreationTokensNEQ applies the NEQ predicate on the "cache_creation_tokens" field.
func CacheCreationTokensNEQ(v int64) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldNEQ(FieldCacheCreationTokens, v))
}

// CacheCreationTokensIn applies the In predicate on the "cache_creation_tokens" field.
func CacheCreationTokensIn(vs ...int64) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldIn(FieldCacheCreationTokens, vs...))
}

// CacheCreationTokensNotIn applies the NotIn predicate on the "cache_creation_tokens" field.
func CacheCreationTokensNotIn(vs ...int64) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldNotIn(FieldCacheCreationTokens, vs...))
}

// CacheCreationTokensGT applies the GT predicate on the "cache_creation_tokens" field.
func CacheCreationTokensGT(v int64) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldGT(FieldCacheCreationTokens, v))
}

// CacheCreationTokensGTE applies the GTE predicate on the "cache_creation_tokens" field.
func CacheCreationTokensGTE(v int64) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldGTE(FieldCacheCreationTokens, v))
}

// CacheCreationTokensLT applies the LT predicate on the "cache_creation_tokens" field.
func CacheCreationTokensLT(v int64) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldLT(FieldCacheCreationTokens, v))
}

// CacheCreationTokensLTE applies the LTE predicate on the "cache_creation_tokens" field.
func CacheCreationTokensLTE(v int64) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldLTE(FieldCacheCreationTokens, v))
}

// APICallsEQ applies the EQ predicate on the "api_calls" field.
func APICallsEQ(v int) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldEQ(FieldAPICalls, v))
}

// APICallsNEQ applies the NEQ predicate on the "api_calls" field.
func APICallsNEQ(v int) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldNEQ(FieldAPICalls, v))
}

// APICallsIn applies the In predicate on the "api_calls" field.
func APICallsIn(vs ...int) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldIn(FieldAPICalls, vs...))
}

// APICallsNotIn applies the NotIn predicate on the "api_calls" field.
func APICallsNotIn(vs ...int) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldNotIn(FieldAPICalls, vs...))
}

// APICallsGT applies the GT predicate on the "api_calls" field.
func APICallsGT(v int) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldGT(FieldAPICalls, v))
}

// APICallsGTE applies the GTE predicate on the "api_calls" field.
func APICallsGTE(v int) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldGTE(FieldAPICalls, v))
}

// APICallsLT applies the LT predicate on the "api_calls" field.
func APICallsLT(v int) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldLT(FieldAPICalls, v))
}

// APICallsLTE applies the LTE predicate on the "api_calls" field.
func APICallsLTE(v int) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldLTE(FieldAPICalls, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldContainsFold(FieldErrorMessage, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldLTE(FieldStartedAt, v))
}

// EndedAtEQ applies the EQ predicate on the "ended_at" field.
func EndedAtEQ(v time.Time) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldEQ(FieldEndedAt, v))
}

// EndedAtNEQ applies the NEQ predicate on the "ended_at" field.
func EndedAtNEQ(v time.Time) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldNEQ(FieldEndedAt, v))
}

// EndedAtIn applies the In predicate on the "ended_at" field.
func EndedAtIn(vs ...time.Time) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldIn(FieldEndedAt, vs...))
}

// EndedAtNotIn applies the NotIn predicate on the "ended_at" field.
func EndedAtNotIn(vs ...time.Time) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldNotIn(FieldEndedAt, vs...))
}

// EndedAtGT applies the GT predicate on the "ended_at" field.
func EndedAtGT(v time.Time) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldGT(FieldEndedAt, v))
}

// EndedAtGTE applies the GTE predicate on the "ended_at" field.
func EndedAtGTE(v time.Time) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldGTE(FieldEndedAt, v))
}

// EndedAtLT applies the LT predicate on the "ended_at" field.
func EndedAtLT(v time.Time) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldLT(FieldEndedAt, v))
}

// EndedAtLTE applies the LTE predicate on the "ended_at" field.
func EndedAtLTE(v time.Time) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldLTE(FieldEndedAt, v))
}

// EndedAtIsNil applies the IsNil predicate on the "ended_at" field.
func EndedAtIsNil() predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldIsNull(FieldEndedAt))
}

// EndedAtNotNil applies the NotNil predicate on the "ended_at" field.
func EndedAtNotNil() predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldNotNull(FieldEndedAt))
}

// LastOutputAtEQ applies the EQ predicate on the "last_output_at" field.
func LastOutputAtEQ(v time.Time) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldEQ(FieldLastOutputAt, v))
}

// LastOutputAtNEQ applies the NEQ predicate on the "last_output_at" field.
func LastOutputAtNEQ(v time.Time) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldNEQ(FieldLastOutputAt, v))
}

// LastOutputAtIn applies the In predicate on the "last_output_at" field.
func LastOutputAtIn(vs ...time.Time) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldIn(FieldLastOutputAt, vs...))
}

// LastOutputAtNotIn applies the NotIn predicate on the "last_output_at" field.
func LastOutputAtNotIn(vs ...time.Time) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldNotIn(FieldLastOutputAt, vs...))
}

// LastOutputAtGT applies the GT predicate on the "last_output_at" field.
func LastOutputAtGT(v time.Time) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldGT(FieldLastOutputAt, v))
}

// LastOutputAtGTE applies the GTE predicate on the "last_output_at" field.
func LastOutputAtGTE(v time.Time) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldGTE(FieldLastOutputAt, v))
}

// LastOutputAtLT applies the LT predicate on the "last_output_at" field.
func LastOutputAtLT(v time.Time) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldLT(FieldLastOutputAt, v))
}

// LastOutputAtLTE applies the LTE predicate on the "last_output_at" field.
func LastOutputAtLTE(v time.Time) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldLTE(FieldLastOutputAt, v))
}

// LastOutputAtIsNil applies the IsNil predicate on the "last_output_at" field.
func LastOutputAtIsNil() predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldIsNull(FieldLastOutputAt))
}

// LastOutputAtNotNil applies the NotNil predicate on the "last_output_at" field.
func LastOutputAtNotNil() predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.FieldNotNull(FieldLastOutputAt))
}

// HasTicket applies the HasEdge predicate on the "ticket" edge.
func HasTicket() predicate.ExecutionSession {
	return predicate.ExecutionSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TicketTable, TicketColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTicketWith applies the HasEdge predicate on the "ticket" edge with a given conditions (other predicates).
func HasTicketWith(preds ...predicate.Ticket) predicate.ExecutionSession {
	return predicate.ExecutionSession(func(s *sql.Selector) {
		step := newTicketStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExecutionSession) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExecutionSession) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExecutionSession) predicate.ExecutionSession {
	return predicate.ExecutionSession(sql.NotPredicates(p))
}

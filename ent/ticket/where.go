// Code generated by ent, DO NOT EDIT.

package ticket

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/fleetworks/conductor/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldID, id))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldProjectID, v))
}

// TicketNumber applies equality check predicate on the "ticket_number" field. It's identical to TicketNumberEQ.
func TicketNumber(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldTicketNumber, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldDescription, v))
}

// SequenceOrder applies equality check predicate on the "sequence_order" field. It's identical to SequenceOrderEQ.
func SequenceOrder(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldSequenceOrder, v))
}

// ParentTicketID applies equality check predicate on the "parent_ticket_id" field. It's identical to ParentTicketIDEQ.
func ParentTicketID(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldParentTicketID, v))
}

// IsForced applies equality check predicate on the "is_forced" field. It's identical to IsForcedEQ.
func IsForced(v bool) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldIsForced, v))
}

// DepsIncludeAwaiting applies equality check predicate on the "deps_include_awaiting" field. It's identical to DepsIncludeAwaitingEQ.
func DepsIncludeAwaiting(v bool) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldDepsIncludeAwaiting, v))
}

// MaxRetries applies equality check predicate on the "max_retries" field. It's identical to MaxRetriesEQ.
func MaxRetries(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldMaxRetries, v))
}

// RetryCount applies equality check predicate on the "retry_count" field. It's identical to RetryCountEQ.
func RetryCount(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldRetryCount, v))
}

// RetryAfter applies equality check predicate on the "retry_after" field. It's identical to RetryAfterEQ.
func RetryAfter(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldRetryAfter, v))
}

// ReviewScheduledAt applies equality check predicate on the "review_scheduled_at" field. It's identical to ReviewScheduledAtEQ.
func ReviewScheduledAt(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldReviewScheduledAt, v))
}

// ReviewAttempts applies equality check predicate on the "review_attempts" field. It's identical to ReviewAttemptsEQ.
func ReviewAttempts(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldReviewAttempts, v))
}

// ResultSummary applies equality check predicate on the "result_summary" field. It's identical to ResultSummaryEQ.
func ResultSummary(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldResultSummary, v))
}

// UnsummarizedTokens applies equality check predicate on the "unsummarized_tokens" field. It's identical to UnsummarizedTokensEQ.
func UnsummarizedTokens(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldUnsummarizedTokens, v))
}

// TotalTokens applies equality check predicate on the "total_tokens" field. It's identical to TotalTokensEQ.
func TotalTokens(v int64) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldTotalTokens, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldUpdatedAt, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...int) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...int) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldProjectID, vs...))
}

// TicketNumberEQ applies the EQ predicate on the "ticket_number" field.
func TicketNumberEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldTicketNumber, v))
}

// TicketNumberNEQ applies the NEQ predicate on the "ticket_number" field.
func TicketNumberNEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldTicketNumber, v))
}

// TicketNumberIn applies the In predicate on the "ticket_number" field.
func TicketNumberIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldTicketNumber, vs...))
}

// TicketNumberNotIn applies the NotIn predicate on the "ticket_number" field.
func TicketNumberNotIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldTicketNumber, vs...))
}

// TicketNumberGT applies the GT predicate on the "ticket_number" field.
func TicketNumberGT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldTicketNumber, v))
}

// TicketNumberGTE applies the GTE predicate on the "ticket_number" field.
func TicketNumberGTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldTicketNumber, v))
}

// TicketNumberLT applies the LT predicate on the "ticket_number" field.
func TicketNumberLT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldTicketNumber, v))
}

// TicketNumberLTE applies the LTE predicate on the "ticket_number" field.
func TicketNumberLTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldTicketNumber, v))
}

// TicketNumberContains applies the Contains predicate on the "ticket_number" field.
func TicketNumberContains(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContains(FieldTicketNumber, v))
}

// TicketNumberHasPrefix applies the HasPrefix predicate on the "ticket_number" field.
func TicketNumberHasPrefix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasPrefix(FieldTicketNumber, v))
}

// TicketNumberHasSuffix applies the HasSuffix predicate on the "ticket_number" field.
func TicketNumberHasSuffix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasSuffix(FieldTicketNumber, v))
}

// TicketNumberEqualFold applies the EqualFold predicate on the "ticket_number" field.
func TicketNumberEqualFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEqualFold(FieldTicketNumber, v))
}

// TicketNumberContainsFold applies the ContainsFold predicate on the "ticket_number" field.
func TicketNumberContainsFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContainsFold(FieldTicketNumber, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContainsFold(FieldDescription, v))
}

// TicketTypeEQ applies the EQ predicate on the "ticket_type" field.
func TicketTypeEQ(v TicketType) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldTicketType, v))
}

// TicketTypeNEQ applies the NEQ predicate on the "ticket_type" field.
func TicketTypeNEQ(v TicketType) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldTicketType, v))
}

// TicketTypeIn applies the In predicate on the "ticket_type" field.
func TicketTypeIn(vs ...TicketType) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldTicketType, vs...))
}

// TicketTypeNotIn applies the NotIn predicate on the "ticket_type" field.
func TicketTypeNotIn(vs ...TicketType) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldTicketType, vs...))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v Priority) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v Priority) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...Priority) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...Priority) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldPriority, vs...))
}

// SequenceOrderEQ applies the EQ predicate on the "sequence_order" field.
func SequenceOrderEQ(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldSequenceOrder, v))
}

// SequenceOrderNEQ applies the NEQ predicate on the "sequence_order" field.
func SequenceOrderNEQ(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldSequenceOrder, v))
}

// SequenceOrderIn applies the In predicate on the "sequence_order" field.
func SequenceOrderIn(vs ...int) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldSequenceOrder, vs...))
}

// SequenceOrderNotIn applies the NotIn predicate on the "sequence_order" field.
func SequenceOrderNotIn(vs ...int) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldSequenceOrder, vs...))
}

// SequenceOrderGT applies the GT predicate on the "sequence_order" field.
func SequenceOrderGT(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldSequenceOrder, v))
}

// SequenceOrderGTE applies the GTE predicate on the "sequence_order" field.
func SequenceOrderGTE(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldSequenceOrder, v))
}

// SequenceOrderLT applies the LT predicate on the "sequence_order" field.
func SequenceOrderLT(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldSequenceOrder, v))
}

// SequenceOrderLTE applies the LTE predicate on the "sequence_order" field.
func SequenceOrderLTE(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldSequenceOrder, v))
}

// SequenceOrderIsNil applies the IsNil predicate on the "sequence_order" field.
func SequenceOrderIsNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldIsNull(FieldSequenceOrder))
}

// SequenceOrderNotNil applies the NotNil predicate on the "sequence_order" field.
func SequenceOrderNotNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldNotNull(FieldSequenceOrder))
}

// ParentTicketIDEQ applies the EQ predicate on the "parent_ticket_id" field.
func ParentTicketIDEQ(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldParentTicketID, v))
}

// ParentTicketIDNEQ applies the NEQ predicate on the "parent_ticket_id" field.
func ParentTicketIDNEQ(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldParentTicketID, v))
}

// ParentTicketIDIn applies the In predicate on the "parent_ticket_id" field.
func ParentTicketIDIn(vs ...int) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldParentTicketID, vs...))
}

// ParentTicketIDNotIn applies the NotIn predicate on the "parent_ticket_id" field.
func ParentTicketIDNotIn(vs ...int) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldParentTicketID, vs...))
}

// ParentTicketIDIsNil applies the IsNil predicate on the "parent_ticket_id" field.
func ParentTicketIDIsNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldIsNull(FieldParentTicketID))
}

// ParentTicketIDNotNil applies the NotNil predicate on the "parent_ticket_id" field.
func ParentTicketIDNotNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldNotNull(FieldParentTicketID))
}

// IsForcedEQ applies the EQ predicate on the "is_forced" field.
func IsForcedEQ(v bool) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldIsForced, v))
}

// IsForcedNEQ applies the NEQ predicate on the "is_forced" field.
func IsForcedNEQ(v bool) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldIsForced, v))
}

// ExecutionModeEQ applies the EQ predicate on the "execution_mode" field.
func ExecutionModeEQ(v ExecutionMode) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldExecutionMode, v))
}

// ExecutionModeNEQ applies the NEQ predicate on the "execution_mode" field.
func ExecutionModeNEQ(v ExecutionMode) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldExecutionMode, v))
}

// ExecutionModeIn applies the In predicate on the "execution_mode" field.
func ExecutionModeIn(vs ...ExecutionMode) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldExecutionMode, vs...))
}

// ExecutionModeNotIn applies the NotIn predicate on the "execution_mode" field.
func ExecutionModeNotIn(vs ...ExecutionMode) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldExecutionMode, vs...))
}

// ExecutionModeIsNil applies the IsNil predicate on the "execution_mode" field.
func ExecutionModeIsNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldIsNull(FieldExecutionMode))
}

// ExecutionModeNotNil applies the NotNil predicate on the "execution_mode" field.
func ExecutionModeNotNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldNotNull(FieldExecutionMode))
}

// DepsIncludeAwaitingEQ applies the EQ predicate on the "deps_include_awaiting" field.
func DepsIncludeAwaitingEQ(v bool) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldDepsIncludeAwaiting, v))
}

// DepsIncludeAwaitingNEQ applies the NEQ predicate on the "deps_include_awaiting" field.
func DepsIncludeAwaitingNEQ(v bool) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldDepsIncludeAwaiting, v))
}

// ModelTierEQ applies the EQ predicate on the "model_tier" field.
func ModelTierEQ(v ModelTier) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldModelTier, v))
}

// ModelTierNEQ applies the NEQ predicate on the "model_tier" field.
func ModelTierNEQ(v ModelTier) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldModelTier, v))
}

// ModelTierIn applies the In predicate on the "model_tier" field.
func ModelTierIn(vs ...ModelTier) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldModelTier, vs...))
}

// ModelTierNotIn applies the NotIn predicate on the "model_tier" field.
func ModelTierNotIn(vs ...ModelTier) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldModelTier, vs...))
}

// ModelTierIsNil applies the IsNil predicate on the "model_tier" field.
func ModelTierIsNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldIsNull(FieldModelTier))
}

// ModelTierNotNil applies the NotNil predicate on the "model_tier" field.
func ModelTierNotNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldNotNull(FieldModelTier))
}

// MaxRetriesEQ applies the EQ predicate on the "max_retries" field.
func MaxRetriesEQ(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldMaxRetries, v))
}

// MaxRetriesNEQ applies the NEQ predicate on the "max_retries" field.
func MaxRetriesNEQ(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldMaxRetries, v))
}

// MaxRetriesIn applies the In predicate on the "max_retries" field.
func MaxRetriesIn(vs ...int) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldMaxRetries, vs...))
}

// MaxRetriesNotIn applies the NotIn predicate on the "max_retries" field.
func MaxRetriesNotIn(vs ...int) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldMaxRetries, vs...))
}

// MaxRetriesGT applies the GT predicate on the "max_retries" field.
func MaxRetriesGT(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldMaxRetries, v))
}

// MaxRetriesGTE applies the GTE predicate on the "max_retries" field.
func MaxRetriesGTE(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldMaxRetries, v))
}

// MaxRetriesLT applies the LT predicate on the "max_retries" field.
func MaxRetriesLT(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldMaxRetries, v))
}

// MaxRetriesLTE applies the LTE predicate on the "max_retries" field.
func MaxRetriesLTE(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldMaxRetries, v))
}

// RetryCountEQ applies the EQ predicate on the "retry_count" field.
func RetryCountEQ(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldRetryCount, v))
}

// RetryCountNEQ applies the NEQ predicate on the "retry_count" field.
func RetryCountNEQ(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldRetryCount, v))
}

// RetryCountIn applies the In predicate on the "retry_count" field.
func RetryCountIn(vs ...int) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldRetryCount, vs...))
}

// RetryCountNotIn applies the NotIn predicate on the "retry_count" field.
func RetryCountNotIn(vs ...int) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldRetryCount, vs...))
}

// RetryCountGT applies the GT predicate on the "retry_count" field.
func RetryCountGT(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldRetryCount, v))
}

// RetryCountGTE applies the GTE predicate on the "retry_count" field.
func RetryCountGTE(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldRetryCount, v))
}

// RetryCountLT applies the LT predicate on the "retry_count" field.
func RetryCountLT(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldRetryCount, v))
}

// RetryCountLTE applies the LTE predicate on the "retry_count" field.
func RetryCountLTE(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldRetryCount, v))
}

// RetryAfterEQ applies the EQ predicate on the "retry_after" field.
func RetryAfterEQ(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldRetryAfter, v))
}

// RetryAfterNEQ applies the NEQ predicate on the "retry_after" field.
func RetryAfterNEQ(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldRetryAfter, v))
}

// RetryAfterIn applies the In predicate on the "retry_after" field.
func RetryAfterIn(vs ...time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldRetryAfter, vs...))
}

// RetryAfterNotIn applies the NotIn predicate on the "retry_after" field.
func RetryAfterNotIn(vs ...time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldRetryAfter, vs...))
}

// RetryAfterGT applies the GT predicate on the "retry_after" field.
func RetryAfterGT(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldRetryAfter, v))
}

// RetryAfterGTE applies the GTE predicate on the "retry_after" field.
func RetryAfterGTE(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldRetryAfter, v))
}

// RetryAfterLT applies the LT predicate on the "retry_after" field.
func RetryAfterLT(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldRetryAfter, v))
}

// RetryAfterLTE applies the LTE predicate on the "retry_after" field.
func RetryAfterLTE(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldRetryAfter, v))
}

// RetryAfterIsNil applies the IsNil predicate on the "retry_after" field.
func RetryAfterIsNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldIsNull(FieldRetryAfter))
}

// RetryAfterNotNil applies the NotNil predicate on the "retry_after" field.
func RetryAfterNotNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldNotNull(FieldRetryAfter))
}

// ReviewScheduledAtEQ applies the EQ predicate on the "review_scheduled_at" field.
func ReviewScheduledAtEQ(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldReviewScheduledAt, v))
}

// ReviewScheduledAtNEQ applies the NEQ predicate on the "review_scheduled_at" field.
func ReviewScheduledAtNEQ(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldReviewScheduledAt, v))
}

// ReviewScheduledAtIn applies the In predicate on the "review_scheduled_at" field.
func ReviewScheduledAtIn(vs ...time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldReviewScheduledAt, vs...))
}

// ReviewScheduledAtNotIn applies the NotIn predicate on the "review_scheduled_at" field.
func ReviewScheduledAtNotIn(vs ...time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldReviewScheduledAt, vs...))
}

// ReviewScheduledAtGT applies the GT predicate on the "review_scheduled_at" field.
func ReviewScheduledAtGT(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldReviewScheduledAt, v))
}

// ReviewScheduledAtGTE applies the GTE predicate on the "review_scheduled_at" field.
func ReviewScheduledAtGTE(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldReviewScheduledAt, v))
}

// ReviewScheduledAtLT applies the LT predicate on the "review_scheduled_at" field.
func ReviewScheduledAtLT(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldReviewScheduledAt, v))
}

// ReviewScheduledAtLTE applies the LTE predicate on the "review_scheduled_at" field.
func ReviewScheduledAtLTE(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldReviewScheduledAt, v))
}

// ReviewScheduledAtIsNil applies the IsNil predicate on the "review_scheduled_at" field.
func ReviewScheduledAtIsNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldIsNull(FieldReviewScheduledAt))
}

// ReviewScheduledAtNotNil applies the NotNil predicate on the "review_scheduled_at" field.
func ReviewScheduledAtNotNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldNotNull(FieldReviewScheduledAt))
}

// ReviewAttemptsEQ applies the EQ predicate on the "review_attempts" field.
func ReviewAttemptsEQ(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldReviewAttempts, v))
}

// ReviewAttemptsNEQ applies the NEQ predicate on the "review_attempts" field.
func ReviewAttemptsNEQ(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldReviewAttempts, v))
}

// ReviewAttemptsIn applies the In predicate on the "review_attempts" field.
func ReviewAttemptsIn(vs ...int) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldReviewAttempts, vs...))
}

// ReviewAttemptsNotIn applies the NotIn predicate on the "review_attempts" field.
func ReviewAttemptsNotIn(vs ...int) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldReviewAttempts, vs...))
}

// ReviewAttemptsGT applies the GT predicate on the "review_attempts" field.
func ReviewAttemptsGT(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldReviewAttempts, v))
}

// ReviewAttemptsGTE applies the GTE predicate on the "review_attempts" field.
func ReviewAttemptsGTE(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldReviewAttempts, v))
}

// ReviewAttemptsLT applies the LT predicate on the "review_attempts" field.
func ReviewAttemptsLT(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldReviewAttempts, v))
}

// ReviewAttemptsLTE applies the LTE predicate on the "review_attempts" field.
func ReviewAttemptsLTE(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldReviewAttempts, v))
}

// AwaitingReasonEQ applies the EQ predicate on the "awaiting_reason" field.
func AwaitingReasonEQ(v AwaitingReason) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldAwaitingReason, v))
}

// AwaitingReasonNEQ applies the NEQ predicate on the "awaiting_reason" field.
func AwaitingReasonNEQ(v AwaitingReason) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldAwaitingReason, v))
}

// AwaitingReasonIn applies the In predicate on the "awaiting_reason" field.
func AwaitingReasonIn(vs ...AwaitingReason) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldAwaitingReason, vs...))
}

// AwaitingReasonNotIn applies the NotIn predicate on the "awaiting_reason" field.
func AwaitingReasonNotIn(vs ...AwaitingReason) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldAwaitingReason, vs...))
}

// AwaitingReasonIsNil applies the IsNil predicate on the "awaiting_reason" field.
func AwaitingReasonIsNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldIsNull(FieldAwaitingReason))
}

// AwaitingReasonNotNil applies the NotNil predicate on the "awaiting_reason" field.
func AwaitingReasonNotNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldNotNull(FieldAwaitingReason))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldStatus, vs...))
}

// ResultSummaryEQ applies the EQ predicate on the "result_summary" field.
func ResultSummaryEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldResultSummary, v))
}

// ResultSummaryNEQ applies the NEQ predicate on the "result_summary" field.
func ResultSummaryNEQ(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldResultSummary, v))
}

// ResultSummaryIn applies the In predicate on the "result_summary" field.
func ResultSummaryIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldResultSummary, vs...))
}

// ResultSummaryNotIn applies the NotIn predicate on the "result_summary" field.
func ResultSummaryNotIn(vs ...string) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldResultSummary, vs...))
}

// ResultSummaryGT applies the GT predicate on the "result_summary" field.
func ResultSummaryGT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldResultSummary, v))
}

// ResultSummaryGTE applies the GTE predicate on the "result_summary" field.
func ResultSummaryGTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldResultSummary, v))
}

// ResultSummaryLT applies the LT predicate on the "result_summary" field.
func ResultSummaryLT(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldResultSummary, v))
}

// ResultSummaryLTE applies the LTE predicate on the "result_summary" field.
func ResultSummaryLTE(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldResultSummary, v))
}

// ResultSummaryContains applies the Contains predicate on the "result_summary" field.
func ResultSummaryContains(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContains(FieldResultSummary, v))
}

// ResultSummaryHasPrefix applies the HasPrefix predicate on the "result_summary" field.
func ResultSummaryHasPrefix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasPrefix(FieldResultSummary, v))
}

// ResultSummaryHasSuffix applies the HasSuffix predicate on the "result_summary" field.
func ResultSummaryHasSuffix(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldHasSuffix(FieldResultSummary, v))
}

// ResultSummaryIsNil applies the IsNil predicate on the "result_summary" field.
func ResultSummaryIsNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldIsNull(FieldResultSummary))
}

// ResultSummaryNotNil applies the NotNil predicate on the "result_summary" field.
func ResultSummaryNotNil() predicate.Ticket {
	return predicate.Ticket(sql.FieldNotNull(FieldResultSummary))
}

// ResultSummaryEqualFold applies the EqualFold predicate on the "result_summary" field.
func ResultSummaryEqualFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldEqualFold(FieldResultSummary, v))
}

// ResultSummaryContainsFold applies the ContainsFold predicate on the "result_summary" field.
func ResultSummaryContainsFold(v string) predicate.Ticket {
	return predicate.Ticket(sql.FieldContainsFold(FieldResultSummary, v))
}

// UnsummarizedTokensEQ applies the EQ predicate on the "unsummarized_tokens" field.
func UnsummarizedTokensEQ(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldUnsummarizedTokens, v))
}

// UnsummarizedTokensNEQ applies the NEQ predicate on the "unsummarized_tokens" field.
func UnsummarizedTokensNEQ(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldUnsummarizedTokens, v))
}

// UnsummarizedTokensIn applies the In predicate on the "unsummarized_tokens" field.
func UnsummarizedTokensIn(vs ...int) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldUnsummarizedTokens, vs...))
}

// UnsummarizedTokensNotIn applies the NotIn predicate on the "unsummarized_tokens" field.
func UnsummarizedTokensNotIn(vs ...int) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldUnsummarizedTokens, vs...))
}

// UnsummarizedTokensGT applies the GT predicate on the "unsummarized_tokens" field.
func UnsummarizedTokensGT(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldUnsummarizedTokens, v))
}

// UnsummarizedTokensGTE applies the GTE predicate on the "unsummarized_tokens" field.
func UnsummarizedTokensGTE(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldUnsummarizedTokens, v))
}

// UnsummarizedTokensLT applies the LT predicate on the "unsummarized_tokens" field.
func UnsummarizedTokensLT(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldUnsummarizedTokens, v))
}

// UnsummarizedTokensLTE applies the LTE predicate on the "unsummarized_tokens" field.
func UnsummarizedTokensLTE(v int) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldUnsummarizedTokens, v))
}

// TotalTokensEQ applies the EQ predicate on the "total_tokens" field.
func TotalTokensEQ(v int64) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldTotalTokens, v))
}

// TotalTokensNEQ applies the NEQ predicate on the "total_tokens" field.
func TotalTokensNEQ(v int64) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldTotalTokens, v))
}

// TotalTokensIn applies the In predicate on the "total_tokens" field.
func TotalTokensIn(vs ...int64) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldTotalTokens, vs...))
}

// TotalTokensNotIn applies the NotIn predicate on the "total_tokens" field.
func TotalTokensNotIn(vs ...int64) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldTotalTokens, vs...))
}

// TotalTokensGT applies the GT predicate on the "total_tokens" field.
func TotalTokensGT(v int64) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldTotalTokens, v))
}

// TotalTokensGTE applies the GTE predicate on the "total_tokens" field.
func TotalTokensGTE(v int64) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldTotalTokens, v))
}

// TotalTokensLT applies the LT predicate on the "total_tokens" field.
func TotalTokensLT(v int64) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldTotalTokens, v))
}

// TotalTokensLTE applies the LTE predicate on the "total_tokens" field.
func TotalTokensLTE(v int64) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldTotalTokens, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Ticket {
	return predicate.Ticket(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasProject applies the HasEdge predicate on the "project" edge.
func HasProject() predicate.Ticket {
	return predicate.Ticket(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProjectWith applies the HasEdge predicate on the "project" edge with a given conditions (other predicates).
func HasProjectWith(preds ...predicate.Project) predicate.Ticket {
	return predicate.Ticket(func(s *sql.Selector) {
		step := newProjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasParent applies the HasEdge predicate on the "parent" edge.
func HasParent() predicate.Ticket {
	return predicate.Ticket(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ParentTable, ParentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasParentWith applies the HasEdge predicate on the "parent" edge with a given conditions (other predicates).
func HasParentWith(preds ...predicate.Ticket) predicate.Ticket {
	return predicate.Ticket(func(s *sql.Selector) {
		step := newParentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasChildren applies the HasEdge predicate on the "children" edge.
func HasChildren() predicate.Ticket {
	return predicate.Ticket(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ChildrenTable, ChildrenColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasChildrenWith applies the HasEdge predicate on the "children" edge with a given conditions (other predicates).
func HasChildrenWith(preds ...predicate.Ticket) predicate.Ticket {
	return predicate.Ticket(func(s *sql.Selector) {
		step := newChildrenStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMessages applies the HasEdge predicate on the "messages" edge.
func HasMessages() predicate.Ticket {
	return predicate.Ticket(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MessagesTable, MessagesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMessagesWith applies the HasEdge predicate on the "messages" edge with a given conditions (other predicates).
func HasMessagesWith(preds ...predicate.Message) predicate.Ticket {
	return predicate.Ticket(func(s *sql.Selector) {
		step := newMessagesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasExtractions applies the HasEdge predicate on the "extractions" edge.
func HasExtractions() predicate.Ticket {
	return predicate.Ticket(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ExtractionsTable, ExtractionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasExtractionsWith applies the HasEdge predicate on the "extractions" edge with a given conditions (other predicates).
func HasExtractionsWith(preds ...predicate.Extraction) predicate.Ticket {
	return predicate.Ticket(func(s *sql.Selector) {
		step := newExtractionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSessions applies the HasEdge predicate on the "sessions" edge.
func HasSessions() predicate.Ticket {
	return predicate.Ticket(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SessionsTable, SessionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionsWith applies the HasEdge predicate on the "sessions" edge with a given conditions (other predicates).
func HasSessionsWith(preds ...predicate.ExecutionSession) predicate.Ticket {
	return predicate.Ticket(func(s *sql.Selector) {
		step := newSessionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPermissions applies the HasEdge predicate on the "permissions" edge.
func HasPermissions() predicate.Ticket {
	return predicate.Ticket(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, PermissionsTable, PermissionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPermissionsWith applies the HasEdge predicate on the "permissions" edge with a given conditions (other predicates).
func HasPermissionsWith(preds ...predicate.ApprovedPermission) predicate.Ticket {
	return predicate.Ticket(func(s *sql.Selector) {
		step := newPermissionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDependencies applies the HasEdge predicate on the "dependencies" edge.
func HasDependencies() predicate.Ticket {
	return predicate.Ticket(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DependenciesTable, DependenciesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDependenciesWith applies the HasEdge predicate on the "dependencies" edge with a given conditions (other predicates).
func HasDependenciesWith(preds ...predicate.TicketDependency) predicate.Ticket {
	return predicate.Ticket(func(s *sql.Selector) {
		step := newDependenciesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDependents applies the HasEdge predicate on the "dependents" edge.
func HasDependents() predicate.Ticket {
	return predicate.Ticket(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DependentsTable, DependentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDependentsWith applies the HasEdge predicate on the "dependents" edge with a given conditions (other predicates).
func HasDependentsWith(preds ...predicate.TicketDependency) predicate.Ticket {
	return predicate.Ticket(func(s *sql.Selector) {
		step := newDependentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Ticket) predicate.Ticket {
	return predicate.Ticket(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Ticket) predicate.Ticket {
	return predicate.Ticket(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Ticket) predicate.Ticket {
	return predicate.Ticket(sql.NotPredicates(p))
}

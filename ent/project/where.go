// Code generated by ent, DO NOT EDIT.

package project

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/fleetworks/conductor/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldID, id))
}

// Code applies equality check predicate on the "code" field. It's identical to CodeEQ.
func Code(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldCode, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldName, v))
}

// WebPath applies equality check predicate on the "web_path" field. It's identical to WebPathEQ.
func WebPath(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldWebPath, v))
}

// AppPath applies equality check predicate on the "app_path" field. It's identical to AppPathEQ.
func AppPath(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldAppPath, v))
}

// GitEnabled applies equality check predicate on the "git_enabled" field. It's identical to GitEnabledEQ.
func GitEnabled(v bool) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldGitEnabled, v))
}

// Archived applies equality check predicate on the "archived" field. It's identical to ArchivedEQ.
func Archived(v bool) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldArchived, v))
}

// Knowledge applies equality check predicate on the "knowledge" field. It's identical to KnowledgeEQ.
func Knowledge(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldKnowledge, v))
}

// MapContent applies equality check predicate on the "map_content" field. It's identical to MapContentEQ.
func MapContent(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldMapContent, v))
}

// MapGeneratedAt applies equality check predicate on the "map_generated_at" field. It's identical to MapGeneratedAtEQ.
func MapGeneratedAt(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldMapGeneratedAt, v))
}

// NextTicketSeq applies equality check predicate on the "next_ticket_seq" field. It's identical to NextTicketSeqEQ.
func NextTicketSeq(v int) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldNextTicketSeq, v))
}

// TotalInputTokens applies equality check predicate on the "total_input_tokens" field. It's identical to TotalInputTokensEQ.
func TotalInputTokens(v int64) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldTotalInputTokens, v))
}

// TotalOutputTokens applies equality check predicate on the "total_output_tokens" field. It's identical to TotalOutputTokensEQ.
func TotalOutputTokens(v int64) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldTotalOutputTokens, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldUpdatedAt, v))
}

// CodeEQ applies the EQ predicate on the "code" field.
func CodeEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldCode, v))
}

// CodeNEQ applies the NEQ predicate on the "code" field.
func CodeNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldCode, v))
}

// CodeIn applies the In predicate on the "code" field.
func CodeIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldCode, vs...))
}

// CodeNotIn applies the NotIn predicate on the "code" field.
func CodeNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldCode, vs...))
}

// CodeGT applies the GT predicate on the "code" field.
func CodeGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldCode, v))
}

// CodeGTE applies the GTE predicate on the "code" field.
func CodeGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldCode, v))
}

// CodeLT applies the LT predicate on the "code" field.
func CodeLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldCode, v))
}

// CodeLTE applies the LTE predicate on the "code" field.
func CodeLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldCode, v))
}

// CodeContains applies the Contains predicate on the "code" field.
func CodeContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldCode, v))
}

// CodeHasPrefix applies the HasPrefix predicate on the "code" field.
func CodeHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldCode, v))
}

// CodeHasSuffix applies the HasSuffix predicate on the "code" field.
func CodeHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldCode, v))
}

// CodeEqualFold applies the EqualFold predicate on the "code" field.
func CodeEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldCode, v))
}

// CodeContainsFold applies the ContainsFold predicate on the "code" field.
func CodeContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldCode, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldName, v))
}

// WebPathEQ applies the EQ predicate on the "web_path" field.
func WebPathEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldWebPath, v))
}

// WebPathNEQ applies the NEQ predicate on the "web_path" field.
func WebPathNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldWebPath, v))
}

// WebPathIn applies the In predicate on the "web_path" field.
func WebPathIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldWebPath, vs...))
}

// WebPathNotIn applies the NotIn predicate on the "web_path" field.
func WebPathNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldWebPath, vs...))
}

// WebPathGT applies the GT predicate on the "web_path" field.
func WebPathGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldWebPath, v))
}

// WebPathGTE applies the GTE predicate on the "web_path" field.
func WebPathGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldWebPath, v))
}

// WebPathLT applies the LT predicate on the "web_path" field.
func WebPathLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldWebPath, v))
}

// WebPathLTE applies the LTE predicate on the "web_path" field.
func WebPathLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldWebPath, v))
}

// WebPathContains applies the Contains predicate on the "web_path" field.
func WebPathContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldWebPath, v))
}

// WebPathHasPrefix applies the HasPrefix predicate on the "web_path" field.
func WebPathHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldWebPath, v))
}

// WebPathHasSuffix applies the HasSuffix predicate on the "web_path" field.
func WebPathHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldWebPath, v))
}

// WebPathIsNil applies the IsNil predicate on the "web_path" field.
func WebPathIsNil() predicate.Project {
	return predicate.Project(sql.FieldIsNull(FieldWebPath))
}

// WebPathNotNil applies the NotNil predicate on the "web_path" field.
func WebPathNotNil() predicate.Project {
	return predicate.Project(sql.FieldNotNull(FieldWebPath))
}

// WebPathEqualFold applies the EqualFold predicate on the "web_path" field.
func WebPathEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldWebPath, v))
}

// WebPathContainsFold applies the ContainsFold predicate on the "web_path" field.
func WebPathContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldWebPath, v))
}

// AppPathEQ applies the EQ predicate on the "app_path" field.
func AppPathEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldAppPath, v))
}

// AppPathNEQ applies the NEQ predicate on the "app_path" field.
func AppPathNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldAppPath, v))
}

// AppPathIn applies the In predicate on the "app_path" field.
func AppPathIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldAppPath, vs...))
}

// AppPathNotIn applies the NotIn predicate on the "app_path" field.
func AppPathNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldAppPath, vs...))
}

// AppPathGT applies the GT predicate on the "app_path" field.
func AppPathGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldAppPath, v))
}

// AppPathGTE applies the GTE predicate on the "app_path" field.
func AppPathGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldAppPath, v))
}

// AppPathLT applies the LT predicate on the "app_path" field.
func AppPathLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldAppPath, v))
}

// AppPathLTE applies the LTE predicate on the "app_path" field.
func AppPathLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldAppPath, v))
}

// AppPathContains applies the Contains predicate on the "app_path" field.
func AppPathContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldAppPath, v))
}

// AppPathHasPrefix applies the HasPrefix predicate on the "app_path" field.
func AppPathHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldAppPath, v))
}

// AppPathHasSuffix applies the HasSuffix predicate on the "app_path" field.
func AppPathHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldAppPath, v))
}

// AppPathIsNil applies the IsNil predicate on the "app_path" field.
func AppPathIsNil() predicate.Project {
	return predicate.Project(sql.FieldIsNull(FieldAppPath))
}

// AppPathNotNil applies the NotNil predicate on the "app_path" field.
func AppPathNotNil() predicate.Project {
	return predicate.Project(sql.FieldNotNull(FieldAppPath))
}

// AppPathEqualFold applies the EqualFold predicate on the "app_path" field.
func AppPathEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldAppPath, v))
}

// AppPathContainsFold applies the ContainsFold predicate on the "app_path" field.
func AppPathContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldAppPath, v))
}

// DefaultExecutionModeEQ applies the EQ predicate on the "default_execution_mode" field.
func DefaultExecutionModeEQ(v DefaultExecutionMode) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldDefaultExecutionMode, v))
}

// DefaultExecutionModeNEQ applies the NEQ predicate on the "default_execution_mode" field.
func DefaultExecutionModeNEQ(v DefaultExecutionMode) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldDefaultExecutionMode, v))
}

// DefaultExecutionModeIn applies the In predicate on the "default_execution_mode" field.
func DefaultExecutionModeIn(vs ...DefaultExecutionMode) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldDefaultExecutionMode, vs...))
}

// DefaultExecutionModeNotIn applies the NotIn predicate on the "default_execution_mode" field.
func DefaultExecutionModeNotIn(vs ...DefaultExecutionMode) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldDefaultExecutionMode, vs...))
}

// ModelTierEQ applies the EQ predicate on the "model_tier" field.
func ModelTierEQ(v ModelTier) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldModelTier, v))
}

// ModelTierNEQ applies the NEQ predicate on the "model_tier" field.
func ModelTierNEQ(v ModelTier) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldModelTier, v))
}

// ModelTierIn applies the In predicate on the "model_tier" field.
func ModelTierIn(vs ...ModelTier) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldModelTier, vs...))
}

// ModelTierNotIn applies the NotIn predicate on the "model_tier" field.
func ModelTierNotIn(vs ...ModelTier) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldModelTier, vs...))
}

// GitEnabledEQ applies the EQ predicate on the "git_enabled" field.
func GitEnabledEQ(v bool) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldGitEnabled, v))
}

// GitEnabledNEQ applies the NEQ predicate on the "git_enabled" field.
func GitEnabledNEQ(v bool) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldGitEnabled, v))
}

// ArchivedEQ applies the EQ predicate on the "archived" field.
func ArchivedEQ(v bool) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldArchived, v))
}

// ArchivedNEQ applies the NEQ predicate on the "archived" field.
func ArchivedNEQ(v bool) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldArchived, v))
}

// KnowledgeEQ applies the EQ predicate on the "knowledge" field.
func KnowledgeEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldKnowledge, v))
}

// KnowledgeNEQ applies the NEQ predicate on the "knowledge" field.
func KnowledgeNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldKnowledge, v))
}

// KnowledgeIn applies the In predicate on the "knowledge" field.
func KnowledgeIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldKnowledge, vs...))
}

// KnowledgeNotIn applies the NotIn predicate on the "knowledge" field.
func KnowledgeNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldKnowledge, vs...))
}

// KnowledgeGT applies the GT predicate on the "knowledge" field.
func KnowledgeGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldKnowledge, v))
}

// KnowledgeGTE applies the GTE predicate on the "knowledge" field.
func KnowledgeGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldKnowledge, v))
}

// KnowledgeLT applies the LT predicate on the "knowledge" field.
func KnowledgeLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldKnowledge, v))
}

// KnowledgeLTE applies the LTE predicate on the "knowledge" field.
func KnowledgeLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldKnowledge, v))
}

// KnowledgeContains applies the Contains predicate on the "knowledge" field.
func KnowledgeContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldKnowledge, v))
}

// KnowledgeHasPrefix applies the HasPrefix predicate on the "knowledge" field.
func KnowledgeHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldKnowledge, v))
}

// KnowledgeHasSuffix applies the HasSuffix predicate on the "knowledge" field.
func KnowledgeHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldKnowledge, v))
}

// KnowledgeIsNil applies the IsNil predicate on the "knowledge" field.
func KnowledgeIsNil() predicate.Project {
	return predicate.Project(sql.FieldIsNull(FieldKnowledge))
}

// KnowledgeNotNil applies the NotNil predicate on the "knowledge" field.
func KnowledgeNotNil() predicate.Project {
	return predicate.Project(sql.FieldNotNull(FieldKnowledge))
}

// KnowledgeEqualFold applies the EqualFold predicate on the "knowledge" field.
func KnowledgeEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldKnowledge, v))
}

// KnowledgeContainsFold applies the ContainsFold predicate on the "knowledge" field.
func KnowledgeContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldKnowledge, v))
}

// MapContentEQ applies the EQ predicate on the "map_content" field.
func MapContentEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldMapContent, v))
}

// MapContentNEQ applies the NEQ predicate on the "map_content" field.
func MapContentNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldMapContent, v))
}

// MapContentIn applies the In predicate on the "map_content" field.
func MapContentIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldMapContent, vs...))
}

// MapContentNotIn applies the NotIn predicate on the "map_content" field.
func MapContentNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldMapContent, vs...))
}

// MapContentGT applies the GT predicate on the "map_content" field.
func MapContentGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldMapContent, v))
}

// MapContentGTE applies the GTE predicate on the "map_content" field.
func MapContentGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldMapContent, v))
}

// MapContentLT applies the LT predicate on the "map_content" field.
func MapContentLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldMapContent, v))
}

// MapContentLTE applies the LTE predicate on the "map_content" field.
func MapContentLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldMapContent, v))
}

// MapContentContains applies the Contains predicate on the "map_content" field.
func MapContentContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldMapContent, v))
}

// MapContentHasPrefix applies the HasPrefix predicate on the "map_content" field.
func MapContentHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldMapContent, v))
}

// MapContentHasSuffix applies the HasSuffix predicate on the "map_content" field.
func MapContentHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldMapContent, v))
}

// MapContentIsNil applies the IsNil predicate on the "map_content" field.
func MapContentIsNil() predicate.Project {
	return predicate.Project(sql.FieldIsNull(FieldMapContent))
}

// MapContentNotNil applies the NotNil predicate on the "map_content" field.
func MapContentNotNil() predicate.Project {
	return predicate.Project(sql.FieldNotNull(FieldMapContent))
}

// MapContentEqualFold applies the EqualFold predicate on the "map_content" field.
func MapContentEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldMapContent, v))
}

// MapContentContainsFold applies the ContainsFold predicate on the "map_content" field.
func MapContentContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldMapContent, v))
}

// MapGeneratedAtEQ applies the EQ predicate on the "map_generated_at" field.
func MapGeneratedAtEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldMapGeneratedAt, v))
}

// MapGeneratedAtNEQ applies the NEQ predicate on the "map_generated_at" field.
func MapGeneratedAtNEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldMapGeneratedAt, v))
}

// MapGeneratedAtIn applies the In predicate on the "map_generated_at" field.
func MapGeneratedAtIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldMapGeneratedAt, vs...))
}

// MapGeneratedAtNotIn applies the NotIn predicate on the "map_generated_at" field.
func MapGeneratedAtNotIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldMapGeneratedAt, vs...))
}

// MapGeneratedAtGT applies the GT predicate on the "map_generated_at" field.
func MapGeneratedAtGT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldMapGeneratedAt, v))
}

// MapGeneratedAtGTE applies the GTE predicate on the "map_generated_at" field.
func MapGeneratedAtGTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldMapGeneratedAt, v))
}

// MapGeneratedAtLT applies the LT predicate on the "map_generated_at" field.
func MapGeneratedAtLT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldMapGeneratedAt, v))
}

// MapGeneratedAtLTE applies the LTE predicate on the "map_generated_at" field.
func MapGeneratedAtLTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldMapGeneratedAt, v))
}

// MapGeneratedAtIsNil applies the IsNil predicate on the "map_generated_at" field.
func MapGeneratedAtIsNil() predicate.Project {
	return predicate.Project(sql.FieldIsNull(FieldMapGeneratedAt))
}

// MapGeneratedAtNotNil applies the NotNil predicate on the "map_generated_at" field.
func MapGeneratedAtNotNil() predicate.Project {
	return predicate.Project(sql.FieldNotNull(FieldMapGeneratedAt))
}

// NextTicketSeqEQ applies the EQ predicate on the "next_ticket_seq" field.
func NextTicketSeqEQ(v int) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldNextTicketSeq, v))
}

// NextTicketSeqNEQ applies the NEQ predicate on the "next_ticket_seq" field.
func NextTicketSeqNEQ(v int) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldNextTicketSeq, v))
}

// NextTicketSeqIn applies the In predicate on the "next_ticket_seq" field.
func NextTicketSeqIn(vs ...int) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldNextTicketSeq, vs...))
}

// NextTicketSeqNotIn applies the NotIn predicate on the "next_ticket_seq" field.
func NextTicketSeqNotIn(vs ...int) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldNextTicketSeq, vs...))
}

// NextTicketSeqGT applies the GT predicate on the "next_ticket_seq" field.
func NextTicketSeqGT(v int) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldNextTicketSeq, v))
}

// NextTicketSeqGTE applies the GTE predicate on the "next_ticket_seq" field.
func NextTicketSeqGTE(v int) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldNextTicketSeq, v))
}

// NextTicketSeqLT applies the LT predicate on the "next_ticket_seq" field.
func NextTicketSeqLT(v int) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldNextTicketSeq, v))
}

// NextTicketSeqLTE applies the LTE predicate on the "next_ticket_seq" field.
func NextTicketSeqLTE(v int) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldNextTicketSeq, v))
}

// TotalInputTokensEQ applies the EQ predicate on the "total_input_tokens" field.
func TotalInputTokensEQ(v int64) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldTotalInputTokens, v))
}

// TotalInputTokensNEQ applies the NEQ predicate on the "total_input_tokens" field.
func TotalInputTokensNEQ(v int64) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldTotalInputTokens, v))
}

// TotalInputTokensIn applies the In predicate on the "total_input_tokens" field.
func TotalInputTokensIn(vs ...int64) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldTotalInputTokens, vs...))
}

// TotalInputTokensNotIn applies the NotIn predicate on the "total_input_tokens" field.
func TotalInputTokensNotIn(vs ...int64) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldTotalInputTokens, vs...))
}

// TotalInputTokensGT applies the GT predicate on the "total_input_tokens" field.
func TotalInputTokensGT(v int64) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldTotalInputTokens, v))
}

// TotalInputTokensGTE applies the GTE predicate on the "total_input_tokens" field.
func TotalInputTokensGTE(v int64) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldTotalInputTokens, v))
}

// TotalInputTokensLT applies the LT predicate on the "total_input_tokens" field.
func TotalInputTokensLT(v int64) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldTotalInputTokens, v))
}

// TotalInputTokensLTE applies the LTE predicate on the "total_input_tokens" field.
func TotalInputTokensLTE(v int64) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldTotalInputTokens, v))
}

// TotalOutputTokensEQ applies the EQ predicate on the "total_output_tokens" field.
func TotalOutputTokensEQ(v int64) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldTotalOutputTokens, v))
}

// TotalOutputTokensNEQ applies the NEQ predicate on the "total_output_tokens" field.
func TotalOutputTokensNEQ(v int64) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldTotalOutputTokens, v))
}

// TotalOutputTokensIn applies the In predicate on the "total_output_tokens" field.
func TotalOutputTokensIn(vs ...int64) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldTotalOutputTokens, vs...))
}

// TotalOutputTokensNotIn applies the NotIn predicate on the "total_output_tokens" field.
func TotalOutputTokensNotIn(vs ...int64) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldTotalOutputTokens, vs...))
}

// TotalOutputTokensGT applies the GT predicate on the "total_output_tokens" field.
func TotalOutputTokensGT(v int64) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldTotalOutputTokens, v))
}

// TotalOutputTokensGTE applies the GTE predicate on the "total_output_tokens" field.
func TotalOutputTokensGTE(v int64) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldTotalOutputTokens, v))
}

// TotalOutputTokensLT applies the LT predicate on the "total_output_tokens" field.
func TotalOutputTokensLT(v int64) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldTotalOutputTokens, v))
}

// TotalOutputTokensLTE applies the LTE predicate on the "total_output_tokens" field.
func TotalOutputTokensLTE(v int64) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldTotalOutputTokens, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasTickets applies the HasEdge predicate on the "tickets" edge.
func HasTickets() predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TicketsTable, TicketsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTicketsWith applies the HasEdge predicate on the "tickets" edge with a given conditions (other predicates).
func HasTicketsWith(preds ...predicate.Ticket) predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := newTicketsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Project) predicate.Project {
	return predicate.Project(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Project) predicate.Project {
	return predicate.Project(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Project) predicate.Project {
	return predicate.Project(sql.NotPredicates(p))
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/fleetworks/conductor/ent/approvedpermission"
	"github.com/fleetworks/conductor/ent/daemonstatus"
	"github.com/fleetworks/conductor/ent/executionsession"
	"github.com/fleetworks/conductor/ent/extraction"
	"github.com/fleetworks/conductor/ent/message"
	"github.com/fleetworks/conductor/ent/project"
	"github.com/fleetworks/conductor/ent/schema"
	"github.com/fleetworks/conductor/ent/ticket"
	"github.com/fleetworks/conductor/ent/ticketdependency"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	approvedpermissionFields := schema.ApprovedPermission{}.Fields()
	_ = approvedpermissionFields
	// approvedpermissionDescTool is the schema descriptor for tool field.
	approvedpermissionDescTool := approvedpermissionFields[1].Descriptor()
	// approvedpermission.ToolValidator is a validator for the "tool" field. It is called by the builders before save.
	approvedpermission.ToolValidator = approvedpermissionDescTool.Validators[0].(func(string) error)
	// approvedpermissionDescPattern is the schema descriptor for pattern field.
	approvedpermissionDescPattern := approvedpermissionFields[2].Descriptor()
	// approvedpermission.PatternValidator is a validator for the "pattern" field. It is called by the builders before save.
	approvedpermission.PatternValidator = approvedpermissionDescPattern.Validators[0].(func(string) error)
	// approvedpermissionDescCreatedAt is the schema descriptor for created_at field.
	approvedpermissionDescCreatedAt := approvedpermissionFields[3].Descriptor()
	// approvedpermission.DefaultCreatedAt holds the default value on creation for the created_at field.
	approvedpermission.DefaultCreatedAt = approvedpermissionDescCreatedAt.Default.(func() time.Time)
	daemonstatusFields := schema.DaemonStatus{}.Fields()
	_ = daemonstatusFields
	// daemonstatusDescActiveTickets is the schema descriptor for active_tickets field.
	daemonstatusDescActiveTickets := daemonstatusFields[2].Descriptor()
	// daemonstatus.DefaultActiveTickets holds the default value on creation for the active_tickets field.
	daemonstatus.DefaultActiveTickets = daemonstatusDescActiveTickets.Default.(int)
	// daemonstatusDescLastHeartbeatAt is the schema descriptor for last_heartbeat_at field.
	daemonstatusDescLastHeartbeatAt := daemonstatusFields[4].Descriptor()
	// daemonstatus.DefaultLastHeartbeatAt holds the default value on creation for the last_heartbeat_at field.
	daemonstatus.DefaultLastHeartbeatAt = daemonstatusDescLastHeartbeatAt.Default.(func() time.Time)
	// daemonstatus.UpdateDefaultLastHeartbeatAt holds the default value on update for the last_heartbeat_at field.
	daemonstatus.UpdateDefaultLastHeartbeatAt = daemonstatusDescLastHeartbeatAt.UpdateDefault.(func() time.Time)
	// daemonstatusDescStartedAt is the schema descriptor for started_at field.
	daemonstatusDescStartedAt := daemonstatusFields[5].Descriptor()
	// daemonstatus.DefaultStartedAt holds the default value on creation for the started_at field.
	daemonstatus.DefaultStartedAt = daemonstatusDescStartedAt.Default.(func() time.Time)
	// daemonstatusDescPid is the schema descriptor for pid field.
	daemonstatusDescPid := daemonstatusFields[6].Descriptor()
	// daemonstatus.DefaultPid holds the default value on creation for the pid field.
	daemonstatus.DefaultPid = daemonstatusDescPid.Default.(int)
	executionsessionFields := schema.ExecutionSession{}.Fields()
	_ = executionsessionFields
	// executionsessionDescInputTokens is the schema descriptor for input_tokens field.
	executionsessionDescInputTokens := executionsessionFields[3].Descriptor()
	// executionsession.DefaultInputTokens holds the default value on creation for the input_tokens field.
	executionsession.DefaultInputTokens = executionsessionDescInputTokens.Default.(int64)
	// executionsessionDescOutputTokens is the schema descriptor for output_tokens field.
	executionsessionDescOutputTokens := executionsessionFields[4].Descriptor()
	// executionsession.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	executionsession.DefaultOutputTokens = executionsessionDescOutputTokens.Default.(int64)
	// executionsessionDescCacheReadTokens is the schema descriptor for cache_read_tokens field.
	executionsessionDescCacheReadTokens := executionsessionFields[5].Descriptor()
	// executionsession.DefaultCacheReadTokens holds the default value on creation for the cache_read_tokens field.
	executionsession.DefaultCacheReadTokens = executionsessionDescCacheReadTokens.Default.(int64)
	// executionsessionDescCacheCreationTokens is the schema descriptor for cache_creation_tokens field.
	executionsessionDescCacheCreationTokens := executionsessionFields[6].Descriptor()
	// executionsession.DefaultCacheCreationTokens holds the default value on creation for the cache_creation_tokens field.
	executionsession.DefaultCacheCreationTokens = executionsessionDescCacheCreationTokens.Default.(int64)
	// executionsessionDescAPICalls is the schema descriptor for api_calls field.
	executionsessionDescAPICalls := executionsessionFields[7].Descriptor()
	// executionsession.DefaultAPICalls holds the default value on creation for the api_calls field.
	executionsession.DefaultAPICalls = executionsessionDescAPICalls.Default.(int)
	// executionsessionDescStartedAt is the schema descriptor for started_at field.
	executionsessionDescStartedAt := executionsessionFields[9].Descriptor()
	// executionsession.DefaultStartedAt holds the default value on creation for the started_at field.
	executionsession.DefaultStartedAt = executionsessionDescStartedAt.Default.(func() time.Time)
	extractionFields := schema.Extraction{}.Fields()
	_ = extractionFields
	// extractionDescTokensBefore is the schema descriptor for tokens_before field.
	extractionDescTokensBefore := extractionFields[9].Descriptor()
	// extraction.DefaultTokensBefore holds the default value on creation for the tokens_before field.
	extraction.DefaultTokensBefore = extractionDescTokensBefore.Default.(int)
	// extractionDescTokensAfter is the schema descriptor for tokens_after field.
	extractionDescTokensAfter := extractionFields[10].Descriptor()
	// extraction.DefaultTokensAfter holds the default value on creation for the tokens_after field.
	extraction.DefaultTokensAfter = extractionDescTokensAfter.Default.(int)
	// extractionDescCreatedAt is the schema descriptor for created_at field.
	extractionDescCreatedAt := extractionFields[11].Descriptor()
	// extraction.DefaultCreatedAt holds the default value on creation for the created_at field.
	extraction.DefaultCreatedAt = extractionDescCreatedAt.Default.(func() time.Time)
	messageFields := schema.Message{}.Fields()
	_ = messageFields
	// messageDescTokenCount is the schema descriptor for token_count field.
	messageDescTokenCount := messageFields[5].Descriptor()
	// message.DefaultTokenCount holds the default value on creation for the token_count field.
	message.DefaultTokenCount = messageDescTokenCount.Default.(int)
	// messageDescIsSummarized is the schema descriptor for is_summarized field.
	messageDescIsSummarized := messageFields[6].Descriptor()
	// message.DefaultIsSummarized holds the default value on creation for the is_summarized field.
	message.DefaultIsSummarized = messageDescIsSummarized.Default.(bool)
	// messageDescCreatedAt is the schema descriptor for created_at field.
	messageDescCreatedAt := messageFields[7].Descriptor()
	// message.DefaultCreatedAt holds the default value on creation for the created_at field.
	message.DefaultCreatedAt = messageDescCreatedAt.Default.(func() time.Time)
	projectFields := schema.Project{}.Fields()
	_ = projectFields
	// projectDescCode is the schema descriptor for code field.
	projectDescCode := projectFields[0].Descriptor()
	// project.CodeValidator is a validator for the "code" field. It is called by the builders before save.
	project.CodeValidator = projectDescCode.Validators[0].(func(string) error)
	// projectDescName is the schema descriptor for name field.
	projectDescName := projectFields[1].Descriptor()
	// project.NameValidator is a validator for the "name" field. It is called by the builders before save.
	project.NameValidator = projectDescName.Validators[0].(func(string) error)
	// projectDescGitEnabled is the schema descriptor for git_enabled field.
	projectDescGitEnabled := projectFields[6].Descriptor()
	// project.DefaultGitEnabled holds the default value on creation for the git_enabled field.
	project.DefaultGitEnabled = projectDescGitEnabled.Default.(bool)
	// projectDescArchived is the schema descriptor for archived field.
	projectDescArchived := projectFields[7].Descriptor()
	// project.DefaultArchived holds the default value on creation for the archived field.
	project.DefaultArchived = projectDescArchived.Default.(bool)
	// projectDescNextTicketSeq is the schema descriptor for next_ticket_seq field.
	projectDescNextTicketSeq := projectFields[11].Descriptor()
	// project.DefaultNextTicketSeq holds the default value on creation for the next_ticket_seq field.
	project.DefaultNextTicketSeq = projectDescNextTicketSeq.Default.(int)
	// projectDescTotalInputTokens is the schema descriptor for total_input_tokens field.
	projectDescTotalInputTokens := projectFields[12].Descriptor()
	// project.DefaultTotalInputTokens holds the default value on creation for the total_input_tokens field.
	project.DefaultTotalInputTokens = projectDescTotalInputTokens.Default.(int64)
	// projectDescTotalOutputTokens is the schema descriptor for total_output_tokens field.
	projectDescTotalOutputTokens := projectFields[13].Descriptor()
	// project.DefaultTotalOutputTokens holds the default value on creation for the total_output_tokens field.
	project.DefaultTotalOutputTokens = projectDescTotalOutputTokens.Default.(int64)
	// projectDescCreatedAt is the schema descriptor for created_at field.
	projectDescCreatedAt := projectFields[14].Descriptor()
	// project.DefaultCreatedAt holds the default value on creation for the created_at field.
	project.DefaultCreatedAt = projectDescCreatedAt.Default.(func() time.Time)
	// projectDescUpdatedAt is the schema descriptor for updated_at field.
	projectDescUpdatedAt := projectFields[15].Descriptor()
	// project.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	project.DefaultUpdatedAt = projectDescUpdatedAt.Default.(func() time.Time)
	// project.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	project.UpdateDefaultUpdatedAt = projectDescUpdatedAt.UpdateDefault.(func() time.Time)
	ticketFields := schema.Ticket{}.Fields()
	_ = ticketFields
	// ticketDescTitle is the schema descriptor for title field.
	ticketDescTitle := ticketFields[2].Descriptor()
	// ticket.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	ticket.TitleValidator = ticketDescTitle.Validators[0].(func(string) error)
	// ticketDescIsForced is the schema descriptor for is_forced field.
	ticketDescIsForced := ticketFields[8].Descriptor()
	// ticket.DefaultIsForced holds the default value on creation for the is_forced field.
	ticket.DefaultIsForced = ticketDescIsForced.Default.(bool)
	// ticketDescDepsIncludeAwaiting is the schema descriptor for deps_include_awaiting field.
	ticketDescDepsIncludeAwaiting := ticketFields[10].Descriptor()
	// ticket.DefaultDepsIncludeAwaiting holds the default value on creation for the deps_include_awaiting field.
	ticket.DefaultDepsIncludeAwaiting = ticketDescDepsIncludeAwaiting.Default.(bool)
	// ticketDescMaxRetries is the schema descriptor for max_retries field.
	ticketDescMaxRetries := ticketFields[12].Descriptor()
	// ticket.DefaultMaxRetries holds the default value on creation for the max_retries field.
	ticket.DefaultMaxRetries = ticketDescMaxRetries.Default.(int)
	// ticket.MaxRetriesValidator is a validator for the "max_retries" field. It is called by the builders before save.
	ticket.MaxRetriesValidator = ticketDescMaxRetries.Validators[0].(func(int) error)
	// ticketDescRetryCount is the schema descriptor for retry_count field.
	ticketDescRetryCount := ticketFields[13].Descriptor()
	// ticket.DefaultRetryCount holds the default value on creation for the retry_count field.
	ticket.DefaultRetryCount = ticketDescRetryCount.Default.(int)
	// ticket.RetryCountValidator is a validator for the "retry_count" field. It is called by the builders before save.
	ticket.RetryCountValidator = ticketDescRetryCount.Validators[0].(func(int) error)
	// ticketDescReviewAttempts is the schema descriptor for review_attempts field.
	ticketDescReviewAttempts := ticketFields[16].Descriptor()
	// ticket.DefaultReviewAttempts holds the default value on creation for the review_attempts field.
	ticket.DefaultReviewAttempts = ticketDescReviewAttempts.Default.(int)
	// ticketDescResultSummary is the schema descriptor for result_summary field.
	ticketDescResultSummary := ticketFields[19].Descriptor()
	// ticket.ResultSummaryValidator is a validator for the "result_summary" field. It is called by the builders before save.
	ticket.ResultSummaryValidator = ticketDescResultSummary.Validators[0].(func(string) error)
	// ticketDescUnsummarizedTokens is the schema descriptor for unsummarized_tokens field.
	ticketDescUnsummarizedTokens := ticketFields[20].Descriptor()
	// ticket.DefaultUnsummarizedTokens holds the default value on creation for the unsummarized_tokens field.
	ticket.DefaultUnsummarizedTokens = ticketDescUnsummarizedTokens.Default.(int)
	// ticketDescTotalTokens is the schema descriptor for total_tokens field.
	ticketDescTotalTokens := ticketFields[21].Descriptor()
	// ticket.DefaultTotalTokens holds the default value on creation for the total_tokens field.
	ticket.DefaultTotalTokens = ticketDescTotalTokens.Default.(int64)
	// ticketDescCreatedAt is the schema descriptor for created_at field.
	ticketDescCreatedAt := ticketFields[22].Descriptor()
	// ticket.DefaultCreatedAt holds the default value on creation for the created_at field.
	ticket.DefaultCreatedAt = ticketDescCreatedAt.Default.(func() time.Time)
	// ticketDescUpdatedAt is the schema descriptor for updated_at field.
	ticketDescUpdatedAt := ticketFields[23].Descriptor()
	// ticket.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	ticket.DefaultUpdatedAt = ticketDescUpdatedAt.Default.(func() time.Time)
	// ticket.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	ticket.UpdateDefaultUpdatedAt = ticketDescUpdatedAt.UpdateDefault.(func() time.Time)
	ticketdependencyFields := schema.TicketDependency{}.Fields()
	_ = ticketdependencyFields
	// ticketdependencyDescCreatedAt is the schema descriptor for created_at field.
	ticketdependencyDescCreatedAt := ticketdependencyFields[2].Descriptor()
	// ticketdependency.DefaultCreatedAt holds the default value on creation for the created_at field.
	ticketdependency.DefaultCreatedAt = ticketdependencyDescCreatedAt.Default.(func() time.Time)
}

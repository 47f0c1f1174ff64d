package services

import (
	"context"
	"testing"

	"github.com/fleetworks/conductor/ent/message"
	testdb "github.com/fleetworks/conductor/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractionService_Apply(t *testing.T) {
	client := testdb.NewTestClient(t)
	messages := NewMessageService(client.Client, nil)
	svc := NewExtractionService(client.Client)
	ctx := context.Background()

	proj := createTestProject(t, client.Client, "EXT")
	tk := createTestTicket(t, client.Client, proj.ID, "long conversation")

	ids := make([]int, 0, 4)
	for _, content := range []string{"analyzed the bug", "patched handler", "ran tests", "all green"} {
		msg, err := messages.Append(ctx, AppendMessage{
			TicketID: tk.ID,
			Role:     message.RoleAssistant,
			Content:  content,
		})
		require.NoError(t, err)
		ids = append(ids, msg.ID)
	}

	before, err := client.Client.Ticket.Get(ctx, tk.ID)
	require.NoError(t, err)
	require.Positive(t, before.UnsummarizedTokens)

	t.Run("covers range and recomputes totals", func(t *testing.T) {
		ext, err := svc.Apply(ctx, tk.ID, ids[0], ids[2], ExtractionContent{
			Decisions:      "patch the handler in place",
			ProblemsSolved: "nil dereference on login",
			TestsStatus:    "unit tests passing",
		})
		require.NoError(t, err)

		assert.Equal(t, ids[0], ext.FromMessageID)
		assert.Equal(t, ids[2], ext.ToMessageID)
		assert.Positive(t, ext.TokensBefore)
		assert.Positive(t, ext.TokensAfter)

		remaining, err := messages.Unsummarized(ctx, tk.ID)
		require.NoError(t, err)
		require.Len(t, remaining, 1)
		assert.Equal(t, ids[3], remaining[0].ID)

		reloaded, err := client.Client.Ticket.Get(ctx, tk.ID)
		require.NoError(t, err)
		assert.Equal(t, remaining[0].TokenCount, reloaded.UnsummarizedTokens)
		assert.Less(t, reloaded.UnsummarizedTokens, before.UnsummarizedTokens)
	})

	t.Run("extractions accumulate in coverage order", func(t *testing.T) {
		_, err := svc.Apply(ctx, tk.ID, ids[3], ids[3], ExtractionContent{
			ImportantNotes: "deploy pending",
		})
		require.NoError(t, err)

		all, err := svc.ListByTicket(ctx, tk.ID)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, ids[0], all[0].FromMessageID)
		assert.Equal(t, ids[3], all[1].FromMessageID)

		reloaded, err := client.Client.Ticket.Get(ctx, tk.ID)
		require.NoError(t, err)
		assert.Zero(t, reloaded.UnsummarizedTokens)
	})

	t.Run("rejects inverted range", func(t *testing.T) {
		_, err := svc.Apply(ctx, tk.ID, ids[2], ids[0], ExtractionContent{})
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects empty range", func(t *testing.T) {
		_, err := svc.Apply(ctx, tk.ID, ids[3]+100, ids[3]+200, ExtractionContent{})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/fleetworks/conductor/pkg/agent"
	"github.com/fleetworks/conductor/pkg/models"
)

const hookDecidePath = "/api/v1/internal/hooks/decide"

// hookCmd is the pre-tool shim the agent CLI invokes for every tool call in
// semi-autonomous mode. It reads the hook request from stdin, asks the
// daemon, and prints the verdict to stdout. Every failure degrades to "ask":
// a broken daemon must surface tools to the operator, never wave them
// through.
func hookCmd() *cobra.Command {
	var (
		ticketID int
		endpoint string
		timeout  time.Duration
	)
	cmd := &cobra.Command{
		Use:    "hook",
		Short:  "Pre-tool permission shim invoked by the agent CLI",
		Hidden: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			verdict := decide(cmd.InOrStdin(), ticketID, endpoint, timeout)
			return json.NewEncoder(cmd.OutOrStdout()).Encode(verdict)
		},
	}
	cmd.Flags().IntVar(&ticketID, "ticket", 0, "ticket the agent run belongs to")
	cmd.Flags().StringVar(&endpoint, "endpoint", "http://127.0.0.1:8090", "daemon base URL")
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "decision request timeout")
	return cmd
}

func decide(in io.Reader, ticketID int, endpoint string, timeout time.Duration) models.HookDecideResponse {
	ask := func(reason string) models.HookDecideResponse {
		return models.HookDecideResponse{Decision: string(agent.DecisionAsk), Reason: reason}
	}

	var req agent.HookRequest
	if err := json.NewDecoder(in).Decode(&req); err != nil {
		return ask("unreadable hook request: " + err.Error())
	}

	body, err := json.Marshal(models.HookDecideRequest{
		TicketID: ticketID,
		Tool:     req.Tool,
		Input:    req.Input,
	})
	if err != nil {
		return ask(err.Error())
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(endpoint+hookDecidePath, "application/json", bytes.NewReader(body))
	if err != nil {
		return ask("daemon unreachable: " + err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ask(fmt.Sprintf("daemon answered %d", resp.StatusCode))
	}

	var verdict models.HookDecideResponse
	if err := json.NewDecoder(resp.Body).Decode(&verdict); err != nil {
		return ask("unreadable daemon response: " + err.Error())
	}
	return verdict
}

package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetworks/conductor/pkg/models"
)

func TestDecide_ForwardsDaemonVerdict(t *testing.T) {
	var got models.HookDecideRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, hookDecidePath, r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.HookDecideResponse{
			Decision: "allow",
			Reason:   "matches approved pattern git *",
		})
	}))
	defer srv.Close()

	stdin := strings.NewReader(`{"tool":"bash","input":"git push origin main"}`)
	verdict := decide(stdin, 42, srv.URL, 5*time.Second)

	assert.Equal(t, "allow", verdict.Decision)
	assert.Contains(t, verdict.Reason, "git *")
	assert.Equal(t, 42, got.TicketID)
	assert.Equal(t, "bash", got.Tool)
	assert.Equal(t, "git push origin main", got.Input)
}

func TestDecide_FailsTowardAsk(t *testing.T) {
	t.Run("daemon unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		srv.Close()

		verdict := decide(strings.NewReader(`{"tool":"bash","input":"ls"}`), 1, srv.URL, time.Second)
		assert.Equal(t, "ask", verdict.Decision)
		assert.Contains(t, verdict.Reason, "daemon unreachable")
	})

	t.Run("daemon error status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		verdict := decide(strings.NewReader(`{"tool":"bash","input":"ls"}`), 1, srv.URL, time.Second)
		assert.Equal(t, "ask", verdict.Decision)
		assert.Contains(t, verdict.Reason, "404")
	})

	t.Run("malformed stdin", func(t *testing.T) {
		verdict := decide(strings.NewReader("not json"), 1, "http://127.0.0.1:1", time.Second)
		assert.Equal(t, "ask", verdict.Decision)
		assert.Contains(t, verdict.Reason, "unreadable hook request")
	})
}

func TestHookBaseURL(t *testing.T) {
	assert.Equal(t, "http://127.0.0.1:8090", hookBaseURL(":8090"))
	assert.Equal(t, "http://127.0.0.1:9000", hookBaseURL("0.0.0.0:9000"))
	assert.Equal(t, "http://127.0.0.1:8090", hookBaseURL("bogus"))
}

package discord

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

// fakeSession returns a session whose HTTP layer records requests
// instead of hitting Discord.
func fakeSession(t *testing.T, requests *[]*http.Request) *discordgo.Session {
	t.Helper()

	session, err := discordgo.New("Bot test-token")
	if err != nil {
		t.Fatalf("failed to create session: %v", err)
	}

	session.Client = &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		*requests = append(*requests, r)
		return &http.Response{
			StatusCode: http.StatusNoContent,
			Body:       io.NopCloser(strings.NewReader("")),
			Header:     make(http.Header),
		}, nil
	})}

	return session
}

func TestRunCommandDeletesProvisionalReplyOnError(t *testing.T) {
	var requests []*http.Request
	session := fakeSession(t, &requests)

	client := &ExtendedClient{Session: session}
	ctx := &CommandContext{
		Session: session,
		Client:  client,
		Interaction: &discordgo.InteractionCreate{
			Interaction: &discordgo.Interaction{AppID: "42", Token: "tok"},
		},
	}

	cmd := NewCommand("boom", "always fails", "misc", func(*CommandContext) error {
		return fmt.Errorf("boom")
	})

	client.runCommand("boom", cmd, ctx)

	if len(requests) != 1 {
		t.Fatalf("recorded %d requests after a failed handler, want 1", len(requests))
	}
	if requests[0].Method != http.MethodDelete {
		t.Errorf("cleanup request method = %q, want %q", requests[0].Method, http.MethodDelete)
	}
	if !strings.Contains(requests[0].URL.Path, "/webhooks/42/tok") {
		t.Errorf("cleanup request path = %q, want the interaction response endpoint", requests[0].URL.Path)
	}
}

func TestRunCommandLeavesReplyOnSuccess(t *testing.T) {
	var requests []*http.Request
	session := fakeSession(t, &requests)

	client := &ExtendedClient{Session: session}
	ctx := &CommandContext{
		Session: session,
		Client:  client,
		Interaction: &discordgo.InteractionCreate{
			Interaction: &discordgo.Interaction{AppID: "42", Token: "tok"},
		},
	}

	cmd := NewCommand("fine", "never fails", "misc", func(*CommandContext) error {
		return nil
	})

	client.runCommand("fine", cmd, ctx)

	if len(requests) != 0 {
		t.Errorf("recorded %d requests after a successful handler, want 0", len(requests))
	}
}

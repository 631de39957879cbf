package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roundTripperFunc func(req *http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func newTestClient(f roundTripperFunc) *http.Client {
	return &http.Client{Transport: f}
}

func TestSlackNotifier(t *testing.T) {
	var sent slackMessage
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, "Bearer token", req.Header.Get("Authorization"))

		body, err := io.ReadAll(req.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &sent))

		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(`{"ok":true}`)),
			Header:     http.Header{},
		}, nil
	})

	n := &SlackNotifier{
		Channel:    "#loads",
		Token:      "token",
		IconEmoji:  ":emoji:",
		Username:   "username",
		HTTPClient: client,
	}

	r := &Result{
		Source: "gs://b/file.csv",
		Table:  "p.d.t",
		Rows:   5,
	}

	require.NoError(t, n.Notify(context.Background(), r))
	assert.Equal(t, "#loads", sent.Channel)
	assert.Equal(t, "loaded gs://b/file.csv into p.d.t: 5 rows", sent.Text)
}

func TestSlackNotifier_FailureMessage(t *testing.T) {
	var sent slackMessage
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		body, _ := io.ReadAll(req.Body)
		_ = json.Unmarshal(body, &sent)

		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(`{"ok":true}`)),
			Header:     http.Header{},
		}, nil
	})

	n := &SlackNotifier{Channel: "#loads", Token: "token", HTTPClient: client}

	r := &Result{
		Source: "gs://b/file.csv",
		Table:  "p.d.t",
		Error:  fmt.Errorf("load job j1 failed"),
	}

	require.NoError(t, n.Notify(context.Background(), r))
	assert.Equal(t, "failed to load gs://b/file.csv into p.d.t: load job j1 failed", sent.Text)
}

func TestSlackNotifier_APIError(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(`{"ok":false,"error":"channel_not_found"}`)),
			Header:     http.Header{},
		}, nil
	})

	n := &SlackNotifier{Channel: "#nope", Token: "token", HTTPClient: client}

	err := n.Notify(context.Background(), &Result{Source: "gs://b/file.csv", Table: "p.d.t"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "channel_not_found")
}

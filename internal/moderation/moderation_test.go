package moderation

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qanda-dev/qanda/internal/errors"
)

func newTestClient(url string) *Client {
	return New(url, "test-key", 2*time.Second)
}

func TestCheckSuccessReturnsCensoredContent(t *testing.T) {
	var gotKey, gotBody, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("apikey")
		gotQuery = r.URL.RawQuery
		raw, _ := io.ReadAll(r.Body)
		gotBody = string(raw)

		w.Write([]byte(`{
			"content": "a shitty sentence",
			"bad_words_total": 1,
			"bad_words_list": [{"original": "shitty", "word": "shitty", "deviations": 0, "info": 2, "replacedLen": 6}],
			"censored_content": "a ****** sentence"
		}`))
	}))
	defer server.Close()

	censored, err := newTestClient(server.URL).Check(context.Background(), "a shitty sentence")
	require.NoError(t, err)

	assert.Equal(t, "a ****** sentence", censored)
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, "a shitty sentence", gotBody)
	assert.Equal(t, "censor_character=*", gotQuery)
}

func TestCheckClientFault(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message": "Invalid authentication credentials"}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Check(context.Background(), "some text")
	require.Error(t, err)

	e, ok := err.(*errors.Error)
	require.True(t, ok)
	assert.Equal(t, errors.ModerationClientFault, e.Kind)
	assert.Equal(t, http.StatusUnauthorized, e.Fault.Status)
	assert.Equal(t, "Invalid authentication credentials", e.Fault.Message)
}

func TestCheckServerFault(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"message": "upstream overloaded"}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Check(context.Background(), "some text")
	require.Error(t, err)

	e, ok := err.(*errors.Error)
	require.True(t, ok)
	assert.Equal(t, errors.ModerationServerFault, e.Kind)
	assert.Equal(t, http.StatusServiceUnavailable, e.Fault.Status)
	assert.Equal(t, "upstream overloaded", e.Fault.Message)
}

func TestCheckUnfollowedRedirectIsServerFault(t *testing.T) {
	// 304 is a 3xx the client hands back as-is. It is neither success nor
	// a client error, so it lands on the server-fault side.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotModified)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Check(context.Background(), "some text")
	require.Error(t, err)

	e, ok := err.(*errors.Error)
	require.True(t, ok)
	assert.Equal(t, errors.ModerationServerFault, e.Kind)
	assert.Equal(t, http.StatusNotModified, e.Fault.Status)
	assert.Empty(t, e.Fault.Message)
}

func TestCheckConnectionFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // nothing is listening anymore

	_, err := newTestClient(server.URL).Check(context.Background(), "some text")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ModerationUnreachable))
}

func TestCheckTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := New(server.URL, "test-key", 10*time.Millisecond)
	_, err := client.Check(context.Background(), "some text")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ModerationUnreachable))
}

func TestCheckUndecodableSuccessBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>definitely not json</html>`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Check(context.Background(), "some text")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ModerationUnreachable))
}

func TestCheckUndecodableFaultBodyKeepsStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`oops`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Check(context.Background(), "some text")
	require.Error(t, err)

	e, ok := err.(*errors.Error)
	require.True(t, ok)
	assert.Equal(t, errors.ModerationClientFault, e.Kind)
	assert.Equal(t, http.StatusBadRequest, e.Fault.Status)
	assert.Empty(t, e.Fault.Message)
}

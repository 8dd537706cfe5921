package main

import (
	"context"
	"github.com/myrjola/pitwall/internal/e2etest"
	"github.com/stretchr/testify/require"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

const providerAnswer = "The leading car crashed while entering the high-speed chicane."

type fakeProvider struct {
	url   string
	calls atomic.Int64
}

// newFakeProvider starts a server speaking the OpenAI chat completion protocol. It fails every request when
// status is not 200.
func newFakeProvider(t *testing.T, status int) *fakeProvider {
	t.Helper()
	provider := &fakeProvider{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		provider.calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		if status != http.StatusOK {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(`{"error":{"message":"provider unavailable","type":"server_error"}}`))
			return
		}
		_, _ = w.Write([]byte(`{"choices":[{"index":0,"message":{"role":"assistant","content":"  ` +
			providerAnswer + `\n"}}]}`))
	}))
	t.Cleanup(srv.Close)
	provider.url = srv.URL
	return provider
}

func testLookupEnv(overrides map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		if v, ok := overrides[key]; ok {
			return v, true
		}
		switch key {
		case "PITWALL_ADDR":
			return "localhost:0", true
		case "GEMINI_API_KEY":
			return "test-key", true
		default:
			return "", false
		}
	}
}

// startTestServer starts the application against provider and returns a client for it.
func startTestServer(t *testing.T, provider *fakeProvider, env map[string]string) *e2etest.Client {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	overrides := map[string]string{"PITWALL_LLM_BASE_URL": provider.url}
	for k, v := range env {
		overrides[k] = v
	}
	server, err := e2etest.StartServer(ctx, io.Discard, testLookupEnv(overrides), run)
	require.NoError(t, err)
	return server.Client()
}

package generation

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	Path   string
	Auth   string
	Body   map[string]any
	Called int32
}

func newUpstream(t *testing.T, status int, body string) (*httptest.Server, *capturedRequest) {
	t.Helper()
	captured := &capturedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&captured.Called, 1)
		captured.Path = r.URL.Path
		captured.Auth = r.Header.Get("Authorization")
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &captured.Body)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, captured
}

func newTestClient(baseURL string) *Client {
	return NewClient(Config{BaseURL: baseURL, APIKey: "test-key", HTTPClient: http.DefaultClient})
}

func TestGenerate_Success(t *testing.T) {
	srv, captured := newUpstream(t, http.StatusOK,
		`{"id":"x","object":"chat.completion","choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":"<div class=\"p-4\">Quiz</div>"}}]}`)

	content, err := newTestClient(srv.URL).Generate(context.Background(), "Make a quiz", "education", "quiz")
	require.NoError(t, err)
	assert.Equal(t, `<div class="p-4">Quiz</div>`, content)

	assert.Equal(t, "/chat/completions", captured.Path)
	assert.Equal(t, "Bearer test-key", captured.Auth)
	assert.Equal(t, DefaultModel, captured.Body["model"])
	assert.InDelta(t, 0.7, captured.Body["temperature"], 1e-9)
	assert.EqualValues(t, 2000, captured.Body["max_tokens"])

	messages, ok := captured.Body["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 2)
	system := messages[0].(map[string]any)
	user := messages[1].(map[string]any)
	assert.Equal(t, "system", system["role"])
	assert.Equal(t, "You are an AI assistant specialized in generating education content. Your task is to create quiz based on the user's requirements.", system["content"])
	assert.Equal(t, "user", user["role"])
	assert.Equal(t, "Make a quiz", user["content"])
}

func TestDo_StatusErrorIsNotRetried(t *testing.T) {
	srv, captured := newUpstream(t, http.StatusServiceUnavailable, `{"error":{"message":"overloaded"}}`)

	res := newTestClient(srv.URL).Do(context.Background(), Request{Prompt: "p", Category: "marketing", ContentType: "ad banner"})
	require.False(t, res.OK())
	assert.Equal(t, KindStatus, res.Err.Kind)
	assert.Equal(t, http.StatusServiceUnavailable, res.Err.StatusCode)
	assert.Equal(t, "status", res.Outcome())
	assert.EqualValues(t, 1, atomic.LoadInt32(&captured.Called))
}

func TestDo_EmptyChoicesIsMalformed(t *testing.T) {
	srv, _ := newUpstream(t, http.StatusOK, `{"id":"x","choices":[]}`)

	res := newTestClient(srv.URL).Do(context.Background(), Request{Prompt: "p", Category: "healthcare", ContentType: "chart"})
	require.False(t, res.OK())
	assert.Equal(t, KindMalformed, res.Err.Kind)
}

func TestDo_MissingContentIsMalformed(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty message", `{"choices":[{"index":0,"message":{}}]}`},
		{"null content", `{"choices":[{"index":0,"message":{"role":"assistant","content":null}}]}`},
		{"no message", `{"choices":[{"index":0}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newUpstream(t, http.StatusOK, tt.body)

			res := newTestClient(srv.URL).Do(context.Background(), Request{Prompt: "p", Category: "education", ContentType: "quiz"})
			require.False(t, res.OK())
			assert.Equal(t, KindMalformed, res.Err.Kind)
			assert.Equal(t, "malformed", res.Outcome())
			assert.True(t, errors.Is(res.Err, ErrGenerationFailed))
		})
	}
}

func TestDo_UnreachableIsNetwork(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	res := newTestClient(url).Do(context.Background(), Request{Prompt: "p", Category: "architecture", ContentType: "floor plan"})
	require.False(t, res.OK())
	assert.Equal(t, KindNetwork, res.Err.Kind)
}

func TestGenerate_ErrorMatchesSentinel(t *testing.T) {
	srv, _ := newUpstream(t, http.StatusUnauthorized, `{"error":{"message":"bad key"}}`)

	_, err := newTestClient(srv.URL).Generate(context.Background(), "p", "education", "quiz")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrGenerationFailed))

	var genErr *Error
	require.True(t, errors.As(err, &genErr))
	assert.Equal(t, http.StatusUnauthorized, genErr.StatusCode)
}

func TestDescribeImage(t *testing.T) {
	srv, captured := newUpstream(t, http.StatusOK,
		`{"choices":[{"index":0,"message":{"role":"assistant","content":"A sunlit atrium."}}]}`)

	text, err := newTestClient(srv.URL).DescribeImage(context.Background(), "https://img.example/a.png", "architecture")
	require.NoError(t, err)
	assert.Equal(t, "A sunlit atrium.", text)
	assert.EqualValues(t, 500, captured.Body["max_tokens"])

	messages := captured.Body["messages"].([]any)
	require.Len(t, messages, 1)
	assert.Equal(t,
		"Analyze this image for the architecture industry and describe what you see. The image is at: https://img.example/a.png",
		messages[0].(map[string]any)["content"])
}

func TestWrapDocument(t *testing.T) {
	doc := WrapDocument("<h1>Hi</h1>")
	assert.Contains(t, doc, "<!DOCTYPE html>")
	assert.Contains(t, doc, `<meta charset="UTF-8">`)
	assert.Contains(t, doc, `<meta name="viewport" content="width=device-width, initial-scale=1.0">`)
	assert.Contains(t, doc, `<script src="https://cdn.tailwindcss.com"></script>`)
	assert.Contains(t, doc, "<body>\n<h1>Hi</h1>\n</body>")
}

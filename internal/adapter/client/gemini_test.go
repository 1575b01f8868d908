package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGeminiTestServer(t *testing.T, handler func(path string, body map[string]any) string) *GeminiClient {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(handler(r.URL.Path, body)))
	}))
	t.Cleanup(srv.Close)

	c, err := NewGeminiClient(context.Background(), GeminiConfig{
		APIKey:     "test-key",
		BaseURL:    srv.URL + "/",
		Model:      "gemini-2.5-flash",
		ImageModel: "imagen-3.0-generate-002",
	})
	require.NoError(t, err)
	return c
}

func TestGeminiClient_GenerateText(t *testing.T) {
	var gotPath string
	var got map[string]any
	c := newGeminiTestServer(t, func(path string, body map[string]any) string {
		gotPath, got = path, body
		return `{"candidates":[{"content":{"role":"model","parts":[{"text":"Sales are up"}]}}]}`
	})

	text, err := c.GenerateText(context.Background(), "Summarize sales", 500)
	require.NoError(t, err)

	assert.Equal(t, "Sales are up", text)
	assert.True(t, strings.HasSuffix(gotPath, "gemini-2.5-flash:generateContent"), gotPath)
	gen := got["generationConfig"].(map[string]any)
	assert.EqualValues(t, 500, gen["maxOutputTokens"])
}

func TestGeminiClient_GenerateObjectRequestsJSON(t *testing.T) {
	var got map[string]any
	c := newGeminiTestServer(t, func(_ string, body map[string]any) string {
		got = body
		return `{"candidates":[{"content":{"role":"model","parts":[{"text":"{\"summary\":\"ok\",\"anomalies\":[\"x\"]}"}]}}]}`
	})

	raw, err := c.GenerateObject(context.Background(), "analyze")
	require.NoError(t, err)

	assert.JSONEq(t, `{"summary":"ok","anomalies":["x"]}`, raw)
	gen := got["generationConfig"].(map[string]any)
	assert.Equal(t, "application/json", gen["responseMimeType"])
	assert.NotNil(t, gen["responseSchema"])
}

func TestGeminiClient_GenerateImage(t *testing.T) {
	c := newGeminiTestServer(t, func(path string, _ map[string]any) string {
		assert.True(t, strings.HasSuffix(path, ":predict"), path)
		return `{"predictions":[{"bytesBase64Encoded":"Zm9v","mimeType":"image/png"}]}`
	})

	payload, err := c.GenerateImage(context.Background(), "a red cube", "512x512")
	require.NoError(t, err)
	assert.Equal(t, "Zm9v", payload)
}

func TestGeminiClient_GenerateImageEmpty(t *testing.T) {
	c := newGeminiTestServer(t, func(string, map[string]any) string {
		return `{}`
	})

	payload, err := c.GenerateImage(context.Background(), "a red cube", "512x512")
	require.NoError(t, err)
	assert.Empty(t, payload)
}

func TestAspectRatio(t *testing.T) {
	tests := map[string]string{
		"1024x1024": "1:1",
		"512x512":   "1:1",
		"1792x1024": "16:9",
		"1024x1792": "9:16",
		"1024x768":  "4:3",
		"768x1024":  "3:4",
		"bogus":     "1:1",
		"0x100":     "1:1",
		"":          "1:1",
	}
	for size, want := range tests {
		assert.Equal(t, want, aspectRatio(size), size)
	}
}

func TestUnavailableClient(t *testing.T) {
	u := UnavailableClient{Err: assert.AnError}

	_, err := u.GenerateText(context.Background(), "p", 1)
	assert.ErrorIs(t, err, assert.AnError)
	_, err = u.GenerateObject(context.Background(), "p")
	assert.ErrorIs(t, err, assert.AnError)
	_, err = u.GenerateImage(context.Background(), "p", "1x1")
	assert.ErrorIs(t, err, assert.AnError)
}

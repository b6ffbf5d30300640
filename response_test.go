package redaxios

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawWithBody(body string) *RawResponse {
	return &RawResponse{
		Status:     200,
		StatusText: "OK",
		OK:         true,
		URL:        "https://api.example/posts/1",
		Type:       "basic",
		Headers:    Headers{"content-type": "application/json"},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestDecodeBodyParsesJSON(t *testing.T) {
	resp := newResponse(rawWithBody(`{"id":1,"title":"t"}`), &Config{}, "text")
	resp.decodeBody()

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok, "Data should be the parsed JSON value")
	assert.Equal(t, float64(1), data["id"])
	assert.Equal(t, "t", data["title"])
	assert.True(t, resp.BodyUsed)
}

func TestDecodeBodyKeepsTextWhenNotJSON(t *testing.T) {
	resp := newResponse(rawWithBody("plain body"), &Config{}, "text")
	resp.decodeBody()

	assert.Equal(t, "plain body", resp.Data)
	assert.Equal(t, "plain body", resp.Text())
}

func TestDecodeBodyEmptyKeepsEmptyText(t *testing.T) {
	resp := newResponse(rawWithBody(""), &Config{}, "text")
	resp.decodeBody()

	assert.Equal(t, "", resp.Data)
}

func TestDecodeBodyStreamPassesRawStream(t *testing.T) {
	raw := rawWithBody(`{"id":1}`)
	resp := newResponse(raw, &Config{}, "stream")
	resp.decodeBody()

	stream, ok := resp.Data.(io.ReadCloser)
	require.True(t, ok, "stream responses expose the raw byte stream")
	assert.False(t, resp.BodyUsed)

	contents, err := io.ReadAll(stream)
	require.NoError(t, err)
	assert.Equal(t, `{"id":1}`, string(contents))
}

func TestResponseCopiesRawFields(t *testing.T) {
	raw := &RawResponse{
		Status:     301,
		StatusText: "Moved Permanently",
		OK:         false,
		Redirected: true,
		URL:        "https://moved.example/",
		Type:       "basic",
		Headers:    Headers{"location": "https://moved.example/"},
		Body:       io.NopCloser(strings.NewReader("")),
	}
	cfg := &Config{Method: "get"}

	resp := newResponse(raw, cfg, "text")

	assert.Equal(t, 301, resp.Status)
	assert.Equal(t, "Moved Permanently", resp.StatusText)
	assert.False(t, resp.OK)
	assert.True(t, resp.Redirected)
	assert.Equal(t, "https://moved.example/", resp.URL)
	assert.Equal(t, "basic", resp.Type)
	assert.Equal(t, "https://moved.example/", resp.GetHeader("Location"))
	assert.Same(t, cfg, resp.Config)
	assert.Equal(t, "text", resp.ResponseType)
}

func TestResponseJSONStrict(t *testing.T) {
	resp := newResponse(rawWithBody(`{"id":7}`), &Config{}, "text")
	resp.decodeBody()

	var out struct {
		ID int `json:"id"`
	}
	require.NoError(t, resp.JSON(&out))
	assert.Equal(t, 7, out.ID)

	bad := newResponse(rawWithBody("not json"), &Config{}, "text")
	bad.decodeBody()
	assert.Error(t, bad.JSON(&out))
}

func TestResponseGetPath(t *testing.T) {
	resp := newResponse(rawWithBody(`{"items":[{"name":"first"},{"name":"second"}]}`), &Config{}, "text")
	resp.decodeBody()

	assert.Equal(t, "first", resp.Get("items.0.name").String())
	assert.Equal(t, int64(2), resp.Get("items.#").Int())
}

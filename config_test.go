package redaxios

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveConfigOverrideWinsForScalars(t *testing.T) {
	base := &Config{Method: "get", BaseURL: "https://api.example", ResponseType: "text"}
	override := &Config{Method: "post", ResponseType: "stream"}

	out := resolveConfig(base, override)

	assert.Equal(t, "post", out.Method)
	assert.Equal(t, "https://api.example", out.BaseURL)
	assert.Equal(t, "stream", out.ResponseType)
}

func TestResolveConfigHeadersMergeCaseInsensitively(t *testing.T) {
	base := &Config{Headers: Headers{"Content-Type": "text/plain", "Accept": "*/*"}}
	override := &Config{Headers: Headers{"content-type": "application/json"}}

	out := resolveConfig(base, override)

	require.Len(t, out.Headers, 2)
	assert.Equal(t, "application/json", out.Headers.Get("Content-Type"))
	assert.Equal(t, "*/*", out.Headers.Get("accept"))
}

func TestResolveConfigTransformChainsConcatenate(t *testing.T) {
	var order []string
	base := &Config{TransformRequest: []Transform{
		func(body any, _ Headers) any { order = append(order, "base"); return nil },
	}}
	override := &Config{TransformRequest: []Transform{
		func(body any, _ Headers) any { order = append(order, "override"); return nil },
	}}

	out := resolveConfig(base, override)
	require.Len(t, out.TransformRequest, 2)

	for _, transform := range out.TransformRequest {
		transform(nil, nil)
	}
	assert.Equal(t, []string{"base", "override"}, order)
}

func TestResolveConfigParamsMerge(t *testing.T) {
	base := &Config{Params: map[string]string{"page": "1", "q": "old"}}
	override := &Config{Params: map[string]string{"q": "new"}}

	out := resolveConfig(base, override)

	assert.Equal(t, map[string]string{"page": "1", "q": "new"}, out.Params)
}

func TestResolveConfigExtraMergesRecursively(t *testing.T) {
	base := &Config{Extra: map[string]any{
		"fetch": map[string]any{"mode": "cors", "cache": "default"},
	}}
	override := &Config{Extra: map[string]any{
		"fetch": map[string]any{"cache": "no-store"},
	}}

	out := resolveConfig(base, override)

	assert.Equal(t, map[string]any{
		"fetch": map[string]any{"mode": "cors", "cache": "no-store"},
	}, out.Extra)
}

func TestResolveConfigDoesNotMutateInputs(t *testing.T) {
	base := &Config{
		Method:  "get",
		Headers: Headers{"accept": "text/plain"},
		Params:  map[string]string{"q": "x"},
	}
	override := &Config{
		Method:  "post",
		Headers: Headers{"accept": "application/json"},
	}

	resolveConfig(base, override)

	assert.Equal(t, "get", base.Method)
	assert.Equal(t, "text/plain", base.Headers.Get("accept"))
	assert.Equal(t, map[string]string{"q": "x"}, base.Params)
	assert.Equal(t, "application/json", override.Headers.Get("accept"))
}

func TestResolveConfigNilInputs(t *testing.T) {
	out := resolveConfig(nil, nil)
	require.NotNil(t, out)
	assert.Equal(t, "", out.Method)

	out = resolveConfig(nil, &Config{Method: "put"})
	assert.Equal(t, "put", out.Method)
}

func TestConfigCloneIsIndependent(t *testing.T) {
	original := &Config{
		Headers: Headers{"accept": "a"},
		Params:  map[string]string{"q": "x"},
	}

	clone := original.Clone()
	clone.Headers.Set("accept", "b")
	clone.Params["q"] = "y"

	assert.Equal(t, "a", original.Headers.Get("accept"))
	assert.Equal(t, "x", original.Params["q"])
}

func TestDefaultSerializeParams(t *testing.T) {
	got := defaultSerializeParams(map[string]string{"b": "2", "a": "1 2"})
	assert.Equal(t, "a=1+2&b=2", got)
}

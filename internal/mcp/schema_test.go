package mcp

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// toolJSON renders tool the way tools/list sends it.
func toolJSON(t *testing.T, name string) map[string]any {
	t.Helper()
	data, err := json.Marshal(BuildMCPTool(mustTool(t, name)))
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

func property(t *testing.T, tool map[string]any, name string) map[string]any {
	t.Helper()
	schema, ok := tool["inputSchema"].(map[string]any)
	require.True(t, ok, "inputSchema missing")
	props, ok := schema["properties"].(map[string]any)
	require.True(t, ok, "properties missing")
	prop, ok := props[name].(map[string]any)
	require.Truef(t, ok, "property %s missing", name)
	return prop
}

func TestBuildMCPTool_Annotations(t *testing.T) {
	tool := toolJSON(t, "get_recent_observations")
	assert.Equal(t, "get_recent_observations", tool["name"])
	assert.NotEmpty(t, tool["description"])

	ann, ok := tool["annotations"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, ann["readOnlyHint"])
	assert.Equal(t, false, ann["destructiveHint"])
	assert.Equal(t, true, ann["idempotentHint"])
	assert.Equal(t, true, ann["openWorldHint"])
	assert.Equal(t, "Recent observations in a region", ann["title"])
}

func TestBuildMCPTool_UsesHostFacingNames(t *testing.T) {
	tool := toolJSON(t, "get_recent_observations")
	schema := tool["inputSchema"].(map[string]any)
	props := schema["properties"].(map[string]any)

	assert.Contains(t, props, "region_code")
	assert.Contains(t, props, "max_results")
	assert.Contains(t, props, "include_provisional")
	assert.NotContains(t, props, "regionCode")
	assert.NotContains(t, props, "maxResults")

	assert.ElementsMatch(t, []any{"region_code"}, schema["required"])
}

func TestBuildMCPTool_NumberConstraints(t *testing.T) {
	tool := toolJSON(t, "get_recent_observations")

	back := property(t, tool, "back")
	assert.Equal(t, "number", back["type"])
	assert.Equal(t, 1.0, back["minimum"])
	assert.Equal(t, 30.0, back["maximum"])
	assert.Equal(t, 14.0, back["default"])

	maxResults := property(t, tool, "max_results")
	assert.Equal(t, 10000.0, maxResults["maximum"])
	assert.NotContains(t, maxResults, "default")
}

func TestBuildMCPTool_EnumsAndDefaults(t *testing.T) {
	tool := toolJSON(t, "get_recent_observations")

	detail := property(t, tool, "detail")
	assert.Equal(t, "string", detail["type"])
	assert.Equal(t, []any{"simple", "full"}, detail["enum"])

	hotspot := property(t, tool, "hotspot")
	assert.Equal(t, "boolean", hotspot["type"])
	assert.Equal(t, false, hotspot["default"])

	locale := property(t, tool, "spp_locale")
	assert.Equal(t, "en", locale["default"])
}

func TestBuildMCPTool_ArrayItems(t *testing.T) {
	regions := property(t, toolJSON(t, "get_historic_observations"), "regions")
	assert.Equal(t, "array", regions["type"])

	items, ok := regions["items"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "string", items["type"])
}

func TestBuildMCPTool_NoParams(t *testing.T) {
	tool := toolJSON(t, "get_taxonomy_versions")
	schema := tool["inputSchema"].(map[string]any)
	assert.Equal(t, "object", schema["type"])
	assert.Empty(t, schema["required"])
}

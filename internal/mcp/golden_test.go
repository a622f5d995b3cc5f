package mcp

import (
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var updateGolden = flag.Bool("update", false, "rewrite testdata/requests.golden.json from the current catalog")

type goldenCase struct {
	Tool string         `json:"tool"`
	Args map[string]any `json:"args"`
	URL  string         `json:"url"`
}

func catalogByName(t *testing.T) map[string]ToolSpec {
	t.Helper()
	byName := map[string]ToolSpec{}
	for _, ts := range Catalog() {
		byName[ts.Name] = ts
	}
	return byName
}

func TestCatalog_GoldenRequests(t *testing.T) {
	path := filepath.Join("testdata", "requests.golden.json")
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var cases []goldenCase
	require.NoError(t, json.Unmarshal(data, &cases))

	byName := catalogByName(t)
	covered := map[string]bool{}

	for i, tc := range cases {
		ts, ok := byName[tc.Tool]
		require.Truef(t, ok, "golden case for unknown tool %q", tc.Tool)

		req, err := BuildRequest(ts, tc.Args)
		require.NoErrorf(t, err, "tool %s", tc.Tool)

		if *updateGolden {
			cases[i].URL = req.URL()
		} else {
			assert.Equalf(t, tc.URL, req.URL(), "tool %s", tc.Tool)
		}
		covered[tc.Tool] = true
	}

	for name := range byName {
		assert.Truef(t, covered[name], "tool %s has no golden request", name)
	}

	if *updateGolden {
		out, err := json.MarshalIndent(cases, "", "  ")
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(path, append(out, '\n'), 0o644))
	}
}

func TestCatalog_GoldenRequestsAreDeterministic(t *testing.T) {
	byName := catalogByName(t)
	ts := byName["get_historic_observations"]
	args := map[string]any{
		"region_code": "US-NY", "year": 2024.0, "month": 5.0, "day": 11.0,
		"regions": []any{"US-NY", "US-NJ", "US-CT"}, "detail": "full",
	}

	first, err := BuildRequest(ts, args)
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		again, err := BuildRequest(ts, args)
		require.NoError(t, err)
		assert.Equal(t, first.URL(), again.URL())
	}
}

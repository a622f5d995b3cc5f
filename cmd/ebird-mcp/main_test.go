package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobmcallan/ebird-mcp/internal/common"
	"github.com/bobmcallan/ebird-mcp/internal/config"
	"github.com/bobmcallan/ebird-mcp/internal/mcp"
)

// stubHooks replaces newServer and serve for the duration of the test.
func stubHooks(t *testing.T, serveErr error) (built *int, served *int) {
	t.Helper()
	origNew, origServe := newServer, serve
	t.Cleanup(func() { newServer, serve = origNew, origServe })

	var b, s int
	newServer = func(cfg *config.Config, d mcp.Dispatcher, logger *common.Logger) *server.MCPServer {
		b++
		return origNew(cfg, d, common.NewSilentLogger())
	}
	serve = func(*server.MCPServer, io.Writer) error {
		s++
		return serveErr
	}
	return &b, &s
}

func setEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv("EBIRD_API_KEY", key)
	t.Setenv("EBIRD_BASE_URL", "")
	t.Setenv("EBIRD_TIMEOUT", "")
	t.Setenv("EBIRD_LOG_LEVEL", "error")
	t.Setenv("EBIRD_LOG_OUTPUTS", "")
}

func TestRun_MissingAPIKeyExitsBeforeServing(t *testing.T) {
	setEnv(t, "")
	built, served := stubHooks(t, nil)

	var stderr bytes.Buffer
	code := run(filepath.Join(t.TempDir(), "missing.toml"), &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "EBIRD_API_KEY")
	assert.Zero(t, *built, "server must not be built without a key")
	assert.Zero(t, *served)
}

func TestRun_WhitespaceAPIKeyIsMissing(t *testing.T) {
	setEnv(t, "   ")
	built, _ := stubHooks(t, nil)

	var stderr bytes.Buffer
	assert.Equal(t, 1, run("", &stderr))
	assert.Zero(t, *built)
}

func TestRun_InvalidConfigFile(t *testing.T) {
	setEnv(t, "test-key")
	built, _ := stubHooks(t, nil)

	path := filepath.Join(t.TempDir(), "ebird-mcp.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ebird\nbase_url = "), 0o644))

	var stderr bytes.Buffer
	assert.Equal(t, 1, run(path, &stderr))
	assert.NotEmpty(t, stderr.String())
	assert.Zero(t, *built)
}

func TestRun_InvalidBaseURL(t *testing.T) {
	setEnv(t, "test-key")
	t.Setenv("EBIRD_BASE_URL", "not a url")
	built, _ := stubHooks(t, nil)

	var stderr bytes.Buffer
	assert.Equal(t, 1, run("", &stderr))
	assert.Contains(t, stderr.String(), "invalid configuration")
	assert.Zero(t, *built)
}

func TestRun_ServesWithKey(t *testing.T) {
	setEnv(t, "test-key")
	built, served := stubHooks(t, nil)

	var stderr bytes.Buffer
	assert.Equal(t, 0, run("", &stderr))
	assert.Equal(t, 1, *built)
	assert.Equal(t, 1, *served)
}

func TestRun_ServeErrorExitsNonZero(t *testing.T) {
	setEnv(t, "test-key")
	_, served := stubHooks(t, errors.New("stdin closed unexpectedly"))

	var stderr bytes.Buffer
	assert.Equal(t, 1, run("", &stderr))
	assert.Equal(t, 1, *served)
	assert.Contains(t, stderr.String(), "stdin closed unexpectedly")
}

// TestMain_MissingAPIKeyProcessExit runs the binary in a subprocess so the
// real exit status and stdout can be checked.
func TestMain_MissingAPIKeyProcessExit(t *testing.T) {
	if os.Getenv("EBIRD_MCP_HELPER") == "1" {
		os.Args = []string{"ebird-mcp", "-config", filepath.Join(os.TempDir(), "ebird-mcp-does-not-exist.toml")}
		main()
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestMain_MissingAPIKeyProcessExit$")
	cmd.Env = append(os.Environ(), "EBIRD_MCP_HELPER=1", "EBIRD_API_KEY=")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	require.True(t, errors.As(err, &exitErr), "expected non-zero exit, got %v", err)
	assert.Equal(t, 1, exitErr.ExitCode())
	assert.Contains(t, stderr.String(), "EBIRD_API_KEY")
	assert.False(t, strings.Contains(stdout.String(), "jsonrpc"))
}

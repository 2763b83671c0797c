// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"testing"
	"testing/fstest"
	"time"

	"github.com/H0llyW00dzZ/relevant-args/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/relevant-args/src/mcp-server/templates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFramework(t *testing.T) *CLIFramework {
	t.Helper()

	tools, toolsWithConfig := createTools()
	instructions, err := loadInstructions(templates.MagicEmbed, tools, toolsWithConfig)
	require.NoError(t, err)

	return NewCLIFramework("", ServerDependencies{
		Version:         "1.0.0-test",
		Tools:           tools,
		ToolsWithConfig: toolsWithConfig,
		Resources:       createResources(),
		Prompts:         createPrompts(),
		Instructions:    instructions,
	})
}

func TestBuildRootCommand(t *testing.T) {
	cmd := newTestFramework(t).BuildRootCommand()

	assert.Equal(t, posix.GetExecutableName(), cmd.Use)
	assert.Equal(t, "1.0.0-test", cmd.Version)
	assert.Contains(t, cmd.Long, "Model Context Protocol server")
	assert.Contains(t, cmd.Long, "--instructions")
	assert.NotContains(t, cmd.Long, "## Examples")
	assert.Contains(t, cmd.Example, "--config config.yaml")

	for _, name := range []string{"instructions", "config", "verbose"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}
}

func TestBuildRootCommand_Instructions(t *testing.T) {
	cf := newTestFramework(t)
	cmd := cf.BuildRootCommand()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--instructions"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, cf.deps.Instructions, out.String())
}

func TestBuildRootCommand_UnexpectedArguments(t *testing.T) {
	cmd := newTestFramework(t).BuildRootCommand()
	cmd.SetOut(io.Discard)
	cmd.SetArgs([]string{"serve"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected arguments: serve")
}

func TestBuildRootCommand_BadConfig(t *testing.T) {
	cmd := newTestFramework(t).BuildRootCommand()
	cmd.SetIn(bytes.NewReader(nil))
	cmd.SetOut(io.Discard)
	cmd.SetArgs([]string{"--config", "/nonexistent/config.json"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestBuildRootCommand_PanicsOnBrokenHelpTemplate(t *testing.T) {
	cf := newTestFramework(t)
	cf.embed = mapFS{fstest.MapFS{templates.CLIHelp: {Data: []byte("no examples marker")}}}

	assert.Panics(t, func() { cf.BuildRootCommand() })
}

func TestParseTemplateResult(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantLong    string
		wantExample string
		wantErr     bool
	}{
		{
			name:        "unix line endings",
			input:       "Long text.\n\n## Examples\n\n  run it\n",
			wantLong:    "Long text.",
			wantExample: "  run it",
		},
		{
			name:        "windows line endings",
			input:       "Long text.\r\n## Examples\r\n  run it\r\n",
			wantLong:    "Long text.",
			wantExample: "  run it",
		},
		{
			name:     "marker at end",
			input:    "Long text.\n## Examples",
			wantLong: "Long text.",
		},
		{
			name:    "missing marker",
			input:   "Long text only",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			long, examples, err := parseTemplateResult(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLong, long)
			assert.Equal(t, tt.wantExample, examples)
		})
	}
}

func TestStartMCPServer_ServesStdio(t *testing.T) {
	t.Setenv(configEnvVar, "")

	inReader, inWriter := io.Pipe()
	outReader, outWriter := io.Pipe()
	var stderr bytes.Buffer

	cmd := newTestFramework(t).BuildRootCommand()
	cmd.SetIn(inReader)
	cmd.SetOut(outWriter)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"--verbose"})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- cmd.ExecuteContext(ctx) }()

	_, err := io.WriteString(inWriter, `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2024-11-05","capabilities":{},"clientInfo":{"name":"test","version":"0.0.0"}}}`+"\n")
	require.NoError(t, err)

	line, err := bufio.NewReader(outReader).ReadBytes('\n')
	require.NoError(t, err)

	var response struct {
		ID     int `json:"id"`
		Result struct {
			ServerInfo struct {
				Name    string `json:"name"`
				Version string `json:"version"`
			} `json:"serverInfo"`
			Instructions string `json:"instructions"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(line, &response))
	assert.Equal(t, 1, response.ID)
	assert.Equal(t, serverName, response.Result.ServerInfo.Name)
	assert.Equal(t, "1.0.0-test", response.Result.ServerInfo.Version)
	assert.Contains(t, response.Result.Instructions, "extract_relevant_args")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err, "cancellation is a clean shutdown")
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after cancellation")
	}
	inWriter.Close()
	outWriter.Close()

	assert.Contains(t, stderr.String(), `"message":"Relevant Args MCP server 1.0.0-test started"`)
}

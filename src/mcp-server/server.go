// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync/atomic"

	"github.com/H0llyW00dzZ/relevant-args/src/mcp-server/templates"
	"github.com/H0llyW00dzZ/relevant-args/src/version"
	"github.com/mark3labs/mcp-go/server"
)

var appVersion atomic.Value

func init() { appVersion.Store(version.Version) }

// GetVersion returns the version announced by the MCP server.
//
// It defaults to [version.Version] and is replaced by the version passed to [Run].
func GetVersion() string {
	return appVersion.Load().(string)
}

// Run builds the server command for version and executes it against args.
//
// With no arguments the command serves MCP over stdin and stdout until ctx is
// cancelled or a SIGINT or SIGTERM arrives. A shutdown by signal is not an error.
//
// Configuration:
//   - --config or MCP_RELEVANT_ARGS_CONFIG_FILE names a JSON or YAML config file
//   - --instructions prints the client instructions and exits
//   - --verbose writes JSON log lines for every tool call to stderr
func Run(ctx context.Context, version string, args []string) error {
	if version != "" {
		appVersion.Store(version)
	}

	tools, toolsWithConfig := createTools()

	instructions, err := loadInstructions(templates.MagicEmbed, tools, toolsWithConfig)
	if err != nil {
		return fmt.Errorf("failed to load instructions: %w", err)
	}

	cf := NewCLIFramework("", ServerDependencies{
		Version:         GetVersion(),
		Tools:           tools,
		ToolsWithConfig: toolsWithConfig,
		Resources:       createResources(),
		Prompts:         createPrompts(),
		Instructions:    instructions,
		PopulateCache:   true,
	})

	rootCmd := cf.BuildRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// serve runs s over the given stdio streams until ctx is done or in is closed.
// Cancellation of ctx is reported as a nil error.
func serve(ctx context.Context, s *server.MCPServer, in io.Reader, out io.Writer) error {
	stdioServer := server.NewStdioServer(s)

	err := stdioServer.Listen(ctx, in, out)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

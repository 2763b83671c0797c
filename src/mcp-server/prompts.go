// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// createPrompts creates and returns all MCP prompt definitions with their handlers
func createPrompts() []server.ServerPrompt {
	return []server.ServerPrompt{
		{
			Prompt: mcp.NewPrompt("integrate-relevant-args",
				mcp.WithPromptDescription("Guide for trimming a script's argument vector to its own arguments"),
				mcp.WithArgument("file_name",
					mcp.ArgumentDescription("Path of the script's source file"),
					mcp.RequiredArgument(),
				),
				mcp.WithArgument("bin_name",
					mcp.ArgumentDescription("Declared bin name of the script, if installed as a package bin"),
				),
				mcp.WithArgument("runner",
					mcp.ArgumentDescription("Command used to start the script, e.g. 'npx ts-node'"),
				),
			),
			Handler: handleIntegrationPrompt,
		},
		{
			Prompt: mcp.NewPrompt("troubleshoot-argument-match",
				mcp.WithPromptDescription("Walk through why an argument vector does not trim as expected"),
				mcp.WithArgument("file_name",
					mcp.ArgumentDescription("Path of the script's source file"),
					mcp.RequiredArgument(),
				),
				mcp.WithArgument("raw_args",
					mcp.ArgumentDescription("The raw argument vector, space separated"),
					mcp.RequiredArgument(),
				),
				mcp.WithArgument("bin_name",
					mcp.ArgumentDescription("Declared bin name of the script"),
				),
			),
			Handler: handleTroubleshootingPrompt,
		},
	}
}

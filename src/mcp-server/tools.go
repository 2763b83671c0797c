// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// Tool roles referenced by the instructions template.
const (
	roleExtractor = "extractor"
	roleBasename  = "basename"
)

// createTools creates and returns all MCP tool definitions with their handlers.
// It organizes tools into those that don't require configuration and those that
// read their defaults from the server configuration.
//
// The function defines the following tools:
//   - basename: Reduces a path to its final segment the way argument matching does
//   - extract_relevant_args: Trims a raw argument vector to the script's own arguments
func createTools() ([]ToolDefinition, []ToolDefinitionWithConfig) {
	tools := []ToolDefinition{
		{
			Tool: mcp.NewTool("basename",
				mcp.WithDescription("Return the final path segment used when matching arguments; both '/' and '\\' are separators"),
				mcp.WithString("path",
					mcp.Required(),
					mcp.Description("Path or argument to reduce"),
				),
			),
			Handler: handleBasename,
			Role:    roleBasename,
		},
	}

	toolsWithConfig := []ToolDefinitionWithConfig{
		{
			Tool: mcp.NewTool("extract_relevant_args",
				mcp.WithDescription("Trim a raw argument vector to the arguments that follow the script's file name or bin name"),
				mcp.WithArray("raw_args",
					mcp.Required(),
					mcp.Description("Full argument vector, e.g. [\"npx\", \"ts-node\", \"./src/my-script.ts\", \"--flag\"]"),
					mcp.WithStringItems(),
				),
				mcp.WithString("file_name",
					mcp.Required(),
					mcp.Description("Path of the script's source file; matched by basename"),
				),
				mcp.WithString("bin_name",
					mcp.Description("Declared bin name of the script (default: from server config, usually none)"),
				),
				mcp.WithBoolean("error_if_not_found",
					mcp.Description("Fail instead of returning raw_args unchanged when nothing matches (default: from server config, usually false)"),
				),
				mcp.WithString("format",
					mcp.Description("Output format: 'text', 'nul', 'json', 'yaml' or 'table' (default: from server config, usually json)"),
				),
			),
			Handler: handleExtractRelevantArgs,
			Role:    roleExtractor,
		},
	}

	return tools, toolsWithConfig
}

// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Resource URIs served by the MCP server.
const (
	configTemplateURI = "config://template"
	versionURI        = "info://version"
	usageURI          = "docs://usage"
)

// createResources creates and returns all MCP resource definitions with their handlers.
//
// The function defines the following resources:
//   - config://template: Example server configuration with every default
//   - info://version: Server version, capabilities and supported output formats
//   - docs://usage: Matching rules and output formats with worked examples
func createResources() []server.ServerResource {
	return []server.ServerResource{
		{
			Resource: mcp.NewResource(
				configTemplateURI,
				"Server Configuration Template",
				mcp.WithResourceDescription("Example configuration file for the MCP server"),
				mcp.WithMIMEType("application/json"),
			),
			Handler: handleConfigResource,
		},
		{
			Resource: mcp.NewResource(
				versionURI,
				"Version Information",
				mcp.WithResourceDescription("Server version and capabilities"),
				mcp.WithMIMEType("application/json"),
			),
			Handler: handleVersionResource,
		},
		{
			Resource: mcp.NewResource(
				usageURI,
				"Usage Documentation",
				mcp.WithResourceDescription("How raw arguments are matched and trimmed"),
				mcp.WithMIMEType("text/markdown"),
			),
			Handler: handleUsageResource,
		},
	}
}

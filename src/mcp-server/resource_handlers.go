// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/H0llyW00dzZ/relevant-args/src/mcp-server/templates"
	"github.com/H0llyW00dzZ/relevant-args/src/render"
	"github.com/mark3labs/mcp-go/mcp"
)

// handleConfigResource returns an example configuration file holding every default.
func handleConfigResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	exampleConfig := defaultConfig()
	exampleConfig.Defaults.BinName = "my-script"

	jsonData, err := json.MarshalIndent(exampleConfig, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config template: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      configTemplateURI,
			MIMEType: "application/json",
			Text:     string(jsonData),
		},
	}, nil
}

// handleVersionResource returns server metadata: name, version, capabilities and
// supported output formats. Capabilities come from the metadata cache populated at build time.
func handleVersionResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	versionInfo := map[string]any{
		"name":             serverName,
		"version":          GetVersion(),
		"type":             "MCP Server",
		"capabilities":     cache.capabilities(),
		"supportedFormats": render.Formats(),
	}

	jsonData, err := json.MarshalIndent(versionInfo, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal version info: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      versionURI,
			MIMEType: "application/json",
			Text:     string(jsonData),
		},
	}, nil
}

// handleUsageResource serves the embedded usage documentation.
func handleUsageResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	content, err := templates.MagicEmbed.ReadFile(templates.Usage)
	if err != nil {
		return nil, fmt.Errorf("failed to read usage documentation: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      usageURI,
			MIMEType: "text/markdown",
			Text:     string(content),
		},
	}, nil
}

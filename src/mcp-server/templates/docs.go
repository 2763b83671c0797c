// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package templates provides embedded filesystem access for MCP server template files.
// It holds the markdown sources of the server instructions and the usage
// documentation resource.
//
// The package provides thread-safe access to embedded files through the [EmbedFS] interface,
// with [MagicEmbed] serving as the default implementation.
//
// Example usage:
//
//	import "github.com/H0llyW00dzZ/relevant-args/src/mcp-server/templates"
//
//	content, err := templates.MagicEmbed.ReadFile("usage.md")
//	if err != nil {
//		return fmt.Errorf("failed to read usage documentation: %w", err)
//	}
package templates

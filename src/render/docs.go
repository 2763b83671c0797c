// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package render writes a trimmed argument list in the output formats shared by the
// CLI and the MCP server: plain lines, NUL-terminated records for xargs -0, JSON,
// YAML and a markdown table.
package render

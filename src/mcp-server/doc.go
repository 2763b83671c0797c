// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package mcpserver provides the [MCP] server for relevant argument extraction.
// It exposes the extractor and the basename rule it matches with as tools, serves
// a configuration template, version information and usage documentation as
// resources, and offers guided prompts for wiring the extractor into a script.
//
// Servers are assembled with [ServerBuilder] and run from the command line through
// [CLIFramework], which serves MCP over stdin and stdout.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
package mcpserver

// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// relevant-args-mcp serves the relevant argument extractor over the Model
// Context Protocol on stdin and stdout.
//
// # Usage
//
//	relevant-args-mcp [--config FILE] [--verbose]
//	relevant-args-mcp --instructions
//
// The configuration file, also accepted through MCP_RELEVANT_ARGS_CONFIG_FILE,
// supplies defaults for the extract_relevant_args tool:
//
//	defaults:
//	  binName: my-script
//	  errorIfNotFound: true
//	  format: json
package main

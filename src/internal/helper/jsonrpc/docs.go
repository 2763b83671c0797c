// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package jsonrpc provides helpers for decoding [JSON-RPC 2.0] parameters.
// MCP tool arguments arrive as generic maps; this package turns them into typed
// structs so handlers can rely on struct tags instead of type assertions.
//
// [JSON-RPC 2.0]: https://www.jsonrpc.org/specification
package jsonrpc

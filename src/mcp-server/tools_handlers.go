// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"fmt"

	"github.com/H0llyW00dzZ/relevant-args/src/internal/helper/jsonrpc"
	"github.com/H0llyW00dzZ/relevant-args/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/relevant-args/src/relevantargs"
	"github.com/H0llyW00dzZ/relevant-args/src/render"
	"github.com/mark3labs/mcp-go/mcp"
)

// extractParams mirrors the arguments of the extract_relevant_args tool.
// Pointer fields distinguish an omitted argument from its zero value.
type extractParams struct {
	RawArgs         []string `json:"raw_args"`
	FileName        *string  `json:"file_name"`
	BinName         *string  `json:"bin_name"`
	ErrorIfNotFound *bool    `json:"error_if_not_found"`
	Format          *string  `json:"format"`
}

// handleExtractRelevantArgs runs the argument extractor on the call's arguments.
//
// Omitted optional arguments take their values from config.Defaults. Invalid
// arguments and extraction failures are returned as tool errors, not protocol errors.
func handleExtractRelevantArgs(ctx context.Context, request mcp.CallToolRequest, config *Config) (*mcp.CallToolResult, error) {
	var params extractParams
	if err := jsonrpc.UnmarshalFromMap(request.GetArguments(), &params); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
	}

	if params.RawArgs == nil {
		return mcp.NewToolResultError("raw_args parameter required"), nil
	}
	if params.FileName == nil {
		return mcp.NewToolResultError("file_name parameter required"), nil
	}

	req := relevantargs.Request{
		RawArgs:         params.RawArgs,
		FileName:        *params.FileName,
		BinName:         config.Defaults.BinName,
		ErrorIfNotFound: config.Defaults.ErrorIfNotFound,
	}
	if params.BinName != nil {
		req.BinName = *params.BinName
	}
	if params.ErrorIfNotFound != nil {
		req.ErrorIfNotFound = *params.ErrorIfNotFound
	}

	formatName := config.Defaults.Format
	if params.Format != nil {
		formatName = *params.Format
	}
	format, err := render.ParseFormat(formatName)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	args, err := relevantargs.Extract(req)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("extraction failed: %v", err)), nil
	}

	output, err := render.String(args, format)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to render result: %v", err)), nil
	}

	return mcp.NewToolResultText(output), nil
}

// handleBasename returns the final segment of a path as the extractor sees it.
func handleBasename(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("path parameter required: %v", err)), nil
	}

	base := posix.Base(path)
	if base == "" {
		return mcp.NewToolResultError(fmt.Sprintf("path %q has no base name", path)), nil
	}

	return mcp.NewToolResultText(base), nil
}

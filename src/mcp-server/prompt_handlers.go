// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"text/template"

	"github.com/H0llyW00dzZ/relevant-args/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/relevant-args/src/mcp-server/templates"
	"github.com/mark3labs/mcp-go/mcp"
)

// errFileNameArgument is returned by prompts called without a file_name argument.
var errFileNameArgument = errors.New("file_name argument required")

// promptTemplateData holds the data used to populate prompt templates.
type promptTemplateData struct {
	FileName string
	BaseName string
	BinName  string
	Runner   string
	RawArgs  string
}

// newPromptTemplateData reads the prompt arguments shared by every prompt.
func newPromptTemplateData(request mcp.GetPromptRequest) (promptTemplateData, error) {
	args := request.Params.Arguments
	data := promptTemplateData{
		FileName: args["file_name"],
		BinName:  args["bin_name"],
		Runner:   args["runner"],
		RawArgs:  args["raw_args"],
	}
	if data.FileName == "" {
		return data, errFileNameArgument
	}
	data.BaseName = posix.Base(data.FileName)
	return data, nil
}

// parsePromptTemplate executes a prompt template from the embedded filesystem and
// converts the result into MCP messages.
//
// Lines after a "### User:" or "### Assistant:" marker belong to that role; blank
// lines and other headings are dropped.
func parsePromptTemplate(templateName string, data promptTemplateData) ([]mcp.PromptMessage, error) {
	templateContent, err := templates.MagicEmbed.ReadFile(templateName)
	if err != nil {
		return nil, fmt.Errorf("failed to read template %s: %w", templateName, err)
	}

	tmpl, err := template.New(templateName).Parse(string(templateContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", templateName, err)
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute template %s: %w", templateName, err)
	}

	var (
		messages       []mcp.PromptMessage
		currentRole    mcp.Role
		currentContent strings.Builder
	)

	flush := func() {
		if currentContent.Len() > 0 {
			messages = append(messages, mcp.NewPromptMessage(
				currentRole,
				mcp.NewTextContent(strings.TrimSpace(currentContent.String())),
			))
			currentContent.Reset()
		}
	}

	for line := range strings.Lines(buf.String()) {
		line = strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(line, "### Assistant:"):
			flush()
			currentRole = mcp.RoleAssistant
			continue
		case strings.HasPrefix(line, "### User:"):
			flush()
			currentRole = mcp.RoleUser
			continue
		case line == "" || strings.HasPrefix(line, "#"):
			continue
		}

		if currentRole != "" {
			if currentContent.Len() > 0 {
				currentContent.WriteString("\n")
			}
			currentContent.WriteString(line)
		}
	}
	flush()

	return messages, nil
}

// handleIntegrationPrompt handles the integrate-relevant-args prompt.
//
// Expected arguments in request.Params.Arguments:
//   - file_name: Path of the script's source file
//   - bin_name: Declared bin name (optional)
//   - runner: Command used to start the script (optional)
func handleIntegrationPrompt(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	data, err := newPromptTemplateData(request)
	if err != nil {
		return nil, err
	}

	messages, err := parsePromptTemplate(templates.IntegrationPrompt, data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse integration template: %w", err)
	}

	return mcp.NewGetPromptResult("Integrate Relevant Args", messages), nil
}

// handleTroubleshootingPrompt handles the troubleshoot-argument-match prompt.
//
// Expected arguments in request.Params.Arguments:
//   - file_name: Path of the script's source file
//   - raw_args: The raw argument vector, space separated
//   - bin_name: Declared bin name (optional)
func handleTroubleshootingPrompt(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	data, err := newPromptTemplateData(request)
	if err != nil {
		return nil, err
	}

	messages, err := parsePromptTemplate(templates.TroubleshootingPrompt, data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse troubleshooting template: %w", err)
	}

	return mcp.NewGetPromptResult("Troubleshoot Argument Matching", messages), nil
}

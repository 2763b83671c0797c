// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"fmt"
	"strings"
	"sync"
	"text/template"

	"github.com/H0llyW00dzZ/relevant-args/src/mcp-server/templates"
	"github.com/mark3labs/mcp-go/server"
)

// instructionData holds the data used to populate the MCP server instructions template.
type instructionData struct {
	Tools     []toolInfo
	ToolRoles map[string]string // Maps tool roles to tool names for template use
}

// toolInfo represents information about an MCP tool for template rendering.
type toolInfo struct {
	Name        string
	Description string
}

// loadInstructions renders the instructions template from embed with the given tools
// and returns the text sent to MCP clients during initialization.
//
// Tool roles let the template refer to a tool without hardcoding its name.
func loadInstructions(embed templates.EmbedFS, tools []ToolDefinition, toolsWithConfig []ToolDefinitionWithConfig) (string, error) {
	templateBytes, err := embed.ReadFile(templates.Instructions)
	if err != nil {
		return "", fmt.Errorf("failed to load MCP server instructions template: %w", err)
	}

	data := instructionData{ToolRoles: make(map[string]string)}
	add := func(name, description, role string) {
		data.Tools = append(data.Tools, toolInfo{Name: name, Description: description})
		if role != "" {
			data.ToolRoles[role] = name
		}
	}
	for _, tool := range tools {
		add(tool.Tool.Name, tool.Tool.Description, tool.Role)
	}
	for _, tool := range toolsWithConfig {
		add(tool.Tool.Name, tool.Tool.Description, tool.Role)
	}

	tmpl, err := template.New("instructions").Option("missingkey=error").Parse(string(templateBytes))
	if err != nil {
		return "", fmt.Errorf("failed to parse instructions template: %w", err)
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute instructions template: %w", err)
	}

	return buf.String(), nil
}

// serverCache holds capability metadata for the info://version resource.
type serverCache struct {
	mu        sync.RWMutex
	tools     []map[string]any
	resources []map[string]any
	prompts   []map[string]any
}

// cache is populated by [ServerBuilder.Build] when WithPopulate is used.
var cache = &serverCache{}

// capabilities returns copies of the cached tool, resource and prompt metadata.
func (c *serverCache) capabilities() map[string]any {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return map[string]any{
		"tools":     append([]map[string]any{}, c.tools...),
		"resources": append([]map[string]any{}, c.resources...),
		"prompts":   append([]map[string]any{}, c.prompts...),
	}
}

// populate replaces the cached metadata with that of the given server components.
func (c *serverCache) populate(deps ServerDependencies) {
	tools := make([]map[string]any, 0, len(deps.Tools)+len(deps.ToolsWithConfig))
	for _, tool := range deps.Tools {
		tools = append(tools, map[string]any{"name": tool.Tool.Name, "description": tool.Tool.Description})
	}
	for _, tool := range deps.ToolsWithConfig {
		tools = append(tools, map[string]any{"name": tool.Tool.Name, "description": tool.Tool.Description})
	}

	resources := make([]map[string]any, 0, len(deps.Resources))
	for _, r := range deps.Resources {
		resources = append(resources, map[string]any{
			"uri":         r.Resource.URI,
			"name":        r.Resource.Name,
			"description": r.Resource.Description,
			"mimeType":    r.Resource.MIMEType,
		})
	}

	prompts := make([]map[string]any, 0, len(deps.Prompts))
	for _, p := range deps.Prompts {
		prompts = append(prompts, promptMetadata(p))
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.tools, c.resources, c.prompts = tools, resources, prompts
}

// promptMetadata extracts the user-facing fields of a prompt.
func promptMetadata(p server.ServerPrompt) map[string]any {
	metadata := map[string]any{
		"name":        p.Prompt.Name,
		"description": p.Prompt.Description,
	}

	if len(p.Prompt.Arguments) > 0 {
		args := make([]map[string]any, 0, len(p.Prompt.Arguments))
		for _, arg := range p.Prompt.Arguments {
			args = append(args, map[string]any{
				"name":        arg.Name,
				"description": arg.Description,
				"required":    arg.Required,
			})
		}
		metadata["arguments"] = args
	}

	return metadata
}

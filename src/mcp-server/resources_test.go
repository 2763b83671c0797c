// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/mcptest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResourceHandlers(t *testing.T) {
	srv := mcptest.NewUnstartedServer(t)
	srv.AddResources(createResources()...)
	require.NoError(t, srv.Start(context.Background()))
	defer srv.Close()

	c := srv.Client()

	tests := []struct {
		name           string
		uri            string
		expectError    bool
		expectContains []string
		expectMIMEType string
	}{
		{
			name:           "config template",
			uri:            "config://template",
			expectContains: []string{`"defaults"`, `"binName"`, `"errorIfNotFound"`, `"format"`},
			expectMIMEType: "application/json",
		},
		{
			name:           "version info",
			uri:            "info://version",
			expectContains: []string{`"name"`, `"version"`, `"capabilities"`, `"supportedFormats"`},
			expectMIMEType: "application/json",
		},
		{
			name:           "usage documentation",
			uri:            "docs://usage",
			expectContains: []string{"# Relevant Args Usage", "error_if_not_found"},
			expectMIMEType: "text/markdown",
		},
		{
			name:        "nonexistent resource",
			uri:         "nonexistent://resource",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := c.ReadResource(context.Background(), mcp.ReadResourceRequest{
				Params: mcp.ReadResourceParams{URI: tt.uri},
			})
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Len(t, result.Contents, 1)

			content, ok := result.Contents[0].(mcp.TextResourceContents)
			require.True(t, ok, "expected text contents, got %T", result.Contents[0])
			assert.Equal(t, tt.uri, content.URI)
			assert.Equal(t, tt.expectMIMEType, content.MIMEType)
			for _, want := range tt.expectContains {
				assert.Contains(t, content.Text, want)
			}
		})
	}
}

func TestHandleConfigResource_RoundTrips(t *testing.T) {
	contents, err := handleConfigResource(context.Background(), mcp.ReadResourceRequest{})
	require.NoError(t, err)

	var config Config
	require.NoError(t, json.Unmarshal([]byte(contents[0].(mcp.TextResourceContents).Text), &config))
	assert.Equal(t, "my-script", config.Defaults.BinName)
	assert.Equal(t, "json", config.Defaults.Format)
	assert.False(t, config.Defaults.ErrorIfNotFound)
}

func TestHandleVersionResource_Capabilities(t *testing.T) {
	tools, toolsWithConfig := createTools()
	_, err := NewServerBuilder().
		WithVersion("1.2.3-test").
		WithTools(tools...).
		WithToolsWithConfig(toolsWithConfig...).
		WithResources(createResources()...).
		WithPrompts(createPrompts()...).
		WithPopulate().
		Build()
	require.NoError(t, err)

	contents, err := handleVersionResource(context.Background(), mcp.ReadResourceRequest{})
	require.NoError(t, err)

	var info struct {
		Name         string `json:"name"`
		Capabilities struct {
			Tools []struct {
				Name string `json:"name"`
			} `json:"tools"`
			Resources []struct {
				URI string `json:"uri"`
			} `json:"resources"`
			Prompts []struct {
				Name      string           `json:"name"`
				Arguments []map[string]any `json:"arguments"`
			} `json:"prompts"`
		} `json:"capabilities"`
		SupportedFormats []string `json:"supportedFormats"`
	}
	require.NoError(t, json.Unmarshal([]byte(contents[0].(mcp.TextResourceContents).Text), &info))

	assert.Equal(t, serverName, info.Name)

	var toolNames []string
	for _, tool := range info.Capabilities.Tools {
		toolNames = append(toolNames, tool.Name)
	}
	assert.ElementsMatch(t, []string{"basename", "extract_relevant_args"}, toolNames)

	var uris []string
	for _, r := range info.Capabilities.Resources {
		uris = append(uris, r.URI)
	}
	assert.ElementsMatch(t, []string{configTemplateURI, versionURI, usageURI}, uris)

	require.Len(t, info.Capabilities.Prompts, 2)
	assert.NotEmpty(t, info.Capabilities.Prompts[0].Arguments)

	assert.Equal(t, []string{"text", "nul", "json", "yaml", "table"}, info.SupportedFormats)
}

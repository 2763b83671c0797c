// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package templates

import (
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMagicEmbed_ReadFile(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		contains []string
		wantErr  bool
	}{
		{
			name:     "instructions template",
			filename: Instructions,
			contains: []string{"# Relevant Args", "{{range .Tools}}", `{{index .ToolRoles "extractor"}}`},
		},
		{
			name:     "usage documentation",
			filename: Usage,
			contains: []string{"# Relevant Args Usage", "error_if_not_found", "xargs -0"},
		},
		{
			name:     "CLI help template",
			filename: CLIHelp,
			contains: []string{"## Examples", "{{.ExeName}}", "{{.ConfigFlagName}}"},
		},
		{
			name:     "integration prompt",
			filename: IntegrationPrompt,
			contains: []string{"### User:", "### Assistant:", "{{.BaseName}}"},
		},
		{
			name:     "troubleshooting prompt",
			filename: TroubleshootingPrompt,
			contains: []string{"### User:", "### Assistant:", "{{.RawArgs}}"},
		},
		{
			name:     "non-existent file",
			filename: "non-existent.md",
			wantErr:  true,
		},
		{
			name:     "invalid path",
			filename: "../invalid.md",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := MagicEmbed.ReadFile(tt.filename)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, string(data), want)
			}
		})
	}
}

func TestMagicEmbed_ReadDir(t *testing.T) {
	entries, err := MagicEmbed.ReadDir(".")
	require.NoError(t, err)

	var names []string
	for _, entry := range entries {
		assert.False(t, entry.IsDir(), "unexpected directory %s", entry.Name())
		names = append(names, entry.Name())
	}
	assert.ElementsMatch(t, []string{CLIHelp, Instructions, Usage, IntegrationPrompt, TroubleshootingPrompt}, names)

	_, err = MagicEmbed.ReadDir("non-existent")
	assert.Error(t, err)
}

func TestMagicEmbed_Open(t *testing.T) {
	file, err := MagicEmbed.Open(Usage)
	require.NoError(t, err)
	defer file.Close()

	info, err := file.Stat()
	require.NoError(t, err)
	assert.False(t, info.IsDir())

	data, err := io.ReadAll(file)
	require.NoError(t, err)
	assert.Len(t, data, int(info.Size()))

	_, err = MagicEmbed.Open("non-existent.md")
	assert.Error(t, err)
}

func TestMagicEmbed_ConcurrentAccess(t *testing.T) {
	var wg sync.WaitGroup
	for _, name := range []string{Instructions, Usage, IntegrationPrompt} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 10 {
				_, err := MagicEmbed.ReadFile(name)
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()
}

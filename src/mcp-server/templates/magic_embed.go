// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package templates

import (
	"embed"
	"io/fs"
)

//go:embed *.md
var embeddedFS embed.FS

// Embedded file names.
const (
	// Instructions is the text/template source of the server instructions.
	Instructions = "instructions.md"
	// CLIHelp is the text/template source of the server command's help text.
	CLIHelp = "cli_help.md"
	// Usage is the usage documentation served as docs://usage.
	Usage = "usage.md"
	// IntegrationPrompt is the source of the integrate-relevant-args prompt.
	IntegrationPrompt = "integration-prompt.md"
	// TroubleshootingPrompt is the source of the troubleshoot-argument-match prompt.
	TroubleshootingPrompt = "troubleshooting-prompt.md"
)

// EmbedFS defines the interface for accessing embedded template files.
// It abstracts the [embed.FS] type so callers and tests can substitute another
// file system.
type EmbedFS interface {
	// ReadFile reads the named file and returns the contents.
	ReadFile(name string) ([]byte, error)

	// ReadDir reads the named directory and returns a list of directory entries.
	ReadDir(name string) ([]fs.DirEntry, error)

	// Open opens the named file for reading.
	Open(name string) (fs.File, error)
}

// embedFS wraps [embed.FS] to implement EmbedFS interface.
type embedFS struct{ fs embed.FS }

// ReadFile reads the named file and returns the contents.
func (e *embedFS) ReadFile(name string) ([]byte, error) { return e.fs.ReadFile(name) }

// ReadDir reads the named directory and returns a list of directory entries.
func (e *embedFS) ReadDir(name string) ([]fs.DirEntry, error) { return e.fs.ReadDir(name) }

// Open opens the named file for reading.
func (e *embedFS) Open(name string) (fs.File, error) { return e.fs.Open(name) }

// MagicEmbed is the embedded filesystem used for accessing template files.
//
//	templateBytes, err := templates.MagicEmbed.ReadFile(templates.Instructions)
//	if err != nil {
//		return "", fmt.Errorf("failed to load instructions template: %w", err)
//	}
var MagicEmbed EmbedFS = &embedFS{fs: embeddedFS}

// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/H0llyW00dzZ/relevant-args/src/internal/helper/gc"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"gopkg.in/yaml.v3"
)

// Format names an output format.
type Format string

const (
	// FormatText writes one argument per line.
	FormatText Format = "text"
	// FormatNUL terminates every argument with a NUL byte.
	FormatNUL Format = "nul"
	// FormatJSON writes a JSON array of strings.
	FormatJSON Format = "json"
	// FormatYAML writes a YAML sequence.
	FormatYAML Format = "yaml"
	// FormatTable writes a markdown table of positions and arguments.
	FormatTable Format = "table"
)

// ErrUnknownFormat is returned for a format name that is not one of [Formats].
var ErrUnknownFormat = errors.New("unknown output format")

// Formats returns every supported format in the order they are documented.
func Formats() []Format {
	return []Format{FormatText, FormatNUL, FormatJSON, FormatYAML, FormatTable}
}

// ParseFormat returns the Format named by s, ignoring case and surrounding spaces.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Render writes args to w in the given format.
//
// Output is assembled in a pooled buffer and written with a single call, so w
// receives nothing when rendering fails.
func Render(w io.Writer, args []string, format Format) error {
	if args == nil {
		args = []string{}
	}

	return gc.WriteTo(gc.Default, w, func(buf gc.Buffer) error {
		switch format {
		case FormatText:
			for _, arg := range args {
				buf.WriteString(arg)
				buf.WriteByte('\n')
			}
		case FormatNUL:
			for _, arg := range args {
				buf.WriteString(arg)
				buf.WriteByte(0)
			}
		case FormatJSON:
			if err := json.NewEncoder(buf).Encode(args); err != nil {
				return fmt.Errorf("failed to encode JSON output: %w", err)
			}
		case FormatYAML:
			enc := yaml.NewEncoder(buf)
			enc.SetIndent(2)
			if err := enc.Encode(args); err != nil {
				return fmt.Errorf("failed to encode YAML output: %w", err)
			}
			if err := enc.Close(); err != nil {
				return fmt.Errorf("failed to encode YAML output: %w", err)
			}
		case FormatTable:
			return renderTable(buf, args)
		default:
			return fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
		}
		return nil
	})
}

// String renders args in the given format and returns the result.
func String(args []string, format Format) (string, error) {
	var sb strings.Builder
	if err := Render(&sb, args, format); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// cellEscaper keeps every argument on one markdown table row and inside its cell.
var cellEscaper = strings.NewReplacer(
	`\`, `\\`,
	"|", `\|`,
	"\r", `\r`,
	"\n", `\n`,
)

// renderTable writes args as a markdown table with their position in the trimmed list.
// Cells are escaped and never trimmed, wrapped or reformatted, so each argument
// appears exactly once, verbatim apart from escaping.
func renderTable(w io.Writer, args []string) error {
	if len(args) == 0 {
		_, err := io.WriteString(w, "No relevant arguments\n")
		return err
	}

	table := tablewriter.NewTable(w,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
		tablewriter.WithTrimSpace(tw.Off),
		tablewriter.WithHeaderAutoFormat(tw.Off),
		tablewriter.WithRowAutoFormat(tw.Off),
		tablewriter.WithRowAutoWrap(tw.WrapNone),
		tablewriter.WithHeaderAlignment(tw.AlignLeft),
		tablewriter.WithRowAlignment(tw.AlignLeft),
	)
	table.Header("#", "Argument")

	rows := make([][]string, 0, len(args))
	for i, arg := range args {
		rows = append(rows, []string{strconv.Itoa(i), cellEscaper.Replace(arg)})
	}

	if err := table.Bulk(rows); err != nil {
		return fmt.Errorf("failed to build table: %w", err)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	return nil
}

// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface for relevant-args.
// It implements a Cobra-based command that takes a raw argument vector after "--"
// (or from a JSON/YAML request document), trims it to the arguments that follow the
// script's file or bin name, and prints the result as text, NUL-separated records,
// JSON, YAML or a markdown table. Diagnostics go through the logger package on stderr.
package cli

// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os"
	"strings"
)

// DefaultExecutableName is returned by GetExecutableName when os.Args carries no usable program name.
const DefaultExecutableName = "relevant-args"

// Base returns the last element of path, accepting both '/' and '\' as separators.
//
// Trailing separators are removed before the last element is taken, so
// "a/b/" yields "b". If path is empty or consists entirely of separators,
// Base returns "".
//
// Unlike POSIX basename and [path/filepath.Base], '\' is a separator on every
// platform, so `dir\my-script` yields "my-script" on Linux too. A POSIX file
// name that legitimately contains '\' is therefore truncated at it.
func Base(path string) string {
	path = strings.TrimRight(path, `/\`)
	if path == "" {
		return ""
	}

	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		return path[i+1:]
	}

	return path
}

// GetExecutableName returns the executable name without extension, cross-platform compatible.
// It extracts the base name from os.Args[0] and removes the .exe extension used on Windows
// to provide a clean name for CLI usage strings.
//
//   - Linux/macOS: "myapp" from "/usr/local/bin/myapp"
//   - Windows: "myapp" from "C:\bin\myapp.exe"
//   - Fallback: DefaultExecutableName if os.Args[0] is unavailable
func GetExecutableName() string {
	if len(os.Args) == 0 {
		return DefaultExecutableName
	}

	name := strings.TrimSuffix(Base(os.Args[0]), ".exe")
	if name == "" {
		return DefaultExecutableName
	}

	return name
}

// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package posix provides path helpers that behave the same on every operating system.
//
// Argument vectors routinely carry paths written for a different platform than the
// one the process runs on (a Windows-style "C:\bin\tool.exe" handed to a Linux CI
// runner, or "./node_modules/.bin/tool" on Windows). The helpers here therefore treat
// both '/' and '\' as separators instead of relying on [filepath.Separator].
//
// Key functions:
//   - Base: Returns the final path segment, or "" when there is none
//   - GetExecutableName: Returns the executable name without extension for CLI usage
//
// # Usage Examples
//
//	import "github.com/H0llyW00dzZ/relevant-args/src/internal/helper/posix"
//
//	posix.Base("./src/sub-dir/my-script.ts") // "my-script.ts"
//	posix.Base("C:\\tools\\my-script.exe")   // "my-script.exe"
//	posix.Base("")                           // ""
//	posix.Base("/")                          // ""
//
//	rootCmd := &cobra.Command{
//	    Use: posix.GetExecutableName(),
//	}
//
// Unlike [filepath.Base], Base never returns "." or a lone separator: an input with
// no final segment yields the empty string, which callers use to reject it.
package posix

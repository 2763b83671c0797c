// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os"
	"testing"
)

func TestBase(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{name: "Empty", path: "", expected: ""},
		{name: "Root", path: "/", expected: ""},
		{name: "Only separators", path: `//\\`, expected: ""},
		{name: "Bare name", path: "my-script", expected: "my-script"},
		{name: "Relative path", path: "./src/sub-dir/my-script.ts", expected: "my-script.ts"},
		{name: "Absolute path", path: "/Users/your-user/your-package/src/sub-dir/my-script.ts", expected: "my-script.ts"},
		{name: "Trailing separator", path: "/usr/local/bin/", expected: "bin"},
		{name: "Bin shim", path: "./node_modules/.bin/my-script", expected: "my-script"},
		{name: "Windows path", path: `C:\Program Files\nodejs\node.exe`, expected: "node.exe"},
		{name: "Mixed separators", path: `C:\work/pkg\src/cli.ts`, expected: "cli.ts"},
		{name: "Backslash on any platform", path: `dir\my-script`, expected: "my-script"},
		{name: "Dot", path: ".", expected: "."},
		{name: "Flag", path: "--more-arg", expected: "--more-arg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Base(tt.path); got != tt.expected {
				t.Errorf("Base(%q) = %q, want %q", tt.path, got, tt.expected)
			}
		})
	}
}

// TestGetExecutableName tests the GetExecutableName function for cross-platform compatibility.
func TestGetExecutableName(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{
			name:     "Relative path",
			args:     []string{"./myapp"},
			expected: "myapp",
		},
		{
			name:     "Just filename",
			args:     []string{"myapp"},
			expected: "myapp",
		},
		{
			name:     "Empty args",
			args:     []string{},
			expected: DefaultExecutableName,
		},
		{
			name:     "Empty first arg",
			args:     []string{""},
			expected: DefaultExecutableName,
		},
		{
			name:     "Unix absolute path",
			args:     []string{"/usr/local/bin/myapp"},
			expected: "myapp",
		},
		{
			name:     "Windows absolute path with .exe",
			args:     []string{`C:\Program Files\myapp.exe`},
			expected: "myapp",
		},
		{
			name:     "Foreign windows path separators",
			args:     []string{`C:\windows\style\path\on\unix\system.exe`},
			expected: "system",
		},
		{
			name:     "Other extensions are preserved",
			args:     []string{"/opt/tools/runner.sh"},
			expected: "runner.sh",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			origArgs := os.Args
			os.Args = tt.args
			defer func() {
				os.Args = origArgs
			}()

			result := GetExecutableName()
			if result != tt.expected {
				t.Errorf("GetExecutableName() = %q, want %q", result, tt.expected)
			}
		})
	}
}

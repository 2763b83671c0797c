// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package jsonrpc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnmarshalFromMap(t *testing.T) {
	type toolArgs struct {
		RawArgs  []string `json:"raw_args"`
		FileName *string  `json:"file_name"`
		Strict   *bool    `json:"error_if_not_found"`
	}

	fileName := "my-script.ts"
	strict := true

	tests := []struct {
		name     string
		input    any
		expected toolArgs
		wantErr  bool
	}{
		{
			name: "valid map",
			input: map[string]any{
				"raw_args":           []any{"npx", "./my-script.ts", "a"},
				"file_name":          "my-script.ts",
				"error_if_not_found": true,
			},
			expected: toolArgs{
				RawArgs:  []string{"npx", "./my-script.ts", "a"},
				FileName: &fileName,
				Strict:   &strict,
			},
		},
		{
			name: "partial map keeps omitted fields nil",
			input: map[string]any{
				"raw_args": []any{},
			},
			expected: toolArgs{RawArgs: []string{}},
		},
		{
			name: "extra fields ignored",
			input: map[string]any{
				"file_name": "my-script.ts",
				"extra":     "ignored",
			},
			expected: toolArgs{FileName: &fileName},
		},
		{
			name:     "nil input",
			input:    nil,
			expected: toolArgs{},
		},
		{
			name: "wrong element type",
			input: map[string]any{
				"raw_args": []any{"npx", 1},
			},
			wantErr: true,
		},
		{
			name:    "unsupported type",
			input:   func() {},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var result toolArgs
			err := UnmarshalFromMap(tt.input, &result)

			assert.Equal(t, tt.wantErr, err != nil, "UnmarshalFromMap() error = %v, wantErr %v", err, tt.wantErr)

			if !tt.wantErr {
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package relevantargs

import (
	"fmt"
	"slices"

	"github.com/H0llyW00dzZ/relevant-args/src/internal/helper/posix"
)

// Request describes a single extraction.
//
// The struct tags match the request document format read by the request package
// and the argument names accepted over MCP.
type Request struct {
	// RawArgs is the full, unmodified argument vector, typically os.Args.
	RawArgs []string `json:"rawArgs" yaml:"rawArgs"`
	// BinName is the declared executable name of the script. An empty BinName
	// disables bin name matching.
	BinName string `json:"binName,omitempty" yaml:"binName,omitempty"`
	// FileName is the path of the script's own source file.
	FileName string `json:"fileName" yaml:"fileName"`
	// ErrorIfNotFound makes a missing match an error instead of returning
	// RawArgs unchanged.
	ErrorIfNotFound bool `json:"errorIfNotFound,omitempty" yaml:"errorIfNotFound,omitempty"`
}

// Index returns the position of the first element of req.RawArgs whose basename
// equals the basename of req.FileName, or equals req.BinName when it is set.
//
// BinName is compared as-is against each candidate's basename, so a bin name
// containing a separator never matches.
//
// When nothing matches, Index returns -1 and a nil error, unless
// req.ErrorIfNotFound is set, in which case it returns [ErrNotFound].
// An empty base file name always fails with [ErrInvalidFileName].
func (req Request) Index() (int, error) {
	baseFileName := posix.Base(req.FileName)
	if baseFileName == "" {
		return -1, fmt.Errorf("%w: '%s'", ErrInvalidFileName, req.FileName)
	}

	i := slices.IndexFunc(req.RawArgs, func(arg string) bool {
		baseArgName := posix.Base(arg)
		return baseArgName == baseFileName || (req.BinName != "" && baseArgName == req.BinName)
	})

	if i == -1 && req.ErrorIfNotFound {
		return -1, ErrNotFound
	}

	return i, nil
}

// Extract trims req.RawArgs to the arguments that follow the script's file or bin name.
//
// The returned slice is always freshly allocated:
//   - on a match at index i it holds RawArgs[i+1:], empty when the match is the last element
//   - without a match it is a full copy of RawArgs, unless ErrorIfNotFound is set
//
// No partial result is returned alongside an error.
func Extract(req Request) ([]string, error) {
	i, err := req.Index()
	if err != nil {
		return nil, err
	}

	if i == -1 {
		return clone(req.RawArgs), nil
	}

	return clone(req.RawArgs[i+1:]), nil
}

// clone copies s into a new non-nil slice.
func clone(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}

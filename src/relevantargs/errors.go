// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package relevantargs

import "errors"

var (
	// ErrInvalidFileName is returned when the configured file name has no base name.
	// It is a caller configuration error and is reported regardless of ErrorIfNotFound.
	ErrInvalidFileName = errors.New("given file name produced no base file name")

	// ErrNotFound is returned when neither the file name nor the bin name appears in
	// the raw arguments and the request asked to fail in that case.
	ErrNotFound = errors.New("failed to find position of file or bin name in provided args list")
)

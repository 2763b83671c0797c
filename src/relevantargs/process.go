// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package relevantargs

import (
	"os"
	"runtime"
)

// FromOS runs [Extract] over the arguments of the current process.
//
// fileName is usually [Caller](0) from the script's main package, and binName
// the name the program is installed under.
func FromOS(binName, fileName string, errorIfNotFound bool) ([]string, error) {
	return Extract(Request{
		RawArgs:         os.Args,
		BinName:         binName,
		FileName:        fileName,
		ErrorIfNotFound: errorIfNotFound,
	})
}

// Caller returns the source file of the function skip frames above the caller of Caller.
// Caller(0) is the file containing the call to Caller.
//
// It returns "" when the frame is unavailable, which [Extract] rejects with
// [ErrInvalidFileName].
func Caller(skip int) string {
	_, file, _, ok := runtime.Caller(skip + 1)
	if !ok {
		return ""
	}
	return file
}

// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package relevantargs trims a raw argument vector down to the arguments meant for a script.
//
// A script launched through a runner sees the whole invocation preamble in its
// argument vector:
//
//	npx ts-node ./src/sub-dir/my-script.ts script-arg --more-arg more-value
//
// [Extract] finds the element naming the script, either by the basename of its
// source file or by its declared bin name, and returns everything after it:
//
//	args, err := relevantargs.Extract(relevantargs.Request{
//	    RawArgs:  os.Args,
//	    BinName:  "my-script",
//	    FileName: relevantargs.Caller(0),
//	})
//	// args == []string{"script-arg", "--more-arg", "more-value"}
//
// Extraction is a pure function of its [Request]; it never mutates the input and
// is safe for concurrent use.
package relevantargs

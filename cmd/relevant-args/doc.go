// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// relevant-args trims a raw argument vector down to the arguments that follow
// a script's own file name or declared bin name.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/relevant-args/cmd/relevant-args@latest
//
// # Usage
//
//	relevant-args -f FILE_NAME [FLAGS] -- RAW_ARGS...
//	relevant-args -r REQUEST_FILE [FLAGS]
//
// # Flags
//
//	-f, --file               Script file name or path [required unless --request]
//	-b, --bin                Declared bin name of the script
//	-e, --error-if-not-found Fail when neither name appears in the raw arguments
//	-o, --output             Output format: text, nul, json, yaml or table (default: text)
//	-r, --request            Load the request from a JSON or YAML document
//	-v, --verbose            Log the match position to stderr
//
// Flag parsing stops at the first raw argument, so flags that belong to the
// raw vector are passed through untouched.
//
// # Examples
//
// Trim what npx passed to a TypeScript script:
//
//	relevant-args -f ./src/my-script.ts -- npx ts-node ./src/my-script.ts --flag value
//
// Feed the result to another command:
//
//	relevant-args -f my-script -o nul -- "$0" "$@" | xargs -0 other-command
//
// Load the whole request from a document and print a table:
//
//	relevant-args -r request.yaml -o table
package main

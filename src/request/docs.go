// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package request loads extraction requests from JSON or YAML documents.
//
// A request document carries the same fields as [relevantargs.Request]:
//
//	rawArgs: [npx, ts-node, ./src/my-script.ts, script-arg]
//	binName: my-script
//	fileName: /work/pkg/src/my-script.ts
//	errorIfNotFound: true
//
// Every document is checked against an embedded JSON Schema before it is decoded,
// so misspelled keys and wrongly typed values are reported instead of silently
// ignored.
package request

// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/H0llyW00dzZ/relevant-args/src/cli"
	"github.com/H0llyW00dzZ/relevant-args/src/logger"
	verpkg "github.com/H0llyW00dzZ/relevant-args/src/version"
)

var version string // set by ldflags or defaults to imported version

func init() {
	if version == "" {
		version = verpkg.Version
	}
}

func main() {
	log := logger.NewCLILogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Execute reports its own errors through log.
	if err := cli.Execute(ctx, version, log); err != nil {
		stop()
		os.Exit(1)
	}
}

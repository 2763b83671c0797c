// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/H0llyW00dzZ/relevant-args/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/relevant-args/src/logger"
	"github.com/H0llyW00dzZ/relevant-args/src/relevantargs"
	"github.com/H0llyW00dzZ/relevant-args/src/render"
	"github.com/H0llyW00dzZ/relevant-args/src/request"
	"github.com/spf13/cobra"
)

// ErrFileNameRequired is returned when neither --file nor --request is given.
var ErrFileNameRequired = errors.New("a script file name is required (use --file or --request)")

const (
	flagFile            = "file"
	flagBin             = "bin"
	flagErrorIfNotFound = "error-if-not-found"
	flagOutput          = "output"
	flagRequest         = "request"
	flagVerbose         = "verbose"
)

// options holds the flag values of a single command invocation.
type options struct {
	fileName        string
	binName         string
	errorIfNotFound bool
	output          string
	requestFile     string
	verbose         bool
}

// Execute builds the root command and runs it against os.Args.
// Errors are reported through log before being returned.
func Execute(ctx context.Context, version string, log logger.Logger) error {
	rootCmd := NewRootCommand(version, log)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Errorf("%v", err)
		return err
	}
	return nil
}

// NewRootCommand returns the root command. Flag parsing stops at the first
// positional argument, so flags belonging to the raw argument vector are never
// consumed even without a "--" separator.
func NewRootCommand(version string, log logger.Logger) *cobra.Command {
	exeName := posix.GetExecutableName()
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   exeName + " [flags] -- RAW_ARGS...",
		Short: "Trim an argument vector to the arguments meant for a script",
		Long: `Finds the script's file name or bin name in RAW_ARGS and prints only the
arguments that follow it. Every element is compared by its basename, so
"./src/my-script.ts" matches --file /work/pkg/src/my-script.ts.

When nothing matches, RAW_ARGS is printed unchanged unless --error-if-not-found
is set.`,
		Example: fmt.Sprintf(`  %[1]s -f src/my-script.ts -- npx ts-node ./src/my-script.ts --flag value
  %[1]s -b my-script -f my-script.ts -o json -- node ./node_modules/.bin/my-script a b
  %[1]s -r request.yaml -o table`, exeName),
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts, log)
		},
	}

	flags := rootCmd.Flags()
	flags.SetInterspersed(false)
	flags.StringVarP(&opts.fileName, flagFile, "f", "", "script file name or path to match by basename")
	flags.StringVarP(&opts.binName, flagBin, "b", "", "declared bin name of the script")
	flags.BoolVarP(&opts.errorIfNotFound, flagErrorIfNotFound, "e", false, "fail when neither the file nor the bin name is found")
	flags.StringVarP(&opts.output, flagOutput, "o", string(render.FormatText), "output format: text, nul, json, yaml or table")
	flags.StringVarP(&opts.requestFile, flagRequest, "r", "", "read the request from a JSON or YAML document")
	flags.BoolVarP(&opts.verbose, flagVerbose, "v", false, "log the match position to stderr")

	return rootCmd
}

// run assembles the request from the document and flags, extracts and renders.
func run(cmd *cobra.Command, args []string, opts *options, log logger.Logger) error {
	format, err := render.ParseFormat(opts.output)
	if err != nil {
		return err
	}

	req, err := buildRequest(cmd, args, opts)
	if err != nil {
		return err
	}

	if opts.verbose {
		i, err := req.Index()
		if err == nil {
			log.Printf("match index %d of %d raw argument(s)", i, len(req.RawArgs))
		}
	}

	relevant, err := relevantargs.Extract(*req)
	if err != nil {
		return err
	}

	return render.Render(cmd.OutOrStdout(), relevant, format)
}

// buildRequest merges the optional request document with explicitly set flags.
// Flags override document fields; positional arguments, when present, replace
// the document's raw arguments.
func buildRequest(cmd *cobra.Command, args []string, opts *options) (*relevantargs.Request, error) {
	flags := cmd.Flags()
	req := &relevantargs.Request{}

	if opts.requestFile != "" {
		loaded, err := request.Load(opts.requestFile)
		if err != nil {
			return nil, err
		}
		req = loaded
	} else if !flags.Changed(flagFile) {
		return nil, ErrFileNameRequired
	}

	if flags.Changed(flagFile) {
		req.FileName = opts.fileName
	}
	if flags.Changed(flagBin) {
		req.BinName = opts.binName
	}
	if flags.Changed(flagErrorIfNotFound) {
		req.ErrorIfNotFound = opts.errorIfNotFound
	}
	if len(args) > 0 || opts.requestFile == "" {
		req.RawArgs = args
	}

	return req, nil
}

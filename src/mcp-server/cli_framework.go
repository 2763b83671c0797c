// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/template"

	"github.com/H0llyW00dzZ/relevant-args/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/relevant-args/src/logger"
	"github.com/H0llyW00dzZ/relevant-args/src/mcp-server/templates"
	"github.com/spf13/cobra"
)

// cliHelpData holds the data used to populate the CLI help template.
type cliHelpData struct {
	ExeName              string
	InstructionsFlagName string
	ConfigFlagName       string
	HelpFlagName         string
}

// CLIFramework integrates Cobra CLI with MCP server capabilities.
//
// Key features:
//   - Dynamic executable naming based on the actual binary path
//   - [Gopls-style] --instructions flag printing the instructions sent to clients
//   - Configuration file support via --config flag or MCP_RELEVANT_ARGS_CONFIG_FILE
//   - MCP server startup when no arguments are provided
//   - Graceful shutdown on SIGINT and SIGTERM
//
// [Gopls-style]: https://tip.golang.org/gopls/features/mcp#instructions-to-the-model
type CLIFramework struct {
	configFile       string
	showInstructions bool
	verbose          bool
	embed            templates.EmbedFS
	deps             ServerDependencies
}

// NewCLIFramework creates a new CLI framework instance with MCP server integration.
//
// Configuration loading is deferred until the command runs, so the --config flag
// and the environment variable can still override configFile.
func NewCLIFramework(configFile string, deps ServerDependencies) *CLIFramework {
	return &CLIFramework{
		configFile: configFile,
		embed:      templates.MagicEmbed,
		deps:       deps,
	}
}

// BuildRootCommand creates the root Cobra command that starts the MCP server.
//
// Command behavior:
//   - With --instructions: prints the client instructions and exits
//   - Without arguments: starts the MCP server on stdin and stdout
//   - With arguments: fails, the command takes none
//
// It panics if the embedded help template cannot be rendered, since that is a
// build defect rather than a runtime condition.
func (cf *CLIFramework) BuildRootCommand() *cobra.Command {
	exeName := posix.GetExecutableName()

	rootCmd := &cobra.Command{
		Use:           exeName,
		Short:         "Relevant args extractor as an MCP server",
		Version:       cf.deps.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Registered early so its name can appear in the help template.
	rootCmd.Flags().BoolP("help", "h", false, "help for "+exeName)

	rootCmd.PersistentFlags().BoolVar(&cf.showInstructions, "instructions", false, "print the instructions sent to MCP clients")
	rootCmd.PersistentFlags().StringVar(&cf.configFile, "config", cf.configFile, "path to MCP server configuration file")
	rootCmd.PersistentFlags().BoolVarP(&cf.verbose, "verbose", "v", false, "log tool calls as JSON lines to stderr")

	instructionsFlagName, configFlagName, helpFlagName := extractFlagNames(rootCmd)

	longDesc, examples, err := cf.loadAndExecuteCLIHelpTemplate(exeName, instructionsFlagName, configFlagName, helpFlagName)
	if err != nil {
		panic(fmt.Sprintf("failed to process CLI help template: %v", err))
	}
	rootCmd.Long = longDesc
	rootCmd.Example = examples

	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return fmt.Errorf("unexpected arguments: %s for %q", strings.Join(args, " "), exeName)
		}
		if cf.showInstructions {
			_, err := fmt.Fprint(cmd.OutOrStdout(), cf.deps.Instructions)
			return err
		}
		return cf.startMCPServer(cmd)
	}

	return rootCmd
}

// loadAndExecuteCLIHelpTemplate renders the CLI help template and splits it into
// the Long description and the Examples section.
func (cf *CLIFramework) loadAndExecuteCLIHelpTemplate(exeName, instructionsFlagName, configFlagName, helpFlagName string) (longDesc, examples string, err error) {
	templateBytes, err := cf.embed.ReadFile(templates.CLIHelp)
	if err != nil {
		return "", "", fmt.Errorf("failed to load CLI help template: %w", err)
	}

	data := cliHelpData{
		ExeName:              exeName,
		InstructionsFlagName: instructionsFlagName,
		ConfigFlagName:       configFlagName,
		HelpFlagName:         helpFlagName,
	}

	tmpl, err := template.New("cli_help").Parse(string(templateBytes))
	if err != nil {
		return "", "", fmt.Errorf("failed to parse CLI help template: %w", err)
	}

	var result strings.Builder
	if err := tmpl.Execute(&result, data); err != nil {
		return "", "", fmt.Errorf("failed to execute CLI help template: %w", err)
	}

	return parseTemplateResult(result.String())
}

// parseTemplateResult splits rendered help text at the "## Examples" line.
// Content before that line is the Long description, content after it the examples.
func parseTemplateResult(templateResult string) (longDesc, examples string, err error) {
	const examplesMarker = "## Examples"

	before, after, found := strings.Cut(templateResult, examplesMarker)
	if !found {
		return "", "", fmt.Errorf("CLI help template has invalid format - missing '%s' section", examplesMarker)
	}

	// Drop the remainder of the marker line.
	if _, rest, ok := strings.Cut(after, "\n"); ok {
		after = rest
	} else {
		after = ""
	}

	return strings.TrimSpace(before), strings.TrimRight(strings.TrimLeft(after, "\r\n"), " \t\r\n"), nil
}

// extractFlagNames returns the instructions, config and help flag names with their
// "--" prefix, falling back to the default names if a lookup fails.
func extractFlagNames(rootCmd *cobra.Command) (instructionsFlagName, configFlagName, helpFlagName string) {
	instructionsFlagName = "--instructions"
	if f := rootCmd.PersistentFlags().Lookup("instructions"); f != nil {
		instructionsFlagName = "--" + f.Name
	}

	configFlagName = "--config"
	if f := rootCmd.PersistentFlags().Lookup("config"); f != nil {
		configFlagName = "--" + f.Name
	}

	helpFlagName = "--help"
	if f := rootCmd.Flags().Lookup("help"); f != nil {
		helpFlagName = "--" + f.Name
	}

	return instructionsFlagName, configFlagName, helpFlagName
}

// newLogger returns the logger used while serving: JSON lines on stderr when
// verbose, silent otherwise so nothing leaks into the protocol stream.
func (cf *CLIFramework) newLogger(cmd *cobra.Command) logger.Logger {
	return logger.NewMCPLogger(cmd.ErrOrStderr(), !cf.verbose)
}

// startMCPServer loads the configuration, builds the server and serves MCP on the
// command's input and output until a signal arrives or the input is closed.
func (cf *CLIFramework) startMCPServer(cmd *cobra.Command) error {
	config, err := loadConfig(cf.configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := cf.newLogger(cmd)

	builder := NewServerBuilder().
		WithConfig(config).
		WithVersion(cf.deps.Version).
		WithLogger(log).
		WithTools(cf.deps.Tools...).
		WithToolsWithConfig(cf.deps.ToolsWithConfig...).
		WithResources(cf.deps.Resources...).
		WithPrompts(cf.deps.Prompts...).
		WithInstructions(cf.deps.Instructions)
	if cf.deps.PopulateCache {
		builder = builder.WithPopulate()
	}

	mcpServer, err := builder.Build()
	if err != nil {
		return fmt.Errorf("failed to build MCP server: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("%s MCP server %s started", serverName, cf.deps.Version)
	defer log.Printf("%s MCP server stopped", serverName)

	return serve(ctx, mcpServer, cmd.InOrStdin(), cmd.OutOrStdout())
}

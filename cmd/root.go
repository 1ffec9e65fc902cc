package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"cxxdecl/pkg/document"
	"cxxdecl/pkg/parser"

	"github.com/spf13/cobra"
)

// Version information
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Set up by the root command before any subcommand runs
var (
	logger = slog.Default()
	config = &Config{}
)

var rootCmd = &cobra.Command{
	Use:   "cxxdecl",
	Short: "Extract struct, class and enum declarations from C++ headers",
	Long: `cxxdecl is a CLI tool that reads C++ header files and extracts the
structs, classes and enums they define: fields, methods with their parameter
types, base classes, enumerators and the documentation attached to them.`,
	Version:       getVersionString(),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		quiet, _ := cmd.Flags().GetBool("quiet")
		logger = newLogger(verbose, quiet)

		configPath, _ := cmd.Flags().GetString("config")
		loaded, err := LoadConfig(configPath)
		if err != nil {
			return err
		}
		config = loaded
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("cxxdecl %s\n", getVersionString())
		fmt.Printf("  Version: %s\n", version)
		fmt.Printf("  Commit:  %s\n", commit)
		fmt.Printf("  Date:    %s\n", date)
	},
}

func getVersionString() string {
	if version == "dev" {
		return fmt.Sprintf("%s (%s)", version, commit)
	}
	return version
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
	rootCmd.Version = getVersionString()
}

func Execute() error {
	return rootCmd.Execute()
}

// newLogger builds the stderr logger used by the parser
func newLogger(verbose, quiet bool) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case quiet:
		level = slog.LevelError
	case verbose:
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// loadRegistry parses the headers named on the command line, or the
// configured ones when none are given
func loadRegistry(args []string) (*document.Registry, error) {
	headers, err := config.ResolveHeaders(args)
	if err != nil {
		return nil, err
	}
	if len(headers) == 0 {
		return nil, fmt.Errorf("no header files given and none configured in %s", defaultConfigName)
	}

	logger.Debug("loading headers", "count", len(headers))
	return document.NewRegistry(headers, parser.WithLogger(logger))
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Configuration file (default ./"+defaultConfigName+")")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log skipped declarations and members")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Only log errors")

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(tokensCmd)
	rootCmd.AddCommand(formatCmd)
	rootCmd.AddCommand(versionCmd)
}

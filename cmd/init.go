package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"cxxdecl/pkg/document"
	"cxxdecl/pkg/parser"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

var initCmd = &cobra.Command{
	Use:   "init [directory]",
	Short: "Create a " + defaultConfigName + " file for a source tree",
	Long: `Initialize a ` + defaultConfigName + ` configuration file by scanning a directory for
C++ headers. Every header that parses is listed under headers; headers that
fail to parse are reported and added to ignore. The declarations list is left
empty, which selects every declaration.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		targetDir := "."
		if len(args) > 0 {
			targetDir = args[0]
		}
		overwrite, _ := cmd.Flags().GetBool("overwrite")

		configPath := filepath.Join(targetDir, defaultConfigName)
		if _, err := os.Stat(configPath); err == nil && !overwrite {
			return fmt.Errorf("%s already exists, use --overwrite to replace it", configPath)
		}

		generated, err := scanHeaders(targetDir)
		if err != nil {
			return err
		}
		if len(generated.Headers) == 0 && len(generated.Ignore) == 0 {
			return fmt.Errorf("no C++ header files found in %s", targetDir)
		}

		if err := writeConfig(configPath, generated); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s: %d headers, %d ignored\n",
			configPath, len(generated.Headers), len(generated.Ignore))
		return nil
	},
}

func init() {
	initCmd.Flags().Bool("overwrite", false, "Overwrite an existing "+defaultConfigName)
	rootCmd.AddCommand(initCmd)
}

// scanHeaders parses every header below dir. Paths in the result are
// relative to dir, which is where the config file is written.
func scanHeaders(dir string) (*Config, error) {
	files, err := findHeaders(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", dir, err)
	}

	generated := &Config{}
	for _, file := range files {
		relPath, err := filepath.Rel(dir, file)
		if err != nil {
			relPath = file
		}

		if _, err := document.NewFromFile(file, parser.WithLogger(logger)); err != nil {
			logger.Warn("header does not parse, ignoring it", "file", relPath, "error", err)
			generated.Ignore = append(generated.Ignore, filepath.Base(relPath))
			continue
		}
		generated.Headers = append(generated.Headers, filepath.ToSlash(relPath))
	}

	sort.Strings(generated.Headers)
	sort.Strings(generated.Ignore)
	return generated, nil
}

// writeConfig writes the generated config as YAML below a short explanatory header
func writeConfig(path string, generated *Config) error {
	body, err := yaml.Marshal(generated)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	var content strings.Builder
	content.WriteString(`# ` + defaultConfigName + ` configuration file
# Generated by cxxdecl init
#
# - headers: files, directories or glob patterns to parse
# - ignore: file name patterns to skip
# - declarations: names to report (empty reports everything)

`)
	content.Write(body)

	if err := os.WriteFile(path, []byte(content.String()), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"cxxdecl/pkg/ast"
	"cxxdecl/pkg/document"
	"cxxdecl/pkg/parser"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var parseCmd = &cobra.Command{
	Use:   "parse [files...]",
	Short: "Parse C++ headers and print their declarations",
	Long: `Parse C++ header files and print every struct, class and enum they define.
Arguments may be files, directories or glob patterns; without arguments the
headers listed in the configuration file are used. The output can be
human-readable, JSON or YAML.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := loadRegistry(args)
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("format")
		out := cmd.OutOrStdout()

		switch format {
		case "json":
			encoder := json.NewEncoder(out)
			encoder.SetIndent("", "  ")
			return encoder.Encode(buildOutput(registry))
		case "yaml":
			encoder := yaml.NewEncoder(out)
			encoder.SetIndent(2)
			if err := encoder.Encode(buildOutput(registry)); err != nil {
				return err
			}
			return encoder.Close()
		case "human":
			outputHuman(out, registry)
			return nil
		default:
			return fmt.Errorf("unknown format %q (want human, json or yaml)", format)
		}
	},
}

func init() {
	parseCmd.Flags().StringP("format", "f", "human", "Output format (human, json, yaml)")
}

// Serialized forms of the declaration model
type (
	fileOutput struct {
		Filename     string              `json:"filename" yaml:"filename"`
		Declarations []declarationOutput `json:"declarations" yaml:"declarations"`
	}

	declarationOutput struct {
		Kind     string          `json:"kind" yaml:"kind"`
		Name     string          `json:"name" yaml:"name"`
		Bases    []baseOutput    `json:"bases,omitempty" yaml:"bases,omitempty"`
		Members  []memberOutput  `json:"members,omitempty" yaml:"members,omitempty"`
		Variants []variantOutput `json:"variants,omitempty" yaml:"variants,omitempty"`
	}

	baseOutput struct {
		Name          string `json:"name" yaml:"name"`
		Accessibility string `json:"accessibility" yaml:"accessibility"`
		Virtual       bool   `json:"virtual,omitempty" yaml:"virtual,omitempty"`
	}

	memberOutput struct {
		Kind          string          `json:"kind" yaml:"kind"`
		Name          string          `json:"name" yaml:"name"`
		Accessibility string          `json:"accessibility" yaml:"accessibility"`
		Signature     string          `json:"signature" yaml:"signature"`
		Doc           *ast.DocComment `json:"doc,omitempty" yaml:"doc,omitempty"`
	}

	variantOutput struct {
		Name string          `json:"name" yaml:"name"`
		Doc  *ast.DocComment `json:"doc,omitempty" yaml:"doc,omitempty"`
	}
)

func buildOutput(registry *document.Registry) []fileOutput {
	files := make([]fileOutput, 0, len(registry.Files()))
	for _, file := range registry.Files() {
		fo := fileOutput{Filename: file.Filename(), Declarations: []declarationOutput{}}
		for _, decl := range file.Declarations() {
			if config.Wants(decl.DeclName()) {
				fo.Declarations = append(fo.Declarations, convertDeclaration(decl))
			}
		}
		files = append(files, fo)
	}
	return files
}

func convertDeclaration(decl ast.Declaration) declarationOutput {
	do := declarationOutput{Kind: decl.Kind().String(), Name: decl.DeclName()}

	switch d := decl.(type) {
	case *ast.Struct:
		for _, base := range d.Bases {
			do.Bases = append(do.Bases, baseOutput{
				Name:          base.Name,
				Accessibility: base.Accessibility.String(),
				Virtual:       base.Virtual,
			})
		}
		for _, member := range d.Members {
			do.Members = append(do.Members, memberOutput{
				Kind:          memberKind(member),
				Name:          member.MemberName(),
				Accessibility: member.MemberAccessibility().String(),
				Signature:     memberSignature(d, member),
				Doc:           parser.ParseDocComment(member.Doc()),
			})
		}
	case *ast.Enum:
		for _, variant := range d.Members {
			do.Variants = append(do.Variants, variantOutput{
				Name: variant.Name,
				Doc:  parser.ParseDocComment(variant.Docstring),
			})
		}
	}
	return do
}

func memberKind(member ast.Member) string {
	if _, ok := member.(*ast.Method); ok {
		return "method"
	}
	return "field"
}

func memberSignature(s *ast.Struct, member ast.Member) string {
	switch m := member.(type) {
	case *ast.Field:
		return m.Signature()
	case *ast.Method:
		return m.Signature(s.Name)
	}
	return ""
}

func outputHuman(out io.Writer, registry *document.Registry) {
	for _, file := range registry.Files() {
		fmt.Fprintf(out, "Parsed file: %s\n", file.Filename())
		fmt.Fprintf(out, "=====================================\n\n")

		for _, decl := range file.Declarations() {
			if !config.Wants(decl.DeclName()) {
				continue
			}
			printDeclaration(out, decl)
			fmt.Fprintln(out)
		}

		stats := file.Stats()
		fmt.Fprintf(out, "Summary:\n")
		fmt.Fprintf(out, "--------\n")
		fmt.Fprintf(out, "Declarations: %d\n", stats.Declarations)
		fmt.Fprintf(out, "Members: %d\n", stats.TotalMembers)
		fmt.Fprintf(out, "Documented: %d (%.1f%%)\n\n", stats.DocumentedMembers, stats.DocumentationCoverage)
	}
}

func printDeclaration(out io.Writer, decl ast.Declaration) {
	fmt.Fprintf(out, "%s: %s", decl.Kind(), decl.DeclName())

	switch d := decl.(type) {
	case *ast.Struct:
		for i, base := range d.Bases {
			if i == 0 {
				fmt.Fprintf(out, " :")
			} else {
				fmt.Fprintf(out, ",")
			}
			fmt.Fprintf(out, " %s %s", base.Accessibility, base.Name)
		}
		fmt.Fprintln(out)

		for _, member := range d.Members {
			fmt.Fprintf(out, "  [%s] %s", member.MemberAccessibility(), memberSignature(d, member))
			if member.Doc() != "" {
				fmt.Fprintf(out, " [documented]")
			}
			fmt.Fprintln(out)
			if brief := parser.Brief(member.Doc()); brief != "" {
				fmt.Fprintf(out, "    Brief: %s\n", brief)
			}
		}
	case *ast.Enum:
		fmt.Fprintln(out)
		for _, variant := range d.Members {
			fmt.Fprintf(out, "  %s\n", variant.Name)
			if brief := parser.Brief(variant.Docstring); brief != "" {
				fmt.Fprintf(out, "    Brief: %s\n", brief)
			}
		}
	}
}

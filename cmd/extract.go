package cmd

import (
	"fmt"

	"cxxdecl/pkg/ast"
	"cxxdecl/pkg/document"
	"cxxdecl/pkg/formatter"

	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract [name] [files...]",
	Short: "Print a single declaration",
	Long: `Look up a struct, class or enum by name across the given headers and print it.
When several headers define the name, the first one given wins. Use --kind to
require a struct or an enum.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		registry, err := loadRegistry(args[1:])
		if err != nil {
			return err
		}

		kind, _ := cmd.Flags().GetString("kind")
		decl, err := lookupDeclaration(registry, name, kind)
		if err != nil {
			return err
		}

		membersOnly, _ := cmd.Flags().GetBool("members")
		summary, _ := cmd.Flags().GetBool("summary")

		out := cmd.OutOrStdout()
		f := formatter.New()

		switch {
		case summary:
			fmt.Fprint(out, f.GetDeclarationSummary(decl))
		case membersOnly:
			for _, line := range memberLines(decl) {
				fmt.Fprintln(out, line)
			}
		default:
			fmt.Fprint(out, f.ReconstructDeclaration(decl))
		}
		return nil
	},
}

func init() {
	extractCmd.Flags().StringP("kind", "k", "any", "Required declaration kind (any, struct, enum)")
	extractCmd.Flags().BoolP("members", "m", false, "List member names only")
	extractCmd.Flags().BoolP("summary", "s", false, "Print a short summary instead of the declaration")
}

func lookupDeclaration(registry *document.Registry, name, kind string) (ast.Declaration, error) {
	switch kind {
	case "any":
		return registry.Declaration(name)
	case "struct", "class":
		return registry.Structure(name)
	case "enum":
		return registry.Enum(name)
	}
	return nil, fmt.Errorf("unknown kind %q (want any, struct or enum)", kind)
}

// memberLines lists fields and methods, or enumerators, one per line
func memberLines(decl ast.Declaration) []string {
	var lines []string
	switch d := decl.(type) {
	case *ast.Struct:
		for _, member := range d.Members {
			lines = append(lines, fmt.Sprintf("%s %s %s", member.MemberAccessibility(), memberKind(member), member.MemberName()))
		}
	case *ast.Enum:
		for _, variant := range d.Members {
			lines = append(lines, variant.Name)
		}
	}
	return lines
}

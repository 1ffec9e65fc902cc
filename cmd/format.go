package cmd

import (
	"fmt"

	"cxxdecl/pkg/ast"
	"cxxdecl/pkg/formatter"

	"github.com/spf13/cobra"
)

var formatCmd = &cobra.Command{
	Use:   "format [files...]",
	Short: "Re-render parsed declarations as C++",
	Long: `Parse C++ headers and print the extracted declarations as C++ source:
bases, access labels, member signatures and their documentation. Function
bodies, initializers and anything outside structs and enums are dropped.
With --clang-format the result is piped through clang-format.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := loadRegistry(args)
		if err != nil {
			return err
		}

		var decls []ast.Declaration
		for _, file := range registry.Files() {
			for _, decl := range file.Declarations() {
				if config.Wants(decl.DeclName()) {
					decls = append(decls, decl)
				}
			}
		}

		f := formatter.New()
		reconstructed := f.ReconstructDeclarations(decls)
		out := cmd.OutOrStdout()

		useClang, _ := cmd.Flags().GetBool("clang-format")
		if useClang {
			formatted, err := f.FormatWithClang(reconstructed)
			if err != nil {
				logger.Warn("clang-format failed, printing unformatted output", "error", err)
				fmt.Fprint(out, reconstructed)
			} else {
				fmt.Fprint(out, formatted)
			}
		} else {
			fmt.Fprint(out, reconstructed)
		}

		return nil
	},
}

func init() {
	formatCmd.Flags().BoolP("clang-format", "c", false, "Apply clang-format to the output")
}

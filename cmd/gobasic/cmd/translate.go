package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"gobasic/internal/recreator"
	"gobasic/internal/token"
	"gobasic/internal/translator"
)

var (
	translateExpression bool
	translateRecreate   bool
)

var translateCmd = &cobra.Command{
	Use:   "translate [file]",
	Short: "Translate BASIC lines and print the RPN lists",
	Long: `Translate BASIC source lines and print the resulting RPN list
in the debug spelling, or the recreated canonical source.

Examples:
  # Translate full statements from a trace file
  gobasic translate translator.dat

  # Translate a single expression
  gobasic translate --expression -e "A + B * C"

  # Round-trip through the recreator
  gobasic translate --recreate -e 'LET A = 1'`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTranslate,
}

func init() {
	rootCmd.AddCommand(translateCmd)
	translateCmd.Flags().StringVarP(&evalExpr, "eval", "e", "",
		"translate an inline line instead of reading from a file")
	translateCmd.Flags().BoolVar(&translateExpression, "expression", false,
		"translate a single expression instead of statements")
	translateCmd.Flags().BoolVar(&translateRecreate, "recreate", false,
		"recreate the source from the RPN list")
}

func runTranslate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	return forEachLine(cmd, args, false, func(line string) {
		fmt.Fprintf(out, "Input: %s\n", line)
		translateLine(cmd, line, "Output")
	})
}

// translateLine translates one line and prints the result under the
// given header; it returns the list for further processing.
func translateLine(cmd *cobra.Command, line, header string) *translator.RpnList {
	out := cmd.OutOrStdout()
	mode := translator.TestModeYes
	if translateExpression {
		mode = translator.TestModeExpression
	}
	rpn, err := translator.New(tbl, line).Translate(mode)
	if err != nil {
		e, _ := token.AsError(err)
		fmt.Fprintf(out, "Error: %s\n", e.Error())
		return nil
	}
	if translateRecreate {
		r := recreator.New(tbl, cfg.Recreate)
		fmt.Fprintf(out, "%s: %s\n", header,
			r.Recreate(rpn, translateExpression))
	} else {
		fmt.Fprintf(out, "%s: %s\n", header, rpn.DebugString())
	}
	return rpn
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"gobasic/internal/recreator"
)

var recreateCmd = &cobra.Command{
	Use:   "recreate [file]",
	Short: "Translate BASIC lines and recreate the canonical source",
	Long: `Translate BASIC source lines, print the RPN list, then print the
canonical source recreated from it.

Examples:
  gobasic recreate recreator.dat
  gobasic recreate -e 'print (a+b)*c'`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRecreate,
}

func init() {
	rootCmd.AddCommand(recreateCmd)
	recreateCmd.Flags().StringVarP(&evalExpr, "eval", "e", "",
		"recreate an inline line instead of reading from a file")
}

func runRecreate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	return forEachLine(cmd, args, false, func(line string) {
		fmt.Fprintf(out, "Input: %s\n", line)
		rpn := translateLine(cmd, line, "Tokens")
		if rpn == nil {
			return
		}
		r := recreator.New(tbl, cfg.Recreate)
		fmt.Fprintf(out, "Output: %s\n", r.Recreate(rpn, false))
	})
}

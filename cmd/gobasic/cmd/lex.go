package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"gobasic/internal/parser"
	"gobasic/internal/table"
	"gobasic/internal/token"
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize BASIC lines and print the resulting tokens",
	Long: `Tokenize BASIC source lines and print one line per token with
its column, type tag, data type and debug spelling; constants also
show their parsed value.

Examples:
  # Tokenize a trace file
  gobasic lex parser.dat

  # Tokenize an inline line
  gobasic lex -e 'PRINT "hello"; 1 + 2'`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
	lexCmd.Flags().StringVarP(&evalExpr, "eval", "e", "",
		"tokenize an inline line instead of reading from a file")
}

func runLex(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	return forEachLine(cmd, args, false, func(line string) {
		fmt.Fprintf(out, "Input: %s\n", line)
		p := parser.New(tbl, line)
		for {
			tok, err := p.Next(table.Any, token.ReferenceNone)
			if err != nil {
				e, _ := token.AsError(err)
				fmt.Fprintf(out, "Error: %s\n", e.Error())
				return
			}
			printToken(cmd, tok)
			if tok.IsCode(table.EOL) {
				return
			}
		}
	})
}

func printToken(cmd *cobra.Command, tok *token.Token) {
	out := cmd.OutOrStdout()
	if cfg.Trace.ShowPositions {
		fmt.Fprintf(out, "%2d:%-2d %-8s", tok.Column, tok.Length, tok.Type())
	} else {
		fmt.Fprintf(out, "%2d: %-8s", tok.Column, tok.Type())
	}
	fmt.Fprintf(out, " %-7s", tok.DataType())
	if tok.Type() == table.TypeConstant {
		switch tok.DataType() {
		case table.Integer:
			fmt.Fprintf(out, " %d |%s|", tok.ValueInt, tok.Text)
		case table.Double:
			fmt.Fprintf(out, " %g |%s|", tok.Value, tok.Text)
		case table.String:
			fmt.Fprintf(out, " |%s|", tok.Text)
		}
		fmt.Fprintln(out)
		return
	}
	fmt.Fprintf(out, " %s\n", tok.DebugString())
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"gobasic/internal/program"
	"gobasic/internal/recreator"
)

var encodeRecreate bool

var encodeCmd = &cobra.Command{
	Use:   "encode [file]",
	Short: "Encode program edits and dump the words and dictionaries",
	Long: `Process per-line edit commands through a program model, then dump
the encoded program words and each operand dictionary.

Each input line is one edit: "+N text" inserts before line N,
"-N" removes line N, "N text" changes line N. Without a number, "+"
(or no prefix) appends at the end and "-" removes the last line.

Examples:
  gobasic encode encoder.dat
  gobasic encode --recreate encoder.dat`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEncode,
}

func init() {
	rootCmd.AddCommand(encodeCmd)
	encodeCmd.Flags().BoolVar(&encodeRecreate, "recreate", false,
		"also print the recreated source of each program line")
}

func runEncode(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	model := program.NewModel(tbl)

	err := forEachLine(cmd, args, true, func(line string) {
		applyEdit(model, line)
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Program:")
	for i := 0; i < model.RowCount(); i++ {
		fmt.Fprintf(out, "%d: %s\n", i, model.DebugText(i))
	}

	fmt.Fprintf(out, "\nRemarks:\n%s", model.RemDictionary().DebugString())
	fmt.Fprintf(out, "\nNumber Constants:\n%s",
		model.ConstNumDictionary().DebugString())
	fmt.Fprintf(out, "\nString Constants:\n%s",
		model.ConstStrDictionary().DebugString())
	fmt.Fprintf(out, "\nDouble Variables:\n%s",
		model.VarDblDictionary().DebugString())
	fmt.Fprintf(out, "\nInteger Variables:\n%s",
		model.VarIntDictionary().DebugString())
	fmt.Fprintf(out, "\nString Variables:\n%s",
		model.VarStrDictionary().DebugString())

	if encodeRecreate {
		r := recreator.New(tbl, cfg.Recreate)
		fmt.Fprintln(out, "\nOutput:")
		for i := 0; i < model.RowCount(); i++ {
			if err := model.LineError(i); err != nil {
				fmt.Fprintf(out, "%d: Error: %s\n", i, err.Error())
				continue
			}
			fmt.Fprintf(out, "%d: %s\n", i,
				r.Recreate(model.DecodeLine(i), false))
		}
	}
	return nil
}

// applyEdit parses one edit command and applies it to the model.
func applyEdit(model *program.Model, line string) {
	const (
		opChange = iota
		opInsert
		opRemove
	)
	op := opChange
	pos := 0
	if pos < len(line) {
		switch line[pos] {
		case '+':
			op = opInsert
			pos++
		case '-':
			op = opRemove
			pos++
		}
	}
	lineIndex := 0
	digits := 0
	for pos < len(line) && line[pos] >= '0' && line[pos] <= '9' {
		lineIndex = lineIndex*10 + int(line[pos]-'0')
		pos++
		digits++
	}
	if digits == 0 {
		switch op {
		case opChange:
			op = opInsert
			lineIndex = model.RowCount()
		case opInsert:
			lineIndex = model.RowCount()
		case opRemove:
			lineIndex = model.RowCount() - 1
		}
	}
	if pos < len(line) && line[pos] == ' ' {
		pos++
	}
	text := line[pos:]

	if op == opChange && lineIndex >= model.RowCount() {
		op = opInsert
		lineIndex = model.RowCount()
	}

	switch op {
	case opChange:
		model.Update(lineIndex, 0, 0, []string{text})
	case opInsert:
		model.Update(lineIndex, 0, 1, []string{text})
	case opRemove:
		if lineIndex >= 0 && lineIndex < model.RowCount() {
			model.Update(lineIndex, 1, 0, nil)
		}
	}
}

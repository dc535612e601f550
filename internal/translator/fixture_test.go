package translator_test

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"gobasic/internal/token"
	"gobasic/internal/translator"
)

func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	os.Exit(v)
}

// TestTranslatorSnapshot locks the full translator trace for a mixed
// program the way the test driver prints it.
func TestTranslatorSnapshot(t *testing.T) {
	lines := []string{
		"LET A = 1 + 2",
		"A = B + C%",
		"A% = 1.5",
		"A$ = \"say \"\"hi\"\"\"",
		"A, B = C * (D + 1)",
		"MID$(A$, 2) = \"X\"",
		"PRINT \"x\"; 3 + 4,",
		"PRINT (A + B)",
		"PRINT TAB(5); A",
		"INPUT A%, B$",
		"INPUT PROMPT \"n?\"; A%, B$",
		"A = 1: B = 2 ' both",
		"REM done",
	}

	var sb strings.Builder
	for _, line := range lines {
		fmt.Fprintf(&sb, "Input: %s\n", line)
		rpn, err := translator.New(tbl, line).
			Translate(translator.TestModeYes)
		if err != nil {
			e, _ := token.AsError(err)
			fmt.Fprintf(&sb, "Error: %s\n", e.Error())
			continue
		}
		fmt.Fprintf(&sb, "Output: %s\n", rpn.DebugString())
	}
	snaps.MatchSnapshot(t, sb.String())
}

// TestExpressionSnapshot locks the expression-only trace.
func TestExpressionSnapshot(t *testing.T) {
	lines := []string{
		"A + B * C",
		"(A + B) * C",
		"((A + B))",
		"-A - -B",
		"NOT A% AND B% > 1",
		"MID$(A$, 2, 3)",
		"FSUM(A, FNB(C))",
	}

	var sb strings.Builder
	for _, line := range lines {
		fmt.Fprintf(&sb, "Input: %s\n", line)
		rpn, err := translator.New(tbl, line).
			Translate(translator.TestModeExpression)
		if err != nil {
			e, _ := token.AsError(err)
			fmt.Fprintf(&sb, "Error: %s\n", e.Error())
			continue
		}
		fmt.Fprintf(&sb, "Output: %s\n", rpn.DebugString())
	}
	snaps.MatchSnapshot(t, sb.String())
}

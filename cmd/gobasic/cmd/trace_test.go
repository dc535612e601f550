package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute(%v) error: %v", args, err)
	}
	return buf.String()
}

func TestLexInline(t *testing.T) {
	out := execute(t, "lex", "-e", "LET A = 1")
	for _, want := range []string{
		"Input: LET A = 1",
		"Command",
		"NoParen",
		"Constant",
		"EOL",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("lex output missing %q:\n%s", want, out)
		}
	}
}

func TestTranslateInline(t *testing.T) {
	out := execute(t, "translate", "-e", "A = B + C%")
	if !strings.Contains(out, "Output: A<ref> B C% +%2 Assign") {
		t.Errorf("unexpected translate output:\n%s", out)
	}
}

func TestTranslateError(t *testing.T) {
	out := execute(t, "translate", "-e", "A% = 1.5")
	if !strings.Contains(out, "Error: 5:3 expected valid integer constant") {
		t.Errorf("unexpected error output:\n%s", out)
	}
}

func TestRecreateInline(t *testing.T) {
	out := execute(t, "recreate", "-e", "print (a+b)*c")
	if !strings.Contains(out, "Output: PRINT (a + b) * c") {
		t.Errorf("unexpected recreate output:\n%s", out)
	}
}

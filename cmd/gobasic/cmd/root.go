package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"gobasic/internal/config"
	"gobasic/internal/table"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	tbl        = table.New()
	cfg        = config.Default()
	configPath string
	evalExpr   string
)

var rootCmd = &cobra.Command{
	Use:   "gobasic",
	Short: "Interactive BASIC translator",
	Long: `gobasic is the translation core of an interactive BASIC compiler.

It translates one line of BASIC source at a time into an encoded
intermediate representation (a flat program-word vector referencing
interned operand tables) and can reverse-translate that
representation back into a canonical source line.

The subcommands expose each pipeline stage for tracing:
  lex        tokenize a line
  translate  translate to the RPN list
  encode     encode edits into program words and dictionaries
  recreate   translate and recreate the canonical source`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configPath == "" {
			return nil
		}
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"TOML configuration file")
}

// forEachLine feeds input lines to a trace command: an inline
// expression, the lines of a file (skipping '#' comments, and blank
// lines unless keepBlank is set), or interactive lines from stdin until
// a blank line.
func forEachLine(cmd *cobra.Command, args []string, keepBlank bool, fn func(line string)) error {
	if evalExpr != "" {
		fn(evalExpr)
		return nil
	}
	if len(args) == 1 {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		for _, line := range strings.Split(string(content), "\n") {
			line = strings.TrimRight(line, "\r")
			if strings.HasPrefix(line, "#") {
				continue // comment line
			}
			if line == "" && !keepBlank {
				continue
			}
			fn(line)
		}
		return nil
	}

	// interactive mode
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Fprint(cmd.OutOrStdout(), "\nInput: ")
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if line == "" {
			break
		}
		fn(line)
	}
	return scanner.Err()
}

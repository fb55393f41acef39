package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"svlang/internal/diag"
	"svlang/internal/session"
)

var evalCmd = &cobra.Command{
	Use:   "eval [flags] [expression]",
	Short: "Evaluate SystemVerilog declarations and constant expressions",
	Long: `Eval runs a script session: each input is parsed either as a
compilation unit (declarations accumulate) or as a constant expression
whose value is printed. With no arguments and a terminal, an interactive
REPL starts; otherwise inputs are read line by line from stdin.`,
	Args: cobra.ArbitraryArgs,
	RunE: runEval,
}

func runEval(cmd *cobra.Command, args []string) error {
	opts, err := loadOptions(cmd)
	if err != nil {
		return err
	}
	sess := session.New(opts)

	if len(args) > 0 {
		_, err := evalOne(sess, strings.Join(args, " "), new(int), os.Stdout, os.Stderr)
		return err
	}

	if isTerminal(os.Stdin) && isTerminal(os.Stdout) {
		model := newReplModel(sess, useColor(cmd, os.Stdout))
		_, err := tea.NewProgram(model).Run()
		return err
	}

	seen := new(int)
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if _, err := evalOne(sess, line, seen, os.Stdout, os.Stderr); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// evalOne feeds one input through the session and prints the new
// diagnostics it produced (the session's bag accumulates across inputs,
// so seen tracks how many entries were already reported).
func evalOne(sess *session.Session, text string, seen *int, out, errOut *os.File) (string, error) {
	result, bag := sess.Eval(text)
	items := bag.Items()
	fresh := items[*seen:]
	*seen = len(items)

	hadError := false
	for _, d := range fresh {
		fmt.Fprintf(errOut, "%s: %s\n", d.Code.ID(), d.Message)
		if d.Severity >= diag.SevError {
			hadError = true
		}
	}
	if hadError {
		return "", fmt.Errorf("evaluation failed")
	}
	if result.IsDecl {
		return "", nil
	}
	rendered := result.Value.String()
	fmt.Fprintln(out, rendered)
	return rendered, nil
}

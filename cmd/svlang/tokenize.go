package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"svlang/internal/diag"
	"svlang/internal/diagfmt"
	"svlang/internal/lexer"
	"svlang/internal/source"
	"svlang/internal/token"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.sv",
	Short: "Tokenize a SystemVerilog source file",
	Long:  `Tokenize breaks a SystemVerilog source file into raw tokens with their trivia, before preprocessing`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	mgr := source.NewManager()
	sb, err := mgr.ReadSource(args[0])
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}
	if !sb.Valid() {
		return fmt.Errorf("cannot read %q", args[0])
	}
	file := mgr.Get(sb.ID)

	bag := diag.NewBag(0)
	lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	if bag.HasErrors() || bag.HasWarnings() {
		diagfmt.Pretty(os.Stderr, bag, mgr, diagfmt.PrettyOpts{
			Color:   useColor(cmd, os.Stderr),
			Context: 2,
		})
	}

	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(os.Stdout, tokens, mgr)
	case "json":
		return diagfmt.FormatTokensJSON(os.Stdout, tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

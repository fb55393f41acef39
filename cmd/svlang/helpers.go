package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"svlang/internal/compilation"
	"svlang/internal/diag"
	"svlang/internal/diagfmt"
	"svlang/internal/source"
)

// loadOptions layers the optional svlang.toml project file under the
// command line; a missing file yields usable defaults.
func loadOptions(cmd *cobra.Command) (compilation.Options, error) {
	path, _ := cmd.Root().PersistentFlags().GetString("config")
	return compilation.LoadOptions(path)
}

func useColor(cmd *cobra.Command, f *os.File) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(f))
}

// printDiags renders the bag to stderr and reports whether any errors
// were present.
func printDiags(cmd *cobra.Command, bag *diag.Bag, fs *source.FileSet) bool {
	if bag.Len() == 0 {
		return false
	}
	maxDiags, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	bag.Sort()
	shown := bag
	if maxDiags > 0 && bag.Len() > maxDiags {
		limited := diag.NewBag(maxDiags)
		for _, d := range bag.Items()[:maxDiags] {
			limited.Add(d)
		}
		shown = limited
	}
	diagfmt.Pretty(os.Stderr, shown, fs, diagfmt.PrettyOpts{
		Color:     useColor(cmd, os.Stderr),
		Context:   2,
		ShowNotes: true,
	})
	return bag.HasErrors()
}

func printTimings(cmd *cobra.Command, comp *compilation.Compilation) {
	timings, _ := cmd.Root().PersistentFlags().GetBool("timings")
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	if timings && !quiet {
		fmt.Fprintln(os.Stderr, comp.Timer.Summary())
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"svlang/internal/compilation"
	"svlang/internal/serialize"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.sv...",
	Short: "Parse and elaborate SystemVerilog sources",
	Long:  `Parse runs the full front-end pipeline over the given files and reports diagnostics; --dump emits the elaborated model`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("dump", "", "dump the elaborated model (json|msgpack)")
}

func runParse(cmd *cobra.Command, args []string) error {
	opts, err := loadOptions(cmd)
	if err != nil {
		return err
	}
	comp := compilation.New(opts, nil)
	for _, path := range args {
		if _, err := comp.AddFile(path); err != nil {
			return err
		}
	}

	hadErrors := printDiags(cmd, comp.Diagnostics(true), comp.Manager)
	printTimings(cmd, comp)

	dump, _ := cmd.Flags().GetString("dump")
	switch dump {
	case "":
	case "json":
		if err := serialize.New(comp).WriteJSON(os.Stdout); err != nil {
			return err
		}
	case "msgpack":
		if err := serialize.New(comp).WriteMsgpack(os.Stdout); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown dump format: %s", dump)
	}

	if hadErrors {
		return fmt.Errorf("parse finished with errors")
	}
	return nil
}

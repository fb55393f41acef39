package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"svlang/internal/compilation"
	"svlang/internal/prof"
	"svlang/internal/trace"
)

var buildCmd = &cobra.Command{
	Use:   "build [flags] file.sv...",
	Short: "Load, parse, and elaborate a design concurrently",
	Long:  `Build loads every file of a compilation unit concurrently through one shared source manager, then parses and elaborates them in order`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().String("trace", "", "write trace events to a file ('-' for stderr)")
	buildCmd.Flags().String("trace-level", "phase", "trace verbosity (off|error|phase|detail|debug)")
	buildCmd.Flags().String("cpuprofile", "", "write a CPU profile to the given path")
}

func runBuild(cmd *cobra.Command, args []string) error {
	if cpuPath, _ := cmd.Flags().GetString("cpuprofile"); cpuPath != "" {
		if err := prof.StartCPU(cpuPath); err != nil {
			return err
		}
		defer prof.StopCPU()
	}

	opts, err := loadOptions(cmd)
	if err != nil {
		return err
	}
	comp := compilation.New(opts, nil)

	if tracePath, _ := cmd.Flags().GetString("trace"); tracePath != "" {
		levelName, _ := cmd.Flags().GetString("trace-level")
		level, err := trace.ParseLevel(levelName)
		if err != nil {
			return err
		}
		tracer, err := trace.New(trace.Config{OutputPath: tracePath, Level: level, Mode: trace.ModeStream})
		if err != nil {
			return err
		}
		defer tracer.Close()
		comp.Tracer = tracer
	}

	if err := comp.AddFiles(context.Background(), args); err != nil {
		return err
	}

	hadErrors := printDiags(cmd, comp.Diagnostics(true), comp.Manager)
	printTimings(cmd, comp)

	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	if !quiet && !hadErrors {
		fmt.Fprintf(os.Stderr, "elaborated %d file(s)\n", len(comp.Files))
	}
	if hadErrors {
		return fmt.Errorf("build finished with errors")
	}
	return nil
}

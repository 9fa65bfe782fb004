package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"woof/internal/diagfmt"
	"woof/internal/driver"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [flags] <input-dir>",
	Short: "Dump the compiled catalog tree",
	Long:  `Inspect compiles a translation directory and prints the resulting module tree`,
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	inspectCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runInspect(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	result, err := driver.Compile(cmd.Context(), args[0], driver.Options{})
	if err != nil {
		return fmt.Errorf("compilation failed: %w", err)
	}

	reportWarnings(cmd, result.Warnings)
	reportDiagnostics(cmd, result)

	switch format {
	case "pretty":
		diagfmt.FormatModulePretty(os.Stdout, result.Module)
		return nil
	case "json":
		return diagfmt.FormatModuleJSON(os.Stdout, result.Module)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

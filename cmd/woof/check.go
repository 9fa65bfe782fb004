package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"woof/internal/driver"
)

var checkCmd = &cobra.Command{
	Use:   "check <input-dir>",
	Short: "Validate translations without generating code",
	Long:  `Check compiles a translation directory and reports every problem found`,
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	result, err := driver.Compile(cmd.Context(), args[0], driver.Options{})
	if err != nil {
		return err
	}

	reportWarnings(cmd, result.Warnings)
	reportDiagnostics(cmd, result)

	if !result.Diagnostics.IsEmpty() {
		cmd.SilenceUsage = true
		return fmt.Errorf("found %d issue(s)", result.Diagnostics.Len())
	}

	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "ok: %d file(s), %d locale(s)\n", len(result.Files), len(result.Locales))
	}
	return nil
}

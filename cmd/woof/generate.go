package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"woof/internal/diagfmt"
	"woof/internal/driver"
	"woof/internal/gen"
	"woof/internal/ui"
)

var generateCmd = &cobra.Command{
	Use:   "generate [flags] <input-dir>",
	Short: "Compile translations and emit TypeScript modules",
	Long:  `Generate compiles a directory of per-locale TOML translation tables and emits typed accessor modules`,
	Args:  cobra.ExactArgs(1),
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringP("out", "o", "messages", "output directory for generated files")
	generateCmd.Flags().Bool("force", false, "regenerate even when inputs are unchanged")
	generateCmd.Flags().Bool("ui", false, "show interactive progress")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	inputDir := args[0]

	out, err := cmd.Flags().GetString("out")
	if err != nil {
		return fmt.Errorf("failed to get out flag: %w", err)
	}
	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return fmt.Errorf("failed to get force flag: %w", err)
	}
	withUI, err := cmd.Flags().GetBool("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")

	var result *driver.Result
	var skipped bool

	if withUI {
		events := make(chan driver.Event, 16)
		errc := make(chan error, 1)
		go func() {
			defer close(events)
			var perr error
			result, skipped, perr = runPipeline(cmd, inputDir, out, force, events)
			errc <- perr
		}()
		if _, uiErr := tea.NewProgram(ui.NewProgressModel("woof generate", events)).Run(); uiErr != nil {
			return uiErr
		}
		if err := <-errc; err != nil {
			return err
		}
	} else {
		result, skipped, err = runPipeline(cmd, inputDir, out, force, nil)
		if err != nil {
			return err
		}
	}

	reportWarnings(cmd, result.Warnings)
	reportDiagnostics(cmd, result)

	if !quiet {
		if skipped {
			fmt.Fprintf(cmd.OutOrStdout(), "unchanged, output left as is (use --force to regenerate)\n")
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "generated %s from %d file(s)\n", out, len(result.Files))
		}
	}
	return nil
}

// runPipeline compiles the input directory and emits output unless the
// disk cache says the same inputs already produced it.
func runPipeline(cmd *cobra.Command, inputDir, out string, force bool, events chan<- driver.Event) (*driver.Result, bool, error) {
	emit := func(ev driver.Event) {
		if events != nil {
			events <- ev
		}
	}

	result, err := driver.Compile(cmd.Context(), inputDir, driver.Options{Events: events})
	if err != nil {
		return nil, false, err
	}

	cache, cacheErr := driver.OpenDiskCache("woof")
	if cacheErr == nil && !force {
		var payload driver.DiskPayload
		if hit, _ := cache.Get(result.Digest, &payload); hit && payload.OutputDir == out && payload.OutputsIntact() {
			emit(driver.Event{Stage: driver.StageEmit, Path: out, Done: true})
			return result, true, nil
		}
	}

	emit(driver.Event{Stage: driver.StageEmit, Path: out})
	outputs, err := gen.Generate(out, result.Locales, result.Module)
	if err != nil {
		emit(driver.Event{Stage: driver.StageEmit, Path: out, Err: err})
		return nil, false, err
	}
	emit(driver.Event{Stage: driver.StageEmit, Path: out, Done: true})

	if cacheErr == nil {
		payload := driver.DiskPayload{
			Digest:          result.Digest,
			OutputDir:       out,
			Outputs:         outputs,
			DiagnosticCount: result.Diagnostics.Len(),
		}
		// Cache failures never fail a successful generation.
		_ = cache.Put(result.Digest, &payload)
	}
	return result, false, nil
}

func reportWarnings(cmd *cobra.Command, warnings []string) {
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	if quiet {
		return
	}
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
}

func reportDiagnostics(cmd *cobra.Command, result *driver.Result) {
	if result.Diagnostics.IsEmpty() {
		return
	}
	maxDiagnostics, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	opts := diagfmt.PrettyOpts{
		Color: useColor(cmd, os.Stderr),
		Max:   maxDiagnostics,
	}
	diagfmt.Pretty(os.Stderr, result.Diagnostics, opts)
}

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"tabular/internal/errs"
	"tabular/internal/roundtrip"
)

func newVerifyCommand(ctx *commandContext) *cobra.Command {
	var verbose bool
	var inferTypes bool

	cmd := &cobra.Command{
		Use:   "verify <input.json>",
		Short: "Verify JSON -> CSV -> JSON round-trip integrity (in-memory)",
		Long: `Encode the JSON input to CSV and decode it back, entirely in memory, then
deep-compare the result against the original. Equality is type-sensitive:
without --infer-types every decoded value is a string, so numeric or boolean
originals are expected to fail.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			runner, _, err := ctx.newRunner(verbose)
			if err != nil {
				return err
			}

			result, err := runner.VerifyFile(args[0], inferTypes || cfg.Convert.InferTypes)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			paint := newPainter(cfg, cmd)

			if result.Pass {
				fmt.Fprintf(out, "VERIFY: %s (JSON -> CSV -> JSON is lossless for current schema)\n", paint.pass("PASS"))
				if verbose {
					fmt.Fprintln(out, renderFieldTable(result.Fields))
				}
				return nil
			}

			fmt.Fprintf(out, "VERIFY: %s (round-trip mismatch)\n", paint.fail("FAIL"))
			if verbose {
				printDivergence(out, result)
			}
			return errs.ErrVerifyFailed
		},
	}

	cmd.Flags().BoolVar(&inferTypes, "infer-types", false, "Infer ints/floats/bools from CSV values")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	return cmd
}

func printDivergence(out io.Writer, result roundtrip.Result) {
	fmt.Fprintln(out, renderFieldTable(result.Fields))
	if len(result.MissingKeys) > 0 {
		fmt.Fprintf(out, "Missing keys: %s\n", formatKeyList(result.MissingKeys))
	}
	if len(result.ExtraKeys) > 0 {
		fmt.Fprintf(out, "Extra keys: %s\n", formatKeyList(result.ExtraKeys))
	}
	if result.First != nil {
		fmt.Fprintf(out, "First differing key: %s\n", result.First.Key)
		fmt.Fprintln(out, renderDivergenceTable(result.First))
	}
}

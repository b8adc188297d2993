package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newToCSVCommand(ctx *commandContext) *cobra.Command {
	var force bool
	var verbose bool

	cmd := &cobra.Command{
		Use:   "to-csv <input.json> <output.csv>",
		Short: "Convert dict-of-records JSON to CSV",
		Long: `Convert a JSON object of flat records into a CSV table.

The field list is inferred from the union of record fields, sorted
alphabetically, with the reserved id column first. Row order follows the
JSON object's key order.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, _, err := ctx.newRunner(verbose)
			if err != nil {
				return err
			}

			res, err := runner.JSONToCSV(args[0], args[1], force)
			if err != nil {
				return err
			}

			if verbose {
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, renderFieldTable(res.Fields))
				fmt.Fprintf(out, "Wrote CSV: %s (%d rows)\n", res.OutputPath, res.Rows)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite output file if it exists")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	return cmd
}

func newToJSONCommand(ctx *commandContext) *cobra.Command {
	var force bool
	var verbose bool
	var inferTypes bool

	cmd := &cobra.Command{
		Use:   "to-json <input.csv> <output.json>",
		Short: "Convert CSV to dict-of-records JSON",
		Long: `Convert a CSV table back into a JSON object of flat records.

The CSV header is authoritative and must contain an id column; the id cell
of each row becomes the record key. With --infer-types, cell text that looks
like an integer, float, or boolean is decoded as that type instead of a
string.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			runner, _, err := ctx.newRunner(verbose)
			if err != nil {
				return err
			}

			res, err := runner.CSVToJSON(args[0], args[1], force, inferTypes || cfg.Convert.InferTypes)
			if err != nil {
				return err
			}

			if verbose {
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, renderFieldTable(res.Fields))
				fmt.Fprintf(out, "Wrote JSON: %s (%d rows)\n", res.OutputPath, res.Rows)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite output file if it exists")
	cmd.Flags().BoolVar(&inferTypes, "infer-types", false, "Infer ints/floats/bools from CSV values")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	return cmd
}

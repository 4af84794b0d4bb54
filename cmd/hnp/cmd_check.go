package main

import (
	"fmt"

	"github.com/dhamidi/hnp/corpus"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "check <corpus>",
		Short: "Check the parser against a corpus of expected segmentations",
		Long: `Check the parser against a corpus file.

Each line holds nine pipe-separated fields:

  name|leadingInit|first|nickname|middle|last|suffix|salutation|postnominal

Blank lines are ignored; malformed lines are skipped with a warning.
Exits non-zero if any name is segmented differently.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := newParser()
			if err != nil {
				return err
			}
			cases, err := corpus.Load(args[0])
			if err != nil {
				return err
			}

			report := corpus.Check(p, cases)
			out := cmd.OutOrStdout()
			if !quiet {
				for _, f := range report.Failures {
					fmt.Fprintf(out, "%s:%d: %s\n", args[0], f.Case.Line, f.Case.Name)
					if f.Err != nil {
						fmt.Fprintf(out, "\terror: %v\n", f.Err)
					}
					for _, m := range f.Mismatches {
						fmt.Fprintf(out, "\t%s\n", m)
					}
				}
			}
			fmt.Fprintf(out, "%d/%d names passed\n", report.Passed(), report.Total)

			if !report.OK() {
				return fmt.Errorf("%d names failed", len(report.Failures))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "only print the summary")

	return cmd
}

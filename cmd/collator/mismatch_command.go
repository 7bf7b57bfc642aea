package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"collator/internal/review"
)

func newMismatchesCommand(ctx *commandContext) *cobra.Command {
	var lenient bool
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "mismatches [root]",
		Short: "Report files whose tags disagree with their directory position",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outcome, err := ctx.runScan(args, lenient)
			if err != nil {
				return err
			}

			findings := review.Compare(outcome.result.Audio)
			if jsonOut {
				return writeJSON(cmd, findings)
			}

			out := cmd.OutOrStdout()
			if len(findings) == 0 {
				fmt.Fprintln(out, "No path/tag mismatches found.")
				return nil
			}

			rows := make([][]string, 0, len(findings))
			for _, finding := range findings {
				rows = append(rows, []string{
					finding.Path, finding.Field,
					finding.PathValue, finding.TagValue, finding.Suggested,
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Path", "Field", "Directory Says", "Tag Says", "Suggested"},
				rows))
			fmt.Fprintf(out, "%d mismatch(es)\n", len(findings))
			return nil
		},
	}

	cmd.Flags().BoolVar(&lenient, "lenient", false, "Collect per-file errors instead of aborting on the first one")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit findings as JSON")
	return cmd
}

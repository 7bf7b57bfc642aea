package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"collator/internal/dupes"
)

func newDupesCommand(ctx *commandContext) *cobra.Command {
	var lenient bool
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "dupes [root]",
		Short: "List groups of files with identical content",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outcome, err := ctx.runScan(args, lenient)
			if err != nil {
				return err
			}

			groups := dupes.Groups(outcome.result.Audio)
			if jsonOut {
				return writeJSON(cmd, groups)
			}

			out := cmd.OutOrStdout()
			if len(groups) == 0 {
				fmt.Fprintln(out, "No duplicate content found.")
				return nil
			}

			rows := make([][]string, 0)
			for i, group := range groups {
				for _, path := range group.Paths {
					rows = append(rows, []string{strconv.Itoa(i + 1), shortHash(group.Hash), path})
				}
			}
			fmt.Fprintln(out, renderTable([]string{"Group", "Hash", "Path"}, rows))
			fmt.Fprintf(out, "%d duplicate group(s)\n", len(groups))
			return nil
		},
	}

	cmd.Flags().BoolVar(&lenient, "lenient", false, "Collect per-file errors instead of aborting on the first one")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit duplicate groups as JSON")
	return cmd
}

func shortHash(hash string) string {
	if len(hash) > 12 {
		return hash[:12]
	}
	return hash
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meigma/dirzip"
)

func newListCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list <archive>",
		Short: "List the entries of a zip archive",
		Long: `List the entries of a zip archive in archive order.

Each line shows the entry kind, its uncompressed size and its name. Entries
that share a name are all listed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := dirzip.List(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, e := range entries {
				fmt.Fprintf(out, "%-9s %10d  %s\n", e.Kind, e.Size, e.Name)
			}
			return nil
		},
	}
}

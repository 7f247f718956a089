package cli

import (
	"github.com/spf13/cobra"

	"github.com/meigma/dirzip"
)

func newUnpackCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unpack <archive> <dest-dir>",
		Short: "Unpack a zip archive into a new directory",
		Long: `Unpack a zip archive into a new directory.

Entries are extracted in archive order. Missing parent directories are
created, and a later file with the same name replaces an earlier one. A path
that is needed both as a file and as a directory is an error.

Examples:
  dirzip unpack site.zip ./restored
  dirzip unpack site.zip ./restored --keep-partial`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return dirzip.Unpack(args[0], args[1],
				dirzip.UnpackWithKeepPartial(a.v.GetBool(keyKeepPartial)),
				dirzip.UnpackWithLogger(a.logger(cmd.ErrOrStderr())),
			)
		},
	}
	cmd.Flags().Bool(keyKeepPartial, false, "keep partially extracted files on failure")
	_ = a.v.BindPFlag(keyKeepPartial, cmd.Flags().Lookup(keyKeepPartial)) //nolint:errcheck // flag is defined above
	return cmd
}

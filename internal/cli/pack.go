package cli

import (
	"github.com/spf13/cobra"

	"github.com/meigma/dirzip"
)

func newPackCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pack <source-dir> <archive>",
		Short: "Pack a directory into a new zip archive",
		Long: `Pack a directory tree into a new zip archive.

Every file and directory below source-dir becomes one entry, including empty
directories. Symbolic links are followed. The archive must not exist yet.

Examples:
  dirzip pack ./site site.zip
  dirzip pack ./site site.zip --compression zstd`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := dirzip.ParseCompression(a.v.GetString(keyCompression))
			if err != nil {
				return err
			}
			return dirzip.Pack(args[0], args[1],
				dirzip.PackWithCompression(c),
				dirzip.PackWithLogger(a.logger(cmd.ErrOrStderr())),
			)
		},
	}
	cmd.Flags().String(keyCompression, dirzip.CompressionDeflate.String(), "compression method: none, deflate or zstd")
	_ = a.v.BindPFlag(keyCompression, cmd.Flags().Lookup(keyCompression)) //nolint:errcheck // flag is defined above
	return cmd
}

// Package cli implements the dirzip command line.
package cli

import (
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "DIRZIP"

// Config keys shared by flags and environment variables.
const (
	keyVerbose     = "verbose"
	keyCompression = "compression"
	keyKeepPartial = "keep-partial"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	v *viper.Viper
}

// logger returns a slog logger backed by charmbracelet/log writing to w.
func (a *app) logger(w io.Writer) *slog.Logger {
	l := log.NewWithOptions(w, log.Options{
		Prefix: "dirzip",
		Level:  log.InfoLevel,
	})
	if a.v.GetBool(keyVerbose) {
		l.SetLevel(log.DebugLevel)
	}
	return slog.New(l)
}

// NewRootCmd builds the dirzip command tree. Flags can also be set through
// DIRZIP_-prefixed environment variables, e.g. DIRZIP_COMPRESSION=zstd.
func NewRootCmd(version string) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	a := &app{v: v}

	root := &cobra.Command{
		Use:     "dirzip",
		Version: version,
		Short:   "Pack directories into zip archives and unpack them again",
		Long: `dirzip packs a directory tree into a single zip archive and unpacks
such an archive into a fresh directory.

Neither command overwrites anything: the archive or destination directory
must not exist yet.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	root.SetVersionTemplate("{{.Version}}\n")

	root.PersistentFlags().BoolP(keyVerbose, "v", false, "log every entry")
	_ = v.BindPFlag(keyVerbose, root.PersistentFlags().Lookup(keyVerbose)) //nolint:errcheck // flag is defined above

	root.AddCommand(
		newPackCmd(a),
		newUnpackCmd(a),
		newListCmd(a),
	)
	return root
}

// Execute runs the dirzip command line with os.Args.
func Execute(version string) error {
	return NewRootCmd(version).Execute()
}

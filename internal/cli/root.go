package cli

import (
	"context"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/five82/larder/internal/app"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	PrefsPath  string
	Ephemeral  bool
	Format     string // "text" | "json"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

func (o *RootOptions) appOptions() app.Options {
	return app.Options{
		ConfigPath: o.ConfigPath,
		PrefsPath:  o.PrefsPath,
		Ephemeral:  o.Ephemeral,
	}
}

// open starts a session for a one-shot command.
func (o *RootOptions) open(ctx context.Context) (*app.Session, error) {
	session, err := app.Open(ctx, o.appOptions())
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "open session", err)
	}
	return session, nil
}

// NewRootCommand creates the larder command tree. Without a subcommand it
// launches the terminal UI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "larder",
		Short: "Larder - product catalog and berry reference console",
		Long: `Larder manages a small product catalog seeded from a demo store API and
browses the berry reference API. Run without arguments for the terminal UI.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), opts.appOptions())
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "config file (default ~/.config/larder/config.toml)")
	cmd.PersistentFlags().StringVar(&opts.PrefsPath, "prefs", "", "preferences file (default ~/.config/larder/prefs.toml)")
	cmd.PersistentFlags().BoolVar(&opts.Ephemeral, "ephemeral", false, "keep state in memory only")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format for list commands (text|json)")

	cmd.AddCommand(NewProductsCommand(opts))
	cmd.AddCommand(NewBerriesCommand(opts))
	cmd.AddCommand(NewBerryCommand(opts))
	cmd.AddCommand(NewResetCommand(opts))

	return cmd
}

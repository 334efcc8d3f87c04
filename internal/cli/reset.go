package cli

import (
	"github.com/spf13/cobra"

	"github.com/five82/larder/internal/i18n"
)

// NewResetCommand restores both lists to their default view state.
func NewResetCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Reset search, paging and sort for both lists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			session, err := rootOpts.open(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = session.Close() }()

			session.Console.ResetViews(ctx)
			locale := i18n.Resolve(session.Prefs.Locale)
			return formatter{w: cmd.OutOrStdout()}.line("%s", locale.T(i18n.KeyReset))
		},
	}
}

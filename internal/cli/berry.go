package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/five82/larder/internal/i18n"
	"github.com/five82/larder/internal/remote"
)

// NewBerryCommand looks up one berry by name.
func NewBerryCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "berry <name>",
		Short: "Look up one berry by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBerry(cmd, rootOpts, args[0])
		},
	}
}

func runBerry(cmd *cobra.Command, opts *RootOptions, name string) error {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return NewExitError(ExitCommandError, "berry name required")
	}

	ctx := cmd.Context()
	session, err := opts.open(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = session.Close() }()

	c := session.Console
	c.OpenBerryDetail(name)
	defer c.CloseBerryDetail()

	locale := i18n.Resolve(session.Prefs.Locale)
	if err := c.LookupBerry(ctx, name); err != nil {
		if errors.Is(err, remote.ErrNotFound) {
			return NewExitError(ExitFailure, locale.T(i18n.KeyBerryNotFound, name))
		}
		return WrapExitError(ExitCommandError, "lookup berry", err)
	}
	detail := c.Berries.Detail()
	if !detail.Found() {
		return NewExitError(ExitFailure, locale.T(i18n.KeyBerryNotFound, name))
	}
	berry := *detail.Berry

	out := formatter{format: opts.Format, w: cmd.OutOrStdout()}
	if out.format == "json" {
		return out.json(berry)
	}

	flavors := make([]string, 0, len(berry.Flavors))
	for _, f := range berry.StrongFlavors() {
		flavors = append(flavors, fmt.Sprintf("%s %d", f.Flavor.Name, f.Potency))
	}
	rows := [][]string{
		{locale.T(i18n.KeyBerryID), fmt.Sprint(berry.ID)},
		{locale.T(i18n.KeyBerryName), berry.Name},
		{locale.T(i18n.KeyGrowthTime), fmt.Sprint(berry.GrowthTime)},
		{locale.T(i18n.KeyMaxHarvest), fmt.Sprint(berry.MaxHarvest)},
		{locale.T(i18n.KeySize), fmt.Sprint(berry.Size)},
		{locale.T(i18n.KeySmoothness), fmt.Sprint(berry.Smoothness)},
		{locale.T(i18n.KeySoilDryness), fmt.Sprint(berry.SoilDryness)},
		{locale.T(i18n.KeyFirmness), berry.FirmnessName()},
		{locale.T(i18n.KeyNaturalGiftPower), fmt.Sprintf("%d %s", berry.NaturalGiftPower, berry.GiftTypeName())},
		{locale.T(i18n.KeyFlavors), strings.Join(flavors, ", ")},
	}
	return out.table([]string{locale.T(i18n.KeyBerryDetail), ""}, rows)
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/ngcdex/internal/app"
	"github.com/kailas-cloud/ngcdex/internal/domain/sky"
	proximityuc "github.com/kailas-cloud/ngcdex/internal/usecase/proximity"
)

func newNearbyCmd(g *globalFlags) *cobra.Command {
	var (
		radius  float64
		catalog string
	)
	cmd := &cobra.Command{
		Use:   "nearby [flags] RA DEC",
		Short: "List objects around a position",
		Long: `List objects within a radius of a position, closest first.

RA is HH:MM:SS(.ss) and DEC is +/-DD:MM:SS(.s) with a mandatory sign.
Flags go before the position so a negative declination is not read as a flag.

Examples:
  ngcdex nearby 11:08:44 +00:09:01
  ngcdex nearby --radius 30 --catalog IC 11:08:44 -00:09:01.3`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			center, err := sky.Parse(args[0] + " " + args[1])
			if err != nil {
				return err
			}
			return g.withApp(cmd, func(a *app.App) error {
				hits, err := a.Proximity.Nearby(cmd.Context(), center, radius, catalog)
				if err != nil {
					return err
				}
				if g.json {
					return printJSON(cmd.OutOrStdout(), neighborsJSON(hits))
				}
				return renderNeighbors(cmd.OutOrStdout(), hits)
			})
		},
	}
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().Float64Var(&radius, "radius", 60, "search radius in arcminutes")
	cmd.Flags().StringVar(&catalog, "catalog", proximityuc.CatalogAll, "catalog: all, NGC or IC")
	return cmd
}

func newNeighborsCmd(g *globalFlags) *cobra.Command {
	var (
		radius  float64
		catalog string
	)
	cmd := &cobra.Command{
		Use:   "neighbors NAME",
		Short: "List objects around an object",
		Long: `List objects within a radius of another object, closest first.
The object itself is not listed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return g.withApp(cmd, func(a *app.App) error {
				hits, err := a.Proximity.Neighbors(cmd.Context(), args[0], radius, catalog)
				if err != nil {
					return err
				}
				if g.json {
					return printJSON(cmd.OutOrStdout(), neighborsJSON(hits))
				}
				return renderNeighbors(cmd.OutOrStdout(), hits)
			})
		},
	}
	cmd.Flags().Float64Var(&radius, "radius", 30, "search radius in arcminutes")
	cmd.Flags().StringVar(&catalog, "catalog", proximityuc.CatalogAll, "catalog: all, NGC or IC")
	return cmd
}

func newSeparationCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "separation A B",
		Short: "Apparent angular distance between two objects",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return g.withApp(cmd, func(a *app.App) error {
				sep, err := a.Proximity.Separation(cmd.Context(), args[0], args[1])
				if err != nil {
					return err
				}
				if g.json {
					return printJSON(cmd.OutOrStdout(), separationJSON{
						From:     args[0],
						To:       args[1],
						Angular:  sep.Angular,
						DeltaRA:  sep.DeltaRA,
						DeltaDec: sep.DeltaDec,
						Text:     sep.Text(),
					})
				}
				w := cmd.OutOrStdout()
				fmt.Fprintf(w, "Apparent angular separation: %s\n", sep.Text())
				fmt.Fprintf(w, "Difference in RA:  %.6f°\n", sep.DeltaRA)
				fmt.Fprintf(w, "Difference in Dec: %.6f°\n", sep.DeltaDec)
				return nil
			})
		},
	}
}

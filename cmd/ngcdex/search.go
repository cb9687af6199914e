package main

import (
	"github.com/spf13/cobra"

	"github.com/kailas-cloud/ngcdex/internal/app"
	"github.com/kailas-cloud/ngcdex/internal/domain/search/criteria"
)

type searchFlags struct {
	catalog        string
	group          string
	types          []string
	constellations []string
	minSize        float64
	maxSize        float64
	minBMag        float64
	maxBMag        float64
	minVMag        float64
	maxVMag        float64
	minRA          string
	maxRA          string
	minDec         string
	maxDec         string
	name           string
	withName       bool
	withoutName    bool
	addendum       bool
	noAddendum     bool
}

func newSearchCmd(g *globalFlags) *cobra.Command {
	var f searchFlags
	cmd := &cobra.Command{
		Use:   "search",
		Short: "List objects matching filters",
		Long: `List every object matching all given filters, in catalog order.

With --catalog M the results are Messier objects ordered by Messier number.
--min-ra greater than --max-ra selects a range across 0h.
--group narrows to galaxies, clusters or nebulae; --addendum and --no-addendum
pick objects outside or inside the NGC/IC catalogs proper.

Examples:
  ngcdex search --catalog M --max-vmag 5
  ngcdex search --type G,GPair --constellation Leo --min-size 5
  ngcdex search --min-ra 23:00:00 --max-ra 01:00:00 --min-dec +10:00:00
  ngcdex search --group clusters --no-addendum --constellation Aql`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := f.criteria(cmd)
			return g.withApp(cmd, func(a *app.App) error {
				objects, err := a.Search.List(cmd.Context(), c)
				if err != nil {
					return err
				}
				if g.json {
					return printJSON(cmd.OutOrStdout(), objects)
				}
				return renderObjects(cmd.OutOrStdout(), objects)
			})
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.catalog, "catalog", "all", "catalog: all, NGC, IC or M")
	fl.StringVar(&f.group, "group", "all", "type group: all, galaxies, clusters or nebulae")
	fl.StringSliceVar(&f.types, "type", nil, "object type codes, e.g. G,GPair,PN")
	fl.StringSliceVar(&f.constellations, "constellation", nil, "three-letter constellation codes")
	fl.Float64Var(&f.minSize, "min-size", 0, "minimum major axis (arcmin)")
	fl.Float64Var(&f.maxSize, "max-size", 0, "maximum major axis (arcmin), objects of unknown size included")
	fl.Float64Var(&f.minBMag, "min-bmag", 0, "B magnitude lower bound")
	fl.Float64Var(&f.maxBMag, "max-bmag", 0, "B magnitude upper bound")
	fl.Float64Var(&f.minVMag, "min-vmag", 0, "V magnitude lower bound")
	fl.Float64Var(&f.maxVMag, "max-vmag", 0, "V magnitude upper bound")
	fl.StringVar(&f.minRA, "min-ra", "", "minimum right ascension HH:MM:SS")
	fl.StringVar(&f.maxRA, "max-ra", "", "maximum right ascension HH:MM:SS")
	fl.StringVar(&f.minDec, "min-dec", "", "minimum declination +/-DD:MM:SS")
	fl.StringVar(&f.maxDec, "max-dec", "", "maximum declination +/-DD:MM:SS")
	fl.StringVar(&f.name, "name", "", "substring of a common name")
	fl.BoolVar(&f.withName, "with-name", false, "only objects with a common name")
	fl.BoolVar(&f.withoutName, "without-name", false, "only objects without a common name")
	fl.BoolVar(&f.addendum, "addendum", false, "only addendum objects outside NGC/IC")
	fl.BoolVar(&f.noAddendum, "no-addendum", false, "only NGC/IC catalog objects")
	cmd.MarkFlagsMutuallyExclusive("with-name", "without-name")
	cmd.MarkFlagsMutuallyExclusive("addendum", "no-addendum")
	return cmd
}

// criteria converts the flags the user actually set.
func (f *searchFlags) criteria(cmd *cobra.Command) criteria.Criteria {
	changed := cmd.Flags().Changed
	num := func(name string, v float64) *float64 {
		if !changed(name) {
			return nil
		}
		return &v
	}

	c := criteria.Criteria{
		Catalog:        f.catalog,
		Group:          f.group,
		Types:          f.types,
		Constellations: f.constellations,
		MinSize:        num("min-size", f.minSize),
		MaxSize:        num("max-size", f.maxSize),
		MinBMag:        num("min-bmag", f.minBMag),
		MaxBMag:        num("max-bmag", f.maxBMag),
		MinVMag:        num("min-vmag", f.minVMag),
		MaxVMag:        num("max-vmag", f.maxVMag),
		MinRA:          f.minRA,
		MaxRA:          f.maxRA,
		MinDec:         f.minDec,
		MaxDec:         f.maxDec,
		NameContains:   f.name,
	}
	switch {
	case f.withName:
		has := true
		c.HasCommonName = &has
	case f.withoutName:
		has := false
		c.HasCommonName = &has
	}
	switch {
	case f.addendum:
		add := true
		c.Addendum = &add
	case f.noAddendum:
		add := false
		c.Addendum = &add
	}
	return c
}

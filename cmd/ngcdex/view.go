package main

import (
	"github.com/spf13/cobra"

	"github.com/kailas-cloud/ngcdex/internal/app"
)

func newViewCmd(g *globalFlags) *cobra.Command {
	var showDup bool
	cmd := &cobra.Command{
		Use:   "view NAME",
		Short: "Describe an object",
		Long: `Describe an object by any recognized designation.

Duplicate records are followed to the object they describe unless -D is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return g.withApp(cmd, func(a *app.App) error {
				get := a.Catalog.Get
				if showDup {
					get = a.Catalog.GetRecord
				}
				obj, err := get(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if g.json {
					return printJSON(cmd.OutOrStdout(), obj)
				}
				return renderObject(cmd.OutOrStdout(), obj)
			})
		},
	}
	cmd.Flags().BoolVarP(&showDup, "dup", "D", false, "show a duplicate record as stored")
	return cmd
}


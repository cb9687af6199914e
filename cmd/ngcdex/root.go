package main

import (
	"context"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kailas-cloud/ngcdex/internal/app"
	"github.com/kailas-cloud/ngcdex/internal/config"
	logpkg "github.com/kailas-cloud/ngcdex/internal/logger"
)

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	configPath string
	dbPath     string
	logLevel   string
	json       bool
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}
	root := &cobra.Command{
		Use:   "ngcdex",
		Short: "Query the OpenNGC catalog of deep sky objects",
		Long: `ngcdex - read-only query engine for the OpenNGC catalog.

Objects are named by any recognized designation: NGC, IC, Messier,
Caldwell, Barnard, Collinder, Melotte, PGC, UGC, ESO and more.

Examples:
  ngcdex view M31                              # describe an object
  ngcdex view -D IC11                          # show a duplicate record as stored
  ngcdex search --constellation Ori --type Neb # filter the catalog
  ngcdex nearby --radius 30 11:08:44 -00:09:01 # objects around a position
  ngcdex neighbors NGC521 --catalog IC         # objects around an object
  ngcdex separation M31 M32                    # apparent distance
  ngcdex serve                                 # start the HTTP API`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&g.configPath, "config", "", "configuration file (default: config/<ENV>.yaml when present)")
	pf.StringVar(&g.dbPath, "db", "", "path of the OpenNGC SQLite database")
	pf.StringVar(&g.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.BoolVar(&g.json, "json", false, "print results as JSON")

	root.AddCommand(
		newViewCmd(g),
		newSearchCmd(g),
		newNearbyCmd(g),
		newNeighborsCmd(g),
		newSeparationCmd(g),
		newServeCmd(g),
		newVersionCmd(g),
	)
	return root
}

// loadConfig reads --config, else the environment's file, else built-in
// defaults. Flags override file values.
func (g *globalFlags) loadConfig() (config.Config, error) {
	var (
		cfg config.Config
		err error
	)
	if g.configPath != "" {
		cfg, err = config.LoadFile(g.configPath)
	} else {
		cfg, err = config.Load(config.GetEnv())
		if errors.Is(err, os.ErrNotExist) {
			cfg, err = config.Default(), nil
		}
	}
	if err != nil {
		return config.Config{}, err
	}

	if g.dbPath != "" {
		cfg.Catalog.Path = g.dbPath
	}
	if g.logLevel != "" {
		cfg.Logging.Level = g.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, errors.Wrap(err, "invalid flags")
	}
	return cfg, nil
}

// open wires the catalog for a one-shot command with a quiet stderr logger.
func (g *globalFlags) open(ctx context.Context) (*app.App, error) {
	cfg, err := g.loadConfig()
	if err != nil {
		return nil, err
	}
	logger, err := logpkg.NewLogger("cli", g.logLevel)
	if err != nil {
		return nil, err
	}
	return app.New(ctx, cfg, logger)
}

// withApp runs fn against an opened catalog and closes it afterwards.
func (g *globalFlags) withApp(cmd *cobra.Command, fn func(a *app.App) error) error {
	a, err := g.open(cmd.Context())
	if err != nil {
		return err
	}
	defer func() {
		if cerr := a.Close(); cerr != nil {
			logpkg.FromContext(cmd.Context()).Warn("close catalog", zap.Error(cerr))
		}
	}()
	return fn(a)
}

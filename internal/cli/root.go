package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/zoneinfo/internal/domain"
	"github.com/aalvaropc/zoneinfo/internal/infra/config"
	"github.com/aalvaropc/zoneinfo/internal/infra/logger"
	"github.com/aalvaropc/zoneinfo/internal/infra/tzsource"
	"github.com/aalvaropc/zoneinfo/internal/infra/workspacefinder"
	"github.com/aalvaropc/zoneinfo/internal/ports"
	"github.com/aalvaropc/zoneinfo/internal/tzdb"
	"github.com/aalvaropc/zoneinfo/internal/usecase"
)

func Execute() {
	a := &app{}
	defer a.close()

	cmd := newRootCmd(a)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		a.close()
		os.Exit(1)
	}
}

// app is the state shared by all commands of one invocation.
type app struct {
	debug      bool
	configPath string
	tzdir      string

	locator  ports.WorkspaceLocator
	cfg      domain.Config
	root     string
	source   ports.DatasetLoader
	closeLog func() error
}

func (a *app) close() {
	if a.closeLog != nil {
		_ = a.closeLog()
		a.closeLog = nil
	}
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "zoneinfo",
		Short:         "zoneinfo converts times between tz database zones",
		SilenceUsage:  true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.setup()
		},
	}

	cmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable verbose logging to .zoneinfo/logs/zoneinfo.log")
	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default: nearest .zoneinfo.yaml)")
	cmd.PersistentFlags().StringVar(&a.tzdir, "tzdir", "", "directory of tz source files (overrides TZDIR)")

	cmd.AddCommand(
		zonesCmd(a),
		convertCmd(a),
		transitionsCmd(a),
		inspectCmd(a),
		validateCmd(a),
		initCmd(),
		configCmd(a),
		versionCmd(),
	)
	return cmd
}

// setup resolves the configuration, starts logging and picks the record source.
// Without a config file the log file is only written with --debug.
func (a *app) setup() error {
	path, root, err := a.locateConfig()
	if err != nil {
		return err
	}

	cfg, err := config.Load(path, root)
	if err != nil {
		return err
	}
	if a.debug {
		cfg.Log.Debug = true
	}
	if a.tzdir != "" {
		cfg.Data.Dir = a.tzdir
	}
	a.cfg, a.root = cfg, root

	if path != "" || cfg.Log.Debug {
		cleanup, lerr := logger.Setup(logger.Config{Dir: cfg.Log.Dir, Debug: cfg.Log.Debug, Data: cfg.Data.Dir})
		if lerr == nil {
			a.closeLog = cleanup
		}
	}

	opts := []tzsource.Option{
		tzsource.WithLogger(logger.L()),
		tzsource.WithWorkers(cfg.Data.Workers),
	}
	if cfg.Data.Dir != "" {
		a.source = tzsource.Directory(cfg.Data.Dir, opts...)
	} else {
		a.source = tzsource.Bundled(opts...)
	}
	logger.L().Debug("cli.setup", "config", path, "root", root, "source", cfg.Data.Dir)
	return nil
}

func (a *app) locateConfig() (path, root string, err error) {
	if a.configPath != "" {
		abs, err := filepath.Abs(a.configPath)
		if err != nil {
			return "", "", &domain.OpError{Op: "cli.config", Kind: domain.KindConfiguration, Path: a.configPath, Err: err}
		}
		return abs, filepath.Dir(abs), nil
	}

	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	wd, _ = filepath.Abs(wd)

	if a.locator == nil {
		a.locator = workspacefinder.NewFinder(config.FileName)
	}
	found, ferr := a.locator.FindRoot(wd)
	if ferr != nil || found == "" {
		return "", wd, nil
	}
	return filepath.Join(found, config.FileName), found, nil
}

func (a *app) open(ctx context.Context) (*tzdb.Database, error) {
	return usecase.NewOpenDatabase(a.source,
		usecase.WithLogger(logger.L()),
		usecase.WithWorkers(a.cfg.Data.Workers),
	).Execute(ctx)
}

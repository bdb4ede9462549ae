package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/zoneinfo/internal/buildinfo"
	"github.com/aalvaropc/zoneinfo/internal/infra/config"
	"github.com/aalvaropc/zoneinfo/internal/infra/fsworkspace"
	"github.com/aalvaropc/zoneinfo/internal/usecase"
)

func initCmd() *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init [DIR]",
		Short: "Write a starter .zoneinfo.yaml in DIR (default: current directory)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			abs, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("invalid directory: %w", err)
			}

			uc := usecase.NewInitWorkspace(fsworkspace.NewInitializer(nil))
			if err := uc.Execute(abs, force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized %s\n", filepath.Join(abs, fsworkspace.ConfigFile))
			return nil
		},
	}

	c.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	return c
}

// effectiveConfig is the resolved configuration as printed by `zoneinfo config`.
type effectiveConfig struct {
	Root     string `yaml:"root"`
	Source   string `yaml:"source"`
	Workers  int    `yaml:"workers"`
	Optimize bool   `yaml:"optimize"`
	Debug    bool   `yaml:"debug"`
	LogDir   string `yaml:"log_dir"`
}

func configCmd(a *app) *cobra.Command {
	var usage bool

	c := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			if usage {
				text, err := config.Usage()
				if err != nil {
					return err
				}
				fmt.Fprintln(w, text)
				return nil
			}

			source := "bundle"
			if a.cfg.Data.Dir != "" {
				source = a.cfg.Data.Dir
			}
			enc := yaml.NewEncoder(w)
			enc.SetIndent(2)
			if err := enc.Encode(effectiveConfig{
				Root:     a.root,
				Source:   source,
				Workers:  a.cfg.Data.Workers,
				Optimize: a.cfg.Convert.Optimize,
				Debug:    a.cfg.Log.Debug,
				LogDir:   a.cfg.Log.Dir,
			}); err != nil {
				return err
			}
			return enc.Close()
		},
	}

	c.Flags().BoolVar(&usage, "env", false, "List the environment variables instead")
	return c
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), buildinfo.String())
			return err
		},
	}
}


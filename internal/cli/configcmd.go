package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/piwi3910/gridsnap/internal/model"
	"github.com/piwi3910/gridsnap/internal/project"
)

func (a *app) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long:  `Print the configuration in effect after the config file and GRIDSNAP_* environment variables have been applied.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := json.MarshalIndent(a.cfg, "", "  ")
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}
	cmd.AddCommand(a.configInitCommand())
	return cmd
}

func (a *app) configInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with default values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.resolvedConfigPath()
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s: %w (use --force to overwrite)", path, os.ErrExist)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return err
			}
			if err := project.SaveAppConfig(path, model.DefaultAppConfig()); err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Info("wrote config", "path", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
	return cmd
}

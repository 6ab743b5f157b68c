// Copyright (c) 2026 Fielddrop Team
// Fielddrop - profile field drop pad
// This source code is licensed under the MIT license found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/toeirei/fielddrop/internal/config"
	"github.com/toeirei/fielddrop/internal/i18n"
	"github.com/toeirei/fielddrop/internal/logging"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the Fielddrop configuration file",
	}

	var system bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a configuration file with the default settings",
		Long: `Writes fielddrop.yaml with the built-in defaults to the user config
directory, or to the system-wide location with --system. An existing file
is overwritten.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := config.Defaults()
			path, err := config.Write(&d, system)
			if err != nil {
				return fmt.Errorf("could not write config file: %w", err)
			}
			logging.Infof("wrote config to %s", path)
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("config.written", path))
			return nil
		},
	}
	initCmd.Flags().BoolVar(&system, "system", false, "write the system-wide config instead of the user config")

	cmd.AddCommand(initCmd)
	return cmd
}

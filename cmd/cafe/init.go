// Init command for the cafe CLI.
package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/cafe/internal/paths"
)

func newInitCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default config.yaml",
		Long:  "Create the configuration directory and a default config.yaml if one does not exist.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configDir, err := paths.ResolveConfigDir(flags.configDir)
			if err != nil {
				return sysError(fmt.Errorf("resolve config dir: %w", err))
			}

			written, err := writeConfigIfMissing(configDir)
			if err != nil {
				return sysError(err)
			}

			path := filepath.Join(configDir, configFileExt)
			if written {
				fmt.Fprintln(cmd.OutOrStdout(), "Wrote", path)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Config already exists:", path)
			}
			return nil
		},
	}
}

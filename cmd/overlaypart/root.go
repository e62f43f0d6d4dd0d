// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/siderolabs/go-overlaypart/cmdline"
	"github.com/siderolabs/go-overlaypart/overlaypart"
	"github.com/siderolabs/go-overlaypart/volume"
)

var rootCmdFlags struct {
	cmdlinePath string
	cmdline     string
	debug       bool
}

var rootCmd = &cobra.Command{
	Use:          "overlaypart",
	Short:        "Find and provision the overlay partition passed on the kernel command line",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootCmdFlags.cmdlinePath, "cmdline-path", cmdline.DefaultPath, "file to read the kernel command line from")
	rootCmd.PersistentFlags().StringVar(&rootCmdFlags.cmdline, "cmdline", "", "kernel command line to use instead of reading it from --cmdline-path")
	rootCmd.PersistentFlags().BoolVar(&rootCmdFlags.debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(findCmd, identifyCmd, initCmd)
}

func newLogger() (*zap.Logger, error) {
	if rootCmdFlags.debug {
		return zap.NewDevelopment()
	}

	return zap.NewProduction()
}

func newRegistry(cmd *cobra.Command, logger *zap.Logger) (*volume.Registry, error) {
	opts := []overlaypart.Option{
		overlaypart.WithLogger(logger),
		overlaypart.WithCmdlinePath(rootCmdFlags.cmdlinePath),
	}

	if cmd.Flags().Changed("cmdline") {
		opts = append(opts, overlaypart.WithCmdline(rootCmdFlags.cmdline))
	}

	var registry volume.Registry

	if err := registry.Register(overlaypart.New(opts...)); err != nil {
		return nil, err
	}

	logger.Debug("registered volume drivers", zap.Strings("drivers", registry.Drivers()))

	return &registry, nil
}

// runWithVolume finds the volume named by the first argument (rootfs_data by default) and runs f on it.
func runWithVolume(f func(cmd *cobra.Command, logger *zap.Logger, v *volume.Volume) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger()
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}

		defer logger.Sync() //nolint:errcheck

		registry, err := newRegistry(cmd, logger)
		if err != nil {
			return err
		}

		name := overlaypart.VolumeName

		if len(args) > 0 {
			name = args[0]
		}

		v, err := registry.Find(name)
		if err != nil {
			return err
		}

		return f(cmd, logger, v)
	}
}

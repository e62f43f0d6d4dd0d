// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/siderolabs/go-overlaypart/blkid"
	"github.com/siderolabs/go-overlaypart/volume"
)

var findCmd = &cobra.Command{
	Use:   "find [name]",
	Short: "Print the block device backing the volume",
	Args:  cobra.MaximumNArgs(1),
	RunE: runWithVolume(func(cmd *cobra.Command, _ *zap.Logger, v *volume.Volume) error {
		hint := "auto"

		if v.FilesystemHint.IsPresent() {
			hint = v.FilesystemHint.ValueOrZero().String()
		}

		fmt.Fprintf(cmd.OutOrStdout(), "driver: %s\nname: %s\ndevice: %s\nfstype: %s\n", v.Driver.Name(), v.Name, v.BlockPath, hint)

		return nil
	}),
}

var identifyCmd = &cobra.Command{
	Use:   "identify [name]",
	Short: "Print the filesystem found on the volume",
	Args:  cobra.MaximumNArgs(1),
	RunE: runWithVolume(func(cmd *cobra.Command, logger *zap.Logger, v *volume.Volume) error {
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "device: %s\nfilesystem: %s\n", v.BlockPath, v.Identify())

		info, err := blkid.ProbePath(v.BlockPath, blkid.WithProbeLogger(logger))
		if err != nil {
			logger.Debug("failed to probe filesystem details", zap.Error(err))

			return nil
		}

		fmt.Fprintf(out, "size: %d\n", info.Size)

		if info.Label != nil {
			fmt.Fprintf(out, "label: %s\n", *info.Label)
		}

		if info.UUID != nil {
			fmt.Fprintf(out, "uuid: %s\n", info.UUID)
		}

		if info.FilesystemSize != 0 {
			fmt.Fprintf(out, "filesystem size: %d\nblock size: %d\n", info.FilesystemSize, info.BlockSize)
		}

		return nil
	}),
}

var initCmd = &cobra.Command{
	Use:   "init [name]",
	Short: "Create the filesystem on the volume unless it already has one",
	Args:  cobra.MaximumNArgs(1),
	RunE: runWithVolume(func(cmd *cobra.Command, logger *zap.Logger, v *volume.Volume) error {
		if err := v.Init(cmd.Context()); err != nil {
			return err
		}

		logger.Info("volume is ready", zap.String("name", v.Name), zap.String("device", v.BlockPath))

		return nil
	}),
}

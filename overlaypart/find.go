// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package overlaypart

import (
	"errors"

	"github.com/siderolabs/gen/optional"
	"go.uber.org/zap"

	"github.com/siderolabs/go-overlaypart/block"
	"github.com/siderolabs/go-overlaypart/cmdline"
	"github.com/siderolabs/go-overlaypart/fstype"
	"github.com/siderolabs/go-overlaypart/volume"
)

// Find implements volume.Driver.
//
// Find returns nil if the name is not VolumeName, if the overlay device is not configured
// on the kernel command line, or if the configured path is not a block device.
func (d *Driver) Find(name string) *volume.Volume {
	if name != VolumeName {
		return nil
	}

	line, err := d.readCmdline()
	if err != nil {
		d.options.Logger.Warn("failed to read kernel command line", zap.Error(err))

		return nil
	}

	overlay, ok := cmdline.Parse(line)
	if !ok {
		d.options.Logger.Debug("overlay device is not configured")

		return nil
	}

	logger := d.options.Logger.With(zap.String("device", overlay.Device))

	if _, err = d.devNo(overlay.Device); err != nil {
		if errors.Is(err, block.ErrNotBlockDevice) {
			logger.Warn("overlay device is not a block device")
		} else {
			logger.Warn("failed to stat overlay device", zap.Error(err))
		}

		return nil
	}

	hint := optional.None[fstype.Type]()

	if overlay.FSType != "" {
		if t, ok := fstype.Parse(overlay.FSType); ok {
			hint = optional.Some(t)
		} else {
			logger.Warn("overlay filesystem type not recognized, ignoring", zap.String("fstype", overlay.FSType))
		}
	}

	return &volume.Volume{
		Driver:         d,
		Name:           VolumeName,
		BlockPath:      overlay.Device,
		FilesystemHint: hint,
	}
}

func (d *Driver) readCmdline() (string, error) {
	if d.options.Cmdline.IsPresent() {
		return d.options.Cmdline.ValueOrZero(), nil
	}

	return cmdline.Read(d.options.CmdlinePath)
}

// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package overlaypart implements the volume driver for the overlay partition.
//
// The overlay partition is a block device passed on the kernel command line
// (overlay=/dev/xyz [overlayfstype=ext4|f2fs]) which backs the writable layer
// of the root filesystem overlay. The driver finds the device, identifies the
// filesystem on it and creates one if the device is empty.
package overlaypart

import (
	"github.com/siderolabs/go-overlaypart/blkid"
	"github.com/siderolabs/go-overlaypart/block"
	"github.com/siderolabs/go-overlaypart/fstype"
	"github.com/siderolabs/go-overlaypart/volume"
)

const (
	// DriverName is the name of the driver.
	DriverName = "overlaypart"

	// VolumeName is the only logical volume name the driver serves.
	VolumeName = "rootfs_data"

	// F2FSMinSize is the minimum device size to pick F2FS when no filesystem type is requested.
	F2FSMinSize = 100 * 1024 * 1024
)

// Driver is the overlay partition volume driver.
type Driver struct {
	options Options

	devNo func(path string) (uint64, error)
}

var _ volume.Driver = (*Driver)(nil)

// New creates the overlay partition driver.
func New(opts ...Option) *Driver {
	return &Driver{
		options: applyOptions(opts...),
		devNo:   block.DevNoFromPath,
	}
}

// Name implements volume.Driver.
func (d *Driver) Name() string {
	return DriverName
}

// Identify implements volume.Driver.
//
// A device which can't be read is reported as having no filesystem.
func (d *Driver) Identify(v *volume.Volume) fstype.Type {
	return blkid.IdentifyPath(v.BlockPath, blkid.WithProbeLogger(d.options.Logger))
}

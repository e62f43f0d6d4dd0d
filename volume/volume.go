// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package volume defines volume drivers and the registry they are looked up in.
package volume

import (
	"context"

	"github.com/siderolabs/gen/optional"

	"github.com/siderolabs/go-overlaypart/fstype"
)

// Volume is a storage device candidate found by a driver.
type Volume struct {
	// Driver which found the volume.
	Driver Driver

	// Name is the logical name of the volume, e.g. rootfs_data.
	Name string

	// BlockPath is the path to the block special file.
	BlockPath string

	// FilesystemHint is the filesystem type requested explicitly, if any.
	FilesystemHint optional.Optional[fstype.Type]
}

// Identify the filesystem on the volume.
func (v *Volume) Identify() fstype.Type {
	return v.Driver.Identify(v)
}

// Init creates the filesystem on the volume if it doesn't have one.
func (v *Volume) Init(ctx context.Context) error {
	return v.Driver.Init(ctx, v)
}

// Driver is the set of operations a volume driver implements.
type Driver interface {
	// Name of the driver.
	Name() string

	// Find returns the volume with the logical name, or nil if the driver doesn't handle it.
	Find(name string) *Volume

	// Identify the filesystem on the volume.
	Identify(v *Volume) fstype.Type

	// Init provisions the filesystem on the volume.
	Init(ctx context.Context, v *Volume) error
}

// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

//go:build !linux

package block

import "errors"

// NewFromPath returns a new Device from the specified path.
func NewFromPath(string) (*Device, error) {
	return nil, errors.ErrUnsupported
}

// DevNoFromPath returns the device number of the block device at path.
func DevNoFromPath(string) (uint64, error) {
	return 0, errors.ErrUnsupported
}

// GetSize returns blockdevice size in bytes.
func (d *Device) GetSize() (uint64, error) {
	return 0, errors.ErrUnsupported
}

// GetCapacity returns the size of the device in bytes.
func (d *Device) GetCapacity() (uint64, error) {
	return 0, errors.ErrUnsupported
}

// IsBlockDevice returns true if the underlying file is a block special file.
func (d *Device) IsBlockDevice() (bool, error) {
	return false, errors.ErrUnsupported
}

// GetDevNo returns the device number of the blockdevice.
func (d *Device) GetDevNo() (uint64, error) {
	return 0, errors.ErrUnsupported
}

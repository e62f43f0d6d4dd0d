// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package block provides support for operations on blockdevices.
package block

import (
	"errors"
	"os"
)

// ErrNotBlockDevice is returned when the path doesn't point to a block special file.
var ErrNotBlockDevice = errors.New("not a block device")

// Device wraps blockdevice operations.
type Device struct {
	f *os.File

	ownedFile bool
	devNo     uint64
}

// NewFromFile returns a new Device from the specified file.
//
// The file is not closed by Close.
func NewFromFile(f *os.File) *Device {
	return &Device{f: f}
}

// File returns the underlying file.
func (d *Device) File() *os.File {
	return d.f
}

// Close the device.
//
// No-op if the device was created from an existing file.
func (d *Device) Close() error {
	if !d.ownedFile {
		return nil
	}

	return d.f.Close()
}

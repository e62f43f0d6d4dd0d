// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package block

import (
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

// NewFromPath returns a new Device from the specified path.
//
// The device is opened read-only.
func NewFromPath(path string) (*Device, error) {
	f, err := os.OpenFile(path, os.O_RDONLY|unix.O_CLOEXEC|unix.O_NONBLOCK, 0)
	if err != nil {
		return nil, err
	}

	return &Device{
		f:         f,
		ownedFile: true,
	}, nil
}

// DevNoFromPath returns the device number of the block device at path.
//
// ErrNotBlockDevice is returned if the path exists, but it is not a block special file
// or it has no valid device number.
func DevNoFromPath(path string) (uint64, error) {
	var st unix.Stat_t

	if err := unix.Stat(path, &st); err != nil {
		return 0, err
	}

	if st.Mode&unix.S_IFMT != unix.S_IFBLK || st.Rdev == 0 {
		return 0, fmt.Errorf("%q: %w", path, ErrNotBlockDevice)
	}

	return uint64(st.Rdev), nil //nolint:unconvert
}

// GetSize returns blockdevice size in bytes.
func (d *Device) GetSize() (uint64, error) {
	var devsize uint64
	if _, _, errno := unix.Syscall(unix.SYS_IOCTL, d.f.Fd(), unix.BLKGETSIZE64, uintptr(unsafe.Pointer(&devsize))); errno != 0 {
		return 0, errno
	}

	return devsize, nil
}

// GetCapacity returns the size of the device in bytes.
//
// Block devices are queried with BLKGETSIZE64, regular files (disk images) report their length.
func (d *Device) GetCapacity() (uint64, error) {
	st, err := d.f.Stat()
	if err != nil {
		return 0, fmt.Errorf("failed to stat: %w", err)
	}

	switch mode := st.Mode(); {
	case mode.IsRegular():
		return uint64(st.Size()), nil
	case mode&os.ModeDevice != 0 && mode&os.ModeCharDevice == 0:
		return d.GetSize()
	default:
		return 0, fmt.Errorf("unsupported file type: %s", mode.Type())
	}
}

// IsBlockDevice returns true if the underlying file is a block special file.
func (d *Device) IsBlockDevice() (bool, error) {
	var st unix.Stat_t
	if err := unix.Fstat(int(d.f.Fd()), &st); err != nil {
		return false, err
	}

	return st.Mode&unix.S_IFMT == unix.S_IFBLK, nil
}

// GetDevNo returns the device number of the blockdevice.
func (d *Device) GetDevNo() (uint64, error) {
	if d.devNo != 0 {
		return d.devNo, nil
	}

	var st unix.Stat_t
	if err := unix.Fstat(int(d.f.Fd()), &st); err != nil {
		return 0, err
	}

	d.devNo = uint64(st.Rdev) //nolint:unconvert

	return d.devNo, nil
}

// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package cmdline extracts the overlay partition settings from the kernel command line.
package cmdline

import (
	"fmt"
	"os"
	"strings"

	"github.com/siderolabs/go-procfs/procfs"
)

// Kernel parameters recognized by the overlay partition driver.
const (
	// KernelParamOverlay names the overlay block device, e.g. overlay=/dev/mmcblk0p4.
	KernelParamOverlay = "overlay"
	// KernelParamOverlayFSType requests the filesystem to create, e.g. overlayfstype=f2fs.
	KernelParamOverlayFSType = "overlayfstype"
)

// DefaultPath is the location of the kernel command line.
const DefaultPath = "/proc/cmdline"

// Overlay is the overlay configuration found on the kernel command line.
type Overlay struct {
	// Device is the path to the overlay block device.
	Device string
	// FSType is the raw value of the filesystem type parameter, empty if not set.
	FSType string
}

// Parse the kernel command line.
//
// Only the first occurrence of each parameter is used.
// The second return value is false if the command line doesn't configure an overlay device.
func Parse(line string) (Overlay, bool) {
	cmdline := procfs.NewCmdline(strings.TrimSpace(line))

	device := cmdline.Get(KernelParamOverlay).First()
	if device == nil || *device == "" {
		return Overlay{}, false
	}

	overlay := Overlay{
		Device: *device,
	}

	if fsType := cmdline.Get(KernelParamOverlayFSType).First(); fsType != nil {
		overlay.FSType = *fsType
	}

	return overlay, true
}

// Read the kernel command line from the file at path.
func Read(path string) (string, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read kernel command line: %w", err)
	}

	return string(contents), nil
}

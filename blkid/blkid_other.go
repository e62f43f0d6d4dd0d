// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

//go:build !linux

package blkid

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/siderolabs/go-overlaypart/fstype"
)

// IdentifyPath returns the filesystem type of the device at the specified path.
//
// Failure to open the device is logged and reported as fstype.None.
func IdentifyPath(devpath string, opts ...ProbeOption) fstype.Type {
	options := applyProbeOptions(opts...)

	f, err := os.Open(devpath)
	if err != nil {
		options.Logger.Warn("failed to open device for probing", zap.String("device", devpath), zap.Error(err))

		return fstype.None
	}

	defer f.Close() //nolint:errcheck

	return Identify(f, opts...)
}

// ProbePath returns the probe information for the specified path.
func ProbePath(devpath string, opts ...ProbeOption) (*Info, error) {
	return nil, fmt.Errorf("not implemented")
}

// Probe returns the probe information for the specified file.
func Probe(f *os.File, opts ...ProbeOption) (*Info, error) {
	return nil, fmt.Errorf("not implemented")
}

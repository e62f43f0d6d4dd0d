// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package blkid identifies the filesystem on the overlay partition.
package blkid

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/siderolabs/go-overlaypart/block"
	"github.com/siderolabs/go-overlaypart/fstype"
)

// Info represents the result of the probe.
type Info struct { //nolint:govet
	// Link to the block device, only if the probed file is a blockdevice.
	BlockDevice *block.Device

	// DevNo is the device number of the probed device.
	//
	// Only available if the probed file is a blockdevice.
	DevNo uint64

	// Overall size of the probed device (in bytes).
	Size uint64

	// ProbeResult is the result of probing the device.
	ProbeResult
}

// ProbeResult is a result of probing a single filesystem.
//
// Filesystem details are only filled if the superblock could be decoded.
type ProbeResult struct { //nolint:govet
	Type fstype.Type
	Name string

	UUID  *uuid.UUID
	Label *string

	BlockSize      uint32
	FilesystemSize uint64
}

// ProbeOptions is the options for probing.
type ProbeOptions struct {
	// Logger to use for logging.
	Logger *zap.Logger
}

// ProbeOption is an option for probing.
type ProbeOption func(*ProbeOptions)

// WithProbeLogger sets the logger for the probe.
func WithProbeLogger(logger *zap.Logger) ProbeOption {
	return func(o *ProbeOptions) {
		o.Logger = logger
	}
}

func applyProbeOptions(opts ...ProbeOption) ProbeOptions {
	o := ProbeOptions{
		Logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(&o)
	}

	return o
}

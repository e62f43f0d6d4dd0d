// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

//go:build linux

package blkid

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/siderolabs/go-overlaypart/block"
	"github.com/siderolabs/go-overlaypart/fstype"
	"github.com/siderolabs/go-overlaypart/internal/ioutil"
	"github.com/siderolabs/go-overlaypart/internal/probers"
)

// IdentifyPath returns the filesystem type of the device at the specified path.
//
// Failure to open the device is logged and reported as fstype.None.
func IdentifyPath(devpath string, opts ...ProbeOption) fstype.Type {
	options := applyProbeOptions(opts...)

	dev, err := block.NewFromPath(devpath)
	if err != nil {
		options.Logger.Warn("failed to open device for probing", zap.String("device", devpath), zap.Error(err))

		return fstype.None
	}

	defer dev.Close() //nolint:errcheck

	return Identify(dev.File(), opts...)
}

// ProbePath returns the probe information for the specified path.
func ProbePath(devpath string, opts ...ProbeOption) (*Info, error) {
	dev, err := block.NewFromPath(devpath)
	if err != nil {
		return nil, err
	}

	defer dev.Close() //nolint:errcheck

	return Probe(dev.File(), opts...)
}

// Probe returns the probe information for the specified file.
//
// The file might be a block device or a regular file (disk image).
func Probe(f *os.File, opts ...ProbeOption) (*Info, error) {
	options := applyProbeOptions(opts...)

	info := &Info{}

	dev := block.NewFromFile(f)

	size, err := dev.GetCapacity()
	if err != nil {
		return nil, fmt.Errorf("failed to get device size: %w", err)
	}

	info.Size = size

	isBlock, err := dev.IsBlockDevice()
	if err != nil {
		return nil, fmt.Errorf("failed to stat: %w", err)
	}

	if isBlock {
		info.BlockDevice = dev

		info.DevNo, err = dev.GetDevNo()
		if err != nil {
			return nil, fmt.Errorf("failed to get device number: %w", err)
		}
	}

	info.fillProbeResult(io.NewSectionReader(f, 0, int64(size)), size, options)

	return info, nil
}

func (i *Info) fillProbeResult(r io.ReaderAt, size uint64, options ProbeOptions) {
	chain := probers.Chain()

	if magicSize := chain.MaxMagicSize(); size >= uint64(magicSize) {
		buf := make([]byte, magicSize)

		if err := ioutil.ReadFullAt(r, buf, 0); err != nil {
			options.Logger.Debug("failed to read magic block", zap.Error(err))

			return
		}

		i.Type = identifyBuffer(chain, buf)
	} else {
		// too small to hold every magic, check them one at a time
		i.Type = Identify(r, WithProbeLogger(options.Logger))
	}

	prober := chain.ForType(i.Type)
	if prober == nil {
		return
	}

	i.Name = prober.Name()

	res, err := prober.Probe(r)
	if err != nil || res == nil {
		// magic matched, but the superblock is not valid, keep the type only
		options.Logger.Debug("failed to decode superblock", zap.String("filesystem", prober.Name()), zap.Error(err))

		return
	}

	i.UUID = res.UUID
	i.Label = res.Label
	i.BlockSize = res.BlockSize
	i.FilesystemSize = res.FilesystemSize
}

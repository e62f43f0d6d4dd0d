// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package f2fs probes F2FS filesystems.
package f2fs

import (
	"encoding/binary"
	"io"

	"github.com/google/uuid"
	"github.com/siderolabs/go-pointer"

	"github.com/siderolabs/go-overlaypart/fstype"
	"github.com/siderolabs/go-overlaypart/internal/ioutil"
	"github.com/siderolabs/go-overlaypart/internal/magic"
	"github.com/siderolabs/go-overlaypart/internal/probe"
	"github.com/siderolabs/go-overlaypart/internal/utils"
)

const sbOffset = 0x400

// F2FS superblock layout (all fields little-endian).
const (
	offLogBlockSize  = 0x10
	offBlockCount    = 0x24
	offUUID          = 0x6c
	offVolumeName    = 0x7c
	volumeNameLength = 512 * 2

	// SuperBlockSize covers the superblock up to the end of the volume name.
	SuperBlockSize = offVolumeName + volumeNameLength
)

var f2fsMagic = magic.Magic{
	Offset: sbOffset,
	Value:  0xF2F52010,
}

// SuperBlock is the F2FS superblock.
type SuperBlock []byte

// BlockSize returns the block size of the filesystem.
func (s SuperBlock) BlockSize() uint32 {
	logBlockSize := binary.LittleEndian.Uint32(s[offLogBlockSize:])

	if logBlockSize >= 32 {
		return 0
	}

	return 1 << logBlockSize
}

// FilesystemSize returns the size of the filesystem.
func (s SuperBlock) FilesystemSize() uint64 {
	return binary.LittleEndian.Uint64(s[offBlockCount:]) * uint64(s.BlockSize())
}

// UUID returns the filesystem UUID.
func (s SuperBlock) UUID() []byte {
	return s[offUUID : offUUID+16]
}

// VolumeName returns the raw (UTF-16LE) volume name.
func (s SuperBlock) VolumeName() []byte {
	return s[offVolumeName : offVolumeName+volumeNameLength]
}

// Probe for the filesystem.
type Probe struct{}

// Magic returns the magic value for the filesystem.
func (p *Probe) Magic() *magic.Magic {
	return &f2fsMagic
}

// Name returns the name of the filesystem.
func (p *Probe) Name() string {
	return "f2fs"
}

// Type returns the filesystem type.
func (p *Probe) Type() fstype.Type {
	return fstype.F2FS
}

// Probe runs the further inspection and returns the result if successful.
func (p *Probe) Probe(r io.ReaderAt) (*probe.Result, error) {
	buf := make([]byte, SuperBlockSize)

	if err := ioutil.ReadFullAt(r, buf, sbOffset); err != nil {
		return nil, err
	}

	sb := SuperBlock(buf)

	if sb.BlockSize() == 0 {
		return nil, nil //nolint:nilnil
	}

	uuid, err := uuid.FromBytes(sb.UUID())
	if err != nil {
		return nil, err
	}

	res := &probe.Result{
		UUID: &uuid,

		BlockSize:      sb.BlockSize(),
		FilesystemSize: sb.FilesystemSize(),
	}

	lbl, err := utils.CStringUTF16(sb.VolumeName())
	if err != nil {
		return nil, err
	}

	if lbl != "" {
		res.Label = pointer.To(lbl)
	}

	return res, nil
}

// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package ext probes extfs filesystems.
package ext

import (
	"bytes"
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

// Various extfs constants.
//
//nolint:stylecheck,revive
const (
	EXT4_FEATURE_INCOMPAT_64BIT          = 0x0080
	EXT4_FEATURE_RO_COMPAT_METADATA_CSUM = 0x0400
)

// Only the low 16 bits of the word at s_magic hold the magic, the rest is s_state.
var extfsMagic = magic.Magic{
	Offset: sbOffset + offMagic,
	Value:  0xef53,
	Mask:   0xffff,
}

// Probe for the filesystem.
type Probe struct{}

// Magic returns the magic value for the filesystem.
func (p *Probe) Magic() *magic.Magic {
	return &extfsMagic
}

// Name returns the name of the filesystem.
func (p *Probe) Name() string {
	return "extfs"
}

// Type returns the filesystem type.
func (p *Probe) Type() fstype.Type {
	return fstype.Ext4
}

// Probe runs the further inspection and returns the result if successful.
func (p *Probe) Probe(r io.ReaderAt) (*probe.Result, error) {
	buf := make([]byte, SUPERBLOCK_SIZE)

	if err := ioutil.ReadFullAt(r, buf, sbOffset); err != nil {
		return nil, err
	}

	sb := SuperBlock(buf)

	if uint32(sb.Magic()) != extfsMagic.Value {
		return nil, nil //nolint:nilnil
	}

	if sb.FeatureROCompat()&EXT4_FEATURE_RO_COMPAT_METADATA_CSUM > 0 {
		if utils.CRC32c(buf[:checksummedDataSize]) != sb.Checksum() {
			return nil, nil //nolint:nilnil
		}
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

	lbl := sb.VolumeName()
	if lbl[0] != 0 {
		idx := bytes.IndexByte(lbl, 0)
		if idx == -1 {
			idx = len(lbl)
		}

		res.Label = pointer.To(string(lbl[:idx]))
	}

	return res, nil
}

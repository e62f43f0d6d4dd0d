// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package magic implements the magic number detection for files and block devices.
package magic

import (
	"encoding/binary"
	"io"

	"github.com/siderolabs/go-overlaypart/internal/ioutil"
)

// Magic defines a filesystem superblock magic value.
//
// The magic is stored as a 32-bit little-endian word.
type Magic struct {
	// Offset in the file where the magic value is located.
	Offset int64

	// Value to compare with (after applying the Mask).
	Value uint32

	// Mask applied to the word read from the disk, zero means all 32 bits.
	Mask uint32
}

// Match reads the magic word from r and compares it with the expected value.
//
// A read error (including a short read) is returned as is, with matched set to false.
func (magic *Magic) Match(r io.ReaderAt) (matched bool, err error) {
	word, err := ioutil.ReadUint32At(r, magic.Offset)
	if err != nil {
		return false, err
	}

	return word&magic.mask() == magic.Value, nil
}

// Matches returns true if the magic value is found at the specified offset in the buffer.
func (magic *Magic) Matches(buf []byte) bool {
	if int64(len(buf)) < magic.BlockSize() {
		return false
	}

	return binary.LittleEndian.Uint32(buf[magic.Offset:])&magic.mask() == magic.Value
}

// BlockSize returns the size of the buffer that needs to be read from the disk to detect the magic value.
func (magic *Magic) BlockSize() int64 {
	return magic.Offset + 4
}

func (magic *Magic) mask() uint32 {
	if magic.Mask == 0 {
		return 0xffffffff
	}

	return magic.Mask
}

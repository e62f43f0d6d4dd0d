// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package ioutil provides IO utility functions.
package ioutil

import (
	"encoding/binary"
	"errors"
	"io"
)

// ReadFullAt is io.ReadFull for io.ReaderAt.
//
// A short read returns io.ErrUnexpectedEOF.
func ReadFullAt(r io.ReaderAt, buf []byte, offset int64) error {
	for n := 0; n < len(buf); {
		m, err := r.ReadAt(buf[n:], offset)

		n += m
		offset += int64(m)

		if err == nil {
			continue
		}

		if errors.Is(err, io.EOF) {
			if n == len(buf) {
				return nil
			}

			return io.ErrUnexpectedEOF
		}

		return err
	}

	return nil
}

// ReadUint32At reads a little-endian 32-bit value at the offset.
func ReadUint32At(r io.ReaderAt, offset int64) (uint32, error) {
	var buf [4]byte

	if err := ReadFullAt(r, buf[:], offset); err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint32(buf[:]), nil
}

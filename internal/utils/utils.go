// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package utils provides utility functions.
package utils

import (
	"bytes"
	"hash/crc32"
	"sync"

	"golang.org/x/text/encoding/unicode"
)

var castagnoliTable = sync.OnceValue(func() *crc32.Table {
	return crc32.MakeTable(crc32.Castagnoli)
})

// CRC32c returns values compatible with Linux crc32c function.
func CRC32c(buf []byte) uint32 {
	return ^crc32.Update(0, castagnoliTable(), buf)
}

// CStringUTF16 decodes a NUL-terminated UTF-16LE string.
func CStringUTF16(buf []byte) (string, error) {
	end := len(buf) &^ 1

	for i := 0; i+1 < len(buf); i += 2 {
		if buf[i] == 0 && buf[i+1] == 0 {
			end = i

			break
		}
	}

	utf16 := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

	decoded, err := utf16.NewDecoder().Bytes(buf[:end])
	if err != nil {
		return "", err
	}

	return string(bytes.TrimRight(decoded, "\x00")), nil
}

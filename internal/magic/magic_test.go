// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package magic_test

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siderolabs/go-overlaypart/internal/magic"
)

func TestMagic(t *testing.T) {
	full := magic.Magic{Offset: 8, Value: 0xF2F52010}
	masked := magic.Magic{Offset: 8, Value: 0xEF53, Mask: 0xffff}

	buf := make([]byte, 16)
	binary.LittleEndian.PutUint32(buf[8:], 0xF2F52010)

	assert.True(t, full.Matches(buf))
	assert.False(t, masked.Matches(buf))
	assert.False(t, full.Matches(buf[:11]))
	assert.Equal(t, int64(12), full.BlockSize())

	matched, err := full.Match(bytes.NewReader(buf))
	require.NoError(t, err)
	assert.True(t, matched)

	binary.LittleEndian.PutUint32(buf[8:], 0x1234EF53)

	assert.False(t, full.Matches(buf))
	assert.True(t, masked.Matches(buf))

	matched, err = masked.Match(bytes.NewReader(buf))
	require.NoError(t, err)
	assert.True(t, matched)

	matched, err = masked.Match(bytes.NewReader(buf[:10]))
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.False(t, matched)
}

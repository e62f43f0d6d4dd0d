// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package ext_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siderolabs/go-overlaypart/fstype"
	"github.com/siderolabs/go-overlaypart/internal/filesystems/ext"
	"github.com/siderolabs/go-overlaypart/internal/utils"
)

func image(label string, csum bool) ([]byte, uuid.UUID) {
	img := make([]byte, 0x400+ext.SUPERBLOCK_SIZE)
	sb := img[0x400:]

	binary.LittleEndian.PutUint32(sb[0x04:], 0x10000) // s_blocks_count_lo
	binary.LittleEndian.PutUint32(sb[0x18:], 2)       // s_log_block_size
	binary.LittleEndian.PutUint16(sb[0x38:], 0xef53)
	binary.LittleEndian.PutUint16(sb[0x3a:], 1) // s_state

	u := uuid.New()
	copy(sb[0x68:], u[:])
	copy(sb[0x78:], label)

	if csum {
		binary.LittleEndian.PutUint32(sb[0x64:], ext.EXT4_FEATURE_RO_COMPAT_METADATA_CSUM)
		binary.LittleEndian.PutUint32(sb[0x3fc:], utils.CRC32c(sb[:0x3fc]))
	}

	return img, u
}

func TestProbe(t *testing.T) {
	p := &ext.Probe{}

	assert.Equal(t, "extfs", p.Name())
	assert.Equal(t, fstype.Ext4, p.Type())

	for _, csum := range []bool{false, true} {
		img, u := image("rootfs_data", csum)

		matched, err := p.Magic().Match(bytes.NewReader(img))
		require.NoError(t, err)
		assert.True(t, matched)

		res, err := p.Probe(bytes.NewReader(img))
		require.NoError(t, err)
		require.NotNil(t, res)

		assert.Equal(t, u, *res.UUID)
		require.NotNil(t, res.Label)
		assert.Equal(t, "rootfs_data", *res.Label)
		assert.EqualValues(t, 4096, res.BlockSize)
		assert.EqualValues(t, 256*1024*1024, res.FilesystemSize)
	}
}

func TestProbeBadChecksum(t *testing.T) {
	img, _ := image("", true)
	img[0x400+0x3fc]++

	res, err := (&ext.Probe{}).Probe(bytes.NewReader(img))
	require.NoError(t, err)
	assert.Nil(t, res)
}

func TestProbeNoLabel(t *testing.T) {
	img, _ := image("", false)

	res, err := (&ext.Probe{}).Probe(bytes.NewReader(img))
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Nil(t, res.Label)
}

func TestProbeNoMagic(t *testing.T) {
	img, _ := image("rootfs_data", false)
	binary.LittleEndian.PutUint16(img[0x438:], 0)

	res, err := (&ext.Probe{}).Probe(bytes.NewReader(img))
	require.NoError(t, err)
	assert.Nil(t, res)
}

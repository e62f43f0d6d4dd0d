// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package f2fs_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siderolabs/go-overlaypart/fstype"
	"github.com/siderolabs/go-overlaypart/internal/filesystems/f2fs"
)

func image(t *testing.T, label string) ([]byte, uuid.UUID) {
	t.Helper()

	img := make([]byte, 0x400+f2fs.SuperBlockSize)
	sb := img[0x400:]

	binary.LittleEndian.PutUint32(sb[0x00:], 0xF2F52010)
	binary.LittleEndian.PutUint32(sb[0x10:], 12)     // log_blocksize
	binary.LittleEndian.PutUint64(sb[0x24:], 0x8000) // block_count

	u := uuid.New()
	copy(sb[0x6c:], u[:])

	for i, r := range label {
		binary.LittleEndian.PutUint16(sb[0x7c+2*i:], uint16(r))
	}

	return img, u
}

func TestProbe(t *testing.T) {
	p := &f2fs.Probe{}

	assert.Equal(t, "f2fs", p.Name())
	assert.Equal(t, fstype.F2FS, p.Type())

	img, u := image(t, "rootfs_data")

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
	assert.EqualValues(t, 128*1024*1024, res.FilesystemSize)
}

func TestProbeNoLabel(t *testing.T) {
	img, _ := image(t, "")

	res, err := (&f2fs.Probe{}).Probe(bytes.NewReader(img))
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.Nil(t, res.Label)
}

func TestProbeTruncated(t *testing.T) {
	img, _ := image(t, "x")

	_, err := (&f2fs.Probe{}).Probe(bytes.NewReader(img[:0x500]))
	assert.Error(t, err)
}

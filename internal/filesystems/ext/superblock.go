// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package ext

import "encoding/binary"

// SUPERBLOCK_SIZE is the on-disk size of the extfs superblock.
//
//nolint:stylecheck,revive
const SUPERBLOCK_SIZE = 1024

// Field offsets within the superblock.
const (
	offBlocksCountLo    = 0x04
	offLogBlockSize     = 0x18
	offMagic            = 0x38
	offFeatureIncompat  = 0x60
	offFeatureROCompat  = 0x64
	offUUID             = 0x68
	offVolumeName       = 0x78
	offBlocksCountHi    = 0x150
	offChecksum         = 0x3fc
	volumeNameLength    = 16
	uuidLength          = 16
	checksummedDataSize = offChecksum
)

// SuperBlock is the extfs superblock.
type SuperBlock []byte

// Magic returns s_magic.
func (s SuperBlock) Magic() uint16 {
	return binary.LittleEndian.Uint16(s[offMagic:])
}

// FeatureIncompat returns s_feature_incompat.
func (s SuperBlock) FeatureIncompat() uint32 {
	return binary.LittleEndian.Uint32(s[offFeatureIncompat:])
}

// FeatureROCompat returns s_feature_ro_compat.
func (s SuperBlock) FeatureROCompat() uint32 {
	return binary.LittleEndian.Uint32(s[offFeatureROCompat:])
}

// UUID returns s_uuid.
func (s SuperBlock) UUID() []byte {
	return s[offUUID : offUUID+uuidLength]
}

// VolumeName returns s_volume_name.
func (s SuperBlock) VolumeName() []byte {
	return s[offVolumeName : offVolumeName+volumeNameLength]
}

// Checksum returns s_checksum.
func (s SuperBlock) Checksum() uint32 {
	return binary.LittleEndian.Uint32(s[offChecksum:])
}

// BlockSize returns the block size of the filesystem.
func (s SuperBlock) BlockSize() uint32 {
	logBlockSize := binary.LittleEndian.Uint32(s[offLogBlockSize:])

	if logBlockSize >= 32 {
		return 0
	}

	return 1024 << logBlockSize
}

// BlocksCount returns the number of blocks in the filesystem.
func (s SuperBlock) BlocksCount() uint64 {
	count := uint64(binary.LittleEndian.Uint32(s[offBlocksCountLo:]))

	if s.FeatureIncompat()&EXT4_FEATURE_INCOMPAT_64BIT > 0 {
		count |= uint64(binary.LittleEndian.Uint32(s[offBlocksCountHi:])) << 32
	}

	return count
}

// FilesystemSize returns the size of the filesystem.
func (s SuperBlock) FilesystemSize() uint64 {
	return s.BlocksCount() * uint64(s.BlockSize())
}

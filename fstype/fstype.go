// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package fstype defines the filesystem types recognized on the overlay partition.
package fstype

// Type is a filesystem type.
type Type int

// Supported filesystem types.
const (
	// None means no recognized filesystem.
	None Type = iota
	Ext4
	F2FS
)

// Filesystem type names as accepted on the kernel command line.
const (
	NameExt4 = "ext4"
	NameF2FS = "f2fs"
)

// String implements fmt.Stringer.
func (t Type) String() string {
	switch t {
	case None:
		return "none"
	case Ext4:
		return NameExt4
	case F2FS:
		return NameF2FS
	default:
		return "unknown"
	}
}

// IsSupported returns true if a filesystem of this type can be created.
func (t Type) IsSupported() bool {
	return t == Ext4 || t == F2FS
}

// Parse returns the filesystem type for the name.
//
// Only the exact names "ext4" and "f2fs" are recognized, ok is false for anything else.
func Parse(name string) (t Type, ok bool) {
	switch name {
	case NameExt4:
		return Ext4, true
	case NameF2FS:
		return F2FS, true
	default:
		return None, false
	}
}

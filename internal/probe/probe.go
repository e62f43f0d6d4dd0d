// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package probe defines common probe interfaces.
package probe

import (
	"io"

	"github.com/google/uuid"

	"github.com/siderolabs/go-overlaypart/fstype"
	"github.com/siderolabs/go-overlaypart/internal/magic"
)

// Prober is an interface for probing filesystems.
type Prober interface {
	// Name returns the name of the filesystem.
	Name() string
	// Type returns the filesystem type detected by the prober.
	Type() fstype.Type
	// Magic returns the superblock magic value for the filesystem.
	Magic() *magic.Magic
	// Probe runs the further inspection of the superblock and returns the result if successful.
	//
	// Probe might return nil result if the superblock is not valid.
	Probe(io.ReaderAt) (*Result, error)
}

// Result is a probe result.
type Result struct {
	UUID  *uuid.UUID
	Label *string

	BlockSize      uint32
	FilesystemSize uint64
}

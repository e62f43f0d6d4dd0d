// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package probers provides a list of probers for the overlay filesystems.
package probers

import (
	"github.com/siderolabs/go-overlaypart/fstype"
	"github.com/siderolabs/go-overlaypart/internal/filesystems/ext"
	"github.com/siderolabs/go-overlaypart/internal/filesystems/f2fs"
	"github.com/siderolabs/go-overlaypart/internal/probe"
)

// ProberChain is a list of probers.
type ProberChain []probe.Prober

// MaxMagicSize returns the maximum size of the magic value in the chain.
func (chain ProberChain) MaxMagicSize() int64 {
	var max int64

	for _, prober := range chain {
		if size := prober.Magic().BlockSize(); size >= max {
			max = size
		}
	}

	return max
}

// ForType returns the prober for the filesystem type, or nil.
func (chain ProberChain) ForType(t fstype.Type) probe.Prober {
	for _, prober := range chain {
		if prober.Type() == t {
			return prober
		}
	}

	return nil
}

// Chain returns a list of probers in the order they are checked.
//
// When more than one magic matches, the last matching prober wins.
func Chain() ProberChain {
	return ProberChain{
		&f2fs.Probe{},
		&ext.Probe{},
	}
}

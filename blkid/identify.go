// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package blkid

import (
	"io"

	"go.uber.org/zap"

	"github.com/siderolabs/go-overlaypart/fstype"
	"github.com/siderolabs/go-overlaypart/internal/probers"
)

// Identify returns the filesystem type detected by the superblock magic.
//
// Every known magic is checked in turn, and a later match overrides an earlier one.
// Read errors (including reads past the end of the device) mean the magic is absent,
// so fstype.None is returned both for an empty device and for a device which can't be read.
func Identify(r io.ReaderAt, opts ...ProbeOption) fstype.Type {
	options := applyProbeOptions(opts...)

	detected := fstype.None

	for _, prober := range probers.Chain() {
		matched, err := prober.Magic().Match(r)
		if err != nil {
			options.Logger.Debug("failed to read magic", zap.String("filesystem", prober.Name()), zap.Error(err))

			continue
		}

		if matched {
			detected = prober.Type()
		}
	}

	return detected
}

// identifyBuffer is Identify over a block which covers every magic in the chain.
func identifyBuffer(chain probers.ProberChain, buf []byte) fstype.Type {
	detected := fstype.None

	for _, prober := range chain {
		if prober.Magic().Matches(buf) {
			detected = prober.Type()
		}
	}

	return detected
}

// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package makefs

import (
	"context"
	"errors"
)

// F2FSTool is the tool used to create F2FS filesystems.
const F2FSTool = "mkfs.f2fs"

// F2FS creates a F2FS filesystem on the specified partition.
func F2FS(ctx context.Context, partname string, setters ...Option) error {
	if partname == "" {
		return errors.New("missing path to disk")
	}

	opts := NewDefaultOptions(setters...)

	var args []string

	// mkfs.f2fs takes the label with lowercase -l
	if opts.Label != "" {
		args = append(args, "-l", opts.Label)
	}

	args = append(args, partname)

	return run(ctx, opts, F2FSTool, partname, args)
}

// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package overlaypart

import (
	"context"
	"fmt"

	"github.com/siderolabs/gen/optional"
	"go.uber.org/zap"

	"github.com/siderolabs/go-overlaypart/block"
	"github.com/siderolabs/go-overlaypart/fstype"
	"github.com/siderolabs/go-overlaypart/makefs"
	"github.com/siderolabs/go-overlaypart/volume"
)

// ProvisionError is returned when the filesystem can't be created.
type ProvisionError struct {
	Device string
	Type   fstype.Type
	Err    error
}

// Error implements error.
func (e *ProvisionError) Error() string {
	return fmt.Sprintf("failed to create %s filesystem on %q: %s", e.Type, e.Device, e.Err)
}

// Unwrap implements errors.Unwrap.
func (e *ProvisionError) Unwrap() error {
	return e.Err
}

// SelectType picks the filesystem type to create.
//
// The explicitly requested type always wins, otherwise F2FS is used on devices
// of at least F2FSMinSize bytes and ext4 on smaller ones.
func SelectType(hint optional.Optional[fstype.Type], size uint64) fstype.Type {
	if hint.IsPresent() {
		return hint.ValueOrZero()
	}

	if size >= F2FSMinSize {
		return fstype.F2FS
	}

	return fstype.Ext4
}

// Init implements volume.Driver.
//
// Init is a no-op if the volume already has a filesystem.
func (d *Driver) Init(ctx context.Context, v *volume.Volume) error {
	logger := d.options.Logger.With(zap.String("device", v.BlockPath))

	if detected := d.Identify(v); detected != fstype.None {
		logger.Debug("filesystem already exists", zap.Stringer("fstype", detected))

		return nil
	}

	logger.Info("overlay filesystem has not been created yet")

	// size 0 makes the policy fall back to ext4
	size, err := deviceSize(v.BlockPath)
	if err != nil {
		logger.Warn("failed to get device size", zap.Error(err))
	}

	fsType := SelectType(v.FilesystemHint, size)

	if !fsType.IsSupported() {
		logger.Warn("unexpected filesystem type encountered, aborting", zap.Stringer("fstype", fsType))

		return &ProvisionError{
			Device: v.BlockPath,
			Type:   fsType,
			Err:    makefs.ErrUnsupportedType,
		}
	}

	logger.Info("creating filesystem", zap.Stringer("fstype", fsType), zap.Uint64("size", size))

	if err = makefs.Format(ctx, fsType, v.BlockPath,
		makefs.WithLabel(v.Name),
		makefs.WithRunner(d.options.Runner),
		makefs.WithPrintf(logger.Sugar().Debugf),
	); err != nil {
		return &ProvisionError{
			Device: v.BlockPath,
			Type:   fsType,
			Err:    err,
		}
	}

	return nil
}

func deviceSize(path string) (uint64, error) {
	dev, err := block.NewFromPath(path)
	if err != nil {
		return 0, err
	}

	defer dev.Close() //nolint:errcheck

	return dev.GetCapacity()
}

// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package makefs provides functions to create filesystems on the overlay partition.
package makefs

import (
	"context"
	"errors"
	"fmt"

	"github.com/siderolabs/go-cmd/pkg/cmd"

	"github.com/siderolabs/go-overlaypart/fstype"
)

// ErrUnsupportedType is returned when asked to create a filesystem of unsupported type.
var ErrUnsupportedType = errors.New("unsupported filesystem type")

// Runner runs the command and returns its output.
//
// The command is executed directly, without a shell.
type Runner func(ctx context.Context, name string, args ...string) (string, error)

// Option to control makefs settings.
type Option func(*Options)

// Options for makefs.
type Options struct {
	Label string

	Runner Runner
	Printf func(format string, args ...any)
}

// WithLabel sets the label for the filesystem to be created.
func WithLabel(label string) Option {
	return func(o *Options) {
		o.Label = label
	}
}

// WithRunner overrides the command runner.
func WithRunner(runner Runner) Option {
	return func(o *Options) {
		o.Runner = runner
	}
}

// WithPrintf sets the function to log the command being run.
func WithPrintf(printf func(format string, args ...any)) Option {
	return func(o *Options) {
		o.Printf = printf
	}
}

// NewDefaultOptions builds options with specified setters applied.
func NewDefaultOptions(setters ...Option) Options {
	opt := Options{
		Runner: cmd.RunContext,
		Printf: func(string, ...any) {},
	}

	for _, o := range setters {
		o(&opt)
	}

	return opt
}

// Format creates a filesystem of the specified type on the partition.
func Format(ctx context.Context, t fstype.Type, partname string, setters ...Option) error {
	switch t {
	case fstype.Ext4:
		return Ext4(ctx, partname, setters...)
	case fstype.F2FS:
		return F2FS(ctx, partname, setters...)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedType, t)
	}
}

func run(ctx context.Context, opts Options, tool, partname string, args []string) error {
	opts.Printf("creating %s filesystem on %s with args: %v", tool, partname, args)

	if _, err := opts.Runner(ctx, tool, args...); err != nil {
		return fmt.Errorf("%s failed: %w", tool, err)
	}

	return nil
}

// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package overlaypart

import (
	"github.com/siderolabs/gen/optional"
	"github.com/siderolabs/go-cmd/pkg/cmd"
	"go.uber.org/zap"

	"github.com/siderolabs/go-overlaypart/cmdline"
	"github.com/siderolabs/go-overlaypart/makefs"
)

// Options for the overlaypart driver.
type Options struct {
	// Logger to use for logging.
	Logger *zap.Logger

	// CmdlinePath is the file to read the kernel command line from.
	CmdlinePath string
	// Cmdline overrides the kernel command line, CmdlinePath is not read if set.
	Cmdline optional.Optional[string]

	// Runner runs the filesystem creation tools.
	Runner makefs.Runner
}

// Option is an option for the overlaypart driver.
type Option func(*Options)

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithCmdlinePath sets the path to read the kernel command line from.
func WithCmdlinePath(path string) Option {
	return func(o *Options) {
		o.CmdlinePath = path
	}
}

// WithCmdline sets the kernel command line explicitly.
func WithCmdline(line string) Option {
	return func(o *Options) {
		o.Cmdline = optional.Some(line)
	}
}

// WithRunner overrides the command runner used to create filesystems.
func WithRunner(runner makefs.Runner) Option {
	return func(o *Options) {
		o.Runner = runner
	}
}

func applyOptions(opts ...Option) Options {
	o := Options{
		Logger:      zap.NewNop(),
		CmdlinePath: cmdline.DefaultPath,
		Runner:      cmd.RunContext,
	}

	for _, opt := range opts {
		opt(&o)
	}

	return o
}

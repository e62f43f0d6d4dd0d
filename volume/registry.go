// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package volume

import (
	"errors"
	"fmt"

	"github.com/siderolabs/gen/xslices"
)

// Registry errors.
var (
	ErrDuplicateDriver = errors.New("driver already registered")
	ErrNotFound        = errors.New("volume not found")
)

// Registry holds the volume drivers.
//
// Registry is not safe for concurrent use, drivers are registered once on startup.
type Registry struct {
	drivers []Driver
}

// Register the driver.
func (r *Registry) Register(driver Driver) error {
	for _, d := range r.drivers {
		if d.Name() == driver.Name() {
			return fmt.Errorf("%w: %q", ErrDuplicateDriver, driver.Name())
		}
	}

	r.drivers = append(r.drivers, driver)

	return nil
}

// Drivers returns the names of the registered drivers in registration order.
func (r *Registry) Drivers() []string {
	return xslices.Map(r.drivers, Driver.Name)
}

// Find the volume with the logical name.
//
// Drivers are asked in registration order, the first volume found is returned.
func (r *Registry) Find(name string) (*Volume, error) {
	for _, driver := range r.drivers {
		if v := driver.Find(name); v != nil {
			return v, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
}

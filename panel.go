// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package panel loads the AMOLED panel drivers of this module.
//
// Subpackage smartdim is the gamma engine; subpackage ea8061 drives a panel
// with it.
package panel

import "periph.io/x/conn/v3/driver/driverreg"

// Init calls driverreg.Init() and returns it as-is.
//
// The only difference is that by calling panel.Init(), you are guaranteed to
// have all the drivers implemented in this library to be implicitly loaded.
// The static calibration tables are validated at that point.
func Init() (*driverreg.State, error) {
	return driverreg.Init()
}

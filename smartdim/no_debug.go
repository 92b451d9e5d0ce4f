// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

//go:build !periph_smartdim_debug
// +build !periph_smartdim_debug

package smartdim

// logf is disabled when the build tag periph_smartdim_debug is not specified.
func logf(fmt string, v ...interface{}) {
}

// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package panel

import (
	// Make sure the engine driver is registered.
	_ "github.com/CyanogenMod/android-kernel-samsung-smdk4412/smartdim"
)

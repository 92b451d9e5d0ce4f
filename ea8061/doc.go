// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package ea8061 drives the brightness of a Samsung EA8061 AMOLED panel.
//
// The panel has no brightness register. Instead, a gamma register image is
// computed for every brightness level from the panel's factory MTP
// calibration (see package smartdim) and written to the panel on each
// change.
//
// Only the brightness path is implemented. Power sequencing, display on/off
// and the rest of the command set are left to the host display driver, which
// also provides the conn.Conn the commands are sent over (usually a MIPI DSI
// host in command mode).
//
// Use build tag periph_ea8061_debug to enable verbose debugging.
package ea8061

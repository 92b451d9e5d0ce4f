// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package smartdim implements the smart dimming gamma calculation used by
// Samsung EA8061 AMOLED panels.
//
// Each panel carries factory programmed MTP (multi-time-programmable)
// offsets for 10 gray levels, the knees VT, V3, V11, V23, V35, V51, V87,
// V151, V203 and V255. From these, a Dimmer reconstructs the analog voltage
// of every knee, interpolates the 256 gray level voltage table, and then
// synthesizes the gamma register image that makes the panel follow a tone
// curve at a requested luminance.
//
// All arithmetic is integer fixed point in mV with truncating division.
//
// Use build tag periph_smartdim_debug to enable verbose debugging.
//
// # Usage
//
// The typical flow is:
//
//	d, err := smartdim.New(panelID)
//	if err := d.CalcVoltageTable(mtp); err != nil { ... }
//	gamma, err := d.CalcGammaTable(300, smartdim.G22, smartdim.Tier300(), mtp)
//
// CalcVoltageTable runs once per probe (or resume); CalcGammaTable runs on
// every brightness change. A Dimmer is not safe for concurrent use, the
// owner must serialize calls.
//
// # Register layout
//
// Both the MTP blob and the synthesized gamma image are 33 bytes in the
// order the panel's gamma register (command 0xCA) takes them. This is not
// knee index order: V255 comes first, VT last, and VT is included, which
// makes the image 33 bytes rather than 30:
//
//	 0..5   V255 R MSB, R LSB, G MSB, G LSB, B MSB, B LSB (9 bits)
//	 6..8   V203 R, G, B
//	 9..29  V151, V87, V51, V35, V23, V11, V3; 3 bytes each
//	30..32  VT R, G, B
package smartdim

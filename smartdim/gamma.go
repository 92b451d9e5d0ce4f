// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package smartdim

// Correction is a signed offset applied to the gray level looked up for each
// knee.
//
// The reference gradation is biased at some luminance bands; the panel was
// measured and corrected per brightness tier. Selecting the tier is up to the
// caller.
type Correction [NumKnees]int

// Tier300 returns the correction used above 190cd. It is empty.
func Tier300() Correction {
	return Correction{}
}

// Tier190 returns the correction used above 100cd up to 190cd.
func Tier190() Correction {
	return Correction{V151: -1, V203: -2, V255: -2}
}

// Tier20to100 returns the correction used at 100cd and below.
func Tier20to100() Correction {
	return Correction{V11: -1}
}

// CalcGammaTable returns the gamma register image that makes the panel
// follow curve at the brightness cd, in candela.
//
// mtp must be the blob passed to CalcVoltageTable. The returned slice is
// GammaSize bytes in the register layout described in the package
// documentation.
func (d *Dimmer) CalcGammaTable(cd uint32, curve Curve, corr Correction, mtp []byte) ([]byte, error) {
	if !d.calibrated {
		return nil, errNotCalibrated
	}
	if len(mtp) != MTPSize {
		return nil, errMTPSize
	}
	if curve < 0 || curve >= NumCurves {
		return nil, errCurve
	}
	idx := d.kneeIndices(cd, curve, corr)
	m := decodeMTP(mtp)

	out := make([]byte, GammaSize)
	var reg [NumKnees]int
	for c := Red; c < NumChannels; c++ {
		vt := d.adjustVolt[c][VT]
		reg[V255] = calcV255Reg(d.ve[idx[V255]][c])
		for k := V203; k > VT; k-- {
			reg[k] = calcKneeReg(vt, d.ve[idx[k]][c], d.ve[idx[k+1]][c])
		}
		reg[VT] = d.base(c, VT)

		v := clamp(reg[V255]-m[c][V255], 0, v255Steps-1)
		o := kneeOffset(V255) + 2*int(c)
		out[o] = byte(v>>8) & 0x01
		out[o+1] = byte(v)
		for k := VT; k < V255; k++ {
			out[kneeOffset(k)+int(c)] = byte(clamp(reg[k]-m[c][k], 0, 255))
		}
	}
	logf("smartdim: %dcd %s %v -> % x", cd, curve, idx, out)
	return out, nil
}

// kneeIndices returns the gray level whose voltage each knee must be driven
// to.
func (d *Dimmer) kneeIndices(cd uint32, curve Curve, corr Correction) [NumKnees]int {
	var idx [NumKnees]int
	for k := V3; k < NumKnees; k++ {
		lum := curve.Luminance(k.Gray(), cd)
		i, ok := d.t.lookup(lum)
		if !ok {
			logf("smartdim: %s at %dcd is out of the gradation table", k, cd)
		}
		idx[k] = clamp(i+corr[k], 0, NumGray-1)
	}
	return idx
}

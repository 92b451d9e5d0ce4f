// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package smartdim

// Voltages are in mV.
const (
	vregOut = 6300

	// V255 = VREG - VREG * (72 + gamma) / 860.
	vt255CalcParam  = 72
	v255Denominator = 860
	v255Steps       = 512

	// Vx = VT - (VT - Vnext) * (64 + gamma) / 320.
	cvCoefficient = 64
	dvDenominator = 320
	cvSteps       = 256
)

// gammaRange describes the interpolation between a knee and the next one.
type gammaRange struct {
	count   int   // gray levels in the range, the knee included
	radio   int   // weight unit, 1<<15 based
	offsets []int // per step weights; uniform when nil
}

var (
	v3OffsetTable  = []int{47, 39, 32, 25, 19, 13, 7}
	v11OffsetTable = []int{44, 40, 36, 32, 28, 24, 20, 16, 12, 8, 4}

	// gammaRanges is indexed by the knee starting the range.
	gammaRanges = [NumKnees]gammaRange{
		{count: 3}, // blended from ve[0] and ve[3] once the table is built
		{count: 8, radio: 630, offsets: v3OffsetTable},
		{count: 12, radio: 682, offsets: v11OffsetTable},
		{count: 12, radio: 2730},
		{count: 16, radio: 2048},
		{count: 36, radio: 910},
		{count: 64, radio: 512},
		{count: 52, radio: 630},
		{count: 52, radio: 630},
		{count: 1},
	}

	// calcSeq is the order knee voltages are reconstructed in. Each knee
	// depends on the one above it, V255 is computed first.
	calcSeq = [...]Knee{VT, V203, V151, V87, V51, V35, V23, V11, V3}
)

// buildVolt fills the conversion tables, in <<10 fixed point.
func (t *tables) buildVolt() {
	for g := range t.v255 {
		t.v255[g] = vregOut<<10 - (vregOut<<10)*int64(vt255CalcParam+g)/v255Denominator
	}
	for g := range t.cv {
		t.cv[g] = ((cvCoefficient + g) << 10) / dvDenominator
	}
}

func calcVTVolt() int64 {
	return vregOut
}

func (t *tables) calcV255Volt(gamma int) int64 {
	return t.v255[clamp(gamma, 0, v255Steps-1)] >> 10
}

// calcKneeVolt returns the voltage of a knee between VT and the next knee.
func (t *tables) calcKneeVolt(gamma int, vt, next int64) int64 {
	ratio := int64(t.cv[clamp(gamma, 0, cvSteps-1)])
	return (vt<<10 - (vt-next)*ratio) >> 10
}

// calcV255Reg is the inverse of calcV255Volt.
func calcV255Reg(v int64) int {
	return int((vregOut-v)*v255Denominator/vregOut) - vt255CalcParam
}

// calcKneeReg is the inverse of calcKneeVolt. It returns the register value
// that puts v between vt and next.
func calcKneeReg(vt, v, next int64) int {
	d := vt - next
	if d <= 0 {
		return -cvCoefficient
	}
	t := ((vt - v) << 10) / d
	return int((t*dvDenominator - cvCoefficient<<10) >> 10)
}

// CalcVoltageTable decodes the MTP calibration blob, reconstructs the knee
// voltages and interpolates the voltage of every gray level.
//
// It must be called before CalcGammaTable, and again whenever the MTP is
// read anew.
func (d *Dimmer) CalcVoltageTable(mtp []byte) error {
	if len(mtp) != MTPSize {
		return errMTPSize
	}
	d.mtp = decodeMTP(mtp)
	for c := Red; c < NumChannels; c++ {
		gamma := d.base(c, V255) + d.mtp[c][V255]
		d.adjustVolt[c][V255] = d.t.calcV255Volt(gamma)
		d.adjustVolt[c][VT] = vregOut
	}
	for c := Red; c < NumChannels; c++ {
		for _, k := range calcSeq {
			if k == VT {
				d.adjustVolt[c][VT] = calcVTVolt()
				continue
			}
			gamma := d.base(c, k) + d.mtp[c][k]
			d.adjustVolt[c][k] = d.t.calcKneeVolt(gamma, d.adjustVolt[c][VT], d.adjustVolt[c][k+1])
		}
		logf("smartdim: %s knees %v", c, d.adjustVolt[c])
	}
	d.buildVE()
	d.calibrated = true
	return nil
}

// buildVE interpolates the 256 entries voltage table from the knees.
func (d *Dimmer) buildVE() {
	index := 0
	for i := range gammaRanges {
		r := &gammaRanges[i]
		for c := Red; c < NumChannels; c++ {
			d.ve[index][c] = d.adjustVolt[c][i]
		}
		if i != int(VT) {
			for step := 0; step < r.count-1; step++ {
				var ratio int64
				if r.offsets != nil {
					ratio = int64(r.offsets[step] * r.radio)
				} else {
					ratio = int64((r.count - (step + 1)) * r.radio)
				}
				j := index + 1 + step
				for c := Red; c < NumChannels; c++ {
					v1 := d.adjustVolt[c][i+1] << 15
					v2 := (d.adjustVolt[c][i] - d.adjustVolt[c][i+1]) * ratio
					d.ve[j][c] = (v1 + v2) >> 15
				}
			}
		}
		index += r.count
	}
	// Gray 1 and 2 are a straight blend between VT and V3.
	for j := 1; j < 3; j++ {
		for c := Red; c < NumChannels; c++ {
			d.ve[j][c] = d.ve[3][c] + (d.ve[0][c]-d.ve[3][c])*int64(3-j)/3
		}
	}
}

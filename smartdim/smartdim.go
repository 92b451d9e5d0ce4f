// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package smartdim

import (
	"errors"
	"fmt"
	"strings"

	"periph.io/x/conn/v3/physic"
)

const (
	// NumGray is the number of gray levels of every voltage and gamma table.
	NumGray = 256
	// NumChannels is the number of color channels.
	NumChannels = 3
	// NumKnees is the number of calibrated gray levels.
	NumKnees = 10
	// MaxGradation is the highest whole candela of the reference gradation
	// table, the bucket of its 300cd top entry. Lookups above it fall back to
	// gray level 0. A bound of 256 would make every knee at 300cd fall back.
	MaxGradation = 300
	// MTPSize is the length of the MTP calibration blob.
	MTPSize = 33
	// GammaSize is the length of the synthesized gamma register image.
	GammaSize = 33
)

var (
	errMTPSize       = errors.New("smartdim: MTP blob must be 33 bytes")
	errNotCalibrated = errors.New("smartdim: CalcVoltageTable was not called")
	errCurve         = errors.New("smartdim: invalid gamma curve")
	errGray          = errors.New("smartdim: gray level out of range")
)

// Channel is one of the red, green or blue sub pixels.
type Channel int

const (
	Red Channel = iota
	Green
	Blue
)

const channelName = "RedGreenBlue"

var channelIndex = [...]uint8{0, 3, 8, 12}

func (c Channel) String() string {
	if c < 0 || c >= Channel(len(channelIndex)-1) {
		return fmt.Sprintf("Channel(%d)", c)
	}
	return channelName[channelIndex[c]:channelIndex[c+1]]
}

// Knee is one of the gray levels calibrated in the MTP.
type Knee int

const (
	VT Knee = iota
	V3
	V11
	V23
	V35
	V51
	V87
	V151
	V203
	V255
)

const kneeName = "VTV3V11V23V35V51V87V151V203V255"

var kneeIndex = [...]uint8{0, 2, 4, 7, 10, 13, 16, 19, 23, 27, 31}

// dvValue maps a knee to its gray level.
var dvValue = [NumKnees]int{0, 3, 11, 23, 35, 51, 87, 151, 203, 255}

func (k Knee) String() string {
	if k < 0 || k >= Knee(len(kneeIndex)-1) {
		return fmt.Sprintf("Knee(%d)", k)
	}
	return kneeName[kneeIndex[k]:kneeIndex[k+1]]
}

// Gray returns the gray level the knee is calibrated at.
func (k Knee) Gray() int {
	return dvValue[k]
}

// Curve selects a tone curve. The number is the gamma exponent.
type Curve int

const (
	G21 Curve = iota
	G212
	G213
	G215
	G216
	G218
	G219
	G22
	G222
	G225
	// NumCurves is the number of tone curves.
	NumCurves
)

const curveName = "G21G212G213G215G216G218G219G22G222G225"

var curveIndex = [...]uint8{0, 3, 7, 11, 15, 19, 23, 27, 30, 34, 38}

func (c Curve) String() string {
	if c < 0 || c >= NumCurves {
		return fmt.Sprintf("Curve(%d)", c)
	}
	return curveName[curveIndex[c]:curveIndex[c+1]]
}

// ParseCurve returns the Curve named s, like "G22". It is case insensitive.
func ParseCurve(s string) (Curve, error) {
	for c := G21; c < NumCurves; c++ {
		if strings.EqualFold(c.String(), s) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("smartdim: unknown gamma curve %q", s)
}

// Luminance returns the target luminance of gray on the curve at the
// brightness cd, in millicandela.
func (c Curve) Luminance(gray int, cd uint32) uint64 {
	if c < 0 || c >= NumCurves || gray < 0 || gray >= NumGray {
		return 0
	}
	return uint64(gammaControlTable[c][gray]) * uint64(cd) / 1000
}

// Dimmer is the smart dimming state of one panel.
//
// It is not safe for concurrent use. CalcVoltageTable mutates the state that
// CalcGammaTable reads.
type Dimmer struct {
	t            *tables
	id           []byte
	defaultGamma *[GammaSize]byte
	calibrated   bool

	mtp        [NumChannels][NumKnees]int
	adjustVolt [NumChannels][NumKnees]int64 // mV
	ve         [NumGray][NumChannels]int64  // mV
}

// New returns a Dimmer for the panel identified by id, as read from the
// display controller.
//
// The default gamma is selected from the third ID byte. An unknown ID is not
// an error; the last known panel revision is used.
func New(id []byte) (*Dimmer, error) {
	t, err := loadTables()
	if err != nil {
		return nil, err
	}
	d := &Dimmer{
		t:  t,
		id: append([]byte(nil), id...),
	}
	d.defaultGamma = selectDefaultGamma(d.id)
	return d, nil
}

func (d *Dimmer) String() string {
	return fmt.Sprintf("smartdim(% x)", d.id)
}

// ID returns the panel ID the Dimmer was created with.
func (d *Dimmer) ID() []byte {
	return append([]byte(nil), d.id...)
}

// DefaultGamma returns the 300cd gamma register image selected for this
// panel.
func (d *Dimmer) DefaultGamma() []byte {
	return append([]byte(nil), d.defaultGamma[:]...)
}

// Calibrated returns true once CalcVoltageTable succeeded.
func (d *Dimmer) Calibrated() bool {
	return d.calibrated
}

// MTP returns the decoded MTP offset of a knee.
func (d *Dimmer) MTP(k Knee, c Channel) int {
	return d.mtp[c][k]
}

// KneeVoltage returns the voltage reconstructed for a knee.
func (d *Dimmer) KneeVoltage(k Knee, c Channel) physic.ElectricPotential {
	return physic.ElectricPotential(d.adjustVolt[c][k]) * physic.MilliVolt
}

// Voltage returns the interpolated voltage of a gray level.
func (d *Dimmer) Voltage(gray int, c Channel) (physic.ElectricPotential, error) {
	if gray < 0 || gray >= NumGray {
		return 0, errGray
	}
	return physic.ElectricPotential(d.ve[gray][c]) * physic.MilliVolt, nil
}

// LookupIndex returns the gray level whose reference luminance is closest to
// lum, in millicandela.
//
// ok is false when lum is above MaxGradation candela; the returned index is
// then 0.
func (d *Dimmer) LookupIndex(lum uint64) (index int, ok bool) {
	return d.t.lookup(lum)
}

// base returns the default gamma register value of a knee.
func (d *Dimmer) base(c Channel, k Knee) int {
	o := kneeOffset(k)
	if k == V255 {
		o += 2 * int(c)
		return int(d.defaultGamma[o]&0x01)<<8 | int(d.defaultGamma[o+1])
	}
	return int(d.defaultGamma[o+int(c)])
}

// kneeOffset returns the offset of a knee in the MTP and gamma register
// layout.
func kneeOffset(k Knee) int {
	switch k {
	case V255:
		return 0
	case VT:
		return 30
	}
	return 6 + 3*int(V203-k)
}

// s9 sign extends a 9 bits value.
func s9(v uint16) int {
	return int(int16(v<<7) >> 7)
}

// decodeMTP returns the signed offsets stored in mtp. VT has no stored
// offset, it is the reference rail.
func decodeMTP(mtp []byte) [NumChannels][NumKnees]int {
	var m [NumChannels][NumKnees]int
	for c := Red; c < NumChannels; c++ {
		o := kneeOffset(V255) + 2*int(c)
		m[c][V255] = s9(uint16(mtp[o])<<8 | uint16(mtp[o+1]))
		for k := V3; k < V255; k++ {
			m[c][k] = int(int8(mtp[kneeOffset(k)+int(c)]))
		}
	}
	return m
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

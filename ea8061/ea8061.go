// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ea8061

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/CyanogenMod/android-kernel-samsung-smdk4412/smartdim"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/physic"
)

const (
	cmdReadID      byte = 0x04
	cmdReadMTP     byte = 0xD3
	cmdGamma       byte = 0xCA
	cmdGammaUpdate byte = 0xF7

	gammaUpdate byte = 0x01

	// IDSize is the length of the panel ID.
	IDSize = 3
)

var (
	errNoLevels    = errors.New("ea8061: at least one brightness level is required")
	errLevelOrder  = errors.New("ea8061: brightness levels must be strictly ascending")
	errLevelRange  = errors.New("ea8061: brightness level out of range")
	errLevelNumber = errors.New("ea8061: invalid level")
)

// CandelaTable is the default list of brightness levels, in candela.
var CandelaTable = []uint32{
	20, 30, 40, 50, 60, 70, 80, 90, 100,
	110, 120, 130, 140, 150, 160, 170, 180, 190,
	200, 210, 220, 230, 240, 250, 260, 270, 280, 290, 300,
}

// Opts is optional options to pass to the constructor.
type Opts struct {
	// Curve is the tone curve the panel follows at every level.
	Curve smartdim.Curve
	// Levels is the brightness levels in candela, strictly ascending. A gamma
	// image is computed for each at initialization.
	Levels []uint32
}

// DefaultOpts is the recommended default options.
var DefaultOpts = Opts{
	Curve:  smartdim.G22,
	Levels: CandelaTable,
}

// TierFor returns the lookup correction to use at the brightness cd.
func TierFor(cd uint32) smartdim.Correction {
	switch {
	case cd <= 100:
		return smartdim.Tier20to100()
	case cd <= 190:
		return smartdim.Tier190()
	default:
		return smartdim.Tier300()
	}
}

// Dev is a handle to an EA8061 panel.
type Dev struct {
	c    conn.Conn
	opts Opts

	mu    sync.Mutex
	id    [IDSize]byte
	mtp   [smartdim.MTPSize]byte
	dim   *smartdim.Dimmer
	gamma [][]byte // one per level
	level int      // last level written, -1 if none
}

// New reads the panel ID and MTP calibration over c and computes the gamma
// image of every brightness level.
//
// Nothing is written to the panel until SetBrightness is called.
func New(c conn.Conn, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	if len(opts.Levels) == 0 {
		return nil, errNoLevels
	}
	for i, cd := range opts.Levels {
		if cd == 0 || cd > smartdim.MaxGradation {
			return nil, errLevelRange
		}
		if i > 0 && cd <= opts.Levels[i-1] {
			return nil, errLevelOrder
		}
	}
	d := &Dev{
		c: c,
		opts: Opts{
			Curve:  opts.Curve,
			Levels: append([]uint32(nil), opts.Levels...),
		},
		level: -1,
	}
	if err := d.Init(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("EA8061{%s}", d.c)
}

// Halt implements conn.Resource.
//
// It is a noop; the panel keeps its last gamma.
func (d *Dev) Halt() error {
	return nil
}

// Init reads the panel ID and MTP again and recomputes every level.
//
// Call it after the panel was power cycled. The last brightness is forgotten,
// so the next SetBrightness always writes.
func (d *Dev) Init() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	var id [IDSize]byte
	if err := d.c.Tx([]byte{cmdReadID}, id[:]); err != nil {
		return fmt.Errorf("ea8061: reading id: %w", err)
	}
	var mtp [smartdim.MTPSize]byte
	if err := d.c.Tx([]byte{cmdReadMTP}, mtp[:]); err != nil {
		return fmt.Errorf("ea8061: reading MTP: %w", err)
	}
	dim, err := smartdim.New(id[:])
	if err != nil {
		return err
	}
	if err := dim.CalcVoltageTable(mtp[:]); err != nil {
		return err
	}
	gamma := make([][]byte, len(d.opts.Levels))
	for i, cd := range d.opts.Levels {
		if gamma[i], err = dim.CalcGammaTable(cd, d.opts.Curve, TierFor(cd), mtp[:]); err != nil {
			return fmt.Errorf("ea8061: %dcd: %w", cd, err)
		}
		logf("ea8061: %3dcd % x", cd, gamma[i])
	}
	d.id = id
	d.mtp = mtp
	d.dim = dim
	d.gamma = gamma
	d.level = -1
	return nil
}

// ID returns the panel ID read at initialization.
func (d *Dev) ID() [IDSize]byte {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.id
}

// MTP returns the MTP calibration read at initialization.
func (d *Dev) MTP() []byte {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]byte(nil), d.mtp[:]...)
}

// Levels returns the brightness levels.
func (d *Dev) Levels() []physic.LuminousIntensity {
	out := make([]physic.LuminousIntensity, len(d.opts.Levels))
	for i, cd := range d.opts.Levels {
		out[i] = physic.LuminousIntensity(cd) * physic.Candela
	}
	return out
}

// Gamma returns the gamma register image of a level.
func (d *Dev) Gamma(level int) ([]byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if level < 0 || level >= len(d.gamma) {
		return nil, errLevelNumber
	}
	return append([]byte(nil), d.gamma[level]...), nil
}

// KneeVoltage returns the voltage the panel calibration gives to a knee.
func (d *Dev) KneeVoltage(k smartdim.Knee, c smartdim.Channel) physic.ElectricPotential {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.dim.KneeVoltage(k, c)
}

// Brightness returns the level last written, or 0 if none was.
func (d *Dev) Brightness() physic.LuminousIntensity {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.level < 0 {
		return 0
	}
	return physic.LuminousIntensity(d.opts.Levels[d.level]) * physic.Candela
}

// SetBrightness selects the highest level not above l and writes its gamma
// to the panel. Below the lowest level, the lowest level is used.
func (d *Dev) SetBrightness(l physic.LuminousIntensity) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	i := d.levelFor(l)
	if i == d.level {
		return nil
	}
	return d.writeGamma(i)
}

func (d *Dev) levelFor(l physic.LuminousIntensity) int {
	levels := d.opts.Levels
	i := sort.Search(len(levels), func(i int) bool {
		return physic.LuminousIntensity(levels[i])*physic.Candela > l
	}) - 1
	if i < 0 {
		return 0
	}
	return i
}

// writeGamma must be called with mu held.
func (d *Dev) writeGamma(level int) error {
	w := make([]byte, 1+smartdim.GammaSize)
	w[0] = cmdGamma
	copy(w[1:], d.gamma[level])
	if err := d.c.Tx(w, nil); err != nil {
		return fmt.Errorf("ea8061: writing gamma: %w", err)
	}
	if err := d.c.Tx([]byte{cmdGammaUpdate, gammaUpdate}, nil); err != nil {
		return fmt.Errorf("ea8061: updating gamma: %w", err)
	}
	logf("ea8061: %dcd", d.opts.Levels[level])
	d.level = level
	return nil
}

var _ conn.Resource = &Dev{}

// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package smartdim

import (
	"fmt"
	"sync"

	"periph.io/x/conn/v3/driver/driverreg"
)

// tables holds the calibration tables derived from the static ones.
type tables struct {
	flook [MaxGradation + 1]flookup
	v255  [v255Steps]int64
	cv    [cvSteps]int
}

var (
	tablesOnce sync.Once
	tablesRef  *tables
	tablesErr  error
)

// loadTables builds and validates the tables once.
func loadTables() (*tables, error) {
	tablesOnce.Do(func() {
		t := &tables{}
		t.buildLookup()
		t.buildVolt()
		if tablesErr = t.validate(); tablesErr == nil {
			tablesRef = t
		}
	})
	return tablesRef, tablesErr
}

// validate checks the invariants the algorithm relies on.
func (t *tables) validate() error {
	total := 0
	for i, r := range gammaRanges {
		total += r.count
		if r.offsets != nil {
			if len(r.offsets) != r.count-1 {
				return fmt.Errorf("smartdim: range %s has %d offsets, expected %d", Knee(i), len(r.offsets), r.count-1)
			}
			for _, o := range r.offsets {
				if o*r.radio > 1<<15 {
					return fmt.Errorf("smartdim: range %s overshoots", Knee(i))
				}
			}
		} else if r.count > 1 && i != int(VT) && (r.count-1)*r.radio > 1<<15 {
			return fmt.Errorf("smartdim: range %s overshoots", Knee(i))
		}
	}
	if total != NumGray {
		return fmt.Errorf("smartdim: ranges cover %d gray levels, expected %d", total, NumGray)
	}
	start := 0
	for i, r := range gammaRanges {
		if start != dvValue[i] {
			return fmt.Errorf("smartdim: range %s starts at %d, expected %d", Knee(i), start, dvValue[i])
		}
		start += r.count
	}
	if last := gamma300GraTable[NumGray-1]; last != MaxGradation*1000 {
		return fmt.Errorf("smartdim: gradation ends at %d", last)
	}
	for g := 1; g < NumGray; g++ {
		if gamma300GraTable[g] <= gamma300GraTable[g-1] {
			return fmt.Errorf("smartdim: gradation is not increasing at %d", g)
		}
	}
	for c := G21; c < NumCurves; c++ {
		if gammaControlTable[c][NumGray-1] != 1000000 {
			return fmt.Errorf("smartdim: curve %s is not normalized", c)
		}
		for g := 1; g < NumGray; g++ {
			if gammaControlTable[c][g] < gammaControlTable[c][g-1] {
				return fmt.Errorf("smartdim: curve %s decreases at %d", c, g)
			}
		}
	}
	for g, lum := range gamma300GraTable {
		if i, _ := t.lookup(uint64(lum)); i != g {
			return fmt.Errorf("smartdim: gray %d looks up as %d", g, i)
		}
	}
	return nil
}

// driver implements driver.Impl.
//
// There is no hardware to probe; Init() loads the calibration tables so a
// corrupted table is reported by panel.Init().
type driver struct{}

func (d *driver) String() string {
	return "smartdim"
}

func (d *driver) Prerequisites() []string {
	return nil
}

func (d *driver) After() []string {
	return nil
}

func (d *driver) Init() (bool, error) {
	if _, err := loadTables(); err != nil {
		return true, err
	}
	return true, nil
}

func init() {
	driverreg.MustRegister(&drv)
}

var drv driver

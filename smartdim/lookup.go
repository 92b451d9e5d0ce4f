// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package smartdim

// flookup is a bucket of the lookup acceleration table: the gray levels whose
// reference luminance truncates to the same whole candela.
type flookup struct {
	entry uint16 // first gray level of the bucket
	count uint16
}

// buildLookup fills the acceleration table from the reference gradation.
func (t *tables) buildLookup() {
	for g, lum := range gamma300GraTable {
		b := &t.flook[lum/1000]
		if b.count == 0 {
			b.entry = uint16(g)
		}
		b.count++
	}
}

func (t *tables) count(i int) int {
	if i < 0 || i > MaxGradation {
		return 0
	}
	return int(t.flook[i].count)
}

// lookup returns the gray level whose reference luminance is the closest to
// lum. Ties go to the lowest gray level.
func (t *tables) lookup(lum uint64) (int, bool) {
	if lum/1000 > MaxGradation {
		return 0, false
	}
	li := int(lum / 1000)

	var index, count int
	if t.count(li) != 0 {
		if t.count(li-1) != 0 {
			index = int(t.flook[li-1].entry)
			count = t.count(li) + t.count(li-1)
		} else {
			index = int(t.flook[li].entry)
			count = t.count(li)
		}
	} else {
		// Probe outward until a populated bucket is found. Both ends are
		// always populated so this terminates.
		offset := 1
		for t.count(li+offset) == 0 && t.count(li-offset) == 0 {
			offset++
		}
		if t.count(li-offset) != 0 {
			index = int(t.flook[li-offset].entry)
		} else {
			index = int(t.flook[li+offset].entry)
		}
		count = t.count(li+offset) + t.count(li-offset)
	}

	minimum := uint64(gamma300GraTable[NumGray-1])
	candidate := 0
	for i := 0; i < count; i++ {
		g := uint64(gamma300GraTable[index])
		var gap uint64
		if lum > g {
			gap = lum - g
		} else {
			gap = g - lum
		}
		if gap == 0 {
			return index, true
		}
		if gap < minimum {
			minimum = gap
			candidate = index
		}
		index++
	}
	return candidate, true
}

// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package smartdim

import "log"

// gamma300cd is the 300cd gamma register image a panel revision ships with.
type gamma300cd struct {
	id    byte // third byte of the panel ID
	gamma [GammaSize]byte
}

// gamma300cdList is searched in order. The last entry is the fallback for
// unknown panels and must stay the most recent revision.
var gamma300cdList = []gamma300cd{
	{
		id: 0x01,
		gamma: [GammaSize]byte{
			0x00, 0xF8, 0x00, 0xFC, 0x01, 0x08,
			0x82, 0x80, 0x84,
			0x81, 0x80, 0x82,
			0x80, 0x80, 0x81,
			0x80, 0x80, 0x80,
			0x7F, 0x80, 0x80,
			0x7E, 0x80, 0x7F,
			0x7D, 0x80, 0x7E,
			0x7C, 0x7F, 0x7D,
			0x02, 0x02, 0x02,
		},
	},
	{
		id: 0x02,
		gamma: [GammaSize]byte{
			0x00, 0xFC, 0x00, 0xFE, 0x01, 0x04,
			0x81, 0x80, 0x82,
			0x80, 0x80, 0x81,
			0x80, 0x80, 0x80,
			0x80, 0x80, 0x80,
			0x80, 0x80, 0x80,
			0x7F, 0x80, 0x7F,
			0x7E, 0x80, 0x7F,
			0x7E, 0x80, 0x7E,
			0x01, 0x01, 0x01,
		},
	},
	{
		id: 0x03,
		gamma: [GammaSize]byte{
			0x01, 0x00, 0x01, 0x00, 0x01, 0x00,
			0x80, 0x80, 0x80,
			0x80, 0x80, 0x80,
			0x80, 0x80, 0x80,
			0x80, 0x80, 0x80,
			0x80, 0x80, 0x80,
			0x80, 0x80, 0x80,
			0x80, 0x80, 0x80,
			0x80, 0x80, 0x80,
			0x00, 0x00, 0x00,
		},
	},
}

// selectDefaultGamma returns the default gamma for the panel id.
func selectDefaultGamma(id []byte) *[GammaSize]byte {
	if len(id) >= 3 {
		for i := range gamma300cdList {
			if gamma300cdList[i].id == id[2] {
				logf("smartdim: panel id % x uses gamma list entry %d", id, i)
				return &gamma300cdList[i].gamma
			}
		}
	}
	last := &gamma300cdList[len(gamma300cdList)-1]
	log.Printf("smartdim: no default gamma for panel id % x, using revision 0x%02x", id, last.id)
	return &last.gamma
}

// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// gammadump prints the gamma register images computed for an EA8061 panel
// from its ID and MTP calibration.
//
// Both are usually dumped from a live panel by the display driver, e.g.:
//
//	gammadump -id 40:00:03 -mtp 0005...00 -volt
package main

import (
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	panel "github.com/CyanogenMod/android-kernel-samsung-smdk4412"
	"github.com/CyanogenMod/android-kernel-samsung-smdk4412/ea8061"
	"github.com/CyanogenMod/android-kernel-samsung-smdk4412/smartdim"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/conntest"
	"periph.io/x/conn/v3/physic"
)

// parseHex decodes a hex string, ignoring ':' and ' ' separators.
func parseHex(s string) ([]byte, error) {
	s = strings.NewReplacer(":", "", " ", "").Replace(s)
	return hex.DecodeString(s)
}

func printVolt(w io.Writer, d *smartdim.Dimmer) {
	fmt.Fprintf(w, "%-5s", "")
	for c := smartdim.Red; c < smartdim.NumChannels; c++ {
		fmt.Fprintf(w, " %6s", c)
	}
	fmt.Fprintln(w)
	for k := smartdim.V255; k >= smartdim.VT; k-- {
		fmt.Fprintf(w, "%-5s", k)
		for c := smartdim.Red; c < smartdim.NumChannels; c++ {
			fmt.Fprintf(w, " %6d", int64(d.KneeVoltage(k, c)/physic.MilliVolt))
		}
		fmt.Fprintln(w)
	}
}

// simPanel answers the panel reads with a fixed ID and MTP and accepts
// every write.
type simPanel struct {
	id  []byte
	mtp []byte
}

func (s *simPanel) String() string {
	return "simulated EA8061"
}

func (s *simPanel) Tx(w, r []byte) error {
	switch len(r) {
	case 0:
	case len(s.id):
		copy(r, s.id)
	case len(s.mtp):
		copy(r, s.mtp)
	default:
		return fmt.Errorf("unexpected %d bytes read", len(r))
	}
	return nil
}

func (s *simPanel) Duplex() conn.Duplex {
	return conn.Half
}

// trace runs the panel driver against a simulated panel and prints every
// command it sends.
func trace(w io.Writer, id, mtp []byte, curve smartdim.Curve) error {
	r := &conntest.Record{Conn: &simPanel{id: id, mtp: mtp}}
	d, err := ea8061.New(r, &ea8061.Opts{Curve: curve, Levels: ea8061.CandelaTable})
	if err != nil {
		return err
	}
	for _, l := range d.Levels() {
		if err := d.SetBrightness(l); err != nil {
			return err
		}
	}
	for _, op := range r.Ops {
		if len(op.R) != 0 {
			fmt.Fprintf(w, "R % x: % x\n", op.W, op.R)
		} else {
			fmt.Fprintf(w, "W % x\n", op.W)
		}
	}
	return nil
}

func run(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("gammadump", flag.ContinueOnError)
	fs.SetOutput(w)
	idFlag := fs.String("id", "40:00:03", "panel ID, 3 bytes in hex")
	mtpFlag := fs.String("mtp", "", "MTP calibration, 33 bytes in hex; all zeros when empty")
	curveFlag := fs.String("curve", "G22", "tone curve, one of G21, G212, G213, G215, G216, G218, G219, G22, G222, G225")
	cd := fs.Uint("cd", 0, "brightness in candela; every panel level when 0")
	volt := fs.Bool("volt", false, "print the knee voltages in mV")
	tr := fs.Bool("trace", false, "print the panel commands sent for every level")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 0 {
		return errors.New("unexpected argument, try -help")
	}

	id, err := parseHex(*idFlag)
	if err != nil {
		return fmt.Errorf("-id: %w", err)
	}
	if len(id) != ea8061.IDSize {
		return fmt.Errorf("-id: expected %d bytes, got %d", ea8061.IDSize, len(id))
	}
	mtp := make([]byte, smartdim.MTPSize)
	if *mtpFlag != "" {
		if mtp, err = parseHex(*mtpFlag); err != nil {
			return fmt.Errorf("-mtp: %w", err)
		}
		if len(mtp) != smartdim.MTPSize {
			return fmt.Errorf("-mtp: expected %d bytes, got %d", smartdim.MTPSize, len(mtp))
		}
	}
	curve, err := smartdim.ParseCurve(*curveFlag)
	if err != nil {
		return err
	}
	if *cd > smartdim.MaxGradation {
		return fmt.Errorf("-cd: must be at most %d", smartdim.MaxGradation)
	}

	if _, err := panel.Init(); err != nil {
		return err
	}
	if *tr {
		return trace(w, id, mtp, curve)
	}
	d, err := smartdim.New(id)
	if err != nil {
		return err
	}
	if err := d.CalcVoltageTable(mtp); err != nil {
		return err
	}
	if *volt {
		printVolt(w, d)
	}
	levels := ea8061.CandelaTable
	if *cd != 0 {
		levels = []uint32{uint32(*cd)}
	}
	for _, l := range levels {
		g, err := d.CalcGammaTable(l, curve, ea8061.TierFor(l), mtp)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%3dcd: % x\n", l, g)
	}
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if err != flag.ErrHelp {
			fmt.Fprintf(os.Stderr, "gammadump: %s.\n", err)
		}
		os.Exit(1)
	}
}

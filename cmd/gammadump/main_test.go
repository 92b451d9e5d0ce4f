// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseHex(t *testing.T) {
	b, err := parseHex("40:00:03")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(b, []byte{0x40, 0x00, 0x03}) {
		t.Fatalf("parseHex() = % x", b)
	}
	if b, err = parseHex("01 ff"); err != nil || !bytes.Equal(b, []byte{0x01, 0xFF}) {
		t.Fatalf("parseHex() = % x, %v", b, err)
	}
	if _, err := parseHex("0g"); err == nil {
		t.Fatal("expected error")
	}
}

func TestRun(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"-cd", "300"}, &out); err != nil {
		t.Fatal(err)
	}
	want := "300cd: 01 00 01 00 01 00 " + strings.Repeat("7f ", 9) + strings.Repeat("80 ", 15) + "00 00 00\n"
	if s := out.String(); s != want {
		t.Fatalf("run() = %q\nexpected %q", s, want)
	}
}

func TestRun_levels(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"-volt", "-curve", "g215"}, &out); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	// Header, 10 knees and 29 levels.
	if len(lines) != 1+10+29 {
		t.Fatalf("run() returned %d lines:\n%s", len(lines), out.String())
	}
	if !strings.HasPrefix(lines[1], "V255") || !strings.HasPrefix(lines[10], "VT") {
		t.Fatalf("unexpected voltage table:\n%s", out.String())
	}
	if !strings.HasSuffix(lines[10], "6300") {
		t.Fatalf("VT = %q", lines[10])
	}
	if !strings.HasPrefix(lines[11], " 20cd: ") || !strings.HasPrefix(lines[len(lines)-1], "300cd: ") {
		t.Fatalf("unexpected levels:\n%s", out.String())
	}
}

func TestRun_trace(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"-trace"}, &out); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	// Two reads, then a gamma write and an update per level.
	if len(lines) != 2+2*29 {
		t.Fatalf("run() returned %d lines:\n%s", len(lines), out.String())
	}
	if lines[0] != "R 04: 40 00 03" {
		t.Fatalf("unexpected ID read %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "R d3: 00 00 00") {
		t.Fatalf("unexpected MTP read %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "W ca ") || lines[3] != "W f7 01" {
		t.Fatalf("unexpected writes %q, %q", lines[2], lines[3])
	}
	want := "W ca 01 00 01 00 01 00 " + strings.Repeat("7f ", 9) + strings.Repeat("80 ", 15) + "00 00 00"
	if l := lines[len(lines)-2]; l != want {
		t.Fatalf("300cd = %q", l)
	}
}

func TestRun_errors(t *testing.T) {
	data := [][]string{
		{"-id", "40:00"},
		{"-id", "zz"},
		{"-mtp", "00"},
		{"-curve", "G3"},
		{"-cd", "301"},
		{"extra"},
	}
	for _, args := range data {
		var out bytes.Buffer
		if err := run(args, &out); err == nil {
			t.Fatalf("run(%q) succeeded", args)
		}
	}
}

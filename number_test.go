/*
Copyright (C) 2026 the wkt authors.
This file is part of wkt.

wkt is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

wkt is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with wkt.  If not, see <http://www.gnu.org/licenses/>.
*/

package wkt

import "testing"

type meters float64

func TestParseNumberKinds(t *testing.T) {
	if n, err := parseNumber[float64]("-0.5"); err != nil || n != -0.5 {
		t.Errorf("float64: got %v, %v", n, err)
	}
	if n, err := parseNumber[float32]("1e3"); err != nil || n != 1000 {
		t.Errorf("float32: got %v, %v", n, err)
	}
	if n, err := parseNumber[int]("-42"); err != nil || n != -42 {
		t.Errorf("int: got %v, %v", n, err)
	}
	if n, err := parseNumber[uint8]("255"); err != nil || n != 255 {
		t.Errorf("uint8: got %v, %v", n, err)
	}
	if _, err := parseNumber[uint8]("256"); err == nil {
		t.Error("uint8 overflow: expected error")
	}
	if _, err := parseNumber[int]("1.5"); err == nil {
		t.Error("fractional int: expected error")
	}
	if _, err := parseNumber[float64]("4.2p"); err == nil {
		t.Error("malformed literal: expected error")
	}
	if n, err := parseNumber[meters]("2.5"); err != nil || n != 2.5 {
		t.Errorf("named type: got %v, %v", n, err)
	}
}

func TestAppendNumber(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{string(appendNumber(nil, 10.0)), "10"},
		{string(appendNumber(nil, -0.5)), "-0.5"},
		{string(appendNumber(nil, 10.12345)), "10.12345"},
		{string(appendNumber(nil, float32(1.25))), "1.25"},
		{string(appendNumber(nil, -7)), "-7"},
		{string(appendNumber(nil, uint16(9))), "9"},
		{string(appendNumber(nil, meters(3.5))), "3.5"},
	}
	for _, test := range tests {
		if test.got != test.want {
			t.Errorf("got %q, want %q", test.got, test.want)
		}
	}
}

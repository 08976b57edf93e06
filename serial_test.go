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

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func TestTextMarshal(t *testing.T) {
	p := NewPoint(NewCoord(1.0, 2.0))
	b, err := p.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "POINT(1 2)" {
		t.Errorf("got %q", b)
	}

	var back Point[float64]
	if err := back.UnmarshalText(b); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(back, p) {
		t.Errorf("got %#v, want %#v", back, p)
	}
}

func TestTextUnmarshalKindMismatch(t *testing.T) {
	var p Point[float64]
	err := p.UnmarshalText([]byte("LINESTRING (0 0, 1 1)"))
	if err == nil || !strings.Contains(err.Error(), "cannot unmarshal LINESTRING into POINT") {
		t.Errorf("got %v", err)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	type record struct {
		Name  string         `json:"name"`
		Shape Value[float64] `json:"shape"`
	}
	in := record{
		Name:  "site",
		Shape: Value[float64]{Geometry: NewPoint(NewCoordZ(1.0, 2.0, 3.0))},
	}
	b, err := json.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"name":"site","shape":"POINT Z(1 2 3)"}`
	if string(b) != want {
		t.Errorf("got %s, want %s", b, want)
	}

	var out record
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(out, in) {
		t.Errorf("got %#v, want %#v", out, in)
	}
}

func TestJSONNull(t *testing.T) {
	var v Value[float64]
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "null" {
		t.Errorf("got %s", b)
	}
	if err := json.Unmarshal([]byte("null"), &v); err != nil {
		t.Fatal(err)
	}
	if v.Geometry != nil {
		t.Errorf("got %#v", v.Geometry)
	}
}

func TestSQLValueScan(t *testing.T) {
	v := Value[float64]{Geometry: NewMultiPoint(NewPoint(NewCoord(1.0, 2.0)))}
	dv, err := v.Value()
	if err != nil {
		t.Fatal(err)
	}
	if dv != "MULTIPOINT((1 2))" {
		t.Errorf("got %v", dv)
	}

	var back Value[float64]
	if err := back.Scan([]byte("MULTIPOINT((1 2))")); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(back, v) {
		t.Errorf("got %#v, want %#v", back, v)
	}

	if err := back.Scan(nil); err != nil {
		t.Fatal(err)
	}
	if back.Geometry != nil {
		t.Errorf("scan nil: got %#v", back.Geometry)
	}
	if err := back.Scan(42); err == nil {
		t.Error("expected error scanning int")
	}
}

func TestStructTextTags(t *testing.T) {
	// The concrete types marshal through encoding.TextMarshaler when
	// embedded in JSON structures directly.
	type row struct {
		Line LineString[float64] `json:"line"`
	}
	in := row{Line: NewLineString(NewCoord(1.0, 2.0), NewCoord(3.0, 4.0))}
	b, err := json.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `{"line":"LINESTRING(1 2,3 4)"}` {
		t.Errorf("got %s", b)
	}
	var out row
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(out, in) {
		t.Errorf("got %#v, want %#v", out, in)
	}
}

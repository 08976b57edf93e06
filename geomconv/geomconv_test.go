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

package geomconv

import (
	"errors"
	"reflect"
	"testing"

	"github.com/ctessum/geom"
	wkt "github.com/georust/wkt-sub000"
)

func TestParseToModel(t *testing.T) {
	tests := []struct {
		input string
		want  geom.Geom
	}{
		{"POINT (1 2)", geom.Point{X: 1, Y: 2}},
		{"POINT EMPTY", geom.MultiPoint{}},
		{"LINESTRING (10 -20, 0 -0.5)", geom.LineString{{X: 10, Y: -20}, {X: 0, Y: -0.5}}},
		{"POLYGON ((0 0, 1 0, 1 1, 0 0))", geom.Polygon{{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 0}}}},
		{"MULTIPOINT (8 4, (4 0))", geom.MultiPoint{{X: 8, Y: 4}, {X: 4, Y: 0}}},
		{"MULTILINESTRING ((1 2, 3 4))", geom.MultiLineString{{{X: 1, Y: 2}, {X: 3, Y: 4}}}},
		{"MULTIPOLYGON (((0 0, 1 0, 1 1, 0 0)))", geom.MultiPolygon{{{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 0}}}}},
		{"GEOMETRYCOLLECTION (POINT (8 4), LINESTRING (4 6, 7 10))", geom.GeometryCollection{
			geom.Point{X: 8, Y: 4},
			geom.LineString{{X: 4, Y: 6}, {X: 7, Y: 10}},
		}},
	}
	for _, test := range tests {
		got, err := Parse(test.input)
		if err != nil {
			t.Errorf("parse %q: %v", test.input, err)
			continue
		}
		if !reflect.DeepEqual(got, test.want) {
			t.Errorf("parse %q: got %#v, want %#v", test.input, got, test.want)
		}
	}
}

func TestModelToString(t *testing.T) {
	tests := []struct {
		geom geom.Geom
		want string
	}{
		{geom.Point{X: 1, Y: 2}, "POINT(1 2)"},
		{geom.LineString{{X: 1, Y: 2}, {X: 3, Y: 4}}, "LINESTRING(1 2,3 4)"},
		{geom.MultiPoint{{X: 8, Y: 4}, {X: 4, Y: 0}}, "MULTIPOINT((8 4),(4 0))"},
		{geom.GeometryCollection{geom.Point{X: 1, Y: 2}}, "GEOMETRYCOLLECTION(POINT(1 2))"},
		// A bounding box renders as its closed rectangle ring.
		{&geom.Bounds{Min: geom.Point{X: 0, Y: 0}, Max: geom.Point{X: 2, Y: 3}},
			"POLYGON((0 0,2 0,2 3,0 3,0 0))"},
	}
	for _, test := range tests {
		got, err := String(test.geom)
		if err != nil {
			t.Errorf("render %#v: %v", test.geom, err)
			continue
		}
		if got != test.want {
			t.Errorf("render: got %q, want %q", got, test.want)
		}
	}
}

func TestRoundTripThroughModel(t *testing.T) {
	inputs := []string{
		"POINT(1 2)",
		"LINESTRING(10 -20,0 -0.5)",
		"POLYGON((8 4,4 0,0 4,8 4),(7 3,4 1,1 4,7 3))",
		"MULTIPOINT((8 4),(4 0))",
		"MULTILINESTRING((1 2,3 4),(5 6,7 8))",
		"MULTIPOLYGON(((0 0,1 0,1 1,0 0)))",
		"GEOMETRYCOLLECTION(POINT(8 4),LINESTRING(4 6,7 10))",
	}
	for _, input := range inputs {
		g, err := Parse(input)
		if err != nil {
			t.Errorf("parse %q: %v", input, err)
			continue
		}
		got, err := String(g)
		if err != nil {
			t.Errorf("render %q: %v", input, err)
			continue
		}
		if got != input {
			t.Errorf("round trip: got %q, want %q", got, input)
		}
	}
}

func TestLossyDimension(t *testing.T) {
	for _, input := range []string{
		"POINT Z (1 2 3)",
		"LINESTRING M (1 2 3, 4 5 6)",
		"GEOMETRYCOLLECTION (POINT ZM (1 2 3 4))",
	} {
		_, err := Parse(input)
		var de *DimensionError
		if !errors.As(err, &de) {
			t.Errorf("parse %q: got %v, want DimensionError", input, err)
		}
	}
}

func TestEmptyPointInMultiPoint(t *testing.T) {
	g, err := wkt.Parse[float64]("MULTIPOINT (EMPTY, 1 2)")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ToGeom(g); !errors.Is(err, ErrEmptyPoint) {
		t.Errorf("got %v, want ErrEmptyPoint", err)
	}
}

func TestParseErrorPassthrough(t *testing.T) {
	if _, err := Parse("POINT (1"); err == nil {
		t.Error("expected parse error")
	}
}

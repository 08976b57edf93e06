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

func TestInferType(t *testing.T) {
	xy, xyz, xym, xyzm := XY, XYZ, XYM, XYZM
	tests := []struct {
		input   string
		typ     GeometryType
		dim     *Dimension
		wantErr bool
	}{
		{input: "POINT (10 20.1)", typ: TypePoint, dim: &xy},
		{input: "POINT Z (10 20.1 5)", typ: TypePoint, dim: &xyz},
		{input: "POINTZ (10 20.1 5)", typ: TypePoint, dim: &xyz},
		{input: "point m (1 2 3)", typ: TypePoint, dim: &xym},
		{input: "  POINT ZM (1 2 3 4)", typ: TypePoint, dim: &xyzm},
		{input: "POINT EMPTY", typ: TypePoint},
		{input: "point z empty", typ: TypePoint},
		{input: "LINESTRING(0 0, 1 1)", typ: TypeLineString, dim: &xy},
		{input: "MULTIPOINT ZM (0 0 1 1)", typ: TypeMultiPoint, dim: &xyzm},
		{input: "MULTILINESTRING ((0 0, 1 1))", typ: TypeMultiLineString, dim: &xy},
		{input: "multipolygonz (((0 0 0, 1 1 1, 0 1 0, 0 0 0)))", typ: TypeMultiPolygon, dim: &xyz},
		{input: "GEOMETRYCOLLECTION (POINT (1 2))", typ: TypeGeometryCollection, dim: &xy},
		{input: "GEOMETRYCOLLECTION EMPTY", typ: TypeGeometryCollection},
		{input: "DOODAD (1 2)", wantErr: true},
		{input: "POINT", wantErr: true},
		{input: "", wantErr: true},
		{input: "LINEARRING (0 0, 1 1)", wantErr: true},
	}
	for _, test := range tests {
		typ, dim, err := InferType(test.input)
		if test.wantErr {
			if err == nil {
				t.Errorf("infer %q: expected error, got %v %v", test.input, typ, dim)
			}
			continue
		}
		if err != nil {
			t.Errorf("infer %q: %v", test.input, err)
			continue
		}
		if typ != test.typ {
			t.Errorf("infer %q: got type %v, want %v", test.input, typ, test.typ)
		}
		switch {
		case dim == nil != (test.dim == nil):
			t.Errorf("infer %q: got dimension %v, want %v", test.input, dim, test.dim)
		case dim != nil && *dim != *test.dim:
			t.Errorf("infer %q: got dimension %v, want %v", test.input, *dim, *test.dim)
		}
	}
}

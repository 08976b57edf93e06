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

package wktutil

import (
	"bytes"
	"io/ioutil"
	"os"
	"testing"
)

func TestConvertWKT(t *testing.T) {
	var buf bytes.Buffer
	if err := Convert(&buf, " point ( 1.0 2.0 ) ", "wkt", ""); err != nil {
		t.Fatal(err)
	}
	if want := "POINT(1 2)\n"; buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestConvertGeoJSON(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"POINT(1 2)", `{"type":"Point","coordinates":[1,2]}` + "\n"},
		{"LINESTRING(0 0,1 1)", `{"type":"LineString","coordinates":[[0,0],[1,1]]}` + "\n"},
		{
			"POLYGON((0 0,2 0,2 2,0 0))",
			`{"type":"Polygon","coordinates":[[[0,0],[2,0],[2,2],[0,0]]]}` + "\n",
		},
	}
	for _, test := range tests {
		var buf bytes.Buffer
		if err := Convert(&buf, test.input, "geojson", ""); err != nil {
			t.Fatalf("%s: %v", test.input, err)
		}
		if buf.String() != test.want {
			t.Errorf("%s: got %q, want %q", test.input, buf.String(), test.want)
		}
	}
}

func TestConvertGeoJSONToFile(t *testing.T) {
	var buf bytes.Buffer
	if err := Convert(&buf, "POINT(3 4)", "geojson", "tmp_convert.json"); err != nil {
		t.Fatal(err)
	}
	defer os.Remove("tmp_convert.json")
	if buf.Len() != 0 {
		t.Errorf("expected no writer output, got %q", buf.String())
	}
	b, err := ioutil.ReadFile("tmp_convert.json")
	if err != nil {
		t.Fatal(err)
	}
	if want := `{"type":"Point","coordinates":[3,4]}` + "\n"; string(b) != want {
		t.Errorf("got %q, want %q", string(b), want)
	}
}

func TestConvertShp(t *testing.T) {
	var buf bytes.Buffer
	err := Convert(&buf, "POLYGON((0 0,4 0,4 4,0 4,0 0))", "shp", "tmp_convert.shp")
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range []string{"tmp_convert.shp", "tmp_convert.shx", "tmp_convert.dbf"} {
		if _, err := os.Stat(f); err != nil {
			t.Errorf("missing shapefile component: %v", err)
		}
		os.Remove(f)
	}
}

func TestConvertShpRequiresOutput(t *testing.T) {
	var buf bytes.Buffer
	if err := Convert(&buf, "POINT(1 2)", "shp", ""); err == nil {
		t.Fatal("expected an error for shp output without a file")
	}
}

func TestConvertUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Convert(&buf, "POINT(1 2)", "kml", ""); err == nil {
		t.Fatal("expected an error for an unknown format")
	}
}

func TestConvertBadInput(t *testing.T) {
	var buf bytes.Buffer
	if err := Convert(&buf, "POINT(1", "wkt", ""); err == nil {
		t.Fatal("expected a parse error")
	}
}

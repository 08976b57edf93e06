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
	"fmt"
	"strings"
	"unicode"
)

// InferType classifies a WKT string by geometry kind and dimension
// from its prefix, without parsing the body. The dimension is nil for
// EMPTY geometries, which carry no coordinate-derived dimension
// signal. Only the seven canonical keywords are recognized.
func InferType(s string) (GeometryType, *Dimension, error) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	if i := strings.IndexByte(s, '('); i >= 0 {
		prefix := strings.ToUpper(strings.TrimRightFunc(s[:i], unicode.IsSpace))
		typ, rest, err := matchTypePrefix(prefix)
		if err != nil {
			return 0, nil, err
		}
		dim := XY
		switch {
		case strings.Contains(rest, "ZM"):
			dim = XYZM
		case strings.Contains(rest, "Z"):
			dim = XYZ
		case strings.Contains(rest, "M"):
			dim = XYM
		}
		return typ, &dim, nil
	}
	up := strings.ToUpper(s)
	if !strings.Contains(up, "EMPTY") {
		return 0, nil, fmt.Errorf("wkt: %q contains no parenthesized body and no EMPTY", s)
	}
	typ, _, err := matchTypePrefix(up)
	if err != nil {
		return 0, nil, err
	}
	return typ, nil, nil
}

// matchTypePrefix matches the start of an upper-cased prefix against
// the canonical keywords, most specific first, and returns the
// remainder after the keyword.
func matchTypePrefix(prefix string) (GeometryType, string, error) {
	for _, t := range []GeometryType{
		TypeGeometryCollection,
		TypeMultiLineString,
		TypeMultiPolygon,
		TypeMultiPoint,
		TypeLineString,
		TypePolygon,
		TypePoint,
	} {
		if strings.HasPrefix(prefix, t.String()) {
			return t, prefix[len(t.String()):], nil
		}
	}
	return 0, "", fmt.Errorf("wkt: unrecognized geometry prefix %q", prefix)
}

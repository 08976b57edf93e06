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

// The writer mirrors the grammar: keyword, optional " Z"/" M"/" ZM"
// suffix, then either " EMPTY" or the parenthesized body with no
// whitespace around parentheses and commas. An empty child list
// renders as EMPTY, never as ().

func appendTag(dst []byte, t GeometryType, d Dimension) []byte {
	dst = append(dst, t.String()...)
	if m := d.Marker(); m != "" {
		dst = append(dst, ' ')
		dst = append(dst, m...)
	}
	return dst
}

func appendCoordList[T Number](dst []byte, coords []Coord[T]) []byte {
	if len(coords) == 0 {
		return append(dst, "EMPTY"...)
	}
	dst = append(dst, '(')
	for i, c := range coords {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = appendCoord(dst, c)
	}
	return append(dst, ')')
}

func appendRingList[T Number](dst []byte, rings []LineString[T]) []byte {
	if len(rings) == 0 {
		return append(dst, "EMPTY"...)
	}
	dst = append(dst, '(')
	for i, r := range rings {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = appendCoordList(dst, r.Coords)
	}
	return append(dst, ')')
}

func (p Point[T]) appendWKT(dst []byte) []byte {
	dst = appendTag(dst, TypePoint, p.Dim)
	if p.Coord == nil {
		return append(dst, " EMPTY"...)
	}
	dst = append(dst, '(')
	dst = appendCoord(dst, *p.Coord)
	return append(dst, ')')
}

func (l LineString[T]) appendWKT(dst []byte) []byte {
	dst = appendTag(dst, TypeLineString, l.Dim)
	if len(l.Coords) == 0 {
		return append(dst, " EMPTY"...)
	}
	return appendCoordList(dst, l.Coords)
}

func (p Polygon[T]) appendWKT(dst []byte) []byte {
	dst = appendTag(dst, TypePolygon, p.Dim)
	if len(p.Rings) == 0 {
		return append(dst, " EMPTY"...)
	}
	return appendRingList(dst, p.Rings)
}

func (m MultiPoint[T]) appendWKT(dst []byte) []byte {
	dst = appendTag(dst, TypeMultiPoint, m.Dim)
	if len(m.Points) == 0 {
		return append(dst, " EMPTY"...)
	}
	dst = append(dst, '(')
	for i, p := range m.Points {
		if i > 0 {
			dst = append(dst, ',')
		}
		if p.Coord == nil {
			dst = append(dst, "EMPTY"...)
			continue
		}
		dst = append(dst, '(')
		dst = appendCoord(dst, *p.Coord)
		dst = append(dst, ')')
	}
	return append(dst, ')')
}

func (m MultiLineString[T]) appendWKT(dst []byte) []byte {
	dst = appendTag(dst, TypeMultiLineString, m.Dim)
	if len(m.Lines) == 0 {
		return append(dst, " EMPTY"...)
	}
	return appendRingList(dst, m.Lines)
}

func (m MultiPolygon[T]) appendWKT(dst []byte) []byte {
	dst = appendTag(dst, TypeMultiPolygon, m.Dim)
	if len(m.Polygons) == 0 {
		return append(dst, " EMPTY"...)
	}
	dst = append(dst, '(')
	for i, p := range m.Polygons {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = appendRingList(dst, p.Rings)
	}
	return append(dst, ')')
}

func (g GeometryCollection[T]) appendWKT(dst []byte) []byte {
	dst = appendTag(dst, TypeGeometryCollection, g.Dim)
	if len(g.Geometries) == 0 {
		return append(dst, " EMPTY"...)
	}
	dst = append(dst, '(')
	for i, child := range g.Geometries {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = child.appendWKT(dst)
	}
	return append(dst, ')')
}

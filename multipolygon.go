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

// MultiPolygon is a sequence of polygons sharing one dimension.
type MultiPolygon[T Number] struct {
	Dim      Dimension
	Polygons []Polygon[T]
}

// NewMultiPolygon returns a MultiPolygon over polygons, with the
// dimension of the first polygon. No polygons gives an empty XY
// value.
func NewMultiPolygon[T Number](polygons ...Polygon[T]) MultiPolygon[T] {
	if len(polygons) == 0 {
		return MultiPolygon[T]{}
	}
	return MultiPolygon[T]{Dim: polygons[0].Dim, Polygons: polygons}
}

// EmptyMultiPolygon returns the EMPTY multipolygon of the given
// dimension.
func EmptyMultiPolygon[T Number](dim Dimension) MultiPolygon[T] {
	return MultiPolygon[T]{Dim: dim}
}

func (m MultiPolygon[T]) Type() GeometryType { return TypeMultiPolygon }

func (m MultiPolygon[T]) Dimension() Dimension { return m.Dim }

func (m MultiPolygon[T]) Empty() bool { return len(m.Polygons) == 0 }

func (m MultiPolygon[T]) String() string { return string(m.appendWKT(nil)) }

func parseMultiPolygon[T Number](s *scanner, dim *Dimension) (Geometry[T], error) {
	d, err := resolveDimension(s, dim)
	if err != nil {
		return nil, err
	}
	m, err := parseBody(s, d, EmptyMultiPolygon[T], parsePolygonList[T])
	if err != nil {
		return nil, err
	}
	return m, nil
}

func parsePolygonList[T Number](s *scanner, dim Dimension) (MultiPolygon[T], error) {
	polygons, err := parseCommaList(s, dim, func(s *scanner, dim Dimension) (Polygon[T], error) {
		return parseBody(s, dim, EmptyPolygon[T], parseRingList[T])
	})
	if err != nil {
		return MultiPolygon[T]{}, err
	}
	return MultiPolygon[T]{Dim: dim, Polygons: polygons}, nil
}

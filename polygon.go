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

// Polygon is a sequence of rings. The first ring is the exterior and
// any others are holes. Ring closure and orientation are not checked.
type Polygon[T Number] struct {
	Dim   Dimension
	Rings []LineString[T]
}

// NewPolygon returns a Polygon over rings, with the dimension of the
// first ring. No rings gives an empty XY polygon.
func NewPolygon[T Number](rings ...LineString[T]) Polygon[T] {
	if len(rings) == 0 {
		return Polygon[T]{}
	}
	return Polygon[T]{Dim: rings[0].Dim, Rings: rings}
}

// EmptyPolygon returns the EMPTY polygon of the given dimension.
func EmptyPolygon[T Number](dim Dimension) Polygon[T] {
	return Polygon[T]{Dim: dim}
}

func (p Polygon[T]) Type() GeometryType { return TypePolygon }

func (p Polygon[T]) Dimension() Dimension { return p.Dim }

func (p Polygon[T]) Empty() bool { return len(p.Rings) == 0 }

func (p Polygon[T]) String() string { return string(p.appendWKT(nil)) }

func parsePolygon[T Number](s *scanner, dim *Dimension) (Geometry[T], error) {
	d, err := resolveDimension(s, dim)
	if err != nil {
		return nil, err
	}
	p, err := parseBody(s, d, EmptyPolygon[T], parseRingList[T])
	if err != nil {
		return nil, err
	}
	return p, nil
}

func parseRingList[T Number](s *scanner, dim Dimension) (Polygon[T], error) {
	rings, err := parseCommaList(s, dim, parseRing[T])
	if err != nil {
		return Polygon[T]{}, err
	}
	return Polygon[T]{Dim: dim, Rings: rings}, nil
}

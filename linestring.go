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

// LineString is an ordered sequence of coordinates. A single-point
// line string is degenerate but accepted. No coordinates means the
// EMPTY line string.
type LineString[T Number] struct {
	Dim    Dimension
	Coords []Coord[T]
}

// NewLineString returns a LineString over coords, with the dimension
// implied by the first coordinate. No coordinates gives an empty XY
// line string.
func NewLineString[T Number](coords ...Coord[T]) LineString[T] {
	if len(coords) == 0 {
		return LineString[T]{}
	}
	return LineString[T]{Dim: coords[0].Dimension(), Coords: coords}
}

// EmptyLineString returns the EMPTY line string of the given
// dimension.
func EmptyLineString[T Number](dim Dimension) LineString[T] {
	return LineString[T]{Dim: dim}
}

func (l LineString[T]) Type() GeometryType { return TypeLineString }

func (l LineString[T]) Dimension() Dimension { return l.Dim }

func (l LineString[T]) Empty() bool { return len(l.Coords) == 0 }

func (l LineString[T]) String() string { return string(l.appendWKT(nil)) }

func parseLineString[T Number](s *scanner, dim *Dimension) (Geometry[T], error) {
	d, err := resolveDimension(s, dim)
	if err != nil {
		return nil, err
	}
	l, err := parseBody(s, d, EmptyLineString[T], parseCoordList[T])
	if err != nil {
		return nil, err
	}
	return l, nil
}

func parseCoordList[T Number](s *scanner, dim Dimension) (LineString[T], error) {
	coords, err := parseCommaList(s, dim, parseCoord[T])
	if err != nil {
		return LineString[T]{}, err
	}
	return LineString[T]{Dim: dim, Coords: coords}, nil
}

// parseRing reads one parenthesized coordinate list, the form rings
// take inside POLYGON and line strings take inside MULTILINESTRING.
// An EMPTY element is accepted in place of the parentheses.
func parseRing[T Number](s *scanner, dim Dimension) (LineString[T], error) {
	return parseBody(s, dim, EmptyLineString[T], parseCoordList[T])
}

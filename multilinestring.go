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

// MultiLineString is a sequence of line strings sharing one
// dimension.
type MultiLineString[T Number] struct {
	Dim   Dimension
	Lines []LineString[T]
}

// NewMultiLineString returns a MultiLineString over lines, with the
// dimension of the first line. No lines gives an empty XY value.
func NewMultiLineString[T Number](lines ...LineString[T]) MultiLineString[T] {
	if len(lines) == 0 {
		return MultiLineString[T]{}
	}
	return MultiLineString[T]{Dim: lines[0].Dim, Lines: lines}
}

// EmptyMultiLineString returns the EMPTY multilinestring of the given
// dimension.
func EmptyMultiLineString[T Number](dim Dimension) MultiLineString[T] {
	return MultiLineString[T]{Dim: dim}
}

func (m MultiLineString[T]) Type() GeometryType { return TypeMultiLineString }

func (m MultiLineString[T]) Dimension() Dimension { return m.Dim }

func (m MultiLineString[T]) Empty() bool { return len(m.Lines) == 0 }

func (m MultiLineString[T]) String() string { return string(m.appendWKT(nil)) }

func parseMultiLineString[T Number](s *scanner, dim *Dimension) (Geometry[T], error) {
	d, err := resolveDimension(s, dim)
	if err != nil {
		return nil, err
	}
	m, err := parseBody(s, d, EmptyMultiLineString[T], parseLineList[T])
	if err != nil {
		return nil, err
	}
	return m, nil
}

func parseLineList[T Number](s *scanner, dim Dimension) (MultiLineString[T], error) {
	lines, err := parseCommaList(s, dim, parseRing[T])
	if err != nil {
		return MultiLineString[T]{}, err
	}
	return MultiLineString[T]{Dim: dim, Lines: lines}, nil
}

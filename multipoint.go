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

import "strings"

// MultiPoint is a sequence of points. Elements may individually be
// EMPTY. The grammar lets each element be written bare (1 2) or
// parenthesized ((1 2)), and the two stylings may mix in one list;
// output always parenthesizes.
type MultiPoint[T Number] struct {
	Dim    Dimension
	Points []Point[T]
}

// NewMultiPoint returns a MultiPoint over points, with the dimension
// of the first point. No points gives an empty XY multipoint.
func NewMultiPoint[T Number](points ...Point[T]) MultiPoint[T] {
	if len(points) == 0 {
		return MultiPoint[T]{}
	}
	return MultiPoint[T]{Dim: points[0].Dim, Points: points}
}

// EmptyMultiPoint returns the EMPTY multipoint of the given
// dimension.
func EmptyMultiPoint[T Number](dim Dimension) MultiPoint[T] {
	return MultiPoint[T]{Dim: dim}
}

func (m MultiPoint[T]) Type() GeometryType { return TypeMultiPoint }

func (m MultiPoint[T]) Dimension() Dimension { return m.Dim }

func (m MultiPoint[T]) Empty() bool { return len(m.Points) == 0 }

func (m MultiPoint[T]) String() string { return string(m.appendWKT(nil)) }

func parseMultiPoint[T Number](s *scanner, dim *Dimension) (Geometry[T], error) {
	d, err := resolveDimension(s, dim)
	if err != nil {
		return nil, err
	}
	m, err := parseBody(s, d, EmptyMultiPoint[T], parsePointList[T])
	if err != nil {
		return nil, err
	}
	return m, nil
}

func parsePointList[T Number](s *scanner, dim Dimension) (MultiPoint[T], error) {
	points, err := parseCommaList(s, dim, parsePointElement[T])
	if err != nil {
		return MultiPoint[T]{}, err
	}
	return MultiPoint[T]{Dim: dim, Points: points}, nil
}

// parsePointElement reads one MULTIPOINT member: EMPTY, a
// parenthesized coordinate, or a bare coordinate.
func parsePointElement[T Number](s *scanner, dim Dimension) (Point[T], error) {
	tok := s.peek()
	switch {
	case tok.kind == tokWord && strings.EqualFold(tok.text, "EMPTY"):
		s.next()
		return EmptyPoint[T](dim), nil
	case tok.kind == tokLParen:
		return parseBody(s, dim, EmptyPoint[T], parseBareCoord[T])
	default:
		return parseBareCoord[T](s, dim)
	}
}

func parseBareCoord[T Number](s *scanner, dim Dimension) (Point[T], error) {
	c, err := parseCoord[T](s, dim)
	if err != nil {
		return Point[T]{}, err
	}
	return Point[T]{Dim: dim, Coord: &c}, nil
}

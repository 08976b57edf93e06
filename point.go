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

// Point is a single location. A nil Coord is the EMPTY point, a
// geometry without a location.
type Point[T Number] struct {
	Dim   Dimension
	Coord *Coord[T]
}

// NewPoint returns a Point holding c, with the dimension implied by
// c's ordinates.
func NewPoint[T Number](c Coord[T]) Point[T] {
	return Point[T]{Dim: c.Dimension(), Coord: &c}
}

// EmptyPoint returns the EMPTY point of the given dimension.
func EmptyPoint[T Number](dim Dimension) Point[T] {
	return Point[T]{Dim: dim}
}

func (p Point[T]) Type() GeometryType { return TypePoint }

func (p Point[T]) Dimension() Dimension { return p.Dim }

func (p Point[T]) Empty() bool { return p.Coord == nil }

func (p Point[T]) String() string { return string(p.appendWKT(nil)) }

func parsePoint[T Number](s *scanner, dim *Dimension) (Geometry[T], error) {
	d, err := resolveDimension(s, dim)
	if err != nil {
		return nil, err
	}
	p, err := parseBody(s, d, EmptyPoint[T], func(s *scanner, dim Dimension) (Point[T], error) {
		c, err := parseCoord[T](s, dim)
		if err != nil {
			return Point[T]{}, err
		}
		return Point[T]{Dim: dim, Coord: &c}, nil
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

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
)

// GeometryCollection is a heterogeneous sequence of geometries.
// Without an explicit Z/M/ZM marker its dimension is that of its
// first member; an empty collection reports XY.
type GeometryCollection[T Number] struct {
	Dim        Dimension
	Geometries []Geometry[T]
}

// NewGeometryCollection returns a collection over geoms, with the
// dimension of the first member. No members gives an empty XY
// collection.
func NewGeometryCollection[T Number](geoms ...Geometry[T]) GeometryCollection[T] {
	if len(geoms) == 0 {
		return GeometryCollection[T]{}
	}
	return GeometryCollection[T]{Dim: geoms[0].Dimension(), Geometries: geoms}
}

// EmptyGeometryCollection returns the EMPTY collection of the given
// dimension.
func EmptyGeometryCollection[T Number](dim Dimension) GeometryCollection[T] {
	return GeometryCollection[T]{Dim: dim}
}

func (g GeometryCollection[T]) Type() GeometryType { return TypeGeometryCollection }

func (g GeometryCollection[T]) Dimension() Dimension { return g.Dim }

func (g GeometryCollection[T]) Empty() bool { return len(g.Geometries) == 0 }

func (g GeometryCollection[T]) String() string { return string(g.appendWKT(nil)) }

func parseGeometryCollection[T Number](s *scanner, dim *Dimension) (Geometry[T], error) {
	if dim == nil {
		hd, err := headerDimension(s)
		if err != nil {
			return nil, err
		}
		dim = hd
	}
	tok := s.next()
	if tok.kind == tokWord && strings.EqualFold(tok.text, "EMPTY") {
		d := XY
		if dim != nil {
			d = *dim
		}
		return EmptyGeometryCollection[T](d), nil
	}
	if tok.kind != tokLParen {
		return nil, fmt.Errorf("wkt: missing opening parenthesis, got %s", tok.kind)
	}
	geoms, err := parseCommaList(s, XY, parseCollectionMember[T])
	if err != nil {
		return nil, err
	}
	if tok = s.next(); tok.kind != tokRParen {
		return nil, fmt.Errorf("wkt: missing closing parenthesis, got %s", tok.kind)
	}
	d := geoms[0].Dimension()
	if dim != nil {
		d = *dim
	}
	return GeometryCollection[T]{Dim: d, Geometries: geoms}, nil
}

// parseCollectionMember reads one member geometry, starting from its
// own keyword. The collection's dimension marker does not carry into
// members; each declares its own.
func parseCollectionMember[T Number](s *scanner, _ Dimension) (Geometry[T], error) {
	tok := s.next()
	if tok.kind != tokWord {
		return nil, fmt.Errorf("wkt: expected a geometry keyword in GEOMETRYCOLLECTION, got %s", tok.kind)
	}
	return parseGeometry[T](s, tok.text)
}

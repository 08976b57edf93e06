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

	log "github.com/sirupsen/logrus"
)

// Coord is one coordinate tuple. Z and M are nil when the ordinate is
// absent. The parser guarantees that Z and M presence matches the
// dimension under which the coordinate was read; values built
// directly carry no such guarantee.
type Coord[T Number] struct {
	X, Y T
	Z, M *T
}

// NewCoord returns a two-dimensional coordinate.
func NewCoord[T Number](x, y T) Coord[T] {
	return Coord[T]{X: x, Y: y}
}

// NewCoordZ returns a coordinate with an elevation ordinate.
func NewCoordZ[T Number](x, y, z T) Coord[T] {
	return Coord[T]{X: x, Y: y, Z: &z}
}

// NewCoordM returns a coordinate with a measure ordinate.
func NewCoordM[T Number](x, y, m T) Coord[T] {
	return Coord[T]{X: x, Y: y, M: &m}
}

// NewCoordZM returns a coordinate with elevation and measure
// ordinates.
func NewCoordZM[T Number](x, y, z, m T) Coord[T] {
	return Coord[T]{X: x, Y: y, Z: &z, M: &m}
}

// Dimension reports the dimension implied by which ordinates are set.
func (c Coord[T]) Dimension() Dimension {
	switch {
	case c.Z != nil && c.M != nil:
		return XYZM
	case c.Z != nil:
		return XYZ
	case c.M != nil:
		return XYM
	default:
		return XY
	}
}

// parseCoord reads the 2, 3 or 4 ordinates dim calls for.
func parseCoord[T Number](s *scanner, dim Dimension) (Coord[T], error) {
	var c Coord[T]
	var err error
	if c.X, err = parseOrdinate[T](s, "X"); err != nil {
		return c, err
	}
	if c.Y, err = parseOrdinate[T](s, "Y"); err != nil {
		return c, err
	}
	if dim.HasZ() {
		z, err := parseOrdinate[T](s, "Z")
		if err != nil {
			return c, err
		}
		c.Z = &z
	}
	if dim.HasM() {
		m, err := parseOrdinate[T](s, "M")
		if err != nil {
			return c, err
		}
		c.M = &m
	}
	return c, nil
}

func parseOrdinate[T Number](s *scanner, name string) (T, error) {
	var zero T
	tok := s.next()
	if tok.kind != tokNumber {
		return zero, fmt.Errorf("wkt: expected a number for the %s coordinate, got %s", name, tok.kind)
	}
	n, err := parseNumber[T](tok.text)
	if err != nil {
		log.WithFields(log.Fields{
			"token":    tok.text,
			"position": tok.pos,
		}).Warn("number token failed conversion")
		return zero, err
	}
	return n, nil
}

func appendCoord[T Number](dst []byte, c Coord[T]) []byte {
	dst = appendNumber(dst, c.X)
	dst = append(dst, ' ')
	dst = appendNumber(dst, c.Y)
	if c.Z != nil {
		dst = append(dst, ' ')
		dst = appendNumber(dst, *c.Z)
	}
	if c.M != nil {
		dst = append(dst, ' ')
		dst = appendNumber(dst, *c.M)
	}
	return dst
}

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

// Package wkt reads and writes the Well-Known Text geometry format.
//
// The seven geometry types (Point, LineString, Polygon, MultiPoint,
// MultiLineString, MultiPolygon, GeometryCollection) are generic over
// the ordinate type and may carry Z and/or M ordinates in addition to
// X and Y. Parse turns WKT text into a Geometry value; every geometry
// renders itself back to canonical WKT through String or Write.
package wkt

import (
	"fmt"
	"io"
	"strings"
)

// Version is the version of this library.
const Version = "1.0.0"

// GeometryType identifies one of the seven WKT geometry kinds.
type GeometryType int

const (
	TypePoint GeometryType = iota + 1
	TypeLineString
	TypePolygon
	TypeMultiPoint
	TypeMultiLineString
	TypeMultiPolygon
	TypeGeometryCollection
)

// String returns the WKT keyword for the type.
func (t GeometryType) String() string {
	switch t {
	case TypePoint:
		return "POINT"
	case TypeLineString:
		return "LINESTRING"
	case TypePolygon:
		return "POLYGON"
	case TypeMultiPoint:
		return "MULTIPOINT"
	case TypeMultiLineString:
		return "MULTILINESTRING"
	case TypeMultiPolygon:
		return "MULTIPOLYGON"
	case TypeGeometryCollection:
		return "GEOMETRYCOLLECTION"
	default:
		return fmt.Sprintf("GeometryType(%d)", int(t))
	}
}

// Geometry is the closed union over the seven WKT geometry types,
// parameterized by ordinate type. It is implemented only by the types
// in this package.
type Geometry[T Number] interface {
	// Type reports which geometry kind the value is.
	Type() GeometryType
	// Dimension reports which ordinates the value carries.
	Dimension() Dimension
	// Empty reports whether the value is the EMPTY geometry of its
	// kind.
	Empty() bool
	// String renders the value as canonical single-line WKT.
	String() string

	appendWKT(dst []byte) []byte
}

// Parse reads one geometry from s. Input past the end of the first
// complete geometry is ignored.
func Parse[T Number](s string) (Geometry[T], error) {
	sc := newScanner(s)
	tok := sc.next()
	switch tok.kind {
	case tokEOF:
		return nil, fmt.Errorf("wkt: empty input")
	case tokWord:
		return parseGeometry[T](sc, tok.text)
	default:
		return nil, fmt.Errorf("wkt: expected a geometry keyword, got %s", tok.kind)
	}
}

// Write renders g to w as canonical WKT.
func Write[T Number](w io.Writer, g Geometry[T]) error {
	_, err := w.Write(g.appendWKT(nil))
	return err
}

// Marshal returns the canonical WKT encoding of g.
func Marshal[T Number](g Geometry[T]) []byte {
	return g.appendWKT(nil)
}

// geometryKeywords lists the recognized keywords, longest first so
// prefix matching picks the most specific one. LINEARRING is a JTS
// extension read as a LineString.
var geometryKeywords = []struct {
	word string
	typ  GeometryType
}{
	{"GEOMETRYCOLLECTION", TypeGeometryCollection},
	{"MULTILINESTRING", TypeMultiLineString},
	{"MULTIPOLYGON", TypeMultiPolygon},
	{"MULTIPOINT", TypeMultiPoint},
	{"LINESTRING", TypeLineString},
	{"LINEARRING", TypeLineString},
	{"POLYGON", TypePolygon},
	{"POINT", TypePoint},
}

// splitKeyword matches word against the known keywords, allowing a
// fused dimension marker such as POINTZ or multipolygonzm. The
// returned dimension is nil when no marker is fused to the keyword.
func splitKeyword(word string) (GeometryType, *Dimension, error) {
	up := strings.ToUpper(word)
	for _, kw := range geometryKeywords {
		if !strings.HasPrefix(up, kw.word) {
			continue
		}
		rest := up[len(kw.word):]
		if rest == "" {
			return kw.typ, nil, nil
		}
		if d, ok := parseMarker(rest); ok {
			if kw.word == "LINEARRING" {
				break // the alias has no fused forms
			}
			dim := d
			return kw.typ, &dim, nil
		}
		break
	}
	return 0, nil, fmt.Errorf("wkt: unrecognized geometry keyword %q", word)
}

// parseGeometry dispatches on an already-consumed keyword word. It is
// also the recursion point for GeometryCollection members.
func parseGeometry[T Number](s *scanner, word string) (Geometry[T], error) {
	typ, dim, err := splitKeyword(word)
	if err != nil {
		return nil, err
	}
	switch typ {
	case TypePoint:
		return parsePoint[T](s, dim)
	case TypeLineString:
		return parseLineString[T](s, dim)
	case TypePolygon:
		return parsePolygon[T](s, dim)
	case TypeMultiPoint:
		return parseMultiPoint[T](s, dim)
	case TypeMultiLineString:
		return parseMultiLineString[T](s, dim)
	case TypeMultiPolygon:
		return parseMultiPolygon[T](s, dim)
	default:
		return parseGeometryCollection[T](s, dim)
	}
}

// headerDimension reads an optional stand-alone Z/M/ZM word between
// the keyword and the geometry body. It returns nil when the next
// token starts the body (an opening parenthesis or EMPTY).
func headerDimension(s *scanner) (*Dimension, error) {
	tok := s.peek()
	switch tok.kind {
	case tokEOF:
		return nil, fmt.Errorf("wkt: unexpected end of input after geometry keyword")
	case tokWord:
		if strings.EqualFold(tok.text, "EMPTY") {
			return nil, nil
		}
		if d, ok := parseMarker(strings.ToUpper(tok.text)); ok {
			s.next()
			dim := d
			return &dim, nil
		}
		return nil, fmt.Errorf("wkt: unexpected word %q before opening parenthesis", tok.text)
	default:
		return nil, nil
	}
}

// resolveDimension combines a fused marker (if any) with a
// stand-alone header marker, defaulting to XY.
func resolveDimension(s *scanner, dim *Dimension) (Dimension, error) {
	if dim != nil {
		return *dim, nil
	}
	hd, err := headerDimension(s)
	if err != nil {
		return XY, err
	}
	if hd != nil {
		return *hd, nil
	}
	return XY, nil
}

// parseBody handles the EMPTY-or-parenthesized alternative shared by
// every geometry production: empty builds the EMPTY value, body
// parses the contents between the parentheses.
func parseBody[G any](s *scanner, dim Dimension, empty func(Dimension) G, body func(*scanner, Dimension) (G, error)) (G, error) {
	var zero G
	tok := s.next()
	if tok.kind == tokWord && strings.EqualFold(tok.text, "EMPTY") {
		return empty(dim), nil
	}
	if tok.kind != tokLParen {
		return zero, fmt.Errorf("wkt: missing opening parenthesis, got %s", tok.kind)
	}
	g, err := body(s, dim)
	if err != nil {
		return zero, err
	}
	if tok = s.next(); tok.kind != tokRParen {
		return zero, fmt.Errorf("wkt: missing closing parenthesis, got %s", tok.kind)
	}
	return g, nil
}

// parseCommaList applies f repeatedly with commas between successive
// elements. The list has at least one element; the caller has already
// ruled out EMPTY.
func parseCommaList[E any](s *scanner, dim Dimension, f func(*scanner, Dimension) (E, error)) ([]E, error) {
	item, err := f(s, dim)
	if err != nil {
		return nil, err
	}
	items := []E{item}
	for {
		if tok := s.peek(); tok.kind != tokComma {
			return items, nil
		}
		s.next()
		if item, err = f(s, dim); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
}

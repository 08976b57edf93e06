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
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Geometries cross serialization boundaries as single scalar WKT
// strings. Each concrete type implements encoding.TextMarshaler and
// TextUnmarshaler; unmarshalling enforces the target kind. Value
// wraps the union for JSON fields and database columns.

func unmarshalAs[T Number, G Geometry[T]](b []byte, out *G) error {
	g, err := Parse[T](string(b))
	if err != nil {
		return err
	}
	got, ok := g.(G)
	if !ok {
		var want G
		return fmt.Errorf("wkt: cannot unmarshal %s into %s", g.Type(), want.Type())
	}
	*out = got
	return nil
}

func (p Point[T]) MarshalText() ([]byte, error) { return p.appendWKT(nil), nil }

func (p *Point[T]) UnmarshalText(b []byte) error { return unmarshalAs[T](b, p) }

func (l LineString[T]) MarshalText() ([]byte, error) { return l.appendWKT(nil), nil }

func (l *LineString[T]) UnmarshalText(b []byte) error { return unmarshalAs[T](b, l) }

func (p Polygon[T]) MarshalText() ([]byte, error) { return p.appendWKT(nil), nil }

func (p *Polygon[T]) UnmarshalText(b []byte) error { return unmarshalAs[T](b, p) }

func (m MultiPoint[T]) MarshalText() ([]byte, error) { return m.appendWKT(nil), nil }

func (m *MultiPoint[T]) UnmarshalText(b []byte) error { return unmarshalAs[T](b, m) }

func (m MultiLineString[T]) MarshalText() ([]byte, error) { return m.appendWKT(nil), nil }

func (m *MultiLineString[T]) UnmarshalText(b []byte) error { return unmarshalAs[T](b, m) }

func (m MultiPolygon[T]) MarshalText() ([]byte, error) { return m.appendWKT(nil), nil }

func (m *MultiPolygon[T]) UnmarshalText(b []byte) error { return unmarshalAs[T](b, m) }

func (g GeometryCollection[T]) MarshalText() ([]byte, error) { return g.appendWKT(nil), nil }

func (g *GeometryCollection[T]) UnmarshalText(b []byte) error { return unmarshalAs[T](b, g) }

// Value carries any geometry through encoding/json and database/sql
// as one WKT string. A nil Geometry maps to JSON null and SQL NULL.
type Value[T Number] struct {
	Geometry Geometry[T]
}

func (v Value[T]) MarshalJSON() ([]byte, error) {
	if v.Geometry == nil {
		return []byte("null"), nil
	}
	return json.Marshal(v.Geometry.String())
}

func (v *Value[T]) UnmarshalJSON(b []byte) error {
	var s *string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == nil {
		v.Geometry = nil
		return nil
	}
	g, err := Parse[T](*s)
	if err != nil {
		return err
	}
	v.Geometry = g
	return nil
}

// Value implements driver.Valuer.
func (v Value[T]) Value() (driver.Value, error) {
	if v.Geometry == nil {
		return nil, nil
	}
	return v.Geometry.String(), nil
}

// Scan implements sql.Scanner, accepting the WKT string forms a
// driver may deliver.
func (v *Value[T]) Scan(src interface{}) error {
	switch s := src.(type) {
	case nil:
		v.Geometry = nil
		return nil
	case string:
		g, err := Parse[T](s)
		if err != nil {
			return err
		}
		v.Geometry = g
		return nil
	case []byte:
		g, err := Parse[T](string(s))
		if err != nil {
			return err
		}
		v.Geometry = g
		return nil
	default:
		return fmt.Errorf("wkt: cannot scan %T into a geometry", src)
	}
}

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
	"reflect"
	"strconv"
)

// Number is the set of ordinate types a geometry may be parameterized
// over. Parsing a fractional literal into an integer Number fails at
// the offending token rather than truncating.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// parseNumber converts a numeric token into T. The token has already
// had any leading '+' stripped by the scanner.
func parseNumber[T Number](tok string) (T, error) {
	var zero T
	rv := reflect.ValueOf(&zero).Elem()
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(tok, rv.Type().Bits())
		if err != nil {
			return zero, fmt.Errorf("wkt: unable to parse %q as the desired number type: %w", tok, err)
		}
		rv.SetFloat(f)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(tok, 10, rv.Type().Bits())
		if err != nil {
			return zero, fmt.Errorf("wkt: unable to parse %q as the desired number type: %w", tok, err)
		}
		rv.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(tok, 10, rv.Type().Bits())
		if err != nil {
			return zero, fmt.Errorf("wkt: unable to parse %q as the desired number type: %w", tok, err)
		}
		rv.SetUint(u)
	default:
		return zero, fmt.Errorf("wkt: unsupported number kind %v", rv.Kind())
	}
	return zero, nil
}

// appendNumber formats n in the canonical output form: shortest
// round-trip decimal for floats, plain base-10 for integers.
func appendNumber[T Number](dst []byte, n T) []byte {
	rv := reflect.ValueOf(n)
	switch rv.Kind() {
	case reflect.Float32:
		return strconv.AppendFloat(dst, rv.Float(), 'f', -1, 32)
	case reflect.Float64:
		return strconv.AppendFloat(dst, rv.Float(), 'f', -1, 64)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.AppendInt(dst, rv.Int(), 10)
	default:
		return strconv.AppendUint(dst, rv.Uint(), 10)
	}
}

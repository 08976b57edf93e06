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

import "fmt"

// Dimension describes which ordinates a geometry carries beyond the
// mandatory X and Y.
type Dimension int

const (
	// XY is the default two-dimensional case.
	XY Dimension = iota
	// XYZ adds an elevation ordinate.
	XYZ
	// XYM adds a measure ordinate.
	XYM
	// XYZM adds both elevation and measure ordinates.
	XYZM
)

// HasZ reports whether the dimension includes an elevation ordinate.
func (d Dimension) HasZ() bool { return d == XYZ || d == XYZM }

// HasM reports whether the dimension includes a measure ordinate.
func (d Dimension) HasM() bool { return d == XYM || d == XYZM }

// Marker returns the tag suffix written after a geometry keyword:
// "" for XY, "Z", "M", or "ZM".
func (d Dimension) Marker() string {
	switch d {
	case XYZ:
		return "Z"
	case XYM:
		return "M"
	case XYZM:
		return "ZM"
	default:
		return ""
	}
}

func (d Dimension) String() string {
	switch d {
	case XY:
		return "XY"
	case XYZ:
		return "XYZ"
	case XYM:
		return "XYM"
	case XYZM:
		return "XYZM"
	default:
		return fmt.Sprintf("Dimension(%d)", int(d))
	}
}

// parseMarker maps an upper-cased dimension tag to its Dimension.
// The empty string means XY.
func parseMarker(s string) (Dimension, bool) {
	switch s {
	case "":
		return XY, true
	case "Z":
		return XYZ, true
	case "M":
		return XYM, true
	case "ZM":
		return XYZM, true
	default:
		return XY, false
	}
}

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

package wktutil

import (
	"fmt"
	"io"
	"io/ioutil"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/encoding/geojson"
	shpenc "github.com/ctessum/geom/encoding/shp"
	goshp "github.com/jonas-p/go-shp"
	"github.com/sirupsen/logrus"

	wkt "github.com/georust/wkt-sub000"
	"github.com/georust/wkt-sub000/geomconv"
)

// Convert parses input as WKT and writes it out in the requested
// format. With an empty output path the result goes to w; the shp
// format always requires an output path.
func Convert(w io.Writer, input, format, output string) error {
	logrus.WithFields(logrus.Fields{
		"format": format,
		"output": output,
	}).Debug("converting geometry")
	switch format {
	case "wkt":
		g, err := wkt.Parse[float64](input)
		if err != nil {
			return err
		}
		return writeOut(w, output, []byte(g.String()+"\n"))
	case "geojson":
		g, err := geomconv.Parse(input)
		if err != nil {
			return err
		}
		b, err := geojson.Encode(g)
		if err != nil {
			return err
		}
		return writeOut(w, output, append(b, '\n'))
	case "shp":
		if output == "" {
			return fmt.Errorf("wkt: the shp format requires an output file")
		}
		g, err := geomconv.Parse(input)
		if err != nil {
			return err
		}
		return writeShapefile(g, output)
	default:
		return fmt.Errorf("wkt: unknown format %q; choose wkt, geojson, or shp", format)
	}
}

func writeOut(w io.Writer, output string, b []byte) error {
	if output == "" {
		_, err := w.Write(b)
		return err
	}
	path, err := checkOutputPath(output)
	if err != nil {
		return err
	}
	return ioutil.WriteFile(path, b, 0644)
}

func writeShapefile(g geom.Geom, output string) error {
	path, err := checkOutputPath(output)
	if err != nil {
		return err
	}
	t, err := shapeType(g)
	if err != nil {
		return err
	}
	e, err := shpenc.NewEncoderFromFields(path, t)
	if err != nil {
		return err
	}
	defer e.Close()
	return e.EncodeFields(g)
}

// shapeType picks the shapefile record type for a geometry. The
// shapefile format has no collection record, so collections are
// refused.
func shapeType(g geom.Geom) (goshp.ShapeType, error) {
	switch g.(type) {
	case geom.Point:
		return goshp.POINT, nil
	case geom.MultiPoint:
		return goshp.MULTIPOINT, nil
	case geom.LineString, geom.MultiLineString:
		return goshp.POLYLINE, nil
	case geom.Polygon, geom.MultiPolygon:
		return goshp.POLYGON, nil
	default:
		return goshp.NULL, fmt.Errorf("wkt: cannot store %T in a shapefile", g)
	}
}

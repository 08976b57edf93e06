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

// Package geomconv converts between WKT geometry values and the
// in-memory model in github.com/ctessum/geom.
//
// The model is strictly two-dimensional and has no empty point, so
// the conversion is lossy-aware: geometries carrying Z or M ordinates
// are refused with a DimensionError, and a stand-alone empty point
// maps to an empty MultiPoint sentinel.
package geomconv

import (
	"errors"
	"fmt"

	"github.com/ctessum/geom"
	wkt "github.com/georust/wkt-sub000"
)

// ErrEmptyPoint is returned when a MultiPoint contains an EMPTY
// element, which the geometry model has no slot for.
var ErrEmptyPoint = errors.New("geomconv: the geometry model cannot represent an empty point inside a multipoint")

// DimensionError reports a geometry whose Z or M ordinates the 2-D
// geometry model would silently drop.
type DimensionError struct {
	Type wkt.GeometryType
	Dim  wkt.Dimension
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("geomconv: cannot convert %s with dimension %s to the 2-D geometry model", e.Type, e.Dim)
}

// ToGeom converts a WKT geometry value to the geometry model. A
// stand-alone empty point becomes an empty geom.MultiPoint.
func ToGeom(g wkt.Geometry[float64]) (geom.Geom, error) {
	if d := g.Dimension(); d != wkt.XY {
		return nil, &DimensionError{Type: g.Type(), Dim: d}
	}
	switch v := g.(type) {
	case wkt.Point[float64]:
		if v.Coord == nil {
			return geom.MultiPoint{}, nil
		}
		return geom.Point{X: v.Coord.X, Y: v.Coord.Y}, nil
	case wkt.LineString[float64]:
		return geom.LineString(coordsToPoints(v.Coords)), nil
	case wkt.Polygon[float64]:
		return geom.Polygon(ringsToPaths(v.Rings)), nil
	case wkt.MultiPoint[float64]:
		points := make(geom.MultiPoint, len(v.Points))
		for i, p := range v.Points {
			if p.Coord == nil {
				return nil, ErrEmptyPoint
			}
			points[i] = geom.Point{X: p.Coord.X, Y: p.Coord.Y}
		}
		return points, nil
	case wkt.MultiLineString[float64]:
		lines := make(geom.MultiLineString, len(v.Lines))
		for i, l := range v.Lines {
			lines[i] = geom.LineString(coordsToPoints(l.Coords))
		}
		return lines, nil
	case wkt.MultiPolygon[float64]:
		polygons := make(geom.MultiPolygon, len(v.Polygons))
		for i, p := range v.Polygons {
			polygons[i] = geom.Polygon(ringsToPaths(p.Rings))
		}
		return polygons, nil
	case wkt.GeometryCollection[float64]:
		collection := make(geom.GeometryCollection, len(v.Geometries))
		for i, child := range v.Geometries {
			converted, err := ToGeom(child)
			if err != nil {
				return nil, err
			}
			collection[i] = converted
		}
		return collection, nil
	default:
		return nil, fmt.Errorf("geomconv: unsupported geometry %T", g)
	}
}

// FromGeom converts a geometry model value to its WKT counterpart.
// The result is always two-dimensional. A *geom.Bounds becomes the
// closed five-point rectangle polygon.
func FromGeom(g geom.Geom) (wkt.Geometry[float64], error) {
	switch v := g.(type) {
	case geom.Point:
		return wkt.NewPoint(wkt.NewCoord(v.X, v.Y)), nil
	case geom.LineString:
		return wkt.LineString[float64]{Dim: wkt.XY, Coords: pointsToCoords(v)}, nil
	case geom.Polygon:
		return wkt.Polygon[float64]{Dim: wkt.XY, Rings: pathsToRings(v)}, nil
	case geom.MultiPoint:
		points := make([]wkt.Point[float64], len(v))
		for i, p := range v {
			points[i] = wkt.NewPoint(wkt.NewCoord(p.X, p.Y))
		}
		return wkt.MultiPoint[float64]{Dim: wkt.XY, Points: points}, nil
	case geom.MultiLineString:
		lines := make([]wkt.LineString[float64], len(v))
		for i, l := range v {
			lines[i] = wkt.LineString[float64]{Dim: wkt.XY, Coords: pointsToCoords(l)}
		}
		return wkt.MultiLineString[float64]{Dim: wkt.XY, Lines: lines}, nil
	case geom.MultiPolygon:
		polygons := make([]wkt.Polygon[float64], len(v))
		for i, p := range v {
			polygons[i] = wkt.Polygon[float64]{Dim: wkt.XY, Rings: pathsToRings(p)}
		}
		return wkt.MultiPolygon[float64]{Dim: wkt.XY, Polygons: polygons}, nil
	case geom.GeometryCollection:
		geoms := make([]wkt.Geometry[float64], len(v))
		for i, child := range v {
			converted, err := FromGeom(child)
			if err != nil {
				return nil, err
			}
			geoms[i] = converted
		}
		return wkt.GeometryCollection[float64]{Dim: wkt.XY, Geometries: geoms}, nil
	case *geom.Bounds:
		ring := wkt.NewLineString(
			wkt.NewCoord(v.Min.X, v.Min.Y),
			wkt.NewCoord(v.Max.X, v.Min.Y),
			wkt.NewCoord(v.Max.X, v.Max.Y),
			wkt.NewCoord(v.Min.X, v.Max.Y),
			wkt.NewCoord(v.Min.X, v.Min.Y),
		)
		return wkt.NewPolygon(ring), nil
	default:
		return nil, fmt.Errorf("geomconv: unsupported geometry model type %T", g)
	}
}

// Parse reads WKT text straight into the geometry model.
func Parse(s string) (geom.Geom, error) {
	g, err := wkt.Parse[float64](s)
	if err != nil {
		return nil, err
	}
	return ToGeom(g)
}

// String renders a geometry model value as canonical WKT text.
func String(g geom.Geom) (string, error) {
	v, err := FromGeom(g)
	if err != nil {
		return "", err
	}
	return v.String(), nil
}

func coordsToPoints(coords []wkt.Coord[float64]) []geom.Point {
	points := make([]geom.Point, len(coords))
	for i, c := range coords {
		points[i] = geom.Point{X: c.X, Y: c.Y}
	}
	return points
}

func pointsToCoords(points []geom.Point) []wkt.Coord[float64] {
	coords := make([]wkt.Coord[float64], len(points))
	for i, p := range points {
		coords[i] = wkt.NewCoord(p.X, p.Y)
	}
	return coords
}

func ringsToPaths(rings []wkt.LineString[float64]) []geom.Path {
	paths := make([]geom.Path, len(rings))
	for i, r := range rings {
		paths[i] = coordsToPoints(r.Coords)
	}
	return paths
}

func pathsToRings(paths []geom.Path) []wkt.LineString[float64] {
	rings := make([]wkt.LineString[float64], len(paths))
	for i, p := range paths {
		rings[i] = wkt.LineString[float64]{Dim: wkt.XY, Coords: pointsToCoords(p)}
	}
	return rings
}

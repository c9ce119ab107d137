// Copyright 2026 The planar Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS-IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package hull

import (
	"github.com/twpayne/go-geom/xy/orientation"

	"github.com/akhenakh/planar/r2"
)

// ContainsPoints reports whether every point lies inside or on the boundary
// of the convex polygon hull, whose vertices are in counter-clockwise order
// as returned by Build. A point counts as on the boundary if it is within
// tolerance of it. A tolerance of 0 selects an exact test.
//
// Hulls of one or two vertices are treated as a point or a segment.
func ContainsPoints(hull, points []r2.Point, tolerance float64) bool {
	if len(points) == 0 {
		return true
	}
	if len(hull) == 0 {
		return false
	}

	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.X
		ys[i] = p.Y
	}

	// Points beyond the hull's bound are outside whatever its shape.
	if !r2.RectFromPoints(hull).Expanded(tolerance).ContainsRect(r2.RectFromCoords(xs, ys)) {
		return false
	}

	if tolerance == 0 {
		return containsExact(hull, points)
	}
	if len(hull) <= 2 {
		return segmentContains(hull[0], hull[len(hull)-1], points, xs, ys, tolerance)
	}
	for i, a := range hull {
		d := hull[(i+1)%len(hull)].Sub(a)
		if BaseMinEdgeOrientation(a.X, a.Y, d.X, d.Y, xs, ys) < -tolerance*d.Norm() {
			return false
		}
	}
	return true
}

// containsExact is ContainsPoints with no tolerance. The caller has already
// checked that points lie within the hull's bound, which settles the point
// and segment cases once every point is on the segment's line.
func containsExact(hull, points []r2.Point) bool {
	if len(hull) <= 2 {
		a, b := hull[0], hull[len(hull)-1]
		for _, p := range points {
			if orient(a, b, p) != orientation.Collinear {
				return false
			}
		}
		return true
	}
	for i, a := range hull {
		b := hull[(i+1)%len(hull)]
		for _, p := range points {
			if orient(a, b, p) == orientation.Clockwise {
				return false
			}
		}
	}
	return true
}

func segmentContains(a, b r2.Point, points []r2.Point, xs, ys []float64, tolerance float64) bool {
	d := b.Sub(a)
	length := d.Norm()
	if length == 0 {
		for _, p := range points {
			if p.Sub(a).Norm() > tolerance {
				return false
			}
		}
		return true
	}

	// Both sides of the line must be empty.
	if BaseMinEdgeOrientation(a.X, a.Y, d.X, d.Y, xs, ys) < -tolerance*length {
		return false
	}
	if BaseMinEdgeOrientation(b.X, b.Y, -d.X, -d.Y, xs, ys) < -tolerance*length {
		return false
	}

	// Projections must fall between the endpoints.
	for _, p := range points {
		t := p.Sub(a).Dot(d)
		if t < -tolerance*length || t > length*length+tolerance*length {
			return false
		}
	}
	return true
}

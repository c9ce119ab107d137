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

package r2

// Rect is an axis-aligned rectangle. A Rect with Lo greater than Hi in
// either coordinate is empty.
type Rect struct {
	Lo, Hi Point
}

// EmptyRect returns the empty rectangle.
func EmptyRect() Rect {
	return Rect{Lo: Point{1, 1}, Hi: Point{0, 0}}
}

// IsEmpty reports whether the rectangle contains no points.
func (r Rect) IsEmpty() bool {
	return r.Lo.X > r.Hi.X || r.Lo.Y > r.Hi.Y
}

// ContainsPoint reports whether the rectangle contains p, boundary included.
func (r Rect) ContainsPoint(p Point) bool {
	return r.Lo.X <= p.X && p.X <= r.Hi.X && r.Lo.Y <= p.Y && p.Y <= r.Hi.Y
}

// Size returns the width and height of the rectangle as a Point.
func (r Rect) Size() Point {
	if r.IsEmpty() {
		return Point{}
	}
	return r.Hi.Sub(r.Lo)
}

// ContainsRect reports whether o lies within r, boundary included. The empty
// rectangle is contained in every rectangle.
func (r Rect) ContainsRect(o Rect) bool {
	if o.IsEmpty() {
		return true
	}
	return r.Lo.X <= o.Lo.X && o.Hi.X <= r.Hi.X && r.Lo.Y <= o.Lo.Y && o.Hi.Y <= r.Hi.Y
}

// Expanded returns r grown by margin on every side. The empty rectangle
// stays empty.
func (r Rect) Expanded(margin float64) Rect {
	if r.IsEmpty() {
		return r
	}
	return Rect{
		Lo: Point{r.Lo.X - margin, r.Lo.Y - margin},
		Hi: Point{r.Hi.X + margin, r.Hi.Y + margin},
	}
}

// RectFromCoords returns the smallest rectangle containing the points whose
// coordinates are xs[i], ys[i].
func RectFromCoords(xs, ys []float64) Rect {
	loX, hiX, loY, hiY := BaseBounds(xs, ys)
	return Rect{Lo: Point{loX, loY}, Hi: Point{hiX, hiY}}
}

// RectFromPoints returns the smallest rectangle containing all of pts.
func RectFromPoints(pts []Point) Rect {
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	for i, p := range pts {
		xs[i] = p.X
		ys[i] = p.Y
	}
	return RectFromCoords(xs, ys)
}

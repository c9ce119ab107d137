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

import (
	"testing"
)

func TestRectFromPoints(t *testing.T) {
	if r := RectFromPoints(nil); !r.IsEmpty() {
		t.Errorf("RectFromPoints(nil) = %v, want empty", r)
	}

	// Enough points to cover both the full-vector and the tail path.
	var pts []Point
	for i := range 37 {
		pts = append(pts, Point{float64(i%7) - 3, float64(i) * 0.5})
	}
	pts = append(pts, Point{-10, 2}, Point{1, 40})

	got := RectFromPoints(pts)
	want := Rect{Lo: Point{-10, 0}, Hi: Point{3, 40}}
	if got != want {
		t.Errorf("RectFromPoints = %v, want %v", got, want)
	}
	for _, p := range pts {
		if !got.ContainsPoint(p) {
			t.Errorf("%v does not contain %v", got, p)
		}
	}
	if size := got.Size(); size != (Point{13, 40}) {
		t.Errorf("Size() = %v, want (13, 40)", size)
	}
}

func TestRectFromSinglePoint(t *testing.T) {
	p := Point{2.5, -1}
	r := RectFromPoints([]Point{p})
	if r.Lo != p || r.Hi != p {
		t.Errorf("RectFromPoints(%v) = %v, want degenerate rect at the point", p, r)
	}
}

func TestRectFromCoords(t *testing.T) {
	if r := RectFromCoords(nil, nil); !r.IsEmpty() {
		t.Errorf("RectFromCoords(nil, nil) = %v, want empty", r)
	}

	xs := []float64{3, -1, 4, 1, 5, -9, 2, 6, 5}
	ys := []float64{2, 7, 1, 8, 2, 8, 1, 8, 2, 8, -100}
	want := Rect{Lo: Point{-9, 1}, Hi: Point{6, 8}}
	if got := RectFromCoords(xs, ys); got != want {
		t.Errorf("RectFromCoords = %v, want %v (extra ys ignored)", got, want)
	}
}

func TestRectContainsRect(t *testing.T) {
	r := Rect{Lo: Point{0, 0}, Hi: Point{4, 4}}
	tests := []struct {
		o    Rect
		want bool
	}{
		{r, true},
		{Rect{Lo: Point{1, 1}, Hi: Point{2, 3}}, true},
		{Rect{Lo: Point{1, 1}, Hi: Point{5, 3}}, false},
		{Rect{Lo: Point{-1, 1}, Hi: Point{2, 3}}, false},
		{EmptyRect(), true},
	}
	for _, test := range tests {
		if got := r.ContainsRect(test.o); got != test.want {
			t.Errorf("%v.ContainsRect(%v) = %v, want %v", r, test.o, got, test.want)
		}
	}
	if EmptyRect().ContainsRect(r) {
		t.Errorf("empty rect contains %v", r)
	}
}

func TestRectExpanded(t *testing.T) {
	r := Rect{Lo: Point{0, 1}, Hi: Point{2, 3}}
	if got, want := r.Expanded(0.5), (Rect{Lo: Point{-0.5, 0.5}, Hi: Point{2.5, 3.5}}); got != want {
		t.Errorf("%v.Expanded(0.5) = %v, want %v", r, got, want)
	}
	if got := EmptyRect().Expanded(10); !got.IsEmpty() {
		t.Errorf("EmptyRect().Expanded(10) = %v, want empty", got)
	}
}

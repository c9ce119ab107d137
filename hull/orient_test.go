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
	"math"
	"testing"

	"github.com/twpayne/go-geom/xy/orientation"

	"github.com/akhenakh/planar/r2"
)

func TestOrient(t *testing.T) {
	// Near-collinear triples on the diagonal whose float64 cross product
	// rounds to zero or to the wrong sign.
	nearO := r2.Point{0.5, 0.5 + 0x1p-53}
	flipO := r2.Point{0.5 + 16*0x1p-53, 0.5 + 17*0x1p-53}
	far := r2.Point{24.00000000000005, 24.00000000000005}

	tests := []struct {
		name    string
		o, a, p r2.Point
		want    orientation.Type
	}{
		{"left", r2.Point{0, 0}, r2.Point{1, 0}, r2.Point{0, 1}, orientation.CounterClockwise},
		{"right", r2.Point{0, 0}, r2.Point{1, 0}, r2.Point{0, -1}, orientation.Clockwise},
		{"on the line", r2.Point{0, 0}, r2.Point{1, 1}, r2.Point{3, 3}, orientation.Collinear},
		{"behind on the line", r2.Point{0, 0}, r2.Point{1, 1}, r2.Point{-2, -2}, orientation.Collinear},
		{"coincident", r2.Point{1, 2}, r2.Point{1, 2}, r2.Point{5, 7}, orientation.Collinear},
		{"rounds to zero", nearO, r2.Point{12, 12}, r2.Point{24, 24}, orientation.CounterClockwise},
		{"rounds to zero reversed", nearO, r2.Point{24, 24}, r2.Point{12, 12}, orientation.Clockwise},
		{"rounds to wrong sign", flipO, r2.Point{17.3, 17.3}, far, orientation.CounterClockwise},
		{"rounds to wrong sign reversed", flipO, far, r2.Point{17.3, 17.3}, orientation.Clockwise},
		{"tiny coordinates", r2.Point{0, 0}, r2.Point{0x1p-600, 0x1p-600}, r2.Point{0x1p-600, 0x1p-599}, orientation.CounterClockwise},
		{"nan", r2.Point{math.NaN(), 0}, r2.Point{1, 0}, r2.Point{0, 1}, orientation.Collinear},
	}
	for _, test := range tests {
		if got := orient(test.o, test.a, test.p); got != test.want {
			t.Errorf("%s: orient(%v, %v, %v) = %v, want %v", test.name, test.o, test.a, test.p, got, test.want)
		}
	}
}

func TestOrientMatchesExact(t *testing.T) {
	var pts []r2.Point
	for i := range 6 {
		for j := range 6 {
			pts = append(pts, r2.Point{0.5 + float64(i)*0x1p-53, 0.5 + float64(j)*0x1p-53})
		}
	}
	pts = append(pts, r2.Point{12, 12}, r2.Point{17.3, 17.3}, r2.Point{24, 24}, r2.Point{24.00000000000005, 24.00000000000005})

	for _, o := range pts {
		for _, a := range pts[len(pts)-4:] {
			for _, p := range pts {
				if got, want := orient(o, a, p), exactOrient(o, a, p); got != want {
					t.Errorf("orient(%v, %v, %v) = %v, exact %v", o, a, p, got, want)
				}
			}
		}
	}
}

func TestFarther(t *testing.T) {
	o := r2.Point{1, 1}
	tests := []struct {
		a, b r2.Point
		want bool
	}{
		{r2.Point{3, 3}, r2.Point{2, 2}, true},
		{r2.Point{2, 2}, r2.Point{3, 3}, false},
		{r2.Point{-3, -3}, r2.Point{-1, -1}, true},
		{r2.Point{1, 5}, r2.Point{1, 3}, true},
		{r2.Point{1, -5}, r2.Point{1, -3}, true},
		{r2.Point{1, -3}, r2.Point{1, -5}, false},
		{r2.Point{2, 2}, r2.Point{2, 2}, false},
	}
	for _, test := range tests {
		if got := farther(o, test.a, test.b); got != test.want {
			t.Errorf("farther(%v, %v, %v) = %v, want %v", o, test.a, test.b, got, test.want)
		}
	}
}

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
	"testing"

	"github.com/akhenakh/planar/r2"
)

func TestContainsPoints(t *testing.T) {
	square := []r2.Point{{0, 0}, {4, 0}, {4, 4}, {0, 4}}
	// Enough points to exercise both the vector and the tail path.
	var grid []r2.Point
	for x := 0; x <= 4; x++ {
		for y := 0; y <= 4; y++ {
			grid = append(grid, r2.Point{X: float64(x), Y: float64(y)})
		}
	}

	diagonal := []r2.Point{{0.5, 0.5}, {24, 24}, {0.5, 24}}
	// The first edge starts one ulp above the diagonal, so (12, 12) is just
	// to its right although the float64 cross product is zero.
	nearDiagonal := []r2.Point{{0.5, 0.5 + 0x1p-53}, {24, 24}, {0.5, 24}}

	tests := []struct {
		name      string
		hull      []r2.Point
		points    []r2.Point
		tolerance float64
		want      bool
	}{
		{"no points", nil, nil, 0, true},
		{"empty hull", nil, []r2.Point{{0, 0}}, 0, false},
		{"grid inside square", square, grid, 0, true},
		{"point outside square", square, append(grid, r2.Point{5, 2}), 0, false},
		{"point just outside within tolerance", square, []r2.Point{{4.0000001, 2}}, 1e-6, true},
		{"point just outside beyond tolerance", square, []r2.Point{{4.0000001, 2}}, 1e-9, false},
		{"clockwise hull rejects interior", []r2.Point{{0, 0}, {0, 4}, {4, 4}, {4, 0}}, []r2.Point{{2, 2}}, 0, false},
		{"single vertex", []r2.Point{{1, 1}}, []r2.Point{{1, 1}}, 0, true},
		{"single vertex miss", []r2.Point{{1, 1}}, []r2.Point{{1, 2}}, 0, false},
		{"segment", []r2.Point{{0, 0}, {2, 0}}, []r2.Point{{0, 0}, {1, 0}, {2, 0}}, 0, true},
		{"segment beyond end", []r2.Point{{0, 0}, {2, 0}}, []r2.Point{{3, 0}}, 0, false},
		{"segment off line", []r2.Point{{0, 0}, {2, 0}}, []r2.Point{{1, 0.5}}, 0, false},
		{"segment below line", []r2.Point{{0, 0}, {2, 0}}, []r2.Point{{1, -0.5}}, 0, false},
		{"on a diagonal edge", diagonal, []r2.Point{{12, 12}, {17.3, 17.3}}, 0, true},
		{"one ulp right of a diagonal edge", nearDiagonal, []r2.Point{{12, 12}}, 0, false},
		{"outside the bound", square, []r2.Point{{2, -1e-300}}, 0, false},
		{"segment exactly", []r2.Point{{0.1, 0.2}, {0.7, 1.4}}, []r2.Point{{0.4, 0.8}}, 0, true},
	}
	for _, test := range tests {
		if got := ContainsPoints(test.hull, test.points, test.tolerance); got != test.want {
			t.Errorf("%s: ContainsPoints = %v, want %v", test.name, got, test.want)
		}
	}
}

func TestBaseMinEdgeOrientation(t *testing.T) {
	if got := BaseMinEdgeOrientation(0, 0, 1, 0, nil, nil); got <= 0 {
		t.Errorf("empty set minimum = %v, want +Inf", got)
	}

	var xs, ys []float64
	for i := range 19 {
		xs = append(xs, float64(i))
		ys = append(ys, float64(i%5))
	}
	// Edge along +x through the origin: the cross product is the y value.
	if got := BaseMinEdgeOrientation(0, 0, 1, 0, xs, ys); got != 0 {
		t.Errorf("minimum over non-negative ys = %v, want 0", got)
	}
	ys[17] = -3
	if got := BaseMinEdgeOrientation(0, 0, 1, 0, xs, ys); got != -3 {
		t.Errorf("minimum with ys[17] = -3 is %v, want -3", got)
	}
	// Reversed edge flips the sign: the largest y is 4.
	if got := BaseMinEdgeOrientation(0, 0, -1, 0, xs, ys); got != -4 {
		t.Errorf("minimum against reversed edge = %v, want -4", got)
	}
}

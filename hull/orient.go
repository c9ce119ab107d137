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
	"math/big"

	"github.com/twpayne/go-geom/xy/orientation"

	"github.com/akhenakh/planar/r2"
)

// orientErrBound bounds the relative error of the float64 determinant in
// orient. Results beyond it have the correct sign; the rest are settled
// exactly.
const orientErrBound = 1e-15

// minOrientBound keeps the float64 shortcut away from subnormal products,
// whose error is not relative.
const minOrientBound = 0x1p-1000

// orient returns the side of the directed line from o through a on which p
// lies: CounterClockwise for the left, Clockwise for the right and Collinear
// when p is on the line. The result is exact for finite coordinates.
func orient(o, a, p r2.Point) orientation.Type {
	detLeft := (a.X - o.X) * (p.Y - o.Y)
	detRight := (a.Y - o.Y) * (p.X - o.X)
	det := detLeft - detRight

	if !finite(o, a, p) {
		return orientationOf(det)
	}
	bound := orientErrBound * (math.Abs(detLeft) + math.Abs(detRight))
	if bound >= minOrientBound && (det > bound || -det > bound) {
		return orientationOf(det)
	}
	return exactOrient(o, a, p)
}

// exactOrient evaluates the determinant in rational arithmetic. Every
// finite float64 is a rational number, so no rounding takes place.
func exactOrient(o, a, p r2.Point) orientation.Type {
	rat := func(f float64) *big.Rat { return new(big.Rat).SetFloat64(f) }

	ax := new(big.Rat).Sub(rat(a.X), rat(o.X))
	ay := new(big.Rat).Sub(rat(a.Y), rat(o.Y))
	px := new(big.Rat).Sub(rat(p.X), rat(o.X))
	py := new(big.Rat).Sub(rat(p.Y), rat(o.Y))

	det := new(big.Rat).Sub(ax.Mul(ax, py), ay.Mul(ay, px))
	return orientation.Type(det.Sign())
}

// orientationOf maps the sign of a determinant to an orientation. NaN is
// Collinear.
func orientationOf(det float64) orientation.Type {
	switch {
	case det > 0:
		return orientation.CounterClockwise
	case det < 0:
		return orientation.Clockwise
	}
	return orientation.Collinear
}

func finite(pts ...r2.Point) bool {
	for _, p := range pts {
		if math.IsInf(p.X, 0) || math.IsNaN(p.X) || math.IsInf(p.Y, 0) || math.IsNaN(p.Y) {
			return false
		}
	}
	return true
}

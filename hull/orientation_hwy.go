package hull

//go:generate hwygen -input $GOFILE -output . -targets avx2,fallback

import (
	"math"

	"github.com/ajroetker/go-highway/hwy"
)

// BaseMinEdgeOrientation returns the smallest cross product
// dx*(y-ay) - dy*(x-ax) over a set of points stored in SoA layout. That is
// the orientation of every point against the directed edge starting at
// (ax, ay) with direction (dx, dy): a negative minimum means some point lies
// strictly to the right of the edge. Returns +Inf for an empty set.
//
// The result is rounded; ContainsPoints only uses it with a tolerance.
func BaseMinEdgeOrientation(ax, ay, dx, dy float64, xs, ys []float64) float64 {
	size := min(len(xs), len(ys))
	if size == 0 {
		return math.Inf(1)
	}

	vAx := hwy.Set(ax)
	vAy := hwy.Set(ay)
	vDx := hwy.Set(dx)
	vDy := hwy.Set(dy)

	// Seed with a real point so padded lanes never win the minimum.
	vMin := hwy.Set(dx*(ys[0]-ay) - dy*(xs[0]-ax))

	hwy.ProcessWithTail[float64](size,
		func(offset int) {
			px := hwy.Sub(hwy.Load(xs[offset:]), vAx)
			py := hwy.Sub(hwy.Load(ys[offset:]), vAy)

			cross := hwy.Sub(hwy.Mul(vDx, py), hwy.Mul(vDy, px))
			vMin = hwy.Min(vMin, cross)
		},
		func(offset, count int) {
			mask := hwy.TailMask[float64](count)
			px := hwy.Sub(hwy.MaskLoad(mask, xs[offset:]), vAx)
			py := hwy.Sub(hwy.MaskLoad(mask, ys[offset:]), vAy)

			cross := hwy.Sub(hwy.Mul(vDx, py), hwy.Mul(vDy, px))
			vMin = hwy.Min(vMin, hwy.IfThenElse(mask, cross, vMin))
		},
	)

	return hwy.ReduceMin(vMin)
}

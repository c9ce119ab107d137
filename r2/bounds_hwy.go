package r2

//go:generate hwygen -input $GOFILE -output . -targets avx2,fallback

import (
	"github.com/ajroetker/go-highway/hwy"
)

// BaseBounds returns the extremes of paired coordinate slices in a single
// pass. Only the first min(len(xs), len(ys)) pairs are read; with none the
// result is an empty range on both axes.
func BaseBounds(xs, ys []float64) (loX, hiX, loY, hiY float64) {
	size := min(len(xs), len(ys))
	if size == 0 {
		return 1, 0, 1, 0
	}

	// Start from the first pair so lanes never hold a value outside the data.
	xLo, xHi := hwy.Set(xs[0]), hwy.Set(xs[0])
	yLo, yHi := hwy.Set(ys[0]), hwy.Set(ys[0])

	hwy.ProcessWithTail[float64](size,
		func(offset int) {
			x := hwy.Load(xs[offset:])
			y := hwy.Load(ys[offset:])
			xLo, xHi = hwy.Min(xLo, x), hwy.Max(xHi, x)
			yLo, yHi = hwy.Min(yLo, y), hwy.Max(yHi, y)
		},
		func(offset, count int) {
			mask := hwy.TailMask[float64](count)
			x := hwy.MaskLoad(mask, xs[offset:])
			y := hwy.MaskLoad(mask, ys[offset:])

			// Padded lanes repeat the running bound.
			xLo = hwy.Min(xLo, hwy.IfThenElse(mask, x, xLo))
			xHi = hwy.Max(xHi, hwy.IfThenElse(mask, x, xHi))
			yLo = hwy.Min(yLo, hwy.IfThenElse(mask, y, yLo))
			yHi = hwy.Max(yHi, hwy.IfThenElse(mask, y, yHi))
		},
	)

	return hwy.ReduceMin(xLo), hwy.ReduceMax(xHi), hwy.ReduceMin(yLo), hwy.ReduceMax(yHi)
}

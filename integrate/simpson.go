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

// Package integrate evaluates double integrals over rectangles with the
// composite Simpson rule, sequentially or split across a worker pool.
package integrate

import (
	"errors"
	"fmt"

	"github.com/akhenakh/planar/internal/parallel"
)

// Func is an integrand of two variables.
type Func func(x, y float64) float64

// Region is the rectangle [A, B] × [C, D]; x ranges over [A, B] and y over
// [C, D].
type Region struct {
	A, B, C, D float64
}

// ErrInvalidSteps is returned for a step count below one.
var ErrInvalidSteps = errors.New("integrate: steps must be positive")

// Simpson returns the unscaled one-dimensional Simpson sum of f over [a, b]
// at the fixed ordinate y: f(a) + 4f((a+b)/2) + f(b).
func Simpson(f Func, a, b, y float64) float64 {
	return f(a, y) + 4*f((a+b)/2, y) + f(b, y)
}

// grid is the shared step geometry of one integration.
type grid struct {
	f      Func
	r      Region
	steps  int
	hx, hy float64
}

func newGrid(f Func, r Region, steps int) (grid, error) {
	if steps < 1 {
		return grid{}, fmt.Errorf("%w: got %d", ErrInvalidSteps, steps)
	}
	return grid{
		f:     f,
		r:     r,
		steps: steps,
		hx:    (r.B - r.A) / float64(steps),
		hy:    (r.D - r.C) / float64(steps),
	}, nil
}

// rows sums the cells of rows [lo, hi). Each cell applies Simpson's rule in
// both directions.
func (g grid) rows(lo, hi int) float64 {
	var sum float64
	w := g.hx * g.hy / 36
	for i := lo; i < hi; i++ {
		y1 := g.r.C + float64(i)*g.hy
		y2 := g.r.C + float64(i+1)*g.hy
		for j := 0; j < g.steps; j++ {
			x1 := g.r.A + float64(j)*g.hx
			x2 := g.r.A + float64(j+1)*g.hx
			sum += w * (Simpson(g.f, x1, x2, y1) + 4*Simpson(g.f, x1, x2, (y1+y2)/2) + Simpson(g.f, x1, x2, y2))
		}
	}
	return sum
}

// SimpsonSeq integrates f over r on a steps × steps grid.
func SimpsonSeq(f Func, r Region, steps int) (float64, error) {
	g, err := newGrid(f, r, steps)
	if err != nil {
		return 0, err
	}
	return g.rows(0, steps), nil
}

// SimpsonParallel integrates f over r on a steps × steps grid, splitting the
// rows across workers goroutines (GOMAXPROCS if workers is zero or less).
// The pool is released before returning.
//
// Partial sums are added in partition order, so the result is repeatable
// for a fixed worker count but may differ from SimpsonSeq, or from another
// worker count, in the last bits.
func SimpsonParallel(f Func, r Region, steps, workers int) (float64, error) {
	g, err := newGrid(f, r, steps)
	if err != nil {
		return 0, err
	}
	pool := parallel.NewWorkerPool(workers)
	defer pool.Close()

	return parallel.Reduce(pool, steps, 0.0, g.rows, func(acc, next float64) float64 {
		return acc + next
	}), nil
}

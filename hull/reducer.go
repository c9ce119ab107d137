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

	"github.com/twpayne/go-geom/xy/orientation"

	"github.com/akhenakh/planar/internal/parallel"
	"github.com/akhenakh/planar/r2"
)

// candidate is one worker's best next vertex. The zero value means no
// candidate has been seen.
type candidate struct {
	p   r2.Point
	key float64 // FirstAngle ranking key; larger wins
	ok  bool
}

// reducer selects the next hull vertex. It holds no state between calls
// besides the pool it runs on.
type reducer struct {
	pool   *parallel.WorkerPool
	policy TiePolicy
}

// next returns the point such that every other point lies on or to the left
// of the directed line from current to it. dir is the direction of the edge
// that arrived at current. If every point equals current, points[0] is
// returned; points must not be empty.
func (r *reducer) next(current, dir r2.Point, points []r2.Point) r2.Point {
	pick := func(acc, next candidate) candidate {
		return r.pick(current, acc, next)
	}
	best := parallel.Reduce(r.pool, len(points), candidate{},
		func(lo, hi int) candidate {
			var local candidate
			for _, p := range points[lo:hi] {
				if p == current {
					continue
				}
				local = pick(local, r.score(current, dir, p))
			}
			return local
		},
		pick)
	if !best.ok {
		return points[0]
	}
	return best.p
}

func (r *reducer) score(current, dir, p r2.Point) candidate {
	c := candidate{p: p, ok: true}
	if r.policy == FirstAngle {
		c.key = -turningAngle(dir, p.Sub(current))
	}
	return c
}

// pick returns the better of acc and next. On a tie acc is kept, so the
// earlier candidate in partition order survives.
func (r *reducer) pick(current r2.Point, acc, next candidate) candidate {
	switch {
	case !next.ok:
		return acc
	case !acc.ok:
		return next
	case r.better(current, next, acc):
		return next
	}
	return acc
}

// better reports whether a is strictly preferable to b as the vertex after
// current.
func (r *reducer) better(current r2.Point, a, b candidate) bool {
	if r.policy == FirstAngle {
		return a.key > b.key
	}
	// a wins when b lies to the left of the line towards a. Both points lie
	// in a cone narrower than a half-turn around the current vertex, so
	// collinear means the same ray.
	switch orient(current, a.p, b.p) {
	case orientation.CounterClockwise:
		return true
	case orientation.Clockwise:
		return false
	}
	return farther(current, a.p, b.p)
}

// farther reports whether a is farther from o than b, given that both lie on
// the same ray from o. Comparing coordinates avoids rounding in the
// distances.
func farther(o, a, b r2.Point) bool {
	if a.X != b.X {
		return (a.X > b.X) == (a.X > o.X)
	}
	if a.Y != b.Y {
		return (a.Y > b.Y) == (a.Y > o.Y)
	}
	return false
}

// turningAngle returns the counter-clockwise angle from dir to v. Valid
// candidates lie in [0, π]; the result is folded into [-π/2, 3π/2) so that
// rounding noise around 0 and ±π keeps its meaning.
func turningAngle(dir, v r2.Point) float64 {
	t := math.Atan2(dir.Cross(v), dir.Dot(v))
	if t < -math.Pi/2 {
		t += 2 * math.Pi
	}
	return t
}

// ExtremePoint returns the hull vertex that follows current when walking
// counter-clockwise around points. dir is the direction of the edge that
// arrived at current; use (0, -1) for the lexicographically smallest point.
// points may include current itself. If every point equals current the
// first point is returned.
//
// The scan runs on a worker pool created for this call and released before
// it returns. ExtremePoint panics if points is empty.
func ExtremePoint(current, dir r2.Point, points []r2.Point, opts *Options) r2.Point {
	if len(points) == 0 {
		panic("hull: ExtremePoint of empty point set")
	}
	if opts == nil {
		def := DefaultOptions()
		opts = &def
	}
	pool := parallel.NewWorkerPool(opts.Parallelism)
	defer pool.Close()

	r := reducer{pool: pool, policy: opts.TiePolicy}
	return r.next(current, dir, points)
}

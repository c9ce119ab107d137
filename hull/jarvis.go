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
	"fmt"

	"github.com/akhenakh/planar"
	"github.com/akhenakh/planar/internal/parallel"
	"github.com/akhenakh/planar/r2"
)

// state is the phase of one hull walk.
type state int

const (
	seeding state = iota
	advancing
	closed
)

func (s state) String() string {
	switch s {
	case seeding:
		return "seeding"
	case advancing:
		return "advancing"
	case closed:
		return "closed"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// seedDirection is the incoming direction assumed at the seed. Nothing lies
// below the lexicographically smallest point on its own vertical, so every
// other point turns counter-clockwise from it by an angle in (0, π].
var seedDirection = r2.Point{X: 0, Y: -1}

// Builder computes convex hulls with a fixed set of options.
type Builder struct {
	opts Options
}

// NewBuilder returns a Builder. A nil opts selects DefaultOptions.
func NewBuilder(opts *Options) *Builder {
	if opts == nil {
		def := DefaultOptions()
		opts = &def
	}
	return &Builder{opts: *opts}
}

// Options returns the builder's options.
func (b *Builder) Options() Options {
	return b.opts
}

// Build returns the vertices of the convex hull of points in
// counter-clockwise order, starting at the lexicographically smallest
// point. The seed is not repeated at the end.
//
// Sets of fewer than three points are returned unchanged, as the same
// slice. Points are expected to be distinct; the task adapter enforces
// that. Build returns an error wrapping ErrHullNotClosed if the walk does
// not return to the seed within len(points) steps.
func (b *Builder) Build(points []r2.Point) ([]r2.Point, error) {
	return b.build(points, len(points))
}

func (b *Builder) build(points []r2.Point, maxSteps int) ([]r2.Point, error) {
	if len(points) < 3 {
		return points, nil
	}

	logger := planar.Logger()
	pool := parallel.NewWorkerPool(b.opts.Parallelism)
	defer pool.Close()
	r := reducer{pool: pool, policy: b.opts.TiePolicy}

	var (
		st   = seeding
		seed r2.Point
		dir  r2.Point
		hull []r2.Point
	)
	for step := 0; st != closed; {
		switch st {
		case seeding:
			seed, _ = r2.MinPoint(points)
			hull = append(hull, seed)
			dir = seedDirection
			st = advancing

		case advancing:
			if step == maxSteps {
				logger.Warn("hull: walk did not close", "points", len(points), "steps", step, "vertices", len(hull))
				return nil, fmt.Errorf("%w: %d steps over %d points left %d vertices", ErrHullNotClosed, step, len(points), len(hull))
			}
			step++

			current := hull[len(hull)-1]
			next := r.next(current, dir, points)
			if next == seed && len(hull) > 1 {
				st = closed
				break
			}
			logger.Debug("hull: vertex", "index", len(hull), "point", next)
			hull = append(hull, next)
			dir = next.Sub(current)
		}
	}

	logger.Debug("hull: closed", "points", len(points), "vertices", len(hull), "policy", b.opts.TiePolicy, "workers", pool.Workers())
	return hull, nil
}

// Build computes the convex hull of points with the given options. A nil
// opts selects DefaultOptions. See Builder.Build.
func Build(points []r2.Point, opts *Options) ([]r2.Point, error) {
	return NewBuilder(opts).Build(points)
}

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

// Package r2 implements types and functions for working with geometry in ℝ².
package r2

import (
	"fmt"
	"math"
	"slices"
)

// Point represents a point in ℝ². Points are compared exactly: two points
// are equal only if both coordinates are identical floating-point values.
type Point struct {
	X, Y float64
}

// Add returns the sum of p and op.
func (p Point) Add(op Point) Point { return Point{p.X + op.X, p.Y + op.Y} }

// Sub returns the difference of p and op.
func (p Point) Sub(op Point) Point { return Point{p.X - op.X, p.Y - op.Y} }

// Mul returns the scalar product of p and m.
func (p Point) Mul(m float64) Point { return Point{m * p.X, m * p.Y} }

// Dot returns the dot product between p and op.
func (p Point) Dot(op Point) float64 { return p.X*op.X + p.Y*op.Y }

// Cross returns the cross product of p and op. It is positive when op lies
// counter-clockwise of p.
func (p Point) Cross(op Point) float64 { return p.X*op.Y - p.Y*op.X }

// Norm2 returns the squared Euclidean norm of p.
func (p Point) Norm2() float64 { return p.Dot(p) }

// Norm returns the Euclidean norm of p.
func (p Point) Norm() float64 { return math.Hypot(p.X, p.Y) }

// Angle returns the polar angle of p in (-π, π].
func (p Point) Angle() float64 { return math.Atan2(p.Y, p.X) }

// Equal reports whether p and op have the same coordinates under exact
// floating-point equality: -0 equals +0 and a NaN coordinate equals nothing.
func (p Point) Equal(op Point) bool { return p == op }

// Cmp orders points lexicographically: by X first, then by Y. It returns
// -1, 0 or +1.
func (p Point) Cmp(op Point) int {
	switch {
	case p.X < op.X:
		return -1
	case p.X > op.X:
		return 1
	case p.Y < op.Y:
		return -1
	case p.Y > op.Y:
		return 1
	}
	return 0
}

// Less reports whether p sorts before op in the lexicographic order.
func (p Point) Less(op Point) bool { return p.Cmp(op) < 0 }

func (p Point) String() string { return fmt.Sprintf("(%.12f, %.12f)", p.X, p.Y) }

// MinPoint returns the lexicographically smallest point of pts. The second
// result is false when pts is empty.
func MinPoint(pts []Point) (Point, bool) {
	if len(pts) == 0 {
		return Point{}, false
	}
	m := pts[0]
	for _, p := range pts[1:] {
		if p.Less(m) {
			m = p
		}
	}
	return m, true
}

// SortPoints sorts pts in place in lexicographic order.
func SortPoints(pts []Point) {
	slices.SortFunc(pts, Point.Cmp)
}

// HasDuplicates reports whether two adjacent elements of sorted are equal.
// The input must already be sorted with SortPoints for this to detect every
// duplicate.
func HasDuplicates(sorted []Point) bool {
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			return true
		}
	}
	return false
}

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

import "fmt"

// TiePolicy selects how the reducer ranks candidates and how it breaks ties
// between candidates lying on the same ray from the current vertex.
type TiePolicy int

const (
	// Farthest ranks candidates by their exact orientation relative to each
	// other and prefers the farthest of collinear candidates. No input point
	// lies strictly outside the resulting hull, and the combine step is
	// associative, so the hull is the same for every parallelism degree.
	Farthest TiePolicy = iota

	// FirstAngle ranks candidates by a scalar key, the counter-clockwise
	// turning angle from the incoming edge computed with atan2, and keeps
	// the first candidate in partition order among equal keys. Collinear
	// points may become hull vertices, and keys that round to the same
	// value are treated as ties.
	FirstAngle
)

func (p TiePolicy) String() string {
	switch p {
	case Farthest:
		return "farthest"
	case FirstAngle:
		return "first-angle"
	}
	return fmt.Sprintf("TiePolicy(%d)", int(p))
}

// ParseTiePolicy returns the policy named by s, as printed by String.
func ParseTiePolicy(s string) (TiePolicy, error) {
	switch s {
	case "farthest":
		return Farthest, nil
	case "first-angle":
		return FirstAngle, nil
	}
	return 0, fmt.Errorf("hull: unknown tie policy %q", s)
}

// Options controls hull construction.
type Options struct {
	// Parallelism bounds the number of workers used by each reduction.
	// Zero or less selects GOMAXPROCS.
	Parallelism int

	// TiePolicy selects the candidate ranking.
	TiePolicy TiePolicy
}

// DefaultOptions returns options using GOMAXPROCS workers and the Farthest
// policy.
func DefaultOptions() Options {
	return Options{TiePolicy: Farthest}
}

// WithParallelism sets the number of workers.
func (o *Options) WithParallelism(n int) *Options {
	o.Parallelism = n
	return o
}

// WithTiePolicy sets the tie policy.
func (o *Options) WithTiePolicy(p TiePolicy) *Options {
	o.TiePolicy = p
	return o
}

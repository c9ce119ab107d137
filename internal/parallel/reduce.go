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

package parallel

// Range is the half-open index interval [Lo, Hi).
type Range struct {
	Lo, Hi int
}

// Len returns the number of indices in the range.
func (r Range) Len() int { return r.Hi - r.Lo }

// Partition splits [0, n) into at most parts contiguous ranges whose sizes
// differ by at most one. The ranges are returned in index order and cover
// every index exactly once.
func Partition(n, parts int) []Range {
	if n <= 0 {
		return nil
	}
	parts = max(min(parts, n), 1)
	size, extra := n/parts, n%parts
	ranges := make([]Range, parts)
	lo := 0
	for i := range ranges {
		hi := lo + size
		if i < extra {
			hi++
		}
		ranges[i] = Range{Lo: lo, Hi: hi}
		lo = hi
	}
	return ranges
}

// Reduce evaluates mapRange over one contiguous partition of [0, n) per
// worker and folds the partial results with combine, left to right in
// partition order, starting from identity.
//
// Every partial result is private to the worker that computed it; combine
// only runs on the calling goroutine once all partitions are done. With a
// nil pool the whole range is mapped on the calling goroutine.
//
// The result for a given pool size is deterministic. Across pool sizes it is
// only identical if combine is associative, which floating-point addition is
// not.
func Reduce[T any](p *WorkerPool, n int, identity T, mapRange func(lo, hi int) T, combine func(acc, next T) T) T {
	if n <= 0 {
		return identity
	}
	if p == nil {
		return combine(identity, mapRange(0, n))
	}

	ranges := Partition(n, p.Workers())
	partials := make([]T, len(ranges))
	work := make([]func(), len(ranges))
	for i, r := range ranges {
		work[i] = func() {
			partials[i] = mapRange(r.Lo, r.Hi)
		}
	}
	p.ExecuteAll(work)

	acc := identity
	for _, v := range partials {
		acc = combine(acc, v)
	}
	return acc
}

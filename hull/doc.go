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

/*
Package hull builds planar convex hulls with a parallel gift-wrapping walk
(the Jarvis march).

The walk starts at the lexicographically smallest point and repeatedly asks
the extreme-point reducer for the next vertex: the point such that every
other point lies on or to the left of the directed edge from the current
vertex. Hull vertices are therefore returned in counter-clockwise order.

The walk itself is sequential, since every step depends on the previous
vertex. Each step's scan over the candidate points is split into one
contiguous partition per worker; every worker keeps its own best candidate
and the candidates are combined afterwards, left to right. The worker pool
lives only for the duration of one Build call.

Two policies decide between candidates on the same ray from the current
vertex (see TiePolicy). The default, Farthest, compares exact orientations
and keeps the farthest collinear point, so collinear points are never hull
vertices and the result does not depend on the degree of parallelism.
Orientations start as a float64 determinant; any whose sign that estimate
cannot guarantee is recomputed in rational arithmetic.
*/
package hull

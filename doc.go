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
Package planar computes planar convex hulls with a parallel gift-wrapping
(Jarvis march) construction, together with a small task harness that drives
it from raw point buffers.

The work is split across the following packages:

  - r2: the planar Point type, its total order and a binary point codec.
  - hull: the extreme-point reducer and the hull-construction loop.
  - integrate: a two-dimensional composite Simpson integrator that shares
    the same parallel reduction.
  - task: the validation/pre-processing/run/post-processing harness.

All parallel work happens inside a single call: each hull computation owns a
worker pool sized by its parallelism degree and releases it before returning.
*/
package planar

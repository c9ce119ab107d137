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

package task

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// RunAll executes independent tasks concurrently, at most limit at a time
// (no limit if limit is zero or less). It returns the first error any task
// reports; tasks that have not started when the context is cancelled or a
// task fails are skipped.
//
// Each task still owns its parallelism: a hull task running under RunAll
// creates and releases its own worker pool.
func RunAll(ctx context.Context, limit int, tasks ...Task) error {
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for _, t := range tasks {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return Execute(t)
		})
	}
	return g.Wait()
}

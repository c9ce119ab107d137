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

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPartition(t *testing.T) {
	tests := []struct {
		n, parts int
		want     []Range
	}{
		{0, 4, nil},
		{3, 0, []Range{{0, 3}}},
		{3, 8, []Range{{0, 1}, {1, 2}, {2, 3}}},
		{10, 3, []Range{{0, 4}, {4, 7}, {7, 10}}},
		{8, 4, []Range{{0, 2}, {2, 4}, {4, 6}, {6, 8}}},
	}
	for _, test := range tests {
		got := Partition(test.n, test.parts)
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Partition(%d, %d) mismatch (-want +got):\n%s", test.n, test.parts, diff)
		}
	}
}

func TestPartitionCoversEveryIndexOnce(t *testing.T) {
	for n := 1; n < 50; n++ {
		for parts := 1; parts < 12; parts++ {
			seen := make([]int, n)
			for _, r := range Partition(n, parts) {
				for i := r.Lo; i < r.Hi; i++ {
					seen[i]++
				}
			}
			for i, c := range seen {
				if c != 1 {
					t.Fatalf("Partition(%d, %d): index %d covered %d times", n, parts, i, c)
				}
			}
		}
	}
}

func TestReduceSum(t *testing.T) {
	data := make([]int, 1000)
	want := 0
	for i := range data {
		data[i] = i * 3
		want += data[i]
	}
	sum := func(lo, hi int) int {
		s := 0
		for _, v := range data[lo:hi] {
			s += v
		}
		return s
	}
	add := func(a, b int) int { return a + b }

	for _, workers := range []int{1, 2, 3, 7, 16} {
		pool := NewWorkerPool(workers)
		if got := Reduce(pool, len(data), 0, sum, add); got != want {
			t.Errorf("Reduce with %d workers = %d, want %d", workers, got, want)
		}
		pool.Close()
	}
	if got := Reduce(nil, len(data), 0, sum, add); got != want {
		t.Errorf("Reduce with nil pool = %d, want %d", got, want)
	}
	if got := Reduce(nil, 0, -1, sum, add); got != -1 {
		t.Errorf("Reduce over empty range = %d, want identity -1", got)
	}
}

func TestReduceCombinesInPartitionOrder(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	got := Reduce(pool, 8, []Range(nil),
		func(lo, hi int) []Range { return []Range{{lo, hi}} },
		func(acc, next []Range) []Range { return append(acc, next...) })
	want := []Range{{0, 2}, {2, 4}, {4, 6}, {6, 8}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("combine order mismatch (-want +got):\n%s", diff)
	}
}

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

import "testing"

func TestTiePolicyString(t *testing.T) {
	for _, p := range []TiePolicy{Farthest, FirstAngle} {
		got, err := ParseTiePolicy(p.String())
		if err != nil || got != p {
			t.Errorf("ParseTiePolicy(%q) = %v, %v, want %v", p.String(), got, err, p)
		}
	}
	if _, err := ParseTiePolicy("nearest"); err == nil {
		t.Error("ParseTiePolicy(\"nearest\") succeeded")
	}
	if got, want := TiePolicy(9).String(), "TiePolicy(9)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestOptionsSetters(t *testing.T) {
	o := DefaultOptions()
	if o.Parallelism != 0 || o.TiePolicy != Farthest {
		t.Errorf("DefaultOptions() = %+v", o)
	}
	o.WithParallelism(3).WithTiePolicy(FirstAngle)
	if o.Parallelism != 3 || o.TiePolicy != FirstAngle {
		t.Errorf("after setters: %+v, want parallelism 3 and first-angle", o)
	}
}

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

package integrate

import (
	"math"
	"slices"
)

// Linear is 2x - y.
func Linear(x, y float64) float64 { return 2*x - y }

// Trig is cos(x + y).
func Trig(x, y float64) float64 { return math.Cos(x + y) }

// Mul is x·y.
func Mul(x, y float64) float64 { return x * y }

// Exp is e^(x + y).
func Exp(x, y float64) float64 { return math.Exp(x + y) }

// Quadratic is x² + y².
func Quadratic(x, y float64) float64 { return x*x + y*y }

var builtins = map[string]Func{
	"linear":    Linear,
	"trig":      Trig,
	"mul":       Mul,
	"exp":       Exp,
	"quadratic": Quadratic,
}

// Lookup returns the built-in integrand with the given name.
func Lookup(name string) (Func, bool) {
	f, ok := builtins[name]
	return f, ok
}

// Names returns the names accepted by Lookup, sorted.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

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

import "errors"

// ErrHullNotClosed is returned when the walk fails to return to its seed
// within one step per input point. Distinct finite points always close;
// the cap trips when corrupted coordinates, such as NaN, keep the walk from
// ever meeting its seed again.
var ErrHullNotClosed = errors.New("hull: hull did not close")

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

import "fmt"

// Stage is one step of the task lifecycle.
type Stage int

const (
	StageValidation Stage = iota
	StagePreProcessing
	StageRun
	StagePostProcessing
)

func (s Stage) String() string {
	switch s {
	case StageValidation:
		return "validation"
	case StagePreProcessing:
		return "pre-processing"
	case StageRun:
		return "run"
	case StagePostProcessing:
		return "post-processing"
	}
	return fmt.Sprintf("Stage(%d)", int(s))
}

// Lifecycle tracks which stage a task may enter next. The zero value
// expects validation. After post-processing the cycle starts over, so a task
// can be run again on new data.
type Lifecycle struct {
	next Stage
}

// Enter moves the lifecycle into s. It returns an error wrapping
// ErrOutOfOrder, and leaves the lifecycle unchanged, if s is not the
// expected stage.
func (l *Lifecycle) Enter(s Stage) error {
	if s != l.next {
		return fmt.Errorf("%w: entering %s, expected %s", ErrOutOfOrder, s, l.next)
	}
	if s == StagePostProcessing {
		l.next = StageValidation
	} else {
		l.next = s + 1
	}
	return nil
}

// Do enters s and runs fn. If fn fails the lifecycle is reset, so the
// remaining stages are refused and the next attempt starts at validation.
func (l *Lifecycle) Do(s Stage, fn func() error) error {
	if err := l.Enter(s); err != nil {
		return err
	}
	if err := fn(); err != nil {
		l.Reset()
		return err
	}
	return nil
}

// Reset returns the lifecycle to expecting validation. Tasks call it when
// validation fails so no later stage can run on rejected input.
func (l *Lifecycle) Reset() {
	l.next = StageValidation
}

// Next returns the stage the lifecycle expects.
func (l *Lifecycle) Next() Stage {
	return l.next
}

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

// Package task runs computations through a four-stage lifecycle over raw
// byte buffers: validation, pre-processing, run and post-processing.
//
// Validation reports a boolean; invalid input stops the lifecycle before any
// computation runs. The other stages report errors. Stages must be entered
// in order, which each task enforces with a Lifecycle.
package task

import (
	"errors"
	"fmt"

	"github.com/akhenakh/planar"
)

// Data holds the buffers exchanged with a task. InputsCount[i] and
// OutputsCount[i] give the number of records in Inputs[i] and Outputs[i];
// the record type is defined by each task.
type Data struct {
	Inputs       [][]byte
	InputsCount  []int
	Outputs      [][]byte
	OutputsCount []int
}

func (d *Data) inputCount(i int) (int, bool) {
	if d == nil || i >= len(d.Inputs) || i >= len(d.InputsCount) {
		return 0, false
	}
	return d.InputsCount[i], true
}

func (d *Data) outputCount(i int) (int, bool) {
	if d == nil || i >= len(d.Outputs) || i >= len(d.OutputsCount) {
		return 0, false
	}
	return d.OutputsCount[i], true
}

// Task is a computation driven through the lifecycle by Execute.
type Task interface {
	// Validation reports whether the input buffers are acceptable. It
	// must not panic on malformed data.
	Validation() bool
	PreProcessing() error
	Run() error
	PostProcessing() error
}

var (
	// ErrValidation is reported by Execute when a task rejects its input.
	ErrValidation = errors.New("task: validation failed")

	// ErrOutOfOrder is returned when a stage is entered out of sequence.
	ErrOutOfOrder = errors.New("task: stage out of order")
)

// StageError records the stage at which Execute stopped.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("task: %s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// Execute drives t through all four stages. A failed validation returns a
// *StageError wrapping ErrValidation and nothing else runs.
func Execute(t Task) error {
	logger := planar.Logger()
	if !t.Validation() {
		logger.Warn("task: input rejected", "task", fmt.Sprintf("%T", t))
		return &StageError{Stage: StageValidation, Err: ErrValidation}
	}
	if err := t.PreProcessing(); err != nil {
		return &StageError{Stage: StagePreProcessing, Err: err}
	}
	if err := t.Run(); err != nil {
		return &StageError{Stage: StageRun, Err: err}
	}
	if err := t.PostProcessing(); err != nil {
		return &StageError{Stage: StagePostProcessing, Err: err}
	}
	logger.Info("task: completed", "task", fmt.Sprintf("%T", t))
	return nil
}

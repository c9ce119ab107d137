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
	"errors"
	"fmt"
	"slices"

	"github.com/akhenakh/planar"
	"github.com/akhenakh/planar/hull"
	"github.com/akhenakh/planar/r2"
)

// JarvisTask computes the convex hull of the points in input 0 and writes
// the hull vertices to output 0.
//
// Input 0 holds InputsCount[0] points encoded as by r2.WritePoints. Output 0
// must have room for the hull; on success OutputsCount[0] is set to the
// number of vertices written.
type JarvisTask struct {
	data *Data
	opts hull.Options
	lc   Lifecycle

	points []r2.Point
	result []r2.Point
}

// NewJarvisTask returns a task over data. A nil opts selects
// hull.DefaultOptions.
func NewJarvisTask(data *Data, opts *hull.Options) *JarvisTask {
	if opts == nil {
		def := hull.DefaultOptions()
		opts = &def
	}
	return &JarvisTask{data: data, opts: *opts}
}

// Validation accepts the input if it holds at least one point and no two
// points are equal.
func (t *JarvisTask) Validation() bool {
	if err := t.lc.Enter(StageValidation); err != nil {
		planar.Logger().Warn("task: jarvis validation", "err", err)
		return false
	}
	if !t.validate() {
		t.lc.Reset()
		return false
	}
	return true
}

func (t *JarvisTask) validate() bool {
	count, ok := t.data.inputCount(0)
	if !ok || count <= 0 || count > len(t.data.Inputs[0])/r2.PointSize {
		return false
	}
	pts, err := r2.ReadPoints(t.data.Inputs[0], count)
	if err != nil {
		return false
	}
	r2.SortPoints(pts)
	return !r2.HasDuplicates(pts)
}

// PreProcessing decodes the input points and sorts them.
func (t *JarvisTask) PreProcessing() error {
	return t.lc.Do(StagePreProcessing, t.preProcess)
}

func (t *JarvisTask) preProcess() error {
	pts, err := r2.ReadPoints(t.data.Inputs[0], t.data.InputsCount[0])
	if err != nil {
		return err
	}
	r2.SortPoints(pts)
	t.points = pts
	t.result = nil
	return nil
}

// Run builds the hull.
func (t *JarvisTask) Run() error {
	return t.lc.Do(StageRun, t.run)
}

func (t *JarvisTask) run() error {
	res, err := hull.Build(t.points, &t.opts)
	if err != nil {
		return err
	}
	t.result = res
	return nil
}

// PostProcessing writes the hull to output 0.
func (t *JarvisTask) PostProcessing() error {
	return t.lc.Do(StagePostProcessing, t.postProcess)
}

func (t *JarvisTask) postProcess() error {
	if _, ok := t.data.outputCount(0); !ok {
		return errors.New("task: jarvis: missing output buffer")
	}
	if _, err := r2.WritePoints(t.data.Outputs[0], t.result); err != nil {
		return fmt.Errorf("task: jarvis: %w", err)
	}
	t.data.OutputsCount[0] = len(t.result)
	return nil
}

// Result returns a copy of the hull computed by the last Run.
func (t *JarvisTask) Result() []r2.Point {
	return slices.Clone(t.result)
}

// NewJarvisData returns Data holding pts as input 0 and an output buffer
// large enough for any hull of pts.
func NewJarvisData(pts []r2.Point) *Data {
	return &Data{
		Inputs:       [][]byte{r2.AppendPoints(nil, pts)},
		InputsCount:  []int{len(pts)},
		Outputs:      [][]byte{make([]byte, len(pts)*r2.PointSize)},
		OutputsCount: []int{len(pts)},
	}
}

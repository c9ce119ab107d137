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
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/akhenakh/planar"
	"github.com/akhenakh/planar/integrate"
)

// simpsonInputs is the number of int32 values in a Simpson input buffer:
// a, b, c, d and the step count.
const simpsonInputs = 5

// SimpsonTask integrates a function over a rectangle with the composite
// Simpson rule.
//
// Input 0 holds five little-endian int32 values a, b, c, d and n: the
// function is integrated over [a, b] × [c, d] on an n × n grid. Output 0
// receives the result as one little-endian float64.
type SimpsonTask struct {
	data       *Data
	f          integrate.Func
	workers    int
	sequential bool
	lc         Lifecycle

	region integrate.Region
	steps  int
	result float64
}

// NewSimpsonTask returns a task integrating f with the given number of
// workers (GOMAXPROCS if zero or less).
func NewSimpsonTask(data *Data, f integrate.Func, workers int) *SimpsonTask {
	return &SimpsonTask{data: data, f: f, workers: workers}
}

// NewSimpsonSeqTask returns a task integrating f on the calling goroutine.
func NewSimpsonSeqTask(data *Data, f integrate.Func) *SimpsonTask {
	return &SimpsonTask{data: data, f: f, sequential: true}
}

// Validation accepts exactly five input values and one output value.
func (t *SimpsonTask) Validation() bool {
	if err := t.lc.Enter(StageValidation); err != nil {
		planar.Logger().Warn("task: simpson validation", "err", err)
		return false
	}
	in, inOK := t.data.inputCount(0)
	out, outOK := t.data.outputCount(0)
	if !inOK || !outOK || in != simpsonInputs || out != 1 || t.f == nil {
		t.lc.Reset()
		return false
	}
	return true
}

// PreProcessing decodes the bounds and the step count.
func (t *SimpsonTask) PreProcessing() error {
	return t.lc.Do(StagePreProcessing, t.preProcess)
}

func (t *SimpsonTask) preProcess() error {
	buf := t.data.Inputs[0]
	if len(buf) < simpsonInputs*4 {
		return fmt.Errorf("task: simpson: input holds %d bytes, need %d", len(buf), simpsonInputs*4)
	}
	var v [simpsonInputs]int32
	for i := range v {
		v[i] = int32(binary.LittleEndian.Uint32(buf[i*4:]))
	}
	t.region = integrate.Region{A: float64(v[0]), B: float64(v[1]), C: float64(v[2]), D: float64(v[3])}
	t.steps = int(v[4])
	t.result = 0
	return nil
}

// Run evaluates the integral.
func (t *SimpsonTask) Run() error {
	return t.lc.Do(StageRun, t.run)
}

func (t *SimpsonTask) run() error {
	var (
		res float64
		err error
	)
	if t.sequential {
		res, err = integrate.SimpsonSeq(t.f, t.region, t.steps)
	} else {
		res, err = integrate.SimpsonParallel(t.f, t.region, t.steps, t.workers)
	}
	if err != nil {
		return err
	}
	t.result = res
	return nil
}

// PostProcessing writes the result to output 0.
func (t *SimpsonTask) PostProcessing() error {
	return t.lc.Do(StagePostProcessing, t.postProcess)
}

func (t *SimpsonTask) postProcess() error {
	if len(t.data.Outputs[0]) < 8 {
		return errors.New("task: simpson: output buffer holds less than one float64")
	}
	binary.LittleEndian.PutUint64(t.data.Outputs[0], math.Float64bits(t.result))
	return nil
}

// Result returns the integral computed by the last Run.
func (t *SimpsonTask) Result() float64 {
	return t.result
}

// NewSimpsonData returns Data for integrating over [a, b] × [c, d] on an
// n × n grid, with a one-value output buffer.
func NewSimpsonData(a, b, c, d, n int32) *Data {
	in := make([]byte, 0, simpsonInputs*4)
	for _, v := range []int32{a, b, c, d, n} {
		in = binary.LittleEndian.AppendUint32(in, uint32(v))
	}
	return &Data{
		Inputs:       [][]byte{in},
		InputsCount:  []int{simpsonInputs},
		Outputs:      [][]byte{make([]byte, 8)},
		OutputsCount: []int{1},
	}
}

// SimpsonOutput decodes the float64 written by PostProcessing.
func SimpsonOutput(d *Data) (float64, error) {
	if _, ok := d.outputCount(0); !ok || len(d.Outputs[0]) < 8 {
		return 0, errors.New("task: simpson: no output value")
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(d.Outputs[0])), nil
}

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

package r2

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// PointSize is the encoded size of one Point: two little-endian IEEE 754
// float64 values, X then Y.
const PointSize = 16

// ErrShortBuffer is returned when a buffer cannot hold the requested number
// of points.
var ErrShortBuffer = errors.New("r2: buffer too short")

// ReadPoints decodes n points from the start of buf.
func ReadPoints(buf []byte, n int) ([]Point, error) {
	if n < 0 {
		return nil, fmt.Errorf("r2: negative point count %d", n)
	}
	if n > len(buf)/PointSize {
		return nil, fmt.Errorf("%w: %d points requested, %d bytes hold %d", ErrShortBuffer, n, len(buf), len(buf)/PointSize)
	}
	pts := make([]Point, n)
	for i := range pts {
		off := i * PointSize
		pts[i] = Point{
			X: math.Float64frombits(binary.LittleEndian.Uint64(buf[off:])),
			Y: math.Float64frombits(binary.LittleEndian.Uint64(buf[off+8:])),
		}
	}
	return pts, nil
}

// WritePoints encodes pts at the start of dst and returns the number of
// bytes written. dst is left untouched if it is too small.
func WritePoints(dst []byte, pts []Point) (int, error) {
	n := len(pts) * PointSize
	if len(dst) < n {
		return 0, fmt.Errorf("%w: need %d bytes for %d points, have %d", ErrShortBuffer, n, len(pts), len(dst))
	}
	for i, p := range pts {
		off := i * PointSize
		binary.LittleEndian.PutUint64(dst[off:], math.Float64bits(p.X))
		binary.LittleEndian.PutUint64(dst[off+8:], math.Float64bits(p.Y))
	}
	return n, nil
}

// AppendPoints appends the encoding of pts to dst.
func AppendPoints(dst []byte, pts []Point) []byte {
	for _, p := range pts {
		dst = binary.LittleEndian.AppendUint64(dst, math.Float64bits(p.X))
		dst = binary.LittleEndian.AppendUint64(dst, math.Float64bits(p.Y))
	}
	return dst
}

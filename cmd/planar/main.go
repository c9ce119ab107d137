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

// Command planar computes convex hulls and Simpson integrals through the
// task harness.
//
//	planar hull [-workers n] [-policy farthest|first-angle] < points.txt
//	planar simpson -func trig -a 0 -b 1 -c 0 -d 1 -n 100 [-workers n] [-seq]
//
// Hull input is one point per line, "x y", separated by whitespace; blank
// lines and lines starting with # are ignored. The hull is printed in the
// same format, counter-clockwise from the lexicographically smallest point.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/profile"

	"github.com/akhenakh/planar"
	"github.com/akhenakh/planar/hull"
	"github.com/akhenakh/planar/integrate"
	"github.com/akhenakh/planar/r2"
	"github.com/akhenakh/planar/task"
)

const (
	exitSuccess           = 0
	exitFailure           = 1
	exitInvalidInvocation = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(stderr, "usage: planar hull|simpson [flags]")
		return exitInvalidInvocation
	}
	switch args[0] {
	case "hull":
		return runHull(args[1:], stdin, stdout, stderr)
	case "simpson":
		return runSimpson(args[1:], stdout, stderr)
	}
	fmt.Fprintf(stderr, "planar: unknown command %q\n", args[0])
	return exitInvalidInvocation
}

// common holds the flags shared by every subcommand.
type common struct {
	workers int
	verbose bool
	profile string
}

func (c *common) register(fs *flag.FlagSet) {
	fs.IntVar(&c.workers, "workers", 0, "parallelism degree (0 = GOMAXPROCS)")
	fs.BoolVar(&c.verbose, "v", false, "log debug output to stderr")
	fs.StringVar(&c.profile, "profile", "", "write a cpu or mem profile to the current directory")
}

// start applies logging and profiling. The returned function must be called
// before exiting.
func (c *common) start(stderr io.Writer) (func(), error) {
	if c.verbose {
		planar.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	stop := func() { planar.SetLogger(nil) }

	var mode func(*profile.Profile)
	switch c.profile {
	case "":
		return stop, nil
	case "cpu":
		mode = profile.CPUProfile
	case "mem":
		mode = profile.MemProfile
	default:
		stop()
		return nil, fmt.Errorf("unknown profile %q, want cpu or mem", c.profile)
	}
	p := profile.Start(mode, profile.ProfilePath("."), profile.NoShutdownHook, profile.Quiet)
	return func() {
		p.Stop()
		stop()
	}, nil
}

func runHull(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("planar hull", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var c common
	c.register(fs)
	policyName := fs.String("policy", hull.Farthest.String(), "tie policy: farthest or first-angle")
	if err := fs.Parse(args); err != nil {
		return exitInvalidInvocation
	}
	policy, err := hull.ParseTiePolicy(*policyName)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitInvalidInvocation
	}
	stop, err := c.start(stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitInvalidInvocation
	}
	defer stop()

	pts, err := readPoints(stdin)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitFailure
	}
	planar.Logger().Debug("planar: read points", "count", len(pts), "bound", r2.RectFromPoints(pts))

	opts := hull.DefaultOptions()
	opts.WithParallelism(c.workers).WithTiePolicy(policy)
	data := task.NewJarvisData(pts)
	if err := task.Execute(task.NewJarvisTask(data, &opts)); err != nil {
		fmt.Fprintln(stderr, err)
		return exitFailure
	}

	vertices, err := r2.ReadPoints(data.Outputs[0], data.OutputsCount[0])
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitFailure
	}
	w := bufio.NewWriter(stdout)
	for _, p := range vertices {
		fmt.Fprintf(w, "%s %s\n", formatFloat(p.X), formatFloat(p.Y))
	}
	if err := w.Flush(); err != nil {
		fmt.Fprintln(stderr, err)
		return exitFailure
	}
	return exitSuccess
}

func runSimpson(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("planar simpson", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var c common
	c.register(fs)
	var (
		name       = fs.String("func", "trig", "integrand: "+strings.Join(integrate.Names(), ", "))
		a          = fs.Int("a", 0, "lower x bound")
		b          = fs.Int("b", 1, "upper x bound")
		lo         = fs.Int("c", 0, "lower y bound")
		hi         = fs.Int("d", 1, "upper y bound")
		steps      = fs.Int("n", 100, "grid steps per axis")
		sequential = fs.Bool("seq", false, "integrate on a single goroutine")
	)
	if err := fs.Parse(args); err != nil {
		return exitInvalidInvocation
	}
	f, ok := integrate.Lookup(*name)
	if !ok {
		fmt.Fprintf(stderr, "planar: unknown integrand %q\n", *name)
		return exitInvalidInvocation
	}
	stop, err := c.start(stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitInvalidInvocation
	}
	defer stop()

	data := task.NewSimpsonData(int32(*a), int32(*b), int32(*lo), int32(*hi), int32(*steps))
	var t task.Task = task.NewSimpsonTask(data, f, c.workers)
	if *sequential {
		t = task.NewSimpsonSeqTask(data, f)
	}
	if err := task.Execute(t); err != nil {
		fmt.Fprintln(stderr, err)
		return exitFailure
	}
	res, err := task.SimpsonOutput(data)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitFailure
	}
	fmt.Fprintln(stdout, formatFloat(res))
	return exitSuccess
}

// readPoints parses "x y" lines.
func readPoints(r io.Reader) ([]r2.Point, error) {
	var pts []r2.Point
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: want 2 coordinates, got %d", line, len(fields))
		}
		x, errX := strconv.ParseFloat(fields[0], 64)
		y, errY := strconv.ParseFloat(fields[1], 64)
		if err := errors.Join(errX, errY); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		pts = append(pts, r2.Point{X: x, Y: y})
	}
	return pts, scanner.Err()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// This file is part of advent-of-code-2019 - https://github.com/ilSommo/advent-of-code-2019
//
// Copyright 2019 The advent-of-code-2019 Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package host

import (
	"strconv"
	"strings"

	"github.com/ilSommo/advent-of-code-2019/lang/ascii"
	"github.com/ilSommo/advent-of-code-2019/vm"
	"github.com/pkg/errors"
)

// maxRoutineLen is the maximum length of a movement routine or function,
// not counting the new line.
const maxRoutineLen = 20

// maxFuncs is the number of movement functions.
const maxFuncs = 3

// addrWake is the address written to wake up the vacuum robot.
const addrWake vm.Cell = 0

var robotDirs = map[byte]Point{'^': Up, 'v': Down, '<': Left, '>': Right}

// scaffolds is a parsed camera view.
type scaffolds struct {
	cells map[Point]struct{}
	robot Point
	dir   Point
	found bool
}

func parseView(view string) *scaffolds {
	s := &scaffolds{cells: make(map[Point]struct{})}
	y := 0
	for _, line := range strings.Split(view, "\n") {
		if line == "" {
			continue
		}
		for x := 0; x < len(line); x++ {
			c := line[x]
			if c == '#' {
				s.cells[Point{x, y}] = struct{}{}
			} else if d, ok := robotDirs[c]; ok {
				s.cells[Point{x, y}] = struct{}{}
				s.robot, s.dir, s.found = Point{x, y}, d, true
			}
		}
		y++
	}
	return s
}

func (s *scaffolds) has(p Point) bool {
	_, ok := s.cells[p]
	return ok
}

// Camera runs the camera program of the vacuum robot and returns the view it
// draws.
func Camera(program []vm.Cell) (string, error) {
	i, err := newMachine(program, "camera", vm.BatchOutput(true))
	if err != nil {
		return "", err
	}
	q := vm.NewQueue()
	if err = i.Run(q); err != nil {
		return "", err
	}
	view, _ := ascii.Decode(q.Outputs())
	return view, nil
}

// Intersections returns the sum of the alignment parameters of the scaffold
// intersections in view. The alignment parameter of a location is the
// product of its coordinates.
func Intersections(view string) int {
	s := parseView(view)
	sum := 0
	for p := range s.cells {
		n := 0
		for _, q := range p.Neighbours() {
			if s.has(q) {
				n++
			}
		}
		if n == 4 {
			sum += p.X * p.Y
		}
	}
	return sum
}

// Route returns the moves that take the robot in view from its location to
// the end of the scaffold, going straight through intersections. Moves
// alternate turns ("L" or "R") and step counts.
func Route(view string) ([]string, error) {
	s := parseView(view)
	if !s.found {
		return nil, errors.Wrap(ErrNotFound, "robot in camera view")
	}
	var route []string
	pos, dir := s.robot, s.dir
	for {
		if !s.has(pos.Add(dir)) {
			switch {
			case s.has(pos.Add(dir.TurnLeft())):
				dir = dir.TurnLeft()
				route = append(route, "L")
			case s.has(pos.Add(dir.TurnRight())):
				dir = dir.TurnRight()
				route = append(route, "R")
			default:
				return route, nil
			}
		}
		n := 0
		for s.has(pos.Add(dir)) {
			pos = pos.Add(dir)
			n++
		}
		route = append(route, strconv.Itoa(n))
		if len(route) > 4*len(s.cells) {
			return nil, errors.Wrap(ErrNotFound, "end of a looping scaffold")
		}
	}
}

// Routine is a movement routine for the vacuum robot: a main routine calling
// the movement functions A, B and C.
type Routine struct {
	Main  string
	Funcs [maxFuncs]string
}

// Lines returns the input lines expected by the robot program for r. The
// last line answers the continuous video feed prompt.
func (r Routine) Lines(video bool) []string {
	feed := "n"
	if video {
		feed = "y"
	}
	return []string{r.Main, r.Funcs[0], r.Funcs[1], r.Funcs[2], feed}
}

// Expand returns the moves of r in execution order.
func (r Routine) Expand() []string {
	var moves []string
	for _, name := range strings.Split(r.Main, ",") {
		if len(name) != 1 || name[0] < 'A' || name[0] > 'C' {
			continue
		}
		moves = append(moves, strings.Split(r.Funcs[name[0]-'A'], ",")...)
	}
	return moves
}

func isTurn(s string) bool {
	return s == "L" || s == "R"
}

func hasPrefix(route, f []string) bool {
	if len(f) > len(route) {
		return false
	}
	for k := range f {
		if route[k] != f[k] {
			return false
		}
	}
	return true
}

func compress(route []string, funcs [][]string, main []int) ([][]string, []int, bool) {
	if len(route) == 0 {
		return funcs, main, true
	}
	// "A,B,..." must fit in maxRoutineLen
	if 2*len(main)+1 > maxRoutineLen {
		return nil, nil, false
	}
	for k, f := range funcs {
		if hasPrefix(route, f) {
			if fs, m, ok := compress(route[len(f):], funcs, append(main[:len(main):len(main)], k)); ok {
				return fs, m, true
			}
		}
	}
	if len(funcs) == maxFuncs {
		return nil, nil, false
	}
	for n := 1; n <= len(route); n++ {
		f := route[:n]
		if len(strings.Join(f, ",")) > maxRoutineLen {
			break
		}
		if isTurn(route[n-1]) {
			continue
		}
		next := append(funcs[:len(funcs):len(funcs)], f)
		if fs, m, ok := compress(route[n:], next, append(main[:len(main):len(main)], len(funcs))); ok {
			return fs, m, true
		}
	}
	return nil, nil, false
}

// Compress splits route into a main routine and up to three movement
// functions that all fit in the robot memory.
func Compress(route []string) (Routine, error) {
	var r Routine
	funcs, main, ok := compress(route, nil, nil)
	if !ok {
		return r, errors.Wrap(ErrNotFound, "movement routine")
	}
	names := make([]string, len(main))
	for k, f := range main {
		names[k] = string(rune('A' + f))
	}
	r.Main = strings.Join(names, ",")
	for k, f := range funcs {
		r.Funcs[k] = strings.Join(f, ",")
	}
	return r, nil
}

// Command wakes up the vacuum robot, sends it the given input lines and
// returns the value it reports when done. Text output is ignored, unless the
// program halts without reporting a value, in which case its last line is
// returned in an ErrRejected error.
func Command(program []vm.Cell, lines []string) (vm.Cell, error) {
	i, err := newMachine(program, "vacuum", vm.BatchOutput(true))
	if err != nil {
		return 0, err
	}
	if err = i.Poke(addrWake, 2); err != nil {
		return 0, err
	}
	q := vm.NewQueue(ascii.EncodeLines(lines...)...)
	if err = i.Run(q); err != nil {
		return 0, err
	}
	out := q.Outputs()
	if len(out) == 0 {
		return 0, errors.Wrap(ErrNoOutput, "vacuum robot")
	}
	if v := out[len(out)-1]; !ascii.IsChar(v) {
		return v, nil
	}
	text, _ := ascii.Decode(out)
	text = strings.TrimRight(text, "\n")
	if k := strings.LastIndexByte(text, '\n'); k >= 0 {
		text = text[k+1:]
	}
	return 0, errors.Wrapf(ErrRejected, "%q", text)
}

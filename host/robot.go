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
	"github.com/ilSommo/advent-of-code-2019/vm"
	"github.com/pkg/errors"
)

// Panel colors.
const (
	Black vm.Cell = 0
	White vm.Cell = 1
)

// Hull is the side of a ship as painted by the emergency hull painting robot.
type Hull struct {
	panels  map[Point]vm.Cell
	painted map[Point]struct{}
}

// Color returns the color of the panel at p. Panels start black.
func (h *Hull) Color(p Point) vm.Cell {
	return h.panels[p]
}

// Painted returns the number of panels painted at least once.
func (h *Hull) Painted() int {
	return len(h.painted)
}

// Render draws the white panels as '#' and the black ones as spaces.
func (h *Hull) Render() string {
	white := make(map[Point]struct{})
	for p, c := range h.panels {
		if c == White {
			white[p] = struct{}{}
		}
	}
	return render(white, func(_ Point, _ struct{}, ok bool) byte {
		if ok {
			return '#'
		}
		return ' '
	})
}

type robot struct {
	hull *Hull
	pos  Point
	dir  Point
	out  [2]vm.Cell
	n    int
}

func (r *robot) Input() (vm.Cell, bool) {
	return r.hull.Color(r.pos), true
}

// Output takes values in pairs: the color to paint the current panel, then
// the direction to turn to, 0 for left and 1 for right, before moving one
// panel forward.
func (r *robot) Output(v vm.Cell) error {
	r.out[r.n] = v
	if r.n++; r.n < 2 {
		return nil
	}
	r.n = 0
	color, turn := r.out[0], r.out[1]
	if color != Black && color != White {
		return errors.Wrapf(ErrProtocol, "invalid color %d", color)
	}
	r.hull.panels[r.pos] = color
	r.hull.painted[r.pos] = struct{}{}
	switch turn {
	case 0:
		r.dir = r.dir.TurnLeft()
	case 1:
		r.dir = r.dir.TurnRight()
	default:
		return errors.Wrapf(ErrProtocol, "invalid turn %d", turn)
	}
	r.pos = r.pos.Add(r.dir)
	return nil
}

// Paint runs the hull painting robot program until it halts. The robot starts
// facing up on a panel of color start. Options are passed to the machine.
func Paint(program []vm.Cell, start vm.Cell, opts ...vm.Option) (*Hull, error) {
	i, err := newMachine(program, "robot", append(opts, vm.BatchOutput(true))...)
	if err != nil {
		return nil, err
	}
	h := &Hull{
		panels:  map[Point]vm.Cell{{}: start},
		painted: make(map[Point]struct{}),
	}
	r := &robot{hull: h, dir: Up}
	if err = i.Run(r); err != nil {
		return h, err
	}
	if r.n != 0 {
		return h, errors.Wrap(ErrProtocol, "robot halted in the middle of a command")
	}
	hostLog.Debug("hull painted", "panels", h.Painted(), "steps", i.InstructionCount())
	return h, nil
}

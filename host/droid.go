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

// Droid status codes.
const (
	droidWall   vm.Cell = 0
	droidMoved  vm.Cell = 1
	droidOxygen vm.Cell = 2
)

// droid movement commands, in the order they are tried.
var droidMoves = [...]struct {
	cmd vm.Cell
	dir Point
}{
	{1, Up},
	{2, Down},
	{3, Left},
	{4, Right},
}

// Area is the map of the ship section explored by the repair droid. The droid
// starts at the origin.
type Area struct {
	// Oxygen is the location of the oxygen system.
	Oxygen Point
	// Distance is the number of moves from the origin to the oxygen system.
	Distance int

	open  map[Point]int // distance from the origin
	walls map[Point]struct{}
}

// Open reports whether p is a known open location.
func (a *Area) Open(p Point) bool {
	_, ok := a.open[p]
	return ok
}

// Size returns the number of open locations.
func (a *Area) Size() int {
	return len(a.open)
}

// FillTime returns the number of minutes it takes for oxygen to spread from
// the oxygen system to every open location.
func (a *Area) FillTime() int {
	seen := map[Point]struct{}{a.Oxygen: {}}
	cur := []Point{a.Oxygen}
	t := 0
	for {
		var next []Point
		for _, p := range cur {
			for _, n := range p.Neighbours() {
				if _, ok := seen[n]; ok || !a.Open(n) {
					continue
				}
				seen[n] = struct{}{}
				next = append(next, n)
			}
		}
		if len(next) == 0 {
			return t
		}
		cur = next
		t++
	}
}

// Render draws the explored area: '#' for walls, '.' for open locations, 'O'
// for the oxygen system and 'D' for the origin.
func (a *Area) Render() string {
	m := make(map[Point]byte, len(a.open)+len(a.walls))
	for p := range a.walls {
		m[p] = '#'
	}
	for p := range a.open {
		m[p] = '.'
	}
	m[a.Oxygen] = 'O'
	m[Point{}] = 'D'
	return render(m, func(_ Point, g byte, ok bool) byte {
		if !ok {
			return ' '
		}
		return g
	})
}

type branch struct {
	m    *vm.Instance
	pos  Point
	dist int
}

// move sends cmd to the droid and returns its status reply.
func move(m *vm.Instance, cmd vm.Cell) (vm.Cell, error) {
	ev, err := m.Resume(vm.NewQueue(cmd))
	if err != nil {
		return 0, err
	}
	if ev.Status != vm.ProducedOutput {
		return 0, errors.Wrapf(ErrProtocol, "droid %s after move %d", ev.Status, cmd)
	}
	switch ev.Value {
	case droidWall, droidMoved, droidOxygen:
		return ev.Value, nil
	}
	return 0, errors.Wrapf(ErrProtocol, "invalid droid status %d", ev.Value)
}

// Explore maps the area reachable by the repair droid with a breadth-first
// search. Every branch of the search owns a clone of the droid program taken
// at the location it reached, so the droid never has to backtrack. If more
// than maxLive branches are waiting to be explored, Explore gives up with
// ErrTooManyBranches. A maxLive of 0 or less means no limit. Options are
// passed to the first machine and inherited by its clones.
//
// If the oxygen system cannot be reached, Explore returns the explored area
// and ErrNotFound.
func Explore(program []vm.Cell, maxLive int, opts ...vm.Option) (*Area, error) {
	root, err := newMachine(program, "droid", opts...)
	if err != nil {
		return nil, err
	}
	a := &Area{
		open:  map[Point]int{{}: 0},
		walls: make(map[Point]struct{}),
	}
	found := false
	queue := []branch{{m: root}}
	for len(queue) > 0 {
		b := queue[0]
		queue[0] = branch{}
		queue = queue[1:]
		for _, mv := range droidMoves {
			next := b.pos.Add(mv.dir)
			if _, ok := a.walls[next]; ok || a.Open(next) {
				continue
			}
			m := b.m.Clone()
			st, err := move(m, mv.cmd)
			if err != nil {
				return a, errors.Wrapf(err, "moving from %v", b.pos)
			}
			if st == droidWall {
				a.walls[next] = struct{}{}
				continue
			}
			a.open[next] = b.dist + 1
			if st == droidOxygen && !found {
				a.Oxygen, a.Distance, found = next, b.dist+1, true
				hostLog.Debug("oxygen system found", "at", next, "distance", a.Distance)
			}
			queue = append(queue, branch{m, next, b.dist + 1})
			if maxLive > 0 && len(queue) > maxLive {
				return a, errors.Wrapf(ErrTooManyBranches, "%d > %d", len(queue), maxLive)
			}
		}
	}
	if !found {
		return a, errors.Wrap(ErrNotFound, "oxygen system")
	}
	return a, nil
}

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

// maxProbeSteps bounds the number of locations FitSquare may scan.
const maxProbeSteps = 1 << 20

// Probe deploys drones to check whether locations are pulled by a tractor
// beam. The drone program is loaded once and every deployment runs on a
// fresh clone of it.
type Probe struct {
	m *vm.Instance
}

// NewProbe returns a new Probe for the given drone program.
func NewProbe(program []vm.Cell) (*Probe, error) {
	i, err := newMachine(program, "probe")
	if err != nil {
		return nil, err
	}
	return &Probe{i}, nil
}

// Pulled reports whether the drone is pulled at location (x, y).
func (p *Probe) Pulled(x, y int) (bool, error) {
	m := p.m.Clone()
	ev, err := m.Resume(vm.NewQueue(vm.Cell(x), vm.Cell(y)))
	if err != nil {
		return false, errors.Wrapf(err, "drone at (%d,%d)", x, y)
	}
	if ev.Status != vm.ProducedOutput {
		return false, errors.Wrapf(ErrProtocol, "drone %s at (%d,%d)", ev.Status, x, y)
	}
	switch ev.Value {
	case 0:
		return false, nil
	case 1:
		return true, nil
	}
	return false, errors.Wrapf(ErrProtocol, "invalid drone status %d", ev.Value)
}

// Count returns the number of pulled locations in the w by h area closest to
// the emitter.
func (p *Probe) Count(w, h int) (int, error) {
	n := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			ok, err := p.Pulled(x, y)
			if err != nil {
				return n, err
			}
			if ok {
				n++
			}
		}
	}
	return n, nil
}

// FitSquare returns the top-left corner of the size by size square closest to
// the emitter that fits entirely in the beam. It follows the upper edge of
// the beam with the top-right corner of the square until the bottom-left
// corner is pulled as well.
func (p *Probe) FitSquare(size int) (Point, error) {
	if size <= 0 {
		return Point{}, errors.Errorf("invalid square size %d", size)
	}
	d := size - 1
	x, y := d, 0
	for steps := 0; steps < maxProbeSteps; steps++ {
		ok, err := p.Pulled(x, y)
		if err != nil {
			return Point{}, err
		}
		if !ok {
			y++
			continue
		}
		if ok, err = p.Pulled(x-d, y+d); err != nil {
			return Point{}, err
		}
		if ok {
			return Point{x - d, y}, nil
		}
		x++
	}
	return Point{}, errors.Wrapf(ErrNotFound, "%dx%d square", size, size)
}

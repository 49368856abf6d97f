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

// Chain runs one amplifier per phase setting in series. Each amplifier reads
// its phase, then the signal produced by the previous one. Chain returns the
// output of the last amplifier.
func Chain(program []vm.Cell, phases []vm.Cell, signal vm.Cell) (vm.Cell, error) {
	for k, ph := range phases {
		i, err := newMachine(program, "amplifier", vm.BatchOutput(true))
		if err != nil {
			return 0, err
		}
		q := vm.NewQueue(ph, signal)
		if err = i.Run(q); err != nil {
			return 0, errors.Wrapf(err, "amplifier %d", k)
		}
		out := q.Outputs()
		if len(out) == 0 {
			return 0, errors.Wrapf(ErrNoOutput, "amplifier %d", k)
		}
		signal = out[len(out)-1]
	}
	return signal, nil
}

// Feedback runs the amplifiers in a feedback loop: the output of amplifier k
// is fed to amplifier k+1 and the last one feeds the first. Amplifiers are
// resumed in turn, one event each, until all of them have halted. The result
// is the last signal sent by the last amplifier.
func Feedback(program []vm.Cell, phases []vm.Cell, signal vm.Cell) (vm.Cell, error) {
	n := len(phases)
	if n == 0 {
		return signal, nil
	}
	amps := make([]*vm.Instance, n)
	ports := make([]*vm.Queue, n)
	for k, ph := range phases {
		i, err := newMachine(program, "amplifier")
		if err != nil {
			return 0, err
		}
		amps[k], ports[k] = i, vm.NewQueue(ph)
	}
	ports[0].Push(signal)

	var (
		last vm.Cell
		seen bool
	)
	for running := n; running > 0; {
		progress := false
		running = 0
		for k, i := range amps {
			if i.Halted() {
				continue
			}
			ev, err := i.Resume(ports[k])
			if err != nil {
				return 0, errors.Wrapf(err, "amplifier %d", k)
			}
			switch ev.Status {
			case vm.ProducedOutput:
				progress = true
				ports[k].Drain()
				ports[(k+1)%n].Push(ev.Value)
				if k == n-1 {
					last, seen = ev.Value, true
				}
				running++
			case vm.Halted:
				progress = true
			default:
				running++
			}
		}
		if running > 0 && !progress {
			return 0, ErrDeadlock
		}
	}
	if !seen {
		return 0, errors.Wrapf(ErrNoOutput, "amplifier %d", n-1)
	}
	return last, nil
}

// MaxSignal tries every ordering of phases and returns the highest signal
// sent to the thrusters, starting from a signal of 0, along with the phase
// ordering that produced it. If feedback is true, the amplifiers are
// connected with Feedback, otherwise with Chain.
func MaxSignal(program []vm.Cell, phases []vm.Cell, feedback bool) (best vm.Cell, order []vm.Cell, err error) {
	run := Chain
	if feedback {
		run = Feedback
	}
	p := append([]vm.Cell(nil), phases...)
	err = permute(p, len(p), func(p []vm.Cell) error {
		v, err := run(program, p, 0)
		if err != nil {
			return errors.Wrapf(err, "phases %v", p)
		}
		if order == nil || v > best {
			best, order = v, append(order[:0], p...)
		}
		return nil
	})
	if err != nil {
		return 0, nil, err
	}
	return best, order, nil
}

// permute calls f with every permutation of the first k elements of p
// (Heap's algorithm).
func permute(p []vm.Cell, k int, f func([]vm.Cell) error) error {
	if k <= 1 {
		return f(p)
	}
	for j := 0; j < k-1; j++ {
		if err := permute(p, k-1, f); err != nil {
			return err
		}
		if k%2 == 0 {
			p[j], p[k-1] = p[k-1], p[j]
		} else {
			p[0], p[k-1] = p[k-1], p[0]
		}
	}
	return permute(p, k-1, f)
}

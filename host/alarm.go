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

// Gravity assist program addresses.
const (
	addrNoun vm.Cell = 1
	addrVerb vm.Cell = 2
)

// Alarm restores the gravity assist program to a given state by writing noun
// and verb at addresses 1 and 2, runs it and returns the value left at address
// 0.
func Alarm(program []vm.Cell, noun, verb vm.Cell) (vm.Cell, error) {
	i, err := newMachine(program, "alarm")
	if err != nil {
		return 0, err
	}
	if err = i.Poke(addrNoun, noun); err != nil {
		return 0, err
	}
	if err = i.Poke(addrVerb, verb); err != nil {
		return 0, err
	}
	if err = i.Run(nil); err != nil {
		return 0, err
	}
	return i.Peek(0)
}

// FindNounVerb searches nouns and verbs in the range [0, 99] for the pair
// that makes Alarm return target. Pairs that make the program fault are
// skipped.
func FindNounVerb(program []vm.Cell, target vm.Cell) (noun, verb vm.Cell, err error) {
	for noun = 0; noun < 100; noun++ {
		for verb = 0; verb < 100; verb++ {
			v, err := Alarm(program, noun, verb)
			if err != nil {
				continue
			}
			if v == target {
				return noun, verb, nil
			}
		}
	}
	return 0, 0, errors.Wrapf(ErrNotFound, "noun and verb for %d", target)
}

// Diagnostic runs a test program with the ID of the system under test as its
// single input. The program outputs one status value per test, 0 on
// success, followed by a diagnostic code. Diagnostic returns that code, or
// ErrDiagnosticFailed with the failing status if any test did not pass.
func Diagnostic(program []vm.Cell, system vm.Cell) (vm.Cell, error) {
	i, err := newMachine(program, "diagnostic", vm.BatchOutput(true))
	if err != nil {
		return 0, err
	}
	q := vm.NewQueue(system)
	if err = i.Run(q); err != nil {
		return 0, err
	}
	out := q.Outputs()
	if len(out) == 0 {
		return 0, errors.Wrapf(ErrNoOutput, "diagnostic for system %d", system)
	}
	for k, v := range out[:len(out)-1] {
		if v != 0 {
			hostLog.Warn("diagnostic test failed", "system", system, "test", k, "status", v)
			return v, errors.Wrapf(ErrDiagnosticFailed, "test #%d returned %d", k, v)
		}
	}
	return out[len(out)-1], nil
}

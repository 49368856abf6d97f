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

package vm_test

import (
	"testing"

	"github.com/ilSommo/advent-of-code-2019/vm"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type C []vm.Cell

// compare is a small program that outputs 999 if its input is below 8, 1000
// if it equals 8 and 1001 otherwise.
var compare = C{3, 21, 1008, 21, 8, 20, 1005, 20, 22, 107, 8, 21, 20, 1006, 20, 31,
	1106, 0, 36, 98, 0, 0, 1002, 21, 125, 20, 4, 20, 1105, 1, 46, 104,
	999, 1105, 1, 46, 1101, 1000, 1, 20, 4, 20, 1105, 1, 46, 98, 99}

var quine = C{109, 1, 204, -1, 1001, 100, 1, 100, 1008, 100, 16, 101, 1006, 101, 0, 99}

var tests = [...]struct {
	name   string
	code   C
	input  C
	output C
	mem    map[vm.Cell]vm.Cell
}{
	{"add", C{1, 0, 0, 0, 99}, nil, nil, map[vm.Cell]vm.Cell{0: 2}},
	{"mul", C{2, 3, 0, 3, 99}, nil, nil, map[vm.Cell]vm.Cell{3: 6}},
	{"mul far", C{2, 4, 4, 5, 99, 0}, nil, nil, map[vm.Cell]vm.Cell{5: 9801}},
	{"self modifying", C{1, 1, 1, 4, 99, 5, 6, 0, 99}, nil, nil, map[vm.Cell]vm.Cell{0: 30, 4: 2}},
	{"echo", C{3, 0, 4, 0, 99}, C{7}, C{7}, map[vm.Cell]vm.Cell{0: 7}},
	{"immediate", C{1002, 4, 3, 4, 33}, nil, nil, map[vm.Cell]vm.Cell{4: 99}},
	{"negative immediate", C{1101, 100, -1, 4, 0}, nil, nil, map[vm.Cell]vm.Cell{4: 99}},
	{"eq position 8", C{3, 9, 8, 9, 10, 9, 4, 9, 99, -1, 8}, C{8}, C{1}, nil},
	{"eq position 7", C{3, 9, 8, 9, 10, 9, 4, 9, 99, -1, 8}, C{7}, C{0}, nil},
	{"lt position 5", C{3, 9, 7, 9, 10, 9, 4, 9, 99, -1, 8}, C{5}, C{1}, nil},
	{"lt position 8", C{3, 9, 7, 9, 10, 9, 4, 9, 99, -1, 8}, C{8}, C{0}, nil},
	{"eq immediate 8", C{3, 3, 1108, -1, 8, 3, 4, 3, 99}, C{8}, C{1}, nil},
	{"lt immediate 9", C{3, 3, 1107, -1, 8, 3, 4, 3, 99}, C{9}, C{0}, nil},
	{"jf position 0", C{3, 12, 6, 12, 15, 1, 13, 14, 13, 4, 13, 99, -1, 0, 1, 9}, C{0}, C{0}, nil},
	{"jf position 5", C{3, 12, 6, 12, 15, 1, 13, 14, 13, 4, 13, 99, -1, 0, 1, 9}, C{5}, C{1}, nil},
	{"jt immediate 0", C{3, 3, 1105, -1, 9, 1101, 0, 0, 12, 4, 12, 99, 1}, C{0}, C{0}, nil},
	{"jt immediate 3", C{3, 3, 1105, -1, 9, 1101, 0, 0, 12, 4, 12, 99, 1}, C{3}, C{1}, nil},
	{"compare below", compare, C{7}, C{999}, nil},
	{"compare equal", compare, C{8}, C{1000}, nil},
	{"compare above", compare, C{9}, C{1001}, nil},
	{"quine", quine, nil, quine, nil},
	{"large product", C{1102, 34915192, 34915192, 7, 4, 7, 99, 0}, nil, C{1219070632396864}, nil},
	{"large literal", C{104, 1125899906842624, 99}, nil, C{1125899906842624}, nil},
	{"relative input", C{109, 5, 203, -2, 204, -2, 99}, C{42}, C{42}, map[vm.Cell]vm.Cell{3: 42}},
	{"self extending", C{1101, 2, 3, 1000, 4, 1000, 99}, nil, C{5}, map[vm.Cell]vm.Cell{1000: 5, 999: 0}},
	{"far sparse write", C{1101, 2, 3, 1 << 40, 4, 1 << 40, 99}, nil, C{5}, map[vm.Cell]vm.Cell{1 << 40: 5}},
}

func TestCore(t *testing.T) {
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			i, err := vm.New(test.code, vm.BatchOutput(true))
			require.NoError(t, err)
			q := vm.NewQueue(test.input...)
			require.NoError(t, i.Run(q))
			assert.Equal(t, vm.Halted, i.Status())
			assert.Equal(t, []vm.Cell(test.output), q.Outputs())
			for addr, v := range test.mem {
				got, err := i.Peek(addr)
				require.NoError(t, err)
				assert.Equal(t, v, got, "memory @%d", addr)
			}
		})
	}
}

func TestCore_errors(t *testing.T) {
	var errTests = [...]struct {
		name  string
		code  C
		input C
		cause error
	}{
		{"unknown opcode", C{42}, nil, vm.ErrIllegalInstruction},
		{"opcode zero", C{0}, nil, vm.ErrIllegalInstruction},
		{"negative word", C{-1}, nil, vm.ErrIllegalInstruction},
		{"immediate destination", C{11101, 1, 1, 0, 99}, nil, vm.ErrInvalidMode},
		{"immediate input", C{103, 0, 99}, C{1}, vm.ErrInvalidMode},
		{"unknown mode", C{301, 0, 0, 0, 99}, nil, vm.ErrInvalidMode},
		{"negative read", C{1, -1, 0, 0, 99}, nil, vm.ErrNegativeAddress},
		{"negative write", C{1101, 1, 1, -3, 99}, nil, vm.ErrNegativeAddress},
		{"negative relative", C{109, -10, 204, 0, 99}, nil, vm.ErrNegativeAddress},
		{"negative jump", C{1105, 1, -5}, nil, vm.ErrNegativeAddress},
		{"input exhausted", C{3, 0, 3, 0, 99}, C{1}, vm.ErrInputExhausted},
	}
	for _, test := range errTests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			i, err := vm.New(test.code)
			require.NoError(t, err)
			err = i.Run(vm.NewQueue(test.input...))
			require.Error(t, err)
			assert.Equal(t, test.cause, errors.Cause(err), "%+v", err)
			assert.True(t, errors.Is(err, test.cause))
			assert.Equal(t, vm.Faulted, i.Status())

			// faults are sticky
			pc := i.PC
			ev, again := i.Resume(vm.NewQueue(1, 2, 3))
			assert.Equal(t, vm.Faulted, ev.Status)
			assert.Equal(t, err, again)
			assert.Equal(t, pc, i.PC)
		})
	}
}

func TestCore_outputError(t *testing.T) {
	boom := errors.New("sink full")
	i, err := vm.New(C{104, 1, 99})
	require.NoError(t, err)
	_, err = i.Resume(vm.PortFuncs{Out: func(vm.Cell) error { return boom }})
	require.Error(t, err)
	assert.Equal(t, boom, errors.Cause(err))
	assert.Equal(t, vm.Faulted, i.Status())
}

func TestCore_suspension(t *testing.T) {
	i, err := vm.New(C{3, 0, 4, 0, 99})
	require.NoError(t, err)
	q := vm.NewQueue()

	ev, err := i.Resume(q)
	require.NoError(t, err)
	assert.Equal(t, vm.AwaitingInput, ev.Status)
	assert.Equal(t, vm.Cell(0), i.PC)

	// retrying without input is not an error
	ev, err = i.Resume(q)
	require.NoError(t, err)
	assert.Equal(t, vm.AwaitingInput, ev.Status)
	assert.Equal(t, vm.Cell(0), i.PC)
	assert.Equal(t, int64(0), i.InstructionCount())

	q.Push(7)
	ev, err = i.Resume(q)
	require.NoError(t, err)
	assert.Equal(t, vm.Event{Status: vm.ProducedOutput, Value: 7}, ev)
	assert.Equal(t, 0, q.Pending())
	assert.Equal(t, vm.Cell(4), i.PC)

	ev, err = i.Resume(q)
	require.NoError(t, err)
	assert.Equal(t, vm.Halted, ev.Status)
}

func TestCore_granularity(t *testing.T) {
	prog := C{104, 1, 104, 2, 104, 3, 99}

	i, err := vm.New(prog)
	require.NoError(t, err)
	q := vm.NewQueue()
	var got C
	for {
		ev, err := i.Resume(q)
		require.NoError(t, err)
		if ev.Status == vm.Halted {
			break
		}
		require.Equal(t, vm.ProducedOutput, ev.Status)
		got = append(got, ev.Value)
	}
	assert.Equal(t, C{1, 2, 3}, got)
	assert.Equal(t, []vm.Cell(got), q.Drain())

	i, err = vm.New(prog, vm.BatchOutput(true))
	require.NoError(t, err)
	q = vm.NewQueue()
	ev, err := i.Resume(q)
	require.NoError(t, err)
	assert.Equal(t, vm.Halted, ev.Status)
	assert.Equal(t, []vm.Cell{1, 2, 3}, q.Drain())
	assert.Empty(t, q.Outputs())
}

func TestCore_halted(t *testing.T) {
	i, err := vm.New(C{1, 0, 0, 0, 99})
	require.NoError(t, err)
	require.NoError(t, i.Run(nil))
	pc, count, mem := i.PC, i.InstructionCount(), i.Mem.Cells()

	for n := 0; n < 3; n++ {
		ev, err := i.Resume(vm.NewQueue(1))
		require.NoError(t, err)
		assert.Equal(t, vm.Halted, ev.Status)
		st, err := i.Step(nil)
		require.NoError(t, err)
		assert.Equal(t, vm.Halted, st)
		require.NoError(t, i.Run(nil))
	}
	assert.Equal(t, pc, i.PC)
	assert.Equal(t, count, i.InstructionCount())
	assert.Equal(t, mem, i.Mem.Cells())
	assert.True(t, i.Halted())
}

func TestCore_clone(t *testing.T) {
	i, err := vm.New(C{3, 0, 4, 0, 99})
	require.NoError(t, err)
	ev, err := i.Resume(nil)
	require.NoError(t, err)
	require.Equal(t, vm.AwaitingInput, ev.Status)

	c := i.Clone()
	require.NoError(t, c.Poke(100, 5))
	ev, err = c.Resume(vm.NewQueue(1))
	require.NoError(t, err)
	assert.Equal(t, vm.Cell(1), ev.Value)

	// the parent is untouched by the clone
	v, err := i.Peek(100)
	require.NoError(t, err)
	assert.Equal(t, vm.Cell(0), v)
	assert.Equal(t, vm.Cell(0), i.PC)
	assert.Equal(t, vm.AwaitingInput, i.Status())

	ev, err = i.Resume(vm.NewQueue(2))
	require.NoError(t, err)
	assert.Equal(t, vm.Cell(2), ev.Value)

	// and the clone is untouched by the parent
	v, err = c.Peek(0)
	require.NoError(t, err)
	assert.Equal(t, vm.Cell(1), v)
	v, err = c.Peek(100)
	require.NoError(t, err)
	assert.Equal(t, vm.Cell(5), v)
}

func TestCore_relative(t *testing.T) {
	for _, rc := range []struct{ base, v vm.Cell }{{100, -3}, {0, 50}, {-20, 40}, {7, 1 << 30}} {
		prog := C{109, rc.base, 21101, 5, 6, rc.v, 204, rc.v, 99}
		out, err := vm.Exec(prog)
		require.NoError(t, err)
		assert.Equal(t, []vm.Cell{11}, out)

		i, err := vm.New(prog)
		require.NoError(t, err)
		require.NoError(t, i.Run(nil))
		assert.Equal(t, rc.base, i.RB)
		v, err := i.Peek(rc.base + rc.v)
		require.NoError(t, err)
		assert.Equal(t, vm.Cell(11), v)
	}
}

func TestCore_determinism(t *testing.T) {
	run := func() ([]vm.Cell, []vm.Cell) {
		i, err := vm.New(compare, vm.BatchOutput(true))
		require.NoError(t, err)
		require.NoError(t, i.Poke(1, 21))
		q := vm.NewQueue(8)
		require.NoError(t, i.Run(q))
		return q.Outputs(), i.Mem.Cells()
	}
	out1, mem1 := run()
	out2, mem2 := run()
	assert.Equal(t, out1, out2)
	assert.Equal(t, mem1, mem2)
}

// The self reporting program from the relative base example: it sets the
// relative base to 1 and outputs address 0, i.e. its own first word.
func TestCore_selfReport(t *testing.T) {
	i, err := vm.New(C{109, 1, 204, -1, 1101, 100, 1, 85, 8, 0, 99})
	require.NoError(t, err)
	ev, err := i.Resume(nil)
	require.NoError(t, err)
	assert.Equal(t, vm.Event{Status: vm.ProducedOutput, Value: 109}, ev)
	assert.Equal(t, vm.Cell(1), i.RB)
}

func TestCore_instructionCount(t *testing.T) {
	i, err := vm.New(compare)
	require.NoError(t, err)
	require.NoError(t, i.Run(vm.NewQueue(8)))
	// in, eq, jt, mul, out, jt, hlt
	assert.Equal(t, int64(7), i.InstructionCount())
}

func BenchmarkCore_quine(b *testing.B) {
	for c := 0; c < b.N; c++ {
		if _, err := vm.Exec(quine); err != nil {
			b.Fatal(err)
		}
	}
}

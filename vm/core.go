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

package vm

import "github.com/pkg/errors"

// operand returns the value of parameter k of the instruction at PC.
func (i *Instance) operand(ins Instruction, k int) (Cell, error) {
	v, err := i.Mem.Read(i.PC + 1 + Cell(k))
	if err != nil {
		return 0, err
	}
	switch ins.Modes[k] {
	case ModeImmediate:
		return v, nil
	case ModeRelative:
		v += i.RB
	}
	return i.Mem.Read(v)
}

// address returns the memory address designated by parameter k of the
// instruction at PC. Decode guarantees that k is not in immediate mode.
func (i *Instance) address(ins Instruction, k int) (Cell, error) {
	v, err := i.Mem.Read(i.PC + 1 + Cell(k))
	if err != nil {
		return 0, err
	}
	if ins.Modes[k] == ModeRelative {
		v += i.RB
	}
	if v < 0 {
		return 0, errors.Wrapf(ErrNegativeAddress, "parameter %d resolves to %d", k+1, v)
	}
	return v, nil
}

func (i *Instance) fault(err error) (Status, error) {
	err = errors.Wrapf(err, "fault @pc=%d, rb=%d", i.PC, i.RB)
	i.status, i.err = Faulted, err
	i.log.Debug("machine faulted", "pc", i.PC, "rb", i.RB, "steps", i.insCount, "err", err)
	return Faulted, err
}

// Step executes exactly one instruction and returns the resulting status.
//
// If the instruction at PC is an input instruction and the port has no value
// available, Step returns AwaitingInput and leaves the machine untouched so
// that the instruction is retried on the next call. After an output
// instruction, Step returns ProducedOutput.
//
// Calling Step on a halted machine is a no-op that returns Halted. Calling it
// on a faulted machine returns the error that faulted it.
func (i *Instance) Step(p Port) (Status, error) {
	switch i.status {
	case Halted:
		return Halted, nil
	case Faulted:
		return Faulted, i.err
	}
	if p == nil {
		p = PortFuncs{}
	}
	i.status = Running

	word, err := i.Mem.Read(i.PC)
	if err != nil {
		return i.fault(err)
	}
	ins, err := Decode(word)
	if err != nil {
		return i.fault(err)
	}
	if i.trace {
		i.log.Debug("step", "pc", i.PC, "rb", i.RB, "op", ins.Op, "word", word)
	}

	switch ins.Op {
	case OpAdd, OpMul, OpLt, OpEq:
		a, err := i.operand(ins, 0)
		if err != nil {
			return i.fault(err)
		}
		b, err := i.operand(ins, 1)
		if err != nil {
			return i.fault(err)
		}
		dst, err := i.address(ins, 2)
		if err != nil {
			return i.fault(err)
		}
		var v Cell
		switch ins.Op {
		case OpAdd:
			v = a + b
		case OpMul:
			v = a * b
		case OpLt:
			if a < b {
				v = 1
			}
		case OpEq:
			if a == b {
				v = 1
			}
		}
		if err = i.Mem.Write(dst, v); err != nil {
			return i.fault(err)
		}
		i.PC += 4
	case OpIn:
		dst, err := i.address(ins, 0)
		if err != nil {
			return i.fault(err)
		}
		v, ok := p.Input()
		if !ok {
			i.status = AwaitingInput
			return AwaitingInput, nil
		}
		if err = i.Mem.Write(dst, v); err != nil {
			return i.fault(err)
		}
		i.PC += 2
	case OpOut:
		v, err := i.operand(ins, 0)
		if err != nil {
			return i.fault(err)
		}
		if err = p.Output(v); err != nil {
			return i.fault(errors.Wrap(err, "output"))
		}
		i.PC += 2
		i.status = ProducedOutput
		i.last = v
	case OpJt, OpJf:
		v, err := i.operand(ins, 0)
		if err != nil {
			return i.fault(err)
		}
		target, err := i.operand(ins, 1)
		if err != nil {
			return i.fault(err)
		}
		if (v != 0) == (ins.Op == OpJt) {
			if target < 0 {
				return i.fault(errors.Wrapf(ErrNegativeAddress, "jump to %d", target))
			}
			i.PC = target
		} else {
			i.PC += 3
		}
	case OpArb:
		v, err := i.operand(ins, 0)
		if err != nil {
			return i.fault(err)
		}
		i.RB += v
		i.PC += 2
	case OpHalt:
		i.status = Halted
		i.log.Debug("machine halted", "pc", i.PC, "steps", i.insCount+1)
	}
	i.insCount++
	return i.status, nil
}

// Resume runs the machine until the next event the host must handle: an
// output value (unless output is batched), a need for input, or a halt.
//
// Input is read from p and outputs are always sent to p.Output, even when
// Resume returns them in Event.Value. Resuming a halted machine is a no-op
// that returns an Event with status Halted.
func (i *Instance) Resume(p Port) (Event, error) {
	for {
		st, err := i.Step(p)
		if err != nil {
			return Event{Status: st}, err
		}
		switch st {
		case ProducedOutput:
			if !i.batch {
				return Event{Status: st, Value: i.last}, nil
			}
		case AwaitingInput, Halted:
			return Event{Status: st}, nil
		}
	}
}

// Run runs the machine to completion using the input values available in p.
// If the program requests more input than p can supply, the machine faults
// with ErrInputExhausted.
func (i *Instance) Run(p Port) error {
	for {
		ev, err := i.Resume(p)
		if err != nil {
			return err
		}
		switch ev.Status {
		case Halted:
			return nil
		case AwaitingInput:
			_, err = i.fault(ErrInputExhausted)
			return err
		}
	}
}

// Exec runs program to completion on a new machine with the given input and
// returns the output values.
func Exec(program []Cell, input ...Cell) ([]Cell, error) {
	i, err := New(program, BatchOutput(true))
	if err != nil {
		return nil, err
	}
	q := NewQueue(input...)
	if err = i.Run(q); err != nil {
		return q.Outputs(), err
	}
	return q.Outputs(), nil
}

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

import (
	"strconv"

	"github.com/pkg/errors"
)

// Opcode is the operation selector found in the two low decimal digits of an
// instruction word.
type Opcode Cell

// Intcode opcodes.
const (
	OpAdd  Opcode = 1
	OpMul  Opcode = 2
	OpIn   Opcode = 3
	OpOut  Opcode = 4
	OpJt   Opcode = 5
	OpJf   Opcode = 6
	OpLt   Opcode = 7
	OpEq   Opcode = 8
	OpArb  Opcode = 9
	OpHalt Opcode = 99
)

type opInfo struct {
	name   string
	arity  int
	writes int // index of the destination parameter, -1 if none
}

var opcodes = map[Opcode]opInfo{
	OpAdd:  {"add", 3, 2},
	OpMul:  {"mul", 3, 2},
	OpIn:   {"in", 1, 0},
	OpOut:  {"out", 1, -1},
	OpJt:   {"jt", 2, -1},
	OpJf:   {"jf", 2, -1},
	OpLt:   {"lt", 3, 2},
	OpEq:   {"eq", 3, 2},
	OpArb:  {"arb", 1, -1},
	OpHalt: {"hlt", 0, -1},
}

var opcodeIndex = make(map[string]Opcode, len(opcodes))

func init() {
	for op, info := range opcodes {
		opcodeIndex[info.name] = op
	}
}

// Valid reports whether op belongs to the instruction set.
func (op Opcode) Valid() bool {
	_, ok := opcodes[op]
	return ok
}

// String returns the mnemonic of op.
func (op Opcode) String() string {
	if info, ok := opcodes[op]; ok {
		return info.name
	}
	return "op(" + strconv.FormatInt(int64(op), 10) + ")"
}

// Arity returns the number of parameters op takes.
func (op Opcode) Arity() int {
	return opcodes[op].arity
}

// Writes returns the index of the parameter op writes its result to, or -1 if
// op does not write to memory.
func (op Opcode) Writes() int {
	if info, ok := opcodes[op]; ok {
		return info.writes
	}
	return -1
}

// LookupOpcode returns the opcode for the given mnemonic.
func LookupOpcode(name string) (Opcode, bool) {
	op, ok := opcodeIndex[name]
	return op, ok
}

// Mode is a parameter addressing mode.
type Mode int

// Parameter modes.
const (
	ModePosition  Mode = 0
	ModeImmediate Mode = 1
	ModeRelative  Mode = 2
)

func (m Mode) String() string {
	switch m {
	case ModePosition:
		return "position"
	case ModeImmediate:
		return "immediate"
	case ModeRelative:
		return "relative"
	}
	return "mode(" + strconv.Itoa(int(m)) + ")"
}

// MaxParams is the largest number of parameters of any instruction.
const MaxParams = 3

var modeScale = [MaxParams]Cell{100, 1000, 10000}

// Instruction is the decoded view of an instruction word.
type Instruction struct {
	Op    Opcode
	Modes [MaxParams]Mode
}

// Decode decodes an instruction word. Only the modes of the parameters used by
// the opcode are checked, the others are left to ModePosition.
func Decode(word Cell) (Instruction, error) {
	var ins Instruction
	if word < 0 {
		return ins, errors.Wrapf(ErrIllegalInstruction, "word %d", word)
	}
	ins.Op = Opcode(word % 100)
	info, ok := opcodes[ins.Op]
	if !ok {
		return ins, errors.Wrapf(ErrIllegalInstruction, "opcode %d in word %d", ins.Op, word)
	}
	for k := 0; k < info.arity; k++ {
		m := Mode(word / modeScale[k] % 10)
		switch m {
		case ModePosition, ModeRelative:
		case ModeImmediate:
			if k == info.writes {
				return ins, errors.Wrapf(ErrInvalidMode, "immediate write parameter %d in word %d", k+1, word)
			}
		default:
			return ins, errors.Wrapf(ErrInvalidMode, "mode %d for parameter %d in word %d", m, k+1, word)
		}
		ins.Modes[k] = m
	}
	return ins, nil
}

// Encode returns the instruction word for ins. It is the inverse of Decode.
func (ins Instruction) Encode() Cell {
	w := Cell(ins.Op)
	for k := 0; k < MaxParams; k++ {
		w += Cell(ins.Modes[k]) * modeScale[k]
	}
	return w
}

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

package asm

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"text/scanner"

	"github.com/ilSommo/advent-of-code-2019/internal/ici"
	"github.com/ilSommo/advent-of-code-2019/vm"
)

// maxErrors is the maximum number of errors reported by Assemble.
const maxErrors = 10

// ErrMsg is a single assembly error.
type ErrMsg struct {
	Pos scanner.Position
	Msg string
}

// ErrAsm is the error type returned by Assemble. It collects up to 10 errors.
type ErrAsm []ErrMsg

func (e ErrAsm) Error() string {
	var b bytes.Buffer
	for n, m := range e {
		if n > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(m.Pos.String())
		b.WriteString(": ")
		b.WriteString(m.Msg)
	}
	return b.String()
}

// Assemble compiles assembly read from the supplied io.Reader and returns the
// resulting program and error if any.
//
// Then name parameter is used only in error messages to name the source of the
// error. If the io.Reader is a file, name should be the file name.
//
// The returned error, if not nil, can safely be cast to an ErrAsm value.
func Assemble(name string, r io.Reader) (prog []vm.Cell, err error) {
	p := newParser()
	prog, err = p.Parse(name, r)
	if err != nil {
		return nil, err
	}
	return prog, nil
}

// Disassemble writes a disassembly of the instruction at position pc in mem
// to the specified io.Writer and returns the position of the next instruction
// and any write error.
//
// Words that do not decode as a valid instruction are written as a .dat
// directive. Missing parameters at the end of mem are written as "???".
func Disassemble(mem []vm.Cell, pc int, w io.Writer) (next int, err error) {
	ew := ici.NewErrWriter(w)
	word := mem[pc]
	pc++
	ins, err := vm.Decode(word)
	if err != nil {
		ew.WriteString(".dat ")
		ew.WriteString(strconv.FormatInt(int64(word), 10))
		return pc, ew.Err
	}
	ew.WriteString(ins.Op.String())
	for k := 0; k < ins.Op.Arity(); k++ {
		ew.Write([]byte{' '})
		if pc >= len(mem) {
			ew.WriteString("???")
			continue
		}
		switch ins.Modes[k] {
		case vm.ModeImmediate:
			ew.Write([]byte{'#'})
		case vm.ModeRelative:
			ew.Write([]byte{'@'})
		}
		ew.WriteString(strconv.FormatInt(int64(mem[pc]), 10))
		pc++
	}
	return pc, ew.Err
}

// DisassembleAll writes a disassembly of all cells in the given slice to
// the specified io.Writer. The base argument specifies the real address of the
// first cell (mem[0]). It will return any write error.
func DisassembleAll(mem []vm.Cell, base int, w io.Writer) error {
	ew := ici.NewErrWriter(w)
	for pc := 0; pc < len(mem); {
		fmt.Fprintf(ew, "% 10d\t", base+pc)
		pc, _ = Disassemble(mem, pc, ew)
		ew.Write([]byte{'\n'})
		if ew.Err != nil {
			return ew.Err
		}
	}
	return nil
}

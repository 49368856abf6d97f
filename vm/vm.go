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
	"io"
	"strconv"

	"github.com/ilSommo/advent-of-code-2019/internal/ici"
	log "github.com/inconshreveable/log15"
	"github.com/pkg/errors"
)

// Cell is the raw type stored in a memory location.
type Cell int64

// Status is the run status of a machine.
type Status int

// Machine run statuses.
const (
	Running Status = iota
	AwaitingInput
	ProducedOutput
	Halted
	Faulted
)

var statusNames = [...]string{"running", "awaiting input", "produced output", "halted", "faulted"}

func (s Status) String() string {
	if s >= 0 && int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "status(" + strconv.Itoa(int(s)) + ")"
}

// Event is the result of a call to Resume. Value is only meaningful when
// Status is ProducedOutput.
type Event struct {
	Status Status
	Value  Cell
}

// Instance represents an Intcode machine.
type Instance struct {
	PC       Cell // Instruction pointer
	RB       Cell // Relative base
	Mem      *Memory
	status   Status
	err      error
	last     Cell
	insCount int64
	batch    bool
	trace    bool
	log      log.Logger
}

// Option interface
type Option func(*Instance) error

// BatchOutput sets the output granularity of Resume. When batch is false (the
// default), Resume returns after each output instruction. When true, outputs
// only go to the port and Resume returns when the machine needs input or
// halts.
func BatchOutput(batch bool) Option {
	return func(i *Instance) error { i.batch = batch; return nil }
}

// Logger sets the logger used by the instance. The default logger discards
// everything.
func Logger(l log.Logger) Option {
	return func(i *Instance) error {
		i.log = l
		return nil
	}
}

// Trace enables logging of every executed instruction at debug level.
func Trace(trace bool) Option {
	return func(i *Instance) error { i.trace = trace; return nil }
}

// Patch writes v at address addr once the program is loaded. It fails with
// ErrNegativeAddress for addresses below 0.
func Patch(addr, v Cell) Option {
	return func(i *Instance) error {
		return errors.Wrapf(i.Mem.Write(addr, v), "patch %d=%d", addr, v)
	}
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

func discardLogger() log.Logger {
	l := log.New()
	l.SetHandler(log.DiscardHandler())
	return l
}

// New creates a new machine with its memory initialized from a copy of
// program. The machine starts at PC 0 with a relative base of 0.
//
// Options will be set by calling SetOptions.
func New(program []Cell, opts ...Option) (*Instance, error) {
	i := &Instance{
		Mem: NewMemory(program),
		log: discardLogger(),
	}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	return i, nil
}

// Clone returns a fully independent copy of the instance: memory and
// registers are deep copied, options are shared.
func (i *Instance) Clone() *Instance {
	c := *i
	c.Mem = i.Mem.Clone()
	return &c
}

// Status returns the current run status.
func (i *Instance) Status() Status {
	return i.status
}

// Err returns the error that faulted the machine, if any.
func (i *Instance) Err() error {
	return i.err
}

// Halted reports whether the machine reached a halt instruction.
func (i *Instance) Halted() bool {
	return i.status == Halted
}

// InstructionCount returns the number of instructions executed so far.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}

// Peek returns the value at address addr. It is meant for hosts inspecting
// results.
func (i *Instance) Peek(addr Cell) (Cell, error) {
	return i.Mem.Read(addr)
}

// Poke stores v at address addr. It is meant for hosts patching a program
// before or between runs.
func (i *Instance) Poke(addr, v Cell) error {
	return i.Mem.Write(addr, v)
}

// Dump writes the machine registers on a first line as "pc,rb", followed by
// the memory contents in program text format.
func (i *Instance) Dump(w io.Writer) error {
	ew := ici.NewErrWriter(w)
	io.WriteString(ew, strconv.FormatInt(int64(i.PC), 10))
	ew.Write([]byte{','})
	io.WriteString(ew, strconv.FormatInt(int64(i.RB), 10))
	ew.Write([]byte{'\n'})
	if err := Format(ew, i.Mem.Cells()); err != nil {
		return err
	}
	ew.Write([]byte{'\n'})
	return ew.Err
}

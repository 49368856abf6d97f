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

// Port is the I/O transport between a machine and its host. It carries no
// interpretation of the values.
//
// Input returns the next pending input value, or false if none is available
// yet, in which case the machine suspends with AwaitingInput and will retry
// the same instruction on the next resume. Output receives output values in
// production order; a non-nil error is fatal to the machine.
type Port interface {
	Input() (v Cell, ok bool)
	Output(v Cell) error
}

// InHandler is the function prototype for custom input sources.
type InHandler func() (Cell, bool)

// OutHandler is the function prototype for custom output sinks.
type OutHandler func(v Cell) error

// PortFuncs builds a Port from a pair of handler functions. A nil In handler
// never has input available, a nil Out handler discards values.
type PortFuncs struct {
	In  InHandler
	Out OutHandler
}

// Input implements Port.
func (p PortFuncs) Input() (Cell, bool) {
	if p.In == nil {
		return 0, false
	}
	return p.In()
}

// Output implements Port.
func (p PortFuncs) Output(v Cell) error {
	if p.Out == nil {
		return nil
	}
	return p.Out(v)
}

// Queue is a Port backed by a FIFO of pending inputs and a slice collecting
// outputs.
//
// The zero value is an empty queue ready to use.
type Queue struct {
	in  []Cell
	out []Cell
}

// NewQueue returns a new Queue with the given pending input values.
func NewQueue(input ...Cell) *Queue {
	q := new(Queue)
	q.Push(input...)
	return q
}

// Push appends values to the input FIFO.
func (q *Queue) Push(v ...Cell) {
	q.in = append(q.in, v...)
}

// Pending returns the number of input values not consumed yet.
func (q *Queue) Pending() int {
	return len(q.in)
}

// Input implements Port.
func (q *Queue) Input() (Cell, bool) {
	if len(q.in) == 0 {
		return 0, false
	}
	v := q.in[0]
	q.in = q.in[1:]
	return v, true
}

// Output implements Port.
func (q *Queue) Output(v Cell) error {
	q.out = append(q.out, v)
	return nil
}

// Outputs returns the output values collected so far. The returned slice is
// owned by the queue until the next call to Drain.
func (q *Queue) Outputs() []Cell {
	return q.out
}

// Drain returns the output values collected so far and clears them.
func (q *Queue) Drain() []Cell {
	out := q.out
	q.out = nil
	return out
}

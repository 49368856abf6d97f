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

// Package vm implements an Intcode virtual machine.
//
// A machine is created from a program (a slice of Cells, usually obtained
// with Parse or Load) and driven by its host through a Port: the host pushes
// input values and collects output values, and calls Resume each time the
// machine suspends. Resume returns an Event telling why it returned: an
// output value was produced, the program needs more input, or it halted.
//
// Two granularities are available. By default, Resume returns after every
// output instruction, which suits interactive hosts and feedback pipelines.
// With the BatchOutput option, outputs are only delivered to the port and
// Resume returns when input is needed or the program halts. Run and Exec run
// a program to completion with a fixed input.
//
// An input instruction executed while the port has no value available leaves
// the machine untouched: the same instruction is retried on the next call to
// Resume. Once halted, a machine stays halted and further calls to Step,
// Resume or Run return Halted without doing anything.
//
// Machines never share memory. Clone returns a deep copy suitable for
// exploring several futures from the same state.
//
// Errors returned by a machine are fatal to it and can be matched with
// errors.Cause against ErrNegativeAddress, ErrInvalidMode,
// ErrIllegalInstruction and ErrInputExhausted.
package vm

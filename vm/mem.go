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

// Addresses below denseLimit live in a growable slice, anything above goes
// to a map.
const (
	denseLimit = 1 << 20
	growChunk  = 1024
)

// Memory is the sparse, auto-extending store of a machine. Addresses that
// have never been written read as 0.
//
// The zero value is an empty memory ready to use.
type Memory struct {
	dense  []Cell
	sparse map[Cell]Cell
}

// NewMemory returns a new Memory initialized with a copy of program at
// addresses 0 to len(program)-1.
func NewMemory(program []Cell) *Memory {
	m := &Memory{dense: make([]Cell, len(program), len(program)+growChunk)}
	copy(m.dense, program)
	return m
}

// Read returns the value stored at address addr.
func (m *Memory) Read(addr Cell) (Cell, error) {
	if addr < 0 {
		return 0, errors.Wrapf(ErrNegativeAddress, "read @%d", addr)
	}
	if addr < Cell(len(m.dense)) {
		return m.dense[addr], nil
	}
	return m.sparse[addr], nil
}

// Write stores v at address addr, extending the memory as needed.
func (m *Memory) Write(addr, v Cell) error {
	if addr < 0 {
		return errors.Wrapf(ErrNegativeAddress, "write @%d", addr)
	}
	switch {
	case addr < Cell(len(m.dense)):
		m.dense[addr] = v
	case addr < denseLimit:
		m.grow(int(addr) + 1)
		m.dense[addr] = v
	default:
		if m.sparse == nil {
			if v == 0 {
				return nil
			}
			m.sparse = make(map[Cell]Cell)
		}
		m.sparse[addr] = v
	}
	return nil
}

func (m *Memory) grow(n int) {
	if n <= cap(m.dense) {
		m.dense = m.dense[:n]
		return
	}
	t := make([]Cell, n, n+growChunk)
	copy(t, m.dense)
	m.dense = t
}

// Len returns the size of the dense part of the memory, i.e. one past the
// highest address written below the sparse threshold, or the program size if
// larger.
func (m *Memory) Len() int {
	return len(m.dense)
}

// Cells returns a copy of the dense part of the memory.
func (m *Memory) Cells() []Cell {
	c := make([]Cell, len(m.dense))
	copy(c, m.dense)
	return c
}

// Clone returns an independent deep copy of m.
func (m *Memory) Clone() *Memory {
	c := &Memory{dense: make([]Cell, len(m.dense), cap(m.dense))}
	copy(c.dense, m.dense)
	if len(m.sparse) > 0 {
		c.sparse = make(map[Cell]Cell, len(m.sparse))
		for k, v := range m.sparse {
			c.sparse[k] = v
		}
	}
	return c
}

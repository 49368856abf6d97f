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

// Package ascii provides helpers for Intcode programs that talk ASCII: their
// input and output values are character codes, possibly followed by values
// outside of the ASCII range that carry a numeric result.
package ascii

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/ilSommo/advent-of-code-2019/vm"
	"github.com/pkg/errors"
)

// MaxChar is the largest value treated as a character.
const MaxChar = 127

// IsChar reports whether v is an ASCII character code.
func IsChar(v vm.Cell) bool {
	return v >= 0 && v <= MaxChar
}

// Encode returns the character codes of s. Non ASCII bytes are encoded
// as-is.
func Encode(s string) []vm.Cell {
	c := make([]vm.Cell, len(s))
	for i := 0; i < len(s); i++ {
		c[i] = vm.Cell(s[i])
	}
	return c
}

// EncodeLines returns the character codes of the given lines, each one
// terminated by a new line.
func EncodeLines(lines ...string) []vm.Cell {
	var c []vm.Cell
	for _, l := range lines {
		c = append(c, Encode(l)...)
		c = append(c, '\n')
	}
	return c
}

// Decode converts the leading ASCII values of cells to a string and returns
// it along with the remaining values, starting at the first non ASCII value.
func Decode(cells []vm.Cell) (text string, rest []vm.Cell) {
	var b strings.Builder
	for i, c := range cells {
		if !IsChar(c) {
			return b.String(), cells[i:]
		}
		b.WriteByte(byte(c))
	}
	return b.String(), nil
}

// Port is a vm.Port that reads input characters from an io.Reader and writes
// output characters to an io.Writer. Output values outside of the ASCII range
// are written in decimal on their own line.
type Port struct {
	r   *bufio.Reader
	w   io.Writer
	err error
}

// NewPort returns a new Port reading from r and writing to w. Either may be
// nil.
func NewPort(r io.Reader, w io.Writer) *Port {
	p := &Port{w: w}
	if r != nil {
		p.r = bufio.NewReader(r)
	}
	return p
}

// Input implements vm.Port. It blocks until a byte is available and reports
// no input once the reader is exhausted or fails. Carriage returns are
// dropped.
func (p *Port) Input() (vm.Cell, bool) {
	if p.r == nil || p.err != nil {
		return 0, false
	}
	for {
		c, err := p.r.ReadByte()
		if err != nil {
			if err != io.EOF {
				p.err = errors.Wrap(err, "ascii input")
			} else {
				p.err = err
			}
			return 0, false
		}
		if c != '\r' {
			return vm.Cell(c), true
		}
	}
}

// Err returns the input error that stopped the port, if any. Reaching the end
// of the input is not an error.
func (p *Port) Err() error {
	if p.err == io.EOF {
		return nil
	}
	return p.err
}

// Output implements vm.Port.
func (p *Port) Output(v vm.Cell) error {
	if p.w == nil {
		return nil
	}
	var err error
	if IsChar(v) {
		_, err = p.w.Write([]byte{byte(v)})
	} else {
		_, err = io.WriteString(p.w, strconv.FormatInt(int64(v), 10)+"\n")
	}
	return errors.Wrap(err, "ascii output")
}

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

package asm_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ilSommo/advent-of-code-2019/asm"
	"github.com/ilSommo/advent-of-code-2019/vm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const doubler = `
( doubles its input until it reads 0 )
.equ FACTOR 2
:loop	in n
	jf n #done
	mul n #FACTOR result
	out result
	jt #1 #loop
:done	hlt
:n	.dat 0
:result	.dat 0
`

func TestAssemble(t *testing.T) {
	prog, err := asm.Assemble("doubler", strings.NewReader(doubler))
	require.NoError(t, err)
	assert.Equal(t, []vm.Cell{3, 15, 1006, 15, 14, 1002, 15, 2, 16, 4, 16, 1105, 1, 0, 99, 0, 0}, prog)

	out, err := vm.Exec(prog, 5, 21, 0)
	require.NoError(t, err)
	assert.Equal(t, []vm.Cell{10, 42}, out)
}

func TestAssemble_syntax(t *testing.T) {
	var asmTests = [...]struct {
		name string
		code string
		prog []vm.Cell
	}{
		{"relative", "arb #5 in @-2 out @-2 hlt", []vm.Cell{109, 5, 203, -2, 204, -2, 99}},
		{"commas", "add #1, #2, 10\nhlt", []vm.Cell{1101, 1, 2, 10, 99}},
		{"char", "out #'A'\nhlt", []vm.Cell{104, 65, 99}},
		{"hex", "out #0x10 hlt", []vm.Cell{104, 16, 99}},
		{"org", ".org 4 hlt", []vm.Cell{0, 0, 0, 0, 99}},
		{"dat", ".dat 1 -2 'x' end :end", []vm.Cell{1, -2, 120, 4}},
		{"relative label", "arb #table out @1 hlt :table .dat 7 8", []vm.Cell{109, 5, 204, 1, 99, 7, 8}},
		{"equ", ".equ N 3 .equ M N add #N #M 0 hlt", []vm.Cell{1101, 3, 3, 0, 99}},
		{"uppercase directive", ".DAT 5", []vm.Cell{5}},
	}
	for _, test := range asmTests {
		prog, err := asm.Assemble(test.name, strings.NewReader(test.code))
		if assert.NoError(t, err, test.name) {
			assert.Equal(t, test.prog, prog, test.name)
		}
	}
}

// check some errors. We're not checking the full messages, rather that they
// are reported.
func TestAssemble_errors(t *testing.T) {
	for code, msg := range map[string]string{
		"add #1 #2 #3":     "Immediate mode not allowed",
		"in #0":            "Immediate mode not allowed",
		"foo":              "Unknown instruction foo",
		"in missing":       "Undefined label missing",
		"add 1 2":          "Missing parameters for add",
		"add 1 2 hlt":      "Missing parameters for add",
		":x :x hlt":        "Label redefinition: x",
		".bogus":           "Unknown directive",
		".org -1":          "Invalid .org address",
		".org":             "Missing directive argument",
		"( unterminated":   "Unterminated comment",
		"out #'ab'":        "Invalid character literal",
		".equ K 1 :K hlt":  "previously defined as a constant",
		"in :x":            "Missing parameters for in",
		"out #":            "Missing value after mode prefix",
	} {
		_, err := asm.Assemble("test_errors", strings.NewReader(code))
		if !assert.Error(t, err, code) {
			continue
		}
		errs, ok := err.(asm.ErrAsm)
		require.True(t, ok, code)
		require.NotEmpty(t, errs, code)
		found := false
		for _, e := range errs {
			if strings.Contains(e.Msg, msg) {
				found = true
				assert.Equal(t, "test_errors", e.Pos.Filename, code)
			}
		}
		assert.True(t, found, "%q: expected %q in %v", code, msg, err)
	}
}

func TestAssemble_errorLimit(t *testing.T) {
	_, err := asm.Assemble("many", strings.NewReader(strings.Repeat("bad ", 50)))
	require.Error(t, err)
	assert.Len(t, err.(asm.ErrAsm), 10)
}

func TestDisassemble(t *testing.T) {
	prog := []vm.Cell{3, 15, 1006, 15, 14, 1002, 15, 2, 16, 4, 16, 1105, 1, 0, 99}
	var b bytes.Buffer
	for pc := 0; pc < len(prog); {
		var err error
		pc, err = asm.Disassemble(prog, pc, &b)
		require.NoError(t, err)
		b.WriteByte('\n')
	}
	assert.Equal(t, "in 15\njf 15 #14\nmul 15 #2 16\nout 16\njt #1 #0\nhlt\n", b.String())

	// and back
	again, err := asm.Assemble("roundtrip", &b)
	require.NoError(t, err)
	assert.Equal(t, prog, again)
}

func TestDisassemble_truncated(t *testing.T) {
	var b bytes.Buffer
	next, err := asm.Disassemble([]vm.Cell{1101, 1}, 0, &b)
	require.NoError(t, err)
	assert.Equal(t, 2, next)
	assert.Equal(t, "add #1 ??? ???", b.String())
}

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

// Package asm provides utility functions to assemble and disassemble Intcode
// programs.
//
// Supported assembler mnemonics:
//
//	Parameters marked "w" are write destinations and may not use immediate
//	mode.
//
//	opcode	asm	params	description
//	------	---	------	------------------------------------------------------
//	1	add	a b w	w = a + b
//	2	mul	a b w	w = a * b
//	3	in	w	read the next input value into w
//	4	out	a	output a
//	5	jt	a t	jump to t if a != 0
//	6	jf	a t	jump to t if a == 0
//	7	lt	a b w	w = 1 if a < b else 0
//	8	eq	a b w	w = 1 if a == b else 0
//	9	arb	a	add a to the relative base
//	99	hlt		halt
//
// Parameters:
//
// A parameter is a value with an optional addressing mode prefix:
//
//	42	position mode: the value at address 42
//	#42	immediate mode: the value 42 itself
//	@-1	relative mode: the value at address relative base - 1
//
// A value is an integer literal (see strconv.ParseInt), a Go character literal
// between single quotes, a constant defined with .equ or a label. A trailing
// comma after a parameter is ignored, so that "add #1, #2, 10" and
// "add #1 #2 10" are equivalent.
//
// Comments:
//
// Comments are placed between parentheses, i.e. '(' and ')'. The body of the
// comment must be separated from the enclosing parentheses by a space:
//
//	( this is a valid comment )
//	(this is not )
//
// Labels:
//
// Labels are defined by prefixing them with a colon (:) and evaluate to the
// address they are defined at. Forward references are ok:
//
//	:loop	in counter
//		jf counter #done
//		out counter
//		jt #1 #loop
//	:done	hlt
//	:counter .dat 0
//
// Assembler directives:
//
//	.equ <IDENTIFIER> <value>
//
// defines a constant value. The value must be an integer literal, a named
// constant or a character literal.
//
//	.org <value>
//
// places the next instruction or data at the given address.
//
//	.dat <value> ...
//
// compiles the following values as-is until the next mnemonic, directive or
// label definition.
package asm

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
	"io"
	"strconv"
	"strings"
	"text/scanner"
	"unicode"

	"github.com/ilSommo/advent-of-code-2019/vm"
)

func isIdentRune(ch rune, i int) bool {
	return unicode.IsLetter(ch) || unicode.IsSymbol(ch) || unicode.IsPunct(ch) || unicode.IsDigit(ch)
}

type labelSite struct {
	pos     scanner.Position
	address int
}

type label struct {
	labelSite
	uses []labelSite
}

// parser states
const (
	stateAny   = iota // accept anything
	stateParam        // need an instruction parameter
	stateDat          // accept raw values
	stateOrg          // need integer or const (.org)
	stateEqu          // need integer or const (.equ value)
)

var modeScale = [vm.MaxParams]vm.Cell{100, 1000, 10000}

type parser struct {
	i       []vm.Cell
	pc      int
	size    int
	s       scanner.Scanner
	labels  map[string]*label
	consts  map[string]labelSite
	cstName string
	cstPos  scanner.Position
	errs    ErrAsm
	state   int

	// instruction being assembled
	ins   int
	op    vm.Opcode
	param int
	opPos scanner.Position
}

func newParser() *parser {
	p := new(parser)
	p.labels = make(map[string]*label)
	p.consts = make(map[string]labelSite)
	return p
}

func (p *parser) write(v vm.Cell) {
	for p.pc >= len(p.i) {
		p.i = append(p.i, make([]vm.Cell, 1024)...)
	}
	p.i[p.pc] = v
	p.pc++
	if p.pc > p.size {
		p.size = p.pc
	}
}

func (p *parser) error(msg string) {
	pos := p.s.Position
	if !pos.IsValid() {
		pos = p.s.Pos()
	}
	p.errorAt(pos, msg)
}

func (p *parser) errorAt(pos scanner.Position, msg string) {
	if len(p.errs) < maxErrors {
		p.errs = append(p.errs, ErrMsg{pos, msg})
	}
}

func (p *parser) useLabel(name string) {
	lbl := p.labels[name]
	if lbl == nil {
		lbl = &label{
			// use current position as valid temp position
			labelSite{p.s.Position, -1},
			nil,
		}
		p.labels[name] = lbl
	}
	lbl.uses = append(lbl.uses, labelSite{p.s.Position, p.pc})
}

// literal converts s to an integer if it is an integer literal, a character
// literal or a constant name.
func (p *parser) literal(s string) (v vm.Cell, ok bool) {
	if n, err := strconv.ParseInt(s, 0, 64); err == nil {
		return vm.Cell(n), true
	}
	if len(s) > 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		r, _, tail, err := strconv.UnquoteChar(s[1:len(s)-1], '\'')
		if err != nil || tail != "" {
			p.error("Invalid character literal " + s)
			return 0, true
		}
		return vm.Cell(r), true
	}
	if c, ok := p.consts[s]; ok {
		return vm.Cell(c.address), true
	}
	return 0, false
}

// value writes the value of token s, or a placeholder for a label to be
// resolved later.
func (p *parser) value(s string) {
	if v, ok := p.literal(s); ok {
		p.write(v)
		return
	}
	if !isLabelName(s) {
		p.error("Invalid value " + s)
		p.write(0)
		return
	}
	p.useLabel(s)
	p.write(0)
}

func isLabelName(s string) bool {
	if s == "" {
		return false
	}
	switch s[0] {
	case '#', '@', ':', '.', '\'', '(', ')':
		return false
	}
	return true
}

// parameter assembles one instruction parameter and patches its mode into the
// instruction word.
func (p *parser) parameter(s string) {
	mode := vm.ModePosition
	switch s[0] {
	case '#':
		mode, s = vm.ModeImmediate, s[1:]
	case '@':
		mode, s = vm.ModeRelative, s[1:]
	}
	if s == "" {
		p.error("Missing value after mode prefix")
	}
	if mode == vm.ModeImmediate && p.param == p.op.Writes() {
		p.error("Immediate mode not allowed for write parameter of " + p.op.String())
	}
	p.i[p.ins] += vm.Cell(mode) * modeScale[p.param]
	p.value(s)
	p.param++
	if p.param == p.op.Arity() {
		p.state = stateAny
	}
}

func (p *parser) checkPending() {
	if p.state == stateParam {
		p.errorAt(p.opPos, "Missing parameters for "+p.op.String())
		p.state = stateAny
	}
}

// Parse does the parsing and compiling.
func (p *parser) Parse(name string, r io.Reader) ([]vm.Cell, error) {
	p.s.Init(r)
	p.s.Error = func(s *scanner.Scanner, msg string) {
		p.error(msg)
	}
	p.s.IsIdentRune = isIdentRune
	p.s.Mode = scanner.ScanIdents
	p.s.Filename = name

	for tok := p.s.Scan(); tok != scanner.EOF && len(p.errs) < maxErrors; tok = p.s.Scan() {
		if tok != scanner.Ident {
			p.error("Unexpected character " + strconv.QuoteRune(tok))
			continue
		}
		s := p.s.TokenText()
		if s == "(" {
			// skip comments
			for tok = p.s.Scan(); tok != scanner.EOF && (tok != scanner.Ident || p.s.TokenText() != ")"); tok = p.s.Scan() {
			}
			if tok == scanner.EOF {
				p.error("Unterminated comment")
			}
			continue
		}
		if len(s) > 1 && s[len(s)-1] == ',' {
			s = s[:len(s)-1]
		}

		switch p.state {
		case stateParam:
			if _, isOp := vm.LookupOpcode(s); isOp || s[0] == ':' || s[0] == '.' {
				p.checkPending()
				break
			}
			p.parameter(s)
			continue
		case stateOrg:
			v, ok := p.literal(s)
			if !ok || v < 0 {
				p.error("Invalid .org address " + s)
			} else {
				p.pc = int(v)
			}
			p.state = stateAny
			continue
		case stateEqu:
			v, ok := p.literal(s)
			if !ok {
				p.error("Invalid .equ value " + s)
			} else {
				p.consts[p.cstName] = labelSite{p.cstPos, int(v)}
			}
			p.state = stateAny
			continue
		}

		// stateAny or stateDat
		switch {
		case s[0] == ':':
			p.state = stateAny
			p.define(s[1:])
		case s[0] == '.':
			p.state = stateAny
			p.directive(s)
		default:
			if op, ok := vm.LookupOpcode(s); ok {
				p.state = stateAny
				p.ins, p.op, p.param, p.opPos = p.pc, op, 0, p.s.Position
				p.write(vm.Cell(op))
				if op.Arity() > 0 {
					p.state = stateParam
				}
				break
			}
			if p.state != stateDat {
				p.error("Unknown instruction " + s)
				break
			}
			p.value(s)
		}
	}
	p.checkPending()
	if p.state == stateOrg || p.state == stateEqu {
		p.error("Missing directive argument")
	}

	// write labels
	for n, l := range p.labels {
		if l.address == -1 {
			p.errorAt(l.uses[0].pos, "Undefined label "+n)
			continue
		}
		for _, u := range l.uses {
			p.i[u.address] = vm.Cell(l.address)
		}
	}

	if len(p.errs) > 0 {
		return nil, p.errs
	}
	return p.i[:p.size], nil
}

func (p *parser) define(n string) {
	if n == "" {
		p.error("Empty label name")
		return
	}
	if !isLabelName(n) {
		p.error("Invalid label name: " + n)
		return
	}
	if cst, ok := p.consts[n]; ok {
		p.error("Label redefinition: " + n + ", previously defined as a constant here: " + cst.pos.String())
		return
	}
	if l, ok := p.labels[n]; ok {
		if l.address != -1 {
			p.error("Label redefinition: " + n + ", previous definition here: " + l.pos.String())
			return
		}
		l.address = p.pc
		l.pos = p.s.Position
		return
	}
	p.labels[n] = &label{labelSite{p.s.Position, p.pc}, nil}
}

func (p *parser) directive(s string) {
	switch strings.ToLower(s) {
	case ".org":
		p.state = stateOrg
	case ".dat":
		p.state = stateDat
	case ".equ":
		t := p.s.Scan()
		if t != scanner.Ident {
			p.error(".equ: expected identifier, got " + p.s.TokenText())
			return
		}
		p.cstName = p.s.TokenText()
		if l, ok := p.labels[p.cstName]; ok {
			p.error(".equ: redefinition of " + p.cstName + ", previously defined/used as a label here: " + l.pos.String())
			return
		}
		p.cstPos = p.s.Position
		p.state = stateEqu
	default:
		p.error("Unknown directive: " + s)
	}
}

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

package host

import (
	"github.com/ilSommo/advent-of-code-2019/vm"
	"github.com/pkg/errors"
)

// Tile is the type of a tile drawn by the arcade cabinet.
type Tile vm.Cell

// Tile types.
const (
	Empty Tile = iota
	Wall
	Block
	Paddle
	Ball
)

var tileGlyphs = [...]byte{' ', '#', '+', '=', 'o'}

// Glyph returns the character used to render t.
func (t Tile) Glyph() byte {
	if t >= 0 && int(t) < len(tileGlyphs) {
		return tileGlyphs[t]
	}
	return '?'
}

// A Joystick decides the joystick position when the game asks for it: -1 for
// left, 0 for neutral and 1 for right.
type Joystick func(a *Arcade) vm.Cell

// TrackBall returns a Joystick that moves the paddle toward the column where
// the ball will be on the next frame.
func TrackBall() Joystick {
	var (
		prev Point
		seen bool
	)
	return func(a *Arcade) vm.Cell {
		b := a.Ball()
		target := b.X
		if seen {
			target = 2*b.X - prev.X
		}
		prev, seen = b, true
		switch p := a.Paddle(); {
		case p.X < target:
			return 1
		case p.X > target:
			return -1
		}
		return 0
	}
}

// Arcade is an arcade cabinet running a game program.
type Arcade struct {
	m      *vm.Instance
	screen map[Point]Tile
	score  vm.Cell
	ball   Point
	paddle Point
	out    [3]vm.Cell
	n      int
	stick  vm.Cell
	tilted bool
}

// memory address of the coin counter.
const addrCoins vm.Cell = 0

// NewArcade loads a game program into a new cabinet. If free is true, the
// cabinet is set to free play by writing 2 to the coin counter. Options are
// passed to the machine.
func NewArcade(program []vm.Cell, free bool, opts ...vm.Option) (*Arcade, error) {
	i, err := newMachine(program, "arcade", append(opts, vm.BatchOutput(true))...)
	if err != nil {
		return nil, err
	}
	if free {
		if err = i.Poke(addrCoins, 2); err != nil {
			return nil, err
		}
	}
	return &Arcade{m: i, screen: make(map[Point]Tile)}, nil
}

// Input implements vm.Port. The joystick position is read once per request.
func (a *Arcade) Input() (vm.Cell, bool) {
	if !a.tilted {
		return 0, false
	}
	a.tilted = false
	return a.stick, true
}

// Output implements vm.Port. Values come in triples x, y, tile, except
// for x = -1, y = 0 where the third value is the new score.
func (a *Arcade) Output(v vm.Cell) error {
	a.out[a.n] = v
	if a.n++; a.n < 3 {
		return nil
	}
	a.n = 0
	x, y, v := a.out[0], a.out[1], a.out[2]
	if x == -1 && y == 0 {
		a.score = v
		return nil
	}
	t := Tile(v)
	if t < Empty || t > Ball {
		return errors.Wrapf(ErrProtocol, "invalid tile %d at (%d,%d)", v, x, y)
	}
	p := Point{int(x), int(y)}
	a.screen[p] = t
	switch t {
	case Ball:
		a.ball = p
	case Paddle:
		a.paddle = p
	}
	return nil
}

// Play runs the game until it halts. Each time the game reads the joystick,
// j is called to get its position. j may be nil for programs that never read
// it.
func (a *Arcade) Play(j Joystick) error {
	for {
		ev, err := a.m.Resume(a)
		if err != nil {
			return err
		}
		switch ev.Status {
		case vm.Halted:
			hostLog.Debug("game over", "score", a.score, "blocks", a.Blocks())
			return nil
		case vm.AwaitingInput:
			if j == nil {
				return ErrNoJoystick
			}
			a.stick, a.tilted = j(a), true
		}
	}
}

// Blocks returns the number of block tiles on screen.
func (a *Arcade) Blocks() int {
	n := 0
	for _, t := range a.screen {
		if t == Block {
			n++
		}
	}
	return n
}

// Score returns the last score displayed.
func (a *Arcade) Score() vm.Cell { return a.score }

// Ball returns the position of the ball.
func (a *Arcade) Ball() Point { return a.ball }

// Paddle returns the position of the paddle.
func (a *Arcade) Paddle() Point { return a.paddle }

// Render draws the screen.
func (a *Arcade) Render() string {
	return render(a.screen, func(_ Point, t Tile, _ bool) byte {
		return t.Glyph()
	})
}

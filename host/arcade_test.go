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

package host_test

import (
	"testing"

	"github.com/ilSommo/advent-of-code-2019/host"
	"github.com/ilSommo/advent-of-code-2019/vm"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// breakout draws a wall, two blocks and a ball. In free play, it moves the
// paddle with the joystick, scoring 10 points per move, until the paddle is
// under the ball, which then breaks the first block.
const breakout = `
	:start	add #0 #0 tmp	( becomes a mul when coins are inserted )
		eq start #2 free
		out #0 out #0 out #1
		out #1 out #0 out #2
		out #2 out #0 out #2
		out #4 out #0 out #4
		jf free #over
	:loop	out px out #2 out #3
		eq px #4 tmp
		jt tmp #done
		in joy
		out px out #2 out #0
		add px joy px
		add score #10 score
		out #-1 out #0 out score
		jt #1 #loop
	:done	out #1 out #0 out #0
	:over	hlt
	:px	.dat 1
	:joy	.dat 0
	:tmp	.dat 0
	:free	.dat 0
	:score	.dat 0
`

func TestArcade(t *testing.T) {
	prog := assemble(t, "breakout", breakout)

	a, err := host.NewArcade(prog, false)
	require.NoError(t, err)
	require.NoError(t, a.Play(nil))
	assert.Equal(t, 2, a.Blocks())
	assert.Equal(t, vm.Cell(0), a.Score())
	assert.Equal(t, "#++ o\n", a.Render())

	a, err = host.NewArcade(prog, true)
	require.NoError(t, err)
	require.NoError(t, a.Play(host.TrackBall()))
	assert.Equal(t, 1, a.Blocks())
	assert.Equal(t, vm.Cell(30), a.Score())
	assert.Equal(t, host.Point{X: 4, Y: 2}, a.Paddle())
	assert.Equal(t, host.Point{X: 4, Y: 0}, a.Ball())
	assert.Equal(t, "# + o\n     \n    =\n", a.Render())
}

func TestArcade_joystick(t *testing.T) {
	prog := assemble(t, "breakout", breakout)
	a, err := host.NewArcade(prog, true)
	require.NoError(t, err)
	assert.Equal(t, host.ErrNoJoystick, errors.Cause(a.Play(nil)))

	// a custom joystick sees the screen before each move
	a, err = host.NewArcade(prog, true)
	require.NoError(t, err)
	var moves []int
	require.NoError(t, a.Play(func(a *host.Arcade) vm.Cell {
		moves = append(moves, a.Paddle().X)
		return 1
	}))
	assert.Equal(t, []int{1, 2, 3}, moves)
}

func TestArcade_errors(t *testing.T) {
	a, err := host.NewArcade(assemble(t, "tile", "out #0 out #0 out #7 hlt"), false)
	require.NoError(t, err)
	assert.Equal(t, host.ErrProtocol, errors.Cause(a.Play(nil)))
}

func TestTile(t *testing.T) {
	assert.Equal(t, byte(' '), host.Empty.Glyph())
	assert.Equal(t, byte('o'), host.Ball.Glyph())
	assert.Equal(t, byte('?'), host.Tile(9).Glyph())
}

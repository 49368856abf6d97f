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
	"strings"
	"testing"

	"github.com/ilSommo/advent-of-code-2019/asm"
	"github.com/ilSommo/advent-of-code-2019/host"
	"github.com/ilSommo/advent-of-code-2019/vm"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type C []vm.Cell

func assemble(t testing.TB, name, src string) []vm.Cell {
	t.Helper()
	prog, err := asm.Assemble(name, strings.NewReader(src))
	require.NoError(t, err)
	return prog
}

var gravity = C{1, 9, 10, 3, 2, 3, 11, 0, 99, 30, 40, 50}

func TestAlarm(t *testing.T) {
	v, err := host.Alarm(gravity, 9, 10)
	require.NoError(t, err)
	assert.Equal(t, vm.Cell(3500), v)

	v, err = host.Alarm(gravity, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, vm.Cell(100), v)

	_, err = host.Alarm(C{1, 0, 0, 0, 3, 0, 99}, 0, 0)
	assert.Equal(t, vm.ErrInputExhausted, errors.Cause(err))
}

func TestFindNounVerb(t *testing.T) {
	noun, verb, err := host.FindNounVerb(gravity, 3500)
	require.NoError(t, err)
	v, err := host.Alarm(gravity, noun, verb)
	require.NoError(t, err)
	assert.Equal(t, vm.Cell(3500), v)

	_, _, err = host.FindNounVerb(gravity, -1)
	assert.Equal(t, host.ErrNotFound, errors.Cause(err))
}

func TestDiagnostic(t *testing.T) {
	eq8 := C{3, 9, 8, 9, 10, 9, 4, 9, 99, -1, 8}
	v, err := host.Diagnostic(eq8, 8)
	require.NoError(t, err)
	assert.Equal(t, vm.Cell(1), v)
	v, err = host.Diagnostic(eq8, 5)
	require.NoError(t, err)
	assert.Equal(t, vm.Cell(0), v)

	pass := assemble(t, "pass", "in t out #0 out #0 out t hlt :t .dat 0")
	v, err = host.Diagnostic(pass, 42)
	require.NoError(t, err)
	assert.Equal(t, vm.Cell(42), v)

	fail := assemble(t, "fail", "in t out #0 out #5 out #42 hlt :t .dat 0")
	v, err = host.Diagnostic(fail, 1)
	assert.Equal(t, host.ErrDiagnosticFailed, errors.Cause(err))
	assert.Equal(t, vm.Cell(5), v)

	silent := assemble(t, "silent", "in t hlt :t .dat 0")
	_, err = host.Diagnostic(silent, 1)
	assert.Equal(t, host.ErrNoOutput, errors.Cause(err))

	_, err = host.Diagnostic(C{3, 0, 3, 0, 99}, 1)
	assert.Equal(t, vm.ErrInputExhausted, errors.Cause(err))
}

func TestPoint(t *testing.T) {
	assert.Equal(t, host.Left, host.Up.TurnLeft())
	assert.Equal(t, host.Right, host.Up.TurnRight())
	assert.Equal(t, host.Up, host.Right.TurnLeft())
	assert.Equal(t, host.Down, host.Right.TurnRight())
	for _, d := range []host.Point{host.Up, host.Down, host.Left, host.Right} {
		assert.Equal(t, d, d.TurnLeft().TurnRight())
		assert.Equal(t, d, d.TurnLeft().TurnLeft().TurnLeft().TurnLeft())
	}
	p := host.Point{X: 2, Y: 3}
	assert.Equal(t, [4]host.Point{{X: 2, Y: 2}, {X: 2, Y: 4}, {X: 1, Y: 3}, {X: 3, Y: 3}}, p.Neighbours())
	assert.Equal(t, "(2,3)", p.String())
}

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

package main

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ilSommo/advent-of-code-2019/host"
	"github.com/ilSommo/advent-of-code-2019/vm"
	log "github.com/inconshreveable/log15"
)

// vt100 writes VT100 escape sequences to a terminal.
type vt100 struct {
	*bufio.Writer
}

func (t vt100) Clear() {
	t.WriteString("\033[2J\033[1;1H")
}

func (t vt100) MoveCursor(row, col int) {
	t.WriteString("\033[" + strconv.Itoa(row) + ";" + strconv.Itoa(col) + "H")
}

// keyboard returns a joystick driven by the keys a (or h) and d (or l). Any
// other key leaves the joystick in the neutral position. On q, ^C, ^D or a
// read error, the autopilot takes over for the rest of the game.
func keyboard(r io.Reader, t vt100) host.Joystick {
	var (
		auto = host.TrackBall()
		done bool
		b    [1]byte
	)
	return func(a *host.Arcade) vm.Cell {
		// always feed the autopilot so that it can take over at any time
		v := auto(a)
		if done {
			return v
		}
		t.Clear()
		t.WriteString(strings.Replace(a.Render(), "\n", "\r\n", -1))
		t.WriteString("score: " + strconv.FormatInt(int64(a.Score()), 10) + "  [a] left  [d] right  [q] autopilot\r\n")
		t.Flush()
		if _, err := r.Read(b[:]); err != nil {
			done = true
			return v
		}
		switch b[0] {
		case 'a', 'h':
			return -1
		case 'd', 'l':
			return 1
		case 'q', 3, 4:
			done = true
			return v
		}
		return 0
	}
}

func runArcade(c *config, prog []vm.Cell, w *bufio.Writer) error {
	a, err := host.NewArcade(prog, c.free, machineOptions(c)...)
	if err != nil {
		return err
	}
	joystick := host.TrackBall()
	if !c.noRaw && isTerminal(0) {
		tearDown, err := setRawIO()
		if err != nil {
			log.Warn("raw terminal IO unavailable, using autopilot", "err", err)
		} else {
			defer tearDown()
			joystick = keyboard(os.Stdin, vt100{w})
		}
	}
	if err = a.Play(joystick); err != nil {
		return err
	}
	screen := a.Render()
	if cols, _ := consoleSize(1); cols > 0 && strings.Index(screen, "\n") > cols {
		log.Warn("screen wider than the terminal", "columns", cols)
	}
	t := vt100{w}
	t.Clear()
	t.WriteString(screen)
	t.WriteString("score: " + strconv.FormatInt(int64(a.Score()), 10) + ", blocks left: " + strconv.Itoa(a.Blocks()) + "\n")
	return t.Flush()
}

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
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/ilSommo/advent-of-code-2019/asm"
	"github.com/ilSommo/advent-of-code-2019/host"
	"github.com/ilSommo/advent-of-code-2019/lang/ascii"
	"github.com/ilSommo/advent-of-code-2019/vm"
	log "github.com/inconshreveable/log15"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

func setupLogging(debug bool) {
	lvl := log.LvlInfo
	if debug {
		lvl = log.LvlDebug
	}
	log.Root().SetHandler(log.LvlFilterHandler(lvl, log.StreamHandler(os.Stderr, log.TerminalFormat())))
}

func loadProgram(c *config) ([]vm.Cell, error) {
	if !c.assemble {
		return vm.Load(c.program)
	}
	f, err := os.Open(c.program)
	if err != nil {
		return nil, errors.Wrap(err, "open failed")
	}
	defer f.Close()
	return asm.Assemble(filepath.Base(c.program), f)
}

// machineOptions returns the logging, tracing and patch options shared by
// every mode. Patches are applied through the machine memory so that all
// modes reject the same addresses.
func machineOptions(c *config) []vm.Option {
	opts := []vm.Option{
		vm.Logger(log.Root().New("program", filepath.Base(c.program))),
		vm.Trace(c.trace),
	}
	for _, p := range c.patches {
		opts = append(opts, vm.Patch(p.addr, p.value))
	}
	return opts
}

func newMachine(c *config, prog []vm.Cell, opts ...vm.Option) (*vm.Instance, error) {
	return vm.New(prog, append(machineOptions(c), opts...)...)
}

// runBatch runs the program with the input values from the command line and
// prints its output, one value per line.
func runBatch(c *config, prog []vm.Cell, w io.Writer) (*vm.Instance, error) {
	i, err := newMachine(c, prog)
	if err != nil {
		return nil, err
	}
	q := vm.NewQueue(c.input...)
	port := vm.PortFuncs{
		In: q.Input,
		Out: func(v vm.Cell) error {
			_, err := io.WriteString(w, strconv.FormatInt(int64(v), 10)+"\n")
			return err
		},
	}
	return i, i.Run(port)
}

// flushReader flushes pending output before blocking on input.
type flushReader struct {
	r io.Reader
	w *bufio.Writer
}

func (f flushReader) Read(p []byte) (int, error) {
	if err := f.w.Flush(); err != nil {
		return 0, err
	}
	return f.r.Read(p)
}

// runASCII runs the program with its input read from the -with files, then
// stdin, and its output written to w as text.
func runASCII(c *config, prog []vm.Cell, w *bufio.Writer) (*vm.Instance, error) {
	i, err := newMachine(c, prog, vm.BatchOutput(true))
	if err != nil {
		return nil, err
	}
	var readers []io.Reader
	for _, name := range c.with {
		f, err := os.Open(name)
		if err != nil {
			return nil, errors.Wrap(err, "open failed")
		}
		defer f.Close()
		readers = append(readers, f)
	}
	readers = append(readers, os.Stdin)
	p := ascii.NewPort(flushReader{io.MultiReader(readers...), w}, w)
	err = i.Run(p)
	if errors.Cause(err) == vm.ErrInputExhausted && p.Err() == nil {
		// end of input
		err = nil
	}
	if err == nil {
		err = p.Err()
	}
	return i, err
}

func runPaint(c *config, prog []vm.Cell, w io.Writer) error {
	start := host.Black
	if c.white {
		start = host.White
	}
	h, err := host.Paint(prog, start, machineOptions(c)...)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s%d panels painted\n", h.Render(), h.Painted())
	return err
}

func runDroid(c *config, prog []vm.Cell, w io.Writer) error {
	a, err := host.Explore(prog, c.maxLive, machineOptions(c)...)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%soxygen system at %v, %d moves away\nfilled with oxygen in %d minutes\n",
		a.Render(), a.Oxygen, a.Distance, a.FillTime())
	return err
}

func dumpMachine(i *vm.Instance, name string) error {
	if name == "-" {
		return i.Dump(os.Stdout)
	}
	f, err := os.Create(name)
	if err != nil {
		return errors.Wrap(err, "dump")
	}
	if err = i.Dump(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func atExit(c *config, i *vm.Instance, err error) {
	if err == nil {
		return
	}
	if c == nil || !c.debug {
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "\n%+v\n", err)
	if i != nil {
		w, _ := i.Peek(i.PC)
		fmt.Fprintf(os.Stderr, "PC: %v (%v), RB: %v, status: %v, steps: %d\n", i.PC, w, i.RB, i.Status(), i.InstructionCount())
	}
	os.Exit(1)
}

func main() {
	var (
		err error
		c   *config
		i   *vm.Instance
	)

	stdout := bufio.NewWriter(os.Stdout)

	// flush output, catch and log errors
	defer func() {
		stdout.Flush()
		if i != nil && c != nil && c.dump != "" {
			if derr := dumpMachine(i, c.dump); err == nil {
				err = derr
			}
		}
		atExit(c, i, err)
	}()

	v, err := getViper(os.Args[1:])
	if err != nil {
		if errors.Cause(err) == pflag.ErrHelp {
			err = nil
		}
		return
	}
	if c, err = newConfig(v); err != nil {
		return
	}
	setupLogging(c.debug)

	prog, err := loadProgram(c)
	if err != nil {
		return
	}
	log.Debug("program loaded", "file", c.program, "size", len(prog))

	switch c.mode {
	case "run":
		i, err = runBatch(c, prog, stdout)
	case "ascii":
		i, err = runASCII(c, prog, stdout)
	case "arcade":
		err = runArcade(c, prog, stdout)
	case "paint":
		err = runPaint(c, prog, stdout)
	case "droid":
		err = runDroid(c, prog, stdout)
	case "disasm":
		err = asm.DisassembleAll(prog, 0, stdout)
	default:
		err = errors.Errorf("unknown mode %q", c.mode)
	}
}

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
	"flag"
	"strconv"
	"strings"

	"github.com/ilSommo/advent-of-code-2019/vm"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	programKey  = "program"
	modeKey     = "mode"
	assembleKey = "assemble"
	inputKey    = "input"
	withKey     = "with"
	patchKey    = "patch"
	dumpKey     = "dump"
	debugKey    = "debug"
	traceKey    = "trace"
	noRawKey    = "noraw"
	freeKey     = "free"
	whiteKey    = "white"
	maxLiveKey  = "max-live"
	configKey   = "config"

	envPrefix = "INTCODE"
)

// listFlag is a flag that can be specified multiple times.
type listFlag []string

func (f *listFlag) String() string     { return strings.Join(*f, ",") }
func (f *listFlag) Set(s string) error { *f = append(*f, s); return nil }
func (f *listFlag) Get() interface{}   { return *f }

func buildFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("intcode", flag.ContinueOnError)

	fs.String(programKey, "", "Load the program from `filename` (or use the first argument)")
	fs.String(modeKey, "run", "run `mode`: run, ascii, arcade, paint, droid or disasm")
	fs.Bool(assembleKey, false, "the program file is assembler source")
	fs.String(inputKey, "", "comma separated input `values` for run mode")
	fs.Var(new(listFlag), withKey, "Add `filename` to the input list in ascii mode (can be specified multiple times)")
	fs.Var(new(listFlag), patchKey, "write `address=value` to memory before running (can be specified multiple times)")
	fs.String(dumpKey, "", "dump registers and memory to `filename` upon exit (- for stdout, run and ascii modes only)")
	fs.Bool(debugKey, false, "enable debug diagnostics")
	fs.Bool(traceKey, false, "log every executed instruction (implies -debug)")
	fs.Bool(noRawKey, false, "disable raw terminal IO in arcade mode")
	fs.Bool(freeKey, true, "set the arcade to free play")
	fs.Bool(whiteKey, false, "start the painting robot on a white panel")
	fs.Int(maxLiveKey, 1<<16, "maximum number of live droid clones, 0 for no limit")
	fs.String(configKey, "", "read settings from config `file`")

	return fs
}

// getViper returns the settings from command line arguments, environment
// variables prefixed with INTCODE_ and an optional config file, in decreasing
// order of precedence.
func getViper(args []string) (*viper.Viper, error) {
	v := viper.New()

	pfs := pflag.NewFlagSet("intcode", pflag.ContinueOnError)
	pfs.AddGoFlagSet(buildFlagSet())
	if err := pfs.Parse(args); err != nil {
		return nil, err
	}
	if err := v.BindPFlags(pfs); err != nil {
		return nil, err
	}
	if pfs.NArg() > 0 && !pfs.Changed(programKey) {
		v.Set(programKey, pfs.Arg(0))
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if name := v.GetString(configKey); name != "" {
		v.SetConfigFile(name)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrap(err, "config")
		}
	}
	return v, nil
}

type patch struct {
	addr, value vm.Cell
}

type config struct {
	program  string
	mode     string
	assemble bool
	input    []vm.Cell
	with     []string
	patches  []patch
	dump     string
	debug    bool
	trace    bool
	noRaw    bool
	free     bool
	white    bool
	maxLive  int
}

func splitList(s string) []string {
	var l []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			l = append(l, f)
		}
	}
	return l
}

func parsePatch(s string) (patch, error) {
	var p patch
	k := strings.IndexByte(s, '=')
	if k < 0 {
		return p, errors.Errorf("invalid patch %q: expected address=value", s)
	}
	a, err := strconv.ParseInt(strings.TrimSpace(s[:k]), 0, 64)
	if err != nil {
		return p, errors.Wrapf(err, "invalid patch address in %q", s)
	}
	v, err := strconv.ParseInt(strings.TrimSpace(s[k+1:]), 0, 64)
	if err != nil {
		return p, errors.Wrapf(err, "invalid patch value in %q", s)
	}
	return patch{vm.Cell(a), vm.Cell(v)}, nil
}

func newConfig(v *viper.Viper) (*config, error) {
	c := &config{
		program:  v.GetString(programKey),
		mode:     v.GetString(modeKey),
		assemble: v.GetBool(assembleKey),
		with:     splitList(v.GetString(withKey)),
		dump:     v.GetString(dumpKey),
		debug:    v.GetBool(debugKey) || v.GetBool(traceKey),
		trace:    v.GetBool(traceKey),
		noRaw:    v.GetBool(noRawKey),
		free:     v.GetBool(freeKey),
		white:    v.GetBool(whiteKey),
		maxLive:  v.GetInt(maxLiveKey),
	}
	if c.program == "" {
		return nil, errors.New("no program file")
	}
	if s := v.GetString(inputKey); s != "" {
		in, err := vm.Parse(s)
		if err != nil {
			return nil, errors.Wrap(err, "input")
		}
		c.input = in
	}
	for _, s := range splitList(v.GetString(patchKey)) {
		p, err := parsePatch(s)
		if err != nil {
			return nil, err
		}
		c.patches = append(c.patches, p)
	}
	return c, nil
}

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

// The intcode command line tool runs Intcode programs.
//
// Usage:
//
//	intcode [flags] program
//
//	--assemble
//		  the program file is assembler source (see package asm)
//	--config file
//		  read settings from config file
//	--debug
//		  enable debug diagnostics
//	--dump filename
//		  dump registers and memory to filename upon exit (- for stdout, run and ascii modes only)
//	--free
//		  set the arcade to free play (default true)
//	--input values
//		  comma separated input values for run mode
//	--max-live int
//		  maximum number of live droid clones, 0 for no limit (default 65536)
//	--mode mode
//		  run mode: run, ascii, arcade, paint, droid or disasm (default "run")
//	--noraw
//		  disable raw terminal IO in arcade mode
//	--patch address=value
//		  write value to memory before running (can be specified multiple times)
//	--program filename
//		  Load the program from filename (or use the first argument)
//	--trace
//		  log every executed instruction (implies --debug)
//	--white
//		  start the painting robot on a white panel
//	--with filename
//		  Add filename to the input list in ascii mode (can be specified multiple times)
//
// Every setting can also be given as an environment variable prefixed with
// INTCODE_ and with dashes replaced by underscores, like INTCODE_MAX_LIVE, or
// in the config file given with --config. Command line flags take precedence
// over the environment, which takes precedence over the config file.
//
// Modes:
//
// run: the program reads the values given with --input and its output is
// printed one value per line. Running out of input is an error.
//
// ascii: the program input is read as text from the --with files, in order,
// then from stdin. Output values are printed as characters, except for values
// outside of the ASCII range which are printed in decimal on their own line.
//
// arcade: runs a game for the arcade cabinet. If stdin is a terminal, the
// paddle is moved with the a and d keys and q hands the game over to the
// autopilot. Otherwise, the autopilot plays the whole game. The final screen
// and score are printed.
//
// paint: runs the hull painting robot and prints the painted panels.
//
// droid: explores the area with the repair droid and prints its map, the
// distance to the oxygen system and the time it takes to fill the area with
// oxygen.
//
// disasm: prints the disassembly of the program.
//
// --patch: sets memory cells before the program starts, like
//
//	intcode --patch 1=12 --patch 2=2 gravity.txt
//
// --trace and --patch apply in every mode. Patches at negative addresses are
// rejected before the program starts.
//
// --dump: in run and ascii modes only, writes the machine registers as "pc,rb"
// followed by its memory in program text format, whether the program halted
// or failed.
package main

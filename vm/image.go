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

package vm

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ilSommo/advent-of-code-2019/internal/ici"
	"github.com/pkg/errors"
)

// Parse parses an Intcode program in text format: a comma separated list of
// signed integers. Whitespace around values is ignored, as is a trailing
// comma.
func Parse(text string) ([]Cell, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errors.New("Parse: empty program")
	}
	fields := strings.Split(text, ",")
	if strings.TrimSpace(fields[len(fields)-1]) == "" {
		fields = fields[:len(fields)-1]
	}
	prog := make([]Cell, len(fields))
	for k, f := range fields {
		n, err := strconv.ParseInt(strings.TrimSpace(f), 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "Parse: value #%d", k)
		}
		prog[k] = Cell(n)
	}
	return prog, nil
}

// Load loads a program in text format from file fileName.
func Load(fileName string) ([]Cell, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "Load")
	}
	defer f.Close()
	b, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.Wrap(err, "Load")
	}
	prog, err := Parse(string(b))
	if err != nil {
		return nil, errors.Wrap(err, fileName)
	}
	return prog, nil
}

// Format writes prog to w in text format, without a trailing newline.
func Format(w io.Writer, prog []Cell) error {
	ew := ici.NewErrWriter(w)
	l := len(prog) - 1
	if l >= 0 {
		for i := 0; i < l; i++ {
			ew.WriteString(strconv.FormatInt(int64(prog[i]), 10))
			ew.Write([]byte{','})
		}
		ew.WriteString(strconv.FormatInt(int64(prog[l]), 10))
	}
	return ew.Err
}

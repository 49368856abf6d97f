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

import "github.com/pkg/errors"

// Errors raised by a machine. All of them are fatal to the instance that
// returned them. Use errors.Cause to match the returned error against these
// values.
var (
	// ErrNegativeAddress is returned when a memory access or jump target
	// resolves to an address below 0.
	ErrNegativeAddress = errors.New("negative address")
	// ErrInvalidMode is returned for an unknown parameter mode digit or for an
	// immediate mode write parameter.
	ErrInvalidMode = errors.New("invalid parameter mode")
	// ErrIllegalInstruction is returned for opcodes outside the instruction
	// set.
	ErrIllegalInstruction = errors.New("illegal instruction")
	// ErrInputExhausted is returned by Run when the program needs more input
	// than was supplied.
	ErrInputExhausted = errors.New("input exhausted")
)

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

import "github.com/pkg/errors"

// Errors returned by hosts. Machine faults are returned as is and can be
// matched with errors.Cause against the vm errors.
var (
	// ErrProtocol is returned when a program produces a value its host cannot
	// interpret, or stops when the host expects output.
	ErrProtocol = errors.New("protocol error")
	// ErrNoOutput is returned when a program halts without producing the
	// expected result.
	ErrNoOutput = errors.New("no output")
	// ErrNotFound is returned when a search exhausts its domain.
	ErrNotFound = errors.New("not found")
	// ErrDiagnosticFailed is returned when a diagnostic program reports a
	// failing test.
	ErrDiagnosticFailed = errors.New("diagnostic failed")
	// ErrTooManyBranches is returned by Explore when the number of live
	// clones exceeds its bound.
	ErrTooManyBranches = errors.New("too many live branches")
	// ErrDeadlock is returned by Feedback when no machine can make progress.
	ErrDeadlock = errors.New("deadlock")
	// ErrNoJoystick is returned by Play when the game needs input and no
	// joystick is plugged in.
	ErrNoJoystick = errors.New("no joystick")
	// ErrRejected is returned when an ASCII program answers with text
	// instead of a result.
	ErrRejected = errors.New("input rejected")
)

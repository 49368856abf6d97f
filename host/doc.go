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

// Package host implements the devices that drive Intcode programs: each
// adapter owns one or more vm.Instance values, feeds them input and gives a
// meaning to their output.
//
// Hosts use the vm package through its public API only. They log through a
// child of the log15 root logger, so that applications control their output
// by setting the root handler.
package host

import (
	"github.com/ilSommo/advent-of-code-2019/vm"
	log "github.com/inconshreveable/log15"
)

var hostLog = log.Root().New("pkg", "host")

// newMachine creates a machine for the named host with a child logger.
func newMachine(program []vm.Cell, name string, opts ...vm.Option) (*vm.Instance, error) {
	opts = append([]vm.Option{vm.Logger(hostLog.New("host", name))}, opts...)
	return vm.New(program, opts...)
}

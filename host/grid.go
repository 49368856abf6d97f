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

import (
	"strconv"
	"strings"
)

// Point is a location on a grid. Y grows downward.
type Point struct {
	X, Y int
}

// Unit moves.
var (
	Up    = Point{0, -1}
	Down  = Point{0, 1}
	Left  = Point{-1, 0}
	Right = Point{1, 0}
)

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// TurnLeft returns the direction p rotated 90 degrees counter-clockwise.
func (p Point) TurnLeft() Point {
	return Point{p.Y, -p.X}
}

// TurnRight returns the direction p rotated 90 degrees clockwise.
func (p Point) TurnRight() Point {
	return Point{-p.Y, p.X}
}

// Neighbours returns the four points adjacent to p, in the order up, down,
// left, right.
func (p Point) Neighbours() [4]Point {
	return [4]Point{p.Add(Up), p.Add(Down), p.Add(Left), p.Add(Right)}
}

func (p Point) String() string {
	return "(" + strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y) + ")"
}

// render draws the bounding box of the keys of m, one line per row, using
// glyph for every point of the box.
func render[V any](m map[Point]V, glyph func(p Point, v V, ok bool) byte) string {
	if len(m) == 0 {
		return ""
	}
	first := true
	var lo, hi Point
	for p := range m {
		if first {
			lo, hi, first = p, p, false
			continue
		}
		if p.X < lo.X {
			lo.X = p.X
		}
		if p.Y < lo.Y {
			lo.Y = p.Y
		}
		if p.X > hi.X {
			hi.X = p.X
		}
		if p.Y > hi.Y {
			hi.Y = p.Y
		}
	}
	var b strings.Builder
	b.Grow((hi.X - lo.X + 2) * (hi.Y - lo.Y + 1))
	for y := lo.Y; y <= hi.Y; y++ {
		for x := lo.X; x <= hi.X; x++ {
			p := Point{x, y}
			v, ok := m[p]
			b.WriteByte(glyph(p, v, ok))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

/*
 * Copyright © 2020, G.Ralph Kuntz, MD.
 *
 * Licensed under the Apache License, Version 2.0(the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIC
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package qrcodegen

// matrix holds two parallel grids: the current module colour (`mod`),
// and whether a cell has been claimed by a function pattern or reserved
// for format/version info (`res`) and must therefore be skipped by data
// placement and masking.
type matrix struct {
	size int
	mod  [][]bool
	res  [][]bool
}

func newMatrix(version int) *matrix {
	size := version*4 + 17
	m := &matrix{size: size, mod: make([][]bool, size), res: make([][]bool, size)}
	for i := range m.mod {
		m.mod[i] = make([]bool, size)
		m.res[i] = make([]bool, size)
	}
	return m
}

// setFunction marks (r, c) as reserved and sets its colour; used for
// finder/separator/timing/alignment/dark-module cells, whose colour is
// permanent once drawn.
func (m *matrix) setFunction(r, c int, dark bool) {
	m.mod[r][c] = dark
	m.res[r][c] = true
}

// reserve marks (r, c) as reserved without touching its colour; used for
// format/version info cells, whose colour is written later by the
// format/version writer once the mask has been chosen.
func (m *matrix) reserve(r, c int) {
	m.res[r][c] = true
}

// drawFunctionPatterns stamps every function pattern and reserves the
// format/version info cells. Must run before data placement and masking.
func (m *matrix) drawFunctionPatterns(version int) {
	for i := 0; i < m.size; i++ {
		m.setFunction(6, i, i%2 == 0)
		m.setFunction(i, 6, i%2 == 0)
	}

	m.drawFinderPattern(3, 3)
	m.drawFinderPattern(3, m.size-4)
	m.drawFinderPattern(m.size-4, 3)

	if version >= 2 {
		positions := alignmentPositions[version]
		n := len(positions)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				r, c := positions[i], positions[j]
				if (r <= 8 && c <= 8) || (r <= 8 && c >= m.size-8) || (r >= m.size-8 && c <= 8) {
					continue // overlaps a finder pattern footprint
				}
				m.drawAlignmentPattern(r, c)
			}
		}
	}

	m.setFunction(m.size-8, 8, true) // the permanent dark module

	m.reserveFormatInfo()
	if version >= 7 {
		m.reserveVersionInfo()
	}
}

// drawFinderPattern draws a finder pattern (plus its separator) centred
// at (r, c); (r, c) is (3,3) or a mirror of it across the grid, so the
// 9x9 box this iterates clips to the grid edge exactly where the
// separator belongs.
func (m *matrix) drawFinderPattern(r, c int) {
	for dr := -4; dr <= 4; dr++ {
		for dc := -4; dc <= 4; dc++ {
			rr, cc := r+dr, c+dc
			if rr < 0 || rr >= m.size || cc < 0 || cc >= m.size {
				continue
			}
			dist := maxInt(absInt(dr), absInt(dc))
			m.setFunction(rr, cc, dist != 2 && dist != 4)
		}
	}
}

// drawAlignmentPattern draws a 5x5 alignment pattern centred at (r, c).
func (m *matrix) drawAlignmentPattern(r, c int) {
	for dr := -2; dr <= 2; dr++ {
		for dc := -2; dc <= 2; dc++ {
			dist := maxInt(absInt(dr), absInt(dc))
			m.setFunction(r+dr, c+dc, dist != 1)
		}
	}
}

func (m *matrix) reserveFormatInfo() {
	for i := 0; i <= 8; i++ {
		m.reserve(8, i)
		m.reserve(i, 8)
	}
	for i := 0; i < 8; i++ {
		m.reserve(8, m.size-1-i) // row 8, columns size-1 .. size-8
	}
	for i := 0; i < 7; i++ {
		m.reserve(m.size-1-i, 8) // column 8, rows size-1 .. size-7
	}
}

func (m *matrix) reserveVersionInfo() {
	for i := 0; i < 18; i++ {
		a := m.size - 11 + i%3
		b := i / 3
		m.reserve(a, b)
		m.reserve(b, a)
	}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

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

// placeData writes codewords into every unreserved cell, right-to-left in
// column pairs, zig-zagging up and down, skipping the vertical timing
// column. Function patterns and reserved format/version cells must
// already be in place. A symbol's raw module capacity is not always an
// exact multiple of 8, so the data stream can end up to 7 bits short of
// filling the last codeword-sized run of cells; those trailing bits
// are simply not written, leaving those cells at their default light
// colour.
func (m *matrix) placeData(data []byte) {
	bitIndex := 0
	totalBits := len(data) * 8
	up := true

	for right := m.size - 1; right >= 1; right -= 2 {
		if right == 6 {
			right = 5
		}
		for v := 0; v < m.size; v++ {
			row := v
			if up {
				row = m.size - 1 - v
			}
			for _, col := range [2]int{right, right - 1} {
				if m.res[row][col] {
					continue
				}
				if bitIndex < totalBits {
					bit := data[bitIndex>>3]>>(7-uint(bitIndex&7))&1 != 0
					m.mod[row][col] = bit
					bitIndex++
				}
			}
		}
		up = !up
	}
}

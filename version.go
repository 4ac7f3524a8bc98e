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

// charCountBits is the width of the byte-mode character-count indicator
// for the given version: 8 bits for v <= 9, 16 bits for v >= 10.
func charCountBits(version int) int {
	if version <= 9 {
		return 8
	}
	return 16
}

// selectVersion returns the smallest version that can hold payloadLen
// bytes of byte-mode data at the given error correction level, or ok=false
// if no version in [1, 40] fits.
func selectVersion(payloadLen int, level ErrorCorrectionLevel) (version int, ok bool) {
	for v := 1; v <= 40; v++ {
		capBits := numDataCodewords(v, level) * 8
		needBits := 4 + charCountBits(v) + 8*payloadLen
		if needBits <= capBits {
			return v, true
		}
	}
	return 0, false
}

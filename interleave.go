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

// interleaveCodewords splits data into the version/level's two block
// groups, computes each block's Reed-Solomon codewords, and interleaves
// data then EC column-major across blocks. The result's length is exactly
// numRawDataModules[version]/8; any remainder bits (0-7) are left for the
// data placer to skip, since they are not whole codewords.
func interleaveCodewords(data []byte, version int, level ErrorCorrectionLevel) []byte {
	l := layouts[level][version]
	gen := buildGenPoly(l.ecPerBlock)

	numBlocks := l.g1n + l.g2n
	dataBlocks := make([][]byte, numBlocks)
	ecBlocks := make([][]byte, numBlocks)

	pos := 0
	for i := 0; i < numBlocks; i++ {
		k := l.g1k
		if i >= l.g1n {
			k = l.g2k
		}
		block := data[pos : pos+k]
		pos += k

		dataBlocks[i] = block
		ecBlocks[i] = rsEncode(block, gen)
	}

	maxDataLen := l.g1k
	if l.g2k > maxDataLen {
		maxDataLen = l.g2k
	}

	result := make([]byte, 0, numBlocks*maxDataLen+numBlocks*l.ecPerBlock)
	for i := 0; i < maxDataLen; i++ {
		for _, block := range dataBlocks {
			if i < len(block) {
				result = append(result, block[i])
			}
		}
	}
	for i := 0; i < l.ecPerBlock; i++ {
		for _, block := range ecBlocks {
			result = append(result, block[i])
		}
	}

	return result
}

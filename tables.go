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

// ErrorCorrectionLevel selects how much of a QR code's codewords are
// spent on Reed-Solomon redundancy.
type ErrorCorrectionLevel int8

// Error correction levels, indexed the same way the block-layout tables
// below are indexed (Low=0 .. High=3).
const (
	Low      ErrorCorrectionLevel = iota // recovers ~7% of data
	Medium                               // recovers ~15% of data
	Quartile                             // recovers ~25% of data
	High                                 // recovers ~30% of data
)

// formatBits returns the 2-bit EC indicator used inside the 15-bit format
// information word. Note this is not the same value as the level's table
// index above; the standard deliberately orders these differently.
func (e ErrorCorrectionLevel) formatBits() int {
	switch e {
	case Low:
		return 1
	case Medium:
		return 0
	case Quartile:
		return 3
	case High:
		return 2
	default:
		panic("qrcodegen: unknown error correction level")
	}
}

// eccCodewordsPerBlock[level][version] is the number of error-correction
// codewords in each block at that level and version.
var eccCodewordsPerBlock = [4][41]int{
	//     0,  1,  2,  3,  4,  5,  6,  7,  8,  9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, 36, 37, 38, 39, 40
	{-1, 7, 10, 15, 20, 26, 18, 20, 24, 30, 18, 20, 24, 26, 30, 22, 24, 28, 30, 28, 28, 28, 28, 30, 30, 26, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},  // Low
	{-1, 10, 16, 26, 18, 24, 16, 18, 22, 22, 26, 30, 22, 22, 24, 24, 28, 28, 26, 26, 26, 26, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28}, // Medium
	{-1, 13, 22, 18, 26, 18, 24, 18, 22, 20, 24, 28, 26, 24, 20, 30, 24, 28, 28, 26, 30, 28, 30, 30, 30, 30, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30}, // Quartile
	{-1, 17, 28, 22, 16, 22, 28, 26, 26, 24, 28, 24, 28, 22, 24, 24, 30, 28, 28, 26, 28, 30, 24, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30}, // High
}

// numErrorCorrectionBlocks[level][version] is the total block count
// (group 1 + group 2) at that level and version.
var numErrorCorrectionBlocks = [4][41]int{
	{-1, 1, 1, 1, 1, 1, 2, 2, 2, 2, 4, 4, 4, 4, 4, 6, 6, 6, 6, 7, 8, 8, 9, 9, 10, 12, 12, 12, 13, 14, 15, 16, 17, 18, 19, 19, 20, 21, 22, 24, 25},              // Low
	{-1, 1, 1, 1, 2, 2, 4, 4, 4, 5, 5, 5, 8, 9, 9, 10, 10, 11, 13, 14, 16, 17, 17, 18, 20, 21, 23, 25, 26, 28, 29, 31, 33, 35, 37, 38, 40, 43, 45, 47, 49},     // Medium
	{-1, 1, 1, 2, 2, 4, 4, 6, 6, 8, 8, 8, 10, 12, 16, 12, 17, 16, 18, 21, 20, 23, 23, 25, 27, 29, 34, 34, 35, 38, 40, 43, 45, 48, 51, 53, 56, 59, 62, 65, 68},  // Quartile
	{-1, 1, 1, 2, 4, 4, 4, 5, 6, 8, 8, 11, 11, 16, 16, 18, 16, 19, 21, 25, 25, 25, 34, 30, 32, 35, 37, 40, 42, 45, 48, 51, 54, 57, 60, 63, 66, 70, 74, 77, 81}, // High
}

// numRawDataModules[version] is the total number of bits (data + EC +
// remainder) a symbol of that version holds once every function pattern
// is excluded.
var numRawDataModules [41]int

// alignmentPositions[version] holds the ascending list of row/column
// centres shared by both axes; empty for version 1.
var alignmentPositions [41][]int

// blockLayout describes how a (version, level) pair splits its data and
// error-correction codewords across blocks for interleaving: the
// per-block EC codeword count, and the two block groups' counts/sizes
// (group 2's blocks, when present, each hold one more data codeword
// than group 1's).
type blockLayout struct {
	ecPerBlock int
	g1n, g1k   int
	g2n, g2k   int
}

var layouts [4][41]blockLayout

func init() {
	for v := 1; v <= 40; v++ {
		result := (16*v+128)*v + 64
		if v >= 2 {
			numAlign := v/7 + 2
			result -= (25*numAlign-10)*numAlign - 55
			if v >= 7 {
				result -= 36
			}
		}
		numRawDataModules[v] = result
	}

	for v := 1; v <= 40; v++ {
		alignmentPositions[v] = alignmentPatternPositions(v)
	}

	for e := Low; e <= High; e++ {
		for v := 1; v <= 40; v++ {
			totalCW := numRawDataModules[v] / 8
			numBlocks := numErrorCorrectionBlocks[e][v]
			ecPerBlock := eccCodewordsPerBlock[e][v]

			shortBlockLen := totalCW / numBlocks
			numLongBlocks := totalCW % numBlocks
			numShortBlocks := numBlocks - numLongBlocks

			g1k := shortBlockLen - ecPerBlock
			g2k := 0
			if numLongBlocks > 0 {
				g2k = g1k + 1
			}

			layouts[e][v] = blockLayout{
				ecPerBlock: ecPerBlock,
				g1n:        numShortBlocks,
				g1k:        g1k,
				g2n:        numLongBlocks,
				g2k:        g2k,
			}
		}
	}
}

// numDataCodewords returns the number of 8-bit data codewords (EC and
// remainder bits excluded) a symbol of the given version and level can
// hold.
func numDataCodewords(version int, level ErrorCorrectionLevel) int {
	l := layouts[level][version]
	return l.g1n*l.g1k + l.g2n*l.g2k
}

// alignmentPatternPositions returns the ascending list of alignment
// pattern centre coordinates for the given version (empty for version 1).
func alignmentPatternPositions(version int) []int {
	if version == 1 {
		return nil
	}

	numAlign := version/7 + 2
	var step int
	if version == 32 { // special snowflake, per the standard
		step = 26
	} else {
		step = (version*4+numAlign*2+1)/(numAlign*2-2)*2
	}

	result := make([]int, numAlign)
	result[0] = 6
	for i, pos := len(result)-1, version*4+17-7; i >= 1; i-- {
		result[i] = pos
		pos -= step
	}

	return result
}

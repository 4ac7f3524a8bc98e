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

// buildGenPoly returns the degree-d Reed-Solomon generator polynomial
// product(x - alpha^i) for i in [0, d), as coefficients highest-degree
// first with an implicit leading 1.
func buildGenPoly(degree int) []byte {
	gen := make([]byte, degree)
	gen[degree-1] = 1

	root := byte(1)
	for i := 0; i < degree; i++ {
		for j := 0; j < len(gen); j++ {
			gen[j] = gfMultiply(gen[j], root)
			if j+1 < len(gen) {
				gen[j] ^= gen[j+1]
			}
		}
		root = gfMultiply(root, 2)
	}

	return gen
}

// rsEncode computes the d error-correction codewords for data under the
// degree-d generator gen, via the classic shift-and-XOR systematic
// encoder: a length-d remainder register, updated one data byte at a
// time.
func rsEncode(data, gen []byte) []byte {
	d := len(gen)
	r := make([]byte, d)
	for _, b := range data {
		f := b ^ r[0]
		copy(r, r[1:])
		r[d-1] = 0
		for i := 0; i < d; i++ {
			r[i] ^= gfMultiply(gen[i], f)
		}
	}
	return r
}

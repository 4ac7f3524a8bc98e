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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildGenPoly(t *testing.T) {
	gen := buildGenPoly(1)
	assert.Equal(t, byte(0x01), gen[0])

	gen = buildGenPoly(2)
	assert.Equal(t, byte(0x03), gen[0])
	assert.Equal(t, byte(0x02), gen[1])

	gen = buildGenPoly(5)
	assert.Equal(t, byte(0x1F), gen[0])
	assert.Equal(t, byte(0xC6), gen[1])
	assert.Equal(t, byte(0x3F), gen[2])
	assert.Equal(t, byte(0x93), gen[3])
	assert.Equal(t, byte(0x74), gen[4])

	gen = buildGenPoly(30)
	assert.Equal(t, byte(0xD4), gen[0])
	assert.Equal(t, byte(0xF6), gen[1])
	assert.Equal(t, byte(0xC0), gen[5])
	assert.Equal(t, byte(0x16), gen[12])
	assert.Equal(t, byte(0xD9), gen[13])
	assert.Equal(t, byte(0x12), gen[20])
	assert.Equal(t, byte(0x6A), gen[27])
	assert.Equal(t, byte(0x96), gen[29])
}

func TestRSEncode(t *testing.T) {
	t.Run("all-zero data yields all-zero remainder", func(t *testing.T) {
		gen := buildGenPoly(3)
		rem := rsEncode([]byte{0}, gen)
		assert.Equal(t, []byte{0, 0, 0}, rem)
	})

	t.Run("single one-bit matches the generator itself", func(t *testing.T) {
		gen := buildGenPoly(3)
		rem := rsEncode([]byte{0, 1}, gen)
		assert.Equal(t, gen, rem)
	})

	t.Run("five byte message", func(t *testing.T) {
		gen := buildGenPoly(5)
		rem := rsEncode([]byte{0x03, 0x3A, 0x60, 0x12, 0xC7}, gen)
		assert.Equal(t, []byte{0xCB, 0x36, 0x16, 0xFA, 0x9D}, rem)
	})

	t.Run("43 byte message against a degree-30 generator", func(t *testing.T) {
		data := []byte{
			0x38, 0x71, 0xDB, 0xF9, 0xD7, 0x28, 0xF6, 0x8E, 0xFE, 0x5E,
			0xE6, 0x7D, 0x7D, 0xB2, 0xA5, 0x58, 0xBC, 0x28, 0x23, 0x53,
			0x14, 0xD5, 0x61, 0xC0, 0x20, 0x6C, 0xDE, 0xDE, 0xFC, 0x79,
			0xB0, 0x8B, 0x78, 0x6B, 0x49, 0xD0, 0x1A, 0xAD, 0xF3, 0xEF,
			0x52, 0x7D, 0x9A,
		}
		gen := buildGenPoly(30)
		rem := rsEncode(data, gen)
		assert.Len(t, rem, 30)
		assert.Equal(t, byte(0xCE), rem[0])
		assert.Equal(t, byte(0xF0), rem[1])
		assert.Equal(t, byte(0x31), rem[2])
		assert.Equal(t, byte(0xDE), rem[3])
		assert.Equal(t, byte(0xE1), rem[8])
		assert.Equal(t, byte(0xCA), rem[12])
		assert.Equal(t, byte(0xE3), rem[17])
		assert.Equal(t, byte(0x85), rem[19])
		assert.Equal(t, byte(0x50), rem[20])
		assert.Equal(t, byte(0xBE), rem[24])
		assert.Equal(t, byte(0xB3), rem[29])
	})
}

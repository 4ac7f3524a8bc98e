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

func TestGFMultiplyZero(t *testing.T) {
	assert.Equal(t, byte(0), gfMultiply(0, 200))
	assert.Equal(t, byte(0), gfMultiply(200, 0))
	assert.Equal(t, byte(0), gfMultiply(0, 0))
}

func TestGFMultiplyIdentity(t *testing.T) {
	for a := 1; a < 256; a++ {
		assert.Equal(t, byte(a), gfMultiply(byte(a), 1))
	}
}

func TestGFMultiplyCommutative(t *testing.T) {
	cases := [][2]byte{{3, 7}, {2, 128}, {45, 99}, {255, 254}}
	for _, c := range cases {
		assert.Equal(t, gfMultiply(c[0], c[1]), gfMultiply(c[1], c[0]))
	}
}

func TestGFExpLogRoundTrip(t *testing.T) {
	for a := 1; a < 256; a++ {
		assert.Equal(t, byte(a), gfExp[int(gfLog[byte(a)])])
	}
}

func TestGFExpTableDoubledCleanly(t *testing.T) {
	// The field has a multiplicative group of order 255, so alpha^255 =
	// alpha^0, and the doubled half of the table must mirror the first.
	for i := 0; i < 255; i++ {
		assert.Equal(t, gfExp[i], gfExp[i+255])
	}
}

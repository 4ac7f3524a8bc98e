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

// Package qrcodegen is a standalone, dependency-free ISO/IEC 18004 QR code
// encoder. It turns a UTF-8 payload and an error-correction preference
// into a square grid of dark/light modules. Beyond the grid itself it
// offers only a reference SVG writer (RenderSVG) and a block-character
// debug dump (String); any other rendering is left to the caller.
package qrcodegen

import (
	"fmt"
	"strings"
)

// MinVersion and MaxVersion bound the QR code version (symbol size)
// range: version v has side 4v+17 modules.
const (
	MinVersion = 1
	MaxVersion = 40
)

// QRCode is an immutable QR code symbol. Once returned by GenerateQR, its
// fields are never mutated; callers own the grid outright.
type QRCode struct {
	Version              int                  // symbol version, in [MinVersion, MaxVersion]
	Size                 int                  // side length in modules, Version*4+17
	ErrorCorrectionLevel ErrorCorrectionLevel  // EC level used to build this symbol
	Mask                 int                   // the selected mask pattern, in [0, 7]
	Modules              [][]bool             // Modules[row][col]; true = dark
}

// GenerateQR encodes text as a byte-mode QR code symbol at the requested
// error correction level. It returns an error if text is empty or if its
// UTF-8 byte length cannot fit in a version-40 symbol at that level; every
// other input produces a valid symbol.
func GenerateQR(text string, level ErrorCorrectionLevel) (*QRCode, error) {
	if len(text) == 0 {
		return nil, fmt.Errorf("qrcodegen: text must not be empty")
	}

	payload := []byte(text)

	version, ok := selectVersion(len(payload), level)
	if !ok {
		return nil, fmt.Errorf("qrcodegen: payload of %d bytes does not fit in any version at the requested error correction level", len(payload))
	}

	data := encodeDataCodewords(payload, version, level)
	codewords := interleaveCodewords(data, version, level)

	m := newMatrix(version)
	m.drawFunctionPatterns(version)
	m.writeVersionInfo(version)
	m.placeData(codewords)
	mask := m.selectMask(level)

	return &QRCode{
		Version:              version,
		Size:                 m.size,
		ErrorCorrectionLevel: level,
		Mask:                 mask,
		Modules:              m.mod,
	}, nil
}

// String renders the symbol as block characters, two per module so
// terminal cells stay roughly square. Handy for debugging; not part of
// the encoder's external interface.
func (q *QRCode) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "QRCode version=%d size=%d ec=%d mask=%d\n", q.Version, q.Size, q.ErrorCorrectionLevel, q.Mask)
	for _, row := range q.Modules {
		for _, dark := range row {
			if dark {
				sb.WriteString("██")
			} else {
				sb.WriteString("  ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

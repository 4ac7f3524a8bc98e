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
	"fmt"
	"io"
)

// RenderSVG writes q as a scalable vector graphics document to w, adding
// a margin-module quiet zone on all sides (the encoder's own output
// carries no quiet zone; that's left to the renderer). margin must be
// non-negative; the standard recommends at least 4.
func (q *QRCode) RenderSVG(w io.Writer, margin int) error {
	if margin < 0 {
		return fmt.Errorf("qrcodegen: margin must be non-negative")
	}

	total := q.Size + margin*2
	fmt.Fprintf(w, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	fmt.Fprintf(w, "<svg xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\" viewBox=\"0 0 %[1]d %[1]d\" stroke=\"none\">\n", total)
	fmt.Fprintf(w, "\t<rect width=\"100%%\" height=\"100%%\" fill=\"#FFFFFF\"/>\n")
	fmt.Fprintf(w, "\t<path d=\"")
	for r, row := range q.Modules {
		for c, dark := range row {
			if !dark {
				continue
			}
			if r != 0 || c != 0 {
				fmt.Fprintf(w, " ")
			}
			fmt.Fprintf(w, "M%d,%dh1v1h-1z", c+margin, r+margin)
		}
	}
	fmt.Fprintf(w, "\" fill=\"#000000\"/>\n")
	fmt.Fprintf(w, "</svg>\n")
	return nil
}

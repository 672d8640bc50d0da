/*
 * lazyjson, a lazily-inflating JSON value library
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package lazyjson

// Document is the immutable source a parse runs over. It owns the
// character buffer and the Token Index built from it; every Value
// descended from one parse shares a single Document.
//
// A Document addresses its buffer by rune, not by byte, so offsets are
// stable code-unit positions regardless of multi-byte UTF-8 sequences in
// the source text.
type Document struct {
	runes []rune
	index tokenIndex
}

// newDocument wraps text as a Document and builds its Token Index.
func newDocument(text string) (*Document, error) {
	return newDocumentRunes([]rune(text))
}

// newDocumentRunes wraps an already-decoded rune slice as a Document.
func newDocumentRunes(runes []rune) (*Document, error) {
	d := &Document{runes: runes}
	idx, err := buildTokenIndex(d)
	if err != nil {
		return nil, err
	}
	d.index = idx
	return d, nil
}

// Len returns the number of code units in the document.
func (d *Document) Len() int {
	return len(d.runes)
}

// CharAt returns the code unit at offset. The caller must ensure
// 0 <= offset < Len(); out-of-range access is a programming error in
// this package, never a user-facing failure, so it panics like a slice
// index would.
func (d *Document) CharAt(offset int) rune {
	return d.runes[offset]
}

// Substring returns the code units in [start, end).
func (d *Document) Substring(start, end int) []rune {
	return d.runes[start:end]
}

// SubstringString is Substring converted to a string.
func (d *Document) SubstringString(start, end int) string {
	return string(d.runes[start:end])
}

const describeWindow = 8

// describeAt returns a short context window (up to 8 code units) starting
// at offset, for attaching to diagnostics.
func (d *Document) describeAt(offset int) string {
	if offset < 0 || offset >= len(d.runes) {
		return ""
	}
	end := offset + describeWindow
	if end > len(d.runes) {
		end = len(d.runes)
	}
	return string(d.runes[offset:end])
}

// isWhitespace reports whether r is one of the four JSON whitespace
// characters: space, tab, newline, carriage return.
func isWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

// skipWhitespace advances offset past any run of whitespace, returning
// the first non-whitespace offset (which may be d.Len() if the document
// ends in whitespace).
func (d *Document) skipWhitespace(offset int) int {
	for offset < len(d.runes) && isWhitespace(d.runes[offset]) {
		offset++
	}
	return offset
}

// checkWhitespace reports whether every code unit in [start, end) is
// whitespace. An empty range is vacuously whitespace-only.
func (d *Document) checkWhitespace(start, end int) bool {
	for i := start; i < end; i++ {
		if !isWhitespace(d.runes[i]) {
			return false
		}
	}
	return true
}

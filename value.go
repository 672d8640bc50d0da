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

// Package lazyjson parses RFC 8259 JSON text into a tree of typed values.
// Parsing can run in two modes: eager, which fully validates and
// materializes every child before Parse returns, and lazy (the default),
// which records only the bounds of each container and inflates its
// children on first access.
package lazyjson

import "fmt"

// Kind identifies which of the six JSON variants a Value holds.
type Kind uint8

const (
	KindNull Kind = iota
	KindBoolean
	KindNumber
	KindString
	KindArray
	KindObject

	numKinds
)

var kindNames = [numKinds]string{
	KindNull:    "null",
	KindBoolean: "boolean",
	KindNumber:  "number",
	KindString:  "string",
	KindArray:   "array",
	KindObject:  "object",
}

func (k Kind) String() string {
	if int(k) < 0 || int(k) >= int(numKinds) {
		return "<unknown>"
	}
	return kindNames[k]
}

// Value is a tagged JSON value: one of Null, Boolean, Number, String,
// Array, or Object. Every Value shares a back-reference to the Document
// it was parsed from and the offsets of its own span within it.
//
// This collapses what could otherwise be parallel eager/lazy types into
// one variant parameterized by "do I already know my full extent"
// (start/end are always known) and "am I allowed to stop materializing
// early" (the eager flag on container state): see object.go and array.go
// for the single inflation loop this enables.
type Value struct {
	doc   *Document
	kind  Kind
	start int // offset of the value's first code unit
	end   int // offset one past the value's last code unit

	boolVal bool

	numberText string
	numberFP   bool
	number     numberCache

	stringCache *stringCache

	object *objectState
	array  *arrayState
}

// Kind returns which JSON variant v holds.
func (v *Value) Kind() Kind { return v.kind }

// IsNull reports whether v is the JSON null value.
func (v *Value) IsNull() bool { return v.kind == KindNull }

// Span returns the [start, end) document offsets v occupies.
func (v *Value) Span() (start, end int) { return v.start, v.end }

// Option configures a Parse call.
type Option func(*parseConfig)

type parseConfig struct {
	eager bool
}

// WithEager selects eager parsing: every container is fully validated
// and materialized before Parse returns, instead of being inflated on
// first access.
func WithEager() Option {
	return func(c *parseConfig) { c.eager = true }
}

// Parse parses text as a single JSON value. By default containers are
// inflated lazily; pass WithEager() to materialize the whole tree before
// Parse returns.
func Parse(text string, opts ...Option) (*Value, error) {
	doc, err := newDocument(text)
	if err != nil {
		return nil, err
	}
	return parseDocument(doc, opts...)
}

// ParseBytes parses a UTF-8 byte slice as a single JSON value.
func ParseBytes(b []byte, opts ...Option) (*Value, error) {
	return Parse(string(b), opts...)
}

// ParseRunes parses an already-decoded rune slice as a single JSON
// value, matching the reference's "parse(chars)" entry point.
func ParseRunes(chars []rune, opts ...Option) (*Value, error) {
	doc, err := newDocumentRunes(chars)
	if err != nil {
		return nil, err
	}
	return parseDocument(doc, opts...)
}

func parseDocument(doc *Document, opts ...Option) (*Value, error) {
	cfg := parseConfig{}
	for _, o := range opts {
		o(&cfg)
	}

	start := doc.skipWhitespace(0)
	if start >= doc.Len() {
		return nil, newParseError(doc, start, nil, "empty document")
	}

	v, end, _, err := parseValue(doc, start, 0, cfg.eager)
	if err != nil {
		return nil, err
	}

	rest := doc.skipWhitespace(end)
	if rest != doc.Len() {
		return nil, newParseError(doc, rest, nil, "garbage characters at end")
	}
	return v, nil
}

// parseValue is the single dispatch point for every value variant. It
// skips leading whitespace, looks at the first character, and hands off
// to the per-variant constructor. idxPos is the current position in the
// Token Index (ignored by leaf constructors that have no index entries
// of their own). It returns the constructed value, the offset one past
// its last character, and the Token Index position to resume scanning
// from for whatever follows it.
func parseValue(doc *Document, offset, idxPos int, eager bool) (*Value, int, int, error) {
	offset = doc.skipWhitespace(offset)
	if offset >= doc.Len() {
		return nil, 0, 0, newParseError(doc, offset, nil, "value not recognized")
	}

	switch c := doc.CharAt(offset); {
	case c == '{':
		return parseObject(doc, offset, idxPos, eager)
	case c == '[':
		return parseArray(doc, offset, idxPos, eager)
	case c == '"':
		return parseString(doc, offset, idxPos, eager)
	case c == 't' || c == 'f':
		return parseBoolean(doc, offset, idxPos)
	case c == 'n':
		return parseNull(doc, offset, idxPos)
	case c == '-' || (c >= '0' && c <= '9'):
		return parseNumber(doc, offset, idxPos)
	default:
		return nil, 0, 0, newParseError(doc, offset, nil, "invalid value")
	}
}

// String implements fmt.Stringer for diagnostics; it is not a JSON
// renderer (see RenderCompact/RenderIndent for that).
func (v *Value) String() string {
	return fmt.Sprintf("%s@[%d,%d)", v.kind, v.start, v.end)
}

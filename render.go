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

import (
	"bytes"
	"fmt"
	"sort"
)

// RenderCompact renders v as canonical compact JSON: no whitespace
// outside of string literals. Object key order follows first-inflation
// (insertion) order.
func RenderCompact(v *Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := renderValue(&buf, v, -1, 0, false); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderIndent renders v as human-readable JSON using a fixed indent
// width. Object keys are sorted alphabetically in this mode, for
// deterministic output.
func RenderIndent(v *Value, width int) ([]byte, error) {
	if width <= 0 {
		width = 2
	}
	var buf bytes.Buffer
	if err := renderValue(&buf, v, width, 0, true); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderValue(buf *bytes.Buffer, v *Value, indent, depth int, sortKeys bool) error {
	switch v.kind {
	case KindNull:
		buf.WriteString("null")
	case KindBoolean:
		b, _ := v.Bool()
		if b {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case KindNumber:
		text, _ := v.NumberText()
		buf.WriteString(text)
	case KindString:
		text, err := v.Text()
		if err != nil {
			return err
		}
		writeQuoted(buf, text)
	case KindArray:
		elems, err := v.Values()
		if err != nil {
			return err
		}
		return renderSequence(buf, indent, depth, '[', ']', len(elems), func(i int) error {
			return renderValue(buf, elems[i], indent, depth+1, sortKeys)
		})
	case KindObject:
		keys, err := v.Keys()
		if err != nil {
			return err
		}
		if sortKeys {
			sort.Strings(keys)
		}
		return renderSequence(buf, indent, depth, '{', '}', len(keys), func(i int) error {
			writeQuoted(buf, keys[i])
			buf.WriteByte(':')
			if indent >= 0 {
				buf.WriteByte(' ')
			}
			val, _, verr := v.Get(keys[i])
			if verr != nil {
				return verr
			}
			return renderValue(buf, val, indent, depth+1, sortKeys)
		})
	default:
		return fmt.Errorf("lazyjson: cannot render value of kind %s", v.kind)
	}
	return nil
}

func renderSequence(buf *bytes.Buffer, indent, depth int, open, close byte, n int, item func(int) error) error {
	buf.WriteByte(open)
	for i := 0; i < n; i++ {
		if i > 0 {
			buf.WriteByte(',')
		}
		writeIndent(buf, indent, depth+1)
		if err := item(i); err != nil {
			return err
		}
	}
	if n > 0 {
		writeIndent(buf, indent, depth)
	}
	buf.WriteByte(close)
	return nil
}

func writeIndent(buf *bytes.Buffer, indent, depth int) {
	if indent < 0 {
		return
	}
	buf.WriteByte('\n')
	for i := 0; i < depth*indent; i++ {
		buf.WriteByte(' ')
	}
}

// writeQuoted escapes s as a JSON string literal: \" and \\ for double
// quote and backslash, the short escapes \b \f \n \r \t, and \u00XX for
// the remaining code units below 0x20.
func writeQuoted(buf *bytes.Buffer, s string) {
	buf.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\b':
			buf.WriteString(`\b`)
		case '\f':
			buf.WriteString(`\f`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(buf, `\u%04x`, r)
			} else {
				buf.WriteRune(r)
			}
		}
	}
	buf.WriteByte('"')
}

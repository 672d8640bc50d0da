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

// parseBoolean matches the literal "true" or "false" at offset exactly.
// Booleans carry no Token Index entry of their own, so idxPos is passed
// through unchanged.
func parseBoolean(doc *Document, offset, idxPos int) (*Value, int, int, error) {
	if matchLiteral(doc, offset, "true") {
		end := offset + 4
		return &Value{doc: doc, kind: KindBoolean, start: offset, end: end, boolVal: true}, end, idxPos, nil
	}
	if matchLiteral(doc, offset, "false") {
		end := offset + 5
		return &Value{doc: doc, kind: KindBoolean, start: offset, end: end, boolVal: false}, end, idxPos, nil
	}
	return nil, 0, 0, newParseError(doc, offset, nil, "invalid value")
}

func matchLiteral(doc *Document, offset int, literal string) bool {
	if offset+len(literal) > doc.Len() {
		return false
	}
	for i, r := range literal {
		if doc.CharAt(offset+i) != r {
			return false
		}
	}
	return true
}

// Bool returns the underlying truth value of a Boolean.
func (v *Value) Bool() (bool, error) {
	if v.kind != KindBoolean {
		return false, newAccessError("Bool", nil, "value is %s, not boolean", v.kind)
	}
	return v.boolVal, nil
}

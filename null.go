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

// parseNull matches the literal "null" at offset exactly. Like Boolean,
// Null has no Token Index entry of its own.
func parseNull(doc *Document, offset, idxPos int) (*Value, int, int, error) {
	if !matchLiteral(doc, offset, "null") {
		return nil, 0, 0, newParseError(doc, offset, nil, "invalid value")
	}
	end := offset + 4
	return &Value{doc: doc, kind: KindNull, start: offset, end: end}, end, idxPos, nil
}

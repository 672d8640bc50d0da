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

import "sync"

// objectState is the mutable sub-state of a lazily-inflating Object: a
// prefix of decoded entries plus a cursor recording where to resume
// scanning. Eager construction simply drains this cursor to completion
// before the Value is handed back to the caller, which is how this
// single type serves both modes.
type objectState struct {
	mu sync.Mutex

	doc *Document
	idx tokenIndex

	firstPos  int // index position right after the opening '{'
	endPos    int // index position of the matching '}'
	cursorPos int // index position to resume inflation from

	keys      []string
	values    []*Value
	keyIndex  map[string]int
	inflated  bool
	eagerMode bool
}

// parseObject records an Object's bounds (lazy) or fully inflates it
// (eager). idxPos must be the Token Index position of the '{' at offset.
func parseObject(doc *Document, offset, idxPos int, eager bool) (*Value, int, int, error) {
	endPos, err := matchStructure(doc, doc.index, idxPos, '{', '}')
	if err != nil {
		return nil, 0, 0, err
	}
	endOffset := doc.index.offsetOf(endPos) + 1

	os := &objectState{
		doc:       doc,
		idx:       doc.index,
		firstPos:  doc.index.nextIndex(idxPos),
		endPos:    endPos,
		keyIndex:  make(map[string]int),
		eagerMode: eager,
	}
	os.cursorPos = os.firstPos

	v := &Value{doc: doc, kind: KindObject, start: offset, end: endOffset, object: os}
	if eager {
		if err := os.ensureAll(); err != nil {
			return nil, 0, 0, err
		}
	}
	return v, endOffset, doc.index.nextIndex(endPos), nil
}

// ensureAll drives inflation to completion.
func (o *objectState) ensureAll() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	for !o.inflated {
		if err := o.inflateNext(); err != nil {
			return err
		}
	}
	return nil
}

// ensureKey drives inflation until key is seen or the object is fully
// inflated, whichever comes first.
func (o *objectState) ensureKey(key string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	for !o.inflated {
		if _, ok := o.keyIndex[key]; ok {
			return nil
		}
		if err := o.inflateNext(); err != nil {
			return err
		}
	}
	return nil
}

// inflateNext parses exactly one "key":value entry (or detects the
// closing '}') and advances cursorPos past it. Caller must hold o.mu.
func (o *objectState) inflateNext() error {
	if o.cursorPos == o.endPos {
		if o.cursorPos == o.firstPos {
			o.inflated = true
			return nil
		}
		return newParseError(o.doc, o.idx.offsetOf(o.endPos), nil, "trailing comma not permitted")
	}

	keyOffset := o.idx.offsetOf(o.cursorPos)
	if o.idx.charAtIndex(o.doc, o.cursorPos) != '"' {
		return newParseError(o.doc, keyOffset, nil, "expected string key")
	}
	keyVal, keyEnd, afterKeyPos, err := parseString(o.doc, keyOffset, o.cursorPos, true)
	if err != nil {
		return err
	}
	key, err := keyVal.Text()
	if err != nil {
		return err
	}

	if afterKeyPos == noIndex || o.idx.charAtIndex(o.doc, afterKeyPos) != ':' {
		return newParseError(o.doc, keyEnd, nil, "expected ':' after key")
	}
	if !o.doc.checkWhitespace(keyEnd, o.idx.offsetOf(afterKeyPos)) {
		return newParseError(o.doc, keyEnd, nil, "unexpected characters after key")
	}
	colonOffset := o.idx.offsetOf(afterKeyPos)
	valueOffset := o.doc.skipWhitespace(colonOffset + 1)
	valueIdxPos := o.idx.nextIndex(afterKeyPos)

	val, valEnd, afterValPos, err := parseValue(o.doc, valueOffset, valueIdxPos, o.eagerMode)
	if err != nil {
		return err
	}

	if afterValPos == noIndex {
		return newParseError(o.doc, valEnd, nil, "expected ',' or '}' after value")
	}
	sep := o.idx.charAtIndex(o.doc, afterValPos)
	if sep != ',' && sep != '}' {
		return newParseError(o.doc, valEnd, nil, "expected ',' or '}' after value")
	}
	sepOffset := o.idx.offsetOf(afterValPos)
	if !o.doc.checkWhitespace(valEnd, sepOffset) {
		return newParseError(o.doc, valEnd, nil, "unexpected characters after value")
	}

	if _, exists := o.keyIndex[key]; exists {
		return newParseError(o.doc, keyOffset, ErrDuplicateKey, "duplicate keys not allowed")
	}
	o.keyIndex[key] = len(o.keys)
	o.keys = append(o.keys, key)
	o.values = append(o.values, val)

	if sep == '}' {
		o.cursorPos = afterValPos
		o.inflated = true
		return nil
	}
	o.cursorPos = o.idx.nextIndex(afterValPos)
	if o.cursorPos == noIndex {
		return newParseError(o.doc, sepOffset, nil, "unexpected end of object")
	}
	return nil
}

// Keys returns the object's keys. Forces full inflation.
func (v *Value) Keys() ([]string, error) {
	if v.kind != KindObject {
		return nil, newAccessError("Keys", nil, "value is %s, not object", v.kind)
	}
	if err := v.object.ensureAll(); err != nil {
		return nil, err
	}
	out := make([]string, len(v.object.keys))
	copy(out, v.object.keys)
	return out, nil
}

// Size returns the number of entries in an Object, or elements in an
// Array. Forces full inflation.
func (v *Value) Size() (int, error) {
	switch v.kind {
	case KindObject:
		if err := v.object.ensureAll(); err != nil {
			return 0, err
		}
		return len(v.object.keys), nil
	case KindArray:
		if err := v.array.ensureAll(); err != nil {
			return 0, err
		}
		return len(v.array.values), nil
	default:
		return 0, newAccessError("Size", nil, "value is %s, not object or array", v.kind)
	}
}

// Contains reports whether key is present in the object. Inflates only
// as far as necessary to decide.
func (v *Value) Contains(key string) (bool, error) {
	if v.kind != KindObject {
		return false, newAccessError("Contains", nil, "value is %s, not object", v.kind)
	}
	if err := v.object.ensureKey(key); err != nil {
		return false, err
	}
	_, ok := v.object.keyIndex[key]
	return ok, nil
}

// Get returns the value stored under key, inflating only as far as
// necessary to locate it. The second return value reports whether the
// key was present.
func (v *Value) Get(key string) (*Value, bool, error) {
	if v.kind != KindObject {
		return nil, false, newAccessError("Get", nil, "value is %s, not object", v.kind)
	}
	if err := v.object.ensureKey(key); err != nil {
		return nil, false, err
	}
	i, ok := v.object.keyIndex[key]
	if !ok {
		return nil, false, nil
	}
	return v.object.values[i], true, nil
}

// GetOrDefault returns the value stored under key, or def if absent.
func (v *Value) GetOrDefault(key string, def *Value) (*Value, error) {
	val, ok, err := v.Get(key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return def, nil
	}
	return val, nil
}

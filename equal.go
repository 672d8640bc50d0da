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

// Equal reports whether v and other are structurally equal: same Kind,
// and recursively equal contents. Numbers compare by textual form
// case-insensitively; Strings compare by decoded text; Booleans and Null
// compare by value; Arrays compare element-by-element in order; Objects
// compare by key set and per-key value, ignoring key order. Forces
// inflation of both trees as needed.
func (v *Value) Equal(other *Value) (bool, error) {
	if v == nil || other == nil {
		return v == other, nil
	}
	if v.kind != other.kind {
		return false, nil
	}
	switch v.kind {
	case KindNull:
		return true, nil
	case KindBoolean:
		a, err := v.Bool()
		if err != nil {
			return false, err
		}
		b, err := other.Bool()
		if err != nil {
			return false, err
		}
		return a == b, nil
	case KindNumber:
		return numbersEqual(v.numberText, other.numberText), nil
	case KindString:
		a, err := v.Text()
		if err != nil {
			return false, err
		}
		b, err := other.Text()
		if err != nil {
			return false, err
		}
		return a == b, nil
	case KindArray:
		return arraysEqual(v, other)
	case KindObject:
		return objectsEqual(v, other)
	default:
		return false, newAccessError("Equal", nil, "unknown kind %s", v.kind)
	}
}

func arraysEqual(a, b *Value) (bool, error) {
	av, err := a.Values()
	if err != nil {
		return false, err
	}
	bv, err := b.Values()
	if err != nil {
		return false, err
	}
	if len(av) != len(bv) {
		return false, nil
	}
	for i := range av {
		eq, err := av[i].Equal(bv[i])
		if err != nil || !eq {
			return false, err
		}
	}
	return true, nil
}

func objectsEqual(a, b *Value) (bool, error) {
	aKeys, err := a.Keys()
	if err != nil {
		return false, err
	}
	bSize, err := b.Size()
	if err != nil {
		return false, err
	}
	if len(aKeys) != bSize {
		return false, nil
	}
	for _, k := range aKeys {
		av, _, err := a.Get(k)
		if err != nil {
			return false, err
		}
		bv, ok, err := b.Get(k)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
		eq, err := av.Equal(bv)
		if err != nil || !eq {
			return false, err
		}
	}
	return true, nil
}

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

import "testing"

func TestObjectEmptyObject(t *testing.T) {
	v, err := Parse("{}")
	if err != nil {
		t.Fatalf("Parse({}): %v", err)
	}
	size, err := v.Size()
	if err != nil {
		t.Fatalf("Size(): %v", err)
	}
	if size != 0 {
		t.Fatalf("Size() = %d, want 0", size)
	}
	keys, err := v.Keys()
	if err != nil || len(keys) != 0 {
		t.Fatalf("Keys() = %v, %v, want empty", keys, err)
	}
}

func TestObjectGetAndContains(t *testing.T) {
	v, err := Parse(`{"a":1,"b":"two","c":[1,2,3],"d":{"e":true}}`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	ok, err := v.Contains("b")
	if err != nil || !ok {
		t.Fatalf("Contains(b) = %v, %v, want true", ok, err)
	}
	ok, err = v.Contains("missing")
	if err != nil || ok {
		t.Fatalf("Contains(missing) = %v, %v, want false", ok, err)
	}

	val, ok, err := v.Get("a")
	if err != nil || !ok {
		t.Fatalf("Get(a): ok=%v err=%v", ok, err)
	}
	n, err := val.Int64()
	if err != nil || n != 1 {
		t.Fatalf("Get(a) value = %d, %v, want 1", n, err)
	}

	_, ok, err = v.Get("missing")
	if err != nil {
		t.Fatalf("Get(missing): %v", err)
	}
	if ok {
		t.Fatalf("Get(missing) ok = true, want false")
	}
}

func TestObjectGetOrDefault(t *testing.T) {
	v, err := Parse(`{"a":1}`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	def, _ := Parse("0")
	got, err := v.GetOrDefault("missing", def)
	if err != nil {
		t.Fatalf("GetOrDefault: %v", err)
	}
	n, _ := got.Int64()
	if n != 0 {
		t.Fatalf("GetOrDefault(missing) = %d, want 0 (the default)", n)
	}

	got, err = v.GetOrDefault("a", def)
	if err != nil {
		t.Fatalf("GetOrDefault: %v", err)
	}
	n, _ = got.Int64()
	if n != 1 {
		t.Fatalf("GetOrDefault(a) = %d, want 1", n)
	}
}

func TestObjectKeysPreservesInsertionOrder(t *testing.T) {
	v, err := Parse(`{"z":1,"a":2,"m":3}`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	keys, err := v.Keys()
	if err != nil {
		t.Fatalf("Keys(): %v", err)
	}
	want := []string{"z", "a", "m"}
	if len(keys) != len(want) {
		t.Fatalf("Keys() = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("Keys()[%d] = %q, want %q", i, keys[i], want[i])
		}
	}
}

func TestObjectDuplicateKeyRejected(t *testing.T) {
	if _, err := Parse(`{"a":1,"a":2}`, WithEager()); err == nil {
		t.Fatalf("expected error for duplicate key")
	}
}

func TestObjectTrailingCommaRejected(t *testing.T) {
	if _, err := Parse(`{"a":1,}`, WithEager()); err == nil {
		t.Fatalf("expected error for trailing comma")
	}
}

func TestObjectMissingColonOrBrace(t *testing.T) {
	for _, text := range []string{`{"a" 1}`, `{"a":1`, `{a:1}`, `{,"a":1}`} {
		if _, err := Parse(text, WithEager()); err == nil {
			t.Fatalf("Parse(%q): expected error", text)
		}
	}
}

func TestObjectLazyStopsAtRequestedKey(t *testing.T) {
	// A malformed later entry must not surface as an error when an
	// earlier key satisfies the lookup in lazy mode.
	v, err := Parse(`{"a":1,"b":BOGUS}`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	val, ok, err := v.Get("a")
	if err != nil || !ok {
		t.Fatalf("Get(a): ok=%v err=%v", ok, err)
	}
	n, err := val.Int64()
	if err != nil || n != 1 {
		t.Fatalf("Get(a) value = %d, %v", n, err)
	}
	// Forcing full inflation now surfaces the malformed entry.
	if _, err := v.Keys(); err == nil {
		t.Fatalf("Keys(): expected error once the malformed entry is reached")
	}
}

func TestObjectWrongKindAccessor(t *testing.T) {
	v, _ := Parse("1")
	if _, err := v.Keys(); err == nil {
		t.Fatalf("Keys() on a number: expected error")
	}
	if _, _, err := v.Get("a"); err == nil {
		t.Fatalf("Get() on a number: expected error")
	}
}

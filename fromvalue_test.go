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

func TestFromNativeScalars(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		kind Kind
	}{
		{"nil", nil, KindNull},
		{"bool", true, KindBoolean},
		{"string", "hi", KindString},
		{"int", 7, KindNumber},
		{"float64", 3.5, KindNumber},
	}
	for _, tt := range tests {
		v, err := FromNative(tt.in)
		if err != nil {
			t.Fatalf("FromNative(%v): %v", tt.in, err)
		}
		if v.Kind() != tt.kind {
			t.Fatalf("Kind() = %v, want %v", v.Kind(), tt.kind)
		}
	}
}

func TestFromNativeCompositeRoundTrips(t *testing.T) {
	native := map[string]interface{}{
		"a": float64(1),
		"b": []interface{}{"x", "y"},
		"c": true,
	}
	v, err := FromNative(native)
	if err != nil {
		t.Fatalf("FromNative: %v", err)
	}
	out, err := RenderCompact(v)
	if err != nil {
		t.Fatalf("RenderCompact: %v", err)
	}
	reparsed, err := Parse(string(out))
	if err != nil {
		t.Fatalf("Parse(rendered): %v", err)
	}
	eq, err := v.Equal(reparsed)
	if err != nil {
		t.Fatalf("Equal: %v", err)
	}
	if !eq {
		t.Fatalf("FromNative tree does not round trip through render/parse")
	}
}

func TestFromNativeUnsupportedType(t *testing.T) {
	type custom struct{ X int }
	if _, err := FromNative(custom{X: 1}); err == nil {
		t.Fatalf("FromNative(struct): expected error")
	}
}

func TestFromNativeNonFiniteFloat(t *testing.T) {
	if _, err := FromNative(1.0 / zero()); err == nil {
		t.Fatalf("FromNative(+Inf): expected error")
	}
}

func zero() float64 { return 0 }

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

func TestEqualDifferentKinds(t *testing.T) {
	a, _ := Parse("1")
	b, _ := Parse(`"1"`)
	eq, err := a.Equal(b)
	if err != nil {
		t.Fatalf("Equal: %v", err)
	}
	if eq {
		t.Fatalf("number 1 and string \"1\" should not be equal")
	}
}

func TestEqualObjectsIgnoreKeyOrder(t *testing.T) {
	a, _ := Parse(`{"a":1,"b":2}`)
	b, _ := Parse(`{"b":2,"a":1}`)
	eq, err := a.Equal(b)
	if err != nil {
		t.Fatalf("Equal: %v", err)
	}
	if !eq {
		t.Fatalf("objects with the same entries in different order should be equal")
	}
}

func TestEqualObjectsDifferentSize(t *testing.T) {
	a, _ := Parse(`{"a":1}`)
	b, _ := Parse(`{"a":1,"b":2}`)
	eq, err := a.Equal(b)
	if err != nil {
		t.Fatalf("Equal: %v", err)
	}
	if eq {
		t.Fatalf("objects with different sizes should not be equal")
	}
}

func TestEqualArraysOrderSensitive(t *testing.T) {
	a, _ := Parse(`[1,2]`)
	b, _ := Parse(`[2,1]`)
	eq, err := a.Equal(b)
	if err != nil {
		t.Fatalf("Equal: %v", err)
	}
	if eq {
		t.Fatalf("arrays with swapped elements should not be equal")
	}
}

func TestEqualNestedStructures(t *testing.T) {
	a, _ := Parse(`{"a":[1,{"b":"x"}],"c":null}`)
	b, _ := Parse(`{"c":null,"a":[1,{"b":"x"}]}`)
	eq, err := a.Equal(b)
	if err != nil {
		t.Fatalf("Equal: %v", err)
	}
	if !eq {
		t.Fatalf("deeply nested equal structures should compare equal")
	}
}

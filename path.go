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
	"fmt"
	"strconv"
	"strings"
)

// Query walks a dotted/bracketed path such as "a.b[1].c" over v, using
// only Get and Index. It is a convenience built entirely on the public
// accessor surface; it does not parse any additional JSON.
func (v *Value) Query(path string) (*Value, error) {
	steps, err := splitPath(path)
	if err != nil {
		return nil, err
	}
	cur := v
	for _, step := range steps {
		if step.isIndex {
			next, err := cur.Index(step.index)
			if err != nil {
				return nil, fmt.Errorf("lazyjson: query %q: %w", path, err)
			}
			cur = next
			continue
		}
		next, ok, err := cur.Get(step.key)
		if err != nil {
			return nil, fmt.Errorf("lazyjson: query %q: %w", path, err)
		}
		if !ok {
			return nil, fmt.Errorf("lazyjson: query %q: key %q not found", path, step.key)
		}
		cur = next
	}
	return cur, nil
}

type pathStep struct {
	isIndex bool
	key     string
	index   int
}

// splitPath parses "a.b[1].c" into [{key:a} {key:b} {index:1} {key:c}].
func splitPath(path string) ([]pathStep, error) {
	var steps []pathStep
	for _, field := range strings.Split(path, ".") {
		if field == "" {
			continue
		}
		name := field
		for {
			open := strings.IndexByte(name, '[')
			if open < 0 {
				if name != "" {
					steps = append(steps, pathStep{key: name})
				}
				break
			}
			if open > 0 {
				steps = append(steps, pathStep{key: name[:open]})
			}
			close := strings.IndexByte(name[open:], ']')
			if close < 0 {
				return nil, fmt.Errorf("lazyjson: malformed path %q: unmatched '['", path)
			}
			close += open
			idx, err := strconv.Atoi(name[open+1 : close])
			if err != nil {
				return nil, fmt.Errorf("lazyjson: malformed path %q: %w", path, err)
			}
			steps = append(steps, pathStep{isIndex: true, index: idx})
			name = name[close+1:]
		}
	}
	return steps, nil
}

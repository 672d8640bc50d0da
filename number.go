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
	"math"
	"math/big"
	"strconv"
	"strings"
	"sync"
)

// numberCache holds the independently-cached coercions of a Number:
// at most one success or one failure per coercion kind, computed on
// first access.
type numberCache struct {
	mu sync.Mutex

	i64Done bool
	i64     int64
	i64Err  error

	bigDone bool
	big     *big.Int
	bigErr  error

	f64Done bool
	f64     float64
	f64Err  error
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// parseNumber scans and strictly validates an RFC 8259 number starting
// at offset. Numbers have no Token Index entries of their own, so
// idxPos passes through unchanged. The textual form is retained
// verbatim; a "fp" flag records whether a fractional or exponent part
// was seen.
func parseNumber(doc *Document, offset, idxPos int) (*Value, int, int, error) {
	n := doc.Len()
	pos := offset

	if pos < n && doc.CharAt(pos) == '-' {
		pos++
	}
	if pos >= n || !isDigit(doc.CharAt(pos)) {
		return nil, 0, 0, newParseError(doc, pos, nil, "invalid number")
	}
	if doc.CharAt(pos) == '0' {
		pos++
		if pos < n && isDigit(doc.CharAt(pos)) {
			return nil, 0, 0, newParseError(doc, pos, nil, "zero not allowed here")
		}
	} else {
		for pos < n && isDigit(doc.CharAt(pos)) {
			pos++
		}
	}

	fp := false
	if pos < n && doc.CharAt(pos) == '.' {
		fp = true
		pos++
		if pos >= n || !isDigit(doc.CharAt(pos)) {
			return nil, 0, 0, newParseError(doc, pos, nil, "dangling decimal point")
		}
		for pos < n && isDigit(doc.CharAt(pos)) {
			pos++
		}
	}

	if pos < n && (doc.CharAt(pos) == 'e' || doc.CharAt(pos) == 'E') {
		fp = true
		pos++
		if pos < n && (doc.CharAt(pos) == '+' || doc.CharAt(pos) == '-') {
			pos++
		}
		if pos >= n || !isDigit(doc.CharAt(pos)) {
			return nil, 0, 0, newParseError(doc, pos, nil, "dangling exponent")
		}
		for pos < n && isDigit(doc.CharAt(pos)) {
			pos++
		}
	}

	text := doc.SubstringString(offset, pos)
	if f, _ := strconv.ParseFloat(text, 64); math.IsInf(f, 0) {
		return nil, 0, 0, newParseError(doc, offset, nil, "number out of range")
	}

	v := &Value{
		doc:        doc,
		kind:       KindNumber,
		start:      offset,
		end:        pos,
		numberText: text,
		numberFP:   fp,
	}
	return v, pos, idxPos, nil
}

// NumberText returns the number's original textual form, unmodified.
func (v *Value) NumberText() (string, error) {
	if v.kind != KindNumber {
		return "", newAccessError("NumberText", nil, "value is %s, not number", v.kind)
	}
	return v.numberText, nil
}

// IsFloat reports whether the number's text contains a fractional or
// exponent part.
func (v *Value) IsFloat() (bool, error) {
	if v.kind != KindNumber {
		return false, newAccessError("IsFloat", nil, "value is %s, not number", v.kind)
	}
	return v.numberFP, nil
}

// Int64 coerces the number to a signed 64-bit integer. Fails with
// AccessError if the number has a fractional/exponent part or does not
// fit in int64; BigInt or Float64 should be used in that case.
func (v *Value) Int64() (int64, error) {
	if v.kind != KindNumber {
		return 0, newAccessError("Int64", nil, "value is %s, not number", v.kind)
	}
	if v.numberFP {
		return 0, newAccessError("Int64", ErrNotRepresentable, "number %q has a fractional or exponent part", v.numberText)
	}
	c := &v.number
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.i64Done {
		c.i64, c.i64Err = strconv.ParseInt(v.numberText, 10, 64)
		if c.i64Err != nil {
			c.i64Err = newAccessError("Int64", ErrNotRepresentable, "number %q does not fit in int64", v.numberText)
		}
		c.i64Done = true
	}
	return c.i64, c.i64Err
}

// BigInt coerces the number to an arbitrary-precision integer. Fails
// with AccessError if the number has a fractional/exponent part.
func (v *Value) BigInt() (*big.Int, error) {
	if v.kind != KindNumber {
		return nil, newAccessError("BigInt", nil, "value is %s, not number", v.kind)
	}
	if v.numberFP {
		return nil, newAccessError("BigInt", ErrNotRepresentable, "number %q has a fractional or exponent part", v.numberText)
	}
	c := &v.number
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.bigDone {
		bi, ok := new(big.Int).SetString(v.numberText, 10)
		if !ok {
			c.bigErr = newAccessError("BigInt", ErrNotRepresentable, "number %q is not a valid integer", v.numberText)
		} else {
			c.big = bi
		}
		c.bigDone = true
	}
	return c.big, c.bigErr
}

// Float64 coerces the number to a double, whether or not it has a
// fractional/exponent part.
func (v *Value) Float64() (float64, error) {
	if v.kind != KindNumber {
		return 0, newAccessError("Float64", nil, "value is %s, not number", v.kind)
	}
	c := &v.number
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.f64Done {
		c.f64, c.f64Err = strconv.ParseFloat(v.numberText, 64)
		if c.f64Err != nil {
			c.f64Err = newAccessError("Float64", ErrNotRepresentable, "number %q is not representable as float64", v.numberText)
		}
		c.f64Done = true
	}
	return c.f64, c.f64Err
}

// numbersEqual compares two Numbers by textual form, case-insensitively
// (this normalizes `e` vs `E`); it does not compare numeric value.
func numbersEqual(a, b string) bool {
	return strings.EqualFold(a, b)
}

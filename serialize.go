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
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
)

// CompressMode selects how a Serializer compresses a cached Document:
// none, s2 (favoring decode speed), or zstd (favoring ratio). The cached
// payload is the source text plus the Token Index.
type CompressMode uint8

const (
	// CompressNone stores the payload uncompressed.
	CompressNone CompressMode = iota
	// CompressFast applies s2, favoring decode speed over ratio.
	CompressFast
	// CompressDefault applies zstd at its default level.
	CompressDefault
)

const serializedMagic = "LZJ1"

// Serializer persists a parsed Document (its source text and Token
// Index) so a repeated parse of the same bytes can skip re-tokenizing.
// This is a cache, not a new parse mode: Deserialize hands back a
// Document, and callers still drive parseValue over it themselves.
//
// A Serializer is not safe for concurrent use.
type Serializer struct {
	mode CompressMode
	zenc *zstd.Encoder
	zdec *zstd.Decoder
}

// NewSerializer creates a Serializer using CompressDefault.
func NewSerializer() (*Serializer, error) {
	s := &Serializer{mode: CompressDefault}
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, err
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	s.zenc, s.zdec = enc, dec
	return s, nil
}

// CompressMode sets the compression tier used by subsequent Serialize
// calls.
func (s *Serializer) CompressMode(m CompressMode) { s.mode = m }

// Serialize encodes doc's source text and Token Index to a byte stream:
// a 4-byte magic/version tag, the compression mode byte, then a payload
// of [text length][text][token count][token offsets as zig-zag delta
// varints], compressed per s.mode.
func (s *Serializer) Serialize(doc *Document) ([]byte, error) {
	var payload bytes.Buffer
	text := string(doc.runes)
	writeUvarint(&payload, uint64(len(text)))
	payload.WriteString(text)
	writeUvarint(&payload, uint64(len(doc.index)))
	prev := 0
	for _, off := range doc.index {
		writeVarint(&payload, int64(off-prev))
		prev = off
	}

	compressed, err := s.compress(payload.Bytes())
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	out.WriteString(serializedMagic)
	out.WriteByte(byte(s.mode))
	out.Write(compressed)
	return out.Bytes(), nil
}

func (s *Serializer) compress(raw []byte) ([]byte, error) {
	switch s.mode {
	case CompressNone:
		return raw, nil
	case CompressFast:
		return s2.Encode(nil, raw), nil
	case CompressDefault:
		return s.zenc.EncodeAll(raw, nil), nil
	default:
		return nil, fmt.Errorf("lazyjson: unknown compress mode %d", s.mode)
	}
}

// Deserialize restores a Document previously produced by Serialize,
// without re-running buildTokenIndex.
func (s *Serializer) Deserialize(data []byte) (*Document, error) {
	if len(data) < 5 || string(data[:4]) != serializedMagic {
		return nil, errors.New("lazyjson: not a lazyjson serialized document")
	}
	mode := CompressMode(data[4])
	body := data[5:]

	raw, err := s.decompress(mode, body)
	if err != nil {
		return nil, err
	}

	r := bytes.NewReader(raw)
	textLen, err := binary.ReadUvarint(r)
	if err != nil {
		return nil, err
	}
	textBuf := make([]byte, textLen)
	if _, err := r.Read(textBuf); err != nil {
		return nil, err
	}
	count, err := binary.ReadUvarint(r)
	if err != nil {
		return nil, err
	}
	idx := make(tokenIndex, count)
	prev := 0
	for i := range idx {
		delta, err := binary.ReadVarint(r)
		if err != nil {
			return nil, err
		}
		prev += int(delta)
		idx[i] = prev
	}

	return &Document{runes: []rune(string(textBuf)), index: idx}, nil
}

func (s *Serializer) decompress(mode CompressMode, body []byte) ([]byte, error) {
	switch mode {
	case CompressNone:
		return body, nil
	case CompressFast:
		return s2.Decode(nil, body)
	case CompressDefault:
		return s.zdec.DecodeAll(body, nil)
	default:
		return nil, fmt.Errorf("lazyjson: unknown compress mode %d", mode)
	}
}

func writeUvarint(buf *bytes.Buffer, v uint64) {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], v)
	buf.Write(tmp[:n])
}

func writeVarint(buf *bytes.Buffer, v int64) {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutVarint(tmp[:], v)
	buf.Write(tmp[:n])
}

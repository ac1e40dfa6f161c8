// Copyright The Notary Project Authors.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package tlv decodes DER-encoded ASN.1 tag-length-value structures without
// copying the content octets.
// Note:
//   - Only definite lengths are supported; the indefinite form is rejected.
//   - Long form lengths must be minimally encoded and fit the int32 range.
//   - The decoder does not interpret content octets. Checking that a node has
//     the expected type is up to the caller.
//
// Reference:
// - http://luca.ntop.org/Teaching/Appunti/asn1.html
// - ISO/IEC 8825-1
package tlv

// DefaultMaxDepth is the nesting limit used when no other limit is given.
const DefaultMaxDepth = 32

// Option configures a Parser.
type Option func(*Parser)

// WithMaxDepth sets the maximum number of nested constructed values. A
// non-positive n keeps DefaultMaxDepth.
func WithMaxDepth(n int) Option {
	return func(p *Parser) {
		if n > 0 {
			p.maxDepth = n
		}
	}
}

// Parser is a cursor over a buffer of concatenated TLVs. Each call to Next
// decodes one top-level TLV together with all of its members.
//
// A Parser must not be used by multiple goroutines at the same time. Several
// parsers may read the same buffer concurrently.
type Parser struct {
	buf      []byte
	pos      int
	maxDepth int
	err      error
}

// NewParser returns a Parser reading buf from the beginning. buf must not
// be modified while the Parser or the nodes it returns are in use.
func NewParser(buf []byte, opts ...Option) *Parser {
	p := &Parser{
		buf:      buf,
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Next decodes the next top-level TLV. It returns (nil, nil) once the input
// is exhausted at a TLV boundary.
//
// Any error is fatal for p: once Next fails, every later call returns the
// same error.
func (p *Parser) Next() (*Node, error) {
	if p.err != nil {
		return nil, p.err
	}
	if p.pos >= len(p.buf) {
		return nil, nil
	}
	node, err := p.decode(p.pos, len(p.buf), 0)
	if err != nil {
		p.err = err
		return nil, err
	}
	p.pos = node.End
	return node, nil
}

// Offset returns the position of the next top-level TLV in the input.
func (p *Parser) Offset() int {
	return p.pos
}

// Remaining returns the number of input bytes not yet decoded.
func (p *Parser) Remaining() int {
	return len(p.buf) - p.pos
}

// ParseAll decodes every top-level TLV in buf.
func ParseAll(buf []byte, opts ...Option) ([]*Node, error) {
	p := NewParser(buf, opts...)
	var nodes []*Node
	for {
		node, err := p.Next()
		if err != nil {
			return nil, err
		}
		if node == nil {
			return nodes, nil
		}
		nodes = append(nodes, node)
	}
}

// decode decodes the TLV starting at start, which must end at or before
// limit. depth is the number of constructed values enclosing it.
//
// Reference: ISO/IEC 8825-1: 8.1.1
func (p *Parser) decode(start, limit, depth int) (*Node, error) {
	// structure of an encoding (primitive or constructed)
	// +----------------+----------------+----------------+
	// | identifier     | length         | content        |
	// +----------------+----------------+----------------+
	window := p.buf[start:limit]
	tagLen, id, err := DecodeTag(window)
	if err != nil {
		return nil, &DecodeError{Offset: start, Field: "identifier", Err: err}
	}
	lengthLen, length, err := DecodeLength(window[tagLen:])
	if err != nil {
		return nil, &DecodeError{Offset: start + tagLen, Field: "length", Err: err}
	}
	contentStart := start + tagLen + lengthLen
	if length > limit-contentStart {
		return nil, &DecodeError{Offset: start + tagLen, Field: "length", Err: &BadLengthError{Declared: length}}
	}
	end := contentStart + length

	node := &Node{
		TypeID: id,
		Offset: start,
		Start:  contentStart,
		End:    end,
		Wire:   p.buf[start:end:end],
		Value:  p.buf[contentStart:end:end],
	}
	if id.Constructed {
		node.Children, err = p.decodeMembers(contentStart, end, depth+1)
		if err != nil {
			return nil, err
		}
	}
	return node, nil
}

// decodeMembers decodes the members of a constructed value whose content
// octets are buf[start:end]. The members must cover the content exactly.
//
// Reference: ISO/IEC 8825-1: 8.1.1.3
func (p *Parser) decodeMembers(start, end, depth int) ([]*Node, error) {
	if depth > p.maxDepth {
		return nil, &DecodeError{Offset: start, Field: "content", Err: &MaxDepthError{Limit: p.maxDepth}}
	}
	members := []*Node{}
	for pos := start; pos < end; {
		member, err := p.decode(pos, end, depth)
		if err != nil {
			return nil, err
		}
		if member.Is(ClassUniversal, TagEndOfContent) {
			// end-of-contents only terminates indefinite-length content;
			// inside a definite length it ends the value early.
			// Reference: ISO/IEC 8825-1: 8.1.5
			return nil, &DecodeError{Offset: pos, Field: "content", Err: &BadLengthError{Declared: end - start}}
		}
		members = append(members, member)
		pos = member.End
	}
	return members, nil
}

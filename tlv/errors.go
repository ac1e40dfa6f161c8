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

package tlv

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrInsufficientBytes is returned when the input ends before the
	// identifier or length octets are complete.
	ErrInsufficientBytes = errors.New("tlv: insufficient bytes")

	ErrUnsupportedLength = errors.New("tlv: unsupported length")
	ErrBadRepresentation = errors.New("tlv: bad length representation")
	ErrUnsupportedTag    = errors.New("tlv: unsupported tag")
	ErrBadLength         = errors.New("tlv: bad length")
	ErrMaxDepth          = errors.New("tlv: maximum nesting depth exceeded")
)

// UnsupportedLengthError is returned when the length octets use a form the
// decoder does not accept: the indefinite form (Octets is 0), more than
// MaxLengthOctets subsequent octets, or a value that does not fit the int32
// range.
type UnsupportedLengthError struct {
	Octets int
}

// Error returns error message.
func (e *UnsupportedLengthError) Error() string {
	if e.Octets == 0 {
		return "tlv: unsupported length: indefinite length not supported"
	}
	return fmt.Sprintf("tlv: unsupported length: %d length octets", e.Octets)
}

// Is reports whether target is ErrUnsupportedLength.
func (e *UnsupportedLengthError) Is(target error) bool {
	return target == ErrUnsupportedLength
}

// BadRepresentationError is returned when a long form length is not encoded
// in the minimum number of octets.
type BadRepresentationError struct {
	Octets int
	Value  uint64
}

// Error returns error message.
func (e *BadRepresentationError) Error() string {
	return fmt.Sprintf("tlv: bad length representation: value %d encoded in %d octets", e.Value, e.Octets)
}

// Is reports whether target is ErrBadRepresentation.
func (e *BadRepresentationError) Is(target error) bool {
	return target == ErrBadRepresentation
}

// UnsupportedTagError is returned when high-tag-number identifier octets
// cannot be represented as a TagNumber or are not minimally encoded. Raw
// holds the identifier octets read so far.
type UnsupportedTagError struct {
	Raw []byte
}

// Error returns error message.
func (e *UnsupportedTagError) Error() string {
	return fmt.Sprintf("tlv: unsupported tag: identifier octets % x", e.Raw)
}

// Is reports whether target is ErrUnsupportedTag.
func (e *UnsupportedTagError) Is(target error) bool {
	return target == ErrUnsupportedTag
}

// BadLengthError is returned when a declared length exceeds the bytes
// available to it, or when a constructed value is not consumed exactly by its
// members.
type BadLengthError struct {
	Declared int
}

// Error returns error message.
func (e *BadLengthError) Error() string {
	return fmt.Sprintf("tlv: bad length: declared length %d does not match the available content", e.Declared)
}

// Is reports whether target is ErrBadLength.
func (e *BadLengthError) Is(target error) bool {
	return target == ErrBadLength
}

// MaxDepthError is returned when constructed values nest deeper than the
// configured limit.
type MaxDepthError struct {
	Limit int
}

// Error returns error message.
func (e *MaxDepthError) Error() string {
	return fmt.Sprintf("tlv: maximum nesting depth %d exceeded", e.Limit)
}

// Is reports whether target is ErrMaxDepth.
func (e *MaxDepthError) Is(target error) bool {
	return target == ErrMaxDepth
}

// DecodeError records the position of a failure found by a Parser.
type DecodeError struct {
	// Offset is the absolute position in the input of the field that failed.
	Offset int

	// Field is one of "identifier", "length" or "content".
	Field string

	Err error
}

// Error returns error message.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("tlv: decode error at offset %d in %s octets: %v", e.Offset, e.Field, e.Err)
}

// Unwrap returns the internal error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

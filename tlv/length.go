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

import "math"

// MaxLengthOctets is the maximum number of subsequent octets accepted in the
// long form of the length octets.
const MaxLengthOctets = 4

const longFormBit = 0x80

// DecodeLength decodes length octets. It returns the number of octets
// consumed and the definite length of the content octets.
//
// The indefinite form is not supported. The long form must use the minimum
// number of octets, and the length must fit the memory space of the int32
// type.
//
// Reference: ISO/IEC 8825-1: 8.1.3, 10.1
func DecodeLength(b []byte) (int, int, error) {
	if len(b) < 1 {
		return 0, 0, ErrInsufficientBytes
	}
	first := b[0]
	if first&longFormBit == 0 {
		// short form
		// Reference: ISO/IEC 8825-1: 8.1.3.4
		return 1, int(first), nil
	}

	// long form
	// Reference: ISO/IEC 8825-1: 8.1.3.5
	n := int(first &^ longFormBit)
	if n == 0 {
		// Indefinite-length method is not supported.
		// Reference: ISO/IEC 8825-1: 8.1.3.6.1
		return 0, 0, &UnsupportedLengthError{Octets: 0}
	}
	if n > MaxLengthOctets {
		return 0, 0, &UnsupportedLengthError{Octets: n}
	}
	if len(b) < 1+n {
		return 0, 0, ErrInsufficientBytes
	}
	var length uint64
	for _, octet := range b[1 : 1+n] {
		length = length<<8 | uint64(octet)
	}

	// DER restriction: the long form is only used for lengths of 128 and
	// above, in the minimum number of octets.
	if (n == 1 && length < 0x80) || (n > 1 && b[1] == 0) {
		return 0, 0, &BadRepresentationError{Octets: n, Value: length}
	}
	if length > math.MaxInt32 {
		return 0, 0, &UnsupportedLengthError{Octets: n}
	}
	return 1 + n, int(length), nil
}

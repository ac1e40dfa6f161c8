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

// Package base64 transports DER bytes over text channels using the padded
// standard base64 alphabet. Decoding reports the offending character and
// its position in the input.
//
// Reference: https://www.rfc-editor.org/rfc/rfc4648#section-4
package base64

import (
	stdbase64 "encoding/base64"
)

const padChar = '='

// Encode returns the padded base64 encoding of src.
func Encode(src []byte) string {
	return stdbase64.StdEncoding.EncodeToString(src)
}

// Decode decodes padded base64 text. ASCII whitespace is ignored, so
// line-wrapped input such as a PEM body is accepted.
//
// Decoding stops at the first quantum carrying padding; any content after
// it is a TrailingDataError.
func Decode(text string) ([]byte, error) {
	// strip whitespace, remembering where each character came from
	clean := make([]byte, 0, len(text))
	offsets := make([]int, 0, len(text))
	for i := 0; i < len(text); i++ {
		if isSpace(text[i]) {
			continue
		}
		clean = append(clean, text[i])
		offsets = append(offsets, i)
	}
	if len(clean)%4 != 0 {
		return nil, ErrNotMultipleOfFour
	}

	for q := 0; q < len(clean); q += 4 {
		quantum := clean[q : q+4]
		padding := 0
		if quantum[3] == padChar {
			padding = 1
			if quantum[2] == padChar {
				padding = 2
			}
		}
		for i, c := range quantum[:4-padding] {
			if !isAlphabet(c) {
				return nil, &InvalidCharError{Offset: offsets[q+i], Char: c}
			}
		}
		if padding > 0 && q+4 < len(clean) {
			return nil, &TrailingDataError{Offset: offsets[q+4], Char: clean[q+4]}
		}
	}

	dst := make([]byte, stdbase64.StdEncoding.DecodedLen(len(clean)))
	n, err := stdbase64.StdEncoding.Decode(dst, clean)
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}

func isAlphabet(c byte) bool {
	return 'A' <= c && c <= 'Z' ||
		'a' <= c && c <= 'z' ||
		'0' <= c && c <= '9' ||
		c == '+' || c == '/'
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

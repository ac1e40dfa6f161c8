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

package base64

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrNotMultipleOfFour is returned when the input, without whitespace, is
	// not a sequence of complete 4-character quanta.
	ErrNotMultipleOfFour = errors.New("base64: input length is not a multiple of four")

	ErrInvalidChar  = errors.New("base64: invalid character")
	ErrTrailingData = errors.New("base64: trailing data")
)

// InvalidCharError is returned for a character outside of the base64
// alphabet, including misplaced padding.
type InvalidCharError struct {
	// Offset is the position of Char in the original input.
	Offset int
	Char   byte
}

// Error returns error message.
func (e *InvalidCharError) Error() string {
	return fmt.Sprintf("base64: invalid character %q at offset %d", e.Char, e.Offset)
}

// Is reports whether target is ErrInvalidChar.
func (e *InvalidCharError) Is(target error) bool {
	return target == ErrInvalidChar
}

// TrailingDataError is returned when content follows the padded final
// quantum.
type TrailingDataError struct {
	// Offset is the position of Char in the original input.
	Offset int
	Char   byte
}

// Error returns error message.
func (e *TrailingDataError) Error() string {
	return fmt.Sprintf("base64: trailing data %q at offset %d", e.Char, e.Offset)
}

// Is reports whether target is ErrTrailingData.
func (e *TrailingDataError) Is(target error) bool {
	return target == ErrTrailingData
}

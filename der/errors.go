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

package der

import (
	"errors"
	"fmt"

	"github.com/notaryproject/notation-asn1-go/tlv"
)

// Common errors
var (
	ErrTypeMismatch   = errors.New("der: type mismatch")
	ErrInvalidContent = errors.New("der: invalid content")
)

// TypeMismatchError is returned when a node does not have the type the
// caller expects.
type TypeMismatchError struct {
	Offset int
	Want   tlv.TypeID
	Got    tlv.TypeID
}

// Error returns error message.
func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("der: type mismatch at offset %d: want %s, got %s", e.Offset, e.Want, e.Got)
}

// Is reports whether target is ErrTypeMismatch.
func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// ContentError is returned when the content octets of a node are not a
// valid DER encoding of its type.
type ContentError struct {
	Offset int
	TypeID tlv.TypeID
	Msg    string
}

// Error returns error message.
func (e *ContentError) Error() string {
	msg := fmt.Sprintf("der: invalid %s content at offset %d", e.TypeID.Tag, e.Offset)
	if e.Msg != "" {
		msg += ": " + e.Msg
	}
	return msg
}

// Is reports whether target is ErrInvalidContent.
func (e *ContentError) Is(target error) bool {
	return target == ErrInvalidContent
}

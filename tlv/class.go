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

import "fmt"

// Class is the tag class carried in bits 8 and 7 of the first identifier
// octet.
//
// Reference: ISO/IEC 8825-1: 8.1.2.2
type Class uint8

// Tag classes
const (
	ClassUniversal Class = iota
	ClassApplication
	ClassContextSpecific
	ClassPrivate
)

// String returns the class name.
func (c Class) String() string {
	switch c {
	case ClassUniversal:
		return "Universal"
	case ClassApplication:
		return "Application"
	case ClassContextSpecific:
		return "ContextSpecific"
	case ClassPrivate:
		return "Private"
	}
	return fmt.Sprintf("Class(%d)", uint8(c))
}

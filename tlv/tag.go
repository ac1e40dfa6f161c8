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

// TagNumber is the tag number of an identifier. The named constants are the
// universal tags defined by ISO/IEC 8824-1. Any other value is an unknown
// tag, which is valid ASN.1 and only meaningful to the caller.
type TagNumber uint32

// Universal tag numbers
//
// Reference: ISO/IEC 8824-1: 8.4
const (
	TagEndOfContent     TagNumber = 0
	TagBoolean          TagNumber = 1
	TagInteger          TagNumber = 2
	TagBitString        TagNumber = 3
	TagOctetString      TagNumber = 4
	TagNull             TagNumber = 5
	TagObjectIdentifier TagNumber = 6
	TagObjectDescriptor TagNumber = 7
	TagExternal         TagNumber = 8
	TagReal             TagNumber = 9
	TagEnumerated       TagNumber = 10
	TagEmbeddedPDV      TagNumber = 11
	TagUTF8String       TagNumber = 12
	TagRelativeOID      TagNumber = 13
	TagSequence         TagNumber = 16
	TagSet              TagNumber = 17
	TagNumericString    TagNumber = 18
	TagPrintableString  TagNumber = 19
	TagT61String        TagNumber = 20
	TagVideotexString   TagNumber = 21
	TagIA5String        TagNumber = 22
	TagUTCTime          TagNumber = 23
	TagGeneralizedTime  TagNumber = 24
	TagGraphicString    TagNumber = 25
	TagVisibleString    TagNumber = 26
	TagGeneralString    TagNumber = 27
	TagUniversalString  TagNumber = 28
	TagCharacterString  TagNumber = 29
	TagBMPString        TagNumber = 30
)

// MaxTagNumber is the largest tag number accepted in the high-tag-number
// form. It is the largest number that fits in four subsequent octets.
const MaxTagNumber = 1<<28 - 1

const (
	classShift     = 6
	constructedBit = 0x20
	tagMask        = 0x1f
	maxTagOctets   = 4
)

var tagNames = map[TagNumber]string{
	TagEndOfContent:     "EndOfContent",
	TagBoolean:          "Boolean",
	TagInteger:          "Integer",
	TagBitString:        "BitString",
	TagOctetString:      "OctetString",
	TagNull:             "Null",
	TagObjectIdentifier: "ObjectIdentifier",
	TagObjectDescriptor: "ObjectDescriptor",
	TagExternal:         "External",
	TagReal:             "Real",
	TagEnumerated:       "Enumerated",
	TagEmbeddedPDV:      "EmbeddedPDV",
	TagUTF8String:       "UTF8String",
	TagRelativeOID:      "RelativeOID",
	TagSequence:         "Sequence",
	TagSet:              "Set",
	TagNumericString:    "NumericString",
	TagPrintableString:  "PrintableString",
	TagT61String:        "T61String",
	TagVideotexString:   "VideotexString",
	TagIA5String:        "IA5String",
	TagUTCTime:          "UTCTime",
	TagGeneralizedTime:  "GeneralizedTime",
	TagGraphicString:    "GraphicString",
	TagVisibleString:    "VisibleString",
	TagGeneralString:    "GeneralString",
	TagUniversalString:  "UniversalString",
	TagCharacterString:  "CharacterString",
	TagBMPString:        "BMPString",
}

// Known reports whether t is one of the named universal tag numbers.
func (t TagNumber) Known() bool {
	_, ok := tagNames[t]
	return ok
}

// String returns the universal tag name, or Unknown(n) for other numbers.
func (t TagNumber) String() string {
	if name, ok := tagNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(%d)", uint32(t))
}

// TypeID is the type information carried by the identifier octets.
type TypeID struct {
	Class       Class
	Constructed bool
	Tag         TagNumber
}

// String returns a readable form of id, such as [Universal Sequence constructed].
func (id TypeID) String() string {
	form := "primitive"
	if id.Constructed {
		form = "constructed"
	}
	if id.Class != ClassUniversal {
		return fmt.Sprintf("[%s %d %s]", id.Class, uint32(id.Tag), form)
	}
	return fmt.Sprintf("[%s %s %s]", id.Class, id.Tag, form)
}

// DecodeTag decodes identifier octets. It returns the number of octets
// consumed and the decoded type information.
//
// Unknown tag numbers are not an error. The high-tag-number form is decoded
// when it is minimally encoded and the number does not exceed MaxTagNumber;
// otherwise an UnsupportedTagError is returned. ErrInsufficientBytes is
// returned if b is empty or ends inside the high-tag-number octets.
//
// Reference: ISO/IEC 8825-1: 8.1.2
func DecodeTag(b []byte) (int, TypeID, error) {
	if len(b) < 1 {
		return 0, TypeID{}, ErrInsufficientBytes
	}
	first := b[0]
	id := TypeID{
		Class:       Class(first >> classShift),
		Constructed: first&constructedBit == constructedBit,
		Tag:         TagNumber(first & tagMask),
	}
	if first&tagMask != tagMask {
		return 1, id, nil
	}

	// high-tag-number form
	// Reference: ISO/IEC 8825-1: 8.1.2.4
	var number uint32
	offset := 1
	for {
		if offset >= len(b) {
			return 0, TypeID{}, ErrInsufficientBytes
		}
		octet := b[offset]
		offset++
		if offset-1 > maxTagOctets || (offset == 2 && octet == 0x80) {
			// too large, or padded with a leading zero group (8.1.2.4.2 c)
			return 0, TypeID{}, &UnsupportedTagError{Raw: b[:offset]}
		}
		number = number<<7 | uint32(octet&0x7f)
		if octet&0x80 == 0 {
			break
		}
	}
	if number < tagMask {
		// DER requires the low-tag-number form for numbers below 31.
		return 0, TypeID{}, &UnsupportedTagError{Raw: b[:offset]}
	}
	id.Tag = TagNumber(number)
	return offset, id, nil
}

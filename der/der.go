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

// Package der interprets the content octets of decoded TLV nodes as DER
// values of universal types. The tlv package stays schema-agnostic; callers
// use this package once they know what a node is supposed to hold.
package der

import (
	"encoding/asn1"
	"math/big"
	"time"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/notaryproject/notation-asn1-go/tlv"
	"golang.org/x/crypto/cryptobyte"
	cryptobyte_asn1 "golang.org/x/crypto/cryptobyte/asn1"
)

// Expect returns a TypeMismatchError unless n has the given class, tag
// number and encoding.
func Expect(n *tlv.Node, class tlv.Class, tag tlv.TagNumber, constructed bool) error {
	want := tlv.TypeID{Class: class, Constructed: constructed, Tag: tag}
	if n.TypeID != want {
		return &TypeMismatchError{Offset: n.Offset, Want: want, Got: n.TypeID}
	}
	return nil
}

// Sequence returns the members of a SEQUENCE node.
func Sequence(n *tlv.Node) ([]*tlv.Node, error) {
	if err := Expect(n, tlv.ClassUniversal, tlv.TagSequence, true); err != nil {
		return nil, err
	}
	return n.Children, nil
}

// Set returns the members of a SET node. DER requires the members to be
// sorted by their encodings.
//
// Reference: ISO/IEC 8825-1: 11.6
func Set(n *tlv.Node) ([]*tlv.Node, error) {
	if err := Expect(n, tlv.ClassUniversal, tlv.TagSet, true); err != nil {
		return nil, err
	}
	for i := 1; i < len(n.Children); i++ {
		if string(n.Children[i-1].Wire) > string(n.Children[i].Wire) {
			return nil, contentError(n, "SET members are not sorted")
		}
	}
	return n.Children, nil
}

// Boolean returns the value of a BOOLEAN node.
func Boolean(n *tlv.Node) (bool, error) {
	var v bool
	err := read(n, tlv.TagBoolean, func(s *cryptobyte.String) bool {
		return s.ReadASN1Boolean(&v)
	})
	return v, err
}

// Int64 returns the value of an INTEGER node that fits in an int64.
func Int64(n *tlv.Node) (int64, error) {
	var v int64
	err := read(n, tlv.TagInteger, func(s *cryptobyte.String) bool {
		return s.ReadASN1Integer(&v)
	})
	return v, err
}

// BigInt returns the value of an INTEGER node.
func BigInt(n *tlv.Node) (*big.Int, error) {
	v := new(big.Int)
	err := read(n, tlv.TagInteger, func(s *cryptobyte.String) bool {
		return s.ReadASN1Integer(v)
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Enumerated returns the value of an ENUMERATED node.
func Enumerated(n *tlv.Node) (int, error) {
	var v int
	err := read(n, tlv.TagEnumerated, func(s *cryptobyte.String) bool {
		return s.ReadASN1Enum(&v)
	})
	return v, err
}

// ObjectIdentifier returns the arcs of an OBJECT IDENTIFIER node.
func ObjectIdentifier(n *tlv.Node) (asn1.ObjectIdentifier, error) {
	var v asn1.ObjectIdentifier
	err := read(n, tlv.TagObjectIdentifier, func(s *cryptobyte.String) bool {
		return s.ReadASN1ObjectIdentifier(&v)
	})
	return v, err
}

// BitString returns the value of a BIT STRING node. The returned bytes alias
// the input buffer.
func BitString(n *tlv.Node) (asn1.BitString, error) {
	var v asn1.BitString
	err := read(n, tlv.TagBitString, func(s *cryptobyte.String) bool {
		return s.ReadASN1BitString(&v)
	})
	return v, err
}

// OctetString returns the content of an OCTET STRING node. The returned
// bytes alias the input buffer.
func OctetString(n *tlv.Node) ([]byte, error) {
	if err := Expect(n, tlv.ClassUniversal, tlv.TagOctetString, false); err != nil {
		return nil, err
	}
	return n.Value, nil
}

// Null checks that n is a NULL node.
func Null(n *tlv.Node) error {
	if err := Expect(n, tlv.ClassUniversal, tlv.TagNull, false); err != nil {
		return err
	}
	if n.Len() != 0 {
		return contentError(n, "non-empty content")
	}
	return nil
}

// Time returns the value of a UTCTime or GeneralizedTime node.
func Time(n *tlv.Node) (time.Time, error) {
	var v time.Time
	switch {
	case n.Is(tlv.ClassUniversal, tlv.TagUTCTime):
		err := read(n, tlv.TagUTCTime, func(s *cryptobyte.String) bool {
			return s.ReadASN1UTCTime(&v)
		})
		return v, err
	default:
		err := read(n, tlv.TagGeneralizedTime, func(s *cryptobyte.String) bool {
			return s.ReadASN1GeneralizedTime(&v)
		})
		return v, err
	}
}

// String returns the value of a character string node. UTF8String,
// NumericString, PrintableString, T61String, IA5String, VisibleString and
// BMPString are supported; the content is checked against the character set
// of the type.
func String(n *tlv.Node) (string, error) {
	tag := n.TypeID.Tag
	if n.TypeID.Class != tlv.ClassUniversal || n.TypeID.Constructed {
		tag = tlv.TagUTF8String
	}
	var b []byte
	err := read(n, tag, func(s *cryptobyte.String) bool {
		return s.ReadASN1Bytes(&b, cryptobyte_asn1.Tag(tag))
	})
	if err != nil {
		return "", err
	}

	switch tag {
	case tlv.TagUTF8String:
		if !utf8.Valid(b) {
			return "", contentError(n, "invalid UTF-8")
		}
		return string(b), nil
	case tlv.TagNumericString:
		return checkChars(n, b, isNumeric)
	case tlv.TagPrintableString:
		return checkChars(n, b, isPrintable)
	case tlv.TagIA5String:
		return checkChars(n, b, func(c byte) bool { return c < utf8.RuneSelf })
	case tlv.TagVisibleString:
		return checkChars(n, b, func(c byte) bool { return c >= 0x20 && c <= 0x7e })
	case tlv.TagT61String:
		// decoded as ISO/IEC 8859-1, which is what T61String carries in
		// practice
		runes := make([]rune, len(b))
		for i, c := range b {
			runes[i] = rune(c)
		}
		return string(runes), nil
	case tlv.TagBMPString:
		if len(b)%2 != 0 {
			return "", contentError(n, "odd number of octets")
		}
		units := make([]uint16, len(b)/2)
		for i := range units {
			units[i] = uint16(b[2*i])<<8 | uint16(b[2*i+1])
		}
		return string(utf16.Decode(units)), nil
	}
	return "", &TypeMismatchError{
		Offset: n.Offset,
		Want:   tlv.TypeID{Class: tlv.ClassUniversal, Tag: tlv.TagUTF8String},
		Got:    n.TypeID,
	}
}

// read checks that n is a primitive universal node with the given tag and
// runs fn over its complete encoding. fn must consume the encoding exactly.
func read(n *tlv.Node, tag tlv.TagNumber, fn func(*cryptobyte.String) bool) error {
	if err := Expect(n, tlv.ClassUniversal, tag, false); err != nil {
		return err
	}
	s := cryptobyte.String(n.Wire)
	if !fn(&s) || !s.Empty() {
		return contentError(n, "")
	}
	return nil
}

func checkChars(n *tlv.Node, b []byte, valid func(byte) bool) (string, error) {
	for _, c := range b {
		if !valid(c) {
			return "", contentError(n, "invalid character")
		}
	}
	return string(b), nil
}

func isNumeric(c byte) bool {
	return c == ' ' || ('0' <= c && c <= '9')
}

// isPrintable reports whether c is in the PrintableString character set.
// '*' and '&' are accepted as well since they are common in real
// certificates.
func isPrintable(c byte) bool {
	return 'a' <= c && c <= 'z' ||
		'A' <= c && c <= 'Z' ||
		'0' <= c && c <= '9' ||
		'\'' <= c && c <= ')' ||
		'+' <= c && c <= '/' ||
		c == ' ' || c == ':' || c == '=' || c == '?' ||
		c == '*' || c == '&'
}

func contentError(n *tlv.Node, msg string) error {
	return &ContentError{Offset: n.Offset, TypeID: n.TypeID, Msg: msg}
}

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

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/notaryproject/notation-asn1-go/der"
	"github.com/notaryproject/notation-asn1-go/tlv"
)

// Output formats of the dump command.
const (
	formatText = "text"
	formatJSON = "json"
	formatCBOR = "cbor"
)

// maxHexOctets is the number of content octets shown in text output for a
// primitive value without a readable interpretation.
const maxHexOctets = 32

var cborEncMode cbor.EncMode

func init() {
	var err error
	if cborEncMode, err = cbor.CoreDetEncOptions().EncMode(); err != nil {
		panic(err)
	}
}

// document is the decoded tree of one input.
type document struct {
	Input string    `json:"input"`
	Nodes []*record `json:"nodes"`
}

// record is the serializable form of a tlv.Node.
type record struct {
	Class       string    `json:"class"`
	Tag         uint32    `json:"tag"`
	Type        string    `json:"type,omitempty"`
	Constructed bool      `json:"constructed"`
	Offset      int       `json:"offset"`
	Length      int       `json:"length"`
	Value       string    `json:"value,omitempty"`
	Content     []byte    `json:"content,omitempty"`
	Members     []*record `json:"members,omitempty"`
}

func makeRecords(nodes []*tlv.Node) []*record {
	records := make([]*record, 0, len(nodes))
	for _, n := range nodes {
		records = append(records, makeRecord(n))
	}
	return records
}

func makeRecord(n *tlv.Node) *record {
	r := &record{
		Class:       n.TypeID.Class.String(),
		Tag:         uint32(n.TypeID.Tag),
		Constructed: n.IsConstructed(),
		Offset:      n.Offset,
		Length:      n.Len(),
	}
	if n.TypeID.Class == tlv.ClassUniversal {
		r.Type = n.TypeID.Tag.String()
	}
	if n.IsConstructed() {
		r.Members = makeRecords(n.Children)
		return r
	}
	r.Value = interpret(n)
	r.Content = n.Value
	return r
}

// interpret returns a readable rendition of a universal primitive value,
// or "" when there is none.
func interpret(n *tlv.Node) string {
	if n.TypeID.Class != tlv.ClassUniversal || n.IsConstructed() {
		return ""
	}
	switch n.TypeID.Tag {
	case tlv.TagBoolean:
		if v, err := der.Boolean(n); err == nil {
			return strconv.FormatBool(v)
		}
	case tlv.TagInteger, tlv.TagEnumerated:
		if v, err := der.BigInt(n); err == nil {
			return v.String()
		}
	case tlv.TagObjectIdentifier:
		if v, err := der.ObjectIdentifier(n); err == nil {
			return v.String()
		}
	case tlv.TagNull:
		if der.Null(n) == nil {
			return "NULL"
		}
	case tlv.TagBitString:
		if v, err := der.BitString(n); err == nil {
			return fmt.Sprintf("%d bits", v.BitLength)
		}
	case tlv.TagUTCTime, tlv.TagGeneralizedTime:
		if v, err := der.Time(n); err == nil {
			return v.UTC().Format(time.RFC3339)
		}
	case tlv.TagUTF8String, tlv.TagNumericString, tlv.TagPrintableString, tlv.TagT61String,
		tlv.TagIA5String, tlv.TagVisibleString, tlv.TagBMPString:
		if v, err := der.String(n); err == nil {
			return strconv.Quote(v)
		}
	}
	return ""
}

func render(w io.Writer, format string, doc document) error {
	switch format {
	case formatText:
		return renderText(w, doc)
	case formatJSON:
		return json.NewEncoder(w).Encode(doc)
	case formatCBOR:
		return cborEncMode.NewEncoder(w).Encode(doc)
	}
	return fmt.Errorf("unknown output format %q", format)
}

func renderText(w io.Writer, doc document) error {
	if _, err := fmt.Fprintf(w, "# %s\n", doc.Input); err != nil {
		return err
	}
	return writeText(w, doc.Nodes, 0)
}

func writeText(w io.Writer, records []*record, depth int) error {
	indent := strings.Repeat("  ", depth)
	for _, r := range records {
		line := fmt.Sprintf("%s%s offset=%d len=%d", indent, typeLabel(r), r.Offset, r.Length)
		switch {
		case r.Constructed:
			line += fmt.Sprintf(" members=%d", len(r.Members))
		case r.Value != "":
			line += ": " + r.Value
		case len(r.Content) > maxHexOctets:
			line += ": " + hex.EncodeToString(r.Content[:maxHexOctets]) + "..."
		case len(r.Content) > 0:
			line += ": " + hex.EncodeToString(r.Content)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
		if err := writeText(w, r.Members, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func typeLabel(r *record) string {
	form := "primitive"
	if r.Constructed {
		form = "constructed"
	}
	if r.Type != "" {
		return fmt.Sprintf("[%s %s %s]", r.Class, r.Type, form)
	}
	return fmt.Sprintf("[%s %d %s]", r.Class, r.Tag, form)
}

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
	"bytes"
	"errors"
	"testing"
)

func TestDecodeTag(t *testing.T) {
	tests := []struct {
		name         string
		input        []byte
		wantConsumed int
		want         TypeID
	}{
		{
			name:         "integer",
			input:        []byte{0x02},
			wantConsumed: 1,
			want:         TypeID{Class: ClassUniversal, Constructed: false, Tag: TagInteger},
		},
		{
			name:         "sequence",
			input:        []byte{0x30, 0x00},
			wantConsumed: 1,
			want:         TypeID{Class: ClassUniversal, Constructed: true, Tag: TagSequence},
		},
		{
			name:         "object identifier",
			input:        []byte{0x06},
			wantConsumed: 1,
			want:         TypeID{Class: ClassUniversal, Tag: TagObjectIdentifier},
		},
		{
			name:         "application",
			input:        []byte{0x61},
			wantConsumed: 1,
			want:         TypeID{Class: ClassApplication, Constructed: true, Tag: 1},
		},
		{
			name:         "context specific",
			input:        []byte{0xa0},
			wantConsumed: 1,
			want:         TypeID{Class: ClassContextSpecific, Constructed: true, Tag: 0},
		},
		{
			name:         "private",
			input:        []byte{0xc3},
			wantConsumed: 1,
			want:         TypeID{Class: ClassPrivate, Tag: 3},
		},
		{
			name:         "unknown universal",
			input:        []byte{0x0e},
			wantConsumed: 1,
			want:         TypeID{Class: ClassUniversal, Tag: 14},
		},
		{
			name:         "high tag number one octet",
			input:        []byte{0x1f, 0x20, 0x01},
			wantConsumed: 2,
			want:         TypeID{Class: ClassUniversal, Tag: 32},
		},
		{
			name:         "high tag number two octets",
			input:        []byte{0x9f, 0xa0, 0x20},
			wantConsumed: 3,
			want:         TypeID{Class: ClassContextSpecific, Tag: 0x1020},
		},
		{
			name:         "high tag number smallest",
			input:        []byte{0x3f, 0x1f},
			wantConsumed: 2,
			want:         TypeID{Class: ClassUniversal, Constructed: true, Tag: 31},
		},
		{
			name:         "high tag number largest",
			input:        []byte{0x5f, 0xff, 0xff, 0xff, 0x7f},
			wantConsumed: 5,
			want:         TypeID{Class: ClassApplication, Tag: MaxTagNumber},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			consumed, got, err := DecodeTag(tt.input)
			if err != nil {
				t.Fatalf("DecodeTag() error = %v, want nil", err)
			}
			if consumed != tt.wantConsumed {
				t.Errorf("DecodeTag() consumed = %d, want %d", consumed, tt.wantConsumed)
			}
			if got != tt.want {
				t.Errorf("DecodeTag() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDecodeTagFailed(t *testing.T) {
	tests := []struct {
		name    string
		input   []byte
		wantErr error
		wantRaw []byte
	}{
		{
			name:    "empty",
			input:   []byte{},
			wantErr: ErrInsufficientBytes,
		},
		{
			name:    "high tag number without octets",
			input:   []byte{0x1f},
			wantErr: ErrInsufficientBytes,
		},
		{
			name:    "high tag number early EOF",
			input:   []byte{0x1f, 0xa0},
			wantErr: ErrInsufficientBytes,
		},
		{
			name:    "high tag number with leading zero group",
			input:   []byte{0x1f, 0x80, 0x20},
			wantErr: ErrUnsupportedTag,
			wantRaw: []byte{0x1f, 0x80},
		},
		{
			name:    "high tag number too large",
			input:   []byte{0x1f, 0x81, 0x80, 0x80, 0x80, 0x00},
			wantErr: ErrUnsupportedTag,
			wantRaw: []byte{0x1f, 0x81, 0x80, 0x80, 0x80, 0x00},
		},
		{
			name:    "high tag number for low number",
			input:   []byte{0x1f, 0x02},
			wantErr: ErrUnsupportedTag,
			wantRaw: []byte{0x1f, 0x02},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := DecodeTag(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("DecodeTag() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantRaw == nil {
				return
			}
			var ute *UnsupportedTagError
			if !errors.As(err, &ute) {
				t.Fatalf("DecodeTag() error = %T, want *UnsupportedTagError", err)
			}
			if !bytes.Equal(ute.Raw, tt.wantRaw) {
				t.Errorf("UnsupportedTagError.Raw = % x, want % x", ute.Raw, tt.wantRaw)
			}
		})
	}
}

func TestTagNumberString(t *testing.T) {
	tests := []struct {
		tag       TagNumber
		want      string
		wantKnown bool
	}{
		{TagObjectIdentifier, "ObjectIdentifier", true},
		{TagBMPString, "BMPString", true},
		{14, "Unknown(14)", false},
		{0x1020, "Unknown(4128)", false},
	}
	for _, tt := range tests {
		if got := tt.tag.String(); got != tt.want {
			t.Errorf("TagNumber(%d).String() = %q, want %q", uint32(tt.tag), got, tt.want)
		}
		if got := tt.tag.Known(); got != tt.wantKnown {
			t.Errorf("TagNumber(%d).Known() = %v, want %v", uint32(tt.tag), got, tt.wantKnown)
		}
	}
}

func TestTypeIDString(t *testing.T) {
	tests := []struct {
		id   TypeID
		want string
	}{
		{TypeID{Class: ClassUniversal, Constructed: true, Tag: TagSequence}, "[Universal Sequence constructed]"},
		{TypeID{Class: ClassContextSpecific, Tag: 2}, "[ContextSpecific 2 primitive]"},
		{TypeID{Class: ClassUniversal, Tag: 14}, "[Universal Unknown(14) primitive]"},
	}
	for _, tt := range tests {
		if got := tt.id.String(); got != tt.want {
			t.Errorf("TypeID.String() = %q, want %q", got, tt.want)
		}
	}
}

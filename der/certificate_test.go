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
	"encoding/asn1"
	"testing"

	"github.com/notaryproject/notation-asn1-go/internal/oid"
	"github.com/notaryproject/notation-asn1-go/testhelper"
	"github.com/notaryproject/notation-asn1-go/tlv"
)

func TestCertificate(t *testing.T) {
	tests := []struct {
		name       string
		cert       testhelper.CertTuple
		wantSigAlg asn1.ObjectIdentifier
		wantKeyAlg asn1.ObjectIdentifier
		isRoot     bool
	}{
		{"RSA root", testhelper.GetRSARootCertificate(), oid.SHA256WithRSA, oid.RSA, true},
		{"RSA leaf", testhelper.GetRSALeafCertificate(), oid.SHA256WithRSA, oid.RSA, false},
		{"ECDSA root", testhelper.GetECDSARootCertificate(), oid.ECDSAWithSHA384, oid.ECPublicKey, true},
		{"ECDSA leaf", testhelper.GetECDSALeafCertificate(), oid.ECDSAWithSHA384, oid.ECPublicKey, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cert := tt.cert.Cert
			nodes, err := tlv.ParseAll(cert.Raw)
			if err != nil {
				t.Fatalf("tlv.ParseAll() error = %v", err)
			}
			certificate := mustSequence(t, nodes[0], 3)
			tbs := mustSequence(t, certificate[0], 8)

			// version [0] EXPLICIT INTEGER
			if err := Expect(tbs[0], tlv.ClassContextSpecific, 0, true); err != nil {
				t.Fatalf("version: %v", err)
			}
			if v, err := Int64(tbs[0].Children[0]); err != nil || v != 2 {
				t.Errorf("version = (%d, %v), want (2, nil)", v, err)
			}

			serial, err := BigInt(tbs[1])
			if err != nil {
				t.Fatalf("serialNumber: %v", err)
			}
			if serial.Cmp(cert.SerialNumber) != 0 {
				t.Errorf("serialNumber = %v, want %v", serial, cert.SerialNumber)
			}

			// the signature algorithm is repeated outside of tbsCertificate
			for _, algorithm := range []*tlv.Node{tbs[2], certificate[1]} {
				got, err := ObjectIdentifier(algorithm.Children[0])
				if err != nil {
					t.Fatalf("signature algorithm: %v", err)
				}
				if !got.Equal(tt.wantSigAlg) {
					t.Errorf("signature algorithm = %v, want %v", got, tt.wantSigAlg)
				}
			}
			if tt.wantKeyAlg.Equal(oid.RSA) {
				if err := Null(tbs[2].Children[1]); err != nil {
					t.Errorf("RSA signature parameters: %v", err)
				}
			}

			if got := commonName(t, tbs[5]); got != cert.Subject.CommonName {
				t.Errorf("subject commonName = %q, want %q", got, cert.Subject.CommonName)
			}
			if got := commonName(t, tbs[3]); got != cert.Issuer.CommonName {
				t.Errorf("issuer commonName = %q, want %q", got, cert.Issuer.CommonName)
			}

			validity := mustSequence(t, tbs[4], 2)
			notBefore, err := Time(validity[0])
			if err != nil || !notBefore.Equal(cert.NotBefore) {
				t.Errorf("notBefore = (%v, %v), want %v", notBefore, err, cert.NotBefore)
			}
			if !validity[0].Is(tlv.ClassUniversal, tlv.TagUTCTime) {
				t.Errorf("notBefore type = %v, want UTCTime", validity[0].TypeID)
			}
			notAfter, err := Time(validity[1])
			if err != nil || !notAfter.Equal(cert.NotAfter) {
				t.Errorf("notAfter = (%v, %v), want %v", notAfter, err, cert.NotAfter)
			}
			if !validity[1].Is(tlv.ClassUniversal, tlv.TagGeneralizedTime) {
				t.Errorf("notAfter type = %v, want GeneralizedTime", validity[1].TypeID)
			}

			spki := mustSequence(t, tbs[6], 2)
			keyAlg, err := ObjectIdentifier(spki[0].Children[0])
			if err != nil || !keyAlg.Equal(tt.wantKeyAlg) {
				t.Errorf("public key algorithm = (%v, %v), want %v", keyAlg, err, tt.wantKeyAlg)
			}
			if _, err := BitString(spki[1]); err != nil {
				t.Errorf("subjectPublicKey: %v", err)
			}

			// extensions [3] EXPLICIT
			if err := Expect(tbs[7], tlv.ClassContextSpecific, 3, true); err != nil {
				t.Fatalf("extensions: %v", err)
			}
			keyUsage := findExtension(t, tbs[7].Children[0], oid.KeyUsage)
			if keyUsage == nil {
				t.Fatal("keyUsage extension not found")
			}
			if critical, err := Boolean(keyUsage[1]); err != nil || !critical {
				t.Errorf("keyUsage critical = (%v, %v), want (true, nil)", critical, err)
			}
			extnValue, err := OctetString(keyUsage[2])
			if err != nil {
				t.Fatalf("keyUsage extnValue: %v", err)
			}
			bits, err := BitString(mustParse(t, extnValue))
			if err != nil {
				t.Fatalf("keyUsage: %v", err)
			}
			// digitalSignature (0) for leaves, keyCertSign (5) for roots
			if tt.isRoot && bits.At(5) != 1 {
				t.Errorf("keyUsage = %+v, want keyCertSign", bits)
			}
			if !tt.isRoot && bits.At(0) != 1 {
				t.Errorf("keyUsage = %+v, want digitalSignature", bits)
			}

			if !tt.isRoot && findExtension(t, tbs[7].Children[0], oid.ExtKeyUsage) == nil {
				t.Error("extKeyUsage extension not found")
			}
		})
	}
}

func mustSequence(t *testing.T, n *tlv.Node, size int) []*tlv.Node {
	t.Helper()
	members, err := Sequence(n)
	if err != nil {
		t.Fatalf("Sequence() error = %v", err)
	}
	if len(members) != size {
		t.Fatalf("Sequence() returned %d members, want %d", len(members), size)
	}
	return members
}

// commonName returns the commonName attribute of a Name.
func commonName(t *testing.T, name *tlv.Node) string {
	t.Helper()
	rdns, err := Sequence(name)
	if err != nil {
		t.Fatalf("Name: %v", err)
	}
	for _, rdn := range rdns {
		attributes, err := Set(rdn)
		if err != nil {
			t.Fatalf("RelativeDistinguishedName: %v", err)
		}
		for _, attribute := range attributes {
			typ, err := ObjectIdentifier(attribute.Children[0])
			if err != nil {
				t.Fatalf("AttributeType: %v", err)
			}
			if typ.Equal(oid.CommonName) {
				value, err := String(attribute.Children[1])
				if err != nil {
					t.Fatalf("AttributeValue: %v", err)
				}
				return value
			}
		}
	}
	return ""
}

// findExtension returns the members of the extension with the given id.
func findExtension(t *testing.T, extensions *tlv.Node, id asn1.ObjectIdentifier) []*tlv.Node {
	t.Helper()
	members, err := Sequence(extensions)
	if err != nil {
		t.Fatalf("Extensions: %v", err)
	}
	for _, extension := range members {
		extnID, err := ObjectIdentifier(extension.Children[0])
		if err != nil {
			t.Fatalf("extnID: %v", err)
		}
		if extnID.Equal(id) {
			return extension.Children
		}
	}
	return nil
}

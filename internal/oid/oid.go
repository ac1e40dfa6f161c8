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

// Package oid collects object identifiers found in X.509 certificates.
package oid

import "encoding/asn1"

// OIDs for signature and public key algorithms
var (
	// RSA is defined in RFC 8017 C ASN.1 Module
	RSA = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 1}

	// SHA256WithRSA is defined in RFC 8017 C ASN.1 Module
	SHA256WithRSA = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 11}

	// ECPublicKey (id-ecPublicKey) is defined in RFC 5480 2.1.1
	ECPublicKey = asn1.ObjectIdentifier{1, 2, 840, 10045, 2, 1}

	// ECDSAWithSHA384 is defined in RFC 5758 3.2 ECDSA Signature Algorithm
	ECDSAWithSHA384 = asn1.ObjectIdentifier{1, 2, 840, 10045, 4, 3, 3}
)

// OIDs for names and extensions defined in RFC 5280
var (
	// CommonName (id-at-commonName) is defined in RFC 5280 A.1
	CommonName = asn1.ObjectIdentifier{2, 5, 4, 3}

	// KeyUsage (id-ce-keyUsage) is defined in RFC 5280
	//
	// Reference: https://www.rfc-editor.org/rfc/rfc5280.html#section-4.2.1.3
	KeyUsage = asn1.ObjectIdentifier{2, 5, 29, 15}

	// ExtKeyUsage (id-ce-extKeyUsage) is defined in RFC 5280
	//
	// Reference: https://www.rfc-editor.org/rfc/rfc5280.html#section-4.2.1.12
	ExtKeyUsage = asn1.ObjectIdentifier{2, 5, 29, 37}

	// CodeSigning (id-kp-codeSigning) is defined in RFC 5280 4.2.1.12
	CodeSigning = asn1.ObjectIdentifier{1, 3, 6, 1, 5, 5, 7, 3, 3}
)

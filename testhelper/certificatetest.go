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

// Package testhelper implements utility routines required for writing unit tests.
// The testhelper should only be used in unit tests.
package testhelper

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"sync"
	"time"
)

// LeafSerialNumber is the serial number of every leaf certificate.
var LeafSerialNumber = big.NewInt(0x0102030405060708)

var (
	rsaRoot    CertTuple
	rsaLeaf    CertTuple
	ecdsaRoot  CertTuple
	ecdsaLeaf  CertTuple
	setupOnce  sync.Once
	notBefore  = time.Date(2024, time.January, 2, 3, 4, 5, 0, time.UTC)
	notAfter   = time.Date(2051, time.February, 3, 4, 5, 6, 0, time.UTC)
	rootSerial = big.NewInt(1)
)

// CertTuple is a certificate together with its private key.
type CertTuple struct {
	Cert       *x509.Certificate
	PrivateKey crypto.Signer
}

// GetRSARootCertificate returns a self-signed root certificate with an RSA
// key.
func GetRSARootCertificate() CertTuple {
	setupCertificates()
	return rsaRoot
}

// GetRSALeafCertificate returns a leaf certificate issued by the RSA root.
func GetRSALeafCertificate() CertTuple {
	setupCertificates()
	return rsaLeaf
}

// GetECDSARootCertificate returns a self-signed root certificate with a P-384
// key.
func GetECDSARootCertificate() CertTuple {
	setupCertificates()
	return ecdsaRoot
}

// GetECDSALeafCertificate returns a leaf certificate issued by the ECDSA
// root.
func GetECDSALeafCertificate() CertTuple {
	setupCertificates()
	return ecdsaLeaf
}

// PEM returns the certificate in PEM armor.
func PEM(cert *x509.Certificate) []byte {
	return pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: cert.Raw})
}

func setupCertificates() {
	setupOnce.Do(func() {
		rsaKey, _ := rsa.GenerateKey(rand.Reader, 2048)
		rsaRoot = getCertTuple("Notation Test RSA Root", rsaKey, nil)
		rsaLeafKey, _ := rsa.GenerateKey(rand.Reader, 2048)
		rsaLeaf = getCertTuple("Notation Test RSA Leaf Cert", rsaLeafKey, &rsaRoot)

		ecKey, _ := ecdsa.GenerateKey(elliptic.P384(), rand.Reader)
		ecdsaRoot = getCertTuple("Notation Test EC Root", ecKey, nil)
		ecLeafKey, _ := ecdsa.GenerateKey(elliptic.P384(), rand.Reader)
		ecdsaLeaf = getCertTuple("Notation Test EC Leaf Cert", ecLeafKey, &ecdsaRoot)
	})
}

func getCertTuple(cn string, key crypto.Signer, issuer *CertTuple) CertTuple {
	template := getCertTemplate(issuer == nil, cn)
	parent, signer := template, key
	if issuer != nil {
		parent, signer = issuer.Cert, issuer.PrivateKey
	}
	certBytes, _ := x509.CreateCertificate(rand.Reader, template, parent, key.Public(), signer)
	cert, _ := x509.ParseCertificate(certBytes)
	return CertTuple{
		Cert:       cert,
		PrivateKey: key,
	}
}

func getCertTemplate(isRoot bool, cn string) *x509.Certificate {
	template := &x509.Certificate{
		Subject: pkix.Name{
			Organization: []string{"Notary"},
			Country:      []string{"US"},
			Province:     []string{"WA"},
			Locality:     []string{"Seattle"},
			CommonName:   cn,
		},
		NotBefore:    notBefore,
		NotAfter:     notAfter,
		SerialNumber: LeafSerialNumber,
		KeyUsage:     x509.KeyUsageDigitalSignature,
		ExtKeyUsage:  []x509.ExtKeyUsage{x509.ExtKeyUsageCodeSigning},
	}

	if isRoot {
		template.SerialNumber = rootSerial
		template.KeyUsage = x509.KeyUsageCertSign
		template.ExtKeyUsage = nil
		template.BasicConstraintsValid = true
		template.MaxPathLen = 1
		template.IsCA = true
	}
	return template
}

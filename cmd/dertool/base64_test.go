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
	"testing"

	"github.com/notaryproject/notation-asn1-go/base64"
)

func TestB64Enc(t *testing.T) {
	assert, require := makeAR(t)

	output, e := runApp(t, []byte("ManMa"), "b64enc")
	require.NoError(e)
	assert.Equal("TWFuTWE=\n", output)
}

func TestB64Dec(t *testing.T) {
	assert, require := makeAR(t)

	output, e := runApp(t, []byte("TWFu\nTWE=\n"), "b64dec")
	require.NoError(e)
	assert.Equal("ManMa", output)

	output, e = runApp(t, []byte("TW:u"), "b64dec")
	assert.ErrorIs(e, base64.ErrInvalidChar)
	assert.Empty(output)

	_, e = runApp(t, []byte("TWF"), "b64dec")
	assert.ErrorIs(e, base64.ErrNotMultipleOfFour)
}

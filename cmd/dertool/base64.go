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
	"fmt"
	"io"

	"github.com/notaryproject/notation-asn1-go/base64"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func init() {
	defineCommand(&cli.Command{
		Name:  "b64enc",
		Usage: "Encode standard input as padded base64.",
		Action: func(c *cli.Context) error {
			input, e := io.ReadAll(stdin)
			if e != nil {
				return e
			}
			_, e = fmt.Fprintln(c.App.Writer, base64.Encode(input))
			return e
		},
	})

	defineCommand(&cli.Command{
		Name:  "b64dec",
		Usage: "Decode padded base64 from standard input.",
		Action: func(c *cli.Context) error {
			text, e := io.ReadAll(stdin)
			if e != nil {
				return e
			}
			output, e := base64.Decode(string(text))
			if e != nil {
				logger.Debug("base64 decode failed", zap.Int("input-length", len(text)), zap.Error(e))
				return e
			}
			_, e = c.App.Writer.Write(output)
			return e
		},
	})
}

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
	"bytes"
	"encoding/pem"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/notaryproject/notation-asn1-go/base64"
	"github.com/notaryproject/notation-asn1-go/tlv"
	"github.com/urfave/cli/v2"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const stdinName = "-"

var pemHeader = []byte("-----BEGIN ")

// block is one DER buffer extracted from an input.
type block struct {
	name string
	der  []byte
}

func init() {
	defineCommand(&cli.Command{
		Name:      "dump",
		Usage:     "Print the TLV tree of DER, PEM or base64 input.",
		ArgsUsage: "[FILE...]",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "max-depth",
				Usage:   "Maximum nesting `depth` of constructed values.",
				Value:   tlv.DefaultMaxDepth,
				EnvVars: []string{"DERTOOL_MAX_DEPTH"},
			},
			&cli.StringFlag{
				Name:    "format",
				Usage:   "Output `format`: text, json or cbor.",
				Value:   formatText,
				EnvVars: []string{"DERTOOL_FORMAT"},
			},
			&cli.BoolFlag{
				Name:    "base64",
				Usage:   "Input is base64 text.",
				EnvVars: []string{"DERTOOL_BASE64"},
			},
		},
		Action: func(c *cli.Context) error {
			format := c.String("format")
			switch format {
			case formatText, formatJSON, formatCBOR:
			default:
				return fmt.Errorf("unknown output format %q", format)
			}
			if c.Int("max-depth") <= 0 {
				return fmt.Errorf("max-depth must be positive, got %d", c.Int("max-depth"))
			}

			names := c.Args().Slice()
			if len(names) == 0 {
				names = []string{stdinName}
			}

			var errs error
			for _, name := range names {
				e := dumpInput(c, name, format)
				errs = multierr.Append(errs, e)
			}
			if errs != nil {
				return fmt.Errorf("dump: %w", errs)
			}
			return nil
		},
	})
}

func dumpInput(c *cli.Context, name, format string) error {
	data, e := readInput(name)
	if e != nil {
		return e
	}
	blocks, e := loadBlocks(name, data, c.Bool("base64"))
	if e != nil {
		return e
	}

	var errs error
	for _, b := range blocks {
		nodes, e := tlv.ParseAll(b.der, tlv.WithMaxDepth(c.Int("max-depth")))
		if e != nil {
			logDecodeError(b.name, e)
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", b.name, e))
			continue
		}
		logger.Debug("decoded",
			zap.String("input", b.name),
			zap.Int("octets", len(b.der)),
			zap.Int("top-level", len(nodes)),
		)
		doc := document{Input: b.name, Nodes: makeRecords(nodes)}
		if e := render(c.App.Writer, format, doc); e != nil {
			return multierr.Append(errs, e)
		}
	}
	return errs
}

func readInput(name string) ([]byte, error) {
	if name == stdinName {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(name)
}

// loadBlocks extracts DER buffers from data. PEM armor is detected by its
// header line and yields one block per PEM block; otherwise data is base64
// text when isBase64 is set, or DER.
func loadBlocks(name string, data []byte, isBase64 bool) ([]block, error) {
	if bytes.Contains(data, pemHeader) {
		var blocks []block
		for i := 0; ; i++ {
			var p *pem.Block
			p, data = pem.Decode(data)
			if p == nil {
				break
			}
			blocks = append(blocks, block{name: fmt.Sprintf("%s#%d (%s)", name, i, p.Type), der: p.Bytes})
		}
		if len(blocks) == 0 {
			return nil, fmt.Errorf("%s: malformed PEM input", name)
		}
		return blocks, nil
	}
	if isBase64 {
		decoded, err := base64.Decode(string(data))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return []block{{name: name, der: decoded}}, nil
	}
	return []block{{name: name, der: data}}, nil
}

func logDecodeError(name string, err error) {
	fields := []zap.Field{zap.String("input", name), zap.String("kind", errorKind(err))}
	var de *tlv.DecodeError
	if errors.As(err, &de) {
		fields = append(fields, zap.Int("offset", de.Offset), zap.String("field", de.Field))
	}
	logger.Error("decode failed", append(fields, zap.Error(err))...)
}

// errorKind names the decoding failure category of err.
func errorKind(err error) string {
	switch {
	case errors.Is(err, tlv.ErrInsufficientBytes):
		return "InsufficientBytes"
	case errors.Is(err, tlv.ErrUnsupportedLength):
		return "UnsupportedLength"
	case errors.Is(err, tlv.ErrBadRepresentation):
		return "BadRepresentation"
	case errors.Is(err, tlv.ErrUnsupportedTag):
		return "UnsupportedTag"
	case errors.Is(err, tlv.ErrBadLength):
		return "BadLength"
	case errors.Is(err, tlv.ErrMaxDepth):
		return "MaxDepth"
	}
	return "Unknown"
}

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

// Command dertool inspects DER-encoded ASN.1 data.
package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/notaryproject/notation-asn1-go/internal/logging"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

var (
	logger = logging.New("dertool")

	// stdin is read by commands without file arguments.
	stdin io.Reader = os.Stdin
)

var app = &cli.App{
	Name:  "dertool",
	Usage: "Inspect DER-encoded ASN.1 data.",
}

func defineCommand(command *cli.Command) {
	app.Commands = append(app.Commands, command)
}

func main() {
	sort.Sort(cli.CommandsByName(app.Commands))
	if e := app.Run(os.Args); e != nil {
		logger.Debug("command failed", zap.Error(e))
		fmt.Fprintln(os.Stderr, "dertool:", e)
		os.Exit(1)
	}
}

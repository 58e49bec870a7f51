// Copyright 2017-25 the original author or authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package convert

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/georust/gpx"
	"github.com/georust/gpx/cmd/gpx/cli"
	"github.com/georust/gpx/model"
)

var in *os.File

func init() {
	cli.RootCmd.AddCommand(convertCmd)

	flags := convertCmd.Flags()
	flags.VarP(cli.NewReaderValue(os.Stdin, &in, "file"), "input", "i", "GPX file to convert, stdin when omitted")
	flags.StringP("target", "t", "", "target GPX version (1.0 or 1.1), the input's version when omitted")
	flags.StringP("output", "o", "", "output file, stdout when omitted")
	flags.Bool("compact", false, "do not indent the output")
}

var convertCmd = &cobra.Command{
	Use:   "convert [-t <version>] [-i <GPX file>] [-o <output>]",
	Short: "Re-emit a GPX file at a chosen schema version",
	Long:  "Re-emit a GPX file at a chosen schema version, dropping fields the target version does not support",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		flags := cmd.Flags()

		r, err := cli.Unpack(in)
		if err != nil {
			log.Fatal(err)
		}

		g, err := gpx.Read(r)
		if err != nil {
			log.Fatal(err)
		}

		var opts []gpx.WriteOption

		target, err := flags.GetString("target")
		if err != nil {
			log.Fatal(err)
		}

		if target != "" {
			v, ok := model.ParseVersion(target)
			if !ok {
				log.Fatalf("unknown target version %q", target)
			}

			opts = append(opts, gpx.WithTargetVersion(v))
		}

		compact, err := flags.GetBool("compact")
		if err != nil {
			log.Fatal(err)
		}

		if !compact {
			opts = append(opts, gpx.WithIndent("  "))
		}

		dst := os.Stdout

		output, err := flags.GetString("output")
		if err != nil {
			log.Fatal(err)
		}

		if output != "" {
			f, err := os.Create(output)
			if err != nil {
				log.Fatal(err)
			}
			defer f.Close()

			dst = f
		}

		if err := gpx.Write(g, dst, opts...); err != nil {
			log.Fatal(err)
		}
	},
}

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

// Package cli holds the root of the gpx command tree and shared input
// plumbing for its subcommands.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// RootCmd is the root of the gpx command tree.  Subcommands register
// themselves in their package init functions.
var RootCmd = &cobra.Command{
	Use:   "gpx",
	Short: "Inspect and convert GPX files",
	Long:  "Inspect and convert GPX files",
}

// Execute runs the command tree.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"dirpx.dev/ffx/internal/demo"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered sink types",
	RunE:  list,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func list(cmd *cobra.Command, args []string) error {
	if err := demo.Bootstrap(); err != nil {
		return fmt.Errorf("bootstrap sinks: %w", err)
	}
	for _, e := range demo.RegisteredSinks() {
		fmt.Fprintf(cmd.OutOrStdout(), "%-10s %s\n", e.ID, e.Doc)
	}
	return nil
}

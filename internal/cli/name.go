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

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dirpx.dev/ipcname"
	"dirpx.dev/ipcname/apis"
	"dirpx.dev/ipcname/utils/sanitize"
)

func newNameCmd() *cobra.Command {
	var scope string

	cmd := &cobra.Command{
		Use:   "name SUFFIX...",
		Short: "Print the object name for each suffix",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := apis.ParseScope(scope)
			if err != nil {
				return fmt.Errorf("%w: %q", err, scope)
			}
			for _, suffix := range args {
				if sanitize.HasSeparator(suffix) {
					ipcname.Logger().Warn("suffix contains a path separator", zap.String("suffix", suffix))
				}
				n, err := ipcname.New(s, suffix)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&scope, "scope", "s", apis.Global.String(), "object scope (global, process_group, session, user)")
	return cmd
}

func newScopesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scopes",
		Short: "List scopes and their prefixes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, s := range apis.Scopes() {
				p, err := ipcname.Prefix(s)
				if err != nil {
					fmt.Fprintf(out, "%-14s error: %v\n", s, err)
					continue
				}
				fmt.Fprintf(out, "%-14s %s\n", s, p)
			}
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of ipcname",
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), "ipcname", Version)
			return nil
		},
	}
}

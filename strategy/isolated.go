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

package strategy

import (
	"dirpx.dev/ipcname/apis"
)

// RootUser is the directory of the per-user private namespace. It matches
// the alias the provider creates the namespace under.
const RootUser = "User"

// NewIsolated creates an apis.Strategy that serves User scope from the
// private namespace provided by ns.
func NewIsolated(ns apis.NamespaceProvider) apis.Strategy {
	return &isolatedStrategy{ns: ns}
}

// isolatedStrategy falls through whenever the namespace is unavailable,
// leaving User scope to the next strategy.
type isolatedStrategy struct {
	ns apis.NamespaceProvider
}

// Ensure isolatedStrategy implements apis.Strategy.
var _ apis.Strategy = (*isolatedStrategy)(nil)

// TryPrefix returns User\<ns>.user. once the namespace is ready.
func (s *isolatedStrategy) TryPrefix(scope apis.Scope, cfg apis.Config) (string, bool, error) {
	if scope != apis.User || cfg.DisableIsolation || s.ns == nil {
		return "", false, nil
	}
	if !s.ns.Ensure() {
		return "", false, nil
	}
	return Prefix(RootUser, cfg.AppNamespace, apis.User.String()), true, nil
}

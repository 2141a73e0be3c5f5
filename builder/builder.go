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

package builder

import (
	"dirpx.dev/ipcname/apis"
	"dirpx.dev/ipcname/resolver"
	"dirpx.dev/ipcname/strategy"
)

// New returns the builder of the standard prefix chain.
func New() apis.Builder {
	return &builder{}
}

// builder holds no state: the chain depends only on the provider and
// identity passed to BuildResolver.
type builder struct{}

// BuildResolver builds the default prefix chain:
//
//	ProcessGroup -> Session -> Isolated(User) -> Account(User) -> Global
//
// Global is last and catches every remaining scope, including unknown values.
func (b *builder) BuildResolver(_ apis.Config, ns apis.NamespaceProvider, id apis.Identity) apis.Resolver {
	return resolver.New(
		strategy.NewProcessGroup(),
		strategy.NewSession(),
		strategy.NewIsolated(ns),
		strategy.NewAccount(id),
		strategy.NewGlobal(),
	)
}

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

const (
	// RootLocal is the session-local kernel object directory.
	RootLocal = "Local"
	// RootGlobal is the machine-wide kernel object directory.
	RootGlobal = "Global"
	// Terminator separates a prefix from the caller's suffix.
	Terminator = "."
)

// NewStatic creates an apis.Strategy that handles only scope and always
// returns root + `\` + AppNamespace + "." + tag + ".".
func NewStatic(scope apis.Scope, root, tag string) apis.Strategy {
	return &staticStrategy{scope: scope, root: root, tag: tag}
}

// NewProcessGroup returns the ProcessGroup strategy. There is no process
// group id to key on, so every process counts as a member of one group.
func NewProcessGroup() apis.Strategy {
	return NewStatic(apis.ProcessGroup, RootLocal, apis.ProcessGroup.String())
}

// NewSession returns the Session strategy.
func NewSession() apis.Strategy {
	return NewStatic(apis.Session, RootLocal, apis.Session.String())
}

// staticStrategy is a pure function of (scope, cfg).
type staticStrategy struct {
	scope apis.Scope
	root  string
	tag   string
}

// Ensure staticStrategy implements apis.Strategy.
var _ apis.Strategy = (*staticStrategy)(nil)

// TryPrefix handles s.scope only.
func (s *staticStrategy) TryPrefix(scope apis.Scope, cfg apis.Config) (string, bool, error) {
	if scope != s.scope {
		return "", false, nil
	}
	return Prefix(s.root, cfg.AppNamespace, s.tag), true, nil
}

// NewGlobal returns the catch-all strategy. It handles every scope,
// including values outside the declared range, so it belongs at the end
// of a chain.
func NewGlobal() apis.Strategy {
	return globalStrategy{}
}

type globalStrategy struct{}

// Ensure globalStrategy implements apis.Strategy.
var _ apis.Strategy = globalStrategy{}

// TryPrefix always handles.
func (globalStrategy) TryPrefix(_ apis.Scope, cfg apis.Config) (string, bool, error) {
	return Prefix(RootGlobal, cfg.AppNamespace, apis.Global.String()), true, nil
}

// Prefix joins the prefix parts: root\ns.part1.part2...
// The result always ends with Terminator.
func Prefix(root, ns string, parts ...string) string {
	n := len(root) + 1 + len(ns) + len(Terminator)
	for _, p := range parts {
		n += len(p) + len(Terminator)
	}
	b := make([]byte, 0, n)
	b = append(b, root...)
	b = append(b, '\\')
	b = append(b, ns...)
	for _, p := range parts {
		b = append(b, Terminator...)
		b = append(b, p...)
	}
	b = append(b, Terminator...)
	return string(b)
}

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

package ipcname

import (
	"errors"

	"dirpx.dev/ipcname/apis"
)

// Scope is re-exported from apis for callers that only need this package.
type Scope = apis.Scope

// Scopes, re-exported from apis.
const (
	Global       = apis.Global
	ProcessGroup = apis.ProcessGroup
	Session      = apis.Session
	User         = apis.User
)

// ErrNilResolver is returned by Build when no resolver is given.
var ErrNilResolver = errors.New("ipcname: nil resolver")

// ObjectName is the name of a shared kernel object: the scope prefix
// followed by the caller's suffix. It is immutable; copies are independent.
type ObjectName struct {
	name  string
	scope Scope
}

// Build resolves the prefix of scope with res and appends suffix.
// Empty fields of cfg take their defaults. The suffix is used verbatim.
func Build(res apis.Resolver, cfg apis.Config, scope Scope, suffix string) (ObjectName, error) {
	if res == nil {
		return ObjectName{}, ErrNilResolver
	}
	prefix, err := res.ResolvePrefix(scope, normalize(cfg))
	if err != nil {
		return ObjectName{}, err
	}
	return ObjectName{name: prefix + suffix, scope: scope}, nil
}

// String returns the full object name, e.g. `Local\boost.log.session.queue`.
func (n ObjectName) String() string { return n.name }

// Scope returns the scope the name was built for.
func (n ObjectName) Scope() Scope { return n.scope }

// IsZero reports whether n is the zero ObjectName.
func (n ObjectName) IsZero() bool { return n.name == "" }

// MarshalText implements encoding.TextMarshaler.
func (n ObjectName) MarshalText() ([]byte, error) {
	return []byte(n.name), nil
}
